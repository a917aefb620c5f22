package constants

const (
	// ServiceNamespace is the XML namespace of the asset operation service.
	ServiceNamespace = "http://www.hannonhill.com/ws/ns/AssetOperationService"
	// SOAPEnvelopeNamespace is the SOAP 1.1 envelope namespace.
	SOAPEnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	// XSINamespace is the XML schema instance namespace, used for xsi:nil.
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"

	// ServicePath is appended to the base URL when the endpoint has no path.
	ServicePath = "/ws/services/AssetOperationService"

	// DefaultTimeout timeout in seconds
	DefaultTimeout = 30

	// ReturnSuffix is appended to an operation name to form its reply field.
	ReturnSuffix = "Return"

	// True is the only wire value that marks an operation as successful.
	True  = "true"
	False = "false"
)
