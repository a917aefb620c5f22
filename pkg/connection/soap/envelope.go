package soap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/wire"
)

const (
	envelopeTag = "soapenv:Envelope"
	bodyTag     = "soapenv:Body"
	faultTag    = "soapenv:Fault"
)

// Marshal wraps payload in a SOAP 1.1 envelope whose body holds a single
// element named name in the service namespace.
//
// Elements of an object are written with "authentication" first and the
// remaining keys in sorted order. nil values are left out, booleans are
// written as "true"/"false" and slices become repeated elements.
func Marshal(name string, payload wire.Object) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	envelope := xml.StartElement{
		Name: xml.Name{Local: envelopeTag},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns:soapenv"}, Value: constants.SOAPEnvelopeNamespace},
			{Name: xml.Name{Local: "xmlns:xsi"}, Value: constants.XSINamespace},
		},
	}
	body := xml.StartElement{Name: xml.Name{Local: bodyTag}}
	op := xml.StartElement{
		Name: xml.Name{Local: name},
		Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns"}, Value: constants.ServiceNamespace}},
	}

	for _, start := range []xml.StartElement{envelope, body, op} {
		if err := enc.EncodeToken(start); err != nil {
			return nil, err
		}
	}
	if err := encodeFields(enc, payload); err != nil {
		return nil, err
	}
	for _, start := range []xml.StartElement{op, body, envelope} {
		if err := enc.EncodeToken(start.End()); err != nil {
			return nil, err
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalFault renders a SOAP 1.1 fault envelope.
func MarshalFault(code, message string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	envelope := xml.StartElement{
		Name: xml.Name{Local: envelopeTag},
		Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns:soapenv"}, Value: constants.SOAPEnvelopeNamespace}},
	}
	body := xml.StartElement{Name: xml.Name{Local: bodyTag}}
	fault := xml.StartElement{Name: xml.Name{Local: faultTag}}

	for _, start := range []xml.StartElement{envelope, body, fault} {
		if err := enc.EncodeToken(start); err != nil {
			return nil, err
		}
	}
	if err := encodeFields(enc, wire.Object{"faultcode": code, "faultstring": message}); err != nil {
		return nil, err
	}
	for _, start := range []xml.StartElement{fault, body, envelope} {
		if err := enc.EncodeToken(start.End()); err != nil {
			return nil, err
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// orderedKeys puts authentication first and sorts the rest.
func orderedKeys(obj wire.Object) []string {
	keys := wire.Keys(obj)
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i] == "authentication" && keys[j] != "authentication"
	})
	return keys
}

func encodeFields(enc *xml.Encoder, obj wire.Object) error {
	for _, k := range orderedKeys(obj) {
		if err := encodeValue(enc, k, obj[k]); err != nil {
			return err
		}
	}
	return nil
}

func encodeValue(enc *xml.Encoder, name string, v any) error {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		for _, e := range t {
			if err := encodeValue(enc, name, e); err != nil {
				return err
			}
		}
		return nil
	case []string:
		for _, e := range t {
			if err := encodeValue(enc, name, e); err != nil {
				return err
			}
		}
		return nil
	case []wire.Object:
		for _, e := range t {
			if err := encodeValue(enc, name, e); err != nil {
				return err
			}
		}
		return nil
	}

	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	switch t := v.(type) {
	case wire.Object:
		if err := encodeFields(enc, t); err != nil {
			return err
		}
	case string:
		if err := enc.EncodeToken(xml.CharData(t)); err != nil {
			return err
		}
	case bool:
		if err := enc.EncodeToken(xml.CharData(wire.FormatBool(t))); err != nil {
			return err
		}
	default:
		if err := enc.EncodeToken(xml.CharData(fmt.Sprint(t))); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

// Unmarshal reads a SOAP envelope and returns the local name of the first
// element of its body together with that element's content. A fault body is
// returned as *constants.FaultError.
func Unmarshal(data []byte) (string, wire.Object, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	inBody := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return "", nil, fmt.Errorf("%w: envelope has no body element", constants.ErrUnexpectedShape)
		}
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", constants.ErrUnexpectedShape, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if !inBody {
			inBody = start.Name.Local == "Body"
			continue
		}

		v, err := decodeElement(dec, start)
		if err != nil {
			return "", nil, err
		}
		if start.Name.Local == "Fault" {
			return "", nil, faultFrom(v)
		}
		obj, ok := v.(wire.Object)
		if !ok || obj == nil {
			obj = wire.Object{}
		}
		return start.Name.Local, obj, nil
	}
}

// decodeElement turns the element opened by start into a value: nil for
// xsi:nil, an Object when it has child elements and its text otherwise.
// Repeated children become a []any in document order.
func decodeElement(dec *xml.Decoder, start xml.StartElement) (any, error) {
	isNil := false
	for _, a := range start.Attr {
		if a.Name.Local == "nil" && (a.Value == "true" || a.Value == "1") {
			isNil = true
		}
	}

	var text strings.Builder
	var obj wire.Object
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: element %s: %v", constants.ErrUnexpectedShape, start.Name.Local, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			if obj == nil {
				obj = wire.Object{}
			}
			addChild(obj, t.Name.Local, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			switch {
			case isNil:
				return nil, nil
			case obj != nil:
				return obj, nil
			default:
				return text.String(), nil
			}
		}
	}
}

func addChild(obj wire.Object, name string, child any) {
	existing, ok := obj[name]
	if !ok {
		obj[name] = child
		return
	}
	if list, ok := existing.([]any); ok {
		obj[name] = append(list, child)
		return
	}
	obj[name] = []any{existing, child}
}

func faultFrom(v any) error {
	return &constants.FaultError{
		Code:   strings.TrimSpace(wire.StringAt(v, "faultcode")),
		String: strings.TrimSpace(wire.StringAt(v, "faultstring")),
		Detail: strings.TrimSpace(textOf(wire.Get(v, "detail"))),
	}
}

// textOf concatenates every string leaf of v.
func textOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case wire.Object:
		parts := make([]string, 0, len(t))
		for _, k := range wire.Keys(t) {
			if s := textOf(t[k]); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			if s := textOf(e); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}
