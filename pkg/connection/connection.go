// Package connection defines the transport a Service talks through.
//
// A Connection executes one named operation of the asset operation service
// and returns the decoded response element. It keeps the raw bytes of the
// last exchange so that callers can inspect what went over the wire.
package connection

import (
	"context"

	"github.com/cascadews/cascade.go/pkg/wire"
)

type Connection interface {
	// Call sends request as the body of operation and returns the content of
	// the response element, for instance {"readReturn": {...}}. Transport
	// failures match constants.ErrTransport.
	Call(ctx context.Context, operation string, request wire.Object) (wire.Object, error)
	LastRequest() []byte
	LastResponse() []byte
	Close() error
}
