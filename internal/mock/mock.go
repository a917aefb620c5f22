// Package mock provides an in-process connection.Connection that answers
// from canned replies, for tests that do not need a server.
package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/cascadews/cascade.go/pkg/connection"
	"github.com/cascadews/cascade.go/pkg/connection/soap"
	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/wire"
)

var _ connection.Connection = (*Connection)(nil)

// Call is a request the connection received.
type Call struct {
	Operation string
	Request   wire.Object
}

// Connection answers each operation through a reply function and keeps
// every request. LastRequest holds the SOAP encoding of the last request.
type Connection struct {
	mu      sync.Mutex
	replies map[string]func(request wire.Object) (wire.Object, error)
	calls   []Call
	lastReq []byte
	lastRes []byte
	closed  bool
}

func New() *Connection {
	return &Connection{replies: map[string]func(wire.Object) (wire.Object, error){}}
}

// Returns makes operation answer with ret as its <operation>Return element.
func (c *Connection) Returns(operation string, ret any) *Connection {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replies[operation] = func(wire.Object) (wire.Object, error) {
		return wire.Object{operation + constants.ReturnSuffix: wire.Clone(ret)}, nil
	}
	return c
}

func (c *Connection) Fails(operation string, err error) *Connection {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replies[operation] = func(wire.Object) (wire.Object, error) {
		return nil, err
	}
	return c
}

func (c *Connection) Call(ctx context.Context, operation string, request wire.Object) (wire.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, Call{Operation: operation, Request: wire.CloneObject(request)})
	req, err := soap.Marshal(operation, request)
	if err != nil {
		return nil, err
	}
	c.lastReq = req
	c.lastRes = nil

	reply, ok := c.replies[operation]
	if !ok {
		return nil, fmt.Errorf("%w: no reply for %s", constants.ErrTransport, operation)
	}
	res, err := reply(request)
	if err != nil {
		return nil, err
	}
	c.lastRes, err = soap.Marshal(operation+"Response", res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Connection) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Call, len(c.calls))
	copy(out, c.calls)
	return out
}

// LastCall returns the most recent request, or a zero Call.
func (c *Connection) LastCall() Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.calls) == 0 {
		return Call{}
	}
	return c.calls[len(c.calls)-1]
}

func (c *Connection) LastRequest() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]byte(nil), c.lastReq...)
}

func (c *Connection) LastResponse() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]byte(nil), c.lastRes...)
}

func (c *Connection) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}
