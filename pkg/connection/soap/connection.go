// Package soap is the SOAP 1.1 over HTTP engine for connection.Connection.
package soap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/cascadews/cascade.go/pkg/connection"
	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/logger"
	"github.com/cascadews/cascade.go/pkg/wire"
)

const responseSuffix = "Response"

type Connection struct {
	Endpoint string

	httpClient *http.Client
	logger     logger.Logger

	mu           sync.Mutex
	lastRequest  []byte
	lastResponse []byte
}

var _ connection.Connection = (*Connection)(nil)

func New(p *connection.Config) *Connection {
	con := Connection{
		Endpoint:   p.Endpoint,
		httpClient: p.HTTPClient,
		logger:     p.Logger,
	}

	if con.httpClient == nil {
		timeout := p.Timeout
		if timeout <= 0 {
			timeout = constants.DefaultTimeout * time.Second
		}
		con.httpClient = &http.Client{
			Timeout: timeout,
		}
	}
	if con.logger == nil {
		con.logger = logger.Nop()
	}

	return &con
}

func (c *Connection) SetTimeout(timeout time.Duration) *Connection {
	c.httpClient.Timeout = timeout
	return c
}

func (c *Connection) SetHTTPClient(client *http.Client) *Connection {
	c.httpClient = client
	return c
}

func (c *Connection) Call(ctx context.Context, operation string, request wire.Object) (wire.Object, error) {
	if c.Endpoint == "" {
		return nil, constants.ErrNoEndpoint
	}

	reqBody, err := Marshal(operation, request)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding %s: %v", constants.ErrTransport, operation, err)
	}
	c.record(reqBody, nil)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constants.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", `""`)

	c.logger.Debug("soap request", "operation", operation, "bytes", len(reqBody))
	status, respBody, err := c.MakeRequest(req)
	if err != nil {
		c.logger.Error("soap request failed", "operation", operation, "err", err.Error())
		return nil, err
	}
	c.record(reqBody, respBody)

	name, payload, err := Unmarshal(respBody)
	if err != nil {
		var fault *constants.FaultError
		if errors.As(err, &fault) {
			c.logger.Error("soap fault", "operation", operation, "code", fault.Code, "fault", fault.String)
			return nil, fault
		}
		if status < 200 || status >= 300 {
			return nil, fmt.Errorf("%w: http status %d", constants.ErrTransport, status)
		}
		return nil, fmt.Errorf("%w: decoding %s response: %w", constants.ErrTransport, operation, err)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: http status %d", constants.ErrTransport, status)
	}
	if name != operation+responseSuffix {
		return nil, fmt.Errorf("%w: expected %s%s, got %s", constants.ErrUnexpectedShape, operation, responseSuffix, name)
	}

	return payload, nil
}

// MakeRequest performs req and returns the status code and the full body.
// Only failures to talk to the endpoint are errors here.
func (c *Connection) MakeRequest(req *http.Request) (int, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: error making HTTP request: %w", constants.ErrTransport, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: reading response: %w", constants.ErrTransport, err)
	}
	return resp.StatusCode, respBytes, nil
}

func (c *Connection) record(req, resp []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastRequest = req
	c.lastResponse = resp
}

func (c *Connection) LastRequest() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return bytes.Clone(c.lastRequest)
}

func (c *Connection) LastResponse() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return bytes.Clone(c.lastResponse)
}

func (c *Connection) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
