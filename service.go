package cascade

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/cascadews/cascade.go/pkg/connection"
	"github.com/cascadews/cascade.go/pkg/connection/soap"
	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/logger"
	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

// Service talks to one Cascade instance as one user.
type Service struct {
	conn   connection.Connection
	auth   models.Authentication
	logger logger.Logger

	mu     sync.Mutex
	result Result
	// properties holds the last successful ReadProperty per field.
	properties map[string]wire.Object
}

// New creates a Service on top of conn.
func New(conn connection.Connection, auth models.Authentication) (*Service, error) {
	if conn == nil {
		return nil, constants.ErrNoConnection
	}
	if auth.IsZero() {
		return nil, fmt.Errorf("%w: authentication needs an api key or a username and password", constants.ErrInvalidArgument)
	}
	return &Service{
		conn:       conn,
		auth:       auth,
		logger:     logger.Nop(),
		properties: map[string]wire.Object{},
	}, nil
}

// FromEndpointURLString creates a Service using the SOAP transport.
func FromEndpointURLString(endpoint string, auth models.Authentication) (*Service, error) {
	u, err := url.ParseRequestURI(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: endpoint %q: %v", constants.ErrInvalidArgument, endpoint, err)
	}
	return New(soap.New(connection.NewConfig(u)), auth)
}

// WithLogger sets the logger operations are reported to.
func (s *Service) WithLogger(l logger.Logger) *Service {
	if l == nil {
		l = logger.Nop()
	}
	s.logger = l
	return s
}

func (s *Service) Connection() connection.Connection {
	return s.conn
}

func (s *Service) Close() error {
	return s.conn.Close()
}

// call sends operation with params and the credentials, records the outcome
// and returns the <operation>Return element.
func (s *Service) call(ctx context.Context, operation string, params wire.Object) (any, error) {
	request := wire.Object{"authentication": s.auth.ToWire()}
	for k, v := range params {
		request[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reply, err := s.conn.Call(ctx, operation, request)
	if err != nil {
		s.recordFailure(operation, err)
		s.logger.Error("operation failed", "operation", operation, "err", err.Error())
		return nil, err
	}
	s.recordOutcome(operation, reply)
	s.logger.Debug(operation, "operation", operation, "success", s.result.Success, "message", s.result.Message)
	return s.result.Reply, nil
}

// callObject is call for operations whose return element is an object.
func (s *Service) callObject(ctx context.Context, operation string, params wire.Object) (wire.Object, error) {
	ret, err := s.call(ctx, operation, params)
	if err != nil {
		return nil, err
	}
	obj, _ := ret.(wire.Object)
	return obj, nil
}

// strict turns an unsuccessful return element into an OperationError.
func strict(operation string, ret wire.Object) error {
	if successOf(ret) == constants.True {
		return nil
	}
	return &constants.OperationError{Operation: operation, Message: wire.StringAt(ret, "message")}
}
