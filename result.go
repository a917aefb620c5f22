package cascade

import (
	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/wire"
)

// Result is the recorded outcome of the most recent operation.
type Result struct {
	Operation string
	// Success is the success field of the reply exactly as received:
	// "true", "false", or empty when the reply carried no string there.
	Success        string
	Message        string
	CreatedAssetID string
	LastRequest    []byte
	LastResponse   []byte
	// Reply is the <operation>Return element.
	Reply any
}

// IsSuccessful compares Success with "true" as a string. A native boolean,
// "TRUE" or 1 are not success.
func (r Result) IsSuccessful() bool {
	return r.Success == constants.True
}

func returnOf(operation string, reply wire.Object) any {
	return wire.Get(reply, operation+constants.ReturnSuffix)
}

func successOf(ret any) string {
	s, _ := wire.String(wire.Get(ret, "success"))
	return s
}

// recordOutcome replaces the tracked result with the outcome of operation.
// The caller holds s.mu.
func (s *Service) recordOutcome(operation string, reply wire.Object) {
	ret := returnOf(operation, reply)

	r := Result{
		Operation:      operation,
		Success:        successOf(ret),
		Message:        wire.StringAt(ret, "message"),
		CreatedAssetID: wire.StringAt(ret, "createdAssetId"),
		LastRequest:    s.conn.LastRequest(),
		LastResponse:   s.conn.LastResponse(),
		Reply:          ret,
	}
	if operation == opBatch {
		r.Success, r.Message = batchOutcome(ret)
	}
	s.result = r
}

// recordFailure tracks a call that produced no reply.
func (s *Service) recordFailure(operation string, err error) {
	s.result = Result{
		Operation:    operation,
		Message:      err.Error(),
		LastRequest:  s.conn.LastRequest(),
		LastResponse: s.conn.LastResponse(),
	}
}

// Result returns a copy of the tracked outcome.
func (s *Service) Result() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.result
	r.LastRequest = append([]byte(nil), r.LastRequest...)
	r.LastResponse = append([]byte(nil), r.LastResponse...)
	r.Reply = wire.Clone(r.Reply)
	return r
}

func (s *Service) IsSuccessful() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result.IsSuccessful()
}

func (s *Service) Success() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result.Success
}

func (s *Service) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result.Message
}

func (s *Service) CreatedAssetID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result.CreatedAssetID
}

func (s *Service) LastRequest() []byte {
	return s.Result().LastRequest
}

func (s *Service) LastResponse() []byte {
	return s.Result().LastResponse
}

// Reply returns the <operation>Return element of the most recent call.
func (s *Service) Reply() any {
	return s.Result().Reply
}
