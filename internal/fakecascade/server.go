// Package fakecascade provides a fake Cascade asset operation service for
// testing purposes. It speaks SOAP 1.1 over HTTP and keeps assets in memory.
//
// Reads, edits, creates, deletes and batches run against the in-memory
// store. Every other operation answers with success unless a stub response
// is configured for it. Stubs can also inject failures such as delays,
// HTTP errors and unparsable bodies.
package fakecascade

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/gorilla/mux"

	"github.com/cascadews/cascade.go/pkg/connection/soap"
	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

// MessageNotFound is the message the service sends when a read misses.
const MessageNotFound = "Unable to identify an entity based on provided entity path or id"

// cryptoRandFloat64 generates a cryptographically secure random float64 in [0.0, 1.0)
func cryptoRandFloat64() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(1<<53))
	return float64(n.Int64()) / float64(1<<53)
}

// FailureType represents the type of failure to inject during request processing
type FailureType string

const (
	// FailureRequestDelay delays before processing the request
	FailureRequestDelay FailureType = "request_delay"
	// FailureHTTPError answers with status 500 and an empty body
	FailureHTTPError FailureType = "http_error"
	// FailureInvalidResponse sends a body that is not XML
	FailureInvalidResponse FailureType = "invalid_response"
)

// FailureConfig defines how and when to inject a specific failure type
type FailureConfig struct {
	Type FailureType
	// Probability of triggering this failure (0.0 to 1.0)
	Probability float64
	Delay       time.Duration
}

// RequestMatcher selects requests by operation name and, optionally, by
// payload.
type RequestMatcher struct {
	Operation string
	Matcher   func(request wire.Object) bool
}

func MatchOperation(operation string) RequestMatcher {
	return RequestMatcher{Operation: operation}
}

func (m RequestMatcher) matches(operation string, request wire.Object) bool {
	if m.Operation != operation {
		return false
	}
	return m.Matcher == nil || m.Matcher(request)
}

// StubResponse is a pre-configured answer for matching requests. Return is
// sent as the <operation>Return element; Fault, when set, is sent instead.
// For batch, Return is the list of slot results.
type StubResponse struct {
	Matcher  RequestMatcher
	Return   any
	Fault    *constants.FaultError
	Failures []FailureConfig
}

type entry struct {
	typ  models.Type
	bag  wire.Object
	site string
	path string
}

// Server is a fake Cascade instance backed by httptest.
type Server struct {
	// Username, Password and APIKey, when set, are required on every request.
	Username string
	Password string
	APIKey   string

	mu       sync.Mutex
	httpd    *httptest.Server
	stubs    []StubResponse
	byID     map[string]*entry
	byPath   map[string]string
	requests []Request
}

// Request is a request the server received.
type Request struct {
	Operation string
	Payload   wire.Object
}

func NewServer() *Server {
	s := &Server{
		byID:   map[string]*entry{},
		byPath: map[string]string{},
	}
	router := mux.NewRouter()
	router.HandleFunc(constants.ServicePath, s.handle).Methods(http.MethodPost)
	s.httpd = httptest.NewServer(router)
	return s
}

// URL is the base URL of the instance, without the service path.
func (s *Server) URL() string {
	return s.httpd.URL
}

// Endpoint is the full service URL.
func (s *Server) Endpoint() string {
	return s.httpd.URL + constants.ServicePath
}

func (s *Server) Close() {
	s.httpd.Close()
}

func (s *Server) AddStubResponse(stub StubResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs = append(s.stubs, stub)
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// NewID returns a fresh 32 character hex asset id.
func NewID() string {
	return strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")
}

// Put stores an asset of type t and returns its id. bag keeps its id when
// it has one. Assets with a siteName and path are also reachable by path.
func (s *Server) Put(t models.Type, bag wire.Object) (string, error) {
	if _, err := models.PropertyFieldFor(t); err != nil {
		return "", err
	}
	bag = wire.CloneObject(bag)
	if bag == nil {
		bag = wire.Object{}
	}
	id := wire.StringAt(bag, "id")
	if id == "" {
		id = NewID()
		bag["id"] = id
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(t, bag)
	return id, nil
}

func (s *Server) put(t models.Type, bag wire.Object) {
	id := wire.StringAt(bag, "id")
	if old, ok := s.byID[id]; ok {
		delete(s.byPath, pathKey(old.typ, old.site, old.path))
	}
	e := &entry{
		typ:  t,
		bag:  bag,
		site: wire.StringAt(bag, "siteName"),
		path: strings.Trim(wire.StringAt(bag, "path"), "/"),
	}
	s.byID[id] = e
	if e.path != "" {
		s.byPath[pathKey(t, e.site, e.path)] = id
	}
}

// Asset returns a copy of the stored property bag of id.
func (s *Server) Asset(id string) (wire.Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return wire.CloneObject(e.bag), true
}

func pathKey(t models.Type, site, path string) string {
	return fmt.Sprintf("%s|%s|%s", t, site, path)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	operation, payload, err := soap.Unmarshal(body)
	if err != nil {
		s.writeFault(w, "soapenv:Client", err.Error())
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{Operation: operation, Payload: wire.CloneObject(payload)})
	stub, hasStub := s.findStub(operation, payload)
	s.mu.Unlock()

	if hasStub {
		if done := s.applyFailures(w, stub.Failures); done {
			return
		}
		if stub.Fault != nil {
			s.writeFault(w, stub.Fault.Code, stub.Fault.String)
			return
		}
		s.writeReturn(w, operation, stub.Return)
		return
	}

	if !s.authenticated(payload) {
		s.writeReturn(w, operation, failure("Invalid credentials"))
		return
	}

	s.mu.Lock()
	ret := s.dispatch(operation, payload)
	s.mu.Unlock()
	s.writeReturn(w, operation, ret)
}

func (s *Server) findStub(operation string, payload wire.Object) (StubResponse, bool) {
	for _, stub := range s.stubs {
		if stub.Matcher.matches(operation, payload) {
			return stub, true
		}
	}
	return StubResponse{}, false
}

func (s *Server) applyFailures(w http.ResponseWriter, failures []FailureConfig) bool {
	for _, f := range failures {
		if f.Probability < 1 && cryptoRandFloat64() >= f.Probability {
			continue
		}
		switch f.Type {
		case FailureRequestDelay:
			time.Sleep(f.Delay)
		case FailureHTTPError:
			w.WriteHeader(http.StatusInternalServerError)
			return true
		case FailureInvalidResponse:
			w.Header().Set("Content-Type", "text/xml; charset=utf-8")
			_, _ = w.Write([]byte("this is not xml"))
			return true
		}
	}
	return false
}

func (s *Server) authenticated(payload wire.Object) bool {
	if s.Username == "" && s.APIKey == "" {
		return true
	}
	auth, _ := wire.ObjectAt(payload, "authentication")
	if s.APIKey != "" && wire.StringAt(auth, "apiKey") == s.APIKey {
		return true
	}
	return s.Username != "" &&
		wire.StringAt(auth, "username") == s.Username &&
		wire.StringAt(auth, "password") == s.Password
}

func (s *Server) writeReturn(w http.ResponseWriter, operation string, ret any) {
	data, err := soap.Marshal(operation+"Response", wire.Object{operation + constants.ReturnSuffix: ret})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	_, _ = w.Write(data)
}

func (s *Server) writeFault(w http.ResponseWriter, code, message string) {
	data, err := soap.MarshalFault(code, message)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(data)
}
