package fakecascade_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/cascadews/cascade.go/internal/fakecascade"
	"github.com/cascadews/cascade.go/pkg/connection"
	"github.com/cascadews/cascade.go/pkg/connection/soap"
	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

type ServerTestSuite struct {
	suite.Suite
	server *fakecascade.Server
	conn   *soap.Connection
	auth   wire.Object
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.server = fakecascade.NewServer()
	s.server.Username = "admin"
	s.server.Password = "admin"

	u, err := url.Parse(s.server.URL())
	s.Require().NoError(err)
	s.conn = soap.New(connection.NewConfig(u))
	s.auth = models.Authentication{Username: "admin", Password: "admin"}.ToWire()
}

func (s *ServerTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ServerTestSuite) call(operation string, params wire.Object) wire.Object {
	params["authentication"] = s.auth
	reply, err := s.conn.Call(context.Background(), operation, params)
	s.Require().NoError(err)
	ret, ok := wire.ObjectAt(reply, operation+"Return")
	s.Require().True(ok)
	return ret
}

func (s *ServerTestSuite) TestReadByIDAndPath() {
	id, err := s.server.Put(models.TypeFolder, wire.Object{"name": "news", "path": "/news", "siteName": "www"})
	s.Require().NoError(err)
	s.True(models.IsHexID(id))

	byID, err := models.IdentifierFromID(models.TypeFolder, id)
	s.Require().NoError(err)
	ret := s.call("read", wire.Object{"identifier": byID.ToWire()})
	s.Equal("true", ret["success"])
	s.Equal("news", wire.StringAt(ret, "asset", "folder", "name"))

	byPath, err := models.CreateIdentifier(models.TypeFolder, "news/", "www")
	s.Require().NoError(err)
	ret = s.call("read", wire.Object{"identifier": byPath.ToWire()})
	s.Equal(id, wire.StringAt(ret, "asset", "folder", "id"))

	wrongType, err := models.IdentifierFromID(models.TypePage, id)
	s.Require().NoError(err)
	ret = s.call("read", wire.Object{"identifier": wrongType.ToWire()})
	s.Equal("false", ret["success"])
	s.Equal(fakecascade.MessageNotFound, ret["message"])
}

func (s *ServerTestSuite) TestCreateEditDelete() {
	ret := s.call("create", wire.Object{"asset": wire.Object{"textBlock": wire.Object{
		"name":             "note",
		"parentFolderPath": "/blocks",
		"siteName":         "www",
		"text":             "hello",
	}}})
	s.Require().Equal("true", ret["success"])
	id := wire.StringAt(ret, "createdAssetId")

	bag, ok := s.server.Asset(id)
	s.Require().True(ok)
	s.Equal("blocks/note", bag["path"])

	bag["text"] = "bye"
	ret = s.call("edit", wire.Object{"asset": wire.Object{"textBlock": bag}})
	s.Equal("true", ret["success"])
	bag, _ = s.server.Asset(id)
	s.Equal("bye", bag["text"])

	ident, err := models.IdentifierFromID(models.TypeTextBlock, id)
	s.Require().NoError(err)
	ret = s.call("delete", wire.Object{"identifier": ident.ToWire()})
	s.Equal("true", ret["success"])
	_, ok = s.server.Asset(id)
	s.False(ok)
}

func (s *ServerTestSuite) TestBatch() {
	id, err := s.server.Put(models.TypePage, wire.Object{"name": "index"})
	s.Require().NoError(err)

	asPage, _ := models.IdentifierFromID(models.TypePage, id)
	asFile, _ := models.IdentifierFromID(models.TypeFile, id)

	reply, err := s.conn.Call(context.Background(), "batch", wire.Object{
		"authentication": s.auth,
		"operation": []any{
			wire.Object{"read": wire.Object{"identifier": asFile.ToWire()}},
			wire.Object{"read": wire.Object{"identifier": asPage.ToWire()}},
		},
	})
	s.Require().NoError(err)
	slots, ok := reply["batchReturn"].([]any)
	s.Require().True(ok)
	s.Require().Len(slots, 2)
	s.Equal("false", wire.StringAt(slots[0], "readResult", "success"))
	s.Equal("true", wire.StringAt(slots[1], "readResult", "success"))
	s.Equal("index", wire.StringAt(slots[1], "readResult", "asset", "page", "name"))
}

func (s *ServerTestSuite) TestAuthentication() {
	reply, err := s.conn.Call(context.Background(), "listSites", wire.Object{
		"authentication": models.Authentication{Username: "admin", Password: "wrong"}.ToWire(),
	})
	s.Require().NoError(err)
	s.Equal("false", wire.StringAt(reply, "listSitesReturn", "success"))
	s.Equal("Invalid credentials", wire.StringAt(reply, "listSitesReturn", "message"))
}

func (s *ServerTestSuite) TestStubsAndFailures() {
	s.server.AddStubResponse(fakecascade.StubResponse{
		Matcher: fakecascade.MatchOperation("readPreferences"),
		Return:  wire.Object{"success": "true", "preferences": wire.Object{"preference": wire.Object{"name": "a", "value": "b"}}},
	})
	s.server.AddStubResponse(fakecascade.StubResponse{
		Matcher: fakecascade.MatchOperation("siteCopy"),
		Fault:   &constants.FaultError{Code: "soapenv:Server", String: "boom"},
	})
	s.server.AddStubResponse(fakecascade.StubResponse{
		Matcher:  fakecascade.MatchOperation("listSubscribers"),
		Failures: []fakecascade.FailureConfig{{Type: fakecascade.FailureHTTPError, Probability: 1}},
	})
	s.server.AddStubResponse(fakecascade.StubResponse{
		Matcher:  fakecascade.MatchOperation("listMessages"),
		Failures: []fakecascade.FailureConfig{{Type: fakecascade.FailureInvalidResponse, Probability: 1}},
	})

	ret := s.call("readPreferences", wire.Object{})
	s.Equal("b", wire.StringAt(ret, "preferences", "preference", "value"))

	ctx := context.Background()
	_, err := s.conn.Call(ctx, "siteCopy", wire.Object{"authentication": s.auth})
	var fault *constants.FaultError
	s.Require().ErrorAs(err, &fault)
	s.Equal("boom", fault.String)

	_, err = s.conn.Call(ctx, "listSubscribers", wire.Object{"authentication": s.auth})
	s.ErrorIs(err, constants.ErrTransport)

	_, err = s.conn.Call(ctx, "listMessages", wire.Object{"authentication": s.auth})
	s.ErrorIs(err, constants.ErrTransport)

	s.Len(s.server.Requests(), 4)
}

func TestPut_rejectsTypesWithoutField(t *testing.T) {
	server := fakecascade.NewServer()
	defer server.Close()

	_, err := server.Put(models.TypeBlock, wire.Object{"name": "x"})
	assert.ErrorIs(t, err, constants.ErrNoSuchType)

	id, err := server.Put(models.TypeFolder, wire.Object{"id": "0123456789abcdef0123456789abcdef"})
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef0123456789abcdef", id)
}
