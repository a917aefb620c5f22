package cascade_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

func failedRead() wire.Object {
	return wire.Object{"readResult": wire.Object{
		"success": "false",
		"message": "Unable to identify an entity based on provided entity path or id",
	}}
}

func successfulRead(field string) wire.Object {
	return wire.Object{"readResult": wire.Object{
		"success": "true",
		"asset":   wire.Object{field: wire.Object{"id": hexID(9), "name": "x"}},
	}}
}

func TestDiscoverTypeAmong_slotThreeIsFolder(t *testing.T) {
	candidates := []models.Type{models.TypePage, models.TypeFile, models.TypeTextBlock, models.TypeFolder, models.TypeSymlink}
	conn := newStubConnection().Returns("batch", []any{
		failedRead(),
		failedRead(),
		failedRead(),
		successfulRead("folder"),
		failedRead(),
	})
	s := newTestService(t, conn)

	got, err := s.DiscoverTypeAmong(context.Background(), hexID(9), candidates...)
	require.NoError(t, err)
	assert.Equal(t, models.TypeFolder, got)

	ops, ok := conn.LastCall().Request["operation"].([]any)
	require.True(t, ok)
	require.Len(t, ops, len(candidates))
	for i, c := range candidates {
		assert.Equal(t, string(c), wire.StringAt(ops[i], "read", "identifier", "type"))
		assert.Equal(t, hexID(9), wire.StringAt(ops[i], "read", "identifier", "id"))
	}
}

func TestDiscoverTypeAmong_malformedSlotBeforeMatch(t *testing.T) {
	conn := newStubConnection().Returns("batch", []any{"", successfulRead("folder")})
	s := newTestService(t, conn)

	got, err := s.DiscoverTypeAmong(context.Background(), hexID(9), models.TypePage, models.TypeFolder)
	require.NoError(t, err)
	assert.Equal(t, models.TypeFolder, got)
}

func TestDiscoverType_readsEveryDiscoverableType(t *testing.T) {
	types := models.DiscoverableTypes()
	slots := make([]any, len(types))
	for i := range slots {
		slots[i] = failedRead()
	}
	for i, typ := range types {
		if typ == models.TypeFolder {
			slots[i] = successfulRead("folder")
		}
	}
	conn := newStubConnection().Returns("batch", slots)
	s := newTestService(t, conn)

	got, err := s.DiscoverType(context.Background(), hexID(9))
	require.NoError(t, err)
	assert.Equal(t, models.TypeFolder, got)

	ops := conn.LastCall().Request["operation"].([]any)
	assert.Len(t, ops, len(types))
}

func TestDiscoverTypeAmong_noMatchIsUnknown(t *testing.T) {
	candidates := []models.Type{models.TypePage, models.TypeFolder}
	conn := newStubConnection().Returns("batch", []any{failedRead(), failedRead()})
	s := newTestService(t, conn)

	got, err := s.DiscoverTypeAmong(context.Background(), hexID(9), candidates...)
	require.NoError(t, err)
	assert.Equal(t, models.TypeUnknown, got)
}

func TestDiscoverTypeAmong_successWithoutMatchingField(t *testing.T) {
	// a successful page slot whose envelope carries a folder is not a page
	candidates := []models.Type{models.TypePage, models.TypeFolder}
	conn := newStubConnection().Returns("batch", []any{successfulRead("folder"), failedRead()})
	s := newTestService(t, conn)

	got, err := s.DiscoverTypeAmong(context.Background(), hexID(9), candidates...)
	require.NoError(t, err)
	assert.Equal(t, models.TypeUnknown, got)
}

func TestDiscoverTypeAmong_nonStringSuccessIsIgnored(t *testing.T) {
	slot := successfulRead("folder")
	slot["readResult"].(wire.Object)["success"] = true
	conn := newStubConnection().Returns("batch", []any{slot})
	s := newTestService(t, conn)

	got, err := s.DiscoverTypeAmong(context.Background(), hexID(9), models.TypeFolder)
	require.NoError(t, err)
	assert.Equal(t, models.TypeUnknown, got)
}

func TestDiscoverTypeAmong_abstractProbes(t *testing.T) {
	// a single slot comes back as a bare object
	conn := newStubConnection().Returns("batch", []any{failedRead(), successfulRead("textBlock")})
	s := newTestService(t, conn)

	got, err := s.DiscoverTypeAmong(context.Background(), hexID(9), models.TypeFormat, models.TypeBlock)
	require.NoError(t, err)
	assert.Equal(t, models.TypeTextBlock, got)

	conn.Returns("batch", []any{successfulRead("xsltFormat"), failedRead()})
	got, err = s.DiscoverTypeAmong(context.Background(), hexID(9), models.TypeFormat, models.TypeBlock)
	require.NoError(t, err)
	assert.Equal(t, models.TypeXSLTFormat, got)

	conn.Returns("batch", []any{successfulRead("page"), failedRead()})
	got, err = s.DiscoverTypeAmong(context.Background(), hexID(9), models.TypeFormat, models.TypeBlock)
	require.NoError(t, err)
	assert.Equal(t, models.TypeUnknown, got)
}

func TestDiscoverTypeAmong_singleCandidateBareReply(t *testing.T) {
	conn := newStubConnection().Returns("batch", successfulRead("page"))
	s := newTestService(t, conn)

	got, err := s.DiscoverTypeAmong(context.Background(), hexID(9), models.TypePage)
	require.NoError(t, err)
	assert.Equal(t, models.TypePage, got)
}

func TestDiscoverTypeAmong_invalidInput(t *testing.T) {
	s := newTestService(t, newStubConnection())

	_, err := s.DiscoverTypeAmong(context.Background(), hexID(9))
	assert.ErrorIs(t, err, constants.ErrInvalidArgument)

	_, err = s.DiscoverTypeAmong(context.Background(), "  ", models.TypePage)
	assert.ErrorIs(t, err, constants.ErrInvalidArgument)

	_, err = s.DiscoverTypeAmong(context.Background(), hexID(9), models.Type("widget"))
	assert.ErrorIs(t, err, constants.ErrNoSuchType)
}

func TestDiscoverType_transportError(t *testing.T) {
	conn := newStubConnection().Fails("batch", constants.ErrTransport)
	s := newTestService(t, conn)

	got, err := s.DiscoverType(context.Background(), hexID(9))
	assert.ErrorIs(t, err, constants.ErrTransport)
	assert.Equal(t, models.TypeUnknown, got)
}
