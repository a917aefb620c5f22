package asset_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascadews/cascade.go/pkg/asset"
	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

func mustID(t *testing.T, typ models.Type, id string) *models.Identifier {
	t.Helper()
	i, err := models.IdentifierFromID(typ, id)
	require.NoError(t, err)
	return i
}

func TestMaterialize_shapes(t *testing.T) {
	testcases := []struct {
		typ   models.Type
		field string
		check func(t *testing.T, a asset.Asset)
	}{
		{models.TypeTemplate, "template", func(t *testing.T, a asset.Asset) {
			_, ok := a.(*asset.Template)
			assert.True(t, ok)
		}},
		{models.TypeFolder, "folder", func(t *testing.T, a asset.Asset) {
			_, ok := a.(*asset.Container)
			assert.True(t, ok)
		}},
		{models.TypeMetadataSetContainer, "metadataSetContainer", func(t *testing.T, a asset.Asset) {
			_, ok := a.(*asset.Container)
			assert.True(t, ok)
		}},
		{models.TypeTextBlock, "textBlock", func(t *testing.T, a asset.Asset) {
			_, ok := a.(*asset.Block)
			assert.True(t, ok)
		}},
		{models.TypeScriptFormat, "scriptFormat", func(t *testing.T, a asset.Asset) {
			_, ok := a.(*asset.Format)
			assert.True(t, ok)
		}},
		{models.TypePageConfigurationSet, "pageConfigurationSet", func(t *testing.T, a asset.Asset) {
			_, ok := a.(*asset.PageConfigurationSet)
			assert.True(t, ok)
		}},
		{models.TypeFile, "file", func(t *testing.T, a asset.Asset) {
			_, ok := a.(*asset.Generic)
			assert.True(t, ok)
		}},
	}

	for _, tc := range testcases {
		t.Run(string(tc.typ), func(t *testing.T) {
			envelope := wire.Object{tc.field: wire.Object{"id": hexID(1), "name": "n", "path": "p/n", "siteName": "www"}}
			a, err := asset.Materialize(newFakeService(), tc.typ, mustID(t, tc.typ, hexID(1)), envelope)
			require.NoError(t, err)

			assert.Equal(t, tc.typ, a.Type())
			assert.Equal(t, tc.field, a.PropertyName())
			assert.Equal(t, hexID(1), a.ID())
			assert.Equal(t, "n", a.Name())
			assert.Equal(t, "p/n", a.Path())
			assert.Equal(t, "www", a.SiteName())
			assert.Equal(t, models.CategoryOf(tc.typ), a.Category())
			tc.check(t, a)
		})
	}
}

func TestMaterialize_errors(t *testing.T) {
	svc := newFakeService()

	_, err := asset.Materialize(svc, models.TypeMessage, nil, wire.Object{})
	assert.ErrorIs(t, err, constants.ErrMaterialization)
	assert.ErrorIs(t, err, constants.ErrNoSuchType)

	_, err = asset.Materialize(svc, models.TypeFolder, nil, wire.Object{"page": wire.Object{}})
	assert.ErrorIs(t, err, constants.ErrMaterialization)
	assert.ErrorIs(t, err, constants.ErrNullAsset)

	_, err = asset.Materialize(svc, models.TypeTemplate, nil, wire.Object{
		"template": wire.Object{"pageRegions": wire.Object{"pageRegion": "DEFAULT"}},
	})
	assert.ErrorIs(t, err, constants.ErrUnexpectedShape)

	var merr *constants.MaterializationError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "template", merr.Type)
}

func TestGeneric_SetAndEdit(t *testing.T) {
	svc := newFakeService()
	svc.put(models.TypeFile, hexID(7), wire.Object{"name": "a.css", "text": "body{}"})

	a, err := svc.GetAsset(context.Background(), models.TypeFile, hexID(7))
	require.NoError(t, err)
	g := a.(*asset.Generic)

	g.Set("text", "p{}")
	require.NoError(t, g.Edit(context.Background()))
	require.Len(t, svc.edits, 1)
	assert.Equal(t, "p{}", wire.StringAt(svc.edits[0], "file", "text"))
	assert.Equal(t, "p{}", g.Get("text"))
	assert.Equal(t, 2, svc.reads)
}

func TestEdit_failureSkipsReload(t *testing.T) {
	svc := newFakeService()
	svc.put(models.TypeFile, hexID(8), wire.Object{"name": "a.css"})
	a, err := svc.GetAsset(context.Background(), models.TypeFile, hexID(8))
	require.NoError(t, err)

	svc.editFailed = "Asset is locked"
	err = a.Edit(context.Background())
	assert.ErrorIs(t, err, constants.ErrOperationFailure)

	var oerr *constants.OperationError
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, "Asset is locked", oerr.Message)
	assert.Equal(t, 1, svc.reads)
}

func TestReload_missingAsset(t *testing.T) {
	svc := newFakeService()
	svc.put(models.TypeFile, hexID(9), wire.Object{"name": "a.css"})
	a, err := svc.GetAsset(context.Background(), models.TypeFile, hexID(9))
	require.NoError(t, err)

	delete(svc.envelopes, hexID(9))
	assert.ErrorIs(t, a.Reload(context.Background()), constants.ErrOperationFailure)
}

func TestIdentifier_prefersID(t *testing.T) {
	byPath, err := models.IdentifierFromPath(models.TypeFolder, "images", "www")
	require.NoError(t, err)

	a, err := asset.Materialize(newFakeService(), models.TypeFolder, byPath, wire.Object{
		"folder": wire.Object{"id": hexID(3), "path": "images"},
	})
	require.NoError(t, err)
	assert.True(t, a.Identifier().IsID())
	assert.Equal(t, hexID(3), a.Identifier().ID())

	a, err = asset.Materialize(newFakeService(), models.TypeFolder, byPath, wire.Object{
		"folder": wire.Object{"path": "images"},
	})
	require.NoError(t, err)
	assert.Same(t, byPath, a.Identifier())
}

func TestDump(t *testing.T) {
	a, err := asset.Materialize(newFakeService(), models.TypeTextBlock, nil, wire.Object{
		"textBlock": wire.Object{"id": hexID(4), "text": "hello"},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, asset.Dump(&buf, a))
	assert.Contains(t, buf.String(), `"textBlock": {`)
	assert.Contains(t, buf.String(), `"text": "hello"`)
}
