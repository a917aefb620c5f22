package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
)

func TestRegistry_counts(t *testing.T) {
	assert.Len(t, models.DiscoverableTypes(), 46)
	assert.Len(t, models.Properties(), 42)
}

func TestRegistry_declarationOrder(t *testing.T) {
	types := models.DiscoverableTypes()
	assert.Equal(t, models.TypeAssetFactory, types[0])
	assert.Equal(t, models.TypeContentType, types[3])
	assert.Equal(t, models.TypeFolder, types[11])
	assert.Equal(t, models.TypeXSLTFormat, types[len(types)-1])
	assert.NotContains(t, types, models.TypeBlock)
	assert.NotContains(t, types, models.TypeFormat)
}

func TestRegistry_accessorsReturnCopies(t *testing.T) {
	types := models.DiscoverableTypes()
	types[0] = models.TypeUnknown
	assert.Equal(t, models.TypeAssetFactory, models.DiscoverableTypes()[0])

	props := models.Properties()
	props[0] = "changed"
	assert.Equal(t, "assetFactory", models.Properties()[0])
}

func TestPropertyFieldFor(t *testing.T) {
	testcases := []struct {
		typ  models.Type
		want string
	}{
		{models.TypeFolder, "folder"},
		{models.TypeTextBlock, "textBlock"},
		{models.TypeXHTMLDataDefinitionBlock, "xhtmlDataDefinitionBlock"},
		{models.TypeTransportDB, "databaseTransport"},
		{models.TypeTransportFS, "fileSystemTransport"},
		{models.TypeTransportFTP, "ftpTransport"},
		{models.TypeXSLTFormat, "xsltFormat"},
		{models.TypeWordPressConnector, "wordPressConnector"},
	}
	for _, tc := range testcases {
		got, err := models.PropertyFieldFor(tc.typ)
		require.NoError(t, err, tc.typ)
		assert.Equal(t, tc.want, got)

		back, ok := models.TypeForProperty(got)
		assert.True(t, ok)
		assert.Equal(t, tc.typ, back)
	}
}

func TestPropertyFieldFor_noField(t *testing.T) {
	for _, typ := range []models.Type{
		models.TypeMessage, models.TypePageConfiguration, models.TypePageRegion,
		models.TypeWorkflow, models.TypeBlock, models.TypeFormat,
	} {
		_, err := models.PropertyFieldFor(typ)
		assert.ErrorIs(t, err, constants.ErrNoSuchType, typ)
	}

	_, err := models.PropertyFieldFor("textblock")
	assert.ErrorIs(t, err, constants.ErrNoSuchType)
}

func TestEveryPropertyHasAType(t *testing.T) {
	for _, p := range models.Properties() {
		typ, ok := models.TypeForProperty(p)
		require.True(t, ok, p)
		field, err := models.PropertyFieldFor(typ)
		require.NoError(t, err)
		assert.Equal(t, p, field)
	}
	_, ok := models.TypeForProperty("pageRegion")
	assert.False(t, ok)
}

func TestShapeFor(t *testing.T) {
	testcases := []struct {
		typ      models.Type
		shape    models.Shape
		category models.Category
	}{
		{models.TypeTemplate, models.ShapeTemplate, models.CategoryTemplate},
		{models.TypeFolder, models.ShapeContainer, models.CategoryContainer},
		{models.TypeTransportContainer, models.ShapeContainer, models.CategoryContainer},
		{models.TypeIndexBlock, models.ShapeBlock, models.CategoryBlock},
		{models.TypeScriptFormat, models.ShapeFormat, models.CategoryFormat},
		{models.TypePageConfigurationSet, models.ShapePageConfigurationSet, models.CategoryAdmin},
		{models.TypeFile, models.ShapeAsset, models.CategoryLinkable},
		{models.TypeUser, models.ShapeAsset, models.CategoryPrincipal},
	}
	for _, tc := range testcases {
		d, err := models.ShapeFor(tc.typ)
		require.NoError(t, err, tc.typ)
		assert.Equal(t, tc.shape, d.Shape, tc.typ)
		assert.Equal(t, tc.category, d.Category, tc.typ)
		assert.Equal(t, tc.typ, d.Type)
	}

	_, err := models.ShapeFor(models.TypeMessage)
	assert.ErrorIs(t, err, constants.ErrNoSuchType)
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, models.CategoryBlock, models.CategoryOf(models.TypeBlock))
	assert.Equal(t, models.CategoryFormat, models.CategoryOf(models.TypeFormat))
	assert.Equal(t, models.CategoryUnknown, models.CategoryOf("nope"))
	assert.Equal(t, "block", models.CategoryBlock.String())
}

func TestIsNonPathAddressable(t *testing.T) {
	for _, typ := range models.DiscoverableTypes() {
		want := typ == models.TypeGroup || typ == models.TypeRole ||
			typ == models.TypeSite || typ == models.TypeUser
		assert.Equal(t, want, models.IsNonPathAddressable(typ), typ)
	}
}

func TestParseType(t *testing.T) {
	typ, err := models.ParseType("block_TEXT")
	require.NoError(t, err)
	assert.Equal(t, models.TypeTextBlock, typ)

	_, err = models.ParseType("Block_TEXT")
	assert.ErrorIs(t, err, constants.ErrNoSuchType)
}

func TestPopulatedType(t *testing.T) {
	typ, ok := models.PopulatedType(map[string]any{"xmlBlock": map[string]any{"id": "x"}})
	assert.True(t, ok)
	assert.Equal(t, models.TypeXMLBlock, typ)

	_, ok = models.PopulatedType(map[string]any{"xmlBlock": nil})
	assert.False(t, ok)

	_, ok = models.PopulatedType(nil)
	assert.False(t, ok)
}
