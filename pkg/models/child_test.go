package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
)

func TestChildFromWire(t *testing.T) {
	hex := newHexID()
	c, err := models.ChildFromWire(map[string]any{
		"id":   hex,
		"type": "page",
		"path": map[string]any{"path": "about/index", "siteId": "s1", "siteName": "www"},
	})
	require.NoError(t, err)

	assert.Equal(t, hex, c.ID())
	assert.Equal(t, models.TypePage, c.Type())
	assert.False(t, c.Recycled())
	assert.Equal(t, "about/index", c.PathString())

	id, err := c.Identifier()
	require.NoError(t, err)
	assert.True(t, id.IsID())
	assert.Equal(t, hex, id.ID())
}

func TestChildFromWire_pathOnly(t *testing.T) {
	c, err := models.ChildFromWire(map[string]any{
		"type":     "folder",
		"recycled": "true",
		"path":     map[string]any{"path": "images", "siteName": "www"},
	})
	require.NoError(t, err)
	assert.True(t, c.Recycled())

	id, err := c.Identifier()
	require.NoError(t, err)
	assert.False(t, id.IsID())
	assert.Equal(t, "www", id.SiteName())
}

func TestChildFromWire_nullIdentifier(t *testing.T) {
	_, err := models.ChildFromWire(map[string]any{"type": "page"})
	assert.ErrorIs(t, err, constants.ErrNullIdentifier)
}
