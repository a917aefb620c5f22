package codec_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascadews/cascade.go/internal/codec"
)

var (
	_ codec.Marshaler   = codec.JSON{}
	_ codec.Unmarshaler = codec.JSON{}
)

func TestJSON_indent(t *testing.T) {
	data, err := codec.JSON{Indent: "  "}.Marshal(map[string]any{"folder": map[string]any{"name": "a"}})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"folder\": {\n    \"name\": \"a\"\n  }\n}", string(data))
}

func TestJSON_stream(t *testing.T) {
	var buf bytes.Buffer
	c := codec.JSON{}
	require.NoError(t, c.NewEncoder(&buf).Encode(map[string]any{"success": "true"}))

	var got map[string]any
	require.NoError(t, c.NewDecoder(&buf).Decode(&got))
	assert.Equal(t, "true", got["success"])
}
