package asset

import (
	"io"

	"github.com/cascadews/cascade.go/internal/codec"
)

// Dump writes the envelope of a as indented JSON.
func Dump(w io.Writer, a Asset) error {
	return codec.JSON{Indent: "  "}.NewEncoder(w).Encode(a.Envelope())
}
