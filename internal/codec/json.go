package codec

import (
	"io"

	"github.com/goccy/go-json"
)

// JSON implements Marshaler and Unmarshaler over goccy/go-json.
type JSON struct {
	// Indent, when set, is used for every nesting level.
	Indent string
}

func (c JSON) Marshal(v any) ([]byte, error) {
	if c.Indent != "" {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

func (c JSON) NewEncoder(w io.Writer) Encoder {
	enc := json.NewEncoder(w)
	if c.Indent != "" {
		enc.SetIndent("", c.Indent)
	}
	return enc
}

func (c JSON) Unmarshal(data []byte, dst any) error {
	return json.Unmarshal(data, dst)
}

func (c JSON) NewDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}
