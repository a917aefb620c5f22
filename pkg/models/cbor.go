package models

import (
	"fmt"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/cascadews/cascade.go/internal/codec"
	"github.com/cascadews/cascade.go/pkg/constants"
)

type CustomCBORTag uint64

// IdentifierTag is taken from the first come first served range.
const IdentifierTag CustomCBORTag = 61900

type CborMarshaler struct {
}

func (c CborMarshaler) Marshal(v any) ([]byte, error) {
	return getCborEncoder().Marshal(v)
}

func (c CborMarshaler) NewEncoder(w io.Writer) codec.Encoder {
	return getCborEncoder().NewEncoder(w)
}

type CborUnmarshaler struct {
}

func (c CborUnmarshaler) Unmarshal(data []byte, dst any) error {
	return getCborDecoder().Unmarshal(data, dst)
}

func (c CborUnmarshaler) NewDecoder(r io.Reader) codec.Decoder {
	return getCborDecoder().NewDecoder(r)
}

func getCborEncoder() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

// getCborDecoder decodes maps as map[string]any so that decoded property
// bags read the same as decoded SOAP payloads.
func getCborDecoder() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

func (i *Identifier) MarshalCBOR() ([]byte, error) {
	var path, site string
	if i.path != nil {
		path, site = i.path.Path, i.path.SiteName
	}
	return getCborEncoder().Marshal(cbor.Tag{
		Number:  uint64(IdentifierTag),
		Content: []any{string(i.typ), i.id, path, site},
	})
}

func (i *Identifier) UnmarshalCBOR(data []byte) error {
	var tag cbor.Tag
	if err := getCborDecoder().Unmarshal(data, &tag); err != nil {
		return err
	}
	if tag.Number != uint64(IdentifierTag) {
		return fmt.Errorf("%w: cbor tag %d is not an identifier", constants.ErrUnexpectedShape, tag.Number)
	}

	content, ok := tag.Content.([]any)
	if !ok || len(content) != 4 {
		return fmt.Errorf("%w: identifier content %T", constants.ErrUnexpectedShape, tag.Content)
	}
	fields := make([]string, len(content))
	for n, c := range content {
		s, ok := c.(string)
		if !ok {
			return fmt.Errorf("%w: identifier field %d is %T", constants.ErrUnexpectedShape, n, c)
		}
		fields[n] = s
	}

	t, err := ParseType(fields[0])
	if err != nil {
		return err
	}
	*i = Identifier{typ: t, id: fields[1]}
	if fields[2] != "" {
		i.path = &Path{Path: fields[2], SiteName: fields[3]}
	} else if fields[1] == "" {
		return fmt.Errorf("%w: %s", constants.ErrNullIdentifier, t)
	}
	return nil
}
