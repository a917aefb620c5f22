package asset

import (
	"fmt"
	"strings"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

// contentFields names the field that holds the body of each block and
// format type.
var contentFields = map[models.Type]string{
	models.TypeFeedBlock:                "feedURL",
	models.TypeIndexBlock:               "indexedFolderPath",
	models.TypeTextBlock:                "text",
	models.TypeXHTMLDataDefinitionBlock: "xhtml",
	models.TypeXMLBlock:                 "xml",
	models.TypeScriptFormat:             "script",
	models.TypeXSLTFormat:               "xml",
}

// Block is any of the block types.
type Block struct {
	*base
}

// Content returns the body of the block: the text, the markup, the feed URL
// or the indexed folder path depending on the type.
func (b *Block) Content() string {
	return wire.StringAt(b.bag, contentFields[b.desc.Type])
}

// SetContent replaces the body of the block. Blank content is ErrEmptyValue.
func (b *Block) SetContent(content string) error {
	return setContent(b.base, content)
}

func (b *Block) MetadataSetPath() string {
	return wire.StringAt(b.bag, "metadataSetPath")
}

// Format is a script or XSLT format.
type Format struct {
	*base
}

func (f *Format) Content() string {
	return wire.StringAt(f.bag, contentFields[f.desc.Type])
}

func (f *Format) SetContent(content string) error {
	return setContent(f.base, content)
}

func setContent(b *base, content string) error {
	field, ok := contentFields[b.desc.Type]
	if !ok {
		return fmt.Errorf("%w: %s has no content field", constants.ErrNoSuchProperty, b.desc.Type)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: %s %s", constants.ErrEmptyValue, b.desc.Type, field)
	}
	b.set(field, content)
	return nil
}
