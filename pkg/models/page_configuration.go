package models

import (
	"fmt"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/wire"
)

// PageConfiguration is one output of a page configuration set or a page.
// Fields that are not modelled here are carried through unchanged.
type PageConfiguration struct {
	ID                   string
	Name                 string
	DefaultConfiguration bool
	TemplateID           string
	TemplatePath         string
	FormatID             string
	FormatPath           string
	OutputExtension      string
	Regions              *PageRegions

	raw wire.Object
}

// pageConfigurationFields are the scalar fields of a page configuration as
// they appear on the wire.
type pageConfigurationFields struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	DefaultConfiguration string `json:"defaultConfiguration"`
	TemplateID           string `json:"templateId"`
	TemplatePath         string `json:"templatePath"`
	FormatID             string `json:"formatId"`
	FormatPath           string `json:"formatPath"`
	OutputExtension      string `json:"outputExtension"`
}

func PageConfigurationFromWire(obj wire.Object) (*PageConfiguration, error) {
	var f pageConfigurationFields
	if err := wire.Decode(obj, &f); err != nil {
		return nil, fmt.Errorf("page configuration: %w", err)
	}
	if f.Name == "" {
		return nil, fmt.Errorf("%w: page configuration without a name", constants.ErrUnexpectedShape)
	}
	regions, err := PageRegionsFromWire(wire.Get(obj, "pageRegions", "pageRegion"))
	if err != nil {
		return nil, fmt.Errorf("page configuration %q: %w", f.Name, err)
	}
	return &PageConfiguration{
		ID:                   f.ID,
		Name:                 f.Name,
		DefaultConfiguration: f.DefaultConfiguration == constants.True,
		TemplateID:           f.TemplateID,
		TemplatePath:         f.TemplatePath,
		FormatID:             f.FormatID,
		FormatPath:           f.FormatPath,
		OutputExtension:      f.OutputExtension,
		Regions:              regions,
		raw:                  wire.CloneObject(obj),
	}, nil
}

// ToWire writes the configuration back, regions always as a list.
func (c *PageConfiguration) ToWire() wire.Object {
	obj := wire.CloneObject(c.raw)
	if obj == nil {
		obj = wire.Object{}
	}
	obj["id"] = wire.Nullable(c.ID)
	obj["name"] = c.Name
	obj["defaultConfiguration"] = wire.FormatBool(c.DefaultConfiguration)
	obj["templateId"] = wire.Nullable(c.TemplateID)
	obj["templatePath"] = wire.Nullable(c.TemplatePath)
	obj["formatId"] = wire.Nullable(c.FormatID)
	obj["formatPath"] = wire.Nullable(c.FormatPath)
	obj["outputExtension"] = wire.Nullable(c.OutputExtension)
	if c.Regions != nil {
		obj["pageRegions"] = wire.Object{"pageRegion": c.Regions.ToWire(wire.ArityList)}
	}
	return obj
}
