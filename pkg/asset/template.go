package asset

import (
	"context"
	"fmt"
	"strings"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

// Template owns the page regions of a template asset.
type Template struct {
	*base
	regions *models.PageRegions
}

func newTemplate(b *base) (*Template, error) {
	t := &Template{base: b}
	b.rebuild = t.readRegions
	b.flatten = t.writeRegions
	if err := t.readRegions(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Template) readRegions() error {
	regions, err := models.PageRegionsFromWire(wire.Get(t.bag, "pageRegions", "pageRegion"))
	if err != nil {
		return err
	}
	t.regions = regions
	return nil
}

// writeRegions always sends the regions as a list.
func (t *Template) writeRegions(bag wire.Object) {
	bag["pageRegions"] = wire.Object{"pageRegion": t.regions.ToWire(wire.ArityList)}
}

func (t *Template) XML() string {
	return wire.StringAt(t.bag, "xml")
}

// SetXML replaces the template markup. Blank markup is ErrEmptyValue.
func (t *Template) SetXML(xml string) error {
	if strings.TrimSpace(xml) == "" {
		return fmt.Errorf("%w: template xml", constants.ErrEmptyValue)
	}
	t.set("xml", xml)
	return nil
}

func (t *Template) FormatID() string {
	return wire.StringAt(t.bag, "formatId")
}

func (t *Template) FormatPath() string {
	return wire.StringAt(t.bag, "formatPath")
}

func (t *Template) TargetID() string {
	return wire.StringAt(t.bag, "targetId")
}

func (t *Template) TargetPath() string {
	return wire.StringAt(t.bag, "targetPath")
}

// Format fetches the template format, nil when there is none.
func (t *Template) Format(ctx context.Context) (Asset, error) {
	id := t.FormatID()
	if id == "" {
		return nil, nil
	}
	return t.svc.GetAsset(ctx, models.TypeXSLTFormat, id)
}

// SetFormat attaches an XSLT format to the template. nil detaches it.
func (t *Template) SetFormat(f Asset) error {
	if f == nil {
		t.set("formatId", nil)
		t.set("formatPath", nil)
		return nil
	}
	if f.Type() != models.TypeXSLTFormat {
		return fmt.Errorf("%w: a template format must be %s, not %s", constants.ErrUnacceptableValue, models.TypeXSLTFormat, f.Type())
	}
	t.set("formatId", f.ID())
	t.set("formatPath", f.Path())
	return nil
}

func (t *Template) PageRegions() *models.PageRegions {
	return t.regions
}

func (t *Template) PageRegionNames() []string {
	return t.regions.Names()
}

func (t *Template) HasPageRegion(name string) bool {
	return t.regions.Has(name)
}

func (t *Template) PageRegion(name string) (*models.PageRegion, error) {
	return t.regions.Get(name)
}

// SetPageRegion replaces the region called name with r.
func (t *Template) SetPageRegion(name string, r *models.PageRegion) error {
	if !t.regions.Has(name) {
		return fmt.Errorf("%w: %q", constants.ErrNoSuchPageRegion, name)
	}
	if r == nil || r.Name != name {
		return fmt.Errorf("%w: region for %q must be named %q", constants.ErrUnacceptableValue, name, name)
	}
	return t.regions.Set(r)
}

// SetPageRegionBlock attaches b to the named region. nil detaches it.
func (t *Template) SetPageRegionBlock(name string, b models.Referent, recycled, noBlock bool) error {
	r, err := t.regions.Get(name)
	if err != nil {
		return err
	}
	return r.SetBlock(b, recycled, noBlock)
}

// SetPageRegionFormat attaches f to the named region. nil detaches it.
func (t *Template) SetPageRegionFormat(name string, f models.Referent, recycled, noFormat bool) error {
	r, err := t.regions.Get(name)
	if err != nil {
		return err
	}
	return r.SetFormat(f, recycled, noFormat)
}

func (t *Template) SetNoBlock(name string, noBlock bool) error {
	r, err := t.regions.Get(name)
	if err != nil {
		return err
	}
	r.NoBlock = noBlock
	return nil
}

func (t *Template) SetNoFormat(name string, noFormat bool) error {
	r, err := t.regions.Get(name)
	if err != nil {
		return err
	}
	r.NoFormat = noFormat
	return nil
}

// PageRegionBlock fetches the block attached to the named region, nil when
// there is none.
func (t *Template) PageRegionBlock(ctx context.Context, name string) (Asset, error) {
	r, err := t.regions.Get(name)
	if err != nil {
		return nil, err
	}
	return t.fetchAttached(ctx, r.BlockID)
}

// PageRegionFormat fetches the format attached to the named region, nil
// when there is none.
func (t *Template) PageRegionFormat(ctx context.Context, name string) (Asset, error) {
	r, err := t.regions.Get(name)
	if err != nil {
		return nil, err
	}
	return t.fetchAttached(ctx, r.FormatID)
}

// fetchAttached resolves the concrete type of a region block or format,
// then reads it.
func (t *Template) fetchAttached(ctx context.Context, id string) (Asset, error) {
	if id == "" {
		return nil, nil
	}
	typ, err := t.svc.DiscoverTypeAmong(ctx, id, models.TypeBlock, models.TypeFormat)
	if err != nil {
		return nil, err
	}
	if typ == models.TypeUnknown {
		return nil, fmt.Errorf("%w: %s is neither a block nor a format", constants.ErrNoSuchType, id)
	}
	return t.svc.GetAsset(ctx, typ, id)
}

// PageRegionsForConfiguration exports the regions that have a block or a
// format attached, in the form a page configuration expects: a single region
// is written as a bare object. With no such region the result is empty.
func (t *Template) PageRegionsForConfiguration() wire.Object {
	attached := t.regions.Filter(func(r *models.PageRegion) bool {
		return r.BlockID != "" || r.FormatID != ""
	})
	out := wire.Object{}
	if len(attached) == 0 {
		return out
	}
	out["pageRegions"] = wire.Object{
		"pageRegion": wire.ToWire(attached, (*models.PageRegion).ToWire, wire.ArityCollapse),
	}
	return out
}
