package models

import (
	"fmt"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/wire"
)

// Referent is an asset a page region can point at.
type Referent interface {
	ID() string
	Path() string
	Category() Category
}

// PageRegion associates a block and a format with a named region of a
// template or page configuration. NoBlock and NoFormat explicitly detach
// what an outer level would otherwise supply; they are not the same as an
// empty block or format.
type PageRegion struct {
	ID             string
	Name           string
	BlockID        string
	BlockPath      string
	BlockRecycled  bool
	NoBlock        bool
	FormatID       string
	FormatPath     string
	FormatRecycled bool
	NoFormat       bool
}

func PageRegionFromWire(obj wire.Object) (*PageRegion, error) {
	name := wire.StringAt(obj, "name")
	if name == "" {
		return nil, fmt.Errorf("%w: page region without a name", constants.ErrUnexpectedShape)
	}
	return &PageRegion{
		ID:             wire.StringAt(obj, "id"),
		Name:           name,
		BlockID:        wire.StringAt(obj, "blockId"),
		BlockPath:      wire.StringAt(obj, "blockPath"),
		BlockRecycled:  wire.Bool(wire.Get(obj, "blockRecycled")),
		NoBlock:        wire.Bool(wire.Get(obj, "noBlock")),
		FormatID:       wire.StringAt(obj, "formatId"),
		FormatPath:     wire.StringAt(obj, "formatPath"),
		FormatRecycled: wire.Bool(wire.Get(obj, "formatRecycled")),
		NoFormat:       wire.Bool(wire.Get(obj, "noFormat")),
	}, nil
}

func (r *PageRegion) HasBlock() bool {
	return r.BlockID != "" || r.BlockPath != ""
}

func (r *PageRegion) HasFormat() bool {
	return r.FormatID != "" || r.FormatPath != ""
}

// SetBlock attaches b to the region. A nil b detaches the current block and
// leaves the flags alone. Anything that is not a block is ErrNullAsset.
func (r *PageRegion) SetBlock(b Referent, recycled, noBlock bool) error {
	if b == nil {
		r.BlockID, r.BlockPath = "", ""
		return nil
	}
	if b.Category() != CategoryBlock {
		return fmt.Errorf("%w: %s %q is not a block", constants.ErrNullAsset, b.Category(), b.Path())
	}
	r.BlockID = b.ID()
	r.BlockPath = b.Path()
	r.BlockRecycled = recycled
	r.NoBlock = noBlock
	return nil
}

// SetFormat is SetBlock for formats.
func (r *PageRegion) SetFormat(f Referent, recycled, noFormat bool) error {
	if f == nil {
		r.FormatID, r.FormatPath = "", ""
		return nil
	}
	if f.Category() != CategoryFormat {
		return fmt.Errorf("%w: %s %q is not a format", constants.ErrNullAsset, f.Category(), f.Path())
	}
	r.FormatID = f.ID()
	r.FormatPath = f.Path()
	r.FormatRecycled = recycled
	r.NoFormat = noFormat
	return nil
}

func (r *PageRegion) ToWire() wire.Object {
	return wire.Object{
		"id":             wire.Nullable(r.ID),
		"name":           r.Name,
		"blockId":        wire.Nullable(r.BlockID),
		"blockPath":      wire.Nullable(r.BlockPath),
		"blockRecycled":  wire.FormatBool(r.BlockRecycled),
		"noBlock":        wire.FormatBool(r.NoBlock),
		"formatId":       wire.Nullable(r.FormatID),
		"formatPath":     wire.Nullable(r.FormatPath),
		"formatRecycled": wire.FormatBool(r.FormatRecycled),
		"noFormat":       wire.FormatBool(r.NoFormat),
	}
}

// PageRegions is the ordered region list of one owner. The list and the
// name index hold the same pointers, so a region changed through one view is
// changed in the other.
type PageRegions struct {
	kind   wire.Kind
	list   []*PageRegion
	byName map[string]*PageRegion
}

// PageRegionsFromWire reads the pageRegion field of a pageRegions object,
// which may be nil, one region or a list of them.
func PageRegionsFromWire(v any) (*PageRegions, error) {
	m, err := wire.FromWire(v, PageRegionFromWire)
	if err != nil {
		return nil, fmt.Errorf("page regions: %w", err)
	}
	regions := &PageRegions{
		kind:   m.Kind(),
		list:   m.Items(),
		byName: make(map[string]*PageRegion, m.Len()),
	}
	for _, r := range regions.list {
		regions.byName[r.Name] = r
	}
	return regions, nil
}

// Kind is the wire form the regions were read from.
func (p *PageRegions) Kind() wire.Kind {
	return p.kind
}

func (p *PageRegions) Len() int {
	return len(p.list)
}

func (p *PageRegions) Has(name string) bool {
	_, ok := p.byName[name]
	return ok
}

func (p *PageRegions) Get(name string) (*PageRegion, error) {
	r, ok := p.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", constants.ErrNoSuchPageRegion, name)
	}
	return r, nil
}

// Names returns the region names in wire order.
func (p *PageRegions) Names() []string {
	names := make([]string, len(p.list))
	for i, r := range p.list {
		names[i] = r.Name
	}
	return names
}

// Items returns the regions in wire order.
func (p *PageRegions) Items() []*PageRegion {
	out := make([]*PageRegion, len(p.list))
	copy(out, p.list)
	return out
}

// Set replaces the region with the same name in both views.
func (p *PageRegions) Set(r *PageRegion) error {
	if r == nil {
		return fmt.Errorf("%w: nil page region", constants.ErrNullAsset)
	}
	if _, ok := p.byName[r.Name]; !ok {
		return fmt.Errorf("%w: %q", constants.ErrNoSuchPageRegion, r.Name)
	}
	for i, cur := range p.list {
		if cur.Name == r.Name {
			p.list[i] = r
		}
	}
	p.byName[r.Name] = r
	return nil
}

// Filter returns the regions for which keep is true, in order.
func (p *PageRegions) Filter(keep func(*PageRegion) bool) []*PageRegion {
	var out []*PageRegion
	for _, r := range p.list {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// ToWire flattens the regions for a request, under the given arity.
func (p *PageRegions) ToWire(arity wire.Arity) any {
	return wire.ToWire(p.list, (*PageRegion).ToWire, arity)
}
