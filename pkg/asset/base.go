package asset

import (
	"context"
	"fmt"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

// base carries what every shape shares. Shapes with nested properties set
// rebuild, which runs after every (re)load, and flatten, which writes the
// nested properties back into a copy of the bag before it is sent.
type base struct {
	svc  Service
	desc models.ShapeDescriptor
	id   *models.Identifier
	bag  wire.Object

	rebuild func() error
	flatten func(bag wire.Object)
}

func newBase(svc Service, desc models.ShapeDescriptor, id *models.Identifier, envelope wire.Object) (*base, error) {
	bag, ok := wire.ObjectAt(envelope, desc.Property)
	if !ok {
		return nil, fmt.Errorf("%w: no %s field", constants.ErrNullAsset, desc.Property)
	}
	return &base{
		svc:  svc,
		desc: desc,
		id:   id,
		bag:  bag,
	}, nil
}

func (b *base) Type() models.Type {
	return b.desc.Type
}

func (b *base) Category() models.Category {
	return b.desc.Category
}

func (b *base) PropertyName() string {
	return b.desc.Property
}

func (b *base) ID() string {
	return wire.StringAt(b.bag, "id")
}

func (b *base) Name() string {
	return wire.StringAt(b.bag, "name")
}

func (b *base) Path() string {
	return wire.StringAt(b.bag, "path")
}

func (b *base) SiteName() string {
	return wire.StringAt(b.bag, "siteName")
}

func (b *base) SiteID() string {
	return wire.StringAt(b.bag, "siteId")
}

// Identifier addresses the asset by id once it has one.
func (b *base) Identifier() *models.Identifier {
	if id := b.ID(); id != "" {
		if byID, err := models.IdentifierFromID(b.desc.Type, id); err == nil {
			return byID
		}
	}
	return b.id
}

func (b *base) Get(key string) any {
	return wire.Clone(b.bag[key])
}

func (b *base) set(key string, v any) {
	b.bag[key] = v
}

func (b *base) Property() wire.Object {
	bag := wire.CloneObject(b.bag)
	if b.flatten != nil {
		b.flatten(bag)
	}
	return bag
}

func (b *base) Envelope() wire.Object {
	return wire.Object{b.desc.Property: b.Property()}
}

// Edit sends the asset and reloads it from the service.
func (b *base) Edit(ctx context.Context) error {
	if err := b.svc.EditStrict(ctx, b.Envelope()); err != nil {
		return err
	}
	return b.Reload(ctx)
}

func (b *base) Reload(ctx context.Context) error {
	envelope, err := b.svc.ReadEnvelope(ctx, b.Identifier())
	if err != nil {
		return err
	}
	bag, ok := wire.ObjectAt(envelope, b.desc.Property)
	if !ok {
		return &constants.MaterializationError{
			Type: string(b.desc.Type),
			Err:  fmt.Errorf("%w: no %s field", constants.ErrNullAsset, b.desc.Property),
		}
	}

	prev := b.bag
	b.bag = bag
	if b.rebuild != nil {
		if err := b.rebuild(); err != nil {
			b.bag = prev
			return &constants.MaterializationError{Type: string(b.desc.Type), Err: err}
		}
	}
	return nil
}
