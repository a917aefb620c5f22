// Package asset turns asset envelopes read from the service into typed
// values, and writes them back for edit.
//
// An envelope is the asset object of a read reply: an object with exactly
// one populated field, named after the asset type (folder, textBlock,
// template, ...). Materialize picks the concrete shape for the type from the
// registry and rebuilds nested properties such as page regions.
package asset

import (
	"context"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

// Service is the part of the client the assets call back into.
type Service interface {
	// ReadEnvelope reads id and returns the asset envelope. An unsuccessful
	// read is a *constants.OperationError.
	ReadEnvelope(ctx context.Context, id *models.Identifier) (wire.Object, error)
	// EditStrict sends envelope to edit and fails with a
	// *constants.OperationError unless the service reports success.
	EditStrict(ctx context.Context, envelope wire.Object) error
	DiscoverTypeAmong(ctx context.Context, id string, candidates ...models.Type) (models.Type, error)
	GetAsset(ctx context.Context, t models.Type, pathOrID string, siteName ...string) (Asset, error)
}

// Asset is a materialized asset of any shape.
type Asset interface {
	models.Referent

	Type() models.Type
	PropertyName() string
	Name() string
	SiteName() string
	Identifier() *models.Identifier

	// Get returns a copy of a top level field of the property bag.
	Get(key string) any
	// Property returns the property bag as it would be sent on edit.
	Property() wire.Object
	// Envelope wraps Property under the field of the asset type.
	Envelope() wire.Object

	Edit(ctx context.Context) error
	Reload(ctx context.Context) error
}

// Materialize builds the concrete asset for type t from envelope. id is the
// identifier the asset was read with.
func Materialize(svc Service, t models.Type, id *models.Identifier, envelope wire.Object) (Asset, error) {
	a, err := materialize(svc, t, id, envelope)
	if err != nil {
		return nil, &constants.MaterializationError{Type: string(t), Err: err}
	}
	return a, nil
}

func materialize(svc Service, t models.Type, id *models.Identifier, envelope wire.Object) (Asset, error) {
	desc, err := models.ShapeFor(t)
	if err != nil {
		return nil, err
	}
	b, err := newBase(svc, desc, id, envelope)
	if err != nil {
		return nil, err
	}

	switch desc.Shape {
	case models.ShapeTemplate:
		return newTemplate(b)
	case models.ShapeContainer:
		return newContainer(b)
	case models.ShapeBlock:
		return &Block{base: b}, nil
	case models.ShapeFormat:
		return &Format{base: b}, nil
	case models.ShapePageConfigurationSet:
		return newPageConfigurationSet(b)
	default:
		return &Generic{base: b}, nil
	}
}

// Generic is every asset without a dedicated shape.
type Generic struct {
	*base
}

// Set replaces a top level field of the property bag.
func (g *Generic) Set(key string, v any) *Generic {
	g.set(key, v)
	return g
}
