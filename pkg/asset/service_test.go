package asset_test

import (
	"context"
	"fmt"

	"github.com/cascadews/cascade.go/pkg/asset"
	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

// fakeService keeps envelopes by asset id.
type fakeService struct {
	envelopes  map[string]wire.Object
	types      map[string]models.Type
	edits      []wire.Object
	reads      int
	editFailed string
}

func newFakeService() *fakeService {
	return &fakeService{
		envelopes: map[string]wire.Object{},
		types:     map[string]models.Type{},
	}
}

func (f *fakeService) put(t models.Type, id string, bag wire.Object) {
	field, err := models.PropertyFieldFor(t)
	if err != nil {
		panic(err)
	}
	bag["id"] = id
	f.envelopes[id] = wire.Object{field: bag}
	f.types[id] = t
}

func (f *fakeService) ReadEnvelope(_ context.Context, id *models.Identifier) (wire.Object, error) {
	f.reads++
	env, ok := f.envelopes[id.ID()]
	if !ok {
		return nil, &constants.OperationError{Operation: "read", Message: "Unable to identify an entity based on provided entity path or id"}
	}
	return wire.CloneObject(env), nil
}

func (f *fakeService) EditStrict(_ context.Context, envelope wire.Object) error {
	if f.editFailed != "" {
		return &constants.OperationError{Operation: "edit", Message: f.editFailed}
	}
	f.edits = append(f.edits, wire.CloneObject(envelope))
	for _, field := range wire.Keys(envelope) {
		bag, ok := envelope[field].(wire.Object)
		if !ok {
			continue
		}
		id := wire.StringAt(bag, "id")
		f.envelopes[id] = wire.Object{field: wire.CloneObject(bag)}
	}
	return nil
}

func (f *fakeService) DiscoverTypeAmong(_ context.Context, id string, _ ...models.Type) (models.Type, error) {
	if t, ok := f.types[id]; ok {
		return t, nil
	}
	return models.TypeUnknown, nil
}

func (f *fakeService) GetAsset(ctx context.Context, t models.Type, pathOrID string, siteName ...string) (asset.Asset, error) {
	id, err := models.CreateIdentifier(t, pathOrID, siteName...)
	if err != nil {
		return nil, err
	}
	env, err := f.ReadEnvelope(ctx, id)
	if err != nil {
		return nil, err
	}
	return asset.Materialize(f, t, id, env)
}

func hexID(n int) string {
	return fmt.Sprintf("%032x", n)
}
