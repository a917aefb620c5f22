package cascade

import (
	"context"
	"fmt"

	"github.com/cascadews/cascade.go/pkg/asset"
	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

var _ asset.Service = (*Service)(nil)

// GetAsset reads the asset addressed by t and pathOrID and materializes it.
// An unsuccessful read is a *constants.OperationError.
func (s *Service) GetAsset(ctx context.Context, t models.Type, pathOrID string, siteName ...string) (asset.Asset, error) {
	if !models.IsKnownType(t) {
		return nil, fmt.Errorf("%w: %q", constants.ErrNoSuchType, t)
	}
	if _, err := models.ShapeFor(t); err != nil {
		return nil, err
	}
	id, err := models.CreateIdentifier(t, pathOrID, siteName...)
	if err != nil {
		return nil, err
	}
	envelope, err := s.ReadEnvelope(ctx, id)
	if err != nil {
		return nil, err
	}
	return asset.Materialize(s, t, id, envelope)
}

// ReadEnvelope is Read in strict mode.
func (s *Service) ReadEnvelope(ctx context.Context, id *models.Identifier) (wire.Object, error) {
	ident, err := identifierParam(id)
	if err != nil {
		return nil, err
	}
	ret, err := s.callObject(ctx, opRead, wire.Object{"identifier": ident})
	if err != nil {
		return nil, err
	}
	if err := strict(opRead, ret); err != nil {
		return nil, err
	}
	envelope, ok := wire.ObjectAt(ret, "asset")
	if !ok {
		return nil, fmt.Errorf("%w: read of %s returned no asset", constants.ErrUnexpectedShape, id)
	}
	return envelope, nil
}
