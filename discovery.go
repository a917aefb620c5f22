package cascade

import (
	"context"
	"fmt"
	"strings"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
)

// DiscoverType finds the type of the asset with the given id by reading it
// once per discoverable type in a single batch. It returns
// models.TypeUnknown, and no error, when no type matches.
func (s *Service) DiscoverType(ctx context.Context, id string) (models.Type, error) {
	return s.DiscoverTypeAmong(ctx, id, models.DiscoverableTypes()...)
}

// DiscoverTypeAmong is DiscoverType over candidates. Slots are scanned in
// candidate order and the first successful read whose envelope carries the
// field of the slot's type wins. For the abstract block and format types the
// answer is the first concrete type of that category populated in the
// envelope.
func (s *Service) DiscoverTypeAmong(ctx context.Context, id string, candidates ...models.Type) (models.Type, error) {
	if len(candidates) == 0 {
		return models.TypeUnknown, fmt.Errorf("%w: no candidate types", constants.ErrInvalidArgument)
	}
	if strings.TrimSpace(id) == "" {
		return models.TypeUnknown, fmt.Errorf("%w: id is empty", constants.ErrInvalidArgument)
	}

	ops := make([]BatchOperation, 0, len(candidates))
	for _, t := range candidates {
		ident, err := models.CreateIdentifier(t, id)
		if err != nil {
			return models.TypeUnknown, err
		}
		ops = append(ops, BatchRead(ident))
	}

	results, err := s.Batch(ctx, ops...)
	if err != nil && results == nil {
		return models.TypeUnknown, err
	}

	for i, r := range results {
		if i >= len(candidates) {
			break
		}
		if t, ok := matchSlot(candidates[i], r); ok {
			return t, nil
		}
	}
	return models.TypeUnknown, nil
}

func matchSlot(t models.Type, r BatchResult) (models.Type, bool) {
	if !r.IsSuccessful() {
		return models.TypeUnknown, false
	}
	envelope, ok := r.Asset()
	if !ok {
		return models.TypeUnknown, false
	}

	field, err := models.PropertyFieldFor(t)
	if err != nil {
		category := models.CategoryOf(t)
		if category != models.CategoryBlock && category != models.CategoryFormat {
			return models.TypeUnknown, false
		}
		found, ok := models.PopulatedType(envelope)
		if !ok || models.CategoryOf(found) != category {
			return models.TypeUnknown, false
		}
		return found, true
	}

	if envelope[field] == nil {
		return models.TypeUnknown, false
	}
	return t, true
}
