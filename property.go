package cascade

import (
	"context"
	"fmt"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

// ReadProperty reads id and keeps the named field of the asset envelope when
// the read succeeds. field is one of models.Properties().
func (s *Service) ReadProperty(ctx context.Context, field string, id *models.Identifier) (wire.Object, error) {
	if !models.IsProperty(field) {
		return nil, fmt.Errorf("%w: %q", constants.ErrNoSuchProperty, field)
	}
	envelope, err := s.Read(ctx, id)
	if err != nil || envelope == nil {
		return nil, err
	}
	prop, ok := wire.ObjectAt(envelope, field)
	if !ok {
		return nil, nil
	}

	s.mu.Lock()
	s.properties[field] = prop
	s.mu.Unlock()
	return wire.CloneObject(prop), nil
}

// Property returns the field last kept by ReadProperty, nil when none was.
func (s *Service) Property(field string) (wire.Object, error) {
	if !models.IsProperty(field) {
		return nil, fmt.Errorf("%w: %q", constants.ErrNoSuchProperty, field)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return wire.CloneObject(s.properties[field]), nil
}
