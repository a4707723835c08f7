package pets

import (
	"context"

	"virtual-pet/internal/domain/petstate"
)

// StateOf expone solo el snapshot de estado de una mascota.
// Lo usan módulos que no deben depender de Pet (p.ej. devtools).
func (s *Service) StateOf(ctx context.Context, petID string) (petstate.PetState, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return petstate.PetState{}, err
	}
	return p.State(), nil
}
