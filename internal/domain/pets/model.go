package pets

import (
	"time"

	"virtual-pet/internal/domain/petstate"
)

// Pet es una sesión de mascota virtual. Cada sesión es dueña de su propio store;
// nada más puede mutar el estado salvo a través de Store.Dispatch.
type Pet struct {
	ID        string
	CreatedAt time.Time

	Store *petstate.Store
}

// State devuelve un snapshot del estado actual.
func (p Pet) State() petstate.PetState {
	if p.Store == nil {
		return petstate.PetState{}
	}
	return p.Store.Current()
}
