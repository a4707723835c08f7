package effects

import (
	"context"

	"virtual-pet/internal/domain/petstate"
)

// Dispatcher conecta el store con los colaboradores de feedback, visual y audio.
// Cualquiera puede ser nil.
type Dispatcher struct {
	Commenter Commenter
	Animator  *Animator
	Mixer     *Mixer
}

var _ petstate.Listener = (*Dispatcher)(nil)

// OnActionApplied dispara comentario, imagen + animación y sonido, en ese orden.
// Cada acción se procesa sin memoria de las anteriores.
func (d *Dispatcher) OnActionApplied(ctx context.Context, ev petstate.Applied) {
	desc := Describe(ev.Action)

	if d.Commenter != nil {
		d.Commenter.Comment(ctx, desc.Comment)
	}
	d.Animator.Show(ctx, desc)
	d.Mixer.PlayFor(ctx, desc)
}
