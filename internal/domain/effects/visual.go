package effects

import (
	"context"
	"time"
)

// DefaultRevertAfter es cuánto dura la clase de animación antes de quitarse.
const DefaultRevertAfter = 600 * time.Millisecond

// Canvas es la vista donde se dibuja la mascota.
type Canvas interface {
	SetImage(ctx context.Context, src string, overlay bool)
	AddClass(ctx context.Context, a Animation)
	RemoveClass(ctx context.Context, a Animation)
}

// Animator agrega la clase de animación y agenda su remoción.
//
// Es fire-and-forget: no cancela reverts pendientes, así que si la misma animación
// se dispara dos veces dentro de RevertAfter, el primer revert puede quitar la clase
// antes de tiempo. Aceptado para un efecto puramente visual.
type Animator struct {
	canvas      Canvas
	revertAfter time.Duration
	after       func(d time.Duration, f func())
}

func NewAnimator(canvas Canvas, revertAfter time.Duration) *Animator {
	if revertAfter <= 0 {
		revertAfter = DefaultRevertAfter
	}
	return &Animator{
		canvas:      canvas,
		revertAfter: revertAfter,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// Show actualiza imagen/overlay y corre la animación del descriptor.
func (a *Animator) Show(ctx context.Context, d Descriptor) {
	if a == nil || a.canvas == nil {
		return
	}
	a.canvas.SetImage(ctx, d.Image, d.Overlay)

	if d.Animation == "" {
		return
	}
	a.canvas.AddClass(ctx, d.Animation)

	// el request ya terminó cuando corre el revert
	revertCtx := context.WithoutCancel(ctx)
	a.after(a.revertAfter, func() {
		a.canvas.RemoveClass(revertCtx, d.Animation)
	})
}
