package stream

import (
	"context"

	"virtual-pet/internal/domain/effects"
	"virtual-pet/internal/domain/petstate"
	"virtual-pet/internal/platform/logger"
)

// Nombres de eventos SSE que consume la UI.
const (
	EventActionApplied = "action_applied"
	EventComment       = "comment"
	EventImage         = "image"
	EventAnimate       = "animate"
	EventRevert        = "revert"
	EventSoundStop     = "sound_stop"
	EventSoundPlay     = "sound_play"
)

// Browser es la UI remota de una mascota: implementa Commenter, Canvas y Player
// publicando comandos al topic de esa mascota.
type Browser struct {
	hub   *Hub
	topic string
	log   logger.Logger
}

var (
	_ effects.Commenter = (*Browser)(nil)
	_ effects.Canvas    = (*Browser)(nil)
	_ effects.Player    = (*Browser)(nil)
)

func NewBrowser(hub *Hub, petID string, log logger.Logger) *Browser {
	return &Browser{
		hub:   hub,
		topic: petID,
		log:   logger.OrNop(log).With(logger.Fields{"pet_id": petID}),
	}
}

func (b *Browser) Comment(_ context.Context, text string) {
	b.fireAndForget(EventComment, map[string]string{"text": text})
}

func (b *Browser) SetImage(_ context.Context, src string, overlay bool) {
	b.fireAndForget(EventImage, map[string]any{"src": src, "overlay": overlay})
}

func (b *Browser) AddClass(_ context.Context, a effects.Animation) {
	b.fireAndForget(EventAnimate, map[string]string{"class": string(a)})
}

func (b *Browser) RemoveClass(_ context.Context, a effects.Animation) {
	b.fireAndForget(EventRevert, map[string]string{"class": string(a)})
}

// Play falla con ErrNoAudience si no hay ninguna pestaña escuchando.
func (b *Browser) Play(_ context.Context, s effects.Sound) error {
	return b.hub.Publish(b.topic, EventSoundPlay, map[string]string{"sound": string(s)})
}

func (b *Browser) Stop(_ context.Context, s effects.Sound) error {
	return b.hub.Publish(b.topic, EventSoundStop, map[string]string{"sound": string(s)})
}

func (b *Browser) fireAndForget(event string, data any) {
	_ = b.hub.Publish(b.topic, event, data)
}

// Projector es el View Projector remoto: publica cada acción aplicada con el
// estado ya clampado y el descriptor de efectos.
type Projector struct {
	hub   *Hub
	topic string
}

var _ petstate.Listener = (*Projector)(nil)

func NewProjector(hub *Hub, petID string) *Projector {
	return &Projector{hub: hub, topic: petID}
}

// ActionAppliedPayload es el cuerpo del evento action_applied.
type ActionAppliedPayload struct {
	PetID   string             `json:"pet_id"`
	Action  petstate.Action    `json:"action"`
	State   petstate.PetState  `json:"state"`
	Clamped bool               `json:"clamped"`
	Effects effects.Descriptor `json:"effects"`
}

func (p *Projector) OnActionApplied(_ context.Context, ev petstate.Applied) {
	_ = p.hub.Publish(p.topic, EventActionApplied, ActionAppliedPayload{
		PetID:   p.topic,
		Action:  ev.Action,
		State:   ev.State,
		Clamped: ev.Clamped(),
		Effects: effects.Describe(ev.Action),
	})
}
