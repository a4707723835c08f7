package effects

import (
	"context"
	"fmt"

	"virtual-pet/internal/platform/logger"
)

// Player reproduce y detiene efectos de sonido. Puede fallar (permisos, autoplay);
// el Mixer se traga esos errores.
type Player interface {
	Play(ctx context.Context, s Sound) error
	Stop(ctx context.Context, s Sound) error
}

// Mixer garantiza a lo sumo un sonido sonando: detiene todos y luego inicia uno.
type Mixer struct {
	player Player
	sounds []Sound
	log    logger.Logger
}

func NewMixer(player Player, log logger.Logger) *Mixer {
	return &Mixer{
		player: player,
		sounds: Sounds,
		log:    logger.OrNop(log),
	}
}

// PlayFor detiene todo y reproduce el sonido del descriptor, si tiene.
// Nunca devuelve error ni propaga panics del Player.
func (m *Mixer) PlayFor(ctx context.Context, d Descriptor) {
	if m == nil || m.player == nil {
		return
	}
	for _, s := range m.sounds {
		m.try(ctx, "stop", s, m.player.Stop)
	}
	if d.Sound == SoundNone {
		return
	}
	m.try(ctx, "play", d.Sound, m.player.Play)
}

func (m *Mixer) try(ctx context.Context, op string, s Sound, fn func(context.Context, Sound) error) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Debug("sound "+op+" panicked", logger.Fields{"sound": string(s), "error": fmt.Sprint(r)})
		}
	}()
	if err := fn(ctx, s); err != nil {
		m.log.Debug("sound "+op+" failed", logger.Fields{"sound": string(s), "error": err})
	}
}
