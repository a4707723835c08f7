package petstate

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"
)

var (
	ErrAlreadyInitialized = errors.New("pet state already initialized")
	ErrNotInitialized     = errors.New("pet state not initialized")
)

// Applied es la notificación "acción aplicada" que reciben los listeners.
// Unclamped es el resultado de Apply antes de Clamp; State es lo publicado.
type Applied struct {
	Action    Action
	Delta     ActionDelta
	Before    PetState
	Unclamped PetState
	State     PetState
	At        time.Time
}

// Clamped indica si Clamp tuvo que reparar algún atributo.
func (a Applied) Clamped() bool {
	return a.Unclamped != a.State
}

// Listener observa acciones aplicadas. Recibe snapshots, nunca el estado vivo.
// Puede leer el store (Current) y llamar a Subscribe, pero no a Dispatch sobre el mismo store.
type Listener interface {
	OnActionApplied(ctx context.Context, ev Applied)
}

type ListenerFunc func(ctx context.Context, ev Applied)

func (f ListenerFunc) OnActionApplied(ctx context.Context, ev Applied) { f(ctx, ev) }

// Store es el dueño exclusivo de un PetState.
// La única forma de mutarlo es Dispatch, que corre apply -> clamp -> commit -> notify
// como una unidad serializada.
type Store struct {
	dispatchMu sync.Mutex // serializa Dispatch completo (incluye notify)

	mu    sync.RWMutex // protege state/ready
	state PetState
	ready bool

	lmu       sync.Mutex // protege listeners
	listeners []Listener

	now func() time.Time
}

func NewStore(listeners ...Listener) *Store {
	return &Store{
		listeners: listeners,
		now:       time.Now,
	}
}

// Subscribe agrega un listener. Seguro de llamar en cualquier momento, incluso
// desde una notificación; el nuevo listener recibe a partir de la próxima acción.
func (s *Store) Subscribe(l Listener) {
	if l == nil {
		return
	}
	s.lmu.Lock()
	defer s.lmu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Initialize fija el estado inicial. Solo se permite una vez por store:
// llamadas posteriores devuelven ErrAlreadyInitialized y no tocan el estado.
// Los valores iniciales también se clampan.
func (s *Store) Initialize(name string, weight, happiness, energy int) error {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return ErrAlreadyInitialized
	}
	s.state = Clamp(PetState{
		Name:      name,
		Weight:    weight,
		Happiness: happiness,
		Energy:    energy,
	})
	s.ready = true
	return nil
}

// Current devuelve una copia del estado. Antes de Initialize devuelve el zero value.
func (s *Store) Current() PetState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Dispatch aplica el delta, clampa, publica el nuevo estado y notifica a los listeners.
func (s *Store) Dispatch(ctx context.Context, d ActionDelta) (Applied, error) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	if !s.ready {
		s.mu.Unlock()
		return Applied{}, ErrNotInitialized
	}
	before := s.state
	raw := Apply(before, d)
	next := Clamp(raw)
	s.state = next
	s.mu.Unlock()

	ev := Applied{
		Action:    d.Action,
		Delta:     d,
		Before:    before,
		Unclamped: raw,
		State:     next,
		At:        s.now(),
	}

	s.lmu.Lock()
	listeners := slices.Clone(s.listeners)
	s.lmu.Unlock()

	for _, l := range listeners {
		l.OnActionApplied(ctx, ev)
	}
	return ev, nil
}
