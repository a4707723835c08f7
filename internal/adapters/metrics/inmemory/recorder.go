package inmemory

import (
	"context"
	"sync"

	"virtual-pet/internal/domain/effects"
	"virtual-pet/internal/domain/petstate"
)

type Snapshot struct {
	ActionTotal   uint64            `json:"action_total"`
	ActionClamped uint64            `json:"action_clamped"`
	ByKind        map[string]uint64 `json:"by_kind"`
	ByAction      map[string]uint64 `json:"by_action"`
}

// Recorder cuenta acciones aplicadas. Se registra como listener en cada store.
type Recorder struct {
	mu       sync.Mutex
	total    uint64
	clamped  uint64
	byKind   map[effects.Kind]uint64
	byAction map[petstate.Action]uint64 // solo acciones conocidas + otherAction
}

var _ petstate.Listener = (*Recorder)(nil)

// otherAction agrupa nombres desconocidos: el nombre lo manda el cliente y no tiene cota.
const otherAction petstate.Action = "other"

func NewRecorder() *Recorder {
	return &Recorder{
		byKind:   map[effects.Kind]uint64{},
		byAction: map[petstate.Action]uint64{},
	}
}

func (r *Recorder) OnActionApplied(_ context.Context, ev petstate.Applied) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.total++
	if ev.Clamped() {
		r.clamped++
	}
	kind := effects.Classify(ev.Action)
	r.byKind[kind]++
	r.byAction[actionKey(ev.Action, kind)]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionTotal:   r.total,
		ActionClamped: r.clamped,
		ByKind:        make(map[string]uint64, len(r.byKind)),
		ByAction:      make(map[string]uint64, len(r.byAction)),
	}
	for k, v := range r.byKind {
		out.ByKind[string(k)] = v
	}
	for k, v := range r.byAction {
		out.ByAction[string(k)] = v
	}
	return out
}

func actionKey(a petstate.Action, k effects.Kind) petstate.Action {
	if k == effects.KindOther {
		return otherAction
	}
	return a
}
