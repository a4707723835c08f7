package devtools

import (
	"context"
	"math/rand/v2"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"virtual-pet/internal/platform/logger"
)

const DefaultTickInterval = time.Second

// Timer es el demo de "call stack": cada tick llama tick -> workA -> workB.
// Start con el timer corriendo y Stop con el timer parado son no-ops.
type Timer struct {
	journal  *Journal
	log      logger.Logger
	interval time.Duration
	randN    func(n int) int

	counter atomic.Int64 // no se resetea entre Start/Stop

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewTimer(journal *Journal, interval time.Duration, log logger.Logger) *Timer {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Timer{
		journal:  journal,
		log:      logger.OrNop(log),
		interval: interval,
		randN:    rand.IntN,
	}
}

// Start arranca el loop. Devuelve false si ya estaba corriendo.
func (t *Timer) Start() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	t.cancel = cancel
	t.done = done

	t.journal.Log("Timer started")
	go t.loop(ctx, done)
	return true
}

// Stop detiene el loop y espera a que termine. Devuelve false si no estaba corriendo.
func (t *Timer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel == nil {
		return false
	}
	t.cancel()
	<-t.done
	t.cancel = nil
	t.done = nil

	t.journal.Log("Timer stopped")
	return true
}

func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

// Ticks devuelve cuántos ticks corrieron desde que se creó el timer.
func (t *Timer) Ticks() int64 {
	return t.counter.Load()
}

func (t *Timer) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.tick()
		}
	}
}

func (t *Timer) tick() {
	n := t.counter.Add(1)
	t.workA(n)
}

// workA: buen lugar para un breakpoint condicional (counter % 5 == 0).
func (t *Timer) workA(counter int64) {
	t.workB(counter * 2)
}

func (t *Timer) workB(value int64) {
	computed := value + int64(t.randN(10))
	if computed%7 == 0 {
		t.journal.Log("Lucky seven hit: " + strconv.FormatInt(computed, 10))
	} else {
		t.journal.Log("Tick value: " + strconv.FormatInt(computed, 10))
	}
	t.log.Debug("devtools tick", logger.Fields{"value": computed})
}
