package petstate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_InitializeOnce(t *testing.T) {
	s := NewStore()
	require.False(t, s.Initialized())
	require.NoError(t, s.Initialize("Pico", 5, 5, 5))

	err := s.Initialize("Other", 1, 1, 1)
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
	assert.Equal(t, PetState{Name: "Pico", Weight: 5, Happiness: 5, Energy: 5}, s.Current())
}

func TestStore_InitializeClamps(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Initialize("Pico", -1, 2, -3))
	assert.Equal(t, PetState{Name: "Pico", Happiness: 2}, s.Current())
}

func TestStore_DispatchBeforeInitialize(t *testing.T) {
	s := NewStore()
	_, err := s.Dispatch(context.Background(), ActionDelta{Action: ActionTreat, Weight: 1})
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestStore_DispatchClampsAndNotifies(t *testing.T) {
	var got []Applied
	s := NewStore(ListenerFunc(func(_ context.Context, ev Applied) {
		got = append(got, ev)
	}))
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return now }
	require.NoError(t, s.Initialize("Pico", 0, 0, 0))

	ev, err := s.Dispatch(context.Background(), ActionDelta{Action: ActionExercise, Weight: -3, Happiness: -1, Energy: -5})
	require.NoError(t, err)

	assert.Equal(t, PetState{Name: "Pico", Weight: -3, Happiness: -1, Energy: -5}, ev.Unclamped)
	assert.Equal(t, PetState{Name: "Pico"}, ev.State)
	assert.True(t, ev.Clamped())
	assert.Equal(t, now, ev.At)
	assert.Equal(t, ev.State, s.Current())

	require.Len(t, got, 1)
	assert.Equal(t, ActionExercise, got[0].Action)
	assert.Equal(t, ev.State, got[0].State)
}

func TestStore_ListenerSeesCommittedState(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Initialize("Pico", 5, 5, 5))

	var seen PetState
	s.Subscribe(ListenerFunc(func(_ context.Context, ev Applied) {
		seen = s.Current()
	}))

	ev, err := s.Dispatch(context.Background(), ActionDelta{Action: ActionTreat, Happiness: 2, Weight: -1})
	require.NoError(t, err)
	assert.Equal(t, ev.State, seen)
	assert.False(t, ev.Clamped())
}

func TestStore_NameNeverChanges(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Initialize("Pico", 5, 5, 5))
	for _, a := range []Action{ActionTreat, ActionPlay, ActionExercise, ActionSleep, "rename"} {
		_, err := s.Dispatch(context.Background(), ActionDelta{Action: a, Weight: -100})
		require.NoError(t, err)
		assert.Equal(t, "Pico", s.Current().Name)
	}
}

func TestStore_ConcurrentDispatchStaysNonNegative(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Initialize("Pico", 5, 5, 5))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				delta := 1
				if (i+j)%2 == 0 {
					delta = -3
				}
				ev, err := s.Dispatch(context.Background(), ActionDelta{Weight: delta, Happiness: delta, Energy: delta})
				assert.NoError(t, err)
				assert.True(t, Valid(ev.State))
			}
		}(i)
	}
	wg.Wait()
	assert.True(t, Valid(s.Current()))
}

func TestStore_SubscribeFromListenerDoesNotBlock(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Initialize("Pico", 5, 5, 5))

	var late int
	subscribed := false
	s.Subscribe(ListenerFunc(func(context.Context, Applied) {
		if subscribed {
			return
		}
		subscribed = true
		s.Subscribe(ListenerFunc(func(context.Context, Applied) { late++ }))
	}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.Dispatch(context.Background(), ActionDelta{Action: ActionPlay})
		_, _ = s.Dispatch(context.Background(), ActionDelta{Action: ActionPlay})
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked on Subscribe from a listener")
	}
	// el listener agregado durante la primera notificación solo ve la segunda
	assert.Equal(t, 1, late)
}
