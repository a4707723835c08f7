package stream

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-pet/internal/domain/effects"
	"virtual-pet/internal/domain/petstate"
)

func TestHub_PublishFansOutPerTopic(t *testing.T) {
	hub := NewHub(nil)

	a1 := hub.Subscribe("pet-a")
	a2 := hub.Subscribe("pet-a")
	b := hub.Subscribe("pet-b")
	defer hub.Unsubscribe("pet-a", a1)
	defer hub.Unsubscribe("pet-a", a2)
	defer hub.Unsubscribe("pet-b", b)

	require.NoError(t, hub.Publish("pet-a", EventComment, map[string]string{"text": "hi"}))

	want := "event: comment\ndata: {\"text\":\"hi\"}\n\n"
	for i, ch := range []chan []byte{a1, a2} {
		select {
		case got := <-ch:
			assert.Equal(t, want, string(got), "subscriber %d", i)
		default:
			t.Fatalf("subscriber %d got nothing", i)
		}
	}

	assert.Empty(t, b, "pet-b should not receive pet-a events")
}

func TestHub_NoAudience(t *testing.T) {
	hub := NewHub(nil)
	assert.ErrorIs(t, hub.Publish("nobody", EventSoundPlay, nil), ErrNoAudience)
}

func TestHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub(nil)
	slow := hub.Subscribe("p")
	defer hub.Unsubscribe("p", slow)

	for i := 0; i < subscriberBuffer+10; i++ {
		require.NoError(t, hub.Publish("p", EventAnimate, i), "publish %d", i)
	}
	assert.Len(t, slow, subscriberBuffer)
}

func TestHub_UnsubscribeIsIdempotent(t *testing.T) {
	hub := NewHub(nil)
	ch := hub.Subscribe("p")
	hub.Unsubscribe("p", ch)
	hub.Unsubscribe("p", ch)

	_, ok := <-ch
	assert.False(t, ok, "expected closed channel")
	assert.Zero(t, hub.Subscribers("p"))
}

func TestBrowser_PlayWithoutListenersFails(t *testing.T) {
	hub := NewHub(nil)
	b := NewBrowser(hub, "p", nil)

	assert.ErrorIs(t, b.Play(context.Background(), effects.SoundEat), ErrNoAudience)

	// el mixer se traga el error
	m := effects.NewMixer(b, nil)
	assert.NotPanics(t, func() {
		m.PlayFor(context.Background(), effects.Describe(petstate.ActionTreat))
	})
}

func TestProjector_PublishesClampedState(t *testing.T) {
	hub := NewHub(nil)
	ch := hub.Subscribe("p")
	defer hub.Unsubscribe("p", ch)

	store := petstate.NewStore(NewProjector(hub, "p"))
	require.NoError(t, store.Initialize("Pico", 0, 0, 0))
	_, err := store.Dispatch(context.Background(), petstate.ActionDelta{Action: petstate.ActionSleep, Energy: -2})
	require.NoError(t, err)

	raw := string(<-ch)
	require.True(t, strings.HasPrefix(raw, "event: action_applied\ndata: "), "unexpected frame %q", raw)
	data := strings.TrimSuffix(strings.TrimPrefix(raw, "event: action_applied\ndata: "), "\n\n")

	var got ActionAppliedPayload
	require.NoError(t, json.Unmarshal([]byte(data), &got))
	assert.Equal(t, 0, got.State.Energy)
	assert.True(t, got.Clamped)
	assert.Equal(t, effects.KindSleep, got.Effects.Kind)
	assert.Equal(t, effects.SoundNone, got.Effects.Sound)
	assert.True(t, got.Effects.Overlay)
}
