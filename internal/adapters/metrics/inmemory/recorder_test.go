package inmemory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-pet/internal/domain/petstate"
)

func TestRecorder_CountsByKindAndClamp(t *testing.T) {
	r := NewRecorder()
	ctx := context.Background()

	r.OnActionApplied(ctx, petstate.Applied{Action: petstate.ActionTreat})
	r.OnActionApplied(ctx, petstate.Applied{Action: "pet"})
	r.OnActionApplied(ctx, petstate.Applied{
		Action:    petstate.ActionExercise,
		Unclamped: petstate.PetState{Energy: -1},
		State:     petstate.PetState{Energy: 0},
	})

	s := r.Snapshot()
	assert.Equal(t, uint64(3), s.ActionTotal)
	assert.Equal(t, uint64(1), s.ActionClamped)
	assert.Equal(t, map[string]uint64{"treat": 1, "other": 1, "exercise": 1}, s.ByKind)
	assert.Equal(t, map[string]uint64{"treat": 1, "other": 1, "exercise": 1}, s.ByAction)
}

func TestRecorder_UnknownActionsShareOneKey(t *testing.T) {
	r := NewRecorder()
	ctx := context.Background()

	for i := 0; i < 10_000; i++ {
		r.OnActionApplied(ctx, petstate.Applied{Action: petstate.Action(fmt.Sprintf("junk-%d", i))})
	}
	r.OnActionApplied(ctx, petstate.Applied{Action: ""})
	r.OnActionApplied(ctx, petstate.Applied{Action: petstate.ActionSleep})

	s := r.Snapshot()
	require.Len(t, s.ByAction, 2)
	assert.Equal(t, uint64(10_001), s.ByAction["other"])
	assert.Equal(t, uint64(1), s.ByAction["sleep"])
	assert.Len(t, s.ByKind, 2)
}

func TestRecorder_SnapshotIsACopy(t *testing.T) {
	r := NewRecorder()
	r.OnActionApplied(context.Background(), petstate.Applied{Action: petstate.ActionPlay})

	s := r.Snapshot()
	s.ByKind["play"] = 99

	assert.Equal(t, uint64(1), r.Snapshot().ByKind["play"])
}
