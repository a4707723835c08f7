package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-pet/internal/domain/pets"
	"virtual-pet/internal/domain/petstate"
)

func TestPetRepo_CreateGetList(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()
	t0 := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"b", "a", "c"} {
		p := pets.Pet{ID: id, CreatedAt: t0.Add(time.Duration(i) * time.Minute), Store: petstate.NewStore()}
		require.NoError(t, repo.Create(ctx, p), "create %s", id)
	}

	assert.Error(t, repo.Create(ctx, pets.Pet{ID: "a", Store: petstate.NewStore()}), "duplicate id")
	assert.Error(t, repo.Create(ctx, pets.Pet{ID: " "}), "blank id")

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)

	_, err = repo.GetByID(ctx, "zzz")
	assert.ErrorIs(t, err, pets.ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{list[0].ID, list[1].ID, list[2].ID})
}
