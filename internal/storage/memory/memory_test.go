package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/dongledger/internal/models"
	"github.com/mmynk/dongledger/internal/storage"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := New()

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, storage.ErrNotFound)

	s := models.NewState()
	s.Participants = append(s.Participants, models.Participant{ID: "p1", Name: "Sara"})
	require.NoError(t, store.Save(ctx, s))

	// Later changes to the caller's value are not visible in the store.
	s.Participants[0].Name = "Changed"

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sara", loaded.Participants[0].Name)
	assert.NoError(t, store.Close())
}
