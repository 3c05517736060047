package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchparty/internal/domain"
)

// fakePredictionRepo implements domain.PredictionRepository for tests.
type fakePredictionRepo struct {
	entries []*domain.Prediction
}

func (f *fakePredictionRepo) Add(ctx context.Context, entry *domain.Prediction) error {
	f.entries = append([]*domain.Prediction{entry}, f.entries...)
	if len(f.entries) > domain.PredictionCap {
		f.entries = f.entries[:domain.PredictionCap]
	}
	return nil
}

func (f *fakePredictionRepo) List(ctx context.Context) ([]*domain.Prediction, error) {
	return f.entries, nil
}

func TestPredictionService_Post(t *testing.T) {
	ctx := context.Background()

	t.Run("applies defaults", func(t *testing.T) {
		svc := NewPredictionService(&fakePredictionRepo{}, time.Second)

		entry, err := svc.Post(ctx, "", "Penelope is revealed", "")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultPredictionName, entry.Name)
		assert.Equal(t, domain.DefaultPredictionCategory, entry.Category)
		assert.Equal(t, "Penelope is revealed", entry.Prediction)
		assert.Nil(t, entry.Correct)
		assert.NotEmpty(t, entry.ID)
	})

	t.Run("keeps provided fields", func(t *testing.T) {
		svc := NewPredictionService(&fakePredictionRepo{}, time.Second)

		entry, err := svc.Post(ctx, " Eloise ", "A duel at dawn", "scandal")
		require.NoError(t, err)
		assert.Equal(t, "Eloise", entry.Name)
		assert.Equal(t, "scandal", entry.Category)
	})

	t.Run("empty prediction rejected", func(t *testing.T) {
		repo := &fakePredictionRepo{}
		svc := NewPredictionService(repo, time.Second)

		_, err := svc.Post(ctx, "Eloise", "   ", "general")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, repo.entries)
	})
}

func TestPredictionService_List(t *testing.T) {
	repo := &fakePredictionRepo{}
	svc := NewPredictionService(repo, time.Second)

	_, err := svc.Post(context.Background(), "", "old", "")
	require.NoError(t, err)
	_, err = svc.Post(context.Background(), "", "new", "")
	require.NoError(t, err)

	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "new", entries[0].Prediction)
}
