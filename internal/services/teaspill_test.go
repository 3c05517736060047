package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchparty/internal/domain"
)

// fakeTeaSpillRepo implements domain.TeaSpillRepository for tests.
type fakeTeaSpillRepo struct {
	entries []*domain.TeaSpill
	addErr  error
}

func (f *fakeTeaSpillRepo) Add(ctx context.Context, entry *domain.TeaSpill) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.entries = append([]*domain.TeaSpill{entry}, f.entries...)
	if len(f.entries) > domain.TeaSpillCap {
		f.entries = f.entries[:domain.TeaSpillCap]
	}
	return nil
}

func (f *fakeTeaSpillRepo) List(ctx context.Context) ([]*domain.TeaSpill, error) {
	return f.entries, nil
}

func TestTeaSpillService_Post(t *testing.T) {
	ctx := context.Background()

	t.Run("applies default alias", func(t *testing.T) {
		repo := &fakeTeaSpillRepo{}
		svc := NewTeaSpillService(repo, time.Second)

		entry, err := svc.Post(ctx, "  I saw Colin at the modiste.  ", "")
		require.NoError(t, err)
		assert.Equal(t, "I saw Colin at the modiste.", entry.Content)
		assert.Equal(t, domain.DefaultTeaSpillAlias, entry.Alias)
		assert.NotEmpty(t, entry.ID)
		assert.Zero(t, entry.Likes)
	})

	t.Run("keeps provided alias", func(t *testing.T) {
		svc := NewTeaSpillService(&fakeTeaSpillRepo{}, time.Second)
		entry, err := svc.Post(ctx, "tea", "Lady W")
		require.NoError(t, err)
		assert.Equal(t, "Lady W", entry.Alias)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		repo := &fakeTeaSpillRepo{}
		svc := NewTeaSpillService(repo, time.Second)

		_, err := svc.Post(ctx, "   ", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, repo.entries)
	})

	t.Run("length limit is 500 characters", func(t *testing.T) {
		svc := NewTeaSpillService(&fakeTeaSpillRepo{}, time.Second)

		_, err := svc.Post(ctx, strings.Repeat("a", 501), "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		entry, err := svc.Post(ctx, strings.Repeat("a", 500), "")
		require.NoError(t, err)
		assert.Len(t, entry.Content, 500)
	})

	t.Run("limit counts runes not bytes", func(t *testing.T) {
		svc := NewTeaSpillService(&fakeTeaSpillRepo{}, time.Second)
		_, err := svc.Post(ctx, strings.Repeat("🍵", 500), "")
		assert.NoError(t, err)
	})
}

func TestTeaSpillService_List(t *testing.T) {
	repo := &fakeTeaSpillRepo{}
	svc := NewTeaSpillService(repo, time.Second)

	for _, content := range []string{"first", "second", "third"} {
		_, err := svc.Post(context.Background(), content, "")
		require.NoError(t, err)
	}

	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Content)
	assert.Equal(t, "first", entries[2].Content)
}
