package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchparty/internal/domain"
)

// fakeTeaSpillService implements domain.TeaSpillService for handler tests.
type fakeTeaSpillService struct {
	entries []*domain.TeaSpill
}

func (f *fakeTeaSpillService) List(ctx context.Context) ([]*domain.TeaSpill, error) {
	return f.entries, nil
}

func (f *fakeTeaSpillService) Post(ctx context.Context, content, alias string) (*domain.TeaSpill, error) {
	content = strings.TrimSpace(content)
	if content == "" || len([]rune(content)) > domain.TeaSpillMaxContent {
		return nil, fmt.Errorf("invalid content: %w", domain.ErrInvalidInput)
	}
	if alias == "" {
		alias = domain.DefaultTeaSpillAlias
	}
	entry := &domain.TeaSpill{ID: "ts-1", Content: content, Alias: alias}
	f.entries = append([]*domain.TeaSpill{entry}, f.entries...)
	return entry, nil
}

func TestTeaSpillController_Get(t *testing.T) {
	svc := &fakeTeaSpillService{entries: []*domain.TeaSpill{{ID: "ts-1", Content: "tea", Alias: "Lady W"}}}
	ctrl := NewTeaSpillController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/api/teaspill", nil)
	rec := httptest.NewRecorder()
	ctrl.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp TeaSpillListResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "tea", resp.Entries[0].Content)
}

func TestTeaSpillController_Post(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := NewTeaSpillController(testLogger(), &fakeTeaSpillService{})
		rec := postJSON(t, ctrl.Post, "/api/teaspill", TeaSpillPostRequest{Content: "I saw Colin at the modiste."})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp TeaSpillPostResponse
		decodeBody(t, rec, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, domain.DefaultTeaSpillAlias, resp.Entry.Alias)
	})

	t.Run("empty content", func(t *testing.T) {
		ctrl := NewTeaSpillController(testLogger(), &fakeTeaSpillService{})
		rec := postJSON(t, ctrl.Post, "/api/teaspill", TeaSpillPostRequest{Content: "   "})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "One cannot spill empty tea, darling.")
	})

	t.Run("501 characters rejected", func(t *testing.T) {
		ctrl := NewTeaSpillController(testLogger(), &fakeTeaSpillService{})
		rec := postJSON(t, ctrl.Post, "/api/teaspill", TeaSpillPostRequest{Content: strings.Repeat("a", 501)})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "under 500 characters")
	})

	t.Run("500 characters accepted", func(t *testing.T) {
		ctrl := NewTeaSpillController(testLogger(), &fakeTeaSpillService{})
		rec := postJSON(t, ctrl.Post, "/api/teaspill", TeaSpillPostRequest{Content: strings.Repeat("a", 500)})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
