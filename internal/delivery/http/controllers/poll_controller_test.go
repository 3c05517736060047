package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchparty/internal/domain"
)

// fakePollService implements domain.PollService for handler tests.
type fakePollService struct {
	polls   []*domain.Poll
	voteErr error
}

func (f *fakePollService) List(ctx context.Context) ([]*domain.Poll, error) {
	return f.polls, nil
}

func (f *fakePollService) Vote(ctx context.Context, pollID string, optionIndex int) ([]*domain.Poll, error) {
	if f.voteErr != nil {
		return nil, f.voteErr
	}
	for _, p := range f.polls {
		if p.ID == pollID {
			if optionIndex < 0 || optionIndex >= len(p.Options) {
				return nil, fmt.Errorf("out of range: %w", domain.ErrInvalidInput)
			}
			p.Votes[optionIndex]++
			return f.polls, nil
		}
	}
	return nil, fmt.Errorf("unknown poll: %w", domain.ErrInvalidInput)
}

func pollFixture() *fakePollService {
	return &fakePollService{polls: []*domain.Poll{
		{ID: "diamond", Question: "Who?", Options: []string{"Kate", "Penelope"}, Votes: []int64{0, 0}},
	}}
}

func TestPollController_Get(t *testing.T) {
	ctrl := NewPollController(testLogger(), pollFixture())
	req := httptest.NewRequest(http.MethodGet, "/api/polls", nil)
	rec := httptest.NewRecorder()
	ctrl.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp PollsResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Polls, 1)
	assert.Equal(t, "diamond", resp.Polls[0].ID)
}

func TestPollController_Vote(t *testing.T) {
	t.Run("success returns updated polls", func(t *testing.T) {
		idx := 1
		ctrl := NewPollController(testLogger(), pollFixture())
		rec := postJSON(t, ctrl.Vote, "/api/polls", VoteRequest{PollID: "diamond", OptionIndex: &idx})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp PollsResponse
		decodeBody(t, rec, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, []int64{0, 1}, resp.Polls[0].Votes)
	})

	t.Run("option index zero is a valid vote", func(t *testing.T) {
		idx := 0
		svc := pollFixture()
		ctrl := NewPollController(testLogger(), svc)
		rec := postJSON(t, ctrl.Vote, "/api/polls", VoteRequest{PollID: "diamond", OptionIndex: &idx})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []int64{1, 0}, svc.polls[0].Votes)
	})

	t.Run("missing option index", func(t *testing.T) {
		ctrl := NewPollController(testLogger(), pollFixture())
		rec := postJSON(t, ctrl.Vote, "/api/polls", VoteRequest{PollID: "diamond"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing pollId or optionIndex.")
	})

	t.Run("unknown poll", func(t *testing.T) {
		idx := 0
		ctrl := NewPollController(testLogger(), pollFixture())
		rec := postJSON(t, ctrl.Vote, "/api/polls", VoteRequest{PollID: "nonesuch", OptionIndex: &idx})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid poll or option.")
	})

	t.Run("out-of-range option", func(t *testing.T) {
		idx := 9
		ctrl := NewPollController(testLogger(), pollFixture())
		rec := postJSON(t, ctrl.Vote, "/api/polls", VoteRequest{PollID: "diamond", OptionIndex: &idx})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
