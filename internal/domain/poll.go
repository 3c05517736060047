package domain

import (
	"context"
	"errors"
)

var ErrPollNotFound = errors.New("poll not found")

// Poll is a multiple-choice poll. Votes always has the same length as
// Options; counters only ever increase.
// swagger:model Poll
type Poll struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Votes    []int64  `json:"votes"`
}

// PollRepository defines storage for polls.
type PollRepository interface {
	List(ctx context.Context) ([]*Poll, error)
	GetByID(ctx context.Context, id string) (*Poll, error)
	// IncrementVote adds one vote to the given option. The index has
	// already been range-checked against the poll's options.
	IncrementVote(ctx context.Context, pollID string, optionIndex int) error
	// Seed inserts the given polls if they are not already present.
	Seed(ctx context.Context, polls []*Poll) error
}

// PollService defines poll listing and voting.
type PollService interface {
	List(ctx context.Context) ([]*Poll, error)
	// Vote increments exactly one option counter and returns the updated
	// poll set. Unknown poll or out-of-range option yields ErrInvalidInput
	// with no mutation.
	Vote(ctx context.Context, pollID string, optionIndex int) ([]*Poll, error)
}
