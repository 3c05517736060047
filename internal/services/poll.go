package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"watchparty/internal/domain"
)

type pollService struct {
	pollRepo       domain.PollRepository
	contextTimeout time.Duration
}

// NewPollService creates a PollService backed by the given repository.
func NewPollService(pollRepo domain.PollRepository, timeout time.Duration) domain.PollService {
	return &pollService{pollRepo: pollRepo, contextTimeout: timeout}
}

func (s *pollService) List(ctx context.Context) ([]*domain.Poll, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	polls, err := s.pollRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	return polls, nil
}

func (s *pollService) Vote(ctx context.Context, pollID string, optionIndex int) ([]*domain.Poll, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if pollID == "" {
		return nil, fmt.Errorf("pollId is required: %w", domain.ErrInvalidInput)
	}

	poll, err := s.pollRepo.GetByID(ctx, pollID)
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			return nil, fmt.Errorf("unknown poll %q: %w", pollID, domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to load poll: %w", err)
	}
	if optionIndex < 0 || optionIndex >= len(poll.Options) {
		return nil, fmt.Errorf("option index %d out of range: %w", optionIndex, domain.ErrInvalidInput)
	}

	if err := s.pollRepo.IncrementVote(ctx, pollID, optionIndex); err != nil {
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}

	polls, err := s.pollRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	return polls, nil
}

// DefaultPolls returns the seeded poll set for the event. Vote counters
// start at zero; Seed leaves existing rows untouched.
func DefaultPolls() []*domain.Poll {
	return []*domain.Poll{
		{
			ID:       "diamond",
			Question: "💎 Who shall be declared the Diamond of this Season?",
			Options:  []string{"Daphne Bridgerton", "Kate Sharma", "Penelope Featherington", "Queen Charlotte", "Eloise Bridgerton"},
		},
		{
			ID:       "couple",
			Question: "💕 Which couple reigns supreme?",
			Options:  []string{"Anthony & Kate", "Benedict & Sophie", "Colin & Penelope", "Daphne & Simon", "Eloise & Theo"},
		},
		{
			ID:       "scandal",
			Question: "🫖 What shall be the biggest scandal of Part Two?",
			Options:  []string{"A secret wedding", "A duel at dawn", "An unexpected heir", "A ruined reputation", "A stolen kiss at the ball"},
		},
		{
			ID:       "cry",
			Question: "😭 Who shall cry first during the finale?",
			Options:  []string{"Ishmeen", "Khushi", "Vishal", "Rishika", "Everyone simultaneously"},
		},
	}
}
