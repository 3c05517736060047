package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"watchparty/internal/domain"
)

type teaSpillService struct {
	teaSpillRepo   domain.TeaSpillRepository
	contextTimeout time.Duration
}

// NewTeaSpillService creates a TeaSpillService backed by the given repository.
func NewTeaSpillService(teaSpillRepo domain.TeaSpillRepository, timeout time.Duration) domain.TeaSpillService {
	return &teaSpillService{teaSpillRepo: teaSpillRepo, contextTimeout: timeout}
}

func (s *teaSpillService) List(ctx context.Context) ([]*domain.TeaSpill, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	entries, err := s.teaSpillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tea spills: %w", err)
	}
	return entries, nil
}

func (s *teaSpillService) Post(ctx context.Context, content, alias string) (*domain.TeaSpill, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("one cannot spill empty tea: %w", domain.ErrInvalidInput)
	}
	if len([]rune(content)) > domain.TeaSpillMaxContent {
		return nil, fmt.Errorf("tea spill exceeds %d characters: %w", domain.TeaSpillMaxContent, domain.ErrInvalidInput)
	}
	alias = strings.TrimSpace(alias)
	if alias == "" {
		alias = domain.DefaultTeaSpillAlias
	}

	entry := &domain.TeaSpill{
		ID:        uuid.NewString(),
		Content:   content,
		Alias:     alias,
		Likes:     0,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.teaSpillRepo.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save tea spill: %w", err)
	}
	return entry, nil
}
