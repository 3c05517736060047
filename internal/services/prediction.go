package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"watchparty/internal/domain"
)

type predictionService struct {
	predictionRepo domain.PredictionRepository
	contextTimeout time.Duration
}

// NewPredictionService creates a PredictionService backed by the given repository.
func NewPredictionService(predictionRepo domain.PredictionRepository, timeout time.Duration) domain.PredictionService {
	return &predictionService{predictionRepo: predictionRepo, contextTimeout: timeout}
}

func (s *predictionService) List(ctx context.Context) ([]*domain.Prediction, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	entries, err := s.predictionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	return entries, nil
}

func (s *predictionService) Post(ctx context.Context, name, prediction, category string) (*domain.Prediction, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	prediction = strings.TrimSpace(prediction)
	if prediction == "" {
		return nil, fmt.Errorf("a prediction is required: %w", domain.ErrInvalidInput)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = domain.DefaultPredictionName
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = domain.DefaultPredictionCategory
	}

	entry := &domain.Prediction{
		ID:         uuid.NewString(),
		Name:       name,
		Prediction: prediction,
		Category:   category,
		Correct:    nil,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.predictionRepo.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save prediction: %w", err)
	}
	return entry, nil
}
