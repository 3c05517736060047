package domain

import (
	"context"
	"time"
)

// PredictionCap bounds the prediction collection.
const PredictionCap = 200

// Defaults applied when a prediction is posted without a name or category.
const (
	DefaultPredictionName     = "Anonymous Oracle"
	DefaultPredictionCategory = "general"
)

// Prediction is a guest's finale prediction. Correct is nil while the
// outcome is pending.
// swagger:model Prediction
type Prediction struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Prediction string    `json:"prediction"`
	Category   string    `json:"category"`
	Correct    *bool     `json:"correct"`
	CreatedAt  time.Time `json:"created_at"`
}

// PredictionRepository defines storage for predictions. Add evicts the
// oldest entries past PredictionCap.
type PredictionRepository interface {
	Add(ctx context.Context, entry *Prediction) error
	// List returns up to PredictionCap entries, newest-first.
	List(ctx context.Context) ([]*Prediction, error)
}

// PredictionService defines prediction posting and listing.
type PredictionService interface {
	List(ctx context.Context) ([]*Prediction, error)
	Post(ctx context.Context, name, prediction, category string) (*Prediction, error)
}
