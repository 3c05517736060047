package postgres

import (
	"context"
	"database/sql"

	"watchparty/internal/domain"
)

type predictionRepository struct {
	DB *sql.DB
}

// NewPredictionRepository returns a domain.PredictionRepository implemented with Postgres.
func NewPredictionRepository(db *sql.DB) domain.PredictionRepository {
	return &predictionRepository{DB: db}
}

func (r *predictionRepository) Add(ctx context.Context, entry *domain.Prediction) error {
	query := `
		INSERT INTO predictions (id, name, prediction, category, correct, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.DB.ExecContext(ctx, query, entry.ID, entry.Name, entry.Prediction, entry.Category, entry.Correct, entry.CreatedAt); err != nil {
		return err
	}

	trim := `
		DELETE FROM predictions
		WHERE id NOT IN (
			SELECT id FROM predictions ORDER BY created_at DESC, id DESC LIMIT $1
		)
	`
	_, err := r.DB.ExecContext(ctx, trim, domain.PredictionCap)
	return err
}

func (r *predictionRepository) List(ctx context.Context) ([]*domain.Prediction, error) {
	query := `
		SELECT id, name, prediction, category, correct, created_at
		FROM predictions
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.DB.QueryContext(ctx, query, domain.PredictionCap)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.Prediction
	for rows.Next() {
		e := &domain.Prediction{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Prediction, &e.Category, &e.Correct, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.Prediction{}
	}
	return entries, nil
}
