package postgres

import (
	"context"
	"database/sql"

	"watchparty/internal/domain"
)

type teaSpillRepository struct {
	DB *sql.DB
}

// NewTeaSpillRepository returns a domain.TeaSpillRepository implemented with Postgres.
func NewTeaSpillRepository(db *sql.DB) domain.TeaSpillRepository {
	return &teaSpillRepository{DB: db}
}

func (r *teaSpillRepository) Add(ctx context.Context, entry *domain.TeaSpill) error {
	query := `
		INSERT INTO teaspills (id, content, alias, likes, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.DB.ExecContext(ctx, query, entry.ID, entry.Content, entry.Alias, entry.Likes, entry.CreatedAt); err != nil {
		return err
	}

	trim := `
		DELETE FROM teaspills
		WHERE id NOT IN (
			SELECT id FROM teaspills ORDER BY created_at DESC, id DESC LIMIT $1
		)
	`
	_, err := r.DB.ExecContext(ctx, trim, domain.TeaSpillCap)
	return err
}

func (r *teaSpillRepository) List(ctx context.Context) ([]*domain.TeaSpill, error) {
	query := `
		SELECT id, content, alias, likes, created_at
		FROM teaspills
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.DB.QueryContext(ctx, query, domain.TeaSpillCap)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.TeaSpill
	for rows.Next() {
		e := &domain.TeaSpill{}
		if err := rows.Scan(&e.ID, &e.Content, &e.Alias, &e.Likes, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.TeaSpill{}
	}
	return entries, nil
}
