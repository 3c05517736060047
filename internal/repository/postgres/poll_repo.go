package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"watchparty/internal/domain"
)

type pollRepository struct {
	DB *sql.DB
}

// NewPollRepository returns a domain.PollRepository implemented with
// Postgres. Options and vote counters are stored as arrays.
func NewPollRepository(db *sql.DB) domain.PollRepository {
	return &pollRepository{DB: db}
}

func (r *pollRepository) List(ctx context.Context) ([]*domain.Poll, error) {
	query := `
		SELECT id, question, options, votes
		FROM polls
		ORDER BY position, id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var polls []*domain.Poll
	for rows.Next() {
		p := &domain.Poll{}
		if err := rows.Scan(&p.ID, &p.Question, pq.Array(&p.Options), pq.Array(&p.Votes)); err != nil {
			return nil, err
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if polls == nil {
		polls = []*domain.Poll{}
	}
	return polls, nil
}

func (r *pollRepository) GetByID(ctx context.Context, id string) (*domain.Poll, error) {
	query := `SELECT id, question, options, votes FROM polls WHERE id = $1`
	p := &domain.Poll{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Question, pq.Array(&p.Options), pq.Array(&p.Votes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *pollRepository) IncrementVote(ctx context.Context, pollID string, optionIndex int) error {
	// Postgres arrays are 1-based. The increment is a single statement, so
	// concurrent votes never lose updates.
	query := `UPDATE polls SET votes[$2] = votes[$2] + 1 WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, pollID, optionIndex+1)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrPollNotFound
	}
	return nil
}

func (r *pollRepository) Seed(ctx context.Context, polls []*domain.Poll) error {
	query := `
		INSERT INTO polls (id, question, options, votes, position)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`
	for i, p := range polls {
		votes := p.Votes
		if votes == nil {
			votes = make([]int64, len(p.Options))
		}
		if _, err := r.DB.ExecContext(ctx, query, p.ID, p.Question, pq.Array(p.Options), pq.Array(votes), i); err != nil {
			return err
		}
	}
	return nil
}
