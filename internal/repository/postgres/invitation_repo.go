package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"watchparty/internal/domain"
)

type invitationRepository struct {
	DB *sql.DB
}

// NewInvitationRepository returns a domain.InvitationRepository implemented with Postgres.
func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{DB: db}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (code, email, name, used, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, inv.Code, inv.Email, inv.Name, inv.Used, inv.CreatedAt).
		Scan(&inv.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrDuplicateCode
		}
		return err
	}
	return nil
}

func (r *invitationRepository) GetByCode(ctx context.Context, code string) (*domain.Invitation, error) {
	query := `
		SELECT id, code, email, name, used, created_at
		FROM invitations
		WHERE code = $1
	`
	inv := &domain.Invitation{}
	err := r.DB.QueryRowContext(ctx, query, code).
		Scan(&inv.ID, &inv.Code, &inv.Email, &inv.Name, &inv.Used, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) MarkUsed(ctx context.Context, code string) error {
	query := `UPDATE invitations SET used = TRUE WHERE code = $1`
	res, err := r.DB.ExecContext(ctx, query, code)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInvitationNotFound
	}
	return nil
}

func (r *invitationRepository) List(ctx context.Context) ([]*domain.Invitation, error) {
	query := `
		SELECT id, code, email, name, used, created_at
		FROM invitations
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invs []*domain.Invitation
	for rows.Next() {
		inv := &domain.Invitation{}
		if err := rows.Scan(&inv.ID, &inv.Code, &inv.Email, &inv.Name, &inv.Used, &inv.CreatedAt); err != nil {
			return nil, err
		}
		invs = append(invs, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if invs == nil {
		invs = []*domain.Invitation{}
	}
	return invs, nil
}
