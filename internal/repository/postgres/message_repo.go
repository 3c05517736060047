package postgres

import (
	"context"
	"database/sql"

	"watchparty/internal/domain"
)

type messageRepository struct {
	DB *sql.DB
}

// NewMessageRepository returns a domain.MessageRepository implemented with
// Postgres. The log is trimmed to domain.MessageLogCap on every append,
// oldest rows first.
func NewMessageRepository(db *sql.DB) domain.MessageRepository {
	return &messageRepository{DB: db}
}

func (r *messageRepository) Append(ctx context.Context, msg *domain.ChatMessage) error {
	query := `
		INSERT INTO messages (sender_name, invite_code, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, msg.SenderName, msg.InviteCode, msg.Content, msg.CreatedAt).
		Scan(&msg.ID)
	if err != nil {
		return err
	}

	// FIFO eviction past the cap. The insert and the trim are separate
	// statements; a concurrent append may briefly leave the log one row
	// over cap, which the next append corrects.
	trim := `
		DELETE FROM messages
		WHERE id NOT IN (
			SELECT id FROM messages ORDER BY id DESC LIMIT $1
		)
	`
	_, err = r.DB.ExecContext(ctx, trim, domain.MessageLogCap)
	return err
}

func (r *messageRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ChatMessage, error) {
	query := `
		SELECT id, sender_name, invite_code, content, created_at
		FROM messages
		ORDER BY id DESC
		LIMIT $1
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []*domain.ChatMessage
	for rows.Next() {
		m := &domain.ChatMessage{}
		if err := rows.Scan(&m.ID, &m.SenderName, &m.InviteCode, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Rows come back newest-first; callers want oldest-first.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	if msgs == nil {
		msgs = []*domain.ChatMessage{}
	}
	return msgs, nil
}
