package domain

import (
	"context"
	"time"
)

// Bounds for the chat message log.
const (
	// MessageLogCap is the number of messages retained in storage. The log
	// is a suffix of all messages ever sent: the oldest are evicted first.
	MessageLogCap = 500
	// MessageHistoryLimit is the maximum number of messages returned by a
	// history fetch.
	MessageHistoryLimit = 100
)

// ChatMessage is a single chat-room message. Immutable once created.
// System messages are authored by the room itself (join/leave announcements)
// and are never persisted.
// swagger:model ChatMessage
type ChatMessage struct {
	ID         int64     `json:"id,omitempty"`
	SenderName string    `json:"sender_name"`
	InviteCode string    `json:"invite_code,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	System     bool      `json:"system,omitempty"`
}

// MessageRepository defines storage for the bounded chat log. Append
// evicts the oldest rows past MessageLogCap.
type MessageRepository interface {
	Append(ctx context.Context, msg *ChatMessage) error
	// ListRecent returns up to limit of the most recent messages,
	// oldest-first. An empty log yields an empty slice, never an error.
	ListRecent(ctx context.Context, limit int) ([]*ChatMessage, error)
}

// RoomBroadcaster pushes a chat message to every current room member. The
// HTTP send path uses it so REST-posted messages still reach live
// websocket clients.
type RoomBroadcaster interface {
	BroadcastMessage(msg *ChatMessage)
}

// ChatService defines code-gated access to the message log.
type ChatService interface {
	// History returns up to MessageHistoryLimit recent messages,
	// oldest-first. ErrForbidden if the code is invalid.
	History(ctx context.Context, code string) ([]*ChatMessage, error)
	// Post validates the code, persists the message, and broadcasts it to
	// the room.
	Post(ctx context.Context, code, name, content string) (*ChatMessage, error)
}
