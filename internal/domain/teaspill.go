package domain

import (
	"context"
	"time"
)

// Bounds for the tea-spill collection.
const (
	TeaSpillCap        = 200
	TeaSpillMaxContent = 500
)

// DefaultTeaSpillAlias is used when a spill is posted without an alias.
const DefaultTeaSpillAlias = "Anonymous Member of the Ton"

// TeaSpill is an anonymous gossip post.
// swagger:model TeaSpill
type TeaSpill struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Alias     string    `json:"alias"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// TeaSpillRepository defines storage for tea spills. Add evicts the oldest
// entries past TeaSpillCap.
type TeaSpillRepository interface {
	Add(ctx context.Context, entry *TeaSpill) error
	// List returns up to TeaSpillCap entries, newest-first. An empty
	// collection yields an empty slice.
	List(ctx context.Context) ([]*TeaSpill, error)
}

// TeaSpillService defines tea-spill posting and listing.
type TeaSpillService interface {
	List(ctx context.Context) ([]*TeaSpill, error)
	// Post trims content, applies the default alias, and stores the entry.
	// Empty or over-length content yields ErrInvalidInput.
	Post(ctx context.Context, content, alias string) (*TeaSpill, error)
}
