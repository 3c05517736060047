package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Sentinel errors for invitation and admin operations.
var (
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrDuplicateCode      = errors.New("invitation code already exists")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
)

// Invitation represents a single-guest invitation. The code gates access
// to the chat room. Used flips false->true on first successful validation
// and never flips back.
// swagger:model Invitation
type Invitation struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeCode upper-cases and trims an invitation code. All lookups go
// through this so guests may type codes in any case.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IssueResult is the outcome of issuing an invitation. EmailSent is false
// when the invitation was stored but the email could not be delivered.
type IssueResult struct {
	Invitation *Invitation
	EmailSent  bool
}

// InvitationRepository defines storage for invitations.
type InvitationRepository interface {
	Create(ctx context.Context, inv *Invitation) error
	GetByCode(ctx context.Context, code string) (*Invitation, error)
	MarkUsed(ctx context.Context, code string) error
	List(ctx context.Context) ([]*Invitation, error)
}

// InvitationService defines the business logic for issuing and validating
// invitation codes.
type InvitationService interface {
	Issue(ctx context.Context, email, guestName string) (*IssueResult, error)
	List(ctx context.Context) ([]*Invitation, error)
	Lookup(ctx context.Context, code string) (*Invitation, error)
	Validate(ctx context.Context, code, name string) (*Invitation, error)
}

// AdminVerifier checks the shared admin secret presented on admin
// operations. Returns ErrForbidden on mismatch.
type AdminVerifier interface {
	Verify(key string) error
}
