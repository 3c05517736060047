package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"watchparty/internal/domain"
)

// maxCodeAttempts bounds the retry loop when a freshly generated code
// collides with an existing one. Collisions are vanishingly rare for a
// guest list this size, but the loop costs nothing.
const maxCodeAttempts = 5

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type invitationService struct {
	invitationRepo domain.InvitationRepository
	emailService   domain.EmailService
	contextTimeout time.Duration
}

// NewInvitationService creates an InvitationService with the given
// repository and email service. emailService may be nil, in which case
// issued invitations simply report emailSent=false.
func NewInvitationService(invitationRepo domain.InvitationRepository, emailService domain.EmailService, timeout time.Duration) domain.InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		emailService:   emailService,
		contextTimeout: timeout,
	}
}

func (s *invitationService) Issue(ctx context.Context, email, guestName string) (*domain.IssueResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, fmt.Errorf("email is required: %w", domain.ErrInvalidInput)
	}
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("invalid email format: %w", domain.ErrInvalidInput)
	}
	guestName = strings.TrimSpace(guestName)

	var inv *domain.Invitation
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		candidate := &domain.Invitation{
			Code:      generateInviteCode(),
			Email:     email,
			Name:      guestName,
			Used:      false,
			CreatedAt: time.Now().UTC(),
		}
		err := s.invitationRepo.Create(ctx, candidate)
		if errors.Is(err, domain.ErrDuplicateCode) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create invitation: %w", err)
		}
		inv = candidate
		break
	}
	if inv == nil {
		return nil, fmt.Errorf("failed to generate a unique invitation code after %d attempts", maxCodeAttempts)
	}

	// Email delivery is best-effort: the invitation exists either way and
	// the code can be shared manually.
	emailSent := false
	if s.emailService != nil {
		data := &domain.InvitationEmailData{
			Email:     email,
			GuestName: guestName,
			Code:      inv.Code,
		}
		if err := s.emailService.SendInvitation(ctx, data); err == nil {
			emailSent = true
		}
	}

	return &domain.IssueResult{Invitation: inv, EmailSent: emailSent}, nil
}

func (s *invitationService) List(ctx context.Context) ([]*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	invs, err := s.invitationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return invs, nil
}

func (s *invitationService) Lookup(ctx context.Context, code string) (*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	code = domain.NormalizeCode(code)
	if code == "" {
		return nil, domain.ErrInvitationNotFound
	}
	inv, err := s.invitationRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrInvitationNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to look up invitation: %w", err)
	}
	return inv, nil
}

func (s *invitationService) Validate(ctx context.Context, code, name string) (*domain.Invitation, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("both name and invitation code are required: %w", domain.ErrInvalidInput)
	}

	inv, err := s.Lookup(ctx, code)
	if err != nil {
		return nil, err
	}

	// First successful validation flips used; later validations are no-ops.
	if !inv.Used {
		ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
		defer cancel()
		if err := s.invitationRepo.MarkUsed(ctx, inv.Code); err != nil {
			return nil, fmt.Errorf("failed to mark invitation used: %w", err)
		}
		inv.Used = true
	}
	return inv, nil
}

// generateInviteCode returns the first segment of a random UUID,
// uppercased: 8 hex characters, e.g. "9B2F00AA".
func generateInviteCode() string {
	return strings.ToUpper(strings.SplitN(uuid.NewString(), "-", 2)[0])
}
