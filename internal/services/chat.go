package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"watchparty/internal/domain"
)

type chatService struct {
	invitationRepo domain.InvitationRepository
	messageRepo    domain.MessageRepository
	room           domain.RoomBroadcaster
	contextTimeout time.Duration
}

// NewChatService creates a ChatService gated by invitation codes. room may
// be nil when no live room is attached (REST-only deployments).
func NewChatService(invitationRepo domain.InvitationRepository, messageRepo domain.MessageRepository, room domain.RoomBroadcaster, timeout time.Duration) domain.ChatService {
	return &chatService{
		invitationRepo: invitationRepo,
		messageRepo:    messageRepo,
		room:           room,
		contextTimeout: timeout,
	}
}

func (s *chatService) History(ctx context.Context, code string) ([]*domain.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.authorize(ctx, code); err != nil {
		return nil, err
	}
	msgs, err := s.messageRepo.ListRecent(ctx, domain.MessageHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	return msgs, nil
}

func (s *chatService) Post(ctx context.Context, code, name, content string) (*domain.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(code) == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("code, name, and content are required: %w", domain.ErrInvalidInput)
	}
	if err := s.authorize(ctx, code); err != nil {
		return nil, err
	}

	msg := &domain.ChatMessage{
		SenderName: name,
		InviteCode: domain.NormalizeCode(code),
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.messageRepo.Append(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}
	if s.room != nil {
		s.room.BroadcastMessage(msg)
	}
	return msg, nil
}

// authorize resolves the code against the invitation registry. An unknown
// code is a forbidden, not a not-found: the caller is not entitled to know
// which codes exist.
func (s *chatService) authorize(ctx context.Context, code string) error {
	_, err := s.invitationRepo.GetByCode(ctx, domain.NormalizeCode(code))
	if err != nil {
		if errors.Is(err, domain.ErrInvitationNotFound) {
			return domain.ErrForbidden
		}
		return fmt.Errorf("failed to verify invitation code: %w", err)
	}
	return nil
}
