package chat

import (
	"encoding/json"

	"watchparty/internal/domain"
)

// Wire event types. Inbound events come from clients; outbound events are
// fanned out to room members.
const (
	// inbound
	EventJoin = "join-chamber"
	EventSend = "send-message"

	// outbound
	EventOnlineUsers = "online-users"
	EventChatMessage = "chat-message"
	EventError       = "error-msg"
)

// inboundEvent is the envelope for everything a client sends over the
// socket. Name and Code are only meaningful on join, Content on send.
type inboundEvent struct {
	Type    string `json:"type"`
	Name    string `json:"name,omitempty"`
	Code    string `json:"code,omitempty"`
	Content string `json:"content,omitempty"`
}

// outboundEvent is the envelope for everything the room emits.
type outboundEvent struct {
	Type    string              `json:"type"`
	Users   []string            `json:"users,omitempty"`
	Message *domain.ChatMessage `json:"message,omitempty"`
	Error   string              `json:"error,omitempty"`
}

func encodeOnlineUsers(users []string) []byte {
	if users == nil {
		users = []string{}
	}
	b, _ := json.Marshal(outboundEvent{Type: EventOnlineUsers, Users: users})
	return b
}

func encodeChatMessage(msg *domain.ChatMessage) []byte {
	b, _ := json.Marshal(outboundEvent{Type: EventChatMessage, Message: msg})
	return b
}

func encodeError(msg string) []byte {
	b, _ := json.Marshal(outboundEvent{Type: EventError, Error: msg})
	return b
}
