package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"watchparty/internal/domain"
)

// heraldName is the sender of system messages authored by the room itself.
const heraldName = "👑 The Court Herald"

// opTimeout bounds the invitation lookup and message persistence performed
// inside the room loop.
const opTimeout = 5 * time.Second

// CodeChecker resolves an invitation code. domain.InvitationService
// satisfies it.
type CodeChecker interface {
	Lookup(ctx context.Context, code string) (*domain.Invitation, error)
}

type joinRequest struct {
	client *Client
	name   string
	code   string
}

type inboundMessage struct {
	client  *Client
	content string
}

// Room is the single shared chat chamber. All membership state is owned by
// the Run goroutine; join, send, and leave are serialized through its
// channels, so every member observes broadcasts in the same order the room
// processed the triggering events.
type Room struct {
	logger      *slog.Logger
	invitations CodeChecker
	messages    domain.MessageRepository

	register   chan *Client
	unregister chan *Client
	joins      chan joinRequest
	inbound    chan inboundMessage
	outside    chan *domain.ChatMessage

	// connected holds every live connection; members holds the subset that
	// has authenticated with a valid invitation code.
	connected map[*Client]bool
	members   map[*Client]bool
}

// NewRoom creates the chamber. Call Run in its own goroutine before
// serving connections.
func NewRoom(logger *slog.Logger, invitations CodeChecker, messages domain.MessageRepository) *Room {
	return &Room{
		logger:      logger,
		invitations: invitations,
		messages:    messages,
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		joins:       make(chan joinRequest),
		inbound:     make(chan inboundMessage),
		outside:     make(chan *domain.ChatMessage, 64),
		connected:   make(map[*Client]bool),
		members:     make(map[*Client]bool),
	}
}

// BroadcastMessage delivers an externally produced message (e.g. one posted
// over REST) to every current member. Implements domain.RoomBroadcaster.
func (r *Room) BroadcastMessage(msg *domain.ChatMessage) {
	r.outside <- msg
}

// Run processes room events until ctx is cancelled. It is the only
// goroutine that touches the membership maps.
func (r *Room) Run(ctx context.Context) {
	for {
		select {
		case c := <-r.register:
			r.connected[c] = true

		case c := <-r.unregister:
			r.dropClient(c, true)

		case req := <-r.joins:
			r.handleJoin(ctx, req)

		case in := <-r.inbound:
			r.handleMessage(ctx, in)

		case msg := <-r.outside:
			r.broadcast(encodeChatMessage(msg))

		case <-ctx.Done():
			for c := range r.connected {
				delete(r.connected, c)
				delete(r.members, c)
				close(c.send)
			}
			return
		}
	}
}

func (r *Room) handleJoin(ctx context.Context, req joinRequest) {
	c := req.client
	if !r.connected[c] || r.members[c] {
		// Unknown connection, or a second join attempt: the bound identity
		// is never reassigned.
		return
	}

	lookupCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if _, err := r.invitations.Lookup(lookupCtx, req.code); err != nil {
		// Rejection goes to the offending connection only; the rest of the
		// room never learns the attempt happened.
		r.send(c, encodeError("Invalid invitation code."))
		return
	}

	c.name = req.name
	c.code = domain.NormalizeCode(req.code)
	r.members[c] = true
	r.logger.Info("guest joined chamber", "name", c.name)

	r.broadcast(encodeOnlineUsers(r.onlineNames()))
	r.broadcast(encodeChatMessage(r.systemMessage(
		fmt.Sprintf("%s has entered the Queen's Chamber. Let the gossip commence! 🍷", c.name))))
}

func (r *Room) handleMessage(ctx context.Context, in inboundMessage) {
	c := in.client
	if !r.members[c] || in.content == "" {
		// Sends from connections that never joined are dropped silently.
		return
	}

	msg := &domain.ChatMessage{
		SenderName: c.name,
		InviteCode: c.code,
		Content:    in.content,
		CreatedAt:  time.Now().UTC(),
	}

	saveCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := r.messages.Append(saveCtx, msg); err != nil {
		// The live conversation goes on even when the log is unavailable.
		r.logger.Error("failed to persist chat message", "err", err)
	}

	r.broadcast(encodeChatMessage(msg))
}

// dropClient removes a connection. Authenticated departures are announced;
// a connection that never joined leaves without a trace.
func (r *Room) dropClient(c *Client, closeSend bool) {
	if !r.connected[c] {
		return
	}
	delete(r.connected, c)
	wasMember := r.members[c]
	delete(r.members, c)
	if closeSend {
		close(c.send)
	}

	if wasMember {
		r.logger.Info("guest departed chamber", "name", c.name)
		r.broadcast(encodeOnlineUsers(r.onlineNames()))
		r.broadcast(encodeChatMessage(r.systemMessage(
			fmt.Sprintf("%s has departed the Queen's Chamber. How mysterious... 👀", c.name))))
	}
}

func (r *Room) broadcast(payload []byte) {
	for c := range r.members {
		r.send(c, payload)
	}
}

// send writes to a client without ever blocking the room loop. A member
// whose buffer is full is forcibly disconnected.
func (r *Room) send(c *Client, payload []byte) {
	select {
	case c.send <- payload:
	default:
		r.dropClient(c, true)
	}
}

func (r *Room) onlineNames() []string {
	names := make([]string, 0, len(r.members))
	for c := range r.members {
		names = append(names, c.name)
	}
	return names
}

func (r *Room) systemMessage(content string) *domain.ChatMessage {
	return &domain.ChatMessage{
		SenderName: heraldName,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
		System:     true,
	}
}
