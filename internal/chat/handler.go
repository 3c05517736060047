package chat

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The invitation code, not the origin, is the gate.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS returns the handler that upgrades GET /ws requests and attaches
// the connection to the room. The connection starts unauthenticated; the
// client must send a join-chamber event to enter.
func ServeWS(logger *slog.Logger, room *Room) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "err", err)
			return
		}

		client := &Client{
			room: room,
			conn: conn,
			send: make(chan []byte, sendBufferSize),
		}
		room.register <- client

		go client.writePump()
		go client.readPump()
	}
}
