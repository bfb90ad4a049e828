// Package ws streams game events to WebSocket clients.
package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"art-auction/internal/bus"
)

var pingInterval = 15 * time.Second

// Server bridges bus subscriptions onto WebSocket connections. Clients
// are pure event sinks; inbound frames are read only to detect the
// peer going away.
type Server struct {
	bus      *bus.Bus
	upgrader websocket.Upgrader
}

func NewServer(b *bus.Bus) *Server {
	return &Server{
		bus:      b,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
}

// ServeEvents upgrades the request and writes the game's events until
// the subscription closes or the client disconnects. Subscribing to a
// game that does not exist is allowed; the stream simply stays silent.
func (s *Server) ServeEvents(w http.ResponseWriter, r *http.Request, gameID string) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	sub := s.bus.Subscribe(gameID)
	defer s.bus.Unsubscribe(gameID, sub)

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case ev, ok := <-sub:
			if !ok {
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ping.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
