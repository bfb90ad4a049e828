package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"art-auction/internal/bus"
	"art-auction/internal/ws"
)

var ssePingInterval = 15 * time.Second

// gameEventsHandler streams a game's events as SSE. Subscribing to an
// absent game is allowed; the stream just stays silent until a game
// with that id publishes.
func gameEventsHandler(b *bus.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "game_id")
		flusher, ok := w.(http.Flusher)
		if !ok {
			writeHTTPError(w, http.StatusInternalServerError, "stream_not_supported")
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		flusher.Flush()

		sub := b.Subscribe(gameID)
		defer b.Unsubscribe(gameID, sub)

		ticker := time.NewTicker(ssePingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				if err := writeSSE(w, ev); err != nil {
					return
				}
				flusher.Flush()
			case <-ticker.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

func writeSSE(w http.ResponseWriter, ev bus.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\n", ev.Name); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}

func wsEventsHandler(srv *ws.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		srv.ServeEvents(w, r, chi.URLParam(r, "game_id"))
	}
}
