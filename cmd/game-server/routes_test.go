package main

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"

	"art-auction/internal/bus"
	"art-auction/internal/game"
	"art-auction/internal/registry"
	"art-auction/internal/ws"
)

func TestRouterMounts(t *testing.T) {
	clock := clockwork.NewFakeClock()
	b := bus.New(0)
	r := newRouter(registry.New(), b, game.NewEngine(clock, sequentialDraw), clock, ws.NewServer(b))

	got := map[string]bool{}
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	want := []string{
		"GET /healthz",
		"POST /api/games",
		"GET /api/games/{game_id}/",
		"POST /api/games/{game_id}/join",
		"POST /api/games/{game_id}/config",
		"POST /api/games/{game_id}/start",
		"POST /api/games/{game_id}/rounds/start",
		"POST /api/games/{game_id}/bids",
		"POST /api/games/{game_id}/pass",
		"POST /api/games/{game_id}/play-again",
		"GET /api/games/{game_id}/events",
		"GET /api/games/{game_id}/events/ws",
	}
	for _, route := range want {
		if !got[route] {
			t.Errorf("route %q not mounted; have %v", route, got)
		}
	}
}
