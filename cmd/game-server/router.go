package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"

	"art-auction/internal/bus"
	"art-auction/internal/game"
	"art-auction/internal/registry"
	"art-auction/internal/ws"
)

func newRouter(reg *registry.Registry, b *bus.Bus, engine *game.Engine, clock clockwork.Clock, wsSrv *ws.Server) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(apiLogMiddleware()).Get("/healthz", healthHandler())

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLogMiddleware())
		r.Post("/games", createGameHandler(reg))
		r.Route("/games/{game_id}", func(r chi.Router) {
			r.Get("/", getGameHandler(reg, clock))
			r.Post("/join", joinGameHandler(reg, b))
			r.Post("/config", configureGameHandler(reg, b))
			r.Post("/start", startGameHandler(reg, b, engine))
			r.Post("/rounds/start", startRoundHandler(reg, b, engine))
			r.Post("/bids", placeBidHandler(reg, b, engine))
			r.Post("/pass", passHandler())
			r.Post("/play-again", playAgainHandler(reg, b))
			r.Get("/events", gameEventsHandler(b))
			r.Get("/events/ws", wsEventsHandler(wsSrv))
		})
	})

	return r
}

func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}
}
