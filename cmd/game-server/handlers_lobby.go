package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"art-auction/internal/bus"
	"art-auction/internal/game"
	"art-auction/internal/registry"
)

func createGameHandler(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := registry.NewID()
		if err := reg.Create(id, game.HostPending); err != nil {
			writeDomainError(w, err)
			return
		}
		log.Info().Str("game_id", id).Msg("game created")
		writeJSON(w, http.StatusCreated, map[string]any{"game_id": id})
	}
}

type joinRequest struct {
	Name string `json:"name"`
}

func joinGameHandler(reg *registry.Registry, b *bus.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "game_id")
		var req joinRequest
		if !decodeBody(w, r, &req) {
			return
		}
		name := strings.TrimSpace(req.Name)
		if name == "" || len(name) > 20 {
			writeDomainError(w, fmt.Errorf("%w: name must be between 1 and 20 characters", game.ErrValidation))
			return
		}

		playerID := uuid.NewString()
		var isHost bool
		var playerCount int
		err := reg.Mutate(gameID, func(g *game.Game) error {
			if g.State.Status != game.StatusLobby {
				return game.ErrInvalidState
			}
			// First joiner claims the pending host slot.
			if g.HostID == game.HostPending {
				g.HostID = playerID
			}
			if err := g.AddPlayer(game.NewPlayer(playerID, name, g.Config.StartingChips)); err != nil {
				return err
			}
			isHost = g.IsHost(playerID)
			playerCount = len(g.Players)
			return nil
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		b.Publish(gameID, bus.EventPlayerJoined, map[string]any{
			"player_id":    playerID,
			"name":         name,
			"player_count": playerCount,
		})
		writeJSON(w, http.StatusOK, map[string]any{
			"game_id":   gameID,
			"player_id": playerID,
			"is_host":   isHost,
		})
	}
}

type configureRequest struct {
	StartingChips   int `json:"starting_chips"`
	BidTimerSeconds int `json:"bid_timer_seconds"`
	NumRounds       int `json:"num_rounds"`
}

func configureGameHandler(reg *registry.Registry, b *bus.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "game_id")
		var req configureRequest
		if !decodeBody(w, r, &req) {
			return
		}

		cfg := game.Config{
			StartingChips:   req.StartingChips,
			BidTimerSeconds: req.BidTimerSeconds,
			NumRounds:       req.NumRounds,
		}.Clamped()

		err := reg.Mutate(gameID, func(g *game.Game) error {
			if g.State.Status != game.StatusLobby {
				return game.ErrInvalidState
			}
			g.Config = cfg
			// New chip stake applies to everyone already seated.
			for _, p := range g.Players {
				p.Chips = cfg.StartingChips
			}
			return nil
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		b.Publish(gameID, bus.EventSettingsChanged, map[string]any{"config": cfg})
		writeJSON(w, http.StatusOK, map[string]any{"config": cfg})
	}
}

type actorRequest struct {
	PlayerID string `json:"player_id"`
}

func startGameHandler(reg *registry.Registry, b *bus.Bus, engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "game_id")
		var req actorRequest
		if !decodeBody(w, r, &req) {
			return
		}

		err := reg.Mutate(gameID, func(g *game.Game) error {
			if !g.IsHost(req.PlayerID) {
				return game.ErrNotAuthorized
			}
			return engine.StartGame(g)
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		log.Info().Str("game_id", gameID).Msg("game started")
		b.Publish(gameID, bus.EventGameStarted, map[string]any{"round": 1})
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}
}
