package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"

	"art-auction/internal/bus"
	"art-auction/internal/game"
	"art-auction/internal/registry"
)

func startRoundHandler(reg *registry.Registry, b *bus.Bus, engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "game_id")
		var req actorRequest
		if !decodeBody(w, r, &req) {
			return
		}

		var round, remaining int
		err := reg.Mutate(gameID, func(g *game.Game) error {
			if !g.IsHost(req.PlayerID) {
				return game.ErrNotAuthorized
			}
			if err := engine.StartRound(g); err != nil {
				return err
			}
			round = g.State.Round
			remaining = g.Config.BidTimerSeconds
			return nil
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		b.Publish(gameID, bus.EventTimerTick, map[string]any{
			"round":             round,
			"remaining_seconds": remaining,
		})
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}
}

type bidRequest struct {
	PlayerID string `json:"player_id"`
	Amount   int    `json:"amount"`
}

func placeBidHandler(reg *registry.Registry, b *bus.Bus, engine *game.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "game_id")
		var req bidRequest
		if !decodeBody(w, r, &req) {
			return
		}

		var round, remaining int
		err := reg.Mutate(gameID, func(g *game.Game) error {
			if err := engine.PlaceBid(g, req.PlayerID, req.Amount); err != nil {
				return err
			}
			round = g.State.Round
			remaining = g.Config.BidTimerSeconds
			return nil
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		b.Publish(gameID, bus.EventBidPlaced, map[string]any{
			"player_id":         req.PlayerID,
			"amount":            req.Amount,
			"round":             round,
			"remaining_seconds": remaining,
		})
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}
}

// Not bidding is itself the pass; nothing to record.
func passHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}
}

type playAgainRequest struct {
	PlayerID  string `json:"player_id"`
	OldGameID string `json:"old_game_id"`
}

// playAgainHandler re-seats a player from a finished game into its
// pre-created successor lobby, keeping their id and name.
func playAgainHandler(reg *registry.Registry, b *bus.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		newGameID := chi.URLParam(r, "game_id")
		var req playAgainRequest
		if !decodeBody(w, r, &req) {
			return
		}

		var name string
		err := reg.View(req.OldGameID, func(g *game.Game) error {
			p, ok := g.Players[req.PlayerID]
			if !ok {
				return game.ErrPlayerNotFound
			}
			name = p.Name
			return nil
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		var isHost bool
		var playerCount int
		err = reg.Mutate(newGameID, func(g *game.Game) error {
			if g.State.Status != game.StatusLobby {
				return game.ErrInvalidState
			}
			if g.HostID == game.HostPending {
				g.HostID = req.PlayerID
			}
			if err := g.AddPlayer(game.NewPlayer(req.PlayerID, name, g.Config.StartingChips)); err != nil {
				return err
			}
			isHost = g.IsHost(req.PlayerID)
			playerCount = len(g.Players)
			return nil
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		b.Publish(newGameID, bus.EventPlayerJoined, map[string]any{
			"player_id":    req.PlayerID,
			"name":         name,
			"player_count": playerCount,
		})
		writeJSON(w, http.StatusOK, map[string]any{
			"game_id":   newGameID,
			"player_id": req.PlayerID,
			"is_host":   isHost,
		})
	}
}

func getGameHandler(reg *registry.Registry, clock clockwork.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "game_id")
		var snapshot map[string]any
		err := reg.View(gameID, func(g *game.Game) error {
			snapshot = buildSnapshot(g, clock)
			return nil
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snapshot)
	}
}

// buildSnapshot renders a read-only view of the game for clients. It
// runs under the registry's read lock and copies everything it emits.
func buildSnapshot(g *game.Game, clock clockwork.Clock) map[string]any {
	players := make([]map[string]any, 0, len(g.JoinOrder))
	for _, id := range g.JoinOrder {
		p := g.Players[id]
		players = append(players, map[string]any{
			"player_id":        p.ID,
			"name":             p.Name,
			"chips":            p.Chips,
			"collection_count": len(p.Collection),
			"score":            p.Score(),
			"is_host":          g.IsHost(p.ID),
		})
	}

	out := map[string]any{
		"game_id": g.ID,
		"status":  g.State.Status,
		"host_id": g.HostID,
		"config":  g.Config,
		"players": players,
	}

	switch g.State.Status {
	case game.StatusActive:
		out["round"] = g.State.Round
		out["remaining_seconds"] = g.RemainingSeconds(clock.Now())
		out["deck_remaining"] = len(g.Deck)
		if g.CurrentArt != nil {
			out["current_art"] = *g.CurrentArt
		}
		if highest := g.HighestBid(); highest != nil {
			out["highest_bid"] = map[string]any{
				"player_id": highest.PlayerID,
				"amount":    highest.Amount,
			}
		}
	case game.StatusFinished:
		results := make([]map[string]any, 0, len(g.State.FinalScores))
		for _, s := range g.State.FinalScores {
			p := g.Players[s.PlayerID]
			results = append(results, map[string]any{
				"player_id":        s.PlayerID,
				"name":             p.Name,
				"score":            s.Score,
				"is_winner":        containsID(g.State.WinnerIDs, s.PlayerID),
				"collection_count": len(p.Collection),
			})
		}
		out["winner_ids"] = g.State.WinnerIDs
		out["final_scores"] = results
		if g.State.NextGameID != "" {
			out["next_game_id"] = g.State.NextGameID
		}
	}
	return out
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
