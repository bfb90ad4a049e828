// Package roundtimer advances games whose bidding deadline elapsed.
package roundtimer

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"art-auction/internal/bus"
	"art-auction/internal/game"
	"art-auction/internal/registry"
)

// Timer polls every active game on a fixed tick. Per tick it first
// publishes a countdown notification for every running round, then
// resolves the rounds whose deadline elapsed. Resolution can therefore
// lag the nominal deadline by up to one tick; that slack is part of
// the game's buzzer semantics, not an accident.
type Timer struct {
	registry *registry.Registry
	bus      *bus.Bus
	engine   *game.Engine
	clock    clockwork.Clock
	interval time.Duration
}

func New(reg *registry.Registry, b *bus.Bus, engine *game.Engine, clock clockwork.Clock, interval time.Duration) *Timer {
	if interval <= 0 {
		interval = time.Second
	}
	return &Timer{registry: reg, bus: b, engine: engine, clock: clock, interval: interval}
}

// Run loops until ctx is cancelled. It only ever initiates new
// mutations; in-flight ones are never cancelled.
func (t *Timer) Run(ctx context.Context) {
	ticker := t.clock.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			t.tick(t.clock.Now())
		}
	}
}

type countdown struct {
	gameID    string
	round     int
	remaining int64
}

func (t *Timer) tick(now time.Time) {
	var ticks []countdown
	var expired []string
	t.registry.ForEach(func(id string, g *game.Game) {
		if g.State.Status != game.StatusActive || g.State.Deadline == nil {
			return
		}
		ticks = append(ticks, countdown{gameID: id, round: g.State.Round, remaining: g.RemainingSeconds(now)})
		if !g.State.Deadline.After(now) {
			expired = append(expired, id)
		}
	})

	for _, c := range ticks {
		t.bus.Publish(c.gameID, bus.EventTimerTick, map[string]any{
			"round":             c.round,
			"remaining_seconds": c.remaining,
		})
	}
	for _, id := range expired {
		t.resolve(id)
	}
}

// resolve settles one expired round and, when that resolution finished
// the game, creates the empty successor lobby for "play again". This
// is the only place a game is created on another game's behalf.
func (t *Timer) resolve(gameID string) {
	var (
		resolvedRound int
		winningBid    *game.Bid
		hostID        string
		finished      bool
		winners       []string
		scores        []game.PlayerScore
	)

	err := t.registry.Mutate(gameID, func(g *game.Game) error {
		resolvedRound = g.State.Round
		if b := g.HighestBid(); b != nil {
			won := *b
			winningBid = &won
		}
		if err := t.engine.ResolveRound(g); err != nil {
			return err
		}
		hostID = g.HostID
		if g.State.Status == game.StatusFinished {
			finished = true
			winners = append([]string(nil), g.State.WinnerIDs...)
			scores = append([]game.PlayerScore(nil), g.State.FinalScores...)
		}
		return nil
	})
	if err != nil {
		// Leave the game untouched; the next tick retries. A game
		// stuck here stays stuck rather than being force-advanced.
		log.Error().Err(err).Str("game_id", gameID).Msg("round resolution failed")
		return
	}

	nextGameID := ""
	if finished {
		nextGameID = registry.NewID()
		if err := t.registry.Create(nextGameID, hostID); err != nil {
			log.Error().Err(err).Str("game_id", gameID).Msg("successor game creation failed")
			nextGameID = ""
		} else {
			_ = t.registry.Mutate(gameID, func(g *game.Game) error {
				g.State.NextGameID = nextGameID
				return nil
			})
		}
	}

	resolved := map[string]any{"round": resolvedRound, "had_bids": winningBid != nil}
	if winningBid != nil {
		resolved["winner_id"] = winningBid.PlayerID
		resolved["amount"] = winningBid.Amount
	}
	t.bus.Publish(gameID, bus.EventRoundResolved, resolved)

	if finished {
		t.bus.Publish(gameID, bus.EventGameFinished, map[string]any{
			"winner_ids":   winners,
			"final_scores": scores,
			"next_game_id": nextGameID,
		})
		log.Info().Str("game_id", gameID).Str("next_game_id", nextGameID).Msg("game finished")
	} else {
		log.Info().Str("game_id", gameID).Int("round", resolvedRound).Msg("round resolved")
	}
}
