package game

import (
	"fmt"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"

	"art-auction/internal/catalog"
)

// Engine applies the auction state transitions to one game at a time.
// It does no I/O and holds no references to games between calls; the
// registry serializes all access. Both request handlers and the round
// timer drive the same transitions through it.
type Engine struct {
	clock clockwork.Clock
	draw  func(n int) []catalog.Piece
}

func NewEngine(clock clockwork.Clock, draw func(int) []catalog.Piece) *Engine {
	if draw == nil {
		draw = catalog.Draw
	}
	return &Engine{clock: clock, draw: draw}
}

// StartGame deals the deck and moves the game from lobby into round 1,
// countdown not yet running.
func (e *Engine) StartGame(g *Game) error {
	if g.State.Status != StatusLobby {
		return ErrInvalidState
	}
	if len(g.Players) < 2 {
		return ErrInsufficientPlayers
	}

	g.Deck = e.draw(g.Config.NumRounds)
	g.dealNext()
	if g.CurrentArt == nil {
		return ErrDealFailure
	}

	g.State = State{Status: StatusActive, Round: 1}
	return nil
}

// StartRound arms the countdown for the already-dealt round. Calling
// it again while the countdown runs is rejected, not idempotent.
func (e *Engine) StartRound(g *Game) error {
	if g.State.Status != StatusActive {
		return ErrInvalidState
	}
	if g.State.Deadline != nil {
		return ErrRoundAlreadyInProgress
	}
	deadline := e.clock.Now().Add(time.Duration(g.Config.BidTimerSeconds) * time.Second)
	g.State.Deadline = &deadline
	return nil
}

// PlaceBid records a bid and restarts the countdown. Chips are not
// deducted here; settlement happens at resolution.
func (e *Engine) PlaceBid(g *Game, playerID string, amount int) error {
	if g.State.Status != StatusActive {
		return ErrInvalidState
	}
	if g.State.Deadline == nil {
		return ErrWaitingForHost
	}

	player, ok := g.Players[playerID]
	if !ok {
		return ErrPlayerNotFound
	}
	if amount < 1 {
		return fmt.Errorf("%w: bid must be at least 1 chip", ErrBidTooLow)
	}
	if !player.CanBid(amount) {
		return ErrInsufficientChips
	}
	if highest := g.HighestBid(); highest != nil && amount <= highest.Amount {
		return fmt.Errorf("%w: bid must be higher than current bid of %d", ErrBidTooLow, highest.Amount)
	}

	now := e.clock.Now()
	g.CurrentBids = append(g.CurrentBids, Bid{PlayerID: playerID, Amount: amount, PlacedAt: now})

	// Every valid bid restarts the countdown.
	deadline := now.Add(time.Duration(g.Config.BidTimerSeconds) * time.Second)
	g.State.Deadline = &deadline
	return nil
}

// ResolveRound settles the current round: the highest bid wins the
// piece and pays for it, or the piece is discarded when nobody bid.
// The caller decides that the deadline elapsed; it is not re-checked
// here.
func (e *Engine) ResolveRound(g *Game) error {
	if g.State.Status != StatusActive {
		return ErrInvalidState
	}

	if winning := g.HighestBid(); winning != nil {
		player, ok := g.Players[winning.PlayerID]
		if !ok {
			return ErrPlayerNotFound
		}
		player.Chips -= winning.Amount
		if g.CurrentArt != nil {
			player.Collection = append(player.Collection, *g.CurrentArt)
			g.CurrentArt = nil
		}
	} else if g.CurrentArt != nil {
		g.DiscardPile = append(g.DiscardPile, *g.CurrentArt)
		g.CurrentArt = nil
	}

	g.CurrentBids = nil

	if len(g.Deck) == 0 {
		e.finishGame(g)
		return nil
	}

	g.dealNext()
	g.State = State{Status: StatusActive, Round: g.State.Round + 1}
	return nil
}

// finishGame freezes final scores and declares every player tied on
// the top score a winner. NextGameID stays empty; the round timer
// fills it in when it creates the successor lobby.
func (e *Engine) finishGame(g *Game) {
	scores := make([]PlayerScore, 0, len(g.Players))
	for _, id := range g.JoinOrder {
		scores = append(scores, PlayerScore{PlayerID: id, Score: g.Players[id].Score()})
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })

	maxScore := 0
	if len(scores) > 0 {
		maxScore = scores[0].Score
	}
	var winners []string
	for _, s := range scores {
		if s.Score == maxScore {
			winners = append(winners, s.PlayerID)
		}
	}

	g.State = State{Status: StatusFinished, WinnerIDs: winners, FinalScores: scores}
}
