package game

import (
	"time"

	"art-auction/internal/catalog"
)

type Status string

const (
	StatusLobby    Status = "lobby"
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// State is the game's phase plus the data that only exists in that
// phase. Status discriminates; fields outside the current phase are
// zero and must not be read.
type State struct {
	Status Status

	// Active only. A nil Deadline means the round is dealt but the
	// host has not started the countdown yet.
	Round    int
	Deadline *time.Time

	// Finished only. WinnerIDs holds every player tied on the top
	// score. FinalScores is sorted by score descending and frozen at
	// the resolution that emptied the deck.
	WinnerIDs   []string
	FinalScores []PlayerScore
	NextGameID  string
}

type PlayerScore struct {
	PlayerID string `json:"player_id"`
	Score    int    `json:"score"`
}

type Config struct {
	StartingChips   int `json:"starting_chips"`
	BidTimerSeconds int `json:"bid_timer_seconds"`
	NumRounds       int `json:"num_rounds"`
}

func DefaultConfig() Config {
	return Config{StartingChips: 100, BidTimerSeconds: 30, NumRounds: 10}
}

// Clamped bounds a config coming from external input.
func (c Config) Clamped() Config {
	return Config{
		StartingChips:   clamp(c.StartingChips, 10, 1000),
		BidTimerSeconds: clamp(c.BidTimerSeconds, 10, 120),
		NumRounds:       clamp(c.NumRounds, 1, 90),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type Player struct {
	ID         string
	Name       string
	Chips      int
	Collection []catalog.Piece
}

func NewPlayer(id, name string, startingChips int) *Player {
	return &Player{ID: id, Name: name, Chips: startingChips}
}

// CanBid reports whether the player can afford a bid of amount.
func (p *Player) CanBid(amount int) bool {
	return amount > 0 && p.Chips >= amount
}

type Bid struct {
	PlayerID string    `json:"player_id"`
	Amount   int       `json:"amount"`
	PlacedAt time.Time `json:"placed_at"`
}

// Game is the aggregate for one auction. All access is serialized by
// the registry; nothing here locks.
type Game struct {
	ID          string
	HostID      string
	Config      Config
	State       State
	Players     map[string]*Player
	JoinOrder   []string
	Deck        []catalog.Piece
	CurrentArt  *catalog.Piece
	CurrentBids []Bid
	DiscardPile []catalog.Piece
}

// HostPending marks a game whose host slot waits for the first joiner.
const HostPending = "pending"

func New(id, hostID string) *Game {
	return &Game{
		ID:      id,
		HostID:  hostID,
		Config:  DefaultConfig(),
		State:   State{Status: StatusLobby},
		Players: map[string]*Player{},
	}
}

// AddPlayer appends a player. The player set is append-only in the
// lobby and frozen once the game starts.
func (g *Game) AddPlayer(p *Player) error {
	if g.State.Status != StatusLobby {
		return ErrInvalidState
	}
	if _, ok := g.Players[p.ID]; ok {
		return ErrDuplicateID
	}
	g.Players[p.ID] = p
	g.JoinOrder = append(g.JoinOrder, p.ID)
	return nil
}

func (g *Game) IsHost(playerID string) bool {
	return g.HostID == playerID
}

// HighestBid returns the current winning bid: the strict maximum over
// amount, first-submitted winning ties. Nil when no bids exist.
func (g *Game) HighestBid() *Bid {
	var best *Bid
	for i := range g.CurrentBids {
		if best == nil || g.CurrentBids[i].Amount > best.Amount {
			best = &g.CurrentBids[i]
		}
	}
	return best
}

// dealNext moves the top of the deck into the current-art slot. The
// deck is consumed from the tail.
func (g *Game) dealNext() {
	if len(g.Deck) == 0 {
		g.CurrentArt = nil
		return
	}
	art := g.Deck[len(g.Deck)-1]
	g.Deck = g.Deck[:len(g.Deck)-1]
	g.CurrentArt = &art
}

// RemainingSeconds reports the countdown as of now: -1 while the round
// waits for the host, 0 outside active play, never negative.
func (g *Game) RemainingSeconds(now time.Time) int64 {
	if g.State.Status != StatusActive {
		return 0
	}
	if g.State.Deadline == nil {
		return -1
	}
	left := g.State.Deadline.Unix() - now.Unix()
	if left < 0 {
		return 0
	}
	return left
}

// ItemCount totals every piece dealt into this game across the deck,
// the current-art slot, player collections and the discard pile.
func (g *Game) ItemCount() int {
	n := len(g.Deck) + len(g.DiscardPile)
	if g.CurrentArt != nil {
		n++
	}
	for _, p := range g.Players {
		n += len(p.Collection)
	}
	return n
}
