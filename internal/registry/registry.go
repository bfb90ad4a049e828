// Package registry owns every live game and serializes access to them.
package registry

import (
	"errors"
	"sync"

	"art-auction/internal/game"
)

var (
	ErrNotFound    = errors.New("game_not_found")
	ErrDuplicateID = errors.New("duplicate_game_id")
)

// Registry is the sole owner of all Game aggregates. One coarse lock
// covers the whole registry: any number of readers may view games
// concurrently, at most one mutator runs at a time. Request handlers
// and the round timer both go through this contract, so a bid racing
// the timer's resolution serializes cleanly.
type Registry struct {
	mu    sync.RWMutex
	games map[string]*game.Game
}

func New() *Registry {
	return &Registry{games: map[string]*game.Game{}}
}

// Create adds a fresh lobby game under id.
func (r *Registry) Create(id, hostID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[id]; ok {
		return ErrDuplicateID
	}
	r.games[id] = game.New(id, hostID)
	return nil
}

// View runs fn with shared read access to the game. fn must not mutate
// the game or retain it past the call.
func (r *Registry) View(id string, fn func(g *game.Game) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	if !ok {
		return ErrNotFound
	}
	return fn(g)
}

// Mutate runs fn with exclusive access to the game. This is the only
// way to change a game; fn's error is passed through unchanged.
func (r *Registry) Mutate(id string, fn func(g *game.Game) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[id]
	if !ok {
		return ErrNotFound
	}
	return fn(g)
}

// ForEach runs fn over every game under shared read access. Iteration
// order is unspecified.
func (r *Registry) ForEach(fn func(id string, g *game.Game)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, g := range r.games {
		fn(id, g)
	}
}

// Len reports how many games are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
