// Package bus fans game events out to per-game topics.
package bus

import "sync"

// Event names published by the core.
const (
	EventBidPlaced       = "bid-placed"
	EventRoundResolved   = "round-resolved"
	EventTimerTick       = "timer-tick"
	EventGameFinished    = "game-finished"
	EventPlayerJoined    = "player-joined"
	EventSettingsChanged = "settings-changed"
	EventGameStarted     = "game-started"
)

// Event is one published notification. Data is opaque to the bus.
type Event struct {
	GameID string `json:"game_id"`
	Name   string `json:"event"`
	Data   any    `json:"data,omitempty"`
}

// Bus is a per-game publish/subscribe fanout. Delivery is at most
// once: a subscriber that falls more than its buffer behind loses its
// oldest queued events, and one that is not connected when an event is
// published simply misses it. Publishing never blocks on a consumer.
//
// Topics are created lazily on first use and retained for the bus's
// lifetime.
type Bus struct {
	mu     sync.Mutex
	buffer int
	topics map[string]map[chan Event]struct{}
}

const defaultBuffer = 64

func New(buffer int) *Bus {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Bus{buffer: buffer, topics: map[string]map[chan Event]struct{}{}}
}

// Publish fans the event out to every current subscriber of the game's
// topic. Events for one game reach each subscriber in publish order.
func (b *Bus) Publish(gameID, name string, data any) {
	ev := Event{GameID: gameID, Name: name, Data: data}
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.topics[gameID] {
		select {
		case ch <- ev:
		default:
			// Subscriber is full: shed its oldest queued event and
			// retry once so a stalled consumer sees recent state.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- ev:
			default:
			}
		}
	}
}

// Subscribe attaches a new subscriber to the game's topic, creating
// the topic if needed. Subscribing to an absent game is allowed; the
// channel just stays silent until such a game publishes.
func (b *Bus) Subscribe(gameID string) chan Event {
	ch := make(chan Event, b.buffer)
	b.mu.Lock()
	defer b.mu.Unlock()
	subs, ok := b.topics[gameID]
	if !ok {
		subs = map[chan Event]struct{}{}
		b.topics[gameID] = subs
	}
	subs[ch] = struct{}{}
	return ch
}

// Unsubscribe detaches and closes a subscriber channel.
func (b *Bus) Unsubscribe(gameID string, ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.topics[gameID]
	if _, ok := subs[ch]; ok {
		delete(subs, ch)
		close(ch)
	}
}
