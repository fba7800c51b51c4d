package store

import (
	"sync"

	"listora/logger"
)

type Op string

const (
	OpAdd     Op = "add"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
	OpReplace Op = "replace"
	OpCounts  Op = "counts"
)

// Change is the typed notification published after every successful
// mutation. Observers that only want the legacy "something changed,
// reload everything" behavior can ignore every field.
type Change struct {
	Key     string `json:"key"`
	Op      Op     `json:"op"`
	Version int64  `json:"version"`
	// Origin is set on changes injected from another service instance;
	// locally produced changes leave it empty.
	Origin string `json:"origin,omitempty"`
}

// Broadcaster fans changes out to every subscriber in this process.
// Subscribers get a buffered channel; a subscriber that falls behind has
// messages dropped rather than blocking the publisher.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[int]chan Change
	next int
	log  *logger.Logger
}

func NewBroadcaster(log *logger.Logger) *Broadcaster {
	return &Broadcaster{
		subs: make(map[int]chan Change),
		log:  log.With("component", "Broadcaster"),
	}
}

// Subscribe registers an observer. The returned cancel func must be
// called exactly once when the observer unmounts; it removes the
// subscription and closes the channel.
func (b *Broadcaster) Subscribe() (<-chan Change, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Change, 16)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if c, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (b *Broadcaster) Publish(change Change) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		select {
		case ch <- change:
		default:
			b.log.Warn("dropping change for slow subscriber", "subscriber", id, "key", change.Key)
		}
	}
}

func (b *Broadcaster) subscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
