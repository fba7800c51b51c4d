package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"listora/logger"
	"listora/store"

	"github.com/google/uuid"
)

// Bus bridges partition changes between service instances over Redis
// pub/sub. Delivery is best-effort with no ordering guarantee beyond
// what Redis provides; every instance reloads conservatively on receipt,
// the same contract browsers get from the storage event.
type Bus struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
	id      string
}

type envelope struct {
	Origin string       `json:"origin"`
	Change store.Change `json:"change"`
}

func New(log *logger.Logger, addr, channel string) (*Bus, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}
	if channel == "" {
		channel = "assetsUpdated"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Bus{
		log:     log.With("component", "RealtimeBus"),
		rdb:     rdb,
		channel: channel,
		id:      uuid.NewString(),
	}, nil
}

// Start wires the bus to a store: locally produced changes are published
// to Redis, and changes from other instances are injected into the local
// broadcaster with their origin set, so they are never forwarded back.
func (b *Bus) Start(ctx context.Context, s *store.Store) error {
	sub := b.rdb.Subscribe(ctx, b.channel)

	// ensures the subscription actually started
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go func() {
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close()
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					_ = sub.Close()
					return
				}
				var env envelope
				if err := json.Unmarshal([]byte(m.Payload), &env); err != nil {
					b.log.Warn("bad bus payload", "error", err)
					continue
				}
				if env.Origin == b.id {
					continue
				}
				change := env.Change
				change.Origin = env.Origin
				s.Broadcaster().Publish(change)
			}
		}
	}()

	changes, cancel := s.Broadcaster().Subscribe()
	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case change, ok := <-changes:
				if !ok {
					return
				}
				// remote changes already made the round trip
				if change.Origin != "" {
					continue
				}
				raw, err := json.Marshal(envelope{Origin: b.id, Change: change})
				if err != nil {
					continue
				}
				if err := b.rdb.Publish(ctx, b.channel, raw).Err(); err != nil {
					b.log.Warn("bus publish failed", "key", change.Key, "error", err)
				}
			}
		}
	}()

	return nil
}

func (b *Bus) Close() error {
	if b == nil || b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}
