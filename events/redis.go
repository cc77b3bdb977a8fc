package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const defaultChannel = "xlCartEvents"

type wireEvent struct {
	Event
	Origin string `json:"origin"`
}

// RedisBus mirrors the local bus over a Redis pub/sub channel so mutations
// made by another process reach this one's subscribers, the counterpart of
// the original storefront's cross-window storage event. Each bus tags its
// publishes with an origin id and skips its own messages on the way back in,
// so local subscribers see every event exactly once.
type RedisBus struct {
	local   *LocalBus
	rdb     *goredis.Client
	channel string
	origin  string
}

func NewRedisBus(ctx context.Context, addr string) (*RedisBus, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	b := &RedisBus{
		local:   NewLocalBus(),
		rdb:     rdb,
		channel: defaultChannel,
		origin:  uuid.NewString(),
	}

	sub := rdb.Subscribe(ctx, b.channel)
	// ensures the subscription actually started
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		_ = rdb.Close()
		return nil, fmt.Errorf("redis subscribe: %w", err)
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
				var we wireEvent
				if err := json.Unmarshal([]byte(m.Payload), &we); err != nil {
					log.Printf("bad cart event payload: %v", err)
					continue
				}
				if we.Origin == b.origin {
					continue
				}
				b.local.Publish(ctx, we.Event)
			}
		}
	}()

	return b, nil
}

func (b *RedisBus) Publish(ctx context.Context, ev Event) {
	b.local.Publish(ctx, ev)

	raw, err := json.Marshal(wireEvent{Event: ev, Origin: b.origin})
	if err != nil {
		return
	}
	if err := b.rdb.Publish(ctx, b.channel, raw).Err(); err != nil {
		log.Printf("redis publish failed: %v", err)
	}
}

func (b *RedisBus) Subscribe() (<-chan Event, func()) {
	return b.local.Subscribe()
}

func (b *RedisBus) Close() error {
	return b.rdb.Close()
}
