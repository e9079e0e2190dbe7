package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisSource adapts a Redis pub/sub channel into a Source. Each subscription
// opens its own Redis subscription and decodes every payload (JSON by
// default) before invoking the handler from a dedicated receive goroutine.
// Payloads that fail to decode are logged and skipped, not delivered.
type RedisSource[T any] struct {
	client  redis.UniversalClient
	channel string
	decode  func([]byte) (T, error)
	log     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	subs   map[string]*redis.PubSub
	closed bool
}

// RedisSourceOption configures a RedisSource.
type RedisSourceOption[T any] func(*RedisSource[T])

// WithDecoder replaces the default JSON payload decoder.
func WithDecoder[T any](decode func([]byte) (T, error)) RedisSourceOption[T] {
	return func(s *RedisSource[T]) {
		s.decode = decode
	}
}

// WithLogger sets the logger used for receive-loop failures.
// Defaults to slog.Default().
func WithLogger[T any](log *slog.Logger) RedisSourceOption[T] {
	return func(s *RedisSource[T]) {
		s.log = log
	}
}

// NewRedisSource creates a Source backed by the given Redis pub/sub channel.
// The client is borrowed, not owned: Close tears down the subscriptions but
// leaves the client open.
func NewRedisSource[T any](client redis.UniversalClient, channel string, opts ...RedisSourceOption[T]) *RedisSource[T] {
	ctx, cancel := context.WithCancel(context.Background())
	s := &RedisSource[T]{
		client:  client,
		channel: channel,
		decode: func(payload []byte) (T, error) {
			var v T
			err := json.Unmarshal(payload, &v)
			return v, err
		},
		log:    slog.Default(),
		ctx:    ctx,
		cancel: cancel,
		subs:   make(map[string]*redis.PubSub),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe opens a Redis subscription and delivers decoded occurrences to the
// handler until the returned subscription is released or the source is closed.
// If the source is already closed, it returns an already-released subscription.
func (s *RedisSource[T]) Subscribe(handler func(T)) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	if s.closed {
		return newReleasedSubscription(id)
	}

	pubsub := s.client.Subscribe(s.ctx, s.channel)
	s.subs[id] = pubsub

	sub := newSubscription(id, func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
		_ = pubsub.Close()
	})

	s.wg.Add(1)
	go s.receive(pubsub, sub, handler)

	return sub
}

// Close releases all subscriptions and waits for their receive goroutines to
// drain. It is safe to call multiple times.
func (s *RedisSource[T]) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	pubsubs := make([]*redis.PubSub, 0, len(s.subs))
	for _, ps := range s.subs {
		pubsubs = append(pubsubs, ps)
	}
	clear(s.subs)
	s.mu.Unlock()

	s.cancel()
	for _, ps := range pubsubs {
		_ = ps.Close()
	}
	s.wg.Wait()
	return nil
}

func (s *RedisSource[T]) receive(pubsub *redis.PubSub, sub *Subscription, handler func(T)) {
	defer s.wg.Done()

	for msg := range pubsub.Channel() {
		v, err := s.decode([]byte(msg.Payload))
		if err != nil {
			s.log.Error("events: failed to decode redis payload",
				slog.String("channel", s.channel),
				slog.String("subscription_id", sub.ID()),
				slog.Any("error", err),
			)
			continue
		}
		if sub.Released() {
			return
		}
		handler(v)
	}
}
