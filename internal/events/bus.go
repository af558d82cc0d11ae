// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bpaksoy/capstone/internal/logging"
	"github.com/bpaksoy/capstone/internal/metrics"
)

const (
	outputBuffer      = 64
	eventTypeMetadata = "event_type"
)

var (
	// ErrBusClosed is returned when publishing on a closed bus.
	ErrBusClosed = errors.New("event bus is closed")

	// ErrUnknownEvent is returned for payload types with no topic.
	ErrUnknownEvent = errors.New("unknown event type")
)

// Publisher is the publish side of the bus, for components that only emit.
type Publisher interface {
	Publish(ctx context.Context, payload any) error
}

// Bus is an in-process pub/sub.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger zerolog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewBus creates a bus whose Watermill logs go through zerolog.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBus(logger zerolog.Logger) *Bus {
	logger = logger.With().Str("component", "event_bus").Logger()
	ps := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: outputBuffer,
	}, logging.NewWatermillAdapter(logger))

	return &Bus{pubsub: ps, logger: logger}
}

// Publish encodes payload and sends it on the payload's topic.
func (b *Bus) Publish(ctx context.Context, payload any) error {
	topic, ok := topicOf(payload)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnknownEvent, payload)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", topic, err)
	}

	msg := message.NewMessage(uuid.New().String(), data)
	msg.Metadata.Set(eventTypeMetadata, topic)
	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		msg.Metadata.Set("request_id", requestID)
	}
	msg.SetContext(ctx)

	if err := b.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}
	metrics.RecordEventPublished(topic)

	b.logger.Debug().Str("topic", topic).Str("message_id", msg.UUID).Msg("Event published")
	return nil
}

// Subscribe returns a channel of raw messages for topic. Each message must
// be acked before the next one is delivered to this subscriber.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return nil, ErrBusClosed
	}
	return b.pubsub.Subscribe(ctx, topic)
}

// Close stops the bus and closes every subscription channel.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	return b.pubsub.Close()
}

// Decode unmarshals a message payload.
func Decode[T any](msg *message.Message) (T, error) {
	var v T
	if err := json.Unmarshal(msg.Payload, &v); err != nil {
		return v, fmt.Errorf("decode message %s: %w", msg.UUID, err)
	}
	return v, nil
}

// Consume subscribes to topic and calls handle for each decoded event until
// ctx ends or the bus closes. Handler and decode errors are logged and the
// message is acked anyway; in-process delivery has no dead-letter queue.
func Consume[T any](ctx context.Context, b *Bus, topic string, handle func(context.Context, T) error) error {
	msgs, err := b.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			event, err := Decode[T](msg)
			if err == nil {
				err = handle(ctx, event)
			}
			if err != nil {
				b.logger.Warn().Err(err).Str("topic", topic).Str("message_id", msg.UUID).Msg("Event handler failed")
			}
			msg.Ack()
		}
	}
}

// CountBookmarkEvents records bookmark toggles in metrics until ctx ends.
func CountBookmarkEvents(ctx context.Context, b *Bus) error {
	return Consume(ctx, b, TopicBookmarksChanged, func(_ context.Context, e BookmarkChanged) error {
		metrics.RecordBookmarkEvent(e.Bookmarked)
		return nil
	})
}

// Notify consumes topic and signals ch for every event without blocking.
// A buffered ch of size 1 coalesces bursts into one pending signal.
func Notify[T any](ctx context.Context, b *Bus, topic string, ch chan<- struct{}) error {
	return Consume(ctx, b, topic, func(_ context.Context, _ T) error {
		select {
		case ch <- struct{}{}:
		default:
		}
		return nil
	})
}
