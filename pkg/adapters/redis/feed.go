package redis

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/trace"
)

// DefaultKey is the list key workflow engines push transition lines onto.
const DefaultKey = "pergola:steps"

// defaultBlock is how long one BLPOP waits before re-checking the context.
const defaultBlock = 1 * time.Second

// retryBackoff paces polling after a transport error.
const retryBackoff = 500 * time.Millisecond

// Feed tails state transitions that a workflow engine pushes onto a Redis
// list, one JSON value per element, in execution order.
type Feed struct {
	client *backend.Client
	key    string
	block  time.Duration
	logger *slog.Logger
}

// FeedOption configures a Feed.
type FeedOption func(*Feed)

// WithKey overrides the list key to tail.
func WithKey(key string) FeedOption {
	return func(f *Feed) {
		f.key = key
	}
}

// WithBlock sets the per-poll blocking duration.
func WithBlock(d time.Duration) FeedOption {
	return func(f *Feed) {
		f.block = d
	}
}

// WithLogger sets a structured logger for skipped elements and transport
// errors. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) FeedOption {
	return func(f *Feed) {
		f.logger = logger
	}
}

// NewFromClient creates a Feed reading from an existing client.
func NewFromClient(client *backend.Client, opts ...FeedOption) *Feed {
	f := &Feed{
		client: client,
		key:    DefaultKey,
		block:  defaultBlock,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return f
}

// Tail streams transitions in push order until ctx is cancelled; the
// returned channel closes when it ends. Malformed elements are logged and
// skipped rather than killing the stream, and transport errors are retried
// with backoff so the feed survives an engine or broker restart.
func (f *Feed) Tail(ctx context.Context) <-chan domain.StateTransition {
	ch := make(chan domain.StateTransition, 1)

	go func() {
		defer close(ch)
		for {
			res, err := f.client.BLPop(ctx, f.block, f.key).Result()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				// Poll timeout: nothing queued, go around.
				if errors.Is(err, backend.Nil) {
					continue
				}
				f.logger.Warn("feed poll failed", "err", err, "key", f.key)
				select {
				case <-ctx.Done():
					return
				case <-time.After(retryBackoff):
				}
				continue
			}

			// BLPOP returns [key, value].
			if len(res) < 2 {
				continue
			}
			tr, err := trace.ParseTransition([]byte(res[1]))
			if err != nil {
				f.logger.Warn("skipping malformed transition", "err", err, "key", f.key)
				continue
			}

			select {
			case ch <- tr:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}
