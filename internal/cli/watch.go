package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/pergola"
	"github.com/aretw0/pergola/internal/presentation/tui"
	"github.com/aretw0/pergola/pkg/adapters/redis"
)

// pingTimeout bounds the initial broker reachability check.
const pingTimeout = 5 * time.Second

// RunWatch tails a live workflow feed and renders each transition as it
// lands. It blocks until the feed is cancelled by SIGINT or SIGTERM.
func RunWatch(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	if interactive(opts) {
		tui.PrintBanner(strings.TrimSpace(pergola.Version))
	}

	key := opts.Key
	if key == "" {
		key = redis.DefaultKey
	}

	client := backend.NewClient(&backend.Options{Addr: opts.Addr})
	defer client.Close()

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	// Fail fast on an unreachable broker instead of polling forever.
	pingCtx, cancel := context.WithTimeout(sigCtx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("cannot reach feed at %s: %w", opts.Addr, err)
	}

	feed := redis.NewFromClient(client,
		redis.WithKey(key),
		redis.WithLogger(logger),
	)

	logger.Info("Tailing feed", "addr", opts.Addr, "key", key)

	console := newConsole(opts)
	if err := console.TitleBanner("Live Workflow Steps"); err != nil {
		return err
	}

	step := 0
	var prev map[string]any
	for tr := range feed.Tail(sigCtx) {
		step++
		var err error
		if opts.Deltas {
			err = console.StepDelta(step, tr, prev)
		} else {
			err = console.Step(step, tr)
		}
		if err != nil {
			// Unlabeled transitions are dropped, not fatal: the feed outlives
			// any single bad element.
			logger.Warn("Dropping transition", "err", err)
			step--
			continue
		}
		prev = tr.State
	}

	if sig := sigCtx.Signal(); sig != nil {
		fmt.Printf("\n")
		printSystemMessage("Stopped after %d steps (%v).", step, sig)
	}
	return nil
}
