package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/term"

	"github.com/aretw0/pergola"
	"github.com/aretw0/pergola/internal/logging"
	"github.com/aretw0/pergola/internal/presentation/tui"
)

// SignalContext wraps a context and records the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// Unlike signal.NotifyContext it keeps the signal around so callers can
// report how a watch session ended.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-sc.Context.Done():
			// Cancelled elsewhere
		}
		sc.stop.Do(func() {
			signal.Stop(sc.sigCh)
		})
	}()

	return sc
}

// Signal returns the signal that caused the cancellation, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// Diagnostics go to Stderr so rendered output on Stdout stays clean.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}

// interactive reports whether stdout is a terminal and decoration is wanted.
func interactive(opts RunOptions) bool {
	if opts.Plain {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// newConsole assembles a Console honoring the shared presentation flags.
func newConsole(opts RunOptions) *pergola.Console {
	var copts []pergola.Option
	if opts.Sanitize {
		copts = append(copts, pergola.WithSanitize())
	}
	if opts.Deltas {
		copts = append(copts, pergola.WithStateDeltas())
	}
	if opts.Markdown && interactive(opts) {
		copts = append(copts, pergola.WithRenderer(tui.NewRenderer()))
	}
	return pergola.NewConsole(os.Stdout, copts...)
}
