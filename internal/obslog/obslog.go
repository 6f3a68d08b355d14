// Package obslog provides the core's only observability surface: a thin
// leveled wrapper around log/slog: a package-level handler guarded by a
// mutex and replaceable with SetHandler. The default handler writes to
// stderr at Warn level, so Absorbed's Debug records are dropped unless a
// lower-level handler is installed.
//
// The core never logs for control flow. Per the error-handling design,
// obslog exists for exactly two events: an operator absorbing a concrete
// runtime exception (division by zero, overflow, invalid float op) into a
// widened result, and an operator hitting a legitimate "not implemented"
// gap.
package obslog

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	handler slog.Handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger                = slog.New(handler)
)

// SetHandler replaces the default handler. Tests use this to capture
// output instead of writing to stderr.
func SetHandler(h slog.Handler) {
	mu.Lock()
	defer mu.Unlock()
	handler = h
	logger = slog.New(h)
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Absorbed records that an operator swallowed a concrete runtime exception
// and widened its result, per the soundness discipline: this is never an
// error, only a trace of what happened.
func Absorbed(op, domainName, reason string) {
	current().Debug("absorbed concrete exception, widened to top",
		slog.String("op", op),
		slog.String("domain", domainName),
		slog.String("reason", reason),
	)
}

// NotImplemented records a legitimate operator gap: a domain has no
// implementation for an operator the driver requested.
func NotImplemented(op, domainName string) {
	current().Warn("operator not implemented",
		slog.String("op", op),
		slog.String("domain", domainName),
	)
}
