// Package logging defines the structured logger injected into every
// component: stores, photo backends, the weather client and the CLI all log
// through the same context-aware interface, backed by log/slog.
package logging

import "context"

// Logger logs structured messages. The variadic args are key–value pairs:
//
//	log.Info(ctx, "upload saved", "id", id, "title", title)
type Logger interface {
	// Debug logs fine-grained diagnostic detail (asset copies, API calls).
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs a normal state change (record saved, storage initialized).
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs degraded-but-continuing conditions: unreadable stored
	// state, failed photo-file cleanup, an unavailable device position.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures that are reported back to the user.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value
	// pairs.
	With(args ...any) Logger
}
