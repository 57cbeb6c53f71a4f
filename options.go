package screening

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/adversight/screening/history"
	"github.com/adversight/screening/llm"
)

// Option configures a Screener.
type Option func(*Screener)

// WithClient sets the agent client used for completions. Tests use this to
// substitute a stub transport.
func WithClient(client llm.Client) Option {
	return func(s *Screener) {
		if client != nil {
			s.client = client
		}
	}
}

// WithHistory sets the history store recording screening results. Use this
// to scope history per session instead of per Screener.
func WithHistory(store *history.Store) Option {
	return func(s *Screener) {
		if store != nil {
			s.history = store
		}
	}
}

// WithLogger sets a custom logger. If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Screener) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTracer sets an OpenTelemetry tracer so each screening run produces a
// span. Without it, tracing is a no-op.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Screener) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}
