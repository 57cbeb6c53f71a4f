package screening

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adversight/screening/history"
	"github.com/adversight/screening/llm"
	"github.com/adversight/screening/prompt"
	"github.com/adversight/screening/report"
)

// Service contract constants. These are fixed for the core and not
// user-configurable.
const (
	// ModelID identifies the model serving every screening request.
	ModelID = "claude-sonnet-4-20250514"

	// MaxTokens is the response-size ceiling per screening request.
	MaxTokens = 4000
)

// Screener runs the screening pipeline: prompt construction, one agent
// call, result extraction, risk classification, and history recording.
//
// A Screener drives one screening at a time; invocation is sequential and
// synchronous. The history store it owns is session-scoped state, so a
// multi-user embedder must create one Screener (or at least one store) per
// session.
type Screener struct {
	client  llm.Client
	history *history.Store
	logger  *slog.Logger
	tracer  trace.Tracer
}

// New creates a Screener. Without options it talks to the production
// Anthropic endpoint, keeps its own history store, logs through
// slog.Default, and does not trace.
func New(opts ...Option) *Screener {
	s := &Screener{
		client:  llm.NewAnthropicClient(),
		history: history.NewStore(),
		logger:  slog.Default(),
		tracer:  noop.NewTracerProvider().Tracer("screening"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// History returns the store holding this screener's past results, most
// recent first.
func (s *Screener) History() *history.Store {
	return s.history
}

// Screen screens the entity and returns a structured result.
//
// An empty entity or unrecognized search mode is rejected with a
// validation *Error before any side effect, transport call included.
// Every other path returns a well-formed result and a nil error: transport
// and service failures become a riskLevel=ERROR result, and agent output
// the extractor cannot decode becomes a MEDIUM-risk fallback. No retry is
// ever issued; the call blocks until the full agent response or failure.
//
// The credential travels to the transport only and is never persisted or
// logged.
func (s *Screener) Screen(ctx context.Context, entity string, mode report.SearchMode, cred llm.Credential) (report.ScreeningResult, error) {
	const op = "Screener.Screen"

	req, err := report.NewRequest(entity, mode)
	if err != nil {
		return report.ScreeningResult{}, NewValidationError(op, err)
	}

	runID := uuid.New().String()
	ctx, span := s.tracer.Start(ctx, "screening.Screen", trace.WithAttributes(
		attribute.String("screening.run_id", runID),
		attribute.String("screening.entity", req.Entity),
		attribute.String("screening.mode", req.Mode.String()),
	))
	defer span.End()

	logger := s.logger.With("run_id", runID, "entity", req.Entity, "mode", req.Mode.String())

	instruction, err := prompt.Build(req)
	if err != nil {
		return report.ScreeningResult{}, NewInternalError(op, err)
	}

	compReq := llm.NewCompletionRequest(ModelID,
		[]llm.Message{llm.NewUserMessage(instruction)},
		llm.WithMaxTokens(MaxTokens),
		llm.WithTools(llm.WebSearchTool()),
	)

	logger.Info("screening started")
	resp, err := s.client.Complete(ctx, cred, compReq)
	if err != nil {
		logger.Error("agent call failed", "error", err)
		res := report.NewErrorResult(req, err, time.Now())
		s.history.Append(res)
		span.SetAttributes(attribute.String("screening.risk_level", res.RiskLevel.String()))
		return res, nil
	}

	extraction := report.Extract(resp.Content, req, time.Now())
	if !extraction.Parsed {
		logger.Warn("no structured payload in agent output, fallback result used")
	}
	res := report.Normalize(extraction.Result)
	s.history.Append(res)

	span.SetAttributes(attribute.String("screening.risk_level", res.RiskLevel.String()))
	logger.Info("screening complete",
		"risk_level", res.RiskLevel.String(),
		"findings", len(res.Findings),
		"tokens", resp.Usage.Total(),
	)
	return res, nil
}
