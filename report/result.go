package report

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for request validation. These are the only faults the
// screening pipeline surfaces to callers; use errors.Is() to test for them.
var (
	// ErrEmptyEntity indicates the entity name was empty after trimming.
	ErrEmptyEntity = errors.New("entity is required")

	// ErrUnknownSearchMode indicates the search mode was not one of the
	// recognized values.
	ErrUnknownSearchMode = errors.New("unknown search mode")
)

// Request describes a single screening invocation: the entity to screen
// and how wide the search should reach. Immutable once created.
type Request struct {
	// Entity is the person, company, or organization being screened.
	Entity string

	// Mode selects the risk-keyword set used for the search.
	Mode SearchMode
}

// NewRequest validates and builds a screening request. The entity is
// trimmed of surrounding whitespace; an empty entity or an unrecognized
// search mode is rejected before any other work happens.
func NewRequest(entity string, mode SearchMode) (Request, error) {
	entity = strings.TrimSpace(entity)
	if entity == "" {
		return Request{}, ErrEmptyEntity
	}
	if !mode.IsValid() {
		return Request{}, fmt.Errorf("%w: %s", ErrUnknownSearchMode, mode)
	}
	return Request{Entity: entity, Mode: mode}, nil
}

// Finding is one discrete adverse-information item returned by the agent.
// Date, source, and URL are optional; the agent omits them when the source
// material does not carry them.
type Finding struct {
	// Category classifies the finding (e.g., "Sanctions", "Legal Issues").
	Category string `json:"category"`

	// Severity indicates how serious the finding is.
	Severity Severity `json:"severity"`

	// Title is a brief summary of the finding.
	Title string `json:"title"`

	// Description provides detailed information about the finding.
	Description string `json:"description"`

	// Date is the date of the underlying event, if known.
	Date string `json:"date,omitempty"`

	// Source names the publication or dataset the finding came from.
	Source string `json:"source,omitempty"`

	// URL links to the source material, if available.
	URL string `json:"url,omitempty"`
}

// ScreeningResult is the structured outcome of one screening invocation.
// It is created exactly once per invocation and not modified afterwards.
// Findings keep the relevance order the agent returned them in.
type ScreeningResult struct {
	// Entity is the name that was screened, as supplied by the caller.
	Entity string `json:"entity"`

	// Timestamp is the UTC creation time of the result.
	Timestamp time.Time `json:"timestamp"`

	// SearchMode is the mode the screening ran under.
	SearchMode SearchMode `json:"searchMode"`

	// RiskLevel is the overall classification of the outcome.
	RiskLevel RiskLevel `json:"riskLevel"`

	// Summary is a brief overview of what was found.
	Summary string `json:"summary"`

	// Findings lists the adverse-information items, most relevant first.
	Findings []Finding `json:"findings"`

	// Recommendations lists suggested follow-up actions.
	Recommendations []string `json:"recommendations"`
}

// NewErrorResult builds the well-formed result that stands in for a failed
// screening: the transport or service error is summarized, findings are
// empty, and the recommendations direct the operator at the usual causes.
func NewErrorResult(req Request, err error, now time.Time) ScreeningResult {
	return ScreeningResult{
		Entity:     req.Entity,
		Timestamp:  now.UTC(),
		SearchMode: req.Mode,
		RiskLevel:  RiskError,
		Summary:    fmt.Sprintf("Error during screening: %v", err),
		Findings:   []Finding{},
		Recommendations: []string{
			"Check credential",
			"Verify network connection",
			"Try again",
		},
	}
}
