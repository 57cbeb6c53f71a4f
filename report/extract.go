package report

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// summaryLimit caps how much raw text the fallback summary carries.
	summaryLimit = 300

	fallbackSummary     = "Unable to parse response"
	fallbackDescription = "No detailed findings available"
)

// Extraction is the outcome of extracting a result from raw agent output.
// The result is always well-formed; Parsed distinguishes a decoded payload
// from one the fallback rule synthesized, so callers and tests do not have
// to guess from the summary text.
type Extraction struct {
	// Result is the extracted screening result.
	Result ScreeningResult

	// Parsed reports whether the result was decoded from a structured
	// payload in the agent output. False means the fallback applied.
	Parsed bool
}

// Extract recovers a ScreeningResult from the raw text the agent returned.
//
// The agent wraps its structured payload in explanatory prose, so Extract
// scans from the first '{' to the last '}' and decodes that span. The span
// is assumed to be the single largest brace-delimited region; prose that
// introduces an extra brace pair defeats the heuristic, which is accepted
// since the agent's output format is not contractually guaranteed.
//
// If no brace pair exists, or the span is not a JSON object, Extract
// synthesizes a MEDIUM-risk fallback carrying the raw text so the caller
// always receives a complete result. Entity, timestamp, and search mode
// are stamped from the caller's request in every case; values the agent
// reported for them are ignored.
func Extract(raw string, req Request, now time.Time) Extraction {
	now = now.UTC()

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		span := raw[start : end+1]
		if gjson.Valid(span) {
			if payload := gjson.Parse(span); payload.IsObject() {
				return Extraction{Result: fromPayload(payload, req, now), Parsed: true}
			}
		}
	}

	return Extraction{Result: fallback(raw, req, now), Parsed: false}
}

// fromPayload maps a decoded payload onto a ScreeningResult. Absent fields
// become empty values; riskLevel and severities are carried as-is for the
// classifier to coerce.
func fromPayload(payload gjson.Result, req Request, now time.Time) ScreeningResult {
	findings := []Finding{}
	payload.Get("findings").ForEach(func(_, item gjson.Result) bool {
		findings = append(findings, Finding{
			Category:    item.Get("category").String(),
			Severity:    Severity(item.Get("severity").String()),
			Title:       item.Get("title").String(),
			Description: item.Get("description").String(),
			Date:        item.Get("date").String(),
			Source:      item.Get("source").String(),
			URL:         item.Get("url").String(),
		})
		return true
	})

	recommendations := []string{}
	payload.Get("recommendations").ForEach(func(_, item gjson.Result) bool {
		recommendations = append(recommendations, item.String())
		return true
	})

	return ScreeningResult{
		Entity:          req.Entity,
		Timestamp:       now,
		SearchMode:      req.Mode,
		RiskLevel:       RiskLevel(payload.Get("riskLevel").String()),
		Summary:         payload.Get("summary").String(),
		Findings:        findings,
		Recommendations: recommendations,
	}
}

// fallback builds the synthetic result used when no structured payload
// could be decoded. All required fields are populated so downstream code
// never special-cases a missing one.
func fallback(raw string, req Request, now time.Time) ScreeningResult {
	summary := fallbackSummary
	description := fallbackDescription
	if raw != "" {
		description = raw
		summary = raw
		if runes := []rune(raw); len(runes) > summaryLimit {
			summary = string(runes[:summaryLimit])
		}
	}

	return ScreeningResult{
		Entity:     req.Entity,
		Timestamp:  now,
		SearchMode: req.Mode,
		RiskLevel:  RiskMedium,
		Summary:    summary,
		Findings: []Finding{{
			Category:    "General",
			Severity:    SeverityMedium,
			Title:       "Analysis Results",
			Description: description,
			Date:        now.Format("2006-01-02"),
			Source:      "AI Analysis",
		}},
		Recommendations: []string{
			"Review the detailed findings",
			"Conduct further due diligence",
		},
	}
}
