package report

import "fmt"

// RiskLevel is the overall classification of a screening outcome.
type RiskLevel string

const (
	// RiskHigh indicates significant adverse information was found.
	// Examples: active sanctions, fraud convictions, ongoing investigations
	RiskHigh RiskLevel = "HIGH"

	// RiskMedium indicates adverse information of uncertain weight,
	// including results the extractor could only partially recover.
	RiskMedium RiskLevel = "MEDIUM"

	// RiskLow indicates only minor adverse information was found.
	RiskLow RiskLevel = "LOW"

	// RiskClear indicates no significant adverse information was found.
	RiskClear RiskLevel = "CLEAR"

	// RiskError indicates the screening could not be completed.
	// The result carries a failure summary instead of findings.
	RiskError RiskLevel = "ERROR"
)

// Severity represents the severity of a single finding.
type Severity string

const (
	// SeverityHigh indicates a high-impact finding.
	SeverityHigh Severity = "HIGH"

	// SeverityMedium indicates a moderate finding. It is also the level
	// assigned to severities the agent reported outside the enumeration.
	SeverityMedium Severity = "MEDIUM"

	// SeverityLow indicates a minor finding.
	SeverityLow Severity = "LOW"
)

// IsValid returns true if the risk level is a recognized value.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskHigh, RiskMedium, RiskLow, RiskClear, RiskError:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk level.
func (r RiskLevel) String() string {
	return string(r)
}

// Normalize coerces the risk level into the enumeration. Unknown values
// map to RiskMedium; valid values pass through unchanged.
func (r RiskLevel) Normalize() RiskLevel {
	if r.IsValid() {
		return r
	}
	return RiskMedium
}

// ParseRiskLevel parses a string into a RiskLevel value.
// Returns an error if the string is not a valid risk level.
func ParseRiskLevel(s string) (RiskLevel, error) {
	level := RiskLevel(s)
	if !level.IsValid() {
		return "", fmt.Errorf("invalid risk level: %s", s)
	}
	return level, nil
}

// AllRiskLevels returns all valid risk levels in order from high to error.
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{RiskHigh, RiskMedium, RiskLow, RiskClear, RiskError}
}

// IsValid returns true if the severity is a recognized value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// Normalize coerces the severity into the enumeration. Unknown values
// map to SeverityMedium; valid values pass through unchanged.
func (s Severity) Normalize() Severity {
	if s.IsValid() {
		return s
	}
	return SeverityMedium
}

// ParseSeverity parses a string into a Severity value.
// Returns an error if the string is not a valid severity.
func ParseSeverity(s string) (Severity, error) {
	severity := Severity(s)
	if !severity.IsValid() {
		return "", fmt.Errorf("invalid severity: %s", s)
	}
	return severity, nil
}

// AllSeverities returns all valid severities in order from high to low.
func AllSeverities() []Severity {
	return []Severity{SeverityHigh, SeverityMedium, SeverityLow}
}

// Normalize returns a copy of the result whose risk level and finding
// severities are all members of the enumerations. Values outside the
// enumerations are coerced to MEDIUM rather than rejected, so Normalize
// never fails. Valid results pass through unchanged.
func Normalize(res ScreeningResult) ScreeningResult {
	res.RiskLevel = res.RiskLevel.Normalize()
	if res.Findings != nil {
		findings := make([]Finding, len(res.Findings))
		copy(findings, res.Findings)
		for i := range findings {
			findings[i].Severity = findings[i].Severity.Normalize()
		}
		res.Findings = findings
	}
	return res
}
