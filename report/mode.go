package report

import "fmt"

// SearchMode selects how wide the adverse-media search should reach.
type SearchMode string

const (
	// ModeComprehensive searches across the full risk-keyword set:
	// controversies, investigations, lawsuits, sanctions, fines, fraud.
	ModeComprehensive SearchMode = "comprehensive"

	// ModeBasic limits the search to general negative news.
	ModeBasic SearchMode = "basic"
)

// IsValid returns true if the search mode is a recognized value.
func (m SearchMode) IsValid() bool {
	switch m {
	case ModeComprehensive, ModeBasic:
		return true
	default:
		return false
	}
}

// String returns the string representation of the search mode.
func (m SearchMode) String() string {
	return string(m)
}

// ParseSearchMode parses a string into a SearchMode value.
// Returns an error if the string is not a valid search mode.
func ParseSearchMode(s string) (SearchMode, error) {
	mode := SearchMode(s)
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid search mode: %s", s)
	}
	return mode, nil
}

// AllSearchModes returns all valid search modes.
func AllSearchModes() []SearchMode {
	return []SearchMode{ModeComprehensive, ModeBasic}
}
