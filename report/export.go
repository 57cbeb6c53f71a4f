package report

import (
	"encoding/json"
	"fmt"
)

// Export serializes a result to the canonical interchange form: indented
// JSON with the exact field names of the data model and an ISO-8601
// timestamp. External tooling (file export, history replay) relies on this
// representation, and ParseResult reverses it losslessly.
func Export(res ScreeningResult) ([]byte, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to export result: %w", err)
	}
	return data, nil
}

// ParseResult deserializes a result previously produced by Export.
func ParseResult(data []byte) (ScreeningResult, error) {
	var res ScreeningResult
	if err := json.Unmarshal(data, &res); err != nil {
		return ScreeningResult{}, fmt.Errorf("failed to parse result: %w", err)
	}
	return res, nil
}
