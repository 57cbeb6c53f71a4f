package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adversight/screening/report"
)

func TestBuild_ContainsEntityVerbatim(t *testing.T) {
	entities := []string{
		"Acme Corp",
		"John Smith",
		"XYZ Bank AG",
		"O'Neill & Sons",
		`Acme "Global" Holdings`,
		`C:\Legacy Systems LLC`,
	}
	for _, entity := range entities {
		for _, mode := range report.AllSearchModes() {
			req := report.Request{Entity: entity, Mode: mode}
			got, err := Build(req)
			require.NoError(t, err)
			assert.NotEmpty(t, got)
			assert.Contains(t, got, entity)
		}
	}
}

func TestBuild_ModeKeywordHints(t *testing.T) {
	comprehensive, err := Build(report.Request{Entity: "Acme Corp", Mode: report.ModeComprehensive})
	require.NoError(t, err)
	basic, err := Build(report.Request{Entity: "Acme Corp", Mode: report.ModeBasic})
	require.NoError(t, err)

	for _, keyword := range []string{"controversy", "scandal", "investigation", "lawsuit", "sanction", "fine", "penalty", "fraud"} {
		assert.Contains(t, comprehensive, keyword)
	}
	assert.Contains(t, basic, "negative news")
	assert.NotContains(t, basic, "lawsuit sanction")
	assert.NotEqual(t, comprehensive, basic)
}

func TestBuild_DeclaresSchema(t *testing.T) {
	got, err := Build(report.Request{Entity: "Acme Corp", Mode: report.ModeBasic})
	require.NoError(t, err)

	for _, key := range []string{"riskLevel", "summary", "findings", "recommendations", "category", "severity", "title", "description", "date", "source", "url"} {
		assert.Contains(t, got, key)
	}
	assert.Contains(t, got, "HIGH|MEDIUM|LOW|CLEAR")
}

func TestBuild_Deterministic(t *testing.T) {
	req := report.Request{Entity: "Acme Corp", Mode: report.ModeComprehensive}
	first, err := Build(req)
	require.NoError(t, err)
	second, err := Build(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuild_EmptyEntity(t *testing.T) {
	_, err := Build(report.Request{Entity: "", Mode: report.ModeBasic})
	assert.Error(t, err)
}
