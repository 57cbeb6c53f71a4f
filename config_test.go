package screening

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adversight/screening/llm"
	"github.com/adversight/screening/report"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screening.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: http://localhost:9999\nrequest_timeout: 90s\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.GetRequestTimeout())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [unclosed"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_GetRequestTimeout(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want time.Duration
	}{
		{"nil config means no timeout", nil, 0},
		{"empty means no timeout", &Config{}, 0},
		{"valid duration", &Config{RequestTimeout: "2m"}, 2 * time.Minute},
		{"invalid duration means no timeout", &Config{RequestTimeout: "soon"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.GetRequestTimeout())
		})
	}
}

// TestNewFromConfig_EndToEnd drives the pipeline through the real HTTP
// client against a local stand-in for the agent service.
func TestNewFromConfig_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		fmt.Fprint(w, `{
			"content": [{"type": "text", "text": "analysis {\"riskLevel\":\"CLEAR\",\"summary\":\"Nothing adverse found\",\"findings\":[],\"recommendations\":[]}"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 20}
		}`)
	}))
	defer server.Close()

	s := NewFromConfig(&Config{BaseURL: server.URL, RequestTimeout: "30s"})

	res, err := s.Screen(context.Background(), "Acme Corp", report.ModeComprehensive, llm.Credential{APIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, report.RiskClear, res.RiskLevel)
	assert.Equal(t, "Nothing adverse found", res.Summary)
	assert.Equal(t, 1, s.History().Len())
}
