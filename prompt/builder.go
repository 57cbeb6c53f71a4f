// Package prompt renders a screening request into the instruction the
// agent receives. Construction is deterministic: the same request always
// produces the same prompt.
package prompt

import (
	"fmt"

	"github.com/adversight/screening/report"
)

// Keyword hints steering the agent's search, by mode.
const (
	comprehensiveHint = "controversy scandal investigation lawsuit sanction fine penalty fraud"
	basicHint         = "negative news"
)

// promptTemplate is the fixed instruction set. It embeds the entity, the
// mode-dependent keyword hint, and the JSON schema the agent must follow
// so the extractor has a structured payload to recover.
const promptTemplate = `You are a compliance screening AI agent. Search for negative news, controversies, legal issues, sanctions, and regulatory problems related to: "%s"

Focus the search on: %s

Please search comprehensively and then provide a structured analysis in JSON format with the following structure:
{
  "riskLevel": "HIGH|MEDIUM|LOW|CLEAR",
  "summary": "Brief overview of findings",
  "findings": [
    {
      "category": "category name",
      "severity": "HIGH|MEDIUM|LOW",
      "title": "finding title",
      "description": "detailed description",
      "date": "date if available",
      "source": "source name",
      "url": "source url if available"
    }
  ],
  "recommendations": ["list of recommendations"]
}

Search thoroughly and provide accurate, factual information only. If no significant negative news is found, indicate CLEAR risk level.`

// Build renders the screening request into the agent instruction. It does
// no network or parsing work and fails only on an empty entity.
func Build(req report.Request) (string, error) {
	if req.Entity == "" {
		return "", fmt.Errorf("entity is required")
	}

	hint := basicHint
	if req.Mode == report.ModeComprehensive {
		hint = comprehensiveHint
	}

	return fmt.Sprintf(promptTemplate, req.Entity, hint), nil
}
