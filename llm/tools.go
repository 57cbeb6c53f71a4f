package llm

import "fmt"

// ToolDef declares a server-side tool capability for a request. The agent
// service runs the tool itself; the caller only declares that the request
// may use it.
type ToolDef struct {
	// Type is the versioned tool type identifier.
	Type string `json:"type"`

	// Name is the tool name the service recognizes.
	Name string `json:"name"`
}

const (
	webSearchToolType = "web_search_20250305"
	webSearchToolName = "web_search"
)

// WebSearchTool returns the web-search capability declaration. Screening
// requests always carry it so the agent can ground its findings in live
// sources.
func WebSearchTool() ToolDef {
	return ToolDef{Type: webSearchToolType, Name: webSearchToolName}
}

// Validate checks if the tool definition is valid.
func (t ToolDef) Validate() error {
	if t.Type == "" {
		return fmt.Errorf("tool type cannot be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("tool name cannot be empty")
	}
	return nil
}
