package agents

// ToolConfig describes how the backend reaches one tool server.
type ToolConfig struct {
	Command   string            `json:"command,omitempty"`
	Args      []string          `json:"args,omitempty"`
	URL       string            `json:"url,omitempty"`
	Transport string            `json:"transport,omitempty"`
	Headers   map[string]string `json:"headers,omitempty"`
}

// ToolInfo describes one tool exposed by a configured tool server.
type ToolInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	ServerName  string         `json:"server_name"`
}

// Status is the backend's self-reported agent state.
type Status struct {
	Initialized     bool     `json:"initialized"`
	ToolCount       int      `json:"tool_count"`
	Model           string   `json:"model"`
	AvailableModels []string `json:"available_models"`
}
