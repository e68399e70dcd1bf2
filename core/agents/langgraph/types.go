// Package langgraph is the client for the LangGraph agent backend. It turns
// the backend's line-delimited frame protocol into typed stream events.
package langgraph

const (
	frameMarker = "data:"

	frameTypeText     = "text"
	frameTypeTool     = "tool"
	frameTypeComplete = "complete"
	frameTypeError    = "error"

	toolStartedPrefix = "Tool: "
	toolInputPrefix   = "Tool Input: "
	toolResultPrefix  = "Tool Result:"
)

// frame is one decoded unit of the inbound protocol, prior to
// classification.
type frame struct {
	Type       string `json:"type"`
	Content    string `json:"content"`
	ToolCallID string `json:"tool_call_id,omitempty"`
	IsComplete bool   `json:"is_complete"`
}

// requestBody mirrors the backend's chat request model.
type requestBody struct {
	Message        string   `json:"message"`
	Model          string   `json:"model,omitempty"`
	TimeoutSeconds int      `json:"timeout_seconds,omitempty"`
	RecursionLimit int      `json:"recursion_limit,omitempty"`
	ThreadID       string   `json:"thread_id,omitempty"`
	EnabledTools   []string `json:"enabled_tools,omitempty"`
}
