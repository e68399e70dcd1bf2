package events

const (
	// KindToolCallStarted identifies the announcement of a new tool call.
	KindToolCallStarted Kind = "tool_call.started"
	// KindToolCallInput identifies arguments for an announced tool call.
	KindToolCallInput Kind = "tool_call.input"
	// KindToolCallResult identifies the result of an announced tool call.
	KindToolCallResult Kind = "tool_call.result"
)

// ToolCallStarted marks the announcement of a named tool call.
type ToolCallStarted struct {
	Base
	ID   string
	Name string
}

// NewToolCallStarted creates a tool call started event.
func NewToolCallStarted(id, name string) ToolCallStarted {
	return ToolCallStarted{Base: NewBase(KindToolCallStarted), ID: id, Name: name}
}

// ToolCallInput carries the arguments of a previously started tool call.
type ToolCallInput struct {
	Base
	ID        string
	Arguments string
}

// NewToolCallInput creates a tool call input event.
func NewToolCallInput(id, arguments string) ToolCallInput {
	return ToolCallInput{Base: NewBase(KindToolCallInput), ID: id, Arguments: arguments}
}

// ToolCallResult carries the result of a previously started tool call.
type ToolCallResult struct {
	Base
	ID     string
	Result string
}

// NewToolCallResult creates a tool call result event.
func NewToolCallResult(id, result string) ToolCallResult {
	return ToolCallResult{Base: NewBase(KindToolCallResult), ID: id, Result: result}
}
