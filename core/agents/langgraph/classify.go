package langgraph

import (
	"fmt"
	"strings"

	"github.com/koscakluka/transcript-core/core/agents"
	"github.com/koscakluka/transcript-core/core/events"
)

// classifyFrame maps one frame to exactly one stream event.
//
// An error frame wins over its own completion flag so the failure reason is
// not lost; any other frame with the completion flag set terminates the
// turn regardless of its type.
func classifyFrame(f frame) (events.Event, error) {
	if f.Type == frameTypeError {
		return events.NewStreamFailed(f.Content), nil
	}
	if f.IsComplete || f.Type == frameTypeComplete {
		return events.NewStreamCompleted(), nil
	}

	switch f.Type {
	case frameTypeText:
		return events.NewResponseTextDelta(f.Content), nil
	case frameTypeTool:
		return classifyToolFrame(f)
	default:
		return nil, fmt.Errorf("%w: %q", agents.ErrUnknownFrameType, f.Type)
	}
}

func classifyToolFrame(f frame) (events.Event, error) {
	if f.ToolCallID == "" {
		return nil, fmt.Errorf("%w: tool frame without tool_call_id", agents.ErrMalformedFrame)
	}

	switch {
	case strings.HasPrefix(f.Content, toolInputPrefix):
		return events.NewToolCallInput(f.ToolCallID, strings.TrimPrefix(f.Content, toolInputPrefix)), nil
	case strings.HasPrefix(f.Content, toolResultPrefix):
		result := strings.TrimPrefix(f.Content, toolResultPrefix)
		result = strings.TrimPrefix(result, "\n")
		return events.NewToolCallResult(f.ToolCallID, result), nil
	case strings.HasPrefix(f.Content, toolStartedPrefix):
		name := strings.TrimSpace(strings.TrimPrefix(f.Content, toolStartedPrefix))
		return events.NewToolCallStarted(f.ToolCallID, name), nil
	default:
		return nil, fmt.Errorf("%w: tool frame content %q", agents.ErrUnknownFrameType, f.Content)
	}
}
