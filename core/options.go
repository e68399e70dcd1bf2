package chat

import (
	"time"

	"github.com/koscakluka/transcript-core/core/agents"
	"github.com/koscakluka/transcript-core/core/events"
	"github.com/koscakluka/transcript-core/core/transcripts"
)

type SessionOption func(*Session)

// WithAgent sets the backend the session opens turn streams against.
func WithAgent(agent agents.Agent) SessionOption {
	return func(s *Session) {
		s.agent = agent
	}
}

// WithModel selects the backend model for every turn of the session.
func WithModel(model string) SessionOption {
	return func(s *Session) {
		s.model = model
	}
}

// WithThreadID pins the conversation thread identifier. Without it the
// session generates one.
func WithThreadID(threadID string) SessionOption {
	return func(s *Session) {
		s.threadID = threadID
	}
}

// WithTimeout sets the backend-side per-turn timeout.
func WithTimeout(timeout time.Duration) SessionOption {
	return func(s *Session) {
		s.timeout = timeout
	}
}

// WithRecursionLimit bounds backend agent/tool round-trips per turn.
func WithRecursionLimit(limit int) SessionOption {
	return func(s *Session) {
		s.recursionLimit = limit
	}
}

// WithEnabledToolGroups restricts which tool server groups the backend may
// use. Repeating this option overwrites the previous set.
func WithEnabledToolGroups(groups ...string) SessionOption {
	return func(s *Session) {
		s.enabledToolGroups = groups
	}
}

type PromptOptions struct {
	onUpdate     func(message *transcripts.Message)
	onDiagnostic func(diagnostic Diagnostic)
	onEvent      func(event events.Event)
	onCompletion func(message *transcripts.Message)
}

type PromptOption func(*PromptOptions)

// WithUpdateCallback registers a callback that receives an immutable
// snapshot of the in-flight assistant message after every applied event,
// synchronously, so consumers can render incrementally.
func WithUpdateCallback(callback func(message *transcripts.Message)) PromptOption {
	return func(o *PromptOptions) {
		o.onUpdate = callback
	}
}

// WithDiagnosticCallback registers a callback for recoverable stream
// anomalies. Diagnostics never abort the turn.
func WithDiagnosticCallback(callback func(diagnostic Diagnostic)) PromptOption {
	return func(o *PromptOptions) {
		o.onDiagnostic = callback
	}
}

// WithEventCallback registers a callback that receives every applied stream
// event plus the turn lifecycle events.
func WithEventCallback(callback func(event events.Event)) PromptOption {
	return func(o *PromptOptions) {
		o.onEvent = callback
	}
}

// WithCompletionCallback registers a callback for the final snapshot of the
// assistant message, whatever terminal state the turn reached.
func WithCompletionCallback(callback func(message *transcripts.Message)) PromptOption {
	return func(o *PromptOptions) {
		o.onCompletion = callback
	}
}
