package agents

import "time"

// TurnRequest carries everything the backend needs to produce one reply.
type TurnRequest struct {
	// Message is the user's prompt for this turn.
	Message string
	// Model selects the backend model; empty means the backend default.
	Model string
	// Timeout bounds the turn on the backend side. The engine itself never
	// enforces it; a backend-side timeout surfaces as a stream error.
	Timeout time.Duration
	// RecursionLimit bounds agent/tool round-trips on the backend side.
	RecursionLimit int
	// ThreadID identifies the conversation thread across turns.
	ThreadID string
	// EnabledToolGroups lists the tool server groups available this turn;
	// nil means all configured groups.
	EnabledToolGroups []string
}
