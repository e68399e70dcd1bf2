package chat

import "time"

// DiagnosticKind names a recoverable stream anomaly.
type DiagnosticKind string

const (
	// DiagnosticMalformedFrame is an inbound payload that could not be
	// decoded; the frame was skipped.
	DiagnosticMalformedFrame DiagnosticKind = "malformed_frame"
	// DiagnosticUnknownFrameType is a decoded frame that matched no known
	// event; the frame was skipped.
	DiagnosticUnknownFrameType DiagnosticKind = "unknown_frame_type"
	// DiagnosticOrphanToolEvent is a tool input or result that referenced
	// an id no started tool call ever announced; the event was skipped.
	DiagnosticOrphanToolEvent DiagnosticKind = "orphan_tool_event"
	// DiagnosticDuplicateToolCall is a started tool call reusing an id
	// already in the table; the first call was kept.
	DiagnosticDuplicateToolCall DiagnosticKind = "duplicate_tool_call"
	// DiagnosticAbnormalTermination is a stream that ended without a
	// terminal frame; completion was synthesized.
	DiagnosticAbnormalTermination DiagnosticKind = "abnormal_termination"
)

// Diagnostic records one recoverable anomaly observed while folding a turn.
// Diagnostics never abort the turn.
type Diagnostic struct {
	Kind      DiagnosticKind
	Detail    string
	Timestamp time.Time
}

func newDiagnostic(kind DiagnosticKind, detail string) Diagnostic {
	return Diagnostic{Kind: kind, Detail: detail, Timestamp: time.Now()}
}
