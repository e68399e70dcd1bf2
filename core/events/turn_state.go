package events

const (
	// KindTurnStarted identifies turn start.
	KindTurnStarted Kind = "turn_state.started"
	// KindTurnCompleted identifies successful turn completion.
	KindTurnCompleted Kind = "turn_state.completed"
	// KindTurnFailed identifies turn failure.
	KindTurnFailed Kind = "turn_state.failed"
	// KindTurnCancelled identifies turn cancellation.
	KindTurnCancelled Kind = "turn_state.cancelled"
)

// TurnStarted marks the start of a turn.
type TurnStarted struct {
	Base
	TurnID string
}

// NewTurnStarted creates a turn started event.
func NewTurnStarted(turnID string) TurnStarted {
	return TurnStarted{Base: NewBase(KindTurnStarted), TurnID: turnID}
}

// TurnCompleted marks successful completion of a turn.
type TurnCompleted struct {
	Base
	TurnID string
}

// NewTurnCompleted creates a turn completed event.
func NewTurnCompleted(turnID string) TurnCompleted {
	return TurnCompleted{Base: NewBase(KindTurnCompleted), TurnID: turnID}
}

// TurnFailed marks failure of a turn.
type TurnFailed struct {
	Base
	TurnID string
	Reason string
}

// NewTurnFailed creates a turn failed event.
func NewTurnFailed(turnID, reason string) TurnFailed {
	return TurnFailed{Base: NewBase(KindTurnFailed), TurnID: turnID, Reason: reason}
}

// TurnCancelled marks cancellation of a turn.
type TurnCancelled struct {
	Base
	TurnID string
}

// NewTurnCancelled creates a turn cancelled event.
func NewTurnCancelled(turnID string) TurnCancelled {
	return TurnCancelled{Base: NewBase(KindTurnCancelled), TurnID: turnID}
}
