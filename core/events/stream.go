package events

const (
	// KindStreamCompleted identifies normal stream completion.
	KindStreamCompleted Kind = "stream.completed"
	// KindStreamFailed identifies a stream-reported error.
	KindStreamFailed Kind = "stream.failed"
)

// StreamCompleted marks normal completion of the inbound stream.
type StreamCompleted struct{ Base }

// NewStreamCompleted creates a stream completed event.
func NewStreamCompleted() StreamCompleted {
	return StreamCompleted{Base: NewBase(KindStreamCompleted)}
}

// StreamFailed marks an error reported by the inbound stream.
type StreamFailed struct {
	Base
	Message string
}

// NewStreamFailed creates a stream failed event.
func NewStreamFailed(message string) StreamFailed {
	return StreamFailed{Base: NewBase(KindStreamFailed), Message: message}
}
