package chat

import (
	"errors"
	"sync"

	"github.com/koscakluka/transcript-core/core/transcripts"
)

var (
	ErrTurnInFlight      = errors.New("turn already in flight")
	ErrActiveTurnMissing = errors.New("turn finalisation failed: active turn missing")
)

// activeConversation guards the transcript and the single in-flight
// assistant message. Every builder mutation runs under its lock and every
// observer reads a clone taken under it, so no observer ever sees a
// half-applied transition.
type activeConversation struct {
	mu sync.RWMutex

	transcript    transcripts.Transcript
	activeMessage *transcripts.Message
}

// ConversationSnapshot is a point-in-time view of conversation state.
type ConversationSnapshot struct {
	History       *transcripts.Transcript
	ActiveMessage *transcripts.Message
}

func (c *activeConversation) Snapshot() ConversationSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return ConversationSnapshot{
		History:       c.transcript.Clone(),
		ActiveMessage: c.activeMessage.Clone(),
	}
}

// History returns a deep copy of the finalized messages. Ordering: oldest
// to newest.
func (c *activeConversation) History() *transcripts.Transcript {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.transcript.Clone()
}

// ActiveMessage returns a deep copy of the in-flight assistant message,
// nil when no turn is active.
func (c *activeConversation) ActiveMessage() *transcripts.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.activeMessage.Clone()
}

// startTurn records the user message and installs the in-flight assistant
// message. Only one turn may be active at a time.
func (c *activeConversation) startTurn(userMessage, assistantMessage *transcripts.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.activeMessage != nil {
		return ErrTurnInFlight
	}

	c.transcript.Push(userMessage)
	c.activeMessage = assistantMessage
	return nil
}

// mutate runs one reduction step under the conversation lock.
func (c *activeConversation) mutate(apply func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	apply()
}

// finaliseTurn moves the in-flight message into the transcript. The message
// stays in the transcript whatever terminal state it reached.
func (c *activeConversation) finaliseTurn() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.activeMessage == nil {
		return ErrActiveTurnMissing
	}

	c.transcript.Push(c.activeMessage)
	c.activeMessage = nil
	return nil
}
