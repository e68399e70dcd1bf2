package transcripts

import "slices"

// Transcript is the full ordered message history of one conversation.
// It is append-only at the message level: messages are never reordered or
// removed once pushed.
type Transcript struct {
	messages []*Message
}

// Push adds a new message to the stored messages.
func (t *Transcript) Push(message *Message) {
	t.messages = append(t.messages, message)
}

// Len returns the number of stored messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Last returns the most recently pushed message, nil if empty.
func (t *Transcript) Last() *Message {
	if len(t.messages) == 0 {
		return nil
	}
	return t.messages[len(t.messages)-1]
}

// Values is an iterator that goes over all the stored messages starting
// from the earliest towards the latest.
func (t *Transcript) Values(yield func(*Message) bool) {
	for _, message := range t.messages {
		if !yield(message) {
			return
		}
	}
}

// RValues is an iterator that goes over all the stored messages starting
// from the latest towards the earliest.
func (t *Transcript) RValues(yield func(*Message) bool) {
	for _, message := range slices.Backward(t.messages) {
		if !yield(message) {
			return
		}
	}
}

// Clone returns a deep copy of the transcript.
func (t *Transcript) Clone() *Transcript {
	clone := &Transcript{}
	if t.messages != nil {
		clone.messages = make([]*Message, 0, len(t.messages))
		for _, message := range t.messages {
			clone.messages = append(clone.messages, message.Clone())
		}
	}
	return clone
}
