package transcripts

import "strings"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusStreaming Status = "streaming"
	StatusComplete  Status = "complete"
	StatusFailed    Status = "failed"
)

// Message is one entry of a transcript: an ordered sequence of parts with a
// shared turn ID and a lifecycle status.
//
// A user message carries exactly one text part and is immutable once
// created. An assistant message starts empty and is mutated in place until
// it reaches a terminal status.
type Message struct {
	TurnID string
	Role   Role
	Status Status
	Parts  []Part
}

// NewUserMessage creates a complete, single-part user message.
func NewUserMessage(turnID, text string) *Message {
	return &Message{
		TurnID: turnID,
		Role:   RoleUser,
		Status: StatusComplete,
		Parts:  []Part{&TextPart{Text: text, Sequence: 0}},
	}
}

// NewAssistantMessage creates an empty in-flight assistant message.
func NewAssistantMessage(turnID string) *Message {
	return &Message{TurnID: turnID, Role: RoleAssistant, Status: StatusPending}
}

// Append adds a part as the new last slot of the message.
func (m *Message) Append(part Part) {
	m.Parts = append(m.Parts, part)
}

// LastPart returns the last part of the message, nil when empty.
func (m *Message) LastPart() Part {
	if len(m.Parts) == 0 {
		return nil
	}
	return m.Parts[len(m.Parts)-1]
}

// Text returns the concatenation of all text runs in part order.
func (m *Message) Text() string {
	var builder strings.Builder
	for _, part := range m.Parts {
		if text, ok := part.(*TextPart); ok {
			builder.WriteString(text.Text)
		}
	}
	return builder.String()
}

// Clone returns a deep copy that later mutations of the message cannot
// reach. Observers receive clones, never the live message.
func (m *Message) Clone() *Message {
	if m == nil {
		return nil
	}

	clone := &Message{TurnID: m.TurnID, Role: m.Role, Status: m.Status}
	if m.Parts != nil {
		clone.Parts = make([]Part, 0, len(m.Parts))
		for _, part := range m.Parts {
			clone.Parts = append(clone.Parts, clonePart(part))
		}
	}
	return clone
}

func clonePart(part Part) Part {
	switch p := part.(type) {
	case *TextPart:
		copied := *p
		return &copied
	case *ToolPart:
		copied := *p
		if p.Result != nil {
			result := *p.Result
			copied.Result = &result
		}
		return &copied
	default:
		return part
	}
}
