package transcripts

// Part is a single ordered slot of an assistant or user message.
//
// A part's sequence number is assigned once, when the part is appended to a
// message, and is never reassigned. Later in-place edits (tool arguments or
// results arriving after subsequent text) therefore do not move the part.
type Part interface {
	// PartSequence returns the display-order sequence number.
	PartSequence() int
}

// TextPart is a contiguous run of authored text.
type TextPart struct {
	Text     string
	Sequence int
}

func (p *TextPart) PartSequence() int { return p.Sequence }

// ToolPart is one tool invocation card: a named, id-correlated tool call
// with its arguments and, eventually, its result.
type ToolPart struct {
	ID        string
	Name      string
	Arguments string
	// Result is nil until a result arrives; a tool call may never get one.
	Result *string

	// Expanded is consumer-local presentation state. It is never derived
	// from the stream and never read by the engine.
	Expanded bool

	Sequence int
}

func (p *ToolPart) PartSequence() int { return p.Sequence }

// Toggle flips the presentation visibility bit and nothing else.
func (p *ToolPart) Toggle() {
	p.Expanded = !p.Expanded
}
