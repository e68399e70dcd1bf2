package events

// KindResponseTextDelta identifies streamed assistant response text.
const KindResponseTextDelta Kind = "assistant_response.text_delta"

// ResponseTextDelta carries a streamed assistant response text delta.
type ResponseTextDelta struct {
	Base
	Text string
}

// NewResponseTextDelta creates a response text delta event.
func NewResponseTextDelta(text string) ResponseTextDelta {
	return ResponseTextDelta{Base: NewBase(KindResponseTextDelta), Text: text}
}
