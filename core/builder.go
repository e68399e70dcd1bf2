package chat

import (
	"fmt"

	"github.com/koscakluka/transcript-core/core/events"
	"github.com/koscakluka/transcript-core/core/transcripts"
	"github.com/koscakluka/transcript-core/internal/utils"
)

// transcriptBuilder folds stream events into one in-flight assistant
// message. Events are applied strictly in arrival order; sequence numbers
// are handed out at part creation and never change afterwards, so a tool
// card keeps its slot even when its arguments or result arrive after later
// text.
//
// The builder itself does no locking: the session applies every event under
// the conversation lock, which is what makes each transition atomic for
// observers.
type transcriptBuilder struct {
	message *transcripts.Message
	table   *toolCallTable

	sequence      int
	failureReason string
	onDiagnostic  func(Diagnostic)
}

func newTranscriptBuilder(message *transcripts.Message, onDiagnostic func(Diagnostic)) *transcriptBuilder {
	if onDiagnostic == nil {
		onDiagnostic = func(Diagnostic) {}
	}

	return &transcriptBuilder{
		message:      message,
		table:        newToolCallTable(),
		onDiagnostic: onDiagnostic,
	}
}

func (b *transcriptBuilder) nextSequence() int {
	sequence := b.sequence
	b.sequence++
	return sequence
}

// done reports whether the message has reached a terminal status; events
// after that point are not applied.
func (b *transcriptBuilder) done() bool {
	return b.message.Status == transcripts.StatusComplete || b.message.Status == transcripts.StatusFailed
}

// Apply folds one event into the message.
func (b *transcriptBuilder) Apply(event events.Event) {
	if b.done() {
		return
	}

	switch typedEvent := event.(type) {
	case events.ResponseTextDelta:
		b.applyTextDelta(typedEvent.Text)
	case events.ToolCallStarted:
		b.applyToolStarted(typedEvent.ID, typedEvent.Name)
	case events.ToolCallInput:
		if !b.table.update(typedEvent.ID, func(part *transcripts.ToolPart) {
			part.Arguments = typedEvent.Arguments
		}) {
			b.onDiagnostic(newDiagnostic(DiagnosticOrphanToolEvent,
				fmt.Sprintf("input for unknown tool call %q", typedEvent.ID)))
		}
	case events.ToolCallResult:
		if !b.table.update(typedEvent.ID, func(part *transcripts.ToolPart) {
			part.Result = utils.Ptr(typedEvent.Result)
		}) {
			b.onDiagnostic(newDiagnostic(DiagnosticOrphanToolEvent,
				fmt.Sprintf("result for unknown tool call %q", typedEvent.ID)))
		}
	case events.StreamCompleted:
		b.message.Status = transcripts.StatusComplete
	case events.StreamFailed:
		b.Fail(typedEvent.Message)
	}
}

// applyTextDelta extends the trailing text run or starts a new one, so any
// run of consecutive deltas collapses into a single part.
func (b *transcriptBuilder) applyTextDelta(text string) {
	if last, ok := b.message.LastPart().(*transcripts.TextPart); ok {
		last.Text += text
		return
	}
	b.message.Append(&transcripts.TextPart{Text: text, Sequence: b.nextSequence()})
}

// applyToolStarted always opens a fresh part slot: one card per invocation,
// in arrival order, never merged with neighbours.
func (b *transcriptBuilder) applyToolStarted(id, name string) {
	part, err := b.table.create(id, name)
	if err != nil {
		b.onDiagnostic(newDiagnostic(DiagnosticDuplicateToolCall,
			fmt.Sprintf("tool call %q already started, keeping the first", id)))
		return
	}
	part.Sequence = b.nextSequence()
	b.message.Append(part)
}

// Fail moves the message to its failed terminal state, keeping everything
// accumulated so far and appending one text part that explains the failure.
func (b *transcriptBuilder) Fail(reason string) {
	if b.done() {
		return
	}

	b.message.Status = transcripts.StatusFailed
	b.failureReason = reason
	b.message.Append(&transcripts.TextPart{
		Text:     fmt.Sprintf("Response interrupted: %s", reason),
		Sequence: b.nextSequence(),
	})
}
