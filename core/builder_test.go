package chat

import (
	"strings"
	"testing"

	"github.com/koscakluka/transcript-core/core/events"
	"github.com/koscakluka/transcript-core/core/transcripts"
)

func newTestBuilder(t *testing.T) (*transcriptBuilder, *transcripts.Message, *[]Diagnostic) {
	t.Helper()

	message := transcripts.NewAssistantMessage("turn")
	message.Status = transcripts.StatusStreaming
	diagnostics := &[]Diagnostic{}
	builder := newTranscriptBuilder(message, func(diagnostic Diagnostic) {
		*diagnostics = append(*diagnostics, diagnostic)
	})
	return builder, message, diagnostics
}

func TestTextDeltasCoalesceIntoMaximalRuns(t *testing.T) {
	builder, message, _ := newTestBuilder(t)

	deltas := []string{"Hel", "lo", " wor", "ld"}
	for _, delta := range deltas {
		builder.Apply(events.NewResponseTextDelta(delta))
	}

	if len(message.Parts) != 1 {
		t.Fatalf("expected consecutive deltas to coalesce into one text part, got %d parts", len(message.Parts))
	}
	if got := message.Text(); got != strings.Join(deltas, "") {
		t.Fatalf("expected concatenated text %q, got %q", strings.Join(deltas, ""), got)
	}
}

func TestTextRunsSplitAroundToolCalls(t *testing.T) {
	builder, message, _ := newTestBuilder(t)

	builder.Apply(events.NewResponseTextDelta("before "))
	builder.Apply(events.NewToolCallStarted("t1", "search"))
	builder.Apply(events.NewResponseTextDelta("after"))
	builder.Apply(events.NewResponseTextDelta("!"))

	if len(message.Parts) != 3 {
		t.Fatalf("expected text, tool, text parts, got %d parts", len(message.Parts))
	}
	if _, ok := message.Parts[1].(*transcripts.ToolPart); !ok {
		t.Fatalf("expected middle part to be a tool part, got %T", message.Parts[1])
	}
	last, ok := message.Parts[2].(*transcripts.TextPart)
	if !ok {
		t.Fatalf("expected trailing part to be a text part, got %T", message.Parts[2])
	}
	if last.Text != "after!" {
		t.Fatalf("expected trailing deltas to coalesce into %q, got %q", "after!", last.Text)
	}
}

func TestToolCallsNeverMergeAndKeepArrivalOrder(t *testing.T) {
	builder, message, _ := newTestBuilder(t)

	builder.Apply(events.NewToolCallStarted("a", "search"))
	builder.Apply(events.NewResponseTextDelta("hi"))
	builder.Apply(events.NewToolCallStarted("b", "lookup"))

	if len(message.Parts) != 3 {
		t.Fatalf("expected three parts, got %d", len(message.Parts))
	}
	first, ok := message.Parts[0].(*transcripts.ToolPart)
	if !ok || first.ID != "a" {
		t.Fatalf("expected first part to be tool %q, got %#v", "a", message.Parts[0])
	}
	text, ok := message.Parts[1].(*transcripts.TextPart)
	if !ok || text.Text != "hi" {
		t.Fatalf("expected second part to be text %q, got %#v", "hi", message.Parts[1])
	}
	third, ok := message.Parts[2].(*transcripts.ToolPart)
	if !ok || third.ID != "b" {
		t.Fatalf("expected third part to be tool %q, got %#v", "b", message.Parts[2])
	}
	for i, part := range message.Parts {
		if got := part.PartSequence(); got != i {
			t.Fatalf("expected part %d to have sequence %d, got %d", i, i, got)
		}
	}
}

func TestToolPartKeepsSlotWhenResultArrivesAfterText(t *testing.T) {
	builder, message, _ := newTestBuilder(t)

	builder.Apply(events.NewToolCallStarted("t1", "time"))
	builder.Apply(events.NewToolCallInput("t1", `{"tz":"UTC"}`))
	builder.Apply(events.NewResponseTextDelta("The time is "))
	builder.Apply(events.NewToolCallResult("t1", "08:00"))
	builder.Apply(events.NewResponseTextDelta("08:00."))
	builder.Apply(events.NewStreamCompleted())

	if message.Status != transcripts.StatusComplete {
		t.Fatalf("expected status complete, got %q", message.Status)
	}
	if len(message.Parts) != 2 {
		t.Fatalf("expected tool part plus one coalesced text part, got %d parts", len(message.Parts))
	}
	tool, ok := message.Parts[0].(*transcripts.ToolPart)
	if !ok {
		t.Fatalf("expected tool part to stay first, got %T", message.Parts[0])
	}
	if tool.Name != "time" || tool.Arguments != `{"tz":"UTC"}` {
		t.Fatalf("expected tool call %q with arguments %q, got %q with %q", "time", `{"tz":"UTC"}`, tool.Name, tool.Arguments)
	}
	if tool.Result == nil || *tool.Result != "08:00" {
		t.Fatalf("expected tool result %q, got %v", "08:00", tool.Result)
	}
	if got := message.Text(); got != "The time is 08:00." {
		t.Fatalf("expected text %q, got %q", "The time is 08:00.", got)
	}
}

func TestOrphanToolEventsAreRecordedAndSkipped(t *testing.T) {
	builder, message, diagnostics := newTestBuilder(t)

	builder.Apply(events.NewToolCallInput("ghost", `{"q":"go"}`))
	builder.Apply(events.NewToolCallResult("ghost", "nothing"))

	if len(message.Parts) != 0 {
		t.Fatalf("expected orphan events to leave the message untouched, got %d parts", len(message.Parts))
	}
	if len(*diagnostics) != 2 {
		t.Fatalf("expected two orphan diagnostics, got %d", len(*diagnostics))
	}
	for _, diagnostic := range *diagnostics {
		if diagnostic.Kind != DiagnosticOrphanToolEvent {
			t.Fatalf("expected diagnostic kind %q, got %q", DiagnosticOrphanToolEvent, diagnostic.Kind)
		}
	}
}

func TestDuplicateToolCallKeepsFirst(t *testing.T) {
	builder, message, diagnostics := newTestBuilder(t)

	builder.Apply(events.NewToolCallStarted("t1", "search"))
	builder.Apply(events.NewToolCallStarted("t1", "lookup"))

	if len(message.Parts) != 1 {
		t.Fatalf("expected one tool part, got %d", len(message.Parts))
	}
	tool := message.Parts[0].(*transcripts.ToolPart)
	if tool.Name != "search" {
		t.Fatalf("expected first started call to win, got %q", tool.Name)
	}
	if len(*diagnostics) != 1 || (*diagnostics)[0].Kind != DiagnosticDuplicateToolCall {
		t.Fatalf("expected one duplicate tool call diagnostic, got %#v", *diagnostics)
	}
}

func TestRepeatedToolResultIsIdempotent(t *testing.T) {
	builder, message, _ := newTestBuilder(t)

	builder.Apply(events.NewToolCallStarted("t1", "time"))
	builder.Apply(events.NewToolCallResult("t1", "08:00"))
	builder.Apply(events.NewToolCallResult("t1", "08:00"))

	if len(message.Parts) != 1 {
		t.Fatalf("expected repeated result to add no parts, got %d", len(message.Parts))
	}
	tool := message.Parts[0].(*transcripts.ToolPart)
	if tool.Result == nil || *tool.Result != "08:00" {
		t.Fatalf("expected result %q after repeated application, got %v", "08:00", tool.Result)
	}
}

func TestStreamFailureKeepsPartsAndAppendsExplanation(t *testing.T) {
	builder, message, _ := newTestBuilder(t)

	builder.Apply(events.NewResponseTextDelta("partial"))
	builder.Apply(events.NewStreamFailed("boom"))

	if message.Status != transcripts.StatusFailed {
		t.Fatalf("expected status failed, got %q", message.Status)
	}
	if len(message.Parts) != 2 {
		t.Fatalf("expected original text plus one failure part, got %d parts", len(message.Parts))
	}
	original := message.Parts[0].(*transcripts.TextPart)
	if original.Text != "partial" {
		t.Fatalf("expected original text to be retained, got %q", original.Text)
	}
	failure, ok := message.Parts[1].(*transcripts.TextPart)
	if !ok || !strings.Contains(failure.Text, "boom") {
		t.Fatalf("expected trailing failure text mentioning %q, got %#v", "boom", message.Parts[1])
	}
}

func TestNoEventsApplyAfterTerminalState(t *testing.T) {
	builder, message, _ := newTestBuilder(t)

	builder.Apply(events.NewResponseTextDelta("done"))
	builder.Apply(events.NewStreamCompleted())
	builder.Apply(events.NewResponseTextDelta("late"))
	builder.Apply(events.NewToolCallStarted("t1", "search"))

	if got := message.Text(); got != "done" {
		t.Fatalf("expected no text applied after completion, got %q", got)
	}
	if len(message.Parts) != 1 {
		t.Fatalf("expected no parts appended after completion, got %d", len(message.Parts))
	}
}
