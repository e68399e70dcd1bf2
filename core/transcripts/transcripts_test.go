package transcripts

import "testing"

func TestNewUserMessageIsCompleteSinglePart(t *testing.T) {
	message := NewUserMessage("turn-1", "hello")

	if message.Role != RoleUser || message.Status != StatusComplete {
		t.Fatalf("expected a complete user message, got role %q status %q", message.Role, message.Status)
	}
	if len(message.Parts) != 1 {
		t.Fatalf("expected a single text part, got %d parts", len(message.Parts))
	}
	if got := message.Text(); got != "hello" {
		t.Fatalf("expected text %q, got %q", "hello", got)
	}
}

func TestMessageTextConcatenatesRunsInPartOrder(t *testing.T) {
	message := NewAssistantMessage("turn-1")
	message.Append(&TextPart{Text: "before ", Sequence: 0})
	message.Append(&ToolPart{ID: "t1", Name: "search", Sequence: 1})
	message.Append(&TextPart{Text: "after", Sequence: 2})

	if got := message.Text(); got != "before after" {
		t.Fatalf("expected tool parts to be skipped in text, got %q", got)
	}
}

func TestMessageCloneIsolatesMutations(t *testing.T) {
	result := "42"
	message := NewAssistantMessage("turn-1")
	message.Append(&TextPart{Text: "original", Sequence: 0})
	message.Append(&ToolPart{ID: "t1", Name: "calc", Arguments: "{}", Result: &result, Sequence: 1})

	clone := message.Clone()

	message.Parts[0].(*TextPart).Text = "mutated"
	*message.Parts[1].(*ToolPart).Result = "changed"
	message.Append(&TextPart{Text: " extra", Sequence: 2})
	message.Status = StatusFailed

	if got := clone.Parts[0].(*TextPart).Text; got != "original" {
		t.Fatalf("expected cloned text to be isolated, got %q", got)
	}
	if got := *clone.Parts[1].(*ToolPart).Result; got != "42" {
		t.Fatalf("expected cloned result to be isolated, got %q", got)
	}
	if len(clone.Parts) != 2 {
		t.Fatalf("expected clone to keep its part count, got %d", len(clone.Parts))
	}
	if clone.Status != StatusPending {
		t.Fatalf("expected clone to keep its status, got %q", clone.Status)
	}
}

func TestNilMessageCloneIsNil(t *testing.T) {
	var message *Message
	if message.Clone() != nil {
		t.Fatalf("expected nil clone of a nil message")
	}
}

func TestToolPartToggleOnlyFlipsExpanded(t *testing.T) {
	part := &ToolPart{ID: "t1", Name: "search", Arguments: "{}", Sequence: 3}

	part.Toggle()
	if !part.Expanded {
		t.Fatalf("expected toggle to expand the part")
	}
	part.Toggle()
	if part.Expanded {
		t.Fatalf("expected a second toggle to collapse the part")
	}
	if part.Sequence != 3 || part.ID != "t1" || part.Arguments != "{}" {
		t.Fatalf("expected toggle to leave everything else untouched, got %#v", part)
	}
}

func TestTranscriptIterationOrder(t *testing.T) {
	transcript := &Transcript{}
	transcript.Push(NewUserMessage("turn-1", "first"))
	transcript.Push(NewUserMessage("turn-2", "second"))
	transcript.Push(NewUserMessage("turn-3", "third"))

	var forward []string
	for message := range transcript.Values {
		forward = append(forward, message.Text())
	}
	if len(forward) != 3 || forward[0] != "first" || forward[2] != "third" {
		t.Fatalf("expected oldest to newest iteration, got %v", forward)
	}

	var backward []string
	for message := range transcript.RValues {
		backward = append(backward, message.Text())
	}
	if len(backward) != 3 || backward[0] != "third" || backward[2] != "first" {
		t.Fatalf("expected newest to oldest iteration, got %v", backward)
	}

	if got := transcript.Last().Text(); got != "third" {
		t.Fatalf("expected last message to be the most recent, got %q", got)
	}
}

func TestTranscriptCloneIsolatesMessages(t *testing.T) {
	transcript := &Transcript{}
	transcript.Push(NewUserMessage("turn-1", "original"))

	clone := transcript.Clone()
	transcript.Last().Parts[0].(*TextPart).Text = "mutated"
	transcript.Push(NewUserMessage("turn-2", "extra"))

	if clone.Len() != 1 {
		t.Fatalf("expected clone to keep its length, got %d", clone.Len())
	}
	if got := clone.Last().Text(); got != "original" {
		t.Fatalf("expected cloned message to be isolated, got %q", got)
	}
}
