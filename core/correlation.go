package chat

import (
	"errors"
	"fmt"

	"github.com/koscakluka/transcript-core/core/transcripts"
)

// ErrDuplicateToolCall marks a started tool call whose id is already
// tracked. The first call wins; the later announcement is ignored.
var ErrDuplicateToolCall = errors.New("duplicate tool call")

// toolCallTable maps a tool call id to the part currently representing it,
// scoped to one in-flight assistant message. It is discarded with the turn
// and never shared across turns.
type toolCallTable struct {
	parts map[string]*transcripts.ToolPart
}

func newToolCallTable() *toolCallTable {
	return &toolCallTable{parts: map[string]*transcripts.ToolPart{}}
}

// create registers a fresh part for the id. The part starts with empty
// object arguments and no result.
func (t *toolCallTable) create(id, name string) (*transcripts.ToolPart, error) {
	if _, ok := t.parts[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateToolCall, id)
	}

	part := &transcripts.ToolPart{ID: id, Name: name, Arguments: "{}"}
	t.parts[id] = part
	return part, nil
}

func (t *toolCallTable) get(id string) (*transcripts.ToolPart, bool) {
	part, ok := t.parts[id]
	return part, ok
}

// update applies the mutation to the part tracked for the id, reporting
// whether such a part exists.
func (t *toolCallTable) update(id string, mutate func(*transcripts.ToolPart)) bool {
	part, ok := t.parts[id]
	if !ok {
		return false
	}
	mutate(part)
	return true
}
