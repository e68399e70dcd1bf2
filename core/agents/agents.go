// Package agents defines the boundary toward the external agent backend:
// the turn request that triggers a reply and the push-based event stream
// the reply arrives on.
package agents

import (
	"context"

	"github.com/koscakluka/transcript-core/core/events"
)

// Agent produces one event stream per requested turn.
type Agent interface {
	OpenTurnStream(ctx context.Context, request TurnRequest) (Stream, error)
}

// Stream is a lazy sequence of typed stream events.
//
// Events yields in arrival order and stops on the first non-recoverable
// error; a nil error with a terminal event ends the sequence normally. A
// stream that ends without a terminal event is valid and left for the
// consumer to interpret.
type Stream interface {
	Events(ctx context.Context) func(func(events.Event, error) bool)
}
