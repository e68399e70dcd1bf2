// Package chat reconstructs a conversation transcript from an agent
// backend's push-based event stream, one turn at a time.
package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/koscakluka/transcript-core/core/agents"
	"github.com/koscakluka/transcript-core/core/events"
	"github.com/koscakluka/transcript-core/core/transcripts"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var ErrNoAgent = errors.New("no agent configured")

const (
	defaultTimeout        = 120 * time.Second
	defaultRecursionLimit = 100
)

// Session owns one conversation: its transcript, its thread identifier and
// the single in-flight turn. Turns are processed one at a time; starting a
// turn while one is active fails with ErrTurnInFlight.
type Session struct {
	conversation activeConversation

	agent             agents.Agent
	model             string
	threadID          string
	timeout           time.Duration
	recursionLimit    int
	enabledToolGroups []string
}

func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		timeout:        defaultTimeout,
		recursionLimit: defaultRecursionLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.threadID == "" {
		s.threadID = uuid.NewString()
	}
	return s
}

// ThreadID returns the conversation thread identifier sent with every turn.
func (s *Session) ThreadID() string {
	return s.threadID
}

// Transcript returns a deep copy of the finalized message history.
func (s *Session) Transcript() *transcripts.Transcript {
	return s.conversation.History()
}

// ActiveMessage returns a deep copy of the in-flight assistant message,
// nil when no turn is active.
func (s *Session) ActiveMessage() *transcripts.Message {
	return s.conversation.ActiveMessage()
}

// Snapshot returns a point-in-time view of history and in-flight state.
func (s *Session) Snapshot() ConversationSnapshot {
	return s.conversation.Snapshot()
}

// Prompt runs one turn: it records the user message, opens the backend
// stream and folds its events into an assistant message until a terminal
// state is reached, the stream ends, or ctx is cancelled.
//
// The returned message is a snapshot; the live one is already part of the
// transcript. A turn that fails remotely or on transport keeps everything
// reconstructed up to the failure.
func (s *Session) Prompt(ctx context.Context, message string, opts ...PromptOption) (*transcripts.Message, error) {
	options := PromptOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if s.agent == nil {
		return nil, ErrNoAgent
	}

	ctx, span := tracer.Start(ctx, "prompt turn")
	defer span.End()
	span.SetAttributes(attribute.String("request.model", s.model))
	span.SetAttributes(attribute.String("request.thread_id", s.threadID))

	turnID := uuid.NewString()
	span.SetAttributes(attribute.String("turn.id", turnID))

	assistantMessage := transcripts.NewAssistantMessage(turnID)
	if err := s.conversation.startTurn(transcripts.NewUserMessage(turnID, message), assistantMessage); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer s.conversation.finaliseTurn()

	emit := newCallbackEventEmitter(options)
	onDiagnostic := func(diagnostic Diagnostic) {
		logger.Warn("stream diagnostic", "kind", string(diagnostic.Kind), "detail", diagnostic.Detail)
		span.AddEvent("diagnostic: " + string(diagnostic.Kind))
		if options.onDiagnostic != nil {
			options.onDiagnostic(diagnostic)
		}
	}
	builder := newTranscriptBuilder(assistantMessage, onDiagnostic)

	deliver := func() {
		if options.onUpdate != nil {
			options.onUpdate(s.conversation.ActiveMessage())
		}
	}

	emit(events.NewTurnStarted(turnID))
	s.conversation.mutate(func() { assistantMessage.Status = transcripts.StatusStreaming })

	stream, err := s.agent.OpenTurnStream(ctx, s.turnRequest(message))
	if err != nil {
		err = fmt.Errorf("failed to open turn stream: %w", err)
		return s.failTurn(builder, deliver, emit, span, turnID, err), err
	}

	for event, err := range stream.Events(ctx) {
		if err != nil {
			switch {
			case errors.Is(err, agents.ErrMalformedFrame):
				onDiagnostic(newDiagnostic(DiagnosticMalformedFrame, err.Error()))
				continue
			case errors.Is(err, agents.ErrUnknownFrameType):
				onDiagnostic(newDiagnostic(DiagnosticUnknownFrameType, err.Error()))
				continue
			case ctx.Err() != nil:
				snapshot := s.failTurn(builder, deliver, noopEventEmitter, span, turnID, ctx.Err())
				emit(events.NewTurnCancelled(turnID))
				return snapshot, ctx.Err()
			default:
				err = fmt.Errorf("turn stream failed: %w", err)
				return s.failTurn(builder, deliver, emit, span, turnID, err), err
			}
		}

		s.conversation.mutate(func() { builder.Apply(event) })
		emit(event)
		deliver()
		if builder.done() {
			break
		}
	}

	if !builder.done() {
		onDiagnostic(newDiagnostic(DiagnosticAbnormalTermination, "stream ended without a terminal frame"))
		s.conversation.mutate(func() { builder.Apply(events.NewStreamCompleted()) })
		deliver()
	}

	final := s.conversation.ActiveMessage()
	span.SetAttributes(attribute.Int("response.part_count", len(final.Parts)))
	if final.Status == transcripts.StatusFailed {
		span.SetStatus(codes.Error, builder.failureReason)
		emit(events.NewTurnFailed(turnID, builder.failureReason))
	} else {
		emit(events.NewTurnCompleted(turnID))
	}

	if options.onCompletion != nil {
		options.onCompletion(final)
	}
	return final, nil
}

// failTurn moves the in-flight message to its failed state on a local
// fault (transport failure or cancellation), keeping the parts accumulated
// so far.
func (s *Session) failTurn(
	builder *transcriptBuilder,
	deliver func(),
	emit eventEmitter,
	span trace.Span,
	turnID string,
	cause error,
) *transcripts.Message {
	span.RecordError(cause)
	span.SetStatus(codes.Error, cause.Error())
	s.conversation.mutate(func() { builder.Fail(cause.Error()) })
	deliver()
	emit(events.NewTurnFailed(turnID, cause.Error()))
	return s.conversation.ActiveMessage()
}

func (s *Session) turnRequest(message string) agents.TurnRequest {
	return agents.TurnRequest{
		Message:           message,
		Model:             s.model,
		Timeout:           s.timeout,
		RecursionLimit:    s.recursionLimit,
		ThreadID:          s.threadID,
		EnabledToolGroups: s.enabledToolGroups,
	}
}
