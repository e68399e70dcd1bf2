// Package events defines the typed stream event contract.
//
// Event kinds are grouped by namespaces:
//
//   - assistant_response.*
//   - tool_call.*
//   - stream.*
//   - turn_state.*
//
// Semantics used across the package:
//
//   - Delta: append-only text piece emitted in stream order.
//   - Started/Input/Result: the three phases of one correlated tool call.
//   - Completed/Failed: terminal states; no further events follow them
//     within the same turn.
//
// assistant_response events
//
//   - ResponseTextDelta (assistant_response.text_delta): streamed assistant
//     text delta.
//
// tool_call events
//
//   - ToolCallStarted (tool_call.started): a named tool call was issued.
//   - ToolCallInput (tool_call.input): arguments for a started tool call.
//   - ToolCallResult (tool_call.result): result of a started tool call.
//
// stream events
//
//   - StreamCompleted (stream.completed): the inbound stream signalled
//     normal completion.
//   - StreamFailed (stream.failed): the inbound stream signalled an error.
//
// turn_state events
//
//   - TurnStarted (turn_state.started): current turn started.
//   - TurnCompleted (turn_state.completed): current turn completed
//     successfully.
//   - TurnFailed (turn_state.failed): current turn failed.
//   - TurnCancelled (turn_state.cancelled): current turn was cancelled.
package events
