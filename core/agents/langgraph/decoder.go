package langgraph

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/koscakluka/transcript-core/core/agents"
)

// frameDecoder reassembles whole line-delimited payloads from byte chunks
// with arbitrary, non-aligned boundaries. A partial trailing line is
// buffered until the next chunk completes it.
type frameDecoder struct {
	partial strings.Builder
}

// Push consumes one chunk and returns the payloads of every line completed
// by it. Lines without the frame marker and blank payloads are dropped.
func (d *frameDecoder) Push(chunk []byte) []string {
	var payloads []string
	start := 0
	for i, b := range chunk {
		if b != '\n' {
			continue
		}
		d.partial.Write(chunk[start:i])
		start = i + 1

		line := d.partial.String()
		d.partial.Reset()
		if payload, ok := extractPayload(line); ok {
			payloads = append(payloads, payload)
		}
	}
	d.partial.Write(chunk[start:])
	return payloads
}

// Flush returns the payload of a trailing line that was never terminated,
// if any. Call once, after the byte stream has ended.
func (d *frameDecoder) Flush() []string {
	line := d.partial.String()
	d.partial.Reset()
	if payload, ok := extractPayload(line); ok {
		return []string{payload}
	}
	return nil
}

func extractPayload(line string) (string, bool) {
	line = strings.TrimSuffix(line, "\r")
	if !strings.HasPrefix(line, frameMarker) {
		return "", false
	}
	payload := strings.TrimSpace(strings.TrimPrefix(line, frameMarker))
	if payload == "" {
		return "", false
	}
	return payload, true
}

// decodeFrame decodes one payload into a frame. Decoding is purely local;
// a failure means the payload is skipped, never that the stream aborts.
func decodeFrame(payload string) (frame, error) {
	var decoded frame
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return frame{}, fmt.Errorf("%w: %v", agents.ErrMalformedFrame, err)
	}
	return decoded, nil
}
