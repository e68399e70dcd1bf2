package langgraph

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/koscakluka/transcript-core/core/agents"
	"github.com/koscakluka/transcript-core/core/events"
	"go.opentelemetry.io/otel/attribute"
)

const websocketStreamPath = "/chat/stream/ws"

// DialTurnStream opens the backend's websocket stream for one turn. Unlike
// OpenTurnStream the connection is established eagerly, so a dial failure
// surfaces here rather than on first read.
func (c *Client) DialTurnStream(ctx context.Context, request agents.TurnRequest) (agents.Stream, error) {
	streamURL, err := websocketURL(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, streamURL, http.Header{})
	if err != nil {
		return nil, fmt.Errorf("failed to open socket connection to agent backend: %w", err)
	}

	reqBody := requestBody{
		Message:        request.Message,
		Model:          request.Model,
		TimeoutSeconds: int(request.Timeout / time.Second),
		RecursionLimit: request.RecursionLimit,
		ThreadID:       request.ThreadID,
		EnabledTools:   request.EnabledToolGroups,
	}
	if err := conn.WriteJSON(reqBody); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to write turn request: %w", err)
	}

	return &websocketStream{conn: conn, request: request}, nil
}

func websocketURL(baseURL string) (string, error) {
	streamURL, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	switch streamURL.Scheme {
	case "https":
		streamURL.Scheme = "wss"
	default:
		streamURL.Scheme = "ws"
	}
	streamURL.Path += websocketStreamPath
	return streamURL.String(), nil
}

// websocketStream adapts one websocket connection to the Stream contract.
// Frames arrive one websocket message at a time but still use the
// line-delimited payload convention, so the same decoder applies.
type websocketStream struct {
	conn    *websocket.Conn
	request agents.TurnRequest

	closeOnce sync.Once
}

func (s *websocketStream) close() {
	s.closeOnce.Do(func() {
		s.conn.Close()
	})
}

func (s *websocketStream) Events(ctx context.Context) func(func(events.Event, error) bool) {
	return func(yield func(events.Event, error) bool) {
		ctx, span := tracer.Start(ctx, "stream agent turn over websocket")
		defer span.End()
		span.SetAttributes(attribute.String("request.model", s.request.Model))
		span.SetAttributes(attribute.String("request.thread_id", s.request.ThreadID))

		defer s.close()
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				s.close()
			case <-done:
			}
		}()

		frameCount := 0
		defer func() {
			span.SetAttributes(attribute.Int("response.frame_count", frameCount))
		}()

		decoder := &frameDecoder{}
		for {
			messageType, message, err := s.conn.ReadMessage()
			if err != nil {
				if ctx.Err() != nil {
					yield(nil, ctx.Err())
					return
				}
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					break
				}
				err = fmt.Errorf("error reading websocket message: %w", err)
				span.RecordError(err)
				yield(nil, err)
				return
			}
			if messageType != websocket.TextMessage {
				continue
			}

			if !bytes.HasSuffix(message, []byte("\n")) {
				message = append(message, '\n')
			}
			for _, payload := range decoder.Push(message) {
				frameCount++
				if !yieldPayload(payload, span, yield) {
					return
				}
			}
		}

		for _, payload := range decoder.Flush() {
			frameCount++
			if !yieldPayload(payload, span, yield) {
				return
			}
		}
	}
}
