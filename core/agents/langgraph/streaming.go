package langgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/koscakluka/transcript-core/core/agents"
	"github.com/koscakluka/transcript-core/core/events"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const streamPath = "/chat/stream"

// Client talks to one LangGraph agent backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP client used for requests. The transport
// is still wrapped for tracing.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	client := &Client{baseURL: baseURL}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{}
	}
	if client.httpClient.Transport == nil {
		client.httpClient.Transport = http.DefaultTransport
	}
	client.httpClient.Transport = otelhttp.NewTransport(client.httpClient.Transport,
		otelhttp.WithSpanNameFormatter(func(operationName string, request *http.Request) string {
			return operationName + " " + request.URL.Path
		}),
	)
	return client
}

var _ agents.Agent = (*Client)(nil)

// OpenTurnStream prepares the event stream for one turn. No I/O happens
// until the stream's Events iterator is consumed.
func (c *Client) OpenTurnStream(_ context.Context, request agents.TurnRequest) (agents.Stream, error) {
	return &Stream{client: c, request: request}, nil
}

// Stream is one turn's worth of inbound frames, decoded and classified
// lazily as the iterator is consumed.
type Stream struct {
	client  *Client
	request agents.TurnRequest
}

// Events streams typed events in arrival order.
//
// Recoverable anomalies (undecodable payloads, unrecognized frames) are
// yielded as wrapped ErrMalformedFrame/ErrUnknownFrameType errors and the
// stream continues past them; any other error ends the stream.
func (s *Stream) Events(ctx context.Context) func(func(events.Event, error) bool) {
	requestToFirstFrameTime := time.Time{}
	setRequestToFirstFrameTime := func(span trace.Span) {
		if requestToFirstFrameTime.IsZero() {
			return
		}
		span.SetAttributes(attribute.Float64("response.request_to_first_frame_time", time.Since(requestToFirstFrameTime).Seconds()))
		span.AddEvent("received first frame")
		requestToFirstFrameTime = time.Time{}
	}

	return func(yield func(events.Event, error) bool) {
		ctx, span := tracer.Start(ctx, "stream agent turn")
		defer span.End()
		span.SetAttributes(attribute.String("request.model", s.request.Model))
		span.SetAttributes(attribute.String("request.thread_id", s.request.ThreadID))

		reqBody := requestBody{
			Message:        s.request.Message,
			Model:          s.request.Model,
			TimeoutSeconds: int(s.request.Timeout / time.Second),
			RecursionLimit: s.request.RecursionLimit,
			ThreadID:       s.request.ThreadID,
			EnabledTools:   s.request.EnabledToolGroups,
		}

		requestBodyBytes, err := json.Marshal(reqBody)
		if err != nil {
			err = fmt.Errorf("error marshalling JSON: %w", err)
			span.RecordError(err)
			yield(nil, err)
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.baseURL+streamPath, bytes.NewBuffer(requestBodyBytes))
		if err != nil {
			err = fmt.Errorf("error creating HTTP request: %w", err)
			span.RecordError(err)
			yield(nil, err)
			return
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "text/event-stream")
		req.Header.Set("Cache-Control", "no-cache")

		span.SetAttributes(attribute.String("request.url", req.URL.String()))
		requestToFirstFrameTime = time.Now()
		span.AddEvent("request started")
		resp, err := s.client.httpClient.Do(req)
		if err != nil {
			err = fmt.Errorf("error sending request: %w", err)
			span.RecordError(err)
			yield(nil, err)
			return
		}
		defer resp.Body.Close()

		span.SetAttributes(attribute.Int("response.status_code", resp.StatusCode))
		if resp.StatusCode != http.StatusOK {
			if errorBody, err := io.ReadAll(resp.Body); err != nil {
				err = fmt.Errorf("error reading error body: %w", err)
				span.RecordError(err)
			} else {
				span.SetAttributes(attribute.String("response.error", string(errorBody)))
			}

			err := fmt.Errorf("non-OK HTTP status: %s", resp.Status)
			span.RecordError(err)
			yield(nil, err)
			return
		}

		frameCount := 0
		defer func() {
			span.SetAttributes(attribute.Int("response.frame_count", frameCount))
		}()

		decoder := &frameDecoder{}
		buffer := make([]byte, 4096)
		for {
			n, readErr := resp.Body.Read(buffer)
			if n > 0 {
				setRequestToFirstFrameTime(span)
				for _, payload := range decoder.Push(buffer[:n]) {
					frameCount++
					if !yieldPayload(payload, span, yield) {
						return
					}
				}
			}
			if readErr != nil {
				if errors.Is(readErr, io.EOF) {
					break
				}
				if ctx.Err() != nil {
					yield(nil, ctx.Err())
					return
				}
				readErr = fmt.Errorf("error reading streamed response: %w", readErr)
				span.RecordError(readErr)
				yield(nil, readErr)
				return
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

// yieldPayload decodes and classifies one payload, reporting recoverable
// anomalies to the consumer without ending the stream.
func yieldPayload(payload string, span trace.Span, yield func(events.Event, error) bool) bool {
	decoded, err := decodeFrame(payload)
	if err != nil {
		span.RecordError(err)
		logger.Warn("skipping undecodable frame", "error", err)
		return yield(nil, err)
	}

	event, err := classifyFrame(decoded)
	if err != nil {
		span.RecordError(err)
		logger.Warn("skipping unrecognized frame", "error", err, "frame_type", decoded.Type)
		return yield(nil, err)
	}

	return yield(event, nil)
}
