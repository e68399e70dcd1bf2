package langgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/koscakluka/transcript-core/core/agents"
	"go.opentelemetry.io/otel/attribute"
)

// Tools lists every tool the backend currently exposes, across all
// configured tool servers.
func (c *Client) Tools(ctx context.Context) ([]agents.ToolInfo, error) {
	var tools []agents.ToolInfo
	if err := c.doJSON(ctx, http.MethodGet, "/tools", nil, &tools); err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return tools, nil
}

// Status reports the backend agent's self-described state.
func (c *Client) Status(ctx context.Context) (*agents.Status, error) {
	var status agents.Status
	if err := c.doJSON(ctx, http.MethodGet, "/status", nil, &status); err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return &status, nil
}

// Health checks whether the backend is reachable and reporting healthy.
func (c *Client) Health(ctx context.Context) error {
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, nil); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// Config returns the backend's current tool server configuration.
func (c *Client) Config(ctx context.Context) (map[string]agents.ToolConfig, error) {
	var config map[string]agents.ToolConfig
	if err := c.doJSON(ctx, http.MethodGet, "/config", nil, &config); err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}
	return config, nil
}

// UpdateConfig replaces the backend's tool server configuration.
func (c *Client) UpdateConfig(ctx context.Context, config map[string]agents.ToolConfig) error {
	body := struct {
		Config map[string]agents.ToolConfig `json:"config"`
	}{Config: config}
	if err := c.doJSON(ctx, http.MethodPost, "/config", body, nil); err != nil {
		return fmt.Errorf("failed to update config: %w", err)
	}
	return nil
}

// AddTool registers a single tool server with the backend.
func (c *Client) AddTool(ctx context.Context, name string, config agents.ToolConfig) error {
	path := "/config/tool?tool_name=" + url.QueryEscape(name)
	if err := c.doJSON(ctx, http.MethodPost, path, config, nil); err != nil {
		return fmt.Errorf("failed to add tool %q: %w", name, err)
	}
	return nil
}

// RemoveTool removes a tool server from the backend configuration.
func (c *Client) RemoveTool(ctx context.Context, name string) error {
	path := "/config/tool/" + url.PathEscape(name)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to remove tool %q: %w", name, err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, result any) error {
	ctx, span := tracer.Start(ctx, "agent backend "+method+" "+path)
	defer span.End()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			err = fmt.Errorf("error marshalling JSON: %w", err)
			span.RecordError(err)
			return err
		}
		reader = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		err = fmt.Errorf("error creating HTTP request: %w", err)
		span.RecordError(err)
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("error sending request: %w", err)
		span.RecordError(err)
		return err
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("response.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		if errorBody, readErr := io.ReadAll(resp.Body); readErr == nil {
			span.SetAttributes(attribute.String("response.error", string(errorBody)))
		}
		err := fmt.Errorf("non-OK HTTP status: %s", resp.Status)
		span.RecordError(err)
		return err
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		err = fmt.Errorf("error decoding response: %w", err)
		span.RecordError(err)
		return err
	}
	return nil
}
