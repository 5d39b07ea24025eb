//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=../mocks/mock_completer.go -package=mocks
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yungbote/legalkaz/backend/internal/errordata"
	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/types"
)

const (
	DefaultURL   = "https://openrouter.ai/api/v1/chat/completions"
	DefaultModel = "deepseek/deepseek-r1:free"
)

// Completer turns a transcript into the next assistant reply.
type Completer interface {
	Complete(ctx context.Context, turns []types.Turn) (string, error)
}

type Config struct {
	URL    string
	APIKey string
	Model  string
	// Timeout of zero leaves the transport defaults in charge.
	Timeout time.Duration
}

type client struct {
	log    *logger.Logger
	http   *http.Client
	url    string
	apiKey string
	model  string
}

type request struct {
	Model    string       `json:"model"`
	Messages []types.Turn `json:"messages"`
}

type response struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewClient(log *logger.Logger, cfg Config) Completer {
	clientLog := log.With("service", "CompletionClient")
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIKey == "" {
		clientLog.Warn("OPENROUTER_API_KEY not set; calls might fail or be unauthorized")
	}
	return &client{
		log:    clientLog,
		http:   &http.Client{Timeout: cfg.Timeout},
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

func (c *client) Complete(ctx context.Context, turns []types.Turn) (string, error) {
	body, err := json.Marshal(request{Model: c.model, Messages: turns})
	if err != nil {
		return "", errordata.Completion(err, "Failed to encode completion request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		c.log.Warn("failed to build new request", "error", err)
		return "", errordata.Completion(err, "Failed to build completion request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("failed to call completion endpoint", "error", err)
		return "", errordata.Completion(err, "Completion request failed")
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("failed to read completion response body", "error", err)
		return "", errordata.Completion(err, "Failed to read completion response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("completion endpoint responded with non-2xx", "statusCode", resp.StatusCode, "body", string(bodyBytes))
		return "", errordata.Completion(nil, "Completion request failed: HTTP %d", resp.StatusCode)
	}

	var out response
	if err := json.Unmarshal(bodyBytes, &out); err != nil {
		c.log.Warn("malformed completion response", "error", err)
		return "", errordata.Completion(err, "Malformed completion response")
	}
	if len(out.Choices) == 0 {
		return "", errordata.Completion(nil, "Completion response has no choices")
	}
	reply := out.Choices[0].Message.Content
	if strings.TrimSpace(reply) == "" {
		return "", errordata.Completion(nil, "Completion response has no reply")
	}
	c.log.Debug("Completion call success", "model", c.model, "turns", len(turns), "replyLen", len(reply))
	return reply, nil
}

// Validate reports an unusable configuration before the first call.
func (cfg Config) Validate() error {
	if cfg.URL != "" && !strings.HasPrefix(cfg.URL, "http://") && !strings.HasPrefix(cfg.URL, "https://") {
		return fmt.Errorf("completion url must be http(s): %q", cfg.URL)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("completion timeout must not be negative: %s", cfg.Timeout)
	}
	return nil
}
