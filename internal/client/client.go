// Package client speaks the backend's JSON contract on behalf of the terminal app.
package client

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

const DefaultBaseURL = "http://localhost:3001"

type Client struct {
	log     *logger.Logger
	http    *http.Client
	baseURL string
}

func New(log *logger.Logger, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		log:     log.With("client", "BackendClient"),
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, email, password string) (types.AccountRef, error) {
	var out types.AccountRef
	err := c.post(ctx, "/register", credentials{Email: email, Password: password}, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, email, password string) (types.AccountRef, error) {
	var out types.AccountRef
	err := c.post(ctx, "/login", credentials{Email: email, Password: password}, &out)
	return out, err
}

// History returns the flat, time-ordered message list of the account.
func (c *Client) History(ctx context.Context, userID string) ([]types.HistoryEntry, error) {
	out := []types.HistoryEntry{}
	err := c.post(ctx, "/history", map[string]string{"user_id": userID}, &out)
	return out, err
}

type chatRequest struct {
	UserID    string     `json:"user_id"`
	SessionID string     `json:"sessionId"`
	Message   string     `json:"message"`
	Role      types.Role `json:"role"`
}

func (c *Client) AppendChat(ctx context.Context, userID, sessionID string, role types.Role, message string) (types.ChatRecord, error) {
	var out types.ChatRecord
	body := chatRequest{UserID: userID, SessionID: sessionID, Message: message, Role: role}
	err := c.post(ctx, "/chats", body, &out)
	return out, err
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errordata.Persistence(err, "Failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("Backend unreachable", "path", path, "error", err)
		return errordata.Persistence(err, "Server unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errordata.Persistence(err, "Failed to read server response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.log.Warn("Malformed backend response", "path", path, "error", err)
		return errordata.Persistence(err, "Malformed server response")
	}
	return nil
}

// decodeError maps an {error} body back onto the taxonomy. 400 cannot tell
// validation, conflict and not-found apart on the wire, so it is reported as
// validation.
func decodeError(status int, body []byte) error {
	var e struct {
		Error string `json:"error"`
	}
	msg := ""
	if json.Unmarshal(body, &e) == nil {
		msg = e.Error
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	switch status {
	case http.StatusBadRequest:
		return errordata.Validation("%s", msg)
	case http.StatusUnauthorized:
		return errordata.Auth("%s", msg)
	default:
		return errordata.Persistence(nil, "%s", msg)
	}
}
