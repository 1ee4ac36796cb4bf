// Package telegram talks to the Telegram Bot API directly over HTTP.
package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.telegram.org"

// Client is a minimal Bot API client. All sends are fire-and-forget JSON
// POSTs; a non-ok API response comes back as an error for the caller to log.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host (tests).
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a Bot API client for the given token.
func NewClient(token string, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (c *Client) post(method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	resp, err := c.http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s request: %w", method, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s response: %w", method, err)
	}

	var api apiResponse
	if err := json.Unmarshal(respBody, &api); err != nil {
		return fmt.Errorf("%s response decode: %w", method, err)
	}
	c.log.Debug("bot api call",
		zap.String("method", method),
		zap.Bool("ok", api.OK),
	)
	if !api.OK {
		return fmt.Errorf("%s rejected: %s", method, api.Description)
	}
	return nil
}

// SendMessage sends a Markdown text message, optionally with an inline
// keyboard.
func (c *Client) SendMessage(chatID int64, text string, markup *InlineKeyboardMarkup) error {
	payload := map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "Markdown",
	}
	if markup != nil {
		payload["reply_markup"] = markup
	}
	return c.post("sendMessage", payload)
}

// EditMessageText rewrites a previously sent message in place. Callback
// handlers use this so menus update instead of stacking.
func (c *Client) EditMessageText(chatID, messageID int64, text string, markup *InlineKeyboardMarkup) error {
	payload := map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
		"parse_mode": "Markdown",
	}
	if markup != nil {
		payload["reply_markup"] = markup
	}
	return c.post("editMessageText", payload)
}

// AnswerCallbackQuery acknowledges a button press, optionally with a
// transient notice shown to the user.
func (c *Client) AnswerCallbackQuery(callbackID, text string) error {
	payload := map[string]any{
		"callback_query_id": callbackID,
	}
	if text != "" {
		payload["text"] = text
	}
	return c.post("answerCallbackQuery", payload)
}

// DeleteMessage removes a message from a chat.
func (c *Client) DeleteMessage(chatID, messageID int64) error {
	return c.post("deleteMessage", map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
	})
}

// SetWebhook registers the webhook URL with the Bot API.
func (c *Client) SetWebhook(url string) error {
	return c.post("setWebhook", map[string]any{"url": url})
}
