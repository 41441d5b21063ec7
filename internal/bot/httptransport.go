package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPTransport delivers outbound messages and files by posting them to the
// chat-transport adapter. The adapter owns message rendering and actual chat
// delivery; this side only ships the payloads.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
}

// NewHTTPTransport creates a transport posting to the given adapter base URL.
func NewHTTPTransport(baseURL string) *HTTPTransport {
	return &HTTPTransport{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type sendMessagePayload struct {
	UserID   int64    `json:"user_id"`
	Text     string   `json:"text"`
	Keyboard Keyboard `json:"keyboard,omitempty"`
}

type sendMessageReply struct {
	MessageID int `json:"message_id"`
}

type editMessagePayload struct {
	UserID    int64  `json:"user_id"`
	MessageID int    `json:"message_id"`
	Text      string `json:"text"`
}

type sendDocumentPayload struct {
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
	Caption string `json:"caption"`
	Content []byte `json:"content"`
}

// SendMessage posts a message to the adapter and returns the adapter-assigned
// message identifier.
func (t *HTTPTransport) SendMessage(ctx context.Context, userID int64, text string, keyboard Keyboard) (int, error) {
	var reply sendMessageReply
	err := t.post(ctx, "/messages", sendMessagePayload{UserID: userID, Text: text, Keyboard: keyboard}, &reply)
	if err != nil {
		return 0, err
	}
	return reply.MessageID, nil
}

// EditMessage posts a message edit to the adapter.
func (t *HTTPTransport) EditMessage(ctx context.Context, userID int64, messageID int, text string) error {
	return t.post(ctx, "/edits", editMessagePayload{UserID: userID, MessageID: messageID, Text: text}, nil)
}

// SendDocument posts a named file blob to the adapter.
func (t *HTTPTransport) SendDocument(ctx context.Context, userID int64, doc Document) error {
	return t.post(ctx, "/documents", sendDocumentPayload{
		UserID:  userID,
		Name:    doc.Name,
		Caption: doc.Caption,
		Content: doc.Content,
	}, nil)
}

func (t *HTTPTransport) post(ctx context.Context, path string, payload, reply any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("post %s: adapter returned %d", path, resp.StatusCode)
	}
	if reply != nil {
		if err := json.NewDecoder(resp.Body).Decode(reply); err != nil {
			return fmt.Errorf("decode reply: %w", err)
		}
	}
	return nil
}
