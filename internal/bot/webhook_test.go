package bot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitecraft-ai/sitecraft/internal/model"
)

func newWebhookServer(t *testing.T) (*httptest.Server, *testEnv) {
	t.Helper()
	env := newTestEnv(t, "http://127.0.0.1:1", 10)
	h := NewWebhookHandler(env.controller, env.controller.logger)
	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv, env
}

func TestWebhook_CommandEvent(t *testing.T) {
	srv, env := newWebhookServer(t)

	resp, err := http.Post(srv.URL+"/command", "application/json",
		strings.NewReader(`{"user_id": 42, "name": "start"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Contains(t, env.transport.lastMessage().text, "Welcome")
}

func TestWebhook_CallbackEventCreatesState(t *testing.T) {
	srv, env := newWebhookServer(t)

	resp, err := http.Post(srv.URL+"/callback", "application/json",
		strings.NewReader(`{"user_id": 42, "message_id": 1, "data": "create_website"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	sess, ok := env.sessions.Get(42)
	require.True(t, ok)
	assert.Equal(t, model.StageAwaitingType, sess.Stage)
}

func TestWebhook_InvalidBody(t *testing.T) {
	srv, _ := newWebhookServer(t)

	resp, err := http.Post(srv.URL+"/text", "application/json", strings.NewReader("not json"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHTTPTransport_RoundTrip(t *testing.T) {
	var gotPaths []string
	adapter := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message_id": 17}`))
	}))
	defer adapter.Close()

	tr := NewHTTPTransport(adapter.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id, err := tr.SendMessage(ctx, 1, "hello", mainMenuKeyboard())
	require.NoError(t, err)
	assert.Equal(t, 17, id)

	require.NoError(t, tr.EditMessage(ctx, 1, 17, "updated"))
	require.NoError(t, tr.SendDocument(ctx, 1, Document{Name: "index.html", Content: []byte("<html></html>")}))

	assert.Equal(t, []string{"/messages", "/edits", "/documents"}, gotPaths)
}

func TestHTTPTransport_AdapterError(t *testing.T) {
	adapter := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer adapter.Close()

	tr := NewHTTPTransport(adapter.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := tr.SendMessage(ctx, 1, "hello", nil)
	assert.Error(t, err)
}
