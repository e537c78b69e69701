package api

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wsURL(server *httptest.Server, token string) string {
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/chat"
	if token != "" {
		url += "?token=" + token
	}
	return url
}

func TestChatSocketRejectsInvalidToken(t *testing.T) {
	h := newTestHarness()
	server := httptest.NewServer(h.router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(server, "wrong-token"), nil)
	require.NoError(t, err, "the upgrade itself succeeds; rejection arrives as a close frame")

	// The first read surfaces the close sent by the server.
	var frame wsOutbound
	err = wsjson.Read(ctx, conn, &frame)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusCode(4001), websocket.CloseStatus(err))
}

func TestChatSocketPingPong(t *testing.T) {
	h := newTestHarness()
	server := httptest.NewServer(h.router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(server, "task-token"), nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "done")

	var frame wsOutbound
	require.NoError(t, wsjson.Read(ctx, conn, &frame))
	assert.Equal(t, "status", frame.Type)
	assert.Equal(t, "connected", frame.Content)

	require.NoError(t, wsjson.Write(ctx, conn, wsInbound{Type: "ping"}))
	require.NoError(t, wsjson.Read(ctx, conn, &frame))
	assert.Equal(t, "status", frame.Type)
	assert.Equal(t, "pong", frame.Content)
}

func TestChatSocketRoutesMessages(t *testing.T) {
	h := newTestHarness()
	server := httptest.NewServer(h.router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(server, "task-token"), nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "done")

	var frame wsOutbound
	require.NoError(t, wsjson.Read(ctx, conn, &frame)) // connected

	require.NoError(t, wsjson.Write(ctx, conn, wsInbound{Type: "message", Content: "report progress"}))
	require.NoError(t, wsjson.Read(ctx, conn, &frame))
	assert.Equal(t, "message", frame.Type)
	assert.Equal(t, "m-1", frame.MessageID)

	// The intent went to the Head from the token's agent identity.
	assert.Equal(t, "30001", h.intents.last.SourceID)
	assert.Equal(t, "00001", h.intents.last.TargetID)
}

func TestChatSocketUnknownFrameType(t *testing.T) {
	h := newTestHarness()
	server := httptest.NewServer(h.router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(server, "task-token"), nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "done")

	var frame wsOutbound
	require.NoError(t, wsjson.Read(ctx, conn, &frame)) // connected

	require.NoError(t, wsjson.Write(ctx, conn, wsInbound{Type: "subscribe"}))
	require.NoError(t, wsjson.Read(ctx, conn, &frame))
	assert.Equal(t, "error", frame.Type)
}
