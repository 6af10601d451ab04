package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHubServer(t *testing.T, hub *MessageHub) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("user")
		if err := hub.ServeWS(w, r, username); err != nil {
			t.Logf("serve ws: %v", err)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func dialHub(t *testing.T, server *httptest.Server, username string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?user=" + username
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubPushToUser(t *testing.T) {
	hub := NewMessageHub()
	defer hub.Stop()
	server := newHubServer(t, hub)

	conn := dialHub(t, server, "alice")

	require.Eventually(t, func() bool {
		return hub.IsConnected("alice")
	}, time.Second, 10*time.Millisecond)

	hub.PushToUser("alice", WSEvent{Type: "DM", Data: map[string]string{"content": "hi"}})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev WSEvent
	require.NoError(t, json.Unmarshal(payload, &ev))
	assert.Equal(t, "DM", ev.Type)
}

func TestHubPushToOfflineUser(t *testing.T) {
	hub := NewMessageHub()
	defer hub.Stop()

	assert.False(t, hub.IsConnected("nobody"))
	// 不在线时静默跳过，不应 panic 或阻塞
	hub.PushToUser("nobody", WSEvent{Type: "DM"})
}

func TestHubDisconnectCleansUp(t *testing.T) {
	hub := NewMessageHub()
	defer hub.Stop()
	server := newHubServer(t, hub)

	conn := dialHub(t, server, "alice")
	require.Eventually(t, func() bool {
		return hub.IsConnected("alice")
	}, time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool {
		return !hub.IsConnected("alice")
	}, time.Second, 10*time.Millisecond)
}

// 同一用户的多个连接都收到推送
func TestHubMultipleConnections(t *testing.T) {
	hub := NewMessageHub()
	defer hub.Stop()
	server := newHubServer(t, hub)

	conn1 := dialHub(t, server, "alice")
	conn2 := dialHub(t, server, "alice")

	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients["alice"]) == 2
	}, time.Second, 10*time.Millisecond)

	hub.PushToUser("alice", WSEvent{Type: "DM"})

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, _, err := conn.ReadMessage()
		assert.NoError(t, err)
	}
}

// 打字提示透传给目标用户并带上来源
func TestHubTypingRelay(t *testing.T) {
	hub := NewMessageHub()
	defer hub.Stop()
	server := newHubServer(t, hub)

	alice := dialHub(t, server, "alice")
	bob := dialHub(t, server, "bob")

	require.Eventually(t, func() bool {
		return hub.IsConnected("alice") && hub.IsConnected("bob")
	}, time.Second, 10*time.Millisecond)

	err := alice.WriteJSON(WSEvent{Type: "TYPING", Data: map[string]string{"to": "bob"}})
	require.NoError(t, err)

	bob.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev WSEvent
	require.NoError(t, bob.ReadJSON(&ev))
	assert.Equal(t, "TYPING", ev.Type)

	data, ok := ev.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice", data["from"])
}
