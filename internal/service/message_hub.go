package service

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"socialhub_backend/pkg/logger"
	"socialhub_backend/pkg/monitoring"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSEvent 下行推送的统一信封
type WSEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type Client struct {
	Hub      *MessageHub
	Conn     *websocket.Conn
	Send     chan []byte
	Username string
	Limiter  *rate.Limiter
}

func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Error("WebSocket unexpected close", zap.Error(err), zap.String("username", c.Username))
			}
			break
		}

		// 限流校验，超出直接丢弃
		if !c.Limiter.Allow() {
			continue
		}

		monitoring.DMMessageCounter.WithLabelValues("in").Inc()

		var ev WSEvent
		if err := json.Unmarshal(message, &ev); err != nil {
			continue
		}

		// 打字提示等瞬时事件只做转发，不落库
		if ev.Type == "TYPING" {
			if data, ok := ev.Data.(map[string]interface{}); ok {
				if to, ok := data["to"].(string); ok && to != "" {
					data["from"] = c.Username
					c.Hub.PushToUser(to, ev)
				}
			}
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// MessageHub 维护在线 WebSocket 连接，按用户名路由私信推送
type MessageHub struct {
	mu         sync.RWMutex
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

func NewMessageHub() *MessageHub {
	h := &MessageHub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *MessageHub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.Username] == nil {
				h.clients[client.Username] = make(map[*Client]bool)
			}
			h.clients[client.Username][client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.clients[client.Username]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.Send)
					if len(conns) == 0 {
						delete(h.clients, client.Username)
					}
				}
			}
			h.mu.Unlock()
		case <-h.done:
			return
		}
	}
}

// ServeWS 升级 HTTP 连接并挂入 hub
func (h *MessageHub) ServeWS(w http.ResponseWriter, r *http.Request, username string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{
		Hub:      h,
		Conn:     conn,
		Send:     make(chan []byte, 64),
		Username: username,
		Limiter:  rate.NewLimiter(30, 50),
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
	return nil
}

// PushToUser 推送事件给某用户的所有在线连接，不在线则静默跳过
func (h *MessageHub) PushToUser(username string, ev WSEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[username] {
		select {
		case client.Send <- payload:
			monitoring.DMMessageCounter.WithLabelValues("out").Inc()
		default:
			// 发送缓冲已满，放弃本条推送
		}
	}
}

// IsConnected 用户是否有活跃的 WebSocket 连接
func (h *MessageHub) IsConnected(username string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[username]) > 0
}

func (h *MessageHub) Stop() {
	h.mu.Lock()
	for _, conns := range h.clients {
		for client := range conns {
			client.Conn.Close()
		}
	}
	h.clients = make(map[string]map[*Client]bool)
	h.mu.Unlock()
	close(h.done)
}
