package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/opportunity-service/internal/observability"
)

// Envelope is the server-to-client message shape.
type Envelope struct {
	Channel string `json:"channel"`
	Data    any    `json:"data"`
}

// subscribeMessage is the only recognized client-to-server message.
type subscribeMessage struct {
	Type     string   `json:"type"`
	Channels []string `json:"channels"`
}

// Hub owns the registry of live connections and their subscription sets.
// All mutation and iteration goes through its methods; nothing else holds a
// reference to connection state.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}

	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewHub creates an empty registry.
func NewHub(logger *zap.Logger, metrics *observability.Metrics) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
		metrics: metrics,
	}
}

// Register admits a new connection with an empty subscription set.
func (h *Hub) Register() *Client {
	client := &Client{
		ID:            uuid.NewString(),
		OpenedAt:      time.Now(),
		subscriptions: make(map[string]struct{}),
		send:          make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()

	h.metrics.ConnectionOpened()
	h.logger.Debug("ws client connected", zap.String("client_id", client.ID))
	return client
}

// Unregister removes the connection from all bookkeeping and closes its send
// channel. Safe to call more than once.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	close(client.send)
	h.mu.Unlock()

	h.metrics.ConnectionClosed()
	h.logger.Debug("ws client disconnected", zap.String("client_id", client.ID))
}

// HandleMessage processes one raw client frame. A subscribe message replaces
// the client's subscription set wholesale; anything unparseable or
// unrecognized is dropped without closing the connection.
func (h *Hub) HandleMessage(client *Client, raw []byte) {
	var msg subscribeMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return
	}
	if msg.Type != "subscribe" {
		return
	}

	subs := make(map[string]struct{}, len(msg.Channels))
	for _, channel := range msg.Channels {
		subs[channel] = struct{}{}
	}

	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		client.subscriptions = subs
	}
	h.mu.Unlock()
}

// Broadcast fans one event out to every open connection subscribed to the
// channel. Delivery is best effort: a client whose queue is full misses the
// event, and no ordering across recipients is guaranteed.
func (h *Hub) Broadcast(channel string, payload any) {
	data, err := json.Marshal(Envelope{Channel: channel, Data: payload})
	if err != nil {
		h.logger.Error("ws broadcast marshal", zap.String("channel", channel), zap.Error(err))
		return
	}

	recipients := 0
	h.mu.RLock()
	for client := range h.clients {
		if _, subscribed := client.subscriptions[channel]; !subscribed {
			continue
		}
		select {
		case client.send <- data:
			recipients++
		default:
			// slow consumer; skip rather than queue or retry
		}
	}
	h.mu.RUnlock()

	h.metrics.RecordBroadcast(channel, recipients)
	h.logger.Debug("ws broadcast",
		zap.String("channel", channel),
		zap.Int("recipients", recipients),
	)
}

// Subscriptions returns a snapshot of the client's channel set.
func (h *Hub) Subscriptions(client *Client) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	channels := make([]string, 0, len(client.subscriptions))
	for channel := range client.subscriptions {
		channels = append(channels, channel)
	}
	return channels
}

// ClientCount reports the number of live connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close unregisters every remaining connection. Used during shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.Unlock()

	for _, client := range clients {
		h.Unregister(client)
	}
}
