package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"portfolio-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "cluster_events"

type clusterMessage struct {
	Origin  string          `json:"origin"`
	Topic   string          `json:"topic"`
	Message json.RawMessage `json:"message"`
}

// Hub fans feed envelopes out to websocket clients by topic. With redis
// configured, every publish is relayed to the other instances as well.
type Hub struct {
	// topic -> connected clients
	clients map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu sync.RWMutex

	rdb        *redis.Client
	instanceID string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.Topic] == nil {
				h.clients[client.Topic] = make(map[*Client]struct{})
			}
			h.clients[client.Topic][client] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client subscribed", map[string]interface{}{"topic": client.Topic})

		case client := <-h.unregister:
			h.mu.Lock()
			if set, ok := h.clients[client.Topic]; ok {
				if _, ok := set[client]; ok {
					delete(set, client)
					close(client.Send)
				}
				if len(set) == 0 {
					delete(h.clients, client.Topic)
				}
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client unsubscribed", map[string]interface{}{"topic": client.Topic})
		}
	}
}

// Publish delivers payload to local subscribers of topic and relays it to
// the other instances.
func (h *Hub) Publish(topic string, payload []byte) {
	h.deliver(topic, payload)

	if h.rdb == nil {
		return
	}
	data, err := json.Marshal(clusterMessage{Origin: h.instanceID, Topic: topic, Message: payload})
	if err != nil {
		return
	}
	if err := h.rdb.Publish(context.Background(), clusterChannel, data).Err(); err != nil {
		h.logger.Warn("Hub", "Redis relay failed", map[string]interface{}{"topic": topic, "error": err.Error()})
	}
}

func (h *Hub) add(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Subscribers reports how many local clients follow topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[topic])
}

func (h *Hub) deliver(topic string, payload []byte) {
	var slow []*Client

	h.mu.RLock()
	for client := range h.clients[topic] {
		select {
		case client.Send <- payload:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.logger.Warn("Hub", "Client send buffer full, dropping client", map[string]interface{}{"topic": topic})
		go h.remove(client)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for topic, set := range h.clients {
		for client := range set {
			close(client.Send)
		}
		delete(h.clients, topic)
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload clusterMessage
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Redis message parse error", map[string]interface{}{"error": err.Error()})
			continue
		}
		// our own publishes were already delivered locally
		if payload.Origin == h.instanceID {
			continue
		}
		h.deliver(payload.Topic, payload.Message)
	}
}
