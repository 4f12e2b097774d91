// Package ws pushes conversation-index updates to connected clients, the
// continuous read variant of the backing store, bridged across instances
// with redis pub/sub.
package ws

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/Mahmoudyf96/EliteQuiz/internal/chat"
	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/logger"
)

const indexChannelPrefix = "index:"

// Hub holds connections and subscribes to redis channels for cross-instance
// delivery.
type Hub struct {
	rdb    *redis.Client
	chatUC chat.ChatUsecase
	logger *logger.Logger

	clients    map[identity.Key]map[*Client]bool
	watchers   map[identity.Key]context.CancelFunc
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Update
}

// Update carries one user's refreshed conversation index.
type Update struct {
	Target  identity.Key
	Payload []byte
}

func NewHub(rdb *redis.Client, chatUC chat.ChatUsecase, logger *logger.Logger) *Hub {
	h := &Hub{
		rdb:        rdb,
		chatUC:     chatUC,
		logger:     logger,
		clients:    make(map[identity.Key]map[*Client]bool),
		watchers:   make(map[identity.Key]context.CancelFunc),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Update, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	if h.rdb != nil {
		pubsub := h.rdb.PSubscribe(context.Background(), indexChannelPrefix+"*")
		ch := pubsub.Channel()
		go func() {
			for msg := range ch {
				target := identity.Key(strings.TrimPrefix(msg.Channel, indexChannelPrefix))
				h.broadcast <- &Update{Target: target, Payload: []byte(msg.Payload)}
			}
		}()
	}

	for {
		select {
		case c := <-h.register:
			if _, ok := h.clients[c.key]; !ok {
				h.clients[c.key] = make(map[*Client]bool)
				h.startWatcher(c.key)
			}
			h.clients[c.key][c] = true
			h.logger.Info("client registered", "identity", c.key)

		case c := <-h.unregister:
			if conns, ok := h.clients[c.key]; ok {
				if _, exists := conns[c]; exists {
					delete(conns, c)
					close(c.send)
				}
				if len(conns) == 0 {
					delete(h.clients, c.key)
					if cancel, ok := h.watchers[c.key]; ok {
						cancel()
						delete(h.watchers, c.key)
					}
				}
			}

		case u := <-h.broadcast:
			conns, ok := h.clients[u.Target]
			if !ok {
				continue
			}
			for c := range conns {
				select {
				case c.send <- u.Payload:
				default:
					// readPump still writes acks on send; only the
					// unregister path may close it. Closing the conn
					// winds both pumps down instead.
					delete(conns, c)
					if c.conn != nil {
						_ = c.conn.Close()
					}
				}
			}
		}
	}
}

// startWatcher forwards this user's index updates into the redis channel so
// every instance (including this one) can fan them out to its clients.
func (h *Hub) startWatcher(key identity.Key) {
	ctx, cancel := context.WithCancel(context.Background())
	h.watchers[key] = cancel

	updates, err := h.chatUC.WatchConversations(ctx, key)
	if err != nil {
		h.logger.Error("failed to watch conversations", "identity", key, "err", err)
		cancel()
		delete(h.watchers, key)
		return
	}

	go func() {
		for list := range updates {
			payload, err := json.Marshal(list)
			if err != nil {
				h.logger.Error("failed to marshal index update", "identity", key, "err", err)
				continue
			}
			if h.rdb != nil {
				if err := h.rdb.Publish(ctx, indexChannelPrefix+string(key), payload).Err(); err != nil {
					h.logger.Warn("redis publish failed, delivering locally", "identity", key, "err", err)
					h.broadcast <- &Update{Target: key, Payload: payload}
				}
			} else {
				h.broadcast <- &Update{Target: key, Payload: payload}
			}
		}
	}()
}

func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
}

func (h *Hub) UnregisterClient(c *Client) {
	h.unregister <- c
}
