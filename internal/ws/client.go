package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Mahmoudyf96/EliteQuiz/internal/chat"
	"github.com/Mahmoudyf96/EliteQuiz/internal/chat/model"
	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
)

const (
	writeWait = 10 * time.Second
	pongWait  = 60 * time.Second
)

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	key  identity.Key
}

func (c *Client) readPump() {
	defer func() {
		c.hub.UnregisterClient(c)
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(4096)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { _ = c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			c.hub.logger.Warn("ws read error", "identity", c.key, "err", err)
			break
		}

		var env struct {
			Type           string `json:"type"`
			ConversationID string `json:"conversation_id"`
			To             string `json:"to"`
			Text           string `json:"text"`
			TempID         string `json:"temp_id"`
		}
		if err := json.Unmarshal(raw, &env); err != nil {
			c.send <- []byte(`{"type":"error","error":"invalid_json"}`)
			continue
		}

		switch env.Type {
		case "send":
			if env.ConversationID == "" || env.To == "" || env.Text == "" {
				c.send <- []byte(`{"type":"error","error":"missing_fields"}`)
				continue
			}
			err := c.hub.chatUC.SendMessage(context.Background(), c.key, chat.SendMessageCommand{
				ConversationID: env.ConversationID,
				Counterpart:    identity.Key(env.To),
				Message:        model.Message{Kind: model.KindText, Text: env.Text},
			})
			if err != nil {
				c.hub.logger.Warn("ws send failed", "identity", c.key, "err", err)
				c.send <- []byte(`{"type":"error","error":"send_failed"}`)
				continue
			}
			ack, _ := json.Marshal(map[string]any{
				"type":            "send_ack",
				"temp_id":         env.TempID,
				"conversation_id": env.ConversationID,
			})
			c.send <- ack
		default:
			c.send <- []byte(`{"type":"error","error":"unsupported_type"}`)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker((pongWait * 9) / 10)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// hub closed the channel
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) Serve() {
	go c.writePump()
	c.readPump()
}
