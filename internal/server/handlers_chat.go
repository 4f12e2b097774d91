package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahmoudyf96/EliteQuiz/internal/chat"
	"github.com/Mahmoudyf96/EliteQuiz/internal/chat/model"
	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
)

type messagePayload struct {
	Kind   string  `json:"kind"`
	Text   string  `json:"text"`
	URL    string  `json:"url,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

func (p messagePayload) toMessage() model.Message {
	kind := model.MessageKind(p.Kind)
	if p.Kind == "" {
		kind = model.KindText
	}
	msg := model.Message{Kind: kind, Text: p.Text}
	if kind == model.KindPhoto || kind == model.KindVideo {
		msg.Media = &model.Media{RemoteURL: p.URL, Width: p.Width, Height: p.Height}
	}
	return msg
}

type createConversationRequest struct {
	OwnName string         `json:"own_name" binding:"required"`
	To      string         `json:"to" binding:"required"`
	ToName  string         `json:"to_name" binding:"required"`
	Message messagePayload `json:"message"`
}

func (s *Server) handleCreateConversation(c *gin.Context) {
	var req createConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArg("invalid conversation payload"))
		return
	}
	counterpart, err := identity.Normalize(req.To)
	if err != nil {
		respondError(c, err)
		return
	}

	id, err := s.chat.CreateConversation(c.Request.Context(), chat.CreateConversationCommand{
		Initiator:       sessionIdentity(c),
		InitiatorName:   req.OwnName,
		Counterpart:     counterpart,
		CounterpartName: req.ToName,
		FirstMessage:    req.Message.toMessage(),
	})
	// The conversation id is valid even on partial failure; report both.
	if err != nil {
		var partial *errors.PartialSyncError
		if errors.AsPartialSync(err, &partial) && id != "" {
			c.JSON(http.StatusAccepted, gin.H{
				"conversation_id": id,
				"partial":         gin.H{"stage": partial.Stage, "retryable": partial.Retryable},
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"conversation_id": id})
}

func (s *Server) handleListConversations(c *gin.Context) {
	convs, err := s.chat.ListConversations(c.Request.Context(), sessionIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": convs})
}

type sendMessageRequest struct {
	To      string         `json:"to" binding:"required"`
	Message messagePayload `json:"message"`
}

func (s *Server) handleSendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArg("invalid message payload"))
		return
	}
	counterpart, err := identity.Normalize(req.To)
	if err != nil {
		respondError(c, err)
		return
	}

	cmd := chat.SendMessageCommand{
		ConversationID: c.Param("id"),
		Counterpart:    counterpart,
		Message:        req.Message.toMessage(),
	}
	err = s.chat.SendMessage(c.Request.Context(), sessionIdentity(c), cmd)
	if err != nil {
		var partial *errors.PartialSyncError
		if errors.AsPartialSync(err, &partial) {
			c.JSON(http.StatusAccepted, gin.H{
				"partial": gin.H{"stage": partial.Stage, "retryable": partial.Retryable},
			})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

func (s *Server) handleListMessages(c *gin.Context) {
	msgs, err := s.chat.ListMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

type redriveRequest struct {
	To string `json:"to" binding:"required"`
}

func (s *Server) handleRedrive(c *gin.Context) {
	var req redriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArg("invalid redrive payload"))
		return
	}
	counterpart, err := identity.Normalize(req.To)
	if err != nil {
		respondError(c, err)
		return
	}

	err = s.chat.RedriveCounterpartIndex(c.Request.Context(), chat.SendMessageCommand{
		ConversationID: c.Param("id"),
		Counterpart:    counterpart,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "redriven"})
}
