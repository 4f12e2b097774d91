package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahmoudyf96/EliteQuiz/internal/chat"
	"github.com/Mahmoudyf96/EliteQuiz/internal/chat/model"
	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubChat lets each test script the coordinator's outcome.
type stubChat struct {
	createID   string
	createErr  error
	sendErr    error
	lastCreate chat.CreateConversationCommand
}

func (s *stubChat) CreateConversation(ctx context.Context, cmd chat.CreateConversationCommand) (string, error) {
	s.lastCreate = cmd
	return s.createID, s.createErr
}

func (s *stubChat) SendMessage(ctx context.Context, sender identity.Key, cmd chat.SendMessageCommand) error {
	return s.sendErr
}

func (s *stubChat) RedriveCounterpartIndex(ctx context.Context, cmd chat.SendMessageCommand) error {
	return s.sendErr
}

func (s *stubChat) ListConversations(ctx context.Context, owner identity.Key) ([]model.Conversation, error) {
	return []model.Conversation{}, nil
}

func (s *stubChat) ListMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	return []model.Message{}, nil
}

func (s *stubChat) WatchConversations(ctx context.Context, owner identity.Key) (<-chan []model.Conversation, error) {
	ch := make(chan []model.Conversation)
	close(ch)
	return ch, nil
}

func testContext(t *testing.T, method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	c.Request = httptest.NewRequest(method, path, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(identityContextKey, identity.Key("alice-mail-com"))
	return c, w
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid argument", errors.ErrEmptyMessage, http.StatusBadRequest},
		{"not found", errors.ErrConversationNotFound, http.StatusNotFound},
		{"write conflict", errors.ErrWriteConflict, http.StatusConflict},
		{"already exists", errors.AlreadyExists("taken"), http.StatusConflict},
		{"unauthorized", errors.Unauthorized("no session"), http.StatusUnauthorized},
		{"timeout", errors.ErrStoreTimeout, http.StatusGatewayTimeout},
		{"unavailable", errors.New(errors.CodeUnavailable, "redis down"), http.StatusServiceUnavailable},
		{"unknown", assertError("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httpStatus(tc.err))
		})
	}
}

type assertError string

func (e assertError) Error() string { return string(e) }

func TestHandleCreateConversation_Created(t *testing.T) {
	s := &Server{chat: &stubChat{createID: "conversation_m1"}}

	c, w := testContext(t, http.MethodPost, "/api/conversations", gin.H{
		"own_name": "Alice",
		"to":       "bob@mail.org",
		"to_name":  "Bob",
		"message":  gin.H{"text": "hi"},
	})
	s.handleCreateConversation(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "conversation_m1")
}

func TestHandleCreateConversation_PartialSyncStillReturnsID(t *testing.T) {
	s := &Server{chat: &stubChat{
		createID:  "conversation_m1",
		createErr: errors.PartialSync(chat.StageCounterpartIndex, true, errors.ErrStoreTimeout),
	}}

	c, w := testContext(t, http.MethodPost, "/api/conversations", gin.H{
		"own_name": "Alice",
		"to":       "bob@mail.org",
		"to_name":  "Bob",
		"message":  gin.H{"text": "hi"},
	})
	s.handleCreateConversation(c)

	require.Equal(t, http.StatusAccepted, w.Code)

	var resp struct {
		ConversationID string `json:"conversation_id"`
		Partial        struct {
			Stage     string `json:"stage"`
			Retryable bool   `json:"retryable"`
		} `json:"partial"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "conversation_m1", resp.ConversationID)
	assert.Equal(t, chat.StageCounterpartIndex, resp.Partial.Stage)
	assert.True(t, resp.Partial.Retryable)
}

func TestHandleCreateConversation_PhotoMessage(t *testing.T) {
	stub := &stubChat{createID: "conversation_m1"}
	s := &Server{chat: stub}

	c, w := testContext(t, http.MethodPost, "/api/conversations", gin.H{
		"own_name": "Alice",
		"to":       "bob@mail.org",
		"to_name":  "Bob",
		"message": gin.H{
			"kind":   "photo",
			"url":    "https://cdn.example.com/p.png",
			"width":  750.0,
			"height": 1334.0,
		},
	})
	s.handleCreateConversation(c)

	require.Equal(t, http.StatusCreated, w.Code)

	msg := stub.lastCreate.FirstMessage
	assert.Equal(t, model.KindPhoto, msg.Kind)
	require.NotNil(t, msg.Media)
	assert.Equal(t, "https://cdn.example.com/p.png", msg.Media.RemoteURL)
	assert.Equal(t, 750.0, msg.Media.Width)
	assert.Equal(t, 1334.0, msg.Media.Height)
}

func TestHandleCreateConversation_BadIdentity(t *testing.T) {
	s := &Server{chat: &stubChat{}}

	c, w := testContext(t, http.MethodPost, "/api/conversations", gin.H{
		"own_name": "Alice",
		"to":       "not-an-email",
		"to_name":  "Bob",
		"message":  gin.H{"text": "hi"},
	})
	s.handleCreateConversation(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSendMessage(t *testing.T) {
	t.Run("sent", func(t *testing.T) {
		s := &Server{chat: &stubChat{}}
		c, w := testContext(t, http.MethodPost, "/api/conversations/conversation_m1/messages", gin.H{
			"to":      "bob@mail.org",
			"message": gin.H{"text": "yo"},
		})
		c.Params = gin.Params{{Key: "id", Value: "conversation_m1"}}
		s.handleSendMessage(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("partial sync reported", func(t *testing.T) {
		s := &Server{chat: &stubChat{
			sendErr: errors.PartialSync(chat.StageSenderIndex, false, errors.ErrConversationNotFound),
		}}
		c, w := testContext(t, http.MethodPost, "/api/conversations/conversation_m1/messages", gin.H{
			"to":      "bob@mail.org",
			"message": gin.H{"text": "yo"},
		})
		c.Params = gin.Params{{Key: "id", Value: "conversation_m1"}}
		s.handleSendMessage(c)

		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), chat.StageSenderIndex)
	})

	t.Run("missing payload", func(t *testing.T) {
		s := &Server{chat: &stubChat{}}
		c, w := testContext(t, http.MethodPost, "/api/conversations/conversation_m1/messages", nil)
		s.handleSendMessage(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBearerToken(t *testing.T) {
	c, _ := testContext(t, http.MethodGet, "/ws", nil)
	c.Request.Header.Set("Authorization", "Bearer tok-123")
	assert.Equal(t, "tok-123", bearerToken(c))

	c2, _ := testContext(t, http.MethodGet, "/ws?token=tok-456", nil)
	assert.Equal(t, "tok-456", bearerToken(c2))
}
