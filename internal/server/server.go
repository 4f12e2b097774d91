// Package server wires the HTTP API: accounts, conversations, quizzes,
// media and the websocket endpoint.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Mahmoudyf96/EliteQuiz/config"
	"github.com/Mahmoudyf96/EliteQuiz/internal/chat"
	"github.com/Mahmoudyf96/EliteQuiz/internal/media"
	"github.com/Mahmoudyf96/EliteQuiz/internal/quiz"
	"github.com/Mahmoudyf96/EliteQuiz/internal/user"
	"github.com/Mahmoudyf96/EliteQuiz/internal/ws"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/logger"
)

type Server struct {
	cfg      *config.Config
	logger   *logger.Logger
	engine   *gin.Engine
	users    user.UserUsecase
	chat     chat.ChatUsecase
	quizzes  *quiz.QuizUsecase
	uploader media.Uploader
	hub      *ws.Hub
	sessions *SessionStore
}

func New(
	cfg *config.Config,
	l *logger.Logger,
	users user.UserUsecase,
	chatUC chat.ChatUsecase,
	quizzes *quiz.QuizUsecase,
	uploader media.Uploader,
	hub *ws.Hub,
	rdb *redis.Client,
) *Server {
	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:      cfg,
		logger:   l,
		engine:   gin.New(),
		users:    users,
		chat:     chatUC,
		quizzes:  quizzes,
		uploader: uploader,
		hub:      hub,
		sessions: NewSessionStore(rdb),
	}
	s.engine.Use(gin.Recovery())
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.engine.Group("/api")

	api.POST("/register", s.handleRegister)
	api.POST("/login", s.handleLogin)

	authed := api.Group("")
	authed.Use(s.requireSession())
	{
		authed.GET("/profile", s.handleGetProfile)
		authed.POST("/profile/picture", s.handleUploadProfilePic)

		authed.GET("/quizzes", s.handleFetchQuizzes)
		authed.POST("/scores", s.handleSubmitScore)
		authed.GET("/leaderboard", s.handleLeaderboard)

		authed.GET("/conversations", s.handleListConversations)
		authed.POST("/conversations", s.handleCreateConversation)
		authed.GET("/conversations/:id/messages", s.handleListMessages)
		authed.POST("/conversations/:id/messages", s.handleSendMessage)
		authed.POST("/conversations/:id/redrive", s.handleRedrive)
	}

	s.engine.GET("/ws", s.requireSession(), func(c *gin.Context) {
		ws.ServeWS(s.hub, c)
	})

	if s.cfg.Media.BaseDir != "" {
		s.engine.Static("/media", s.cfg.Media.BaseDir)
	}
}

func (s *Server) Run() error {
	s.logger.Info("starting http server", "port", s.cfg.Server.Port)
	return s.engine.Run(s.cfg.Server.Port)
}
