package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
)

func (s *Server) handleFetchQuizzes(c *gin.Context) {
	amount := s.cfg.Quiz.Amount
	if raw := c.Query("amount"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(c, errors.InvalidArg("amount must be a positive integer"))
			return
		}
		amount = n
	}
	difficulty := c.DefaultQuery("difficulty", s.cfg.Quiz.Difficulty)

	quizzes, err := s.quizzes.FetchQuizzes(c.Request.Context(), amount, difficulty)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quizzes": quizzes})
}

type submitScoreRequest struct {
	Score int `json:"score" binding:"min=0"`
}

func (s *Server) handleSubmitScore(c *gin.Context) {
	var req submitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArg("invalid score payload"))
		return
	}

	key := sessionIdentity(c)
	profile, err := s.users.GetProfile(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}

	high, err := s.quizzes.SubmitScore(c.Request.Context(), key, profile.Username, req.Score)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"high_score": high})
}

func (s *Server) handleLeaderboard(c *gin.Context) {
	n := int64(10)
	if raw := c.Query("top"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 || parsed > 100 {
			respondError(c, errors.InvalidArg("top must be between 1 and 100"))
			return
		}
		n = parsed
	}

	entries, err := s.quizzes.Leaderboard(c.Request.Context(), n)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
