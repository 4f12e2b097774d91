package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahmoudyf96/EliteQuiz/internal/user"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string        `json:"token"`
	User  *user.UserDTO `json:"user"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArg("invalid register payload"))
		return
	}

	dto, err := s.users.Register(c.Request.Context(), user.RegisterCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := s.sessions.Create(c.Request.Context(), dto.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, authResponse{Token: token, User: dto})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArg("invalid login payload"))
		return
	}

	dto, err := s.users.Login(c.Request.Context(), user.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := s.sessions.Create(c.Request.Context(), dto.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: token, User: dto})
}

func (s *Server) handleGetProfile(c *gin.Context) {
	dto, err := s.users.GetProfile(c.Request.Context(), sessionIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

const maxProfilePicBytes = 5 << 20

func (s *Server) handleUploadProfilePic(c *gin.Context) {
	key := sessionIdentity(c)

	file, _, err := c.Request.FormFile("picture")
	if err != nil {
		respondError(c, errors.InvalidArg("missing picture file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxProfilePicBytes+1))
	if err != nil {
		respondError(c, errors.Internal("failed to read upload"))
		return
	}
	if len(data) > maxProfilePicBytes {
		respondError(c, errors.InvalidArg("picture exceeds 5MB"))
		return
	}

	url, err := s.uploader.Upload(c.Request.Context(), "images/"+key.ProfilePicFileName(), data)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := s.users.SetProfilePicURL(c.Request.Context(), key, url); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile_pic_url": url})
}
