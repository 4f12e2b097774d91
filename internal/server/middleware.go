package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mahmoudyf96/EliteQuiz/internal/identity"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
)

// identityContextKey is the gin context key the websocket handler reads too.
const identityContextKey = "identity"

func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			respondError(c, errors.Unauthorized("missing bearer token"))
			c.Abort()
			return
		}
		key, err := s.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		c.Set(identityContextKey, key)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	// Browsers cannot set headers on websocket upgrades.
	return c.Query("token")
}

func sessionIdentity(c *gin.Context) identity.Key {
	v, _ := c.Get(identityContextKey)
	key, _ := v.(identity.Key)
	return key
}

func respondError(c *gin.Context, err error) {
	c.JSON(httpStatus(err), gin.H{"error": err.Error()})
}

func httpStatus(err error) int {
	switch errors.CodeOf(err) {
	case errors.CodeInvalidArgument:
		return http.StatusBadRequest
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeAlreadyExists, errors.CodeAborted:
		return http.StatusConflict
	case errors.CodeUnauthenticated:
		return http.StatusUnauthorized
	case errors.CodePermissionDenied:
		return http.StatusForbidden
	case errors.CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	case errors.CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	case errors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
