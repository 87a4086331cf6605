package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agenciathoth/checklist/internal/core/domain"
	"github.com/agenciathoth/checklist/internal/core/ports"
	"github.com/agenciathoth/checklist/pkg/apierrors"
)

const sessionContextKey = "session"

// Authenticate resolves the bearer token into a session when present. It
// never rejects: endpoints open to anonymous visitors run behind it too, and
// read the session (or nil) from the context.
func Authenticate(auth ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			session, err := auth.ParseToken(strings.TrimSpace(token))
			if err != nil {
				zap.L().Debug("rejected session token", zap.Error(err))
			} else {
				SetSession(c, &session)
			}
		}
		c.Next()
	}
}

// SetSession attaches a resolved session to the request context.
func SetSession(c *gin.Context, session *domain.Session) {
	c.Set(sessionContextKey, session)
}

// GetSession returns the request's session or nil for anonymous requests.
func GetSession(c *gin.Context) *domain.Session {
	if value, exists := c.Get(sessionContextKey); exists {
		if session, ok := value.(*domain.Session); ok {
			return session
		}
	}
	return nil
}

func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetSession(c) == nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, GetLang(c)),
			)
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetSession(c).IsAdmin() {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, GetLang(c)),
			)
			return
		}
		c.Next()
	}
}
