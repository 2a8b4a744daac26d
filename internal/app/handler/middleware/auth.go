package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"maritime_registry/internal/app/ds"
	"maritime_registry/internal/app/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	UserIDKey = "user_id"
	RoleKey   = "role"
	TokenKey  = "token"
)

type TokenParser interface {
	ParseJWT(token string) (*ds.JWTClaims, error)
}

type SessionReader interface {
	GetSession(ctx context.Context, token string) (utils.Session, error)
}

// AuthMiddleware verifies the Bearer token signature and, when a session
// store is configured, that the token has not been revoked.
func AuthMiddleware(tokens TokenParser, sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.ParseJWT(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}

		if sessions != nil {
			session, err := sessions.GetSession(c.Request.Context(), tokenStr)
			if err != nil || session.UserID != claims.UserID {
				if err != nil && !errors.Is(err, utils.ErrSessionNotFound) {
					logrus.Errorf("AuthMiddleware: session lookup failed: %v", err)
				}
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Session expired or revoked"})
				return
			}
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)
		c.Set(TokenKey, tokenStr)
		c.Next()
	}
}
