package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/logger"
)

type contextKey string

const (
	// UserIDKey is the gin context key holding the authenticated user's id.
	UserIDKey contextKey = "user_id"
	// UserEmailKey is the gin context key holding the user's email, when
	// the token carries one.
	UserEmailKey contextKey = "user_email"
)

// AuthMiddleware validates the Bearer token issued by the external identity
// provider and stores the user's id and email in the request context.
// Authentication itself (sign-up, sessions) is entirely external; this
// service only verifies the signed token.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.GetLogger()

		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			_ = c.Error(errors.AuthenticationFailed("Missing or malformed Authorization header"))
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			log.Debugw("Token validation failed", "error", err)
			_ = c.Error(errors.AuthenticationFailed("Invalid or expired token"))
			c.Abort()
			return
		}

		sub, err := claims.GetSubject()
		if err != nil || sub == "" {
			_ = c.Error(errors.AuthenticationFailed("Token has no subject"))
			c.Abort()
			return
		}

		c.Set(string(UserIDKey), sub)
		if email, ok := claims["email"].(string); ok {
			c.Set(string(UserEmailKey), email)
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user's id from the gin context.
func GetUserID(c *gin.Context) string {
	return c.GetString(string(UserIDKey))
}
