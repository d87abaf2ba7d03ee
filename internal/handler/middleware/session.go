package middleware

import (
	"net/http"

	"leen-studio/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionIDKey = "session_id"

// A year, in seconds. The session carries a cart snapshot, so it should
// survive the browser being closed.
const sessionCookieMaxAge = 365 * 24 * 60 * 60

// SessionMiddleware resolves the anonymous session for every request. A
// missing or malformed cookie gets a fresh id; the store materializes the
// session lazily on first access.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(cookie.GetSessionID(c))
		if err != nil {
			id = uuid.New()
			cookie.SetSessionCookie(c, id.String(), sessionCookieMaxAge)
		}

		c.Set(ctxSessionIDKey, id)
		c.Next()
	}
}

// GetSessionID returns the session id placed by SessionMiddleware.
func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

// MustSessionID is for handlers mounted behind SessionMiddleware; a
// missing id there is a wiring bug, reported as a plain 500.
func MustSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
	return id, ok
}
