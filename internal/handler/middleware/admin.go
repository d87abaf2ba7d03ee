package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"leen-studio/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const adminPasskeyHeader = "X-Admin-Passkey"

type AdminMiddleware struct {
	passkey string
}

func NewAdminMiddleware(cfg config.AdminConfig) *AdminMiddleware {
	return &AdminMiddleware{passkey: cfg.Passkey}
}

// RequirePasskey gates the dashboard behind the shared passphrase. The
// response never says whether the header was absent or merely wrong, and
// the comparison is constant time.
func (m *AdminMiddleware) RequirePasskey() gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader(adminPasskeyHeader)

		if subtle.ConstantTimeCompare([]byte(supplied), []byte(m.passkey)) != 1 {
			slog.Warn("admin passkey rejected", "client_ip", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access denied",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
