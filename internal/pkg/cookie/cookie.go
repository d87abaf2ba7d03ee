package cookie

import (
	"github.com/gin-gonic/gin"
)

const SessionCookieName = "session_id"

// One anonymous browser session per cookie. The cookie carries no identity,
// only the key into the server-side session store.
func SetSessionCookie(c *gin.Context, sessionID string, maxAgeSeconds int) {
	c.SetCookie(
		SessionCookieName,
		sessionID,
		maxAgeSeconds,
		"/",
		"",
		false,
		true, // HttpOnly
	)
}

func GetSessionID(c *gin.Context) string {
	id, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return id
}
