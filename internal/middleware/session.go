package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionIDKey = "session_id"

// Session issues a uuid cookie on first contact and exposes the session id on
// the context. Each session owns an independent ledger; there is no
// cross-session state and no authentication.
func Session(cookieName string, ttlSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}
		// Re-set on every request to slide the expiry with activity.
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, id, ttlSeconds, "/", "", false, true)
		c.Set(SessionIDKey, id)
		c.Next()
	}
}

// GetSessionID is a helper to retrieve the session id from the Gin context.
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
