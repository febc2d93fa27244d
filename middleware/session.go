package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionIDKey = "session_id"

// EnsureSession gives every visitor a stable opaque id stored in the session
// cookie. The cart is keyed on it; it is not an authentication identity.
func EnsureSession(c *gin.Context) {
	sess := sessions.Default(c)

	id, ok := sess.Get(sessionIDKey).(string)
	if !ok || id == "" {
		id = uuid.NewString()
		sess.Set(sessionIDKey, id)
		_ = sess.Save()
	}

	c.Set("session_id", id)
	c.Next()
}
