package middleware

import (
	"net/http"

	"rawtails/internal/util"

	"github.com/gin-gonic/gin"
)

// Placeholder identity: the acting user arrives as a bare x-user-id
// header. A real auth collaborator replaces this middleware without
// touching handlers, which only ever read the context key.

const (
	// UserIDHeader carries the acting user's id on mutating requests.
	UserIDHeader = "x-user-id"

	// ContextUserID is the gin context key handlers read.
	ContextUserID = "userID"
)

// Identity extracts the acting user from the request. Reads proceed
// anonymously; mutating methods without an identity are rejected.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID != "" {
			c.Set(ContextUserID, userID)
		}

		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			if userID == "" {
				util.Unauthorized(c, "missing "+UserIDHeader+" header")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// ActingUser returns the acting user id from the context, empty for
// anonymous reads.
func ActingUser(c *gin.Context) string {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
