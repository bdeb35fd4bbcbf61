package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ActorHeader carries the authenticated user id set by the upstream gateway
	ActorHeader = "X-User-ID"
	// ActorKey is the context key for the acting user id
	ActorKey = "actor_id"
)

// Actor reads the acting user from the X-User-ID header. Anonymous requests
// pass through with an empty actor; a header that is not a UUID is rejected
// with 401.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := strings.TrimSpace(c.GetHeader(ActorHeader)); raw != "" {
			actorID, err := uuid.Parse(raw)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid " + ActorHeader})
				return
			}
			c.Set(ActorKey, actorID.String())
		}
		c.Next()
	}
}

// RequireActor rejects requests without an acting user.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetActorID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// GetActorID retrieves the acting user id from the gin context.
func GetActorID(c *gin.Context) string {
	if actorID, exists := c.Get(ActorKey); exists {
		if id, ok := actorID.(string); ok {
			return id
		}
	}
	return ""
}
