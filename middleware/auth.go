package middleware

import (
	"strings"

	"pms/services"

	"github.com/gin-gonic/gin"
)

// ContextActorID holds the acting user hint for the request, 0 when anonymous.
const ContextActorID = "actorUserID"

// ActorMiddleware extracts an acting-user hint from an optional bearer token.
// Anonymous requests (public booking portal) pass through with no hint; the
// booking engine resolves a valid owning user on its own.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if userID, err := services.GetUserIDFromToken(tokenString); err == nil {
			c.Set(ContextActorID, userID)
		}
		c.Next()
	}
}

// ActorID reads the acting user hint, 0 when none was supplied.
func ActorID(c *gin.Context) uint {
	if v, ok := c.Get(ContextActorID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
