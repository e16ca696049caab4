package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/tahfidz-api/pkg/errors"
	"github.com/noah-isme/tahfidz-api/pkg/logger"
	"github.com/noah-isme/tahfidz-api/pkg/response"
)

// ContextActorKey is the gin context key storing the acting staff member id.
const ContextActorKey = "currentActor"

// Actor attaches the caller id from the actor header when present.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor := strings.TrimSpace(c.GetHeader(logger.ActorHeader)); actor != "" {
			c.Set(ContextActorKey, actor)
		}
		c.Next()
	}
}

// RequireActor rejects requests that do not identify the acting examiner.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ActorFrom(c) == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, logger.ActorHeader+" header required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorFrom returns the actor id stored by Actor, or an empty string.
func ActorFrom(c *gin.Context) string {
	value, exists := c.Get(ContextActorKey)
	if !exists {
		return ""
	}
	actor, _ := value.(string)
	return actor
}
