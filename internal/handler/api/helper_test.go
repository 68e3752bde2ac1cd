//go:build unit

package api_test

import (
	"net/http"

	"stay-pricing/internal/domain/user"
	"stay-pricing/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth authenticates any request carrying an Authorization header as actor.
func fakeAuth(actor user.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized", "code": "UNAUTHORIZED"}})
			return
		}
		middleware.SetActor(c, actor)
		c.Next()
	}
}

func hostActor() user.Actor {
	actor, err := user.NewActor(uuid.New(), user.RoleHost)
	if err != nil {
		panic(err)
	}
	return actor
}
