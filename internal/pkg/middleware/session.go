package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialhub/internal/domain/user/model"
	"socialhub/internal/domain/user/repository"
	"socialhub/pkg/response"
)

const currentUserKey = "currentUser"

// SessionMiddleware is the auth stand-in: it resolves the configured
// current-user identity once per request and attaches it to the context.
// New posts, comments and messages are attributed to this user.
func SessionMiddleware(users repository.UserRepository, userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := users.GetByID(userID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "session user missing from store")
			c.Abort()
			return
		}
		c.Set(currentUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the session identity attached by SessionMiddleware.
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(currentUserKey); ok {
		if u, ok := v.(*model.User); ok {
			return u
		}
	}
	return nil
}
