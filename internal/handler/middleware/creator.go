package middleware

import (
	"errors"
	"net/http"
	"regexp"

	"creator-sponsorship/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

var (
	usernamePattern    = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,63}$`)
	errInvalidUsername = errors.New("invalid creator username")
)

// RequireCreatorUsername rejects creator-scoped routes whose :username could
// not belong to any creator.
func RequireCreatorUsername() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !usernamePattern.MatchString(c.Param("username")) {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidUsername, "Invalid creator username", nil)
			return
		}
		c.Next()
	}
}
