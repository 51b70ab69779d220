package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	HeaderAdminUser = "x-admin-user"
	HeaderAdminPass = "x-admin-pass"
)

// RequireAdmin gates mutation endpoints behind the static credential
// pair. Every rejection is the same 401 body: the response must not
// reveal which of the two values was wrong, or whether the headers were
// present at all.
//
// A configured password with a bcrypt prefix is verified as a hash, so
// a stronger scheme can be swapped in without touching any caller.
func RequireAdmin(expectedUser, expectedPass string) gin.HandlerFunc {
	hashedPass := strings.HasPrefix(expectedPass, "$2")

	return func(c *gin.Context) {
		user := c.GetHeader(HeaderAdminUser)
		pass := c.GetHeader(HeaderAdminPass)

		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(expectedUser)) == 1

		var passOK bool
		if hashedPass {
			passOK = bcrypt.CompareHashAndPassword([]byte(expectedPass), []byte(pass)) == nil
		} else {
			passOK = subtle.ConstantTimeCompare([]byte(pass), []byte(expectedPass)) == 1
		}

		if !userOK || !passOK {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}
