package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func gateRouter(expectedUser, expectedPass string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/guarded", RequireAdmin(expectedUser, expectedPass), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func hitGate(r *gin.Engine, user, pass string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	if user != "" {
		req.Header.Set(HeaderAdminUser, user)
	}
	if pass != "" {
		req.Header.Set(HeaderAdminPass, pass)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin_CorrectPairPasses(t *testing.T) {
	r := gateRouter("admin", "hunter2")
	w := hitGate(r, "admin", "hunter2")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_AnyMismatchIsIdenticalUnauthorized(t *testing.T) {
	r := gateRouter("admin", "hunter2")

	responses := []*httptest.ResponseRecorder{
		hitGate(r, "admin", "wrong"),   // correct user, wrong pass
		hitGate(r, "wrong", "hunter2"), // wrong user, correct pass
		hitGate(r, "wrong", "wrong"),
		hitGate(r, "", ""), // headers absent entirely
	}

	for i, w := range responses {
		assert.Equal(t, http.StatusUnauthorized, w.Code, "case %d", i)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String(), "case %d", i)
	}
}

func TestRequireAdmin_BcryptHashedPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	r := gateRouter("admin", string(hash))

	assert.Equal(t, http.StatusOK, hitGate(r, "admin", "hunter2").Code)
	assert.Equal(t, http.StatusUnauthorized, hitGate(r, "admin", "wrong").Code)
	// The literal hash string must not authenticate.
	assert.Equal(t, http.StatusUnauthorized, hitGate(r, "admin", string(hash)).Code)
}
