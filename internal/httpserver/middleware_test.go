package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailgate/internal/util"
)

func protectedEngine(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(secret), func(c *gin.Context) {
		userID := c.GetInt("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := protectedEngine("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthenticated")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := protectedEngine("secret")

	for name, token := range map[string]string{
		"malformed":      "not.a.jwt",
		"wrongly_signed": mustToken(t, 5, "other-secret"),
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", token)
		r.ServeHTTP(w, req)

		assert.Equalf(t, http.StatusForbidden, w.Code, "case %s", name)
		assert.Contains(t, w.Body.String(), "invalid credential")
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := protectedEngine("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", mustToken(t, 9, "secret"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":9`)
}

func mustToken(t *testing.T, userID int, secret string) string {
	t.Helper()
	tok, err := util.GenerateJWT(userID, secret)
	require.NoError(t, err)
	return tok
}
