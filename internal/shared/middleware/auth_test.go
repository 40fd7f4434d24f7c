package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scribverse-backend/pkg/jwt"
)

func newAuthTestRouter(manager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthRequired(manager), func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	})
	return router
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	router := newAuthTestRouter(jwt.NewManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTHENTICATION_REQUIRED")
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	router := newAuthTestRouter(jwt.NewManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTHENTICATION_FAILED")
}

func TestAuthRequiredValidToken(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour)
	router := newAuthTestRouter(manager)

	userID := uuid.New()
	token, err := manager.Issue(userID.String(), "alice@example.com", "Alice")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestAuthRequiredAcceptsBareToken(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour)
	router := newAuthTestRouter(manager)

	userID := uuid.New()
	token, err := manager.Issue(userID.String(), "alice@example.com", "Alice")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	// No "Bearer " prefix; the original frontend sent the raw token.
	req.Header.Set("Authorization", token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequiredRejectsWrongSecret(t *testing.T) {
	verifier := jwt.NewManager("secret-a", time.Hour)
	issuer := jwt.NewManager("secret-b", time.Hour)
	router := newAuthTestRouter(verifier)

	token, err := issuer.Issue(uuid.New().String(), "a@example.com", "A")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
