package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vibe-Web-Agency/dashboard/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "secret-de-test"}
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func runAuth(cfg *config.Config, authorization string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/api/me", nil)
	if authorization != "" {
		c.Request.Header.Set("Authorization", authorization)
	}

	AuthMiddleware(cfg)(c)
	return w, c
}

func TestAuthMiddleware_SetsUserID(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()

	token := signedToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, c := runAuth(cfg, "Bearer "+token)

	require.False(t, c.IsAborted())
	assert.Equal(t, userID, c.MustGet(ContextUserID).(uuid.UUID))
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	cfg := testConfig()

	expired := signedToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signedToken(t, "autre-secret", jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	badSubject := signedToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub": "pas-un-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	cases := []struct {
		name          string
		authorization string
	}{
		{name: "en-tête absent", authorization: ""},
		{name: "schéma inattendu", authorization: "Basic abcdef"},
		{name: "jeton expiré", authorization: "Bearer " + expired},
		{name: "mauvaise clé", authorization: "Bearer " + wrongKey},
		{name: "sujet invalide", authorization: "Bearer " + badSubject},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, c := runAuth(cfg, tc.authorization)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.True(t, c.IsAborted())
		})
	}
}
