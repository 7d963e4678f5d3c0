package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmtz/usuarios-api/internal/domain/service"
	"github.com/davidmtz/usuarios-api/internal/infrastructure/security"
)

func gatedRouter(tokens service.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/api/users")
	grp.Use(BearerAuth(tokens))
	grp.GET("/profile", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":    c.GetString(CtxUserIDKey),
			"userEmail": c.GetString(CtxUserEmailKey),
		})
	})
	return r
}

func get(r *gin.Engine, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	r := gatedRouter(security.NewJWTService("s3cret", time.Hour))

	w := get(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token de autenticación requerido")
}

func TestBearerAuth_WrongScheme(t *testing.T) {
	r := gatedRouter(security.NewJWTService("s3cret", time.Hour))

	w := get(r, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token de autenticación requerido")
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	r := gatedRouter(security.NewJWTService("s3cret", time.Hour))

	w := get(r, "Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token inválido o expirado")
}

func TestBearerAuth_WrongSecret(t *testing.T) {
	other := security.NewJWTService("otra-clave", time.Hour)
	tok, err := other.Issue(service.Claims{UserID: "u1", Email: "ana@example.com"})
	require.NoError(t, err)

	r := gatedRouter(security.NewJWTService("s3cret", time.Hour))
	w := get(r, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token inválido o expirado")
}

func TestBearerAuth_ExpiredToken(t *testing.T) {
	svc := security.NewJWTService("s3cret", -time.Minute)
	tok, err := svc.Issue(service.Claims{UserID: "u1", Email: "ana@example.com"})
	require.NoError(t, err)

	r := gatedRouter(security.NewJWTService("s3cret", time.Hour))
	w := get(r, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token inválido o expirado")
}

func TestBearerAuth_ValidTokenInjectsClaims(t *testing.T) {
	svc := security.NewJWTService("s3cret", time.Hour)
	tok, err := svc.Issue(service.Claims{UserID: "u1", Email: "ana@example.com"})
	require.NoError(t, err)

	r := gatedRouter(svc)
	w := get(r, "Bearer "+tok)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u1", body["userID"])
	assert.Equal(t, "ana@example.com", body["userEmail"])
}
