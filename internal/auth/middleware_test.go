package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewarePopulaContexto(t *testing.T) {
	tok, err := GenerateAccessToken(9, false)
	require.NoError(t, err)

	var gotID uint
	var gotAdmin bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = UserID(r.Context())
		gotAdmin = IsAdmin(r.Context())
	})

	req := httptest.NewRequest("GET", "/commissions", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	MiddlewareAutenticacao(next).ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, uint(9), gotID)
	assert.False(t, gotAdmin)
}

func TestMiddlewareSemTokenBloqueia(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("não deveria chegar no handler")
	})

	req := httptest.NewRequest("GET", "/commissions", nil)
	rec := httptest.NewRecorder()
	MiddlewareAutenticacao(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminBloqueiaNaoAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("POST", "/sellers", nil)
	rec := httptest.NewRecorder()
	RequireAdmin(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
