package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wildsafari/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func runAuthJWT(authorization string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := AuthJWT(config.Config{JWTSecret: testSecret})
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)
	return rec, c
}

func TestAuthJWT_ValidToken(t *testing.T) {
	now := time.Now()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":      float64(42),
		"is_admin": true,
		"iat":      now.Unix(),
		"exp":      now.Add(15 * time.Minute).Unix(),
	})

	rec, c := runAuthJWT("Bearer " + token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), c.Get(CtxUserIDKey))
	assert.Equal(t, true, c.Get(CtxIsAdminKey))
}

func TestAuthJWT_StringSubClaim(t *testing.T) {
	now := time.Now()
	// subは文字列でも数値でも通す
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "7",
		"exp": now.Add(15 * time.Minute).Unix(),
	})

	rec, c := runAuthJWT("Bearer " + token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), c.Get(CtxUserIDKey))
	// is_admin未設定はfalse
	assert.Equal(t, false, c.Get(CtxIsAdminKey))
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	rec, _ := runAuthJWT("")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_NotBearer(t *testing.T) {
	rec, _ := runAuthJWT("Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	token := signToken(t, "another-secret", jwt.MapClaims{
		"sub": float64(42),
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	})

	rec, _ := runAuthJWT("Bearer " + token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": float64(42),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	rec, _ := runAuthJWT("Bearer " + token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func runAdminGuard(isAdmin interface{}) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if isAdmin != nil {
		c.Set(CtxIsAdminKey, isAdmin)
	}

	handler := AdminGuard()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)
	return rec
}

func TestAdminGuard_AdminAllowed(t *testing.T) {
	rec := runAdminGuard(true)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminGuard_RegularUserForbidden(t *testing.T) {
	rec := runAdminGuard(false)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminGuard_NoAuthContext(t *testing.T) {
	rec := runAdminGuard(nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
