package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func accessClaims(role string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":       "user-001",
		"username":  "chuyenvien",
		"full_name": "Nguyễn Văn Chuyên",
		"role":      role,
		"iat":       now.Unix(),
		"exp":       now.Add(time.Hour).Unix(),
		"jti":       fmt.Sprintf("jti-%d", now.UnixNano()),
	}
}

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuth(testSecret)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":   c.GetString("user_id"),
			"full_name": c.GetString("full_name"),
			"role":      c.GetString("role"),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	r := protectedRouter()
	if w := doGet(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	r := protectedRouter()
	token := signToken(t, accessClaims("chuyen_vien"))

	w := doGet(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{"user-001", "Nguyễn Văn Chuyên", "chuyen_vien"} {
		if !strings.Contains(body, want) {
			t.Errorf("body %s missing %q", body, want)
		}
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	r := protectedRouter()
	claims := accessClaims("chuyen_vien")
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	token := signToken(t, claims)

	if w := doGet(r, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthRejectsRefreshToken(t *testing.T) {
	r := protectedRouter()
	claims := accessClaims("chuyen_vien")
	claims["type"] = "refresh"
	token := signToken(t, claims)

	// Refresh token không được dùng thay access token.
	if w := doGet(r, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	r := protectedRouter()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims("chuyen_vien"))
	signed, _ := token.SignedString([]byte("secret-khac"))

	if w := doGet(r, "Bearer "+signed); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAdminOnly(t *testing.T) {
	r := protectedRouter(AdminOnly())

	staff := signToken(t, accessClaims("chuyen_vien"))
	if w := doGet(r, "Bearer "+staff); w.Code != http.StatusForbidden {
		t.Errorf("staff status = %d, want 403", w.Code)
	}

	admin := signToken(t, accessClaims("admin"))
	if w := doGet(r, "Bearer "+admin); w.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", w.Code)
	}
}
