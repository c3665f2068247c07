package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shahisiiii/quiz-platform/internal/config"
	"github.com/shahisiiii/quiz-platform/internal/model"
	"github.com/shahisiiii/quiz-platform/internal/service"
)

func testRouter(auth *service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/me", RequireAuth(auth), func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	r.GET("/admin", RequireAuth(auth), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func newTestAuth(t *testing.T) *service.AuthService {
	t.Helper()
	return service.NewAuthService(&config.Config{
		JWTSecret:     "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	auth := newTestAuth(t)
	r := testRouter(auth)

	pair, err := auth.GenerateTokenPair(&model.User{ID: 1, Role: model.RoleUser})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"garbage token", "not-a-jwt", http.StatusUnauthorized},
		{"refresh token rejected", pair.Refresh, http.StatusUnauthorized},
		{"valid access token", pair.Access, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, "/me", tt.token)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d; body: %s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	auth := newTestAuth(t)
	r := testRouter(auth)

	userPair, err := auth.GenerateTokenPair(&model.User{ID: 1, Role: model.RoleUser})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	adminPair, err := auth.GenerateTokenPair(&model.User{ID: 2, Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	if w := doGet(r, "/admin", userPair.Access); w.Code != http.StatusForbidden {
		t.Errorf("user status = %d, want 403", w.Code)
	}
	if w := doGet(r, "/admin", adminPair.Access); w.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", w.Code)
	}
	if w := doGet(r, "/admin", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want 401", w.Code)
	}
}

func TestBearerTokenParsing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty", "", ""},
		{"lowercase scheme", "bearer abc", "abc"},
		{"uppercase scheme", "Bearer abc", "abc"},
		{"wrong scheme", "Basic abc", ""},
		{"no token part", "Bearer", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}
			if got := bearerToken(c); got != tt.want {
				t.Errorf("bearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
