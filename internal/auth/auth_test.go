package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"gamecatalog/backend/pkg/jwt"
)

const testSecret = "test-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/providers/:provider", AuthMiddleware(testSecret), ProviderScopeMiddleware())
	g.POST("/games/import", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString(SubjectKey)})
	})
	return r
}

func do(t *testing.T, r http.Handler, provider, header string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/providers/"+provider+"/games/import", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func token(t *testing.T, subject string) string {
	t.Helper()
	tok, err := jwt.GenerateToken(testSecret, subject, time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return "Bearer " + tok
}

func TestAuth_MissingOrMalformedHeader(t *testing.T) {
	r := newRouter()
	for _, h := range []string{"", "Basic abc", "Bearer", "Bearer not-a-jwt"} {
		if code := do(t, r, "acme", h); code != http.StatusUnauthorized {
			t.Fatalf("header %q: code=%d want 401", h, code)
		}
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	tok, _ := jwt.GenerateToken("other-secret", "acme", time.Hour)
	if code := do(t, newRouter(), "acme", "Bearer "+tok); code != http.StatusUnauthorized {
		t.Fatalf("code=%d want 401", code)
	}
}

func TestProviderScope(t *testing.T) {
	r := newRouter()
	cases := []struct {
		subject  string
		provider string
		want     int
	}{
		{"acme", "acme", http.StatusOK},
		{"acme", "netent", http.StatusForbidden},
		{jwt.AnyProvider, "netent", http.StatusOK},
	}
	for _, tc := range cases {
		if code := do(t, r, tc.provider, token(t, tc.subject)); code != tc.want {
			t.Fatalf("sub=%s provider=%s code=%d want %d", tc.subject, tc.provider, code, tc.want)
		}
	}
}

func TestProviderScope_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/providers/:provider/games/import", ProviderScopeMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	if code := do(t, r, "acme", ""); code != http.StatusUnauthorized {
		t.Fatalf("code=%d want 401", code)
	}
}
