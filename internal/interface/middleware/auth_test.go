package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carebridge/carebridge-api/pkg/helpers"
)

func authRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(nil, jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("userID"),
			"role":    c.GetString("userRole"),
		})
	})
	return r
}

func TestAuthMissingCookie(t *testing.T) {
	jwt := helpers.NewJWTManager("a", "r", time.Minute, time.Hour)
	r := authRouter(jwt)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("a", "r", time.Minute, time.Hour)
	r := authRouter(jwt)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: helpers.AccessCookie, Value: "garbage"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthRejectsRefreshTokenInAccessCookie(t *testing.T) {
	jwt := helpers.NewJWTManager("a", "r", time.Minute, time.Hour)
	r := authRouter(jwt)

	refresh, _, err := jwt.GenerateRefreshToken("user-1", "patient", "sid-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: helpers.AccessCookie, Value: refresh})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthSetsIdentity(t *testing.T) {
	jwt := helpers.NewJWTManager("a", "r", time.Minute, time.Hour)
	r := authRouter(jwt)

	access, _, err := jwt.GenerateAccessToken("user-1", "staff", "sid-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: helpers.AccessCookie, Value: access})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{`"user_id":"user-1"`, `"role":"staff"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body %s missing %s", body, want)
		}
	}
}
