package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setContext(key string, value string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(key, value)
		c.Next()
	}
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func doGet(router *gin.Engine, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckLoginMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/anonymous", CheckLoginMiddleware(), okHandler)
	router.GET("/loggedin", setContext("Username", "alice"), CheckLoginMiddleware(), okHandler)

	if w := doGet(router, "/anonymous"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without login, got %d", w.Code)
	}
	if w := doGet(router, "/loggedin"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 when logged in, got %d", w.Code)
	}
}

func TestCheckAdminPermissionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/norole", CheckAdminPermissionMiddleware(), okHandler)
	router.GET("/user", setContext("Role", "ROLE_USER"), CheckAdminPermissionMiddleware(), okHandler)
	router.GET("/admin", setContext("Role", "ROLE_ADMIN"), CheckAdminPermissionMiddleware(), okHandler)

	if w := doGet(router, "/norole"); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without role, got %d", w.Code)
	}
	if w := doGet(router, "/user"); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for ROLE_USER, got %d", w.Code)
	}
	if w := doGet(router, "/admin"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for ROLE_ADMIN, got %d", w.Code)
	}
}
