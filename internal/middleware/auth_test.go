package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"carwash/internal/domain"
	jwtsvc "carwash/internal/pkg/jwt"
)

func TestRequireAuth_ValidToken(t *testing.T) {
	j := jwtsvc.New("test-secret-123", time.Hour)
	token, _ := j.GenerateToken(42, "client")

	router := gin.New()
	router.Use(RequireAuth(j))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": CallerID(c),
			"role":    CallerRole(c),
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "client")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)

	router := gin.New()
	router.Use(RequireAuth(j))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)

	router := gin.New()
	router.Use(RequireAuth(j))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)

	router := gin.New()
	router.Use(OptionalAuth(j))
	router.POST("/bookings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CallerID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":0`)
}

func TestOptionalAuth_TokenAttachesIdentity(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)
	token, _ := j.GenerateToken(7, "client")

	router := gin.New()
	router.Use(OptionalAuth(j))
	router.POST("/bookings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CallerID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestRequireRole_Forbidden(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)
	token, _ := j.GenerateToken(7, "client")

	router := gin.New()
	router.Use(RequireAuth(j), AdminOnly())
	router.GET("/admin", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStaffOnly_AdmitsWasherAndAdmin(t *testing.T) {
	j := jwtsvc.New("secret", time.Hour)

	router := gin.New()
	router.Use(RequireAuth(j), StaffOnly())
	router.GET("/staff", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, role := range []domain.UserRole{domain.RoleAdmin, domain.RoleWasher} {
		token, _ := j.GenerateToken(1, string(role))
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/staff", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, string(role))
	}

	clientToken, _ := j.GenerateToken(1, string(domain.RoleClient))
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+clientToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
