package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret-key-32-characters")

func signTestToken(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"uid":   "customer-123",
		"email": "ana@example.com",
		"role":  "user",
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
}

func protectedRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWTAuth(testSecret), handler)
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthSetsPrincipal(t *testing.T) {
	var gotID, gotEmail, gotRole string
	router := protectedRouter(func(c *gin.Context) {
		gotID = c.GetString("userID")
		gotEmail = c.GetString("userEmail")
		gotRole = c.GetString("userRole")
		c.Status(http.StatusOK)
	})

	token := signTestToken(t, validClaims(), testSecret)
	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "customer-123", gotID)
	assert.Equal(t, "ana@example.com", gotEmail)
	assert.Equal(t, "user", gotRole)
}

func TestJWTAuthRejections(t *testing.T) {
	router := protectedRouter(func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	noRole := validClaims()
	delete(noRole, "role")

	badRole := validClaims()
	badRole["role"] = "superadmin"

	noUID := validClaims()
	delete(noUID, "uid")

	testCases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "empty token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{name: "wrong secret", header: "Bearer " + signTestToken(t, validClaims(), []byte("other-secret"))},
		{name: "expired token", header: "Bearer " + signTestToken(t, expired, testSecret)},
		{name: "missing role claim", header: "Bearer " + signTestToken(t, noRole, testSecret)},
		{name: "unknown role", header: "Bearer " + signTestToken(t, badRole, testSecret)},
		{name: "missing uid claim", header: "Bearer " + signTestToken(t, noUID, testSecret)},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", JWTAuth(testSecret), RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	adminClaims := validClaims()
	adminClaims["role"] = "admin"

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, adminClaims, testSecret))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// a user token does not reach admin handlers
	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, validClaims(), testSecret))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
