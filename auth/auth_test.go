package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/justin-mavity/usermodel/models"
	"github.com/justin-mavity/usermodel/repositories"

	restful "github.com/emicklei/go-restful/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testUser() *models.User {
	return &models.User{
		ID:       7,
		Username: "cinnamon",
		Roles: []models.UserRole{
			{UserID: 7, RoleID: 1, RoleName: "admin"},
			{UserID: 7, RoleID: 2, RoleName: "user"},
		},
	}
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAndValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "cinnamon", claims.Username)
	assert.Equal(t, []string{"admin", "user"}, claims.Roles)
	assert.True(t, claims.HasRole("admin"))
	assert.False(t, claims.HasRole("data"))
}

func TestParseAndValidateTokenRejections(t *testing.T) {
	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseAndValidateToken("not-a-token")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed")
	})

	t.Run("Expired", func(t *testing.T) {
		claims := &CustomClaims{
			UserID:   7,
			Username: "cinnamon",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString(mySigningKey)
		require.NoError(t, err)

		_, err = ParseAndValidateToken(signed)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("Wrong signature", func(t *testing.T) {
		claims := &CustomClaims{
			UserID: 7,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte("some-other-key"))
		require.NoError(t, err)

		_, err = ParseAndValidateToken(signed)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "signature")
	})
}

// newFilteredContainer mounts a probe route behind AuthFilter and an
// admin-gated probe behind RequireRole.
func newFilteredContainer() *restful.Container {
	ws := new(restful.WebService)
	ws.Path("/").Produces(restful.MIME_JSON)

	ok := func(req *restful.Request, resp *restful.Response) {
		_ = resp.WriteHeaderAndJson(http.StatusOK, map[string]string{"message": "ok"}, restful.MIME_JSON)
	}
	ws.Route(ws.GET("/probe").Filter(AuthFilter()).To(ok))
	ws.Route(ws.GET("/admin-probe").Filter(AuthFilter()).Filter(RequireRole("admin")).To(ok))

	container := restful.NewContainer()
	container.Add(ws)
	return container
}

func TestAuthFilter(t *testing.T) {
	container := newFilteredContainer()

	get := func(t *testing.T, path, authHeader string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		w := httptest.NewRecorder()
		container.ServeHTTP(w, req)
		return w
	}

	t.Run("Missing header", func(t *testing.T) {
		w := get(t, "/probe", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Wrong scheme", func(t *testing.T) {
		w := get(t, "/probe", "Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid token passes", func(t *testing.T) {
		token, err := GenerateToken(testUser())
		require.NoError(t, err)

		w := get(t, "/probe", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("RequireRole admits the role holder", func(t *testing.T) {
		token, err := GenerateToken(testUser())
		require.NoError(t, err)

		w := get(t, "/admin-probe", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("RequireRole rejects others", func(t *testing.T) {
		plain := &models.User{ID: 8, Username: "lazybones",
			Roles: []models.UserRole{{UserID: 8, RoleID: 2, RoleName: "user"}}}
		token, err := GenerateToken(plain)
		require.NoError(t, err)

		w := get(t, "/admin-probe", "Bearer "+token)
		require.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Forbidden")
	})
}

func TestLoginRoute(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:auth_login_test?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Role{}, &models.UserRole{}))

	hashed, err := bcrypt.GenerateFromPassword([]byte("hellothere"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{Username: "ada", Credential: string(hashed)}).Error)

	ws := new(restful.WebService)
	ws.Path("/").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)
	ws.Route(ws.POST("/login").To(LoginRouteHandler(repositories.NewUserRepository(db))))
	container := restful.NewContainer()
	container.Add(ws)

	login := func(t *testing.T, creds LoginCredentials) *httptest.ResponseRecorder {
		t.Helper()
		raw, err := json.Marshal(creds)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", restful.MIME_JSON)
		w := httptest.NewRecorder()
		container.ServeHTTP(w, req)
		return w
	}

	t.Run("Success issues a usable token", func(t *testing.T) {
		w := login(t, LoginCredentials{Username: "ada", Password: "hellothere"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)

		claims, err := ParseAndValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "ada", claims.Username)
	})

	t.Run("Wrong password", func(t *testing.T) {
		w := login(t, LoginCredentials{Username: "ada", Password: "wrong"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("Unknown user looks identical to wrong password", func(t *testing.T) {
		w := login(t, LoginCredentials{Username: "ghost", Password: "hellothere"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("Missing fields", func(t *testing.T) {
		w := login(t, LoginCredentials{Username: "ada"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
