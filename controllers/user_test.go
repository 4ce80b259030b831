package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/justin-mavity/usermodel/auth"
	"github.com/justin-mavity/usermodel/models"
	"github.com/justin-mavity/usermodel/repositories"
	"github.com/justin-mavity/usermodel/services"

	restful "github.com/emicklei/go-restful/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

type testServer struct {
	container  *restful.Container
	db         *gorm.DB
	adminToken string
	plainToken string
}

// newTestServer wires a full HTTP surface against a fresh in-memory database
// with the base roles, one admin and one unprivileged user seeded.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:ctl_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Role{}, &models.UserRole{}))

	for _, name := range []string{"admin", "user", "data"} {
		require.NoError(t, db.Create(&models.Role{Name: name}).Error)
	}

	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	userService := services.NewUserService(db, userRepo, roleRepo)
	roleService := services.NewRoleService(roleRepo)

	ws := new(restful.WebService)
	ws.Path("/").Consumes(restful.MIME_JSON).Produces(restful.MIME_JSON)
	NewUserController(userService).RegisterRoutes(ws)
	NewRoleController(roleService).RegisterRoutes(ws)

	restful.PrettyPrintResponses = false

	container := restful.NewContainer()
	container.Add(ws)

	adminUser, err := userService.Save(&services.CreateUserInput{
		Username:   "admin",
		Credential: "adminpassword",
		Roles:      []services.UserRoleInput{{RoleID: 1}},
	})
	require.NoError(t, err)
	plainUser, err := userService.Save(&services.CreateUserInput{
		Username:   "cinnamon",
		Credential: "password",
		Roles:      []services.UserRoleInput{{RoleID: 2}},
	})
	require.NoError(t, err)

	adminToken, err := auth.GenerateToken(adminUser)
	require.NoError(t, err)
	plainToken, err := auth.GenerateToken(plainUser)
	require.NoError(t, err)

	return &testServer{
		container:  container,
		db:         db,
		adminToken: adminToken,
		plainToken: plainToken,
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", restful.MIME_JSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.container.ServeHTTP(w, req)
	return w
}

func TestUserRoutesRequireAuth(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = srv.do(t, http.MethodGet, "/users", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMutationsRequireAdminRole(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/user", srv.plainToken,
		services.CreateUserInput{Username: "ada", Credential: "hellothere"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = srv.do(t, http.MethodDelete, "/user/2", srv.plainToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Reads stay open to any authenticated principal.
	w = srv.do(t, http.MethodGet, "/users", srv.plainToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListUsers(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/users", srv.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2)

	// The credential never leaks into a response body.
	assert.NotContains(t, w.Body.String(), "credential")
	assert.NotContains(t, w.Body.String(), "adminpassword")
}

func TestGetUserByID(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Success", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/user/1", srv.adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var user map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		assert.Equal(t, float64(1), user["userid"])
		assert.Equal(t, "admin", user["username"])
	})

	t.Run("Not found carries the generic marker", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/user/999", srv.adminToken, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Resource not found")
	})

	t.Run("Malformed id", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/user/abc", srv.adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetUserByName(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Exact match", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/user/name/cinnamon", srv.adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"cinnamon"`)
	})

	t.Run("Fragment does not match exactly", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/user/name/cinna", srv.adminToken, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Resource not found")
	})

	t.Run("Like search matches case-insensitively", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/user/name/like/CINNA", srv.adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var users []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		require.Len(t, users, 1)
		assert.Equal(t, "cinnamon", users[0]["username"])
	})

	t.Run("Like search with no match is an empty 200", func(t *testing.T) {
		w := srv.do(t, http.MethodGet, "/user/name/like/zzz", srv.adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var users []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		assert.Empty(t, users)
	})
}

func TestCreateUserRoute(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Success", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/user", srv.adminToken, services.CreateUserInput{
			Username:   "ada",
			Credential: "hellothere",
			Email:      "ada@lovelace.test",
			Roles:      []services.UserRoleInput{{RoleID: 1}},
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var user map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		assert.Equal(t, "ada", user["username"])
		assert.NotContains(t, w.Body.String(), "hellothere")
	})

	t.Run("Missing credential", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/user", srv.adminToken,
			services.CreateUserInput{Username: "grace"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/user", srv.adminToken,
			services.CreateUserInput{Username: "Ada", Credential: "hellothere"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Unknown role id", func(t *testing.T) {
		w := srv.do(t, http.MethodPost, "/user", srv.adminToken, services.CreateUserInput{
			Username:   "grace",
			Credential: "hopper",
			Roles:      []services.UserRoleInput{{RoleID: 99}},
		})
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Resource not found")
	})
}

func TestUpdateUserRoute(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Partial update", func(t *testing.T) {
		w := srv.do(t, http.MethodPut, "/user/2", srv.adminToken,
			map[string]interface{}{"email": "cinnamon@example.test"})
		require.Equal(t, http.StatusOK, w.Code)

		var user map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		assert.Equal(t, "cinnamon", user["username"])
		assert.Equal(t, "cinnamon@example.test", user["email"])
	})

	t.Run("Role replacement", func(t *testing.T) {
		w := srv.do(t, http.MethodPut, "/user/2", srv.adminToken,
			map[string]interface{}{"roles": []map[string]interface{}{{"roleid": 3}}})
		require.Equal(t, http.StatusOK, w.Code)

		var user struct {
			Roles []map[string]interface{} `json:"roles"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		require.Len(t, user.Roles, 1)
		assert.Equal(t, "data", user.Roles[0]["name"])
	})

	t.Run("Present but empty username is rejected", func(t *testing.T) {
		w := srv.do(t, http.MethodPut, "/user/2", srv.adminToken,
			map[string]interface{}{"username": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown user", func(t *testing.T) {
		w := srv.do(t, http.MethodPut, "/user/999", srv.adminToken,
			map[string]interface{}{"email": "nobody@nowhere.test"})
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Resource not found")
	})
}

func TestDeleteUserRoute(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodDelete, "/user/2", srv.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = srv.do(t, http.MethodGet, "/user/2", srv.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.do(t, http.MethodDelete, "/user/2", srv.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
