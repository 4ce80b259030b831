package grpcserver

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/justin-mavity/usermodel/models"
	userpb "github.com/justin-mavity/usermodel/proto/user"
	"github.com/justin-mavity/usermodel/repositories"
	"github.com/justin-mavity/usermodel/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

func newTestServer(t *testing.T) userpb.UserServiceServer {
	t.Helper()

	dsn := fmt.Sprintf("file:grpc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Role{}, &models.UserRole{}))

	require.NoError(t, db.Create(&models.Role{Name: "admin"}).Error)

	userService := services.NewUserService(db,
		repositories.NewUserRepository(db), repositories.NewRoleRepository(db))
	_, err = userService.Save(&services.CreateUserInput{
		Username:   "ada",
		Credential: "hellothere",
		Email:      "ada@lovelace.test",
		Roles:      []services.UserRoleInput{{RoleID: 1}},
	})
	require.NoError(t, err)

	return NewUserServiceServer(userService)
}

func TestGetUser(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Success", func(t *testing.T) {
		user, err := srv.GetUser(context.Background(), &userpb.GetUserRequest{Userid: 1})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.Userid)
		assert.Equal(t, "ada", user.Username)
		assert.Equal(t, "ada@lovelace.test", user.Email)
		require.Len(t, user.Roles, 1)
		assert.Equal(t, "admin", user.Roles[0].Name)
	})

	t.Run("Unknown id maps to NotFound", func(t *testing.T) {
		_, err := srv.GetUser(context.Background(), &userpb.GetUserRequest{Userid: 99})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}

func TestGetUserByName(t *testing.T) {
	srv := newTestServer(t)

	user, err := srv.GetUserByName(context.Background(), &userpb.GetUserByNameRequest{Username: "ada"})
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)

	_, err = srv.GetUserByName(context.Background(), &userpb.GetUserByNameRequest{Username: "ghost"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestListUsers(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.ListUsers(context.Background(), &userpb.ListUsersRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "ada", resp.Users[0].Username)
}
