// Package grpcserver exposes the user lookup operations over gRPC for
// sibling services. Mutations stay on the HTTP boundary.
package grpcserver

import (
	"context"

	"github.com/justin-mavity/usermodel/apperrors"
	"github.com/justin-mavity/usermodel/models"
	userpb "github.com/justin-mavity/usermodel/proto/user"
	"github.com/justin-mavity/usermodel/services"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userServiceServer implements the proto-defined UserServiceServer interface.
// It embeds the Unimplemented server for forward compatibility.
type userServiceServer struct {
	userpb.UnimplementedUserServiceServer
	userService services.UserService
}

// NewUserServiceServer creates a new gRPC user service server reusing the
// domain service.
func NewUserServiceServer(us services.UserService) userpb.UserServiceServer {
	return &userServiceServer{userService: us}
}

func modelToProtoUser(u *models.User) *userpb.User {
	if u == nil {
		return nil
	}
	roles := make([]*userpb.Role, len(u.Roles))
	for i, ur := range u.Roles {
		roles[i] = &userpb.Role{Roleid: uint64(ur.RoleID), Name: ur.RoleName}
	}
	return &userpb.User{
		Userid:   uint64(u.ID),
		Username: u.Username,
		Email:    u.PrimaryEmail,
		Roles:    roles,
	}
}

// serviceError maps domain errors onto gRPC status codes.
func serviceError(err error) error {
	if apperrors.IsNotFound(err) {
		return status.Error(codes.NotFound, err.Error())
	}
	return status.Errorf(codes.Internal, "internal error: %v", err)
}

// GetUser is the gRPC handler for retrieving a user by id.
func (s *userServiceServer) GetUser(ctx context.Context, req *userpb.GetUserRequest) (*userpb.User, error) {
	user, err := s.userService.FindUserByID(uint(req.Userid))
	if err != nil {
		return nil, serviceError(err)
	}
	return modelToProtoUser(user), nil
}

// GetUserByName is the gRPC handler for retrieving a user by exact username.
func (s *userServiceServer) GetUserByName(ctx context.Context, req *userpb.GetUserByNameRequest) (*userpb.User, error) {
	user, err := s.userService.FindByName(req.Username)
	if err != nil {
		return nil, serviceError(err)
	}
	return modelToProtoUser(user), nil
}

// ListUsers is the gRPC handler for listing all users.
func (s *userServiceServer) ListUsers(ctx context.Context, req *userpb.ListUsersRequest) (*userpb.ListUsersResponse, error) {
	users, err := s.userService.FindAll()
	if err != nil {
		return nil, serviceError(err)
	}

	protoUsers := make([]*userpb.User, len(users))
	for i := range users {
		protoUsers[i] = modelToProtoUser(&users[i])
	}
	return &userpb.ListUsersResponse{Users: protoUsers}, nil
}
