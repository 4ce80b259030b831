package interceptors

import (
	"context"
	"strings"

	"github.com/justin-mavity/usermodel/auth"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for the authenticated user id.
	UserIDKey contextKey = "user_id"
	// UsernameKey is the context key for the authenticated username.
	UsernameKey contextKey = "username"
	// RolesKey is the context key for the authenticated user's role names.
	RolesKey contextKey = "roles"
)

// healthMethodPrefix matches the gRPC Health Checking Protocol methods. The
// consul agent probes them without credentials.
const healthMethodPrefix = "/grpc.health.v1.Health/"

// AuthInterceptor returns a unary server interceptor that requires a valid
// bearer token in the "authorization" metadata entry. Claims are injected
// into the handler context.
func AuthInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if strings.HasPrefix(info.FullMethod, healthMethodPrefix) {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "metadata is not provided")
		}

		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "authorization token is not provided")
		}

		parts := strings.Split(values[0], " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return nil, status.Error(codes.Unauthenticated, "invalid authorization header format")
		}

		claims, err := auth.ParseAndValidateToken(parts[1])
		if err != nil {
			return nil, status.Errorf(codes.Unauthenticated, "invalid token: %v", err)
		}

		newCtx := context.WithValue(ctx, UserIDKey, claims.UserID)
		newCtx = context.WithValue(newCtx, UsernameKey, claims.Username)
		newCtx = context.WithValue(newCtx, RolesKey, claims.Roles)

		return handler(newCtx, req)
	}
}

// GetUserIDFromContext extracts the authenticated user id from the context.
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}

// GetUsernameFromContext extracts the authenticated username from the context.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// GetRolesFromContext extracts the authenticated user's role names from the context.
func GetRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(RolesKey).([]string)
	return roles, ok
}
