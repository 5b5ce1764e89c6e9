package utils

import (
	"context"
)

type contextKey string

const (
	AdminKey     contextKey = "admin"
	RequestIDKey contextKey = "request_id"
)

// SetAdminContext stores the authenticated admin username for downstream
// handlers.
func SetAdminContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, AdminKey, username)
}

func GetAdminFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(AdminKey).(string)
	return username, ok && username != ""
}

func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	return requestID, ok && requestID != ""
}
