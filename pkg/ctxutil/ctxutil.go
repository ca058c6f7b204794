package ctxutil

import (
	"context"
)

type ctxKey string

const (
	adminKey     ctxKey = "admin"
	requestIDKey ctxKey = "request_id"
)

// Admin is the signed-in panel user carried through a request.
type Admin struct {
	ID        string
	Username  string
	AvatarURL string
}

// WithAdmin stores the signed-in admin in the context.
func WithAdmin(ctx context.Context, a Admin) context.Context {
	return context.WithValue(ctx, adminKey, a)
}

// AdminFromCtx extracts the admin from the context.
// Returns false if the value is missing, has an empty ID, or has the wrong type.
func AdminFromCtx(ctx context.Context) (Admin, bool) {
	a, ok := ctx.Value(adminKey).(Admin)
	if !ok || a.ID == "" {
		return Admin{}, false
	}
	return a, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
