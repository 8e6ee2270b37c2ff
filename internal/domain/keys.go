package domain

import "context"

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)

// lookup checks both the typed key and its string form. The gin context
// stores values under plain string keys, plain contexts under CtxKey.
func lookup(ctx context.Context, key CtxKey) any {
	if v := ctx.Value(string(key)); v != nil {
		return v
	}
	return ctx.Value(key)
}

// CallerID extracts the authenticated user id from the request context.
// Returns "" when the caller is unauthenticated.
func CallerID(ctx context.Context) string {
	id, _ := lookup(ctx, KeyUserID).(string)
	return id
}

// CallerRole extracts the authenticated caller's role from the request
// context. Returns the zero Role when missing.
func CallerRole(ctx context.Context) Role {
	switch v := lookup(ctx, KeyUserRole).(type) {
	case Role:
		return v
	case string:
		return Role(v)
	default:
		return ""
	}
}
