package auth

import "context"

type contextKey string

const emailKey contextKey = "email"

// ContextWithEmail stores the authenticated admin's email on the
// request context.
func ContextWithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// EmailFromContext returns the authenticated admin's email, or false
// when the request is unauthenticated.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok && email != ""
}
