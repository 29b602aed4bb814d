// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// Origins of a submission.
const (
	OriginWeb      = "web"
	OriginTerminal = "terminal"
)

// OriginKey is the context key for the submission origin.
type OriginKey struct{}

// WithOrigin returns a context naming the front end a request came from.
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, OriginKey{}, origin)
}

// OriginFromContext returns the origin from context, or empty string if not set.
func OriginFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(OriginKey{}).(string); ok {
		return v
	}
	return ""
}
