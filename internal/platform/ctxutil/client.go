package ctxutil

import "context"

type clientKeyKey struct{}

// DefaultClientKey scopes in-memory page state when the caller sends no X-Client-Id.
const DefaultClientKey = "default"

func WithClientKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, clientKeyKey{}, key)
}

func GetClientKey(ctx context.Context) string {
	if v, ok := ctx.Value(clientKeyKey{}).(string); ok && v != "" {
		return v
	}
	return DefaultClientKey
}
