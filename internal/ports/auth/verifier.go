package auth

import "context"

// TokenIssuer firma claims y devuelve el token serializado.
type TokenIssuer interface {
	Issue(ctx context.Context, claims Claims) (string, error)
}

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
