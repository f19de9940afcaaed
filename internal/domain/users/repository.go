package users

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven los adapters cuando el ID o email no resuelve.
// Cualquier otro error del repo se trata como falla del store.
var ErrNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, u User) error
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ListAll(ctx context.Context) ([]User, error)

	// AddPet/RemovePet mutan el set de mascotas del usuario.
	// AddPet es idempotente: reinsertar el mismo petID no duplica.
	AddPet(ctx context.Context, userID, petID string) error
	RemovePet(ctx context.Context, userID, petID string) error
}
