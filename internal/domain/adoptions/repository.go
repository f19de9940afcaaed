package adoptions

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("adoption not found")

type Repository interface {
	Create(ctx context.Context, a Adoption) error
	GetByID(ctx context.Context, id string) (Adoption, error)
	ListAll(ctx context.Context) ([]Adoption, error)

	// Delete existe solo para teardown de tests; ningún workflow borra
	// registros de adopción.
	Delete(ctx context.Context, id string) error
}
