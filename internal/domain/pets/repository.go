package pets

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound lo devuelven los adapters cuando el ID no resuelve
	// (incluye IDs malformados: nunca revientan, son not-found).
	ErrNotFound = errors.New("pet not found")

	// ErrAlreadyAdopted: la condición adopted == false no matcheó
	// al momento del claim. Es el resultado del check-and-set atómico.
	ErrAlreadyAdopted = errors.New("pet is already adopted")
)

type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Pet, error)
	ListAll(ctx context.Context) ([]Pet, error)

	// ClaimForAdoption hace la transición adopted false->true de forma
	// atómica en el data layer (update condicional, no read-then-write).
	// Devuelve ErrNotFound si el ID no existe y ErrAlreadyAdopted si la
	// mascota ya estaba adoptada. A lo sumo un caller concurrente gana.
	ClaimForAdoption(ctx context.Context, petID, ownerUserID string, at time.Time) error

	// ReleaseClaim revierte un claim propio (compensación del workflow).
	// Solo revierte si owner coincide; si no, no toca nada.
	ReleaseClaim(ctx context.Context, petID, ownerUserID string, at time.Time) error
}
