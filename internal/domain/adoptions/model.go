package adoptions

import "time"

// Adoption es el registro de auditoría de una adopción concretada.
// Es append-only: se crea una sola vez por adopción y nunca se actualiza.
type Adoption struct {
	ID string

	OwnerUserID string
	PetID       string

	CreatedAt time.Time
}
