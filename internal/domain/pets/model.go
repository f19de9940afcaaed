package pets

import "time"

// Pet representa una mascota del catálogo de adopciones.
// Invariante: Adopted == true si y solo si OwnerUserID != "" y ese usuario
// tiene este ID en su set de mascotas (lo garantiza el workflow de adopción).
type Pet struct {
	ID string

	Name    string
	Species string // libre: dog, cat, bird, ...

	BirthDate *time.Time

	Adopted bool
	// Vacío mientras la mascota no fue adoptada.
	OwnerUserID string

	// URL de imagen, opcional.
	Image string

	CreatedAt time.Time
	UpdatedAt time.Time
}
