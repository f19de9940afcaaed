package users

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role define los roles soportados.
// @Enum user, admin
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User representa una cuenta del catálogo de adopciones.
// Pets mantiene los IDs de mascotas adoptadas por el usuario; el workflow
// de adopción es el único que agrega entradas.
type User struct {
	ID string

	FirstName string
	LastName  string
	Email     string

	// Hash bcrypt, nunca el password plano.
	Password string

	Role Role
	Pets []string

	LastConnection *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SetPassword guarda el hash bcrypt del password plano.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword compara un password plano contra el hash guardado.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

// HasPet informa si el set de mascotas contiene petID.
func (u *User) HasPet(petID string) bool {
	for _, id := range u.Pets {
		if id == petID {
			return true
		}
	}
	return false
}
