package mocks

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
)

// Password plano de todos los usuarios mock.
const MockPassword = "coder123"

var speciesPool = []string{"dog", "cat", "bird", "fish", "hamster", "rabbit"}

// Generator produce usuarios y mascotas fake listos para insertar.
// El hash de password se calcula una sola vez: bcrypt por usuario haría
// a /generateData O(n·bcrypt).
type Generator struct {
	passwordHash string
	now          func() time.Time
}

func NewGenerator() (*Generator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(MockPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Generator{
		passwordHash: string(hash),
		now:          time.Now,
	}, nil
}

// Users genera count usuarios con rol aleatorio user/admin (50/50) y
// set de mascotas vacío.
func (g *Generator) Users(count int) []users.User {
	now := g.now()

	out := make([]users.User, 0, count)
	for i := 0; i < count; i++ {
		role := users.RoleUser
		if gofakeit.Bool() {
			role = users.RoleAdmin
		}

		out = append(out, users.User{
			ID:        uuid.NewString(),
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Email:     gofakeit.Email(),
			Password:  g.passwordHash,
			Role:      role,
			Pets:      []string{},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return out
}

// Pets genera count mascotas sin adoptar.
func (g *Generator) Pets(count int) []pets.Pet {
	now := g.now()

	out := make([]pets.Pet, 0, count)
	for i := 0; i < count; i++ {
		bd := gofakeit.DateRange(now.AddDate(-15, 0, 0), now)

		out = append(out, pets.Pet{
			ID:        uuid.NewString(),
			Name:      gofakeit.PetName(),
			Species:   speciesPool[gofakeit.Number(0, len(speciesPool)-1)],
			BirthDate: &bd,
			Adopted:   false,
			Image:     gofakeit.URL(),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return out
}
