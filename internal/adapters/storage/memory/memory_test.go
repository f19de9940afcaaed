package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
)

func TestPetRepo_ClaimForAdoption(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, pets.Pet{ID: "p1", Name: "Milo", CreatedAt: now}))

	// claim sobre pet inexistente
	err := repo.ClaimForAdoption(ctx, "nope", "u1", now)
	assert.ErrorIs(t, err, pets.ErrNotFound)

	// primer claim gana
	require.NoError(t, repo.ClaimForAdoption(ctx, "p1", "u1", now))

	p, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, p.Adopted)
	assert.Equal(t, "u1", p.OwnerUserID)
	assert.Equal(t, now, p.UpdatedAt)

	// segundo claim pierde, sin pisar el owner
	err = repo.ClaimForAdoption(ctx, "p1", "u2", now.Add(time.Second))
	assert.ErrorIs(t, err, pets.ErrAlreadyAdopted)

	p, err = repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.OwnerUserID)
}

func TestPetRepo_ClaimForAdoption_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo()
	require.NoError(t, repo.Create(ctx, pets.Pet{ID: "p1", Name: "Luna"}))

	const attempts = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
		losers  int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(owner string) {
			defer wg.Done()
			err := repo.ClaimForAdoption(ctx, "p1", owner, time.Now())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners++
			case errors.Is(err, pets.ErrAlreadyAdopted):
				losers++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}("owner-" + string(rune('a'+i%26)))
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
	assert.Equal(t, attempts-1, losers)
}

func TestPetRepo_ReleaseClaim(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo()
	now := time.Now()

	require.NoError(t, repo.Create(ctx, pets.Pet{ID: "p1", Name: "Rocky"}))
	require.NoError(t, repo.ClaimForAdoption(ctx, "p1", "u1", now))

	// release de otro owner no revierte nada
	require.NoError(t, repo.ReleaseClaim(ctx, "p1", "u2", now))
	p, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, p.Adopted)
	assert.Equal(t, "u1", p.OwnerUserID)

	// release del owner correcto deja el pet disponible de nuevo
	require.NoError(t, repo.ReleaseClaim(ctx, "p1", "u1", now))
	p, err = repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, p.Adopted)
	assert.Empty(t, p.OwnerUserID)

	// y se puede volver a reclamar
	require.NoError(t, repo.ClaimForAdoption(ctx, "p1", "u2", now))
}

func TestUserRepo_AddPet_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	require.NoError(t, repo.Create(ctx, users.User{ID: "u1", Email: "a@b.com"}))

	assert.ErrorIs(t, repo.AddPet(ctx, "nope", "p1"), users.ErrNotFound)

	require.NoError(t, repo.AddPet(ctx, "u1", "p1"))
	require.NoError(t, repo.AddPet(ctx, "u1", "p1"))
	require.NoError(t, repo.AddPet(ctx, "u1", "p2"))

	u, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, u.Pets)

	require.NoError(t, repo.RemovePet(ctx, "u1", "p1"))
	u, err = repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, u.Pets)
}

func TestUserRepo_Update_PreservesPetSet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	require.NoError(t, repo.Create(ctx, users.User{ID: "u1", Email: "a@b.com"}))

	// lectura previa al update (p.ej. TouchLastConnection en un login)
	stale, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)

	// una adopción concurrente agrega la mascota entre la lectura y el write
	require.NoError(t, repo.AddPet(ctx, "u1", "p1"))

	// el update con la copia vieja no borra la mascota adoptada
	stale.FirstName = "Ana"
	require.NoError(t, repo.Update(ctx, stale))

	u, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.FirstName)
	assert.Equal(t, []string{"p1"}, u.Pets)
}

func TestUserRepo_GetByEmail_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	require.NoError(t, repo.Create(ctx, users.User{ID: "u1", Email: "Ana@Test.com"}))

	u, err := repo.GetByEmail(ctx, "ana@test.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = repo.GetByEmail(ctx, "other@test.com")
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestUserRepo_CloneIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	require.NoError(t, repo.Create(ctx, users.User{ID: "u1", Email: "a@b.com", Pets: []string{"p1"}}))

	u, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)

	// mutar lo devuelto no toca el estado del repo
	u.Pets[0] = "hacked"

	again, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, again.Pets)
}
