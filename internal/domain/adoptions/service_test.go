package adoptions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
)

// -------------------------
// Test repos (in-memory, con inyección de fallas)
// -------------------------

var errRepoDown = errors.New("repo: store unavailable")

type testUserRepo struct {
	mu   sync.Mutex
	byID map[string]users.User

	failAddPet bool
}

func newTestUserRepo() *testUserRepo {
	return &testUserRepo{byID: map[string]users.User{}}
}

func (r *testUserRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[u.ID] = u
	return nil
}

func (r *testUserRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[u.ID]; !ok {
		return users.ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func (r *testUserRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *testUserRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return users.User{}, users.ErrNotFound
}

func (r *testUserRepo) ListAll(ctx context.Context) ([]users.User, error) {
	return nil, nil
}

func (r *testUserRepo) AddPet(ctx context.Context, userID, petID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAddPet {
		return errRepoDown
	}
	u, ok := r.byID[userID]
	if !ok {
		return users.ErrNotFound
	}
	for _, id := range u.Pets {
		if id == petID {
			return nil
		}
	}
	u.Pets = append(u.Pets, petID)
	r.byID[userID] = u
	return nil
}

func (r *testUserRepo) RemovePet(ctx context.Context, userID, petID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[userID]
	if !ok {
		return users.ErrNotFound
	}
	out := make([]string, 0, len(u.Pets))
	for _, id := range u.Pets {
		if id != petID {
			out = append(out, id)
		}
	}
	u.Pets = out
	r.byID[userID] = u
	return nil
}

type testPetRepo struct {
	mu   sync.Mutex
	byID map[string]pets.Pet
}

func newTestPetRepo() *testPetRepo {
	return &testPetRepo{byID: map[string]pets.Pet{}}
}

func (r *testPetRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = p
	return nil
}

func (r *testPetRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; !ok {
		return pets.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testPetRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func (r *testPetRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *testPetRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	return nil, nil
}

// check y set bajo el mismo lock, igual que el adapter real
func (r *testPetRepo) ClaimForAdoption(ctx context.Context, petID, ownerUserID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[petID]
	if !ok {
		return pets.ErrNotFound
	}
	if p.Adopted {
		return pets.ErrAlreadyAdopted
	}
	p.Adopted = true
	p.OwnerUserID = ownerUserID
	p.UpdatedAt = at
	r.byID[petID] = p
	return nil
}

func (r *testPetRepo) ReleaseClaim(ctx context.Context, petID, ownerUserID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[petID]
	if !ok {
		return pets.ErrNotFound
	}
	if !p.Adopted || p.OwnerUserID != ownerUserID {
		return nil
	}
	p.Adopted = false
	p.OwnerUserID = ""
	p.UpdatedAt = at
	r.byID[petID] = p
	return nil
}

type testAdoptionRepo struct {
	mu   sync.Mutex
	byID map[string]Adoption

	failCreate bool
}

func newTestAdoptionRepo() *testAdoptionRepo {
	return &testAdoptionRepo{byID: map[string]Adoption{}}
}

func (r *testAdoptionRepo) Create(ctx context.Context, a Adoption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return errRepoDown
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testAdoptionRepo) GetByID(ctx context.Context, id string) (Adoption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return Adoption{}, ErrNotFound
	}
	return a, nil
}

func (r *testAdoptionRepo) ListAll(ctx context.Context) ([]Adoption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Adoption, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testAdoptionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func (r *testAdoptionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

// -------------------------
// Fixtures
// -------------------------

type fixture struct {
	svc       *Service
	users     *testUserRepo
	pets      *testPetRepo
	adoptions *testAdoptionRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		users:     newTestUserRepo(),
		pets:      newTestPetRepo(),
		adoptions: newTestAdoptionRepo(),
	}
	f.svc = NewService(f.adoptions, f.users, f.pets, nil)
	return f
}

func (f *fixture) seedUser(id string) {
	_ = f.users.Create(context.Background(), users.User{ID: id, Pets: []string{}})
}

func (f *fixture) seedPet(id string, adopted bool, owner string) {
	_ = f.pets.Create(context.Background(), pets.Pet{ID: id, Name: "Milo", Species: "dog", Adopted: adopted, OwnerUserID: owner})
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_Success(t *testing.T) {
	f := newFixture(t)

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }

	f.seedUser("u1")
	f.seedPet("p1", false, "")

	a, err := f.svc.Create(context.Background(), "u1", "p1")
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "u1", a.OwnerUserID)
	assert.Equal(t, "p1", a.PetID)
	assert.Equal(t, now, a.CreatedAt)

	p, err := f.pets.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, p.Adopted)
	assert.Equal(t, "u1", p.OwnerUserID)

	u, err := f.users.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, u.Pets)

	assert.Equal(t, 1, f.adoptions.count())
}

func TestService_Create_UserNotFound(t *testing.T) {
	f := newFixture(t)
	f.seedPet("p1", false, "")

	_, err := f.svc.Create(context.Background(), "missing", "p1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	// gana el primer fallo aunque el pet tampoco exista
	_, err = f.svc.Create(context.Background(), "missing", "also-missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.Equal(t, 0, f.adoptions.count())
}

func TestService_Create_PetNotFound(t *testing.T) {
	f := newFixture(t)
	f.seedUser("u1")

	_, err := f.svc.Create(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrPetNotFound)
	assert.Equal(t, 0, f.adoptions.count())
}

func TestService_Create_AlreadyAdopted_NoMutation(t *testing.T) {
	f := newFixture(t)
	f.seedUser("u1")
	f.seedUser("u2")
	f.seedPet("p1", true, "u2")

	_, err := f.svc.Create(context.Background(), "u1", "p1")
	assert.ErrorIs(t, err, ErrAlreadyAdopted)

	p, _ := f.pets.GetByID(context.Background(), "p1")
	assert.True(t, p.Adopted)
	assert.Equal(t, "u2", p.OwnerUserID)

	u, _ := f.users.GetByID(context.Background(), "u1")
	assert.Empty(t, u.Pets)
	assert.Equal(t, 0, f.adoptions.count())
}

func TestService_Create_RetryAfterSuccess_IsAlreadyAdopted(t *testing.T) {
	f := newFixture(t)
	f.seedUser("u1")
	f.seedPet("p1", false, "")

	_, err := f.svc.Create(context.Background(), "u1", "p1")
	require.NoError(t, err)

	// el reintento del mismo par nunca crea un segundo registro
	_, err = f.svc.Create(context.Background(), "u1", "p1")
	assert.ErrorIs(t, err, ErrAlreadyAdopted)
	assert.Equal(t, 1, f.adoptions.count())
}

func TestService_Create_RollsBackClaim_WhenAttachFails(t *testing.T) {
	f := newFixture(t)
	f.seedUser("u1")
	f.seedPet("p1", false, "")
	f.users.failAddPet = true

	_, err := f.svc.Create(context.Background(), "u1", "p1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAlreadyAdopted)

	// claim revertido: la mascota vuelve a estar disponible
	p, _ := f.pets.GetByID(context.Background(), "p1")
	assert.False(t, p.Adopted)
	assert.Empty(t, p.OwnerUserID)
	assert.Equal(t, 0, f.adoptions.count())

	// y un reintento posterior puede adoptar
	f.users.failAddPet = false
	_, err = f.svc.Create(context.Background(), "u1", "p1")
	require.NoError(t, err)
}

func TestService_Create_RollsBackAll_WhenRecordFails(t *testing.T) {
	f := newFixture(t)
	f.seedUser("u1")
	f.seedPet("p1", false, "")
	f.adoptions.failCreate = true

	_, err := f.svc.Create(context.Background(), "u1", "p1")
	require.Error(t, err)

	p, _ := f.pets.GetByID(context.Background(), "p1")
	assert.False(t, p.Adopted)

	u, _ := f.users.GetByID(context.Background(), "u1")
	assert.Empty(t, u.Pets)
	assert.Equal(t, 0, f.adoptions.count())
}

func TestService_Create_Concurrent_OneWinner(t *testing.T) {
	f := newFixture(t)
	f.seedPet("p1", false, "")

	const n = 16
	for i := 0; i < n; i++ {
		f.seedUser(fmt.Sprintf("u%d", i))
	}

	var wg sync.WaitGroup
	results := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			_, err := f.svc.Create(context.Background(), userID, "p1")
			results <- err
		}(fmt.Sprintf("u%d", i))
	}
	wg.Wait()
	close(results)

	successes, alreadyAdopted := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrAlreadyAdopted):
			alreadyAdopted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, alreadyAdopted)
	assert.Equal(t, 1, f.adoptions.count())

	// el owner final es exactamente el ganador
	p, _ := f.pets.GetByID(context.Background(), "p1")
	require.True(t, p.Adopted)

	u, err := f.users.GetByID(context.Background(), p.OwnerUserID)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, u.Pets)
}

func TestService_GetByID_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetByID(context.Background(), "nonexistent-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListAll(t *testing.T) {
	f := newFixture(t)
	f.seedUser("u1")
	f.seedPet("p1", false, "")
	f.seedPet("p2", false, "")

	_, err := f.svc.Create(context.Background(), "u1", "p1")
	require.NoError(t, err)
	_, err = f.svc.Create(context.Background(), "u1", "p2")
	require.NoError(t, err)

	items, err := f.svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
