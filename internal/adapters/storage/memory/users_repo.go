package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoptions/internal/domain/users"
)

type userRepo struct {
	mu   sync.RWMutex
	byID map[string]users.User
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID: make(map[string]users.User),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byID[u.ID]; exists {
		return errors.New("user already exists")
	}
	r.byID[u.ID] = cloneUser(u)
	return nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.byID[u.ID]
	if !exists {
		return users.ErrNotFound
	}
	// El set de mascotas es propiedad exclusiva de AddPet/RemovePet: un
	// update de perfil con una copia vieja no lo pisa. Es el mismo
	// contrato que postgres, donde UPDATE users nunca toca user_pets.
	u.Pets = stored.Pets
	r.byID[u.ID] = cloneUser(u)
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return users.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *userRepo) ListAll(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, cloneUser(u))
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *userRepo) AddPet(ctx context.Context, userID, petID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[userID]
	if !ok {
		return users.ErrNotFound
	}
	// idempotente: no duplica
	for _, id := range u.Pets {
		if id == petID {
			return nil
		}
	}
	u.Pets = append(append([]string{}, u.Pets...), petID)
	r.byID[userID] = u
	return nil
}

func (r *userRepo) RemovePet(ctx context.Context, userID, petID string) error {
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

// cloneUser copia el slice de pets para que el caller no aliasee
// el estado interno del repo.
func cloneUser(u users.User) users.User {
	u.Pets = append([]string{}, u.Pets...)
	return u
}
