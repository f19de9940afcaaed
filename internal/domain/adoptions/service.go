package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/platform/logger"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrPetNotFound  = errors.New("pet not found")

	// ErrAlreadyAdopted re-exporta el sentinel del claim para que los
	// callers no dependan del paquete pets.
	ErrAlreadyAdopted = pets.ErrAlreadyAdopted
)

// Service orquesta el workflow de adopción: validación en orden fijo,
// claim atómico de la mascota, alta en el set del usuario y registro
// de auditoría, con compensación si un paso posterior falla.
type Service struct {
	adoptions Repository
	users     users.Repository
	pets      pets.Repository
	log       logger.Logger
	now       func() time.Time
}

func NewService(adoptionRepo Repository, userRepo users.Repository, petRepo pets.Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		adoptions: adoptionRepo,
		users:     userRepo,
		pets:      petRepo,
		log:       log,
		now:       time.Now,
	}
}

// Create ejecuta createAdoption(userId, petId).
//
// Orden de validación (gana el primer fallo):
//  1. el usuario existe            -> ErrUserNotFound
//  2. la mascota existe            -> ErrPetNotFound
//  3. la mascota no está adoptada  -> ErrAlreadyAdopted
//
// La lectura previa de la mascota solo ordena la taxonomía de errores;
// la serialización real la hace ClaimForAdoption con su update
// condicional sobre adopted == false. De N llamadas concurrentes para
// el mismo petID gana exactamente una; el resto ve ErrAlreadyAdopted.
//
// Las tres mutaciones (pet, user, registro) se aplican como unidad:
// si una falla después de otra aplicada, se deshacen las anteriores
// antes de devolver el error. Ningún lock en proceso cruza llamadas
// al store.
func (s *Service) Create(ctx context.Context, userID, petID string) (Adoption, error) {
	userID = strings.TrimSpace(userID)
	petID = strings.TrimSpace(petID)

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return Adoption{}, ErrUserNotFound
		}
		return Adoption{}, fmt.Errorf("lookup user: %w", err)
	}

	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return Adoption{}, ErrPetNotFound
		}
		return Adoption{}, fmt.Errorf("lookup pet: %w", err)
	}
	if p.Adopted {
		return Adoption{}, ErrAlreadyAdopted
	}

	now := s.now()

	// Check-and-set atómico en el data layer. Si otra invocación ganó
	// entre la lectura y acá, el claim no matchea y devuelve
	// ErrAlreadyAdopted; eso también hace seguro el reintento.
	if err := s.pets.ClaimForAdoption(ctx, petID, userID, now); err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return Adoption{}, ErrPetNotFound
		}
		if errors.Is(err, pets.ErrAlreadyAdopted) {
			return Adoption{}, ErrAlreadyAdopted
		}
		return Adoption{}, fmt.Errorf("claim pet: %w", err)
	}

	if err := s.users.AddPet(ctx, userID, petID); err != nil {
		s.compensate(ctx, userID, petID, now, false)
		return Adoption{}, fmt.Errorf("attach pet to user: %w", err)
	}

	a := Adoption{
		ID:          uuid.NewString(),
		OwnerUserID: userID,
		PetID:       petID,
		CreatedAt:   now,
	}
	if err := s.adoptions.Create(ctx, a); err != nil {
		s.compensate(ctx, userID, petID, now, true)
		return Adoption{}, fmt.Errorf("record adoption: %w", err)
	}

	s.log.Info("pet adopted", map[string]any{
		"adoption_id": a.ID,
		"user_id":     userID,
		"pet_id":      petID,
	})

	return a, nil
}

// compensate deshace en orden inverso las mutaciones ya aplicadas.
// Los fallos de compensación se loguean; el claim condicional hace que
// un reintento posterior no pueda doble-adoptar igualmente.
func (s *Service) compensate(ctx context.Context, userID, petID string, at time.Time, detachUser bool) {
	if detachUser {
		if err := s.users.RemovePet(ctx, userID, petID); err != nil {
			s.log.Error("rollback: detach pet from user failed", map[string]any{
				"user_id": userID,
				"pet_id":  petID,
				"error":   err.Error(),
			})
		}
	}
	if err := s.pets.ReleaseClaim(ctx, petID, userID, at); err != nil {
		s.log.Error("rollback: release pet claim failed", map[string]any{
			"user_id": userID,
			"pet_id":  petID,
			"error":   err.Error(),
		})
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (Adoption, error) {
	a, err := s.adoptions.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Adoption{}, ErrNotFound
		}
		return Adoption{}, fmt.Errorf("lookup adoption: %w", err)
	}
	return a, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Adoption, error) {
	return s.adoptions.ListAll(ctx)
}
