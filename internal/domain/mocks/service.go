package mocks

import (
	"context"
	"errors"
	"fmt"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
)

var ErrInvalidCount = errors.New("counts must be non-negative")

// Service inserta datos generados directo por los repos: los documentos
// ya vienen con ID y password hasheado, no pasan por el registro normal.
type Service struct {
	gen   *Generator
	users users.Repository
	pets  pets.Repository
}

func NewService(gen *Generator, userRepo users.Repository, petRepo pets.Repository) *Service {
	return &Service{
		gen:   gen,
		users: userRepo,
		pets:  petRepo,
	}
}

func (s *Service) MockUsers(count int) []users.User {
	if count < 0 {
		count = 0
	}
	return s.gen.Users(count)
}

func (s *Service) MockPets(count int) []pets.Pet {
	if count < 0 {
		count = 0
	}
	return s.gen.Pets(count)
}

// GenerateData genera e inserta userCount usuarios y petCount mascotas.
func (s *Service) GenerateData(ctx context.Context, userCount, petCount int) ([]users.User, []pets.Pet, error) {
	if userCount < 0 || petCount < 0 {
		return nil, nil, ErrInvalidCount
	}

	genUsers := s.gen.Users(userCount)
	genPets := s.gen.Pets(petCount)

	for _, u := range genUsers {
		if err := s.users.Create(ctx, u); err != nil {
			return nil, nil, fmt.Errorf("insert mock user: %w", err)
		}
	}
	for _, p := range genPets {
		if err := s.pets.Create(ctx, p); err != nil {
			return nil, nil, fmt.Errorf("insert mock pet: %w", err)
		}
	}

	return genUsers, genPets, nil
}
