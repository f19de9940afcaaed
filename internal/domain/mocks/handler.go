package mocks

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/platform/web"
)

const (
	defaultMockUsers = 50
	defaultMockPets  = 100
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/mocks", func(mr chi.Router) {
		mr.Get("/mockingusers", mockingUsersHandler(svc))
		mr.Get("/mockingpets", mockingPetsHandler(svc))
		mr.Post("/generateData", generateDataHandler(svc))
	})
}

// A diferencia del resto de la API, acá el payload incluye el hash de
// password: son datos de prueba y el consumidor los usa para loguearse.
type mockUserResponse struct {
	ID        string    `json:"_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	Pets      []string  `json:"pets"`
	CreatedAt time.Time `json:"created_at"`
}

type mockPetResponse struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Species   string     `json:"specie"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Adopted   bool       `json:"adopted"`
	Image     string     `json:"image,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type generateDataRequest struct {
	Users *int `json:"users"`
	Pets  *int `json:"pets"`
}

type generateDataPayload struct {
	Users []mockUserResponse `json:"users"`
	Pets  []mockPetResponse  `json:"pets"`
}

func mockingUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := defaultMockUsers
		if raw := r.URL.Query().Get("count"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
				count = n
			}
		}

		web.Success(w, http.StatusOK, toMockUsers(svc.MockUsers(count)))
	}
}

func mockingPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.Success(w, http.StatusOK, toMockPets(svc.MockPets(defaultMockPets)))
	}
}

// generateDataHandler godoc
// @Summary Genera e inserta usuarios y mascotas de prueba
// @Tags mocks
// @Accept json
// @Produce json
// @Success 200 {object} web.Envelope
// @Failure 400 {object} web.Envelope
// @Router /api/mocks/generateData [post]
func generateDataHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateDataRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.FailMessage(w, http.StatusBadRequest, "invalid json")
			return
		}

		if req.Users == nil || req.Pets == nil {
			web.FailMessage(w, http.StatusBadRequest, "users and pets parameters are required")
			return
		}

		insertedUsers, insertedPets, err := svc.GenerateData(r.Context(), *req.Users, *req.Pets)
		if err != nil {
			if errors.Is(err, ErrInvalidCount) {
				web.FailMessage(w, http.StatusBadRequest, "users and pets must be valid positive numbers")
				return
			}
			web.FailMessage(w, http.StatusInternalServerError, "error generating data")
			return
		}

		web.JSON(w, http.StatusOK, web.Envelope{
			Status:  "success",
			Message: "Data generated and inserted successfully",
			Payload: generateDataPayload{
				Users: toMockUsers(insertedUsers),
				Pets:  toMockPets(insertedPets),
			},
		})
	}
}

func toMockUsers(items []users.User) []mockUserResponse {
	out := make([]mockUserResponse, 0, len(items))
	for _, u := range items {
		out = append(out, mockUserResponse{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Password:  u.Password,
			Role:      string(u.Role),
			Pets:      u.Pets,
			CreatedAt: u.CreatedAt,
		})
	}
	return out
}

func toMockPets(items []pets.Pet) []mockPetResponse {
	out := make([]mockPetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, mockPetResponse{
			ID:        p.ID,
			Name:      p.Name,
			Species:   p.Species,
			BirthDate: p.BirthDate,
			Adopted:   p.Adopted,
			Image:     p.Image,
			CreatedAt: p.CreatedAt,
		})
	}
	return out
}
