package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-adoptions/internal/platform/web"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))
		pr.Get("/{pid}", getPetHandler(svc))
		pr.Put("/{pid}", updatePetHandler(svc))
		pr.Delete("/{pid}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Name      string `json:"name"`
	Species   string `json:"specie"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD opcional
	Image     string `json:"image"`
}

type updatePetRequest struct {
	Name      *string `json:"name"`
	Species   *string `json:"specie"`
	BirthDate *string `json:"birthDate"`
	Image     *string `json:"image"`
}

type petResponse struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Species   string     `json:"specie"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Adopted   bool       `json:"adopted"`
	Owner     string     `json:"owner,omitempty"`
	Image     string     `json:"image,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// createPetHandler godoc
// @Summary Crea una mascota (adopted siempre arranca en false)
// @Tags pets
// @Accept json
// @Produce json
// @Success 201 {object} web.Envelope
// @Router /api/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		bd, ok := parseBirthDate(req.BirthDate)
		if !ok {
			web.Fail(w, http.StatusBadRequest, "birthDate must be YYYY-MM-DD")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:      req.Name,
			Species:   req.Species,
			BirthDate: bd,
			Image:     req.Image,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				web.Fail(w, http.StatusBadRequest, err.Error())
				return
			}
			web.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}

		web.Success(w, http.StatusCreated, toPetResponse(p))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			web.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		web.Success(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "pid"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				web.Fail(w, http.StatusNotFound, "Pet not found")
				return
			}
			web.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}
		web.Success(w, http.StatusOK, toPetResponse(p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		var bd *time.Time
		if req.BirthDate != nil {
			parsed, ok := parseBirthDate(*req.BirthDate)
			if !ok || parsed == nil {
				web.Fail(w, http.StatusBadRequest, "birthDate must be YYYY-MM-DD")
				return
			}
			bd = parsed
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "pid"), UpdateInput{
			Name:      req.Name,
			Species:   req.Species,
			BirthDate: bd,
			Image:     req.Image,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				web.Fail(w, http.StatusNotFound, "Pet not found")
			case errors.Is(err, ErrInvalidInput):
				web.Fail(w, http.StatusBadRequest, err.Error())
			default:
				web.Fail(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		web.Success(w, http.StatusOK, toPetResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "pid")); err != nil {
			if errors.Is(err, ErrNotFound) {
				web.Fail(w, http.StatusNotFound, "Pet not found")
				return
			}
			web.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}
		web.SuccessMessage(w, http.StatusOK, "Pet deleted")
	}
}

func parseBirthDate(s string) (*time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return nil, false
	}
	return &t, true
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Species:   p.Species,
		BirthDate: p.BirthDate,
		Adopted:   p.Adopted,
		Owner:     p.OwnerUserID,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
