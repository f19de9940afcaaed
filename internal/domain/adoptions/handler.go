package adoptions

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-adoptions/internal/platform/web"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/adoptions", func(ar chi.Router) {
		ar.Get("/", listAdoptionsHandler(svc))
		ar.Get("/{aid}", getAdoptionHandler(svc))
		ar.Post("/{uid}/{pid}", createAdoptionHandler(svc))
	})
}

type adoptionResponse struct {
	ID        string    `json:"_id"`
	Owner     string    `json:"owner"`
	Pet       string    `json:"pet"`
	CreatedAt time.Time `json:"created_at"`
}

// listAdoptionsHandler godoc
// @Summary Lista todas las adopciones
// @Tags adoptions
// @Produce json
// @Success 200 {object} web.Envelope
// @Router /api/adoptions [get]
func listAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			web.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]adoptionResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAdoptionResponse(a))
		}
		web.Success(w, http.StatusOK, out)
	}
}

// getAdoptionHandler godoc
// @Summary Obtiene una adopción por ID
// @Tags adoptions
// @Produce json
// @Success 200 {object} web.Envelope
// @Failure 404 {object} web.Envelope
// @Router /api/adoptions/{aid} [get]
func getAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "aid"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				web.Fail(w, http.StatusNotFound, "Adoption not found")
				return
			}
			web.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}
		web.Success(w, http.StatusOK, toAdoptionResponse(a))
	}
}

// createAdoptionHandler godoc
// @Summary Adopta una mascota para un usuario
// @Tags adoptions
// @Produce json
// @Success 200 {object} web.Envelope
// @Failure 400 {object} web.Envelope
// @Failure 404 {object} web.Envelope
// @Router /api/adoptions/{uid}/{pid} [post]
func createAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := svc.Create(r.Context(), chi.URLParam(r, "uid"), chi.URLParam(r, "pid"))
		if err != nil {
			switch {
			case errors.Is(err, ErrUserNotFound):
				web.Fail(w, http.StatusNotFound, "user Not found")
			case errors.Is(err, ErrPetNotFound):
				web.Fail(w, http.StatusNotFound, "Pet not found")
			case errors.Is(err, ErrAlreadyAdopted):
				web.Fail(w, http.StatusBadRequest, "Pet is already adopted")
			default:
				web.Fail(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		web.SuccessMessage(w, http.StatusOK, "Pet adopted")
	}
}

func toAdoptionResponse(a Adoption) adoptionResponse {
	return adoptionResponse{
		ID:        a.ID,
		Owner:     a.OwnerUserID,
		Pet:       a.PetID,
		CreatedAt: a.CreatedAt,
	}
}
