package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-adoptions/internal/platform/web"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/users", func(ur chi.Router) {
		ur.Get("/", listUsersHandler(svc))
		ur.Get("/{uid}", getUserHandler(svc))
		ur.Put("/{uid}", updateUserHandler(svc))
		ur.Delete("/{uid}", deleteUserHandler(svc))
	})
}

// userResponse nunca expone el hash de password.
type userResponse struct {
	ID             string     `json:"_id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	Pets           []string   `json:"pets"`
	LastConnection *time.Time `json:"last_connection,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type updateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
}

// listUsersHandler godoc
// @Summary Lista todos los usuarios
// @Tags users
// @Produce json
// @Success 200 {object} web.Envelope
// @Router /api/users [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			web.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		web.Success(w, http.StatusOK, out)
	}
}

func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "uid"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				web.Fail(w, http.StatusNotFound, "User not found")
				return
			}
			web.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}
		web.Success(w, http.StatusOK, toUserResponse(u))
	}
}

func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Update(r.Context(), chi.URLParam(r, "uid"), UpdateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Role:      req.Role,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				web.Fail(w, http.StatusNotFound, "User not found")
			case errors.Is(err, ErrInvalidInput):
				web.Fail(w, http.StatusBadRequest, err.Error())
			default:
				web.Fail(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		web.Success(w, http.StatusOK, toUserResponse(u))
	}
}

func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "uid")); err != nil {
			if errors.Is(err, ErrNotFound) {
				web.Fail(w, http.StatusNotFound, "User not found")
				return
			}
			web.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}
		web.SuccessMessage(w, http.StatusOK, "User deleted")
	}
}

func toUserResponse(u User) userResponse {
	pets := u.Pets
	if pets == nil {
		pets = []string{}
	}
	return userResponse{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		Role:           string(u.Role),
		Pets:           pets,
		LastConnection: u.LastConnection,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
