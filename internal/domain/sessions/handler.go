package sessions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/middleware"
	"pet-adoptions/internal/platform/web"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/sessions", func(sr chi.Router) {
		sr.Post("/register", registerHandler(svc))
		sr.Post("/login", loginHandler(svc))
		sr.Get("/current", currentHandler())
		sr.Post("/logout", logoutHandler())
	})
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type currentResponse struct {
	UserID string `json:"_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// registerHandler godoc
// @Summary Registra un usuario nuevo
// @Tags sessions
// @Accept json
// @Produce json
// @Success 200 {object} web.Envelope
// @Failure 400 {object} web.Envelope
// @Router /api/sessions/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		id, err := svc.Register(r.Context(), RegisterInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, users.ErrDuplicateEmail):
				web.Fail(w, http.StatusBadRequest, "Email already registered")
			case errors.Is(err, users.ErrInvalidInput):
				web.Fail(w, http.StatusBadRequest, "Incomplete values")
			default:
				web.Fail(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		// El payload es el ID nuevo, igual que el register original.
		web.Success(w, http.StatusOK, id)
	}
}

// loginHandler godoc
// @Summary Login: setea el cookie de sesión
// @Tags sessions
// @Accept json
// @Produce json
// @Success 200 {object} web.Envelope
// @Failure 401 {object} web.Envelope
// @Router /api/sessions/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		token, _, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				web.Fail(w, http.StatusBadRequest, "Incomplete values")
			case errors.Is(err, ErrBadCredentials):
				web.Fail(w, http.StatusUnauthorized, "Invalid credentials")
			case errors.Is(err, ErrRateLimited):
				web.Fail(w, http.StatusTooManyRequests, "Too many login attempts")
			default:
				web.Fail(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		web.SuccessMessage(w, http.StatusOK, "Logged in")
	}
}

// currentHandler godoc
// @Summary Devuelve los claims de la sesión actual
// @Tags sessions
// @Produce json
// @Success 200 {object} web.Envelope
// @Failure 401 {object} web.Envelope
// @Router /api/sessions/current [get]
func currentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			web.Fail(w, http.StatusUnauthorized, "No active session")
			return
		}

		web.Success(w, http.StatusOK, currentResponse{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})
	}
}

func logoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		web.SuccessMessage(w, http.StatusOK, "Logged out")
	}
}
