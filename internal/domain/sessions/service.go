package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/platform/kv"
	"pet-adoptions/internal/platform/logger"
	"pet-adoptions/internal/ports/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrBadCredentials cubre email inexistente y password incorrecto;
	// no distinguimos para no filtrar qué emails existen.
	ErrBadCredentials = errors.New("invalid credentials")
	ErrRateLimited    = errors.New("too many login attempts")
)

const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

type Service struct {
	users   *users.Service
	issuer  auth.TokenIssuer
	limiter *kv.RateLimiter
	log     logger.Logger
}

func NewService(userSvc *users.Service, issuer auth.TokenIssuer, limiter *kv.RateLimiter, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		users:   userSvc,
		issuer:  issuer,
		limiter: limiter,
		log:     log,
	}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register delega en users (hash de password incluido) y devuelve el ID.
// El rol siempre es user; admin no se autoasigna por registro.
func (s *Service) Register(ctx context.Context, in RegisterInput) (string, error) {
	u, err := s.users.Register(ctx, users.RegisterInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Role:      string(users.RoleUser),
	})
	if err != nil {
		return "", err
	}

	s.log.Info("user registered", map[string]any{"user_id": u.ID})
	return u.ID, nil
}

// Login compara credenciales, marca last_connection y emite el token.
func (s *Service) Login(ctx context.Context, email, password string) (string, users.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", users.User{}, ErrInvalidInput
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, "login:"+email, loginRateLimit, loginRateWindow)
		if err != nil {
			// redis caído no bloquea el login, solo lo anotamos
			s.log.Warn("login rate limit unavailable", map[string]any{"error": err.Error()})
		}
		if !allowed {
			return "", users.User{}, ErrRateLimited
		}
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", users.User{}, ErrBadCredentials
		}
		return "", users.User{}, fmt.Errorf("lookup user: %w", err)
	}

	if !u.CheckPassword(password) {
		return "", users.User{}, ErrBadCredentials
	}

	if err := s.users.TouchLastConnection(ctx, u.ID); err != nil {
		// login válido igual; la marca de conexión es best-effort
		s.log.Warn("touch last_connection failed", map[string]any{
			"user_id": u.ID,
			"error":   err.Error(),
		})
	}

	token, err := s.issuer.Issue(ctx, auth.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   string(u.Role),
	})
	if err != nil {
		return "", users.User{}, fmt.Errorf("issue token: %w", err)
	}

	if s.limiter != nil {
		s.limiter.Reset(ctx, "login:"+email)
	}

	return token, u, nil
}
