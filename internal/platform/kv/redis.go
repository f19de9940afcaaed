package kv

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter hace rate limit por ventana usando redis.
// Sin cliente configurado degrada a no-op (dev y tests corren sin redis).
type RateLimiter struct {
	client *redis.Client
}

// NewRateLimiter conecta vía URL (redis://...). URL vacía => limiter no-op.
func NewRateLimiter(redisURL string) (*RateLimiter, error) {
	if redisURL == "" {
		return &RateLimiter{}, nil
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RateLimiter{client: redis.NewClient(opt)}, nil
}

// Available informa si hay backend real detrás.
func (r *RateLimiter) Available() bool {
	return r != nil && r.client != nil
}

// Allow incrementa el contador de la key y devuelve true si sigue
// dentro del límite para la ventana. Ante error de redis permitimos:
// un redis caído no debe tirar el login.
func (r *RateLimiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, error) {
	if !r.Available() {
		return true, nil
	}

	pipe := r.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, err
	}

	return incr.Val() <= limit, nil
}

// Reset borra el contador (login exitoso).
func (r *RateLimiter) Reset(ctx context.Context, key string) {
	if !r.Available() {
		return
	}
	_ = r.client.Del(ctx, key).Err()
}

// Close cierra la conexión si existe.
func (r *RateLimiter) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}
