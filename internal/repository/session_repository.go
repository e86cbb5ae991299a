package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound sesi tidak ada atau sudah kedaluwarsa
var ErrSessionNotFound = errors.New("sesi tidak ditemukan")

const prefixSession = "sias:session:"

// SessionRepository menyimpan sesi admin (session id -> admin id) dengan TTL
type SessionRepository interface {
	Create(ctx context.Context, sessionID, adminID string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (string, error)
	Touch(ctx context.Context, sessionID string, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

type sessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) SessionRepository {
	return &sessionRepository{client: client}
}

func (r *sessionRepository) Create(ctx context.Context, sessionID, adminID string, ttl time.Duration) error {
	return r.client.Set(ctx, prefixSession+sessionID, adminID, ttl).Err()
}

// Get mengembalikan admin id pemilik sesi
func (r *sessionRepository) Get(ctx context.Context, sessionID string) (string, error) {
	adminID, err := r.client.Get(ctx, prefixSession+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	return adminID, err
}

func (r *sessionRepository) Touch(ctx context.Context, sessionID string, ttl time.Duration) error {
	ok, err := r.client.Expire(ctx, prefixSession+sessionID, ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, prefixSession+sessionID).Err()
}

var _ SessionRepository = (*sessionRepository)(nil)
