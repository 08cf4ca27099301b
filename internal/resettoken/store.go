package resettoken

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	keyPrefix = "pwreset:"
	TTL       = time.Hour
)

var ErrInvalidToken = errors.New("resettoken: unknown or expired token")

// commands est le sous-ensemble du client Redis dont le store a besoin.
type commands interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
}

// Store garde les jetons de réinitialisation en Redis avec expiration.
// Un jeton est à usage unique : Consume le supprime atomiquement.
type Store struct {
	rdb commands
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Issue crée un jeton opaque rattaché au compte, valable TTL.
func (s *Store) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token := uuid.NewString()

	if err := s.rdb.Set(
		ctx,
		keyPrefix+token,
		userID.String(),
		TTL,
	).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Consume valide et invalide le jeton en une seule opération.
func (s *Store) Consume(ctx context.Context, token string) (uuid.UUID, error) {
	raw, err := s.rdb.GetDel(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return uuid.Nil, ErrInvalidToken
	}
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
