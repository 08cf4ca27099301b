package resettoken

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis reproduit la sémantique GETDEL sur une map : la lecture
// supprime la clé, comme le vrai serveur.
type fakeRedis struct {
	data map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) GetDel(ctx context.Context, key string) *redis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	delete(f.data, key)
	return redis.NewStringResult(v, nil)
}

func TestStore_IssueThenConsume(t *testing.T) {
	store := &Store{rdb: newFakeRedis()}
	ctx := context.Background()
	userID := uuid.New()

	token, err := store.Issue(ctx, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := store.Consume(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

// Un jeton est à usage unique : la seconde consommation échoue.
func TestStore_ConsumeTwiceFails(t *testing.T) {
	store := &Store{rdb: newFakeRedis()}
	ctx := context.Background()

	token, err := store.Issue(ctx, uuid.New())
	require.NoError(t, err)

	_, err = store.Consume(ctx, token)
	require.NoError(t, err)

	_, err = store.Consume(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestStore_ConsumeUnknownToken(t *testing.T) {
	store := &Store{rdb: newFakeRedis()}
	ctx := context.Background()

	_, err := store.Consume(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestStore_ConsumeCorruptValue(t *testing.T) {
	fake := newFakeRedis()
	fake.data[keyPrefix+"jeton"] = "pas-un-uuid"

	store := &Store{rdb: fake}

	_, err := store.Consume(context.Background(), "jeton")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
