package sessions

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Session is the server-side record of an authenticated identity. The token
// is opaque: a random id resolved against the store on every request.
type Session struct {
	Token  string
	UserID int64
}

// Store keeps sessions in redis with a TTL. Login creates the key, logout
// deletes it; an expired key simply means no session.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) Create(ctx context.Context, userID int64) (Session, error) {
	token := uuid.NewString()
	key := keyPrefix + token
	if err := s.rdb.Set(ctx, key, userID, s.ttl).Err(); err != nil {
		return Session{}, err
	}
	return Session{Token: token, UserID: userID}, nil
}

// Get resolves a token. A missing or expired token returns redis.Nil.
func (s *Store) Get(ctx context.Context, token string) (Session, error) {
	v, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		return Session{}, err
	}
	userID, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, UserID: userID}, nil
}

func (s *Store) Destroy(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
