package auth

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const SessionCookie = "session_token"

// SessionStore wraps Redis for session records. A token is only
// accepted while its jti still maps to a user id here, which is what
// makes logout an actual revocation rather than a client-side gesture.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

// Create registers jti -> userID for the token lifetime.
func (s *SessionStore) Create(ctx context.Context, jti string, userID int64) error {
	return s.rdb.Set(ctx, "session:"+jti, strconv.FormatInt(userID, 10), TokenTTL).Err()
}

// Get returns the userID for a session, or 0 if not found / expired.
func (s *SessionStore) Get(ctx context.Context, jti string) (int64, error) {
	val, err := s.rdb.Get(ctx, "session:"+jti).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

// Delete revokes a session.
func (s *SessionStore) Delete(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, "session:"+jti).Err()
}
