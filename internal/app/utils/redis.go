package utils

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

type Session struct {
	UserID int
	Role   string
}

// NewRedisClient connects and pings the server.
func NewRedisClient(ctx context.Context, endpoint, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     endpoint,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// SessionStore keeps issued tokens in Redis under "session:<token>" with a TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func sessionKey(token string) string {
	return "session:" + token
}

// SetSession stores the session hash and its expiry in one pipeline.
func (s *SessionStore) SetSession(ctx context.Context, token string, userID int, role string) error {
	key := sessionKey(token)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"user_id": userID,
			"role":    role,
		})
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	return err
}

func (s *SessionStore) GetSession(ctx context.Context, token string) (Session, error) {
	res, err := s.client.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return Session{}, err
	}
	if len(res) == 0 {
		return Session{}, ErrSessionNotFound
	}
	userID, err := strconv.Atoi(res["user_id"])
	if err != nil {
		return Session{}, fmt.Errorf("corrupt session: %w", err)
	}
	return Session{UserID: userID, Role: res["role"]}, nil
}

// DeleteSession revokes the token. Deleting a missing session is not an error.
func (s *SessionStore) DeleteSession(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}
