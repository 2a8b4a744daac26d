//go:build integration

package utils

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type SessionStoreSuite struct {
	suite.Suite
	client *redis.Client
	store  *SessionStore
}

func TestSessionStoreSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreSuite))
}

func (s *SessionStoreSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(s.T(), container)
	s.Require().NoError(err)

	addr, err := container.ConnectionString(ctx)
	s.Require().NoError(err)
	opts, err := redis.ParseURL(addr)
	s.Require().NoError(err)

	s.client, err = NewRedisClient(ctx, opts.Addr, opts.Password)
	s.Require().NoError(err)
	s.store = NewSessionStore(s.client, time.Minute)
}

func (s *SessionStoreSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
}

func (s *SessionStoreSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(context.Background()).Err())
}

func (s *SessionStoreSuite) TestRoundTrip() {
	ctx := context.Background()

	s.Require().NoError(s.store.SetSession(ctx, "tok-1", 7, "Agent"))
	session, err := s.store.GetSession(ctx, "tok-1")
	s.Require().NoError(err)
	s.Equal(Session{UserID: 7, Role: "Agent"}, session)

	ttl, err := s.client.TTL(ctx, sessionKey("tok-1")).Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, time.Minute)
}

func (s *SessionStoreSuite) TestDeleteRevokes() {
	ctx := context.Background()

	s.Require().NoError(s.store.SetSession(ctx, "tok-2", 3, "Admin"))
	s.Require().NoError(s.store.DeleteSession(ctx, "tok-2"))
	_, err := s.store.GetSession(ctx, "tok-2")
	s.ErrorIs(err, ErrSessionNotFound)

	s.NoError(s.store.DeleteSession(ctx, "never-issued"))
}
