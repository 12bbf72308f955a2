package services

import (
	"context"
	"sync"
	"time"

	"careerguide/constants"
	"careerguide/dto"

	"github.com/redis/go-redis/v9"
)

const SessionTTL = 30 * time.Minute

// SessionStore keeps the chat transcript of one browser session.
type SessionStore interface {
	Append(ctx context.Context, sessionID string, turns ...dto.ChatTurn) error
	History(ctx context.Context, sessionID string) ([]dto.ChatTurn, error)
	Clear(ctx context.Context, sessionID string) error
}

// RedisSessionStore stores each transcript as a redis list of JSON turns with a
// sliding TTL. Appends are single RPUSH commands so concurrent writers never
// drop each other's turns.
type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = SessionTTL
	}
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return constants.SessionKeyPrefix + sessionID
}

func (s *RedisSessionStore) Append(ctx context.Context, sessionID string, turns ...dto.ChatTurn) error {
	values := make([]interface{}, len(turns))
	for i, turn := range turns {
		values[i] = turn
	}
	return PushToRedisList(ctx, s.rdb, sessionKey(sessionID), s.ttl, values...)
}

func (s *RedisSessionStore) History(ctx context.Context, sessionID string) ([]dto.ChatTurn, error) {
	return RangeFromRedisList[dto.ChatTurn](ctx, s.rdb, sessionKey(sessionID))
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	return DeleteFromRedis(ctx, s.rdb, sessionKey(sessionID))
}

type memorySession struct {
	turns   []dto.ChatTurn
	expires time.Time
}

// MemorySessionStore is the in-process SessionStore used without redis.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
	ttl      time.Duration
	now      func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	if ttl <= 0 {
		ttl = SessionTTL
	}
	return &MemorySessionStore{
		sessions: make(map[string]*memorySession),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemorySessionStore) Append(_ context.Context, sessionID string, turns ...dto.ChatTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	sess, ok := s.sessions[sessionID]
	if !ok || now.After(sess.expires) {
		sess = &memorySession{}
		s.sessions[sessionID] = sess
	}
	sess.turns = append(sess.turns, turns...)
	sess.expires = now.Add(s.ttl)
	return nil
}

func (s *MemorySessionStore) History(_ context.Context, sessionID string) ([]dto.ChatTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok || s.now().After(sess.expires) {
		delete(s.sessions, sessionID)
		return []dto.ChatTurn{}, nil
	}
	return append([]dto.ChatTurn{}, sess.turns...), nil
}

func (s *MemorySessionStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
