// File: services/scheduling/session_store.go
package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"roomly/models"
)

// SessionStore keeps preview sessions alive between the preview and confirm
// requests of one scheduling interaction.
type SessionStore interface {
	Save(ctx context.Context, session *models.ScheduleSession, ttl time.Duration) error
	Load(ctx context.Context, sessionID string) (*models.ScheduleSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore stores sessions as JSON in Redis with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

func sessionKey(sessionID string) string {
	return "schedule:session:" + sessionID
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.ScheduleSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(session.SessionID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store schedule session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (*models.ScheduleSession, error) {
	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule session: %w", err)
	}
	var session models.ScheduleSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse schedule session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete schedule session: %w", err)
	}
	return nil
}
