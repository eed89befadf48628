package itinerary

import (
	"context"
	"encoding/json"
	"time"

	"wayfarer/models"

	"github.com/go-redis/redis/v8"
)

// sessionKeyPrefix namespaces planning session keys in the cache.
const sessionKeyPrefix = "plan:"

// SessionStore persists planning sessions between edits.
type SessionStore interface {
	Save(ctx context.Context, session *models.PlanningSession) error
	Load(ctx context.Context, sessionID string) (*models.PlanningSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions as JSON in redis with a TTL, so
// abandoned plans expire on their own.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (st *RedisSessionStore) Save(ctx context.Context, session *models.PlanningSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return st.Client.Set(ctx, sessionKeyPrefix+session.SessionID, data, st.TTL).Err()
}

func (st *RedisSessionStore) Load(ctx context.Context, sessionID string) (*models.PlanningSession, error) {
	data, err := st.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, &SessionNotFoundError{SessionID: sessionID}
	}
	if err != nil {
		return nil, err
	}
	var session models.PlanningSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (st *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return st.Client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
