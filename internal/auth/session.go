package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound reports a missing or expired session record.
var ErrSessionNotFound = errors.New("session not found")

// Session is a server-side authenticated identity record.
type Session struct {
	ID          string
	UserID      string
	DisplayName string
}

// Sessions is the session record store contract.
type Sessions interface {
	Create(ctx context.Context, userID, displayName string) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	UpdateDisplayName(ctx context.Context, id, displayName string) error
	Delete(ctx context.Context, id string) error
}

// SessionStore persists session records in Redis with a TTL matching the
// token lifetime.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore builds the store.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return "session:" + id
}

// Create writes a new session record and returns it.
func (s *SessionStore) Create(ctx context.Context, userID, displayName string) (*Session, error) {
	session := &Session{
		ID:          uuid.NewString(),
		UserID:      userID,
		DisplayName: displayName,
	}

	key := sessionKey(session.ID)
	if err := s.client.HSet(ctx, key, "user_id", userID, "user_name", displayName).Err(); err != nil {
		return nil, err
	}
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return nil, err
	}
	return session, nil
}

// Get loads a session record by id.
func (s *SessionStore) Get(ctx context.Context, id string) (*Session, error) {
	fields, err := s.client.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrSessionNotFound
	}
	return &Session{
		ID:          id,
		UserID:      fields["user_id"],
		DisplayName: fields["user_name"],
	}, nil
}

// UpdateDisplayName propagates a profile rename to the active session.
func (s *SessionStore) UpdateDisplayName(ctx context.Context, id, displayName string) error {
	key := sessionKey(id)
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrSessionNotFound
	}
	return s.client.HSet(ctx, key, "user_name", displayName).Err()
}

// Delete removes a session record, revoking its token.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
