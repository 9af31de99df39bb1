package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"elderguard/internal/domain/models"
	"elderguard/internal/infrastructure/cache"
	"elderguard/pkg/logger"
)

// ErrSessionNotFound is returned for unknown or expired session IDs
var ErrSessionNotFound = errors.New("session not found")

// SessionStore manages the ephemeral per-session state. Updates run inside
// the store so concurrent merges into one session are serialized; no backend
// keeps a session past its TTL.
type SessionStore interface {
	Create(ctx context.Context) (*models.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Update(ctx context.Context, id uuid.UUID, fn func(*models.Session)) (*models.Session, error)
}

// MemorySessionStore keeps sessions in process memory. The janitor drops
// expired sessions so intel never outlives the session lifecycle.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*models.Session
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	logger   *logger.Logger
}

// NewMemorySessionStore creates an in-memory session store and starts its
// expiry janitor
func NewMemorySessionStore(ttl, cleanupInterval time.Duration, log *logger.Logger) *MemorySessionStore {
	s := &MemorySessionStore{
		sessions: make(map[uuid.UUID]*models.Session),
		ttl:      ttl,
		stopCh:   make(chan struct{}),
		logger:   log.WithComponent("session-store"),
	}

	if cleanupInterval > 0 {
		go s.janitor(cleanupInterval)
	}

	return s
}

func (s *MemorySessionStore) Create(_ context.Context) (*models.Session, error) {
	now := time.Now().UTC()
	sess := &models.Session{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Debug().Str("session_id", sess.ID.String()).Msg("session created")

	cp := *sess
	return &cp, nil
}

func (s *MemorySessionStore) Get(_ context.Context, id uuid.UUID) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		return nil, ErrSessionNotFound
	}

	cp := *sess
	return &cp, nil
}

func (s *MemorySessionStore) Update(_ context.Context, id uuid.UUID, fn func(*models.Session)) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		return nil, ErrSessionNotFound
	}

	fn(sess)
	sess.UpdatedAt = time.Now().UTC()

	cp := *sess
	return &cp, nil
}

// Close stops the expiry janitor
func (s *MemorySessionStore) Close() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *MemorySessionStore) expired(sess *models.Session) bool {
	return s.ttl > 0 && time.Since(sess.UpdatedAt) > s.ttl
}

func (s *MemorySessionStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.mu.Lock()
			removed := 0
			for id, sess := range s.sessions {
				if s.expired(sess) {
					delete(s.sessions, id)
					removed++
				}
			}
			s.mu.Unlock()
			if removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired sessions purged")
			}
		}
	}
}

// RedisSessionStore keeps sessions in Redis with a TTL, for deployments that
// restart the API without dropping active sessions. Read-modify-write runs
// under a store-level lock; the service runs as a single writer per session.
type RedisSessionStore struct {
	mu     sync.Mutex
	cache  *cache.RedisCache
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisSessionStore creates a Redis-backed session store
func NewRedisSessionStore(c *cache.RedisCache, ttl time.Duration, log *logger.Logger) *RedisSessionStore {
	return &RedisSessionStore{
		cache:  c,
		ttl:    ttl,
		logger: log.WithComponent("session-store"),
	}
}

func (s *RedisSessionStore) Create(ctx context.Context) (*models.Session, error) {
	now := time.Now().UTC()
	sess := &models.Session{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.cache.SetJSON(ctx, cache.KeySessionPrefix+sess.ID.String(), sess, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.Debug().Str("session_id", sess.ID.String()).Msg("session created")

	return sess, nil
}

func (s *RedisSessionStore) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	var sess models.Session
	if err := s.cache.GetJSON(ctx, cache.KeySessionPrefix+id.String(), &sess); err != nil {
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (s *RedisSessionStore) Update(ctx context.Context, id uuid.UUID, fn func(*models.Session)) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fn(sess)
	sess.UpdatedAt = time.Now().UTC()

	if err := s.cache.SetJSON(ctx, cache.KeySessionPrefix+id.String(), sess, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return sess, nil
}
