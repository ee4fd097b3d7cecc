package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"arc-portal/app/models"
)

// SessionStore keeps server-side session records in Redis so tokens can be
// revoked before they expire. Keys carry a prefix derived from the backend
// host, which keeps several portal deployments from clobbering each other
// in a shared Redis. Without Redis configured the portal degrades to
// stateless JWT-only sessions.
type SessionStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSessionStore connects to Redis when addr is set. backendURL is the
// database URL whose hostname seeds the key prefix.
func NewSessionStore(ctx context.Context, addr, password, backendURL string, ttl time.Duration) *SessionStore {
	store := &SessionStore{prefix: hostKey(backendURL), ttl: ttl}
	if addr == "" {
		log.Println("[AUTH] no redis configured, sessions are JWT-only")
		return store
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[AUTH] redis unreachable (%v), sessions are JWT-only", err)
		return store
	}
	store.rdb = rdb
	return store
}

func hostKey(backendURL string) string {
	if u, err := url.Parse(backendURL); err == nil && u.Hostname() != "" {
		return "arc:" + u.Hostname()
	}
	return "arc:local"
}

func (s *SessionStore) Enabled() bool { return s.rdb != nil }

func (s *SessionStore) key(id string) string {
	return fmt.Sprintf("%s:session:%s", s.prefix, id)
}

func (s *SessionStore) Put(ctx context.Context, sess *models.Session) error {
	if !s.Enabled() {
		return nil
	}
	payload, err := sonic.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(sess.ID), payload, s.ttl).Err()
}

// Get returns the session record, or nil when it was revoked or expired.
func (s *SessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	if !s.Enabled() {
		return nil, nil
	}
	payload, err := s.rdb.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sess := &models.Session{}
	if err := sonic.Unmarshal(payload, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if !s.Enabled() {
		return nil
	}
	return s.rdb.Del(ctx, s.key(id)).Err()
}
