package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"careerpath/internal/ports"
)

const (
	sessionMetaKey  = "session_id"
	sessionNSPrefix = "session:"
)

// Session returns the store for the current session, starting one if
// none is active. Every process sees the same session until EndSession.
func (d *DB) Session(ctx context.Context) (*SessionStore, error) {
	if _, err := d.SessionID(ctx); err != nil {
		return nil, err
	}
	return &SessionStore{db: d}, nil
}

// SessionStore implements ports.KVStore over whichever session is active
// at the time of each call. A session ended by another process is
// picked up on the next access.
type SessionStore struct {
	db *DB
}

var (
	_ ports.KVStore   = (*SessionStore)(nil)
	_ ports.KeyLister = (*SessionStore)(nil)
)

// Namespace returns the namespace of the active session
func (s *SessionStore) Namespace(ctx context.Context) (string, error) {
	id, err := s.db.SessionID(ctx)
	if err != nil {
		return "", err
	}
	return sessionNSPrefix + id, nil
}

func (s *SessionStore) current(ctx context.Context) (*Store, error) {
	ns, err := s.Namespace(ctx)
	if err != nil {
		return nil, err
	}
	return s.db.Namespace(ns), nil
}

func (s *SessionStore) Get(ctx context.Context, key string) ([]byte, error) {
	store, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return store.Get(ctx, key)
}

func (s *SessionStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	store, err := s.current(ctx)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, value, ttl)
}

func (s *SessionStore) Delete(ctx context.Context, key string) error {
	store, err := s.current(ctx)
	if err != nil {
		return err
	}
	return store.Delete(ctx, key)
}

// Keys lists the live keys of the active session starting with prefix
func (s *SessionStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	store, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return store.Keys(ctx, prefix)
}

// SessionID returns the active session id, creating one if needed
func (d *DB) SessionID(ctx context.Context) (string, error) {
	id, err := d.meta(ctx, sessionMetaKey)
	if err != nil {
		return "", fmt.Errorf("failed to read session id: %w", err)
	}
	if id != "" {
		return id, nil
	}

	id = uuid.NewString()
	err = d.withTx(ctx, func(tx *kvTx) error {
		return tx.setMeta(sessionMetaKey, id)
	})
	if err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}
	return id, nil
}

// EndSession drops everything stored in the current session and starts
// a fresh one. It returns the new session id and the number of entries removed.
func (d *DB) EndSession(ctx context.Context) (string, int64, error) {
	old, err := d.SessionID(ctx)
	if err != nil {
		return "", 0, err
	}

	next := uuid.NewString()
	var removed int64
	err = d.withTx(ctx, func(tx *kvTx) error {
		n, err := tx.clearNamespace(sessionNSPrefix + old)
		if err != nil {
			return err
		}
		removed = n
		return tx.setMeta(sessionMetaKey, next)
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to end session: %w", err)
	}
	return next, removed, nil
}

// PurgeExpired deletes every entry whose ttl has passed
func (d *DB) PurgeExpired(ctx context.Context) (int64, error) {
	var removed int64
	err := d.withTx(ctx, func(tx *kvTx) error {
		n, err := tx.purgeExpired()
		removed = n
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired entries: %w", err)
	}
	return removed, nil
}
