package inmem

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aliHasanov22/holb-st-m/core/user"
)

// sessionStore keeps login sessions in memory with explicit expiry. It
// satisfies user.SessionStore and owns its own lock: sessions are not part
// of the repository DB.
type sessionStore struct {
	mutex    sync.RWMutex
	sessions map[string]user.Session

	nowFunc func() time.Time
}

func NewSessionStore() user.SessionStore {
	return &sessionStore{
		sessions: make(map[string]user.Session),
		nowFunc:  time.Now,
	}
}

func (store *sessionStore) CreateSession(userID string, ttl time.Duration) (user.Session, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	sess := user.Session{
		Token:     uuid.New().String(),
		UserID:    userID,
		ExpiresAt: store.nowFunc().UTC().Add(ttl),
	}
	store.sessions[sess.Token] = sess
	return sess, nil
}

func (store *sessionStore) GetSession(token string) (user.Session, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	sess, ok := store.sessions[token]
	if !ok {
		return user.Session{}, user.ErrSessionNotFound
	}
	if sess.Expired(store.nowFunc().UTC()) {
		delete(store.sessions, token)
		return user.Session{}, user.ErrSessionExpired
	}
	return sess, nil
}

func (store *sessionStore) DeleteSession(token string) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	if _, ok := store.sessions[token]; !ok {
		return user.ErrSessionNotFound
	}
	delete(store.sessions, token)
	return nil
}
