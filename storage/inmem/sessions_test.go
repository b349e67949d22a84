package inmem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aliHasanov22/holb-st-m/core/user"
)

func TestSessionStore(t *testing.T) {
	now := time.Date(2021, time.March, 10, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore().(*sessionStore)
	store.nowFunc = func() time.Time { return now }

	sess, err := store.CreateSession("uid-1", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "uid-1", sess.UserID)
	assert.Equal(t, now.Add(time.Hour), sess.ExpiresAt)

	// tokens are unique per session
	sess2, err := store.CreateSession("uid-1", time.Hour)
	assert.NoError(t, err)
	assert.NotEqual(t, sess.Token, sess2.Token)

	got, err := store.GetSession(sess.Token)
	assert.NoError(t, err)
	assert.Equal(t, sess, got)

	_, err = store.GetSession("no-such-token")
	assert.Equal(t, user.ErrSessionNotFound, err)

	// expiry is explicit; an expired session is forgotten on first sight
	store.nowFunc = func() time.Time { return now.Add(time.Hour + time.Second) }
	_, err = store.GetSession(sess.Token)
	assert.Equal(t, user.ErrSessionExpired, err)
	_, err = store.GetSession(sess.Token)
	assert.Equal(t, user.ErrSessionNotFound, err)

	assert.NoError(t, store.DeleteSession(sess2.Token))
	assert.Equal(t, user.ErrSessionNotFound, store.DeleteSession(sess2.Token))
}
