package services

import (
	"testing"

	"github.com/biltech1234n/thecoffeelink/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNotificationQueriesAreRecipientScoped(t *testing.T) {
	env := newTestEnv(t)
	a := env.createUser(t, "alice", entity.RoleBuyer, true)
	b := env.createUser(t, "bob", entity.RoleBuyer, true)

	require.NoError(t, env.notifier.AdminAction(a.ID, "for alice", ""))
	require.NoError(t, env.notifier.AdminAction(b.ID, "for bob", ""))

	forA, err := env.notifier.ListFor(a.ID)
	require.NoError(t, err)
	require.Len(t, forA, 1)
	assert.Equal(t, "for alice", forA[0].Message)

	// bob cannot mark alice's notification read
	_, err = env.notifier.MarkRead(forA[0].ID, b.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// bob's clear leaves alice untouched
	require.NoError(t, env.notifier.DeleteAll(b.ID))
	forA, err = env.notifier.ListFor(a.ID)
	require.NoError(t, err)
	assert.Len(t, forA, 1)
	forB, err := env.notifier.ListFor(b.ID)
	require.NoError(t, err)
	assert.Empty(t, forB)
}

func TestMarkReadReturnsStoredLink(t *testing.T) {
	env := newTestEnv(t)
	a := env.createUser(t, "alice", entity.RoleBuyer, true)

	require.NoError(t, env.notifier.AdminAction(a.ID, "check your account", "/profile"))
	notifs := env.notificationsFor(t, a.ID)
	require.Len(t, notifs, 1)

	link, err := env.notifier.MarkRead(notifs[0].ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "/profile", link)

	_, unread, err := env.notifier.Unread(a.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestMarkReadFallsBackToHome(t *testing.T) {
	env := newTestEnv(t)
	a := env.createUser(t, "alice", entity.RoleBuyer, true)

	require.NoError(t, env.notifRepo.Create(&entity.Notification{
		RecipientID: a.ID,
		Type:        entity.NotifAlert,
		Message:     "no link on this one",
	}))
	notifs := env.notificationsFor(t, a.ID)
	require.Len(t, notifs, 1)

	link, err := env.notifier.MarkRead(notifs[0].ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "/", link)
}

func TestMarkAllRead(t *testing.T) {
	env := newTestEnv(t)
	a := env.createUser(t, "alice", entity.RoleBuyer, true)

	require.NoError(t, env.notifier.AdminAction(a.ID, "one", ""))
	require.NoError(t, env.notifier.AdminAction(a.ID, "two", ""))

	require.NoError(t, env.notifier.MarkAllRead(a.ID))

	_, unread, err := env.notifier.Unread(a.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}
