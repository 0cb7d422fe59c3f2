package services

import (
	"testing"
	"time"

	"github.com/biltech1234n/thecoffeelink/configs"
	"github.com/biltech1234n/thecoffeelink/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthEnv(t *testing.T) (*testEnv, *AuthService) {
	t.Helper()
	env := newTestEnv(t)
	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	return env, NewAuthService(env.userRepo, cfg)
}

func TestRegisterSellerStartsUnverified(t *testing.T) {
	_, auth := newAuthEnv(t)

	user, token, err := auth.Register(&RegisterReq{
		Username: "roaster", Email: "roaster@example.com",
		Password: "secret1", Role: entity.RoleSeller,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, user.IsVerified)

	buyer, _, err := auth.Register(&RegisterReq{
		Username: "drinker", Email: "drinker@example.com",
		Password: "secret1", Role: entity.RoleBuyer,
	})
	require.NoError(t, err)
	assert.True(t, buyer.IsVerified, "buyers skip identity review")
}

func TestRegisterRejectsReservedAndTakenUsernames(t *testing.T) {
	_, auth := newAuthEnv(t)

	_, _, err := auth.Register(&RegisterReq{
		Username: entity.GuestUsername, Email: "g@example.com",
		Password: "secret1", Role: entity.RoleBuyer,
	})
	assert.Error(t, err)

	_, _, err = auth.Register(&RegisterReq{
		Username: "drinker", Email: "d@example.com",
		Password: "secret1", Role: entity.RoleBuyer,
	})
	require.NoError(t, err)

	_, _, err = auth.Register(&RegisterReq{
		Username: "drinker", Email: "other@example.com",
		Password: "secret1", Role: entity.RoleBuyer,
	})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	env, auth := newAuthEnv(t)

	user, _, err := auth.Register(&RegisterReq{
		Username: "drinker", Email: "d@example.com",
		Password: "secret1", Role: entity.RoleBuyer,
	})
	require.NoError(t, err)

	_, token, err := auth.Login(&LoginReq{Username: "drinker", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, _, err = auth.Login(&LoginReq{Username: "drinker", Password: "wrong"})
	assert.Error(t, err)

	// suspended accounts cannot sign in even with the right password
	user.IsActive = false
	require.NoError(t, env.userRepo.Save(user))
	_, _, err = auth.Login(&LoginReq{Username: "drinker", Password: "secret1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "suspended")
}

func TestGuestAccountCannotLogIn(t *testing.T) {
	env, auth := newAuthEnv(t)

	guest, err := env.userRepo.GetOrCreateGuest()
	require.NoError(t, err)

	_, _, err = auth.Login(&LoginReq{Username: guest.Username, Password: ""})
	assert.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	_, auth := newAuthEnv(t)

	user, _, err := auth.Register(&RegisterReq{
		Username: "drinker", Email: "d@example.com",
		Password: "secret1", Role: entity.RoleBuyer,
	})
	require.NoError(t, err)

	assert.Error(t, auth.ChangePassword(user.ID, "wrong", "newpass1"))
	require.NoError(t, auth.ChangePassword(user.ID, "secret1", "newpass1"))

	_, _, err = auth.Login(&LoginReq{Username: "drinker", Password: "newpass1"})
	assert.NoError(t, err)
}
