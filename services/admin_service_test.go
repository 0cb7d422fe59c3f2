package services

import (
	"testing"

	"github.com/biltech1234n/thecoffeelink/entity"
	"github.com/biltech1234n/thecoffeelink/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminEnv(t *testing.T) (*testEnv, *AdminService, *repository.SellerRepository) {
	t.Helper()
	env := newTestEnv(t)
	sellerRepo := repository.NewSellerRepository(env.db)
	return env, NewAdminService(env.userRepo, sellerRepo, env.notifier), sellerRepo
}

func TestUserActionSuspendAndRestore(t *testing.T) {
	env, admin, _ := newAdminEnv(t)
	user := env.createUser(t, "drinker", entity.RoleBuyer, true)

	updated, err := admin.UserAction(ActionSuspend, user.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	updated, err = admin.UserAction(ActionUnsuspend, user.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	notifs := env.notificationsFor(t, user.ID)
	require.Len(t, notifs, 2)
	assert.Equal(t, entity.NotifAlert, notifs[0].Type)
}

func TestUserActionIdentityApproval(t *testing.T) {
	env, admin, _ := newAdminEnv(t)
	seller := env.createUser(t, "roaster", entity.RoleSeller, false)

	updated, err := admin.UserAction(ActionApproveIdentity, seller.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsVerified)

	updated, err = admin.UserAction(ActionRevokeIdentity, seller.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsVerified)

	_, err = admin.UserAction("explode", seller.ID)
	assert.Error(t, err)
}

func TestCertActionNotifiesOwner(t *testing.T) {
	env, admin, sellerRepo := newAdminEnv(t)
	seller := env.createUser(t, "roaster", entity.RoleSeller, true)

	profile, err := sellerRepo.GetOrCreateProfile(seller.ID)
	require.NoError(t, err)
	cert := &entity.SellerCertification{Name: "Fair Trade", ProfileID: profile.ID}
	require.NoError(t, sellerRepo.CreateCert(cert))

	verified, err := admin.CertAction(ActionVerifyCert, cert.ID)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)

	notifs := env.notificationsFor(t, seller.ID)
	require.Len(t, notifs, 1)
	assert.Contains(t, notifs[0].Message, "Fair Trade")
	assert.Contains(t, notifs[0].Message, "approved")

	rejected, err := admin.CertAction(ActionRejectCert, cert.ID)
	require.NoError(t, err)
	assert.False(t, rejected.IsVerified)
}
