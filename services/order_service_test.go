package services

import (
	"testing"

	"github.com/biltech1234n/thecoffeelink/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderComputesTotalPrice(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "roaster", entity.RoleSeller, true)
	buyer := env.createUser(t, "drinker", entity.RoleBuyer, true)
	product := env.createProduct(t, seller, "Yirgacheffe", 1000) // $10.00/kg

	res, err := env.orders.Create(buyer.ID, &CreateOrderReq{ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPending, res.Status)
	assert.Equal(t, 3, res.Quantity)
	assert.Equal(t, int64(3000), res.TotalPrice) // 3kg x $10.00
	assert.False(t, res.Updated)
}

func TestCreateOrderAbsorbsExistingPending(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "roaster", entity.RoleSeller, true)
	buyer := env.createUser(t, "drinker", entity.RoleBuyer, true)
	product := env.createProduct(t, seller, "Sidamo", 500)

	first, err := env.orders.Create(buyer.ID, &CreateOrderReq{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	second, err := env.orders.Create(buyer.ID, &CreateOrderReq{ProductID: product.ID, Quantity: 5})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "must reuse the pending row, not insert a second one")
	assert.True(t, second.Updated)
	assert.Equal(t, 5, second.Quantity)
	assert.Equal(t, int64(2500), second.TotalPrice)

	orders, err := env.orderRepo.ListForBuyer(buyer.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	// only the original creation notified the seller
	assert.Len(t, env.notificationsFor(t, seller.ID), 1)
}

func TestCreateOrderRejectsSelfPurchase(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "roaster", entity.RoleSeller, true)
	product := env.createProduct(t, seller, "Harrar", 800)

	_, err := env.orders.Create(seller.ID, &CreateOrderReq{ProductID: product.ID, Quantity: 1})
	assert.Error(t, err)
}

func TestCreateOrderRejectsUnverifiedSeller(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "newcomer", entity.RoleSeller, false)
	buyer := env.createUser(t, "drinker", entity.RoleBuyer, true)
	product := env.createProduct(t, seller, "Limu", 600)

	_, err := env.orders.Create(buyer.ID, &CreateOrderReq{ProductID: product.ID, Quantity: 1})
	assert.Error(t, err)
}

func TestCancelOnlyWhilePending(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "roaster", entity.RoleSeller, true)
	buyer := env.createUser(t, "drinker", entity.RoleBuyer, true)
	product := env.createProduct(t, seller, "Guji", 700)

	res, err := env.orders.Create(buyer.ID, &CreateOrderReq{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, env.orders.SellerSetStatus(seller.ID, res.ID, entity.StatusAccepted))

	err = env.orders.Cancel(buyer.ID, res.ID)
	assert.ErrorIs(t, err, ErrConflict)

	// resetting to Pending re-opens the cancel window
	require.NoError(t, env.orders.SellerSetStatus(seller.ID, res.ID, entity.StatusPending))
	require.NoError(t, env.orders.Cancel(buyer.ID, res.ID))

	orders, err := env.orderRepo.ListForBuyer(buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestSellerCannotTouchForeignOrder(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "roaster", entity.RoleSeller, true)
	intruder := env.createUser(t, "intruder", entity.RoleSeller, true)
	buyer := env.createUser(t, "drinker", entity.RoleBuyer, true)
	product := env.createProduct(t, seller, "Jimma", 400)

	res, err := env.orders.Create(buyer.ID, &CreateOrderReq{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	err = env.orders.SellerSetStatus(intruder.ID, res.ID, entity.StatusAccepted)
	assert.ErrorIs(t, err, ErrForbidden)

	order, err := env.orderRepo.FindByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, order.Status)
}

func TestSellerCannotSetPaidDirectly(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "roaster", entity.RoleSeller, true)
	buyer := env.createUser(t, "drinker", entity.RoleBuyer, true)
	product := env.createProduct(t, seller, "Kaffa", 900)

	res, err := env.orders.Create(buyer.ID, &CreateOrderReq{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	err = env.orders.SellerSetStatus(seller.ID, res.ID, entity.StatusPaid)
	assert.Error(t, err)
}

func TestMarkPaidIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "roaster", entity.RoleSeller, true)
	buyer := env.createUser(t, "drinker", entity.RoleBuyer, true)
	product := env.createProduct(t, seller, "Bale", 1200)

	res, err := env.orders.Create(buyer.ID, &CreateOrderReq{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, env.orders.MarkPaid(buyer.ID, res.ID))

	order, err := env.orderRepo.FindByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, order.Status)

	buyerNotifs := len(env.notificationsFor(t, buyer.ID))
	sellerNotifs := len(env.notificationsFor(t, seller.ID))
	assert.Equal(t, 1, buyerNotifs, "payment confirmation")
	assert.Equal(t, 2, sellerNotifs, "order created + sale")

	// second attempt is an informational no-op
	err = env.orders.MarkPaid(buyer.ID, res.ID)
	assert.ErrorIs(t, err, ErrAlreadyPaid)

	assert.Len(t, env.notificationsFor(t, buyer.ID), buyerNotifs, "no duplicate fan-out")
	assert.Len(t, env.notificationsFor(t, seller.ID), sellerNotifs, "no duplicate fan-out")
}

func TestStatusChangeNotifiesBuyer(t *testing.T) {
	env := newTestEnv(t)
	seller := env.createUser(t, "roaster", entity.RoleSeller, true)
	buyer := env.createUser(t, "drinker", entity.RoleBuyer, true)
	product := env.createProduct(t, seller, "Wollega", 650)

	res, err := env.orders.Create(buyer.ID, &CreateOrderReq{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, env.orders.SellerSetStatus(seller.ID, res.ID, entity.StatusShipped))

	notifs := env.notificationsFor(t, buyer.ID)
	require.Len(t, notifs, 1)
	assert.Contains(t, notifs[0].Message, "Shipped")
	assert.Equal(t, "/buyer/orders", notifs[0].Link)
}
