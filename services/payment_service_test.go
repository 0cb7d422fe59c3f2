package services

import (
	"context"
	"testing"

	"github.com/biltech1234n/thecoffeelink/entity"
	"github.com/biltech1234n/thecoffeelink/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	calls []payment.InitRequest
}

func (g *fakeGateway) Name() string { return "fake" }

func (g *fakeGateway) Initialize(_ context.Context, req payment.InitRequest) (*payment.InitResponse, error) {
	g.calls = append(g.calls, req)
	return &payment.InitResponse{RedirectURL: "https://pay.example.com/" + req.TxRef}, nil
}

func newPaymentEnv(t *testing.T) (*testEnv, *PaymentService, *fakeGateway) {
	t.Helper()
	env := newTestEnv(t)
	gw := &fakeGateway{}
	svc := NewPaymentService(env.paymentRepo, env.orders, env.userRepo,
		map[string]payment.Gateway{"fake": gw}, "http://localhost:8000")
	return env, svc, gw
}

func TestCheckoutInitializesGateway(t *testing.T) {
	env, svc, gw := newPaymentEnv(t)
	seller := env.createUser(t, "roaster", entity.RoleSeller, true)
	buyer := env.createUser(t, "drinker", entity.RoleBuyer, true)
	product := env.createProduct(t, seller, "Yirgacheffe", 1000)

	order, err := env.orders.Create(buyer.ID, &CreateOrderReq{ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)

	res, err := svc.Checkout(context.Background(), buyer.ID, order.ID, "fake")
	require.NoError(t, err)

	require.Len(t, gw.calls, 1)
	assert.Equal(t, int64(3000), gw.calls[0].Amount)
	assert.Equal(t, res.TxRef, gw.calls[0].TxRef)
	assert.Contains(t, res.RedirectURL, res.TxRef)

	record, err := env.paymentRepo.FindByTxRef(res.TxRef)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentInitiated, record.Status)
	assert.Equal(t, order.ID, record.OrderID)
}

func TestCheckoutRejectsUnknownProvider(t *testing.T) {
	env, svc, _ := newPaymentEnv(t)
	seller := env.createUser(t, "roaster", entity.RoleSeller, true)
	buyer := env.createUser(t, "drinker", entity.RoleBuyer, true)
	product := env.createProduct(t, seller, "Sidamo", 500)

	order, err := env.orders.Create(buyer.ID, &CreateOrderReq{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.Checkout(context.Background(), buyer.ID, order.ID, "telebirr")
	assert.Error(t, err)
}

func TestCheckoutRefusesPaidOrder(t *testing.T) {
	env, svc, gw := newPaymentEnv(t)
	seller := env.createUser(t, "roaster", entity.RoleSeller, true)
	buyer := env.createUser(t, "drinker", entity.RoleBuyer, true)
	product := env.createProduct(t, seller, "Harrar", 800)

	order, err := env.orders.Create(buyer.ID, &CreateOrderReq{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, env.orders.MarkPaid(buyer.ID, order.ID))

	_, err = svc.Checkout(context.Background(), buyer.ID, order.ID, "fake")
	assert.ErrorIs(t, err, ErrAlreadyPaid)
	assert.Empty(t, gw.calls)
}

func TestCallbackMarksPaidExactlyOnce(t *testing.T) {
	env, svc, _ := newPaymentEnv(t)
	seller := env.createUser(t, "roaster", entity.RoleSeller, true)
	buyer := env.createUser(t, "drinker", entity.RoleBuyer, true)
	product := env.createProduct(t, seller, "Guji", 700)

	order, err := env.orders.Create(buyer.ID, &CreateOrderReq{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	res, err := svc.Checkout(context.Background(), buyer.ID, order.ID, "fake")
	require.NoError(t, err)

	require.NoError(t, svc.CompleteCallback(order.ID, res.TxRef))

	stored, err := env.orderRepo.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, stored.Status)

	record, err := env.paymentRepo.FindByTxRef(res.TxRef)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCompleted, record.Status)
	require.NotNil(t, record.PaidAt)

	buyerNotifs := len(env.notificationsFor(t, buyer.ID))
	sellerNotifs := len(env.notificationsFor(t, seller.ID))

	// replayed provider callback is a clean no-op
	require.NoError(t, svc.CompleteCallback(order.ID, res.TxRef))
	assert.Len(t, env.notificationsFor(t, buyer.ID), buyerNotifs)
	assert.Len(t, env.notificationsFor(t, seller.ID), sellerNotifs)
}

func TestCallbackRejectsMismatchedOrder(t *testing.T) {
	env, svc, _ := newPaymentEnv(t)
	seller := env.createUser(t, "roaster", entity.RoleSeller, true)
	buyer := env.createUser(t, "drinker", entity.RoleBuyer, true)
	p1 := env.createProduct(t, seller, "Limu", 600)
	p2 := env.createProduct(t, seller, "Jimma", 400)

	o1, err := env.orders.Create(buyer.ID, &CreateOrderReq{ProductID: p1.ID, Quantity: 1})
	require.NoError(t, err)
	o2, err := env.orders.Create(buyer.ID, &CreateOrderReq{ProductID: p2.ID, Quantity: 1})
	require.NoError(t, err)

	res, err := svc.Checkout(context.Background(), buyer.ID, o1.ID, "fake")
	require.NoError(t, err)

	err = svc.CompleteCallback(o2.ID, res.TxRef)
	assert.ErrorIs(t, err, ErrConflict)

	stored, err := env.orderRepo.FindByID(o2.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, stored.Status)
}
