package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripeInitialize(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		got = r.PostForm

		json.NewEncoder(w).Encode(map[string]string{
			"id":  "cs_123",
			"url": "https://checkout.stripe.com/pay/cs_123",
		})
	}))
	defer srv.Close()

	gw := NewStripeGatewayWithBaseURL("sk-test", srv.URL)
	res, err := gw.Initialize(context.Background(), InitRequest{
		Amount:      3050,
		Currency:    "ETB",
		TxRef:       "TCL-7-1",
		OrderID:     7,
		CallbackURL: "http://localhost/payments/callback/7?tx_ref=TCL-7-1",
		ReturnURL:   "http://localhost/market/pay/7",
		Email:       "buyer@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.stripe.com/pay/cs_123", res.RedirectURL)
	assert.Equal(t, "payment", got.Get("mode"))
	assert.Equal(t, "TCL-7-1", got.Get("client_reference_id"))
	assert.Equal(t, "3050", got.Get("line_items[0][price_data][unit_amount]"), "amount stays in minor units")
	assert.Equal(t, "etb", got.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "Order #7", got.Get("line_items[0][price_data][product_data][name]"))
}

func TestStripeInitializeMissingURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": "cs_123"})
	}))
	defer srv.Close()

	gw := NewStripeGatewayWithBaseURL("sk-test", srv.URL)
	_, err := gw.Initialize(context.Background(), InitRequest{Amount: 100, Currency: "ETB", TxRef: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no redirect url")
}

func TestStripeInitializeNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	gw := NewStripeGatewayWithBaseURL("sk-test", srv.URL)
	_, err := gw.Initialize(context.Background(), InitRequest{Amount: 100, Currency: "ETB", TxRef: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}
