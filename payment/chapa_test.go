package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChapaInitialize(t *testing.T) {
	var got chapaInitRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"data":   map[string]string{"checkout_url": "https://checkout.chapa.co/abc"},
		})
	}))
	defer srv.Close()

	gw := NewChapaGatewayWithBaseURL("sk-test", srv.URL)
	res, err := gw.Initialize(context.Background(), InitRequest{
		Amount:      3050, // cents
		Currency:    "ETB",
		TxRef:       "TCL-1-99",
		CallbackURL: "http://localhost/payments/callback/1?tx_ref=TCL-1-99",
		Email:       "buyer@example.com",
		Name:        "drinker",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.chapa.co/abc", res.RedirectURL)
	assert.Equal(t, "30.50", got.Amount, "amount is sent in major units")
	assert.Equal(t, "ETB", got.Currency)
	assert.Equal(t, "TCL-1-99", got.TxRef)
}

func TestChapaInitializeRejectsFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status":  "failed",
			"message": "invalid currency",
		})
	}))
	defer srv.Close()

	gw := NewChapaGatewayWithBaseURL("sk-test", srv.URL)
	_, err := gw.Initialize(context.Background(), InitRequest{Amount: 100, Currency: "XXX", TxRef: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid currency")
}

func TestChapaInitializeNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	gw := NewChapaGatewayWithBaseURL("bad-key", srv.URL)
	_, err := gw.Initialize(context.Background(), InitRequest{Amount: 100, Currency: "ETB", TxRef: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
