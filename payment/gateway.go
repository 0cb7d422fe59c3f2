// Package payment holds the checkout gateway clients. Both providers
// follow the same contract: the server initializes a transaction and
// receives a redirect URL; the provider later hits the callback URL,
// which is what actually marks the order paid.
package payment

import (
	"context"
	"time"
)

type InitRequest struct {
	Amount      int64  // cents
	Currency    string
	TxRef       string
	OrderID     uint
	CallbackURL string
	ReturnURL   string
	Email       string
	Name        string
}

type InitResponse struct {
	RedirectURL string
}

// Gateway is one payment provider. Failures surface to the user; there
// is no automatic retry.
type Gateway interface {
	Name() string
	Initialize(ctx context.Context, req InitRequest) (*InitResponse, error)
}

// requestTimeout bounds every outbound gateway call. The providers give
// no implicit timeout of their own.
const requestTimeout = 15 * time.Second
