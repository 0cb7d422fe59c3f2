package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const stripeBaseURL = "https://api.stripe.com/v1"

type StripeGateway struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{
		secretKey: secretKey,
		baseURL:   stripeBaseURL,
		client:    &http.Client{Timeout: requestTimeout},
	}
}

func NewStripeGatewayWithBaseURL(secretKey, baseURL string) *StripeGateway {
	g := NewStripeGateway(secretKey)
	g.baseURL = baseURL
	return g
}

func (g *StripeGateway) Name() string { return "stripe" }

type stripeSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (g *StripeGateway) Initialize(ctx context.Context, req InitRequest) (*InitResponse, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", req.CallbackURL)
	form.Set("cancel_url", req.ReturnURL)
	form.Set("client_reference_id", req.TxRef)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", strings.ToLower(req.Currency))
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(req.Amount, 10))
	form.Set("line_items[0][price_data][product_data][name]", fmt.Sprintf("Order #%d", req.OrderID))
	if req.Email != "" {
		form.Set("customer_email", req.Email)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.secretKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stripe session failed: status %d: %s", resp.StatusCode, string(raw))
	}

	var out stripeSessionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out.URL == "" {
		return nil, fmt.Errorf("stripe session failed: no redirect url")
	}
	return &InitResponse{RedirectURL: out.URL}, nil
}
