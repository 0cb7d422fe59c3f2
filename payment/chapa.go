package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const chapaBaseURL = "https://api.chapa.co/v1"

type ChapaGateway struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewChapaGateway(secretKey string) *ChapaGateway {
	return &ChapaGateway{
		secretKey: secretKey,
		baseURL:   chapaBaseURL,
		client:    &http.Client{Timeout: requestTimeout},
	}
}

// NewChapaGatewayWithBaseURL is used by tests to point the client at a
// stub server.
func NewChapaGatewayWithBaseURL(secretKey, baseURL string) *ChapaGateway {
	g := NewChapaGateway(secretKey)
	g.baseURL = baseURL
	return g
}

func (g *ChapaGateway) Name() string { return "chapa" }

type chapaInitRequest struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	TxRef       string `json:"tx_ref"`
	CallbackURL string `json:"callback_url"`
	ReturnURL   string `json:"return_url"`
	Email       string `json:"email,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
}

type chapaInitResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		CheckoutURL string `json:"checkout_url"`
	} `json:"data"`
}

func (g *ChapaGateway) Initialize(ctx context.Context, req InitRequest) (*InitResponse, error) {
	body := chapaInitRequest{
		// Chapa wants major units
		Amount:      fmt.Sprintf("%.2f", float64(req.Amount)/100),
		Currency:    req.Currency,
		TxRef:       req.TxRef,
		CallbackURL: req.CallbackURL,
		ReturnURL:   req.ReturnURL,
		Email:       req.Email,
		FirstName:   req.Name,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/transaction/initialize", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

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
		return nil, fmt.Errorf("chapa initialize failed: status %d: %s", resp.StatusCode, string(raw))
	}

	var out chapaInitResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out.Status != "success" || out.Data.CheckoutURL == "" {
		return nil, fmt.Errorf("chapa initialize failed: %s", out.Message)
	}
	return &InitResponse{RedirectURL: out.Data.CheckoutURL}, nil
}
