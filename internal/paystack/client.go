package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.paystack.co"

// Client calls the Paystack transaction API with the server-held secret key.
// Safe for concurrent use.
type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
}

func NewClient(secretKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		// Bounded deadline for the gateway round-trip.
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type Verification struct {
	Status          string
	Reference       string
	Amount          int64
	Currency        string
	GatewayResponse string
}

// Succeeded reports whether the gateway recorded the charge as captured.
// Anything else ("failed", "abandoned", "pending", ...) is not a success.
func (v *Verification) Succeeded() bool {
	return v.Status == "success"
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status          string `json:"status"`
		Reference       string `json:"reference"`
		Amount          int64  `json:"amount"`
		Currency        string `json:"currency"`
		GatewayResponse string `json:"gateway_response"`
	} `json:"data"`
}

// VerifyTransaction looks up the status of a charge by its reference.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*Verification, error) {
	endpoint := c.baseURL + "/transaction/verify/" + url.PathEscape(reference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verify %s: %w", reference, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("verify %s: gateway returned %d", reference, resp.StatusCode)
	}

	var vr verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("verify %s: decode response: %w", reference, err)
	}

	return &Verification{
		Status:          vr.Data.Status,
		Reference:       vr.Data.Reference,
		Amount:          vr.Data.Amount,
		Currency:        vr.Data.Currency,
		GatewayResponse: vr.Data.GatewayResponse,
	}, nil
}
