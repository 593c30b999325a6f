// Package payments implements the payment provider port against an external
// checkout gateway over HTTP. The gateway owns the checkout session; this
// adapter only opens sessions and asks whether they settled.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/core/ports"
)

const defaultRequestTimeout = 10 * time.Second

// CheckoutClient implements PaymentProvider against a JSON checkout gateway.
//
// POST {baseURL}/v1/sessions opens a session for a job; GET
// {baseURL}/v1/sessions/{jobID} reports its settlement state. Requests carry
// the API key as a bearer token.
type CheckoutClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewCheckoutClient creates a client for the gateway at baseURL. The
// httpClient may be nil, in which case a client with a request timeout is
// used.
func NewCheckoutClient(baseURL string, apiKey string, httpClient *http.Client) *CheckoutClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &CheckoutClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type createSessionRequest struct {
	Reference   string  `json:"reference"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type sessionResponse struct {
	URL     string `json:"url"`
	Settled bool   `json:"settled"`
}

// CreateCheckoutSession opens a checkout session for the job and returns the
// URL where the customer completes the payment.
func (c *CheckoutClient) CreateCheckoutSession(
	ctx context.Context,
	jobID kernel.UUID,
	totalAmount float64,
	description string,
) (ports.CheckoutSession, error) {
	payload, err := json.Marshal(createSessionRequest{
		Reference:   jobID.String(),
		Amount:      totalAmount,
		Description: description,
	})
	if err != nil {
		return ports.CheckoutSession{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/v1/sessions", bytes.NewReader(payload),
	)
	if err != nil {
		return ports.CheckoutSession{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.CheckoutSession{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return ports.CheckoutSession{}, fmt.Errorf("checkout gateway returned status %d", resp.StatusCode)
	}

	var session sessionResponse
	if err = json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return ports.CheckoutSession{}, err
	}

	if session.URL == "" {
		return ports.CheckoutSession{}, fmt.Errorf("checkout gateway returned no session url")
	}

	return ports.CheckoutSession{URL: session.URL}, nil
}

// SessionSettled reports whether the session opened for the job has been
// paid. Used by the reconciliation job as a fallback next to the gateway's
// own success callback.
func (c *CheckoutClient) SessionSettled(ctx context.Context, jobID kernel.UUID) (bool, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/v1/sessions/"+jobID.String(), nil,
	)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("checkout gateway returned status %d", resp.StatusCode)
	}

	var session sessionResponse
	if err = json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return false, err
	}

	return session.Settled, nil
}
