// Package billing invokes the hosted billing function that creates a billing
// customer and a trial/freemium subscription for a user.
package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"habitar/config"
	"habitar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultTimeout = 15 * time.Second

// Client posts to the billing function endpoint. Both transport failures and
// error payloads surface as errors so the provisioner's retry policy treats
// them uniformly.
type Client struct {
	functionURL string
	apiKey      string
	httpClient  *http.Client
}

// NewClient is the constructor for the billing Client.
func NewClient(cfg *config.Config) service.BillingService {
	timeout := defaultTimeout
	if cfg.Billing != nil && cfg.Billing.Timeout > 0 {
		timeout = cfg.Billing.Timeout
	}

	client := &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
	if cfg.Billing != nil {
		client.functionURL = cfg.Billing.FunctionURL
		client.apiKey = cfg.Billing.APIKey
	}

	return client
}

type createRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

type createResponse struct {
	service.FreemiumResult
	Error string `json:"error,omitempty"`
}

// CreateFreemiumSubscription invokes the billing function. The function
// re-checks for an existing active subscription on its side, so invoking it
// twice for the same user is harmless.
func (c *Client) CreateFreemiumSubscription(ctx context.Context, userID uuid.UUID, email string) (*service.FreemiumResult, error) {
	raw, err := json.Marshal(createRequest{UserID: userID, Email: email})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode billing request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.functionURL, bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build billing request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "billing request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read billing response")
	}

	var decoded createResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.Wrapf(err, "failed to decode billing response (status %d)", resp.StatusCode)
	}

	if decoded.Error != "" {
		return nil, errors.Errorf("billing function error: %s", decoded.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("billing function returned status %d", resp.StatusCode)
	}

	return &decoded.FreemiumResult, nil
}
