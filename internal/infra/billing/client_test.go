package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"habitar/config"
	"habitar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(functionURL string) service.BillingService {
	cfg := &config.Config{
		Billing: &config.BillingConfig{
			FunctionURL: functionURL,
			APIKey:      "function-key",
		},
	}

	return NewClient(cfg)
}

func TestClient_CreateFreemiumSubscription_Success(t *testing.T) {
	id := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer function-key", r.Header.Get("Authorization"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, id.String(), payload["user_id"])
		assert.Equal(t, "ana@example.pt", payload["email"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Freemium subscription created",
			"subscription": map[string]any{
				"id":      uuid.New().String(),
				"user_id": id.String(),
				"status":  "active",
			},
			"trial_period": map[string]any{
				"user_id": id.String(),
				"status":  "active",
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.CreateFreemiumSubscription(context.Background(), id, "ana@example.pt")
	require.NoError(t, err)
	assert.Equal(t, "Freemium subscription created", result.Message)
	require.NotNil(t, result.Subscription)
	assert.Equal(t, id, result.Subscription.UserID)
	assert.True(t, result.Subscription.IsActive())
	require.NotNil(t, result.TrialPeriod)
	assert.Equal(t, id, result.TrialPeriod.UserID)
}

func TestClient_CreateFreemiumSubscription_ErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "customer creation failed"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateFreemiumSubscription(context.Background(), uuid.New(), "ana@example.pt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer creation failed")
}

func TestClient_CreateFreemiumSubscription_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateFreemiumSubscription(context.Background(), uuid.New(), "ana@example.pt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_CreateFreemiumSubscription_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateFreemiumSubscription(context.Background(), uuid.New(), "ana@example.pt")
	require.Error(t, err)
	assert.True(t, service.IsConnectivity(err))
}
