// Package identity implements the IdentityService interface against the
// hosted identity platform's REST API.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"habitar/config"
	"habitar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// Client calls the identity platform. It performs no retries itself; retry
// policy belongs to the orchestrators.
type Client struct {
	baseURL    string
	apiKey     string
	siteURL    string
	httpClient *http.Client
}

// NewClient is the constructor for the identity Client.
func NewClient(cfg *config.Config) service.IdentityService {
	timeout := defaultTimeout
	if cfg.Identity != nil && cfg.Identity.Timeout > 0 {
		timeout = cfg.Identity.Timeout
	}

	client := &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
	if cfg.Identity != nil {
		client.baseURL = cfg.Identity.BaseURL
		client.apiKey = cfg.Identity.APIKey
		client.siteURL = cfg.Identity.SiteURL
	}

	return client
}

// identityUser is the wire shape of the platform's user object.
type identityUser struct {
	ID           uuid.UUID                `json:"id"`
	Email        string                   `json:"email"`
	UserMetadata service.IdentityMetadata `json:"user_metadata"`
}

// identityErrorBody is the wire shape of the platform's error payload.
// Older endpoints use "code"/"msg", newer ones "error_code"/"message".
type identityErrorBody struct {
	Code             string `json:"code"`
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func (b *identityErrorBody) toError(status int) *service.IdentityError {
	code := b.ErrorCode
	if code == "" {
		code = b.Code
	}

	message := b.Msg
	if message == "" {
		message = b.Message
	}
	if message == "" {
		message = b.ErrorDescription
	}
	if message == "" {
		message = http.StatusText(status)
	}

	return &service.IdentityError{Code: code, Message: message}
}

// SignUp creates a new identity with profile metadata.
func (c *Client) SignUp(ctx context.Context, email, password string, metadata service.IdentityMetadata) (*service.Identity, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
		"data":     metadata,
	}

	var user identityUser
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", "", payload, &user); err != nil {
		return nil, err
	}

	return toIdentity(&user), nil
}

// signInResponse is the token-grant response.
type signInResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"`
	User         identityUser `json:"user"`
}

// SignInWithPassword verifies credentials via the password grant.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*service.Identity, *service.Session, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
	}

	var resp signInResponse
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", payload, &resp); err != nil {
		return nil, nil, err
	}

	session := &service.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}

	return toIdentity(&resp.User), session, nil
}

// GetUser resolves the identity behind an access token.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*service.Identity, error) {
	var user identityUser
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil, &user); err != nil {
		return nil, err
	}

	return toIdentity(&user), nil
}

// UpdateUserMetadata merges fields into the identity's metadata blob.
func (c *Client) UpdateUserMetadata(ctx context.Context, accessToken string, metadata service.IdentityMetadata) error {
	payload := map[string]any{"data": metadata}

	return c.do(ctx, http.MethodPut, "/auth/v1/user", accessToken, payload, nil)
}

// UpdatePassword sets a new password for the authenticated identity.
func (c *Client) UpdatePassword(ctx context.Context, accessToken, newPassword string) error {
	payload := map[string]any{"password": newPassword}

	return c.do(ctx, http.MethodPut, "/auth/v1/user", accessToken, payload, nil)
}

// SignOut invalidates the session(s) behind the token.
func (c *Client) SignOut(ctx context.Context, accessToken string, scope service.SignOutScope) error {
	path := "/auth/v1/logout"
	if scope != "" {
		path += "?scope=" + url.QueryEscape(string(scope))
	}

	return c.do(ctx, http.MethodPost, path, accessToken, nil, nil)
}

// AdminSignOutUser revokes every session of the given user through the
// admin API. The configured key must be a service-role key for this call.
func (c *Client) AdminSignOutUser(ctx context.Context, userID uuid.UUID) error {
	path := "/auth/v1/admin/users/" + userID.String() + "/logout"

	return c.do(ctx, http.MethodPost, path, c.apiKey, nil, nil)
}

// ResetPasswordForEmail triggers the hosted password-recovery email. The
// redirect target lands the user on the in-app reset form.
func (c *Client) ResetPasswordForEmail(ctx context.Context, email, redirectTo string) error {
	path := "/auth/v1/recover"
	if redirectTo != "" {
		path += "?redirect_to=" + url.QueryEscape(redirectTo)
	}
	payload := map[string]any{"email": email}

	return c.do(ctx, http.MethodPost, path, "", payload, nil)
}

// do performs one request against the identity API. Non-2xx responses are
// decoded into a classified *service.IdentityError; transport failures are
// returned wrapped so callers can classify them as connectivity problems.
func (c *Client) do(ctx context.Context, method, path, accessToken string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "failed to encode identity request")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to build identity request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "identity request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read identity response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errBody identityErrorBody
		// A non-JSON body still yields a usable error via StatusText.
		_ = json.Unmarshal(raw, &errBody)

		return errors.WithStack(errBody.toError(resp.StatusCode))
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "failed to decode identity response")
	}

	return nil
}

func toIdentity(user *identityUser) *service.Identity {
	return &service.Identity{
		ID:       user.ID,
		Email:    user.Email,
		Metadata: user.UserMetadata,
	}
}
