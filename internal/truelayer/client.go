// Package truelayer is a thin client for the TrueLayer open-banking API:
// the authorization-code token exchange and the bearer-authenticated data
// endpoints. The client secret is confined to this package and the config;
// it never appears in returned values, errors, or logs.
package truelayer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/foyerapp/foyer-backend/internal/domain"
)

const (
	// DefaultAuthURL is the sandbox identity provider base URL
	DefaultAuthURL = "https://auth.truelayer-sandbox.com"
	// DefaultAPIURL is the sandbox data API base URL
	DefaultAPIURL = "https://api.truelayer-sandbox.com"

	// requestTimeout bounds every outbound call; a timed-out attempt is
	// terminal, there are no retries.
	requestTimeout = 15 * time.Second

	// maxErrorBody caps how much of an upstream error body is carried in
	// APIError
	maxErrorBody = 4 << 10
)

// APIError is a non-2xx response from the provider. It carries the upstream
// status and a truncated copy of the provider's error body; request
// parameters (including credentials) are never part of it.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("truelayer: upstream status %d: %s", e.StatusCode, e.Body)
}

// Config holds the provider endpoints and the confidential client credentials.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	AuthURL      string
	APIURL       string
}

// Client implements domain.BankClient against the TrueLayer API
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a new Client with a bounded request timeout
func NewClient(cfg Config) *Client {
	if cfg.AuthURL == "" {
		cfg.AuthURL = DefaultAuthURL
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

var _ domain.BankClient = (*Client)(nil)

// ExchangeCode exchanges a one-time authorization code for an access token.
// The redirect_uri must exactly match the one used to obtain the code or the
// provider rejects the exchange.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("code", code)
	form.Set("redirect_uri", c.cfg.RedirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.AuthURL+"/connect/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", newAPIError(resp)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if body.AccessToken == "" {
		return "", domain.ErrMissingToken
	}
	return body.AccessToken, nil
}

// Accounts lists the accounts visible to the given access token
func (c *Client) Accounts(ctx context.Context, accessToken string) ([]domain.BankAccount, error) {
	var results []domain.BankAccount
	if err := c.getData(ctx, accessToken, "/data/v1/accounts", &results); err != nil {
		return nil, err
	}
	return results, nil
}

// AccountTransactions lists the transactions of a single account
func (c *Client) AccountTransactions(ctx context.Context, accessToken, accountID string) ([]domain.BankTransaction, error) {
	var results []domain.BankTransaction
	path := "/data/v1/accounts/" + url.PathEscape(accountID) + "/transactions"
	if err := c.getData(ctx, accessToken, path, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Transactions lists transactions across all accounts
func (c *Client) Transactions(ctx context.Context, accessToken string) ([]domain.BankTransaction, error) {
	var results []domain.BankTransaction
	if err := c.getData(ctx, accessToken, "/data/v1/transactions", &results); err != nil {
		return nil, err
	}
	return results, nil
}

// getData performs a bearer-authenticated GET against a data endpoint and
// decodes its {results: [...]} envelope into out.
func (c *Client) getData(ctx context.Context, accessToken, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.APIURL+path, nil)
	if err != nil {
		return fmt.Errorf("build data request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("data request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}

	envelope := struct {
		Results any `json:"results"`
	}{Results: out}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode data response %s: %w", path, err)
	}
	return nil
}

func newAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
