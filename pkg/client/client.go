// Package client is a typed Go client for the Rentbook API with a
// persistent, encrypted session.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rentbook/internal/billing"
	"rentbook/internal/models"
	"rentbook/internal/pagination"
)

const requestTimeout = 10 * time.Second

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to a Rentbook server. It is not safe for concurrent use;
// each goroutine should own its own Client.
type Client struct {
	baseURL string
	http    *http.Client
	store   SessionStore

	session *Session

	// onUnauthorized fires once per 401, after the session is cleared.
	onUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithUnauthorizedCallback registers a hook invoked whenever the server
// rejects the session. The session is already cleared when it runs.
func WithUnauthorizedCallback(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New creates a Client against baseURL using store for session persistence.
func New(baseURL string, store SessionStore, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		store:   store,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Bootstrap hydrates the in-memory session from the store. Only a complete
// session counts: a blob with a token but no profile (or the reverse) is
// treated as logged out.
func (c *Client) Bootstrap() error {
	session, err := c.store.Load()
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if session == nil || session.Token == "" || session.Profile.ID == 0 {
		c.session = nil
		return nil
	}
	c.session = session
	return nil
}

// LoggedIn reports whether the client holds a session.
func (c *Client) LoggedIn() bool {
	return c.session != nil
}

// Profile returns the logged-in identity, or nil.
func (c *Client) Profile() *Profile {
	if c.session == nil {
		return nil
	}
	p := c.session.Profile
	return &p
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type renterAuthRequest struct {
	PIN string `json:"pin_hash"`
}

type loginResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Type        int    `json:"type"`
	HouseID     uint   `json:"houseId"`
	AccessToken string `json:"accessToken"`
}

// AdminLogin authenticates as an admin and persists the session before
// returning, so a crash right after login does not lose it.
func (c *Client) AdminLogin(username, password string) error {
	var resp loginResponse
	err := c.do(http.MethodPost, "/api/v1/admin/login",
		adminLoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return err
	}
	return c.startSession(resp)
}

// RenterLogin authenticates with a renter PIN and persists the session.
func (c *Client) RenterLogin(pin string) error {
	var resp loginResponse
	err := c.do(http.MethodPost, "/api/v1/renter/auth", renterAuthRequest{PIN: pin}, &resp)
	if err != nil {
		return err
	}
	return c.startSession(resp)
}

func (c *Client) startSession(resp loginResponse) error {
	session := &Session{
		Token: resp.AccessToken,
		Profile: Profile{
			ID:      resp.ID,
			Name:    resp.Name,
			Type:    resp.Type,
			HouseID: resp.HouseID,
		},
	}
	if err := c.store.Save(session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	c.session = session
	return nil
}

// Logout clears the persisted and in-memory session.
func (c *Client) Logout() error {
	c.session = nil
	return c.store.Clear()
}

// Houses lists all houses (admin).
func (c *Client) Houses() ([]models.House, error) {
	var houses []models.House
	err := c.do(http.MethodGet, "/api/v1/houses", nil, &houses)
	return houses, err
}

// Renters lists all renters (admin).
func (c *Client) Renters() ([]models.Renter, error) {
	var renters []models.Renter
	err := c.do(http.MethodGet, "/api/v1/renters", nil, &renters)
	return renters, err
}

// Bills fetches one page of bills (admin).
func (c *Client) Bills(page, perPage int) (*pagination.Page[models.Bill], error) {
	path := fmt.Sprintf("/api/v1/bills?page=%d&per_page=%d", page, perPage)
	var result pagination.Page[models.Bill]
	if err := c.do(http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// HouseResources lists house id/name pairs; no session required.
func (c *Client) HouseResources() ([]models.HouseResource, error) {
	var resources []models.HouseResource
	err := c.do(http.MethodGet, "/api/v1/renter/auth/resource", nil, &resources)
	return resources, err
}

// RenterBills lists the logged-in renter's bills.
func (c *Client) RenterBills() ([]models.Bill, error) {
	var bills []models.Bill
	err := c.do(http.MethodGet, "/api/v1/renter/bills", nil, &bills)
	return bills, err
}

// RenterUsage lists the logged-in renter's consumption history.
func (c *Client) RenterUsage() ([]billing.UsagePoint, error) {
	var usage []billing.UsagePoint
	err := c.do(http.MethodGet, "/api/v1/renter/usage", nil, &usage)
	return usage, err
}

func (c *Client) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateSession()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// invalidateSession is the single path for dropping a rejected session:
// clear the store, clear memory, then notify.
func (c *Client) invalidateSession() {
	hadSession := c.session != nil
	c.session = nil
	_ = c.store.Clear()
	if hadSession && c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

func readErrorMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil || body.Message == "" {
		return "request failed"
	}
	return body.Message
}
