// Package client is a Go client for the dashboard API. It holds the current
// session: the token is attached to every outgoing call, any 401 response
// clears the session, and IsAdmin is an advisory predicate for callers that
// want to hide privileged actions. The server-side gate stays authoritative.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ecomdash/product-dashboard/internal/models"
	"github.com/ecomdash/product-dashboard/internal/transport"
)

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	token string
	user  *transport.UserResponse
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Token returns the currently held session token, empty when logged out.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// IsAdmin reports whether the current user holds the admin role.
func (c *Client) IsAdmin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user != nil && c.user.Role == "admin"
}

func (c *Client) clearSession() {
	c.mu.Lock()
	c.token = ""
	c.user = nil
	c.mu.Unlock()
}

// Resume restores a stored token. The expiry is checked by local decoding
// only (no signature verification); the profile fetch proves the token to
// the server.
func (c *Client) Resume(ctx context.Context, token string) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fmt.Errorf("decode token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil || exp.Before(time.Now()) {
		return fmt.Errorf("token expired")
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	user, err := c.Me(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.user = user
	c.mu.Unlock()
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.clearSession()
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("api error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("api error (%d)", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) Register(ctx context.Context, req transport.RegisterRequest) (*transport.UserResponse, error) {
	var user transport.UserResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and stores the session token for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*transport.UserResponse, error) {
	var resp transport.LoginResponse
	req := transport.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.token = resp.Token
	c.user = &resp.User
	c.mu.Unlock()
	return &resp.User, nil
}

func (c *Client) Logout() {
	c.clearSession()
}

func (c *Client) Me(ctx context.Context) (*transport.UserResponse, error) {
	var user transport.UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Products(ctx context.Context, page, limit int, search string) (*transport.ProductListResponse, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if search != "" {
		q.Set("search", search)
	}

	var resp transport.ProductListResponse
	if err := c.do(ctx, http.MethodGet, "/api/products?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Product(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProduct(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	var p models.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id uint, req transport.ProductRequest) (*models.Product, error) {
	var p models.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil)
}

// ExportCSV fetches the product export as raw CSV bytes.
func (c *Client) ExportCSV(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products/export", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.clearSession()
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("export failed with status: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
