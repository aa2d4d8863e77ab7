package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// RESTClient talks JSON over HTTP to the identity backend and the catalog
// endpoint. No timeouts or retries are applied here: the injected
// http.Client's own defaults govern stalled calls.
type RESTClient struct {
	backendURL string
	catalogURL string
	httpClient *http.Client
}

// NewRESTClient returns a client for the given base URLs, e.g.
// "http://127.0.0.1:8080" and "https://fakestoreapi.com". A nil httpClient
// falls back to http.DefaultClient.
func NewRESTClient(backendURL, catalogURL string, httpClient *http.Client) *RESTClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RESTClient{
		backendURL: backendURL,
		catalogURL: catalogURL,
		httpClient: httpClient,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *RESTClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var result AuthResult
	err := c.postJSON(ctx, c.backendURL+"/api/auth/login", loginRequest{Email: email, Password: password}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *RESTClient) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	var result AuthResult
	err := c.postJSON(ctx, c.backendURL+"/api/auth/register", registerRequest{Name: name, Email: email, Password: password}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *RESTClient) Products(ctx context.Context) ([]CatalogProduct, error) {
	var result []CatalogProduct
	if err := c.getJSON(ctx, c.catalogURL+"/products", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *RESTClient) ProductByID(ctx context.Context, id int64) (*CatalogProduct, error) {
	var result CatalogProduct
	if err := c.getJSON(ctx, fmt.Sprintf("%s/products/%d", c.catalogURL, id), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *RESTClient) Categories(ctx context.Context) ([]string, error) {
	var result []string
	if err := c.getJSON(ctx, c.catalogURL+"/products/categories", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *RESTClient) ProductsByCategory(ctx context.Context, category string) ([]CatalogProduct, error) {
	var result []CatalogProduct
	u := c.catalogURL + "/products/category/" + url.PathEscape(category)
	if err := c.getJSON(ctx, u, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *RESTClient) postJSON(ctx context.Context, u string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *RESTClient) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(req, out)
}

func (c *RESTClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: unexpected status %s", ErrUnavailable, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: bad response body: %v", ErrUnavailable, err)
	}
	return nil
}
