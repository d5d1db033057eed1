package aurora

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"helio_sync/internal/config"
	"helio_sync/internal/usecase/interfaces"
)

var ErrAuroraNotConfigured = errors.New("missing AURORA_API_KEY or AURORA_TENANT_ID")

const defaultTimeout = 30 * time.Second

// Client calls the Aurora Solar REST API. Credentials are injected once at
// construction; nothing is read from the environment at call time. Fetches
// return the upstream status with the raw body — the use case decides what
// a non-200 means, and there are no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	tenantID   string
}

var _ interfaces.IDesignProvider = (*Client)(nil)

func NewClient(cfg config.Aurora) (*Client, error) {
	if cfg.APIKey == "" || cfg.TenantID == "" {
		log.Printf("[aurora][client] missing AURORA_API_KEY or AURORA_TENANT_ID")
		return nil, ErrAuroraNotConfigured
	}
	log.Printf("[aurora][client] initialized tenant_id=%s", cfg.TenantID)

	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		tenantID:   cfg.TenantID,
	}, nil
}

func (c *Client) FetchDesignSummary(ctx context.Context, designID string) (int, json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/tenants/%s/designs/%s/summary", c.tenantID, designID))
}

func (c *Client) FetchPricing(ctx context.Context, designID string) (int, json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("/tenants/%s/designs/%s/pricing", c.tenantID, designID))
}

func (c *Client) get(ctx context.Context, path string) (int, json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[aurora][client] GET %s failed err=%v", path, err)
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[aurora][client] GET %s body read failed status=%d err=%v", path, resp.StatusCode, err)
		return resp.StatusCode, nil, err
	}

	log.Printf("[aurora][client] GET %s status=%d body_len=%d", path, resp.StatusCode, len(body))
	return resp.StatusCode, body, nil
}
