package zoho

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"helio_sync/internal/config"
	"helio_sync/internal/domain/entities"
	"helio_sync/internal/usecase/interfaces"
)

var ErrZohoNotConfigured = errors.New("missing ZOHO_CLIENT_ID, ZOHO_CLIENT_SECRET or ZOHO_REFRESH_TOKEN")

const (
	defaultTimeout = 30 * time.Second

	installsModule  = "Installs"
	snapshotsModule = "Design_Snapshots"
)

// Client calls the Zoho CRM record APIs with an OAuth refresh-token grant.
// Credentials are injected once at construction; the only mutable state is
// the cached access token.
type Client struct {
	httpClient   *http.Client
	accountsURL  string
	apiDomain    string
	clientID     string
	clientSecret string
	refreshToken string

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

var _ interfaces.ICRMClient = (*Client)(nil)

func NewClient(cfg config.Zoho) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		log.Printf("[zoho][client] missing ZOHO_CLIENT_ID, ZOHO_CLIENT_SECRET or ZOHO_REFRESH_TOKEN")
		return nil, ErrZohoNotConfigured
	}
	log.Printf("[zoho][client] initialized api_domain=%s", cfg.APIDomain)

	return &Client{
		httpClient:   &http.Client{Timeout: defaultTimeout},
		accountsURL:  strings.TrimRight(cfg.AccountsURL, "/"),
		apiDomain:    strings.TrimRight(cfg.APIDomain, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		refreshToken: cfg.RefreshToken,
	}, nil
}

// FindInstallsByProjectID searches the Installs module by the Project_ID
// field. Zoho answers an empty search with 204 and no body; the status is
// passed through for the use case to classify.
func (c *Client) FindInstallsByProjectID(ctx context.Context, projectID string) (int, []entities.Install, error) {
	criteria := url.QueryEscape(fmt.Sprintf("(Project_ID:equals:%s)", projectID))
	endpoint := fmt.Sprintf("%s/crm/v2/%s/search?criteria=%s", c.apiDomain, installsModule, criteria)

	status, body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return status, nil, err
	}
	if status != http.StatusOK || len(body) == 0 {
		return status, nil, nil
	}

	var envelope struct {
		Data []entities.Install `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Printf("[zoho][client] install search decode failed project_id=%s err=%v", projectID, err)
		return status, nil, err
	}
	log.Printf("[zoho][client] install search project_id=%s matches=%d", projectID, len(envelope.Data))
	return status, envelope.Data, nil
}

// CreateSnapshot inserts one Design Snapshot record and returns the created
// record id.
func (c *Client) CreateSnapshot(ctx context.Context, snap entities.Snapshot) (int, string, error) {
	payload, err := json.Marshal(map[string]any{"data": []entities.Snapshot{snap}})
	if err != nil {
		return 0, "", err
	}

	endpoint := fmt.Sprintf("%s/crm/v2/%s", c.apiDomain, snapshotsModule)
	status, body, err := c.do(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return status, "", err
	}

	var envelope struct {
		Data []struct {
			Status  string `json:"status"`
			Details struct {
				ID string `json:"id"`
			} `json:"details"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Printf("[zoho][client] snapshot create decode failed status=%d err=%v", status, err)
		return status, "", err
	}

	createdID := ""
	if len(envelope.Data) > 0 {
		createdID = envelope.Data[0].Details.ID
	}
	log.Printf("[zoho][client] snapshot create status=%d created_id=%s", status, createdID)
	return status, createdID, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte) (int, []byte, error) {
	token, err := c.token(ctx)
	if err != nil {
		return 0, nil, err
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[zoho][client] %s %s failed err=%v", method, endpoint, err)
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}
