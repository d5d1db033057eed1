package zoho

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Refresh slightly before Zoho's stated expiry so an in-flight request
// never carries a token that dies mid-call.
const tokenExpirySlack = 2 * time.Minute

// token returns a valid access token, refreshing via the OAuth
// refresh-token grant when the cached one is absent or near expiry. The
// cache lives inside the client; events share it but hold no state of
// their own.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {c.refreshToken},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.accountsURL+"/oauth/v2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[zoho][token] refresh request failed err=%v", err)
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[zoho][token] refresh rejected status=%d body_len=%d", resp.StatusCode, len(body))
		return "", fmt.Errorf("zoho token refresh failed with status %d", resp.StatusCode)
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
		Error       string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if parsed.Error != "" || parsed.AccessToken == "" {
		log.Printf("[zoho][token] refresh returned error=%q", parsed.Error)
		return "", fmt.Errorf("zoho token refresh error: %s", parsed.Error)
	}

	c.accessToken = parsed.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(parsed.ExpiresIn)*time.Second - tokenExpirySlack)
	log.Printf("[zoho][token] refreshed expires_in=%ds", parsed.ExpiresIn)
	return c.accessToken, nil
}
