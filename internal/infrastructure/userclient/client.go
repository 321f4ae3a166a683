// Package userclient talks JSON over HTTP to the external user-identity
// service. Only two read operations exist; this service never writes
// user data.
package userclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"midas_family_server/internal/config"
	"midas_family_server/pkg/errorx"
)

// Client implements UserService against a base URL such as
// "http://user-service:8000/api/User".
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a Client from config. No retries; a failed call
// surfaces to the caller.
func NewClient(cfg *config.UserServiceConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetUserById fetches a user by id. Returns (nil, nil) when the user
// service reports 404.
func (c *Client) GetUserById(ctx context.Context, id uint64) (*UserProfile, error) {
	return c.getUser(ctx, c.baseURL+"/"+strconv.FormatUint(id, 10))
}

// GetUserByEmail fetches a user by email. Returns (nil, nil) on 404.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*UserProfile, error) {
	return c.getUser(ctx, c.baseURL+"/email/"+url.PathEscape(email))
}

func (c *Client) getUser(ctx context.Context, requestURL string) (*UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "build user service request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "call user service")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var profile UserProfile
		if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
			return nil, errorx.Wrap(err, errorx.CodeServerBusy, "decode user service response")
		}
		return &profile, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, errorx.Wrap(
			fmt.Errorf("user service returned status %d", resp.StatusCode),
			errorx.CodeServerBusy, "call user service")
	}
}
