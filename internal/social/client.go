package social

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"shillscore/internal/model"
)

// ErrNotFound is returned when a profile lookup misses.
var ErrNotFound = errors.New("social: profile not found")

// Client is a minimal client for the social-content provider.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a content-provider client. An empty baseURL falls back
// to the hosted endpoint; the API key travels as an apiKey query parameter.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://api.usetapestry.dev/api/v1"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// profileEnvelope mirrors the provider's profile lookup response.
type profileEnvelope struct {
	WalletAddress string `json:"walletAddress"`
	Profile       struct {
		ID        string `json:"id"`
		Username  string `json:"username"`
		Bio       string `json:"bio"`
		Namespace string `json:"namespace"`
	} `json:"profile"`
}

// Profile looks up a social profile by id. Any non-success status is a
// lookup miss and maps to ErrNotFound; only transport faults surface as
// other errors.
func (c *Client) Profile(ctx context.Context, id string) (*model.Actor, error) {
	body, status, err := c.get(ctx, "/profiles/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, ErrNotFound
	}
	var env profileEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("social: decode profile %s: %w", id, err)
	}
	return &model.Actor{
		ID:        env.Profile.ID,
		Username:  env.Profile.Username,
		Bio:       env.Profile.Bio,
		Namespace: env.Profile.Namespace,
		Wallet:    env.WalletAddress,
	}, nil
}

// Content fetches a single post by id. The provider sometimes wraps the post
// under a "content" key; both shapes are handled.
func (c *Client) Content(ctx context.Context, id string) (*model.Post, error) {
	body, status, err := c.get(ctx, "/contents/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("social: content %s status %d", id, status)
	}
	var p model.Post
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("social: decode content %s: %w", id, err)
	}
	if p.ID == "" && len(p.Content) > 0 {
		var inner model.Post
		if err := json.Unmarshal(p.Content, &inner); err == nil && inner.ID != "" {
			return &inner, nil
		}
	}
	return &p, nil
}

// Contents lists posts for a profile through the generic listing endpoint.
// The provider returns either a bare array or an object with a "contents" key.
func (c *Client) Contents(ctx context.Context, profileID string, limit int) ([]model.Post, error) {
	q := url.Values{
		"profileId": {profileID},
		"limit":     {strconv.Itoa(limit)},
	}
	body, status, err := c.get(ctx, "/contents", q)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("social: contents for %s status %d", profileID, status)
	}
	var posts []model.Post
	if err := json.Unmarshal(body, &posts); err == nil {
		return posts, nil
	}
	var wrapped struct {
		Contents []model.Post `json:"contents"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("social: decode contents for %s: %w", profileID, err)
	}
	return wrapped.Contents, nil
}

// FindOrCreateProfile upserts a profile. Used by the seeding tool.
func (c *Client) FindOrCreateProfile(ctx context.Context, username, wallet, bio string) error {
	return c.postJSON(ctx, "/profiles/findOrCreate", map[string]any{
		"walletAddress": wallet,
		"username":      username,
		"bio":           bio,
		"blockchain":    "SOLANA",
		"execution":     "FAST_UNCONFIRMED",
	})
}

// FindOrCreateContent upserts a post under the given profile. Used by the
// seeding tool.
func (c *Client) FindOrCreateContent(ctx context.Context, id, profileID, content string) error {
	return c.postJSON(ctx, "/contents/findOrCreate", map[string]any{
		"id":        id,
		"profileId": profileID,
		"properties": []map[string]string{
			{"key": "content", "value": content},
			{"key": "contentType", "value": "text"},
		},
		"blockchain": "SOLANA",
		"execution":  "FAST_UNCONFIRMED",
	})
}

func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, int, error) {
	if q == nil {
		q = url.Values{}
	}
	q.Set("apiKey", c.apiKey)
	endpoint := c.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("social: %s: %w", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("social: read %s: %w", path, err)
	}
	return body, resp.StatusCode, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	endpoint := c.baseURL + path + "?apiKey=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("social: %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("social: %s status %d", path, resp.StatusCode)
	}
	return nil
}
