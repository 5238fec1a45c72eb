package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"shillscore/internal/model"
)

// Client is a minimal client for the blockchain-transaction provider.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a transaction-provider client. An empty baseURL falls
// back to the hosted endpoint; the API key travels as an api-key query
// parameter.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://api.helius.xyz/v0"
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

// Transactions fetches the most recent transactions for a wallet,
// newest first.
func (c *Client) Transactions(ctx context.Context, wallet string, limit int) ([]model.Transaction, error) {
	q := url.Values{
		"api-key": {c.apiKey},
		"limit":   {strconv.Itoa(limit)},
	}
	endpoint := fmt.Sprintf("%s/addresses/%s/transactions?%s", c.baseURL, url.PathEscape(wallet), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chain: transactions for %s: %w", wallet, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("chain: transactions for %s status %d", wallet, resp.StatusCode)
	}
	var txs []model.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&txs); err != nil {
		return nil, fmt.Errorf("chain: decode transactions for %s: %w", wallet, err)
	}
	return txs, nil
}
