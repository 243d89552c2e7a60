// Package ynab implements the budget data source against the YNAB v1 HTTP
// API. It is the only place in the system that performs network I/O: it
// fetches the endpoints that make up a snapshot concurrently, decodes them,
// and hands the engine one immutable, internally consistent snapshot. Every
// failure surfaces as a DataFetchError with the cause wrapped.
package ynab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"

	"github.com/ynsight/ynsight/internal/common"
	"github.com/ynsight/ynsight/internal/model"
)

// DefaultBaseURL is the production YNAB API endpoint.
const DefaultBaseURL = "https://api.ynab.com/v1"

// Options configures a Client.
type Options struct {
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
	// CacheTTL bounds how long raw responses are reused; zero disables
	// the in-memory cache.
	CacheTTL time.Duration
	// Retry tunes transient-failure retry behavior.
	Retry common.RetryOptions
}

// Client fetches budget snapshots from the YNAB API. It is safe for
// concurrent use; the oauth2 transport injects the bearer token into every
// request.
type Client struct {
	httpClient *http.Client
	cache      *responseCache
	baseURL    string
	retry      common.RetryOptions
}

// NewClient creates a Client authenticating with the given personal access
// token.
func NewClient(token string, opts Options) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("YNAB API token is required")
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), source)
	httpClient.Timeout = 30 * time.Second

	return &Client{
		httpClient: httpClient,
		cache:      newResponseCache(opts.CacheTTL),
		baseURL:    baseURL,
		retry:      opts.Retry,
	}, nil
}

// FetchSnapshot performs one atomic snapshot read: budget metadata,
// accounts, categories, payees, and transactions fetched concurrently and
// assembled into a single consistent snapshot.
func (c *Client) FetchSnapshot(ctx context.Context, budgetID string) (*model.Snapshot, error) {
	if budgetID == "" {
		return nil, common.NewError(common.KindDataFetch, "budget id is required")
	}

	var (
		budget       budgetEnvelope
		accounts     accountsEnvelope
		categories   categoriesEnvelope
		payees       payeesEnvelope
		transactions transactionsEnvelope
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(gctx, "/budgets/"+budgetID, &budget)
	})
	g.Go(func() error {
		return c.getJSON(gctx, "/budgets/"+budgetID+"/accounts", &accounts)
	})
	g.Go(func() error {
		return c.getJSON(gctx, "/budgets/"+budgetID+"/categories", &categories)
	})
	g.Go(func() error {
		return c.getJSON(gctx, "/budgets/"+budgetID+"/payees", &payees)
	})
	g.Go(func() error {
		return c.getJSON(gctx, "/budgets/"+budgetID+"/transactions", &transactions)
	})
	if err := g.Wait(); err != nil {
		if common.KindOf(err) != "" {
			return nil, err
		}
		return nil, common.WrapError(common.KindDataFetch, err, "fetching budget %s", budgetID)
	}

	snapshot, err := assemble(
		budget.Data.Budget,
		accounts.Data.Accounts,
		categories.Data.CategoryGroups,
		payees.Data.Payees,
		transactions.Data.Transactions,
	)
	if err != nil {
		return nil, common.WrapError(common.KindDataFetch, err, "decoding budget %s", budgetID)
	}
	return snapshot, nil
}

// ClearCache drops any cached responses, forcing the next fetch to hit the
// API.
func (c *Client) ClearCache() {
	c.cache.clear()
}

// getJSON performs an authenticated GET against the API, consulting the
// response cache first and retrying transient failures with backoff.
func (c *Client) getJSON(ctx context.Context, path string, into any) error {
	if body, ok := c.cache.get(path); ok {
		if err := json.Unmarshal(body, into); err != nil {
			return common.WrapError(common.KindDataFetch, err, "decoding cached response for %s", path)
		}
		return nil
	}

	var body []byte
	err := common.WithRetry(ctx, func() error {
		var reqErr error
		body, reqErr = c.get(ctx, path)
		return reqErr
	}, c.retry)
	if err != nil {
		return common.WrapError(common.KindDataFetch, err, "GET %s", path)
	}

	if err := json.Unmarshal(body, into); err != nil {
		return common.WrapError(common.KindDataFetch, err, "decoding response for %s", path)
	}

	c.cache.set(path, body)
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &common.RetryableError{Err: err, Retryable: false}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("HTTP %d for %s", resp.StatusCode, path)
		// Rate limits and server errors are worth retrying; other
		// client errors are not.
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, &common.RetryableError{Err: err, Retryable: retryable}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return body, nil
}
