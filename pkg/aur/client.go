// Package aur queries the Arch User Repository RPC interface.
//
// The client answers one question for the rest of the system: does a named
// package exist in the AUR, and if so what does it declare? Responses are
// cached through a pluggable cache backend and transient failures are
// retried with exponential backoff.
package aur

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/aurum-pm/aurum/pkg/cache"
	"github.com/aurum-pm/aurum/pkg/errors"
)

const requestTimeout = 30 * time.Second

// Client provides access to the AUR RPC v5 API.
// It handles HTTP requests with caching and automatic retries.
type Client struct {
	http    *http.Client
	cache   cache.Cache
	baseURL string
	ttl     time.Duration
}

// NewClient creates an AUR client.
//
// Parameters:
//   - baseURL: RPC endpoint base, e.g. "https://aur.archlinux.org/rpc"
//   - backend: cache backend for responses (use cache.NewNullCache() for none)
//   - ttl: how long responses stay cached
func NewClient(baseURL string, backend cache.Cache, ttl time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: requestTimeout},
		cache:   backend,
		baseURL: baseURL,
		ttl:     ttl,
	}
}

// Info retrieves metadata for a single package.
//
// If refresh is true the cache is bypassed and a fresh API call is made.
//
// Returns:
//   - a populated Package on success
//   - an error with code [errors.ErrCodePackageNotFound] if the AUR has no
//     record of the name
//   - an error with code [errors.ErrCodeNetwork] for HTTP failures
func (c *Client) Info(ctx context.Context, name string, refresh bool) (*Package, error) {
	key := "info:" + name

	var pkg Package
	if !refresh {
		if data, ok, _ := c.cache.Get(ctx, key); ok {
			if err := json.Unmarshal(data, &pkg); err == nil {
				return &pkg, nil
			}
		}
	}

	err := cache.RetryWithBackoff(ctx, func() error {
		return c.fetch(ctx, name, &pkg)
	})
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(&pkg); err == nil {
		_ = c.cache.Set(ctx, key, data, c.ttl)
	}
	return &pkg, nil
}

func (c *Client) fetch(ctx context.Context, name string, pkg *Package) error {
	u := fmt.Sprintf("%s/?v=5&type=info&arg[]=%s", c.baseURL, url.QueryEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return cache.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "query aur for %s", name))
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return err
	}

	var data apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "decode aur response for %s", name)
	}
	if data.Type == "error" {
		return errors.New(errors.ErrCodeNetwork, "aur rpc error: %s", data.Error)
	}
	if data.ResultCount == 0 || len(data.Results) == 0 {
		return errors.New(errors.ErrCodePackageNotFound, "package not in AUR: %s", name)
	}

	r := data.Results[0]
	*pkg = Package{
		Name:         r.Name,
		Version:      r.Version,
		Description:  r.Description,
		Maintainer:   r.Maintainer,
		URL:          r.URL,
		Depends:      r.Depends,
		MakeDepends:  r.MakeDepends,
		OutOfDate:    r.OutOfDate != nil,
		NumVotes:     r.NumVotes,
		LastModified: r.LastModified,
	}
	return nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code >= 500:
		return cache.Retryable(errors.New(errors.ErrCodeNetwork, "aur rpc status %d", code))
	default:
		return errors.New(errors.ErrCodeNetwork, "aur rpc status %d", code)
	}
}
