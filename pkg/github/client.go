// Package github provides a minimal GitHub REST client for listing a user's
// starred repositories.
//
// The client requests the extended "star+json" representation so each raw
// entry carries a starred_at timestamp alongside the repository object.
// Entries are returned as raw JSON: shape detection and field extraction are
// the normalizer's job, not the transport's.
//
// There is deliberately no retry, no backoff, and no response caching: any
// non-success status aborts the entire fetch and the failure propagates as
// fatal to the caller. A mid-fetch failure discards all pages fetched so
// far, so a partial snapshot is never written downstream.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"

	apperrors "github.com/mhuels/starrecap/pkg/errors"
)

const (
	defaultBaseURL = "https://api.github.com"

	// perPage is the fixed page size for the starred-repositories endpoint.
	perPage = 100

	// acceptStarred requests the representation that wraps each repository
	// in {"starred_at": ..., "repo": {...}}.
	acceptStarred = "application/vnd.github.v3.star+json"
)

// Client provides access to the GitHub API for starred-repository retrieval.
type Client struct {
	http    *http.Client
	baseURL string
	logger  *log.Logger
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests (lower
// rate limits, but otherwise legal). When a token is given, every request
// carries it as a bearer authorization header via the oauth2 transport.
func NewClient(token string, logger *log.Logger) *Client {
	httpClient := &http.Client{}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	return &Client{
		http:    httpClient,
		baseURL: defaultBaseURL,
		logger:  logger,
	}
}

// ListStarred fetches the complete ordered sequence of raw starred-repository
// entries for username. The full set is materialized before returning; pages
// are requested one at a time in increasing order starting at page 1, and
// pagination terminates on the first empty page.
func (c *Client) ListStarred(ctx context.Context, username string) ([]json.RawMessage, error) {
	if username == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "username must not be empty")
	}

	var all []json.RawMessage
	for page := 1; ; page++ {
		entries, err := c.fetchPage(ctx, username, page)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			break
		}
		all = append(all, entries...)
		c.logger.Info("fetched page", "page", page, "total", len(all))
	}
	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, username string, page int) ([]json.RawMessage, error) {
	url := fmt.Sprintf("%s/users/%s/starred?page=%d&per_page=%d", c.baseURL, username, page, perPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "build request for page %d", page)
	}
	req.Header.Set("Accept", acceptStarred)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNetwork, err, "fetch starred page %d for %s", page, username)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode, username, page); err != nil {
		return nil, err
	}

	var entries []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNetwork, err, "decode starred page %d for %s", page, username)
	}
	return entries, nil
}

func checkStatus(code int, username string, page int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized:
		return apperrors.New(apperrors.ErrCodeUnauthorized, "github rejected credentials (status %d)", code)
	case code == http.StatusForbidden:
		return apperrors.New(apperrors.ErrCodeRateLimited, "github refused page %d (status %d, likely rate limited)", page, code)
	case code == http.StatusNotFound:
		return apperrors.New(apperrors.ErrCodeNotFound, "github user %s not found", username)
	default:
		return apperrors.New(apperrors.ErrCodeNetwork, "github returned status %d for page %d", code, page)
	}
}
