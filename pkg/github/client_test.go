package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	apperrors "github.com/mhuels/starrecap/pkg/errors"
)

func TestListStarred(t *testing.T) {
	pages := map[string]string{
		"1": `[{"starred_at":"2024-01-01T00:00:00Z","repo":{"full_name":"a/b","html_url":"https://x"}},
		      {"starred_at":"2024-01-02T00:00:00Z","repo":{"full_name":"c/d","html_url":"https://y"}}]`,
		"2": `[{"starred_at":"2024-01-03T00:00:00Z","repo":{"full_name":"e/f","html_url":"https://z"}}]`,
		"3": `[]`,
	}

	var gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		if r.URL.Path != "/users/octocat/starred" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("per_page"); got != "100" {
			t.Errorf("per_page = %q, want %q", got, "100")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, pages[r.URL.Query().Get("page")])
	}))
	defer server.Close()

	c := testClient(server.URL)
	entries, err := c.ListStarred(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("ListStarred failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if gotAccept != acceptStarred {
		t.Errorf("Accept header = %q, want %q", gotAccept, acceptStarred)
	}

	// Fetch order must be preserved across pages.
	var first struct {
		Repo struct {
			FullName string `json:"full_name"`
		} `json:"repo"`
	}
	if err := json.Unmarshal(entries[2], &first); err != nil {
		t.Fatal(err)
	}
	if first.Repo.FullName != "e/f" {
		t.Errorf("entries[2] full_name = %q, want %q", first.Repo.FullName, "e/f")
	}
}

func TestListStarredEmptyUsername(t *testing.T) {
	c := testClient("http://unused")
	_, err := c.ListStarred(context.Background(), "")
	if !apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
		t.Errorf("got %v, want INVALID_INPUT", err)
	}
}

func TestListStarredStatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   apperrors.Code
	}{
		{"unauthorized", http.StatusUnauthorized, apperrors.ErrCodeUnauthorized},
		{"rate limited", http.StatusForbidden, apperrors.ErrCodeRateLimited},
		{"user not found", http.StatusNotFound, apperrors.ErrCodeNotFound},
		{"server error", http.StatusInternalServerError, apperrors.ErrCodeNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			c := testClient(server.URL)
			entries, err := c.ListStarred(context.Background(), "octocat")
			if !apperrors.Is(err, tt.code) {
				t.Errorf("got %v, want code %s", err, tt.code)
			}
			if entries != nil {
				t.Errorf("got %d entries on failure, want none", len(entries))
			}
		})
	}
}

// A failure on a later page must discard everything fetched so far.
func TestListStarredMidFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, `[{"full_name":"a/b","html_url":"https://x"}]`)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := testClient(server.URL)
	entries, err := c.ListStarred(context.Background(), "octocat")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if entries != nil {
		t.Errorf("got %d entries, want none after mid-fetch failure", len(entries))
	}
}

func TestNewClientWithToken(t *testing.T) {
	c := NewClient("test-token", log.New(io.Discard))
	if c.http == nil {
		t.Error("expected http client to be initialized")
	}
	if c.baseURL != defaultBaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, defaultBaseURL)
	}
}

func testClient(serverURL string) *Client {
	return &Client{
		http:    &http.Client{},
		baseURL: serverURL,
		logger:  log.New(io.Discard),
	}
}
