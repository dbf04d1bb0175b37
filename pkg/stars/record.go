// Package stars defines the canonical starred-repository record and the
// functions that produce and aggregate it.
//
// The GitHub API returns starred repositories in one of two shapes: a
// wrapper object {"starred_at": ..., "repo": {...}} when the extended
// representation was requested, or a bare repository object otherwise.
// [Normalize] folds both into one total-defaulted Record; everything
// downstream operates solely on Records and never re-inspects raw shape.
package stars

// Record is the normalized representation of one starred repository.
// Every field has a defined default so that absence in the raw source never
// produces a missing-field error. Records are immutable once normalized.
type Record struct {
	Name        string   `json:"name"`        // fully-qualified "owner/repo"
	Description *string  `json:"description"` // nil when the repo has none
	URL         string   `json:"url"`         // canonical web URL
	Language    *string  `json:"language"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	OpenIssues  int      `json:"open_issues"`
	Topics      []string `json:"topics"` // never nil; marshals as []
	CreatedAt   *string  `json:"created_at"`
	UpdatedAt   *string  `json:"updated_at"`
	StarredAt   *string  `json:"starred_at"` // only set by the wrapper shape
	Archived    bool     `json:"archived"`
	Owner       *string  `json:"owner"`
	OwnerType   *string  `json:"owner_type"`
	License     *string  `json:"license"` // display name, not SPDX identifier
	Homepage    *string  `json:"homepage"`
}
