package stars

import "encoding/json"

// rawWrapper probes for the extended star representation. When the "repo"
// key is present the entry is the wrapper shape and StarredAt is its
// sibling timestamp; otherwise the whole entry is the repository object.
type rawWrapper struct {
	Repo      json.RawMessage `json:"repo"`
	StarredAt *string         `json:"starred_at"`
}

// rawRepo holds the repository fields we extract. Pointer-typed fields
// distinguish "absent or null" from real values, so defaulting falls out of
// the decode rather than per-field presence checks.
type rawRepo struct {
	FullName    string   `json:"full_name"`
	Description *string  `json:"description"`
	HTMLURL     string   `json:"html_url"`
	Language    *string  `json:"language"`
	Stars       int      `json:"stargazers_count"`
	Forks       int      `json:"forks_count"`
	OpenIssues  int      `json:"open_issues_count"`
	Topics      []string `json:"topics"`
	CreatedAt   *string  `json:"created_at"`
	UpdatedAt   *string  `json:"updated_at"`
	Archived    bool     `json:"archived"`
	Homepage    *string  `json:"homepage"`
	Owner       *struct {
		Login *string `json:"login"`
		Type  *string `json:"type"`
	} `json:"owner"`
	License *struct {
		Name *string `json:"name"`
	} `json:"license"`
}

// Normalize maps one raw starred-repository entry to a Record. It is total:
// missing optional fields take their documented defaults and no error is
// ever returned. Name and URL presence is a fetch-level guarantee from the
// API; undecodable input degrades to a zero Record rather than failing.
func Normalize(raw json.RawMessage) Record {
	var wrapper rawWrapper
	_ = json.Unmarshal(raw, &wrapper)

	src := raw
	var starredAt *string
	if wrapper.Repo != nil {
		src = wrapper.Repo
		starredAt = wrapper.StarredAt
	}

	var repo rawRepo
	_ = json.Unmarshal(src, &repo)

	rec := Record{
		Name:        repo.FullName,
		Description: repo.Description,
		URL:         repo.HTMLURL,
		Language:    repo.Language,
		Stars:       repo.Stars,
		Forks:       repo.Forks,
		OpenIssues:  repo.OpenIssues,
		Topics:      repo.Topics,
		CreatedAt:   repo.CreatedAt,
		UpdatedAt:   repo.UpdatedAt,
		StarredAt:   starredAt,
		Archived:    repo.Archived,
		Homepage:    repo.Homepage,
	}
	if rec.Topics == nil {
		rec.Topics = []string{}
	}
	if repo.Owner != nil {
		rec.Owner = repo.Owner.Login
		rec.OwnerType = repo.Owner.Type
	}
	if repo.License != nil {
		rec.License = repo.License.Name
	}
	return rec
}

// NormalizeAll maps every raw entry to a Record, preserving fetch order.
func NormalizeAll(raw []json.RawMessage) []Record {
	records := make([]Record, len(raw))
	for i, r := range raw {
		records[i] = Normalize(r)
	}
	return records
}
