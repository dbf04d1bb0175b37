// Package pkg provides the core libraries for starrecap.
//
// # Overview
//
// Starrecap fetches the repositories a GitHub user has starred, writes them
// to a JSON snapshot, and renders a terminal recap report. The pkg directory
// is organized into the stages of that pipeline:
//
//  1. [github] - GitHub REST client (paginated starred-repo fetch)
//  2. [stars] - Normalization and aggregation of repository records
//  3. [snapshot] - Snapshot document format with atomic file export
//  4. [report] - Terminal report rendering and display-width helpers
//  5. [updater] - Ollama model update helper
//
// # Architecture
//
// The typical data flow:
//
//	GitHub REST API
//	       ↓
//	  [github] package (fetch raw starred pages)
//	       ↓
//	  [stars] package (normalize + aggregate)
//	       ↓
//	  [snapshot] package (atomic JSON export)
//	       ↓
//	  [report] package (terminal panels)
//
// # Quick Start
//
// Fetch, export, and render a recap:
//
//	import (
//	    "context"
//	    "os"
//	    "time"
//
//	    "github.com/mhuels/starrecap/pkg/github"
//	    "github.com/mhuels/starrecap/pkg/report"
//	    "github.com/mhuels/starrecap/pkg/snapshot"
//	    "github.com/mhuels/starrecap/pkg/stars"
//	)
//
//	client := github.NewClient(os.Getenv("GITHUB_TOKEN"), logger)
//	raw, _ := client.ListStarred(context.Background(), "octocat")
//	records := stars.NormalizeAll(raw)
//	doc, _ := snapshot.Export(records, "starred_repos.json", time.Now())
//	for _, line := range report.Render(doc) {
//	    fmt.Println(line)
//	}
//
// # Main Packages
//
// [github] - Minimal authenticated REST client. Pages through the starred
// endpoint with the star+json accept header and fails fast on any non-2xx
// response; there is no retry or partial result.
//
// [stars] - Record normalization tolerant of both the wrapper shape
// (repo + starred_at) and bare repository objects, plus histograms,
// sort orders, and summary statistics over the normalized records.
//
// [snapshot] - The exported document (exported_at, total_count,
// repositories). Writes are atomic: a uuid-suffixed temp file is written
// first and then renamed over the target.
//
// [report] - Fixed-width terminal panels (header, languages, popular,
// recently updated, topics, stats, full listing) built on a display-width
// heuristic that treats emoji and East-Asian wide runes as two columns.
//
// [updater] - Compares locally installed Ollama models against the public
// library listing and pulls the missing ones, appending a timestamped
// entry to an update log.
//
// # Shared Infrastructure
//
// [config] - Environment and .env configuration via viper.
//
// [errors] - Coded errors (INVALID_INPUT, NETWORK_ERROR, RATE_LIMITED, ...)
// with wrapping and user-facing messages.
//
// [buildinfo] - Version metadata injected at build time via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/report/...   # Specific package
//
// [github]: https://pkg.go.dev/github.com/mhuels/starrecap/pkg/github
// [stars]: https://pkg.go.dev/github.com/mhuels/starrecap/pkg/stars
// [snapshot]: https://pkg.go.dev/github.com/mhuels/starrecap/pkg/snapshot
// [report]: https://pkg.go.dev/github.com/mhuels/starrecap/pkg/report
// [updater]: https://pkg.go.dev/github.com/mhuels/starrecap/pkg/updater
// [config]: https://pkg.go.dev/github.com/mhuels/starrecap/pkg/config
// [errors]: https://pkg.go.dev/github.com/mhuels/starrecap/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/mhuels/starrecap/pkg/buildinfo
package pkg
