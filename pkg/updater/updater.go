// Package updater keeps locally installed models in sync with a remote
// catalog.
//
// The flow is list local → list remote → set-diff → invoke the installer
// once per missing model, appending a timestamped line to a log file
// whenever updates were found. It shells out to the installer binary and is
// deliberately shallow: no state of its own beyond the log file.
package updater

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/mhuels/starrecap/pkg/errors"
)

// Defaults for the ollama installer.
const (
	DefaultCommand    = "ollama"
	DefaultLibraryURL = "https://ollama.ai/library"
	DefaultLogFile    = "ollama_update.log"
)

// Options configures an Updater.
type Options struct {
	Command    string // installer binary
	LibraryURL string // remote catalog listing
	LogFile    string // append-only update log
}

// Updater diffs installed models against a remote catalog and installs
// whatever is missing.
type Updater struct {
	opts   Options
	http   *http.Client
	logger *log.Logger

	// runCmd is swapped out in tests.
	runCmd func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// New creates an Updater, filling unset options with the ollama defaults.
func New(opts Options, logger *log.Logger) *Updater {
	if opts.Command == "" {
		opts.Command = DefaultCommand
	}
	if opts.LibraryURL == "" {
		opts.LibraryURL = DefaultLibraryURL
	}
	if opts.LogFile == "" {
		opts.LogFile = DefaultLogFile
	}
	return &Updater{
		opts:   opts,
		http:   &http.Client{},
		logger: logger,
		runCmd: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
}

// LocalModels lists installed model identifiers via `<command> list`,
// skipping the header line and taking the first column of each row.
func (u *Updater) LocalModels(ctx context.Context) ([]string, error) {
	out, err := u.runCmd(ctx, u.opts.Command, "list")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "list local models")
	}

	var models []string
	for i, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if i == 0 {
			continue // header row
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			models = append(models, fields[0])
		}
	}
	return models, nil
}

// RemoteModels fetches the catalog listing and returns the first token of
// every non-blank line.
func (u *Updater) RemoteModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.opts.LibraryURL, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "build catalog request")
	}
	resp, err := u.http.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNetwork, err, "fetch catalog %s", u.opts.LibraryURL)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.New(apperrors.ErrCodeNetwork, "catalog returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNetwork, err, "read catalog body")
	}

	var models []string
	for _, line := range strings.Split(strings.TrimSpace(string(body)), "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			models = append(models, fields[0])
		}
	}
	return models, nil
}

// Diff returns the models in remote that are absent from local, preserving
// remote order.
func Diff(remote, local []string) []string {
	have := make(map[string]bool, len(local))
	for _, m := range local {
		have[m] = true
	}
	var missing []string
	for _, m := range remote {
		if !have[m] {
			missing = append(missing, m)
		}
	}
	return missing
}

// Run performs one full update pass and returns the models that were
// installed. When updates are found, one timestamped line is appended to
// the log file before the installs begin.
func (u *Updater) Run(ctx context.Context) ([]string, error) {
	local, err := u.LocalModels(ctx)
	if err != nil {
		return nil, err
	}
	remote, err := u.RemoteModels(ctx)
	if err != nil {
		return nil, err
	}

	missing := Diff(remote, local)
	if len(missing) == 0 {
		u.logger.Info("all models up to date", "local", len(local))
		return nil, nil
	}

	u.logger.Info("updates available", "models", strings.Join(missing, ", "))
	if err := u.appendLog(missing); err != nil {
		return nil, err
	}

	for _, m := range missing {
		u.logger.Info("pulling model", "model", m)
		if _, err := u.runCmd(ctx, u.opts.Command, "pull", m); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "pull model %s", m)
		}
	}
	return missing, nil
}

func (u *Updater) appendLog(models []string) error {
	f, err := os.OpenFile(u.opts.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeExportFailed, err, "open log %s", u.opts.LogFile)
	}
	defer f.Close()

	now := time.Now().Format("2006-01-02 15:04:05")
	_, err = fmt.Fprintf(f, "%s: Updates installed for models: %s\n", now, strings.Join(models, ", "))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeExportFailed, err, "append log %s", u.opts.LogFile)
	}
	return nil
}
