// Package snapshot persists the normalized record set as a durable JSON
// document.
//
// A snapshot is created once per run and overwritten wholesale; there is no
// incremental merge with a prior snapshot. Export happens strictly after the
// entire fetch has completed, so a mid-fetch failure never leaves a partial
// document behind.
package snapshot

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/mhuels/starrecap/pkg/errors"
	"github.com/mhuels/starrecap/pkg/stars"
)

// Document is the persisted snapshot: export metadata plus every canonical
// record in original fetch order (never re-sorted).
type Document struct {
	ExportedAt   string         `json:"exported_at"`
	TotalCount   int            `json:"total_count"`
	Repositories []stars.Record `json:"repositories"`
}

// New builds a Document from records with exported_at set from now.
func New(records []stars.Record, now time.Time) *Document {
	if records == nil {
		records = []stars.Record{}
	}
	return &Document{
		ExportedAt:   now.Format(time.RFC3339),
		TotalCount:   len(records),
		Repositories: records,
	}
}

// Write encodes the document as indented UTF-8 JSON to w. HTML escaping is
// disabled so non-ASCII characters (descriptions, topics) stay literal.
func (d *Document) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeExportFailed, err, "encode snapshot")
	}
	return nil
}

// Export builds a Document from records and writes it to path, replacing any
// previous snapshot. The write goes to a uniquely named temp file in the
// destination directory and is renamed over the target, so a failed write
// never clobbers an existing snapshot. The constructed Document is returned
// for the aggregation and rendering stages.
func Export(records []stars.Record, path string, now time.Time) (*Document, error) {
	doc := New(records, now)

	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.Create(tmp)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeExportFailed, err, "create %s", tmp)
	}
	if err := doc.Write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return nil, err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return nil, apperrors.Wrap(apperrors.ErrCodeExportFailed, err, "close %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return nil, apperrors.Wrap(apperrors.ErrCodeExportFailed, err, "rename %s to %s", tmp, path)
	}
	return doc, nil
}

// Read loads a previously exported snapshot from path.
func Read(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "snapshot %s does not exist", path)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	var doc Document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode snapshot %s", path)
	}
	if doc.Repositories == nil {
		doc.Repositories = []stars.Record{}
	}
	return &doc, nil
}
