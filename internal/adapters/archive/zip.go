// Package archive implements zip extraction and creation with progress
// reporting.
package archive

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.seluk.ch/corekit/internal/core/domain"
	"go.seluk.ch/corekit/internal/engine/executor"
	"go.trai.ch/zerr"
)

// Zip reads and writes zip archives.
type Zip struct{}

// NewZip creates a new Zip.
func NewZip() *Zip {
	return &Zip{}
}

// Extract unpacks the archive at src into dst, reporting one progress
// update per entry. Entries that would escape dst are rejected.
// Cancellation is observed between entries.
func (z *Zip) Extract(ctx context.Context, src, dst string, update executor.UpdateFunc) error {
	reader, err := zip.OpenReader(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open archive"), "path", src)
	}
	defer reader.Close() //nolint:errcheck // Best effort close in defer

	if err := os.MkdirAll(dst, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create extraction directory")
	}

	total := len(reader.File)
	for i, entry := range reader.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		if update != nil {
			update(domain.NewProgress(entry.Name, i, total))
		}

		if err := z.extractEntry(entry, dst); err != nil {
			return err
		}
	}

	if update != nil {
		update(domain.NewProgress("done", total, total))
	}
	return nil
}

func (z *Zip) extractEntry(entry *zip.File, dst string) error {
	path, err := sanitizePath(dst, entry.Name)
	if err != nil {
		return err
	}

	if entry.FileInfo().IsDir() {
		if err := os.MkdirAll(path, 0o750); err != nil {
			return zerr.Wrap(err, "failed to create directory")
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory")
	}

	src, err := entry.Open()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open archive entry"), "entry", entry.Name)
	}
	defer src.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, entry.Mode()) //nolint:gosec // Path sanitized above
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", path)
	}

	if _, err := io.Copy(out, src); err != nil { //nolint:gosec // Archive comes from a trusted source
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to extract file"), "entry", entry.Name)
	}
	return out.Close()
}

// sanitizePath resolves an archive entry name below dst, rejecting
// absolute names and names that traverse out of dst.
func sanitizePath(dst, name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.New("archive entry escapes destination"), "entry", name)
	}
	return filepath.Join(dst, cleaned), nil
}

// Create writes all files under root into a new archive at dst, with
// forward-slash entry names relative to root. One progress update is
// reported per file. Cancellation is observed between entries.
func (z *Zip) Create(ctx context.Context, dst, root string, update executor.UpdateFunc) error {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to collect files"), "root", root)
	}

	out, err := os.Create(dst) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create archive"), "path", dst)
	}
	defer out.Close() //nolint:errcheck // Best effort close in defer

	writer := zip.NewWriter(out)
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			_ = writer.Close()
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			_ = writer.Close()
			return zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}
		if update != nil {
			update(domain.NewProgress(rel, i, len(paths)))
		}

		if err := z.addEntry(writer, path, filepath.ToSlash(rel)); err != nil {
			_ = writer.Close()
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return zerr.Wrap(err, "failed to finalize archive")
	}
	if update != nil {
		update(domain.NewProgress("done", len(paths), len(paths)))
	}
	return out.Close()
}

func (z *Zip) addEntry(writer *zip.Writer, path, name string) error {
	src, err := os.Open(path) //nolint:gosec // Path comes from the walked root
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer src.Close() //nolint:errcheck // Best effort close in defer

	entry, err := writer.Create(name)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create archive entry"), "entry", name)
	}
	if _, err := io.Copy(entry, src); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write archive entry"), "entry", name)
	}
	return nil
}
