package dxt

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/rusq/fsadapter"

	"github.com/frostlab/sensormcp/internal/errortypes"
)

// Extension is the archive suffix for packed extensions.
const Extension = ".dxt"

// Pack archives the extension directory into a .dxt file and returns the
// archive path. The directory must contain a valid manifest. When output is
// empty the archive is written next to dir as <name>-<version>.dxt.
// Previously packed archives inside dir are skipped.
func Pack(dir, output string) (string, error) {
	m, err := Load(dir)
	if err != nil {
		return "", err
	}

	if output == "" {
		output = filepath.Join(filepath.Dir(dir), m.Name+"-"+m.Version+Extension)
	}

	absOutput, err := filepath.Abs(output)
	if err != nil {
		return "", errortypes.PackagingError(err, "failed to resolve output path")
	}

	zf, err := fsadapter.NewZipFile(output)
	if err != nil {
		return "", errortypes.PackagingError(err, "failed to create archive")
	}

	count := 0
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), Extension) {
			return nil
		}
		if abs, err := filepath.Abs(path); err == nil && abs == absOutput {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if err := addFile(zf, path, rel); err != nil {
			return err
		}
		count++
		return nil
	})
	if walkErr != nil {
		zf.Close()
		os.Remove(output)
		return "", errortypes.PackagingError(walkErr, "failed to archive extension files")
	}

	if err := zf.Close(); err != nil {
		return "", errortypes.PackagingError(err, "failed to finalize archive")
	}

	slog.Info("Packed extension", "archive", output, "files", count,
		"name", m.Name, "version", m.Version)
	return output, nil
}

// addFile copies one file into the archive under its relative path.
func addFile(zf fsadapter.FS, path, rel string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	// Zip entries use forward slashes on every platform.
	dst, err := zf.Create(filepath.ToSlash(rel))
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
