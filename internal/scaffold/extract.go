package scaffold

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Soft-wa-re/forge-loop/internal/logging"
)

// ExtractZip extracts a zip archive into dest and returns the number of
// files written. When every entry lives under a single top-level directory
// (the layout GitHub gives release source bundles), that directory is
// flattened away so the template lands directly in dest.
func ExtractZip(src, dest string) (int, error) {
	reader, err := zip.OpenReader(src)
	if err != nil {
		return 0, fmt.Errorf("opening archive %s: %w", src, err)
	}
	defer reader.Close()

	prefix := commonTopLevelDir(reader.File)
	if prefix != "" {
		logging.Debug("Flattening archive top-level directory", zap.String("dir", prefix))
	}

	files := 0
	for _, entry := range reader.File {
		name := strings.TrimPrefix(entry.Name, prefix)
		if name == "" {
			continue
		}

		target, err := securePath(dest, name)
		if err != nil {
			return files, err
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return files, fmt.Errorf("creating directory %s: %w", target, err)
			}
			continue
		}

		if err := extractFile(entry, target); err != nil {
			return files, err
		}
		files++
	}

	return files, nil
}

// commonTopLevelDir returns the single directory prefix (with trailing
// slash) shared by every archive entry, or "" when entries are not all
// under one directory.
func commonTopLevelDir(entries []*zip.File) string {
	var prefix string
	for _, entry := range entries {
		top, _, found := strings.Cut(entry.Name, "/")
		if !found {
			return ""
		}
		if prefix == "" {
			prefix = top
		} else if top != prefix {
			return ""
		}
	}
	// Never flatten a dot prefix; those entries must reach the path
	// escape check instead.
	if prefix == "" || prefix == "." || prefix == ".." {
		return ""
	}
	return prefix + "/"
}

// securePath joins an archive entry name onto dest, rejecting entries that
// would escape it.
func securePath(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %s escapes destination", name)
	}
	return target, nil
}

// extractFile writes one archive entry to disk, preserving its mode so
// helper scripts stay executable.
func extractFile(entry *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", target, err)
	}

	in, err := entry.Open()
	if err != nil {
		return fmt.Errorf("opening archive entry %s: %w", entry.Name, err)
	}
	defer in.Close()

	mode := entry.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}

	_, err = io.Copy(out, in)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}
