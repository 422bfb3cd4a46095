package dataset

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ArchiveURL is the remote tar.gz archive holding the catalog dataset
// files. Overridable for tests.
var ArchiveURL = "https://github.com/IOHprofiler/IOHClustering/raw/main/static.tar.gz"

// ErrRemoteFetch is returned when downloading or extracting the benchmark
// archive fails.
var ErrRemoteFetch = errors.New("remote fetch failed")

// Fetch populates dataDir with the benchmark dataset files from the remote
// archive. The directory's existence is the idempotency gate: if dataDir
// already exists, Fetch logs a warning and returns without touching the
// network. A nil logger disables logging.
func Fetch(dataDir string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if info, err := os.Stat(dataDir); err == nil && info.IsDir() {
		logger.Warn("benchmark data directory already exists, skipping download", "dir", dataDir)
		return nil
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteFetch, err)
	}

	logger.Info("downloading benchmark datasets", "url", ArchiveURL, "dir", dataDir)

	resp, err := http.Get(ArchiveURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %s", ErrRemoteFetch, resp.Status)
	}

	if err := extract(resp.Body, dataDir); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteFetch, err)
	}

	return nil
}

func extract(r io.Reader, dataDir string) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return err
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target, err := safeJoin(dataDir, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			if err := writeFile(target, tr); err != nil {
				return err
			}
		default:
			// Symlinks and other entry types are not expected in the
			// benchmark archive.
			return fmt.Errorf("unsupported archive entry %q (type %d)", header.Name, header.Typeflag)
		}
	}
}

// safeJoin joins name under dir, rejecting entries that would escape it.
func safeJoin(dir, name string) (string, error) {
	target := filepath.Join(dir, filepath.Clean(name))
	if target != dir && !strings.HasPrefix(target, dir+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes target directory", name)
	}
	return target, nil
}

func writeFile(path string, r io.Reader) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
