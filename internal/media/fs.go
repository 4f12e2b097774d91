package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/Mahmoudyf96/EliteQuiz/config"
	"github.com/Mahmoudyf96/EliteQuiz/pkg/errors"
)

// FSUploader keeps files under a base directory and serves them through the
// configured public base URL.
type FSUploader struct {
	baseDir string
	baseURL string
}

func NewFSUploader(cfg config.MediaConfig) *FSUploader {
	return &FSUploader{
		baseDir: cfg.BaseDir,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

func (u *FSUploader) Upload(ctx context.Context, path string, data []byte) (string, error) {
	clean, err := u.cleanPath(path)
	if err != nil {
		return "", err
	}

	full := filepath.Join(u.baseDir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", errors.Wrap(errors.CodeInternal, "failed to create media directory", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", errors.Wrap(errors.CodeInternal, "failed to write media file", err)
	}

	return u.baseURL + "/" + clean, nil
}

func (u *FSUploader) DownloadURL(ctx context.Context, path string) (string, error) {
	clean, err := u.cleanPath(path)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(filepath.Join(u.baseDir, filepath.FromSlash(clean))); err != nil {
		return "", errors.NotFound("no media at " + clean)
	}
	return u.baseURL + "/" + clean, nil
}

// cleanPath rejects anything that would escape the base directory.
func (u *FSUploader) cleanPath(path string) (string, error) {
	clean := strings.TrimLeft(filepath.ToSlash(filepath.Clean("/"+path)), "/")
	if clean == "" || clean == "." {
		return "", errors.InvalidArg("media path is required")
	}
	return clean, nil
}
