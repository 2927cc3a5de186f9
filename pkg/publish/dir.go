package publish

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vango-dev/hyperflex/internal/errors"
)

// DirPublisher writes rendered documents below a local directory.
type DirPublisher struct {
	dir string
}

// NewDirPublisher creates the directory if needed.
func NewDirPublisher(dir string) (*DirPublisher, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("E030").WithDetail(err.Error()).Wrap(err)
	}
	return &DirPublisher{dir: dir}, nil
}

// Publish writes body to dir/key, creating parent directories, and
// returns the file path. The file is written to a temporary name first
// and renamed into place.
func (p *DirPublisher) Publish(ctx context.Context, key string, body []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := validateKey(key); err != nil {
		return "", err
	}

	path := filepath.Join(p.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.New("E030").WithDetail(err.Error()).Wrap(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".publish-*")
	if err != nil {
		return "", errors.New("E030").WithDetail(err.Error()).Wrap(err)
	}
	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", errors.New("E030").WithDetail(err.Error()).Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", errors.New("E030").WithDetail(err.Error()).Wrap(err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return "", errors.New("E030").WithDetail(err.Error()).Wrap(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", errors.New("E030").WithDetail(err.Error()).Wrap(err)
	}
	return path, nil
}
