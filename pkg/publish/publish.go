package publish

import (
	"context"
	"strings"

	"github.com/vango-dev/hyperflex/internal/errors"
)

// Publisher stores a rendered document under a key and returns where it
// was written.
type Publisher interface {
	Publish(ctx context.Context, key string, body []byte) (string, error)
}

// validateKey rejects keys that are empty or escape the publish root.
func validateKey(key string) error {
	if key == "" {
		return errors.New("E001").WithDetail("Publish: `key` should not be empty")
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return errors.New("E001").WithDetailf("Publish: `key` should not contain '..', %q given", key)
		}
	}
	return nil
}
