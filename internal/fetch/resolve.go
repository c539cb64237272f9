package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsRemote reports whether sound names a remote URL rather than a
// local path.
func IsRemote(sound string) bool {
	return strings.HasPrefix(sound, "http://") || strings.HasPrefix(sound, "https://")
}

// Resolve turns a sound reference into an absolute, slash-normalized
// local path that exists at the time of the call. Remote references go
// through the download cache first. Missing local files fail with
// ErrFileNotFound.
func (c *Cache) Resolve(ctx context.Context, sound string) (string, error) {
	if IsRemote(sound) {
		local, err := c.GetOrFetch(ctx, sound)
		if err != nil {
			return "", err
		}
		sound = local
	}

	if _, err := os.Stat(sound); err != nil {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, sound)
	}

	abs, err := filepath.Abs(sound)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrFileNotFound, sound, err)
	}
	return filepath.ToSlash(abs), nil
}
