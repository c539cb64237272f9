package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
)

// Runner executes an external command and blocks until it exits.
// Implementations discard the command's output; playback tools are run
// quiet. Injectable so tests never spawn real audio processes.
type Runner func(ctx context.Context, name string, args ...string) error

// runCommand is the default Runner backed by os/exec.
func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}

// wrapRunError translates a process failure into the playback error
// taxonomy. A nil error passes through.
func wrapRunError(tool string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", tool, ErrPlaybackFailed, err)
}

// toolMissing reports whether err means the executable does not exist,
// as opposed to existing but failing. Only a missing tool disqualifies
// a probe candidate.
func toolMissing(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
