//go:build !windows

package player

import (
	"context"
	"fmt"
)

// winmmPlayer is registered on every platform so backend names resolve
// uniformly, but the multimedia API only exists on Windows.
type winmmPlayer struct{}

func newWinmmPlayer() winmmPlayer { return winmmPlayer{} }

func (winmmPlayer) Name() string { return BackendWinmm }

func (winmmPlayer) Play(context.Context, string) error {
	return fmt.Errorf("%s: %w: backend requires Windows", BackendWinmm, ErrPlaybackFailed)
}
