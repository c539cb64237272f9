//go:build windows

package player

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sys/windows"
)

var (
	modwinmm          = windows.NewLazySystemDLL("winmm.dll")
	procMciSendString = modwinmm.NewProc("mciSendStringW")
)

// mciSendString issues one MCI command string and returns an error for
// a non-zero MCI error code.
func mciSendString(command string) error {
	p, err := windows.UTF16PtrFromString(command)
	if err != nil {
		return err
	}
	ret, _, _ := procMciSendString.Call(uintptr(unsafe.Pointer(p)), 0, 0, 0)
	if ret != 0 {
		return fmt.Errorf("mciSendString %q: MCI error %d", command, ret)
	}
	return nil
}

// winmmPlayer plays through the Windows multimedia API. Each call opens
// the file under a freshly generated alias, plays it to completion, and
// closes the alias, so concurrent playbacks never collide.
type winmmPlayer struct{}

func newWinmmPlayer() winmmPlayer { return winmmPlayer{} }

func (winmmPlayer) Name() string { return BackendWinmm }

func (winmmPlayer) Play(_ context.Context, path string) error {
	alias := "playsound_" + ulid.Make().String()
	if err := mciSendString(fmt.Sprintf("open %q alias %s", path, alias)); err != nil {
		return fmt.Errorf("winmm: %w: %w", ErrPlaybackFailed, err)
	}
	defer func() { _ = mciSendString("close " + alias) }()

	if err := mciSendString("play " + alias + " wait"); err != nil {
		return fmt.Errorf("winmm: %w: %w", ErrPlaybackFailed, err)
	}
	return nil
}
