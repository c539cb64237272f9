package player

import (
	"context"
	"errors"
	"os/exec"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRunner captures invocations instead of spawning processes.
type recordingRunner struct {
	mu    sync.Mutex
	calls [][]string
	err   error
}

func (r *recordingRunner) run(_ context.Context, name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.err
}

func TestAvailable(t *testing.T) {
	names := Available()

	assert.Equal(t, []string{"afplay", "alsa_mpg123", "ffplay", "gst_play", "winmm"}, names)

	// Callers must not be able to mutate the registry order
	names[0] = "mutated"
	assert.Equal(t, "afplay", Available()[0])
}

func TestResolve_KnownBackends(t *testing.T) {
	for _, name := range Available() {
		p, err := Resolve(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.Name())
	}
}

func TestResolve_UnknownBackend(t *testing.T) {
	_, err := Resolve("bogus")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownBackend)
	// The message enumerates every valid name
	for _, name := range Available() {
		assert.Contains(t, err.Error(), name)
	}
}

func TestGstPlay_Args(t *testing.T) {
	r := &recordingRunner{}
	p := &gstPlayPlayer{run: r.run}

	require.NoError(t, p.Play(context.Background(), "/tmp/ding.wav"))
	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"gst-play-1.0", "--no-interactive", "--quiet", "/tmp/ding.wav"}, r.calls[0])
}

func TestFfplay_Args(t *testing.T) {
	r := &recordingRunner{}
	p := &ffplayPlayer{run: r.run}

	require.NoError(t, p.Play(context.Background(), "/tmp/ding.mp3"))
	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", "/tmp/ding.mp3"}, r.calls[0])
}

func TestAfplay_Args(t *testing.T) {
	r := &recordingRunner{}
	p := &afplayPlayer{run: r.run}

	require.NoError(t, p.Play(context.Background(), "/tmp/ding.aiff"))
	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"afplay", "/tmp/ding.aiff"}, r.calls[0])
}

func TestAlsa_RoutesWavToAplay(t *testing.T) {
	r := &recordingRunner{}
	p := &alsaPlayer{run: r.run}

	require.NoError(t, p.Play(context.Background(), "/tmp/ding.wav"))
	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"aplay", "--quiet", "/tmp/ding.wav"}, r.calls[0])
}

func TestAlsa_RoutesMp3ToMpg123(t *testing.T) {
	r := &recordingRunner{}
	p := &alsaPlayer{run: r.run}

	require.NoError(t, p.Play(context.Background(), "/tmp/ding.MP3"))
	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"mpg123", "-q", "/tmp/ding.MP3"}, r.calls[0])
}

func TestAlsa_RejectsOtherFormatsWithoutSpawning(t *testing.T) {
	r := &recordingRunner{}
	p := &alsaPlayer{run: r.run}

	err := p.Play(context.Background(), "/tmp/ding.ogg")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), ".ogg")
	assert.Empty(t, r.calls, "no process should be spawned for unsupported formats")
}

func TestPlay_ProcessFailure(t *testing.T) {
	r := &recordingRunner{err: errors.New("exit status 1")}
	p := &ffplayPlayer{run: r.run}

	err := p.Play(context.Background(), "/tmp/ding.mp3")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPlaybackFailed)
	assert.Contains(t, err.Error(), "ffplay")
}

func TestToolMissing(t *testing.T) {
	assert.True(t, toolMissing(&exec.Error{Name: "gst-play-1.0", Err: exec.ErrNotFound}))
	assert.False(t, toolMissing(errors.New("exit status 1")))
	assert.False(t, toolMissing(nil))
}
