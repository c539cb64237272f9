package player

import "context"

// afplayPlayer shells out to afplay, built into macOS.
type afplayPlayer struct {
	run Runner
}

func newAfplayPlayer() *afplayPlayer {
	return &afplayPlayer{run: runCommand}
}

func (p *afplayPlayer) Name() string { return BackendAfplay }

func (p *afplayPlayer) Play(ctx context.Context, path string) error {
	return wrapRunError("afplay", p.run(ctx, "afplay", path))
}
