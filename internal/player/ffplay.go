package player

import "context"

// ffplayPlayer shells out to FFmpeg's ffplay.
type ffplayPlayer struct {
	run Runner
}

func newFfplayPlayer() *ffplayPlayer {
	return &ffplayPlayer{run: runCommand}
}

func (p *ffplayPlayer) Name() string { return BackendFfplay }

func (p *ffplayPlayer) Play(ctx context.Context, path string) error {
	return wrapRunError("ffplay",
		p.run(ctx, "ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", path))
}
