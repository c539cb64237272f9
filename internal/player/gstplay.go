package player

import "context"

// gstPlayPlayer shells out to GStreamer's gst-play-1.0.
type gstPlayPlayer struct {
	run Runner
}

func newGstPlayPlayer() *gstPlayPlayer {
	return &gstPlayPlayer{run: runCommand}
}

func (p *gstPlayPlayer) Name() string { return BackendGstPlay }

func (p *gstPlayPlayer) Play(ctx context.Context, path string) error {
	return wrapRunError("gst-play-1.0",
		p.run(ctx, "gst-play-1.0", "--no-interactive", "--quiet", path))
}
