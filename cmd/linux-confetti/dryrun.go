package main

import (
	"context"

	"linux-confetti/internal/engine2D"
	"linux-confetti/internal/engine2D/canvas"
	"linux-confetti/internal/utils"
	"linux-confetti/internal/wallpaper"
)

const (
	dryRunDefaultFrames = 600
	dryRunMaxCommands   = 10000
)

// runDry steps the scene against recording surfaces as fast as possible and
// reports what would have been drawn.
func runDry(ctx context.Context, opts options, cfg wallpaper.SceneConfig) error {
	frames := opts.frames
	if frames <= 0 {
		frames = dryRunDefaultFrames
	}

	queue := engine2D.NewFrameQueue()
	container := engine2D.FixedSize{Width: opts.width, Height: opts.height}
	recorders := []*canvas.Recorder{
		canvas.NewRecorder(opts.width, opts.height),
		canvas.NewRecorder(opts.width, opts.height),
	}
	for _, r := range recorders {
		r.MaxCommands = dryRunMaxCommands
	}

	scene := wallpaper.NewScene(cfg,
		engine2D.NewParticleCanvas(recorders[0], container, queue),
		engine2D.NewParticleCanvas(recorders[1], container, queue),
	)
	defer scene.Destroy()

	scene.Start()
	for i := 1; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		queue.Tick()
	}
	scene.Stop()

	for i, l := range scene.Layers() {
		r := recorders[i]
		utils.Info("%s: %d frames, %d rects filled, %d stroked, %d exiting",
			l.Name, l.Canvas.Frames(), r.Filled, r.Strokes, l.Exiting())
	}
	utils.Info("Final shared hue: %.2f", scene.Shared.StartingHue)
	return nil
}
