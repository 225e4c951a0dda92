package main

import (
	"context"
	"fmt"
	"image"

	"linux-confetti/internal/convert"
	"linux-confetti/internal/engine2D"
	"linux-confetti/internal/engine2D/canvas"
	"linux-confetti/internal/utils"
	"linux-confetti/internal/wallpaper"
)

// runHeadless renders both layers into gg rasters on a ticker and writes the
// composited frames, if an output is given.
func runHeadless(ctx context.Context, opts options, cfg wallpaper.SceneConfig) error {
	backdrop, err := cfg.BackdropColor()
	if err != nil {
		return err
	}

	var out convert.FrameWriter
	if opts.out != "" {
		if out, err = convert.OpenFrameWriter(opts.out, opts.workers); err != nil {
			return err
		}
	} else {
		utils.Warn("No -out given, frames are rendered and discarded")
	}

	queue := engine2D.NewFrameQueue()
	container := engine2D.FixedSize{Width: opts.width, Height: opts.height}
	bgRaster := canvas.NewRaster(opts.width, opts.height)
	fgRaster := canvas.NewRaster(opts.width, opts.height)

	scene := wallpaper.NewScene(cfg,
		engine2D.NewParticleCanvas(bgRaster, container, queue),
		engine2D.NewParticleCanvas(fgRaster, container, queue),
	)
	defer scene.Destroy()

	frame := image.NewNRGBA(image.Rect(0, 0, opts.width, opts.height))
	captured := 0
	var captureErr error

	capture := func() bool {
		captured++
		if out != nil {
			convert.Compose(frame, backdrop, bgRaster.Image(), fgRaster.Image())
			if err := out.WriteFrame(frame); err != nil {
				captureErr = fmt.Errorf("failed to write frame %d: %w", captured, err)
				return false
			}
		}
		if captured%100 == 0 {
			utils.Debug("Captured %d frames", captured)
		}
		return opts.frames <= 0 || captured < opts.frames
	}

	utils.Info("Rendering headless at %dx%d, %d fps", opts.width, opts.height, opts.fps)
	scene.Start()

	if capture() {
		err = queue.Run(ctx, frameInterval(opts.fps), capture)
	}
	scene.Stop()

	if out != nil {
		if cerr := out.Close(); err == nil && captureErr == nil {
			captureErr = cerr
		}
	}
	utils.Info("Headless run finished after %d frames", captured)

	if captureErr != nil {
		return captureErr
	}
	return err
}
