package main

import (
	"fmt"
	"image/color"

	"linux-confetti/internal/debug"
	"linux-confetti/internal/engine2D"
	"linux-confetti/internal/engine2D/rlsurface"
	"linux-confetti/internal/utils"
	"linux-confetti/internal/wallpaper"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Window struct {
	scene   *wallpaper.Scene
	queue   *engine2D.FrameQueue
	resize  *engine2D.ResizeBroadcaster
	targets []*rlsurface.RenderTarget
	bgColor color.RGBA

	debugOverlay *debug.DebugOverlay
}

func runWindow(opts options, cfg wallpaper.SceneConfig) error {
	backdrop, err := cfg.BackdropColor()
	if err != nil {
		return err
	}

	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	if backdrop.A == 0 {
		flags |= rl.FlagWindowTransparent
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(opts.width), int32(opts.height), "Linux Confetti")
	defer rl.CloseWindow()

	window, err := NewWindow(cfg, backdrop)
	if err != nil {
		return err
	}
	defer window.Close()

	window.Run(opts.fps)
	return nil
}

func NewWindow(cfg wallpaper.SceneConfig, backdrop color.NRGBA) (*Window, error) {
	width, height := rl.GetScreenWidth(), rl.GetScreenHeight()

	window := &Window{
		queue:   engine2D.NewFrameQueue(),
		resize:  engine2D.NewResizeBroadcaster(width, height),
		bgColor: color.RGBA{backdrop.R, backdrop.G, backdrop.B, backdrop.A},
	}

	canvases := make([]*engine2D.ParticleCanvas, 2)
	for i := range canvases {
		target, err := rlsurface.New(width, height)
		if err != nil {
			window.Close()
			return nil, fmt.Errorf("failed to create layer surface: %w", err)
		}
		window.targets = append(window.targets, target)
		canvases[i] = engine2D.NewParticleCanvas(target, window.resize, window.queue)
	}

	window.scene = wallpaper.NewScene(cfg, canvases[0], canvases[1])
	window.debugOverlay = debug.NewDebugOverlay(window.scene)
	window.debugOverlay.Visible = utils.ShowDebugUI
	return window, nil
}

func (window *Window) Run(fps int) {
	rl.SetTargetFPS(int32(fps))

	window.scene.Start()
	utils.Info("Starting render loop at %dx%d", rl.GetScreenWidth(), rl.GetScreenHeight())

	for !rl.WindowShouldClose() {
		window.Update()

		rl.BeginDrawing()
		window.Draw()
		rl.EndDrawing()
	}
}

func (window *Window) Update() {
	if rl.IsWindowResized() {
		window.resize.Notify(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		if window.scene.Running() {
			utils.Info("Pausing confetti")
			window.scene.Stop()
		} else {
			utils.Info("Resuming confetti")
			window.scene.Start()
		}
	}

	window.queue.Tick()
	window.debugOverlay.Update()
}

func (window *Window) Draw() {
	rl.ClearBackground(window.bgColor)

	dst := rl.NewRectangle(0, 0, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	for _, target := range window.targets {
		target.Draw(dst, rl.White)
	}

	window.debugOverlay.Draw()
}

func (window *Window) Close() {
	if window.scene != nil {
		window.scene.Destroy()
		return
	}
	for _, target := range window.targets {
		target.Close()
	}
}
