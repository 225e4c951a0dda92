package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linux-confetti/internal/engine2D/particle"
	"linux-confetti/internal/utils"
	"linux-confetti/internal/wallpaper"

	"github.com/gogpu/gg"
)

const (
	fallbackWidth  = 1280
	fallbackHeight = 720
)

type options struct {
	backend string
	width   int
	height  int
	fps     int
	frames  int
	out     string
	workers int
}

func main() {
	backend := flag.String("backend", "window", "Output backend: window, headless or dry")
	configPath := flag.String("config", "", "Scene config JSON (searched in ., assets, the user config dir and /usr/share)")
	width := flag.Int("width", 0, "Surface width in pixels (default: screen width)")
	height := flag.Int("height", 0, "Surface height in pixels (default: screen height)")
	fps := flag.Int("fps", 60, "Frame rate")
	frames := flag.Int("frames", 0, "Frames to render in headless and dry mode (0 = until interrupted)")
	out := flag.String("out", "", "Headless output: a directory for PNG frames or a .lz4 file")
	workers := flag.Int("workers", 0, "Parallel PNG encoders (0 = default)")
	particles := flag.Int("particles", -1, "Total particle count (overrides config)")
	ratio := flag.Float64("ratio", -1, "Share of particles in the foreground layer (overrides config)")
	batch := flag.Bool("batch", false, "Paint each layer with one batched path per frame")
	stroke := flag.Bool("stroke", false, "Outline batched paths instead of filling them")
	seed := flag.Int64("seed", 0, "Random seed for reproducible output (0 = time based)")
	bg := flag.String("bg", "", "Background color as #rrggbb (overrides config)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	debugFlag := flag.Bool("debug", false, "Enable debug logging and show the debug overlay")
	flag.Parse()

	level, err := utils.ParseLevel(*logLevel)
	if err != nil {
		utils.Error("%v", err)
		os.Exit(2)
	}
	utils.CurrentLevel = level
	if *debugFlag {
		utils.CurrentLevel = utils.LevelDebug
		utils.ShowDebugUI = true
		utils.ShowRaylibInfo = true
	}
	gg.SetLogger(utils.Slog())

	utils.Info("--- Linux Confetti Start ---")

	cfg := wallpaper.DefaultSceneConfig()
	if *configPath != "" {
		if cfg, err = wallpaper.LoadSceneConfig(*configPath); err != nil {
			utils.Error("Failed to load scene config: %v", err)
			os.Exit(1)
		}
	}
	if *particles >= 0 {
		cfg.Particles = *particles
	}
	if *ratio >= 0 {
		cfg.ForegroundRatio = *ratio
	}
	if *batch {
		cfg.Background.Batch, cfg.Foreground.Batch = true, true
	}
	if *stroke {
		cfg.Background.Stroke, cfg.Foreground.Stroke = true, true
	}
	if *bg != "" {
		cfg.BackgroundColor = *bg
	}
	if err := cfg.Validate(); err != nil {
		utils.Error("Invalid scene settings: %v", err)
		os.Exit(1)
	}

	if *seed != 0 {
		particle.SetSeed(*seed)
		utils.Info("Random seed: %d", *seed)
	}

	opts := options{
		backend: *backend,
		fps:     *fps,
		frames:  *frames,
		out:     *out,
		workers: *workers,
	}
	opts.width, opts.height = resolveSize(*width, *height)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch opts.backend {
	case "window":
		err = runWindow(opts, cfg)
	case "headless":
		err = runHeadless(ctx, opts, cfg)
	case "dry":
		err = runDry(ctx, opts, cfg)
	default:
		err = fmt.Errorf("unknown backend %q", opts.backend)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		utils.Error("%v", err)
		os.Exit(1)
	}
	utils.Info("--- Linux Confetti Stop ---")
}

// resolveSize fills in missing dimensions from the X11 screen, or a fixed
// fallback when no display is reachable.
func resolveSize(width, height int) (int, int) {
	if width > 0 && height > 0 {
		return width, height
	}

	if err := utils.InitX11(); err != nil {
		utils.Warn("No X11 display (%v), using %dx%d", err, fallbackWidth, fallbackHeight)
		return orDefault(width, fallbackWidth), orDefault(height, fallbackHeight)
	}
	defer utils.CloseX11()

	sw, sh, err := utils.GetScreenSize()
	if err != nil {
		utils.Warn("Failed to query screen size (%v), using %dx%d", err, fallbackWidth, fallbackHeight)
		return orDefault(width, fallbackWidth), orDefault(height, fallbackHeight)
	}
	utils.Debug("X11 screen size: %dx%d", sw, sh)
	return orDefault(width, sw), orDefault(height, sh)
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}
