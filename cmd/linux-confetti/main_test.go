package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"linux-confetti/internal/convert"
	"linux-confetti/internal/wallpaper"
)

func smallScene() wallpaper.SceneConfig {
	cfg := wallpaper.DefaultSceneConfig()
	cfg.Particles = 40
	cfg.BackgroundColor = "#000000"
	return cfg
}

func TestOrDefault(t *testing.T) {
	tests := []struct{ v, def, want int }{
		{0, 1280, 1280},
		{-5, 720, 720},
		{640, 1280, 640},
	}
	for _, tt := range tests {
		if got := orDefault(tt.v, tt.def); got != tt.want {
			t.Errorf("orDefault(%d, %d) = %d, want %d", tt.v, tt.def, got, tt.want)
		}
	}
}

func TestResolveSizeExplicit(t *testing.T) {
	if w, h := resolveSize(800, 600); w != 800 || h != 600 {
		t.Errorf("resolveSize(800, 600) = %dx%d", w, h)
	}
}

func TestRunDry(t *testing.T) {
	opts := options{backend: "dry", width: 320, height: 200, frames: 30}
	if err := runDry(context.Background(), opts, smallScene()); err != nil {
		t.Fatalf("runDry() error = %v", err)
	}
}

func TestRunDryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := options{backend: "dry", width: 320, height: 200, frames: 30}
	if err := runDry(ctx, opts, smallScene()); !errors.Is(err, context.Canceled) {
		t.Errorf("runDry() error = %v, want context.Canceled", err)
	}
}

func TestRunHeadlessWritesFrames(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frames.lz4")
	opts := options{backend: "headless", width: 64, height: 48, fps: 1000, frames: 3, out: out}

	if err := runHeadless(context.Background(), opts, smallScene()); err != nil {
		t.Fatalf("runHeadless() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r, err := convert.NewLZ4FrameReader(f)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for {
		img, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("frame %d: %v", n, err)
		}
		if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
			t.Errorf("frame %d size = %v, want 64x48", n, img.Bounds())
		}
		// The opaque backdrop covers every pixel.
		if a := img.NRGBAAt(0, 0).A; a != 255 {
			t.Errorf("frame %d corner alpha = %d, want 255", n, a)
		}
		n++
	}
	if n != 3 {
		t.Errorf("decoded %d frames, want 3", n)
	}
}
