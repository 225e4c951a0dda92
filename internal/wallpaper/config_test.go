package wallpaper

import (
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBandUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    Band
		wantErr bool
	}{
		{`"1.5 5"`, Band{1.5, 5}, false},
		{`[1, 1.5]`, Band{1, 1.5}, false},
		{`{"min": 2, "max": 3}`, Band{2, 3}, false},
		{`{"max": 9}`, Band{7, 9}, false},
		{`"1.5"`, Band{}, true},
		{`[1, 2, 3]`, Band{}, true},
		{`"a b"`, Band{}, true},
		{`true`, Band{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b := Band{7, 8}
			err := json.Unmarshal([]byte(tt.in), &b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && b != tt.want {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.in, b, tt.want)
			}
		})
	}
}

func TestDefaultSceneConfig(t *testing.T) {
	cfg := DefaultSceneConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	bg, fg := cfg.LayerCounts()
	if bg != 420 || fg != 180 {
		t.Errorf("LayerCounts() = %d, %d, want 420, 180", bg, fg)
	}
	if cfg.Background.Distance != (Band{1.5, 5}) || cfg.Foreground.Distance != (Band{1, 1.5}) {
		t.Errorf("unexpected default bands: %+v / %+v", cfg.Background.Distance, cfg.Foreground.Distance)
	}
	if cfg.StartingHue != nil {
		t.Error("default StartingHue should be random (nil)")
	}
}

func TestLayerCountsFloor(t *testing.T) {
	tests := []struct {
		n      int
		ratio  float64
		bg, fg int
	}{
		{10, 0.25, 7, 2},
		{1, 0.5, 0, 0},
		{7, 0, 7, 0},
		{7, 1, 0, 7},
	}
	for _, tt := range tests {
		cfg := SceneConfig{Particles: tt.n, ForegroundRatio: tt.ratio}
		if bg, fg := cfg.LayerCounts(); bg != tt.bg || fg != tt.fg {
			t.Errorf("LayerCounts(%d, %v) = %d, %d, want %d, %d", tt.n, tt.ratio, bg, fg, tt.bg, tt.fg)
		}
	}
}

func TestLoadSceneConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	data := `{
		"particles": 100,
		"startingHue": 42,
		"foreground": {"distance": "1 2", "batch": true, "stroke": true},
		"backgroundColor": "#102030"
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSceneConfig(path)
	if err != nil {
		t.Fatalf("LoadSceneConfig() error = %v", err)
	}
	if cfg.Particles != 100 || cfg.ForegroundRatio != 0.3 {
		t.Errorf("particles/ratio = %d/%v, want 100/0.3", cfg.Particles, cfg.ForegroundRatio)
	}
	if cfg.StartingHue == nil || *cfg.StartingHue != 42 {
		t.Errorf("StartingHue = %v, want 42", cfg.StartingHue)
	}
	if cfg.Foreground.Distance != (Band{1, 2}) || cfg.Foreground.DistanceWeight != 0.25 {
		t.Errorf("foreground = %+v, want band [1 2] with default weight", cfg.Foreground)
	}
	if !cfg.Foreground.Batch || !cfg.Foreground.Stroke {
		t.Errorf("foreground batch/stroke not loaded: %+v", cfg.Foreground)
	}
	if cfg.Background.Distance != (Band{1.5, 5}) {
		t.Errorf("background band = %+v, want default", cfg.Background.Distance)
	}
	c, err := cfg.BackdropColor()
	if err != nil || c != (color.NRGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Errorf("BackdropColor() = %v, %v", c, err)
	}
}

func TestLoadSceneConfigErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing", filepath.Join(dir, "nope.json"), "not found"},
		{"bad json", write("bad.json", `{"particles":`), "failed to parse"},
		{"inverted band", write("band.json", `{"background": {"distance": [5, 1]}}`), "background distance band"},
		{"zero distance", write("zero.json", `{"sharedDistance": [0, 5]}`), "shared distance band"},
		{"ratio", write("ratio.json", `{"foregroundRatio": 1.5}`), "foregroundRatio"},
		{"color", write("color.json", `{"backgroundColor": "blue"}`), "backgroundColor"},
		{"negative weight", write("weight.json", `{"background": {"distanceWeight": -1}}`), "background distanceWeight"},
		{"zero weight", write("zeroweight.json", `{"foreground": {"distanceWeight": 0}}`), "foreground distanceWeight"},
		{"band outside shared", write("outside.json", `{"background": {"distance": [1.5, 8]}}`), "within the shared band"},
		{"shared too narrow", write("narrow.json", `{"sharedDistance": [2, 5]}`), "within the shared band [2, 5]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSceneConfig(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadSceneConfig() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLayerBands(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SceneConfig)
		wantErr string
	}{
		{"defaults", func(*SceneConfig) {}, ""},
		{"negative weight", func(c *SceneConfig) { c.Background.DistanceWeight = -1 }, "background distanceWeight"},
		{"zero weight", func(c *SceneConfig) { c.Foreground.DistanceWeight = 0 }, "foreground distanceWeight"},
		{"below shared", func(c *SceneConfig) { c.Foreground.Distance = Band{0.5, 1.5} }, "foreground distance band"},
		{"above shared", func(c *SceneConfig) { c.Background.Distance = Band{1.5, 6} }, "background distance band"},
		{"shared edges", func(c *SceneConfig) { c.Background.Distance = Band{1, 5} }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSceneConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadSceneConfigZeroHueStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frozen.json")
	if err := os.WriteFile(path, []byte(`{"hueStep": 0}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadSceneConfig(path)
	if err != nil {
		t.Fatalf("LoadSceneConfig() error = %v", err)
	}
	if cfg.HueStep != 0 {
		t.Errorf("HueStep = %v, want 0", cfg.HueStep)
	}
}
