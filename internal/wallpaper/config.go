package wallpaper

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"linux-confetti/internal/engine2D/particle"
	"linux-confetti/internal/utils"

	"github.com/lucasb-eyer/go-colorful"
)

// Band is a closed distance interval. In JSON it may be written as "1.5 5",
// [1.5, 5] or {"min": 1.5, "max": 5}.
type Band struct {
	Min, Max float64
}

func (b *Band) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return b.fromString(s)
	}

	var pair []float64
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("band needs 2 values, got %d", len(pair))
		}
		b.Min, b.Max = pair[0], pair[1]
		return nil
	}

	var obj struct {
		Min *float64 `json:"min"`
		Max *float64 `json:"max"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("invalid band %s: %w", data, err)
	}
	if obj.Min != nil {
		b.Min = *obj.Min
	}
	if obj.Max != nil {
		b.Max = *obj.Max
	}
	return nil
}

func (b *Band) fromString(s string) error {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return fmt.Errorf("band %q needs 2 values", s)
	}
	lo, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return fmt.Errorf("band %q: %w", s, err)
	}
	hi, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return fmt.Errorf("band %q: %w", s, err)
	}
	b.Min, b.Max = lo, hi
	return nil
}

func (b Band) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{b.Min, b.Max})
}

func (b Band) validate(name string) error {
	if b.Min <= 0 || b.Max <= b.Min {
		return fmt.Errorf("%s distance band [%g, %g] must satisfy 0 < min < max", name, b.Min, b.Max)
	}
	return nil
}

// LayerConfig tunes one depth plane.
type LayerConfig struct {
	Distance       Band    `json:"distance"`
	DistanceWeight float64 `json:"distanceWeight"`
	Batch          bool    `json:"batch"`
	Stroke         bool    `json:"stroke"`
}

// SceneConfig is the user-facing scene description.
type SceneConfig struct {
	Particles       int     `json:"particles"`
	ForegroundRatio float64 `json:"foregroundRatio"`

	SharedDistance Band `json:"sharedDistance"`
	// StartingHue seeds the shared hue; nil picks a random hue.
	StartingHue *float64 `json:"startingHue,omitempty"`
	HueStep     float64  `json:"hueStep"`

	Background LayerConfig `json:"background"`
	Foreground LayerConfig `json:"foreground"`

	// BackgroundColor is painted under both layers by hosts that composite,
	// as a hex string like "#101020". Empty means transparent.
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// DefaultSceneConfig returns the stock confetti scene: 600 particles, 30% of
// them in the near foreground band.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Particles:       600,
		ForegroundRatio: 0.3,
		SharedDistance:  Band{1, 5},
		HueStep:         particle.DefaultHueStep,
		Background: LayerConfig{
			Distance:       Band{1.5, 5},
			DistanceWeight: 1,
		},
		Foreground: LayerConfig{
			Distance:       Band{1, 1.5},
			DistanceWeight: 0.25,
		},
	}
}

// LoadSceneConfig reads a JSON scene file on top of the defaults. Relative
// paths are resolved through utils.ConfigSearchDirs.
func LoadSceneConfig(path string) (SceneConfig, error) {
	cfg := DefaultSceneConfig()

	resolved, ok := utils.ResolveConfigPath(path)
	if !ok {
		return cfg, fmt.Errorf("scene config not found: %s", path)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return cfg, fmt.Errorf("failed to read scene config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse scene config %s: %w", resolved, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid scene config %s: %w", resolved, err)
	}

	utils.Info("Scene config loaded from %s", resolved)
	return cfg, nil
}

// contains reports whether inner lies inside b.
func (b Band) contains(inner Band) bool {
	return inner.Min >= b.Min && inner.Max <= b.Max
}

// Validate checks the bands, weights and counts. Layer bands must lie inside
// the shared band so respawned particles keep a distance scale in [0, 1].
func (c SceneConfig) Validate() error {
	if c.Particles < 0 {
		return fmt.Errorf("particles must not be negative, got %d", c.Particles)
	}
	if c.ForegroundRatio < 0 || c.ForegroundRatio > 1 {
		return fmt.Errorf("foregroundRatio must be within [0, 1], got %g", c.ForegroundRatio)
	}
	for _, b := range []struct {
		name string
		band Band
	}{
		{"shared", c.SharedDistance},
		{"background", c.Background.Distance},
		{"foreground", c.Foreground.Distance},
	} {
		if err := b.band.validate(b.name); err != nil {
			return err
		}
	}
	for _, l := range []struct {
		name  string
		layer LayerConfig
	}{
		{"background", c.Background},
		{"foreground", c.Foreground},
	} {
		if l.layer.DistanceWeight <= 0 {
			return fmt.Errorf("%s distanceWeight must be positive, got %g", l.name, l.layer.DistanceWeight)
		}
		if !c.SharedDistance.contains(l.layer.Distance) {
			return fmt.Errorf("%s distance band [%g, %g] must lie within the shared band [%g, %g]",
				l.name, l.layer.Distance.Min, l.layer.Distance.Max, c.SharedDistance.Min, c.SharedDistance.Max)
		}
	}
	if _, err := c.BackdropColor(); err != nil {
		return err
	}
	return nil
}

// BackdropColor parses BackgroundColor. An empty string yields transparent.
func (c SceneConfig) BackdropColor() (color.NRGBA, error) {
	if c.BackgroundColor == "" {
		return color.NRGBA{}, nil
	}
	col, err := colorful.Hex(c.BackgroundColor)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid backgroundColor %q: %w", c.BackgroundColor, err)
	}
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// LayerCounts splits Particles between the layers, flooring both shares.
func (c SceneConfig) LayerCounts() (background, foreground int) {
	background = int(float64(c.Particles) * (1 - c.ForegroundRatio))
	foreground = int(float64(c.Particles) * c.ForegroundRatio)
	return background, foreground
}
