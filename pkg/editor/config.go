package editor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options are the editor's tunable constants. Zero-valued fields are
// replaced by defaults on load, so a config file only needs to name
// what it changes.
type Options struct {
	TranslateSensitivity float64 `yaml:"translate_sensitivity"`
	RotateSensitivity    float64 `yaml:"rotate_sensitivity"`
	ScaleSensitivity     float64 `yaml:"scale_sensitivity"`
	UVSensitivity        float64 `yaml:"uv_sensitivity"`
	ScaleFloor           float64 `yaml:"scale_floor"`
	SnapTranslate        float64 `yaml:"snap_translate"`
	SnapRotateDegrees    float64 `yaml:"snap_rotate_degrees"`
	SnapScale            float64 `yaml:"snap_scale"`
	MaxLoopCutSegments   int     `yaml:"max_loop_cut_segments"`
}

// DefaultOptions returns the built-in constants
func DefaultOptions() Options {
	return Options{
		TranslateSensitivity: 0.001,
		RotateSensitivity:    0.01,
		ScaleSensitivity:     0.005,
		UVSensitivity:        0.002,
		ScaleFloor:           0.001,
		SnapTranslate:        0.1,
		SnapRotateDegrees:    15,
		SnapScale:            0.1,
		MaxLoopCutSegments:   64,
	}
}

// LoadOptions reads options from a YAML file, filling unset fields
// with defaults
func LoadOptions(filename string) (Options, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("failed to read options: %w", err)
	}

	opts := Options{}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return DefaultOptions(), fmt.Errorf("failed to parse options: %w", err)
	}
	return opts.withDefaults(), nil
}

func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.TranslateSensitivity == 0 {
		o.TranslateSensitivity = defaults.TranslateSensitivity
	}
	if o.RotateSensitivity == 0 {
		o.RotateSensitivity = defaults.RotateSensitivity
	}
	if o.ScaleSensitivity == 0 {
		o.ScaleSensitivity = defaults.ScaleSensitivity
	}
	if o.UVSensitivity == 0 {
		o.UVSensitivity = defaults.UVSensitivity
	}
	if o.ScaleFloor == 0 {
		o.ScaleFloor = defaults.ScaleFloor
	}
	if o.SnapTranslate == 0 {
		o.SnapTranslate = defaults.SnapTranslate
	}
	if o.SnapRotateDegrees == 0 {
		o.SnapRotateDegrees = defaults.SnapRotateDegrees
	}
	if o.SnapScale == 0 {
		o.SnapScale = defaults.SnapScale
	}
	if o.MaxLoopCutSegments == 0 {
		o.MaxLoopCutSegments = defaults.MaxLoopCutSegments
	}
	return o
}
