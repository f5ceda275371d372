package paperparser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akitenkrad/paper-parser/classify"
	"github.com/akitenkrad/paper-parser/layout"
)

// Config holds the pipeline's heuristic constants. Zero values are filled
// from DefaultConfig, so a partial YAML file only overrides what it names.
type Config struct {
	// ColumnInset is the horizontal inset from the text-area edges when
	// snapping fragments onto the column grid.
	ColumnInset int `yaml:"column_inset"`

	// SlotDivisor divides the text-area width to get the column slot width.
	SlotDivisor float64 `yaml:"slot_divisor"`

	// SingleColumnRatio divides the text-area width to get the two-column
	// detection threshold.
	SingleColumnRatio float64 `yaml:"single_column_ratio"`

	// AreaThreshold is the minimum fraction of a fragment's area that must
	// fall inside the text area.
	AreaThreshold float64 `yaml:"area_threshold"`

	// CaptionDistance is the caption association distance in pixels.
	CaptionDistance int `yaml:"caption_distance"`

	// TitleSigma is the allowed deviation of a title's height from the mean,
	// in standard deviations.
	TitleSigma float64 `yaml:"title_sigma"`

	// ReferenceMaxLen caps the text length of a references heading.
	ReferenceMaxLen int `yaml:"reference_max_len"`
}

// DefaultConfig returns the pipeline defaults.
func DefaultConfig() Config {
	return Config{
		ColumnInset:       10,
		SlotDivisor:       2.2,
		SingleColumnRatio: 1.5,
		AreaThreshold:     classify.DefaultAreaThreshold,
		CaptionDistance:   classify.DefaultCaptionDistance,
		TitleSigma:        classify.DefaultTitleSigma,
		ReferenceMaxLen:   classify.DefaultReferenceMaxLen,
	}
}

// LoadConfig reads a YAML config file, filling unset fields with defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.ColumnInset == 0 {
		c.ColumnInset = def.ColumnInset
	}
	if c.SlotDivisor == 0 {
		c.SlotDivisor = def.SlotDivisor
	}
	if c.SingleColumnRatio == 0 {
		c.SingleColumnRatio = def.SingleColumnRatio
	}
	if c.AreaThreshold == 0 {
		c.AreaThreshold = def.AreaThreshold
	}
	if c.CaptionDistance == 0 {
		c.CaptionDistance = def.CaptionDistance
	}
	if c.TitleSigma == 0 {
		c.TitleSigma = def.TitleSigma
	}
	if c.ReferenceMaxLen == 0 {
		c.ReferenceMaxLen = def.ReferenceMaxLen
	}
}

// normalizerConfig maps the pipeline config onto the layout normalizer's.
func (c Config) normalizerConfig() layout.NormalizerConfig {
	return layout.NormalizerConfig{
		Inset:             c.ColumnInset,
		SlotDivisor:       c.SlotDivisor,
		SingleColumnRatio: c.SingleColumnRatio,
	}
}
