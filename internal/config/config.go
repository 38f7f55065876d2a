package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/cubelife/internal/lifetime"
	"github.com/san-kum/cubelife/internal/plot"
	"github.com/san-kum/cubelife/internal/viz"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CUBELIFE_"

const (
	DefaultWidth       = 100
	DefaultHeight      = 24
	DefaultImageWidth  = 1000
	DefaultImageHeight = 600
	DefaultTheme       = "classic"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Calibration CalibrationConfig `yaml:"calibration"`
	Samples     SampleConfig      `yaml:"samples"`
	Axes        AxesConfig        `yaml:"axes"`
	Labels      LabelConfig       `yaml:"labels"`
	Display     DisplayConfig     `yaml:"display"`
}

// CalibrationConfig holds the two (challenge, epochs) points defining the line.
type CalibrationConfig struct {
	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`
	X2 float64 `yaml:"x2"`
	Y2 float64 `yaml:"y2"`
}

type SampleConfig struct {
	Start      float64   `yaml:"start"`
	End        float64   `yaml:"end"`
	Points     int       `yaml:"points" env:"SAMPLES"`
	Challenges []float64 `yaml:"challenges"`
}

type AxesConfig struct {
	EpochsPerDay   float64   `yaml:"epochs_per_day" env:"EPOCHS_PER_DAY"`
	EpochIncrement float64   `yaml:"epoch_increment" env:"EPOCH_INCREMENT"`
	Margin         float64   `yaml:"margin"`
	XTicks         []float64 `yaml:"x_ticks"`
}

type LabelConfig struct {
	Title           string `yaml:"title"`
	XAxis           string `yaml:"x_axis"`
	Primary         string `yaml:"primary"`
	Secondary       string `yaml:"secondary"`
	Legend          string `yaml:"legend"`
	PrimaryUnit     string `yaml:"primary_unit"`
	SecondaryUnit   string `yaml:"secondary_unit"`
	SecondarySuffix string `yaml:"secondary_suffix"`
}

type DisplayConfig struct {
	Theme       string `yaml:"theme" env:"THEME"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	ImageWidth  int    `yaml:"image_width"`
	ImageHeight int    `yaml:"image_height"`
}

func DefaultConfig() *Config {
	units := lifetime.DefaultUnits()
	labels := plot.DefaultLabels()
	return &Config{
		Calibration: CalibrationConfig{
			X1: lifetime.DefaultX1, Y1: lifetime.DefaultY1,
			X2: lifetime.DefaultX2, Y2: lifetime.DefaultY2,
		},
		Samples: SampleConfig{
			Start:      lifetime.DefaultDomainStart,
			End:        lifetime.DefaultDomainEnd,
			Points:     lifetime.DefaultCurvePoints,
			Challenges: slices.Clone(lifetime.DefaultChallenges),
		},
		Axes: AxesConfig{
			EpochsPerDay:   units.PerUnit,
			EpochIncrement: plot.DefaultEpochIncrement,
			Margin:         plot.DefaultMargin,
			XTicks:         slices.Clone(plot.DefaultXTicks),
		},
		Labels: LabelConfig{
			Title:           labels.Title,
			XAxis:           labels.XAxis,
			Primary:         labels.Primary,
			Secondary:       labels.Secondary,
			Legend:          labels.Legend,
			PrimaryUnit:     units.PrimaryName,
			SecondaryUnit:   units.SecondaryName,
			SecondarySuffix: units.SecondarySuffix,
		},
		Display: DisplayConfig{
			Theme:       DefaultTheme,
			Width:       DefaultWidth,
			Height:      DefaultHeight,
			ImageWidth:  DefaultImageWidth,
			ImageHeight: DefaultImageHeight,
		},
	}
}

// Load reads a YAML file over the defaults. Fields absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	return LoadOver(DefaultConfig(), path)
}

// LoadOver reads a YAML file over base, which is not modified.
func LoadOver(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from CUBELIFE_* environment variables.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Clone() *Config {
	out := *c
	out.Samples.Challenges = slices.Clone(c.Samples.Challenges)
	out.Axes.XTicks = slices.Clone(c.Axes.XTicks)
	return &out
}

// Validate checks everything the model, sampler and layout would reject,
// plus the display settings.
func (c *Config) Validate() error {
	m, err := c.Model()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	s, err := c.SampleSet()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Units().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	// the curve is a line, so its peak is at one end of the domain
	start, end := s.Domain()
	if err := plot.CheckIncrement(max(m.Eval(start), m.Eval(end)), c.Axes.EpochIncrement); err != nil {
		return fmt.Errorf("%w: epoch_increment: %w", ErrInvalidConfig, err)
	}
	if c.Axes.Margin < 0 {
		return fmt.Errorf("%w: margin must not be negative, got %v", ErrInvalidConfig, c.Axes.Margin)
	}
	if c.Display.Theme != "" && !viz.HasTheme(c.Display.Theme) {
		return fmt.Errorf("%w: unknown theme %q (available: %v)", ErrInvalidConfig, c.Display.Theme, viz.ThemeNames())
	}
	if c.Display.ImageWidth <= 0 || c.Display.ImageHeight <= 0 {
		return fmt.Errorf("%w: image size must be positive, got %dx%d", ErrInvalidConfig, c.Display.ImageWidth, c.Display.ImageHeight)
	}
	return nil
}

func (c *Config) Model() (lifetime.LinearModel, error) {
	return lifetime.NewLinearModel(c.Calibration.X1, c.Calibration.Y1, c.Calibration.X2, c.Calibration.Y2)
}

func (c *Config) SampleSet() (lifetime.SampleSet, error) {
	return lifetime.NewSampleSet(c.Samples.Start, c.Samples.End, c.Samples.Points, c.Samples.Challenges)
}

func (c *Config) Units() lifetime.UnitConversion {
	return lifetime.UnitConversion{
		PerUnit:         c.Axes.EpochsPerDay,
		PrimaryName:     c.Labels.PrimaryUnit,
		SecondaryName:   c.Labels.SecondaryUnit,
		SecondarySuffix: c.Labels.SecondarySuffix,
	}
}

func (c *Config) PlotOptions() plot.Options {
	return plot.Options{
		Units:     c.Units(),
		Increment: c.Axes.EpochIncrement,
		Margin:    c.Axes.Margin,
		XTicks:    slices.Clone(c.Axes.XTicks),
		Labels: plot.Labels{
			Title:     c.Labels.Title,
			XAxis:     c.Labels.XAxis,
			Primary:   c.Labels.Primary,
			Secondary: c.Labels.Secondary,
			Legend:    c.Labels.Legend,
		},
	}
}

// Build validates the config and lays out the chart it describes.
func (c *Config) Build() (lifetime.LinearModel, *plot.Chart, error) {
	if err := c.Validate(); err != nil {
		return lifetime.LinearModel{}, nil, err
	}
	m, err := c.Model()
	if err != nil {
		return lifetime.LinearModel{}, nil, err
	}
	s, err := c.SampleSet()
	if err != nil {
		return lifetime.LinearModel{}, nil, err
	}
	ch, err := plot.Build(m, s, c.PlotOptions())
	if err != nil {
		return lifetime.LinearModel{}, nil, err
	}
	return m, ch, nil
}
