package utils

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-cave/rules"
)

const (
	SamplerUniform = "uniform"
	SamplerPerlin  = "perlin"
)

// Config holds the configuration for a cave run
type Config struct {
	Width       int     `json:"width" yaml:"width"`
	Height      int     `json:"height" yaml:"height"`
	Threshold   float64 `json:"threshold" yaml:"threshold"`
	Seed        int64   `json:"seed" yaml:"seed"`
	Sampler     string  `json:"sampler" yaml:"sampler"`
	PerlinScale float64 `json:"perlin_scale" yaml:"perlin_scale"`

	SurvivalThreshold    int    `json:"survival_threshold" yaml:"survival_threshold"`
	BirthThreshold       int    `json:"birth_threshold" yaml:"birth_threshold"`
	StateCount           int    `json:"state_count" yaml:"state_count"`
	Connectivity         string `json:"connectivity" yaml:"connectivity"`
	Mode                 string `json:"mode" yaml:"mode"`
	Generations          int    `json:"generations" yaml:"generations"`
	LegacyPassCount      bool   `json:"legacy_pass_count" yaml:"legacy_pass_count"`
	LegacyGradedCounting bool   `json:"legacy_graded_counting" yaml:"legacy_graded_counting"`
	UseParallel          bool   `json:"use_parallel" yaml:"use_parallel"`
	UseMemoryPool        bool   `json:"use_memory_pool" yaml:"use_memory_pool"`

	MinRegionSize int           `json:"min_region_size" yaml:"min_region_size"`
	Animate       bool          `json:"animate" yaml:"animate"`
	FrameRate     time.Duration `json:"frame_rate" yaml:"frame_rate"`
	MaxSteps      int           `json:"max_steps" yaml:"max_steps"`
	LogLevel      string        `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	r := rules.DefaultConfig()
	return Config{
		Width:             80,
		Height:            40,
		Threshold:         45,
		Seed:              42,
		Sampler:           SamplerUniform,
		PerlinScale:       8,
		SurvivalThreshold: r.SurvivalThreshold,
		BirthThreshold:    r.BirthThreshold,
		StateCount:        r.StateCount,
		Connectivity:      r.Connectivity.String(),
		Mode:              r.Mode.String(),
		Generations:       r.Generations,
		UseParallel:       true,
		UseMemoryPool:     true,
		FrameRate:         500 * time.Millisecond,
		MaxSteps:          100,
		LogLevel:          "WARNING",
	}
}

// LoadConfig loads configuration from a JSON or YAML file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal yaml from file: %+v", filename)
		}
	default:
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	return config, nil
}

// RuleConfig converts the file-level settings into a validated rules.Config
func (c Config) RuleConfig() (rules.Config, error) {
	conn, err := rules.ParseConnectivity(c.Connectivity)
	if err != nil {
		return rules.Config{}, errors.Wrap(err, "[RuleConfig] bad connectivity")
	}
	mode, err := rules.ParseMode(c.Mode)
	if err != nil {
		return rules.Config{}, errors.Wrap(err, "[RuleConfig] bad mode")
	}
	rc := rules.Config{
		SurvivalThreshold:    c.SurvivalThreshold,
		BirthThreshold:       c.BirthThreshold,
		StateCount:           c.StateCount,
		Connectivity:         conn,
		Mode:                 mode,
		Generations:          c.Generations,
		LegacyPassCount:      c.LegacyPassCount,
		LegacyGradedCounting: c.LegacyGradedCounting,
		Parallel:             c.UseParallel,
	}
	if err = rc.Validate(); err != nil {
		return rules.Config{}, errors.Wrap(err, "[RuleConfig] invalid rules")
	}
	return rc, nil
}

// Validate checks the settings that are not covered by RuleConfig
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return errors.Errorf("[Validate] width and height must be >= 1, got %dx%d", c.Width, c.Height)
	}
	if math.IsNaN(c.Threshold) || c.Threshold < 0 || c.Threshold > 100 {
		return errors.Errorf("[Validate] threshold %v outside [0,100]", c.Threshold)
	}
	switch c.Sampler {
	case SamplerUniform:
	case SamplerPerlin:
		if math.IsNaN(c.PerlinScale) || math.IsInf(c.PerlinScale, 0) || c.PerlinScale <= 0 {
			return errors.Errorf("[Validate] perlin scale must be > 0, got %v", c.PerlinScale)
		}
	default:
		return errors.Errorf("[Validate] unknown sampler: %q", c.Sampler)
	}
	if c.MinRegionSize < 0 {
		return errors.Errorf("[Validate] negative min region size: %d", c.MinRegionSize)
	}
	_, err := c.RuleConfig()
	return err
}
