// Package config defines the kinutil configuration file and how it is read and validated.
package config

import (
	"github.com/pkg/errors"
	"go.viam.com/utils"

	"go.viam.com/kinutil/logging"
	"go.viam.com/kinutil/norm"
	"go.viam.com/kinutil/playback"
)

// Config is the top level kinutil configuration.
type Config struct {
	ConfigFilePath string `json:"-"`

	LogLevel logging.Level  `json:"log_level"`
	Playback PlaybackConfig `json:"playback"`
	Norm     NormConfig     `json:"norm"`
}

// PlaybackConfig configures trajectory playback.
type PlaybackConfig struct {
	NegativeDelta playback.NegativeDeltaPolicy `json:"negative_delta,omitempty"`
	TimeScale     float64                      `json:"time_scale,omitempty"`
}

// NormConfig configures norm evaluation.
type NormConfig struct {
	SamplingInterval float64 `json:"sampling_interval,omitempty"`
	// WeightThreshold is a pointer so that an explicit zero can be told apart from an omitted value.
	WeightThreshold *float64 `json:"weight_threshold,omitempty"`
}

// Default returns a Config with every default filled in.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Playback.NegativeDelta == "" {
		c.Playback.NegativeDelta = playback.RejectNegativeDeltas
	}
	if c.Playback.TimeScale == 0 {
		c.Playback.TimeScale = 1
	}
	if c.Norm.SamplingInterval == 0 {
		c.Norm.SamplingInterval = norm.DefaultSamplingInterval
	}
	if c.Norm.WeightThreshold == nil {
		threshold := norm.DefaultWeightThreshold
		c.Norm.WeightThreshold = &threshold
	}
}

// Validate returns an error describing the first invalid field, if any.
func (c *Config) Validate() error {
	if err := c.Playback.Validate("playback"); err != nil {
		return err
	}
	return c.Norm.Validate("norm")
}

// Validate ensures all parts of the config are valid.
func (pc *PlaybackConfig) Validate(path string) error {
	if pc.NegativeDelta == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "negative_delta")
	}
	if err := pc.NegativeDelta.Validate(); err != nil {
		return utils.NewConfigValidationError(path, err)
	}
	if !(pc.TimeScale > 0) {
		return utils.NewConfigValidationError(path, errors.Errorf("time_scale must be positive, got %v", pc.TimeScale))
	}
	return nil
}

// Validate ensures all parts of the config are valid.
func (nc *NormConfig) Validate(path string) error {
	if !(nc.SamplingInterval > 0) {
		return utils.NewConfigValidationError(path,
			errors.Errorf("sampling_interval must be positive, got %v", nc.SamplingInterval))
	}
	if nc.WeightThreshold == nil {
		return utils.NewConfigValidationFieldRequiredError(path, "weight_threshold")
	}
	if *nc.WeightThreshold < 0 {
		return utils.NewConfigValidationError(path,
			errors.Errorf("weight_threshold cannot be negative, got %v", *nc.WeightThreshold))
	}
	return nil
}

// PlayerOptions returns the playback options described by the config.
func (c *Config) PlayerOptions() []playback.Option {
	return []playback.Option{
		playback.WithNegativeDeltaPolicy(c.Playback.NegativeDelta),
		playback.WithTimeScale(c.Playback.TimeScale),
	}
}

// NewEvaluator returns a norm evaluator using the configured sampling interval and threshold.
// A Config built by hand rather than read may leave either unset; unset fields keep the
// evaluator defaults.
func (c *Config) NewEvaluator(logger logging.Logger) *norm.Evaluator {
	var opts []norm.Option
	if c.Norm.SamplingInterval != 0 {
		opts = append(opts, norm.WithSamplingInterval(c.Norm.SamplingInterval))
	}
	if c.Norm.WeightThreshold != nil {
		opts = append(opts, norm.WithWeightThreshold(*c.Norm.WeightThreshold))
	}
	return norm.NewEvaluator(logger, opts...)
}
