package config

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"

	"go.viam.com/kinutil/logging"
)

// Read reads a config from the given file. Environment variables referenced as ${VAR} are
// substituted before the file is parsed.
func Read(filePath string, logger logging.Logger) (*Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	return fromReader(filePath, bytes.NewReader(buf), logger)
}

// FromReader reads a config from the given reader and specifies
// where, if applicable, the file the reader originated from.
func FromReader(originalPath string, r io.Reader, logger logging.Logger) (*Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	buf, err := envsubst.Bytes(raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to substitute environment variables")
	}
	return fromReader(originalPath, bytes.NewReader(buf), logger)
}

func fromReader(originalPath string, r io.Reader, logger logging.Logger) (*Config, error) {
	cfg := Config{
		ConfigFilePath: originalPath,
	}
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to decode Config from json")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "failed to process Config")
	}
	logger.Debugw("read config", "path", originalPath, "playback", cfg.Playback, "log_level", cfg.LogLevel)
	return &cfg, nil
}
