// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Logger  log.Logger `yaml:"-" json:"-"`
	Logging Logging    `yaml:"logging" mapstructure:"logging"`

	ODFI    ODFI    `yaml:"odfi" mapstructure:"odfi"`
	Company Company `yaml:"company" mapstructure:"company"`

	Input  Input  `yaml:"input" mapstructure:"input"`
	Output Output `yaml:"output" mapstructure:"output"`
}

type Logging struct {
	Format string `yaml:"format" mapstructure:"format"`
	Level  string `yaml:"level" mapstructure:"level"`
}

func Empty() *Config {
	return &Config{
		Logger: log.NewNopLogger(),
		Input: Input{
			Format:    InputCSV,
			Delimiter: ",",
		},
		Output: Output{
			Format:           OutputNACHA,
			Directory:        ".",
			FilenameTemplate: DefaultFilenameTemplate,
		},
	}
}

func FromFile(path string) (*Config, error) {
	cfg := Empty()
	if path != "" {
		bs, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %v", path, err)
		}
		return Read(bs)
	}
	cfg = setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Read(data []byte) (*Config, error) {
	vip := viper.New()
	vip.SetConfigType("yaml")
	if err := vip.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("problem reading config: %v", err)
	}

	cfg := Empty()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("problem unmarshaling config: %v", err)
	}

	cfg = setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogger(cfg *Config) *Config {
	if strings.EqualFold(cfg.Logging.Format, "json") {
		cfg.Logger = log.NewJSONLogger(os.Stderr)
	} else {
		cfg.Logger = log.NewLogfmtLogger(os.Stderr)
	}

	cfg.Logger = log.With(cfg.Logger, "ts", log.DefaultTimestampUTC)
	cfg.Logger = log.With(cfg.Logger, "caller", log.DefaultCaller)
	cfg.Logger = level.NewFilter(cfg.Logger, levelOption(cfg.Logging.Level))

	return cfg
}

func levelOption(lvl string) level.Option {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// Validate checks a Config fields and performs various confirmations
// their values conform to expectations.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.New("missing Config")
	}

	if err := cfg.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %v", err)
	}
	if err := cfg.ODFI.Validate(); err != nil {
		return fmt.Errorf("odfi: %v", err)
	}
	if err := cfg.Company.Validate(); err != nil {
		return fmt.Errorf("company: %v", err)
	}
	if err := cfg.Input.Validate(); err != nil {
		return fmt.Errorf("input: %v", err)
	}
	if err := cfg.Output.Validate(); err != nil {
		return fmt.Errorf("output: %v", err)
	}

	return nil
}

func (cfg Logging) Validate() error {
	switch strings.ToLower(cfg.Level) {
	case "", "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("unknown level %q", cfg.Level)
}

// Dump renders the effective config as YAML.
func (cfg *Config) Dump() ([]byte, error) {
	if cfg == nil {
		return nil, errors.New("missing Config")
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("problem encoding config: %v", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
