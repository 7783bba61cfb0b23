/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the command-line configuration.
//
// Values come, in increasing order of precedence, from built-in defaults,
// FIELDERRORS_* environment variables (a .env file in the working directory
// is loaded first) and explicit overrides such as command-line flags.
//
//	FIELDERRORS_AS=string
//	FIELDERRORS_FORMAT=sentence-case
//	FIELDERRORS_SERVER_MESSAGE="Something went wrong"
//	FIELDERRORS_LOG_LEVEL=debug
package config

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/fielderrors/apis"
	"dirpx.dev/fielderrors/format"
	"github.com/go-playground/validator/v10"
	// Side-effect import: loads .env into the process environment.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "FIELDERRORS_"

// Keys of the configuration values.
const (
	KeyAs            = "as"
	KeyFormat        = "format"
	KeyServerMessage = "server_message"
	KeyLogLevel      = "log_level"
)

// ErrInvalid wraps every validation failure returned by Load.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the CLI configuration.
type Config struct {
	As            string `koanf:"as" validate:"required,oneof=array string"`
	Format        string `koanf:"format" validate:"required,oneof=none lowercase sentence-case"`
	ServerMessage string `koanf:"server_message" validate:"required"`
	LogLevel      string `koanf:"log_level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		KeyAs:            string(format.ShapeArray),
		KeyFormat:        string(format.CaseNone),
		KeyServerMessage: apis.DefaultServerMessage,
		KeyLogLevel:      "warn",
	}
}

// Load builds the configuration. Overrides with an empty string value are
// ignored so unset flags do not mask the environment.
func Load(overrides map[string]string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	for key, v := range overrides {
		if v == "" {
			continue
		}
		if err := k.Set(key, v); err != nil {
			return nil, fmt.Errorf("config: override %q: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.As = format.Normalize(cfg.As)
	cfg.Format = format.Normalize(cfg.Format)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.ServerMessage = strings.TrimSpace(cfg.ServerMessage)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return cfg, nil
}

// FormatOptions returns the format options described by c.
func (c *Config) FormatOptions() format.Options {
	return format.With(format.Shape(c.As), format.Case(c.Format))
}
