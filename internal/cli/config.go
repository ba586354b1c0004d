// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/tmatrix/internal/logging"
)

// Configuration keys; each doubles as a persistent flag name and, upper-cased
// with the MATRIXCALC_ prefix, as an environment variable.
const (
	keyConfig   = "config"
	keyType     = "type"
	keyMethod   = "method"
	keyOutput   = "output"
	keyLogLevel = "log-level"
)

// Accepted configuration values.
const (
	typeInt   = "int"
	typeFloat = "float"

	methodCofactor = "cofactor"
	methodLU       = "lu"

	outputText = "text"
	outputYAML = "yaml"
)

// envPrefix scopes environment overrides, e.g. MATRIXCALC_TYPE=float.
const envPrefix = "MATRIXCALC"

// Config is the resolved calculator configuration.
type Config struct {
	Type     string // element type: int (int64) or float (float64)
	Method   string // cofactor or lu (float only)
	Output   string // text or yaml
	LogLevel string
}

// newViper returns a viper instance with env overrides and defaults.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyType, typeInt)
	v.SetDefault(keyMethod, methodCofactor)
	v.SetDefault(keyOutput, outputText)
	v.SetDefault(keyLogLevel, logging.INFO)

	return v
}

// registerFlags declares the persistent configuration flags on fs and binds
// them to v, so an explicit flag outranks env and config file.
func registerFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.String(keyConfig, "", "YAML config file")
	fs.String(keyType, typeInt, "element type: int|float")
	fs.String(keyMethod, methodCofactor, "algorithm for det/inverse: cofactor|lu (lu needs --type float)")
	fs.StringP(keyOutput, "o", outputText, "output format: text|yaml")
	fs.String(keyLogLevel, logging.INFO, "log level: debug|info|warn|error")

	return v.BindPFlags(fs)
}

// loadConfig reads the optional config file and validates the merged values.
// Precedence (viper): flag > env > config file > default.
func loadConfig(v *viper.Viper) (Config, error) {
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %w", ErrBadConfig, path, err)
		}
	}
	cfg := Config{
		Type:     strings.ToLower(v.GetString(keyType)),
		Method:   strings.ToLower(v.GetString(keyMethod)),
		Output:   strings.ToLower(v.GetString(keyOutput)),
		LogLevel: v.GetString(keyLogLevel),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Type {
	case typeInt, typeFloat:
	default:
		return fmt.Errorf("%w: --%s %q (want %s|%s)", ErrBadConfig, keyType, c.Type, typeInt, typeFloat)
	}
	switch c.Method {
	case methodCofactor:
	case methodLU:
		if c.Type != typeFloat {
			return fmt.Errorf("%w: --%s %s requires --%s %s", ErrBadConfig, keyMethod, methodLU, keyType, typeFloat)
		}
	default:
		return fmt.Errorf("%w: --%s %q (want %s|%s)", ErrBadConfig, keyMethod, c.Method, methodCofactor, methodLU)
	}
	switch c.Output {
	case outputText, outputYAML:
	default:
		return fmt.Errorf("%w: --%s %q (want %s|%s)", ErrBadConfig, keyOutput, c.Output, outputText, outputYAML)
	}

	return nil
}
