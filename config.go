package persistent

import (
	"strings"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config holds the tunables of a [Cache].
// Keys are shared by configuration files and environment variables.
type Config struct {
	TargetCount     int   `mapstructure:"targetCount"`
	DrainResistance int   `mapstructure:"drainResistance"`
	TargetBytes     int64 `mapstructure:"targetBytes"`
}

// DefaultTargetCount is the count target used when none is configured.
const DefaultTargetCount = 400

// DefaultConfig returns the configuration used by [New]
// when no options are given.
func DefaultConfig() Config {
	return Config{TargetCount: DefaultTargetCount}
}

// Validate returns an error wrapping [ErrInvalidConfig]
// if any field is negative.
func (c Config) Validate() error {
	switch {
	case c.TargetCount < 0:
		return negativeConfigError("targetCount", int64(c.TargetCount))
	case c.DrainResistance < 0:
		return negativeConfigError("drainResistance", int64(c.DrainResistance))
	case c.TargetBytes < 0:
		return negativeConfigError("targetBytes", c.TargetBytes)
	}
	return nil
}

// LoadConfig reads a [Config] from the file at path, in any format
// viper recognizes by extension. Environment variables named
// envPrefix_KEY (for example PCACHE_TARGETCOUNT) override the file.
// Keys missing from both fall back to [DefaultConfig].
func LoadConfig(path, envPrefix string) (Config, error) {
	var (
		v        = viper.New()
		defaults = DefaultConfig()
	)
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault("targetCount", defaults.TargetCount)
	v.SetDefault("drainResistance", defaults.DrainResistance)
	v.SetDefault("targetBytes", defaults.TargetBytes)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, platformerrors.Wrapf(err, platformerrors.CodeInvalidConfig,
			"failed to read config file %s", path)
	}
	var config Config
	if err := v.Unmarshal(&config, func(config *mapstructure.DecoderConfig) {
		config.TagName = "mapstructure"
	}); err != nil {
		return Config{}, platformerrors.Wrapf(err, platformerrors.CodeInvalidConfig,
			"failed to unmarshal config file %s", path)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}
