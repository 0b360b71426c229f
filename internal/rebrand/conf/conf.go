package conf

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sjzar/bnetrebrand/internal/bnet/archive"
	"github.com/sjzar/bnetrebrand/internal/bnet/model"
	"github.com/sjzar/bnetrebrand/internal/bnet/process"
	"github.com/sjzar/bnetrebrand/internal/errors"
)

const (
	AppName   = "bnetrebrand"
	EnvPrefix = "BNETREBRAND"

	DefaultSettleDelay = time.Second
)

type Config struct {
	Tool             string         `mapstructure:"tool"`
	WorkDir          string         `mapstructure:"work_dir"`
	FallbackDir      string         `mapstructure:"fallback_dir"`
	Registry         RegistryConfig `mapstructure:"registry"`
	TerminateTimeout time.Duration  `mapstructure:"terminate_timeout"`
	SettleDelay      time.Duration  `mapstructure:"settle_delay"`
	LogFile          string         `mapstructure:"log_file"`
	Debug            bool           `mapstructure:"debug"`
}

type RegistryConfig struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("tool", archive.DefaultTool)
	v.SetDefault("work_dir", ".")
	v.SetDefault("fallback_dir", model.DefaultFallbackDir)
	v.SetDefault("registry.key", model.RegistryKeyPath)
	v.SetDefault("registry.value", model.RegistryValueName)
	v.SetDefault("terminate_timeout", process.DefaultTerminateTimeout)
	v.SetDefault("settle_delay", DefaultSettleDelay)
	v.SetDefault("log_file", "")
	v.SetDefault("debug", false)
}

// Load reads file, or bnetrebrand.yaml from the working directory or the
// user config directory when file is empty, on top of defaults and
// BNETREBRAND_* environment variables. A missing implicit config file is fine.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, errors.InvalidConfig(err, "read config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.InvalidConfig(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Tool) == "" {
		return errors.InvalidConfig(nil, "tool is empty")
	}
	if c.TerminateTimeout <= 0 {
		return errors.InvalidConfig(nil, "terminate_timeout must be positive, got %s", c.TerminateTimeout)
	}
	if c.SettleDelay < 0 {
		return errors.InvalidConfig(nil, "settle_delay must not be negative, got %s", c.SettleDelay)
	}
	return nil
}
