package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"sizes":        "sizes",
	"trials":       "trials",
	"quick":        "quick",
	"seed":         "seed",
	"output-dir":   "output_dir",
	"json":         "export.json",
	"verbose":      "verbose",
	"log-file":     "log_file",
	"no-color":     "no_color",
	"metrics-port": "metrics_port",
	"store-type":   "store.type",
	"store-dsn":    "store.dsn",
}

// Load resolves the configuration from, in increasing priority, defaults,
// config.yaml (or cfgFile), SORTBENCH_* environment variables and the flags
// that were set on the command line. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SORTBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if cfg.Quick {
		cfg.Sizes = slices.Clone(QuickSizes)
		cfg.Trials = 1
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sizes", DefaultSizes)
	v.SetDefault("trials", DefaultTrials)
	v.SetDefault("quick", false)
	v.SetDefault("seed", 0)
	v.SetDefault("output_dir", ".")
	v.SetDefault("verbose", false)
	v.SetDefault("log_file", "")
	v.SetDefault("no_color", false)
	v.SetDefault("metrics_port", 0)
	v.SetDefault("export.json", false)
	v.SetDefault("skip.quadratic_limit", DefaultQuadraticLimit)
	v.SetDefault("store.type", "")
	v.SetDefault("store.dsn", "")

	// Fall back to the conventional variable when SORTBENCH_NOTIFICATIONS_SLACK_WEBHOOK_URL is unset.
	webhook := os.Getenv("SLACK_WEBHOOK_URL")
	v.SetDefault("notifications.slack.enabled", false)
	v.SetDefault("notifications.slack.webhook_url", webhook)
}
