package config

// Config is the resolved configuration of one benchmark run.
type Config struct {
	Sizes       []int  `mapstructure:"sizes"`
	Trials      int    `mapstructure:"trials"`
	Quick       bool   `mapstructure:"quick"`
	Seed        uint64 `mapstructure:"seed"`
	OutputDir   string `mapstructure:"output_dir"`
	Verbose     bool   `mapstructure:"verbose"`
	LogFile     string `mapstructure:"log_file"`
	NoColor     bool   `mapstructure:"no_color"`
	MetricsPort int    `mapstructure:"metrics_port"`

	Export        ExportConfig        `mapstructure:"export"`
	Skip          SkipConfig          `mapstructure:"skip"`
	Store         StoreConfig         `mapstructure:"store"`
	Notifications NotificationsConfig `mapstructure:"notifications"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

type ExportConfig struct {
	JSON bool `mapstructure:"json"`
}

type SkipConfig struct {
	// QuadraticLimit is the largest size O(n²) algorithms are run on.
	QuadraticLimit int `mapstructure:"quadratic_limit"`
}

type StoreConfig struct {
	Type string `mapstructure:"type"` // "", "sqlite" or "postgres"
	DSN  string `mapstructure:"dsn"`
}

type NotificationsConfig struct {
	Slack SlackConfig `mapstructure:"slack"`
}

type SlackConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	WebhookURL string `mapstructure:"webhook_url"`
}

// Default sizes and trials for a full run, and the quick preset.
var (
	DefaultSizes = []int{10, 100, 1000, 10000, 50000}
	QuickSizes   = []int{100, 1000, 5000}
)

const (
	DefaultTrials         = 3
	DefaultQuadraticLimit = 50_000
)
