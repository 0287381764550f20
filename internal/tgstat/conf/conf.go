package conf

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/whoamihappyhacking/tgstat/pkg/util"
)

// DefaultKeywords is the fixed keyword set counted per month when the config
// does not override it.
var DefaultKeywords = []string{"люблю", "кохаю", "сумую", "добраніч"}

// Config holds the service configuration.
type Config struct {
	HTTPAddr   string `mapstructure:"http_addr" json:"http_addr"`
	DataDir    string `mapstructure:"data_dir" json:"data_dir"`
	DBFile     string `mapstructure:"db_file" json:"db_file"`
	ExportFile string `mapstructure:"export_file" json:"export_file"`
	AutoWatch  bool   `mapstructure:"auto_watch" json:"auto_watch"`

	Analysis AnalysisConfig `mapstructure:"analysis" json:"analysis"`
}

// AnalysisConfig controls the aggregation pass.
type AnalysisConfig struct {
	// Keywords is the ordered fixed keyword set. A single comma-separated
	// string is accepted for env overrides.
	Keywords []string `mapstructure:"keywords" json:"keywords"`

	// Timezone is the IANA zone used for month bucketing. Empty means the
	// process local zone, matching how exports were bucketed historically.
	Timezone string `mapstructure:"timezone" json:"timezone"`
}

// Load reads the configuration from file (optional) and TGSTAT_* env vars.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("http_addr", "127.0.0.1:5030")
	v.SetDefault("data_dir", ".")
	v.SetDefault("db_file", "tgstat.db")
	v.SetDefault("export_file", "result.json")
	v.SetDefault("auto_watch", false)
	v.SetDefault("analysis.keywords", DefaultKeywords)
	v.SetDefault("analysis.timezone", "")

	v.SetEnvPrefix("TGSTAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, err
	}
	conf.Normalize()
	return &conf, nil
}

// Normalize fills defaults and flattens comma-separated keyword lists.
func (c *Config) Normalize() {
	if c.HTTPAddr == "" {
		c.HTTPAddr = "127.0.0.1:5030"
	}
	if c.DBFile == "" {
		c.DBFile = "tgstat.db"
	}

	keywords := make([]string, 0, len(c.Analysis.Keywords))
	for _, kw := range c.Analysis.Keywords {
		keywords = append(keywords, util.Str2List(kw, ",")...)
	}
	if len(keywords) == 0 {
		keywords = append(keywords, DefaultKeywords...)
	}
	c.Analysis.Keywords = keywords
}

// Location resolves the configured bucketing time zone.
func (c *AnalysisConfig) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// GetHTTPAddr implements the HTTP service config interface.
func (c *Config) GetHTTPAddr() string { return c.HTTPAddr }

// GetExportFile returns the configured export path.
func (c *Config) GetExportFile() string { return c.ExportFile }

// IsAutoWatch reports whether the export file should be watched for changes.
func (c *Config) IsAutoWatch() bool { return c.AutoWatch }
