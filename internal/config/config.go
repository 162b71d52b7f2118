package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Contentful ContentfulConfig `mapstructure:"contentful"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Site       SiteConfig       `mapstructure:"site"`
}

type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	RateLimit      int           `mapstructure:"rateLimit"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"`
}

type ContentfulConfig struct {
	SpaceID     string        `mapstructure:"spaceId"`
	AccessToken string        `mapstructure:"accessToken"`
	Environment string        `mapstructure:"environment"`
	Host        string        `mapstructure:"host"`
	Timeout     time.Duration `mapstructure:"timeout"`
	SermonLimit int           `mapstructure:"sermonLimit"`
}

type CacheConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	RedisAddr     string        `mapstructure:"redisAddr"`
	RedisPassword string        `mapstructure:"redisPassword"`
	RedisDB       int           `mapstructure:"redisDb"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type SiteConfig struct {
	Timezone      string `mapstructure:"timezone"`
	TemplatesDir  string `mapstructure:"templatesDir"`
	WebhookSecret string `mapstructure:"webhookSecret"`
}

var envBindings = map[string]string{
	"server.port":            "PORT",
	"server.rateLimit":       "RATE_LIMIT",
	"server.requestTimeout":  "REQUEST_TIMEOUT",
	"contentful.spaceId":     "CONTENTFUL_SPACE_ID",
	"contentful.accessToken": "CONTENTFUL_ACCESS_TOKEN",
	"contentful.environment": "CONTENTFUL_ENVIRONMENT",
	"contentful.host":        "CONTENTFUL_HOST",
	"contentful.timeout":     "CONTENTFUL_TIMEOUT",
	"contentful.sermonLimit": "CONTENTFUL_SERMON_LIMIT",
	"cache.ttl":              "CACHE_TTL",
	"cache.redisAddr":        "REDIS_ADDR",
	"cache.redisPassword":    "REDIS_PASSWORD",
	"cache.redisDb":          "REDIS_DB",
	"logging.level":          "LOG_LEVEL",
	"logging.file":           "LOG_FILE",
	"site.timezone":          "SITE_TIMEZONE",
	"site.templatesDir":      "TEMPLATES_DIR",
	"site.webhookSecret":     "WEBHOOK_SECRET",
}

// DefaultSermonLimit is how many sermons the site requests per visit.
const DefaultSermonLimit = 100

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.rateLimit", 500)
	v.SetDefault("server.requestTimeout", 60*time.Second)
	v.SetDefault("contentful.environment", "master")
	v.SetDefault("contentful.host", "https://cdn.contentful.com")
	v.SetDefault("contentful.timeout", 10*time.Second)
	// The sermons page pages through this list, so it must exceed the
	// initial page of 10 for "load more" to appear.
	v.SetDefault("contentful.sermonLimit", DefaultSermonLimit)
	v.SetDefault("cache.ttl", time.Duration(0))
	v.SetDefault("cache.redisDb", 0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("site.timezone", "Local")
}

// Load reads .env, then the optional YAML file at cfgFile (or ./config.yaml),
// then the environment. Missing CMS credentials are not an error.
func Load(cfgFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg.Server.Port = strings.TrimPrefix(strings.TrimSpace(cfg.Server.Port), ":")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT must not be negative")
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("SITE_TIMEZONE: %w", err)
	}
	return nil
}

// Location resolves the timezone CMS dates are anchored in.
func (c *Config) Location() (*time.Location, error) {
	switch strings.TrimSpace(c.Site.Timezone) {
	case "", "Local":
		return time.Local, nil
	default:
		return time.LoadLocation(c.Site.Timezone)
	}
}
