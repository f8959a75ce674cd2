package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Cache struct {
		Backend         string        `yaml:"backend"` // file or redis
		Dir             string        `yaml:"dir"`
		QuoteTTLOpen    time.Duration `yaml:"quote_ttl_open"`
		QuoteTTLClosed  time.Duration `yaml:"quote_ttl_closed"`
		IntradayTTL     time.Duration `yaml:"intraday_ttl"`
		MemoryTTL       time.Duration `yaml:"memory_ttl"`
		Redis           struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Market struct {
		Timezone string `yaml:"timezone"`
		Open     string `yaml:"open"`  // HH:MM, session start in market timezone
		Close    string `yaml:"close"` // HH:MM, exclusive
	} `yaml:"market"`
	Analytics struct {
		NotableMinAmount       float64 `yaml:"notable_min_amount"`
		NotableLimit           int     `yaml:"notable_limit"`
		FrequentLookbackMonths int     `yaml:"frequent_lookback_months"`
		FrequentMinCount       int     `yaml:"frequent_min_count"`
		MultiLookbackMonths    int     `yaml:"multi_lookback_months"`
		MultiMinTotal          int     `yaml:"multi_min_total"`
	} `yaml:"analytics"`
	Quiver struct {
		BaseURL  string        `yaml:"base_url"`
		APIToken string        `yaml:"api_token"`
		PageSize int           `yaml:"page_size"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"quiver"`
	Finnhub struct {
		BaseURL string        `yaml:"base_url"`
		APIKey  string        `yaml:"api_key"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"finnhub"`
	News struct {
		BaseURL string        `yaml:"base_url"`
		APIKey  string        `yaml:"api_key"`
		Country string        `yaml:"country"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"news"`
	Yahoo struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"yahoo"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides secrets with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("QUIVER_API_TOKEN"); v != "" {
		c.Quiver.APIToken = v
	}
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		c.Finnhub.APIKey = v
	}
	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		c.News.APIKey = v
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "file"
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = "storage"
	}
	if c.Cache.QuoteTTLOpen == 0 {
		c.Cache.QuoteTTLOpen = 10 * time.Minute
	}
	if c.Cache.QuoteTTLClosed == 0 {
		c.Cache.QuoteTTLClosed = 4 * time.Hour
	}
	if c.Cache.IntradayTTL == 0 {
		c.Cache.IntradayTTL = 30 * time.Minute
	}
	if c.Cache.MemoryTTL == 0 {
		c.Cache.MemoryTTL = 30 * time.Second
	}
	if c.Market.Timezone == "" {
		c.Market.Timezone = "America/Los_Angeles"
	}
	if c.Market.Open == "" {
		c.Market.Open = "06:30"
	}
	if c.Market.Close == "" {
		c.Market.Close = "13:00"
	}
	if c.Analytics.NotableMinAmount == 0 {
		c.Analytics.NotableMinAmount = 50001
	}
	if c.Analytics.NotableLimit == 0 {
		c.Analytics.NotableLimit = 20
	}
	if c.Analytics.FrequentLookbackMonths == 0 {
		c.Analytics.FrequentLookbackMonths = 3
	}
	if c.Analytics.FrequentMinCount == 0 {
		c.Analytics.FrequentMinCount = 3
	}
	if c.Analytics.MultiLookbackMonths == 0 {
		c.Analytics.MultiLookbackMonths = 6
	}
	if c.Analytics.MultiMinTotal == 0 {
		c.Analytics.MultiMinTotal = 10
	}
	if c.Quiver.BaseURL == "" {
		c.Quiver.BaseURL = "https://api.quiverquant.com/beta"
	}
	if c.Quiver.PageSize == 0 {
		c.Quiver.PageSize = 50
	}
	if c.Quiver.Timeout == 0 {
		c.Quiver.Timeout = 15 * time.Second
	}
	if c.Finnhub.BaseURL == "" {
		c.Finnhub.BaseURL = "https://finnhub.io/api/v1"
	}
	if c.Finnhub.Timeout == 0 {
		c.Finnhub.Timeout = 10 * time.Second
	}
	if c.News.BaseURL == "" {
		c.News.BaseURL = "https://newsapi.org/v2"
	}
	if c.News.Country == "" {
		c.News.Country = "us"
	}
	if c.News.Timeout == 0 {
		c.News.Timeout = 10 * time.Second
	}
	if c.Yahoo.BaseURL == "" {
		c.Yahoo.BaseURL = "https://query1.finance.yahoo.com/v8/finance"
	}
	if c.Yahoo.Timeout == 0 {
		c.Yahoo.Timeout = 10 * time.Second
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Cache.Backend != "file" && c.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be 'file' or 'redis', got '%s'", c.Cache.Backend)
	}
	if c.Cache.Backend == "redis" && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required for redis backend")
	}
	if _, err := time.LoadLocation(c.Market.Timezone); err != nil {
		return fmt.Errorf("market.timezone: %w", err)
	}
	for _, hm := range []string{c.Market.Open, c.Market.Close} {
		if _, err := time.Parse("15:04", hm); err != nil {
			return fmt.Errorf("market session window must be HH:MM, got '%s'", hm)
		}
	}
	return nil
}
