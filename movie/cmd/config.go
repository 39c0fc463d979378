package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mkvy/movies-gateway/pkg/logging"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// apiKeyEnv names the environment variable holding the upstream api key.
const apiKeyEnv = "TMDB_API_KEY"

type config struct {
	API        apiConfig        `yaml:"api"`
	TMDB       tmdbConfig       `yaml:"tmdb"`
	Static     staticConfig     `yaml:"static"`
	RateLimit  rateLimitConfig  `yaml:"ratelimit"`
	Prometheus prometheusConfig `yaml:"prometheus"`
	Jaeger     jaegerConfig     `yaml:"jaeger"`
	Log        logging.Config   `yaml:"log"`
}

type apiConfig struct {
	Port int `yaml:"port"`
}

type tmdbConfig struct {
	BaseURL          string        `yaml:"baseURL"`
	PrimaryLanguage  string        `yaml:"primaryLanguage"`
	FallbackLanguage string        `yaml:"fallbackLanguage"`
	Timeout          time.Duration `yaml:"timeout"`
	// APIKey is only ever read from the environment.
	APIKey string `yaml:"-"`
}

type staticConfig struct {
	Dir string `yaml:"dir"`
}

type rateLimitConfig struct {
	Limit int `yaml:"limit"`
	Burst int `yaml:"burst"`
}

type prometheusConfig struct {
	MetricsPort int `yaml:"metricsPort"`
}

type jaegerConfig struct {
	URL string `yaml:"url"`
}

func defaultConfig() config {
	return config{
		API: apiConfig{Port: 8083},
		TMDB: tmdbConfig{
			PrimaryLanguage:  "it-IT",
			FallbackLanguage: "en-US",
			Timeout:          10 * time.Second,
		},
		Static:    staticConfig{Dir: "./movie/static"},
		RateLimit: rateLimitConfig{Limit: 100, Burst: 100},
		Log:       logging.Config{Level: "info"},
	}
}

// loadConfig reads the YAML file at path over the defaults and takes the
// api key from the environment.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.TMDB.APIKey = os.Getenv(apiKeyEnv)
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *config) validate() error {
	if c.TMDB.APIKey == "" {
		return fmt.Errorf("%s is not set", apiKeyEnv)
	}
	if c.API.Port <= 0 {
		return errors.New("api.port must be positive")
	}
	primary, err := canonicalLanguage(c.TMDB.PrimaryLanguage)
	if err != nil {
		return fmt.Errorf("tmdb.primaryLanguage: %w", err)
	}
	c.TMDB.PrimaryLanguage = primary
	if c.TMDB.FallbackLanguage != "" {
		fallback, err := canonicalLanguage(c.TMDB.FallbackLanguage)
		if err != nil {
			return fmt.Errorf("tmdb.fallbackLanguage: %w", err)
		}
		c.TMDB.FallbackLanguage = fallback
	}
	return nil
}

// canonicalLanguage parses a BCP 47 tag such as "it-it" and returns its
// canonical form ("it-IT").
func canonicalLanguage(s string) (string, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", err
	}
	return tag.String(), nil
}
