package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"contentteam/internal/cultural"
	"contentteam/internal/lexicon"
	"contentteam/internal/llm"
	"contentteam/internal/logging"
	"contentteam/internal/mobile"
	"contentteam/internal/quality"
	"contentteam/internal/readability"
	"contentteam/internal/seo"
	"contentteam/internal/team"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config.yaml"

type AIConfig struct {
	Provider          string  `yaml:"provider" validate:"omitempty,oneof=gemini openai lmstudio"`
	Model             string  `yaml:"model"`
	APIKey            string  `yaml:"api_key"`
	BaseURL           string  `yaml:"base_url" validate:"omitempty,url"`
	TimeoutSeconds    int     `yaml:"timeout_seconds" validate:"gte=0"`
	RequestsPerMinute float64 `yaml:"requests_per_minute" validate:"gte=0"`
}

// Options converts the section into llm client options.
func (a AIConfig) Options() llm.Options {
	return llm.Options{
		Provider:          a.Provider,
		APIKey:            a.APIKey,
		Model:             a.Model,
		BaseURL:           a.BaseURL,
		Timeout:           time.Duration(a.TimeoutSeconds) * time.Second,
		RequestsPerMinute: a.RequestsPerMinute,
	}
}

type ScoringConfig struct {
	Readability readability.Config `yaml:"readability"`
	Cultural    cultural.Config    `yaml:"cultural"`
	Mobile      mobile.Config      `yaml:"mobile"`
	Quality     quality.Config     `yaml:"quality"`
	SEO         seo.Config         `yaml:"seo"`
}

type StorageConfig struct {
	Path      string `yaml:"path" validate:"required"`
	ReportDir string `yaml:"report_dir"`
}

type MetricsConfig struct {
	// Textfile, when set, receives a Prometheus text dump after each command.
	Textfile string `yaml:"textfile"`
}

type Config struct {
	AI       AIConfig         `yaml:"ai"`
	Agents   team.Config      `yaml:"agents"`
	Regional lexicon.Regional `yaml:"regional"`
	Scoring  ScoringConfig    `yaml:"scoring"`
	Log      logging.Config   `yaml:"log"`
	Storage  StorageConfig    `yaml:"storage"`
	Metrics  MetricsConfig    `yaml:"metrics"`
}

func Default() *Config {
	return &Config{
		AI: AIConfig{
			Provider:       "gemini",
			Model:          "gemini-2.0-flash",
			TimeoutSeconds: 120,
		},
		Agents:   team.DefaultConfig(),
		Regional: lexicon.DefaultRegional(),
		Scoring: ScoringConfig{
			Readability: readability.DefaultConfig(),
			Cultural:    cultural.DefaultConfig(),
			Mobile:      mobile.DefaultConfig(),
			Quality:     quality.DefaultConfig(),
			SEO:         seo.DefaultConfig(),
		},
		Log: logging.DefaultConfig(),
		Storage: StorageConfig{
			Path:      "contentteam.db",
			ReportDir: "output",
		},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error;
// the defaults plus environment overrides are returned.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config
	cfg := Default()
	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	cfg.Regional = cfg.Regional.Merge(lexicon.DefaultRegional())

	// 3. Override with Environment Variables if present
	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("CONTENTTEAM_AI_PROVIDER"); v != "" {
		cfg.AI.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("CONTENTTEAM_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("CONTENTTEAM_MODEL"); v != "" {
		cfg.AI.Model = v
	}
	if v := os.Getenv("CONTENTTEAM_BASE_URL"); v != "" {
		cfg.AI.BaseURL = v
	}
	if v := os.Getenv("CONTENTTEAM_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("CONTENTTEAM_DB_PATH"); v != "" {
		cfg.Storage.Path = v
	}

	if cfg.AI.APIKey != "" {
		return
	}
	switch cfg.AI.Provider {
	case "gemini", "":
		cfg.AI.APIKey = os.Getenv("GEMINI_API_KEY")
	case "openai":
		cfg.AI.APIKey = os.Getenv("OPENAI_API_KEY")
	case "lmstudio":
		cfg.AI.APIKey = os.Getenv("LMSTUDIO_API_KEY")
	}
}

var validate = validator.New()

// Validate checks field constraints and reports every violation at once.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s' (value: '%v')", e.Namespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
