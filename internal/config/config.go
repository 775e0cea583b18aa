// Package config loads VibeAR settings from an optional YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds everything the analyzer, matcher and server need at construction time
type Settings struct {
	Provider  string          `yaml:"provider"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Ollama    OllamaConfig    `yaml:"ollama"`
	Sketchfab SketchfabConfig `yaml:"sketchfab"`
	Redis     RedisConfig     `yaml:"redis"`
	Server    ServerConfig    `yaml:"server"`
	Imaging   ImagingConfig   `yaml:"imaging"`
}

// GeminiConfig configures the Google Gemini provider
type GeminiConfig struct {
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
}

// OpenAIConfig configures the OpenAI provider
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// OllamaConfig configures a local Ollama server
type OllamaConfig struct {
	URL   string `yaml:"url"`
	Model string `yaml:"model"`
}

// SketchfabConfig configures the 3D-asset search API
type SketchfabConfig struct {
	Token    string        `yaml:"token"`
	BaseURL  string        `yaml:"base_url"`
	PageSize int           `yaml:"page_size"`
	Timeout  time.Duration `yaml:"timeout"`
}

// RedisConfig configures the session store; an empty Addr keeps sessions in memory
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port      string `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
}

// ImagingConfig bounds the photos sent to the vision model
type ImagingConfig struct {
	MaxDimension int `yaml:"max_dimension"`
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model:       "gemini-2.0-flash",
			Temperature: 0.4,
		},
		OpenAI: OpenAIConfig{
			Model:   "gpt-4o",
			BaseURL: "https://api.openai.com/v1",
		},
		Ollama: OllamaConfig{
			URL:   "http://localhost:11434",
			Model: "llava",
		},
		Sketchfab: SketchfabConfig{
			BaseURL:  "https://api.sketchfab.com/v3",
			PageSize: 8,
			Timeout:  30 * time.Second,
		},
		Redis: RedisConfig{
			Prefix: "vibear:session:",
			TTL:    2 * time.Hour,
		},
		Server: ServerConfig{
			Port:      "8888",
			StaticDir: "static",
		},
		Imaging: ImagingConfig{
			MaxDimension: 1600,
		},
	}
}

// Load reads the YAML file at path (if any) over the defaults, then applies environment overrides
func Load(path string) (Settings, error) {
	settings := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return settings, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return settings, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := settings.applyEnv(); err != nil {
		return settings, err
	}

	return settings, nil
}

func (s *Settings) applyEnv() error {
	setString(&s.Provider, "VIBEAR_PROVIDER")
	setString(&s.Gemini.APIKey, "GEMINI_API_KEY")
	setString(&s.Gemini.Model, "GEMINI_MODEL")
	setString(&s.OpenAI.APIKey, "OPENAI_API_KEY")
	setString(&s.OpenAI.Model, "OPENAI_MODEL")
	setString(&s.Ollama.URL, "OLLAMA_URL")
	setString(&s.Ollama.Model, "OLLAMA_MODEL")
	setString(&s.Sketchfab.Token, "SKETCHFAB_API_TOKEN")
	setString(&s.Sketchfab.BaseURL, "SKETCHFAB_API_URL")
	setString(&s.Redis.Addr, "REDIS_ADDR")
	setString(&s.Redis.Password, "REDIS_PASSWORD")
	setString(&s.Server.Port, "PORT")
	setString(&s.Server.StaticDir, "VIBEAR_STATIC_DIR")

	if err := setInt(&s.Sketchfab.PageSize, "VIBEAR_SEARCH_PAGE_SIZE"); err != nil {
		return err
	}
	if err := setInt(&s.Redis.DB, "REDIS_DB"); err != nil {
		return err
	}
	if err := setInt(&s.Imaging.MaxDimension, "VIBEAR_MAX_IMAGE_DIM"); err != nil {
		return err
	}

	if v := os.Getenv("VIBEAR_SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid VIBEAR_SESSION_TTL %q: %w", v, err)
		}
		s.Redis.TTL = ttl
	}

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}
