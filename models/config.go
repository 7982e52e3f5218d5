package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds optional runtime configuration loaded from config.yaml.
// Every field has a built-in default; a missing file is not an error.
type Config struct {
	DBPath string       `yaml:"db_path,omitempty"`
	Gemini GeminiConfig `yaml:"gemini,omitempty"`
}

// GeminiConfig configures the summarization client. The API key is always
// taken from the environment, never from the config file.
type GeminiConfig struct {
	BaseURL        string `yaml:"base_url,omitempty"`
	Model          string `yaml:"model,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

// LoadConfig reads the YAML config at path, falling back to zero values when
// the file does not exist.
func LoadConfig(path string) (*Config, error) {
	config := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}
