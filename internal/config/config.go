package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// StorageConfig configures the dynamic response store. Credentials have no
// defaults; the password is resolved from the environment variable named by
// PasswordEnv. An empty driver disables the store.
type StorageConfig struct {
	Driver      string `yaml:"driver"`
	Host        string `yaml:"host"`
	User        string `yaml:"user"`
	PasswordEnv string `yaml:"password_env"`
	Database    string `yaml:"database"`
	Path        string `yaml:"path"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// ModelConfig configures the learned response model.
type ModelConfig struct {
	SnapshotPath        string  `yaml:"snapshot_path"`
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
}

// ResponsesConfig optionally points at a YAML file replacing the built-in
// static response table.
type ResponsesConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig selects the log output mode.
type LoggingConfig struct {
	Mode string `yaml:"mode"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Storage   StorageConfig   `yaml:"storage"`
	Model     ModelConfig     `yaml:"model"`
	Responses ResponsesConfig `yaml:"responses"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/unibot/config.yaml.
// If neither exists, it writes defaults to ~/.config/unibot/config.yaml and
// returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "unibot", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Model.SnapshotPath == "" {
		cfg.Model.SnapshotPath = "chatbot_model.json"
	}
	if cfg.Model.SimilarityThreshold == 0 {
		cfg.Model.SimilarityThreshold = 0.7
	}
	if cfg.Model.ConfidenceThreshold == 0 {
		cfg.Model.ConfidenceThreshold = 0.7
	}
	if cfg.Storage.TimeoutSecs == 0 {
		cfg.Storage.TimeoutSecs = 5
	}
	if cfg.Storage.Driver == "sqlite" && cfg.Storage.Path == "" {
		cfg.Storage.Path = "chatbot_responses.db"
	}
	if cfg.Logging.Mode == "" {
		cfg.Logging.Mode = "dev"
	}
}
