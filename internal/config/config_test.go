package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model.SnapshotPath != "chatbot_model.json" {
		t.Fatalf("snapshot path default missing: %q", cfg.Model.SnapshotPath)
	}
	if cfg.Model.SimilarityThreshold != 0.7 || cfg.Model.ConfidenceThreshold != 0.7 {
		t.Fatalf("threshold defaults missing: %+v", cfg.Model)
	}
	if cfg.Storage.Driver != "" {
		t.Fatalf("storage must be disabled by default, got %q", cfg.Storage.Driver)
	}
}

func TestLoadAppliesDefaultsToPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
storage:
  driver: sqlite
model:
  snapshot_path: /tmp/m.json
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model.SnapshotPath != "/tmp/m.json" {
		t.Fatalf("explicit value overridden: %q", cfg.Model.SnapshotPath)
	}
	if cfg.Storage.Path != "chatbot_responses.db" {
		t.Fatalf("sqlite path default missing: %q", cfg.Storage.Path)
	}
	if cfg.Storage.TimeoutSecs != 5 {
		t.Fatalf("timeout default missing: %d", cfg.Storage.TimeoutSecs)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Storage.Driver = "mysql"
	cfg.Storage.User = "bot"
	cfg.Storage.PasswordEnv = "CHATBOT_DB_PASSWORD"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Storage.Driver != "mysql" || loaded.Storage.User != "bot" || loaded.Storage.PasswordEnv != "CHATBOT_DB_PASSWORD" {
		t.Fatalf("round trip lost fields: %+v", loaded.Storage)
	}
}
