package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"unibot/internal/bot"
	"unibot/internal/config"
	"unibot/internal/domain"
	"unibot/internal/intent"
	"unibot/internal/knowledge"
	"unibot/internal/logger"
	"unibot/internal/model"
	"unibot/internal/seed"
	"unibot/internal/storage"
	"unibot/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/unibot/config.yaml if not provided)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.Logging.Mode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer lg.Sync()

	// Static response table
	statics := knowledge.NewTable()
	if cfg.Responses.Path != "" {
		statics, err = knowledge.LoadTable(cfg.Responses.Path)
		if err != nil {
			lg.Error("failed to load response table", "path", cfg.Responses.Path, "error", err)
			os.Exit(1)
		}
	}

	// Dynamic store is optional; a dead server degrades to store-disabled.
	var dynamic domain.DynamicStore
	if cfg.Storage.Driver != "" {
		store, err := storage.Open(storage.Config{
			Driver:   cfg.Storage.Driver,
			Host:     cfg.Storage.Host,
			User:     cfg.Storage.User,
			Password: os.Getenv(cfg.Storage.PasswordEnv),
			Database: cfg.Storage.Database,
			Path:     cfg.Storage.Path,
			Timeout:  time.Duration(cfg.Storage.TimeoutSecs) * time.Second,
		}, lg)
		if err != nil {
			lg.Warn("dynamic store unavailable, continuing without it", "error", err)
		} else {
			defer store.Close()
			dynamic = store
		}
	}

	// Learned model: load the snapshot if present, otherwise train on the
	// built-in seed corpus.
	lm := model.New(model.Options{
		SnapshotPath:        cfg.Model.SnapshotPath,
		SimilarityThreshold: cfg.Model.SimilarityThreshold,
		ConfidenceThreshold: cfg.Model.ConfidenceThreshold,
	}, lg)
	if err := lm.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			lg.Error("failed to load model snapshot", "path", cfg.Model.SnapshotPath, "error", err)
			os.Exit(1)
		}
		if err := lm.InitialTrain(seed.TrainingPairs()); err != nil {
			lg.Error("initial training failed", "error", err)
			os.Exit(1)
		}
		lg.Info("trained model from seed corpus", "pairs", lm.CorpusSize())
	} else {
		lg.Info("loaded model snapshot", "path", cfg.Model.SnapshotPath, "pairs", lm.CorpusSize())
	}

	resolver := bot.New(intent.New(), statics, dynamic, lm, lg)

	greeting, _ := statics.Response(domain.IntentGreeting)
	m := tui.New(resolver, greeting)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
