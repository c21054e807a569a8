package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"unibot/internal/logger"
)

// Config holds connection parameters for the dynamic response store.
// Credentials carry no defaults; Password is resolved by the caller
// (normally from the environment) before Open.
type Config struct {
	Driver   string // "mysql", "sqlite" or "" (store disabled)
	Host     string
	User     string
	Password string
	Database string
	Path     string // sqlite database file
	Timeout  time.Duration
}

const defaultTimeout = 5 * time.Second

// Store is the SQL-backed dynamic response store. Lookups are keyed by the
// exact question text; every query is parameterized and bounded by a
// timeout. Query failures are logged and reported as misses.
type Store struct {
	db      *sql.DB
	timeout time.Duration
	log     *logger.Logger
}

// Open connects to the configured database, verifies the connection and
// ensures the response table exists.
func Open(cfg Config, log *logger.Logger) (*Store, error) {
	var driver, dsn string
	switch cfg.Driver {
	case "mysql":
		if cfg.User == "" || cfg.Database == "" {
			return nil, errors.New("mysql storage requires user and database")
		}
		host := cfg.Host
		if host == "" {
			host = "localhost:3306"
		}
		driver = "mysql"
		dsn = fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", cfg.User, cfg.Password, host, cfg.Database)
	case "sqlite":
		if cfg.Path == "" {
			return nil, errors.New("sqlite storage requires a path")
		}
		driver = "sqlite"
		dsn = cfg.Path
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Driver)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Driver, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s storage: %w", cfg.Driver, err)
	}
	s := &Store{db: db, timeout: timeout, log: log}
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS chatbot_responses (
		question VARCHAR(512) PRIMARY KEY,
		response TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("ensure chatbot_responses table: %w", err)
	}
	return nil
}

// Lookup returns the stored response for the exact question text. Storage
// failures never surface to callers; they are logged and treated as a miss.
func (s *Store) Lookup(ctx context.Context, question string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	var response string
	err := s.db.QueryRowContext(ctx,
		`SELECT response FROM chatbot_responses WHERE question = ?`, question,
	).Scan(&response)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false
	case err != nil:
		s.log.Warn("dynamic store lookup failed", "question", question, "error", err)
		return "", false
	}
	return response, true
}

// Save upserts a (question, response) row. REPLACE INTO is understood by
// both supported drivers.
func (s *Store) Save(ctx context.Context, question, response string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	_, err := s.db.ExecContext(ctx,
		`REPLACE INTO chatbot_responses (question, response) VALUES (?, ?)`, question, response)
	if err != nil {
		return fmt.Errorf("save dynamic response: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
