package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/pocket-ledger/internal/config"
	"github.com/carson-networks/pocket-ledger/internal/ledger"
)

// Storage owns the SQLite database backing the ledger. It is unusable until
// Init has completed.
type Storage struct {
	path        string
	busyTimeout time.Duration
	now         func() time.Time

	mu     sync.RWMutex
	db     *sql.DB
	bobDB  bob.DB
	inited bool
}

func New(cfg config.DatabaseConfig) *Storage {
	return &Storage{
		path:        cfg.Path,
		busyTimeout: cfg.BusyTimeout,
		now:         time.Now,
	}
}

// WithClock replaces the time source used for created_at/updated_at.
func (s *Storage) WithClock(now func() time.Time) *Storage {
	s.now = now
	return s
}

// Init applies pending migrations and opens the connection pool. Calling it
// again after a successful Init does nothing.
func (s *Storage) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inited {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ledger.WrapStorage("init", fmt.Errorf("create db directory: %w", err))
		}
	}

	if err := RunMigrations(s.dsn()); err != nil {
		return ledger.WrapStorage("init", err)
	}

	db, err := sql.Open("sqlite", s.dsn())
	if err != nil {
		return ledger.WrapStorage("init", fmt.Errorf("open sqlite database: %w", err))
	}
	// One connection gives one writer at a time.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return ledger.WrapStorage("init", fmt.Errorf("ping database: %w", err))
	}

	s.db = db
	s.bobDB = bob.NewDB(db)
	s.inited = true

	logrus.WithField("path", s.path).Info("Storage initialized")
	return nil
}

// Read returns a Reader over the shared connection.
func (s *Storage) Read() (*Reader, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.inited {
		return nil, ledger.ErrNotInitialized
	}
	return NewReader(s.bobDB), nil
}

// Write begins a transaction and returns a Writer bound to it. The caller
// must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.inited {
		return nil, ledger.ErrNotInitialized
	}

	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, ledger.WrapStorage("begin", err)
	}
	return NewWriter(tx, s.now), nil
}

// Reset drops every table and re-applies the schema.
func (s *Storage) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inited {
		return ledger.ErrNotInitialized
	}

	if err := ResetMigrations(s.dsn()); err != nil {
		return ledger.WrapStorage("reset", err)
	}
	if err := s.db.PingContext(ctx); err != nil {
		return ledger.WrapStorage("reset", err)
	}

	logrus.WithField("path", s.path).Warn("Storage reset")
	return nil
}

// MigrationVersion reports the applied schema version.
func (s *Storage) MigrationVersion() (uint, bool, error) {
	return MigrationStatus(s.dsn())
}

func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inited {
		return nil
	}
	s.inited = false
	return s.db.Close()
}

func (s *Storage) dsn() string {
	return DSN(s.path, s.busyTimeout)
}

// DSN builds a modernc sqlite connection string with foreign keys enforced.
func DSN(path string, busyTimeout time.Duration) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeout.Milliseconds()))
	q.Set("_txlock", "immediate")
	return "file:" + path + "?" + q.Encode()
}
