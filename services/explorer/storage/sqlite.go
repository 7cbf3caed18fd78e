package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BquantFinance/world-data-bank/services/explorer/common"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("storage")

// ErrHistoryEntryNotFound signals that the requested history entry does not exist
var ErrHistoryEntryNotFound = errors.New("history entry not found")

// sqliteStorage persists the query history so the UI can offer recent
// selections across restarts. Failures writing history never fail the data
// path; callers log and move on.
type sqliteStorage struct {
	db               *sql.DB
	retentionSeconds int
	cancelFunc       context.CancelFunc
	wg               sync.WaitGroup
}

// NewSQLiteStorage creates the database, schema, and starts the retention cleaner
func NewSQLiteStorage(dbPath string, retentionSeconds int) (*sqliteStorage, error) {
	err := prepareDirectories(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create initial empty DB file: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = createSchema(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &sqliteStorage{
		db:               db,
		retentionSeconds: retentionSeconds,
		cancelFunc:       cancel,
	}

	s.startRetentionCleaner(ctx)

	return s, nil
}

func prepareDirectories(dbPath string) error {
	return os.MkdirAll(filepath.Dir(dbPath), os.ModePerm)
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS query_history (
		id           TEXT    NOT NULL PRIMARY KEY,
		kind         TEXT    NOT NULL,
		params       TEXT    NOT NULL,
		record_count INTEGER NOT NULL DEFAULT 0,
		recorded_at  INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_query_history_recorded_at ON query_history(recorded_at);
	CREATE INDEX IF NOT EXISTS idx_query_history_kind ON query_history(kind);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SaveQuery records one completed operation in the history
func (s *sqliteStorage) SaveQuery(ctx context.Context, kind string, params string, recordCount int) (string, error) {
	id := uuid.NewString()
	recordedAt := time.Now().Unix()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO query_history (id, kind, params, record_count, recorded_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, kind, params, recordCount, recordedAt)
	if err != nil {
		return "", fmt.Errorf("failed to insert history entry: %w", err)
	}

	return id, nil
}

// GetRecent returns up to limit history entries, newest first
func (s *sqliteStorage) GetRecent(ctx context.Context, limit int) ([]common.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, params, record_count, recorded_at
		FROM query_history
		ORDER BY recorded_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := make([]common.HistoryEntry, 0)
	for rows.Next() {
		var entry common.HistoryEntry
		err = rows.Scan(&entry.ID, &entry.Kind, &entry.Params, &entry.RecordCount, &entry.RecordedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Delete removes one history entry
func (s *sqliteStorage) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM query_history WHERE id = ?", id)
	if err != nil {
		return err
	}

	numAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if numAffected == 0 {
		return ErrHistoryEntryNotFound
	}

	return nil
}

func (s *sqliteStorage) cleanRetainedHistory(ctx context.Context) error {
	cutoff := time.Now().Unix() - int64(s.retentionSeconds)
	_, err := s.db.ExecContext(ctx, "DELETE FROM query_history WHERE recorded_at < ?", cutoff)
	return err
}

func (s *sqliteStorage) startRetentionCleaner(ctx context.Context) {
	s.wg.Add(1)

	// max(RetentionSeconds/10, 60)
	intervalSec := s.retentionSeconds / 10
	if intervalSec < 60 {
		intervalSec = 60
	}

	ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)

	go func() {
		defer s.wg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				log.Debug("running history retention cleanup")

				err := s.cleanRetainedHistory(ctx)
				if err != nil {
					log.Warn("failed to cleanup retained history", "error", err)
				}
			}
		}
	}()
}

// Close closes the database and stops background routines
func (s *sqliteStorage) Close() error {
	s.cancelFunc()
	s.wg.Wait()
	return s.db.Close()
}

// IsInterfaceNil returns true if the value under the interface is nil
func (s *sqliteStorage) IsInterfaceNil() bool {
	return s == nil
}
