// Package storage хранит историю забегов в SQLite.
// Используется чистый Go-драйвер modernc.org/sqlite, без CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store - соединение с базой забегов.
type Store struct {
	db *sql.DB
}

// RunRecord - итог одного забега.
type RunRecord struct {
	ID          string
	Seed        int64
	Level       int
	XP          int
	BlocksMined int
	Duration    time.Duration
	EndedAt     time.Time
}

// Open создает или открывает базу по пути dbPath. ~ раскрывается в домашний каталог.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", dbPath, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			level INTEGER NOT NULL,
			xp INTEGER NOT NULL,
			blocks_mined INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(level DESC, xp DESC);
	`)
	return err
}

// Close закрывает соединение.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun записывает забег.
func (s *Store) SaveRun(r RunRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (id, seed, level, xp, blocks_mined, duration_ms, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Seed, r.Level, r.XP, r.BlocksMined, r.Duration.Milliseconds(), r.EndedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run %s: %w", r.ID, err)
	}
	return nil
}

// BestRun возвращает лучший забег: по уровню, затем по опыту.
// Второе значение false, если забегов ещё нет.
func (s *Store) BestRun() (RunRecord, bool, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, level, xp, blocks_mined, duration_ms, ended_at
		 FROM runs ORDER BY level DESC, xp DESC, ended_at ASC LIMIT 1`,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, false, nil
	}
	if err != nil {
		return RunRecord{}, false, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	return r, true, nil
}

// RecentRuns возвращает последние забеги, самые свежие первыми.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, seed, level, xp, blocks_mined, duration_ms, ended_at
		 FROM runs ORDER BY ended_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (RunRecord, error) {
	var r RunRecord
	var durationMs, endedAt int64
	if err := sc.Scan(&r.ID, &r.Seed, &r.Level, &r.XP, &r.BlocksMined, &durationMs, &endedAt); err != nil {
		return RunRecord{}, err
	}
	r.Duration = time.Duration(durationMs) * time.Millisecond
	r.EndedAt = time.Unix(endedAt, 0)
	return r, nil
}
