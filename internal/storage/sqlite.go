// Package storage provides SQLite-based persistence for run summaries and
// their checkpoint lists. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies. The sim core never touches this package; it is a
// consumer of the core's exported result and checkpoint types.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/fortress-run/internal/checkpoint"
	"github.com/vovakirdan/fortress-run/internal/sim"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord is a stored run summary.
type RunRecord struct {
	ID            int64
	Preset        string
	Seed          uint32
	TicksSurvived uint64
	WavesCleared  int
	Kills         int
	EliteKills    int
	GoldEarned    int
	DustEarned    int
	Won           bool
	FinalHash     uint32
	CreatedAt     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset TEXT NOT NULL,
			seed INTEGER NOT NULL,
			ticks_survived INTEGER NOT NULL,
			waves_cleared INTEGER NOT NULL,
			kills INTEGER NOT NULL,
			elite_kills INTEGER NOT NULL,
			gold_earned INTEGER NOT NULL,
			dust_earned INTEGER NOT NULL,
			won INTEGER NOT NULL,
			final_hash INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS checkpoints (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			hash32 INTEGER NOT NULL,
			chain_hash32 INTEGER NOT NULL,
			PRIMARY KEY (run_id, seq)
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores a run result with its ordered checkpoint list and the
// final hash, in one transaction. Returns the new run id.
func (s *Store) SaveRun(preset string, res sim.Result, finalHash uint32, cps []checkpoint.Checkpoint) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: begin: %w", err)
	}
	defer tx.Rollback()

	out, err := tx.Exec(`
		INSERT INTO runs (preset, seed, ticks_survived, waves_cleared, kills,
			elite_kills, gold_earned, dust_earned, won, final_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		preset, res.Seed, res.TicksSurvived, res.WavesCleared, res.Kills,
		res.EliteKills, res.GoldEarned, res.DustEarned, res.Won, finalHash)
	if err != nil {
		return 0, fmt.Errorf("storage: insert run: %w", err)
	}
	runID, err := out.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: run id: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO checkpoints (run_id, seq, tick, hash32, chain_hash32)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("storage: prepare checkpoints: %w", err)
	}
	defer stmt.Close()
	for i, cp := range cps {
		if _, err := stmt.Exec(runID, i, cp.Tick, cp.Hash32, cp.ChainHash32); err != nil {
			return 0, fmt.Errorf("storage: insert checkpoint %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: commit: %w", err)
	}
	return runID, nil
}

// GetRun retrieves one stored run by id.
func (s *Store) GetRun(id int64) (RunRecord, error) {
	var r RunRecord
	err := s.db.QueryRow(`
		SELECT id, preset, seed, ticks_survived, waves_cleared, kills,
			elite_kills, gold_earned, dust_earned, won, final_hash, created_at
		FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &r.Preset, &r.Seed, &r.TicksSurvived, &r.WavesCleared,
			&r.Kills, &r.EliteKills, &r.GoldEarned, &r.DustEarned, &r.Won,
			&r.FinalHash, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return r, fmt.Errorf("storage: run %d not found", id)
	}
	if err != nil {
		return r, fmt.Errorf("storage: get run: %w", err)
	}
	return r, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, preset, seed, ticks_survived, waves_cleared, kills,
			elite_kills, gold_earned, dust_earned, won, final_hash, created_at
		FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: list runs: %w", err)
	}
	defer rows.Close()

	var result []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.Preset, &r.Seed, &r.TicksSurvived,
			&r.WavesCleared, &r.Kills, &r.EliteKills, &r.GoldEarned,
			&r.DustEarned, &r.Won, &r.FinalHash, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// Checkpoints returns a run's checkpoint list in recorded order.
func (s *Store) Checkpoints(runID int64) ([]checkpoint.Checkpoint, error) {
	rows, err := s.db.Query(`
		SELECT tick, hash32, chain_hash32 FROM checkpoints
		WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("storage: checkpoints: %w", err)
	}
	defer rows.Close()

	var result []checkpoint.Checkpoint
	for rows.Next() {
		var cp checkpoint.Checkpoint
		if err := rows.Scan(&cp.Tick, &cp.Hash32, &cp.ChainHash32); err != nil {
			return nil, fmt.Errorf("storage: scan checkpoint: %w", err)
		}
		result = append(result, cp)
	}
	return result, rows.Err()
}
