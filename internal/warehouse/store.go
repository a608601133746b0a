package warehouse

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"
)

// BatchSize is the number of rows inserted per transaction, matching
// the ceiling used by the original warehouse exporter this package
// replaces.
const BatchSize = 200_000

// Store is a disposable sqlite-backed analytical warehouse. Open
// deletes any existing file at path and recreates the schema from
// scratch; a partial previous run never lingers.
type Store struct {
	db *sql.DB
}

// Open removes any existing warehouse file at path, opens a fresh
// sqlite database there, and runs the range_occurrences migration.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("remove existing warehouse: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open warehouse: %w", err)
	}
	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenExisting opens a warehouse file for reading without touching its
// contents, for the serve and query commands which run against an
// already-ingested warehouse.
func OpenExisting(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open warehouse %s: %w", path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open warehouse: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB exposes the underlying handle for the query service and report
// builder, which issue read-only aggregate SQL against it.
func (s *Store) DB() *sql.DB {
	return s.db
}

const insertStmt = `
	INSERT INTO range_occurrences (
		tournament_id, hand_id, chunk_index, order_index, player, position,
		stage, action, cards, tournament_stage, pot_bucket, bb_bucket,
		stack_bucket, action_amount, pot_before, stack_size, stack_size_bb,
		bb_size, amount_bb, pot_odds, showdown, source_file
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// LoadOccurrences inserts occurrences in batches of BatchSize, each
// batch in its own transaction, and creates the lookup indexes only
// after the final batch lands (§4.8) — index maintenance during bulk
// load would otherwise dominate ingest time.
func (s *Store) LoadOccurrences(occurrences []Occurrence) error {
	for start := 0; start < len(occurrences); start += BatchSize {
		end := start + BatchSize
		if end > len(occurrences) {
			end = len(occurrences)
		}
		if err := s.insertBatch(occurrences[start:end]); err != nil {
			return err
		}
		slog.Debug("loaded warehouse batch", "rows", end-start, "total_loaded", end)
	}
	return s.createIndexes()
}

func (s *Store) insertBatch(batch []Occurrence) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertStmt)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, occ := range batch {
		_, err := stmt.Exec(
			occ.TournamentID, occ.HandID, occ.ChunkIndex, occ.OrderIndex, occ.Player, occ.Position,
			occ.Stage, occ.Action, occ.Cards, occ.TournamentStage, occ.PotBucket, occ.BBBucket,
			occ.StackBucket, occ.ActionAmount, occ.PotBefore, occ.StackSize, occ.StackSizeBB,
			occ.BBSize, occ.AmountBB, occ.PotOdds, occ.Showdown, occ.SourceFile,
		)
		if err != nil {
			return fmt.Errorf("insert occurrence: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

func (s *Store) createIndexes() error {
	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_range_key ON range_occurrences(position, stage, action)`,
		`CREATE INDEX IF NOT EXISTS idx_range_buckets ON range_occurrences(pot_bucket, bb_bucket, stack_bucket)`,
		`CREATE INDEX IF NOT EXISTS idx_range_stage ON range_occurrences(tournament_stage)`,
	}
	for _, q := range stmts {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
