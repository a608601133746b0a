package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(Up00001, Down00001)
}

func Up00001(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		CREATE TABLE range_occurrences (
			tournament_id    TEXT,
			hand_id          TEXT,
			chunk_index      INTEGER,
			order_index      INTEGER,
			player           TEXT,
			position         TEXT,
			stage            TEXT,
			action           TEXT,
			cards            TEXT,
			tournament_stage TEXT,
			pot_bucket       TEXT,
			bb_bucket        TEXT,
			stack_bucket     TEXT,
			action_amount    DOUBLE,
			pot_before       DOUBLE,
			stack_size       DOUBLE,
			stack_size_bb    DOUBLE,
			bb_size          DOUBLE,
			amount_bb        DOUBLE,
			pot_odds         DOUBLE,
			showdown         BOOLEAN,
			source_file      TEXT
		)`)
	if err != nil {
		return fmt.Errorf("create range_occurrences: %w", err)
	}
	return nil
}

func Down00001(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS range_occurrences`)
	return err
}
