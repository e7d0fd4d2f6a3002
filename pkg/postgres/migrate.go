package postgres

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

// schema is applied in order. Every statement must be idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS item (
		id     UUID PRIMARY KEY,
		name   TEXT NOT NULL,
		colour TEXT NOT NULL
	)`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'item_name_not_blank') THEN
			ALTER TABLE item ADD CONSTRAINT item_name_not_blank CHECK (btrim(name) <> '');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'item_colour_not_blank') THEN
			ALTER TABLE item ADD CONSTRAINT item_colour_not_blank CHECK (btrim(colour) <> '');
		END IF;
	END $$`,
}

// Migrate creates the item table and its constraints when missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "could not begin migration")
	}
	defer tx.Rollback()

	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrapf(err, "could not apply schema statement #%d", i)
		}
	}

	return errors.WithStack(tx.Commit())
}
