package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`
			CREATE TABLE contacts (
				id TEXT PRIMARY KEY,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				full_name TEXT NOT NULL,
				salutation TEXT NOT NULL DEFAULT '',
				first_name TEXT NOT NULL DEFAULT '',
				middle_initials TEXT NOT NULL DEFAULT '',
				last_name TEXT NOT NULL DEFAULT '',
				suffix TEXT NOT NULL DEFAULT '',
				sort_name TEXT NOT NULL DEFAULT ''
			)
		`)
		if err != nil {
			return errors.WithStack(err)
		}

		// Contacts are listed alphabetically by last name, then first, then middle.
		_, err = db.Exec(`CREATE INDEX ix_contacts_name_order ON contacts(LOWER(last_name), LOWER(first_name), LOWER(middle_initials))`)
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}

	down := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec("DROP TABLE IF EXISTS contacts")
		return errors.WithStack(err)
	}

	Migrations.MustRegister(up, down)
}
