package sqlite

import (
	"database/sql"
)

const createPickerStateTable = `
CREATE TABLE IF NOT EXISTS picker_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

const createPickerStateIndex = `
CREATE INDEX IF NOT EXISTS picker_state_updated_at ON picker_state (updated_at);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(createPickerStateTable); err != nil {
		return err
	}
	if _, err := db.Exec(createPickerStateIndex); err != nil {
		return err
	}
	return nil
}
