// Package store is the embedded persistence for browser-session state: the
// cart and the login flag. Everything the shop itself owns (catalog, orders,
// favorites, reviews) lives upstream and is never written here.
package store

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- One row per browser session ('sid' cookie). logged_in is advisory only:
-- privileged flows re-verify against the upstream before trusting it.
CREATE TABLE IF NOT EXISTS sessions(
  sid        TEXT PRIMARY KEY,
  logged_in  INTEGER NOT NULL DEFAULT 0,
  username   TEXT NOT NULL DEFAULT '',
  bearer     TEXT NOT NULL DEFAULT '',
  updated_at TEXT
);

-- Cart lines. No quantity column: the same article may appear on several
-- rows, each row one unit. id preserves insertion order for display.
CREATE TABLE IF NOT EXISTS cart_lines(
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  sid        TEXT NOT NULL,
  article    INTEGER NOT NULL,
  name       TEXT NOT NULL,
  price      NUMERIC NOT NULL,
  category   TEXT NOT NULL DEFAULT '',
  image      TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_cart_lines_sid ON cart_lines(sid, id);
`
	_, err := db.Exec(schema)
	return err
}
