package store

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type SessionStore struct{ db *sqlx.DB }

func NewSessionStore(db *sqlx.DB) *SessionStore { return &SessionStore{db: db} }

type Session struct {
	SID      string `db:"sid"`
	LoggedIn bool   `db:"logged_in"`
	Username string `db:"username"`
	Bearer   string `db:"bearer"`
}

// Get restores the persisted session state; an unknown sid reads as a
// logged-out session rather than an error.
func (s *SessionStore) Get(sid string) (Session, error) {
	var row Session
	err := s.db.Get(&row, `SELECT sid, logged_in, username, bearer FROM sessions WHERE sid = ?`, sid)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{SID: sid}, nil
	}
	if err != nil {
		return Session{}, err
	}
	return row, nil
}

func (s *SessionStore) SetLoggedIn(sid, username, bearer string) error {
	_, err := s.db.Exec(`
	  INSERT INTO sessions(sid, logged_in, username, bearer, updated_at)
	  VALUES (?, 1, ?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(sid) DO UPDATE SET
	    logged_in = 1, username = excluded.username, bearer = excluded.bearer,
	    updated_at = CURRENT_TIMESTAMP
	`, sid, username, bearer)
	return err
}

func (s *SessionStore) ClearLogin(sid string) error {
	_, err := s.db.Exec(`
	  INSERT INTO sessions(sid, logged_in, username, bearer, updated_at)
	  VALUES (?, 0, '', '', CURRENT_TIMESTAMP)
	  ON CONFLICT(sid) DO UPDATE SET
	    logged_in = 0, username = '', bearer = '', updated_at = CURRENT_TIMESTAMP
	`, sid)
	return err
}
