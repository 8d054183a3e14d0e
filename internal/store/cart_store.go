package store

import (
	"github.com/jmoiron/sqlx"
)

// CartStore owns every cart mutation. There is deliberately no other write
// path to cart_lines; add and clear both hit the database directly, so the
// persisted state can never trail the served state.
type CartStore struct{ db *sqlx.DB }

func NewCartStore(db *sqlx.DB) *CartStore { return &CartStore{db: db} }

type CartLine struct {
	ID       int64   `db:"id" json:"-"`
	Article  int     `db:"article" json:"article"`
	Name     string  `db:"name" json:"name"`
	Price    float64 `db:"price" json:"price"`
	Category string  `db:"category" json:"category"`
	Image    string  `db:"image" json:"image"`
}

// Add appends a line at the end of the cart. No dedup, no quantity merge:
// adding the same article twice yields two independent lines.
func (s *CartStore) Add(sid string, line CartLine) error {
	_, err := s.db.Exec(`
	  INSERT INTO cart_lines(sid, article, name, price, category, image)
	  VALUES (?, ?, ?, ?, ?, ?)
	`, sid, line.Article, line.Name, line.Price, line.Category, line.Image)
	return err
}

// Lines returns the cart in insertion order.
func (s *CartStore) Lines(sid string) ([]CartLine, error) {
	out := []CartLine{}
	err := s.db.Select(&out, `
	  SELECT id, article, name, price, category, image
	  FROM cart_lines WHERE sid = ? ORDER BY id
	`, sid)
	return out, err
}

func (s *CartStore) Clear(sid string) error {
	_, err := s.db.Exec(`DELETE FROM cart_lines WHERE sid = ?`, sid)
	return err
}

func (s *CartStore) Count(sid string) (int, error) {
	var n int
	err := s.db.Get(&n, `SELECT COUNT(*) FROM cart_lines WHERE sid = ?`, sid)
	return n, err
}
