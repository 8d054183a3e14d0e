package store_test

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"foodcart/internal/store"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := store.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCartStore_AppendsInOrderWithDuplicates(t *testing.T) {
	carts := store.NewCartStore(memdb(t))
	sid := "sid-1"

	seq := []store.CartLine{
		{Article: 10, Name: "Borscht", Price: 12.50, Category: "Soups"},
		{Article: 20, Name: "Pelmeni", Price: 8.00, Category: "Mains"},
		{Article: 10, Name: "Borscht", Price: 12.50, Category: "Soups"}, // second unit, own line
	}
	for _, l := range seq {
		if err := carts.Add(sid, l); err != nil {
			t.Fatal(err)
		}
	}

	lines, err := carts.Lines(sid)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d", len(lines))
	}
	for i, l := range lines {
		if l.Article != seq[i].Article || l.Name != seq[i].Name || l.Price != seq[i].Price {
			t.Fatalf("line %d out of order: %+v", i, l)
		}
	}
}

func TestCartStore_ClearPersistsEmpty(t *testing.T) {
	carts := store.NewCartStore(memdb(t))
	sid := "sid-2"

	if err := carts.Add(sid, store.CartLine{Article: 1, Name: "Tea", Price: 2}); err != nil {
		t.Fatal(err)
	}
	if err := carts.Clear(sid); err != nil {
		t.Fatal(err)
	}

	lines, err := carts.Lines(sid)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Fatalf("want empty cart after clear, got %d lines", len(lines))
	}
	n, err := carts.Count(sid)
	if err != nil || n != 0 {
		t.Fatalf("want count 0, got %d (err=%v)", n, err)
	}
}

func TestCartStore_SessionsAreIsolated(t *testing.T) {
	carts := store.NewCartStore(memdb(t))

	if err := carts.Add("sid-a", store.CartLine{Article: 1, Name: "Tea", Price: 2}); err != nil {
		t.Fatal(err)
	}
	if err := carts.Add("sid-b", store.CartLine{Article: 2, Name: "Coffee", Price: 3}); err != nil {
		t.Fatal(err)
	}
	if err := carts.Clear("sid-a"); err != nil {
		t.Fatal(err)
	}

	lines, err := carts.Lines("sid-b")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Article != 2 {
		t.Fatalf("sid-b cart affected by sid-a clear: %+v", lines)
	}
}

func TestSessionStore_RoundTrip(t *testing.T) {
	sessions := store.NewSessionStore(memdb(t))

	// unknown sid reads as logged out
	sess, err := sessions.Get("nobody")
	if err != nil {
		t.Fatal(err)
	}
	if sess.LoggedIn || sess.Bearer != "" {
		t.Fatalf("unknown sid should be logged out: %+v", sess)
	}

	if err := sessions.SetLoggedIn("sid-1", "alice", "alice-cookie"); err != nil {
		t.Fatal(err)
	}
	sess, err = sessions.Get("sid-1")
	if err != nil {
		t.Fatal(err)
	}
	if !sess.LoggedIn || sess.Username != "alice" || sess.Bearer != "alice-cookie" {
		t.Fatalf("bad session after login: %+v", sess)
	}

	if err := sessions.ClearLogin("sid-1"); err != nil {
		t.Fatal(err)
	}
	sess, _ = sessions.Get("sid-1")
	if sess.LoggedIn || sess.Bearer != "" || sess.Username != "" {
		t.Fatalf("session not cleared: %+v", sess)
	}
}
