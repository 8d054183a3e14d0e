package services_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"foodcart/internal/api"
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

// newUpstream wraps a mux in a call counter so tests can assert that
// precondition failures never reach the network.
func newUpstream(t *testing.T, mux *http.ServeMux) (*api.Client, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return api.New(srv.URL, 5*time.Second), &calls
}
