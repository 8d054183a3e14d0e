package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"foodcart/internal/domain"
	"foodcart/internal/services"
	"foodcart/internal/store"
)

func newProductFixture(t *testing.T, mux *http.ServeMux) (*services.ProductService, *store.CartStore, *int32) {
	t.Helper()
	db := memdb(t)
	client, calls := newUpstream(t, mux)
	cartStore := store.NewCartStore(db)
	catalogSvc := services.NewCatalogService(client)
	cartSvc := services.NewCartService(cartStore)
	return services.NewProductService(catalogSvc, cartSvc, client), cartStore, calls
}

func productMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/7", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.Product{
			Article: 7, Name: "Borscht", Category: "Soups", StoreName: "Central", Price: 12.5, Stock: 4, Released: true,
		})
	})
	mux.HandleFunc("GET /products/7/reviews", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.Review{{Username: "alice", ReviewText: "Tasty", Rating: 5}})
	})
	return mux
}

func TestDetail_LoadsProductReviewsAndFavorite(t *testing.T) {
	mux := productMux(t)
	mux.HandleFunc("POST /favorites/check", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Article int `json:"article"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Article != 7 {
			t.Errorf("favorite check for wrong article: %d", req.Article)
		}
		_, _ = w.Write([]byte(`{"isFavorite":true}`))
	})
	svc, _, _ := newProductFixture(t, mux)

	view, err := svc.Detail(context.Background(), "bob-cookie", 7)
	if err != nil {
		t.Fatal(err)
	}
	if view.Product.Name != "Borscht" || view.Product.Image == "" {
		t.Fatalf("bad product: %+v", view.Product)
	}
	if len(view.Reviews) != 1 || view.Reviews[0].Username != "alice" {
		t.Fatalf("bad reviews: %+v", view.Reviews)
	}
	if !view.IsFavorite {
		t.Fatal("favorite flag not set")
	}
}

func TestDetail_MissingCheckEndpointMeansNotFavorite(t *testing.T) {
	// no /favorites/check route: older upstreams answer 404 there
	svc, _, _ := newProductFixture(t, productMux(t))

	view, err := svc.Detail(context.Background(), "bob-cookie", 7)
	if err != nil {
		t.Fatal(err)
	}
	if view.IsFavorite {
		t.Fatal("404 on the check endpoint must read as not-favorite")
	}
}

func TestToggleFavorite_AddSendsArticleBody(t *testing.T) {
	var got struct {
		Article int `json:"article"`
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /favorites", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Product added to favorites"}`))
	})
	svc, _, _ := newProductFixture(t, mux)

	state, err := svc.ToggleFavorite(context.Background(), "bob-cookie", 7, false)
	if err != nil {
		t.Fatal(err)
	}
	if !state {
		t.Fatal("want favorite=true after add")
	}
	if got.Article != 7 {
		t.Fatalf("want body {article:7}, got %+v", got)
	}
}

func TestToggleFavorite_FailureKeepsCurrentState(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /favorites", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	svc, _, _ := newProductFixture(t, mux)

	state, err := svc.ToggleFavorite(context.Background(), "bob-cookie", 7, false)
	if err == nil {
		t.Fatal("want error on upstream failure")
	}
	if state {
		t.Fatal("favorite flag must stay false on failure")
	}
}

func TestToggleFavorite_RemoveUsesDelete(t *testing.T) {
	deleted := false
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /favorites/7", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		_, _ = w.Write([]byte(`{"message":"Product removed from favorites"}`))
	})
	svc, _, _ := newProductFixture(t, mux)

	state, err := svc.ToggleFavorite(context.Background(), "bob-cookie", 7, true)
	if err != nil {
		t.Fatal(err)
	}
	if state || !deleted {
		t.Fatalf("want DELETE and favorite=false, got state=%v deleted=%v", state, deleted)
	}
}

func TestSubmitReview_SynthesizesLocalRecord(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /products/7/reviews", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Review string `json:"review"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Review != "Great!" {
			t.Errorf("want review body Great!, got %q", req.Review)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Review added successfully"}`))
	})
	svc, _, calls := newProductFixture(t, mux)

	review, err := svc.SubmitReview(context.Background(), "bob-cookie", "bob", 7, "Great!")
	if err != nil {
		t.Fatal(err)
	}
	if review.Username != "bob" || review.ReviewText != "Great!" {
		t.Fatalf("bad synthesized review: %+v", review)
	}
	// one POST, no refetch of the review list
	if *calls != 1 {
		t.Fatalf("want exactly 1 upstream call, got %d", *calls)
	}
}

func TestSubmitReview_FallsBackToGuest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /products/7/reviews", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	svc, _, _ := newProductFixture(t, mux)

	review, err := svc.SubmitReview(context.Background(), "bob-cookie", "", 7, "Nice")
	if err != nil {
		t.Fatal(err)
	}
	if review.Username != "guest" {
		t.Fatalf("want guest fallback, got %q", review.Username)
	}
}

func TestSubmitReview_RejectsBlankTextBeforeNetwork(t *testing.T) {
	svc, _, calls := newProductFixture(t, http.NewServeMux())

	_, err := svc.SubmitReview(context.Background(), "bob-cookie", "bob", 7, "   \n\t")
	if !errors.Is(err, services.ErrEmptyReview) {
		t.Fatalf("want ErrEmptyReview, got %v", err)
	}
	if *calls != 0 {
		t.Fatalf("no upstream call expected, got %d", *calls)
	}
}

func TestAddToCart_RoutesThroughCartStore(t *testing.T) {
	svc, cartStore, _ := newProductFixture(t, productMux(t))
	sid := "sid-1"

	line, err := svc.AddToCart(context.Background(), sid, 7)
	if err != nil {
		t.Fatal(err)
	}
	if line.Article != 7 || line.Name != "Borscht" || line.Price != 12.5 || line.Image == "" {
		t.Fatalf("bad cart projection: %+v", line)
	}

	lines, err := cartStore.Lines(sid)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Article != 7 || lines[0].Image != line.Image {
		t.Fatalf("cart store not updated through the owning path: %+v", lines)
	}
}
