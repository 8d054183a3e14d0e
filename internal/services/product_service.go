package services

import (
	"context"
	"errors"

	"foodcart/internal/api"
	"foodcart/internal/domain"
	"foodcart/internal/store"
	"foodcart/internal/validate"
)

var ErrEmptyReview = errors.New("review text must not be empty")

type ProductService struct {
	Catalog *CatalogService
	Cart    *CartService
	API     *api.Client
}

func NewProductService(catalog *CatalogService, cart *CartService, client *api.Client) *ProductService {
	return &ProductService{Catalog: catalog, Cart: cart, API: client}
}

type ProductView struct {
	Product    domain.Product  `json:"product"`
	Reviews    []domain.Review `json:"reviews"`
	IsFavorite bool            `json:"isFavorite"`
}

// Detail loads the product page data. The product fetch is the one hard
// dependency; reviews and the favorite flag degrade to their zero values
// when their fetches fail, the page still renders.
func (s *ProductService) Detail(ctx context.Context, bearer string, article int) (ProductView, error) {
	p, err := s.Catalog.GetProduct(ctx, article)
	if err != nil {
		return ProductView{}, err
	}

	view := ProductView{Product: p, Reviews: []domain.Review{}}
	if reviews, err := s.API.ListReviews(ctx, article); err == nil && reviews != nil {
		view.Reviews = reviews
	}
	// Favorite status depends on the product being known; checked last.
	if bearer != "" {
		if fav, err := s.API.CheckFavorite(ctx, bearer, p.Article); err == nil {
			view.IsFavorite = fav
		}
	}
	return view, nil
}

// ToggleFavorite flips the server-side bookmark keyed on the current state
// and reports the new state. Nothing flips until the upstream confirms.
func (s *ProductService) ToggleFavorite(ctx context.Context, bearer string, article int, current bool) (bool, error) {
	if current {
		if err := s.API.RemoveFavorite(ctx, bearer, article); err != nil {
			return current, err
		}
		return false, nil
	}
	if err := s.API.AddFavorite(ctx, bearer, article); err != nil {
		return current, err
	}
	return true, nil
}

// SubmitReview posts a review and returns the locally synthesized record the
// caller appends to its list. There is no refetch, so the list may trail the
// server until the next load. Blank text is rejected before any network call.
func (s *ProductService) SubmitReview(ctx context.Context, bearer, username string, article int, text string) (domain.Review, error) {
	text, ok := validate.ReviewText(text)
	if !ok {
		return domain.Review{}, ErrEmptyReview
	}
	if err := s.API.AddReview(ctx, bearer, article, text); err != nil {
		return domain.Review{}, err
	}
	if username == "" {
		username = "guest"
	}
	return domain.Review{Username: username, ReviewText: text}, nil
}

// AddToCart fetches the product and routes the reduced projection through
// the cart's single owning store.
func (s *ProductService) AddToCart(ctx context.Context, sid string, article int) (store.CartLine, error) {
	p, err := s.Catalog.GetProduct(ctx, article)
	if err != nil {
		return store.CartLine{}, err
	}
	line := store.CartLine{
		Article:  p.Article,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		Image:    p.Image,
	}
	if err := s.Cart.Add(sid, line); err != nil {
		return store.CartLine{}, err
	}
	return line, nil
}
