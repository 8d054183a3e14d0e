package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"foodcart/internal/domain"
)

// ListProducts returns the released catalog, optionally scoped to one
// category. No client-side caching: callers refetch on every view.
func (c *Client) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	path := "/products"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/categories", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, article int) (domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", article), "", nil, &out); err != nil {
		return domain.Product{}, err
	}
	return out, nil
}

func (c *Client) ListReviews(ctx context.Context, article int) ([]domain.Review, error) {
	var out []domain.Review
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d/reviews", article), "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddReview(ctx context.Context, bearer string, article int, text string) error {
	body := map[string]string{"review": text}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/products/%d/reviews", article), bearer, body, nil)
}
