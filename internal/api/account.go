package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"foodcart/internal/domain"
)

// upstreamCookie is the session cookie the upstream sets on login; its raw
// value doubles as the bearer credential on every privileged call.
const upstreamCookie = "user"

var ErrNoSessionCookie = errors.New("upstream: login response carried no session cookie")

// Login verifies credentials upstream and returns the bearer identity from
// the issued session cookie.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	b, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return "", fmt.Errorf("upstream: marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("upstream: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upstream: POST /login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Code: resp.StatusCode}
	}

	for _, ck := range resp.Cookies() {
		if ck.Name == upstreamCookie && ck.Value != "" {
			return ck.Value, nil
		}
	}
	return "", ErrNoSessionCookie
}

// Logout terminates the upstream session. The upstream expects the session
// cookie itself, not the bearer header.
func (c *Client) Logout(ctx context.Context, bearer string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/logout", bytes.NewReader(nil))
	if err != nil {
		return fmt.Errorf("upstream: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: upstreamCookie, Value: bearer})

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream: POST /logout: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}

func (c *Client) GetProfile(ctx context.Context, bearer string) (domain.Profile, error) {
	var out domain.Profile
	if err := c.do(ctx, http.MethodGet, "/profile", bearer, nil, &out); err != nil {
		return domain.Profile{}, err
	}
	return out, nil
}

func (c *Client) UpdateDescription(ctx context.Context, bearer, description string) error {
	return c.do(ctx, http.MethodPost, "/profile", bearer, map[string]string{"description": description}, nil)
}

func (c *Client) ProfileFavorites(ctx context.Context, bearer string) ([]domain.FavoriteEntry, error) {
	var out struct {
		Favorites []domain.FavoriteEntry `json:"favorites"`
	}
	if err := c.do(ctx, http.MethodGet, "/profile/favorites", bearer, nil, &out); err != nil {
		return nil, err
	}
	return out.Favorites, nil
}

func (c *Client) ProfileReviews(ctx context.Context, bearer string) ([]domain.ProfileReview, error) {
	var out []domain.ProfileReview
	if err := c.do(ctx, http.MethodGet, "/profile/reviews", bearer, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListOrders(ctx context.Context, bearer string) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders", bearer, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PlaceOrders submits the whole batch in one request; the upstream is trusted
// to process it atomically, so there is no partial resend path here.
func (c *Client) PlaceOrders(ctx context.Context, bearer string, lines []domain.OrderLine) error {
	body := map[string][]domain.OrderLine{"orders": lines}
	return c.do(ctx, http.MethodPost, "/orders", bearer, body, nil)
}

// CheckFavorite asks the dedicated check endpoint. Some deployments predate
// it; a 404 there means "not a favorite", not a failure.
func (c *Client) CheckFavorite(ctx context.Context, bearer string, article int) (bool, error) {
	var out struct {
		IsFavorite bool `json:"isFavorite"`
	}
	err := c.do(ctx, http.MethodPost, "/favorites/check", bearer, map[string]int{"article": article}, &out)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return out.IsFavorite, nil
}

func (c *Client) AddFavorite(ctx context.Context, bearer string, article int) error {
	return c.do(ctx, http.MethodPost, "/favorites", bearer, map[string]int{"article": article}, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, bearer string, article int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/favorites/%d", article), bearer, nil, nil)
}
