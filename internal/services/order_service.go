package services

import (
	"context"
	"errors"

	"foodcart/internal/api"
	"foodcart/internal/domain"
)

var ErrEmptyCart = errors.New("cart is empty")

type OrderService struct {
	Cart     *CartService
	Sessions *SessionService
	API      *api.Client
}

func NewOrderService(cart *CartService, sessions *SessionService, client *api.Client) *OrderService {
	return &OrderService{Cart: cart, Sessions: sessions, API: client}
}

// Place submits the whole cart as one order batch.
//
// Preconditions run in order before any network call: a bearer must be
// resolvable for the session, then the cart must be non-empty. The upstream
// processes the batch atomically from our point of view; on success the cart
// is cleared through its owning store, on any failure it is left untouched
// so the user can simply retry.
func (s *OrderService) Place(ctx context.Context, sid string) error {
	sess, err := s.Sessions.Current(sid)
	if err != nil {
		return err
	}
	if !sess.LoggedIn || sess.Bearer == "" {
		return ErrNotAuthenticated
	}

	cv, err := s.Cart.View(sid)
	if err != nil {
		return err
	}
	if len(cv.Lines) == 0 {
		return ErrEmptyCart
	}

	lines := make([]domain.OrderLine, 0, len(cv.Lines))
	for _, l := range cv.Lines {
		lines = append(lines, domain.OrderLine{Article: l.Article, Price: l.Price})
	}

	if err := s.API.PlaceOrders(ctx, sess.Bearer, lines); err != nil {
		return err
	}
	return s.Cart.Clear(sid)
}
