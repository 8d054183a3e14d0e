package services

import (
	"foodcart/internal/store"
)

type CartService struct {
	Carts *store.CartStore
}

func NewCartService(carts *store.CartStore) *CartService {
	return &CartService{Carts: carts}
}

func (s *CartService) Add(sid string, line store.CartLine) error {
	return s.Carts.Add(sid, line)
}

type CartView struct {
	Lines []store.CartLine `json:"lines"`
	Total float64          `json:"total"`
}

func (s *CartService) View(sid string) (CartView, error) {
	lines, err := s.Carts.Lines(sid)
	if err != nil {
		return CartView{}, err
	}
	total := 0.0
	for _, l := range lines {
		total += l.Price
	}
	return CartView{Lines: lines, Total: total}, nil
}

func (s *CartService) Clear(sid string) error {
	return s.Carts.Clear(sid)
}
