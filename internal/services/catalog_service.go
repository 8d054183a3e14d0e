package services

import (
	"context"
	"strconv"

	"foodcart/internal/api"
	"foodcart/internal/domain"
)

// placeholderImages are the bundled fallback pictures. Products carry no
// image upstream; each article is mapped onto this list deterministically.
var placeholderImages = []string{
	"/static/img/dish-01.png",
	"/static/img/dish-02.png",
	"/static/img/dish-03.png",
	"/static/img/dish-04.png",
	"/static/img/dish-05.png",
	"/static/img/dish-06.png",
	"/static/img/dish-07.png",
	"/static/img/dish-08.png",
	"/static/img/dish-09.png",
	"/static/img/dish-10.png",
	"/static/img/dish-11.png",
	"/static/img/dish-12.png",
}

type CatalogService struct {
	API    *api.Client
	Images []string
}

func NewCatalogService(client *api.Client) *CatalogService {
	return &CatalogService{API: client, Images: placeholderImages}
}

// imageIndex is a polynomial rolling hash over the article id rendered as a
// string, accumulated in 32-bit wrapping arithmetic: h = ch + h<<5 - h.
// The modulo is taken before the absolute value, matching the established
// article-to-image mapping users already see.
func imageIndex(article string, n int) int {
	if n <= 0 {
		return 0
	}
	var h int32
	for _, ch := range article {
		h = int32(ch) + h<<5 - h
	}
	idx := int(h % int32(n))
	if idx < 0 {
		idx = -idx
	}
	return idx
}

// ImageFor picks the placeholder for an article. Same article, same image,
// always; no state involved.
func (s *CatalogService) ImageFor(article int) string {
	if len(s.Images) == 0 {
		return ""
	}
	return s.Images[imageIndex(strconv.Itoa(article), len(s.Images))]
}

func (s *CatalogService) decorate(p domain.Product) domain.Product {
	p.Image = s.ImageFor(p.Article)
	if p.Category == "" {
		p.Category = p.CategoryName
	}
	p.CategoryName = ""
	return p
}

func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.API.ListProducts(ctx, category)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i] = s.decorate(products[i])
	}
	return products, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]string, error) {
	return s.API.ListCategories(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, article int) (domain.Product, error) {
	p, err := s.API.GetProduct(ctx, article)
	if err != nil {
		return domain.Product{}, err
	}
	return s.decorate(p), nil
}
