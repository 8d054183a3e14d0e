package services

import (
	"context"
	"sync"

	"foodcart/internal/api"
	"foodcart/internal/domain"
)

type ProfileService struct {
	API      *api.Client
	PageSize int
}

func NewProfileService(client *api.Client, pageSize int) *ProfileService {
	if pageSize <= 0 {
		pageSize = 5
	}
	return &ProfileService{API: client, PageSize: pageSize}
}

type ProfileView struct {
	Profile      domain.Profile         `json:"profile"`
	Favorites    []domain.FavoriteEntry `json:"favorites"`
	Orders       []domain.Order         `json:"orders"`
	OrdersPage   int                    `json:"ordersPage"`
	OrdersPages  int                    `json:"ordersPages"`
	Reviews      []domain.ProfileReview `json:"reviews"`
	ReviewsPage  int                    `json:"reviewsPage"`
	ReviewsPages int                    `json:"reviewsPages"`
}

// Overview gathers the four profile reads. They run concurrently and
// independently, so each block may reflect a slightly different point in
// time; only the profile fetch itself is fatal, the lists degrade to empty.
// Orders and reviews are paginated over the full fetched lists with
// independent page cursors.
func (s *ProfileService) Overview(ctx context.Context, bearer string, ordersPage, reviewsPage int) (ProfileView, error) {
	var (
		wg         sync.WaitGroup
		profile    domain.Profile
		profileErr error
		favorites  []domain.FavoriteEntry
		orders     []domain.Order
		reviews    []domain.ProfileReview
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		profile, profileErr = s.API.GetProfile(ctx, bearer)
	}()
	go func() {
		defer wg.Done()
		favorites, _ = s.API.ProfileFavorites(ctx, bearer)
	}()
	go func() {
		defer wg.Done()
		orders, _ = s.API.ListOrders(ctx, bearer)
	}()
	go func() {
		defer wg.Done()
		reviews, _ = s.API.ProfileReviews(ctx, bearer)
	}()
	wg.Wait()

	if profileErr != nil {
		return ProfileView{}, profileErr
	}
	if favorites == nil {
		favorites = []domain.FavoriteEntry{}
	}

	pagedOrders, oPage, oPages := pageOf(orders, ordersPage, s.PageSize)
	pagedReviews, rPage, rPages := pageOf(reviews, reviewsPage, s.PageSize)

	return ProfileView{
		Profile:      profile,
		Favorites:    favorites,
		Orders:       pagedOrders,
		OrdersPage:   oPage,
		OrdersPages:  oPages,
		Reviews:      pagedReviews,
		ReviewsPage:  rPage,
		ReviewsPages: rPages,
	}, nil
}

// SaveDescription submits the single editable profile field.
func (s *ProfileService) SaveDescription(ctx context.Context, bearer, description string) error {
	return s.API.UpdateDescription(ctx, bearer, description)
}

// pageOf slices one fixed-size page out of the full list, clamping the page
// number into valid bounds. Page numbers start at 1.
func pageOf[T any](list []T, page, size int) ([]T, int, int) {
	if size <= 0 {
		size = 5
	}
	pages := (len(list) + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * size
	end := start + size
	if start > len(list) {
		start = len(list)
	}
	if end > len(list) {
		end = len(list)
	}
	out := make([]T, end-start)
	copy(out, list[start:end])
	return out, page, pages
}
