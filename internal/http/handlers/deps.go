package handlers

import (
	"foodcart/internal/api"
	"foodcart/internal/config"
	"foodcart/internal/services"
	"foodcart/internal/store"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	SessionHandler *SessionHandler
	CatalogHandler *CatalogHandler
	ProductHandler *ProductHandler
	CartHandler    *CartHandler
	OrderHandler   *OrderHandler
	ProfileHandler *ProfileHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, client *api.Client) *Deps {
	cartStore := store.NewCartStore(db)
	sessionStore := store.NewSessionStore(db)

	sessionSvc := services.NewSessionService(sessionStore, client)
	cartSvc := services.NewCartService(cartStore)
	catalogSvc := services.NewCatalogService(client)
	productSvc := services.NewProductService(catalogSvc, cartSvc, client)
	orderSvc := services.NewOrderService(cartSvc, sessionSvc, client)
	profileSvc := services.NewProfileService(client, cfg.PageSize)

	return &Deps{
		SessionHandler: &SessionHandler{Sessions: sessionSvc},
		CatalogHandler: &CatalogHandler{Catalog: catalogSvc},
		ProductHandler: &ProductHandler{Products: productSvc, Sessions: sessionSvc},
		CartHandler:    &CartHandler{Cart: cartSvc, Products: productSvc},
		OrderHandler:   &OrderHandler{Order: orderSvc},
		ProfileHandler: &ProfileHandler{Profile: profileSvc, Sessions: sessionSvc},
	}
}
