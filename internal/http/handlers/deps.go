package handlers

import (
	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/inquiry"
	"folio/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	SiteHandler    *SiteHandler
	BlogHandler    *BlogHandler
	MarketHandler  *MarketHandler
	CartHandler    *CartHandler
	OrderHandler   *OrderHandler
	BookingHandler *BookingHandler
	AdminHandler   *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	public := content.NewClient(cfg.ContentAPI, nil)
	admin := public.WithToken(cfg.APIToken)
	gateway := inquiry.NewGateway(cfg.ContentAPI, nil)

	return &Deps{
		SiteHandler:    &SiteHandler{Content: public},
		BlogHandler:    &BlogHandler{Content: public},
		MarketHandler:  &MarketHandler{Content: public},
		CartHandler:    &CartHandler{DB: db, Content: public},
		OrderHandler:   &OrderHandler{DB: db, Content: public, Gateway: gateway},
		BookingHandler: &BookingHandler{Content: public},
		AdminHandler:   &AdminHandler{Content: admin},
	}
}
