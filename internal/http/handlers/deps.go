package handlers

import (
	"github.com/jmoiron/sqlx"

	"techstore/internal/repos"
	"techstore/internal/services"
)

type Deps struct {
	AuthHandler    *AuthHandler
	ProductHandler *ProductHandler
	OrderHandler   *OrderHandler
	LogHandler     *LogHandler
	Auth           *services.AuthService
}

func NewDeps(db *sqlx.DB) *Deps {
	userRepo := repos.NewUserRepo(db)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	logRepo := repos.NewActionLogRepo(db)

	authSvc := &services.AuthService{Users: userRepo}
	catalogSvc := services.NewProductService(prodRepo)
	orderSvc := services.NewOrderService(db, prodRepo, orderRepo)
	auditSvc := services.NewAuditService(logRepo)

	return &Deps{
		AuthHandler:    &AuthHandler{Auth: authSvc},
		ProductHandler: &ProductHandler{Catalog: catalogSvc, Audit: auditSvc},
		OrderHandler:   &OrderHandler{Orders: orderSvc, Audit: auditSvc},
		LogHandler:     &LogHandler{Audit: auditSvc},
		Auth:           authSvc,
	}
}
