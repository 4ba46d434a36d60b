package wire

import (
	"game-ghor/internal/adaptor"
	"game-ghor/internal/data/repository"
	"game-ghor/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /orders - place an order (authenticated buyers)
		r.Post("/orders", orderHandler.CreateOrder)

		// GET /orders - the caller's own order history
		r.Get("/orders", orderHandler.GetUserOrders)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/admin/orders", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /admin/orders?status=&q= - filter by status / search text
		r.Get("/", orderHandler.ListOrders)

		// PATCH /admin/orders/{id} - drive the status machine
		r.Patch("/{id}", orderHandler.SetOrderStatus)
	})
}
