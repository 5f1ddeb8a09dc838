package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gillani-market/shoprent/models"
)

// Init assembles the router: global middleware, the public surface, the
// authenticated tenant surface, and the admin-only management surface.
func (h *Handler) Init() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	allowedOrigins := h.corsOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/", h.Welcome)
	router.Get("/health", h.Health)
	router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadsDir))))

	router.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", h.Register)
			auth.Post("/login", h.Login)

			auth.Group(func(private chi.Router) {
				private.Use(h.authenticate)
				private.Get("/me", h.Me)
				private.Put("/updatepassword", h.UpdatePassword)
			})
		})

		api.Route("/users", func(users chi.Router) {
			users.Use(h.authenticate, h.requireRole(models.RoleAdmin))
			users.Get("/", h.ListUsers)
			users.Post("/", h.CreateUser)
			users.Get("/master", h.MasterData)
			users.Get("/master-data", h.MasterData)
			users.Get("/{id}", h.GetUser)
			users.Put("/{id}", h.UpdateUser)
			users.Delete("/{id}", h.DeleteUser)
		})

		api.Route("/rent", func(rent chi.Router) {
			rent.Use(h.authenticate)
			rent.Get("/user/{userId}", h.ListRentByUser)

			rent.Group(func(admin chi.Router) {
				admin.Use(h.requireRole(models.RoleAdmin))
				admin.Get("/", h.ListRent)
				admin.Get("/stats", h.RentStats)
				admin.Put("/{id}", h.UpdateRent)
			})
		})

		api.Route("/payments", func(payments chi.Router) {
			payments.Use(h.authenticate)
			payments.Get("/user/{userId}", h.ListPaymentsByUser)
			payments.Get("/bill-summary/{userId}", h.BillSummary)
			payments.Post("/upload-receipt", h.UploadReceipt)

			payments.Group(func(admin chi.Router) {
				admin.Use(h.requireRole(models.RoleAdmin))
				admin.Get("/", h.ListPayments)
				admin.Get("/stats", h.PaymentStats)
				admin.Post("/manual", h.CreateManualPayment)
				admin.Put("/{id}/verify", h.VerifyPayment)
				admin.Delete("/{id}", h.DeletePayment)
			})
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.respond(w, r, http.StatusNotFound, envelope{"success": false, "message": "Route not found"})
	})

	return router
}
