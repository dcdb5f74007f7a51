package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/warebridge/warebridge/internal/auth"
	"github.com/warebridge/warebridge/internal/customers"
	"github.com/warebridge/warebridge/internal/exportslips"
	"github.com/warebridge/warebridge/internal/masterdata"
	"github.com/warebridge/warebridge/internal/notifications"
	"github.com/warebridge/warebridge/internal/orders"
	"github.com/warebridge/warebridge/internal/ordertags"
	"github.com/warebridge/warebridge/internal/payments"
	"github.com/warebridge/warebridge/internal/quotations"
	"github.com/warebridge/warebridge/internal/stocklevels"
	"github.com/warebridge/warebridge/internal/users"
	"github.com/warebridge/warebridge/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	AuthHandler          *auth.Handler
	CustomersHandler     *customers.Handler
	OrdersHandler        *orders.Handler
	ExportSlipsHandler   *exportslips.Handler
	PaymentsHandler      *payments.Handler
	QuotationsHandler    *quotations.Handler
	StockLevelsHandler   *stocklevels.Handler
	NotificationsHandler *notifications.Handler
	UsersHandler         *users.Handler
	MasterDataHandler    *masterdata.Handler
	OrderTagsHandler     *ordertags.Handler
	JobsHandler          *jobs.Handler
}

// NewRouter constructs the chi.Router with gateway defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", params.AuthHandler.MountRoutes)
		r.Route("/customers", params.CustomersHandler.MountRoutes)
		r.Route("/orders", params.OrdersHandler.MountRoutes)
		r.Route("/export-slips", params.ExportSlipsHandler.MountRoutes)
		r.Route("/payments", params.PaymentsHandler.MountRoutes)
		r.Route("/quotations", params.QuotationsHandler.MountRoutes)
		r.Route("/stock-levels", params.StockLevelsHandler.MountRoutes)
		r.Route("/notifications", params.NotificationsHandler.MountRoutes)
		r.Route("/users", params.UsersHandler.MountRoutes)
		r.Route("/masterdata", params.MasterDataHandler.MountRoutes)
		r.Route("/tags", params.OrderTagsHandler.MountRoutes)
		if params.JobsHandler != nil {
			r.Route("/jobs", params.JobsHandler.MountRoutes)
		}
	})

	return r
}
