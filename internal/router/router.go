package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/apurvdugar/Expense-Tracker-App/internal/handlers"
	"github.com/apurvdugar/Expense-Tracker-App/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	auth := middleware.NewMiddleware(deps.Firebase)

	eh := handlers.NewExpenseHandlers(deps)
	uh := handlers.NewUserHandlers(deps)
	ih := handlers.NewInsightHandlers(deps)

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.FirebaseAuth)
		r.Mount("/expenses", eh.ExpenseRoutes())
		r.Mount("/user", uh.UserRoutes())
		r.Mount("/insights", ih.InsightRoutes())
	})

	return r
}
