package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/apurvdugar/Expense-Tracker-App/internal/bootstrap"
	"github.com/apurvdugar/Expense-Tracker-App/internal/config"
	"github.com/apurvdugar/Expense-Tracker-App/internal/handlers"
	"github.com/apurvdugar/Expense-Tracker-App/internal/response"
	"github.com/apurvdugar/Expense-Tracker-App/internal/router"
	"github.com/apurvdugar/Expense-Tracker-App/internal/services"
	"github.com/apurvdugar/Expense-Tracker-App/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	loc := cfg.Location()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	estore := store.NewExpenseStore(bs.Firestore)

	// services
	userv := services.NewUserService(ustore)
	eserv := services.NewExpenseService(estore)
	stserv := services.NewStatsService(estore, userv, loc)
	iserv := services.NewInsightService(estore, bs.Vertex, loc)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.UserSvc = userv
	deps.ExpenseSvc = eserv
	deps.StatsSvc = stserv
	deps.InsightSvc = iserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
