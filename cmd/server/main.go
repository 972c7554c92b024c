package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"washline/config"
	"washline/database"
	"washline/router"

	"washline/pkg/codegen"
	"washline/pkg/messaging"
	"washline/pkg/middleware"
	"washline/pkg/pricing"

	// Order
	orderCtrlImp "washline/pkg/order/controllerImp"
	orderRepoImp "washline/pkg/order/repositoryImp"
	orderSvcImp "washline/pkg/order/serviceImp"

	// Customer
	custRepoImp "washline/pkg/customer/repositoryImp"
	custSvcImp "washline/pkg/customer/serviceImp"

	// Staff
	staffCtrlImp "washline/pkg/staff/controllerImp"
	staffRepoImp "washline/pkg/staff/repositoryImp"
	staffSvcImp "washline/pkg/staff/serviceImp"

	// Payment
	payCtrlImp "washline/pkg/payment/controllerImp"
	paySvcImp "washline/pkg/payment/serviceImp"

	// Attendance / admin concerns
	"washline/pkg/attendance"
	attCtrlImp "washline/pkg/attendance/controllerImp"
	"washline/pkg/branch"
	branchCtrlImp "washline/pkg/branch/controllerImp"
	exportCtrlImp "washline/pkg/export/controllerImp"
	"washline/pkg/report"
	reportCtrlImp "washline/pkg/report/controllerImp"
	"washline/pkg/voucher"
	voucherCtrlImp "washline/pkg/voucher/controllerImp"

	// Health
	healthCtrlImp "washline/pkg/health/controllerImp"
)

func main() {
	cfg := config.Load()

	// Report day ranges are read in the business timezone.
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		slog.Warn("timezone not recognized, using server local time", "tz", cfg.Timezone, "err", err)
		loc = time.Local
	}

	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("database bootstrap failed", "err", err)
		os.Exit(1)
	}

	// Rate table: config files overlay the compiled-in defaults.
	rates, err := pricing.LoadFromFiles(cfg.RatesCSV, cfg.FeesXLSX)
	if err != nil {
		slog.Warn("rate config not loaded, using defaults", "err", err)
		rates = pricing.Defaults()
	}

	// Message channel: mock unless a gateway is configured.
	var channel messaging.Channel
	if cfg.MsgGateway != "" {
		channel = messaging.NewGateway(cfg.MsgGateway, cfg.MsgAPIKey)
	} else {
		channel = messaging.NewMock()
	}
	notifier := messaging.NewNotifier(channel)

	codes := codegen.New(cfg.CodePrefix)

	custRepo := custRepoImp.New(db)
	customers := custSvcImp.New(custRepo)

	orderRepo := orderRepoImp.New(db)
	orders := orderSvcImp.New(orderRepo, rates, codes, customers)
	orderCtrl := orderCtrlImp.New(orders, rates, notifier)

	staffRepo := staffRepoImp.New(db)
	verifier := staffSvcImp.New(staffRepo)
	staffCtrl := staffCtrlImp.New(verifier)
	staffAuth := middleware.StaffAuth(verifier)

	payments := paySvcImp.New(db, orderRepo, customers)
	payCtrl := payCtrlImp.New(payments)

	attCtrl := attCtrlImp.New(attendance.New(db))
	reportCtrl := reportCtrlImp.New(report.New(db), loc)
	exportCtrl := exportCtrlImp.New(orders)
	branchCtrl := branchCtrlImp.New(branch.New(db))
	voucherCtrl := voucherCtrlImp.New(voucher.New(db))
	healthCtrl := healthCtrlImp.New(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	r := router.New(
		e,
		staffAuth,
		orderCtrl,
		staffCtrl,
		payCtrl,
		attCtrl,
		reportCtrl,
		exportCtrl,
		branchCtrl,
		voucherCtrl,
		healthCtrl,
	)

	slog.Info("listening", "port", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
