package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/lengolf/backoffice-go/internal/config"
	"github.com/lengolf/backoffice-go/internal/domain/payroll"
	appHTTP "github.com/lengolf/backoffice-go/internal/handler/http"
	"github.com/lengolf/backoffice-go/internal/pkg/cache"
	"github.com/lengolf/backoffice-go/internal/pkg/cron"
	"github.com/lengolf/backoffice-go/internal/pkg/database"
	"github.com/lengolf/backoffice-go/internal/pkg/retry"
	"github.com/lengolf/backoffice-go/internal/repository/postgresql"
	invoiceService "github.com/lengolf/backoffice-go/internal/service/invoice"
	payrollService "github.com/lengolf/backoffice-go/internal/service/payroll"
	settingsService "github.com/lengolf/backoffice-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	timeEntryStore := postgresql.NewTimeEntryStore(db)
	staffRepo := postgresql.NewStaffRepository(db)
	compensationRepo := postgresql.NewCompensationRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)
	supplierRepo := postgresql.NewSupplierRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)

	loc := cfg.Location()
	computationCache := cache.New()
	retryPolicy := retry.New(cfg.Payroll.RetryMaxAttempts, cfg.Payroll.RetryBaseDelay, retry.IsTransient)

	settingsSvc := settingsService.NewSettingsService(settingRepo)
	engine := payrollService.NewEngine(
		timeEntryStore,
		staffRepo,
		compensationRepo,
		holidayRepo,
		settingsSvc,
		computationCache,
		retryPolicy,
		loc,
		cfg.Payroll.AggregateCacheTTL,
		cfg.Payroll.SettingsCacheTTL,
	)
	invoiceSvc := invoiceService.NewInvoiceService(supplierRepo, invoiceRepo, settingsSvc)

	payrollHandler := appHTTP.NewPayrollHandler(engine, settingsSvc, loc)
	staffHandler := appHTTP.NewStaffHandler(staffRepo)
	timeEntryHandler := appHTTP.NewTimeEntryHandler(timeEntryStore, loc)
	invoiceHandler := appHTTP.NewInvoiceHandler(invoiceSvc)

	router := appHTTP.NewRouter(cfg, payrollHandler, staffHandler, timeEntryHandler, invoiceHandler)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("cache-sweep", time.Hour, func(ctx context.Context) error {
		computationCache.Sweep()
		return nil
	})
	scheduler.AddJob("payroll-prewarm", 6*time.Hour, func(ctx context.Context) error {
		now := time.Now().In(loc)
		_, err := engine.Calculate(ctx, payroll.PeriodOf(now))
		return err
	})
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
