package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/lengolf/backoffice-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	payrollHandler PayrollHandler,
	staffHandler StaffHandler,
	timeEntryHandler TimeEntryHandler,
	invoiceHandler InvoiceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "lengolf-backoffice"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/calculations", payrollHandler.Calculate)
			r.Route("/settings", func(r chi.Router) {
				r.Get("/", payrollHandler.GetPoolSettings)
				r.Put("/", payrollHandler.UpdatePoolSettings)
			})
		})

		r.Route("/staff", func(r chi.Router) {
			r.Get("/", staffHandler.List)
			r.Get("/{id}", staffHandler.Get)
		})

		r.Get("/time-entries", timeEntryHandler.List)

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", invoiceHandler.ListSuppliers)
			r.Post("/", invoiceHandler.CreateSupplier)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", invoiceHandler.ListInvoices)
			r.Post("/", invoiceHandler.CreateInvoice)
			r.Get("/defaults", invoiceHandler.GetDefaults)
		})
	})
	return r
}
