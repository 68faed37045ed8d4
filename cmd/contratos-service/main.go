package main

import (
	"fmt"
	"os"

	"github.com/gestaopub/contratos-service/internal/auth"
	"github.com/gestaopub/contratos-service/internal/config"
	"github.com/gestaopub/contratos-service/internal/excel"
	httphandler "github.com/gestaopub/contratos-service/internal/http"
	"github.com/gestaopub/contratos-service/internal/http/middleware"
	"github.com/gestaopub/contratos-service/internal/logger"
	"github.com/gestaopub/contratos-service/internal/pdf"
	"github.com/gestaopub/contratos-service/internal/service"
	"github.com/gestaopub/contratos-service/internal/session"
	"github.com/gestaopub/contratos-service/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	entities := store.Seed()
	notifications := service.NewBuffer(service.NewLogNotifier(log))

	sessions := session.NewManager(session.NewMemoryStore(), cfg.Session.LoginDelay, log)
	sessions.Restore()

	tokenIssuer := auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.TokenTTL)
	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(httphandler.Deps{
		Suppliers:     service.NewSupplierService(entities, notifications, log),
		Departments:   service.NewDepartmentService(entities, notifications, log),
		Contracts:     service.NewContractService(entities, notifications, log),
		Payments:      service.NewPaymentService(entities, notifications, log),
		Invoices:      service.NewInvoiceService(entities, notifications, log),
		Commitments:   service.NewCommitmentService(entities, notifications, log),
		Dashboard:     service.NewDashboardService(entities, cfg.Contracts.ExpiringDays),
		Sessions:      sessions,
		Tokens:        tokenIssuer,
		Notifications: notifications,
		Exporter:      excel.NewGenerator(),
		Documents:     pdf.NewGenerator(),
		Log:           log,
	})

	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.CORS.AllowedOrigins, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting contratos service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
