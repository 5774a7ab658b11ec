package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/workdesk-backend-go/internal/config"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/domain/auth"
	appHTTP "github.com/cmlabs-hris/workdesk-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/money"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/repository"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/workdesk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/workdesk-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/workdesk-backend-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/workdesk-backend-go/internal/service/dashboard"
	productService "github.com/cmlabs-hris/workdesk-backend-go/internal/service/product"
	saleService "github.com/cmlabs-hris/workdesk-backend-go/internal/service/sale"
	userService "github.com/cmlabs-hris/workdesk-backend-go/internal/service/user"
	workReportService "github.com/cmlabs-hris/workdesk-backend-go/internal/service/workreport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.SlogLevel(), cfg.App.Env)
	slog.SetDefault(logger)

	store, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open store", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	provider, err := identityProvider(cfg)
	if err != nil {
		slog.Error("failed to configure identity provider", "error", err)
		os.Exit(1)
	}

	formatter := money.NewFormatter(cfg.Business.CurrencyLocale, cfg.Business.CurrencySymbol)

	sessionService := serviceAuth.NewSessionService(provider, store.Users())
	userSvc := userService.NewUserService(store.Users())
	attendanceSvc := attendanceService.NewAttendanceService(store, store.Attendances(), cfg.Business.AttendanceLocation)
	saleSvc := saleService.NewSaleService(store, store.Sales(), store.Products(), formatter, cfg.Business.SalesTaxRate)
	productSvc := productService.NewProductService(store.Products())
	workReportSvc := workReportService.NewWorkReportService(store.WorkReports())
	dashboardSvc := dashboardService.NewDashboardService(
		store.Users(),
		store.Attendances(),
		store.Sales(),
		store.WorkReports(),
		formatter,
		cfg.Business.DailySalesTarget,
	)

	router, err := appHTTP.NewRouter(appHTTP.RouterConfig{
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
		RateLimit:      cfg.App.RateLimit,
		LogLevel:       cfg.SlogLevel(),
		Logger:         logger,
	}, sessionService, appHTTP.Handlers{
		User:       appHTTP.NewUserHandler(userSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Sale:       appHTTP.NewSaleHandler(saleSvc),
		Product:    appHTTP.NewProductHandler(productSvc),
		WorkReport: appHTTP.NewWorkReportHandler(workReportSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})
	if err != nil {
		slog.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server running", "addr", server.Addr, "storage", cfg.Storage.Backend, "identity", cfg.Identity.Provider)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}

func openStore(cfg *config.Config) (repository.Store, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendMemory:
		return memory.NewStore(), nil
	case config.StorageBackendPostgres:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("connect: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := db.Migrate(context.Background()); err != nil {
				db.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		return postgresql.NewStore(db), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}
}

func identityProvider(cfg *config.Config) (auth.IdentityProvider, error) {
	switch cfg.Identity.Provider {
	case config.IdentityProviderJWT:
		return jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration.String()), nil
	case config.IdentityProviderGoogle:
		return oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		), nil
	case config.IdentityProviderGoogleIDToken:
		return oauth.NewIDTokenService(cfg.OAuth2Google.ClientID), nil
	default:
		return nil, fmt.Errorf("unsupported identity provider %q", cfg.Identity.Provider)
	}
}
