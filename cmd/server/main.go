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

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/shuttlecash/internal/auth"
	"github.com/mmynk/shuttlecash/internal/config"
	"github.com/mmynk/shuttlecash/internal/dashboard"
	"github.com/mmynk/shuttlecash/internal/export"
	"github.com/mmynk/shuttlecash/internal/finance"
	"github.com/mmynk/shuttlecash/internal/ledger"
	"github.com/mmynk/shuttlecash/internal/middleware"
	"github.com/mmynk/shuttlecash/internal/models"
	"github.com/mmynk/shuttlecash/internal/pricing"
	"github.com/mmynk/shuttlecash/internal/service"
	"github.com/mmynk/shuttlecash/internal/settlement"
	"github.com/mmynk/shuttlecash/internal/storage"
	"github.com/mmynk/shuttlecash/internal/storage/sqlite"
	"github.com/mmynk/shuttlecash/pkg/api/apiconnect"
	"github.com/mmynk/shuttlecash/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(getEnv("SHUTTLECASH_CONFIG", ""), ".env")
	if err != nil {
		return err
	}
	logging.Setup(cfg.IsDevelopment(), cfg.App.LogLevel)

	store, err := sqlite.New(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Storage.Path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bootstrap(ctx, cfg, store); err != nil {
		return err
	}

	server := &http.Server{
		Addr: cfg.HTTP.Addr,
		// h2c serves HTTP/2 without TLS, required for Connect
		Handler:           h2c.NewHandler(newHandler(cfg, store), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", cfg.HTTP.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// bootstrap seeds first-boot state: the pricing row and the admin account.
func bootstrap(ctx context.Context, cfg config.Config, store storage.Store) error {
	seed := models.PricingConfig{
		ShuttlecockUnitPrice: cfg.Pricing.ShuttlecockPrice,
		NonMemberCourtFee:    cfg.Pricing.CourtFeeNonMember,
		MembershipFeeMonthly: cfg.Pricing.MembershipFeeMonthly,
	}
	if err := store.SeedPricing(ctx, seed); err != nil {
		return fmt.Errorf("failed to seed pricing: %w", err)
	}

	if cfg.Auth.AdminPassword == "" {
		slog.Warn("No admin password configured; skipping admin bootstrap")
		return nil
	}
	return auth.EnsureAdmin(ctx, auth.NewPasswordAuthenticator(store), cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
}

// newHandler wires every service, the export route and the operational
// endpoints into one handler.
func newHandler(cfg config.Config, store storage.Store) http.Handler {
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)
	prices := pricing.NewService(store)
	settlements := settlement.NewService(store, store, prices, ledger.New(store))
	book := finance.NewBook(store, store, prices)

	interceptors := connect.WithInterceptors(
		middleware.RequireAuth(jwtManager, apiconnect.AuthServiceLoginProcedure),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(service.NewAuthService(authenticator, jwtManager, slog.Default()), interceptors))
	mux.Handle(apiconnect.NewFinanceServiceHandler(service.NewFinanceService(settlements, book), interceptors))
	mux.Handle(apiconnect.NewSettingsServiceHandler(service.NewSettingsService(prices), interceptors))
	mux.Handle(apiconnect.NewMemberServiceHandler(service.NewMemberService(store), interceptors))
	mux.Handle(apiconnect.NewUsageServiceHandler(service.NewUsageService(store), interceptors))
	mux.Handle(apiconnect.NewDashboardServiceHandler(service.NewDashboardService(dashboard.NewService(store, store, book, prices)), interceptors))

	mux.Handle("/export/settlements.xlsx", middleware.RequireBearer(jwtManager, export.Handler(settlements)))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}

	return middleware.HTTPLogging(middleware.CORS(mux))
}
