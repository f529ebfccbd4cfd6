package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/rogerio-castellano/inventory-api/internal/auth"
	"github.com/rogerio-castellano/inventory-api/internal/db"
	"github.com/rogerio-castellano/inventory-api/internal/http/ban"
	"github.com/rogerio-castellano/inventory-api/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-api/internal/http/router"
	"github.com/rogerio-castellano/inventory-api/internal/redissvc"
	"github.com/rogerio-castellano/inventory-api/internal/repo"
	"github.com/rogerio-castellano/inventory-api/internal/storage"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

const (
	addrFlag = "addr"

	authRatePerSecond = 1
	authBurst         = 5
	shutdownTimeout   = 15 * time.Second
)

var serveFlags = map[string]cobraflags.Flag{
	addrFlag: &cobraflags.StringFlag{
		Name:  addrFlag,
		Value: "",
		Usage: "Listen address, overrides HTTP_ADDR",
	},
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API. Tables are created when missing and empty master-data
tables are seeded before the server starts listening. SIGINT or SIGTERM
drains in-flight requests before exiting.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), serveFlags[addrFlag].GetString())
		},
	}
	cobraflags.RegisterMap(cmd, serveFlags)
	return cmd
}

func runServe(parent context.Context, addr string) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, logger, database, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.Migrate(ctx, database); err != nil {
		return err
	}

	master := repo.NewSQLMasterDataRepository(database)
	if inserted, err := repo.SeedMasterData(ctx, master); err != nil {
		return err
	} else if len(inserted) > 0 {
		logger.Info("seeded master data", "rows", inserted)
	}

	var guard *ban.Guard
	if cfg.RedisAddr != "" {
		rdb, err := redissvc.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			return err
		}
		defer rdb.Close()
		guard = ban.NewGuard(rdb, cfg.LoginMaxStrikes, cfg.LoginBanWindow)
	} else {
		logger.Warn("REDIS_ADDR is empty, failed logins will not be banned")
	}

	store, err := storage.NewImageStore(cfg.UploadDir)
	if err != nil {
		return err
	}

	var google auth.GoogleVerifier
	if cfg.GoogleClientID != "" {
		google = auth.NewIDTokenVerifier(cfg.GoogleClientID)
	} else {
		logger.Warn("GOOGLE_CLIENT_ID is empty, Google sign-in is disabled")
	}

	limiter := rl.New(rate.Limit(authRatePerSecond), authBurst)
	go limiter.StartCleanupLoop(ctx, time.Minute, 3*time.Minute)

	s := &handlers.Server{
		Users:         repo.NewSQLUserRepository(database),
		Master:        master,
		Products:      repo.NewSQLProductRepository(database),
		Images:        repo.NewSQLImageRepository(database),
		Shifts:        repo.NewSQLShiftRepository(database),
		Metrics:       repo.NewSQLMetricsRepository(database),
		Tokens:        auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL),
		Google:        google,
		Store:         store,
		Guard:         guard,
		Logger:        logger,
		MaxUploadSize: cfg.MaxUploadSize,
	}

	if addr == "" {
		addr = cfg.HTTPAddr
	}
	srv := &http.Server{
		Addr: addr,
		Handler: router.NewRouter(s, router.Options{
			Development: cfg.IsDevelopment(),
			CORSOrigins: cfg.CORSOrigins,
			AuthLimiter: limiter,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
