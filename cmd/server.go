package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lumenhotels/backoffice/internal/api"
	"github.com/lumenhotels/backoffice/internal/infrastructure/config"
	mongorepo "github.com/lumenhotels/backoffice/internal/infrastructure/db/mongo"
	redisconn "github.com/lumenhotels/backoffice/internal/infrastructure/db/redis"
	"github.com/lumenhotels/backoffice/internal/infrastructure/queue"
	"github.com/lumenhotels/backoffice/pkg/logger"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the back-office API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func runServer(ctx context.Context) error {
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongorepo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisconn.Connect(ctx, redisconn.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	if err := ensureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	auditRepo := mongorepo.NewAuditRepository(db)
	dispatcher := queue.NewAuditDispatcher(0, auditRepo, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, dispatcher, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongorepo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongorepo.NewHousekeepingRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongorepo.NewRoomRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongorepo.NewRatePlanRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongorepo.NewAuditRepository(db).EnsureIndexes(ctx)
}
