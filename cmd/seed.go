package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/infrastructure/config"
	mongorepo "github.com/lumenhotels/backoffice/internal/infrastructure/db/mongo"
	"github.com/lumenhotels/backoffice/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the initial admin account if none exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(ctx context.Context) error {
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	client, db, err := mongorepo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	repo := mongorepo.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	email := envOrDefault("SEED_ADMIN_EMAIL", "admin@example.com")
	password := envOrDefault("SEED_ADMIN_PASSWORD", "ChangeMe123!")

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		log.Info().Str("email", email).Msg("admin account already exists, nothing to do")
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	_, err = repo.Create(ctx, &domain.User{
		ID:           uuid.NewString(),
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("admin account created")
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
