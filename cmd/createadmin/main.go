// Command createadmin creates an administrator account.  Administrators
// cannot register through the API.
//
//	createadmin -email root@example.com -password ... -username root -address HQ
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/iliyamo/expo-management/internal/database"
	"github.com/iliyamo/expo-management/internal/logger"
	"github.com/iliyamo/expo-management/internal/repository/memory"
	"github.com/iliyamo/expo-management/internal/repository/mongostore"
	"github.com/iliyamo/expo-management/internal/service"
)

func main() {
	var in service.RegisterInput
	flag.StringVar(&in.Email, "email", "", "admin email (required)")
	flag.StringVar(&in.Password, "password", os.Getenv("ADMIN_PASSWORD"), "admin password, defaults to $ADMIN_PASSWORD")
	flag.StringVar(&in.Username, "username", "admin", "display name")
	flag.StringVar(&in.Address, "address", "Head office", "postal address")
	flag.Parse()

	_ = godotenv.Load()
	log := logger.New(os.Getenv("APP_ENV"))
	if in.Email == "" || in.Password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(context.Background(), log, in); err != nil {
		log.Fatal().Err(err).Msg("create admin")
	}
}

func run(ctx context.Context, log zerolog.Logger, in service.RegisterInput) error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		return errors.New("MONGO_URI is not set")
	}
	client, err := database.OpenMongo(ctx, uri)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = "expo"
	}
	db := client.Database(name)
	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	// No tokens are issued, so the ledger is never written.
	cost, _ := strconv.Atoi(os.Getenv("BCRYPT_COST"))
	svc := service.New(mongostore.New(db), memory.NewTokenRepo(), service.Config{
		BcryptCost: cost,
	}, service.WithLogger(log))

	u, err := svc.CreateAdmin(ctx, in)
	if err != nil {
		return err
	}
	log.Info().Str("id", u.ID.Hex()).Str("email", u.Email).Msg("admin created")
	return nil
}
