package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/expo-management/internal/config"
	"github.com/iliyamo/expo-management/internal/database"
	"github.com/iliyamo/expo-management/internal/repository"
	"github.com/iliyamo/expo-management/internal/repository/memory"
	"github.com/iliyamo/expo-management/internal/repository/mongostore"
)

// stores bundles the domain store and the refresh-token ledger chosen by
// configuration.
type stores struct {
	store  *repository.Store
	tokens repository.TokenRepo
	ping   func(ctx context.Context) error

	mongo *mongo.Client
	sql   *sql.DB
}

func openStores(ctx context.Context, cfg config.Config, log zerolog.Logger) (*stores, error) {
	st := &stores{}
	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Warn().Msg("using in-memory store, data is lost on restart")
		st.store = memory.New()
	default:
		client, err := database.OpenMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		st.mongo = client
		db := client.Database(cfg.MongoDB)
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			st.close()
			return nil, fmt.Errorf("ensure indexes: %w", err)
		}
		st.store = mongostore.New(db)
		st.ping = func(ctx context.Context) error { return client.Ping(ctx, nil) }
	}

	if cfg.DBHost == "" {
		st.tokens = memory.NewTokenRepo()
		return st, nil
	}
	db, err := database.OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		st.close()
		return nil, err
	}
	st.sql = db
	repo := repository.NewSQLTokenRepo(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		st.close()
		return nil, fmt.Errorf("refresh token schema: %w", err)
	}
	st.tokens = repo
	return st, nil
}

func (st *stores) close() {
	if st.mongo != nil {
		_ = st.mongo.Disconnect(context.Background())
	}
	if st.sql != nil {
		_ = st.sql.Close()
	}
}
