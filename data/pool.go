package data

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mkrenn/courseflow/internal/projectpath"
)

var (
	dbPool *pgxpool.Pool
	pgOnce sync.Once
)

func init() {
	err := godotenv.Load(filepath.Join(projectpath.Root, ".env"))
	if err != nil {
		// fine when the connection string comes from the environment
		log.Debug("No .env file loaded: ", err)
	}
}

func NewPool(ctx context.Context) (*pgxpool.Pool, error) {
	connString := os.Getenv("DB_CONN")

	var poolErr error = nil
	pgOnce.Do(func() {
		pgPool, err := pgxpool.New(ctx, connString)
		if err != nil {
			log.Error("Unable to create connection pool: ", err)
			poolErr = err
		}
		dbPool = pgPool
	})
	if poolErr != nil {
		return dbPool, poolErr
	}

	return dbPool, nil
}
