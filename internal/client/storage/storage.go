// Package storage opens the durable backend selected by configuration and
// returns it as a metadata.Repository.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/smrc/smrc-cli/internal/client/config"
	"github.com/smrc/smrc-cli/internal/client/migrations"
	"github.com/smrc/smrc-cli/internal/client/repositories/metadata"
	"github.com/smrc/smrc-cli/internal/filex"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// RedisNamespace prefixes every key the client writes to Redis.
const RedisNamespace = "smrc"

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite file at dsn and
// migrates it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one writer keeps ":memory:" databases on a single connection
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dsn, err)
	}
	return db, nil
}

// Open returns the repository configured by cfg: Redis when RedisAddr is
// set, SQLite at DatabasePath otherwise. The closer releases the backend.
func Open(ctx context.Context, cfg *config.Config) (metadata.Repository, io.Closer, error) {
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
		}
		return metadata.NewRedisRepository(rdb, RedisNamespace), rdb, nil
	}

	if err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		return nil, nil, err
	}
	db, err := InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	return metadata.NewSQLiteRepository(db), db, nil
}
