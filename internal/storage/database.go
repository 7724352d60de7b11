// internal/storage/database.go
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // Driver registration ("pgx")
	_ "github.com/mattn/go-sqlite3"    // Driver registration ("sqlite3")

	"github.com/Annany2002/querygate/config"
	"github.com/Annany2002/querygate/internal/logger"
)

var (
	customLog = logger.NewLogger()
)

// DataSourceName returns the DSN handed to sql.Open for the configured driver.
func DataSourceName(cfg config.DatabaseConfig) (string, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
		mc.DBName = cfg.Name
		mc.ParseTime = true
		return mc.FormatDSN(), nil
	case config.DriverSQLite, config.DriverPostgres:
		if cfg.DSN == "" {
			return "", fmt.Errorf("a DSN is required for driver %q", cfg.Driver)
		}
		return cfg.DSN, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Connect opens the shared connection pool and verifies it with a ping.
// The pool is created once at startup and shared by every request; callers
// beyond MaxOpenConns wait for a free connection.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn, err := DataSourceName(cfg)
	if err != nil {
		return nil, err
	}

	customLog.Printf("Storage: Opening %s connection pool (max %d connections)", cfg.Driver, cfg.MaxOpenConns)
	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		customLog.Errorf("Storage: Failed to open %s pool: %v", cfg.Driver, err)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		customLog.Errorf("Storage: Failed to ping %s database: %v", cfg.Driver, err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	customLog.Println("Storage: Database connection successful.")

	return db, nil
}
