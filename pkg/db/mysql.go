// pkg/db/mysql.go
// Helper koneksi MySQL (database/sql + go-sql-driver)

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

type Options struct {
	MaxOpen     int
	MaxIdle     int
	PingRetries int
	RetryDelay  time.Duration
}

// NormalizeDSN memaksa parseTime=true supaya kolom DATE/DATETIME ter-scan ke time.Time.
func NormalizeDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// Open membuka pool MySQL lalu ping dengan retry (tahan saat container DB baru up).
func Open(ctx context.Context, dsn string, opt Options) (*sql.DB, error) {
	norm, err := NormalizeDSN(dsn)
	if err != nil {
		return nil, err
	}
	conn, err := sql.Open("mysql", norm)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if opt.MaxOpen > 0 {
		conn.SetMaxOpenConns(opt.MaxOpen)
	}
	if opt.MaxIdle > 0 {
		conn.SetMaxIdleConns(opt.MaxIdle)
	}
	conn.SetConnMaxLifetime(30 * time.Minute)

	if opt.PingRetries <= 0 {
		opt.PingRetries = 1
	}
	var pingErr error
	for i := 0; i < opt.PingRetries; i++ {
		if pingErr = conn.PingContext(ctx); pingErr == nil {
			return conn, nil
		}
		select {
		case <-ctx.Done():
			conn.Close()
			return nil, ctx.Err()
		case <-time.After(opt.RetryDelay):
		}
	}
	conn.Close()
	return nil, fmt.Errorf("mysql not ready after %d tries: %w", opt.PingRetries, pingErr)
}
