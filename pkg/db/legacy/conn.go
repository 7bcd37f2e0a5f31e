// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/larsclaussen/core-models/pkg/log"
)

type ConnectionParams struct {
	User     string `env:"DB_USERNAME" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	Database string `env:"DB_DATABASE" envDefault:"work"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

func ConnectionParamsFromEnv() (ConnectionParams, error) {
	var p ConnectionParams
	if err := env.Parse(&p); err != nil {
		return ConnectionParams{}, fmt.Errorf("failed to parse connection params from environment: %w", err)
	}
	return p, nil
}

// Connect opens the legacy work database (PostgreSQL with PostGIS).
func Connect(p ConnectionParams) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.New(log.Log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			Colorful:                  false,
			IgnoreRecordNotFoundError: true,
			LogLevel: (func() logger.LogLevel {
				switch log.Log.Logger.GetLevel() {
				case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
					return logger.Error
				case logrus.WarnLevel:
					return logger.Warn
				default:
					return logger.Info
				}
			})(),
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	err = conn.Use(tracing.NewPlugin())
	if err != nil {
		return nil, fmt.Errorf("failed to setup db tracing: %w", err)
	}

	return conn, nil
}

// ConnectReadOnly opens the legacy store for reading only: every write
// callback on the connection is replaced with one that fails the statement.
// The migration holds the legacy store through such a connection for the
// duration of a copy.
func ConnectReadOnly(p ConnectionParams) (*gorm.DB, error) {
	conn, err := Connect(p)
	if err != nil {
		return nil, err
	}
	return MarkReadOnly(conn), nil
}

// MarkReadOnly replaces the write callbacks of conn. Exposed separately so
// tests can wrap their own connections.
func MarkReadOnly(conn *gorm.DB) *gorm.DB {
	_ = conn.Callback().Create().Replace("gorm:create", rejectWrite)
	_ = conn.Callback().Update().Replace("gorm:update", rejectWrite)
	_ = conn.Callback().Delete().Replace("gorm:delete", rejectWrite)
	_ = conn.Callback().Raw().Before("gorm:raw").Register("legacy:read_only", rejectRawWrite)
	return conn
}

func rejectWrite(tx *gorm.DB) {
	_ = tx.AddError(ErrReadOnly)
}

func rejectRawWrite(tx *gorm.DB) {
	stmt := strings.TrimSpace(strings.ToUpper(tx.Statement.SQL.String()))
	for _, verb := range []string{"INSERT", "UPDATE", "DELETE", "DROP", "ALTER", "CREATE", "TRUNCATE"} {
		if strings.HasPrefix(stmt, verb) {
			_ = tx.AddError(ErrReadOnly)
			return
		}
	}
}

// ErrReadOnly is returned for any write attempted through a read-only
// connection.
var ErrReadOnly = errors.New("legacy: connection is read-only")
