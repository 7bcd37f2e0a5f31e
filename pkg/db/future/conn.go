// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package future

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/larsclaussen/core-models/pkg/log"
)

// spatialiteDriverName is registered once; the hook loads the SpatiaLite
// extension on every new connection.
const spatialiteDriverName = "sqlite3_spatialite"

// DefaultSpatialiteModule is where debian based images install the
// extension.
const DefaultSpatialiteModule = "mod_spatialite"

var registerSpatialite sync.Once

type options struct {
	spatialiteModule string
}

type Option func(*options)

// WithSpatialite loads the SpatiaLite extension from the given module on
// every connection. Pass DefaultSpatialiteModule unless the environment
// installs it elsewhere.
func WithSpatialite(module string) Option {
	return func(o *options) {
		o.spatialiteModule = module
	}
}

// Connect opens (and creates if absent) the template database at path.
// Use ":memory:" for an ephemeral store.
func Connect(path string, opts ...Option) (*gorm.DB, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	driverName := sqlite.DriverName
	if o.spatialiteModule != "" {
		registerSpatialite.Do(func() {
			sql.Register(spatialiteDriverName, &sqlite3.SQLiteDriver{
				ConnectHook: func(conn *sqlite3.SQLiteConn) error {
					return conn.LoadExtension(o.spatialiteModule, "")
				},
			})
		})
		driverName = spatialiteDriverName
	}

	conn, err := gorm.Open(sqlite.Dialector{DriverName: driverName, DSN: path}, &gorm.Config{
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
		return nil, fmt.Errorf("failed to open template database %s: %w", path, err)
	}
	return conn, nil
}

// AllModels lists every model of the replacement schema in foreign key
// order: referenced tables first.
func AllModels() []interface{} {
	return []interface{}{
		&ConnectionNode{},
		&Channel{},
	}
}

// InitSchema creates the schema of the replacement store. It is idempotent:
// re-running against an initialized store never redefines existing tables.
// When the connection runs with SpatiaLite loaded the spatial metadata
// tables are initialized exactly once.
func InitSchema(conn *gorm.DB) error {
	if err := conn.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate template schema: %w", err)
	}

	if !spatialiteLoaded(conn) {
		return nil
	}
	var initialized int64
	err := conn.Raw("SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'spatial_ref_sys'").Scan(&initialized).Error
	if err != nil {
		return fmt.Errorf("failed to inspect spatial metadata: %w", err)
	}
	if initialized > 0 {
		return nil
	}
	if err := conn.Exec("SELECT InitSpatialMetaData()").Error; err != nil {
		return fmt.Errorf("failed to initialize spatial metadata: %w", err)
	}
	return nil
}

func spatialiteLoaded(conn *gorm.DB) bool {
	var version string
	return conn.Raw("SELECT spatialite_version()").Scan(&version).Error == nil
}
