// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/larsclaussen/core-models/pkg/db/future"
	"github.com/larsclaussen/core-models/pkg/db/legacy"
)

// ConnectForTests opens a fresh in-memory database. The shared cache DSN
// keeps every pooled connection on the same database for the lifetime of
// the test.
func ConnectForTests(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	conn, err := future.Connect(dsn)
	require.NoError(t, err, "failed to open in-memory database")

	t.Cleanup(func() {
		sqlDB, err := conn.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
	})

	return conn
}

// ConnectLegacyForTests opens an in-memory database carrying the legacy
// tables used by the migration.
func ConnectLegacyForTests(t *testing.T) *gorm.DB {
	t.Helper()

	conn := ConnectForTests(t)
	require.NoError(t, conn.AutoMigrate(
		&legacy.ConnectionNode{},
		&legacy.Channel{},
	))
	return conn
}

// ConnectFutureForTests opens an in-memory database with the replacement
// schema initialized.
func ConnectFutureForTests(t *testing.T) *gorm.DB {
	t.Helper()

	conn := ConnectForTests(t)
	require.NoError(t, future.InitSchema(conn))
	return conn
}
