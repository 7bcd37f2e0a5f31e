// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package migration_test

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	db "github.com/larsclaussen/core-models/pkg/db"
	"github.com/larsclaussen/core-models/pkg/db/dbtest"
	"github.com/larsclaussen/core-models/pkg/db/future"
	"github.com/larsclaussen/core-models/pkg/db/legacy"
	"github.com/larsclaussen/core-models/pkg/migration"
)

func ptr[T any](v T) *T { return &v }

func TestRun_CopiesConnectionNodes(t *testing.T) {
	source := dbtest.ConnectLegacyForTests(t)
	dest := dbtest.ConnectForTests(t)
	ctx := context.Background()

	dbtest.CreateConnectionNodes(t, source, legacy.ConnectionNode{
		ID:                7,
		StorageArea:       ptr(12.5),
		InitialWaterlevel: ptr(0.8),
		Code:              "node-7",
		TheGeom:           db.NewPoint(legacy.WorkSRID, 4.9, 52.3),
		// Legacy-only column, silently dropped by the copy.
		TheGeomLinestring: db.NewLineString(legacy.WorkSRID, orb.Point{4.9, 52.3}, orb.Point{5, 52.4}),
	})

	summary, err := migration.New(source, dest).Run(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, summary.RunID)
	require.EqualValues(t, 1, summary.Copied["ConnectionNode"])

	got, err := future.GetConnectionNode(ctx, dest, 7)
	require.NoError(t, err)
	require.Equal(t, 7, got.ID)
	require.Equal(t, 12.5, *got.StorageArea)
	require.Equal(t, 0.8, *got.InitialWaterlevel)
	require.Equal(t, "node-7", got.Code)
	require.Equal(t, db.NewPoint(4326, 4.9, 52.3), got.TheGeom)
}

func TestRun_CopiesChannelsAfterNodes(t *testing.T) {
	source := dbtest.ConnectLegacyForTests(t)
	dest := dbtest.ConnectForTests(t)
	ctx := context.Background()

	nodes := dbtest.CreateConnectionNodes(t, source,
		legacy.ConnectionNode{ID: 1},
		legacy.ConnectionNode{ID: 2},
	)
	dbtest.CreateChannels(t, source, legacy.Channel{
		ID:                    10,
		Code:                  "chan-10",
		DisplayName:           "main channel",
		ConnectionNodeStartID: ptr(nodes[0].ID),
		ConnectionNodeEndID:   ptr(nodes[1].ID),
	})

	summary, err := migration.New(source, dest).Run(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, summary.Copied["ConnectionNode"])
	require.EqualValues(t, 1, summary.Copied["Channel"])

	var channel future.Channel
	require.NoError(t, dest.First(&channel, 10).Error)
	require.Equal(t, "chan-10", channel.Code)
	require.Equal(t, "main channel", channel.DisplayName)
	require.Equal(t, 1, *channel.ConnectionNodeStartID)
	require.Equal(t, 2, *channel.ConnectionNodeEndID)
	require.Equal(t, "LineString", channel.TheGeom.Kind())
}

func TestRun_EmptySource(t *testing.T) {
	source := dbtest.ConnectLegacyForTests(t)
	dest := dbtest.ConnectForTests(t)
	ctx := context.Background()

	summary, err := migration.New(source, dest).Run(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, summary.Copied["ConnectionNode"])
	require.EqualValues(t, 0, summary.Copied["Channel"])

	// The destination schema exists even when nothing was copied.
	count, err := future.CountConnectionNodes(ctx, dest)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestRun_MalformedGeometryAbortsWithoutRows(t *testing.T) {
	source := dbtest.ConnectLegacyForTests(t)
	dest := dbtest.ConnectForTests(t)
	ctx := context.Background()

	dbtest.CreateConnectionNodes(t, source, legacy.ConnectionNode{ID: 1}, legacy.ConnectionNode{ID: 2})
	require.NoError(t, source.Exec("UPDATE v2_connection_nodes SET the_geom = 'POINT(4.9' WHERE id = 2").Error)

	_, err := migration.New(source, dest).Run(ctx)
	var gerr *migration.GeometryConversionError
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, "ConnectionNode", gerr.Entity)
	require.Equal(t, "the_geom", gerr.Column)

	count, err := future.CountConnectionNodes(ctx, dest)
	require.NoError(t, err)
	require.Zero(t, count, "no rows may be committed when the run aborts")
}

func TestRun_MissingRequiredColumnIsSchemaMismatch(t *testing.T) {
	source := dbtest.ConnectForTests(t)
	dest := dbtest.ConnectForTests(t)

	require.NoError(t, source.Exec(
		"CREATE TABLE v2_connection_nodes (id integer primary key, storage_area real)",
	).Error)

	_, err := migration.New(source, dest).Run(context.Background())
	var merr *migration.SchemaMismatchError
	require.ErrorAs(t, err, &merr)
	require.Equal(t, "ConnectionNode", merr.Entity)
	require.Equal(t, "the_geom", merr.Column)
}

func TestRun_InsertConflictIsTransactionError(t *testing.T) {
	source := dbtest.ConnectLegacyForTests(t)
	dest := dbtest.ConnectFutureForTests(t)
	ctx := context.Background()

	// A row already occupying the primary key makes the destination
	// insert fail inside the transaction.
	require.NoError(t, dest.Create(&future.ConnectionNode{
		ID:      7,
		Code:    "pre-existing",
		TheGeom: db.NewPoint(legacy.WorkSRID, 4.0, 52.0),
	}).Error)

	dbtest.CreateConnectionNodes(t, source, legacy.ConnectionNode{
		ID:      7,
		Code:    "node-7",
		TheGeom: db.NewPoint(legacy.WorkSRID, 4.9, 52.3),
	})

	_, err := migration.New(source, dest).Run(ctx)
	var terr *migration.TransactionError
	require.ErrorAs(t, err, &terr)

	// The transaction rolled back: only the pre-existing row remains,
	// untouched.
	count, err := future.CountConnectionNodes(ctx, dest)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	existing, err := future.GetConnectionNode(ctx, dest, 7)
	require.NoError(t, err)
	require.Equal(t, "pre-existing", existing.Code)
}

func TestRun_InvalidRowFailsValidation(t *testing.T) {
	source := dbtest.ConnectLegacyForTests(t)
	dest := dbtest.ConnectForTests(t)
	ctx := context.Background()

	dbtest.CreateConnectionNodes(t, source, legacy.ConnectionNode{ID: 1})
	// The future schema requires the geometry, a NULL must abort the run.
	require.NoError(t, source.Exec("UPDATE v2_connection_nodes SET the_geom = NULL WHERE id = 1").Error)

	_, err := migration.New(source, dest).Run(ctx)
	var verr *db.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "the_geom", verr.Field)

	count, err := future.CountConnectionNodes(ctx, dest)
	require.NoError(t, err)
	require.Zero(t, count)
}
