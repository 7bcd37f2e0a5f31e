// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	db "github.com/larsclaussen/core-models/pkg/db"
	"github.com/larsclaussen/core-models/pkg/db/dbtest"
	"github.com/larsclaussen/core-models/pkg/db/legacy"
)

func TestCreateConnectionNode(t *testing.T) {
	conn := dbtest.ConnectLegacyForTests(t)
	ctx := context.Background()

	storageArea := 12.5
	created, err := legacy.CreateConnectionNode(ctx, conn, legacy.ConnectionNode{
		StorageArea: &storageArea,
		Code:        "node-1",
		TheGeom:     db.NewPoint(legacy.WorkSRID, 4.9, 52.3),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := legacy.GetConnectionNode(ctx, conn, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Code, got.Code)
	require.Equal(t, storageArea, *got.StorageArea)
	require.Equal(t, db.NewPoint(legacy.WorkSRID, 4.9, 52.3), got.TheGeom)
}

func TestCreateConnectionNode_RejectsMissingGeometry(t *testing.T) {
	conn := dbtest.ConnectLegacyForTests(t)

	_, err := legacy.CreateConnectionNode(context.Background(), conn, legacy.ConnectionNode{Code: "node-1"})
	var verr *db.ValidationError
	require.ErrorAs(t, err, &verr)

	count, err := legacy.CountConnectionNodes(context.Background(), conn)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestGetConnectionNode_NotFound(t *testing.T) {
	conn := dbtest.ConnectLegacyForTests(t)

	_, err := legacy.GetConnectionNode(context.Background(), conn, 42)
	require.ErrorIs(t, err, legacy.ErrConnectionNodeNotFound)
}

func TestMarkReadOnly_RejectsWrites(t *testing.T) {
	conn := dbtest.ConnectLegacyForTests(t)
	nodes := dbtest.CreateConnectionNodes(t, conn, legacy.ConnectionNode{})

	readOnly := legacy.MarkReadOnly(conn)

	// Reads still work.
	got, err := legacy.GetConnectionNode(context.Background(), readOnly, nodes[0].ID)
	require.NoError(t, err)
	require.Equal(t, nodes[0].Code, got.Code)

	_, err = legacy.CreateConnectionNode(context.Background(), readOnly, legacy.ConnectionNode{
		Code:    "nope",
		TheGeom: db.NewPoint(legacy.WorkSRID, 1, 2),
	})
	require.ErrorIs(t, err, legacy.ErrReadOnly)

	err = readOnly.Delete(&legacy.ConnectionNode{}, nodes[0].ID).Error
	require.ErrorIs(t, err, legacy.ErrReadOnly)
}
