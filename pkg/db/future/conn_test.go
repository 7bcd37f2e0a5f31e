// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package future_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	db "github.com/larsclaussen/core-models/pkg/db"
	"github.com/larsclaussen/core-models/pkg/db/dbtest"
	"github.com/larsclaussen/core-models/pkg/db/future"
	"github.com/larsclaussen/core-models/pkg/db/legacy"
)

func TestInitSchema_Idempotent(t *testing.T) {
	conn := dbtest.ConnectForTests(t)

	require.NoError(t, future.InitSchema(conn))

	node := future.ConnectionNode{
		Code:    "node-1",
		TheGeom: db.NewPoint(legacy.WorkSRID, 4.9, 52.3),
	}
	require.NoError(t, conn.Create(&node).Error)

	// A second run must not redefine tables or touch existing rows.
	require.NoError(t, future.InitSchema(conn))

	count, err := future.CountConnectionNodes(context.Background(), conn)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	got, err := future.GetConnectionNode(context.Background(), conn, node.ID)
	require.NoError(t, err)
	require.Equal(t, "node-1", got.Code)
	require.Equal(t, node.TheGeom, got.TheGeom)
}

func TestGetConnectionNode_NotFound(t *testing.T) {
	conn := dbtest.ConnectFutureForTests(t)

	_, err := future.GetConnectionNode(context.Background(), conn, 7)
	require.ErrorIs(t, err, future.ErrConnectionNodeNotFound)
}

func TestConnectionNode_RequiresPointGeometry(t *testing.T) {
	node := future.ConnectionNode{Code: "node-1"}
	require.Error(t, node.Validate())

	node.TheGeom = db.NewLineString(legacy.WorkSRID)
	require.Error(t, node.Validate())

	node.TheGeom = db.NewPoint(legacy.WorkSRID, 1, 2)
	require.NoError(t, node.Validate())
}
