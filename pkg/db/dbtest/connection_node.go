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

	db "github.com/larsclaussen/core-models/pkg/db"
	"github.com/larsclaussen/core-models/pkg/db/legacy"
)

func NewConnectionNode(t *testing.T, node legacy.ConnectionNode) legacy.ConnectionNode {
	t.Helper()

	storageArea := 100.0
	initialWaterlevel := 1.0
	result := legacy.ConnectionNode{
		StorageArea:       &storageArea,
		InitialWaterlevel: &initialWaterlevel,
		Code:              fmt.Sprintf("node_%s", uuid.New().String()),
		TheGeom:           db.NewPoint(legacy.WorkSRID, 4.9, 52.3),
	}

	if node.ID != 0 {
		result.ID = node.ID
	}
	if node.StorageArea != nil {
		result.StorageArea = node.StorageArea
	}
	if node.InitialWaterlevel != nil {
		result.InitialWaterlevel = node.InitialWaterlevel
	}
	if node.Code != "" {
		result.Code = node.Code
	}
	if !node.TheGeom.IsZero() {
		result.TheGeom = node.TheGeom
	}
	if !node.TheGeomLinestring.IsZero() {
		result.TheGeomLinestring = node.TheGeomLinestring
	}

	return result
}

func CreateConnectionNodes(t *testing.T, conn *gorm.DB, nodes ...legacy.ConnectionNode) []legacy.ConnectionNode {
	t.Helper()

	var records []legacy.ConnectionNode
	for _, n := range nodes {
		records = append(records, NewConnectionNode(t, n))
	}

	require.NoError(t, conn.CreateInBatches(&records, 1000).Error)

	return records
}
