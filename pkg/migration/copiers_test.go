// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package migration

import (
	"testing"

	"github.com/stretchr/testify/require"

	db "github.com/larsclaussen/core-models/pkg/db"
)

func TestGeometryColumn_UnwrapsMapScanIndirection(t *testing.T) {
	// gorm's map scan has no schema for the source table, so columns it
	// cannot map to a Go type, geometry columns among them, come back as
	// *interface{} rather than string or []byte.
	var raw interface{} = "SRID=4326;POINT(4.9 52.3)"
	geom, err := geometryColumn("ConnectionNode", "the_geom", &raw)
	require.NoError(t, err)
	require.Equal(t, db.NewPoint(4326, 4.9, 52.3), geom)

	var null interface{}
	geom, err = geometryColumn("ConnectionNode", "the_geom", &null)
	require.NoError(t, err)
	require.Equal(t, db.Geometry{}, geom)
}

func TestGeometryColumn_Malformed(t *testing.T) {
	var raw interface{} = "POINT(4.9"
	_, err := geometryColumn("ConnectionNode", "the_geom", &raw)
	var convErr *GeometryConversionError
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, "ConnectionNode", convErr.Entity)
	require.Equal(t, "the_geom", convErr.Column)
}

func TestColumnHelpers_UnwrapMapScanIndirection(t *testing.T) {
	var id interface{} = int64(7)
	require.Equal(t, 7, intColumn(&id))
	require.Equal(t, 7, *intRefColumn(&id))

	var level interface{} = 12.5
	require.Equal(t, 12.5, *floatColumn(&level))

	var code interface{} = []byte("node-7")
	require.Equal(t, "node-7", stringColumn(&code))

	var none interface{}
	require.Nil(t, intRefColumn(&none))
	require.Nil(t, floatColumn(&none))
}
