// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package db_test

import (
	"encoding/hex"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/stretchr/testify/require"

	db "github.com/larsclaussen/core-models/pkg/db"
)

func TestGeometry_EWKTRoundTrip(t *testing.T) {
	for _, g := range []db.Geometry{
		db.NewPoint(4326, 4.9, 52.3),
		db.NewLineString(4326, orb.Point{4.9, 52.3}, orb.Point{4.95, 52.35}),
		db.NewPolygon(4326, orb.Point{0, 0}, orb.Point{1, 0}, orb.Point{1, 1}, orb.Point{0, 0}),
	} {
		parsed, err := db.ParseGeometry(g.EWKT())
		require.NoError(t, err)
		require.Equal(t, g, parsed)
	}
}

func TestGeometry_ScanAcceptsBareWKT(t *testing.T) {
	var g db.Geometry
	require.NoError(t, g.Scan("POINT(1 2)"))
	require.Equal(t, "Point", g.Kind())
	require.Equal(t, 0, g.SRID)
	require.Equal(t, orb.Point{1, 2}, g.Geom)
}

func TestGeometry_ScanAcceptsHexEWKB(t *testing.T) {
	want := db.NewPoint(4326, 4.9, 52.3)

	raw, err := ewkb.Marshal(want.Geom, want.SRID)
	require.NoError(t, err)

	var g db.Geometry
	require.NoError(t, g.Scan(hex.EncodeToString(raw)))
	require.Equal(t, want, g)
}

func TestGeometry_ScanNilYieldsZero(t *testing.T) {
	g := db.NewPoint(4326, 1, 2)
	require.NoError(t, g.Scan(nil))
	require.True(t, g.IsZero())
}

func TestGeometry_ValueOfZeroIsNull(t *testing.T) {
	var g db.Geometry
	v, err := g.Value()
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestParseGeometry_Malformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"SRID=4326POINT(1 2)",
		"SRID=abc;POINT(1 2)",
		"POINT(1",
		"NOT A GEOMETRY",
	} {
		_, err := db.ParseGeometry(raw)
		require.Error(t, err, "input %q", raw)
	}
}

func TestValidationError_Message(t *testing.T) {
	err := db.NewValidationError("ConnectionNode", "the_geom", "required geometry is not set")
	require.EqualError(t, err, "ConnectionNode.the_geom: required geometry is not set")
}

func TestRequireGeometry(t *testing.T) {
	require.Error(t, db.RequireGeometry("E", "f", db.Geometry{}, "Point"))
	require.Error(t, db.RequireGeometry("E", "f", db.NewPoint(4326, 1, 2), "LineString"))
	require.NoError(t, db.RequireGeometry("E", "f", db.NewPoint(4326, 1, 2), "Point"))

	require.NoError(t, db.RequireGeometryKind("E", "f", db.Geometry{}, "Point"))
	require.Error(t, db.RequireGeometryKind("E", "f", db.NewPoint(4326, 1, 2), "Polygon"))
}
