// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	db "github.com/larsclaussen/core-models/pkg/db"
	"github.com/larsclaussen/core-models/pkg/db/legacy"
)

func ptr[T any](v T) *T { return &v }

func validPoint() db.Geometry {
	return db.NewPoint(legacy.WorkSRID, 4.9, 52.3)
}

func validLine() db.Geometry {
	return db.NewLineString(legacy.WorkSRID, orb.Point{4.9, 52.3}, orb.Point{4.95, 52.35})
}

func validPolygon() db.Geometry {
	return db.NewPolygon(legacy.WorkSRID, orb.Point{0, 0}, orb.Point{1, 0}, orb.Point{1, 1}, orb.Point{0, 0})
}

type validatable interface{ Validate() error }

func TestValidate_RejectsOutOfDomainEnumCodes(t *testing.T) {
	for _, tc := range []struct {
		name  string
		model validatable
		field string
	}{
		{
			name:  "pipe sewerage type",
			model: &legacy.Pipe{SewerageType: ptr(legacy.SewerageType(8))},
			field: "sewerage_type",
		},
		{
			name:  "pipe calculation type",
			model: &legacy.Pipe{CalculationType: ptr(legacy.CalculationType(3))},
			field: "calculation_type",
		},
		{
			name:  "pipe friction type",
			model: &legacy.Pipe{FrictionType: ptr(legacy.FrictionType(2))},
			field: "friction_type",
		},
		{
			name:  "pipe material",
			model: &legacy.Pipe{Material: ptr(legacy.Material(42))},
			field: "material",
		},
		{
			name:  "pipe zoom category",
			model: &legacy.Pipe{ZoomCategory: ptr(legacy.ZoomCategory(6))},
			field: "zoom_category",
		},
		{
			name:  "channel calculation type",
			model: &legacy.Channel{CalculationType: ptr(legacy.CalculationType(-1)), TheGeom: validLine()},
			field: "calculation_type",
		},
		{
			name:  "manhole indicator",
			model: &legacy.Manhole{ManholeIndicator: ptr(legacy.ManholeIndicator(9))},
			field: "manhole_indicator",
		},
		{
			name:  "weir friction type",
			model: &legacy.Weir{FrictionType: ptr(legacy.FrictionType(0))},
			field: "friction_type",
		},
		{
			name:  "orifice friction type",
			model: &legacy.Orifice{FrictionType: ptr(legacy.FrictionType(1000))},
			field: "friction_type",
		},
		{
			name:  "culvert calculation type",
			model: &legacy.Culvert{CalculationType: ptr(legacy.CalculationType(7)), TheGeom: validLine()},
			field: "calculation_type",
		},
		{
			name:  "pumpstation classification",
			model: &legacy.Pumpstation{Classification: ptr(legacy.PumpClassification(2))},
			field: "classification",
		},
		{
			name:  "pumpstation type",
			model: &legacy.Pumpstation{Type: ptr(legacy.PumpType(3))},
			field: "type",
		},
		{
			name:  "cross section shape",
			model: &legacy.CrossSectionDefinition{Shape: ptr(legacy.ShapeType(5))},
			field: "shape",
		},
		{
			name:  "cross section location friction type",
			model: &legacy.CrossSectionLocation{FrictionType: ptr(legacy.FrictionType(3))},
			field: "friction_type",
		},
		{
			name:  "1d boundary condition type",
			model: &legacy.OneDeeBoundaryCondition{BoundaryType: ptr(legacy.BoundaryType(0))},
			field: "boundary_type",
		},
		{
			name:  "levee material",
			model: &legacy.Levee{Material: ptr(legacy.LeveeMaterial(3)), TheGeom: validLine()},
			field: "material",
		},
		{
			name:  "impervious surface class",
			model: &legacy.ImperviousSurface{SurfaceClass: "asphalt", SurfaceInclination: legacy.InclinationVlak},
			field: "surface_class",
		},
		{
			name:  "impervious surface inclination",
			model: &legacy.ImperviousSurface{SurfaceClass: legacy.SurfacePand, SurfaceInclination: "steep"},
			field: "surface_inclination",
		},
		{
			name:  "numerical settings limiter",
			model: &legacy.NumericalSettings{LimiterGrad1D: ptr(legacy.MinMax(2))},
			field: "limiter_grad_1d",
		},
		{
			name:  "numerical settings integration method",
			model: &legacy.NumericalSettings{IntegrationMethod: ptr(legacy.IntegrationMethod(5))},
			field: "integration_method",
		},
		{
			name:  "global settings friction type",
			model: &legacy.GlobalSettings{FrictType: ptr(legacy.FrictionType(2))},
			field: "frict_type",
		},
		{
			name:  "global settings use 0d inflow",
			model: &legacy.GlobalSettings{Use0DInflow: legacy.Use0DInflow(9)},
			field: "use_0d_inflow",
		},
		{
			name:  "aggregation method",
			model: &legacy.AggregationSettings{AggregationMethod: "sum"},
			field: "aggregation_method",
		},
		{
			name:  "control measure map weight",
			model: &legacy.ControlMeasureMap{Weight: ptr(1.5)},
			field: "weight",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.model.Validate()
			require.Error(t, err)

			var verr *db.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestValidate_RequiredGeometry(t *testing.T) {
	node := &legacy.ConnectionNode{Code: "n1"}
	err := node.Validate()
	var verr *db.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "the_geom", verr.Field)

	node.TheGeom = validPoint()
	require.NoError(t, node.Validate())

	// Wrong kind on the optional linestring column.
	node.TheGeomLinestring = validPoint()
	require.Error(t, node.Validate())

	channel := &legacy.Channel{}
	require.Error(t, channel.Validate())
	channel.TheGeom = validLine()
	require.NoError(t, channel.Validate())

	area := &legacy.PumpedDrainageArea{Name: "a", TheGeom: validLine()}
	require.Error(t, area.Validate())
	area.TheGeom = validPolygon()
	require.NoError(t, area.Validate())

	point := &legacy.CalculationPoint{UserRef: "284#1#v2_channel#5", CalcType: 1, TheGeom: validPoint()}
	require.NoError(t, point.Validate())
	point.UserRef = ""
	require.Error(t, point.Validate())
}

func TestValidate_NullEnumsAreAccepted(t *testing.T) {
	require.NoError(t, (&legacy.Pipe{}).Validate())
	require.NoError(t, (&legacy.Manhole{}).Validate())
	require.NoError(t, (&legacy.Weir{}).Validate())
	require.NoError(t, (&legacy.NumericalSettings{}).Validate())
	require.NoError(t, (&legacy.OneDeeBoundaryCondition{}).Validate())
}
