// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/larsclaussen/core-models/pkg/db/legacy"
)

func TestFrictionType_Choices(t *testing.T) {
	require.True(t, legacy.FrictionChezy.Known())
	require.True(t, legacy.FrictionManning.Known())
	require.True(t, legacy.FrictionNikuradse.Known())

	require.False(t, legacy.FrictionType(0).Known())
	require.False(t, legacy.FrictionType(2).Known())
	require.False(t, legacy.FrictionType(998).Known())

	require.Equal(t, "chezy [m^(1/2)/s]", legacy.FrictionChezy.Label())
	require.Equal(t, "nikuradse (White-Coolbrook) [mm]", legacy.FrictionNikuradse.Label())
}

func TestChoiceSets_RejectOutOfDomainCodes(t *testing.T) {
	type choice interface{ Known() bool }

	for _, tc := range []struct {
		name string
		bad  choice
	}{
		{"MinMax", legacy.MinMax(2)},
		{"Use0DInflow", legacy.Use0DInflow(3)},
		{"Material", legacy.Material(9)},
		{"LeveeMaterial", legacy.LeveeMaterial(0)},
		{"LeveeCategory", legacy.LeveeCategory(6)},
		{"WeirType", legacy.WeirType(3)},
		{"FlowType", legacy.FlowType(0)},
		{"FlowDirection", legacy.FlowDirection(2)},
		{"MeasuringStationType", legacy.MeasuringStationType(2)},
		{"ManholeIndicator", legacy.ManholeIndicator(3)},
		{"CalculationType", legacy.CalculationType(3)},
		{"ZoomCategory", legacy.ZoomCategory(0)},
		{"ZoomCategoryHigh", legacy.ZoomCategory(6)},
		{"SewerageType", legacy.SewerageType(8)},
		{"ShapeTypeReservedTabulatedRectangle", legacy.ShapeType(5)},
		{"ShapeTypeReservedMouthshape", legacy.ShapeType(7)},
		{"OrificeShape", legacy.OrificeShape(1)},
		{"PumpClassification", legacy.PumpClassification(2)},
		{"PumpType", legacy.PumpType(0)},
		{"BoundaryType", legacy.BoundaryType(4)},
		{"IntegrationMethod", legacy.IntegrationMethod(3)},
		{"SurfaceClass", legacy.SurfaceClass("asphalt")},
		{"SurfaceInclination", legacy.SurfaceInclination("steep")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.False(t, tc.bad.Known())
		})
	}
}

func TestLabelRoundTrips(t *testing.T) {
	for _, indicator := range []legacy.ManholeIndicator{
		legacy.IndicatorManhole, legacy.IndicatorOutlet, legacy.IndicatorPumpstation,
	} {
		back, ok := legacy.ManholeIndicatorFromLabel(indicator.Label())
		require.True(t, ok)
		require.Equal(t, indicator, back)
	}

	for _, calc := range []legacy.CalculationType{
		legacy.CalculationEmbedded, legacy.CalculationIsolated, legacy.CalculationConnected,
	} {
		back, ok := legacy.CalculationTypeFromLabel(calc.Label())
		require.True(t, ok)
		require.Equal(t, calc, back)
	}

	for _, shape := range []legacy.ShapeType{
		legacy.ShapeRectangle, legacy.ShapeCircle, legacy.ShapeEgg,
		legacy.ShapeYZ, legacy.ShapeTabulatedTrapezium,
	} {
		back, ok := legacy.ShapeTypeFromLabel(shape.Label())
		require.True(t, ok)
		require.Equal(t, shape, back)
	}

	_, ok := legacy.ShapeTypeFromLabel("mouthshape")
	require.False(t, ok)
}

func TestCulvertShapeMapping_Literals(t *testing.T) {
	// Round and rectangular are swapped on purpose, the mapping mirrors what
	// the simulation engine expects.
	require.Equal(t, 2, legacy.CulvertShapeMapping[1])
	require.Equal(t, 1, legacy.CulvertShapeMapping[2])
	require.Equal(t, 3, legacy.CulvertShapeMapping[3])
	require.Equal(t, 2, legacy.CulvertShapeMapping[99])
	require.Len(t, legacy.CulvertShapeMapping, 7)
}

func TestGuessPipeFriction(t *testing.T) {
	v, ok := legacy.GuessPipeFriction(legacy.FrictionManning, legacy.MaterialConcrete)
	require.True(t, ok)
	require.Equal(t, 0.0145, v)

	v, ok = legacy.GuessPipeFriction(legacy.FrictionChezy, legacy.MaterialBrickwork)
	require.True(t, ok)
	require.Equal(t, 42.0, v)

	v, ok = legacy.GuessPipeFriction(legacy.FrictionNikuradse, legacy.MaterialPVC)
	require.True(t, ok)
	require.Equal(t, 0.40, v)

	_, ok = legacy.GuessPipeFriction(legacy.FrictionType(2), legacy.MaterialConcrete)
	require.False(t, ok)
}

func TestSurfaceClass_Predicates(t *testing.T) {
	require.True(t, legacy.SurfacePand.IsBuilding())
	require.False(t, legacy.SurfacePand.IsRoad())
	require.True(t, legacy.SurfaceGeslotenVerharding.IsRoad())
	require.False(t, legacy.SurfaceGeslotenVerharding.IsBuilding())
}

func TestProjMapping(t *testing.T) {
	require.Equal(t, legacy.RDNewSRID, legacy.ProjMapping["amersfoort_rd_new"])
	require.Equal(t, legacy.RDNewSRID, legacy.ProjMapping["amersfoort"])
	require.Equal(t, 4326, legacy.WorkSRID)
}
