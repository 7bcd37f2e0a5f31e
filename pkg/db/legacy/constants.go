// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy

// Spatial reference systems used throughout the schema. All geometry columns
// of the work database carry WorkSRID.
const (
	WorkSRID  = 4326
	WGS84SRID = 4326
	RDNewSRID = 28992
)

// ProjMapping resolves a projection name to an EPSG SRID for shapefiles that
// do not carry the code themselves.
var ProjMapping = map[string]int{
	"amersfoort_rd_new": RDNewSRID,
	"amersfoort_rd":     RDNewSRID,
	"amersfoort":        RDNewSRID,
}

// FrictionType is the friction formulation of a conduit or cross section.
type FrictionType int

const (
	FrictionChezy     FrictionType = 1
	FrictionManning   FrictionType = 4
	FrictionNikuradse FrictionType = 999
)

var frictionTypeLabels = map[FrictionType]string{
	FrictionChezy:     "chezy [m^(1/2)/s]",
	FrictionManning:   "manning nm [s/m^(1/2)]",
	FrictionNikuradse: "nikuradse (White-Coolbrook) [mm]",
}

func (f FrictionType) Known() bool { return frictionTypeLabels[f] != "" }

func (f FrictionType) Label() string { return frictionTypeLabels[f] }

// MinMax is the shared {0 minimum, 1 maximum} choice used by the friction
// averaging and limiter settings.
type MinMax int

const (
	Minimum MinMax = 0
	Maximum MinMax = 1
)

var minMaxLabels = map[MinMax]string{
	Minimum: "minimum",
	Maximum: "maximum",
}

func (m MinMax) Known() bool { _, ok := minMaxLabels[m]; return ok }

func (m MinMax) Label() string { return minMaxLabels[m] }

// Use0DInflow selects the source of 0D inflow for a model.
type Use0DInflow int

const (
	NoInflow         Use0DInflow = 0
	ImperviousInflow Use0DInflow = 1
	SurfaceInflow    Use0DInflow = 2
)

var use0DInflowLabels = map[Use0DInflow]string{
	NoInflow:         "no_inflow",
	ImperviousInflow: "impervious_inflow",
	SurfaceInflow:    "surface_inflow",
}

func (u Use0DInflow) Known() bool { _, ok := use0DInflowLabels[u]; return ok }

func (u Use0DInflow) Label() string { return use0DInflowLabels[u] }

// Material is the construction material of a pipe.
type Material int

const (
	MaterialConcrete  Material = 0
	MaterialPVC       Material = 1
	MaterialStoneware Material = 2
	MaterialCastIron  Material = 3
	MaterialBrickwork Material = 4
	MaterialHPE       Material = 5
	MaterialHPDE      Material = 6
	MaterialSheetIron Material = 7
	MaterialSteel     Material = 8
)

var materialLabels = map[Material]string{
	MaterialConcrete:  "concrete",
	MaterialPVC:       "pvc",
	MaterialStoneware: "stoneware",
	MaterialCastIron:  "cast-iron",
	MaterialBrickwork: "brickwork",
	MaterialHPE:       "hpe",
	MaterialHPDE:      "hpde",
	MaterialSheetIron: "sheet-iron",
	MaterialSteel:     "steel",
}

func (m Material) Known() bool { _, ok := materialLabels[m]; return ok }

func (m Material) Label() string { return materialLabels[m] }

// MaterialRoughness holds the friction value per friction type and pipe
// material, used to guess a pipe friction when the source data has none.
var MaterialRoughness = map[FrictionType]map[Material]float64{
	FrictionChezy: {
		MaterialConcrete:  47,
		MaterialPVC:       62,
		MaterialStoneware: 60,
		MaterialCastIron:  50,
		MaterialBrickwork: 42,
		MaterialHPE:       62,
		MaterialHPDE:      62,
		MaterialSheetIron: 49,
		MaterialSteel:     52,
	},
	FrictionManning: {
		MaterialConcrete:  0.0145,
		MaterialPVC:       0.0110,
		MaterialStoneware: 0.0115,
		MaterialCastIron:  0.0135,
		MaterialBrickwork: 0.0160,
		MaterialHPE:       0.0110,
		MaterialHPDE:      0.0110,
		MaterialSheetIron: 0.0135,
		MaterialSteel:     0.0130,
	},
	FrictionNikuradse: {
		MaterialConcrete:  3.00,
		MaterialPVC:       0.40,
		MaterialStoneware: 0.50,
		MaterialCastIron:  2.00,
		MaterialBrickwork: 5.00,
		MaterialHPE:       0.40,
		MaterialHPDE:      0.40,
		MaterialSheetIron: 2.00,
		MaterialSteel:     1.50,
	},
}

// GuessPipeFriction returns the tabulated roughness for a material under the
// given friction formulation.
func GuessPipeFriction(f FrictionType, m Material) (float64, bool) {
	byMaterial, ok := MaterialRoughness[f]
	if !ok {
		return 0, false
	}
	v, ok := byMaterial[m]
	return v, ok
}

// LeveeMaterial is the construction material of a levee.
type LeveeMaterial int

const (
	LeveeSand LeveeMaterial = 1
	LeveeClay LeveeMaterial = 2
)

var leveeMaterialLabels = map[LeveeMaterial]string{
	LeveeSand: "zand",
	LeveeClay: "klei",
}

func (m LeveeMaterial) Known() bool { _, ok := leveeMaterialLabels[m]; return ok }

func (m LeveeMaterial) Label() string { return leveeMaterialLabels[m] }

// LeveeCategory classifies a levee.
type LeveeCategory int

const (
	LeveePrimary  LeveeCategory = 1
	LeveeRegional LeveeCategory = 2
	LeveeCType    LeveeCategory = 3
	LeveeDry      LeveeCategory = 4
	LeveeOther    LeveeCategory = 5
)

var leveeCategoryLabels = map[LeveeCategory]string{
	LeveePrimary:  "primary",
	LeveeRegional: "regional",
	LeveeCType:    "c-type",
	LeveeDry:      "dry",
	LeveeOther:    "other",
}

func (c LeveeCategory) Known() bool { _, ok := leveeCategoryLabels[c]; return ok }

func (c LeveeCategory) Label() string { return leveeCategoryLabels[c] }

// WeirType distinguishes broad and sharp crested weirs.
type WeirType int

const (
	WeirBroadCrested WeirType = 1
	WeirSharpCrested WeirType = 2
)

var weirTypeLabels = map[WeirType]string{
	WeirBroadCrested: "broad crested",
	WeirSharpCrested: "sharp crested",
}

func (w WeirType) Known() bool { _, ok := weirTypeLabels[w]; return ok }

func (w WeirType) Label() string { return weirTypeLabels[w] }

// FlowType is the orifice flow regime.
type FlowType int

const (
	FlowSewer       FlowType = 1
	FlowOpenChannel FlowType = 2
)

var flowTypeLabels = map[FlowType]string{
	FlowSewer:       "sewer",
	FlowOpenChannel: "open channel",
}

func (f FlowType) Known() bool { _, ok := flowTypeLabels[f]; return ok }

func (f FlowType) Label() string { return flowTypeLabels[f] }

// FlowDirection constrains the allowed flow direction through a structure.
type FlowDirection int

const (
	FlowBackwards FlowDirection = -1
	FlowBoth      FlowDirection = 0
	FlowForwards  FlowDirection = 1
	FlowClosed    FlowDirection = 3
)

var flowDirectionLabels = map[FlowDirection]string{
	FlowBackwards: "backwards",
	FlowBoth:      "both",
	FlowForwards:  "forwards",
	FlowClosed:    "closed",
}

func (f FlowDirection) Known() bool { _, ok := flowDirectionLabels[f]; return ok }

func (f FlowDirection) Label() string { return flowDirectionLabels[f] }

// MeasuringStationType classifies measuring stations.
type MeasuringStationType int

const MeasuringStationWeather MeasuringStationType = 1

var measuringStationTypeLabels = map[MeasuringStationType]string{
	MeasuringStationWeather: "weather",
}

func (m MeasuringStationType) Known() bool { _, ok := measuringStationTypeLabels[m]; return ok }

func (m MeasuringStationType) Label() string { return measuringStationTypeLabels[m] }

// ManholeIndicator is the type of a manhole.
type ManholeIndicator int

const (
	IndicatorManhole     ManholeIndicator = 0
	IndicatorOutlet      ManholeIndicator = 1
	IndicatorPumpstation ManholeIndicator = 2
)

var manholeIndicatorLabels = map[ManholeIndicator]string{
	IndicatorManhole:     "manhole",
	IndicatorOutlet:      "outlet",
	IndicatorPumpstation: "pumpstation",
}

func (m ManholeIndicator) Known() bool { _, ok := manholeIndicatorLabels[m]; return ok }

func (m ManholeIndicator) Label() string { return manholeIndicatorLabels[m] }

// ManholeIndicatorFromLabel is the reverse lookup for ManholeIndicator.
func ManholeIndicatorFromLabel(label string) (ManholeIndicator, bool) {
	for code, l := range manholeIndicatorLabels {
		if l == label {
			return code, true
		}
	}
	return 0, false
}

// CalculationType is the modelling type of a 1D object. Manholes, pipes,
// channels and culverts share the same closed set.
type CalculationType int

const (
	CalculationEmbedded  CalculationType = 0
	CalculationIsolated  CalculationType = 1
	CalculationConnected CalculationType = 2
)

var calculationTypeLabels = map[CalculationType]string{
	CalculationEmbedded:  "embedded",
	CalculationIsolated:  "isolated",
	CalculationConnected: "connected",
}

func (c CalculationType) Known() bool { _, ok := calculationTypeLabels[c]; return ok }

func (c CalculationType) Label() string { return calculationTypeLabels[c] }

// CalculationTypeFromLabel is the reverse lookup for CalculationType.
func CalculationTypeFromLabel(label string) (CalculationType, bool) {
	for code, l := range calculationTypeLabels {
		if l == label {
			return code, true
		}
	}
	return 0, false
}

// ZoomCategory ranks objects for display purposes, 1 through 5.
type ZoomCategory int

func (z ZoomCategory) Known() bool { return z >= 1 && z <= 5 }

func (z ZoomCategory) Label() string {
	if !z.Known() {
		return ""
	}
	return [...]string{"zoom 1", "zoom 2", "zoom 3", "zoom 4", "zoom 5"}[z-1]
}

// SewerageType is the function of a sewer pipe.
type SewerageType int

const (
	SewerageCombined            SewerageType = 0
	SewerageStormwater          SewerageType = 1
	SewerageWastewater          SewerageType = 2
	SewerageTransport           SewerageType = 3
	SewerageOverflow            SewerageType = 4
	SewerageSinker              SewerageType = 5
	SewerageStorage             SewerageType = 6
	SewerageStorageSettlingTank SewerageType = 7
)

var sewerageTypeLabels = map[SewerageType]string{
	SewerageCombined:            "combined",
	SewerageStormwater:          "stormwater",
	SewerageWastewater:          "wastewater",
	SewerageTransport:           "transport",
	SewerageOverflow:            "overflow",
	SewerageSinker:              "sinker",
	SewerageStorage:             "storage",
	SewerageStorageSettlingTank: "storage-settling-tank",
}

func (s SewerageType) Known() bool { _, ok := sewerageTypeLabels[s]; return ok }

func (s SewerageType) Label() string { return sewerageTypeLabels[s] }

// ShapeType is the profile shape of a cross section definition.
// Tabulated rectangle (5) and mouthshape (7) are reserved but not yet valid.
type ShapeType int

const (
	ShapeRectangle          ShapeType = 1
	ShapeCircle             ShapeType = 2
	ShapeEgg                ShapeType = 3
	ShapeYZ                 ShapeType = 4
	ShapeTabulatedTrapezium ShapeType = 6
)

var shapeTypeLabels = map[ShapeType]string{
	ShapeRectangle:          "rectangle",
	ShapeCircle:             "circle",
	ShapeEgg:                "egg",
	ShapeYZ:                 "yz",
	ShapeTabulatedTrapezium: "tabulated_trapezium",
}

func (s ShapeType) Known() bool { _, ok := shapeTypeLabels[s]; return ok }

func (s ShapeType) Label() string { return shapeTypeLabels[s] }

// ShapeTypeFromLabel is the reverse lookup for ShapeType.
func ShapeTypeFromLabel(label string) (ShapeType, bool) {
	for code, l := range shapeTypeLabels {
		if l == label {
			return code, true
		}
	}
	return 0, false
}

// OrificeShape is the legacy two-value orifice shape set.
type OrificeShape int

const (
	OrificeRound     OrificeShape = 0
	OrificeRectangle OrificeShape = 2
)

var orificeShapeLabels = map[OrificeShape]string{
	OrificeRound:     "round",
	OrificeRectangle: "rectangle",
}

func (o OrificeShape) Known() bool { _, ok := orificeShapeLabels[o]; return ok }

func (o OrificeShape) Label() string { return orificeShapeLabels[o] }

// PipeShapeCodes maps the import database's two-digit shape codes to names.
var PipeShapeCodes = map[string]string{
	"00": "circle",
	"01": "egg",
	"02": "rectangle",
	"03": "mouthshape",
	"04": "square",
	"05": "heul",
	"06": "trapezium",
}

// Manhole shape codes as found in import data.
const (
	ManholeShapeSquare    = "00"
	ManholeShapeRound     = "01"
	ManholeShapeRectangle = "02"
)

var ManholeShapeCodes = map[string]string{
	ManholeShapeSquare:    "vierkant",
	ManholeShapeRound:     "rond",
	ManholeShapeRectangle: "rechthoekig",
}

// CulvertShapeMapping maps import culvert shape codes to 3Di shape codes.
// Round and rectangular are swapped on purpose, the mapping mirrors what the
// simulation engine expects. It deliberately differs from PipeShapeCodes
// (e.g. egg-shaped) and must not be "fixed" without confirming against the
// engine.
var CulvertShapeMapping = map[int]int{
	1:  2, // round (rond)
	2:  1, // rectangular (rechthoekig)
	3:  3, // egg-shaped (eivormig)
	4:  4, // ? (muil)
	5:  5, // ellipse (ellips)
	6:  6, // ? (heul)
	99: 2, // unknown (onbekend)
}

// PumpClassification classifies pumpstations.
type PumpClassification int

const PumpClass1 PumpClassification = 1

var pumpClassificationLabels = map[PumpClassification]string{
	PumpClass1: "class 1",
}

func (p PumpClassification) Known() bool { _, ok := pumpClassificationLabels[p]; return ok }

func (p PumpClassification) Label() string { return pumpClassificationLabels[p] }

// PumpType is the side of the pumpstation the levels refer to.
type PumpType int

const (
	PumpSuctionSide  PumpType = 1
	PumpDeliverySide PumpType = 2
)

var pumpTypeLabels = map[PumpType]string{
	PumpSuctionSide:  "type suction side",
	PumpDeliverySide: "type delivery side",
}

func (p PumpType) Known() bool { _, ok := pumpTypeLabels[p]; return ok }

func (p PumpType) Label() string { return pumpTypeLabels[p] }

// BoundaryType is the kind of a boundary condition.
type BoundaryType int

const (
	BoundaryWaterlevel BoundaryType = 1
	BoundaryVelocity   BoundaryType = 2
	BoundaryDischarge  BoundaryType = 3
)

var boundaryTypeLabels = map[BoundaryType]string{
	BoundaryWaterlevel: "waterlevel",
	BoundaryVelocity:   "velocity",
	BoundaryDischarge:  "discharge",
}

func (b BoundaryType) Known() bool { _, ok := boundaryTypeLabels[b]; return ok }

func (b BoundaryType) Label() string { return boundaryTypeLabels[b] }

// IntegrationMethod selects the time integration scheme.
type IntegrationMethod int

const (
	EulerImplicit   IntegrationMethod = 0
	CarlsonImplicit IntegrationMethod = 1
	SileckiExplicit IntegrationMethod = 2
)

var integrationMethodLabels = map[IntegrationMethod]string{
	EulerImplicit:   "euler-implicit",
	CarlsonImplicit: "carlson-implicit",
	SileckiExplicit: "silecki-explicit",
}

func (i IntegrationMethod) Known() bool { _, ok := integrationMethodLabels[i]; return ok }

func (i IntegrationMethod) Label() string { return integrationMethodLabels[i] }

// SurfaceClass is the RIONED surface classification (Dutch terms kept as
// literal data, they are the actual stored values).
type SurfaceClass string

const (
	SurfaceGeslotenVerharding SurfaceClass = "gesloten verharding"
	SurfaceOpenVerharding     SurfaceClass = "open verharding"
	SurfaceOnverhard          SurfaceClass = "onverhard"
	SurfaceHalfVerhard        SurfaceClass = "half verhard"
	SurfacePand               SurfaceClass = "pand"
)

var surfaceClasses = map[SurfaceClass]bool{
	SurfaceGeslotenVerharding: true,
	SurfaceOpenVerharding:     true,
	SurfaceOnverhard:          true,
	SurfaceHalfVerhard:        true,
	SurfacePand:               true,
}

func (s SurfaceClass) Known() bool { return surfaceClasses[s] }

// IsBuilding reports whether the class counts as building surface.
func (s SurfaceClass) IsBuilding() bool { return s == SurfacePand }

// IsRoad reports whether the class counts as road surface.
func (s SurfaceClass) IsRoad() bool {
	switch s {
	case SurfaceGeslotenVerharding, SurfaceOpenVerharding, SurfaceOnverhard, SurfaceHalfVerhard:
		return true
	}
	return false
}

// SurfaceInclination is the RIONED inclination class.
type SurfaceInclination string

const (
	InclinationHellend     SurfaceInclination = "hellend"
	InclinationVlak        SurfaceInclination = "vlak"
	InclinationUitgestrekt SurfaceInclination = "uitgestrekt"
)

var surfaceInclinations = map[SurfaceInclination]bool{
	InclinationHellend:     true,
	InclinationVlak:        true,
	InclinationUitgestrekt: true,
}

func (s SurfaceInclination) Known() bool { return surfaceInclinations[s] }

// QualityCheckResult grades source data reliability.
type QualityCheckResult int

const (
	QualityReliable   QualityCheckResult = 0
	QualityUncertain  QualityCheckResult = 1
	QualityUnreliable QualityCheckResult = 2
)
