// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy

import (
	"time"

	"gorm.io/datatypes"

	db "github.com/larsclaussen/core-models/pkg/db"
)

// NumericalSettings holds the advanced numerical settings of a model run.
type NumericalSettings struct {
	ID int `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`

	CflStrictnessFactor1D *float64 `gorm:"column:cfl_strictness_factor_1d;type:real;" json:"cfl_strictness_factor_1d"`
	CflStrictnessFactor2D *float64 `gorm:"column:cfl_strictness_factor_2d;type:real;" json:"cfl_strictness_factor_2d"`

	// ConvergenceCg is the convergence property of the conjugate gradient
	// method, defaults to 1.0e-9.
	ConvergenceCg  *float64 `gorm:"column:convergence_cg;type:real;" json:"convergence_cg"`
	ConvergenceEps *float64 `gorm:"column:convergence_eps;type:real;" json:"convergence_eps"`

	// FlowDirectionThreshold determines the threshold for the upwind
	// direction, defaults to 1e-05.
	FlowDirectionThreshold      *float64           `gorm:"column:flow_direction_threshold;type:real;" json:"flow_direction_threshold"`
	FrictShallowWaterCorrection *MinMax            `gorm:"column:frict_shallow_water_correction;type:integer;" json:"frict_shallow_water_correction"`
	GeneralNumericalThreshold   *float64           `gorm:"column:general_numerical_threshold;type:real;" json:"general_numerical_threshold"`
	IntegrationMethod           *IntegrationMethod `gorm:"column:integration_method;type:integer;" json:"integration_method"`

	LimiterGrad1D                   *MinMax `gorm:"column:limiter_grad_1d;type:integer;" json:"limiter_grad_1d"`
	LimiterGrad2D                   *MinMax `gorm:"column:limiter_grad_2d;type:integer;" json:"limiter_grad_2d"`
	LimiterSlopeCrossectionalArea2D *MinMax `gorm:"column:limiter_slope_crossectional_area_2d;type:integer;" json:"limiter_slope_crossectional_area_2d"`
	LimiterSlopeFriction2D          *MinMax `gorm:"column:limiter_slope_friction_2d;type:integer;" json:"limiter_slope_friction_2d"`

	MaxNonlinIterations *int `gorm:"column:max_nonlin_iterations;type:integer;" json:"max_nonlin_iterations"`
	MaxDegree           int  `gorm:"column:max_degree;type:integer;default:0;" json:"max_degree"`

	MinimumFrictionVelocity *float64 `gorm:"column:minimum_friction_velocity;type:real;" json:"minimum_friction_velocity"`
	MinimumSurfaceArea      *float64 `gorm:"column:minimum_surface_area;type:real;" json:"minimum_surface_area"`
	PreconCg                *int     `gorm:"column:precon_cg;type:integer;" json:"precon_cg"`
	PreissmannSlot          *float64 `gorm:"column:preissmann_slot;type:real;" json:"preissmann_slot"`
	PumpImplicitRatio       *float64 `gorm:"column:pump_implicit_ratio;type:real;" json:"pump_implicit_ratio"`

	// ThinWaterLayerDefinition is in meter, defaults to 0.1.
	ThinWaterLayerDefinition *float64 `gorm:"column:thin_water_layer_definition;type:real;" json:"thin_water_layer_definition"`
	UseOfCg                  int      `gorm:"column:use_of_cg;type:integer;default:0;" json:"use_of_cg"`
	UseOfNestedNewton        int      `gorm:"column:use_of_nested_newton;type:integer;default:0;" json:"use_of_nested_newton"`
}

// TableName sets the select/insert table name for this struct type
func (n *NumericalSettings) TableName() string {
	return "v2_numerical_settings"
}

func (n *NumericalSettings) Validate() error {
	if err := checkChoice("NumericalSettings", "frict_shallow_water_correction", n.FrictShallowWaterCorrection); err != nil {
		return err
	}
	if err := checkChoice("NumericalSettings", "integration_method", n.IntegrationMethod); err != nil {
		return err
	}
	if err := checkChoice("NumericalSettings", "limiter_grad_1d", n.LimiterGrad1D); err != nil {
		return err
	}
	if err := checkChoice("NumericalSettings", "limiter_grad_2d", n.LimiterGrad2D); err != nil {
		return err
	}
	if err := checkChoice("NumericalSettings", "limiter_slope_crossectional_area_2d", n.LimiterSlopeCrossectionalArea2D); err != nil {
		return err
	}
	return checkChoice("NumericalSettings", "limiter_slope_friction_2d", n.LimiterSlopeFriction2D)
}

// Interflow configures the interflow layer of a model.
type Interflow struct {
	ID int `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`

	InterflowType             int      `gorm:"column:interflow_type;type:integer;default:0;" json:"interflow_type"`
	Porosity                  *float64 `gorm:"column:porosity;type:real;" json:"porosity"`
	PorosityFile              *string  `gorm:"column:porosity_file;type:varchar;size:255;" json:"porosity_file"`
	PorosityLayerThickness    *float64 `gorm:"column:porosity_layer_thickness;type:real;" json:"porosity_layer_thickness"`
	ImperviousLayerElevation  *float64 `gorm:"column:impervious_layer_elevation;type:real;" json:"impervious_layer_elevation"`
	HydraulicConductivity     *float64 `gorm:"column:hydraulic_conductivity;type:real;" json:"hydraulic_conductivity"`
	HydraulicConductivityFile *string  `gorm:"column:hydraulic_conductivity_file;type:varchar;size:255;" json:"hydraulic_conductivity_file"`
	DisplayName               *string  `gorm:"column:display_name;type:varchar;size:255;" json:"display_name"`
}

// TableName sets the select/insert table name for this struct type
func (i *Interflow) TableName() string {
	return "v2_interflow"
}

// SimpleInfiltration configures the simple infiltration of a model.
type SimpleInfiltration struct {
	ID int `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`

	InfiltrationRate          float64 `gorm:"column:infiltration_rate;type:real;" json:"infiltration_rate"`
	InfiltrationRateFile      *string `gorm:"column:infiltration_rate_file;type:varchar;size:255;" json:"infiltration_rate_file"`
	InfiltrationSurfaceOption *int    `gorm:"column:infiltration_surface_option;type:integer;" json:"infiltration_surface_option"`

	// MaxInfiltrationCapacityFile is a relative path.
	MaxInfiltrationCapacityFile *string `gorm:"column:max_infiltration_capacity_file;type:text;" json:"max_infiltration_capacity_file"`
	DisplayName                 *string `gorm:"column:display_name;type:varchar;size:255;" json:"display_name"`
}

// TableName sets the select/insert table name for this struct type
func (s *SimpleInfiltration) TableName() string {
	return "v2_simple_infiltration"
}

// Groundwater configures the groundwater layer of a model. Scalar fields
// come in value/file/type triples where the file variant points at a raster.
type Groundwater struct {
	ID int `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`

	GroundwaterImperviousLayerLevel     *float64 `gorm:"column:groundwater_impervious_layer_level;type:real;" json:"groundwater_impervious_layer_level"`
	GroundwaterImperviousLayerLevelFile *string  `gorm:"column:groundwater_impervious_layer_level_file;type:varchar;size:255;" json:"groundwater_impervious_layer_level_file"`
	GroundwaterImperviousLayerLevelType *int     `gorm:"column:groundwater_impervious_layer_level_type;type:integer;" json:"groundwater_impervious_layer_level_type"`

	PhreaticStorageCapacity     *float64 `gorm:"column:phreatic_storage_capacity;type:real;" json:"phreatic_storage_capacity"`
	PhreaticStorageCapacityFile *string  `gorm:"column:phreatic_storage_capacity_file;type:varchar;size:255;" json:"phreatic_storage_capacity_file"`
	PhreaticStorageCapacityType *int     `gorm:"column:phreatic_storage_capacity_type;type:integer;" json:"phreatic_storage_capacity_type"`

	EquilibriumInfiltrationRate     *float64 `gorm:"column:equilibrium_infiltration_rate;type:real;" json:"equilibrium_infiltration_rate"`
	EquilibriumInfiltrationRateFile *string  `gorm:"column:equilibrium_infiltration_rate_file;type:varchar;size:255;" json:"equilibrium_infiltration_rate_file"`
	EquilibriumInfiltrationRateType *int     `gorm:"column:equilibrium_infiltration_rate_type;type:integer;" json:"equilibrium_infiltration_rate_type"`

	InitialInfiltrationRate     *float64 `gorm:"column:initial_infiltration_rate;type:real;" json:"initial_infiltration_rate"`
	InitialInfiltrationRateFile *string  `gorm:"column:initial_infiltration_rate_file;type:varchar;size:255;" json:"initial_infiltration_rate_file"`
	InitialInfiltrationRateType *int     `gorm:"column:initial_infiltration_rate_type;type:integer;" json:"initial_infiltration_rate_type"`

	InfiltrationDecayPeriod     *float64 `gorm:"column:infiltration_decay_period;type:real;" json:"infiltration_decay_period"`
	InfiltrationDecayPeriodFile *string  `gorm:"column:infiltration_decay_period_file;type:varchar;size:255;" json:"infiltration_decay_period_file"`
	InfiltrationDecayPeriodType *int     `gorm:"column:infiltration_decay_period_type;type:integer;" json:"infiltration_decay_period_type"`

	GroundwaterHydroConnectivity     *float64 `gorm:"column:groundwater_hydro_connectivity;type:real;" json:"groundwater_hydro_connectivity"`
	GroundwaterHydroConnectivityFile *string  `gorm:"column:groundwater_hydro_connectivity_file;type:varchar;size:255;" json:"groundwater_hydro_connectivity_file"`
	GroundwaterHydroConnectivityType *int     `gorm:"column:groundwater_hydro_connectivity_type;type:integer;" json:"groundwater_hydro_connectivity_type"`

	DisplayName *string  `gorm:"column:display_name;type:varchar;size:255;" json:"display_name"`
	Leakage     *float64 `gorm:"column:leakage;type:real;" json:"leakage"`
	LeakageFile *string  `gorm:"column:leakage_file;type:varchar;size:255;" json:"leakage_file"`
}

// TableName sets the select/insert table name for this struct type
func (g *Groundwater) TableName() string {
	return "v2_groundwater"
}

// GlobalSettings is the main settings row of a model. Use2DRain is used as
// a boolean but stored as an integer for backwards compatibility.
type GlobalSettings struct {
	ID int `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`

	Use2DFlow bool `gorm:"column:use_2d_flow;type:boolean;" json:"use_2d_flow"`
	Use1DFlow bool `gorm:"column:use_1d_flow;type:boolean;" json:"use_1d_flow"`
	Use2DRain int  `gorm:"column:use_2d_rain;type:integer;default:1;" json:"use_2d_rain"`

	ManholeStorageArea *float64       `gorm:"column:manhole_storage_area;type:real;" json:"manhole_storage_area"`
	Name               *string        `gorm:"column:name;type:varchar;size:128;uniqueIndex;" json:"name"`
	SimTimeStep        float64        `gorm:"column:sim_time_step;type:real;" json:"sim_time_step"`
	MinimumSimTimeStep *float64       `gorm:"column:minimum_sim_time_step;type:real;" json:"minimum_sim_time_step"`
	MaximumSimTimeStep *float64       `gorm:"column:maximum_sim_time_step;type:real;" json:"maximum_sim_time_step"`
	NrTimesteps        int            `gorm:"column:nr_timesteps;type:integer;" json:"nr_timesteps"`
	StartTime          *time.Time     `gorm:"column:start_time;" json:"start_time"`
	StartDate          datatypes.Date `gorm:"column:start_date;" json:"start_date"`
	GridSpace          float64        `gorm:"column:grid_space;type:real;" json:"grid_space"`
	DistCalcPoints     float64        `gorm:"column:dist_calc_points;type:real;" json:"dist_calc_points"`
	Kmax               int            `gorm:"column:kmax;type:integer;" json:"kmax"`
	GuessDams          *int           `gorm:"column:guess_dams;type:integer;" json:"guess_dams"`

	TableStepSize float64 `gorm:"column:table_step_size;type:real;" json:"table_step_size"`
	Advection1D   int     `gorm:"column:advection_1d;type:integer;" json:"advection_1d"`
	Advection2D   int     `gorm:"column:advection_2d;type:integer;" json:"advection_2d"`

	DemFile *string `gorm:"column:dem_file;type:varchar;size:255;" json:"dem_file"`

	// EpsgCode is required if there is no DEM.
	EpsgCode *int `gorm:"column:epsg_code;type:integer;" json:"epsg_code"`

	FrictType     *FrictionType `gorm:"column:frict_type;type:integer;" json:"frict_type"`
	FrictCoef     float64       `gorm:"column:frict_coef;type:real;" json:"frict_coef"`
	FrictCoefFile *string       `gorm:"column:frict_coef_file;type:varchar;size:255;" json:"frict_coef_file"`
	FrictAvg      MinMax        `gorm:"column:frict_avg;type:integer;default:0;" json:"frict_avg"`

	WaterLevelIniType           *int     `gorm:"column:water_level_ini_type;type:integer;" json:"water_level_ini_type"`
	InitialWaterlevel           float64  `gorm:"column:initial_waterlevel;type:real;" json:"initial_waterlevel"`
	InitialWaterlevelFile       *string  `gorm:"column:initial_waterlevel_file;type:varchar;size:255;" json:"initial_waterlevel_file"`
	InitialGroundwaterLevel     *float64 `gorm:"column:initial_groundwater_level;type:real;" json:"initial_groundwater_level"`
	InitialGroundwaterLevelFile *string  `gorm:"column:initial_groundwater_level_file;type:varchar;size:255;" json:"initial_groundwater_level_file"`
	InitialGroundwaterLevelType *int     `gorm:"column:initial_groundwater_level_type;type:integer;" json:"initial_groundwater_level_type"`

	InterceptionGlobal *float64 `gorm:"column:interception_global;type:real;" json:"interception_global"`
	InterceptionFile   *string  `gorm:"column:interception_file;type:varchar;size:255;" json:"interception_file"`

	DemObstacleDetection     bool        `gorm:"column:dem_obstacle_detection;type:boolean;default:false;" json:"dem_obstacle_detection"`
	DemObstacleHeight        *float64    `gorm:"column:dem_obstacle_height;type:real;" json:"dem_obstacle_height"`
	EmbeddedCutoffThreshold  *float64    `gorm:"column:embedded_cutoff_threshold;type:real;" json:"embedded_cutoff_threshold"`
	Use0DInflow              Use0DInflow `gorm:"column:use_0d_inflow;type:integer;default:0;" json:"use_0d_inflow"`

	ControlGroupID *int          `gorm:"column:control_group_id;" json:"control_group_id"`
	ControlGroup   *ControlGroup `gorm:"foreignKey:ControlGroupID;constraint:OnDelete:CASCADE;" json:"-"`

	FloodingThreshold float64 `gorm:"column:flooding_threshold;type:real;" json:"flooding_threshold"`
	TimestepPlus      bool    `gorm:"column:timestep_plus;type:boolean;default:false;" json:"timestep_plus"`

	// MaxAngle1DAdvection is in degrees, 90 or less.
	MaxAngle1DAdvection *float64 `gorm:"column:max_angle_1d_advection;type:real;" json:"max_angle_1d_advection"`

	OutputTimeStep *float64 `gorm:"column:output_time_step;type:real;" json:"output_time_step"`

	WindShieldingFile     *string  `gorm:"column:wind_shielding_file;type:varchar;size:255;" json:"wind_shielding_file"`
	TableStepSize1D       *float64 `gorm:"column:table_step_size_1d;type:real;" json:"table_step_size_1d"`
	TableStepSizeVolume2D *float64 `gorm:"column:table_step_size_volume_2d;type:real;" json:"table_step_size_volume_2d"`

	NumericalSettingsID int                `gorm:"column:numerical_settings_id;" json:"numerical_settings_id"`
	NumericalSettings   *NumericalSettings `gorm:"foreignKey:NumericalSettingsID;constraint:OnDelete:CASCADE;" json:"-"`

	GroundwaterSettingsID *int         `gorm:"column:groundwater_settings_id;" json:"groundwater_settings_id"`
	GroundwaterSettings   *Groundwater `gorm:"foreignKey:GroundwaterSettingsID;constraint:OnDelete:CASCADE;" json:"-"`

	SimpleInfiltrationSettingsID *int                `gorm:"column:simple_infiltration_settings_id;" json:"simple_infiltration_settings_id"`
	SimpleInfiltrationSettings   *SimpleInfiltration `gorm:"foreignKey:SimpleInfiltrationSettingsID;constraint:OnDelete:CASCADE;" json:"-"`

	InterflowSettingsID *int       `gorm:"column:interflow_settings_id;" json:"interflow_settings_id"`
	InterflowSettings   *Interflow `gorm:"foreignKey:InterflowSettingsID;constraint:OnDelete:CASCADE;" json:"-"`
}

// TableName sets the select/insert table name for this struct type
func (g *GlobalSettings) TableName() string {
	return "v2_global_settings"
}

func (g *GlobalSettings) Validate() error {
	if err := checkChoice("GlobalSettings", "frict_type", g.FrictType); err != nil {
		return err
	}
	if err := requireChoice("GlobalSettings", "frict_avg", g.FrictAvg); err != nil {
		return err
	}
	if err := requireChoice("GlobalSettings", "use_0d_inflow", g.Use0DInflow); err != nil {
		return err
	}
	if g.MaxAngle1DAdvection != nil && *g.MaxAngle1DAdvection > 90 {
		return db.NewValidationError("GlobalSettings", "max_angle_1d_advection", "value %v exceeds 90 degrees", *g.MaxAngle1DAdvection)
	}
	return nil
}

// Aggregation methods accepted by AggregationSettings.
var aggregationMethods = map[string]bool{
	"avg":               true,
	"min":               true,
	"max":               true,
	"cum":               true,
	"med":               true,
	"cum_negative":      true,
	"cum_positive":      true,
	"duration_positive": true,
	"duration_negative": true,
}

// AggregationSettings configures aggregated output variables. A row without
// global settings applies to all models.
type AggregationSettings struct {
	ID int `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`

	GlobalSettingsID *int            `gorm:"column:global_settings_id;" json:"global_settings_id"`
	GlobalSettings   *GlobalSettings `gorm:"foreignKey:GlobalSettingsID;constraint:OnDelete:CASCADE;" json:"-"`

	// VarName is the output var name, or the input var name if no flow
	// variable is set.
	VarName      string  `gorm:"column:var_name;type:varchar;size:100;" json:"var_name"`
	FlowVariable *string `gorm:"column:flow_variable;type:varchar;size:100;" json:"flow_variable"`

	AggregationMethod  string `gorm:"column:aggregation_method;type:varchar;size:100;" json:"aggregation_method"`
	AggregationInSpace bool   `gorm:"column:aggregation_in_space;type:boolean;default:false;" json:"aggregation_in_space"`

	// Timestep is the output timestep in seconds.
	Timestep int `gorm:"column:timestep;type:integer;default:300;" json:"timestep"`
}

// TableName sets the select/insert table name for this struct type
func (a *AggregationSettings) TableName() string {
	return "v2_aggregation_settings"
}

func (a *AggregationSettings) Validate() error {
	if a.AggregationMethod != "" && !aggregationMethods[a.AggregationMethod] {
		return db.NewValidationError("AggregationSettings", "aggregation_method", "unknown aggregation method %q", a.AggregationMethod)
	}
	return nil
}
