// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy

import (
	db "github.com/larsclaussen/core-models/pkg/db"
)

// SurfaceParameters are the parameters a surface can and must have to
// calculate its inflow.
type SurfaceParameters struct {
	ID                    int     `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	OutflowDelay          float64 `gorm:"column:outflow_delay;type:real;" json:"outflow_delay"`
	SurfaceLayerThickness float64 `gorm:"column:surface_layer_thickness;type:real;" json:"surface_layer_thickness"`
	// Infiltration switches infiltration on or off for the surface.
	Infiltration                 bool    `gorm:"column:infiltration;type:boolean;" json:"infiltration"`
	MaxInfiltrationCapacity      float64 `gorm:"column:max_infiltration_capacity;type:real;" json:"max_infiltration_capacity"`
	MinInfiltrationCapacity      float64 `gorm:"column:min_infiltration_capacity;type:real;" json:"min_infiltration_capacity"`
	InfiltrationDecayConstant    float64 `gorm:"column:infiltration_decay_constant;type:real;" json:"infiltration_decay_constant"`
	InfiltrationRecoveryConstant float64 `gorm:"column:infiltration_recovery_constant;type:real;" json:"infiltration_recovery_constant"`
}

// TableName sets the select/insert table name for this struct type
func (s *SurfaceParameters) TableName() string {
	return "v2_surface_parameters"
}

// Surface is a generic inflow surface.
type Surface struct {
	ID              int      `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	DisplayName     string   `gorm:"column:display_name;type:varchar;size:255;" json:"display_name"`
	Code            string   `gorm:"column:code;type:varchar;size:100;" json:"code"`
	ZoomCategory    *int     `gorm:"column:zoom_category;type:integer;" json:"zoom_category"`
	NrOfInhabitants *float64 `gorm:"column:nr_of_inhabitants;type:real;" json:"nr_of_inhabitants"`
	DryWeatherFlow  *float64 `gorm:"column:dry_weather_flow;type:real;" json:"dry_weather_flow"`
	Function        *string  `gorm:"column:function;type:varchar;size:64;" json:"function"`
	Area            *float64 `gorm:"column:area;type:real;" json:"area"`

	SurfaceParametersID *int               `gorm:"column:surface_parameters_id;" json:"surface_parameters_id"`
	SurfaceParameters   *SurfaceParameters `gorm:"foreignKey:SurfaceParametersID;constraint:OnDelete:CASCADE;" json:"-"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (s *Surface) TableName() string {
	return "v2_surface"
}

func (s *Surface) Validate() error {
	return db.RequireGeometryKind("Surface", "the_geom", s.TheGeom, "Polygon")
}

// SurfaceMap couples a surface to a connection node by percentage. The
// surface is addressed by (surface_type, surface_id), either v2_surface or
// v2_impervious_surface.
type SurfaceMap struct {
	ID          int     `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	SurfaceType *string `gorm:"column:surface_type;type:varchar;size:40;" json:"surface_type"`
	SurfaceID   *int    `gorm:"column:surface_id;type:integer;" json:"surface_id"`

	ConnectionNodeID int             `gorm:"column:connection_node_id;" json:"connection_node_id"`
	ConnectionNode   *ConnectionNode `gorm:"foreignKey:ConnectionNodeID;constraint:OnDelete:CASCADE;" json:"-"`

	Percentage *float64 `gorm:"column:percentage;type:real;" json:"percentage"`
}

// TableName sets the select/insert table name for this struct type
func (s *SurfaceMap) TableName() string {
	return "v2_surface_map"
}

// ImperviousSurface is an inflow surface classified by the RIONED surface
// class and inclination.
type ImperviousSurface struct {
	ID          int    `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	DisplayName string `gorm:"column:display_name;type:varchar;size:255;" json:"display_name"`
	Code        string `gorm:"column:code;type:varchar;size:100;" json:"code"`

	SurfaceClass       SurfaceClass       `gorm:"column:surface_class;type:varchar;size:128;" json:"surface_class"`
	SurfaceSubClass    *string            `gorm:"column:surface_sub_class;type:varchar;size:128;" json:"surface_sub_class"`
	SurfaceInclination SurfaceInclination `gorm:"column:surface_inclination;type:varchar;size:64;" json:"surface_inclination"`
	ZoomCategory       *ZoomCategory      `gorm:"column:zoom_category;type:integer;" json:"zoom_category"`
	NrOfInhabitants    *float64           `gorm:"column:nr_of_inhabitants;type:real;" json:"nr_of_inhabitants"`
	DryWeatherFlow     *float64           `gorm:"column:dry_weather_flow;type:real;" json:"dry_weather_flow"`
	Area               *float64           `gorm:"column:area;type:real;" json:"area"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (s *ImperviousSurface) TableName() string {
	return "v2_impervious_surface"
}

func (s *ImperviousSurface) Validate() error {
	if err := requireChoice("ImperviousSurface", "surface_class", s.SurfaceClass); err != nil {
		return err
	}
	if err := requireChoice("ImperviousSurface", "surface_inclination", s.SurfaceInclination); err != nil {
		return err
	}
	if err := checkChoice("ImperviousSurface", "zoom_category", s.ZoomCategory); err != nil {
		return err
	}
	return db.RequireGeometryKind("ImperviousSurface", "the_geom", s.TheGeom, "Polygon")
}

// ImperviousSurfaceMap couples an impervious surface to a connection node by
// percentage.
type ImperviousSurfaceMap struct {
	ID                  int                `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	ImperviousSurfaceID *int               `gorm:"column:impervious_surface_id;" json:"impervious_surface_id"`
	ImperviousSurface   *ImperviousSurface `gorm:"foreignKey:ImperviousSurfaceID;constraint:OnDelete:CASCADE;" json:"-"`

	ConnectionNodeID int             `gorm:"column:connection_node_id;" json:"connection_node_id"`
	ConnectionNode   *ConnectionNode `gorm:"foreignKey:ConnectionNodeID;constraint:OnDelete:CASCADE;" json:"-"`

	Percentage *float64 `gorm:"column:percentage;type:real;" json:"percentage"`
}

// TableName sets the select/insert table name for this struct type
func (s *ImperviousSurfaceMap) TableName() string {
	return "v2_impervious_surface_map"
}
