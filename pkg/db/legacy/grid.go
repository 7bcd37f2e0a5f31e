// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy

import (
	db "github.com/larsclaussen/core-models/pkg/db"
)

// GridRefinement refines the computational grid along a line.
type GridRefinement struct {
	ID              int    `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	DisplayName     string `gorm:"column:display_name;type:varchar;size:255;" json:"display_name"`
	RefinementLevel *int   `gorm:"column:refinement_level;type:integer;" json:"refinement_level"`
	Code            string `gorm:"column:code;type:varchar;size:100;" json:"code"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (g *GridRefinement) TableName() string {
	return "v2_grid_refinement"
}

func (g *GridRefinement) Validate() error {
	return db.RequireGeometryKind("GridRefinement", "the_geom", g.TheGeom, "LineString")
}

// GridRefinementArea refines the computational grid within a polygon.
type GridRefinementArea struct {
	ID              int    `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	DisplayName     string `gorm:"column:display_name;type:varchar;size:255;" json:"display_name"`
	RefinementLevel *int   `gorm:"column:refinement_level;type:integer;" json:"refinement_level"`
	Code            string `gorm:"column:code;type:varchar;size:100;" json:"code"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (g *GridRefinementArea) TableName() string {
	return "v2_grid_refinement_area"
}

func (g *GridRefinementArea) Validate() error {
	return db.RequireGeometryKind("GridRefinementArea", "the_geom", g.TheGeom, "Polygon")
}

// DemAverageArea marks a polygon within which the DEM is averaged.
type DemAverageArea struct {
	ID      int         `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (d *DemAverageArea) TableName() string {
	return "v2_dem_average_area"
}

func (d *DemAverageArea) Validate() error {
	return db.RequireGeometryKind("DemAverageArea", "the_geom", d.TheGeom, "Polygon")
}

// Obstacle is a linear flow obstruction with a crest level in mMSL.
type Obstacle struct {
	ID         int      `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	CrestLevel *float64 `gorm:"column:crest_level;type:real;" json:"crest_level"`
	Code       string   `gorm:"column:code;type:varchar;size:100;" json:"code"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (o *Obstacle) TableName() string {
	return "v2_obstacle"
}

func (o *Obstacle) Validate() error {
	return db.RequireGeometryKind("Obstacle", "the_geom", o.TheGeom, "LineString")
}

// Levee is a dike line; max_breach_depth in meter, crest_level in mMSL.
type Levee struct {
	ID             int            `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	Material       *LeveeMaterial `gorm:"column:material;type:integer;" json:"material"`
	MaxBreachDepth *float64       `gorm:"column:max_breach_depth;type:real;" json:"max_breach_depth"`
	CrestLevel     *float64       `gorm:"column:crest_level;type:real;" json:"crest_level"`
	Code           string         `gorm:"column:code;type:varchar;size:100;" json:"code"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (l *Levee) TableName() string {
	return "v2_levee"
}

func (l *Levee) Validate() error {
	if err := checkChoice("Levee", "material", l.Material); err != nil {
		return err
	}
	return db.RequireGeometryKind("Levee", "the_geom", l.TheGeom, "LineString")
}

// FloodFill seeds an initial water level at a point.
type FloodFill struct {
	ID         int      `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	Waterlevel *float64 `gorm:"column:waterlevel;type:real;" json:"waterlevel"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (f *FloodFill) TableName() string {
	return "v2_floodfill"
}

func (f *FloodFill) Validate() error {
	return db.RequireGeometryKind("FloodFill", "the_geom", f.TheGeom, "Point")
}

// CalculationPoint is a computed calculation point on a 1D object.
type CalculationPoint struct {
	ID            int    `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	ContentTypeID int    `gorm:"column:content_type_id;type:integer;" json:"content_type_id"`
	UserRef       string `gorm:"column:user_ref;type:varchar;size:80;" json:"user_ref"`
	CalcType      int    `gorm:"column:calc_type;type:integer;" json:"calc_type"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (c *CalculationPoint) TableName() string {
	return "v2_calculation_point"
}

func (c *CalculationPoint) Validate() error {
	if c.UserRef == "" {
		return db.NewValidationError("CalculationPoint", "user_ref", "required field is empty")
	}
	return db.RequireGeometry("CalculationPoint", "the_geom", c.TheGeom, "Point")
}

// ConnectedPoint connects a 1D calculation point with a 2D cell, optionally
// crossing a levee.
type ConnectedPoint struct {
	ID            int      `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	ExchangeLevel *float64 `gorm:"column:exchange_level;type:real;" json:"exchange_level"`

	CalculationPntID int               `gorm:"column:calculation_pnt_id;" json:"calculation_pnt_id"`
	CalculationPnt   *CalculationPoint `gorm:"foreignKey:CalculationPntID;constraint:OnDelete:CASCADE;" json:"-"`
	LeveeID          *int              `gorm:"column:levee_id;" json:"levee_id"`
	Levee            *Levee            `gorm:"foreignKey:LeveeID;constraint:OnDelete:CASCADE;" json:"-"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (c *ConnectedPoint) TableName() string {
	return "v2_connected_pnt"
}

func (c *ConnectedPoint) Validate() error {
	return db.RequireGeometry("ConnectedPoint", "the_geom", c.TheGeom, "Point")
}
