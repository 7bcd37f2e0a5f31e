// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy

import (
	db "github.com/larsclaussen/core-models/pkg/db"
)

// OneDeeBoundaryCondition is a boundary condition on a single connection
// node. Timeseries rows are "seconds,value" pairs, newline separated.
type OneDeeBoundaryCondition struct {
	ID               int             `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	ConnectionNodeID int             `gorm:"column:connection_node_id;uniqueIndex;" json:"connection_node_id"`
	ConnectionNode   *ConnectionNode `gorm:"foreignKey:ConnectionNodeID;constraint:OnDelete:CASCADE;" json:"-"`
	BoundaryType     *BoundaryType   `gorm:"column:boundary_type;type:integer;" json:"boundary_type"`
	Timeseries       *string         `gorm:"column:timeseries;type:text;" json:"timeseries"`
}

// TableName sets the select/insert table name for this struct type
func (b *OneDeeBoundaryCondition) TableName() string {
	return "v2_1d_boundary_conditions"
}

func (b *OneDeeBoundaryCondition) Validate() error {
	if err := checkChoice("OneDeeBoundaryCondition", "boundary_type", b.BoundaryType); err != nil {
		return err
	}
	return nil
}

// TwoDeeBoundaryCondition is a boundary condition along a 2D grid edge.
type TwoDeeBoundaryCondition struct {
	ID           int     `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	DisplayName  string  `gorm:"column:display_name;type:varchar;size:255;" json:"display_name"`
	Timeseries   *string `gorm:"column:timeseries;type:text;" json:"timeseries"`
	BoundaryType *int    `gorm:"column:boundary_type;type:integer;" json:"boundary_type"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (b *TwoDeeBoundaryCondition) TableName() string {
	return "v2_2d_boundary_conditions"
}

func (b *TwoDeeBoundaryCondition) Validate() error {
	return db.RequireGeometryKind("TwoDeeBoundaryCondition", "the_geom", b.TheGeom, "LineString")
}

// OneDeeLateral adds or extracts discharge at a connection node.
type OneDeeLateral struct {
	ID               int             `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	ConnectionNodeID int             `gorm:"column:connection_node_id;" json:"connection_node_id"`
	ConnectionNode   *ConnectionNode `gorm:"foreignKey:ConnectionNodeID;constraint:OnDelete:CASCADE;" json:"-"`
	Timeseries       *string         `gorm:"column:timeseries;type:text;" json:"timeseries"`
}

// TableName sets the select/insert table name for this struct type
func (l *OneDeeLateral) TableName() string {
	return "v2_1d_lateral"
}

// TwoDeeLateral adds or extracts discharge at a 2D cell.
type TwoDeeLateral struct {
	ID         int     `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	Type       *int    `gorm:"column:type;type:integer;" json:"type"`
	Timeseries *string `gorm:"column:timeseries;type:text;" json:"timeseries"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (l *TwoDeeLateral) TableName() string {
	return "v2_2d_lateral"
}

func (l *TwoDeeLateral) Validate() error {
	return db.RequireGeometryKind("TwoDeeLateral", "the_geom", l.TheGeom, "Point")
}
