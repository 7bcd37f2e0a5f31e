// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy

import (
	db "github.com/larsclaussen/core-models/pkg/db"
)

// Culvert is a covered conduit (NL: duiker) between two connection nodes,
// carrying its own line geometry.
type Culvert struct {
	ID          int    `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	DisplayName string `gorm:"column:display_name;type:varchar;size:255;" json:"display_name"`
	Code        string `gorm:"column:code;type:varchar;size:100;" json:"code"`

	CalculationType          *CalculationType        `gorm:"column:calculation_type;type:integer;" json:"calculation_type"`
	FrictionValue            *float64                `gorm:"column:friction_value;type:real;" json:"friction_value"`
	FrictionType             *FrictionType           `gorm:"column:friction_type;type:integer;" json:"friction_type"`
	DistCalcPoints           *float64                `gorm:"column:dist_calc_points;type:real;" json:"dist_calc_points"`
	ZoomCategory             *ZoomCategory           `gorm:"column:zoom_category;type:integer;" json:"zoom_category"`
	CrossSectionDefinitionID *int                    `gorm:"column:cross_section_definition_id;" json:"cross_section_definition_id"`
	CrossSectionDefinition   *CrossSectionDefinition `gorm:"foreignKey:CrossSectionDefinitionID;constraint:OnDelete:CASCADE;" json:"-"`

	DischargeCoefficientPositive float64  `gorm:"column:discharge_coefficient_positive;type:real;default:1;" json:"discharge_coefficient_positive"`
	DischargeCoefficientNegative float64  `gorm:"column:discharge_coefficient_negative;type:real;default:1;" json:"discharge_coefficient_negative"`
	InvertLevelStartPoint        *float64 `gorm:"column:invert_level_start_point;type:real;" json:"invert_level_start_point"`
	InvertLevelEndPoint          *float64 `gorm:"column:invert_level_end_point;type:real;" json:"invert_level_end_point"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`

	ConnectionNodeStartID *int            `gorm:"column:connection_node_start_id;" json:"connection_node_start_id"`
	ConnectionNodeStart   *ConnectionNode `gorm:"foreignKey:ConnectionNodeStartID;constraint:OnDelete:CASCADE;" json:"-"`
	ConnectionNodeEndID   *int            `gorm:"column:connection_node_end_id;" json:"connection_node_end_id"`
	ConnectionNodeEnd     *ConnectionNode `gorm:"foreignKey:ConnectionNodeEndID;constraint:OnDelete:CASCADE;" json:"-"`
}

// TableName sets the select/insert table name for this struct type
func (c *Culvert) TableName() string {
	return "v2_culvert"
}

func (c *Culvert) Validate() error {
	if err := checkChoice("Culvert", "calculation_type", c.CalculationType); err != nil {
		return err
	}
	if err := checkChoice("Culvert", "friction_type", c.FrictionType); err != nil {
		return err
	}
	if err := checkChoice("Culvert", "zoom_category", c.ZoomCategory); err != nil {
		return err
	}
	if err := db.RequireGeometry("Culvert", "the_geom", c.TheGeom, "LineString"); err != nil {
		return err
	}
	return nil
}
