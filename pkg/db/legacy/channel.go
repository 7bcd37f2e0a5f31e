// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy

import (
	db "github.com/larsclaussen/core-models/pkg/db"
)

// Channel is an open water course between two connection nodes.
type Channel struct {
	ID              int              `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	DisplayName     string           `gorm:"column:display_name;type:varchar;size:255;" json:"display_name"`
	Code            string           `gorm:"column:code;type:varchar;size:100;" json:"code"`
	CalculationType *CalculationType `gorm:"column:calculation_type;type:integer;" json:"calculation_type"`
	DistCalcPoints  *float64         `gorm:"column:dist_calc_points;type:real;" json:"dist_calc_points"`
	ZoomCategory    *ZoomCategory    `gorm:"column:zoom_category;type:integer;" json:"zoom_category"`

	ConnectionNodeStartID *int            `gorm:"column:connection_node_start_id;" json:"connection_node_start_id"`
	ConnectionNodeStart   *ConnectionNode `gorm:"foreignKey:ConnectionNodeStartID;constraint:OnDelete:CASCADE;" json:"-"`
	ConnectionNodeEndID   *int            `gorm:"column:connection_node_end_id;" json:"connection_node_end_id"`
	ConnectionNodeEnd     *ConnectionNode `gorm:"foreignKey:ConnectionNodeEndID;constraint:OnDelete:CASCADE;" json:"-"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (c *Channel) TableName() string {
	return "v2_channel"
}

func (c *Channel) Validate() error {
	if err := checkChoice("Channel", "calculation_type", c.CalculationType); err != nil {
		return err
	}
	if err := checkChoice("Channel", "zoom_category", c.ZoomCategory); err != nil {
		return err
	}
	if err := db.RequireGeometry("Channel", "the_geom", c.TheGeom, "LineString"); err != nil {
		return err
	}
	return nil
}

// CrossSectionLocation fixes a cross section definition to a point along a
// channel, together with the local friction and reference levels.
type CrossSectionLocation struct {
	ID           int                     `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	ChannelID    *int                    `gorm:"column:channel_id;" json:"channel_id"`
	Channel      *Channel                `gorm:"foreignKey:ChannelID;constraint:OnDelete:CASCADE;" json:"-"`
	DefinitionID *int                    `gorm:"column:definition_id;" json:"definition_id"`
	Definition   *CrossSectionDefinition `gorm:"foreignKey:DefinitionID;constraint:OnDelete:CASCADE;" json:"-"`

	ReferenceLevel *float64      `gorm:"column:reference_level;type:real;" json:"reference_level"`
	FrictionType   *FrictionType `gorm:"column:friction_type;type:integer;" json:"friction_type"`
	FrictionValue  *float64      `gorm:"column:friction_value;type:real;" json:"friction_value"`
	BankLevel      *float64      `gorm:"column:bank_level;type:real;" json:"bank_level"`
	Code           string        `gorm:"column:code;type:varchar;size:100;" json:"code"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (c *CrossSectionLocation) TableName() string {
	return "v2_cross_section_location"
}

func (c *CrossSectionLocation) Validate() error {
	if err := checkChoice("CrossSectionLocation", "friction_type", c.FrictionType); err != nil {
		return err
	}
	if err := db.RequireGeometryKind("CrossSectionLocation", "the_geom", c.TheGeom, "Point"); err != nil {
		return err
	}
	return nil
}

// Windshielding reduces wind setup on a channel per compass direction.
type Windshielding struct {
	ID        int      `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	ChannelID *int     `gorm:"column:channel_id;" json:"channel_id"`
	Channel   *Channel `gorm:"foreignKey:ChannelID;constraint:OnDelete:CASCADE;" json:"-"`
	North     *float64 `gorm:"column:north;type:real;" json:"north"`
	Northeast *float64 `gorm:"column:northeast;type:real;" json:"northeast"`
	East      *float64 `gorm:"column:east;type:real;" json:"east"`
	Southeast *float64 `gorm:"column:southeast;type:real;" json:"southeast"`
	South     *float64 `gorm:"column:south;type:real;" json:"south"`
	Southwest *float64 `gorm:"column:southwest;type:real;" json:"southwest"`
	West      *float64 `gorm:"column:west;type:real;" json:"west"`
	Northwest *float64 `gorm:"column:northwest;type:real;" json:"northwest"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (w *Windshielding) TableName() string {
	return "v2_windshielding"
}

func (w *Windshielding) Validate() error {
	return db.RequireGeometryKind("Windshielding", "the_geom", w.TheGeom, "Point")
}
