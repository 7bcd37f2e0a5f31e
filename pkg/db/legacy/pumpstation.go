// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy

import (
	db "github.com/larsclaussen/core-models/pkg/db"
)

// Pumpstation ((riool)gemaal in Dutch) moves water between two connection
// nodes based on start/stop levels.
type Pumpstation struct {
	ID          int    `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	DisplayName string `gorm:"column:display_name;type:varchar;size:255;" json:"display_name"`
	Code        string `gorm:"column:code;type:varchar;size:100;" json:"code"`

	Classification *PumpClassification `gorm:"column:classification;type:integer;" json:"classification"`
	Type           *PumpType           `gorm:"column:type;type:integer;default:1;" json:"type"`
	Sewerage       bool                `gorm:"column:sewerage;type:boolean;default:false;" json:"sewerage"`
	StartLevel     *float64            `gorm:"column:start_level;type:real;" json:"start_level"`
	LowerStopLevel *float64            `gorm:"column:lower_stop_level;type:real;" json:"lower_stop_level"`
	UpperStopLevel *float64            `gorm:"column:upper_stop_level;type:real;" json:"upper_stop_level"`
	Capacity       *float64            `gorm:"column:capacity;type:real;" json:"capacity"`
	ZoomCategory   *int                `gorm:"column:zoom_category;type:integer;" json:"zoom_category"`

	ConnectionNodeStartID *int            `gorm:"column:connection_node_start_id;" json:"connection_node_start_id"`
	ConnectionNodeStart   *ConnectionNode `gorm:"foreignKey:ConnectionNodeStartID;constraint:OnDelete:CASCADE;" json:"-"`
	ConnectionNodeEndID   *int            `gorm:"column:connection_node_end_id;" json:"connection_node_end_id"`
	ConnectionNodeEnd     *ConnectionNode `gorm:"foreignKey:ConnectionNodeEndID;constraint:OnDelete:CASCADE;" json:"-"`
}

// TableName sets the select/insert table name for this struct type
func (p *Pumpstation) TableName() string {
	return "v2_pumpstation"
}

func (p *Pumpstation) Validate() error {
	if err := checkChoice("Pumpstation", "classification", p.Classification); err != nil {
		return err
	}
	if err := checkChoice("Pumpstation", "type", p.Type); err != nil {
		return err
	}
	return nil
}

// PumpedDrainageArea (bemalingsgebied in Dutch) is a helper polygon for pipe
// mappings in urban models.
type PumpedDrainageArea struct {
	ID   int    `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	Name string `gorm:"column:name;type:varchar;size:64;" json:"name"`
	Code string `gorm:"column:code;type:varchar;size:100;" json:"code"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (p *PumpedDrainageArea) TableName() string {
	return "v2_pumped_drainage_area"
}

func (p *PumpedDrainageArea) Validate() error {
	return db.RequireGeometry("PumpedDrainageArea", "the_geom", p.TheGeom, "Polygon")
}
