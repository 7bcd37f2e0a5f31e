// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy

// Manhole adds storage and street-level data to a connection node. Every
// manhole references exactly one connection node.
type Manhole struct {
	ID          int    `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	DisplayName string `gorm:"column:display_name;type:varchar;size:255;" json:"display_name"`
	Code        string `gorm:"column:code;type:varchar;size:100;" json:"code"`

	ConnectionNodeID int             `gorm:"column:connection_node_id;uniqueIndex;" json:"connection_node_id"`
	ConnectionNode   *ConnectionNode `gorm:"foreignKey:ConnectionNodeID;constraint:OnDelete:CASCADE;" json:"-"`

	// Input fields copied verbatim from the import database.
	Shape  *string  `gorm:"column:shape;type:varchar;size:4;" json:"shape"`
	Width  *float64 `gorm:"column:width;type:real;" json:"width"`
	Length *float64 `gorm:"column:length;type:real;" json:"length"`

	ManholeIndicator *ManholeIndicator `gorm:"column:manhole_indicator;type:integer;" json:"manhole_indicator"`
	CalculationType  *CalculationType  `gorm:"column:calculation_type;type:integer;" json:"calculation_type"`
	BottomLevel      *float64          `gorm:"column:bottom_level;type:real;" json:"bottom_level"`
	SurfaceLevel     *float64          `gorm:"column:surface_level;type:real;" json:"surface_level"`
	DrainLevel       *float64          `gorm:"column:drain_level;type:real;" json:"drain_level"`
	SedimentLevel    *float64          `gorm:"column:sediment_level;type:real;" json:"sediment_level"`
	ZoomCategory     *ZoomCategory     `gorm:"column:zoom_category;type:integer;" json:"zoom_category"`
}

// TableName sets the select/insert table name for this struct type
func (m *Manhole) TableName() string {
	return "v2_manhole"
}

func (m *Manhole) Validate() error {
	if err := checkChoice("Manhole", "manhole_indicator", m.ManholeIndicator); err != nil {
		return err
	}
	if err := checkChoice("Manhole", "calculation_type", m.CalculationType); err != nil {
		return err
	}
	if err := checkChoice("Manhole", "zoom_category", m.ZoomCategory); err != nil {
		return err
	}
	return nil
}
