// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy

// Pipe is a closed conduit between two connection nodes, usually sewerage.
type Pipe struct {
	ID          int    `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	DisplayName string `gorm:"column:display_name;type:varchar;size:255;" json:"display_name"`
	Code        string `gorm:"column:code;type:varchar;size:100;" json:"code"`

	// ProfileNum carries the special profile number from import data; when
	// set, width, height and shape should be empty.
	ProfileNum *int `gorm:"column:profile_num;type:integer;" json:"profile_num"`

	SewerageType             *SewerageType           `gorm:"column:sewerage_type;type:integer;" json:"sewerage_type"`
	CalculationType          *CalculationType        `gorm:"column:calculation_type;type:integer;" json:"calculation_type"`
	InvertLevelStartPoint    *float64                `gorm:"column:invert_level_start_point;type:real;" json:"invert_level_start_point"`
	InvertLevelEndPoint      *float64                `gorm:"column:invert_level_end_point;type:real;" json:"invert_level_end_point"`
	CrossSectionDefinitionID *int                    `gorm:"column:cross_section_definition_id;" json:"cross_section_definition_id"`
	CrossSectionDefinition   *CrossSectionDefinition `gorm:"foreignKey:CrossSectionDefinitionID;constraint:OnDelete:CASCADE;" json:"-"`
	FrictionValue            *float64                `gorm:"column:friction_value;type:real;" json:"friction_value"`
	FrictionType             *FrictionType           `gorm:"column:friction_type;type:integer;" json:"friction_type"`
	DistCalcPoints           *float64                `gorm:"column:dist_calc_points;type:real;" json:"dist_calc_points"`
	Material                 *Material               `gorm:"column:material;type:integer;" json:"material"`
	OriginalLength           *float64                `gorm:"column:original_length;type:real;" json:"original_length"`
	ZoomCategory             *ZoomCategory           `gorm:"column:zoom_category;type:integer;" json:"zoom_category"`

	ConnectionNodeStartID *int            `gorm:"column:connection_node_start_id;" json:"connection_node_start_id"`
	ConnectionNodeStart   *ConnectionNode `gorm:"foreignKey:ConnectionNodeStartID;constraint:OnDelete:CASCADE;" json:"-"`
	ConnectionNodeEndID   *int            `gorm:"column:connection_node_end_id;" json:"connection_node_end_id"`
	ConnectionNodeEnd     *ConnectionNode `gorm:"foreignKey:ConnectionNodeEndID;constraint:OnDelete:CASCADE;" json:"-"`
}

// TableName sets the select/insert table name for this struct type
func (p *Pipe) TableName() string {
	return "v2_pipe"
}

func (p *Pipe) Validate() error {
	if err := checkChoice("Pipe", "sewerage_type", p.SewerageType); err != nil {
		return err
	}
	if err := checkChoice("Pipe", "calculation_type", p.CalculationType); err != nil {
		return err
	}
	if err := checkChoice("Pipe", "friction_type", p.FrictionType); err != nil {
		return err
	}
	if err := checkChoice("Pipe", "material", p.Material); err != nil {
		return err
	}
	if err := checkChoice("Pipe", "zoom_category", p.ZoomCategory); err != nil {
		return err
	}
	return nil
}
