// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy

// Weir is an overflow structure (NL: stuw) between two connection nodes.
type Weir struct {
	ID          int    `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	DisplayName string `gorm:"column:display_name;type:varchar;size:255;" json:"display_name"`
	Code        string `gorm:"column:code;type:varchar;size:100;" json:"code"`

	CrestLevel               *float64                `gorm:"column:crest_level;type:real;" json:"crest_level"`
	CrestType                *int                    `gorm:"column:crest_type;type:integer;" json:"crest_type"`
	CrossSectionDefinitionID *int                    `gorm:"column:cross_section_definition_id;" json:"cross_section_definition_id"`
	CrossSectionDefinition   *CrossSectionDefinition `gorm:"foreignKey:CrossSectionDefinitionID;constraint:OnDelete:CASCADE;" json:"-"`
	Sewerage                 bool                    `gorm:"column:sewerage;type:boolean;default:false;" json:"sewerage"`

	DischargeCoefficientPositive *float64      `gorm:"column:discharge_coefficient_positive;type:real;" json:"discharge_coefficient_positive"`
	DischargeCoefficientNegative *float64      `gorm:"column:discharge_coefficient_negative;type:real;" json:"discharge_coefficient_negative"`
	External                     *bool         `gorm:"column:external;type:boolean;" json:"external"`
	ZoomCategory                 *int          `gorm:"column:zoom_category;type:integer;" json:"zoom_category"`
	FrictionValue                *float64      `gorm:"column:friction_value;type:real;" json:"friction_value"`
	FrictionType                 *FrictionType `gorm:"column:friction_type;type:integer;" json:"friction_type"`

	ConnectionNodeStartID *int            `gorm:"column:connection_node_start_id;" json:"connection_node_start_id"`
	ConnectionNodeStart   *ConnectionNode `gorm:"foreignKey:ConnectionNodeStartID;constraint:OnDelete:CASCADE;" json:"-"`
	ConnectionNodeEndID   *int            `gorm:"column:connection_node_end_id;" json:"connection_node_end_id"`
	ConnectionNodeEnd     *ConnectionNode `gorm:"foreignKey:ConnectionNodeEndID;constraint:OnDelete:CASCADE;" json:"-"`
}

// TableName sets the select/insert table name for this struct type
func (w *Weir) TableName() string {
	return "v2_weir"
}

func (w *Weir) Validate() error {
	if err := checkChoice("Weir", "friction_type", w.FrictionType); err != nil {
		return err
	}
	return nil
}

// Orifice is a submerged opening between two connection nodes.
type Orifice struct {
	ID          int    `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	DisplayName string `gorm:"column:display_name;type:varchar;size:255;" json:"display_name"`
	Code        string `gorm:"column:code;type:varchar;size:100;" json:"code"`

	CrestLevel               *float64                `gorm:"column:crest_level;type:real;" json:"crest_level"`
	Sewerage                 bool                    `gorm:"column:sewerage;type:boolean;default:false;" json:"sewerage"`
	CrossSectionDefinitionID *int                    `gorm:"column:cross_section_definition_id;" json:"cross_section_definition_id"`
	CrossSectionDefinition   *CrossSectionDefinition `gorm:"foreignKey:CrossSectionDefinitionID;constraint:OnDelete:CASCADE;" json:"-"`
	FrictionValue            *float64                `gorm:"column:friction_value;type:real;" json:"friction_value"`
	FrictionType             *FrictionType           `gorm:"column:friction_type;type:integer;" json:"friction_type"`

	DischargeCoefficientPositive *float64 `gorm:"column:discharge_coefficient_positive;type:real;" json:"discharge_coefficient_positive"`
	DischargeCoefficientNegative *float64 `gorm:"column:discharge_coefficient_negative;type:real;" json:"discharge_coefficient_negative"`
	ZoomCategory                 *int     `gorm:"column:zoom_category;type:integer;" json:"zoom_category"`
	CrestType                    *int     `gorm:"column:crest_type;type:integer;default:4;" json:"crest_type"`

	ConnectionNodeStartID *int            `gorm:"column:connection_node_start_id;" json:"connection_node_start_id"`
	ConnectionNodeStart   *ConnectionNode `gorm:"foreignKey:ConnectionNodeStartID;constraint:OnDelete:CASCADE;" json:"-"`
	ConnectionNodeEndID   *int            `gorm:"column:connection_node_end_id;" json:"connection_node_end_id"`
	ConnectionNodeEnd     *ConnectionNode `gorm:"foreignKey:ConnectionNodeEndID;constraint:OnDelete:CASCADE;" json:"-"`
}

// TableName sets the select/insert table name for this struct type
func (o *Orifice) TableName() string {
	return "v2_orifice"
}

func (o *Orifice) Validate() error {
	if err := checkChoice("Orifice", "friction_type", o.FrictionType); err != nil {
		return err
	}
	return nil
}
