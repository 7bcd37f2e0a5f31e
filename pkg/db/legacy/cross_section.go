// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy

// CrossSectionDefinition is the shape/geometry profile of a conduit used to
// compute flow area. Width and height are free-form strings: tabulated shapes
// store space separated value lists.
type CrossSectionDefinition struct {
	ID     int        `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	Shape  *ShapeType `gorm:"column:shape;type:integer;" json:"shape"`
	Width  *string    `gorm:"column:width;type:varchar;size:255;" json:"width"`
	Height *string    `gorm:"column:height;type:varchar;size:255;" json:"height"`
	Code   string     `gorm:"column:code;type:varchar;size:100;" json:"code"`
}

// TableName sets the select/insert table name for this struct type
func (c *CrossSectionDefinition) TableName() string {
	return "v2_cross_section_definition"
}

func (c *CrossSectionDefinition) Validate() error {
	if err := checkChoice("CrossSectionDefinition", "shape", c.Shape); err != nil {
		return err
	}
	return nil
}
