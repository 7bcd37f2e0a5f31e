// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package future

import (
	db "github.com/larsclaussen/core-models/pkg/db"
)

// Channel is the replacement for the legacy v2 channel, reduced to the
// columns the new engine reads.
type Channel struct {
	ID          int    `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	Code        string `gorm:"column:code;type:varchar;size:100;" json:"code"`
	DisplayName string `gorm:"column:display_name;type:varchar;size:255;" json:"display_name"`

	ConnectionNodeStartID *int            `gorm:"column:connection_node_start_id;" json:"connection_node_start_id"`
	ConnectionNodeStart   *ConnectionNode `gorm:"foreignKey:ConnectionNodeStartID;constraint:OnDelete:CASCADE;" json:"-"`
	ConnectionNodeEndID   *int            `gorm:"column:connection_node_end_id;" json:"connection_node_end_id"`
	ConnectionNodeEnd     *ConnectionNode `gorm:"foreignKey:ConnectionNodeEndID;constraint:OnDelete:CASCADE;" json:"-"`

	TheGeom db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (c *Channel) TableName() string {
	return "channels"
}

func (c *Channel) Validate() error {
	return db.RequireGeometry("Channel", "the_geom", c.TheGeom, "LineString")
}
