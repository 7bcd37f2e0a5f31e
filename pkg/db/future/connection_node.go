// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package future

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	db "github.com/larsclaussen/core-models/pkg/db"
)

// ConnectionNode is the replacement for the legacy v2 connection node. The
// node now requires its point geometry at all times.
type ConnectionNode struct {
	ID                int         `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	StorageArea       *float64    `gorm:"column:storage_area;type:real;" json:"storage_area"`
	InitialWaterlevel *float64    `gorm:"column:initial_waterlevel;type:real;" json:"initial_waterlevel"`
	Code              string      `gorm:"column:code;type:varchar;size:100;" json:"code"`
	TheGeom           db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
}

// TableName sets the select/insert table name for this struct type
func (c *ConnectionNode) TableName() string {
	return "connection_nodes"
}

func (c *ConnectionNode) Validate() error {
	return db.RequireGeometry("ConnectionNode", "the_geom", c.TheGeom, "Point")
}

var ErrConnectionNodeNotFound = errors.New("future: connection node not found")

func GetConnectionNode(ctx context.Context, conn *gorm.DB, id int) (ConnectionNode, error) {
	var node ConnectionNode
	tx := conn.WithContext(ctx).First(&node, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return ConnectionNode{}, ErrConnectionNodeNotFound
	}
	if tx.Error != nil {
		return ConnectionNode{}, fmt.Errorf("failed to get connection node %d: %w", id, tx.Error)
	}
	return node, nil
}

func CountConnectionNodes(ctx context.Context, conn *gorm.DB) (int64, error) {
	var count int64
	tx := conn.WithContext(ctx).Model(&ConnectionNode{}).Count(&count)
	if tx.Error != nil {
		return 0, fmt.Errorf("failed to count connection nodes: %w", tx.Error)
	}
	return count, nil
}
