// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	db "github.com/larsclaussen/core-models/pkg/db"
)

var ErrConnectionNodeNotFound = errors.New("ConnectionNode not found")

// ConnectionNode is a point in the 1D hydraulic network where structures
// (pipes, channels, pumps) meet.
type ConnectionNode struct {
	ID                int         `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	StorageArea       *float64    `gorm:"column:storage_area;type:real;" json:"storage_area"`
	InitialWaterlevel *float64    `gorm:"column:initial_waterlevel;type:real;" json:"initial_waterlevel"`
	Code              string      `gorm:"column:code;type:varchar;size:100;" json:"code"`
	TheGeom           db.Geometry `gorm:"column:the_geom;" json:"the_geom"`
	TheGeomLinestring db.Geometry `gorm:"column:the_geom_linestring;" json:"the_geom_linestring"`
}

// TableName sets the select/insert table name for this struct type
func (c *ConnectionNode) TableName() string {
	return "v2_connection_nodes"
}

func (c *ConnectionNode) Validate() error {
	if err := db.RequireGeometry("ConnectionNode", "the_geom", c.TheGeom, "Point"); err != nil {
		return err
	}
	if err := db.RequireGeometryKind("ConnectionNode", "the_geom_linestring", c.TheGeomLinestring, "LineString"); err != nil {
		return err
	}
	return nil
}

func GetConnectionNode(ctx context.Context, conn *gorm.DB, id int) (ConnectionNode, error) {
	var node ConnectionNode
	tx := conn.WithContext(ctx).First(&node, id)
	if err := tx.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ConnectionNode{}, fmt.Errorf("connection node with ID %d does not exist: %w", id, ErrConnectionNodeNotFound)
		}
		return ConnectionNode{}, fmt.Errorf("failed to lookup connection node with ID %d: %w", id, err)
	}
	return node, nil
}

func CreateConnectionNode(ctx context.Context, conn *gorm.DB, node ConnectionNode) (ConnectionNode, error) {
	if err := node.Validate(); err != nil {
		return ConnectionNode{}, err
	}
	tx := conn.WithContext(ctx).Create(&node)
	if tx.Error != nil {
		return ConnectionNode{}, fmt.Errorf("failed to create connection node: %w", tx.Error)
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
