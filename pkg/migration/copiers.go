// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package migration

import (
	"fmt"

	"gorm.io/gorm"

	db "github.com/larsclaussen/core-models/pkg/db"
	"github.com/larsclaussen/core-models/pkg/db/future"
	"github.com/larsclaussen/core-models/pkg/db/legacy"
)

// tableCopier is a copier built from a typed row constructor. The staged
// slice is kept typed so the flush can hand it to gorm in batches.
type tableCopier[T any] struct {
	name   string
	src    string
	cols   []string
	req    []string
	build  func(row map[string]interface{}) (*T, error)
	staged []*T
}

func (c *tableCopier[T]) entity() string      { return c.name }
func (c *tableCopier[T]) sourceTable() string { return c.src }
func (c *tableCopier[T]) columns() []string   { return c.cols }
func (c *tableCopier[T]) required() []string  { return c.req }
func (c *tableCopier[T]) reset()              { c.staged = nil }

func (c *tableCopier[T]) stage(row map[string]interface{}) error {
	rec, err := c.build(row)
	if err != nil {
		return err
	}
	if v, ok := interface{}(rec).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	c.staged = append(c.staged, rec)
	return nil
}

func (c *tableCopier[T]) flush(tx *gorm.DB) (int64, error) {
	if len(c.staged) == 0 {
		return 0, nil
	}
	if err := tx.CreateInBatches(c.staged, createBatchSize).Error; err != nil {
		return 0, fmt.Errorf("failed to insert %s rows: %w", c.name, err)
	}
	return int64(len(c.staged)), nil
}

// defaultCopiers returns the registered entity copiers in foreign key
// order: connection nodes before the channels that reference them.
func defaultCopiers() []copier {
	return []copier{
		connectionNodeCopier(),
		channelCopier(),
	}
}

func connectionNodeCopier() copier {
	return &tableCopier[future.ConnectionNode]{
		name: "ConnectionNode",
		src:  (&legacy.ConnectionNode{}).TableName(),
		cols: []string{"id", "storage_area", "initial_waterlevel", "code", "the_geom"},
		req:  []string{"the_geom"},
		build: func(row map[string]interface{}) (*future.ConnectionNode, error) {
			geom, err := geometryColumn("ConnectionNode", "the_geom", row["the_geom"])
			if err != nil {
				return nil, err
			}
			return &future.ConnectionNode{
				ID:                intColumn(row["id"]),
				StorageArea:       floatColumn(row["storage_area"]),
				InitialWaterlevel: floatColumn(row["initial_waterlevel"]),
				Code:              stringColumn(row["code"]),
				TheGeom:           geom,
			}, nil
		},
	}
}

func channelCopier() copier {
	return &tableCopier[future.Channel]{
		name: "Channel",
		src:  (&legacy.Channel{}).TableName(),
		cols: []string{"id", "code", "display_name", "connection_node_start_id", "connection_node_end_id", "the_geom"},
		req:  []string{"the_geom"},
		build: func(row map[string]interface{}) (*future.Channel, error) {
			geom, err := geometryColumn("Channel", "the_geom", row["the_geom"])
			if err != nil {
				return nil, err
			}
			return &future.Channel{
				ID:                    intColumn(row["id"]),
				Code:                  stringColumn(row["code"]),
				DisplayName:           stringColumn(row["display_name"]),
				ConnectionNodeStartID: intRefColumn(row["connection_node_start_id"]),
				ConnectionNodeEndID:   intRefColumn(row["connection_node_end_id"]),
				TheGeom:               geom,
			}, nil
		},
	}
}

// unwrapColumn unpacks the *interface{} indirection gorm's map scan uses for
// columns it has no schema type for, such as geometry columns.
func unwrapColumn(v interface{}) interface{} {
	if p, ok := v.(*interface{}); ok {
		if p == nil {
			return nil
		}
		return *p
	}
	return v
}

// geometryColumn converts whatever the source driver returned for a geometry
// column into the EWKT-backed column type.
func geometryColumn(entity, column string, v interface{}) (db.Geometry, error) {
	v = unwrapColumn(v)
	if v == nil {
		return db.Geometry{}, nil
	}

	var raw string
	switch val := v.(type) {
	case string:
		raw = val
	case []byte:
		raw = string(val)
	default:
		return db.Geometry{}, &GeometryConversionError{
			Entity: entity, Column: column,
			Cause: fmt.Errorf("unsupported driver type %T", v),
		}
	}

	geom, err := db.ParseGeometry(raw)
	if err != nil {
		return db.Geometry{}, &GeometryConversionError{Entity: entity, Column: column, Cause: err}
	}
	return geom, nil
}

func intColumn(v interface{}) int {
	switch val := unwrapColumn(v).(type) {
	case int64:
		return int(val)
	case int:
		return val
	case float64:
		return int(val)
	}
	return 0
}

func intRefColumn(v interface{}) *int {
	if unwrapColumn(v) == nil {
		return nil
	}
	n := intColumn(v)
	return &n
}

func floatColumn(v interface{}) *float64 {
	switch val := unwrapColumn(v).(type) {
	case float64:
		return &val
	case int64:
		f := float64(val)
		return &f
	}
	return nil
}

func stringColumn(v interface{}) string {
	switch val := unwrapColumn(v).(type) {
	case string:
		return val
	case []byte:
		return string(val)
	}
	return ""
}
