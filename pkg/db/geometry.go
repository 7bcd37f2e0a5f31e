// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package db

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/paulmach/orb/encoding/wkt"
)

// Geometry is a spatial column value: an orb geometry plus the SRID of its
// coordinate reference system. It is persisted as EWKT ("SRID=4326;POINT(4.9 52.3)")
// so values stay portable between PostGIS, SpatiaLite and plain text columns.
type Geometry struct {
	Geom orb.Geometry
	SRID int
}

func NewPoint(srid int, x, y float64) Geometry {
	return Geometry{Geom: orb.Point{x, y}, SRID: srid}
}

func NewLineString(srid int, points ...orb.Point) Geometry {
	return Geometry{Geom: orb.LineString(points), SRID: srid}
}

func NewPolygon(srid int, ring ...orb.Point) Geometry {
	return Geometry{Geom: orb.Polygon{orb.Ring(ring)}, SRID: srid}
}

// IsZero reports whether no geometry is set. A zero Geometry serializes to NULL.
func (g Geometry) IsZero() bool {
	return g.Geom == nil
}

// Kind returns the GeoJSON type name ("Point", "LineString", "Polygon", ...).
func (g Geometry) Kind() string {
	if g.Geom == nil {
		return ""
	}
	return g.Geom.GeoJSONType()
}

// EWKT renders the geometry as extended well-known text with a leading SRID.
func (g Geometry) EWKT() string {
	if g.Geom == nil {
		return ""
	}
	return fmt.Sprintf("SRID=%d;%s", g.SRID, wkt.MarshalString(g.Geom))
}

func (g Geometry) String() string {
	return g.EWKT()
}

// GormDataType declares the column type used by AutoMigrate.
func (g Geometry) GormDataType() string {
	return "geometry"
}

// Value implements driver.Valuer.
func (g Geometry) Value() (driver.Value, error) {
	if g.Geom == nil {
		return nil, nil
	}
	return g.EWKT(), nil
}

// Scan implements sql.Scanner. It accepts EWKT, bare WKT and hex-encoded EWKB
// (the form PostGIS returns for untyped geometry scans).
func (g *Geometry) Scan(value interface{}) error {
	if value == nil {
		*g = Geometry{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Geometry", value)
	}

	parsed, err := ParseGeometry(raw)
	if err != nil {
		return err
	}

	*g = parsed
	return nil
}

// ParseGeometry decodes a textual geometry representation. Supported forms are
// EWKT ("SRID=4326;POINT(1 2)"), bare WKT ("POINT(1 2)", SRID 0) and
// hex-encoded EWKB.
func ParseGeometry(raw string) (Geometry, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Geometry{}, fmt.Errorf("empty geometry value")
	}

	if strings.HasPrefix(raw, "00") || strings.HasPrefix(raw, "01") {
		if b, err := hex.DecodeString(raw); err == nil {
			geom, srid, err := ewkb.Unmarshal(b)
			if err != nil {
				return Geometry{}, fmt.Errorf("malformed EWKB geometry: %w", err)
			}
			return Geometry{Geom: geom, SRID: srid}, nil
		}
	}

	srid := 0
	text := raw
	if strings.HasPrefix(strings.ToUpper(raw), "SRID=") {
		head, tail, found := strings.Cut(raw, ";")
		if !found {
			return Geometry{}, fmt.Errorf("malformed EWKT %q: missing ';'", raw)
		}
		parsed, err := strconv.Atoi(head[len("SRID="):])
		if err != nil {
			return Geometry{}, fmt.Errorf("malformed EWKT %q: bad SRID: %w", raw, err)
		}
		srid = parsed
		text = tail
	}

	geom, err := wkt.Unmarshal(text)
	if err != nil {
		return Geometry{}, fmt.Errorf("malformed WKT %q: %w", text, err)
	}

	return Geometry{Geom: geom, SRID: srid}, nil
}
