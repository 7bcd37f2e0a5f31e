// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package db

import "fmt"

// ValidationError reports an entity constructed with a field value outside its
// declared domain, or with a required field missing.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Reason)
}

func NewValidationError(entity, field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

// RequireGeometry validates a geometry column that must not be NULL and must
// hold the given kind ("Point", "LineString", "Polygon").
func RequireGeometry(entity, field string, g Geometry, kind string) error {
	if g.IsZero() {
		return NewValidationError(entity, field, "required geometry is not set")
	}
	return RequireGeometryKind(entity, field, g, kind)
}

// RequireGeometryKind validates the kind of an optional geometry column,
// accepting the zero value.
func RequireGeometryKind(entity, field string, g Geometry, kind string) error {
	if g.IsZero() {
		return nil
	}
	if g.Kind() != kind {
		return NewValidationError(entity, field, "geometry must be a %s, got %s", kind, g.Kind())
	}
	return nil
}
