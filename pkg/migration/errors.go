// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package migration

import "fmt"

// SchemaMismatchError reports a destination column that must be filled but
// has no counterpart in the source table.
type SchemaMismatchError struct {
	Entity string
	Column string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch for %s: required column %q is missing from the source table", e.Entity, e.Column)
}

// GeometryConversionError reports a source geometry value that could not be
// converted to EWKT.
type GeometryConversionError struct {
	Entity string
	Column string
	Cause  error
}

func (e *GeometryConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s.%s to EWKT: %v", e.Entity, e.Column, e.Cause)
}

func (e *GeometryConversionError) Unwrap() error {
	return e.Cause
}

// TransactionError reports a destination write or commit failure. No rows
// are left behind when it is returned.
type TransactionError struct {
	Cause error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("migration transaction failed: %v", e.Cause)
}

func (e *TransactionError) Unwrap() error {
	return e.Cause
}
