// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy

import (
	db "github.com/larsclaussen/core-models/pkg/db"
)

// choice is any of the closed integer/string code sets in constants.go.
type choice interface{ Known() bool }

// checkChoice validates a nullable enumerated column.
func checkChoice[C choice](entity, field string, v *C) error {
	if v == nil {
		return nil
	}
	return requireChoice(entity, field, *v)
}

// requireChoice validates a non-null enumerated column.
func requireChoice[C choice](entity, field string, v C) error {
	if !v.Known() {
		return db.NewValidationError(entity, field, "value %v outside declared choice set", v)
	}
	return nil
}
