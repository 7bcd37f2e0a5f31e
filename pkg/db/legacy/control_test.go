// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	db "github.com/larsclaussen/core-models/pkg/db"
	"github.com/larsclaussen/core-models/pkg/db/dbtest"
	"github.com/larsclaussen/core-models/pkg/db/legacy"
)

func TestControlRef_Validate(t *testing.T) {
	// Unset references are allowed, rows are built up in steps.
	require.NoError(t, legacy.ControlRef{}.Validate())

	require.NoError(t, legacy.ControlRef{Kind: legacy.ControlKindTable, ID: ptr(1)}.Validate())
	require.NoError(t, legacy.ControlRef{Kind: legacy.ControlKindMemory, ID: ptr(3)}.Validate())

	err := legacy.ControlRef{Kind: "thermostat", ID: ptr(1)}.Validate()
	var verr *db.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "control_type", verr.Field)

	err = legacy.ControlRef{Kind: legacy.ControlKindPID}.Validate()
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "control_id", verr.Field)
}

func TestControl_ValidatesStartEnd(t *testing.T) {
	ctl := &legacy.Control{Start: ptr("2026-03-01T00:00:00Z"), End: ptr("2026-04-01T12:30:00Z")}
	require.NoError(t, ctl.Validate())

	ctl.End = ptr("first of April")
	err := ctl.Validate()
	var verr *db.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "end", verr.Field)
}

func TestControlRef_Resolve(t *testing.T) {
	conn := dbtest.ConnectForTests(t)
	require.NoError(t, conn.AutoMigrate(
		&legacy.ControlTable{},
		&legacy.ControlMemory{},
	))

	ctx := context.Background()

	table := legacy.ControlTable{
		MeasureVariable: ptr("s1"),
		MeasureOperator: ptr(">"),
		ActionType:      ptr("set_crest_level"),
		ActionTable:     ptr("1.2,4.5"),
		TargetType:      ptr("v2_weir"),
		TargetID:        ptr(12),
	}
	require.NoError(t, conn.Create(&table).Error)

	rule, err := legacy.ControlRef{Kind: legacy.ControlKindTable, ID: ptr(table.ID)}.Resolve(ctx, conn)
	require.NoError(t, err)
	require.Equal(t, legacy.ControlKindTable, rule.Kind())
	require.Equal(t, table.ID, rule.RuleID())

	resolved, ok := rule.(*legacy.ControlTable)
	require.True(t, ok)
	require.Equal(t, "set_crest_level", *resolved.ActionType)

	_, err = legacy.ControlRef{Kind: legacy.ControlKindMemory, ID: ptr(999)}.Resolve(ctx, conn)
	require.ErrorIs(t, err, legacy.ErrControlRuleNotFound)

	_, err = legacy.ControlRef{}.Resolve(ctx, conn)
	require.Error(t, err)
}
