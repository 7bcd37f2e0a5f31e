// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	db "github.com/larsclaussen/core-models/pkg/db"
	"github.com/larsclaussen/core-models/pkg/db/legacy"
)

func NewChannel(t *testing.T, channel legacy.Channel) legacy.Channel {
	t.Helper()

	result := legacy.Channel{
		DisplayName: "channel",
		Code:        fmt.Sprintf("channel_%s", uuid.New().String()),
		TheGeom: db.NewLineString(legacy.WorkSRID,
			orb.Point{4.9, 52.3},
			orb.Point{4.95, 52.35},
		),
	}

	if channel.ID != 0 {
		result.ID = channel.ID
	}
	if channel.DisplayName != "" {
		result.DisplayName = channel.DisplayName
	}
	if channel.Code != "" {
		result.Code = channel.Code
	}
	if channel.CalculationType != nil {
		result.CalculationType = channel.CalculationType
	}
	if channel.ZoomCategory != nil {
		result.ZoomCategory = channel.ZoomCategory
	}
	if channel.ConnectionNodeStartID != nil {
		result.ConnectionNodeStartID = channel.ConnectionNodeStartID
	}
	if channel.ConnectionNodeEndID != nil {
		result.ConnectionNodeEndID = channel.ConnectionNodeEndID
	}
	if !channel.TheGeom.IsZero() {
		result.TheGeom = channel.TheGeom
	}

	return result
}

func CreateChannels(t *testing.T, conn *gorm.DB, channels ...legacy.Channel) []legacy.Channel {
	t.Helper()

	var records []legacy.Channel
	for _, c := range channels {
		records = append(records, NewChannel(t, c))
	}

	require.NoError(t, conn.CreateInBatches(&records, 1000).Error)

	return records
}
