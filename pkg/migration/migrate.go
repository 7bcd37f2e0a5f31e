// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package migration

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/larsclaussen/core-models/pkg/db/future"
	"github.com/larsclaussen/core-models/pkg/log"
)

const createBatchSize = 500

// copier moves the rows of one entity between the stores. Copiers run in
// registration order, so tables referenced by foreign keys come first.
type copier interface {
	entity() string
	sourceTable() string

	// columns lists the destination column names. The copy is projected to
	// the subset the source table also has.
	columns() []string

	// required lists destination columns the source table must provide.
	required() []string

	stage(row map[string]interface{}) error
	flush(tx *gorm.DB) (int64, error)
	reset()
}

// Summary reports what a finished run copied.
type Summary struct {
	RunID  string
	Copied map[string]int64
}

// Migrator copies rows from the legacy store into the replacement template
// store. The source connection should be read-only; the destination receives
// all rows in a single transaction. Both handles stay owned by the caller.
type Migrator struct {
	source  *gorm.DB
	dest    *gorm.DB
	copiers []copier
}

func New(source, dest *gorm.DB) *Migrator {
	return &Migrator{
		source:  source,
		dest:    dest,
		copiers: defaultCopiers(),
	}
}

// Run initializes the destination schema, reads every source table projected
// to the destination columns, converts geometry columns to EWKT, validates
// each constructed row and commits everything in one transaction. Any
// failure aborts the run with zero rows written.
func (m *Migrator) Run(ctx context.Context) (Summary, error) {
	summary := Summary{
		RunID:  uuid.New().String(),
		Copied: make(map[string]int64),
	}
	logger := log.WithField("runID", summary.RunID)
	logger.Info("starting migration run")

	if err := future.InitSchema(m.dest); err != nil {
		return summary, err
	}

	for _, c := range m.copiers {
		c.reset()

		cols, err := m.projectedColumns(c)
		if err != nil {
			return summary, err
		}

		var rows []map[string]interface{}
		err = m.source.WithContext(ctx).Table(c.sourceTable()).Select(cols).Order("id").Find(&rows).Error
		if err != nil {
			return summary, fmt.Errorf("failed to read %s rows from %s: %w", c.entity(), c.sourceTable(), err)
		}
		logger.WithField("entity", c.entity()).WithField("rows", len(rows)).Info("staging rows")

		for _, row := range rows {
			if err := c.stage(row); err != nil {
				return summary, err
			}
		}
	}

	err := m.dest.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range m.copiers {
			n, err := c.flush(tx)
			if err != nil {
				return err
			}
			summary.Copied[c.entity()] = n
		}
		return nil
	})
	if err != nil {
		return summary, &TransactionError{Cause: err}
	}

	logger.WithField("copied", summary.Copied).Info("migration run finished")
	return summary, nil
}

// projectedColumns intersects the destination columns of c with the columns
// the source table actually has.
func (m *Migrator) projectedColumns(c copier) ([]string, error) {
	types, err := m.source.Migrator().ColumnTypes(c.sourceTable())
	if err != nil {
		return nil, fmt.Errorf("failed to inspect source table %s: %w", c.sourceTable(), err)
	}
	have := make(map[string]bool, len(types))
	for _, t := range types {
		have[t.Name()] = true
	}

	for _, col := range c.required() {
		if !have[col] {
			return nil, &SchemaMismatchError{Entity: c.entity(), Column: col}
		}
	}

	var cols []string
	for _, col := range c.columns() {
		if have[col] {
			cols = append(cols, col)
		}
	}
	return cols, nil
}
