// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package legacy

import (
	"context"
	"errors"
	"fmt"

	"github.com/relvacode/iso8601"
	"gorm.io/gorm"

	db "github.com/larsclaussen/core-models/pkg/db"
)

// ControlKind discriminates the five structure control variants.
type ControlKind string

const (
	ControlKindTable  ControlKind = "table"
	ControlKindPID    ControlKind = "pid"
	ControlKindDelta  ControlKind = "delta"
	ControlKindMemory ControlKind = "memory"
	ControlKindTimed  ControlKind = "timed"
)

func (k ControlKind) Known() bool {
	switch k {
	case ControlKindTable, ControlKindPID, ControlKindDelta, ControlKindMemory, ControlKindTimed:
		return true
	}
	return false
}

// ControlRule is implemented by all five control variant types so a resolved
// rule can be handled generically.
type ControlRule interface {
	RuleID() int
	Kind() ControlKind
}

// ControlTable holds threshold/action pairs applied to a target structure.
// The action table consists of one or more threshold, action_value pairs
// separated by a comma. Fields are nullable on purpose to allow an instance
// to be created in several separate steps.
type ControlTable struct {
	ID              int     `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	MeasureVariable *string `gorm:"column:measure_variable;type:varchar;size:50;" json:"measure_variable"`
	MeasureOperator *string `gorm:"column:measure_operator;type:varchar;size:2;" json:"measure_operator"`
	ActionType      *string `gorm:"column:action_type;type:varchar;size:50;" json:"action_type"`
	ActionTable     *string `gorm:"column:action_table;type:text;" json:"action_table"`
	TargetType      *string `gorm:"column:target_type;type:varchar;size:100;" json:"target_type"`
	TargetID        *int    `gorm:"column:target_id;type:integer;" json:"target_id"`
}

// TableName sets the select/insert table name for this struct type
func (c *ControlTable) TableName() string {
	return "v2_control_table"
}

func (c *ControlTable) RuleID() int       { return c.ID }
func (c *ControlTable) Kind() ControlKind { return ControlKindTable }

// ControlPID tunes a target towards a setpoint. Kp is the proportional gain,
// Ki the integral gain and Kd the derivative gain.
type ControlPID struct {
	ID              int      `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	MeasureVariable *string  `gorm:"column:measure_variable;type:varchar;size:50;" json:"measure_variable"`
	Setpoint        *float64 `gorm:"column:setpoint;type:real;" json:"setpoint"`
	Kp              *float64 `gorm:"column:kp;type:real;" json:"kp"`
	Ki              *float64 `gorm:"column:ki;type:real;" json:"ki"`
	Kd              *float64 `gorm:"column:kd;type:real;" json:"kd"`
	ActionType      *string  `gorm:"column:action_type;type:varchar;size:50;" json:"action_type"`
	TargetType      *string  `gorm:"column:target_type;type:varchar;size:100;" json:"target_type"`
	TargetID        *int     `gorm:"column:target_id;type:integer;" json:"target_id"`

	// One value if action_type expects one value, two semi-colon separated
	// values if it expects two, e.g. set_discharge_coefficients.
	TargetUpperLimit *string `gorm:"column:target_upper_limit;type:varchar;size:50;" json:"target_upper_limit"`
	TargetLowerLimit *string `gorm:"column:target_lower_limit;type:varchar;size:50;" json:"target_lower_limit"`
}

// TableName sets the select/insert table name for this struct type
func (c *ControlPID) TableName() string {
	return "v2_control_pid"
}

func (c *ControlPID) RuleID() int       { return c.ID }
func (c *ControlPID) Kind() ControlKind { return ControlKindPID }

// ControlDelta acts when the measured variable changes more than
// measure_delta within measure_dt seconds.
type ControlDelta struct {
	ID              int      `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	MeasureVariable *string  `gorm:"column:measure_variable;type:varchar;size:50;" json:"measure_variable"`
	MeasureDelta    *float64 `gorm:"column:measure_delta;type:real;" json:"measure_delta"`
	MeasureDt       *float64 `gorm:"column:measure_dt;type:real;" json:"measure_dt"`
	ActionType      *string  `gorm:"column:action_type;type:varchar;size:50;" json:"action_type"`
	ActionValue     *string  `gorm:"column:action_value;type:varchar;size:50;" json:"action_value"`
	ActionTime      *float64 `gorm:"column:action_time;type:real;" json:"action_time"`
	TargetType      *string  `gorm:"column:target_type;type:varchar;size:100;" json:"target_type"`
	TargetID        *int     `gorm:"column:target_id;type:integer;" json:"target_id"`
}

// TableName sets the select/insert table name for this struct type
func (c *ControlDelta) TableName() string {
	return "v2_control_delta"
}

func (c *ControlDelta) RuleID() int       { return c.ID }
func (c *ControlDelta) Kind() ControlKind { return ControlKindDelta }

// ControlMemory toggles a target between thresholds. When is_inverse is true
// the target becomes active when the lower threshold has been reached.
type ControlMemory struct {
	ID              int      `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	MeasureVariable *string  `gorm:"column:measure_variable;type:varchar;size:50;" json:"measure_variable"`
	UpperThreshold  *float64 `gorm:"column:upper_threshold;type:real;" json:"upper_threshold"`
	LowerThreshold  *float64 `gorm:"column:lower_threshold;type:real;" json:"lower_threshold"`
	ActionType      *string  `gorm:"column:action_type;type:varchar;size:50;" json:"action_type"`
	ActionValue     *string  `gorm:"column:action_value;type:varchar;size:50;" json:"action_value"`
	TargetType      *string  `gorm:"column:target_type;type:varchar;size:100;" json:"target_type"`
	TargetID        *int     `gorm:"column:target_id;type:integer;" json:"target_id"`
	IsActive        bool     `gorm:"column:is_active;type:boolean;default:true;" json:"is_active"`
	IsInverse       bool     `gorm:"column:is_inverse;type:boolean;default:false;" json:"is_inverse"`
}

// TableName sets the select/insert table name for this struct type
func (c *ControlMemory) TableName() string {
	return "v2_control_memory"
}

func (c *ControlMemory) RuleID() int       { return c.ID }
func (c *ControlMemory) Kind() ControlKind { return ControlKindMemory }

// ControlTimed applies actions during calendar intervals. The action table
// holds one or more start;end;value rows separated by '#', e.g.
// --01-01;--04-04;0.2;1.0#--04-04;--08-09;0.4;0.5
type ControlTimed struct {
	ID          int     `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	ActionType  *string `gorm:"column:action_type;type:varchar;size:50;" json:"action_type"`
	ActionTable *string `gorm:"column:action_table;type:text;" json:"action_table"`
	TargetType  *string `gorm:"column:target_type;type:varchar;size:100;" json:"target_type"`
	TargetID    *int    `gorm:"column:target_id;type:integer;" json:"target_id"`
}

// TableName sets the select/insert table name for this struct type
func (c *ControlTimed) TableName() string {
	return "v2_control_timed"
}

func (c *ControlTimed) RuleID() int       { return c.ID }
func (c *ControlTimed) Kind() ControlKind { return ControlKindTimed }

// ControlMeasureGroup is a placeholder with a primary key, used to group
// measure objects and weights.
type ControlMeasureGroup struct {
	ID int `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
}

// TableName sets the select/insert table name for this struct type
func (c *ControlMeasureGroup) TableName() string {
	return "v2_control_measure_group"
}

// ControlMeasureMap combines one or more object-weight pairs into a measure
// group. The sum of the weights for one group must be 1.0.
type ControlMeasureMap struct {
	ID int `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`

	MeasureGroupID *int                 `gorm:"column:measure_group_id;" json:"measure_group_id"`
	MeasureGroup   *ControlMeasureGroup `gorm:"foreignKey:MeasureGroupID;constraint:OnDelete:CASCADE;" json:"-"`

	ObjectType *string `gorm:"column:object_type;type:varchar;size:100;" json:"object_type"`
	ObjectID   *int    `gorm:"column:object_id;type:integer;" json:"object_id"`

	// Weight is between 0 and 1 with 2 decimal places.
	Weight *float64 `gorm:"column:weight;type:decimal(3,2);" json:"weight"`
}

// TableName sets the select/insert table name for this struct type
func (c *ControlMeasureMap) TableName() string {
	return "v2_control_measure_map"
}

func (c *ControlMeasureMap) Validate() error {
	if c.Weight != nil && (*c.Weight < 0 || *c.Weight > 1) {
		return db.NewValidationError("ControlMeasureMap", "weight", "value %v outside [0, 1]", *c.Weight)
	}
	return nil
}

// ControlGroup groups controls. Global settings select a group by foreign
// key to this table.
type ControlGroup struct {
	ID          int     `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`
	Name        *string `gorm:"column:name;type:varchar;size:100;" json:"name"`
	Description *string `gorm:"column:description;type:text;" json:"description"`
}

// TableName sets the select/insert table name for this struct type
func (c *ControlGroup) TableName() string {
	return "v2_control_group"
}

// ControlRef addresses one rule row in one of the five control variant
// tables.
type ControlRef struct {
	Kind ControlKind `gorm:"column:control_type;type:varchar;size:15;" json:"control_type"`
	ID   *int        `gorm:"column:control_id;type:integer;" json:"control_id"`
}

// IsZero reports whether the reference is unset. An unset reference is
// allowed; rows are often created in several separate steps.
func (r ControlRef) IsZero() bool {
	return r.Kind == "" && r.ID == nil
}

func (r ControlRef) Validate() error {
	if r.IsZero() {
		return nil
	}
	if !r.Kind.Known() {
		return db.NewValidationError("Control", "control_type", "unknown control type %q", string(r.Kind))
	}
	if r.ID == nil {
		return db.NewValidationError("Control", "control_id", "control type %q set without a control id", string(r.Kind))
	}
	return nil
}

var ErrControlRuleNotFound = errors.New("legacy: control rule not found")

// Resolve loads the rule row the reference points at.
func (r ControlRef) Resolve(ctx context.Context, conn *gorm.DB) (ControlRule, error) {
	if r.IsZero() {
		return nil, fmt.Errorf("cannot resolve an unset control reference")
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var rule ControlRule
	switch r.Kind {
	case ControlKindTable:
		rule = &ControlTable{}
	case ControlKindPID:
		rule = &ControlPID{}
	case ControlKindDelta:
		rule = &ControlDelta{}
	case ControlKindMemory:
		rule = &ControlMemory{}
	case ControlKindTimed:
		rule = &ControlTimed{}
	}

	tx := conn.WithContext(ctx).First(rule, *r.ID)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, ErrControlRuleNotFound
	}
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to resolve %s control %d: %w", string(r.Kind), *r.ID, tx.Error)
	}
	return rule, nil
}

// Control connects a specific rule to a measure group and groups controls
// together via the control group.
type Control struct {
	ID int `gorm:"primaryKey;column:id;autoIncrement;" json:"id"`

	ControlGroupID *int          `gorm:"column:control_group_id;" json:"control_group_id"`
	ControlGroup   *ControlGroup `gorm:"foreignKey:ControlGroupID;constraint:OnDelete:CASCADE;" json:"-"`

	Ref ControlRef `gorm:"embedded;" json:"ref"`

	MeasureGroupID *int                 `gorm:"column:measure_group_id;" json:"measure_group_id"`
	MeasureGroup   *ControlMeasureGroup `gorm:"foreignKey:MeasureGroupID;constraint:OnDelete:CASCADE;" json:"-"`

	// MeasureFrequency is the measure frequency in seconds.
	MeasureFrequency *int `gorm:"column:measure_frequency;type:integer;" json:"measure_frequency"`

	// Optional start and end in ISO 8601 format during which this control is
	// active. ISO 8601 handles all use cases, even dates without years.
	Start *string `gorm:"column:start;type:varchar;size:50;" json:"start"`
	End   *string `gorm:"column:end;type:varchar;size:50;" json:"end"`
}

// TableName sets the select/insert table name for this struct type
func (c *Control) TableName() string {
	return "v2_control"
}

func (c *Control) Validate() error {
	if err := c.Ref.Validate(); err != nil {
		return err
	}
	if err := validateISO8601("Control", "start", c.Start); err != nil {
		return err
	}
	return validateISO8601("Control", "end", c.End)
}

// BeforeSave rejects controls with an inconsistent rule reference or
// malformed activity window.
func (c *Control) BeforeSave(_ *gorm.DB) error {
	return c.Validate()
}

func validateISO8601(entity, field string, v *string) error {
	if v == nil || *v == "" {
		return nil
	}
	if _, err := iso8601.ParseString(*v); err != nil {
		return db.NewValidationError(entity, field, "not a valid ISO 8601 timestamp: %q", *v)
	}
	return nil
}
