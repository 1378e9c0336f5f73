// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/edugen/tka/ent/examsnapshot"
)

// ExamSnapshot is the model entity for the ExamSnapshot schema.
type ExamSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// Serialized exam state
	Data map[string]interface{} `json:"data,omitempty"`
	// SavedAt holds the value of the "saved_at" field.
	SavedAt      time.Time `json:"saved_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExamSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case examsnapshot.FieldData:
			values[i] = new([]byte)
		case examsnapshot.FieldID:
			values[i] = new(sql.NullInt64)
		case examsnapshot.FieldUsername:
			values[i] = new(sql.NullString)
		case examsnapshot.FieldSavedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExamSnapshot fields.
func (_m *ExamSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case examsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case examsnapshot.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case examsnapshot.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case examsnapshot.FieldSavedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field saved_at", values[i])
			} else if value.Valid {
				_m.SavedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExamSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *ExamSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExamSnapshot.
// Note that you need to call ExamSnapshot.Unwrap() before calling this method if this ExamSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExamSnapshot) Update() *ExamSnapshotUpdateOne {
	return NewExamSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExamSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExamSnapshot) Unwrap() *ExamSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExamSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExamSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ExamSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("saved_at=")
	builder.WriteString(_m.SavedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExamSnapshots is a parsable slice of ExamSnapshot.
type ExamSnapshots []*ExamSnapshot
