// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/edugen/tka/ent/examresult"
)

// ExamResult is the model entity for the ExamResult schema.
type ExamResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID assigned at finalize
	ResultID string `json:"result_id,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// Rounded percentage, 0-100
	Score int `json:"score,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// Topic names the exam was generated from
	Topics []string `json:"topics,omitempty"`
	// TakenAt holds the value of the "taken_at" field.
	TakenAt      time.Time `json:"taken_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExamResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case examresult.FieldTopics:
			values[i] = new([]byte)
		case examresult.FieldID, examresult.FieldScore, examresult.FieldTotalQuestions, examresult.FieldCorrectCount:
			values[i] = new(sql.NullInt64)
		case examresult.FieldResultID, examresult.FieldUsername:
			values[i] = new(sql.NullString)
		case examresult.FieldTakenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExamResult fields.
func (_m *ExamResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case examresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case examresult.FieldResultID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_id", values[i])
			} else if value.Valid {
				_m.ResultID = value.String
			}
		case examresult.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case examresult.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case examresult.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case examresult.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case examresult.FieldTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Topics); err != nil {
					return fmt.Errorf("unmarshal field topics: %w", err)
				}
			}
		case examresult.FieldTakenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field taken_at", values[i])
			} else if value.Valid {
				_m.TakenAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExamResult.
// This includes values selected through modifiers, order, etc.
func (_m *ExamResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExamResult.
// Note that you need to call ExamResult.Unwrap() before calling this method if this ExamResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExamResult) Update() *ExamResultUpdateOne {
	return NewExamResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExamResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExamResult) Unwrap() *ExamResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExamResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExamResult) String() string {
	var builder strings.Builder
	builder.WriteString("ExamResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("result_id=")
	builder.WriteString(_m.ResultID)
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Topics))
	builder.WriteString(", ")
	builder.WriteString("taken_at=")
	builder.WriteString(_m.TakenAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExamResults is a parsable slice of ExamResult.
type ExamResults []*ExamResult
