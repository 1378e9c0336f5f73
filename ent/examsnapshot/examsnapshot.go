// Code generated by ent, DO NOT EDIT.

package examsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the examsnapshot type in the database.
	Label = "exam_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldSavedAt holds the string denoting the saved_at field in the database.
	FieldSavedAt = "saved_at"
	// Table holds the table name of the examsnapshot in the database.
	Table = "exam_snapshots"
)

// Columns holds all SQL columns for examsnapshot fields.
var Columns = []string{
	FieldID,
	FieldUsername,
	FieldData,
	FieldSavedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	UsernameValidator func(string) error
	// DefaultSavedAt holds the default value on creation for the "saved_at" field.
	DefaultSavedAt func() time.Time
	// UpdateDefaultSavedAt holds the default value on update for the "saved_at" field.
	UpdateDefaultSavedAt func() time.Time
)

// OrderOption defines the ordering options for the ExamSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// BySavedAt orders the results by the saved_at field.
func BySavedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSavedAt, opts...).ToFunc()
}
