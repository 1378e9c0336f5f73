// Code generated by ent, DO NOT EDIT.

package examresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the examresult type in the database.
	Label = "exam_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldResultID holds the string denoting the result_id field in the database.
	FieldResultID = "result_id"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldTopics holds the string denoting the topics field in the database.
	FieldTopics = "topics"
	// FieldTakenAt holds the string denoting the taken_at field in the database.
	FieldTakenAt = "taken_at"
	// Table holds the table name of the examresult in the database.
	Table = "exam_results"
)

// Columns holds all SQL columns for examresult fields.
var Columns = []string{
	FieldID,
	FieldResultID,
	FieldUsername,
	FieldScore,
	FieldTotalQuestions,
	FieldCorrectCount,
	FieldTopics,
	FieldTakenAt,
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
	// ResultIDValidator is a validator for the "result_id" field. It is called by the builders before save.
	ResultIDValidator func(string) error
	// UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	UsernameValidator func(string) error
	// DefaultTakenAt holds the default value on creation for the "taken_at" field.
	DefaultTakenAt func() time.Time
)

// OrderOption defines the ordering options for the ExamResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResultID orders the results by the result_id field.
func ByResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultID, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByTakenAt orders the results by the taken_at field.
func ByTakenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTakenAt, opts...).ToFunc()
}
