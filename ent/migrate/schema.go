// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExamResultsColumns holds the columns for the "exam_results" table.
	ExamResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "taken_at", Type: field.TypeTime},
	}
	// ExamResultsTable holds the schema information for the "exam_results" table.
	ExamResultsTable = &schema.Table{
		Name:       "exam_results",
		Columns:    ExamResultsColumns,
		PrimaryKey: []*schema.Column{ExamResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examresult_username",
				Unique:  false,
				Columns: []*schema.Column{ExamResultsColumns[2]},
			},
			{
				Name:    "examresult_taken_at",
				Unique:  false,
				Columns: []*schema.Column{ExamResultsColumns[7]},
			},
		},
	}
	// ExamSnapshotsColumns holds the columns for the "exam_snapshots" table.
	ExamSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "saved_at", Type: field.TypeTime},
	}
	// ExamSnapshotsTable holds the schema information for the "exam_snapshots" table.
	ExamSnapshotsTable = &schema.Table{
		Name:       "exam_snapshots",
		Columns:    ExamSnapshotsColumns,
		PrimaryKey: []*schema.Column{ExamSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examsnapshot_saved_at",
				Unique:  false,
				Columns: []*schema.Column{ExamSnapshotsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "slot", Type: field.TypeInt, Unique: true},
		{Name: "username", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "password", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_phone",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExamResultsTable,
		ExamSnapshotsTable,
		LlmRequestEventsTable,
		SessionsTable,
		UsersTable,
	}
)

func init() {
}
