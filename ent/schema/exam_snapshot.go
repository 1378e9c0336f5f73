package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamSnapshot captures an in-progress exam (questions, answers, remaining
// seconds) so an interrupted run can resume. At most one row per user;
// cleared on finalize or logout.
type ExamSnapshot struct {
	ent.Schema
}

func (ExamSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			NotEmpty().
			Unique(),
		field.JSON("data", map[string]any{}).
			Comment("Serialized exam state"),
		field.Time("saved_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ExamSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("saved_at"),
	}
}
