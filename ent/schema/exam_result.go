package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamResult records one completed exam. Immutable after creation;
// history queries return the most recent first.
type ExamResult struct {
	ent.Schema
}

func (ExamResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("result_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID assigned at finalize"),
		field.String("username").
			NotEmpty().
			Immutable(),
		field.Int("score").
			Immutable().
			Comment("Rounded percentage, 0-100"),
		field.Int("total_questions").
			Immutable(),
		field.Int("correct_count").
			Immutable(),
		field.JSON("topics", []string{}).
			Optional().
			Comment("Topic names the exam was generated from"),
		field.Time("taken_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ExamResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username"),
		index.Fields("taken_at"),
	}
}
