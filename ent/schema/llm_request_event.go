package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records every call to the question generation API:
// latency, token usage, and outcome. Append-only.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty(),
		field.String("model").
			NotEmpty(),
		field.String("purpose").
			Default("unknown").
			Comment("Caller-supplied label, e.g. question-gen"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success").
			Default(false),
		field.String("error_message").
			Optional(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("provider"),
	}
}
