package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is a locally registered account. Credentials are stored as entered;
// matching at login is exact and case-sensitive.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("password").
			NotEmpty(),
		field.String("phone").
			Optional().
			Comment("Recovery phone number, may be empty"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username").Unique(),
		index.Fields("phone"),
	}
}
