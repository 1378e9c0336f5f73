package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Session is the single-row marker for the currently logged-in user.
// Cleared on logout and by the inactivity watchdog.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.Int("slot").
			Unique().
			Comment("Always 1; enforces at most one active session"),
		field.String("username").
			NotEmpty(),
		field.Time("started_at").
			Default(time.Now),
	}
}
