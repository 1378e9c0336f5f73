// Code generated by ent, DO NOT EDIT.

package examsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/edugen/tka/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldLTE(FieldID, id))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldEQ(FieldUsername, v))
}

// SavedAt applies equality check predicate on the "saved_at" field. It's identical to SavedAtEQ.
func SavedAt(v time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldEQ(FieldSavedAt, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldContainsFold(FieldUsername, v))
}

// SavedAtEQ applies the EQ predicate on the "saved_at" field.
func SavedAtEQ(v time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldEQ(FieldSavedAt, v))
}

// SavedAtNEQ applies the NEQ predicate on the "saved_at" field.
func SavedAtNEQ(v time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldNEQ(FieldSavedAt, v))
}

// SavedAtIn applies the In predicate on the "saved_at" field.
func SavedAtIn(vs ...time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldIn(FieldSavedAt, vs...))
}

// SavedAtNotIn applies the NotIn predicate on the "saved_at" field.
func SavedAtNotIn(vs ...time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldNotIn(FieldSavedAt, vs...))
}

// SavedAtGT applies the GT predicate on the "saved_at" field.
func SavedAtGT(v time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldGT(FieldSavedAt, v))
}

// SavedAtGTE applies the GTE predicate on the "saved_at" field.
func SavedAtGTE(v time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldGTE(FieldSavedAt, v))
}

// SavedAtLT applies the LT predicate on the "saved_at" field.
func SavedAtLT(v time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldLT(FieldSavedAt, v))
}

// SavedAtLTE applies the LTE predicate on the "saved_at" field.
func SavedAtLTE(v time.Time) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.FieldLTE(FieldSavedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExamSnapshot) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExamSnapshot) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExamSnapshot) predicate.ExamSnapshot {
	return predicate.ExamSnapshot(sql.NotPredicates(p))
}
