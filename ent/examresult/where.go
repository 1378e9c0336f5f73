// Code generated by ent, DO NOT EDIT.

package examresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/edugen/tka/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLTE(FieldID, id))
}

// ResultID applies equality check predicate on the "result_id" field. It's identical to ResultIDEQ.
func ResultID(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldResultID, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldUsername, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldScore, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldTotalQuestions, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldCorrectCount, v))
}

// TakenAt applies equality check predicate on the "taken_at" field. It's identical to TakenAtEQ.
func TakenAt(v time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldTakenAt, v))
}

// ResultIDEQ applies the EQ predicate on the "result_id" field.
func ResultIDEQ(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldResultID, v))
}

// ResultIDNEQ applies the NEQ predicate on the "result_id" field.
func ResultIDNEQ(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNEQ(FieldResultID, v))
}

// ResultIDIn applies the In predicate on the "result_id" field.
func ResultIDIn(vs ...string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldIn(FieldResultID, vs...))
}

// ResultIDNotIn applies the NotIn predicate on the "result_id" field.
func ResultIDNotIn(vs ...string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNotIn(FieldResultID, vs...))
}

// ResultIDGT applies the GT predicate on the "result_id" field.
func ResultIDGT(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGT(FieldResultID, v))
}

// ResultIDGTE applies the GTE predicate on the "result_id" field.
func ResultIDGTE(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGTE(FieldResultID, v))
}

// ResultIDLT applies the LT predicate on the "result_id" field.
func ResultIDLT(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLT(FieldResultID, v))
}

// ResultIDLTE applies the LTE predicate on the "result_id" field.
func ResultIDLTE(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLTE(FieldResultID, v))
}

// ResultIDContains applies the Contains predicate on the "result_id" field.
func ResultIDContains(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldContains(FieldResultID, v))
}

// ResultIDHasPrefix applies the HasPrefix predicate on the "result_id" field.
func ResultIDHasPrefix(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldHasPrefix(FieldResultID, v))
}

// ResultIDHasSuffix applies the HasSuffix predicate on the "result_id" field.
func ResultIDHasSuffix(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldHasSuffix(FieldResultID, v))
}

// ResultIDEqualFold applies the EqualFold predicate on the "result_id" field.
func ResultIDEqualFold(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEqualFold(FieldResultID, v))
}

// ResultIDContainsFold applies the ContainsFold predicate on the "result_id" field.
func ResultIDContainsFold(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldContainsFold(FieldResultID, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldContainsFold(FieldUsername, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLTE(FieldScore, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLTE(FieldTotalQuestions, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLTE(FieldCorrectCount, v))
}

// TopicsIsNil applies the IsNil predicate on the "topics" field.
func TopicsIsNil() predicate.ExamResult {
	return predicate.ExamResult(sql.FieldIsNull(FieldTopics))
}

// TopicsNotNil applies the NotNil predicate on the "topics" field.
func TopicsNotNil() predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNotNull(FieldTopics))
}

// TakenAtEQ applies the EQ predicate on the "taken_at" field.
func TakenAtEQ(v time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldEQ(FieldTakenAt, v))
}

// TakenAtNEQ applies the NEQ predicate on the "taken_at" field.
func TakenAtNEQ(v time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNEQ(FieldTakenAt, v))
}

// TakenAtIn applies the In predicate on the "taken_at" field.
func TakenAtIn(vs ...time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldIn(FieldTakenAt, vs...))
}

// TakenAtNotIn applies the NotIn predicate on the "taken_at" field.
func TakenAtNotIn(vs ...time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldNotIn(FieldTakenAt, vs...))
}

// TakenAtGT applies the GT predicate on the "taken_at" field.
func TakenAtGT(v time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGT(FieldTakenAt, v))
}

// TakenAtGTE applies the GTE predicate on the "taken_at" field.
func TakenAtGTE(v time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldGTE(FieldTakenAt, v))
}

// TakenAtLT applies the LT predicate on the "taken_at" field.
func TakenAtLT(v time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLT(FieldTakenAt, v))
}

// TakenAtLTE applies the LTE predicate on the "taken_at" field.
func TakenAtLTE(v time.Time) predicate.ExamResult {
	return predicate.ExamResult(sql.FieldLTE(FieldTakenAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExamResult) predicate.ExamResult {
	return predicate.ExamResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExamResult) predicate.ExamResult {
	return predicate.ExamResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExamResult) predicate.ExamResult {
	return predicate.ExamResult(sql.NotPredicates(p))
}
