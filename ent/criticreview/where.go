// Code generated by ent, DO NOT EDIT.

package criticreview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentium/agentium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldTaskID, v))
}

// CriticID applies equality check predicate on the "critic_id" field. It's identical to CriticIDEQ.
func CriticID(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldCriticID, v))
}

// SubmissionHash applies equality check predicate on the "submission_hash" field. It's identical to SubmissionHashEQ.
func SubmissionHash(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldSubmissionHash, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldReason, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldAttempt, v))
}

// Cached applies equality check predicate on the "cached" field. It's identical to CachedEQ.
func Cached(v bool) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldCached, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldContainsFold(FieldTaskID, v))
}

// CriticIDEQ applies the EQ predicate on the "critic_id" field.
func CriticIDEQ(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldCriticID, v))
}

// CriticIDNEQ applies the NEQ predicate on the "critic_id" field.
func CriticIDNEQ(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNEQ(FieldCriticID, v))
}

// CriticIDIn applies the In predicate on the "critic_id" field.
func CriticIDIn(vs ...string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldIn(FieldCriticID, vs...))
}

// CriticIDNotIn applies the NotIn predicate on the "critic_id" field.
func CriticIDNotIn(vs ...string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNotIn(FieldCriticID, vs...))
}

// CriticIDGT applies the GT predicate on the "critic_id" field.
func CriticIDGT(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldGT(FieldCriticID, v))
}

// CriticIDGTE applies the GTE predicate on the "critic_id" field.
func CriticIDGTE(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldGTE(FieldCriticID, v))
}

// CriticIDLT applies the LT predicate on the "critic_id" field.
func CriticIDLT(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldLT(FieldCriticID, v))
}

// CriticIDLTE applies the LTE predicate on the "critic_id" field.
func CriticIDLTE(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldLTE(FieldCriticID, v))
}

// CriticIDContains applies the Contains predicate on the "critic_id" field.
func CriticIDContains(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldContains(FieldCriticID, v))
}

// CriticIDHasPrefix applies the HasPrefix predicate on the "critic_id" field.
func CriticIDHasPrefix(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldHasPrefix(FieldCriticID, v))
}

// CriticIDHasSuffix applies the HasSuffix predicate on the "critic_id" field.
func CriticIDHasSuffix(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldHasSuffix(FieldCriticID, v))
}

// CriticIDEqualFold applies the EqualFold predicate on the "critic_id" field.
func CriticIDEqualFold(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEqualFold(FieldCriticID, v))
}

// CriticIDContainsFold applies the ContainsFold predicate on the "critic_id" field.
func CriticIDContainsFold(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldContainsFold(FieldCriticID, v))
}

// CriticTypeEQ applies the EQ predicate on the "critic_type" field.
func CriticTypeEQ(v CriticType) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldCriticType, v))
}

// CriticTypeNEQ applies the NEQ predicate on the "critic_type" field.
func CriticTypeNEQ(v CriticType) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNEQ(FieldCriticType, v))
}

// CriticTypeIn applies the In predicate on the "critic_type" field.
func CriticTypeIn(vs ...CriticType) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldIn(FieldCriticType, vs...))
}

// CriticTypeNotIn applies the NotIn predicate on the "critic_type" field.
func CriticTypeNotIn(vs ...CriticType) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNotIn(FieldCriticType, vs...))
}

// SubmissionHashEQ applies the EQ predicate on the "submission_hash" field.
func SubmissionHashEQ(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldSubmissionHash, v))
}

// SubmissionHashNEQ applies the NEQ predicate on the "submission_hash" field.
func SubmissionHashNEQ(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNEQ(FieldSubmissionHash, v))
}

// SubmissionHashIn applies the In predicate on the "submission_hash" field.
func SubmissionHashIn(vs ...string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldIn(FieldSubmissionHash, vs...))
}

// SubmissionHashNotIn applies the NotIn predicate on the "submission_hash" field.
func SubmissionHashNotIn(vs ...string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNotIn(FieldSubmissionHash, vs...))
}

// SubmissionHashGT applies the GT predicate on the "submission_hash" field.
func SubmissionHashGT(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldGT(FieldSubmissionHash, v))
}

// SubmissionHashGTE applies the GTE predicate on the "submission_hash" field.
func SubmissionHashGTE(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldGTE(FieldSubmissionHash, v))
}

// SubmissionHashLT applies the LT predicate on the "submission_hash" field.
func SubmissionHashLT(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldLT(FieldSubmissionHash, v))
}

// SubmissionHashLTE applies the LTE predicate on the "submission_hash" field.
func SubmissionHashLTE(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldLTE(FieldSubmissionHash, v))
}

// SubmissionHashContains applies the Contains predicate on the "submission_hash" field.
func SubmissionHashContains(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldContains(FieldSubmissionHash, v))
}

// SubmissionHashHasPrefix applies the HasPrefix predicate on the "submission_hash" field.
func SubmissionHashHasPrefix(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldHasPrefix(FieldSubmissionHash, v))
}

// SubmissionHashHasSuffix applies the HasSuffix predicate on the "submission_hash" field.
func SubmissionHashHasSuffix(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldHasSuffix(FieldSubmissionHash, v))
}

// SubmissionHashEqualFold applies the EqualFold predicate on the "submission_hash" field.
func SubmissionHashEqualFold(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEqualFold(FieldSubmissionHash, v))
}

// SubmissionHashContainsFold applies the ContainsFold predicate on the "submission_hash" field.
func SubmissionHashContainsFold(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldContainsFold(FieldSubmissionHash, v))
}

// VerdictEQ applies the EQ predicate on the "verdict" field.
func VerdictEQ(v Verdict) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldVerdict, v))
}

// VerdictNEQ applies the NEQ predicate on the "verdict" field.
func VerdictNEQ(v Verdict) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNEQ(FieldVerdict, v))
}

// VerdictIn applies the In predicate on the "verdict" field.
func VerdictIn(vs ...Verdict) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldIn(FieldVerdict, vs...))
}

// VerdictNotIn applies the NotIn predicate on the "verdict" field.
func VerdictNotIn(vs ...Verdict) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNotIn(FieldVerdict, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.CriticReview {
	return predicate.CriticReview(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldContainsFold(FieldReason, v))
}

// SuggestionsIsNil applies the IsNil predicate on the "suggestions" field.
func SuggestionsIsNil() predicate.CriticReview {
	return predicate.CriticReview(sql.FieldIsNull(FieldSuggestions))
}

// SuggestionsNotNil applies the NotNil predicate on the "suggestions" field.
func SuggestionsNotNil() predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNotNull(FieldSuggestions))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldLTE(FieldAttempt, v))
}

// CachedEQ applies the EQ predicate on the "cached" field.
func CachedEQ(v bool) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldCached, v))
}

// CachedNEQ applies the NEQ predicate on the "cached" field.
func CachedNEQ(v bool) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNEQ(FieldCached, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CriticReview {
	return predicate.CriticReview(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.CriticReview {
	return predicate.CriticReview(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.CriticReview {
	return predicate.CriticReview(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CriticReview) predicate.CriticReview {
	return predicate.CriticReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CriticReview) predicate.CriticReview {
	return predicate.CriticReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CriticReview) predicate.CriticReview {
	return predicate.CriticReview(sql.NotPredicates(p))
}
