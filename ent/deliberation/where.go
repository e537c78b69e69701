// Code generated by ent, DO NOT EDIT.

package deliberation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentium/agentium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldTaskID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldTopic, v))
}

// OpenedBy applies equality check predicate on the "opened_by" field. It's identical to OpenedByEQ.
func OpenedBy(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldOpenedBy, v))
}

// Resolution applies equality check predicate on the "resolution" field. It's identical to ResolutionEQ.
func Resolution(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldResolution, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldResolvedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotNull(FieldTaskID))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContainsFold(FieldTaskID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContainsFold(FieldTopic, v))
}

// OpenedByEQ applies the EQ predicate on the "opened_by" field.
func OpenedByEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldOpenedBy, v))
}

// OpenedByNEQ applies the NEQ predicate on the "opened_by" field.
func OpenedByNEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldOpenedBy, v))
}

// OpenedByIn applies the In predicate on the "opened_by" field.
func OpenedByIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldOpenedBy, vs...))
}

// OpenedByNotIn applies the NotIn predicate on the "opened_by" field.
func OpenedByNotIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldOpenedBy, vs...))
}

// OpenedByGT applies the GT predicate on the "opened_by" field.
func OpenedByGT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldOpenedBy, v))
}

// OpenedByGTE applies the GTE predicate on the "opened_by" field.
func OpenedByGTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldOpenedBy, v))
}

// OpenedByLT applies the LT predicate on the "opened_by" field.
func OpenedByLT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldOpenedBy, v))
}

// OpenedByLTE applies the LTE predicate on the "opened_by" field.
func OpenedByLTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldOpenedBy, v))
}

// OpenedByContains applies the Contains predicate on the "opened_by" field.
func OpenedByContains(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContains(FieldOpenedBy, v))
}

// OpenedByHasPrefix applies the HasPrefix predicate on the "opened_by" field.
func OpenedByHasPrefix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasPrefix(FieldOpenedBy, v))
}

// OpenedByHasSuffix applies the HasSuffix predicate on the "opened_by" field.
func OpenedByHasSuffix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasSuffix(FieldOpenedBy, v))
}

// OpenedByEqualFold applies the EqualFold predicate on the "opened_by" field.
func OpenedByEqualFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEqualFold(FieldOpenedBy, v))
}

// OpenedByContainsFold applies the ContainsFold predicate on the "opened_by" field.
func OpenedByContainsFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContainsFold(FieldOpenedBy, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldStatus, vs...))
}

// ResolutionEQ applies the EQ predicate on the "resolution" field.
func ResolutionEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldResolution, v))
}

// ResolutionNEQ applies the NEQ predicate on the "resolution" field.
func ResolutionNEQ(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldResolution, v))
}

// ResolutionIn applies the In predicate on the "resolution" field.
func ResolutionIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldResolution, vs...))
}

// ResolutionNotIn applies the NotIn predicate on the "resolution" field.
func ResolutionNotIn(vs ...string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldResolution, vs...))
}

// ResolutionGT applies the GT predicate on the "resolution" field.
func ResolutionGT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldResolution, v))
}

// ResolutionGTE applies the GTE predicate on the "resolution" field.
func ResolutionGTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldResolution, v))
}

// ResolutionLT applies the LT predicate on the "resolution" field.
func ResolutionLT(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldResolution, v))
}

// ResolutionLTE applies the LTE predicate on the "resolution" field.
func ResolutionLTE(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldResolution, v))
}

// ResolutionContains applies the Contains predicate on the "resolution" field.
func ResolutionContains(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContains(FieldResolution, v))
}

// ResolutionHasPrefix applies the HasPrefix predicate on the "resolution" field.
func ResolutionHasPrefix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasPrefix(FieldResolution, v))
}

// ResolutionHasSuffix applies the HasSuffix predicate on the "resolution" field.
func ResolutionHasSuffix(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldHasSuffix(FieldResolution, v))
}

// ResolutionIsNil applies the IsNil predicate on the "resolution" field.
func ResolutionIsNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIsNull(FieldResolution))
}

// ResolutionNotNil applies the NotNil predicate on the "resolution" field.
func ResolutionNotNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotNull(FieldResolution))
}

// ResolutionEqualFold applies the EqualFold predicate on the "resolution" field.
func ResolutionEqualFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEqualFold(FieldResolution, v))
}

// ResolutionContainsFold applies the ContainsFold predicate on the "resolution" field.
func ResolutionContainsFold(v string) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldContainsFold(FieldResolution, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.Deliberation {
	return predicate.Deliberation(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.Deliberation {
	return predicate.Deliberation(sql.FieldNotNull(FieldResolvedAt))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.Deliberation {
	return predicate.Deliberation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.Deliberation {
	return predicate.Deliberation(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVotes applies the HasEdge predicate on the "votes" edge.
func HasVotes() predicate.Deliberation {
	return predicate.Deliberation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VotesTable, VotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVotesWith applies the HasEdge predicate on the "votes" edge with a given conditions (other predicates).
func HasVotesWith(preds ...predicate.Vote) predicate.Deliberation {
	return predicate.Deliberation(func(s *sql.Selector) {
		step := newVotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Deliberation) predicate.Deliberation {
	return predicate.Deliberation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Deliberation) predicate.Deliberation {
	return predicate.Deliberation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Deliberation) predicate.Deliberation {
	return predicate.Deliberation(sql.NotPredicates(p))
}
