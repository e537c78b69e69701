// Code generated by ent, DO NOT EDIT.

package vote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentium/agentium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Vote {
	return predicate.Vote(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Vote {
	return predicate.Vote(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Vote {
	return predicate.Vote(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Vote {
	return predicate.Vote(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Vote {
	return predicate.Vote(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Vote {
	return predicate.Vote(sql.FieldContainsFold(FieldID, id))
}

// DeliberationID applies equality check predicate on the "deliberation_id" field. It's identical to DeliberationIDEQ.
func DeliberationID(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldDeliberationID, v))
}

// VoterID applies equality check predicate on the "voter_id" field. It's identical to VoterIDEQ.
func VoterID(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldVoterID, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldRationale, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldCreatedAt, v))
}

// DeliberationIDEQ applies the EQ predicate on the "deliberation_id" field.
func DeliberationIDEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldDeliberationID, v))
}

// DeliberationIDNEQ applies the NEQ predicate on the "deliberation_id" field.
func DeliberationIDNEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldDeliberationID, v))
}

// DeliberationIDIn applies the In predicate on the "deliberation_id" field.
func DeliberationIDIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldDeliberationID, vs...))
}

// DeliberationIDNotIn applies the NotIn predicate on the "deliberation_id" field.
func DeliberationIDNotIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldDeliberationID, vs...))
}

// DeliberationIDGT applies the GT predicate on the "deliberation_id" field.
func DeliberationIDGT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGT(FieldDeliberationID, v))
}

// DeliberationIDGTE applies the GTE predicate on the "deliberation_id" field.
func DeliberationIDGTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGTE(FieldDeliberationID, v))
}

// DeliberationIDLT applies the LT predicate on the "deliberation_id" field.
func DeliberationIDLT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLT(FieldDeliberationID, v))
}

// DeliberationIDLTE applies the LTE predicate on the "deliberation_id" field.
func DeliberationIDLTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLTE(FieldDeliberationID, v))
}

// DeliberationIDContains applies the Contains predicate on the "deliberation_id" field.
func DeliberationIDContains(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContains(FieldDeliberationID, v))
}

// DeliberationIDHasPrefix applies the HasPrefix predicate on the "deliberation_id" field.
func DeliberationIDHasPrefix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasPrefix(FieldDeliberationID, v))
}

// DeliberationIDHasSuffix applies the HasSuffix predicate on the "deliberation_id" field.
func DeliberationIDHasSuffix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasSuffix(FieldDeliberationID, v))
}

// DeliberationIDEqualFold applies the EqualFold predicate on the "deliberation_id" field.
func DeliberationIDEqualFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEqualFold(FieldDeliberationID, v))
}

// DeliberationIDContainsFold applies the ContainsFold predicate on the "deliberation_id" field.
func DeliberationIDContainsFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContainsFold(FieldDeliberationID, v))
}

// VoterIDEQ applies the EQ predicate on the "voter_id" field.
func VoterIDEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldVoterID, v))
}

// VoterIDNEQ applies the NEQ predicate on the "voter_id" field.
func VoterIDNEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldVoterID, v))
}

// VoterIDIn applies the In predicate on the "voter_id" field.
func VoterIDIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldVoterID, vs...))
}

// VoterIDNotIn applies the NotIn predicate on the "voter_id" field.
func VoterIDNotIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldVoterID, vs...))
}

// VoterIDGT applies the GT predicate on the "voter_id" field.
func VoterIDGT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGT(FieldVoterID, v))
}

// VoterIDGTE applies the GTE predicate on the "voter_id" field.
func VoterIDGTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGTE(FieldVoterID, v))
}

// VoterIDLT applies the LT predicate on the "voter_id" field.
func VoterIDLT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLT(FieldVoterID, v))
}

// VoterIDLTE applies the LTE predicate on the "voter_id" field.
func VoterIDLTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLTE(FieldVoterID, v))
}

// VoterIDContains applies the Contains predicate on the "voter_id" field.
func VoterIDContains(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContains(FieldVoterID, v))
}

// VoterIDHasPrefix applies the HasPrefix predicate on the "voter_id" field.
func VoterIDHasPrefix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasPrefix(FieldVoterID, v))
}

// VoterIDHasSuffix applies the HasSuffix predicate on the "voter_id" field.
func VoterIDHasSuffix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasSuffix(FieldVoterID, v))
}

// VoterIDEqualFold applies the EqualFold predicate on the "voter_id" field.
func VoterIDEqualFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEqualFold(FieldVoterID, v))
}

// VoterIDContainsFold applies the ContainsFold predicate on the "voter_id" field.
func VoterIDContainsFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContainsFold(FieldVoterID, v))
}

// ChoiceEQ applies the EQ predicate on the "choice" field.
func ChoiceEQ(v Choice) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldChoice, v))
}

// ChoiceNEQ applies the NEQ predicate on the "choice" field.
func ChoiceNEQ(v Choice) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldChoice, v))
}

// ChoiceIn applies the In predicate on the "choice" field.
func ChoiceIn(vs ...Choice) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldChoice, vs...))
}

// ChoiceNotIn applies the NotIn predicate on the "choice" field.
func ChoiceNotIn(vs ...Choice) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldChoice, vs...))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.Vote {
	return predicate.Vote(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.Vote {
	return predicate.Vote(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleIsNil applies the IsNil predicate on the "rationale" field.
func RationaleIsNil() predicate.Vote {
	return predicate.Vote(sql.FieldIsNull(FieldRationale))
}

// RationaleNotNil applies the NotNil predicate on the "rationale" field.
func RationaleNotNil() predicate.Vote {
	return predicate.Vote(sql.FieldNotNull(FieldRationale))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.Vote {
	return predicate.Vote(sql.FieldContainsFold(FieldRationale, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Vote {
	return predicate.Vote(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDeliberation applies the HasEdge predicate on the "deliberation" edge.
func HasDeliberation() predicate.Vote {
	return predicate.Vote(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DeliberationTable, DeliberationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDeliberationWith applies the HasEdge predicate on the "deliberation" edge with a given conditions (other predicates).
func HasDeliberationWith(preds ...predicate.Deliberation) predicate.Vote {
	return predicate.Vote(func(s *sql.Selector) {
		step := newDeliberationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Vote) predicate.Vote {
	return predicate.Vote(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Vote) predicate.Vote {
	return predicate.Vote(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Vote) predicate.Vote {
	return predicate.Vote(sql.NotPredicates(p))
}
