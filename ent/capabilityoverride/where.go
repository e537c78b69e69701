// Code generated by ent, DO NOT EDIT.

package capabilityoverride

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentium/agentium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEQ(FieldAgentID, v))
}

// Capability applies equality check predicate on the "capability" field. It's identical to CapabilityEQ.
func Capability(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEQ(FieldCapability, v))
}

// GrantedBy applies equality check predicate on the "granted_by" field. It's identical to GrantedByEQ.
func GrantedBy(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEQ(FieldGrantedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldContainsFold(FieldAgentID, v))
}

// CapabilityEQ applies the EQ predicate on the "capability" field.
func CapabilityEQ(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEQ(FieldCapability, v))
}

// CapabilityNEQ applies the NEQ predicate on the "capability" field.
func CapabilityNEQ(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldNEQ(FieldCapability, v))
}

// CapabilityIn applies the In predicate on the "capability" field.
func CapabilityIn(vs ...string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldIn(FieldCapability, vs...))
}

// CapabilityNotIn applies the NotIn predicate on the "capability" field.
func CapabilityNotIn(vs ...string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldNotIn(FieldCapability, vs...))
}

// CapabilityGT applies the GT predicate on the "capability" field.
func CapabilityGT(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldGT(FieldCapability, v))
}

// CapabilityGTE applies the GTE predicate on the "capability" field.
func CapabilityGTE(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldGTE(FieldCapability, v))
}

// CapabilityLT applies the LT predicate on the "capability" field.
func CapabilityLT(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldLT(FieldCapability, v))
}

// CapabilityLTE applies the LTE predicate on the "capability" field.
func CapabilityLTE(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldLTE(FieldCapability, v))
}

// CapabilityContains applies the Contains predicate on the "capability" field.
func CapabilityContains(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldContains(FieldCapability, v))
}

// CapabilityHasPrefix applies the HasPrefix predicate on the "capability" field.
func CapabilityHasPrefix(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldHasPrefix(FieldCapability, v))
}

// CapabilityHasSuffix applies the HasSuffix predicate on the "capability" field.
func CapabilityHasSuffix(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldHasSuffix(FieldCapability, v))
}

// CapabilityEqualFold applies the EqualFold predicate on the "capability" field.
func CapabilityEqualFold(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEqualFold(FieldCapability, v))
}

// CapabilityContainsFold applies the ContainsFold predicate on the "capability" field.
func CapabilityContainsFold(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldContainsFold(FieldCapability, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldNotIn(FieldMode, vs...))
}

// GrantedByEQ applies the EQ predicate on the "granted_by" field.
func GrantedByEQ(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEQ(FieldGrantedBy, v))
}

// GrantedByNEQ applies the NEQ predicate on the "granted_by" field.
func GrantedByNEQ(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldNEQ(FieldGrantedBy, v))
}

// GrantedByIn applies the In predicate on the "granted_by" field.
func GrantedByIn(vs ...string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldIn(FieldGrantedBy, vs...))
}

// GrantedByNotIn applies the NotIn predicate on the "granted_by" field.
func GrantedByNotIn(vs ...string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldNotIn(FieldGrantedBy, vs...))
}

// GrantedByGT applies the GT predicate on the "granted_by" field.
func GrantedByGT(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldGT(FieldGrantedBy, v))
}

// GrantedByGTE applies the GTE predicate on the "granted_by" field.
func GrantedByGTE(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldGTE(FieldGrantedBy, v))
}

// GrantedByLT applies the LT predicate on the "granted_by" field.
func GrantedByLT(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldLT(FieldGrantedBy, v))
}

// GrantedByLTE applies the LTE predicate on the "granted_by" field.
func GrantedByLTE(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldLTE(FieldGrantedBy, v))
}

// GrantedByContains applies the Contains predicate on the "granted_by" field.
func GrantedByContains(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldContains(FieldGrantedBy, v))
}

// GrantedByHasPrefix applies the HasPrefix predicate on the "granted_by" field.
func GrantedByHasPrefix(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldHasPrefix(FieldGrantedBy, v))
}

// GrantedByHasSuffix applies the HasSuffix predicate on the "granted_by" field.
func GrantedByHasSuffix(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldHasSuffix(FieldGrantedBy, v))
}

// GrantedByIsNil applies the IsNil predicate on the "granted_by" field.
func GrantedByIsNil() predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldIsNull(FieldGrantedBy))
}

// GrantedByNotNil applies the NotNil predicate on the "granted_by" field.
func GrantedByNotNil() predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldNotNull(FieldGrantedBy))
}

// GrantedByEqualFold applies the EqualFold predicate on the "granted_by" field.
func GrantedByEqualFold(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEqualFold(FieldGrantedBy, v))
}

// GrantedByContainsFold applies the ContainsFold predicate on the "granted_by" field.
func GrantedByContainsFold(v string) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldContainsFold(FieldGrantedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.CapabilityOverride {
	return predicate.CapabilityOverride(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CapabilityOverride) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CapabilityOverride) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CapabilityOverride) predicate.CapabilityOverride {
	return predicate.CapabilityOverride(sql.NotPredicates(p))
}
