// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentium/agentium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldParentID, v))
}

// Persistent applies equality check predicate on the "persistent" field. It's identical to PersistentEQ.
func Persistent(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPersistent, v))
}

// Ethos applies equality check predicate on the "ethos" field. It's identical to EthosEQ.
func Ethos(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldEthos, v))
}

// PreferredConfigID applies equality check predicate on the "preferred_config_id" field. It's identical to PreferredConfigIDEQ.
func PreferredConfigID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPreferredConfigID, v))
}

// SavedConfigID applies equality check predicate on the "saved_config_id" field. It's identical to SavedConfigIDEQ.
func SavedConfigID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSavedConfigID, v))
}

// RecentViolations applies equality check predicate on the "recent_violations" field. It's identical to RecentViolationsEQ.
func RecentViolations(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRecentViolations, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldTier, vs...))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldParentID))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldParentID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldStatus, vs...))
}

// PersistentEQ applies the EQ predicate on the "persistent" field.
func PersistentEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPersistent, v))
}

// PersistentNEQ applies the NEQ predicate on the "persistent" field.
func PersistentNEQ(v bool) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldPersistent, v))
}

// EthosEQ applies the EQ predicate on the "ethos" field.
func EthosEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldEthos, v))
}

// EthosNEQ applies the NEQ predicate on the "ethos" field.
func EthosNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldEthos, v))
}

// EthosIn applies the In predicate on the "ethos" field.
func EthosIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldEthos, vs...))
}

// EthosNotIn applies the NotIn predicate on the "ethos" field.
func EthosNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldEthos, vs...))
}

// EthosGT applies the GT predicate on the "ethos" field.
func EthosGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldEthos, v))
}

// EthosGTE applies the GTE predicate on the "ethos" field.
func EthosGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldEthos, v))
}

// EthosLT applies the LT predicate on the "ethos" field.
func EthosLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldEthos, v))
}

// EthosLTE applies the LTE predicate on the "ethos" field.
func EthosLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldEthos, v))
}

// EthosContains applies the Contains predicate on the "ethos" field.
func EthosContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldEthos, v))
}

// EthosHasPrefix applies the HasPrefix predicate on the "ethos" field.
func EthosHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldEthos, v))
}

// EthosHasSuffix applies the HasSuffix predicate on the "ethos" field.
func EthosHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldEthos, v))
}

// EthosIsNil applies the IsNil predicate on the "ethos" field.
func EthosIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldEthos))
}

// EthosNotNil applies the NotNil predicate on the "ethos" field.
func EthosNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldEthos))
}

// EthosEqualFold applies the EqualFold predicate on the "ethos" field.
func EthosEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldEthos, v))
}

// EthosContainsFold applies the ContainsFold predicate on the "ethos" field.
func EthosContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldEthos, v))
}

// PreferredConfigIDEQ applies the EQ predicate on the "preferred_config_id" field.
func PreferredConfigIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPreferredConfigID, v))
}

// PreferredConfigIDNEQ applies the NEQ predicate on the "preferred_config_id" field.
func PreferredConfigIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldPreferredConfigID, v))
}

// PreferredConfigIDIn applies the In predicate on the "preferred_config_id" field.
func PreferredConfigIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldPreferredConfigID, vs...))
}

// PreferredConfigIDNotIn applies the NotIn predicate on the "preferred_config_id" field.
func PreferredConfigIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldPreferredConfigID, vs...))
}

// PreferredConfigIDGT applies the GT predicate on the "preferred_config_id" field.
func PreferredConfigIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldPreferredConfigID, v))
}

// PreferredConfigIDGTE applies the GTE predicate on the "preferred_config_id" field.
func PreferredConfigIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldPreferredConfigID, v))
}

// PreferredConfigIDLT applies the LT predicate on the "preferred_config_id" field.
func PreferredConfigIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldPreferredConfigID, v))
}

// PreferredConfigIDLTE applies the LTE predicate on the "preferred_config_id" field.
func PreferredConfigIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldPreferredConfigID, v))
}

// PreferredConfigIDContains applies the Contains predicate on the "preferred_config_id" field.
func PreferredConfigIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldPreferredConfigID, v))
}

// PreferredConfigIDHasPrefix applies the HasPrefix predicate on the "preferred_config_id" field.
func PreferredConfigIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldPreferredConfigID, v))
}

// PreferredConfigIDHasSuffix applies the HasSuffix predicate on the "preferred_config_id" field.
func PreferredConfigIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldPreferredConfigID, v))
}

// PreferredConfigIDIsNil applies the IsNil predicate on the "preferred_config_id" field.
func PreferredConfigIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldPreferredConfigID))
}

// PreferredConfigIDNotNil applies the NotNil predicate on the "preferred_config_id" field.
func PreferredConfigIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldPreferredConfigID))
}

// PreferredConfigIDEqualFold applies the EqualFold predicate on the "preferred_config_id" field.
func PreferredConfigIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldPreferredConfigID, v))
}

// PreferredConfigIDContainsFold applies the ContainsFold predicate on the "preferred_config_id" field.
func PreferredConfigIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldPreferredConfigID, v))
}

// SavedConfigIDEQ applies the EQ predicate on the "saved_config_id" field.
func SavedConfigIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSavedConfigID, v))
}

// SavedConfigIDNEQ applies the NEQ predicate on the "saved_config_id" field.
func SavedConfigIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldSavedConfigID, v))
}

// SavedConfigIDIn applies the In predicate on the "saved_config_id" field.
func SavedConfigIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldSavedConfigID, vs...))
}

// SavedConfigIDNotIn applies the NotIn predicate on the "saved_config_id" field.
func SavedConfigIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldSavedConfigID, vs...))
}

// SavedConfigIDGT applies the GT predicate on the "saved_config_id" field.
func SavedConfigIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldSavedConfigID, v))
}

// SavedConfigIDGTE applies the GTE predicate on the "saved_config_id" field.
func SavedConfigIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldSavedConfigID, v))
}

// SavedConfigIDLT applies the LT predicate on the "saved_config_id" field.
func SavedConfigIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldSavedConfigID, v))
}

// SavedConfigIDLTE applies the LTE predicate on the "saved_config_id" field.
func SavedConfigIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldSavedConfigID, v))
}

// SavedConfigIDContains applies the Contains predicate on the "saved_config_id" field.
func SavedConfigIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldSavedConfigID, v))
}

// SavedConfigIDHasPrefix applies the HasPrefix predicate on the "saved_config_id" field.
func SavedConfigIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldSavedConfigID, v))
}

// SavedConfigIDHasSuffix applies the HasSuffix predicate on the "saved_config_id" field.
func SavedConfigIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldSavedConfigID, v))
}

// SavedConfigIDIsNil applies the IsNil predicate on the "saved_config_id" field.
func SavedConfigIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldSavedConfigID))
}

// SavedConfigIDNotNil applies the NotNil predicate on the "saved_config_id" field.
func SavedConfigIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldSavedConfigID))
}

// SavedConfigIDEqualFold applies the EqualFold predicate on the "saved_config_id" field.
func SavedConfigIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldSavedConfigID, v))
}

// SavedConfigIDContainsFold applies the ContainsFold predicate on the "saved_config_id" field.
func SavedConfigIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldSavedConfigID, v))
}

// RecentViolationsEQ applies the EQ predicate on the "recent_violations" field.
func RecentViolationsEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldRecentViolations, v))
}

// RecentViolationsNEQ applies the NEQ predicate on the "recent_violations" field.
func RecentViolationsNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldRecentViolations, v))
}

// RecentViolationsIn applies the In predicate on the "recent_violations" field.
func RecentViolationsIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldRecentViolations, vs...))
}

// RecentViolationsNotIn applies the NotIn predicate on the "recent_violations" field.
func RecentViolationsNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldRecentViolations, vs...))
}

// RecentViolationsGT applies the GT predicate on the "recent_violations" field.
func RecentViolationsGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldRecentViolations, v))
}

// RecentViolationsGTE applies the GTE predicate on the "recent_violations" field.
func RecentViolationsGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldRecentViolations, v))
}

// RecentViolationsLT applies the LT predicate on the "recent_violations" field.
func RecentViolationsLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldRecentViolations, v))
}

// RecentViolationsLTE applies the LTE predicate on the "recent_violations" field.
func RecentViolationsLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldRecentViolations, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.Agent) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChildren applies the HasEdge predicate on the "children" edge.
func HasChildren() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildrenWith applies the HasEdge predicate on the "children" edge with a given conditions (other predicates).
func HasChildrenWith(preds ...predicate.Agent) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newChildrenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExecutions applies the HasEdge predicate on the "executions" edge.
func HasExecutions() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionsWith applies the HasEdge predicate on the "executions" edge with a given conditions (other predicates).
func HasExecutionsWith(preds ...predicate.Execution) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCapabilityOverrides applies the HasEdge predicate on the "capability_overrides" edge.
func HasCapabilityOverrides() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CapabilityOverridesTable, CapabilityOverridesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCapabilityOverridesWith applies the HasEdge predicate on the "capability_overrides" edge with a given conditions (other predicates).
func HasCapabilityOverridesWith(preds ...predicate.CapabilityOverride) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newCapabilityOverridesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasModelConfigs applies the HasEdge predicate on the "model_configs" edge.
func HasModelConfigs() predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ModelConfigsTable, ModelConfigsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasModelConfigsWith applies the HasEdge predicate on the "model_configs" edge with a given conditions (other predicates).
func HasModelConfigsWith(preds ...predicate.ModelConfig) predicate.Agent {
	return predicate.Agent(func(s *sql.Selector) {
		step := newModelConfigsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
