// Code generated by ent, DO NOT EDIT.

package sandboxrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentium/agentium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldContainsFold(FieldID, id))
}

// ContainerID applies equality check predicate on the "container_id" field. It's identical to ContainerIDEQ.
func ContainerID(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEQ(FieldContainerID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEQ(FieldAgentID, v))
}

// Image applies equality check predicate on the "image" field. It's identical to ImageEQ.
func Image(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEQ(FieldImage, v))
}

// NetworkMode applies equality check predicate on the "network_mode" field. It's identical to NetworkModeEQ.
func NetworkMode(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEQ(FieldNetworkMode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// DestroyedAt applies equality check predicate on the "destroyed_at" field. It's identical to DestroyedAtEQ.
func DestroyedAt(v time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEQ(FieldDestroyedAt, v))
}

// DestroyReason applies equality check predicate on the "destroy_reason" field. It's identical to DestroyReasonEQ.
func DestroyReason(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEQ(FieldDestroyReason, v))
}

// ContainerIDEQ applies the EQ predicate on the "container_id" field.
func ContainerIDEQ(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEQ(FieldContainerID, v))
}

// ContainerIDNEQ applies the NEQ predicate on the "container_id" field.
func ContainerIDNEQ(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNEQ(FieldContainerID, v))
}

// ContainerIDIn applies the In predicate on the "container_id" field.
func ContainerIDIn(vs ...string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldIn(FieldContainerID, vs...))
}

// ContainerIDNotIn applies the NotIn predicate on the "container_id" field.
func ContainerIDNotIn(vs ...string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNotIn(FieldContainerID, vs...))
}

// ContainerIDGT applies the GT predicate on the "container_id" field.
func ContainerIDGT(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldGT(FieldContainerID, v))
}

// ContainerIDGTE applies the GTE predicate on the "container_id" field.
func ContainerIDGTE(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldGTE(FieldContainerID, v))
}

// ContainerIDLT applies the LT predicate on the "container_id" field.
func ContainerIDLT(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldLT(FieldContainerID, v))
}

// ContainerIDLTE applies the LTE predicate on the "container_id" field.
func ContainerIDLTE(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldLTE(FieldContainerID, v))
}

// ContainerIDContains applies the Contains predicate on the "container_id" field.
func ContainerIDContains(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldContains(FieldContainerID, v))
}

// ContainerIDHasPrefix applies the HasPrefix predicate on the "container_id" field.
func ContainerIDHasPrefix(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldHasPrefix(FieldContainerID, v))
}

// ContainerIDHasSuffix applies the HasSuffix predicate on the "container_id" field.
func ContainerIDHasSuffix(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldHasSuffix(FieldContainerID, v))
}

// ContainerIDEqualFold applies the EqualFold predicate on the "container_id" field.
func ContainerIDEqualFold(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEqualFold(FieldContainerID, v))
}

// ContainerIDContainsFold applies the ContainsFold predicate on the "container_id" field.
func ContainerIDContainsFold(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldContainsFold(FieldContainerID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldContainsFold(FieldAgentID, v))
}

// ImageEQ applies the EQ predicate on the "image" field.
func ImageEQ(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEQ(FieldImage, v))
}

// ImageNEQ applies the NEQ predicate on the "image" field.
func ImageNEQ(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNEQ(FieldImage, v))
}

// ImageIn applies the In predicate on the "image" field.
func ImageIn(vs ...string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldIn(FieldImage, vs...))
}

// ImageNotIn applies the NotIn predicate on the "image" field.
func ImageNotIn(vs ...string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNotIn(FieldImage, vs...))
}

// ImageGT applies the GT predicate on the "image" field.
func ImageGT(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldGT(FieldImage, v))
}

// ImageGTE applies the GTE predicate on the "image" field.
func ImageGTE(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldGTE(FieldImage, v))
}

// ImageLT applies the LT predicate on the "image" field.
func ImageLT(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldLT(FieldImage, v))
}

// ImageLTE applies the LTE predicate on the "image" field.
func ImageLTE(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldLTE(FieldImage, v))
}

// ImageContains applies the Contains predicate on the "image" field.
func ImageContains(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldContains(FieldImage, v))
}

// ImageHasPrefix applies the HasPrefix predicate on the "image" field.
func ImageHasPrefix(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldHasPrefix(FieldImage, v))
}

// ImageHasSuffix applies the HasSuffix predicate on the "image" field.
func ImageHasSuffix(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldHasSuffix(FieldImage, v))
}

// ImageEqualFold applies the EqualFold predicate on the "image" field.
func ImageEqualFold(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEqualFold(FieldImage, v))
}

// ImageContainsFold applies the ContainsFold predicate on the "image" field.
func ImageContainsFold(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldContainsFold(FieldImage, v))
}

// NetworkModeEQ applies the EQ predicate on the "network_mode" field.
func NetworkModeEQ(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEQ(FieldNetworkMode, v))
}

// NetworkModeNEQ applies the NEQ predicate on the "network_mode" field.
func NetworkModeNEQ(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNEQ(FieldNetworkMode, v))
}

// NetworkModeIn applies the In predicate on the "network_mode" field.
func NetworkModeIn(vs ...string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldIn(FieldNetworkMode, vs...))
}

// NetworkModeNotIn applies the NotIn predicate on the "network_mode" field.
func NetworkModeNotIn(vs ...string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNotIn(FieldNetworkMode, vs...))
}

// NetworkModeGT applies the GT predicate on the "network_mode" field.
func NetworkModeGT(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldGT(FieldNetworkMode, v))
}

// NetworkModeGTE applies the GTE predicate on the "network_mode" field.
func NetworkModeGTE(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldGTE(FieldNetworkMode, v))
}

// NetworkModeLT applies the LT predicate on the "network_mode" field.
func NetworkModeLT(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldLT(FieldNetworkMode, v))
}

// NetworkModeLTE applies the LTE predicate on the "network_mode" field.
func NetworkModeLTE(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldLTE(FieldNetworkMode, v))
}

// NetworkModeContains applies the Contains predicate on the "network_mode" field.
func NetworkModeContains(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldContains(FieldNetworkMode, v))
}

// NetworkModeHasPrefix applies the HasPrefix predicate on the "network_mode" field.
func NetworkModeHasPrefix(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldHasPrefix(FieldNetworkMode, v))
}

// NetworkModeHasSuffix applies the HasSuffix predicate on the "network_mode" field.
func NetworkModeHasSuffix(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldHasSuffix(FieldNetworkMode, v))
}

// NetworkModeEqualFold applies the EqualFold predicate on the "network_mode" field.
func NetworkModeEqualFold(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEqualFold(FieldNetworkMode, v))
}

// NetworkModeContainsFold applies the ContainsFold predicate on the "network_mode" field.
func NetworkModeContainsFold(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldContainsFold(FieldNetworkMode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// DestroyedAtEQ applies the EQ predicate on the "destroyed_at" field.
func DestroyedAtEQ(v time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEQ(FieldDestroyedAt, v))
}

// DestroyedAtNEQ applies the NEQ predicate on the "destroyed_at" field.
func DestroyedAtNEQ(v time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNEQ(FieldDestroyedAt, v))
}

// DestroyedAtIn applies the In predicate on the "destroyed_at" field.
func DestroyedAtIn(vs ...time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldIn(FieldDestroyedAt, vs...))
}

// DestroyedAtNotIn applies the NotIn predicate on the "destroyed_at" field.
func DestroyedAtNotIn(vs ...time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNotIn(FieldDestroyedAt, vs...))
}

// DestroyedAtGT applies the GT predicate on the "destroyed_at" field.
func DestroyedAtGT(v time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldGT(FieldDestroyedAt, v))
}

// DestroyedAtGTE applies the GTE predicate on the "destroyed_at" field.
func DestroyedAtGTE(v time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldGTE(FieldDestroyedAt, v))
}

// DestroyedAtLT applies the LT predicate on the "destroyed_at" field.
func DestroyedAtLT(v time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldLT(FieldDestroyedAt, v))
}

// DestroyedAtLTE applies the LTE predicate on the "destroyed_at" field.
func DestroyedAtLTE(v time.Time) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldLTE(FieldDestroyedAt, v))
}

// DestroyedAtIsNil applies the IsNil predicate on the "destroyed_at" field.
func DestroyedAtIsNil() predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldIsNull(FieldDestroyedAt))
}

// DestroyedAtNotNil applies the NotNil predicate on the "destroyed_at" field.
func DestroyedAtNotNil() predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNotNull(FieldDestroyedAt))
}

// DestroyReasonEQ applies the EQ predicate on the "destroy_reason" field.
func DestroyReasonEQ(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEQ(FieldDestroyReason, v))
}

// DestroyReasonNEQ applies the NEQ predicate on the "destroy_reason" field.
func DestroyReasonNEQ(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNEQ(FieldDestroyReason, v))
}

// DestroyReasonIn applies the In predicate on the "destroy_reason" field.
func DestroyReasonIn(vs ...string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldIn(FieldDestroyReason, vs...))
}

// DestroyReasonNotIn applies the NotIn predicate on the "destroy_reason" field.
func DestroyReasonNotIn(vs ...string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNotIn(FieldDestroyReason, vs...))
}

// DestroyReasonGT applies the GT predicate on the "destroy_reason" field.
func DestroyReasonGT(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldGT(FieldDestroyReason, v))
}

// DestroyReasonGTE applies the GTE predicate on the "destroy_reason" field.
func DestroyReasonGTE(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldGTE(FieldDestroyReason, v))
}

// DestroyReasonLT applies the LT predicate on the "destroy_reason" field.
func DestroyReasonLT(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldLT(FieldDestroyReason, v))
}

// DestroyReasonLTE applies the LTE predicate on the "destroy_reason" field.
func DestroyReasonLTE(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldLTE(FieldDestroyReason, v))
}

// DestroyReasonContains applies the Contains predicate on the "destroy_reason" field.
func DestroyReasonContains(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldContains(FieldDestroyReason, v))
}

// DestroyReasonHasPrefix applies the HasPrefix predicate on the "destroy_reason" field.
func DestroyReasonHasPrefix(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldHasPrefix(FieldDestroyReason, v))
}

// DestroyReasonHasSuffix applies the HasSuffix predicate on the "destroy_reason" field.
func DestroyReasonHasSuffix(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldHasSuffix(FieldDestroyReason, v))
}

// DestroyReasonIsNil applies the IsNil predicate on the "destroy_reason" field.
func DestroyReasonIsNil() predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldIsNull(FieldDestroyReason))
}

// DestroyReasonNotNil applies the NotNil predicate on the "destroy_reason" field.
func DestroyReasonNotNil() predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldNotNull(FieldDestroyReason))
}

// DestroyReasonEqualFold applies the EqualFold predicate on the "destroy_reason" field.
func DestroyReasonEqualFold(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldEqualFold(FieldDestroyReason, v))
}

// DestroyReasonContainsFold applies the ContainsFold predicate on the "destroy_reason" field.
func DestroyReasonContainsFold(v string) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.FieldContainsFold(FieldDestroyReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SandboxRecord) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SandboxRecord) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SandboxRecord) predicate.SandboxRecord {
	return predicate.SandboxRecord(sql.NotPredicates(p))
}
