// Code generated by ent, DO NOT EDIT.

package apikey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentium/agentium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.APIKey {
	return predicate.APIKey(sql.FieldContainsFold(FieldID, id))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldProvider, v))
}

// EncryptedSecret applies equality check predicate on the "encrypted_secret" field. It's identical to EncryptedSecretEQ.
func EncryptedSecret(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldEncryptedSecret, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldPriority, v))
}

// ConsecutiveFailures applies equality check predicate on the "consecutive_failures" field. It's identical to ConsecutiveFailuresEQ.
func ConsecutiveFailures(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// LastFailureAt applies equality check predicate on the "last_failure_at" field. It's identical to LastFailureAtEQ.
func LastFailureAt(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldLastFailureAt, v))
}

// CooldownUntil applies equality check predicate on the "cooldown_until" field. It's identical to CooldownUntilEQ.
func CooldownUntil(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldCooldownUntil, v))
}

// MonthlyBudget applies equality check predicate on the "monthly_budget" field. It's identical to MonthlyBudgetEQ.
func MonthlyBudget(v float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldMonthlyBudget, v))
}

// CurrentSpend applies equality check predicate on the "current_spend" field. It's identical to CurrentSpendEQ.
func CurrentSpend(v float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldCurrentSpend, v))
}

// LastSpendReset applies equality check predicate on the "last_spend_reset" field. It's identical to LastSpendResetEQ.
func LastSpendReset(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldLastSpendReset, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldCreatedAt, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldContainsFold(FieldProvider, v))
}

// EncryptedSecretEQ applies the EQ predicate on the "encrypted_secret" field.
func EncryptedSecretEQ(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldEncryptedSecret, v))
}

// EncryptedSecretNEQ applies the NEQ predicate on the "encrypted_secret" field.
func EncryptedSecretNEQ(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldEncryptedSecret, v))
}

// EncryptedSecretIn applies the In predicate on the "encrypted_secret" field.
func EncryptedSecretIn(vs ...string) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldEncryptedSecret, vs...))
}

// EncryptedSecretNotIn applies the NotIn predicate on the "encrypted_secret" field.
func EncryptedSecretNotIn(vs ...string) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldEncryptedSecret, vs...))
}

// EncryptedSecretGT applies the GT predicate on the "encrypted_secret" field.
func EncryptedSecretGT(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldEncryptedSecret, v))
}

// EncryptedSecretGTE applies the GTE predicate on the "encrypted_secret" field.
func EncryptedSecretGTE(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldEncryptedSecret, v))
}

// EncryptedSecretLT applies the LT predicate on the "encrypted_secret" field.
func EncryptedSecretLT(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldEncryptedSecret, v))
}

// EncryptedSecretLTE applies the LTE predicate on the "encrypted_secret" field.
func EncryptedSecretLTE(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldEncryptedSecret, v))
}

// EncryptedSecretContains applies the Contains predicate on the "encrypted_secret" field.
func EncryptedSecretContains(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldContains(FieldEncryptedSecret, v))
}

// EncryptedSecretHasPrefix applies the HasPrefix predicate on the "encrypted_secret" field.
func EncryptedSecretHasPrefix(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldHasPrefix(FieldEncryptedSecret, v))
}

// EncryptedSecretHasSuffix applies the HasSuffix predicate on the "encrypted_secret" field.
func EncryptedSecretHasSuffix(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldHasSuffix(FieldEncryptedSecret, v))
}

// EncryptedSecretEqualFold applies the EqualFold predicate on the "encrypted_secret" field.
func EncryptedSecretEqualFold(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldEqualFold(FieldEncryptedSecret, v))
}

// EncryptedSecretContainsFold applies the ContainsFold predicate on the "encrypted_secret" field.
func EncryptedSecretContainsFold(v string) predicate.APIKey {
	return predicate.APIKey(sql.FieldContainsFold(FieldEncryptedSecret, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldPriority, v))
}

// ConsecutiveFailuresEQ applies the EQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresEQ(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresNEQ applies the NEQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNEQ(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresIn applies the In predicate on the "consecutive_failures" field.
func ConsecutiveFailuresIn(vs ...int) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresNotIn applies the NotIn predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNotIn(vs ...int) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresGT applies the GT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGT(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresGTE applies the GTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGTE(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLT applies the LT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLT(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLTE applies the LTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLTE(v int) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldConsecutiveFailures, v))
}

// LastFailureAtEQ applies the EQ predicate on the "last_failure_at" field.
func LastFailureAtEQ(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldLastFailureAt, v))
}

// LastFailureAtNEQ applies the NEQ predicate on the "last_failure_at" field.
func LastFailureAtNEQ(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldLastFailureAt, v))
}

// LastFailureAtIn applies the In predicate on the "last_failure_at" field.
func LastFailureAtIn(vs ...time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldLastFailureAt, vs...))
}

// LastFailureAtNotIn applies the NotIn predicate on the "last_failure_at" field.
func LastFailureAtNotIn(vs ...time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldLastFailureAt, vs...))
}

// LastFailureAtGT applies the GT predicate on the "last_failure_at" field.
func LastFailureAtGT(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldLastFailureAt, v))
}

// LastFailureAtGTE applies the GTE predicate on the "last_failure_at" field.
func LastFailureAtGTE(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldLastFailureAt, v))
}

// LastFailureAtLT applies the LT predicate on the "last_failure_at" field.
func LastFailureAtLT(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldLastFailureAt, v))
}

// LastFailureAtLTE applies the LTE predicate on the "last_failure_at" field.
func LastFailureAtLTE(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldLastFailureAt, v))
}

// LastFailureAtIsNil applies the IsNil predicate on the "last_failure_at" field.
func LastFailureAtIsNil() predicate.APIKey {
	return predicate.APIKey(sql.FieldIsNull(FieldLastFailureAt))
}

// LastFailureAtNotNil applies the NotNil predicate on the "last_failure_at" field.
func LastFailureAtNotNil() predicate.APIKey {
	return predicate.APIKey(sql.FieldNotNull(FieldLastFailureAt))
}

// CooldownUntilEQ applies the EQ predicate on the "cooldown_until" field.
func CooldownUntilEQ(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldCooldownUntil, v))
}

// CooldownUntilNEQ applies the NEQ predicate on the "cooldown_until" field.
func CooldownUntilNEQ(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldCooldownUntil, v))
}

// CooldownUntilIn applies the In predicate on the "cooldown_until" field.
func CooldownUntilIn(vs ...time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldCooldownUntil, vs...))
}

// CooldownUntilNotIn applies the NotIn predicate on the "cooldown_until" field.
func CooldownUntilNotIn(vs ...time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldCooldownUntil, vs...))
}

// CooldownUntilGT applies the GT predicate on the "cooldown_until" field.
func CooldownUntilGT(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldCooldownUntil, v))
}

// CooldownUntilGTE applies the GTE predicate on the "cooldown_until" field.
func CooldownUntilGTE(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldCooldownUntil, v))
}

// CooldownUntilLT applies the LT predicate on the "cooldown_until" field.
func CooldownUntilLT(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldCooldownUntil, v))
}

// CooldownUntilLTE applies the LTE predicate on the "cooldown_until" field.
func CooldownUntilLTE(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldCooldownUntil, v))
}

// CooldownUntilIsNil applies the IsNil predicate on the "cooldown_until" field.
func CooldownUntilIsNil() predicate.APIKey {
	return predicate.APIKey(sql.FieldIsNull(FieldCooldownUntil))
}

// CooldownUntilNotNil applies the NotNil predicate on the "cooldown_until" field.
func CooldownUntilNotNil() predicate.APIKey {
	return predicate.APIKey(sql.FieldNotNull(FieldCooldownUntil))
}

// MonthlyBudgetEQ applies the EQ predicate on the "monthly_budget" field.
func MonthlyBudgetEQ(v float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldMonthlyBudget, v))
}

// MonthlyBudgetNEQ applies the NEQ predicate on the "monthly_budget" field.
func MonthlyBudgetNEQ(v float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldMonthlyBudget, v))
}

// MonthlyBudgetIn applies the In predicate on the "monthly_budget" field.
func MonthlyBudgetIn(vs ...float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldMonthlyBudget, vs...))
}

// MonthlyBudgetNotIn applies the NotIn predicate on the "monthly_budget" field.
func MonthlyBudgetNotIn(vs ...float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldMonthlyBudget, vs...))
}

// MonthlyBudgetGT applies the GT predicate on the "monthly_budget" field.
func MonthlyBudgetGT(v float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldMonthlyBudget, v))
}

// MonthlyBudgetGTE applies the GTE predicate on the "monthly_budget" field.
func MonthlyBudgetGTE(v float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldMonthlyBudget, v))
}

// MonthlyBudgetLT applies the LT predicate on the "monthly_budget" field.
func MonthlyBudgetLT(v float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldMonthlyBudget, v))
}

// MonthlyBudgetLTE applies the LTE predicate on the "monthly_budget" field.
func MonthlyBudgetLTE(v float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldMonthlyBudget, v))
}

// CurrentSpendEQ applies the EQ predicate on the "current_spend" field.
func CurrentSpendEQ(v float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldCurrentSpend, v))
}

// CurrentSpendNEQ applies the NEQ predicate on the "current_spend" field.
func CurrentSpendNEQ(v float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldCurrentSpend, v))
}

// CurrentSpendIn applies the In predicate on the "current_spend" field.
func CurrentSpendIn(vs ...float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldCurrentSpend, vs...))
}

// CurrentSpendNotIn applies the NotIn predicate on the "current_spend" field.
func CurrentSpendNotIn(vs ...float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldCurrentSpend, vs...))
}

// CurrentSpendGT applies the GT predicate on the "current_spend" field.
func CurrentSpendGT(v float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldCurrentSpend, v))
}

// CurrentSpendGTE applies the GTE predicate on the "current_spend" field.
func CurrentSpendGTE(v float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldCurrentSpend, v))
}

// CurrentSpendLT applies the LT predicate on the "current_spend" field.
func CurrentSpendLT(v float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldCurrentSpend, v))
}

// CurrentSpendLTE applies the LTE predicate on the "current_spend" field.
func CurrentSpendLTE(v float64) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldCurrentSpend, v))
}

// LastSpendResetEQ applies the EQ predicate on the "last_spend_reset" field.
func LastSpendResetEQ(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldLastSpendReset, v))
}

// LastSpendResetNEQ applies the NEQ predicate on the "last_spend_reset" field.
func LastSpendResetNEQ(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldLastSpendReset, v))
}

// LastSpendResetIn applies the In predicate on the "last_spend_reset" field.
func LastSpendResetIn(vs ...time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldLastSpendReset, vs...))
}

// LastSpendResetNotIn applies the NotIn predicate on the "last_spend_reset" field.
func LastSpendResetNotIn(vs ...time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldLastSpendReset, vs...))
}

// LastSpendResetGT applies the GT predicate on the "last_spend_reset" field.
func LastSpendResetGT(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldLastSpendReset, v))
}

// LastSpendResetGTE applies the GTE predicate on the "last_spend_reset" field.
func LastSpendResetGTE(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldLastSpendReset, v))
}

// LastSpendResetLT applies the LT predicate on the "last_spend_reset" field.
func LastSpendResetLT(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldLastSpendReset, v))
}

// LastSpendResetLTE applies the LTE predicate on the "last_spend_reset" field.
func LastSpendResetLTE(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldLastSpendReset, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldActive, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.APIKey {
	return predicate.APIKey(sql.FieldLTE(FieldCreatedAt, v))
}

// HasUsageLogs applies the HasEdge predicate on the "usage_logs" edge.
func HasUsageLogs() predicate.APIKey {
	return predicate.APIKey(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UsageLogsTable, UsageLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUsageLogsWith applies the HasEdge predicate on the "usage_logs" edge with a given conditions (other predicates).
func HasUsageLogsWith(preds ...predicate.APIUsageLog) predicate.APIKey {
	return predicate.APIKey(func(s *sql.Selector) {
		step := newUsageLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.APIKey) predicate.APIKey {
	return predicate.APIKey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.APIKey) predicate.APIKey {
	return predicate.APIKey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.APIKey) predicate.APIKey {
	return predicate.APIKey(sql.NotPredicates(p))
}
