// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentium/agentium/ent/agent"
	"github.com/agentium/agentium/ent/apikey"
	"github.com/agentium/agentium/ent/apiusagelog"
	"github.com/agentium/agentium/ent/auditlog"
	"github.com/agentium/agentium/ent/capabilityoverride"
	"github.com/agentium/agentium/ent/criticreview"
	"github.com/agentium/agentium/ent/deliberation"
	"github.com/agentium/agentium/ent/execution"
	"github.com/agentium/agentium/ent/modelconfig"
	"github.com/agentium/agentium/ent/predicate"
	"github.com/agentium/agentium/ent/sandboxrecord"
	"github.com/agentium/agentium/ent/systemsetting"
	"github.com/agentium/agentium/ent/task"
	"github.com/agentium/agentium/ent/taskevent"
	"github.com/agentium/agentium/ent/vote"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAPIKey             = "APIKey"
	TypeAPIUsageLog        = "APIUsageLog"
	TypeAgent              = "Agent"
	TypeAuditLog           = "AuditLog"
	TypeCapabilityOverride = "CapabilityOverride"
	TypeCriticReview       = "CriticReview"
	TypeDeliberation       = "Deliberation"
	TypeExecution          = "Execution"
	TypeModelConfig        = "ModelConfig"
	TypeSandboxRecord      = "SandboxRecord"
	TypeSystemSetting      = "SystemSetting"
	TypeTask               = "Task"
	TypeTaskEvent          = "TaskEvent"
	TypeVote               = "Vote"
)

// APIKeyMutation represents an operation that mutates the APIKey nodes in the graph.
type APIKeyMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	provider                *string
	encrypted_secret        *string
	priority                *int
	addpriority             *int
	consecutive_failures    *int
	addconsecutive_failures *int
	last_failure_at         *time.Time
	cooldown_until          *time.Time
	monthly_budget          *float64
	addmonthly_budget       *float64
	current_spend           *float64
	addcurrent_spend        *float64
	last_spend_reset        *time.Time
	active                  *bool
	status                  *apikey.Status
	created_at              *time.Time
	clearedFields           map[string]struct{}
	usage_logs              map[string]struct{}
	removedusage_logs       map[string]struct{}
	clearedusage_logs       bool
	done                    bool
	oldValue                func(context.Context) (*APIKey, error)
	predicates              []predicate.APIKey
}

var _ ent.Mutation = (*APIKeyMutation)(nil)

// apikeyOption allows management of the mutation configuration using functional options.
type apikeyOption func(*APIKeyMutation)

// newAPIKeyMutation creates new mutation for the APIKey entity.
func newAPIKeyMutation(c config, op Op, opts ...apikeyOption) *APIKeyMutation {
	m := &APIKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeAPIKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAPIKeyID sets the ID field of the mutation.
func withAPIKeyID(id string) apikeyOption {
	return func(m *APIKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *APIKey
		)
		m.oldValue = func(ctx context.Context) (*APIKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().APIKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAPIKey sets the old APIKey of the mutation.
func withAPIKey(node *APIKey) apikeyOption {
	return func(m *APIKeyMutation) {
		m.oldValue = func(context.Context) (*APIKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m APIKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m APIKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of APIKey entities.
func (m *APIKeyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *APIKeyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *APIKeyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().APIKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *APIKeyMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *APIKeyMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *APIKeyMutation) ResetProvider() {
	m.provider = nil
}

// SetEncryptedSecret sets the "encrypted_secret" field.
func (m *APIKeyMutation) SetEncryptedSecret(s string) {
	m.encrypted_secret = &s
}

// EncryptedSecret returns the value of the "encrypted_secret" field in the mutation.
func (m *APIKeyMutation) EncryptedSecret() (r string, exists bool) {
	v := m.encrypted_secret
	if v == nil {
		return
	}
	return *v, true
}

// OldEncryptedSecret returns the old "encrypted_secret" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldEncryptedSecret(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncryptedSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncryptedSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncryptedSecret: %w", err)
	}
	return oldValue.EncryptedSecret, nil
}

// ResetEncryptedSecret resets all changes to the "encrypted_secret" field.
func (m *APIKeyMutation) ResetEncryptedSecret() {
	m.encrypted_secret = nil
}

// SetPriority sets the "priority" field.
func (m *APIKeyMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *APIKeyMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *APIKeyMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *APIKeyMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *APIKeyMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (m *APIKeyMutation) SetConsecutiveFailures(i int) {
	m.consecutive_failures = &i
	m.addconsecutive_failures = nil
}

// ConsecutiveFailures returns the value of the "consecutive_failures" field in the mutation.
func (m *APIKeyMutation) ConsecutiveFailures() (r int, exists bool) {
	v := m.consecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveFailures returns the old "consecutive_failures" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldConsecutiveFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveFailures: %w", err)
	}
	return oldValue.ConsecutiveFailures, nil
}

// AddConsecutiveFailures adds i to the "consecutive_failures" field.
func (m *APIKeyMutation) AddConsecutiveFailures(i int) {
	if m.addconsecutive_failures != nil {
		*m.addconsecutive_failures += i
	} else {
		m.addconsecutive_failures = &i
	}
}

// AddedConsecutiveFailures returns the value that was added to the "consecutive_failures" field in this mutation.
func (m *APIKeyMutation) AddedConsecutiveFailures() (r int, exists bool) {
	v := m.addconsecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveFailures resets all changes to the "consecutive_failures" field.
func (m *APIKeyMutation) ResetConsecutiveFailures() {
	m.consecutive_failures = nil
	m.addconsecutive_failures = nil
}

// SetLastFailureAt sets the "last_failure_at" field.
func (m *APIKeyMutation) SetLastFailureAt(t time.Time) {
	m.last_failure_at = &t
}

// LastFailureAt returns the value of the "last_failure_at" field in the mutation.
func (m *APIKeyMutation) LastFailureAt() (r time.Time, exists bool) {
	v := m.last_failure_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFailureAt returns the old "last_failure_at" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldLastFailureAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFailureAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFailureAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFailureAt: %w", err)
	}
	return oldValue.LastFailureAt, nil
}

// ClearLastFailureAt clears the value of the "last_failure_at" field.
func (m *APIKeyMutation) ClearLastFailureAt() {
	m.last_failure_at = nil
	m.clearedFields[apikey.FieldLastFailureAt] = struct{}{}
}

// LastFailureAtCleared returns if the "last_failure_at" field was cleared in this mutation.
func (m *APIKeyMutation) LastFailureAtCleared() bool {
	_, ok := m.clearedFields[apikey.FieldLastFailureAt]
	return ok
}

// ResetLastFailureAt resets all changes to the "last_failure_at" field.
func (m *APIKeyMutation) ResetLastFailureAt() {
	m.last_failure_at = nil
	delete(m.clearedFields, apikey.FieldLastFailureAt)
}

// SetCooldownUntil sets the "cooldown_until" field.
func (m *APIKeyMutation) SetCooldownUntil(t time.Time) {
	m.cooldown_until = &t
}

// CooldownUntil returns the value of the "cooldown_until" field in the mutation.
func (m *APIKeyMutation) CooldownUntil() (r time.Time, exists bool) {
	v := m.cooldown_until
	if v == nil {
		return
	}
	return *v, true
}

// OldCooldownUntil returns the old "cooldown_until" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldCooldownUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCooldownUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCooldownUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCooldownUntil: %w", err)
	}
	return oldValue.CooldownUntil, nil
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (m *APIKeyMutation) ClearCooldownUntil() {
	m.cooldown_until = nil
	m.clearedFields[apikey.FieldCooldownUntil] = struct{}{}
}

// CooldownUntilCleared returns if the "cooldown_until" field was cleared in this mutation.
func (m *APIKeyMutation) CooldownUntilCleared() bool {
	_, ok := m.clearedFields[apikey.FieldCooldownUntil]
	return ok
}

// ResetCooldownUntil resets all changes to the "cooldown_until" field.
func (m *APIKeyMutation) ResetCooldownUntil() {
	m.cooldown_until = nil
	delete(m.clearedFields, apikey.FieldCooldownUntil)
}

// SetMonthlyBudget sets the "monthly_budget" field.
func (m *APIKeyMutation) SetMonthlyBudget(f float64) {
	m.monthly_budget = &f
	m.addmonthly_budget = nil
}

// MonthlyBudget returns the value of the "monthly_budget" field in the mutation.
func (m *APIKeyMutation) MonthlyBudget() (r float64, exists bool) {
	v := m.monthly_budget
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlyBudget returns the old "monthly_budget" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldMonthlyBudget(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlyBudget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlyBudget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlyBudget: %w", err)
	}
	return oldValue.MonthlyBudget, nil
}

// AddMonthlyBudget adds f to the "monthly_budget" field.
func (m *APIKeyMutation) AddMonthlyBudget(f float64) {
	if m.addmonthly_budget != nil {
		*m.addmonthly_budget += f
	} else {
		m.addmonthly_budget = &f
	}
}

// AddedMonthlyBudget returns the value that was added to the "monthly_budget" field in this mutation.
func (m *APIKeyMutation) AddedMonthlyBudget() (r float64, exists bool) {
	v := m.addmonthly_budget
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonthlyBudget resets all changes to the "monthly_budget" field.
func (m *APIKeyMutation) ResetMonthlyBudget() {
	m.monthly_budget = nil
	m.addmonthly_budget = nil
}

// SetCurrentSpend sets the "current_spend" field.
func (m *APIKeyMutation) SetCurrentSpend(f float64) {
	m.current_spend = &f
	m.addcurrent_spend = nil
}

// CurrentSpend returns the value of the "current_spend" field in the mutation.
func (m *APIKeyMutation) CurrentSpend() (r float64, exists bool) {
	v := m.current_spend
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentSpend returns the old "current_spend" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldCurrentSpend(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentSpend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentSpend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentSpend: %w", err)
	}
	return oldValue.CurrentSpend, nil
}

// AddCurrentSpend adds f to the "current_spend" field.
func (m *APIKeyMutation) AddCurrentSpend(f float64) {
	if m.addcurrent_spend != nil {
		*m.addcurrent_spend += f
	} else {
		m.addcurrent_spend = &f
	}
}

// AddedCurrentSpend returns the value that was added to the "current_spend" field in this mutation.
func (m *APIKeyMutation) AddedCurrentSpend() (r float64, exists bool) {
	v := m.addcurrent_spend
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentSpend resets all changes to the "current_spend" field.
func (m *APIKeyMutation) ResetCurrentSpend() {
	m.current_spend = nil
	m.addcurrent_spend = nil
}

// SetLastSpendReset sets the "last_spend_reset" field.
func (m *APIKeyMutation) SetLastSpendReset(t time.Time) {
	m.last_spend_reset = &t
}

// LastSpendReset returns the value of the "last_spend_reset" field in the mutation.
func (m *APIKeyMutation) LastSpendReset() (r time.Time, exists bool) {
	v := m.last_spend_reset
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSpendReset returns the old "last_spend_reset" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldLastSpendReset(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSpendReset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSpendReset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSpendReset: %w", err)
	}
	return oldValue.LastSpendReset, nil
}

// ResetLastSpendReset resets all changes to the "last_spend_reset" field.
func (m *APIKeyMutation) ResetLastSpendReset() {
	m.last_spend_reset = nil
}

// SetActive sets the "active" field.
func (m *APIKeyMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *APIKeyMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *APIKeyMutation) ResetActive() {
	m.active = nil
}

// SetStatus sets the "status" field.
func (m *APIKeyMutation) SetStatus(a apikey.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *APIKeyMutation) Status() (r apikey.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldStatus(ctx context.Context) (v apikey.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *APIKeyMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *APIKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *APIKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *APIKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddUsageLogIDs adds the "usage_logs" edge to the APIUsageLog entity by ids.
func (m *APIKeyMutation) AddUsageLogIDs(ids ...string) {
	if m.usage_logs == nil {
		m.usage_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.usage_logs[ids[i]] = struct{}{}
	}
}

// ClearUsageLogs clears the "usage_logs" edge to the APIUsageLog entity.
func (m *APIKeyMutation) ClearUsageLogs() {
	m.clearedusage_logs = true
}

// UsageLogsCleared reports if the "usage_logs" edge to the APIUsageLog entity was cleared.
func (m *APIKeyMutation) UsageLogsCleared() bool {
	return m.clearedusage_logs
}

// RemoveUsageLogIDs removes the "usage_logs" edge to the APIUsageLog entity by IDs.
func (m *APIKeyMutation) RemoveUsageLogIDs(ids ...string) {
	if m.removedusage_logs == nil {
		m.removedusage_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.usage_logs, ids[i])
		m.removedusage_logs[ids[i]] = struct{}{}
	}
}

// RemovedUsageLogs returns the removed IDs of the "usage_logs" edge to the APIUsageLog entity.
func (m *APIKeyMutation) RemovedUsageLogsIDs() (ids []string) {
	for id := range m.removedusage_logs {
		ids = append(ids, id)
	}
	return
}

// UsageLogsIDs returns the "usage_logs" edge IDs in the mutation.
func (m *APIKeyMutation) UsageLogsIDs() (ids []string) {
	for id := range m.usage_logs {
		ids = append(ids, id)
	}
	return
}

// ResetUsageLogs resets all changes to the "usage_logs" edge.
func (m *APIKeyMutation) ResetUsageLogs() {
	m.usage_logs = nil
	m.clearedusage_logs = false
	m.removedusage_logs = nil
}

// Where appends a list predicates to the APIKeyMutation builder.
func (m *APIKeyMutation) Where(ps ...predicate.APIKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the APIKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *APIKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.APIKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *APIKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *APIKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (APIKey).
func (m *APIKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *APIKeyMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.provider != nil {
		fields = append(fields, apikey.FieldProvider)
	}
	if m.encrypted_secret != nil {
		fields = append(fields, apikey.FieldEncryptedSecret)
	}
	if m.priority != nil {
		fields = append(fields, apikey.FieldPriority)
	}
	if m.consecutive_failures != nil {
		fields = append(fields, apikey.FieldConsecutiveFailures)
	}
	if m.last_failure_at != nil {
		fields = append(fields, apikey.FieldLastFailureAt)
	}
	if m.cooldown_until != nil {
		fields = append(fields, apikey.FieldCooldownUntil)
	}
	if m.monthly_budget != nil {
		fields = append(fields, apikey.FieldMonthlyBudget)
	}
	if m.current_spend != nil {
		fields = append(fields, apikey.FieldCurrentSpend)
	}
	if m.last_spend_reset != nil {
		fields = append(fields, apikey.FieldLastSpendReset)
	}
	if m.active != nil {
		fields = append(fields, apikey.FieldActive)
	}
	if m.status != nil {
		fields = append(fields, apikey.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, apikey.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *APIKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apikey.FieldProvider:
		return m.Provider()
	case apikey.FieldEncryptedSecret:
		return m.EncryptedSecret()
	case apikey.FieldPriority:
		return m.Priority()
	case apikey.FieldConsecutiveFailures:
		return m.ConsecutiveFailures()
	case apikey.FieldLastFailureAt:
		return m.LastFailureAt()
	case apikey.FieldCooldownUntil:
		return m.CooldownUntil()
	case apikey.FieldMonthlyBudget:
		return m.MonthlyBudget()
	case apikey.FieldCurrentSpend:
		return m.CurrentSpend()
	case apikey.FieldLastSpendReset:
		return m.LastSpendReset()
	case apikey.FieldActive:
		return m.Active()
	case apikey.FieldStatus:
		return m.Status()
	case apikey.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *APIKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apikey.FieldProvider:
		return m.OldProvider(ctx)
	case apikey.FieldEncryptedSecret:
		return m.OldEncryptedSecret(ctx)
	case apikey.FieldPriority:
		return m.OldPriority(ctx)
	case apikey.FieldConsecutiveFailures:
		return m.OldConsecutiveFailures(ctx)
	case apikey.FieldLastFailureAt:
		return m.OldLastFailureAt(ctx)
	case apikey.FieldCooldownUntil:
		return m.OldCooldownUntil(ctx)
	case apikey.FieldMonthlyBudget:
		return m.OldMonthlyBudget(ctx)
	case apikey.FieldCurrentSpend:
		return m.OldCurrentSpend(ctx)
	case apikey.FieldLastSpendReset:
		return m.OldLastSpendReset(ctx)
	case apikey.FieldActive:
		return m.OldActive(ctx)
	case apikey.FieldStatus:
		return m.OldStatus(ctx)
	case apikey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown APIKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apikey.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case apikey.FieldEncryptedSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncryptedSecret(v)
		return nil
	case apikey.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case apikey.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveFailures(v)
		return nil
	case apikey.FieldLastFailureAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFailureAt(v)
		return nil
	case apikey.FieldCooldownUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCooldownUntil(v)
		return nil
	case apikey.FieldMonthlyBudget:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlyBudget(v)
		return nil
	case apikey.FieldCurrentSpend:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentSpend(v)
		return nil
	case apikey.FieldLastSpendReset:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSpendReset(v)
		return nil
	case apikey.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case apikey.FieldStatus:
		v, ok := value.(apikey.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case apikey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown APIKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *APIKeyMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, apikey.FieldPriority)
	}
	if m.addconsecutive_failures != nil {
		fields = append(fields, apikey.FieldConsecutiveFailures)
	}
	if m.addmonthly_budget != nil {
		fields = append(fields, apikey.FieldMonthlyBudget)
	}
	if m.addcurrent_spend != nil {
		fields = append(fields, apikey.FieldCurrentSpend)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *APIKeyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case apikey.FieldPriority:
		return m.AddedPriority()
	case apikey.FieldConsecutiveFailures:
		return m.AddedConsecutiveFailures()
	case apikey.FieldMonthlyBudget:
		return m.AddedMonthlyBudget()
	case apikey.FieldCurrentSpend:
		return m.AddedCurrentSpend()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case apikey.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case apikey.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveFailures(v)
		return nil
	case apikey.FieldMonthlyBudget:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlyBudget(v)
		return nil
	case apikey.FieldCurrentSpend:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentSpend(v)
		return nil
	}
	return fmt.Errorf("unknown APIKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *APIKeyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(apikey.FieldLastFailureAt) {
		fields = append(fields, apikey.FieldLastFailureAt)
	}
	if m.FieldCleared(apikey.FieldCooldownUntil) {
		fields = append(fields, apikey.FieldCooldownUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *APIKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *APIKeyMutation) ClearField(name string) error {
	switch name {
	case apikey.FieldLastFailureAt:
		m.ClearLastFailureAt()
		return nil
	case apikey.FieldCooldownUntil:
		m.ClearCooldownUntil()
		return nil
	}
	return fmt.Errorf("unknown APIKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *APIKeyMutation) ResetField(name string) error {
	switch name {
	case apikey.FieldProvider:
		m.ResetProvider()
		return nil
	case apikey.FieldEncryptedSecret:
		m.ResetEncryptedSecret()
		return nil
	case apikey.FieldPriority:
		m.ResetPriority()
		return nil
	case apikey.FieldConsecutiveFailures:
		m.ResetConsecutiveFailures()
		return nil
	case apikey.FieldLastFailureAt:
		m.ResetLastFailureAt()
		return nil
	case apikey.FieldCooldownUntil:
		m.ResetCooldownUntil()
		return nil
	case apikey.FieldMonthlyBudget:
		m.ResetMonthlyBudget()
		return nil
	case apikey.FieldCurrentSpend:
		m.ResetCurrentSpend()
		return nil
	case apikey.FieldLastSpendReset:
		m.ResetLastSpendReset()
		return nil
	case apikey.FieldActive:
		m.ResetActive()
		return nil
	case apikey.FieldStatus:
		m.ResetStatus()
		return nil
	case apikey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown APIKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *APIKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.usage_logs != nil {
		edges = append(edges, apikey.EdgeUsageLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *APIKeyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case apikey.EdgeUsageLogs:
		ids := make([]ent.Value, 0, len(m.usage_logs))
		for id := range m.usage_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *APIKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedusage_logs != nil {
		edges = append(edges, apikey.EdgeUsageLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *APIKeyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case apikey.EdgeUsageLogs:
		ids := make([]ent.Value, 0, len(m.removedusage_logs))
		for id := range m.removedusage_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *APIKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedusage_logs {
		edges = append(edges, apikey.EdgeUsageLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *APIKeyMutation) EdgeCleared(name string) bool {
	switch name {
	case apikey.EdgeUsageLogs:
		return m.clearedusage_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *APIKeyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown APIKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *APIKeyMutation) ResetEdge(name string) error {
	switch name {
	case apikey.EdgeUsageLogs:
		m.ResetUsageLogs()
		return nil
	}
	return fmt.Errorf("unknown APIKey edge %s", name)
}

// APIUsageLogMutation represents an operation that mutates the APIUsageLog nodes in the graph.
type APIUsageLogMutation struct {
	config
	op               Op
	typ              string
	id               *string
	agent_id         *string
	model            *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	cost             *float64
	addcost          *float64
	created_at       *time.Time
	clearedFields    map[string]struct{}
	key              *string
	clearedkey       bool
	done             bool
	oldValue         func(context.Context) (*APIUsageLog, error)
	predicates       []predicate.APIUsageLog
}

var _ ent.Mutation = (*APIUsageLogMutation)(nil)

// apiusagelogOption allows management of the mutation configuration using functional options.
type apiusagelogOption func(*APIUsageLogMutation)

// newAPIUsageLogMutation creates new mutation for the APIUsageLog entity.
func newAPIUsageLogMutation(c config, op Op, opts ...apiusagelogOption) *APIUsageLogMutation {
	m := &APIUsageLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAPIUsageLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAPIUsageLogID sets the ID field of the mutation.
func withAPIUsageLogID(id string) apiusagelogOption {
	return func(m *APIUsageLogMutation) {
		var (
			err   error
			once  sync.Once
			value *APIUsageLog
		)
		m.oldValue = func(ctx context.Context) (*APIUsageLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().APIUsageLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAPIUsageLog sets the old APIUsageLog of the mutation.
func withAPIUsageLog(node *APIUsageLog) apiusagelogOption {
	return func(m *APIUsageLogMutation) {
		m.oldValue = func(context.Context) (*APIUsageLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m APIUsageLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m APIUsageLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of APIUsageLog entities.
func (m *APIUsageLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *APIUsageLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *APIUsageLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().APIUsageLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKeyID sets the "key_id" field.
func (m *APIUsageLogMutation) SetKeyID(s string) {
	m.key = &s
}

// KeyID returns the value of the "key_id" field in the mutation.
func (m *APIUsageLogMutation) KeyID() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyID returns the old "key_id" field's value of the APIUsageLog entity.
// If the APIUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIUsageLogMutation) OldKeyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyID: %w", err)
	}
	return oldValue.KeyID, nil
}

// ResetKeyID resets all changes to the "key_id" field.
func (m *APIUsageLogMutation) ResetKeyID() {
	m.key = nil
}

// SetAgentID sets the "agent_id" field.
func (m *APIUsageLogMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *APIUsageLogMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the APIUsageLog entity.
// If the APIUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIUsageLogMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *APIUsageLogMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[apiusagelog.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *APIUsageLogMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[apiusagelog.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *APIUsageLogMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, apiusagelog.FieldAgentID)
}

// SetModel sets the "model" field.
func (m *APIUsageLogMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *APIUsageLogMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the APIUsageLog entity.
// If the APIUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIUsageLogMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *APIUsageLogMutation) ResetModel() {
	m.model = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *APIUsageLogMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *APIUsageLogMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the APIUsageLog entity.
// If the APIUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIUsageLogMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *APIUsageLogMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *APIUsageLogMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *APIUsageLogMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *APIUsageLogMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *APIUsageLogMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the APIUsageLog entity.
// If the APIUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIUsageLogMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *APIUsageLogMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *APIUsageLogMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *APIUsageLogMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCost sets the "cost" field.
func (m *APIUsageLogMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *APIUsageLogMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the APIUsageLog entity.
// If the APIUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIUsageLogMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *APIUsageLogMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *APIUsageLogMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *APIUsageLogMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *APIUsageLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *APIUsageLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the APIUsageLog entity.
// If the APIUsageLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIUsageLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *APIUsageLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearKey clears the "key" edge to the APIKey entity.
func (m *APIUsageLogMutation) ClearKey() {
	m.clearedkey = true
	m.clearedFields[apiusagelog.FieldKeyID] = struct{}{}
}

// KeyCleared reports if the "key" edge to the APIKey entity was cleared.
func (m *APIUsageLogMutation) KeyCleared() bool {
	return m.clearedkey
}

// KeyIDs returns the "key" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// KeyID instead. It exists only for internal usage by the builders.
func (m *APIUsageLogMutation) KeyIDs() (ids []string) {
	if id := m.key; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetKey resets all changes to the "key" edge.
func (m *APIUsageLogMutation) ResetKey() {
	m.key = nil
	m.clearedkey = false
}

// Where appends a list predicates to the APIUsageLogMutation builder.
func (m *APIUsageLogMutation) Where(ps ...predicate.APIUsageLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the APIUsageLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *APIUsageLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.APIUsageLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *APIUsageLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *APIUsageLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (APIUsageLog).
func (m *APIUsageLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *APIUsageLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.key != nil {
		fields = append(fields, apiusagelog.FieldKeyID)
	}
	if m.agent_id != nil {
		fields = append(fields, apiusagelog.FieldAgentID)
	}
	if m.model != nil {
		fields = append(fields, apiusagelog.FieldModel)
	}
	if m.input_tokens != nil {
		fields = append(fields, apiusagelog.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, apiusagelog.FieldOutputTokens)
	}
	if m.cost != nil {
		fields = append(fields, apiusagelog.FieldCost)
	}
	if m.created_at != nil {
		fields = append(fields, apiusagelog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *APIUsageLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apiusagelog.FieldKeyID:
		return m.KeyID()
	case apiusagelog.FieldAgentID:
		return m.AgentID()
	case apiusagelog.FieldModel:
		return m.Model()
	case apiusagelog.FieldInputTokens:
		return m.InputTokens()
	case apiusagelog.FieldOutputTokens:
		return m.OutputTokens()
	case apiusagelog.FieldCost:
		return m.Cost()
	case apiusagelog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *APIUsageLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apiusagelog.FieldKeyID:
		return m.OldKeyID(ctx)
	case apiusagelog.FieldAgentID:
		return m.OldAgentID(ctx)
	case apiusagelog.FieldModel:
		return m.OldModel(ctx)
	case apiusagelog.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case apiusagelog.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case apiusagelog.FieldCost:
		return m.OldCost(ctx)
	case apiusagelog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown APIUsageLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIUsageLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apiusagelog.FieldKeyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyID(v)
		return nil
	case apiusagelog.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case apiusagelog.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case apiusagelog.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case apiusagelog.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case apiusagelog.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case apiusagelog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown APIUsageLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *APIUsageLogMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, apiusagelog.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, apiusagelog.FieldOutputTokens)
	}
	if m.addcost != nil {
		fields = append(fields, apiusagelog.FieldCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *APIUsageLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case apiusagelog.FieldInputTokens:
		return m.AddedInputTokens()
	case apiusagelog.FieldOutputTokens:
		return m.AddedOutputTokens()
	case apiusagelog.FieldCost:
		return m.AddedCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIUsageLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case apiusagelog.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case apiusagelog.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case apiusagelog.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	}
	return fmt.Errorf("unknown APIUsageLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *APIUsageLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(apiusagelog.FieldAgentID) {
		fields = append(fields, apiusagelog.FieldAgentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *APIUsageLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *APIUsageLogMutation) ClearField(name string) error {
	switch name {
	case apiusagelog.FieldAgentID:
		m.ClearAgentID()
		return nil
	}
	return fmt.Errorf("unknown APIUsageLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *APIUsageLogMutation) ResetField(name string) error {
	switch name {
	case apiusagelog.FieldKeyID:
		m.ResetKeyID()
		return nil
	case apiusagelog.FieldAgentID:
		m.ResetAgentID()
		return nil
	case apiusagelog.FieldModel:
		m.ResetModel()
		return nil
	case apiusagelog.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case apiusagelog.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case apiusagelog.FieldCost:
		m.ResetCost()
		return nil
	case apiusagelog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown APIUsageLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *APIUsageLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.key != nil {
		edges = append(edges, apiusagelog.EdgeKey)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *APIUsageLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case apiusagelog.EdgeKey:
		if id := m.key; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *APIUsageLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *APIUsageLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *APIUsageLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedkey {
		edges = append(edges, apiusagelog.EdgeKey)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *APIUsageLogMutation) EdgeCleared(name string) bool {
	switch name {
	case apiusagelog.EdgeKey:
		return m.clearedkey
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *APIUsageLogMutation) ClearEdge(name string) error {
	switch name {
	case apiusagelog.EdgeKey:
		m.ClearKey()
		return nil
	}
	return fmt.Errorf("unknown APIUsageLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *APIUsageLogMutation) ResetEdge(name string) error {
	switch name {
	case apiusagelog.EdgeKey:
		m.ResetKey()
		return nil
	}
	return fmt.Errorf("unknown APIUsageLog edge %s", name)
}

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	tier                        *agent.Tier
	status                      *agent.Status
	persistent                  *bool
	ethos                       *string
	preferred_config_id         *string
	saved_config_id             *string
	recent_violations           *int
	addrecent_violations        *int
	last_heartbeat_at           *time.Time
	created_at                  *time.Time
	clearedFields               map[string]struct{}
	parent                      *string
	clearedparent               bool
	children                    map[string]struct{}
	removedchildren             map[string]struct{}
	clearedchildren             bool
	tasks                       map[string]struct{}
	removedtasks                map[string]struct{}
	clearedtasks                bool
	executions                  map[string]struct{}
	removedexecutions           map[string]struct{}
	clearedexecutions           bool
	capability_overrides        map[string]struct{}
	removedcapability_overrides map[string]struct{}
	clearedcapability_overrides bool
	model_configs               map[string]struct{}
	removedmodel_configs        map[string]struct{}
	clearedmodel_configs        bool
	done                        bool
	oldValue                    func(context.Context) (*Agent, error)
	predicates                  []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTier sets the "tier" field.
func (m *AgentMutation) SetTier(a agent.Tier) {
	m.tier = &a
}

// Tier returns the value of the "tier" field in the mutation.
func (m *AgentMutation) Tier() (r agent.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTier(ctx context.Context) (v agent.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *AgentMutation) ResetTier() {
	m.tier = nil
}

// SetParentID sets the "parent_id" field.
func (m *AgentMutation) SetParentID(s string) {
	m.parent = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *AgentMutation) ParentID() (r string, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldParentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *AgentMutation) ClearParentID() {
	m.parent = nil
	m.clearedFields[agent.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *AgentMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *AgentMutation) ResetParentID() {
	m.parent = nil
	delete(m.clearedFields, agent.FieldParentID)
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetPersistent sets the "persistent" field.
func (m *AgentMutation) SetPersistent(b bool) {
	m.persistent = &b
}

// Persistent returns the value of the "persistent" field in the mutation.
func (m *AgentMutation) Persistent() (r bool, exists bool) {
	v := m.persistent
	if v == nil {
		return
	}
	return *v, true
}

// OldPersistent returns the old "persistent" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPersistent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersistent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersistent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersistent: %w", err)
	}
	return oldValue.Persistent, nil
}

// ResetPersistent resets all changes to the "persistent" field.
func (m *AgentMutation) ResetPersistent() {
	m.persistent = nil
}

// SetEthos sets the "ethos" field.
func (m *AgentMutation) SetEthos(s string) {
	m.ethos = &s
}

// Ethos returns the value of the "ethos" field in the mutation.
func (m *AgentMutation) Ethos() (r string, exists bool) {
	v := m.ethos
	if v == nil {
		return
	}
	return *v, true
}

// OldEthos returns the old "ethos" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldEthos(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEthos is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEthos requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEthos: %w", err)
	}
	return oldValue.Ethos, nil
}

// ClearEthos clears the value of the "ethos" field.
func (m *AgentMutation) ClearEthos() {
	m.ethos = nil
	m.clearedFields[agent.FieldEthos] = struct{}{}
}

// EthosCleared returns if the "ethos" field was cleared in this mutation.
func (m *AgentMutation) EthosCleared() bool {
	_, ok := m.clearedFields[agent.FieldEthos]
	return ok
}

// ResetEthos resets all changes to the "ethos" field.
func (m *AgentMutation) ResetEthos() {
	m.ethos = nil
	delete(m.clearedFields, agent.FieldEthos)
}

// SetPreferredConfigID sets the "preferred_config_id" field.
func (m *AgentMutation) SetPreferredConfigID(s string) {
	m.preferred_config_id = &s
}

// PreferredConfigID returns the value of the "preferred_config_id" field in the mutation.
func (m *AgentMutation) PreferredConfigID() (r string, exists bool) {
	v := m.preferred_config_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredConfigID returns the old "preferred_config_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPreferredConfigID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredConfigID: %w", err)
	}
	return oldValue.PreferredConfigID, nil
}

// ClearPreferredConfigID clears the value of the "preferred_config_id" field.
func (m *AgentMutation) ClearPreferredConfigID() {
	m.preferred_config_id = nil
	m.clearedFields[agent.FieldPreferredConfigID] = struct{}{}
}

// PreferredConfigIDCleared returns if the "preferred_config_id" field was cleared in this mutation.
func (m *AgentMutation) PreferredConfigIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldPreferredConfigID]
	return ok
}

// ResetPreferredConfigID resets all changes to the "preferred_config_id" field.
func (m *AgentMutation) ResetPreferredConfigID() {
	m.preferred_config_id = nil
	delete(m.clearedFields, agent.FieldPreferredConfigID)
}

// SetSavedConfigID sets the "saved_config_id" field.
func (m *AgentMutation) SetSavedConfigID(s string) {
	m.saved_config_id = &s
}

// SavedConfigID returns the value of the "saved_config_id" field in the mutation.
func (m *AgentMutation) SavedConfigID() (r string, exists bool) {
	v := m.saved_config_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSavedConfigID returns the old "saved_config_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSavedConfigID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSavedConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSavedConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSavedConfigID: %w", err)
	}
	return oldValue.SavedConfigID, nil
}

// ClearSavedConfigID clears the value of the "saved_config_id" field.
func (m *AgentMutation) ClearSavedConfigID() {
	m.saved_config_id = nil
	m.clearedFields[agent.FieldSavedConfigID] = struct{}{}
}

// SavedConfigIDCleared returns if the "saved_config_id" field was cleared in this mutation.
func (m *AgentMutation) SavedConfigIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldSavedConfigID]
	return ok
}

// ResetSavedConfigID resets all changes to the "saved_config_id" field.
func (m *AgentMutation) ResetSavedConfigID() {
	m.saved_config_id = nil
	delete(m.clearedFields, agent.FieldSavedConfigID)
}

// SetRecentViolations sets the "recent_violations" field.
func (m *AgentMutation) SetRecentViolations(i int) {
	m.recent_violations = &i
	m.addrecent_violations = nil
}

// RecentViolations returns the value of the "recent_violations" field in the mutation.
func (m *AgentMutation) RecentViolations() (r int, exists bool) {
	v := m.recent_violations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecentViolations returns the old "recent_violations" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRecentViolations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecentViolations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecentViolations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecentViolations: %w", err)
	}
	return oldValue.RecentViolations, nil
}

// AddRecentViolations adds i to the "recent_violations" field.
func (m *AgentMutation) AddRecentViolations(i int) {
	if m.addrecent_violations != nil {
		*m.addrecent_violations += i
	} else {
		m.addrecent_violations = &i
	}
}

// AddedRecentViolations returns the value that was added to the "recent_violations" field in this mutation.
func (m *AgentMutation) AddedRecentViolations() (r int, exists bool) {
	v := m.addrecent_violations
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecentViolations resets all changes to the "recent_violations" field.
func (m *AgentMutation) ResetRecentViolations() {
	m.recent_violations = nil
	m.addrecent_violations = nil
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *AgentMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *AgentMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *AgentMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[agent.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *AgentMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *AgentMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, agent.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearParent clears the "parent" edge to the Agent entity.
func (m *AgentMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[agent.FieldParentID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the Agent entity was cleared.
func (m *AgentMutation) ParentCleared() bool {
	return m.ParentIDCleared() || m.clearedparent
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) ParentIDs() (ids []string) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *AgentMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the Agent entity by ids.
func (m *AgentMutation) AddChildIDs(ids ...string) {
	if m.children == nil {
		m.children = make(map[string]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the Agent entity.
func (m *AgentMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the Agent entity was cleared.
func (m *AgentMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the Agent entity by IDs.
func (m *AgentMutation) RemoveChildIDs(ids ...string) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the Agent entity.
func (m *AgentMutation) RemovedChildrenIDs() (ids []string) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *AgentMutation) ChildrenIDs() (ids []string) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *AgentMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *AgentMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *AgentMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *AgentMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *AgentMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *AgentMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *AgentMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *AgentMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by ids.
func (m *AgentMutation) AddExecutionIDs(ids ...string) {
	if m.executions == nil {
		m.executions = make(map[string]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the Execution entity.
func (m *AgentMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the Execution entity was cleared.
func (m *AgentMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the Execution entity by IDs.
func (m *AgentMutation) RemoveExecutionIDs(ids ...string) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the Execution entity.
func (m *AgentMutation) RemovedExecutionsIDs() (ids []string) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *AgentMutation) ExecutionsIDs() (ids []string) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *AgentMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// AddCapabilityOverrideIDs adds the "capability_overrides" edge to the CapabilityOverride entity by ids.
func (m *AgentMutation) AddCapabilityOverrideIDs(ids ...string) {
	if m.capability_overrides == nil {
		m.capability_overrides = make(map[string]struct{})
	}
	for i := range ids {
		m.capability_overrides[ids[i]] = struct{}{}
	}
}

// ClearCapabilityOverrides clears the "capability_overrides" edge to the CapabilityOverride entity.
func (m *AgentMutation) ClearCapabilityOverrides() {
	m.clearedcapability_overrides = true
}

// CapabilityOverridesCleared reports if the "capability_overrides" edge to the CapabilityOverride entity was cleared.
func (m *AgentMutation) CapabilityOverridesCleared() bool {
	return m.clearedcapability_overrides
}

// RemoveCapabilityOverrideIDs removes the "capability_overrides" edge to the CapabilityOverride entity by IDs.
func (m *AgentMutation) RemoveCapabilityOverrideIDs(ids ...string) {
	if m.removedcapability_overrides == nil {
		m.removedcapability_overrides = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.capability_overrides, ids[i])
		m.removedcapability_overrides[ids[i]] = struct{}{}
	}
}

// RemovedCapabilityOverrides returns the removed IDs of the "capability_overrides" edge to the CapabilityOverride entity.
func (m *AgentMutation) RemovedCapabilityOverridesIDs() (ids []string) {
	for id := range m.removedcapability_overrides {
		ids = append(ids, id)
	}
	return
}

// CapabilityOverridesIDs returns the "capability_overrides" edge IDs in the mutation.
func (m *AgentMutation) CapabilityOverridesIDs() (ids []string) {
	for id := range m.capability_overrides {
		ids = append(ids, id)
	}
	return
}

// ResetCapabilityOverrides resets all changes to the "capability_overrides" edge.
func (m *AgentMutation) ResetCapabilityOverrides() {
	m.capability_overrides = nil
	m.clearedcapability_overrides = false
	m.removedcapability_overrides = nil
}

// AddModelConfigIDs adds the "model_configs" edge to the ModelConfig entity by ids.
func (m *AgentMutation) AddModelConfigIDs(ids ...string) {
	if m.model_configs == nil {
		m.model_configs = make(map[string]struct{})
	}
	for i := range ids {
		m.model_configs[ids[i]] = struct{}{}
	}
}

// ClearModelConfigs clears the "model_configs" edge to the ModelConfig entity.
func (m *AgentMutation) ClearModelConfigs() {
	m.clearedmodel_configs = true
}

// ModelConfigsCleared reports if the "model_configs" edge to the ModelConfig entity was cleared.
func (m *AgentMutation) ModelConfigsCleared() bool {
	return m.clearedmodel_configs
}

// RemoveModelConfigIDs removes the "model_configs" edge to the ModelConfig entity by IDs.
func (m *AgentMutation) RemoveModelConfigIDs(ids ...string) {
	if m.removedmodel_configs == nil {
		m.removedmodel_configs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.model_configs, ids[i])
		m.removedmodel_configs[ids[i]] = struct{}{}
	}
}

// RemovedModelConfigs returns the removed IDs of the "model_configs" edge to the ModelConfig entity.
func (m *AgentMutation) RemovedModelConfigsIDs() (ids []string) {
	for id := range m.removedmodel_configs {
		ids = append(ids, id)
	}
	return
}

// ModelConfigsIDs returns the "model_configs" edge IDs in the mutation.
func (m *AgentMutation) ModelConfigsIDs() (ids []string) {
	for id := range m.model_configs {
		ids = append(ids, id)
	}
	return
}

// ResetModelConfigs resets all changes to the "model_configs" edge.
func (m *AgentMutation) ResetModelConfigs() {
	m.model_configs = nil
	m.clearedmodel_configs = false
	m.removedmodel_configs = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tier != nil {
		fields = append(fields, agent.FieldTier)
	}
	if m.parent != nil {
		fields = append(fields, agent.FieldParentID)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.persistent != nil {
		fields = append(fields, agent.FieldPersistent)
	}
	if m.ethos != nil {
		fields = append(fields, agent.FieldEthos)
	}
	if m.preferred_config_id != nil {
		fields = append(fields, agent.FieldPreferredConfigID)
	}
	if m.saved_config_id != nil {
		fields = append(fields, agent.FieldSavedConfigID)
	}
	if m.recent_violations != nil {
		fields = append(fields, agent.FieldRecentViolations)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, agent.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldTier:
		return m.Tier()
	case agent.FieldParentID:
		return m.ParentID()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldPersistent:
		return m.Persistent()
	case agent.FieldEthos:
		return m.Ethos()
	case agent.FieldPreferredConfigID:
		return m.PreferredConfigID()
	case agent.FieldSavedConfigID:
		return m.SavedConfigID()
	case agent.FieldRecentViolations:
		return m.RecentViolations()
	case agent.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldTier:
		return m.OldTier(ctx)
	case agent.FieldParentID:
		return m.OldParentID(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldPersistent:
		return m.OldPersistent(ctx)
	case agent.FieldEthos:
		return m.OldEthos(ctx)
	case agent.FieldPreferredConfigID:
		return m.OldPreferredConfigID(ctx)
	case agent.FieldSavedConfigID:
		return m.OldSavedConfigID(ctx)
	case agent.FieldRecentViolations:
		return m.OldRecentViolations(ctx)
	case agent.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldTier:
		v, ok := value.(agent.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case agent.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldPersistent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersistent(v)
		return nil
	case agent.FieldEthos:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEthos(v)
		return nil
	case agent.FieldPreferredConfigID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredConfigID(v)
		return nil
	case agent.FieldSavedConfigID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSavedConfigID(v)
		return nil
	case agent.FieldRecentViolations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecentViolations(v)
		return nil
	case agent.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addrecent_violations != nil {
		fields = append(fields, agent.FieldRecentViolations)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldRecentViolations:
		return m.AddedRecentViolations()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldRecentViolations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecentViolations(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldParentID) {
		fields = append(fields, agent.FieldParentID)
	}
	if m.FieldCleared(agent.FieldEthos) {
		fields = append(fields, agent.FieldEthos)
	}
	if m.FieldCleared(agent.FieldPreferredConfigID) {
		fields = append(fields, agent.FieldPreferredConfigID)
	}
	if m.FieldCleared(agent.FieldSavedConfigID) {
		fields = append(fields, agent.FieldSavedConfigID)
	}
	if m.FieldCleared(agent.FieldLastHeartbeatAt) {
		fields = append(fields, agent.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldParentID:
		m.ClearParentID()
		return nil
	case agent.FieldEthos:
		m.ClearEthos()
		return nil
	case agent.FieldPreferredConfigID:
		m.ClearPreferredConfigID()
		return nil
	case agent.FieldSavedConfigID:
		m.ClearSavedConfigID()
		return nil
	case agent.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldTier:
		m.ResetTier()
		return nil
	case agent.FieldParentID:
		m.ResetParentID()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldPersistent:
		m.ResetPersistent()
		return nil
	case agent.FieldEthos:
		m.ResetEthos()
		return nil
	case agent.FieldPreferredConfigID:
		m.ResetPreferredConfigID()
		return nil
	case agent.FieldSavedConfigID:
		m.ResetSavedConfigID()
		return nil
	case agent.FieldRecentViolations:
		m.ResetRecentViolations()
		return nil
	case agent.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.parent != nil {
		edges = append(edges, agent.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, agent.EdgeChildren)
	}
	if m.tasks != nil {
		edges = append(edges, agent.EdgeTasks)
	}
	if m.executions != nil {
		edges = append(edges, agent.EdgeExecutions)
	}
	if m.capability_overrides != nil {
		edges = append(edges, agent.EdgeCapabilityOverrides)
	}
	if m.model_configs != nil {
		edges = append(edges, agent.EdgeModelConfigs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case agent.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeCapabilityOverrides:
		ids := make([]ent.Value, 0, len(m.capability_overrides))
		for id := range m.capability_overrides {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeModelConfigs:
		ids := make([]ent.Value, 0, len(m.model_configs))
		for id := range m.model_configs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedchildren != nil {
		edges = append(edges, agent.EdgeChildren)
	}
	if m.removedtasks != nil {
		edges = append(edges, agent.EdgeTasks)
	}
	if m.removedexecutions != nil {
		edges = append(edges, agent.EdgeExecutions)
	}
	if m.removedcapability_overrides != nil {
		edges = append(edges, agent.EdgeCapabilityOverrides)
	}
	if m.removedmodel_configs != nil {
		edges = append(edges, agent.EdgeModelConfigs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeCapabilityOverrides:
		ids := make([]ent.Value, 0, len(m.removedcapability_overrides))
		for id := range m.removedcapability_overrides {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeModelConfigs:
		ids := make([]ent.Value, 0, len(m.removedmodel_configs))
		for id := range m.removedmodel_configs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedparent {
		edges = append(edges, agent.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, agent.EdgeChildren)
	}
	if m.clearedtasks {
		edges = append(edges, agent.EdgeTasks)
	}
	if m.clearedexecutions {
		edges = append(edges, agent.EdgeExecutions)
	}
	if m.clearedcapability_overrides {
		edges = append(edges, agent.EdgeCapabilityOverrides)
	}
	if m.clearedmodel_configs {
		edges = append(edges, agent.EdgeModelConfigs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeParent:
		return m.clearedparent
	case agent.EdgeChildren:
		return m.clearedchildren
	case agent.EdgeTasks:
		return m.clearedtasks
	case agent.EdgeExecutions:
		return m.clearedexecutions
	case agent.EdgeCapabilityOverrides:
		return m.clearedcapability_overrides
	case agent.EdgeModelConfigs:
		return m.clearedmodel_configs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	case agent.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeParent:
		m.ResetParent()
		return nil
	case agent.EdgeChildren:
		m.ResetChildren()
		return nil
	case agent.EdgeTasks:
		m.ResetTasks()
		return nil
	case agent.EdgeExecutions:
		m.ResetExecutions()
		return nil
	case agent.EdgeCapabilityOverrides:
		m.ResetCapabilityOverrides()
		return nil
	case agent.EdgeModelConfigs:
		m.ResetModelConfigs()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	kind          *string
	severity      *auditlog.Severity
	actor_id      *string
	details       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *AuditLogMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AuditLogMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AuditLogMutation) ResetKind() {
	m.kind = nil
}

// SetSeverity sets the "severity" field.
func (m *AuditLogMutation) SetSeverity(a auditlog.Severity) {
	m.severity = &a
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AuditLogMutation) Severity() (r auditlog.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldSeverity(ctx context.Context) (v auditlog.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AuditLogMutation) ResetSeverity() {
	m.severity = nil
}

// SetActorID sets the "actor_id" field.
func (m *AuditLogMutation) SetActorID(s string) {
	m.actor_id = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *AuditLogMutation) ActorID() (r string, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ClearActorID clears the value of the "actor_id" field.
func (m *AuditLogMutation) ClearActorID() {
	m.actor_id = nil
	m.clearedFields[auditlog.FieldActorID] = struct{}{}
}

// ActorIDCleared returns if the "actor_id" field was cleared in this mutation.
func (m *AuditLogMutation) ActorIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldActorID]
	return ok
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *AuditLogMutation) ResetActorID() {
	m.actor_id = nil
	delete(m.clearedFields, auditlog.FieldActorID)
}

// SetDetails sets the "details" field.
func (m *AuditLogMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AuditLogMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AuditLogMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[auditlog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AuditLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AuditLogMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, auditlog.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.kind != nil {
		fields = append(fields, auditlog.FieldKind)
	}
	if m.severity != nil {
		fields = append(fields, auditlog.FieldSeverity)
	}
	if m.actor_id != nil {
		fields = append(fields, auditlog.FieldActorID)
	}
	if m.details != nil {
		fields = append(fields, auditlog.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldKind:
		return m.Kind()
	case auditlog.FieldSeverity:
		return m.Severity()
	case auditlog.FieldActorID:
		return m.ActorID()
	case auditlog.FieldDetails:
		return m.Details()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldKind:
		return m.OldKind(ctx)
	case auditlog.FieldSeverity:
		return m.OldSeverity(ctx)
	case auditlog.FieldActorID:
		return m.OldActorID(ctx)
	case auditlog.FieldDetails:
		return m.OldDetails(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case auditlog.FieldSeverity:
		v, ok := value.(auditlog.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case auditlog.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case auditlog.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldActorID) {
		fields = append(fields, auditlog.FieldActorID)
	}
	if m.FieldCleared(auditlog.FieldDetails) {
		fields = append(fields, auditlog.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldActorID:
		m.ClearActorID()
		return nil
	case auditlog.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldKind:
		m.ResetKind()
		return nil
	case auditlog.FieldSeverity:
		m.ResetSeverity()
		return nil
	case auditlog.FieldActorID:
		m.ResetActorID()
		return nil
	case auditlog.FieldDetails:
		m.ResetDetails()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// CapabilityOverrideMutation represents an operation that mutates the CapabilityOverride nodes in the graph.
type CapabilityOverrideMutation struct {
	config
	op            Op
	typ           string
	id            *string
	capability    *string
	mode          *capabilityoverride.Mode
	granted_by    *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	agent         *string
	clearedagent  bool
	done          bool
	oldValue      func(context.Context) (*CapabilityOverride, error)
	predicates    []predicate.CapabilityOverride
}

var _ ent.Mutation = (*CapabilityOverrideMutation)(nil)

// capabilityoverrideOption allows management of the mutation configuration using functional options.
type capabilityoverrideOption func(*CapabilityOverrideMutation)

// newCapabilityOverrideMutation creates new mutation for the CapabilityOverride entity.
func newCapabilityOverrideMutation(c config, op Op, opts ...capabilityoverrideOption) *CapabilityOverrideMutation {
	m := &CapabilityOverrideMutation{
		config:        c,
		op:            op,
		typ:           TypeCapabilityOverride,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCapabilityOverrideID sets the ID field of the mutation.
func withCapabilityOverrideID(id string) capabilityoverrideOption {
	return func(m *CapabilityOverrideMutation) {
		var (
			err   error
			once  sync.Once
			value *CapabilityOverride
		)
		m.oldValue = func(ctx context.Context) (*CapabilityOverride, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CapabilityOverride.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCapabilityOverride sets the old CapabilityOverride of the mutation.
func withCapabilityOverride(node *CapabilityOverride) capabilityoverrideOption {
	return func(m *CapabilityOverrideMutation) {
		m.oldValue = func(context.Context) (*CapabilityOverride, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CapabilityOverrideMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CapabilityOverrideMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CapabilityOverride entities.
func (m *CapabilityOverrideMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CapabilityOverrideMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CapabilityOverrideMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CapabilityOverride.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *CapabilityOverrideMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *CapabilityOverrideMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the CapabilityOverride entity.
// If the CapabilityOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapabilityOverrideMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *CapabilityOverrideMutation) ResetAgentID() {
	m.agent = nil
}

// SetCapability sets the "capability" field.
func (m *CapabilityOverrideMutation) SetCapability(s string) {
	m.capability = &s
}

// Capability returns the value of the "capability" field in the mutation.
func (m *CapabilityOverrideMutation) Capability() (r string, exists bool) {
	v := m.capability
	if v == nil {
		return
	}
	return *v, true
}

// OldCapability returns the old "capability" field's value of the CapabilityOverride entity.
// If the CapabilityOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapabilityOverrideMutation) OldCapability(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapability: %w", err)
	}
	return oldValue.Capability, nil
}

// ResetCapability resets all changes to the "capability" field.
func (m *CapabilityOverrideMutation) ResetCapability() {
	m.capability = nil
}

// SetMode sets the "mode" field.
func (m *CapabilityOverrideMutation) SetMode(c capabilityoverride.Mode) {
	m.mode = &c
}

// Mode returns the value of the "mode" field in the mutation.
func (m *CapabilityOverrideMutation) Mode() (r capabilityoverride.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the CapabilityOverride entity.
// If the CapabilityOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapabilityOverrideMutation) OldMode(ctx context.Context) (v capabilityoverride.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *CapabilityOverrideMutation) ResetMode() {
	m.mode = nil
}

// SetGrantedBy sets the "granted_by" field.
func (m *CapabilityOverrideMutation) SetGrantedBy(s string) {
	m.granted_by = &s
}

// GrantedBy returns the value of the "granted_by" field in the mutation.
func (m *CapabilityOverrideMutation) GrantedBy() (r string, exists bool) {
	v := m.granted_by
	if v == nil {
		return
	}
	return *v, true
}

// OldGrantedBy returns the old "granted_by" field's value of the CapabilityOverride entity.
// If the CapabilityOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapabilityOverrideMutation) OldGrantedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrantedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrantedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrantedBy: %w", err)
	}
	return oldValue.GrantedBy, nil
}

// ClearGrantedBy clears the value of the "granted_by" field.
func (m *CapabilityOverrideMutation) ClearGrantedBy() {
	m.granted_by = nil
	m.clearedFields[capabilityoverride.FieldGrantedBy] = struct{}{}
}

// GrantedByCleared returns if the "granted_by" field was cleared in this mutation.
func (m *CapabilityOverrideMutation) GrantedByCleared() bool {
	_, ok := m.clearedFields[capabilityoverride.FieldGrantedBy]
	return ok
}

// ResetGrantedBy resets all changes to the "granted_by" field.
func (m *CapabilityOverrideMutation) ResetGrantedBy() {
	m.granted_by = nil
	delete(m.clearedFields, capabilityoverride.FieldGrantedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *CapabilityOverrideMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CapabilityOverrideMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CapabilityOverride entity.
// If the CapabilityOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapabilityOverrideMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CapabilityOverrideMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CapabilityOverrideMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CapabilityOverrideMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CapabilityOverride entity.
// If the CapabilityOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapabilityOverrideMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CapabilityOverrideMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *CapabilityOverrideMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[capabilityoverride.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *CapabilityOverrideMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *CapabilityOverrideMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *CapabilityOverrideMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the CapabilityOverrideMutation builder.
func (m *CapabilityOverrideMutation) Where(ps ...predicate.CapabilityOverride) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CapabilityOverrideMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CapabilityOverrideMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CapabilityOverride, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CapabilityOverrideMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CapabilityOverrideMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CapabilityOverride).
func (m *CapabilityOverrideMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CapabilityOverrideMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.agent != nil {
		fields = append(fields, capabilityoverride.FieldAgentID)
	}
	if m.capability != nil {
		fields = append(fields, capabilityoverride.FieldCapability)
	}
	if m.mode != nil {
		fields = append(fields, capabilityoverride.FieldMode)
	}
	if m.granted_by != nil {
		fields = append(fields, capabilityoverride.FieldGrantedBy)
	}
	if m.created_at != nil {
		fields = append(fields, capabilityoverride.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, capabilityoverride.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CapabilityOverrideMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case capabilityoverride.FieldAgentID:
		return m.AgentID()
	case capabilityoverride.FieldCapability:
		return m.Capability()
	case capabilityoverride.FieldMode:
		return m.Mode()
	case capabilityoverride.FieldGrantedBy:
		return m.GrantedBy()
	case capabilityoverride.FieldCreatedAt:
		return m.CreatedAt()
	case capabilityoverride.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CapabilityOverrideMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case capabilityoverride.FieldAgentID:
		return m.OldAgentID(ctx)
	case capabilityoverride.FieldCapability:
		return m.OldCapability(ctx)
	case capabilityoverride.FieldMode:
		return m.OldMode(ctx)
	case capabilityoverride.FieldGrantedBy:
		return m.OldGrantedBy(ctx)
	case capabilityoverride.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case capabilityoverride.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CapabilityOverride field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CapabilityOverrideMutation) SetField(name string, value ent.Value) error {
	switch name {
	case capabilityoverride.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case capabilityoverride.FieldCapability:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapability(v)
		return nil
	case capabilityoverride.FieldMode:
		v, ok := value.(capabilityoverride.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case capabilityoverride.FieldGrantedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrantedBy(v)
		return nil
	case capabilityoverride.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case capabilityoverride.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CapabilityOverride field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CapabilityOverrideMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CapabilityOverrideMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CapabilityOverrideMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CapabilityOverride numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CapabilityOverrideMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(capabilityoverride.FieldGrantedBy) {
		fields = append(fields, capabilityoverride.FieldGrantedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CapabilityOverrideMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CapabilityOverrideMutation) ClearField(name string) error {
	switch name {
	case capabilityoverride.FieldGrantedBy:
		m.ClearGrantedBy()
		return nil
	}
	return fmt.Errorf("unknown CapabilityOverride nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CapabilityOverrideMutation) ResetField(name string) error {
	switch name {
	case capabilityoverride.FieldAgentID:
		m.ResetAgentID()
		return nil
	case capabilityoverride.FieldCapability:
		m.ResetCapability()
		return nil
	case capabilityoverride.FieldMode:
		m.ResetMode()
		return nil
	case capabilityoverride.FieldGrantedBy:
		m.ResetGrantedBy()
		return nil
	case capabilityoverride.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case capabilityoverride.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CapabilityOverride field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CapabilityOverrideMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, capabilityoverride.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CapabilityOverrideMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case capabilityoverride.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CapabilityOverrideMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CapabilityOverrideMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CapabilityOverrideMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, capabilityoverride.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CapabilityOverrideMutation) EdgeCleared(name string) bool {
	switch name {
	case capabilityoverride.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CapabilityOverrideMutation) ClearEdge(name string) error {
	switch name {
	case capabilityoverride.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown CapabilityOverride unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CapabilityOverrideMutation) ResetEdge(name string) error {
	switch name {
	case capabilityoverride.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown CapabilityOverride edge %s", name)
}

// CriticReviewMutation represents an operation that mutates the CriticReview nodes in the graph.
type CriticReviewMutation struct {
	config
	op                Op
	typ               string
	id                *string
	critic_id         *string
	critic_type       *criticreview.CriticType
	submission_hash   *string
	verdict           *criticreview.Verdict
	reason            *string
	suggestions       *[]string
	appendsuggestions []string
	attempt           *int
	addattempt        *int
	cached            *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	task              *string
	clearedtask       bool
	done              bool
	oldValue          func(context.Context) (*CriticReview, error)
	predicates        []predicate.CriticReview
}

var _ ent.Mutation = (*CriticReviewMutation)(nil)

// criticreviewOption allows management of the mutation configuration using functional options.
type criticreviewOption func(*CriticReviewMutation)

// newCriticReviewMutation creates new mutation for the CriticReview entity.
func newCriticReviewMutation(c config, op Op, opts ...criticreviewOption) *CriticReviewMutation {
	m := &CriticReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeCriticReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCriticReviewID sets the ID field of the mutation.
func withCriticReviewID(id string) criticreviewOption {
	return func(m *CriticReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *CriticReview
		)
		m.oldValue = func(ctx context.Context) (*CriticReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CriticReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCriticReview sets the old CriticReview of the mutation.
func withCriticReview(node *CriticReview) criticreviewOption {
	return func(m *CriticReviewMutation) {
		m.oldValue = func(context.Context) (*CriticReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CriticReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CriticReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CriticReview entities.
func (m *CriticReviewMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CriticReviewMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CriticReviewMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CriticReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *CriticReviewMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *CriticReviewMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the CriticReview entity.
// If the CriticReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriticReviewMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *CriticReviewMutation) ResetTaskID() {
	m.task = nil
}

// SetCriticID sets the "critic_id" field.
func (m *CriticReviewMutation) SetCriticID(s string) {
	m.critic_id = &s
}

// CriticID returns the value of the "critic_id" field in the mutation.
func (m *CriticReviewMutation) CriticID() (r string, exists bool) {
	v := m.critic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCriticID returns the old "critic_id" field's value of the CriticReview entity.
// If the CriticReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriticReviewMutation) OldCriticID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriticID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriticID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriticID: %w", err)
	}
	return oldValue.CriticID, nil
}

// ResetCriticID resets all changes to the "critic_id" field.
func (m *CriticReviewMutation) ResetCriticID() {
	m.critic_id = nil
}

// SetCriticType sets the "critic_type" field.
func (m *CriticReviewMutation) SetCriticType(ct criticreview.CriticType) {
	m.critic_type = &ct
}

// CriticType returns the value of the "critic_type" field in the mutation.
func (m *CriticReviewMutation) CriticType() (r criticreview.CriticType, exists bool) {
	v := m.critic_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCriticType returns the old "critic_type" field's value of the CriticReview entity.
// If the CriticReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriticReviewMutation) OldCriticType(ctx context.Context) (v criticreview.CriticType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriticType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriticType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriticType: %w", err)
	}
	return oldValue.CriticType, nil
}

// ResetCriticType resets all changes to the "critic_type" field.
func (m *CriticReviewMutation) ResetCriticType() {
	m.critic_type = nil
}

// SetSubmissionHash sets the "submission_hash" field.
func (m *CriticReviewMutation) SetSubmissionHash(s string) {
	m.submission_hash = &s
}

// SubmissionHash returns the value of the "submission_hash" field in the mutation.
func (m *CriticReviewMutation) SubmissionHash() (r string, exists bool) {
	v := m.submission_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmissionHash returns the old "submission_hash" field's value of the CriticReview entity.
// If the CriticReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriticReviewMutation) OldSubmissionHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmissionHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmissionHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmissionHash: %w", err)
	}
	return oldValue.SubmissionHash, nil
}

// ResetSubmissionHash resets all changes to the "submission_hash" field.
func (m *CriticReviewMutation) ResetSubmissionHash() {
	m.submission_hash = nil
}

// SetVerdict sets the "verdict" field.
func (m *CriticReviewMutation) SetVerdict(c criticreview.Verdict) {
	m.verdict = &c
}

// Verdict returns the value of the "verdict" field in the mutation.
func (m *CriticReviewMutation) Verdict() (r criticreview.Verdict, exists bool) {
	v := m.verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdict returns the old "verdict" field's value of the CriticReview entity.
// If the CriticReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriticReviewMutation) OldVerdict(ctx context.Context) (v criticreview.Verdict, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdict: %w", err)
	}
	return oldValue.Verdict, nil
}

// ResetVerdict resets all changes to the "verdict" field.
func (m *CriticReviewMutation) ResetVerdict() {
	m.verdict = nil
}

// SetReason sets the "reason" field.
func (m *CriticReviewMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *CriticReviewMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the CriticReview entity.
// If the CriticReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriticReviewMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *CriticReviewMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[criticreview.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *CriticReviewMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[criticreview.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *CriticReviewMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, criticreview.FieldReason)
}

// SetSuggestions sets the "suggestions" field.
func (m *CriticReviewMutation) SetSuggestions(s []string) {
	m.suggestions = &s
	m.appendsuggestions = nil
}

// Suggestions returns the value of the "suggestions" field in the mutation.
func (m *CriticReviewMutation) Suggestions() (r []string, exists bool) {
	v := m.suggestions
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestions returns the old "suggestions" field's value of the CriticReview entity.
// If the CriticReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriticReviewMutation) OldSuggestions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestions: %w", err)
	}
	return oldValue.Suggestions, nil
}

// AppendSuggestions adds s to the "suggestions" field.
func (m *CriticReviewMutation) AppendSuggestions(s []string) {
	m.appendsuggestions = append(m.appendsuggestions, s...)
}

// AppendedSuggestions returns the list of values that were appended to the "suggestions" field in this mutation.
func (m *CriticReviewMutation) AppendedSuggestions() ([]string, bool) {
	if len(m.appendsuggestions) == 0 {
		return nil, false
	}
	return m.appendsuggestions, true
}

// ClearSuggestions clears the value of the "suggestions" field.
func (m *CriticReviewMutation) ClearSuggestions() {
	m.suggestions = nil
	m.appendsuggestions = nil
	m.clearedFields[criticreview.FieldSuggestions] = struct{}{}
}

// SuggestionsCleared returns if the "suggestions" field was cleared in this mutation.
func (m *CriticReviewMutation) SuggestionsCleared() bool {
	_, ok := m.clearedFields[criticreview.FieldSuggestions]
	return ok
}

// ResetSuggestions resets all changes to the "suggestions" field.
func (m *CriticReviewMutation) ResetSuggestions() {
	m.suggestions = nil
	m.appendsuggestions = nil
	delete(m.clearedFields, criticreview.FieldSuggestions)
}

// SetAttempt sets the "attempt" field.
func (m *CriticReviewMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *CriticReviewMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the CriticReview entity.
// If the CriticReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriticReviewMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *CriticReviewMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *CriticReviewMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *CriticReviewMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetCached sets the "cached" field.
func (m *CriticReviewMutation) SetCached(b bool) {
	m.cached = &b
}

// Cached returns the value of the "cached" field in the mutation.
func (m *CriticReviewMutation) Cached() (r bool, exists bool) {
	v := m.cached
	if v == nil {
		return
	}
	return *v, true
}

// OldCached returns the old "cached" field's value of the CriticReview entity.
// If the CriticReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriticReviewMutation) OldCached(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCached is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCached requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCached: %w", err)
	}
	return oldValue.Cached, nil
}

// ResetCached resets all changes to the "cached" field.
func (m *CriticReviewMutation) ResetCached() {
	m.cached = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CriticReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CriticReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CriticReview entity.
// If the CriticReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CriticReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CriticReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *CriticReviewMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[criticreview.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *CriticReviewMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *CriticReviewMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *CriticReviewMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the CriticReviewMutation builder.
func (m *CriticReviewMutation) Where(ps ...predicate.CriticReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CriticReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CriticReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CriticReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CriticReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CriticReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CriticReview).
func (m *CriticReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CriticReviewMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.task != nil {
		fields = append(fields, criticreview.FieldTaskID)
	}
	if m.critic_id != nil {
		fields = append(fields, criticreview.FieldCriticID)
	}
	if m.critic_type != nil {
		fields = append(fields, criticreview.FieldCriticType)
	}
	if m.submission_hash != nil {
		fields = append(fields, criticreview.FieldSubmissionHash)
	}
	if m.verdict != nil {
		fields = append(fields, criticreview.FieldVerdict)
	}
	if m.reason != nil {
		fields = append(fields, criticreview.FieldReason)
	}
	if m.suggestions != nil {
		fields = append(fields, criticreview.FieldSuggestions)
	}
	if m.attempt != nil {
		fields = append(fields, criticreview.FieldAttempt)
	}
	if m.cached != nil {
		fields = append(fields, criticreview.FieldCached)
	}
	if m.created_at != nil {
		fields = append(fields, criticreview.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CriticReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case criticreview.FieldTaskID:
		return m.TaskID()
	case criticreview.FieldCriticID:
		return m.CriticID()
	case criticreview.FieldCriticType:
		return m.CriticType()
	case criticreview.FieldSubmissionHash:
		return m.SubmissionHash()
	case criticreview.FieldVerdict:
		return m.Verdict()
	case criticreview.FieldReason:
		return m.Reason()
	case criticreview.FieldSuggestions:
		return m.Suggestions()
	case criticreview.FieldAttempt:
		return m.Attempt()
	case criticreview.FieldCached:
		return m.Cached()
	case criticreview.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CriticReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case criticreview.FieldTaskID:
		return m.OldTaskID(ctx)
	case criticreview.FieldCriticID:
		return m.OldCriticID(ctx)
	case criticreview.FieldCriticType:
		return m.OldCriticType(ctx)
	case criticreview.FieldSubmissionHash:
		return m.OldSubmissionHash(ctx)
	case criticreview.FieldVerdict:
		return m.OldVerdict(ctx)
	case criticreview.FieldReason:
		return m.OldReason(ctx)
	case criticreview.FieldSuggestions:
		return m.OldSuggestions(ctx)
	case criticreview.FieldAttempt:
		return m.OldAttempt(ctx)
	case criticreview.FieldCached:
		return m.OldCached(ctx)
	case criticreview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CriticReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CriticReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case criticreview.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case criticreview.FieldCriticID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriticID(v)
		return nil
	case criticreview.FieldCriticType:
		v, ok := value.(criticreview.CriticType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriticType(v)
		return nil
	case criticreview.FieldSubmissionHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmissionHash(v)
		return nil
	case criticreview.FieldVerdict:
		v, ok := value.(criticreview.Verdict)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdict(v)
		return nil
	case criticreview.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case criticreview.FieldSuggestions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestions(v)
		return nil
	case criticreview.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case criticreview.FieldCached:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCached(v)
		return nil
	case criticreview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CriticReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CriticReviewMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, criticreview.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CriticReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case criticreview.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CriticReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case criticreview.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown CriticReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CriticReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(criticreview.FieldReason) {
		fields = append(fields, criticreview.FieldReason)
	}
	if m.FieldCleared(criticreview.FieldSuggestions) {
		fields = append(fields, criticreview.FieldSuggestions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CriticReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CriticReviewMutation) ClearField(name string) error {
	switch name {
	case criticreview.FieldReason:
		m.ClearReason()
		return nil
	case criticreview.FieldSuggestions:
		m.ClearSuggestions()
		return nil
	}
	return fmt.Errorf("unknown CriticReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CriticReviewMutation) ResetField(name string) error {
	switch name {
	case criticreview.FieldTaskID:
		m.ResetTaskID()
		return nil
	case criticreview.FieldCriticID:
		m.ResetCriticID()
		return nil
	case criticreview.FieldCriticType:
		m.ResetCriticType()
		return nil
	case criticreview.FieldSubmissionHash:
		m.ResetSubmissionHash()
		return nil
	case criticreview.FieldVerdict:
		m.ResetVerdict()
		return nil
	case criticreview.FieldReason:
		m.ResetReason()
		return nil
	case criticreview.FieldSuggestions:
		m.ResetSuggestions()
		return nil
	case criticreview.FieldAttempt:
		m.ResetAttempt()
		return nil
	case criticreview.FieldCached:
		m.ResetCached()
		return nil
	case criticreview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CriticReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CriticReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, criticreview.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CriticReviewMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case criticreview.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CriticReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CriticReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CriticReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, criticreview.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CriticReviewMutation) EdgeCleared(name string) bool {
	switch name {
	case criticreview.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CriticReviewMutation) ClearEdge(name string) error {
	switch name {
	case criticreview.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown CriticReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CriticReviewMutation) ResetEdge(name string) error {
	switch name {
	case criticreview.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown CriticReview edge %s", name)
}

// DeliberationMutation represents an operation that mutates the Deliberation nodes in the graph.
type DeliberationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	topic         *string
	opened_by     *string
	status        *deliberation.Status
	resolution    *string
	created_at    *time.Time
	resolved_at   *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	votes         map[string]struct{}
	removedvotes  map[string]struct{}
	clearedvotes  bool
	done          bool
	oldValue      func(context.Context) (*Deliberation, error)
	predicates    []predicate.Deliberation
}

var _ ent.Mutation = (*DeliberationMutation)(nil)

// deliberationOption allows management of the mutation configuration using functional options.
type deliberationOption func(*DeliberationMutation)

// newDeliberationMutation creates new mutation for the Deliberation entity.
func newDeliberationMutation(c config, op Op, opts ...deliberationOption) *DeliberationMutation {
	m := &DeliberationMutation{
		config:        c,
		op:            op,
		typ:           TypeDeliberation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeliberationID sets the ID field of the mutation.
func withDeliberationID(id string) deliberationOption {
	return func(m *DeliberationMutation) {
		var (
			err   error
			once  sync.Once
			value *Deliberation
		)
		m.oldValue = func(ctx context.Context) (*Deliberation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Deliberation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeliberation sets the old Deliberation of the mutation.
func withDeliberation(node *Deliberation) deliberationOption {
	return func(m *DeliberationMutation) {
		m.oldValue = func(context.Context) (*Deliberation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeliberationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeliberationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Deliberation entities.
func (m *DeliberationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeliberationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeliberationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Deliberation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *DeliberationMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *DeliberationMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *DeliberationMutation) ClearTaskID() {
	m.task = nil
	m.clearedFields[deliberation.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *DeliberationMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[deliberation.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *DeliberationMutation) ResetTaskID() {
	m.task = nil
	delete(m.clearedFields, deliberation.FieldTaskID)
}

// SetTopic sets the "topic" field.
func (m *DeliberationMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *DeliberationMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *DeliberationMutation) ResetTopic() {
	m.topic = nil
}

// SetOpenedBy sets the "opened_by" field.
func (m *DeliberationMutation) SetOpenedBy(s string) {
	m.opened_by = &s
}

// OpenedBy returns the value of the "opened_by" field in the mutation.
func (m *DeliberationMutation) OpenedBy() (r string, exists bool) {
	v := m.opened_by
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenedBy returns the old "opened_by" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldOpenedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenedBy: %w", err)
	}
	return oldValue.OpenedBy, nil
}

// ResetOpenedBy resets all changes to the "opened_by" field.
func (m *DeliberationMutation) ResetOpenedBy() {
	m.opened_by = nil
}

// SetStatus sets the "status" field.
func (m *DeliberationMutation) SetStatus(d deliberation.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DeliberationMutation) Status() (r deliberation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldStatus(ctx context.Context) (v deliberation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DeliberationMutation) ResetStatus() {
	m.status = nil
}

// SetResolution sets the "resolution" field.
func (m *DeliberationMutation) SetResolution(s string) {
	m.resolution = &s
}

// Resolution returns the value of the "resolution" field in the mutation.
func (m *DeliberationMutation) Resolution() (r string, exists bool) {
	v := m.resolution
	if v == nil {
		return
	}
	return *v, true
}

// OldResolution returns the old "resolution" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldResolution(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolution: %w", err)
	}
	return oldValue.Resolution, nil
}

// ClearResolution clears the value of the "resolution" field.
func (m *DeliberationMutation) ClearResolution() {
	m.resolution = nil
	m.clearedFields[deliberation.FieldResolution] = struct{}{}
}

// ResolutionCleared returns if the "resolution" field was cleared in this mutation.
func (m *DeliberationMutation) ResolutionCleared() bool {
	_, ok := m.clearedFields[deliberation.FieldResolution]
	return ok
}

// ResetResolution resets all changes to the "resolution" field.
func (m *DeliberationMutation) ResetResolution() {
	m.resolution = nil
	delete(m.clearedFields, deliberation.FieldResolution)
}

// SetCreatedAt sets the "created_at" field.
func (m *DeliberationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeliberationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeliberationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *DeliberationMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *DeliberationMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *DeliberationMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[deliberation.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *DeliberationMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[deliberation.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *DeliberationMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, deliberation.FieldResolvedAt)
}

// ClearTask clears the "task" edge to the Task entity.
func (m *DeliberationMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[deliberation.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *DeliberationMutation) TaskCleared() bool {
	return m.TaskIDCleared() || m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *DeliberationMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *DeliberationMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// AddVoteIDs adds the "votes" edge to the Vote entity by ids.
func (m *DeliberationMutation) AddVoteIDs(ids ...string) {
	if m.votes == nil {
		m.votes = make(map[string]struct{})
	}
	for i := range ids {
		m.votes[ids[i]] = struct{}{}
	}
}

// ClearVotes clears the "votes" edge to the Vote entity.
func (m *DeliberationMutation) ClearVotes() {
	m.clearedvotes = true
}

// VotesCleared reports if the "votes" edge to the Vote entity was cleared.
func (m *DeliberationMutation) VotesCleared() bool {
	return m.clearedvotes
}

// RemoveVoteIDs removes the "votes" edge to the Vote entity by IDs.
func (m *DeliberationMutation) RemoveVoteIDs(ids ...string) {
	if m.removedvotes == nil {
		m.removedvotes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.votes, ids[i])
		m.removedvotes[ids[i]] = struct{}{}
	}
}

// RemovedVotes returns the removed IDs of the "votes" edge to the Vote entity.
func (m *DeliberationMutation) RemovedVotesIDs() (ids []string) {
	for id := range m.removedvotes {
		ids = append(ids, id)
	}
	return
}

// VotesIDs returns the "votes" edge IDs in the mutation.
func (m *DeliberationMutation) VotesIDs() (ids []string) {
	for id := range m.votes {
		ids = append(ids, id)
	}
	return
}

// ResetVotes resets all changes to the "votes" edge.
func (m *DeliberationMutation) ResetVotes() {
	m.votes = nil
	m.clearedvotes = false
	m.removedvotes = nil
}

// Where appends a list predicates to the DeliberationMutation builder.
func (m *DeliberationMutation) Where(ps ...predicate.Deliberation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeliberationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeliberationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Deliberation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeliberationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeliberationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Deliberation).
func (m *DeliberationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeliberationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task != nil {
		fields = append(fields, deliberation.FieldTaskID)
	}
	if m.topic != nil {
		fields = append(fields, deliberation.FieldTopic)
	}
	if m.opened_by != nil {
		fields = append(fields, deliberation.FieldOpenedBy)
	}
	if m.status != nil {
		fields = append(fields, deliberation.FieldStatus)
	}
	if m.resolution != nil {
		fields = append(fields, deliberation.FieldResolution)
	}
	if m.created_at != nil {
		fields = append(fields, deliberation.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, deliberation.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeliberationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deliberation.FieldTaskID:
		return m.TaskID()
	case deliberation.FieldTopic:
		return m.Topic()
	case deliberation.FieldOpenedBy:
		return m.OpenedBy()
	case deliberation.FieldStatus:
		return m.Status()
	case deliberation.FieldResolution:
		return m.Resolution()
	case deliberation.FieldCreatedAt:
		return m.CreatedAt()
	case deliberation.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeliberationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deliberation.FieldTaskID:
		return m.OldTaskID(ctx)
	case deliberation.FieldTopic:
		return m.OldTopic(ctx)
	case deliberation.FieldOpenedBy:
		return m.OldOpenedBy(ctx)
	case deliberation.FieldStatus:
		return m.OldStatus(ctx)
	case deliberation.FieldResolution:
		return m.OldResolution(ctx)
	case deliberation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case deliberation.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Deliberation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliberationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deliberation.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case deliberation.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case deliberation.FieldOpenedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenedBy(v)
		return nil
	case deliberation.FieldStatus:
		v, ok := value.(deliberation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case deliberation.FieldResolution:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolution(v)
		return nil
	case deliberation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case deliberation.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Deliberation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeliberationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeliberationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliberationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Deliberation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeliberationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deliberation.FieldTaskID) {
		fields = append(fields, deliberation.FieldTaskID)
	}
	if m.FieldCleared(deliberation.FieldResolution) {
		fields = append(fields, deliberation.FieldResolution)
	}
	if m.FieldCleared(deliberation.FieldResolvedAt) {
		fields = append(fields, deliberation.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeliberationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeliberationMutation) ClearField(name string) error {
	switch name {
	case deliberation.FieldTaskID:
		m.ClearTaskID()
		return nil
	case deliberation.FieldResolution:
		m.ClearResolution()
		return nil
	case deliberation.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Deliberation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeliberationMutation) ResetField(name string) error {
	switch name {
	case deliberation.FieldTaskID:
		m.ResetTaskID()
		return nil
	case deliberation.FieldTopic:
		m.ResetTopic()
		return nil
	case deliberation.FieldOpenedBy:
		m.ResetOpenedBy()
		return nil
	case deliberation.FieldStatus:
		m.ResetStatus()
		return nil
	case deliberation.FieldResolution:
		m.ResetResolution()
		return nil
	case deliberation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case deliberation.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Deliberation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeliberationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.task != nil {
		edges = append(edges, deliberation.EdgeTask)
	}
	if m.votes != nil {
		edges = append(edges, deliberation.EdgeVotes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeliberationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case deliberation.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	case deliberation.EdgeVotes:
		ids := make([]ent.Value, 0, len(m.votes))
		for id := range m.votes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeliberationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedvotes != nil {
		edges = append(edges, deliberation.EdgeVotes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeliberationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case deliberation.EdgeVotes:
		ids := make([]ent.Value, 0, len(m.removedvotes))
		for id := range m.removedvotes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeliberationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtask {
		edges = append(edges, deliberation.EdgeTask)
	}
	if m.clearedvotes {
		edges = append(edges, deliberation.EdgeVotes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeliberationMutation) EdgeCleared(name string) bool {
	switch name {
	case deliberation.EdgeTask:
		return m.clearedtask
	case deliberation.EdgeVotes:
		return m.clearedvotes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeliberationMutation) ClearEdge(name string) error {
	switch name {
	case deliberation.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Deliberation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeliberationMutation) ResetEdge(name string) error {
	switch name {
	case deliberation.EdgeTask:
		m.ResetTask()
		return nil
	case deliberation.EdgeVotes:
		m.ResetVotes()
		return nil
	}
	return fmt.Errorf("unknown Deliberation edge %s", name)
}

// ExecutionMutation represents an operation that mutates the Execution nodes in the graph.
type ExecutionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	task_id            *string
	code               *string
	language           *string
	dependencies       *[]string
	appenddependencies []string
	status             *execution.Status
	summary            *map[string]interface{}
	security_result    *map[string]interface{}
	error_message      *string
	sandbox_id         *string
	started_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	agent              *string
	clearedagent       bool
	done               bool
	oldValue           func(context.Context) (*Execution, error)
	predicates         []predicate.Execution
}

var _ ent.Mutation = (*ExecutionMutation)(nil)

// executionOption allows management of the mutation configuration using functional options.
type executionOption func(*ExecutionMutation)

// newExecutionMutation creates new mutation for the Execution entity.
func newExecutionMutation(c config, op Op, opts ...executionOption) *ExecutionMutation {
	m := &ExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionID sets the ID field of the mutation.
func withExecutionID(id string) executionOption {
	return func(m *ExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *Execution
		)
		m.oldValue = func(ctx context.Context) (*Execution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Execution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecution sets the old Execution of the mutation.
func withExecution(node *Execution) executionOption {
	return func(m *ExecutionMutation) {
		m.oldValue = func(context.Context) (*Execution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Execution entities.
func (m *ExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Execution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *ExecutionMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ExecutionMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ExecutionMutation) ResetAgentID() {
	m.agent = nil
}

// SetTaskID sets the "task_id" field.
func (m *ExecutionMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ExecutionMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *ExecutionMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[execution.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *ExecutionMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[execution.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ExecutionMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, execution.FieldTaskID)
}

// SetCode sets the "code" field.
func (m *ExecutionMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *ExecutionMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *ExecutionMutation) ResetCode() {
	m.code = nil
}

// SetLanguage sets the "language" field.
func (m *ExecutionMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *ExecutionMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *ExecutionMutation) ResetLanguage() {
	m.language = nil
}

// SetDependencies sets the "dependencies" field.
func (m *ExecutionMutation) SetDependencies(s []string) {
	m.dependencies = &s
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *ExecutionMutation) Dependencies() (r []string, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldDependencies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds s to the "dependencies" field.
func (m *ExecutionMutation) AppendDependencies(s []string) {
	m.appenddependencies = append(m.appenddependencies, s...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *ExecutionMutation) AppendedDependencies() ([]string, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *ExecutionMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[execution.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *ExecutionMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[execution.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *ExecutionMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, execution.FieldDependencies)
}

// SetStatus sets the "status" field.
func (m *ExecutionMutation) SetStatus(e execution.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionMutation) Status() (r execution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStatus(ctx context.Context) (v execution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetSummary sets the "summary" field.
func (m *ExecutionMutation) SetSummary(value map[string]interface{}) {
	m.summary = &value
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ExecutionMutation) Summary() (r map[string]interface{}, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldSummary(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ExecutionMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[execution.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ExecutionMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[execution.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ExecutionMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, execution.FieldSummary)
}

// SetSecurityResult sets the "security_result" field.
func (m *ExecutionMutation) SetSecurityResult(value map[string]interface{}) {
	m.security_result = &value
}

// SecurityResult returns the value of the "security_result" field in the mutation.
func (m *ExecutionMutation) SecurityResult() (r map[string]interface{}, exists bool) {
	v := m.security_result
	if v == nil {
		return
	}
	return *v, true
}

// OldSecurityResult returns the old "security_result" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldSecurityResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecurityResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecurityResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecurityResult: %w", err)
	}
	return oldValue.SecurityResult, nil
}

// ClearSecurityResult clears the value of the "security_result" field.
func (m *ExecutionMutation) ClearSecurityResult() {
	m.security_result = nil
	m.clearedFields[execution.FieldSecurityResult] = struct{}{}
}

// SecurityResultCleared returns if the "security_result" field was cleared in this mutation.
func (m *ExecutionMutation) SecurityResultCleared() bool {
	_, ok := m.clearedFields[execution.FieldSecurityResult]
	return ok
}

// ResetSecurityResult resets all changes to the "security_result" field.
func (m *ExecutionMutation) ResetSecurityResult() {
	m.security_result = nil
	delete(m.clearedFields, execution.FieldSecurityResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[execution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[execution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, execution.FieldErrorMessage)
}

// SetSandboxID sets the "sandbox_id" field.
func (m *ExecutionMutation) SetSandboxID(s string) {
	m.sandbox_id = &s
}

// SandboxID returns the value of the "sandbox_id" field in the mutation.
func (m *ExecutionMutation) SandboxID() (r string, exists bool) {
	v := m.sandbox_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSandboxID returns the old "sandbox_id" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldSandboxID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSandboxID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSandboxID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSandboxID: %w", err)
	}
	return oldValue.SandboxID, nil
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (m *ExecutionMutation) ClearSandboxID() {
	m.sandbox_id = nil
	m.clearedFields[execution.FieldSandboxID] = struct{}{}
}

// SandboxIDCleared returns if the "sandbox_id" field was cleared in this mutation.
func (m *ExecutionMutation) SandboxIDCleared() bool {
	_, ok := m.clearedFields[execution.FieldSandboxID]
	return ok
}

// ResetSandboxID resets all changes to the "sandbox_id" field.
func (m *ExecutionMutation) ResetSandboxID() {
	m.sandbox_id = nil
	delete(m.clearedFields, execution.FieldSandboxID)
}

// SetStartedAt sets the "started_at" field.
func (m *ExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[execution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[execution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, execution.FieldCompletedAt)
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *ExecutionMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[execution.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *ExecutionMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *ExecutionMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *ExecutionMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the ExecutionMutation builder.
func (m *ExecutionMutation) Where(ps ...predicate.Execution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Execution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Execution).
func (m *ExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.agent != nil {
		fields = append(fields, execution.FieldAgentID)
	}
	if m.task_id != nil {
		fields = append(fields, execution.FieldTaskID)
	}
	if m.code != nil {
		fields = append(fields, execution.FieldCode)
	}
	if m.language != nil {
		fields = append(fields, execution.FieldLanguage)
	}
	if m.dependencies != nil {
		fields = append(fields, execution.FieldDependencies)
	}
	if m.status != nil {
		fields = append(fields, execution.FieldStatus)
	}
	if m.summary != nil {
		fields = append(fields, execution.FieldSummary)
	}
	if m.security_result != nil {
		fields = append(fields, execution.FieldSecurityResult)
	}
	if m.error_message != nil {
		fields = append(fields, execution.FieldErrorMessage)
	}
	if m.sandbox_id != nil {
		fields = append(fields, execution.FieldSandboxID)
	}
	if m.started_at != nil {
		fields = append(fields, execution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, execution.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case execution.FieldAgentID:
		return m.AgentID()
	case execution.FieldTaskID:
		return m.TaskID()
	case execution.FieldCode:
		return m.Code()
	case execution.FieldLanguage:
		return m.Language()
	case execution.FieldDependencies:
		return m.Dependencies()
	case execution.FieldStatus:
		return m.Status()
	case execution.FieldSummary:
		return m.Summary()
	case execution.FieldSecurityResult:
		return m.SecurityResult()
	case execution.FieldErrorMessage:
		return m.ErrorMessage()
	case execution.FieldSandboxID:
		return m.SandboxID()
	case execution.FieldStartedAt:
		return m.StartedAt()
	case execution.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case execution.FieldAgentID:
		return m.OldAgentID(ctx)
	case execution.FieldTaskID:
		return m.OldTaskID(ctx)
	case execution.FieldCode:
		return m.OldCode(ctx)
	case execution.FieldLanguage:
		return m.OldLanguage(ctx)
	case execution.FieldDependencies:
		return m.OldDependencies(ctx)
	case execution.FieldStatus:
		return m.OldStatus(ctx)
	case execution.FieldSummary:
		return m.OldSummary(ctx)
	case execution.FieldSecurityResult:
		return m.OldSecurityResult(ctx)
	case execution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case execution.FieldSandboxID:
		return m.OldSandboxID(ctx)
	case execution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case execution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Execution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case execution.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case execution.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case execution.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case execution.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case execution.FieldDependencies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case execution.FieldStatus:
		v, ok := value.(execution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case execution.FieldSummary:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case execution.FieldSecurityResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecurityResult(v)
		return nil
	case execution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case execution.FieldSandboxID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSandboxID(v)
		return nil
	case execution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case execution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Execution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Execution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(execution.FieldTaskID) {
		fields = append(fields, execution.FieldTaskID)
	}
	if m.FieldCleared(execution.FieldDependencies) {
		fields = append(fields, execution.FieldDependencies)
	}
	if m.FieldCleared(execution.FieldSummary) {
		fields = append(fields, execution.FieldSummary)
	}
	if m.FieldCleared(execution.FieldSecurityResult) {
		fields = append(fields, execution.FieldSecurityResult)
	}
	if m.FieldCleared(execution.FieldErrorMessage) {
		fields = append(fields, execution.FieldErrorMessage)
	}
	if m.FieldCleared(execution.FieldSandboxID) {
		fields = append(fields, execution.FieldSandboxID)
	}
	if m.FieldCleared(execution.FieldCompletedAt) {
		fields = append(fields, execution.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionMutation) ClearField(name string) error {
	switch name {
	case execution.FieldTaskID:
		m.ClearTaskID()
		return nil
	case execution.FieldDependencies:
		m.ClearDependencies()
		return nil
	case execution.FieldSummary:
		m.ClearSummary()
		return nil
	case execution.FieldSecurityResult:
		m.ClearSecurityResult()
		return nil
	case execution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case execution.FieldSandboxID:
		m.ClearSandboxID()
		return nil
	case execution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Execution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionMutation) ResetField(name string) error {
	switch name {
	case execution.FieldAgentID:
		m.ResetAgentID()
		return nil
	case execution.FieldTaskID:
		m.ResetTaskID()
		return nil
	case execution.FieldCode:
		m.ResetCode()
		return nil
	case execution.FieldLanguage:
		m.ResetLanguage()
		return nil
	case execution.FieldDependencies:
		m.ResetDependencies()
		return nil
	case execution.FieldStatus:
		m.ResetStatus()
		return nil
	case execution.FieldSummary:
		m.ResetSummary()
		return nil
	case execution.FieldSecurityResult:
		m.ResetSecurityResult()
		return nil
	case execution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case execution.FieldSandboxID:
		m.ResetSandboxID()
		return nil
	case execution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case execution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Execution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, execution.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case execution.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, execution.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case execution.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionMutation) ClearEdge(name string) error {
	switch name {
	case execution.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown Execution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionMutation) ResetEdge(name string) error {
	switch name {
	case execution.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown Execution edge %s", name)
}

// ModelConfigMutation represents an operation that mutates the ModelConfig nodes in the graph.
type ModelConfigMutation struct {
	config
	op             Op
	typ            string
	id             *string
	model          *string
	temperature    *float64
	addtemperature *float64
	max_tokens     *int
	addmax_tokens  *int
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	agent          *string
	clearedagent   bool
	done           bool
	oldValue       func(context.Context) (*ModelConfig, error)
	predicates     []predicate.ModelConfig
}

var _ ent.Mutation = (*ModelConfigMutation)(nil)

// modelconfigOption allows management of the mutation configuration using functional options.
type modelconfigOption func(*ModelConfigMutation)

// newModelConfigMutation creates new mutation for the ModelConfig entity.
func newModelConfigMutation(c config, op Op, opts ...modelconfigOption) *ModelConfigMutation {
	m := &ModelConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeModelConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelConfigID sets the ID field of the mutation.
func withModelConfigID(id string) modelconfigOption {
	return func(m *ModelConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelConfig
		)
		m.oldValue = func(ctx context.Context) (*ModelConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelConfig sets the old ModelConfig of the mutation.
func withModelConfig(node *ModelConfig) modelconfigOption {
	return func(m *ModelConfigMutation) {
		m.oldValue = func(context.Context) (*ModelConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelConfig entities.
func (m *ModelConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *ModelConfigMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ModelConfigMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ModelConfigMutation) ResetAgentID() {
	m.agent = nil
}

// SetModel sets the "model" field.
func (m *ModelConfigMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ModelConfigMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ModelConfigMutation) ResetModel() {
	m.model = nil
}

// SetTemperature sets the "temperature" field.
func (m *ModelConfigMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *ModelConfigMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldTemperature(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *ModelConfigMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *ModelConfigMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ClearTemperature clears the value of the "temperature" field.
func (m *ModelConfigMutation) ClearTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	m.clearedFields[modelconfig.FieldTemperature] = struct{}{}
}

// TemperatureCleared returns if the "temperature" field was cleared in this mutation.
func (m *ModelConfigMutation) TemperatureCleared() bool {
	_, ok := m.clearedFields[modelconfig.FieldTemperature]
	return ok
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *ModelConfigMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	delete(m.clearedFields, modelconfig.FieldTemperature)
}

// SetMaxTokens sets the "max_tokens" field.
func (m *ModelConfigMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *ModelConfigMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *ModelConfigMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *ModelConfigMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxTokens clears the value of the "max_tokens" field.
func (m *ModelConfigMutation) ClearMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
	m.clearedFields[modelconfig.FieldMaxTokens] = struct{}{}
}

// MaxTokensCleared returns if the "max_tokens" field was cleared in this mutation.
func (m *ModelConfigMutation) MaxTokensCleared() bool {
	_, ok := m.clearedFields[modelconfig.FieldMaxTokens]
	return ok
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *ModelConfigMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
	delete(m.clearedFields, modelconfig.FieldMaxTokens)
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ModelConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ModelConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ModelConfig entity.
// If the ModelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ModelConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *ModelConfigMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[modelconfig.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *ModelConfigMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *ModelConfigMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *ModelConfigMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the ModelConfigMutation builder.
func (m *ModelConfigMutation) Where(ps ...predicate.ModelConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelConfig).
func (m *ModelConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelConfigMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.agent != nil {
		fields = append(fields, modelconfig.FieldAgentID)
	}
	if m.model != nil {
		fields = append(fields, modelconfig.FieldModel)
	}
	if m.temperature != nil {
		fields = append(fields, modelconfig.FieldTemperature)
	}
	if m.max_tokens != nil {
		fields = append(fields, modelconfig.FieldMaxTokens)
	}
	if m.created_at != nil {
		fields = append(fields, modelconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, modelconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelconfig.FieldAgentID:
		return m.AgentID()
	case modelconfig.FieldModel:
		return m.Model()
	case modelconfig.FieldTemperature:
		return m.Temperature()
	case modelconfig.FieldMaxTokens:
		return m.MaxTokens()
	case modelconfig.FieldCreatedAt:
		return m.CreatedAt()
	case modelconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelconfig.FieldAgentID:
		return m.OldAgentID(ctx)
	case modelconfig.FieldModel:
		return m.OldModel(ctx)
	case modelconfig.FieldTemperature:
		return m.OldTemperature(ctx)
	case modelconfig.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case modelconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case modelconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelconfig.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case modelconfig.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case modelconfig.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case modelconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case modelconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case modelconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelConfigMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, modelconfig.FieldTemperature)
	}
	if m.addmax_tokens != nil {
		fields = append(fields, modelconfig.FieldMaxTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modelconfig.FieldTemperature:
		return m.AddedTemperature()
	case modelconfig.FieldMaxTokens:
		return m.AddedMaxTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modelconfig.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case modelconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	}
	return fmt.Errorf("unknown ModelConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modelconfig.FieldTemperature) {
		fields = append(fields, modelconfig.FieldTemperature)
	}
	if m.FieldCleared(modelconfig.FieldMaxTokens) {
		fields = append(fields, modelconfig.FieldMaxTokens)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelConfigMutation) ClearField(name string) error {
	switch name {
	case modelconfig.FieldTemperature:
		m.ClearTemperature()
		return nil
	case modelconfig.FieldMaxTokens:
		m.ClearMaxTokens()
		return nil
	}
	return fmt.Errorf("unknown ModelConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelConfigMutation) ResetField(name string) error {
	switch name {
	case modelconfig.FieldAgentID:
		m.ResetAgentID()
		return nil
	case modelconfig.FieldModel:
		m.ResetModel()
		return nil
	case modelconfig.FieldTemperature:
		m.ResetTemperature()
		return nil
	case modelconfig.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case modelconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case modelconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, modelconfig.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelConfigMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case modelconfig.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, modelconfig.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelConfigMutation) EdgeCleared(name string) bool {
	switch name {
	case modelconfig.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelConfigMutation) ClearEdge(name string) error {
	switch name {
	case modelconfig.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown ModelConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelConfigMutation) ResetEdge(name string) error {
	switch name {
	case modelconfig.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown ModelConfig edge %s", name)
}

// SandboxRecordMutation represents an operation that mutates the SandboxRecord nodes in the graph.
type SandboxRecordMutation struct {
	config
	op             Op
	typ            string
	id             *string
	container_id   *string
	agent_id       *string
	image          *string
	network_mode   *string
	created_at     *time.Time
	destroyed_at   *time.Time
	destroy_reason *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*SandboxRecord, error)
	predicates     []predicate.SandboxRecord
}

var _ ent.Mutation = (*SandboxRecordMutation)(nil)

// sandboxrecordOption allows management of the mutation configuration using functional options.
type sandboxrecordOption func(*SandboxRecordMutation)

// newSandboxRecordMutation creates new mutation for the SandboxRecord entity.
func newSandboxRecordMutation(c config, op Op, opts ...sandboxrecordOption) *SandboxRecordMutation {
	m := &SandboxRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeSandboxRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSandboxRecordID sets the ID field of the mutation.
func withSandboxRecordID(id string) sandboxrecordOption {
	return func(m *SandboxRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *SandboxRecord
		)
		m.oldValue = func(ctx context.Context) (*SandboxRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SandboxRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSandboxRecord sets the old SandboxRecord of the mutation.
func withSandboxRecord(node *SandboxRecord) sandboxrecordOption {
	return func(m *SandboxRecordMutation) {
		m.oldValue = func(context.Context) (*SandboxRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SandboxRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SandboxRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SandboxRecord entities.
func (m *SandboxRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SandboxRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SandboxRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SandboxRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContainerID sets the "container_id" field.
func (m *SandboxRecordMutation) SetContainerID(s string) {
	m.container_id = &s
}

// ContainerID returns the value of the "container_id" field in the mutation.
func (m *SandboxRecordMutation) ContainerID() (r string, exists bool) {
	v := m.container_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContainerID returns the old "container_id" field's value of the SandboxRecord entity.
// If the SandboxRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRecordMutation) OldContainerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContainerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContainerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContainerID: %w", err)
	}
	return oldValue.ContainerID, nil
}

// ResetContainerID resets all changes to the "container_id" field.
func (m *SandboxRecordMutation) ResetContainerID() {
	m.container_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *SandboxRecordMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *SandboxRecordMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the SandboxRecord entity.
// If the SandboxRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRecordMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *SandboxRecordMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetImage sets the "image" field.
func (m *SandboxRecordMutation) SetImage(s string) {
	m.image = &s
}

// Image returns the value of the "image" field in the mutation.
func (m *SandboxRecordMutation) Image() (r string, exists bool) {
	v := m.image
	if v == nil {
		return
	}
	return *v, true
}

// OldImage returns the old "image" field's value of the SandboxRecord entity.
// If the SandboxRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRecordMutation) OldImage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImage: %w", err)
	}
	return oldValue.Image, nil
}

// ResetImage resets all changes to the "image" field.
func (m *SandboxRecordMutation) ResetImage() {
	m.image = nil
}

// SetNetworkMode sets the "network_mode" field.
func (m *SandboxRecordMutation) SetNetworkMode(s string) {
	m.network_mode = &s
}

// NetworkMode returns the value of the "network_mode" field in the mutation.
func (m *SandboxRecordMutation) NetworkMode() (r string, exists bool) {
	v := m.network_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldNetworkMode returns the old "network_mode" field's value of the SandboxRecord entity.
// If the SandboxRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRecordMutation) OldNetworkMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetworkMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetworkMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetworkMode: %w", err)
	}
	return oldValue.NetworkMode, nil
}

// ResetNetworkMode resets all changes to the "network_mode" field.
func (m *SandboxRecordMutation) ResetNetworkMode() {
	m.network_mode = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SandboxRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SandboxRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SandboxRecord entity.
// If the SandboxRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SandboxRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDestroyedAt sets the "destroyed_at" field.
func (m *SandboxRecordMutation) SetDestroyedAt(t time.Time) {
	m.destroyed_at = &t
}

// DestroyedAt returns the value of the "destroyed_at" field in the mutation.
func (m *SandboxRecordMutation) DestroyedAt() (r time.Time, exists bool) {
	v := m.destroyed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDestroyedAt returns the old "destroyed_at" field's value of the SandboxRecord entity.
// If the SandboxRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRecordMutation) OldDestroyedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestroyedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestroyedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestroyedAt: %w", err)
	}
	return oldValue.DestroyedAt, nil
}

// ClearDestroyedAt clears the value of the "destroyed_at" field.
func (m *SandboxRecordMutation) ClearDestroyedAt() {
	m.destroyed_at = nil
	m.clearedFields[sandboxrecord.FieldDestroyedAt] = struct{}{}
}

// DestroyedAtCleared returns if the "destroyed_at" field was cleared in this mutation.
func (m *SandboxRecordMutation) DestroyedAtCleared() bool {
	_, ok := m.clearedFields[sandboxrecord.FieldDestroyedAt]
	return ok
}

// ResetDestroyedAt resets all changes to the "destroyed_at" field.
func (m *SandboxRecordMutation) ResetDestroyedAt() {
	m.destroyed_at = nil
	delete(m.clearedFields, sandboxrecord.FieldDestroyedAt)
}

// SetDestroyReason sets the "destroy_reason" field.
func (m *SandboxRecordMutation) SetDestroyReason(s string) {
	m.destroy_reason = &s
}

// DestroyReason returns the value of the "destroy_reason" field in the mutation.
func (m *SandboxRecordMutation) DestroyReason() (r string, exists bool) {
	v := m.destroy_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldDestroyReason returns the old "destroy_reason" field's value of the SandboxRecord entity.
// If the SandboxRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SandboxRecordMutation) OldDestroyReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestroyReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestroyReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestroyReason: %w", err)
	}
	return oldValue.DestroyReason, nil
}

// ClearDestroyReason clears the value of the "destroy_reason" field.
func (m *SandboxRecordMutation) ClearDestroyReason() {
	m.destroy_reason = nil
	m.clearedFields[sandboxrecord.FieldDestroyReason] = struct{}{}
}

// DestroyReasonCleared returns if the "destroy_reason" field was cleared in this mutation.
func (m *SandboxRecordMutation) DestroyReasonCleared() bool {
	_, ok := m.clearedFields[sandboxrecord.FieldDestroyReason]
	return ok
}

// ResetDestroyReason resets all changes to the "destroy_reason" field.
func (m *SandboxRecordMutation) ResetDestroyReason() {
	m.destroy_reason = nil
	delete(m.clearedFields, sandboxrecord.FieldDestroyReason)
}

// Where appends a list predicates to the SandboxRecordMutation builder.
func (m *SandboxRecordMutation) Where(ps ...predicate.SandboxRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SandboxRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SandboxRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SandboxRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SandboxRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SandboxRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SandboxRecord).
func (m *SandboxRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SandboxRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.container_id != nil {
		fields = append(fields, sandboxrecord.FieldContainerID)
	}
	if m.agent_id != nil {
		fields = append(fields, sandboxrecord.FieldAgentID)
	}
	if m.image != nil {
		fields = append(fields, sandboxrecord.FieldImage)
	}
	if m.network_mode != nil {
		fields = append(fields, sandboxrecord.FieldNetworkMode)
	}
	if m.created_at != nil {
		fields = append(fields, sandboxrecord.FieldCreatedAt)
	}
	if m.destroyed_at != nil {
		fields = append(fields, sandboxrecord.FieldDestroyedAt)
	}
	if m.destroy_reason != nil {
		fields = append(fields, sandboxrecord.FieldDestroyReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SandboxRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sandboxrecord.FieldContainerID:
		return m.ContainerID()
	case sandboxrecord.FieldAgentID:
		return m.AgentID()
	case sandboxrecord.FieldImage:
		return m.Image()
	case sandboxrecord.FieldNetworkMode:
		return m.NetworkMode()
	case sandboxrecord.FieldCreatedAt:
		return m.CreatedAt()
	case sandboxrecord.FieldDestroyedAt:
		return m.DestroyedAt()
	case sandboxrecord.FieldDestroyReason:
		return m.DestroyReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SandboxRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sandboxrecord.FieldContainerID:
		return m.OldContainerID(ctx)
	case sandboxrecord.FieldAgentID:
		return m.OldAgentID(ctx)
	case sandboxrecord.FieldImage:
		return m.OldImage(ctx)
	case sandboxrecord.FieldNetworkMode:
		return m.OldNetworkMode(ctx)
	case sandboxrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sandboxrecord.FieldDestroyedAt:
		return m.OldDestroyedAt(ctx)
	case sandboxrecord.FieldDestroyReason:
		return m.OldDestroyReason(ctx)
	}
	return nil, fmt.Errorf("unknown SandboxRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SandboxRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sandboxrecord.FieldContainerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContainerID(v)
		return nil
	case sandboxrecord.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case sandboxrecord.FieldImage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImage(v)
		return nil
	case sandboxrecord.FieldNetworkMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetworkMode(v)
		return nil
	case sandboxrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sandboxrecord.FieldDestroyedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestroyedAt(v)
		return nil
	case sandboxrecord.FieldDestroyReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestroyReason(v)
		return nil
	}
	return fmt.Errorf("unknown SandboxRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SandboxRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SandboxRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SandboxRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SandboxRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SandboxRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sandboxrecord.FieldDestroyedAt) {
		fields = append(fields, sandboxrecord.FieldDestroyedAt)
	}
	if m.FieldCleared(sandboxrecord.FieldDestroyReason) {
		fields = append(fields, sandboxrecord.FieldDestroyReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SandboxRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SandboxRecordMutation) ClearField(name string) error {
	switch name {
	case sandboxrecord.FieldDestroyedAt:
		m.ClearDestroyedAt()
		return nil
	case sandboxrecord.FieldDestroyReason:
		m.ClearDestroyReason()
		return nil
	}
	return fmt.Errorf("unknown SandboxRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SandboxRecordMutation) ResetField(name string) error {
	switch name {
	case sandboxrecord.FieldContainerID:
		m.ResetContainerID()
		return nil
	case sandboxrecord.FieldAgentID:
		m.ResetAgentID()
		return nil
	case sandboxrecord.FieldImage:
		m.ResetImage()
		return nil
	case sandboxrecord.FieldNetworkMode:
		m.ResetNetworkMode()
		return nil
	case sandboxrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sandboxrecord.FieldDestroyedAt:
		m.ResetDestroyedAt()
		return nil
	case sandboxrecord.FieldDestroyReason:
		m.ResetDestroyReason()
		return nil
	}
	return fmt.Errorf("unknown SandboxRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SandboxRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SandboxRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SandboxRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SandboxRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SandboxRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SandboxRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SandboxRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SandboxRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SandboxRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SandboxRecord edge %s", name)
}

// SystemSettingMutation represents an operation that mutates the SystemSetting nodes in the graph.
type SystemSettingMutation struct {
	config
	op            Op
	typ           string
	id            *string
	value         *string
	updated_by    *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SystemSetting, error)
	predicates    []predicate.SystemSetting
}

var _ ent.Mutation = (*SystemSettingMutation)(nil)

// systemsettingOption allows management of the mutation configuration using functional options.
type systemsettingOption func(*SystemSettingMutation)

// newSystemSettingMutation creates new mutation for the SystemSetting entity.
func newSystemSettingMutation(c config, op Op, opts ...systemsettingOption) *SystemSettingMutation {
	m := &SystemSettingMutation{
		config:        c,
		op:            op,
		typ:           TypeSystemSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSystemSettingID sets the ID field of the mutation.
func withSystemSettingID(id string) systemsettingOption {
	return func(m *SystemSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *SystemSetting
		)
		m.oldValue = func(ctx context.Context) (*SystemSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SystemSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSystemSetting sets the old SystemSetting of the mutation.
func withSystemSetting(node *SystemSetting) systemsettingOption {
	return func(m *SystemSettingMutation) {
		m.oldValue = func(context.Context) (*SystemSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SystemSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SystemSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SystemSetting entities.
func (m *SystemSettingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SystemSettingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SystemSettingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SystemSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetValue sets the "value" field.
func (m *SystemSettingMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *SystemSettingMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the SystemSetting entity.
// If the SystemSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemSettingMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *SystemSettingMutation) ResetValue() {
	m.value = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *SystemSettingMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *SystemSettingMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the SystemSetting entity.
// If the SystemSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemSettingMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *SystemSettingMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[systemsetting.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *SystemSettingMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[systemsetting.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *SystemSettingMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, systemsetting.FieldUpdatedBy)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SystemSettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SystemSettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SystemSetting entity.
// If the SystemSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemSettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SystemSettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SystemSettingMutation builder.
func (m *SystemSettingMutation) Where(ps ...predicate.SystemSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SystemSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SystemSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SystemSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SystemSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SystemSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SystemSetting).
func (m *SystemSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SystemSettingMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.value != nil {
		fields = append(fields, systemsetting.FieldValue)
	}
	if m.updated_by != nil {
		fields = append(fields, systemsetting.FieldUpdatedBy)
	}
	if m.updated_at != nil {
		fields = append(fields, systemsetting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SystemSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case systemsetting.FieldValue:
		return m.Value()
	case systemsetting.FieldUpdatedBy:
		return m.UpdatedBy()
	case systemsetting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SystemSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case systemsetting.FieldValue:
		return m.OldValue(ctx)
	case systemsetting.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case systemsetting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SystemSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case systemsetting.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case systemsetting.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case systemsetting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SystemSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SystemSettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SystemSettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SystemSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SystemSettingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(systemsetting.FieldUpdatedBy) {
		fields = append(fields, systemsetting.FieldUpdatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SystemSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SystemSettingMutation) ClearField(name string) error {
	switch name {
	case systemsetting.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown SystemSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SystemSettingMutation) ResetField(name string) error {
	switch name {
	case systemsetting.FieldValue:
		m.ResetValue()
		return nil
	case systemsetting.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case systemsetting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SystemSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SystemSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SystemSettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SystemSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SystemSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SystemSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SystemSettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SystemSettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SystemSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SystemSettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SystemSetting edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	title                 *string
	description           *string
	_type                 *string
	status                *task.Status
	priority              *task.Priority
	retry_count           *int
	addretry_count        *int
	max_retries           *int
	addmax_retries        *int
	progress              *int
	addprogress           *int
	result                *string
	failure_reason        *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	agent                 *string
	clearedagent          bool
	events                map[string]struct{}
	removedevents         map[string]struct{}
	clearedevents         bool
	critic_reviews        map[string]struct{}
	removedcritic_reviews map[string]struct{}
	clearedcritic_reviews bool
	deliberations         map[string]struct{}
	removeddeliberations  map[string]struct{}
	cleareddeliberations  bool
	done                  bool
	oldValue              func(context.Context) (*Task, error)
	predicates            []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *TaskMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *TaskMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *TaskMutation) ResetAgentID() {
	m.agent = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
}

// SetType sets the "type" field.
func (m *TaskMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *TaskMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ClearType clears the value of the "type" field.
func (m *TaskMutation) ClearType() {
	m._type = nil
	m.clearedFields[task.FieldType] = struct{}{}
}

// TypeCleared returns if the "type" field was cleared in this mutation.
func (m *TaskMutation) TypeCleared() bool {
	_, ok := m.clearedFields[task.FieldType]
	return ok
}

// ResetType resets all changes to the "type" field.
func (m *TaskMutation) ResetType() {
	m._type = nil
	delete(m.clearedFields, task.FieldType)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *TaskMutation) SetPriority(t task.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TaskMutation) Priority() (r task.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPriority(ctx context.Context) (v task.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TaskMutation) ResetPriority() {
	m.priority = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *TaskMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *TaskMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *TaskMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *TaskMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *TaskMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *TaskMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *TaskMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *TaskMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *TaskMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *TaskMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetProgress sets the "progress" field.
func (m *TaskMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *TaskMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *TaskMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *TaskMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *TaskMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetResult sets the "result" field.
func (m *TaskMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *TaskMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResult(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *TaskMutation) ClearResult() {
	m.result = nil
	m.clearedFields[task.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *TaskMutation) ResultCleared() bool {
	_, ok := m.clearedFields[task.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *TaskMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, task.FieldResult)
}

// SetFailureReason sets the "failure_reason" field.
func (m *TaskMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *TaskMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *TaskMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[task.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *TaskMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[task.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *TaskMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, task.FieldFailureReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *TaskMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[task.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *TaskMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *TaskMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by ids.
func (m *TaskMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the TaskEvent entity.
func (m *TaskMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the TaskEvent entity was cleared.
func (m *TaskMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the TaskEvent entity by IDs.
func (m *TaskMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the TaskEvent entity.
func (m *TaskMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *TaskMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *TaskMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddCriticReviewIDs adds the "critic_reviews" edge to the CriticReview entity by ids.
func (m *TaskMutation) AddCriticReviewIDs(ids ...string) {
	if m.critic_reviews == nil {
		m.critic_reviews = make(map[string]struct{})
	}
	for i := range ids {
		m.critic_reviews[ids[i]] = struct{}{}
	}
}

// ClearCriticReviews clears the "critic_reviews" edge to the CriticReview entity.
func (m *TaskMutation) ClearCriticReviews() {
	m.clearedcritic_reviews = true
}

// CriticReviewsCleared reports if the "critic_reviews" edge to the CriticReview entity was cleared.
func (m *TaskMutation) CriticReviewsCleared() bool {
	return m.clearedcritic_reviews
}

// RemoveCriticReviewIDs removes the "critic_reviews" edge to the CriticReview entity by IDs.
func (m *TaskMutation) RemoveCriticReviewIDs(ids ...string) {
	if m.removedcritic_reviews == nil {
		m.removedcritic_reviews = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.critic_reviews, ids[i])
		m.removedcritic_reviews[ids[i]] = struct{}{}
	}
}

// RemovedCriticReviews returns the removed IDs of the "critic_reviews" edge to the CriticReview entity.
func (m *TaskMutation) RemovedCriticReviewsIDs() (ids []string) {
	for id := range m.removedcritic_reviews {
		ids = append(ids, id)
	}
	return
}

// CriticReviewsIDs returns the "critic_reviews" edge IDs in the mutation.
func (m *TaskMutation) CriticReviewsIDs() (ids []string) {
	for id := range m.critic_reviews {
		ids = append(ids, id)
	}
	return
}

// ResetCriticReviews resets all changes to the "critic_reviews" edge.
func (m *TaskMutation) ResetCriticReviews() {
	m.critic_reviews = nil
	m.clearedcritic_reviews = false
	m.removedcritic_reviews = nil
}

// AddDeliberationIDs adds the "deliberations" edge to the Deliberation entity by ids.
func (m *TaskMutation) AddDeliberationIDs(ids ...string) {
	if m.deliberations == nil {
		m.deliberations = make(map[string]struct{})
	}
	for i := range ids {
		m.deliberations[ids[i]] = struct{}{}
	}
}

// ClearDeliberations clears the "deliberations" edge to the Deliberation entity.
func (m *TaskMutation) ClearDeliberations() {
	m.cleareddeliberations = true
}

// DeliberationsCleared reports if the "deliberations" edge to the Deliberation entity was cleared.
func (m *TaskMutation) DeliberationsCleared() bool {
	return m.cleareddeliberations
}

// RemoveDeliberationIDs removes the "deliberations" edge to the Deliberation entity by IDs.
func (m *TaskMutation) RemoveDeliberationIDs(ids ...string) {
	if m.removeddeliberations == nil {
		m.removeddeliberations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.deliberations, ids[i])
		m.removeddeliberations[ids[i]] = struct{}{}
	}
}

// RemovedDeliberations returns the removed IDs of the "deliberations" edge to the Deliberation entity.
func (m *TaskMutation) RemovedDeliberationsIDs() (ids []string) {
	for id := range m.removeddeliberations {
		ids = append(ids, id)
	}
	return
}

// DeliberationsIDs returns the "deliberations" edge IDs in the mutation.
func (m *TaskMutation) DeliberationsIDs() (ids []string) {
	for id := range m.deliberations {
		ids = append(ids, id)
	}
	return
}

// ResetDeliberations resets all changes to the "deliberations" edge.
func (m *TaskMutation) ResetDeliberations() {
	m.deliberations = nil
	m.cleareddeliberations = false
	m.removeddeliberations = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.agent != nil {
		fields = append(fields, task.FieldAgentID)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m._type != nil {
		fields = append(fields, task.FieldType)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, task.FieldPriority)
	}
	if m.retry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, task.FieldMaxRetries)
	}
	if m.progress != nil {
		fields = append(fields, task.FieldProgress)
	}
	if m.result != nil {
		fields = append(fields, task.FieldResult)
	}
	if m.failure_reason != nil {
		fields = append(fields, task.FieldFailureReason)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldAgentID:
		return m.AgentID()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldType:
		return m.GetType()
	case task.FieldStatus:
		return m.Status()
	case task.FieldPriority:
		return m.Priority()
	case task.FieldRetryCount:
		return m.RetryCount()
	case task.FieldMaxRetries:
		return m.MaxRetries()
	case task.FieldProgress:
		return m.Progress()
	case task.FieldResult:
		return m.Result()
	case task.FieldFailureReason:
		return m.FailureReason()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldAgentID:
		return m.OldAgentID(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldType:
		return m.OldType(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldPriority:
		return m.OldPriority(ctx)
	case task.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case task.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case task.FieldProgress:
		return m.OldProgress(ctx)
	case task.FieldResult:
		return m.OldResult(ctx)
	case task.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldPriority:
		v, ok := value.(task.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case task.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case task.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case task.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case task.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, task.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, task.FieldMaxRetries)
	}
	if m.addprogress != nil {
		fields = append(fields, task.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldRetryCount:
		return m.AddedRetryCount()
	case task.FieldMaxRetries:
		return m.AddedMaxRetries()
	case task.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case task.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case task.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldType) {
		fields = append(fields, task.FieldType)
	}
	if m.FieldCleared(task.FieldResult) {
		fields = append(fields, task.FieldResult)
	}
	if m.FieldCleared(task.FieldFailureReason) {
		fields = append(fields, task.FieldFailureReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldType:
		m.ClearType()
		return nil
	case task.FieldResult:
		m.ClearResult()
		return nil
	case task.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldAgentID:
		m.ResetAgentID()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldType:
		m.ResetType()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldPriority:
		m.ResetPriority()
		return nil
	case task.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case task.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case task.FieldProgress:
		m.ResetProgress()
		return nil
	case task.FieldResult:
		m.ResetResult()
		return nil
	case task.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.agent != nil {
		edges = append(edges, task.EdgeAgent)
	}
	if m.events != nil {
		edges = append(edges, task.EdgeEvents)
	}
	if m.critic_reviews != nil {
		edges = append(edges, task.EdgeCriticReviews)
	}
	if m.deliberations != nil {
		edges = append(edges, task.EdgeDeliberations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeCriticReviews:
		ids := make([]ent.Value, 0, len(m.critic_reviews))
		for id := range m.critic_reviews {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeDeliberations:
		ids := make([]ent.Value, 0, len(m.deliberations))
		for id := range m.deliberations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedevents != nil {
		edges = append(edges, task.EdgeEvents)
	}
	if m.removedcritic_reviews != nil {
		edges = append(edges, task.EdgeCriticReviews)
	}
	if m.removeddeliberations != nil {
		edges = append(edges, task.EdgeDeliberations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeCriticReviews:
		ids := make([]ent.Value, 0, len(m.removedcritic_reviews))
		for id := range m.removedcritic_reviews {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeDeliberations:
		ids := make([]ent.Value, 0, len(m.removeddeliberations))
		for id := range m.removeddeliberations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedagent {
		edges = append(edges, task.EdgeAgent)
	}
	if m.clearedevents {
		edges = append(edges, task.EdgeEvents)
	}
	if m.clearedcritic_reviews {
		edges = append(edges, task.EdgeCriticReviews)
	}
	if m.cleareddeliberations {
		edges = append(edges, task.EdgeDeliberations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeAgent:
		return m.clearedagent
	case task.EdgeEvents:
		return m.clearedevents
	case task.EdgeCriticReviews:
		return m.clearedcritic_reviews
	case task.EdgeDeliberations:
		return m.cleareddeliberations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeAgent:
		m.ResetAgent()
		return nil
	case task.EdgeEvents:
		m.ResetEvents()
		return nil
	case task.EdgeCriticReviews:
		m.ResetCriticReviews()
		return nil
	case task.EdgeDeliberations:
		m.ResetDeliberations()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskEventMutation represents an operation that mutates the TaskEvent nodes in the graph.
type TaskEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	_type         *taskevent.Type
	seq           *int
	addseq        *int
	data          *map[string]interface{}
	occurred_at   *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*TaskEvent, error)
	predicates    []predicate.TaskEvent
}

var _ ent.Mutation = (*TaskEventMutation)(nil)

// taskeventOption allows management of the mutation configuration using functional options.
type taskeventOption func(*TaskEventMutation)

// newTaskEventMutation creates new mutation for the TaskEvent entity.
func newTaskEventMutation(c config, op Op, opts ...taskeventOption) *TaskEventMutation {
	m := &TaskEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskEventID sets the ID field of the mutation.
func withTaskEventID(id string) taskeventOption {
	return func(m *TaskEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskEvent
		)
		m.oldValue = func(ctx context.Context) (*TaskEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskEvent sets the old TaskEvent of the mutation.
func withTaskEvent(node *TaskEvent) taskeventOption {
	return func(m *TaskEventMutation) {
		m.oldValue = func(context.Context) (*TaskEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskEvent entities.
func (m *TaskEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskEventMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskEventMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskEventMutation) ResetTaskID() {
	m.task = nil
}

// SetType sets the "type" field.
func (m *TaskEventMutation) SetType(t taskevent.Type) {
	m._type = &t
}

// GetType returns the value of the "type" field in the mutation.
func (m *TaskEventMutation) GetType() (r taskevent.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldType(ctx context.Context) (v taskevent.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *TaskEventMutation) ResetType() {
	m._type = nil
}

// SetSeq sets the "seq" field.
func (m *TaskEventMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *TaskEventMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *TaskEventMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *TaskEventMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *TaskEventMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetData sets the "data" field.
func (m *TaskEventMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *TaskEventMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *TaskEventMutation) ClearData() {
	m.data = nil
	m.clearedFields[taskevent.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *TaskEventMutation) DataCleared() bool {
	_, ok := m.clearedFields[taskevent.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *TaskEventMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, taskevent.FieldData)
}

// SetOccurredAt sets the "occurred_at" field.
func (m *TaskEventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *TaskEventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *TaskEventMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TaskEventMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[taskevent.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TaskEventMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskEventMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskEventMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskEventMutation builder.
func (m *TaskEventMutation) Where(ps ...predicate.TaskEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskEvent).
func (m *TaskEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.task != nil {
		fields = append(fields, taskevent.FieldTaskID)
	}
	if m._type != nil {
		fields = append(fields, taskevent.FieldType)
	}
	if m.seq != nil {
		fields = append(fields, taskevent.FieldSeq)
	}
	if m.data != nil {
		fields = append(fields, taskevent.FieldData)
	}
	if m.occurred_at != nil {
		fields = append(fields, taskevent.FieldOccurredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskevent.FieldTaskID:
		return m.TaskID()
	case taskevent.FieldType:
		return m.GetType()
	case taskevent.FieldSeq:
		return m.Seq()
	case taskevent.FieldData:
		return m.Data()
	case taskevent.FieldOccurredAt:
		return m.OccurredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskevent.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskevent.FieldType:
		return m.OldType(ctx)
	case taskevent.FieldSeq:
		return m.OldSeq(ctx)
	case taskevent.FieldData:
		return m.OldData(ctx)
	case taskevent.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskevent.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskevent.FieldType:
		v, ok := value.(taskevent.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case taskevent.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case taskevent.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case taskevent.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskEventMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, taskevent.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskevent.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskevent.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown TaskEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskevent.FieldData) {
		fields = append(fields, taskevent.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskEventMutation) ClearField(name string) error {
	switch name {
	case taskevent.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskEventMutation) ResetField(name string) error {
	switch name {
	case taskevent.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskevent.FieldType:
		m.ResetType()
		return nil
	case taskevent.FieldSeq:
		m.ResetSeq()
		return nil
	case taskevent.FieldData:
		m.ResetData()
		return nil
	case taskevent.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, taskevent.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskevent.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, taskevent.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskEventMutation) EdgeCleared(name string) bool {
	switch name {
	case taskevent.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskEventMutation) ClearEdge(name string) error {
	switch name {
	case taskevent.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskEventMutation) ResetEdge(name string) error {
	switch name {
	case taskevent.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent edge %s", name)
}

// VoteMutation represents an operation that mutates the Vote nodes in the graph.
type VoteMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	voter_id            *string
	choice              *vote.Choice
	rationale           *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	deliberation        *string
	cleareddeliberation bool
	done                bool
	oldValue            func(context.Context) (*Vote, error)
	predicates          []predicate.Vote
}

var _ ent.Mutation = (*VoteMutation)(nil)

// voteOption allows management of the mutation configuration using functional options.
type voteOption func(*VoteMutation)

// newVoteMutation creates new mutation for the Vote entity.
func newVoteMutation(c config, op Op, opts ...voteOption) *VoteMutation {
	m := &VoteMutation{
		config:        c,
		op:            op,
		typ:           TypeVote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVoteID sets the ID field of the mutation.
func withVoteID(id string) voteOption {
	return func(m *VoteMutation) {
		var (
			err   error
			once  sync.Once
			value *Vote
		)
		m.oldValue = func(ctx context.Context) (*Vote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVote sets the old Vote of the mutation.
func withVote(node *Vote) voteOption {
	return func(m *VoteMutation) {
		m.oldValue = func(context.Context) (*Vote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Vote entities.
func (m *VoteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VoteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VoteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeliberationID sets the "deliberation_id" field.
func (m *VoteMutation) SetDeliberationID(s string) {
	m.deliberation = &s
}

// DeliberationID returns the value of the "deliberation_id" field in the mutation.
func (m *VoteMutation) DeliberationID() (r string, exists bool) {
	v := m.deliberation
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliberationID returns the old "deliberation_id" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldDeliberationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliberationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliberationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliberationID: %w", err)
	}
	return oldValue.DeliberationID, nil
}

// ResetDeliberationID resets all changes to the "deliberation_id" field.
func (m *VoteMutation) ResetDeliberationID() {
	m.deliberation = nil
}

// SetVoterID sets the "voter_id" field.
func (m *VoteMutation) SetVoterID(s string) {
	m.voter_id = &s
}

// VoterID returns the value of the "voter_id" field in the mutation.
func (m *VoteMutation) VoterID() (r string, exists bool) {
	v := m.voter_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVoterID returns the old "voter_id" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldVoterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoterID: %w", err)
	}
	return oldValue.VoterID, nil
}

// ResetVoterID resets all changes to the "voter_id" field.
func (m *VoteMutation) ResetVoterID() {
	m.voter_id = nil
}

// SetChoice sets the "choice" field.
func (m *VoteMutation) SetChoice(v vote.Choice) {
	m.choice = &v
}

// Choice returns the value of the "choice" field in the mutation.
func (m *VoteMutation) Choice() (r vote.Choice, exists bool) {
	v := m.choice
	if v == nil {
		return
	}
	return *v, true
}

// OldChoice returns the old "choice" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldChoice(ctx context.Context) (v vote.Choice, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChoice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChoice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChoice: %w", err)
	}
	return oldValue.Choice, nil
}

// ResetChoice resets all changes to the "choice" field.
func (m *VoteMutation) ResetChoice() {
	m.choice = nil
}

// SetRationale sets the "rationale" field.
func (m *VoteMutation) SetRationale(s string) {
	m.rationale = &s
}

// Rationale returns the value of the "rationale" field in the mutation.
func (m *VoteMutation) Rationale() (r string, exists bool) {
	v := m.rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldRationale returns the old "rationale" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldRationale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRationale: %w", err)
	}
	return oldValue.Rationale, nil
}

// ClearRationale clears the value of the "rationale" field.
func (m *VoteMutation) ClearRationale() {
	m.rationale = nil
	m.clearedFields[vote.FieldRationale] = struct{}{}
}

// RationaleCleared returns if the "rationale" field was cleared in this mutation.
func (m *VoteMutation) RationaleCleared() bool {
	_, ok := m.clearedFields[vote.FieldRationale]
	return ok
}

// ResetRationale resets all changes to the "rationale" field.
func (m *VoteMutation) ResetRationale() {
	m.rationale = nil
	delete(m.clearedFields, vote.FieldRationale)
}

// SetCreatedAt sets the "created_at" field.
func (m *VoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Vote entity.
// If the Vote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDeliberation clears the "deliberation" edge to the Deliberation entity.
func (m *VoteMutation) ClearDeliberation() {
	m.cleareddeliberation = true
	m.clearedFields[vote.FieldDeliberationID] = struct{}{}
}

// DeliberationCleared reports if the "deliberation" edge to the Deliberation entity was cleared.
func (m *VoteMutation) DeliberationCleared() bool {
	return m.cleareddeliberation
}

// DeliberationIDs returns the "deliberation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DeliberationID instead. It exists only for internal usage by the builders.
func (m *VoteMutation) DeliberationIDs() (ids []string) {
	if id := m.deliberation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDeliberation resets all changes to the "deliberation" edge.
func (m *VoteMutation) ResetDeliberation() {
	m.deliberation = nil
	m.cleareddeliberation = false
}

// Where appends a list predicates to the VoteMutation builder.
func (m *VoteMutation) Where(ps ...predicate.Vote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vote).
func (m *VoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VoteMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.deliberation != nil {
		fields = append(fields, vote.FieldDeliberationID)
	}
	if m.voter_id != nil {
		fields = append(fields, vote.FieldVoterID)
	}
	if m.choice != nil {
		fields = append(fields, vote.FieldChoice)
	}
	if m.rationale != nil {
		fields = append(fields, vote.FieldRationale)
	}
	if m.created_at != nil {
		fields = append(fields, vote.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vote.FieldDeliberationID:
		return m.DeliberationID()
	case vote.FieldVoterID:
		return m.VoterID()
	case vote.FieldChoice:
		return m.Choice()
	case vote.FieldRationale:
		return m.Rationale()
	case vote.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vote.FieldDeliberationID:
		return m.OldDeliberationID(ctx)
	case vote.FieldVoterID:
		return m.OldVoterID(ctx)
	case vote.FieldChoice:
		return m.OldChoice(ctx)
	case vote.FieldRationale:
		return m.OldRationale(ctx)
	case vote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Vote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vote.FieldDeliberationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliberationID(v)
		return nil
	case vote.FieldVoterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoterID(v)
		return nil
	case vote.FieldChoice:
		v, ok := value.(vote.Choice)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChoice(v)
		return nil
	case vote.FieldRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRationale(v)
		return nil
	case vote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Vote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VoteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VoteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Vote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VoteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vote.FieldRationale) {
		fields = append(fields, vote.FieldRationale)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VoteMutation) ClearField(name string) error {
	switch name {
	case vote.FieldRationale:
		m.ClearRationale()
		return nil
	}
	return fmt.Errorf("unknown Vote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VoteMutation) ResetField(name string) error {
	switch name {
	case vote.FieldDeliberationID:
		m.ResetDeliberationID()
		return nil
	case vote.FieldVoterID:
		m.ResetVoterID()
		return nil
	case vote.FieldChoice:
		m.ResetChoice()
		return nil
	case vote.FieldRationale:
		m.ResetRationale()
		return nil
	case vote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Vote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.deliberation != nil {
		edges = append(edges, vote.EdgeDeliberation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VoteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vote.EdgeDeliberation:
		if id := m.deliberation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddeliberation {
		edges = append(edges, vote.EdgeDeliberation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VoteMutation) EdgeCleared(name string) bool {
	switch name {
	case vote.EdgeDeliberation:
		return m.cleareddeliberation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VoteMutation) ClearEdge(name string) error {
	switch name {
	case vote.EdgeDeliberation:
		m.ClearDeliberation()
		return nil
	}
	return fmt.Errorf("unknown Vote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VoteMutation) ResetEdge(name string) error {
	switch name {
	case vote.EdgeDeliberation:
		m.ResetDeliberation()
		return nil
	}
	return fmt.Errorf("unknown Vote edge %s", name)
}
