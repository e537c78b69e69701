// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/apikey"
	"github.com/agentium/agentium/ent/apiusagelog"
)

// APIKeyCreate is the builder for creating a APIKey entity.
type APIKeyCreate struct {
	config
	mutation *APIKeyMutation
	hooks    []Hook
}

// SetProvider sets the "provider" field.
func (akc *APIKeyCreate) SetProvider(s string) *APIKeyCreate {
	akc.mutation.SetProvider(s)
	return akc
}

// SetEncryptedSecret sets the "encrypted_secret" field.
func (akc *APIKeyCreate) SetEncryptedSecret(s string) *APIKeyCreate {
	akc.mutation.SetEncryptedSecret(s)
	return akc
}

// SetPriority sets the "priority" field.
func (akc *APIKeyCreate) SetPriority(i int) *APIKeyCreate {
	akc.mutation.SetPriority(i)
	return akc
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (akc *APIKeyCreate) SetNillablePriority(i *int) *APIKeyCreate {
	if i != nil {
		akc.SetPriority(*i)
	}
	return akc
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (akc *APIKeyCreate) SetConsecutiveFailures(i int) *APIKeyCreate {
	akc.mutation.SetConsecutiveFailures(i)
	return akc
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (akc *APIKeyCreate) SetNillableConsecutiveFailures(i *int) *APIKeyCreate {
	if i != nil {
		akc.SetConsecutiveFailures(*i)
	}
	return akc
}

// SetLastFailureAt sets the "last_failure_at" field.
func (akc *APIKeyCreate) SetLastFailureAt(t time.Time) *APIKeyCreate {
	akc.mutation.SetLastFailureAt(t)
	return akc
}

// SetNillableLastFailureAt sets the "last_failure_at" field if the given value is not nil.
func (akc *APIKeyCreate) SetNillableLastFailureAt(t *time.Time) *APIKeyCreate {
	if t != nil {
		akc.SetLastFailureAt(*t)
	}
	return akc
}

// SetCooldownUntil sets the "cooldown_until" field.
func (akc *APIKeyCreate) SetCooldownUntil(t time.Time) *APIKeyCreate {
	akc.mutation.SetCooldownUntil(t)
	return akc
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (akc *APIKeyCreate) SetNillableCooldownUntil(t *time.Time) *APIKeyCreate {
	if t != nil {
		akc.SetCooldownUntil(*t)
	}
	return akc
}

// SetMonthlyBudget sets the "monthly_budget" field.
func (akc *APIKeyCreate) SetMonthlyBudget(f float64) *APIKeyCreate {
	akc.mutation.SetMonthlyBudget(f)
	return akc
}

// SetNillableMonthlyBudget sets the "monthly_budget" field if the given value is not nil.
func (akc *APIKeyCreate) SetNillableMonthlyBudget(f *float64) *APIKeyCreate {
	if f != nil {
		akc.SetMonthlyBudget(*f)
	}
	return akc
}

// SetCurrentSpend sets the "current_spend" field.
func (akc *APIKeyCreate) SetCurrentSpend(f float64) *APIKeyCreate {
	akc.mutation.SetCurrentSpend(f)
	return akc
}

// SetNillableCurrentSpend sets the "current_spend" field if the given value is not nil.
func (akc *APIKeyCreate) SetNillableCurrentSpend(f *float64) *APIKeyCreate {
	if f != nil {
		akc.SetCurrentSpend(*f)
	}
	return akc
}

// SetLastSpendReset sets the "last_spend_reset" field.
func (akc *APIKeyCreate) SetLastSpendReset(t time.Time) *APIKeyCreate {
	akc.mutation.SetLastSpendReset(t)
	return akc
}

// SetNillableLastSpendReset sets the "last_spend_reset" field if the given value is not nil.
func (akc *APIKeyCreate) SetNillableLastSpendReset(t *time.Time) *APIKeyCreate {
	if t != nil {
		akc.SetLastSpendReset(*t)
	}
	return akc
}

// SetActive sets the "active" field.
func (akc *APIKeyCreate) SetActive(b bool) *APIKeyCreate {
	akc.mutation.SetActive(b)
	return akc
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (akc *APIKeyCreate) SetNillableActive(b *bool) *APIKeyCreate {
	if b != nil {
		akc.SetActive(*b)
	}
	return akc
}

// SetStatus sets the "status" field.
func (akc *APIKeyCreate) SetStatus(a apikey.Status) *APIKeyCreate {
	akc.mutation.SetStatus(a)
	return akc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (akc *APIKeyCreate) SetNillableStatus(a *apikey.Status) *APIKeyCreate {
	if a != nil {
		akc.SetStatus(*a)
	}
	return akc
}

// SetCreatedAt sets the "created_at" field.
func (akc *APIKeyCreate) SetCreatedAt(t time.Time) *APIKeyCreate {
	akc.mutation.SetCreatedAt(t)
	return akc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (akc *APIKeyCreate) SetNillableCreatedAt(t *time.Time) *APIKeyCreate {
	if t != nil {
		akc.SetCreatedAt(*t)
	}
	return akc
}

// SetID sets the "id" field.
func (akc *APIKeyCreate) SetID(s string) *APIKeyCreate {
	akc.mutation.SetID(s)
	return akc
}

// AddUsageLogIDs adds the "usage_logs" edge to the APIUsageLog entity by IDs.
func (akc *APIKeyCreate) AddUsageLogIDs(ids ...string) *APIKeyCreate {
	akc.mutation.AddUsageLogIDs(ids...)
	return akc
}

// AddUsageLogs adds the "usage_logs" edges to the APIUsageLog entity.
func (akc *APIKeyCreate) AddUsageLogs(a ...*APIUsageLog) *APIKeyCreate {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return akc.AddUsageLogIDs(ids...)
}

// Mutation returns the APIKeyMutation object of the builder.
func (akc *APIKeyCreate) Mutation() *APIKeyMutation {
	return akc.mutation
}

// Save creates the APIKey in the database.
func (akc *APIKeyCreate) Save(ctx context.Context) (*APIKey, error) {
	akc.defaults()
	return withHooks(ctx, akc.sqlSave, akc.mutation, akc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (akc *APIKeyCreate) SaveX(ctx context.Context) *APIKey {
	v, err := akc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (akc *APIKeyCreate) Exec(ctx context.Context) error {
	_, err := akc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (akc *APIKeyCreate) ExecX(ctx context.Context) {
	if err := akc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (akc *APIKeyCreate) defaults() {
	if _, ok := akc.mutation.Priority(); !ok {
		v := apikey.DefaultPriority
		akc.mutation.SetPriority(v)
	}
	if _, ok := akc.mutation.ConsecutiveFailures(); !ok {
		v := apikey.DefaultConsecutiveFailures
		akc.mutation.SetConsecutiveFailures(v)
	}
	if _, ok := akc.mutation.MonthlyBudget(); !ok {
		v := apikey.DefaultMonthlyBudget
		akc.mutation.SetMonthlyBudget(v)
	}
	if _, ok := akc.mutation.CurrentSpend(); !ok {
		v := apikey.DefaultCurrentSpend
		akc.mutation.SetCurrentSpend(v)
	}
	if _, ok := akc.mutation.LastSpendReset(); !ok {
		v := apikey.DefaultLastSpendReset()
		akc.mutation.SetLastSpendReset(v)
	}
	if _, ok := akc.mutation.Active(); !ok {
		v := apikey.DefaultActive
		akc.mutation.SetActive(v)
	}
	if _, ok := akc.mutation.Status(); !ok {
		v := apikey.DefaultStatus
		akc.mutation.SetStatus(v)
	}
	if _, ok := akc.mutation.CreatedAt(); !ok {
		v := apikey.DefaultCreatedAt()
		akc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (akc *APIKeyCreate) check() error {
	if _, ok := akc.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "APIKey.provider"`)}
	}
	if _, ok := akc.mutation.EncryptedSecret(); !ok {
		return &ValidationError{Name: "encrypted_secret", err: errors.New(`ent: missing required field "APIKey.encrypted_secret"`)}
	}
	if _, ok := akc.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "APIKey.priority"`)}
	}
	if _, ok := akc.mutation.ConsecutiveFailures(); !ok {
		return &ValidationError{Name: "consecutive_failures", err: errors.New(`ent: missing required field "APIKey.consecutive_failures"`)}
	}
	if _, ok := akc.mutation.MonthlyBudget(); !ok {
		return &ValidationError{Name: "monthly_budget", err: errors.New(`ent: missing required field "APIKey.monthly_budget"`)}
	}
	if _, ok := akc.mutation.CurrentSpend(); !ok {
		return &ValidationError{Name: "current_spend", err: errors.New(`ent: missing required field "APIKey.current_spend"`)}
	}
	if _, ok := akc.mutation.LastSpendReset(); !ok {
		return &ValidationError{Name: "last_spend_reset", err: errors.New(`ent: missing required field "APIKey.last_spend_reset"`)}
	}
	if _, ok := akc.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "APIKey.active"`)}
	}
	if _, ok := akc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "APIKey.status"`)}
	}
	if v, ok := akc.mutation.Status(); ok {
		if err := apikey.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "APIKey.status": %w`, err)}
		}
	}
	if _, ok := akc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "APIKey.created_at"`)}
	}
	return nil
}

func (akc *APIKeyCreate) sqlSave(ctx context.Context) (*APIKey, error) {
	if err := akc.check(); err != nil {
		return nil, err
	}
	_node, _spec := akc.createSpec()
	if err := sqlgraph.CreateNode(ctx, akc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected APIKey.ID type: %T", _spec.ID.Value)
		}
	}
	akc.mutation.id = &_node.ID
	akc.mutation.done = true
	return _node, nil
}

func (akc *APIKeyCreate) createSpec() (*APIKey, *sqlgraph.CreateSpec) {
	var (
		_node = &APIKey{config: akc.config}
		_spec = sqlgraph.NewCreateSpec(apikey.Table, sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeString))
	)
	if id, ok := akc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := akc.mutation.Provider(); ok {
		_spec.SetField(apikey.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := akc.mutation.EncryptedSecret(); ok {
		_spec.SetField(apikey.FieldEncryptedSecret, field.TypeString, value)
		_node.EncryptedSecret = value
	}
	if value, ok := akc.mutation.Priority(); ok {
		_spec.SetField(apikey.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := akc.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(apikey.FieldConsecutiveFailures, field.TypeInt, value)
		_node.ConsecutiveFailures = value
	}
	if value, ok := akc.mutation.LastFailureAt(); ok {
		_spec.SetField(apikey.FieldLastFailureAt, field.TypeTime, value)
		_node.LastFailureAt = &value
	}
	if value, ok := akc.mutation.CooldownUntil(); ok {
		_spec.SetField(apikey.FieldCooldownUntil, field.TypeTime, value)
		_node.CooldownUntil = &value
	}
	if value, ok := akc.mutation.MonthlyBudget(); ok {
		_spec.SetField(apikey.FieldMonthlyBudget, field.TypeFloat64, value)
		_node.MonthlyBudget = value
	}
	if value, ok := akc.mutation.CurrentSpend(); ok {
		_spec.SetField(apikey.FieldCurrentSpend, field.TypeFloat64, value)
		_node.CurrentSpend = value
	}
	if value, ok := akc.mutation.LastSpendReset(); ok {
		_spec.SetField(apikey.FieldLastSpendReset, field.TypeTime, value)
		_node.LastSpendReset = value
	}
	if value, ok := akc.mutation.Active(); ok {
		_spec.SetField(apikey.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := akc.mutation.Status(); ok {
		_spec.SetField(apikey.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := akc.mutation.CreatedAt(); ok {
		_spec.SetField(apikey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := akc.mutation.UsageLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   apikey.UsageLogsTable,
			Columns: []string{apikey.UsageLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(apiusagelog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// APIKeyCreateBulk is the builder for creating many APIKey entities in bulk.
type APIKeyCreateBulk struct {
	config
	err      error
	builders []*APIKeyCreate
}

// Save creates the APIKey entities in the database.
func (akcb *APIKeyCreateBulk) Save(ctx context.Context) ([]*APIKey, error) {
	if akcb.err != nil {
		return nil, akcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(akcb.builders))
	nodes := make([]*APIKey, len(akcb.builders))
	mutators := make([]Mutator, len(akcb.builders))
	for i := range akcb.builders {
		func(i int, root context.Context) {
			builder := akcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*APIKeyMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, akcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, akcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, akcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (akcb *APIKeyCreateBulk) SaveX(ctx context.Context) []*APIKey {
	v, err := akcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (akcb *APIKeyCreateBulk) Exec(ctx context.Context) error {
	_, err := akcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (akcb *APIKeyCreateBulk) ExecX(ctx context.Context) {
	if err := akcb.Exec(ctx); err != nil {
		panic(err)
	}
}
