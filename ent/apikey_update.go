// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/apikey"
	"github.com/agentium/agentium/ent/apiusagelog"
	"github.com/agentium/agentium/ent/predicate"
)

// APIKeyUpdate is the builder for updating APIKey entities.
type APIKeyUpdate struct {
	config
	hooks    []Hook
	mutation *APIKeyMutation
}

// Where appends a list predicates to the APIKeyUpdate builder.
func (aku *APIKeyUpdate) Where(ps ...predicate.APIKey) *APIKeyUpdate {
	aku.mutation.Where(ps...)
	return aku
}

// SetEncryptedSecret sets the "encrypted_secret" field.
func (aku *APIKeyUpdate) SetEncryptedSecret(s string) *APIKeyUpdate {
	aku.mutation.SetEncryptedSecret(s)
	return aku
}

// SetNillableEncryptedSecret sets the "encrypted_secret" field if the given value is not nil.
func (aku *APIKeyUpdate) SetNillableEncryptedSecret(s *string) *APIKeyUpdate {
	if s != nil {
		aku.SetEncryptedSecret(*s)
	}
	return aku
}

// SetPriority sets the "priority" field.
func (aku *APIKeyUpdate) SetPriority(i int) *APIKeyUpdate {
	aku.mutation.ResetPriority()
	aku.mutation.SetPriority(i)
	return aku
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (aku *APIKeyUpdate) SetNillablePriority(i *int) *APIKeyUpdate {
	if i != nil {
		aku.SetPriority(*i)
	}
	return aku
}

// AddPriority adds i to the "priority" field.
func (aku *APIKeyUpdate) AddPriority(i int) *APIKeyUpdate {
	aku.mutation.AddPriority(i)
	return aku
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (aku *APIKeyUpdate) SetConsecutiveFailures(i int) *APIKeyUpdate {
	aku.mutation.ResetConsecutiveFailures()
	aku.mutation.SetConsecutiveFailures(i)
	return aku
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (aku *APIKeyUpdate) SetNillableConsecutiveFailures(i *int) *APIKeyUpdate {
	if i != nil {
		aku.SetConsecutiveFailures(*i)
	}
	return aku
}

// AddConsecutiveFailures adds i to the "consecutive_failures" field.
func (aku *APIKeyUpdate) AddConsecutiveFailures(i int) *APIKeyUpdate {
	aku.mutation.AddConsecutiveFailures(i)
	return aku
}

// SetLastFailureAt sets the "last_failure_at" field.
func (aku *APIKeyUpdate) SetLastFailureAt(t time.Time) *APIKeyUpdate {
	aku.mutation.SetLastFailureAt(t)
	return aku
}

// SetNillableLastFailureAt sets the "last_failure_at" field if the given value is not nil.
func (aku *APIKeyUpdate) SetNillableLastFailureAt(t *time.Time) *APIKeyUpdate {
	if t != nil {
		aku.SetLastFailureAt(*t)
	}
	return aku
}

// ClearLastFailureAt clears the value of the "last_failure_at" field.
func (aku *APIKeyUpdate) ClearLastFailureAt() *APIKeyUpdate {
	aku.mutation.ClearLastFailureAt()
	return aku
}

// SetCooldownUntil sets the "cooldown_until" field.
func (aku *APIKeyUpdate) SetCooldownUntil(t time.Time) *APIKeyUpdate {
	aku.mutation.SetCooldownUntil(t)
	return aku
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (aku *APIKeyUpdate) SetNillableCooldownUntil(t *time.Time) *APIKeyUpdate {
	if t != nil {
		aku.SetCooldownUntil(*t)
	}
	return aku
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (aku *APIKeyUpdate) ClearCooldownUntil() *APIKeyUpdate {
	aku.mutation.ClearCooldownUntil()
	return aku
}

// SetMonthlyBudget sets the "monthly_budget" field.
func (aku *APIKeyUpdate) SetMonthlyBudget(f float64) *APIKeyUpdate {
	aku.mutation.ResetMonthlyBudget()
	aku.mutation.SetMonthlyBudget(f)
	return aku
}

// SetNillableMonthlyBudget sets the "monthly_budget" field if the given value is not nil.
func (aku *APIKeyUpdate) SetNillableMonthlyBudget(f *float64) *APIKeyUpdate {
	if f != nil {
		aku.SetMonthlyBudget(*f)
	}
	return aku
}

// AddMonthlyBudget adds f to the "monthly_budget" field.
func (aku *APIKeyUpdate) AddMonthlyBudget(f float64) *APIKeyUpdate {
	aku.mutation.AddMonthlyBudget(f)
	return aku
}

// SetCurrentSpend sets the "current_spend" field.
func (aku *APIKeyUpdate) SetCurrentSpend(f float64) *APIKeyUpdate {
	aku.mutation.ResetCurrentSpend()
	aku.mutation.SetCurrentSpend(f)
	return aku
}

// SetNillableCurrentSpend sets the "current_spend" field if the given value is not nil.
func (aku *APIKeyUpdate) SetNillableCurrentSpend(f *float64) *APIKeyUpdate {
	if f != nil {
		aku.SetCurrentSpend(*f)
	}
	return aku
}

// AddCurrentSpend adds f to the "current_spend" field.
func (aku *APIKeyUpdate) AddCurrentSpend(f float64) *APIKeyUpdate {
	aku.mutation.AddCurrentSpend(f)
	return aku
}

// SetLastSpendReset sets the "last_spend_reset" field.
func (aku *APIKeyUpdate) SetLastSpendReset(t time.Time) *APIKeyUpdate {
	aku.mutation.SetLastSpendReset(t)
	return aku
}

// SetNillableLastSpendReset sets the "last_spend_reset" field if the given value is not nil.
func (aku *APIKeyUpdate) SetNillableLastSpendReset(t *time.Time) *APIKeyUpdate {
	if t != nil {
		aku.SetLastSpendReset(*t)
	}
	return aku
}

// SetActive sets the "active" field.
func (aku *APIKeyUpdate) SetActive(b bool) *APIKeyUpdate {
	aku.mutation.SetActive(b)
	return aku
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (aku *APIKeyUpdate) SetNillableActive(b *bool) *APIKeyUpdate {
	if b != nil {
		aku.SetActive(*b)
	}
	return aku
}

// SetStatus sets the "status" field.
func (aku *APIKeyUpdate) SetStatus(a apikey.Status) *APIKeyUpdate {
	aku.mutation.SetStatus(a)
	return aku
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (aku *APIKeyUpdate) SetNillableStatus(a *apikey.Status) *APIKeyUpdate {
	if a != nil {
		aku.SetStatus(*a)
	}
	return aku
}

// AddUsageLogIDs adds the "usage_logs" edge to the APIUsageLog entity by IDs.
func (aku *APIKeyUpdate) AddUsageLogIDs(ids ...string) *APIKeyUpdate {
	aku.mutation.AddUsageLogIDs(ids...)
	return aku
}

// AddUsageLogs adds the "usage_logs" edges to the APIUsageLog entity.
func (aku *APIKeyUpdate) AddUsageLogs(a ...*APIUsageLog) *APIKeyUpdate {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return aku.AddUsageLogIDs(ids...)
}

// Mutation returns the APIKeyMutation object of the builder.
func (aku *APIKeyUpdate) Mutation() *APIKeyMutation {
	return aku.mutation
}

// ClearUsageLogs clears all "usage_logs" edges to the APIUsageLog entity.
func (aku *APIKeyUpdate) ClearUsageLogs() *APIKeyUpdate {
	aku.mutation.ClearUsageLogs()
	return aku
}

// RemoveUsageLogIDs removes the "usage_logs" edge to APIUsageLog entities by IDs.
func (aku *APIKeyUpdate) RemoveUsageLogIDs(ids ...string) *APIKeyUpdate {
	aku.mutation.RemoveUsageLogIDs(ids...)
	return aku
}

// RemoveUsageLogs removes "usage_logs" edges to APIUsageLog entities.
func (aku *APIKeyUpdate) RemoveUsageLogs(a ...*APIUsageLog) *APIKeyUpdate {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return aku.RemoveUsageLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aku *APIKeyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aku.sqlSave, aku.mutation, aku.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aku *APIKeyUpdate) SaveX(ctx context.Context) int {
	affected, err := aku.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aku *APIKeyUpdate) Exec(ctx context.Context) error {
	_, err := aku.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aku *APIKeyUpdate) ExecX(ctx context.Context) {
	if err := aku.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aku *APIKeyUpdate) check() error {
	if v, ok := aku.mutation.Status(); ok {
		if err := apikey.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "APIKey.status": %w`, err)}
		}
	}
	return nil
}

func (aku *APIKeyUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aku.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(apikey.Table, apikey.Columns, sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeString))
	if ps := aku.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aku.mutation.EncryptedSecret(); ok {
		_spec.SetField(apikey.FieldEncryptedSecret, field.TypeString, value)
	}
	if value, ok := aku.mutation.Priority(); ok {
		_spec.SetField(apikey.FieldPriority, field.TypeInt, value)
	}
	if value, ok := aku.mutation.AddedPriority(); ok {
		_spec.AddField(apikey.FieldPriority, field.TypeInt, value)
	}
	if value, ok := aku.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(apikey.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := aku.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(apikey.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := aku.mutation.LastFailureAt(); ok {
		_spec.SetField(apikey.FieldLastFailureAt, field.TypeTime, value)
	}
	if aku.mutation.LastFailureAtCleared() {
		_spec.ClearField(apikey.FieldLastFailureAt, field.TypeTime)
	}
	if value, ok := aku.mutation.CooldownUntil(); ok {
		_spec.SetField(apikey.FieldCooldownUntil, field.TypeTime, value)
	}
	if aku.mutation.CooldownUntilCleared() {
		_spec.ClearField(apikey.FieldCooldownUntil, field.TypeTime)
	}
	if value, ok := aku.mutation.MonthlyBudget(); ok {
		_spec.SetField(apikey.FieldMonthlyBudget, field.TypeFloat64, value)
	}
	if value, ok := aku.mutation.AddedMonthlyBudget(); ok {
		_spec.AddField(apikey.FieldMonthlyBudget, field.TypeFloat64, value)
	}
	if value, ok := aku.mutation.CurrentSpend(); ok {
		_spec.SetField(apikey.FieldCurrentSpend, field.TypeFloat64, value)
	}
	if value, ok := aku.mutation.AddedCurrentSpend(); ok {
		_spec.AddField(apikey.FieldCurrentSpend, field.TypeFloat64, value)
	}
	if value, ok := aku.mutation.LastSpendReset(); ok {
		_spec.SetField(apikey.FieldLastSpendReset, field.TypeTime, value)
	}
	if value, ok := aku.mutation.Active(); ok {
		_spec.SetField(apikey.FieldActive, field.TypeBool, value)
	}
	if value, ok := aku.mutation.Status(); ok {
		_spec.SetField(apikey.FieldStatus, field.TypeEnum, value)
	}
	if aku.mutation.UsageLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := aku.mutation.RemovedUsageLogsIDs(); len(nodes) > 0 && !aku.mutation.UsageLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := aku.mutation.UsageLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aku.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apikey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aku.mutation.done = true
	return n, nil
}

// APIKeyUpdateOne is the builder for updating a single APIKey entity.
type APIKeyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *APIKeyMutation
}

// SetEncryptedSecret sets the "encrypted_secret" field.
func (akuo *APIKeyUpdateOne) SetEncryptedSecret(s string) *APIKeyUpdateOne {
	akuo.mutation.SetEncryptedSecret(s)
	return akuo
}

// SetNillableEncryptedSecret sets the "encrypted_secret" field if the given value is not nil.
func (akuo *APIKeyUpdateOne) SetNillableEncryptedSecret(s *string) *APIKeyUpdateOne {
	if s != nil {
		akuo.SetEncryptedSecret(*s)
	}
	return akuo
}

// SetPriority sets the "priority" field.
func (akuo *APIKeyUpdateOne) SetPriority(i int) *APIKeyUpdateOne {
	akuo.mutation.ResetPriority()
	akuo.mutation.SetPriority(i)
	return akuo
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (akuo *APIKeyUpdateOne) SetNillablePriority(i *int) *APIKeyUpdateOne {
	if i != nil {
		akuo.SetPriority(*i)
	}
	return akuo
}

// AddPriority adds i to the "priority" field.
func (akuo *APIKeyUpdateOne) AddPriority(i int) *APIKeyUpdateOne {
	akuo.mutation.AddPriority(i)
	return akuo
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (akuo *APIKeyUpdateOne) SetConsecutiveFailures(i int) *APIKeyUpdateOne {
	akuo.mutation.ResetConsecutiveFailures()
	akuo.mutation.SetConsecutiveFailures(i)
	return akuo
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (akuo *APIKeyUpdateOne) SetNillableConsecutiveFailures(i *int) *APIKeyUpdateOne {
	if i != nil {
		akuo.SetConsecutiveFailures(*i)
	}
	return akuo
}

// AddConsecutiveFailures adds i to the "consecutive_failures" field.
func (akuo *APIKeyUpdateOne) AddConsecutiveFailures(i int) *APIKeyUpdateOne {
	akuo.mutation.AddConsecutiveFailures(i)
	return akuo
}

// SetLastFailureAt sets the "last_failure_at" field.
func (akuo *APIKeyUpdateOne) SetLastFailureAt(t time.Time) *APIKeyUpdateOne {
	akuo.mutation.SetLastFailureAt(t)
	return akuo
}

// SetNillableLastFailureAt sets the "last_failure_at" field if the given value is not nil.
func (akuo *APIKeyUpdateOne) SetNillableLastFailureAt(t *time.Time) *APIKeyUpdateOne {
	if t != nil {
		akuo.SetLastFailureAt(*t)
	}
	return akuo
}

// ClearLastFailureAt clears the value of the "last_failure_at" field.
func (akuo *APIKeyUpdateOne) ClearLastFailureAt() *APIKeyUpdateOne {
	akuo.mutation.ClearLastFailureAt()
	return akuo
}

// SetCooldownUntil sets the "cooldown_until" field.
func (akuo *APIKeyUpdateOne) SetCooldownUntil(t time.Time) *APIKeyUpdateOne {
	akuo.mutation.SetCooldownUntil(t)
	return akuo
}

// SetNillableCooldownUntil sets the "cooldown_until" field if the given value is not nil.
func (akuo *APIKeyUpdateOne) SetNillableCooldownUntil(t *time.Time) *APIKeyUpdateOne {
	if t != nil {
		akuo.SetCooldownUntil(*t)
	}
	return akuo
}

// ClearCooldownUntil clears the value of the "cooldown_until" field.
func (akuo *APIKeyUpdateOne) ClearCooldownUntil() *APIKeyUpdateOne {
	akuo.mutation.ClearCooldownUntil()
	return akuo
}

// SetMonthlyBudget sets the "monthly_budget" field.
func (akuo *APIKeyUpdateOne) SetMonthlyBudget(f float64) *APIKeyUpdateOne {
	akuo.mutation.ResetMonthlyBudget()
	akuo.mutation.SetMonthlyBudget(f)
	return akuo
}

// SetNillableMonthlyBudget sets the "monthly_budget" field if the given value is not nil.
func (akuo *APIKeyUpdateOne) SetNillableMonthlyBudget(f *float64) *APIKeyUpdateOne {
	if f != nil {
		akuo.SetMonthlyBudget(*f)
	}
	return akuo
}

// AddMonthlyBudget adds f to the "monthly_budget" field.
func (akuo *APIKeyUpdateOne) AddMonthlyBudget(f float64) *APIKeyUpdateOne {
	akuo.mutation.AddMonthlyBudget(f)
	return akuo
}

// SetCurrentSpend sets the "current_spend" field.
func (akuo *APIKeyUpdateOne) SetCurrentSpend(f float64) *APIKeyUpdateOne {
	akuo.mutation.ResetCurrentSpend()
	akuo.mutation.SetCurrentSpend(f)
	return akuo
}

// SetNillableCurrentSpend sets the "current_spend" field if the given value is not nil.
func (akuo *APIKeyUpdateOne) SetNillableCurrentSpend(f *float64) *APIKeyUpdateOne {
	if f != nil {
		akuo.SetCurrentSpend(*f)
	}
	return akuo
}

// AddCurrentSpend adds f to the "current_spend" field.
func (akuo *APIKeyUpdateOne) AddCurrentSpend(f float64) *APIKeyUpdateOne {
	akuo.mutation.AddCurrentSpend(f)
	return akuo
}

// SetLastSpendReset sets the "last_spend_reset" field.
func (akuo *APIKeyUpdateOne) SetLastSpendReset(t time.Time) *APIKeyUpdateOne {
	akuo.mutation.SetLastSpendReset(t)
	return akuo
}

// SetNillableLastSpendReset sets the "last_spend_reset" field if the given value is not nil.
func (akuo *APIKeyUpdateOne) SetNillableLastSpendReset(t *time.Time) *APIKeyUpdateOne {
	if t != nil {
		akuo.SetLastSpendReset(*t)
	}
	return akuo
}

// SetActive sets the "active" field.
func (akuo *APIKeyUpdateOne) SetActive(b bool) *APIKeyUpdateOne {
	akuo.mutation.SetActive(b)
	return akuo
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (akuo *APIKeyUpdateOne) SetNillableActive(b *bool) *APIKeyUpdateOne {
	if b != nil {
		akuo.SetActive(*b)
	}
	return akuo
}

// SetStatus sets the "status" field.
func (akuo *APIKeyUpdateOne) SetStatus(a apikey.Status) *APIKeyUpdateOne {
	akuo.mutation.SetStatus(a)
	return akuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (akuo *APIKeyUpdateOne) SetNillableStatus(a *apikey.Status) *APIKeyUpdateOne {
	if a != nil {
		akuo.SetStatus(*a)
	}
	return akuo
}

// AddUsageLogIDs adds the "usage_logs" edge to the APIUsageLog entity by IDs.
func (akuo *APIKeyUpdateOne) AddUsageLogIDs(ids ...string) *APIKeyUpdateOne {
	akuo.mutation.AddUsageLogIDs(ids...)
	return akuo
}

// AddUsageLogs adds the "usage_logs" edges to the APIUsageLog entity.
func (akuo *APIKeyUpdateOne) AddUsageLogs(a ...*APIUsageLog) *APIKeyUpdateOne {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return akuo.AddUsageLogIDs(ids...)
}

// Mutation returns the APIKeyMutation object of the builder.
func (akuo *APIKeyUpdateOne) Mutation() *APIKeyMutation {
	return akuo.mutation
}

// ClearUsageLogs clears all "usage_logs" edges to the APIUsageLog entity.
func (akuo *APIKeyUpdateOne) ClearUsageLogs() *APIKeyUpdateOne {
	akuo.mutation.ClearUsageLogs()
	return akuo
}

// RemoveUsageLogIDs removes the "usage_logs" edge to APIUsageLog entities by IDs.
func (akuo *APIKeyUpdateOne) RemoveUsageLogIDs(ids ...string) *APIKeyUpdateOne {
	akuo.mutation.RemoveUsageLogIDs(ids...)
	return akuo
}

// RemoveUsageLogs removes "usage_logs" edges to APIUsageLog entities.
func (akuo *APIKeyUpdateOne) RemoveUsageLogs(a ...*APIUsageLog) *APIKeyUpdateOne {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return akuo.RemoveUsageLogIDs(ids...)
}

// Where appends a list predicates to the APIKeyUpdate builder.
func (akuo *APIKeyUpdateOne) Where(ps ...predicate.APIKey) *APIKeyUpdateOne {
	akuo.mutation.Where(ps...)
	return akuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (akuo *APIKeyUpdateOne) Select(field string, fields ...string) *APIKeyUpdateOne {
	akuo.fields = append([]string{field}, fields...)
	return akuo
}

// Save executes the query and returns the updated APIKey entity.
func (akuo *APIKeyUpdateOne) Save(ctx context.Context) (*APIKey, error) {
	return withHooks(ctx, akuo.sqlSave, akuo.mutation, akuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (akuo *APIKeyUpdateOne) SaveX(ctx context.Context) *APIKey {
	node, err := akuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (akuo *APIKeyUpdateOne) Exec(ctx context.Context) error {
	_, err := akuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (akuo *APIKeyUpdateOne) ExecX(ctx context.Context) {
	if err := akuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (akuo *APIKeyUpdateOne) check() error {
	if v, ok := akuo.mutation.Status(); ok {
		if err := apikey.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "APIKey.status": %w`, err)}
		}
	}
	return nil
}

func (akuo *APIKeyUpdateOne) sqlSave(ctx context.Context) (_node *APIKey, err error) {
	if err := akuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apikey.Table, apikey.Columns, sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeString))
	id, ok := akuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "APIKey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := akuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, apikey.FieldID)
		for _, f := range fields {
			if !apikey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != apikey.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := akuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := akuo.mutation.EncryptedSecret(); ok {
		_spec.SetField(apikey.FieldEncryptedSecret, field.TypeString, value)
	}
	if value, ok := akuo.mutation.Priority(); ok {
		_spec.SetField(apikey.FieldPriority, field.TypeInt, value)
	}
	if value, ok := akuo.mutation.AddedPriority(); ok {
		_spec.AddField(apikey.FieldPriority, field.TypeInt, value)
	}
	if value, ok := akuo.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(apikey.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := akuo.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(apikey.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := akuo.mutation.LastFailureAt(); ok {
		_spec.SetField(apikey.FieldLastFailureAt, field.TypeTime, value)
	}
	if akuo.mutation.LastFailureAtCleared() {
		_spec.ClearField(apikey.FieldLastFailureAt, field.TypeTime)
	}
	if value, ok := akuo.mutation.CooldownUntil(); ok {
		_spec.SetField(apikey.FieldCooldownUntil, field.TypeTime, value)
	}
	if akuo.mutation.CooldownUntilCleared() {
		_spec.ClearField(apikey.FieldCooldownUntil, field.TypeTime)
	}
	if value, ok := akuo.mutation.MonthlyBudget(); ok {
		_spec.SetField(apikey.FieldMonthlyBudget, field.TypeFloat64, value)
	}
	if value, ok := akuo.mutation.AddedMonthlyBudget(); ok {
		_spec.AddField(apikey.FieldMonthlyBudget, field.TypeFloat64, value)
	}
	if value, ok := akuo.mutation.CurrentSpend(); ok {
		_spec.SetField(apikey.FieldCurrentSpend, field.TypeFloat64, value)
	}
	if value, ok := akuo.mutation.AddedCurrentSpend(); ok {
		_spec.AddField(apikey.FieldCurrentSpend, field.TypeFloat64, value)
	}
	if value, ok := akuo.mutation.LastSpendReset(); ok {
		_spec.SetField(apikey.FieldLastSpendReset, field.TypeTime, value)
	}
	if value, ok := akuo.mutation.Active(); ok {
		_spec.SetField(apikey.FieldActive, field.TypeBool, value)
	}
	if value, ok := akuo.mutation.Status(); ok {
		_spec.SetField(apikey.FieldStatus, field.TypeEnum, value)
	}
	if akuo.mutation.UsageLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := akuo.mutation.RemovedUsageLogsIDs(); len(nodes) > 0 && !akuo.mutation.UsageLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := akuo.mutation.UsageLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &APIKey{config: akuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, akuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apikey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	akuo.mutation.done = true
	return _node, nil
}
