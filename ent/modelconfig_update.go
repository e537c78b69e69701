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
	"github.com/agentium/agentium/ent/modelconfig"
	"github.com/agentium/agentium/ent/predicate"
)

// ModelConfigUpdate is the builder for updating ModelConfig entities.
type ModelConfigUpdate struct {
	config
	hooks    []Hook
	mutation *ModelConfigMutation
}

// Where appends a list predicates to the ModelConfigUpdate builder.
func (mcu *ModelConfigUpdate) Where(ps ...predicate.ModelConfig) *ModelConfigUpdate {
	mcu.mutation.Where(ps...)
	return mcu
}

// SetTemperature sets the "temperature" field.
func (mcu *ModelConfigUpdate) SetTemperature(f float64) *ModelConfigUpdate {
	mcu.mutation.ResetTemperature()
	mcu.mutation.SetTemperature(f)
	return mcu
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (mcu *ModelConfigUpdate) SetNillableTemperature(f *float64) *ModelConfigUpdate {
	if f != nil {
		mcu.SetTemperature(*f)
	}
	return mcu
}

// AddTemperature adds f to the "temperature" field.
func (mcu *ModelConfigUpdate) AddTemperature(f float64) *ModelConfigUpdate {
	mcu.mutation.AddTemperature(f)
	return mcu
}

// ClearTemperature clears the value of the "temperature" field.
func (mcu *ModelConfigUpdate) ClearTemperature() *ModelConfigUpdate {
	mcu.mutation.ClearTemperature()
	return mcu
}

// SetMaxTokens sets the "max_tokens" field.
func (mcu *ModelConfigUpdate) SetMaxTokens(i int) *ModelConfigUpdate {
	mcu.mutation.ResetMaxTokens()
	mcu.mutation.SetMaxTokens(i)
	return mcu
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (mcu *ModelConfigUpdate) SetNillableMaxTokens(i *int) *ModelConfigUpdate {
	if i != nil {
		mcu.SetMaxTokens(*i)
	}
	return mcu
}

// AddMaxTokens adds i to the "max_tokens" field.
func (mcu *ModelConfigUpdate) AddMaxTokens(i int) *ModelConfigUpdate {
	mcu.mutation.AddMaxTokens(i)
	return mcu
}

// ClearMaxTokens clears the value of the "max_tokens" field.
func (mcu *ModelConfigUpdate) ClearMaxTokens() *ModelConfigUpdate {
	mcu.mutation.ClearMaxTokens()
	return mcu
}

// SetUpdatedAt sets the "updated_at" field.
func (mcu *ModelConfigUpdate) SetUpdatedAt(t time.Time) *ModelConfigUpdate {
	mcu.mutation.SetUpdatedAt(t)
	return mcu
}

// Mutation returns the ModelConfigMutation object of the builder.
func (mcu *ModelConfigUpdate) Mutation() *ModelConfigMutation {
	return mcu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (mcu *ModelConfigUpdate) Save(ctx context.Context) (int, error) {
	mcu.defaults()
	return withHooks(ctx, mcu.sqlSave, mcu.mutation, mcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mcu *ModelConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := mcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (mcu *ModelConfigUpdate) Exec(ctx context.Context) error {
	_, err := mcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mcu *ModelConfigUpdate) ExecX(ctx context.Context) {
	if err := mcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mcu *ModelConfigUpdate) defaults() {
	if _, ok := mcu.mutation.UpdatedAt(); !ok {
		v := modelconfig.UpdateDefaultUpdatedAt()
		mcu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mcu *ModelConfigUpdate) check() error {
	if mcu.mutation.AgentCleared() && len(mcu.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ModelConfig.agent"`)
	}
	return nil
}

func (mcu *ModelConfigUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := mcu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelconfig.Table, modelconfig.Columns, sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeString))
	if ps := mcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mcu.mutation.Temperature(); ok {
		_spec.SetField(modelconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := mcu.mutation.AddedTemperature(); ok {
		_spec.AddField(modelconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if mcu.mutation.TemperatureCleared() {
		_spec.ClearField(modelconfig.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := mcu.mutation.MaxTokens(); ok {
		_spec.SetField(modelconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := mcu.mutation.AddedMaxTokens(); ok {
		_spec.AddField(modelconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if mcu.mutation.MaxTokensCleared() {
		_spec.ClearField(modelconfig.FieldMaxTokens, field.TypeInt)
	}
	if value, ok := mcu.mutation.UpdatedAt(); ok {
		_spec.SetField(modelconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, mcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	mcu.mutation.done = true
	return n, nil
}

// ModelConfigUpdateOne is the builder for updating a single ModelConfig entity.
type ModelConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelConfigMutation
}

// SetTemperature sets the "temperature" field.
func (mcuo *ModelConfigUpdateOne) SetTemperature(f float64) *ModelConfigUpdateOne {
	mcuo.mutation.ResetTemperature()
	mcuo.mutation.SetTemperature(f)
	return mcuo
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (mcuo *ModelConfigUpdateOne) SetNillableTemperature(f *float64) *ModelConfigUpdateOne {
	if f != nil {
		mcuo.SetTemperature(*f)
	}
	return mcuo
}

// AddTemperature adds f to the "temperature" field.
func (mcuo *ModelConfigUpdateOne) AddTemperature(f float64) *ModelConfigUpdateOne {
	mcuo.mutation.AddTemperature(f)
	return mcuo
}

// ClearTemperature clears the value of the "temperature" field.
func (mcuo *ModelConfigUpdateOne) ClearTemperature() *ModelConfigUpdateOne {
	mcuo.mutation.ClearTemperature()
	return mcuo
}

// SetMaxTokens sets the "max_tokens" field.
func (mcuo *ModelConfigUpdateOne) SetMaxTokens(i int) *ModelConfigUpdateOne {
	mcuo.mutation.ResetMaxTokens()
	mcuo.mutation.SetMaxTokens(i)
	return mcuo
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (mcuo *ModelConfigUpdateOne) SetNillableMaxTokens(i *int) *ModelConfigUpdateOne {
	if i != nil {
		mcuo.SetMaxTokens(*i)
	}
	return mcuo
}

// AddMaxTokens adds i to the "max_tokens" field.
func (mcuo *ModelConfigUpdateOne) AddMaxTokens(i int) *ModelConfigUpdateOne {
	mcuo.mutation.AddMaxTokens(i)
	return mcuo
}

// ClearMaxTokens clears the value of the "max_tokens" field.
func (mcuo *ModelConfigUpdateOne) ClearMaxTokens() *ModelConfigUpdateOne {
	mcuo.mutation.ClearMaxTokens()
	return mcuo
}

// SetUpdatedAt sets the "updated_at" field.
func (mcuo *ModelConfigUpdateOne) SetUpdatedAt(t time.Time) *ModelConfigUpdateOne {
	mcuo.mutation.SetUpdatedAt(t)
	return mcuo
}

// Mutation returns the ModelConfigMutation object of the builder.
func (mcuo *ModelConfigUpdateOne) Mutation() *ModelConfigMutation {
	return mcuo.mutation
}

// Where appends a list predicates to the ModelConfigUpdate builder.
func (mcuo *ModelConfigUpdateOne) Where(ps ...predicate.ModelConfig) *ModelConfigUpdateOne {
	mcuo.mutation.Where(ps...)
	return mcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (mcuo *ModelConfigUpdateOne) Select(field string, fields ...string) *ModelConfigUpdateOne {
	mcuo.fields = append([]string{field}, fields...)
	return mcuo
}

// Save executes the query and returns the updated ModelConfig entity.
func (mcuo *ModelConfigUpdateOne) Save(ctx context.Context) (*ModelConfig, error) {
	mcuo.defaults()
	return withHooks(ctx, mcuo.sqlSave, mcuo.mutation, mcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mcuo *ModelConfigUpdateOne) SaveX(ctx context.Context) *ModelConfig {
	node, err := mcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (mcuo *ModelConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := mcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mcuo *ModelConfigUpdateOne) ExecX(ctx context.Context) {
	if err := mcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mcuo *ModelConfigUpdateOne) defaults() {
	if _, ok := mcuo.mutation.UpdatedAt(); !ok {
		v := modelconfig.UpdateDefaultUpdatedAt()
		mcuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mcuo *ModelConfigUpdateOne) check() error {
	if mcuo.mutation.AgentCleared() && len(mcuo.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ModelConfig.agent"`)
	}
	return nil
}

func (mcuo *ModelConfigUpdateOne) sqlSave(ctx context.Context) (_node *ModelConfig, err error) {
	if err := mcuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelconfig.Table, modelconfig.Columns, sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeString))
	id, ok := mcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := mcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelconfig.FieldID)
		for _, f := range fields {
			if !modelconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelconfig.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := mcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mcuo.mutation.Temperature(); ok {
		_spec.SetField(modelconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := mcuo.mutation.AddedTemperature(); ok {
		_spec.AddField(modelconfig.FieldTemperature, field.TypeFloat64, value)
	}
	if mcuo.mutation.TemperatureCleared() {
		_spec.ClearField(modelconfig.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := mcuo.mutation.MaxTokens(); ok {
		_spec.SetField(modelconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := mcuo.mutation.AddedMaxTokens(); ok {
		_spec.AddField(modelconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if mcuo.mutation.MaxTokensCleared() {
		_spec.ClearField(modelconfig.FieldMaxTokens, field.TypeInt)
	}
	if value, ok := mcuo.mutation.UpdatedAt(); ok {
		_spec.SetField(modelconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ModelConfig{config: mcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, mcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	mcuo.mutation.done = true
	return _node, nil
}
