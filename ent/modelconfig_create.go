// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/agent"
	"github.com/agentium/agentium/ent/modelconfig"
)

// ModelConfigCreate is the builder for creating a ModelConfig entity.
type ModelConfigCreate struct {
	config
	mutation *ModelConfigMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (mcc *ModelConfigCreate) SetAgentID(s string) *ModelConfigCreate {
	mcc.mutation.SetAgentID(s)
	return mcc
}

// SetModel sets the "model" field.
func (mcc *ModelConfigCreate) SetModel(s string) *ModelConfigCreate {
	mcc.mutation.SetModel(s)
	return mcc
}

// SetTemperature sets the "temperature" field.
func (mcc *ModelConfigCreate) SetTemperature(f float64) *ModelConfigCreate {
	mcc.mutation.SetTemperature(f)
	return mcc
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (mcc *ModelConfigCreate) SetNillableTemperature(f *float64) *ModelConfigCreate {
	if f != nil {
		mcc.SetTemperature(*f)
	}
	return mcc
}

// SetMaxTokens sets the "max_tokens" field.
func (mcc *ModelConfigCreate) SetMaxTokens(i int) *ModelConfigCreate {
	mcc.mutation.SetMaxTokens(i)
	return mcc
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (mcc *ModelConfigCreate) SetNillableMaxTokens(i *int) *ModelConfigCreate {
	if i != nil {
		mcc.SetMaxTokens(*i)
	}
	return mcc
}

// SetCreatedAt sets the "created_at" field.
func (mcc *ModelConfigCreate) SetCreatedAt(t time.Time) *ModelConfigCreate {
	mcc.mutation.SetCreatedAt(t)
	return mcc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (mcc *ModelConfigCreate) SetNillableCreatedAt(t *time.Time) *ModelConfigCreate {
	if t != nil {
		mcc.SetCreatedAt(*t)
	}
	return mcc
}

// SetUpdatedAt sets the "updated_at" field.
func (mcc *ModelConfigCreate) SetUpdatedAt(t time.Time) *ModelConfigCreate {
	mcc.mutation.SetUpdatedAt(t)
	return mcc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (mcc *ModelConfigCreate) SetNillableUpdatedAt(t *time.Time) *ModelConfigCreate {
	if t != nil {
		mcc.SetUpdatedAt(*t)
	}
	return mcc
}

// SetID sets the "id" field.
func (mcc *ModelConfigCreate) SetID(s string) *ModelConfigCreate {
	mcc.mutation.SetID(s)
	return mcc
}

// SetAgent sets the "agent" edge to the Agent entity.
func (mcc *ModelConfigCreate) SetAgent(a *Agent) *ModelConfigCreate {
	return mcc.SetAgentID(a.ID)
}

// Mutation returns the ModelConfigMutation object of the builder.
func (mcc *ModelConfigCreate) Mutation() *ModelConfigMutation {
	return mcc.mutation
}

// Save creates the ModelConfig in the database.
func (mcc *ModelConfigCreate) Save(ctx context.Context) (*ModelConfig, error) {
	mcc.defaults()
	return withHooks(ctx, mcc.sqlSave, mcc.mutation, mcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (mcc *ModelConfigCreate) SaveX(ctx context.Context) *ModelConfig {
	v, err := mcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mcc *ModelConfigCreate) Exec(ctx context.Context) error {
	_, err := mcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mcc *ModelConfigCreate) ExecX(ctx context.Context) {
	if err := mcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mcc *ModelConfigCreate) defaults() {
	if _, ok := mcc.mutation.CreatedAt(); !ok {
		v := modelconfig.DefaultCreatedAt()
		mcc.mutation.SetCreatedAt(v)
	}
	if _, ok := mcc.mutation.UpdatedAt(); !ok {
		v := modelconfig.DefaultUpdatedAt()
		mcc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mcc *ModelConfigCreate) check() error {
	if _, ok := mcc.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "ModelConfig.agent_id"`)}
	}
	if _, ok := mcc.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "ModelConfig.model"`)}
	}
	if _, ok := mcc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModelConfig.created_at"`)}
	}
	if _, ok := mcc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ModelConfig.updated_at"`)}
	}
	if len(mcc.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "ModelConfig.agent"`)}
	}
	return nil
}

func (mcc *ModelConfigCreate) sqlSave(ctx context.Context) (*ModelConfig, error) {
	if err := mcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := mcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, mcc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ModelConfig.ID type: %T", _spec.ID.Value)
		}
	}
	mcc.mutation.id = &_node.ID
	mcc.mutation.done = true
	return _node, nil
}

func (mcc *ModelConfigCreate) createSpec() (*ModelConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelConfig{config: mcc.config}
		_spec = sqlgraph.NewCreateSpec(modelconfig.Table, sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeString))
	)
	if id, ok := mcc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := mcc.mutation.Model(); ok {
		_spec.SetField(modelconfig.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := mcc.mutation.Temperature(); ok {
		_spec.SetField(modelconfig.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = value
	}
	if value, ok := mcc.mutation.MaxTokens(); ok {
		_spec.SetField(modelconfig.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = value
	}
	if value, ok := mcc.mutation.CreatedAt(); ok {
		_spec.SetField(modelconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := mcc.mutation.UpdatedAt(); ok {
		_spec.SetField(modelconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := mcc.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   modelconfig.AgentTable,
			Columns: []string{modelconfig.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ModelConfigCreateBulk is the builder for creating many ModelConfig entities in bulk.
type ModelConfigCreateBulk struct {
	config
	err      error
	builders []*ModelConfigCreate
}

// Save creates the ModelConfig entities in the database.
func (mccb *ModelConfigCreateBulk) Save(ctx context.Context) ([]*ModelConfig, error) {
	if mccb.err != nil {
		return nil, mccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(mccb.builders))
	nodes := make([]*ModelConfig, len(mccb.builders))
	mutators := make([]Mutator, len(mccb.builders))
	for i := range mccb.builders {
		func(i int, root context.Context) {
			builder := mccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelConfigMutation)
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
					_, err = mutators[i+1].Mutate(root, mccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, mccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, mccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (mccb *ModelConfigCreateBulk) SaveX(ctx context.Context) []*ModelConfig {
	v, err := mccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mccb *ModelConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := mccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mccb *ModelConfigCreateBulk) ExecX(ctx context.Context) {
	if err := mccb.Exec(ctx); err != nil {
		panic(err)
	}
}
