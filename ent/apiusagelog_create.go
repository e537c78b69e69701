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

// APIUsageLogCreate is the builder for creating a APIUsageLog entity.
type APIUsageLogCreate struct {
	config
	mutation *APIUsageLogMutation
	hooks    []Hook
}

// SetKeyID sets the "key_id" field.
func (aulc *APIUsageLogCreate) SetKeyID(s string) *APIUsageLogCreate {
	aulc.mutation.SetKeyID(s)
	return aulc
}

// SetAgentID sets the "agent_id" field.
func (aulc *APIUsageLogCreate) SetAgentID(s string) *APIUsageLogCreate {
	aulc.mutation.SetAgentID(s)
	return aulc
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (aulc *APIUsageLogCreate) SetNillableAgentID(s *string) *APIUsageLogCreate {
	if s != nil {
		aulc.SetAgentID(*s)
	}
	return aulc
}

// SetModel sets the "model" field.
func (aulc *APIUsageLogCreate) SetModel(s string) *APIUsageLogCreate {
	aulc.mutation.SetModel(s)
	return aulc
}

// SetInputTokens sets the "input_tokens" field.
func (aulc *APIUsageLogCreate) SetInputTokens(i int) *APIUsageLogCreate {
	aulc.mutation.SetInputTokens(i)
	return aulc
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (aulc *APIUsageLogCreate) SetNillableInputTokens(i *int) *APIUsageLogCreate {
	if i != nil {
		aulc.SetInputTokens(*i)
	}
	return aulc
}

// SetOutputTokens sets the "output_tokens" field.
func (aulc *APIUsageLogCreate) SetOutputTokens(i int) *APIUsageLogCreate {
	aulc.mutation.SetOutputTokens(i)
	return aulc
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (aulc *APIUsageLogCreate) SetNillableOutputTokens(i *int) *APIUsageLogCreate {
	if i != nil {
		aulc.SetOutputTokens(*i)
	}
	return aulc
}

// SetCost sets the "cost" field.
func (aulc *APIUsageLogCreate) SetCost(f float64) *APIUsageLogCreate {
	aulc.mutation.SetCost(f)
	return aulc
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (aulc *APIUsageLogCreate) SetNillableCost(f *float64) *APIUsageLogCreate {
	if f != nil {
		aulc.SetCost(*f)
	}
	return aulc
}

// SetCreatedAt sets the "created_at" field.
func (aulc *APIUsageLogCreate) SetCreatedAt(t time.Time) *APIUsageLogCreate {
	aulc.mutation.SetCreatedAt(t)
	return aulc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (aulc *APIUsageLogCreate) SetNillableCreatedAt(t *time.Time) *APIUsageLogCreate {
	if t != nil {
		aulc.SetCreatedAt(*t)
	}
	return aulc
}

// SetID sets the "id" field.
func (aulc *APIUsageLogCreate) SetID(s string) *APIUsageLogCreate {
	aulc.mutation.SetID(s)
	return aulc
}

// SetKey sets the "key" edge to the APIKey entity.
func (aulc *APIUsageLogCreate) SetKey(a *APIKey) *APIUsageLogCreate {
	return aulc.SetKeyID(a.ID)
}

// Mutation returns the APIUsageLogMutation object of the builder.
func (aulc *APIUsageLogCreate) Mutation() *APIUsageLogMutation {
	return aulc.mutation
}

// Save creates the APIUsageLog in the database.
func (aulc *APIUsageLogCreate) Save(ctx context.Context) (*APIUsageLog, error) {
	aulc.defaults()
	return withHooks(ctx, aulc.sqlSave, aulc.mutation, aulc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aulc *APIUsageLogCreate) SaveX(ctx context.Context) *APIUsageLog {
	v, err := aulc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aulc *APIUsageLogCreate) Exec(ctx context.Context) error {
	_, err := aulc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aulc *APIUsageLogCreate) ExecX(ctx context.Context) {
	if err := aulc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aulc *APIUsageLogCreate) defaults() {
	if _, ok := aulc.mutation.InputTokens(); !ok {
		v := apiusagelog.DefaultInputTokens
		aulc.mutation.SetInputTokens(v)
	}
	if _, ok := aulc.mutation.OutputTokens(); !ok {
		v := apiusagelog.DefaultOutputTokens
		aulc.mutation.SetOutputTokens(v)
	}
	if _, ok := aulc.mutation.Cost(); !ok {
		v := apiusagelog.DefaultCost
		aulc.mutation.SetCost(v)
	}
	if _, ok := aulc.mutation.CreatedAt(); !ok {
		v := apiusagelog.DefaultCreatedAt()
		aulc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aulc *APIUsageLogCreate) check() error {
	if _, ok := aulc.mutation.KeyID(); !ok {
		return &ValidationError{Name: "key_id", err: errors.New(`ent: missing required field "APIUsageLog.key_id"`)}
	}
	if _, ok := aulc.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "APIUsageLog.model"`)}
	}
	if _, ok := aulc.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "APIUsageLog.input_tokens"`)}
	}
	if _, ok := aulc.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "APIUsageLog.output_tokens"`)}
	}
	if _, ok := aulc.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "APIUsageLog.cost"`)}
	}
	if _, ok := aulc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "APIUsageLog.created_at"`)}
	}
	if len(aulc.mutation.KeyIDs()) == 0 {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required edge "APIUsageLog.key"`)}
	}
	return nil
}

func (aulc *APIUsageLogCreate) sqlSave(ctx context.Context) (*APIUsageLog, error) {
	if err := aulc.check(); err != nil {
		return nil, err
	}
	_node, _spec := aulc.createSpec()
	if err := sqlgraph.CreateNode(ctx, aulc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected APIUsageLog.ID type: %T", _spec.ID.Value)
		}
	}
	aulc.mutation.id = &_node.ID
	aulc.mutation.done = true
	return _node, nil
}

func (aulc *APIUsageLogCreate) createSpec() (*APIUsageLog, *sqlgraph.CreateSpec) {
	var (
		_node = &APIUsageLog{config: aulc.config}
		_spec = sqlgraph.NewCreateSpec(apiusagelog.Table, sqlgraph.NewFieldSpec(apiusagelog.FieldID, field.TypeString))
	)
	if id, ok := aulc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := aulc.mutation.AgentID(); ok {
		_spec.SetField(apiusagelog.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := aulc.mutation.Model(); ok {
		_spec.SetField(apiusagelog.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := aulc.mutation.InputTokens(); ok {
		_spec.SetField(apiusagelog.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := aulc.mutation.OutputTokens(); ok {
		_spec.SetField(apiusagelog.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := aulc.mutation.Cost(); ok {
		_spec.SetField(apiusagelog.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := aulc.mutation.CreatedAt(); ok {
		_spec.SetField(apiusagelog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := aulc.mutation.KeyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   apiusagelog.KeyTable,
			Columns: []string{apiusagelog.KeyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(apikey.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.KeyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// APIUsageLogCreateBulk is the builder for creating many APIUsageLog entities in bulk.
type APIUsageLogCreateBulk struct {
	config
	err      error
	builders []*APIUsageLogCreate
}

// Save creates the APIUsageLog entities in the database.
func (aulcb *APIUsageLogCreateBulk) Save(ctx context.Context) ([]*APIUsageLog, error) {
	if aulcb.err != nil {
		return nil, aulcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aulcb.builders))
	nodes := make([]*APIUsageLog, len(aulcb.builders))
	mutators := make([]Mutator, len(aulcb.builders))
	for i := range aulcb.builders {
		func(i int, root context.Context) {
			builder := aulcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*APIUsageLogMutation)
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
					_, err = mutators[i+1].Mutate(root, aulcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aulcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, aulcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aulcb *APIUsageLogCreateBulk) SaveX(ctx context.Context) []*APIUsageLog {
	v, err := aulcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aulcb *APIUsageLogCreateBulk) Exec(ctx context.Context) error {
	_, err := aulcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aulcb *APIUsageLogCreateBulk) ExecX(ctx context.Context) {
	if err := aulcb.Exec(ctx); err != nil {
		panic(err)
	}
}
