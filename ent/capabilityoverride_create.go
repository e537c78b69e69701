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
	"github.com/agentium/agentium/ent/capabilityoverride"
)

// CapabilityOverrideCreate is the builder for creating a CapabilityOverride entity.
type CapabilityOverrideCreate struct {
	config
	mutation *CapabilityOverrideMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (coc *CapabilityOverrideCreate) SetAgentID(s string) *CapabilityOverrideCreate {
	coc.mutation.SetAgentID(s)
	return coc
}

// SetCapability sets the "capability" field.
func (coc *CapabilityOverrideCreate) SetCapability(s string) *CapabilityOverrideCreate {
	coc.mutation.SetCapability(s)
	return coc
}

// SetMode sets the "mode" field.
func (coc *CapabilityOverrideCreate) SetMode(c capabilityoverride.Mode) *CapabilityOverrideCreate {
	coc.mutation.SetMode(c)
	return coc
}

// SetGrantedBy sets the "granted_by" field.
func (coc *CapabilityOverrideCreate) SetGrantedBy(s string) *CapabilityOverrideCreate {
	coc.mutation.SetGrantedBy(s)
	return coc
}

// SetNillableGrantedBy sets the "granted_by" field if the given value is not nil.
func (coc *CapabilityOverrideCreate) SetNillableGrantedBy(s *string) *CapabilityOverrideCreate {
	if s != nil {
		coc.SetGrantedBy(*s)
	}
	return coc
}

// SetCreatedAt sets the "created_at" field.
func (coc *CapabilityOverrideCreate) SetCreatedAt(t time.Time) *CapabilityOverrideCreate {
	coc.mutation.SetCreatedAt(t)
	return coc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (coc *CapabilityOverrideCreate) SetNillableCreatedAt(t *time.Time) *CapabilityOverrideCreate {
	if t != nil {
		coc.SetCreatedAt(*t)
	}
	return coc
}

// SetUpdatedAt sets the "updated_at" field.
func (coc *CapabilityOverrideCreate) SetUpdatedAt(t time.Time) *CapabilityOverrideCreate {
	coc.mutation.SetUpdatedAt(t)
	return coc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (coc *CapabilityOverrideCreate) SetNillableUpdatedAt(t *time.Time) *CapabilityOverrideCreate {
	if t != nil {
		coc.SetUpdatedAt(*t)
	}
	return coc
}

// SetID sets the "id" field.
func (coc *CapabilityOverrideCreate) SetID(s string) *CapabilityOverrideCreate {
	coc.mutation.SetID(s)
	return coc
}

// SetAgent sets the "agent" edge to the Agent entity.
func (coc *CapabilityOverrideCreate) SetAgent(a *Agent) *CapabilityOverrideCreate {
	return coc.SetAgentID(a.ID)
}

// Mutation returns the CapabilityOverrideMutation object of the builder.
func (coc *CapabilityOverrideCreate) Mutation() *CapabilityOverrideMutation {
	return coc.mutation
}

// Save creates the CapabilityOverride in the database.
func (coc *CapabilityOverrideCreate) Save(ctx context.Context) (*CapabilityOverride, error) {
	coc.defaults()
	return withHooks(ctx, coc.sqlSave, coc.mutation, coc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (coc *CapabilityOverrideCreate) SaveX(ctx context.Context) *CapabilityOverride {
	v, err := coc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (coc *CapabilityOverrideCreate) Exec(ctx context.Context) error {
	_, err := coc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (coc *CapabilityOverrideCreate) ExecX(ctx context.Context) {
	if err := coc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (coc *CapabilityOverrideCreate) defaults() {
	if _, ok := coc.mutation.CreatedAt(); !ok {
		v := capabilityoverride.DefaultCreatedAt()
		coc.mutation.SetCreatedAt(v)
	}
	if _, ok := coc.mutation.UpdatedAt(); !ok {
		v := capabilityoverride.DefaultUpdatedAt()
		coc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (coc *CapabilityOverrideCreate) check() error {
	if _, ok := coc.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "CapabilityOverride.agent_id"`)}
	}
	if _, ok := coc.mutation.Capability(); !ok {
		return &ValidationError{Name: "capability", err: errors.New(`ent: missing required field "CapabilityOverride.capability"`)}
	}
	if _, ok := coc.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "CapabilityOverride.mode"`)}
	}
	if v, ok := coc.mutation.Mode(); ok {
		if err := capabilityoverride.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "CapabilityOverride.mode": %w`, err)}
		}
	}
	if _, ok := coc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CapabilityOverride.created_at"`)}
	}
	if _, ok := coc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CapabilityOverride.updated_at"`)}
	}
	if len(coc.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "CapabilityOverride.agent"`)}
	}
	return nil
}

func (coc *CapabilityOverrideCreate) sqlSave(ctx context.Context) (*CapabilityOverride, error) {
	if err := coc.check(); err != nil {
		return nil, err
	}
	_node, _spec := coc.createSpec()
	if err := sqlgraph.CreateNode(ctx, coc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CapabilityOverride.ID type: %T", _spec.ID.Value)
		}
	}
	coc.mutation.id = &_node.ID
	coc.mutation.done = true
	return _node, nil
}

func (coc *CapabilityOverrideCreate) createSpec() (*CapabilityOverride, *sqlgraph.CreateSpec) {
	var (
		_node = &CapabilityOverride{config: coc.config}
		_spec = sqlgraph.NewCreateSpec(capabilityoverride.Table, sqlgraph.NewFieldSpec(capabilityoverride.FieldID, field.TypeString))
	)
	if id, ok := coc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := coc.mutation.Capability(); ok {
		_spec.SetField(capabilityoverride.FieldCapability, field.TypeString, value)
		_node.Capability = value
	}
	if value, ok := coc.mutation.Mode(); ok {
		_spec.SetField(capabilityoverride.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := coc.mutation.GrantedBy(); ok {
		_spec.SetField(capabilityoverride.FieldGrantedBy, field.TypeString, value)
		_node.GrantedBy = value
	}
	if value, ok := coc.mutation.CreatedAt(); ok {
		_spec.SetField(capabilityoverride.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := coc.mutation.UpdatedAt(); ok {
		_spec.SetField(capabilityoverride.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := coc.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   capabilityoverride.AgentTable,
			Columns: []string{capabilityoverride.AgentColumn},
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

// CapabilityOverrideCreateBulk is the builder for creating many CapabilityOverride entities in bulk.
type CapabilityOverrideCreateBulk struct {
	config
	err      error
	builders []*CapabilityOverrideCreate
}

// Save creates the CapabilityOverride entities in the database.
func (cocb *CapabilityOverrideCreateBulk) Save(ctx context.Context) ([]*CapabilityOverride, error) {
	if cocb.err != nil {
		return nil, cocb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cocb.builders))
	nodes := make([]*CapabilityOverride, len(cocb.builders))
	mutators := make([]Mutator, len(cocb.builders))
	for i := range cocb.builders {
		func(i int, root context.Context) {
			builder := cocb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CapabilityOverrideMutation)
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
					_, err = mutators[i+1].Mutate(root, cocb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cocb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cocb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cocb *CapabilityOverrideCreateBulk) SaveX(ctx context.Context) []*CapabilityOverride {
	v, err := cocb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cocb *CapabilityOverrideCreateBulk) Exec(ctx context.Context) error {
	_, err := cocb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cocb *CapabilityOverrideCreateBulk) ExecX(ctx context.Context) {
	if err := cocb.Exec(ctx); err != nil {
		panic(err)
	}
}
