// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/sandboxrecord"
)

// SandboxRecordCreate is the builder for creating a SandboxRecord entity.
type SandboxRecordCreate struct {
	config
	mutation *SandboxRecordMutation
	hooks    []Hook
}

// SetContainerID sets the "container_id" field.
func (src *SandboxRecordCreate) SetContainerID(s string) *SandboxRecordCreate {
	src.mutation.SetContainerID(s)
	return src
}

// SetAgentID sets the "agent_id" field.
func (src *SandboxRecordCreate) SetAgentID(s string) *SandboxRecordCreate {
	src.mutation.SetAgentID(s)
	return src
}

// SetImage sets the "image" field.
func (src *SandboxRecordCreate) SetImage(s string) *SandboxRecordCreate {
	src.mutation.SetImage(s)
	return src
}

// SetNetworkMode sets the "network_mode" field.
func (src *SandboxRecordCreate) SetNetworkMode(s string) *SandboxRecordCreate {
	src.mutation.SetNetworkMode(s)
	return src
}

// SetCreatedAt sets the "created_at" field.
func (src *SandboxRecordCreate) SetCreatedAt(t time.Time) *SandboxRecordCreate {
	src.mutation.SetCreatedAt(t)
	return src
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (src *SandboxRecordCreate) SetNillableCreatedAt(t *time.Time) *SandboxRecordCreate {
	if t != nil {
		src.SetCreatedAt(*t)
	}
	return src
}

// SetDestroyedAt sets the "destroyed_at" field.
func (src *SandboxRecordCreate) SetDestroyedAt(t time.Time) *SandboxRecordCreate {
	src.mutation.SetDestroyedAt(t)
	return src
}

// SetNillableDestroyedAt sets the "destroyed_at" field if the given value is not nil.
func (src *SandboxRecordCreate) SetNillableDestroyedAt(t *time.Time) *SandboxRecordCreate {
	if t != nil {
		src.SetDestroyedAt(*t)
	}
	return src
}

// SetDestroyReason sets the "destroy_reason" field.
func (src *SandboxRecordCreate) SetDestroyReason(s string) *SandboxRecordCreate {
	src.mutation.SetDestroyReason(s)
	return src
}

// SetNillableDestroyReason sets the "destroy_reason" field if the given value is not nil.
func (src *SandboxRecordCreate) SetNillableDestroyReason(s *string) *SandboxRecordCreate {
	if s != nil {
		src.SetDestroyReason(*s)
	}
	return src
}

// SetID sets the "id" field.
func (src *SandboxRecordCreate) SetID(s string) *SandboxRecordCreate {
	src.mutation.SetID(s)
	return src
}

// Mutation returns the SandboxRecordMutation object of the builder.
func (src *SandboxRecordCreate) Mutation() *SandboxRecordMutation {
	return src.mutation
}

// Save creates the SandboxRecord in the database.
func (src *SandboxRecordCreate) Save(ctx context.Context) (*SandboxRecord, error) {
	src.defaults()
	return withHooks(ctx, src.sqlSave, src.mutation, src.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (src *SandboxRecordCreate) SaveX(ctx context.Context) *SandboxRecord {
	v, err := src.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (src *SandboxRecordCreate) Exec(ctx context.Context) error {
	_, err := src.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (src *SandboxRecordCreate) ExecX(ctx context.Context) {
	if err := src.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (src *SandboxRecordCreate) defaults() {
	if _, ok := src.mutation.CreatedAt(); !ok {
		v := sandboxrecord.DefaultCreatedAt()
		src.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (src *SandboxRecordCreate) check() error {
	if _, ok := src.mutation.ContainerID(); !ok {
		return &ValidationError{Name: "container_id", err: errors.New(`ent: missing required field "SandboxRecord.container_id"`)}
	}
	if _, ok := src.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "SandboxRecord.agent_id"`)}
	}
	if _, ok := src.mutation.Image(); !ok {
		return &ValidationError{Name: "image", err: errors.New(`ent: missing required field "SandboxRecord.image"`)}
	}
	if _, ok := src.mutation.NetworkMode(); !ok {
		return &ValidationError{Name: "network_mode", err: errors.New(`ent: missing required field "SandboxRecord.network_mode"`)}
	}
	if _, ok := src.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SandboxRecord.created_at"`)}
	}
	return nil
}

func (src *SandboxRecordCreate) sqlSave(ctx context.Context) (*SandboxRecord, error) {
	if err := src.check(); err != nil {
		return nil, err
	}
	_node, _spec := src.createSpec()
	if err := sqlgraph.CreateNode(ctx, src.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SandboxRecord.ID type: %T", _spec.ID.Value)
		}
	}
	src.mutation.id = &_node.ID
	src.mutation.done = true
	return _node, nil
}

func (src *SandboxRecordCreate) createSpec() (*SandboxRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SandboxRecord{config: src.config}
		_spec = sqlgraph.NewCreateSpec(sandboxrecord.Table, sqlgraph.NewFieldSpec(sandboxrecord.FieldID, field.TypeString))
	)
	if id, ok := src.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := src.mutation.ContainerID(); ok {
		_spec.SetField(sandboxrecord.FieldContainerID, field.TypeString, value)
		_node.ContainerID = value
	}
	if value, ok := src.mutation.AgentID(); ok {
		_spec.SetField(sandboxrecord.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := src.mutation.Image(); ok {
		_spec.SetField(sandboxrecord.FieldImage, field.TypeString, value)
		_node.Image = value
	}
	if value, ok := src.mutation.NetworkMode(); ok {
		_spec.SetField(sandboxrecord.FieldNetworkMode, field.TypeString, value)
		_node.NetworkMode = value
	}
	if value, ok := src.mutation.CreatedAt(); ok {
		_spec.SetField(sandboxrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := src.mutation.DestroyedAt(); ok {
		_spec.SetField(sandboxrecord.FieldDestroyedAt, field.TypeTime, value)
		_node.DestroyedAt = &value
	}
	if value, ok := src.mutation.DestroyReason(); ok {
		_spec.SetField(sandboxrecord.FieldDestroyReason, field.TypeString, value)
		_node.DestroyReason = &value
	}
	return _node, _spec
}

// SandboxRecordCreateBulk is the builder for creating many SandboxRecord entities in bulk.
type SandboxRecordCreateBulk struct {
	config
	err      error
	builders []*SandboxRecordCreate
}

// Save creates the SandboxRecord entities in the database.
func (srcb *SandboxRecordCreateBulk) Save(ctx context.Context) ([]*SandboxRecord, error) {
	if srcb.err != nil {
		return nil, srcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(srcb.builders))
	nodes := make([]*SandboxRecord, len(srcb.builders))
	mutators := make([]Mutator, len(srcb.builders))
	for i := range srcb.builders {
		func(i int, root context.Context) {
			builder := srcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SandboxRecordMutation)
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
					_, err = mutators[i+1].Mutate(root, srcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, srcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, srcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (srcb *SandboxRecordCreateBulk) SaveX(ctx context.Context) []*SandboxRecord {
	v, err := srcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (srcb *SandboxRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := srcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (srcb *SandboxRecordCreateBulk) ExecX(ctx context.Context) {
	if err := srcb.Exec(ctx); err != nil {
		panic(err)
	}
}
