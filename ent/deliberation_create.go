// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/deliberation"
	"github.com/agentium/agentium/ent/task"
	"github.com/agentium/agentium/ent/vote"
)

// DeliberationCreate is the builder for creating a Deliberation entity.
type DeliberationCreate struct {
	config
	mutation *DeliberationMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (dc *DeliberationCreate) SetTaskID(s string) *DeliberationCreate {
	dc.mutation.SetTaskID(s)
	return dc
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (dc *DeliberationCreate) SetNillableTaskID(s *string) *DeliberationCreate {
	if s != nil {
		dc.SetTaskID(*s)
	}
	return dc
}

// SetTopic sets the "topic" field.
func (dc *DeliberationCreate) SetTopic(s string) *DeliberationCreate {
	dc.mutation.SetTopic(s)
	return dc
}

// SetOpenedBy sets the "opened_by" field.
func (dc *DeliberationCreate) SetOpenedBy(s string) *DeliberationCreate {
	dc.mutation.SetOpenedBy(s)
	return dc
}

// SetStatus sets the "status" field.
func (dc *DeliberationCreate) SetStatus(d deliberation.Status) *DeliberationCreate {
	dc.mutation.SetStatus(d)
	return dc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (dc *DeliberationCreate) SetNillableStatus(d *deliberation.Status) *DeliberationCreate {
	if d != nil {
		dc.SetStatus(*d)
	}
	return dc
}

// SetResolution sets the "resolution" field.
func (dc *DeliberationCreate) SetResolution(s string) *DeliberationCreate {
	dc.mutation.SetResolution(s)
	return dc
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (dc *DeliberationCreate) SetNillableResolution(s *string) *DeliberationCreate {
	if s != nil {
		dc.SetResolution(*s)
	}
	return dc
}

// SetCreatedAt sets the "created_at" field.
func (dc *DeliberationCreate) SetCreatedAt(t time.Time) *DeliberationCreate {
	dc.mutation.SetCreatedAt(t)
	return dc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (dc *DeliberationCreate) SetNillableCreatedAt(t *time.Time) *DeliberationCreate {
	if t != nil {
		dc.SetCreatedAt(*t)
	}
	return dc
}

// SetResolvedAt sets the "resolved_at" field.
func (dc *DeliberationCreate) SetResolvedAt(t time.Time) *DeliberationCreate {
	dc.mutation.SetResolvedAt(t)
	return dc
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (dc *DeliberationCreate) SetNillableResolvedAt(t *time.Time) *DeliberationCreate {
	if t != nil {
		dc.SetResolvedAt(*t)
	}
	return dc
}

// SetID sets the "id" field.
func (dc *DeliberationCreate) SetID(s string) *DeliberationCreate {
	dc.mutation.SetID(s)
	return dc
}

// SetTask sets the "task" edge to the Task entity.
func (dc *DeliberationCreate) SetTask(t *Task) *DeliberationCreate {
	return dc.SetTaskID(t.ID)
}

// AddVoteIDs adds the "votes" edge to the Vote entity by IDs.
func (dc *DeliberationCreate) AddVoteIDs(ids ...string) *DeliberationCreate {
	dc.mutation.AddVoteIDs(ids...)
	return dc
}

// AddVotes adds the "votes" edges to the Vote entity.
func (dc *DeliberationCreate) AddVotes(v ...*Vote) *DeliberationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return dc.AddVoteIDs(ids...)
}

// Mutation returns the DeliberationMutation object of the builder.
func (dc *DeliberationCreate) Mutation() *DeliberationMutation {
	return dc.mutation
}

// Save creates the Deliberation in the database.
func (dc *DeliberationCreate) Save(ctx context.Context) (*Deliberation, error) {
	dc.defaults()
	return withHooks(ctx, dc.sqlSave, dc.mutation, dc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (dc *DeliberationCreate) SaveX(ctx context.Context) *Deliberation {
	v, err := dc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dc *DeliberationCreate) Exec(ctx context.Context) error {
	_, err := dc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dc *DeliberationCreate) ExecX(ctx context.Context) {
	if err := dc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (dc *DeliberationCreate) defaults() {
	if _, ok := dc.mutation.Status(); !ok {
		v := deliberation.DefaultStatus
		dc.mutation.SetStatus(v)
	}
	if _, ok := dc.mutation.CreatedAt(); !ok {
		v := deliberation.DefaultCreatedAt()
		dc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dc *DeliberationCreate) check() error {
	if _, ok := dc.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Deliberation.topic"`)}
	}
	if _, ok := dc.mutation.OpenedBy(); !ok {
		return &ValidationError{Name: "opened_by", err: errors.New(`ent: missing required field "Deliberation.opened_by"`)}
	}
	if _, ok := dc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Deliberation.status"`)}
	}
	if v, ok := dc.mutation.Status(); ok {
		if err := deliberation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Deliberation.status": %w`, err)}
		}
	}
	if _, ok := dc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Deliberation.created_at"`)}
	}
	return nil
}

func (dc *DeliberationCreate) sqlSave(ctx context.Context) (*Deliberation, error) {
	if err := dc.check(); err != nil {
		return nil, err
	}
	_node, _spec := dc.createSpec()
	if err := sqlgraph.CreateNode(ctx, dc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Deliberation.ID type: %T", _spec.ID.Value)
		}
	}
	dc.mutation.id = &_node.ID
	dc.mutation.done = true
	return _node, nil
}

func (dc *DeliberationCreate) createSpec() (*Deliberation, *sqlgraph.CreateSpec) {
	var (
		_node = &Deliberation{config: dc.config}
		_spec = sqlgraph.NewCreateSpec(deliberation.Table, sqlgraph.NewFieldSpec(deliberation.FieldID, field.TypeString))
	)
	if id, ok := dc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := dc.mutation.Topic(); ok {
		_spec.SetField(deliberation.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := dc.mutation.OpenedBy(); ok {
		_spec.SetField(deliberation.FieldOpenedBy, field.TypeString, value)
		_node.OpenedBy = value
	}
	if value, ok := dc.mutation.Status(); ok {
		_spec.SetField(deliberation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := dc.mutation.Resolution(); ok {
		_spec.SetField(deliberation.FieldResolution, field.TypeString, value)
		_node.Resolution = &value
	}
	if value, ok := dc.mutation.CreatedAt(); ok {
		_spec.SetField(deliberation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := dc.mutation.ResolvedAt(); ok {
		_spec.SetField(deliberation.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if nodes := dc.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deliberation.TaskTable,
			Columns: []string{deliberation.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := dc.mutation.VotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deliberation.VotesTable,
			Columns: []string{deliberation.VotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DeliberationCreateBulk is the builder for creating many Deliberation entities in bulk.
type DeliberationCreateBulk struct {
	config
	err      error
	builders []*DeliberationCreate
}

// Save creates the Deliberation entities in the database.
func (dcb *DeliberationCreateBulk) Save(ctx context.Context) ([]*Deliberation, error) {
	if dcb.err != nil {
		return nil, dcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(dcb.builders))
	nodes := make([]*Deliberation, len(dcb.builders))
	mutators := make([]Mutator, len(dcb.builders))
	for i := range dcb.builders {
		func(i int, root context.Context) {
			builder := dcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeliberationMutation)
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
					_, err = mutators[i+1].Mutate(root, dcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, dcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, dcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (dcb *DeliberationCreateBulk) SaveX(ctx context.Context) []*Deliberation {
	v, err := dcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dcb *DeliberationCreateBulk) Exec(ctx context.Context) error {
	_, err := dcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dcb *DeliberationCreateBulk) ExecX(ctx context.Context) {
	if err := dcb.Exec(ctx); err != nil {
		panic(err)
	}
}
