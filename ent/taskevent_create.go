// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/task"
	"github.com/agentium/agentium/ent/taskevent"
)

// TaskEventCreate is the builder for creating a TaskEvent entity.
type TaskEventCreate struct {
	config
	mutation *TaskEventMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (tec *TaskEventCreate) SetTaskID(s string) *TaskEventCreate {
	tec.mutation.SetTaskID(s)
	return tec
}

// SetType sets the "type" field.
func (tec *TaskEventCreate) SetType(t taskevent.Type) *TaskEventCreate {
	tec.mutation.SetType(t)
	return tec
}

// SetSeq sets the "seq" field.
func (tec *TaskEventCreate) SetSeq(i int) *TaskEventCreate {
	tec.mutation.SetSeq(i)
	return tec
}

// SetData sets the "data" field.
func (tec *TaskEventCreate) SetData(m map[string]interface{}) *TaskEventCreate {
	tec.mutation.SetData(m)
	return tec
}

// SetOccurredAt sets the "occurred_at" field.
func (tec *TaskEventCreate) SetOccurredAt(t time.Time) *TaskEventCreate {
	tec.mutation.SetOccurredAt(t)
	return tec
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (tec *TaskEventCreate) SetNillableOccurredAt(t *time.Time) *TaskEventCreate {
	if t != nil {
		tec.SetOccurredAt(*t)
	}
	return tec
}

// SetID sets the "id" field.
func (tec *TaskEventCreate) SetID(s string) *TaskEventCreate {
	tec.mutation.SetID(s)
	return tec
}

// SetTask sets the "task" edge to the Task entity.
func (tec *TaskEventCreate) SetTask(t *Task) *TaskEventCreate {
	return tec.SetTaskID(t.ID)
}

// Mutation returns the TaskEventMutation object of the builder.
func (tec *TaskEventCreate) Mutation() *TaskEventMutation {
	return tec.mutation
}

// Save creates the TaskEvent in the database.
func (tec *TaskEventCreate) Save(ctx context.Context) (*TaskEvent, error) {
	tec.defaults()
	return withHooks(ctx, tec.sqlSave, tec.mutation, tec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tec *TaskEventCreate) SaveX(ctx context.Context) *TaskEvent {
	v, err := tec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tec *TaskEventCreate) Exec(ctx context.Context) error {
	_, err := tec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tec *TaskEventCreate) ExecX(ctx context.Context) {
	if err := tec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tec *TaskEventCreate) defaults() {
	if _, ok := tec.mutation.OccurredAt(); !ok {
		v := taskevent.DefaultOccurredAt()
		tec.mutation.SetOccurredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tec *TaskEventCreate) check() error {
	if _, ok := tec.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskEvent.task_id"`)}
	}
	if _, ok := tec.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "TaskEvent.type"`)}
	}
	if v, ok := tec.mutation.GetType(); ok {
		if err := taskevent.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.type": %w`, err)}
		}
	}
	if _, ok := tec.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "TaskEvent.seq"`)}
	}
	if _, ok := tec.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "TaskEvent.occurred_at"`)}
	}
	if len(tec.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TaskEvent.task"`)}
	}
	return nil
}

func (tec *TaskEventCreate) sqlSave(ctx context.Context) (*TaskEvent, error) {
	if err := tec.check(); err != nil {
		return nil, err
	}
	_node, _spec := tec.createSpec()
	if err := sqlgraph.CreateNode(ctx, tec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TaskEvent.ID type: %T", _spec.ID.Value)
		}
	}
	tec.mutation.id = &_node.ID
	tec.mutation.done = true
	return _node, nil
}

func (tec *TaskEventCreate) createSpec() (*TaskEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskEvent{config: tec.config}
		_spec = sqlgraph.NewCreateSpec(taskevent.Table, sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeString))
	)
	if id, ok := tec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := tec.mutation.GetType(); ok {
		_spec.SetField(taskevent.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := tec.mutation.Seq(); ok {
		_spec.SetField(taskevent.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := tec.mutation.Data(); ok {
		_spec.SetField(taskevent.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := tec.mutation.OccurredAt(); ok {
		_spec.SetField(taskevent.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if nodes := tec.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskevent.TaskTable,
			Columns: []string{taskevent.TaskColumn},
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
	return _node, _spec
}

// TaskEventCreateBulk is the builder for creating many TaskEvent entities in bulk.
type TaskEventCreateBulk struct {
	config
	err      error
	builders []*TaskEventCreate
}

// Save creates the TaskEvent entities in the database.
func (tecb *TaskEventCreateBulk) Save(ctx context.Context) ([]*TaskEvent, error) {
	if tecb.err != nil {
		return nil, tecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tecb.builders))
	nodes := make([]*TaskEvent, len(tecb.builders))
	mutators := make([]Mutator, len(tecb.builders))
	for i := range tecb.builders {
		func(i int, root context.Context) {
			builder := tecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskEventMutation)
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
					_, err = mutators[i+1].Mutate(root, tecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, tecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tecb *TaskEventCreateBulk) SaveX(ctx context.Context) []*TaskEvent {
	v, err := tecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tecb *TaskEventCreateBulk) Exec(ctx context.Context) error {
	_, err := tecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tecb *TaskEventCreateBulk) ExecX(ctx context.Context) {
	if err := tecb.Exec(ctx); err != nil {
		panic(err)
	}
}
