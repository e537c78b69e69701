// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/criticreview"
	"github.com/agentium/agentium/ent/task"
)

// CriticReviewCreate is the builder for creating a CriticReview entity.
type CriticReviewCreate struct {
	config
	mutation *CriticReviewMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (crc *CriticReviewCreate) SetTaskID(s string) *CriticReviewCreate {
	crc.mutation.SetTaskID(s)
	return crc
}

// SetCriticID sets the "critic_id" field.
func (crc *CriticReviewCreate) SetCriticID(s string) *CriticReviewCreate {
	crc.mutation.SetCriticID(s)
	return crc
}

// SetCriticType sets the "critic_type" field.
func (crc *CriticReviewCreate) SetCriticType(ct criticreview.CriticType) *CriticReviewCreate {
	crc.mutation.SetCriticType(ct)
	return crc
}

// SetSubmissionHash sets the "submission_hash" field.
func (crc *CriticReviewCreate) SetSubmissionHash(s string) *CriticReviewCreate {
	crc.mutation.SetSubmissionHash(s)
	return crc
}

// SetVerdict sets the "verdict" field.
func (crc *CriticReviewCreate) SetVerdict(c criticreview.Verdict) *CriticReviewCreate {
	crc.mutation.SetVerdict(c)
	return crc
}

// SetReason sets the "reason" field.
func (crc *CriticReviewCreate) SetReason(s string) *CriticReviewCreate {
	crc.mutation.SetReason(s)
	return crc
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (crc *CriticReviewCreate) SetNillableReason(s *string) *CriticReviewCreate {
	if s != nil {
		crc.SetReason(*s)
	}
	return crc
}

// SetSuggestions sets the "suggestions" field.
func (crc *CriticReviewCreate) SetSuggestions(s []string) *CriticReviewCreate {
	crc.mutation.SetSuggestions(s)
	return crc
}

// SetAttempt sets the "attempt" field.
func (crc *CriticReviewCreate) SetAttempt(i int) *CriticReviewCreate {
	crc.mutation.SetAttempt(i)
	return crc
}

// SetCached sets the "cached" field.
func (crc *CriticReviewCreate) SetCached(b bool) *CriticReviewCreate {
	crc.mutation.SetCached(b)
	return crc
}

// SetNillableCached sets the "cached" field if the given value is not nil.
func (crc *CriticReviewCreate) SetNillableCached(b *bool) *CriticReviewCreate {
	if b != nil {
		crc.SetCached(*b)
	}
	return crc
}

// SetCreatedAt sets the "created_at" field.
func (crc *CriticReviewCreate) SetCreatedAt(t time.Time) *CriticReviewCreate {
	crc.mutation.SetCreatedAt(t)
	return crc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (crc *CriticReviewCreate) SetNillableCreatedAt(t *time.Time) *CriticReviewCreate {
	if t != nil {
		crc.SetCreatedAt(*t)
	}
	return crc
}

// SetID sets the "id" field.
func (crc *CriticReviewCreate) SetID(s string) *CriticReviewCreate {
	crc.mutation.SetID(s)
	return crc
}

// SetTask sets the "task" edge to the Task entity.
func (crc *CriticReviewCreate) SetTask(t *Task) *CriticReviewCreate {
	return crc.SetTaskID(t.ID)
}

// Mutation returns the CriticReviewMutation object of the builder.
func (crc *CriticReviewCreate) Mutation() *CriticReviewMutation {
	return crc.mutation
}

// Save creates the CriticReview in the database.
func (crc *CriticReviewCreate) Save(ctx context.Context) (*CriticReview, error) {
	crc.defaults()
	return withHooks(ctx, crc.sqlSave, crc.mutation, crc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (crc *CriticReviewCreate) SaveX(ctx context.Context) *CriticReview {
	v, err := crc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (crc *CriticReviewCreate) Exec(ctx context.Context) error {
	_, err := crc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (crc *CriticReviewCreate) ExecX(ctx context.Context) {
	if err := crc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (crc *CriticReviewCreate) defaults() {
	if _, ok := crc.mutation.Cached(); !ok {
		v := criticreview.DefaultCached
		crc.mutation.SetCached(v)
	}
	if _, ok := crc.mutation.CreatedAt(); !ok {
		v := criticreview.DefaultCreatedAt()
		crc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (crc *CriticReviewCreate) check() error {
	if _, ok := crc.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "CriticReview.task_id"`)}
	}
	if _, ok := crc.mutation.CriticID(); !ok {
		return &ValidationError{Name: "critic_id", err: errors.New(`ent: missing required field "CriticReview.critic_id"`)}
	}
	if _, ok := crc.mutation.CriticType(); !ok {
		return &ValidationError{Name: "critic_type", err: errors.New(`ent: missing required field "CriticReview.critic_type"`)}
	}
	if v, ok := crc.mutation.CriticType(); ok {
		if err := criticreview.CriticTypeValidator(v); err != nil {
			return &ValidationError{Name: "critic_type", err: fmt.Errorf(`ent: validator failed for field "CriticReview.critic_type": %w`, err)}
		}
	}
	if _, ok := crc.mutation.SubmissionHash(); !ok {
		return &ValidationError{Name: "submission_hash", err: errors.New(`ent: missing required field "CriticReview.submission_hash"`)}
	}
	if _, ok := crc.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "CriticReview.verdict"`)}
	}
	if v, ok := crc.mutation.Verdict(); ok {
		if err := criticreview.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "CriticReview.verdict": %w`, err)}
		}
	}
	if _, ok := crc.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "CriticReview.attempt"`)}
	}
	if _, ok := crc.mutation.Cached(); !ok {
		return &ValidationError{Name: "cached", err: errors.New(`ent: missing required field "CriticReview.cached"`)}
	}
	if _, ok := crc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CriticReview.created_at"`)}
	}
	if len(crc.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "CriticReview.task"`)}
	}
	return nil
}

func (crc *CriticReviewCreate) sqlSave(ctx context.Context) (*CriticReview, error) {
	if err := crc.check(); err != nil {
		return nil, err
	}
	_node, _spec := crc.createSpec()
	if err := sqlgraph.CreateNode(ctx, crc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CriticReview.ID type: %T", _spec.ID.Value)
		}
	}
	crc.mutation.id = &_node.ID
	crc.mutation.done = true
	return _node, nil
}

func (crc *CriticReviewCreate) createSpec() (*CriticReview, *sqlgraph.CreateSpec) {
	var (
		_node = &CriticReview{config: crc.config}
		_spec = sqlgraph.NewCreateSpec(criticreview.Table, sqlgraph.NewFieldSpec(criticreview.FieldID, field.TypeString))
	)
	if id, ok := crc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := crc.mutation.CriticID(); ok {
		_spec.SetField(criticreview.FieldCriticID, field.TypeString, value)
		_node.CriticID = value
	}
	if value, ok := crc.mutation.CriticType(); ok {
		_spec.SetField(criticreview.FieldCriticType, field.TypeEnum, value)
		_node.CriticType = value
	}
	if value, ok := crc.mutation.SubmissionHash(); ok {
		_spec.SetField(criticreview.FieldSubmissionHash, field.TypeString, value)
		_node.SubmissionHash = value
	}
	if value, ok := crc.mutation.Verdict(); ok {
		_spec.SetField(criticreview.FieldVerdict, field.TypeEnum, value)
		_node.Verdict = value
	}
	if value, ok := crc.mutation.Reason(); ok {
		_spec.SetField(criticreview.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := crc.mutation.Suggestions(); ok {
		_spec.SetField(criticreview.FieldSuggestions, field.TypeJSON, value)
		_node.Suggestions = value
	}
	if value, ok := crc.mutation.Attempt(); ok {
		_spec.SetField(criticreview.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := crc.mutation.Cached(); ok {
		_spec.SetField(criticreview.FieldCached, field.TypeBool, value)
		_node.Cached = value
	}
	if value, ok := crc.mutation.CreatedAt(); ok {
		_spec.SetField(criticreview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := crc.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   criticreview.TaskTable,
			Columns: []string{criticreview.TaskColumn},
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

// CriticReviewCreateBulk is the builder for creating many CriticReview entities in bulk.
type CriticReviewCreateBulk struct {
	config
	err      error
	builders []*CriticReviewCreate
}

// Save creates the CriticReview entities in the database.
func (crcb *CriticReviewCreateBulk) Save(ctx context.Context) ([]*CriticReview, error) {
	if crcb.err != nil {
		return nil, crcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(crcb.builders))
	nodes := make([]*CriticReview, len(crcb.builders))
	mutators := make([]Mutator, len(crcb.builders))
	for i := range crcb.builders {
		func(i int, root context.Context) {
			builder := crcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CriticReviewMutation)
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
					_, err = mutators[i+1].Mutate(root, crcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, crcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, crcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (crcb *CriticReviewCreateBulk) SaveX(ctx context.Context) []*CriticReview {
	v, err := crcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (crcb *CriticReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := crcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (crcb *CriticReviewCreateBulk) ExecX(ctx context.Context) {
	if err := crcb.Exec(ctx); err != nil {
		panic(err)
	}
}
