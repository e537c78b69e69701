// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/criticreview"
	"github.com/agentium/agentium/ent/predicate"
)

// CriticReviewUpdate is the builder for updating CriticReview entities.
type CriticReviewUpdate struct {
	config
	hooks    []Hook
	mutation *CriticReviewMutation
}

// Where appends a list predicates to the CriticReviewUpdate builder.
func (cru *CriticReviewUpdate) Where(ps ...predicate.CriticReview) *CriticReviewUpdate {
	cru.mutation.Where(ps...)
	return cru
}

// Mutation returns the CriticReviewMutation object of the builder.
func (cru *CriticReviewUpdate) Mutation() *CriticReviewMutation {
	return cru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cru *CriticReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, cru.sqlSave, cru.mutation, cru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cru *CriticReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := cru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cru *CriticReviewUpdate) Exec(ctx context.Context) error {
	_, err := cru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cru *CriticReviewUpdate) ExecX(ctx context.Context) {
	if err := cru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cru *CriticReviewUpdate) check() error {
	if cru.mutation.TaskCleared() && len(cru.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CriticReview.task"`)
	}
	return nil
}

func (cru *CriticReviewUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(criticreview.Table, criticreview.Columns, sqlgraph.NewFieldSpec(criticreview.FieldID, field.TypeString))
	if ps := cru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if cru.mutation.ReasonCleared() {
		_spec.ClearField(criticreview.FieldReason, field.TypeString)
	}
	if cru.mutation.SuggestionsCleared() {
		_spec.ClearField(criticreview.FieldSuggestions, field.TypeJSON)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{criticreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cru.mutation.done = true
	return n, nil
}

// CriticReviewUpdateOne is the builder for updating a single CriticReview entity.
type CriticReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CriticReviewMutation
}

// Mutation returns the CriticReviewMutation object of the builder.
func (cruo *CriticReviewUpdateOne) Mutation() *CriticReviewMutation {
	return cruo.mutation
}

// Where appends a list predicates to the CriticReviewUpdate builder.
func (cruo *CriticReviewUpdateOne) Where(ps ...predicate.CriticReview) *CriticReviewUpdateOne {
	cruo.mutation.Where(ps...)
	return cruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cruo *CriticReviewUpdateOne) Select(field string, fields ...string) *CriticReviewUpdateOne {
	cruo.fields = append([]string{field}, fields...)
	return cruo
}

// Save executes the query and returns the updated CriticReview entity.
func (cruo *CriticReviewUpdateOne) Save(ctx context.Context) (*CriticReview, error) {
	return withHooks(ctx, cruo.sqlSave, cruo.mutation, cruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cruo *CriticReviewUpdateOne) SaveX(ctx context.Context) *CriticReview {
	node, err := cruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cruo *CriticReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := cruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cruo *CriticReviewUpdateOne) ExecX(ctx context.Context) {
	if err := cruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cruo *CriticReviewUpdateOne) check() error {
	if cruo.mutation.TaskCleared() && len(cruo.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CriticReview.task"`)
	}
	return nil
}

func (cruo *CriticReviewUpdateOne) sqlSave(ctx context.Context) (_node *CriticReview, err error) {
	if err := cruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(criticreview.Table, criticreview.Columns, sqlgraph.NewFieldSpec(criticreview.FieldID, field.TypeString))
	id, ok := cruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CriticReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, criticreview.FieldID)
		for _, f := range fields {
			if !criticreview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != criticreview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if cruo.mutation.ReasonCleared() {
		_spec.ClearField(criticreview.FieldReason, field.TypeString)
	}
	if cruo.mutation.SuggestionsCleared() {
		_spec.ClearField(criticreview.FieldSuggestions, field.TypeJSON)
	}
	_node = &CriticReview{config: cruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{criticreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cruo.mutation.done = true
	return _node, nil
}
