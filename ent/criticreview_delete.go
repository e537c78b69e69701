// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/criticreview"
	"github.com/agentium/agentium/ent/predicate"
)

// CriticReviewDelete is the builder for deleting a CriticReview entity.
type CriticReviewDelete struct {
	config
	hooks    []Hook
	mutation *CriticReviewMutation
}

// Where appends a list predicates to the CriticReviewDelete builder.
func (crd *CriticReviewDelete) Where(ps ...predicate.CriticReview) *CriticReviewDelete {
	crd.mutation.Where(ps...)
	return crd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (crd *CriticReviewDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, crd.sqlExec, crd.mutation, crd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (crd *CriticReviewDelete) ExecX(ctx context.Context) int {
	n, err := crd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (crd *CriticReviewDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(criticreview.Table, sqlgraph.NewFieldSpec(criticreview.FieldID, field.TypeString))
	if ps := crd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, crd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	crd.mutation.done = true
	return affected, err
}

// CriticReviewDeleteOne is the builder for deleting a single CriticReview entity.
type CriticReviewDeleteOne struct {
	crd *CriticReviewDelete
}

// Where appends a list predicates to the CriticReviewDelete builder.
func (crdo *CriticReviewDeleteOne) Where(ps ...predicate.CriticReview) *CriticReviewDeleteOne {
	crdo.crd.mutation.Where(ps...)
	return crdo
}

// Exec executes the deletion query.
func (crdo *CriticReviewDeleteOne) Exec(ctx context.Context) error {
	n, err := crdo.crd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{criticreview.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (crdo *CriticReviewDeleteOne) ExecX(ctx context.Context) {
	if err := crdo.Exec(ctx); err != nil {
		panic(err)
	}
}
