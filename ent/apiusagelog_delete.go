// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/apiusagelog"
	"github.com/agentium/agentium/ent/predicate"
)

// APIUsageLogDelete is the builder for deleting a APIUsageLog entity.
type APIUsageLogDelete struct {
	config
	hooks    []Hook
	mutation *APIUsageLogMutation
}

// Where appends a list predicates to the APIUsageLogDelete builder.
func (auld *APIUsageLogDelete) Where(ps ...predicate.APIUsageLog) *APIUsageLogDelete {
	auld.mutation.Where(ps...)
	return auld
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (auld *APIUsageLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, auld.sqlExec, auld.mutation, auld.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (auld *APIUsageLogDelete) ExecX(ctx context.Context) int {
	n, err := auld.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (auld *APIUsageLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(apiusagelog.Table, sqlgraph.NewFieldSpec(apiusagelog.FieldID, field.TypeString))
	if ps := auld.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, auld.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	auld.mutation.done = true
	return affected, err
}

// APIUsageLogDeleteOne is the builder for deleting a single APIUsageLog entity.
type APIUsageLogDeleteOne struct {
	auld *APIUsageLogDelete
}

// Where appends a list predicates to the APIUsageLogDelete builder.
func (auldo *APIUsageLogDeleteOne) Where(ps ...predicate.APIUsageLog) *APIUsageLogDeleteOne {
	auldo.auld.mutation.Where(ps...)
	return auldo
}

// Exec executes the deletion query.
func (auldo *APIUsageLogDeleteOne) Exec(ctx context.Context) error {
	n, err := auldo.auld.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{apiusagelog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (auldo *APIUsageLogDeleteOne) ExecX(ctx context.Context) {
	if err := auldo.Exec(ctx); err != nil {
		panic(err)
	}
}
