// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/predicate"
	"github.com/agentium/agentium/ent/sandboxrecord"
)

// SandboxRecordDelete is the builder for deleting a SandboxRecord entity.
type SandboxRecordDelete struct {
	config
	hooks    []Hook
	mutation *SandboxRecordMutation
}

// Where appends a list predicates to the SandboxRecordDelete builder.
func (srd *SandboxRecordDelete) Where(ps ...predicate.SandboxRecord) *SandboxRecordDelete {
	srd.mutation.Where(ps...)
	return srd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (srd *SandboxRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, srd.sqlExec, srd.mutation, srd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (srd *SandboxRecordDelete) ExecX(ctx context.Context) int {
	n, err := srd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (srd *SandboxRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(sandboxrecord.Table, sqlgraph.NewFieldSpec(sandboxrecord.FieldID, field.TypeString))
	if ps := srd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, srd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	srd.mutation.done = true
	return affected, err
}

// SandboxRecordDeleteOne is the builder for deleting a single SandboxRecord entity.
type SandboxRecordDeleteOne struct {
	srd *SandboxRecordDelete
}

// Where appends a list predicates to the SandboxRecordDelete builder.
func (srdo *SandboxRecordDeleteOne) Where(ps ...predicate.SandboxRecord) *SandboxRecordDeleteOne {
	srdo.srd.mutation.Where(ps...)
	return srdo
}

// Exec executes the deletion query.
func (srdo *SandboxRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := srdo.srd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{sandboxrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (srdo *SandboxRecordDeleteOne) ExecX(ctx context.Context) {
	if err := srdo.Exec(ctx); err != nil {
		panic(err)
	}
}
