// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/capabilityoverride"
	"github.com/agentium/agentium/ent/predicate"
)

// CapabilityOverrideDelete is the builder for deleting a CapabilityOverride entity.
type CapabilityOverrideDelete struct {
	config
	hooks    []Hook
	mutation *CapabilityOverrideMutation
}

// Where appends a list predicates to the CapabilityOverrideDelete builder.
func (cod *CapabilityOverrideDelete) Where(ps ...predicate.CapabilityOverride) *CapabilityOverrideDelete {
	cod.mutation.Where(ps...)
	return cod
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (cod *CapabilityOverrideDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, cod.sqlExec, cod.mutation, cod.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (cod *CapabilityOverrideDelete) ExecX(ctx context.Context) int {
	n, err := cod.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (cod *CapabilityOverrideDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(capabilityoverride.Table, sqlgraph.NewFieldSpec(capabilityoverride.FieldID, field.TypeString))
	if ps := cod.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, cod.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	cod.mutation.done = true
	return affected, err
}

// CapabilityOverrideDeleteOne is the builder for deleting a single CapabilityOverride entity.
type CapabilityOverrideDeleteOne struct {
	cod *CapabilityOverrideDelete
}

// Where appends a list predicates to the CapabilityOverrideDelete builder.
func (codo *CapabilityOverrideDeleteOne) Where(ps ...predicate.CapabilityOverride) *CapabilityOverrideDeleteOne {
	codo.cod.mutation.Where(ps...)
	return codo
}

// Exec executes the deletion query.
func (codo *CapabilityOverrideDeleteOne) Exec(ctx context.Context) error {
	n, err := codo.cod.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{capabilityoverride.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (codo *CapabilityOverrideDeleteOne) ExecX(ctx context.Context) {
	if err := codo.Exec(ctx); err != nil {
		panic(err)
	}
}
