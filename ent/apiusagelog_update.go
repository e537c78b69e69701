// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/apiusagelog"
	"github.com/agentium/agentium/ent/predicate"
)

// APIUsageLogUpdate is the builder for updating APIUsageLog entities.
type APIUsageLogUpdate struct {
	config
	hooks    []Hook
	mutation *APIUsageLogMutation
}

// Where appends a list predicates to the APIUsageLogUpdate builder.
func (aulu *APIUsageLogUpdate) Where(ps ...predicate.APIUsageLog) *APIUsageLogUpdate {
	aulu.mutation.Where(ps...)
	return aulu
}

// Mutation returns the APIUsageLogMutation object of the builder.
func (aulu *APIUsageLogUpdate) Mutation() *APIUsageLogMutation {
	return aulu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aulu *APIUsageLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aulu.sqlSave, aulu.mutation, aulu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aulu *APIUsageLogUpdate) SaveX(ctx context.Context) int {
	affected, err := aulu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aulu *APIUsageLogUpdate) Exec(ctx context.Context) error {
	_, err := aulu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aulu *APIUsageLogUpdate) ExecX(ctx context.Context) {
	if err := aulu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aulu *APIUsageLogUpdate) check() error {
	if aulu.mutation.KeyCleared() && len(aulu.mutation.KeyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "APIUsageLog.key"`)
	}
	return nil
}

func (aulu *APIUsageLogUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aulu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(apiusagelog.Table, apiusagelog.Columns, sqlgraph.NewFieldSpec(apiusagelog.FieldID, field.TypeString))
	if ps := aulu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if aulu.mutation.AgentIDCleared() {
		_spec.ClearField(apiusagelog.FieldAgentID, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aulu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apiusagelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aulu.mutation.done = true
	return n, nil
}

// APIUsageLogUpdateOne is the builder for updating a single APIUsageLog entity.
type APIUsageLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *APIUsageLogMutation
}

// Mutation returns the APIUsageLogMutation object of the builder.
func (auluo *APIUsageLogUpdateOne) Mutation() *APIUsageLogMutation {
	return auluo.mutation
}

// Where appends a list predicates to the APIUsageLogUpdate builder.
func (auluo *APIUsageLogUpdateOne) Where(ps ...predicate.APIUsageLog) *APIUsageLogUpdateOne {
	auluo.mutation.Where(ps...)
	return auluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auluo *APIUsageLogUpdateOne) Select(field string, fields ...string) *APIUsageLogUpdateOne {
	auluo.fields = append([]string{field}, fields...)
	return auluo
}

// Save executes the query and returns the updated APIUsageLog entity.
func (auluo *APIUsageLogUpdateOne) Save(ctx context.Context) (*APIUsageLog, error) {
	return withHooks(ctx, auluo.sqlSave, auluo.mutation, auluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auluo *APIUsageLogUpdateOne) SaveX(ctx context.Context) *APIUsageLog {
	node, err := auluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auluo *APIUsageLogUpdateOne) Exec(ctx context.Context) error {
	_, err := auluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auluo *APIUsageLogUpdateOne) ExecX(ctx context.Context) {
	if err := auluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (auluo *APIUsageLogUpdateOne) check() error {
	if auluo.mutation.KeyCleared() && len(auluo.mutation.KeyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "APIUsageLog.key"`)
	}
	return nil
}

func (auluo *APIUsageLogUpdateOne) sqlSave(ctx context.Context) (_node *APIUsageLog, err error) {
	if err := auluo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apiusagelog.Table, apiusagelog.Columns, sqlgraph.NewFieldSpec(apiusagelog.FieldID, field.TypeString))
	id, ok := auluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "APIUsageLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, apiusagelog.FieldID)
		for _, f := range fields {
			if !apiusagelog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != apiusagelog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := auluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if auluo.mutation.AgentIDCleared() {
		_spec.ClearField(apiusagelog.FieldAgentID, field.TypeString)
	}
	_node = &APIUsageLog{config: auluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apiusagelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auluo.mutation.done = true
	return _node, nil
}
