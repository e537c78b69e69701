// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/predicate"
	"github.com/agentium/agentium/ent/sandboxrecord"
)

// SandboxRecordUpdate is the builder for updating SandboxRecord entities.
type SandboxRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SandboxRecordMutation
}

// Where appends a list predicates to the SandboxRecordUpdate builder.
func (sru *SandboxRecordUpdate) Where(ps ...predicate.SandboxRecord) *SandboxRecordUpdate {
	sru.mutation.Where(ps...)
	return sru
}

// SetDestroyedAt sets the "destroyed_at" field.
func (sru *SandboxRecordUpdate) SetDestroyedAt(t time.Time) *SandboxRecordUpdate {
	sru.mutation.SetDestroyedAt(t)
	return sru
}

// SetNillableDestroyedAt sets the "destroyed_at" field if the given value is not nil.
func (sru *SandboxRecordUpdate) SetNillableDestroyedAt(t *time.Time) *SandboxRecordUpdate {
	if t != nil {
		sru.SetDestroyedAt(*t)
	}
	return sru
}

// ClearDestroyedAt clears the value of the "destroyed_at" field.
func (sru *SandboxRecordUpdate) ClearDestroyedAt() *SandboxRecordUpdate {
	sru.mutation.ClearDestroyedAt()
	return sru
}

// SetDestroyReason sets the "destroy_reason" field.
func (sru *SandboxRecordUpdate) SetDestroyReason(s string) *SandboxRecordUpdate {
	sru.mutation.SetDestroyReason(s)
	return sru
}

// SetNillableDestroyReason sets the "destroy_reason" field if the given value is not nil.
func (sru *SandboxRecordUpdate) SetNillableDestroyReason(s *string) *SandboxRecordUpdate {
	if s != nil {
		sru.SetDestroyReason(*s)
	}
	return sru
}

// ClearDestroyReason clears the value of the "destroy_reason" field.
func (sru *SandboxRecordUpdate) ClearDestroyReason() *SandboxRecordUpdate {
	sru.mutation.ClearDestroyReason()
	return sru
}

// Mutation returns the SandboxRecordMutation object of the builder.
func (sru *SandboxRecordUpdate) Mutation() *SandboxRecordMutation {
	return sru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (sru *SandboxRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, sru.sqlSave, sru.mutation, sru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sru *SandboxRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := sru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (sru *SandboxRecordUpdate) Exec(ctx context.Context) error {
	_, err := sru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sru *SandboxRecordUpdate) ExecX(ctx context.Context) {
	if err := sru.Exec(ctx); err != nil {
		panic(err)
	}
}

func (sru *SandboxRecordUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sandboxrecord.Table, sandboxrecord.Columns, sqlgraph.NewFieldSpec(sandboxrecord.FieldID, field.TypeString))
	if ps := sru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sru.mutation.DestroyedAt(); ok {
		_spec.SetField(sandboxrecord.FieldDestroyedAt, field.TypeTime, value)
	}
	if sru.mutation.DestroyedAtCleared() {
		_spec.ClearField(sandboxrecord.FieldDestroyedAt, field.TypeTime)
	}
	if value, ok := sru.mutation.DestroyReason(); ok {
		_spec.SetField(sandboxrecord.FieldDestroyReason, field.TypeString, value)
	}
	if sru.mutation.DestroyReasonCleared() {
		_spec.ClearField(sandboxrecord.FieldDestroyReason, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, sru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sandboxrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	sru.mutation.done = true
	return n, nil
}

// SandboxRecordUpdateOne is the builder for updating a single SandboxRecord entity.
type SandboxRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SandboxRecordMutation
}

// SetDestroyedAt sets the "destroyed_at" field.
func (sruo *SandboxRecordUpdateOne) SetDestroyedAt(t time.Time) *SandboxRecordUpdateOne {
	sruo.mutation.SetDestroyedAt(t)
	return sruo
}

// SetNillableDestroyedAt sets the "destroyed_at" field if the given value is not nil.
func (sruo *SandboxRecordUpdateOne) SetNillableDestroyedAt(t *time.Time) *SandboxRecordUpdateOne {
	if t != nil {
		sruo.SetDestroyedAt(*t)
	}
	return sruo
}

// ClearDestroyedAt clears the value of the "destroyed_at" field.
func (sruo *SandboxRecordUpdateOne) ClearDestroyedAt() *SandboxRecordUpdateOne {
	sruo.mutation.ClearDestroyedAt()
	return sruo
}

// SetDestroyReason sets the "destroy_reason" field.
func (sruo *SandboxRecordUpdateOne) SetDestroyReason(s string) *SandboxRecordUpdateOne {
	sruo.mutation.SetDestroyReason(s)
	return sruo
}

// SetNillableDestroyReason sets the "destroy_reason" field if the given value is not nil.
func (sruo *SandboxRecordUpdateOne) SetNillableDestroyReason(s *string) *SandboxRecordUpdateOne {
	if s != nil {
		sruo.SetDestroyReason(*s)
	}
	return sruo
}

// ClearDestroyReason clears the value of the "destroy_reason" field.
func (sruo *SandboxRecordUpdateOne) ClearDestroyReason() *SandboxRecordUpdateOne {
	sruo.mutation.ClearDestroyReason()
	return sruo
}

// Mutation returns the SandboxRecordMutation object of the builder.
func (sruo *SandboxRecordUpdateOne) Mutation() *SandboxRecordMutation {
	return sruo.mutation
}

// Where appends a list predicates to the SandboxRecordUpdate builder.
func (sruo *SandboxRecordUpdateOne) Where(ps ...predicate.SandboxRecord) *SandboxRecordUpdateOne {
	sruo.mutation.Where(ps...)
	return sruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (sruo *SandboxRecordUpdateOne) Select(field string, fields ...string) *SandboxRecordUpdateOne {
	sruo.fields = append([]string{field}, fields...)
	return sruo
}

// Save executes the query and returns the updated SandboxRecord entity.
func (sruo *SandboxRecordUpdateOne) Save(ctx context.Context) (*SandboxRecord, error) {
	return withHooks(ctx, sruo.sqlSave, sruo.mutation, sruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sruo *SandboxRecordUpdateOne) SaveX(ctx context.Context) *SandboxRecord {
	node, err := sruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (sruo *SandboxRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := sruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sruo *SandboxRecordUpdateOne) ExecX(ctx context.Context) {
	if err := sruo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (sruo *SandboxRecordUpdateOne) sqlSave(ctx context.Context) (_node *SandboxRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(sandboxrecord.Table, sandboxrecord.Columns, sqlgraph.NewFieldSpec(sandboxrecord.FieldID, field.TypeString))
	id, ok := sruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SandboxRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := sruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sandboxrecord.FieldID)
		for _, f := range fields {
			if !sandboxrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sandboxrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := sruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sruo.mutation.DestroyedAt(); ok {
		_spec.SetField(sandboxrecord.FieldDestroyedAt, field.TypeTime, value)
	}
	if sruo.mutation.DestroyedAtCleared() {
		_spec.ClearField(sandboxrecord.FieldDestroyedAt, field.TypeTime)
	}
	if value, ok := sruo.mutation.DestroyReason(); ok {
		_spec.SetField(sandboxrecord.FieldDestroyReason, field.TypeString, value)
	}
	if sruo.mutation.DestroyReasonCleared() {
		_spec.ClearField(sandboxrecord.FieldDestroyReason, field.TypeString)
	}
	_node = &SandboxRecord{config: sruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, sruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sandboxrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	sruo.mutation.done = true
	return _node, nil
}
