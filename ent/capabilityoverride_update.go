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
	"github.com/agentium/agentium/ent/capabilityoverride"
	"github.com/agentium/agentium/ent/predicate"
)

// CapabilityOverrideUpdate is the builder for updating CapabilityOverride entities.
type CapabilityOverrideUpdate struct {
	config
	hooks    []Hook
	mutation *CapabilityOverrideMutation
}

// Where appends a list predicates to the CapabilityOverrideUpdate builder.
func (cou *CapabilityOverrideUpdate) Where(ps ...predicate.CapabilityOverride) *CapabilityOverrideUpdate {
	cou.mutation.Where(ps...)
	return cou
}

// SetMode sets the "mode" field.
func (cou *CapabilityOverrideUpdate) SetMode(c capabilityoverride.Mode) *CapabilityOverrideUpdate {
	cou.mutation.SetMode(c)
	return cou
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (cou *CapabilityOverrideUpdate) SetNillableMode(c *capabilityoverride.Mode) *CapabilityOverrideUpdate {
	if c != nil {
		cou.SetMode(*c)
	}
	return cou
}

// SetGrantedBy sets the "granted_by" field.
func (cou *CapabilityOverrideUpdate) SetGrantedBy(s string) *CapabilityOverrideUpdate {
	cou.mutation.SetGrantedBy(s)
	return cou
}

// SetNillableGrantedBy sets the "granted_by" field if the given value is not nil.
func (cou *CapabilityOverrideUpdate) SetNillableGrantedBy(s *string) *CapabilityOverrideUpdate {
	if s != nil {
		cou.SetGrantedBy(*s)
	}
	return cou
}

// ClearGrantedBy clears the value of the "granted_by" field.
func (cou *CapabilityOverrideUpdate) ClearGrantedBy() *CapabilityOverrideUpdate {
	cou.mutation.ClearGrantedBy()
	return cou
}

// SetUpdatedAt sets the "updated_at" field.
func (cou *CapabilityOverrideUpdate) SetUpdatedAt(t time.Time) *CapabilityOverrideUpdate {
	cou.mutation.SetUpdatedAt(t)
	return cou
}

// Mutation returns the CapabilityOverrideMutation object of the builder.
func (cou *CapabilityOverrideUpdate) Mutation() *CapabilityOverrideMutation {
	return cou.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cou *CapabilityOverrideUpdate) Save(ctx context.Context) (int, error) {
	cou.defaults()
	return withHooks(ctx, cou.sqlSave, cou.mutation, cou.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cou *CapabilityOverrideUpdate) SaveX(ctx context.Context) int {
	affected, err := cou.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cou *CapabilityOverrideUpdate) Exec(ctx context.Context) error {
	_, err := cou.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cou *CapabilityOverrideUpdate) ExecX(ctx context.Context) {
	if err := cou.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cou *CapabilityOverrideUpdate) defaults() {
	if _, ok := cou.mutation.UpdatedAt(); !ok {
		v := capabilityoverride.UpdateDefaultUpdatedAt()
		cou.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cou *CapabilityOverrideUpdate) check() error {
	if v, ok := cou.mutation.Mode(); ok {
		if err := capabilityoverride.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "CapabilityOverride.mode": %w`, err)}
		}
	}
	if cou.mutation.AgentCleared() && len(cou.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CapabilityOverride.agent"`)
	}
	return nil
}

func (cou *CapabilityOverrideUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cou.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(capabilityoverride.Table, capabilityoverride.Columns, sqlgraph.NewFieldSpec(capabilityoverride.FieldID, field.TypeString))
	if ps := cou.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cou.mutation.Mode(); ok {
		_spec.SetField(capabilityoverride.FieldMode, field.TypeEnum, value)
	}
	if value, ok := cou.mutation.GrantedBy(); ok {
		_spec.SetField(capabilityoverride.FieldGrantedBy, field.TypeString, value)
	}
	if cou.mutation.GrantedByCleared() {
		_spec.ClearField(capabilityoverride.FieldGrantedBy, field.TypeString)
	}
	if value, ok := cou.mutation.UpdatedAt(); ok {
		_spec.SetField(capabilityoverride.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cou.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{capabilityoverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cou.mutation.done = true
	return n, nil
}

// CapabilityOverrideUpdateOne is the builder for updating a single CapabilityOverride entity.
type CapabilityOverrideUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CapabilityOverrideMutation
}

// SetMode sets the "mode" field.
func (couo *CapabilityOverrideUpdateOne) SetMode(c capabilityoverride.Mode) *CapabilityOverrideUpdateOne {
	couo.mutation.SetMode(c)
	return couo
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (couo *CapabilityOverrideUpdateOne) SetNillableMode(c *capabilityoverride.Mode) *CapabilityOverrideUpdateOne {
	if c != nil {
		couo.SetMode(*c)
	}
	return couo
}

// SetGrantedBy sets the "granted_by" field.
func (couo *CapabilityOverrideUpdateOne) SetGrantedBy(s string) *CapabilityOverrideUpdateOne {
	couo.mutation.SetGrantedBy(s)
	return couo
}

// SetNillableGrantedBy sets the "granted_by" field if the given value is not nil.
func (couo *CapabilityOverrideUpdateOne) SetNillableGrantedBy(s *string) *CapabilityOverrideUpdateOne {
	if s != nil {
		couo.SetGrantedBy(*s)
	}
	return couo
}

// ClearGrantedBy clears the value of the "granted_by" field.
func (couo *CapabilityOverrideUpdateOne) ClearGrantedBy() *CapabilityOverrideUpdateOne {
	couo.mutation.ClearGrantedBy()
	return couo
}

// SetUpdatedAt sets the "updated_at" field.
func (couo *CapabilityOverrideUpdateOne) SetUpdatedAt(t time.Time) *CapabilityOverrideUpdateOne {
	couo.mutation.SetUpdatedAt(t)
	return couo
}

// Mutation returns the CapabilityOverrideMutation object of the builder.
func (couo *CapabilityOverrideUpdateOne) Mutation() *CapabilityOverrideMutation {
	return couo.mutation
}

// Where appends a list predicates to the CapabilityOverrideUpdate builder.
func (couo *CapabilityOverrideUpdateOne) Where(ps ...predicate.CapabilityOverride) *CapabilityOverrideUpdateOne {
	couo.mutation.Where(ps...)
	return couo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (couo *CapabilityOverrideUpdateOne) Select(field string, fields ...string) *CapabilityOverrideUpdateOne {
	couo.fields = append([]string{field}, fields...)
	return couo
}

// Save executes the query and returns the updated CapabilityOverride entity.
func (couo *CapabilityOverrideUpdateOne) Save(ctx context.Context) (*CapabilityOverride, error) {
	couo.defaults()
	return withHooks(ctx, couo.sqlSave, couo.mutation, couo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (couo *CapabilityOverrideUpdateOne) SaveX(ctx context.Context) *CapabilityOverride {
	node, err := couo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (couo *CapabilityOverrideUpdateOne) Exec(ctx context.Context) error {
	_, err := couo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (couo *CapabilityOverrideUpdateOne) ExecX(ctx context.Context) {
	if err := couo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (couo *CapabilityOverrideUpdateOne) defaults() {
	if _, ok := couo.mutation.UpdatedAt(); !ok {
		v := capabilityoverride.UpdateDefaultUpdatedAt()
		couo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (couo *CapabilityOverrideUpdateOne) check() error {
	if v, ok := couo.mutation.Mode(); ok {
		if err := capabilityoverride.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "CapabilityOverride.mode": %w`, err)}
		}
	}
	if couo.mutation.AgentCleared() && len(couo.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CapabilityOverride.agent"`)
	}
	return nil
}

func (couo *CapabilityOverrideUpdateOne) sqlSave(ctx context.Context) (_node *CapabilityOverride, err error) {
	if err := couo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(capabilityoverride.Table, capabilityoverride.Columns, sqlgraph.NewFieldSpec(capabilityoverride.FieldID, field.TypeString))
	id, ok := couo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CapabilityOverride.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := couo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, capabilityoverride.FieldID)
		for _, f := range fields {
			if !capabilityoverride.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != capabilityoverride.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := couo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := couo.mutation.Mode(); ok {
		_spec.SetField(capabilityoverride.FieldMode, field.TypeEnum, value)
	}
	if value, ok := couo.mutation.GrantedBy(); ok {
		_spec.SetField(capabilityoverride.FieldGrantedBy, field.TypeString, value)
	}
	if couo.mutation.GrantedByCleared() {
		_spec.ClearField(capabilityoverride.FieldGrantedBy, field.TypeString)
	}
	if value, ok := couo.mutation.UpdatedAt(); ok {
		_spec.SetField(capabilityoverride.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CapabilityOverride{config: couo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, couo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{capabilityoverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	couo.mutation.done = true
	return _node, nil
}
