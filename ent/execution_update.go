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
	"github.com/agentium/agentium/ent/execution"
	"github.com/agentium/agentium/ent/predicate"
)

// ExecutionUpdate is the builder for updating Execution entities.
type ExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionMutation
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (eu *ExecutionUpdate) Where(ps ...predicate.Execution) *ExecutionUpdate {
	eu.mutation.Where(ps...)
	return eu
}

// SetStatus sets the "status" field.
func (eu *ExecutionUpdate) SetStatus(e execution.Status) *ExecutionUpdate {
	eu.mutation.SetStatus(e)
	return eu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (eu *ExecutionUpdate) SetNillableStatus(e *execution.Status) *ExecutionUpdate {
	if e != nil {
		eu.SetStatus(*e)
	}
	return eu
}

// SetSummary sets the "summary" field.
func (eu *ExecutionUpdate) SetSummary(m map[string]interface{}) *ExecutionUpdate {
	eu.mutation.SetSummary(m)
	return eu
}

// ClearSummary clears the value of the "summary" field.
func (eu *ExecutionUpdate) ClearSummary() *ExecutionUpdate {
	eu.mutation.ClearSummary()
	return eu
}

// SetSecurityResult sets the "security_result" field.
func (eu *ExecutionUpdate) SetSecurityResult(m map[string]interface{}) *ExecutionUpdate {
	eu.mutation.SetSecurityResult(m)
	return eu
}

// ClearSecurityResult clears the value of the "security_result" field.
func (eu *ExecutionUpdate) ClearSecurityResult() *ExecutionUpdate {
	eu.mutation.ClearSecurityResult()
	return eu
}

// SetErrorMessage sets the "error_message" field.
func (eu *ExecutionUpdate) SetErrorMessage(s string) *ExecutionUpdate {
	eu.mutation.SetErrorMessage(s)
	return eu
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (eu *ExecutionUpdate) SetNillableErrorMessage(s *string) *ExecutionUpdate {
	if s != nil {
		eu.SetErrorMessage(*s)
	}
	return eu
}

// ClearErrorMessage clears the value of the "error_message" field.
func (eu *ExecutionUpdate) ClearErrorMessage() *ExecutionUpdate {
	eu.mutation.ClearErrorMessage()
	return eu
}

// SetSandboxID sets the "sandbox_id" field.
func (eu *ExecutionUpdate) SetSandboxID(s string) *ExecutionUpdate {
	eu.mutation.SetSandboxID(s)
	return eu
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (eu *ExecutionUpdate) SetNillableSandboxID(s *string) *ExecutionUpdate {
	if s != nil {
		eu.SetSandboxID(*s)
	}
	return eu
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (eu *ExecutionUpdate) ClearSandboxID() *ExecutionUpdate {
	eu.mutation.ClearSandboxID()
	return eu
}

// SetCompletedAt sets the "completed_at" field.
func (eu *ExecutionUpdate) SetCompletedAt(t time.Time) *ExecutionUpdate {
	eu.mutation.SetCompletedAt(t)
	return eu
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (eu *ExecutionUpdate) SetNillableCompletedAt(t *time.Time) *ExecutionUpdate {
	if t != nil {
		eu.SetCompletedAt(*t)
	}
	return eu
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (eu *ExecutionUpdate) ClearCompletedAt() *ExecutionUpdate {
	eu.mutation.ClearCompletedAt()
	return eu
}

// Mutation returns the ExecutionMutation object of the builder.
func (eu *ExecutionUpdate) Mutation() *ExecutionMutation {
	return eu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (eu *ExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, eu.sqlSave, eu.mutation, eu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (eu *ExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := eu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (eu *ExecutionUpdate) Exec(ctx context.Context) error {
	_, err := eu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (eu *ExecutionUpdate) ExecX(ctx context.Context) {
	if err := eu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (eu *ExecutionUpdate) check() error {
	if v, ok := eu.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if eu.mutation.AgentCleared() && len(eu.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Execution.agent"`)
	}
	return nil
}

func (eu *ExecutionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := eu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	if ps := eu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if eu.mutation.TaskIDCleared() {
		_spec.ClearField(execution.FieldTaskID, field.TypeString)
	}
	if eu.mutation.DependenciesCleared() {
		_spec.ClearField(execution.FieldDependencies, field.TypeJSON)
	}
	if value, ok := eu.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := eu.mutation.Summary(); ok {
		_spec.SetField(execution.FieldSummary, field.TypeJSON, value)
	}
	if eu.mutation.SummaryCleared() {
		_spec.ClearField(execution.FieldSummary, field.TypeJSON)
	}
	if value, ok := eu.mutation.SecurityResult(); ok {
		_spec.SetField(execution.FieldSecurityResult, field.TypeJSON, value)
	}
	if eu.mutation.SecurityResultCleared() {
		_spec.ClearField(execution.FieldSecurityResult, field.TypeJSON)
	}
	if value, ok := eu.mutation.ErrorMessage(); ok {
		_spec.SetField(execution.FieldErrorMessage, field.TypeString, value)
	}
	if eu.mutation.ErrorMessageCleared() {
		_spec.ClearField(execution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := eu.mutation.SandboxID(); ok {
		_spec.SetField(execution.FieldSandboxID, field.TypeString, value)
	}
	if eu.mutation.SandboxIDCleared() {
		_spec.ClearField(execution.FieldSandboxID, field.TypeString)
	}
	if value, ok := eu.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
	}
	if eu.mutation.CompletedAtCleared() {
		_spec.ClearField(execution.FieldCompletedAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, eu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	eu.mutation.done = true
	return n, nil
}

// ExecutionUpdateOne is the builder for updating a single Execution entity.
type ExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionMutation
}

// SetStatus sets the "status" field.
func (euo *ExecutionUpdateOne) SetStatus(e execution.Status) *ExecutionUpdateOne {
	euo.mutation.SetStatus(e)
	return euo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (euo *ExecutionUpdateOne) SetNillableStatus(e *execution.Status) *ExecutionUpdateOne {
	if e != nil {
		euo.SetStatus(*e)
	}
	return euo
}

// SetSummary sets the "summary" field.
func (euo *ExecutionUpdateOne) SetSummary(m map[string]interface{}) *ExecutionUpdateOne {
	euo.mutation.SetSummary(m)
	return euo
}

// ClearSummary clears the value of the "summary" field.
func (euo *ExecutionUpdateOne) ClearSummary() *ExecutionUpdateOne {
	euo.mutation.ClearSummary()
	return euo
}

// SetSecurityResult sets the "security_result" field.
func (euo *ExecutionUpdateOne) SetSecurityResult(m map[string]interface{}) *ExecutionUpdateOne {
	euo.mutation.SetSecurityResult(m)
	return euo
}

// ClearSecurityResult clears the value of the "security_result" field.
func (euo *ExecutionUpdateOne) ClearSecurityResult() *ExecutionUpdateOne {
	euo.mutation.ClearSecurityResult()
	return euo
}

// SetErrorMessage sets the "error_message" field.
func (euo *ExecutionUpdateOne) SetErrorMessage(s string) *ExecutionUpdateOne {
	euo.mutation.SetErrorMessage(s)
	return euo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (euo *ExecutionUpdateOne) SetNillableErrorMessage(s *string) *ExecutionUpdateOne {
	if s != nil {
		euo.SetErrorMessage(*s)
	}
	return euo
}

// ClearErrorMessage clears the value of the "error_message" field.
func (euo *ExecutionUpdateOne) ClearErrorMessage() *ExecutionUpdateOne {
	euo.mutation.ClearErrorMessage()
	return euo
}

// SetSandboxID sets the "sandbox_id" field.
func (euo *ExecutionUpdateOne) SetSandboxID(s string) *ExecutionUpdateOne {
	euo.mutation.SetSandboxID(s)
	return euo
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (euo *ExecutionUpdateOne) SetNillableSandboxID(s *string) *ExecutionUpdateOne {
	if s != nil {
		euo.SetSandboxID(*s)
	}
	return euo
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (euo *ExecutionUpdateOne) ClearSandboxID() *ExecutionUpdateOne {
	euo.mutation.ClearSandboxID()
	return euo
}

// SetCompletedAt sets the "completed_at" field.
func (euo *ExecutionUpdateOne) SetCompletedAt(t time.Time) *ExecutionUpdateOne {
	euo.mutation.SetCompletedAt(t)
	return euo
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (euo *ExecutionUpdateOne) SetNillableCompletedAt(t *time.Time) *ExecutionUpdateOne {
	if t != nil {
		euo.SetCompletedAt(*t)
	}
	return euo
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (euo *ExecutionUpdateOne) ClearCompletedAt() *ExecutionUpdateOne {
	euo.mutation.ClearCompletedAt()
	return euo
}

// Mutation returns the ExecutionMutation object of the builder.
func (euo *ExecutionUpdateOne) Mutation() *ExecutionMutation {
	return euo.mutation
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (euo *ExecutionUpdateOne) Where(ps ...predicate.Execution) *ExecutionUpdateOne {
	euo.mutation.Where(ps...)
	return euo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (euo *ExecutionUpdateOne) Select(field string, fields ...string) *ExecutionUpdateOne {
	euo.fields = append([]string{field}, fields...)
	return euo
}

// Save executes the query and returns the updated Execution entity.
func (euo *ExecutionUpdateOne) Save(ctx context.Context) (*Execution, error) {
	return withHooks(ctx, euo.sqlSave, euo.mutation, euo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (euo *ExecutionUpdateOne) SaveX(ctx context.Context) *Execution {
	node, err := euo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (euo *ExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := euo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (euo *ExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := euo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (euo *ExecutionUpdateOne) check() error {
	if v, ok := euo.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if euo.mutation.AgentCleared() && len(euo.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Execution.agent"`)
	}
	return nil
}

func (euo *ExecutionUpdateOne) sqlSave(ctx context.Context) (_node *Execution, err error) {
	if err := euo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	id, ok := euo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Execution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := euo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, execution.FieldID)
		for _, f := range fields {
			if !execution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != execution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := euo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if euo.mutation.TaskIDCleared() {
		_spec.ClearField(execution.FieldTaskID, field.TypeString)
	}
	if euo.mutation.DependenciesCleared() {
		_spec.ClearField(execution.FieldDependencies, field.TypeJSON)
	}
	if value, ok := euo.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := euo.mutation.Summary(); ok {
		_spec.SetField(execution.FieldSummary, field.TypeJSON, value)
	}
	if euo.mutation.SummaryCleared() {
		_spec.ClearField(execution.FieldSummary, field.TypeJSON)
	}
	if value, ok := euo.mutation.SecurityResult(); ok {
		_spec.SetField(execution.FieldSecurityResult, field.TypeJSON, value)
	}
	if euo.mutation.SecurityResultCleared() {
		_spec.ClearField(execution.FieldSecurityResult, field.TypeJSON)
	}
	if value, ok := euo.mutation.ErrorMessage(); ok {
		_spec.SetField(execution.FieldErrorMessage, field.TypeString, value)
	}
	if euo.mutation.ErrorMessageCleared() {
		_spec.ClearField(execution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := euo.mutation.SandboxID(); ok {
		_spec.SetField(execution.FieldSandboxID, field.TypeString, value)
	}
	if euo.mutation.SandboxIDCleared() {
		_spec.ClearField(execution.FieldSandboxID, field.TypeString)
	}
	if value, ok := euo.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
	}
	if euo.mutation.CompletedAtCleared() {
		_spec.ClearField(execution.FieldCompletedAt, field.TypeTime)
	}
	_node = &Execution{config: euo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, euo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	euo.mutation.done = true
	return _node, nil
}
