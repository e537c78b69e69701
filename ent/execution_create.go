// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/agent"
	"github.com/agentium/agentium/ent/execution"
)

// ExecutionCreate is the builder for creating a Execution entity.
type ExecutionCreate struct {
	config
	mutation *ExecutionMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (ec *ExecutionCreate) SetAgentID(s string) *ExecutionCreate {
	ec.mutation.SetAgentID(s)
	return ec
}

// SetTaskID sets the "task_id" field.
func (ec *ExecutionCreate) SetTaskID(s string) *ExecutionCreate {
	ec.mutation.SetTaskID(s)
	return ec
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (ec *ExecutionCreate) SetNillableTaskID(s *string) *ExecutionCreate {
	if s != nil {
		ec.SetTaskID(*s)
	}
	return ec
}

// SetCode sets the "code" field.
func (ec *ExecutionCreate) SetCode(s string) *ExecutionCreate {
	ec.mutation.SetCode(s)
	return ec
}

// SetLanguage sets the "language" field.
func (ec *ExecutionCreate) SetLanguage(s string) *ExecutionCreate {
	ec.mutation.SetLanguage(s)
	return ec
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (ec *ExecutionCreate) SetNillableLanguage(s *string) *ExecutionCreate {
	if s != nil {
		ec.SetLanguage(*s)
	}
	return ec
}

// SetDependencies sets the "dependencies" field.
func (ec *ExecutionCreate) SetDependencies(s []string) *ExecutionCreate {
	ec.mutation.SetDependencies(s)
	return ec
}

// SetStatus sets the "status" field.
func (ec *ExecutionCreate) SetStatus(e execution.Status) *ExecutionCreate {
	ec.mutation.SetStatus(e)
	return ec
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ec *ExecutionCreate) SetNillableStatus(e *execution.Status) *ExecutionCreate {
	if e != nil {
		ec.SetStatus(*e)
	}
	return ec
}

// SetSummary sets the "summary" field.
func (ec *ExecutionCreate) SetSummary(m map[string]interface{}) *ExecutionCreate {
	ec.mutation.SetSummary(m)
	return ec
}

// SetSecurityResult sets the "security_result" field.
func (ec *ExecutionCreate) SetSecurityResult(m map[string]interface{}) *ExecutionCreate {
	ec.mutation.SetSecurityResult(m)
	return ec
}

// SetErrorMessage sets the "error_message" field.
func (ec *ExecutionCreate) SetErrorMessage(s string) *ExecutionCreate {
	ec.mutation.SetErrorMessage(s)
	return ec
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (ec *ExecutionCreate) SetNillableErrorMessage(s *string) *ExecutionCreate {
	if s != nil {
		ec.SetErrorMessage(*s)
	}
	return ec
}

// SetSandboxID sets the "sandbox_id" field.
func (ec *ExecutionCreate) SetSandboxID(s string) *ExecutionCreate {
	ec.mutation.SetSandboxID(s)
	return ec
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (ec *ExecutionCreate) SetNillableSandboxID(s *string) *ExecutionCreate {
	if s != nil {
		ec.SetSandboxID(*s)
	}
	return ec
}

// SetStartedAt sets the "started_at" field.
func (ec *ExecutionCreate) SetStartedAt(t time.Time) *ExecutionCreate {
	ec.mutation.SetStartedAt(t)
	return ec
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (ec *ExecutionCreate) SetNillableStartedAt(t *time.Time) *ExecutionCreate {
	if t != nil {
		ec.SetStartedAt(*t)
	}
	return ec
}

// SetCompletedAt sets the "completed_at" field.
func (ec *ExecutionCreate) SetCompletedAt(t time.Time) *ExecutionCreate {
	ec.mutation.SetCompletedAt(t)
	return ec
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (ec *ExecutionCreate) SetNillableCompletedAt(t *time.Time) *ExecutionCreate {
	if t != nil {
		ec.SetCompletedAt(*t)
	}
	return ec
}

// SetID sets the "id" field.
func (ec *ExecutionCreate) SetID(s string) *ExecutionCreate {
	ec.mutation.SetID(s)
	return ec
}

// SetAgent sets the "agent" edge to the Agent entity.
func (ec *ExecutionCreate) SetAgent(a *Agent) *ExecutionCreate {
	return ec.SetAgentID(a.ID)
}

// Mutation returns the ExecutionMutation object of the builder.
func (ec *ExecutionCreate) Mutation() *ExecutionMutation {
	return ec.mutation
}

// Save creates the Execution in the database.
func (ec *ExecutionCreate) Save(ctx context.Context) (*Execution, error) {
	ec.defaults()
	return withHooks(ctx, ec.sqlSave, ec.mutation, ec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ec *ExecutionCreate) SaveX(ctx context.Context) *Execution {
	v, err := ec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ec *ExecutionCreate) Exec(ctx context.Context) error {
	_, err := ec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ec *ExecutionCreate) ExecX(ctx context.Context) {
	if err := ec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ec *ExecutionCreate) defaults() {
	if _, ok := ec.mutation.Language(); !ok {
		v := execution.DefaultLanguage
		ec.mutation.SetLanguage(v)
	}
	if _, ok := ec.mutation.Status(); !ok {
		v := execution.DefaultStatus
		ec.mutation.SetStatus(v)
	}
	if _, ok := ec.mutation.StartedAt(); !ok {
		v := execution.DefaultStartedAt()
		ec.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ec *ExecutionCreate) check() error {
	if _, ok := ec.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Execution.agent_id"`)}
	}
	if _, ok := ec.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Execution.code"`)}
	}
	if _, ok := ec.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "Execution.language"`)}
	}
	if _, ok := ec.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Execution.status"`)}
	}
	if v, ok := ec.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	if _, ok := ec.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Execution.started_at"`)}
	}
	if len(ec.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "Execution.agent"`)}
	}
	return nil
}

func (ec *ExecutionCreate) sqlSave(ctx context.Context) (*Execution, error) {
	if err := ec.check(); err != nil {
		return nil, err
	}
	_node, _spec := ec.createSpec()
	if err := sqlgraph.CreateNode(ctx, ec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Execution.ID type: %T", _spec.ID.Value)
		}
	}
	ec.mutation.id = &_node.ID
	ec.mutation.done = true
	return _node, nil
}

func (ec *ExecutionCreate) createSpec() (*Execution, *sqlgraph.CreateSpec) {
	var (
		_node = &Execution{config: ec.config}
		_spec = sqlgraph.NewCreateSpec(execution.Table, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString))
	)
	if id, ok := ec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ec.mutation.TaskID(); ok {
		_spec.SetField(execution.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := ec.mutation.Code(); ok {
		_spec.SetField(execution.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := ec.mutation.Language(); ok {
		_spec.SetField(execution.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := ec.mutation.Dependencies(); ok {
		_spec.SetField(execution.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := ec.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := ec.mutation.Summary(); ok {
		_spec.SetField(execution.FieldSummary, field.TypeJSON, value)
		_node.Summary = value
	}
	if value, ok := ec.mutation.SecurityResult(); ok {
		_spec.SetField(execution.FieldSecurityResult, field.TypeJSON, value)
		_node.SecurityResult = value
	}
	if value, ok := ec.mutation.ErrorMessage(); ok {
		_spec.SetField(execution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := ec.mutation.SandboxID(); ok {
		_spec.SetField(execution.FieldSandboxID, field.TypeString, value)
		_node.SandboxID = value
	}
	if value, ok := ec.mutation.StartedAt(); ok {
		_spec.SetField(execution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := ec.mutation.CompletedAt(); ok {
		_spec.SetField(execution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := ec.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   execution.AgentTable,
			Columns: []string{execution.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionCreateBulk is the builder for creating many Execution entities in bulk.
type ExecutionCreateBulk struct {
	config
	err      error
	builders []*ExecutionCreate
}

// Save creates the Execution entities in the database.
func (ecb *ExecutionCreateBulk) Save(ctx context.Context) ([]*Execution, error) {
	if ecb.err != nil {
		return nil, ecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ecb.builders))
	nodes := make([]*Execution, len(ecb.builders))
	mutators := make([]Mutator, len(ecb.builders))
	for i := range ecb.builders {
		func(i int, root context.Context) {
			builder := ecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionMutation)
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
					_, err = mutators[i+1].Mutate(root, ecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ecb *ExecutionCreateBulk) SaveX(ctx context.Context) []*Execution {
	v, err := ecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ecb *ExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := ecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ecb *ExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := ecb.Exec(ctx); err != nil {
		panic(err)
	}
}
