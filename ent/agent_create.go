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
	"github.com/agentium/agentium/ent/capabilityoverride"
	"github.com/agentium/agentium/ent/execution"
	"github.com/agentium/agentium/ent/modelconfig"
	"github.com/agentium/agentium/ent/task"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
}

// SetTier sets the "tier" field.
func (ac *AgentCreate) SetTier(a agent.Tier) *AgentCreate {
	ac.mutation.SetTier(a)
	return ac
}

// SetParentID sets the "parent_id" field.
func (ac *AgentCreate) SetParentID(s string) *AgentCreate {
	ac.mutation.SetParentID(s)
	return ac
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (ac *AgentCreate) SetNillableParentID(s *string) *AgentCreate {
	if s != nil {
		ac.SetParentID(*s)
	}
	return ac
}

// SetStatus sets the "status" field.
func (ac *AgentCreate) SetStatus(a agent.Status) *AgentCreate {
	ac.mutation.SetStatus(a)
	return ac
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ac *AgentCreate) SetNillableStatus(a *agent.Status) *AgentCreate {
	if a != nil {
		ac.SetStatus(*a)
	}
	return ac
}

// SetPersistent sets the "persistent" field.
func (ac *AgentCreate) SetPersistent(b bool) *AgentCreate {
	ac.mutation.SetPersistent(b)
	return ac
}

// SetNillablePersistent sets the "persistent" field if the given value is not nil.
func (ac *AgentCreate) SetNillablePersistent(b *bool) *AgentCreate {
	if b != nil {
		ac.SetPersistent(*b)
	}
	return ac
}

// SetEthos sets the "ethos" field.
func (ac *AgentCreate) SetEthos(s string) *AgentCreate {
	ac.mutation.SetEthos(s)
	return ac
}

// SetNillableEthos sets the "ethos" field if the given value is not nil.
func (ac *AgentCreate) SetNillableEthos(s *string) *AgentCreate {
	if s != nil {
		ac.SetEthos(*s)
	}
	return ac
}

// SetPreferredConfigID sets the "preferred_config_id" field.
func (ac *AgentCreate) SetPreferredConfigID(s string) *AgentCreate {
	ac.mutation.SetPreferredConfigID(s)
	return ac
}

// SetNillablePreferredConfigID sets the "preferred_config_id" field if the given value is not nil.
func (ac *AgentCreate) SetNillablePreferredConfigID(s *string) *AgentCreate {
	if s != nil {
		ac.SetPreferredConfigID(*s)
	}
	return ac
}

// SetSavedConfigID sets the "saved_config_id" field.
func (ac *AgentCreate) SetSavedConfigID(s string) *AgentCreate {
	ac.mutation.SetSavedConfigID(s)
	return ac
}

// SetNillableSavedConfigID sets the "saved_config_id" field if the given value is not nil.
func (ac *AgentCreate) SetNillableSavedConfigID(s *string) *AgentCreate {
	if s != nil {
		ac.SetSavedConfigID(*s)
	}
	return ac
}

// SetRecentViolations sets the "recent_violations" field.
func (ac *AgentCreate) SetRecentViolations(i int) *AgentCreate {
	ac.mutation.SetRecentViolations(i)
	return ac
}

// SetNillableRecentViolations sets the "recent_violations" field if the given value is not nil.
func (ac *AgentCreate) SetNillableRecentViolations(i *int) *AgentCreate {
	if i != nil {
		ac.SetRecentViolations(*i)
	}
	return ac
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (ac *AgentCreate) SetLastHeartbeatAt(t time.Time) *AgentCreate {
	ac.mutation.SetLastHeartbeatAt(t)
	return ac
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (ac *AgentCreate) SetNillableLastHeartbeatAt(t *time.Time) *AgentCreate {
	if t != nil {
		ac.SetLastHeartbeatAt(*t)
	}
	return ac
}

// SetCreatedAt sets the "created_at" field.
func (ac *AgentCreate) SetCreatedAt(t time.Time) *AgentCreate {
	ac.mutation.SetCreatedAt(t)
	return ac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ac *AgentCreate) SetNillableCreatedAt(t *time.Time) *AgentCreate {
	if t != nil {
		ac.SetCreatedAt(*t)
	}
	return ac
}

// SetID sets the "id" field.
func (ac *AgentCreate) SetID(s string) *AgentCreate {
	ac.mutation.SetID(s)
	return ac
}

// SetParent sets the "parent" edge to the Agent entity.
func (ac *AgentCreate) SetParent(a *Agent) *AgentCreate {
	return ac.SetParentID(a.ID)
}

// AddChildIDs adds the "children" edge to the Agent entity by IDs.
func (ac *AgentCreate) AddChildIDs(ids ...string) *AgentCreate {
	ac.mutation.AddChildIDs(ids...)
	return ac
}

// AddChildren adds the "children" edges to the Agent entity.
func (ac *AgentCreate) AddChildren(a ...*Agent) *AgentCreate {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return ac.AddChildIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (ac *AgentCreate) AddTaskIDs(ids ...string) *AgentCreate {
	ac.mutation.AddTaskIDs(ids...)
	return ac
}

// AddTasks adds the "tasks" edges to the Task entity.
func (ac *AgentCreate) AddTasks(t ...*Task) *AgentCreate {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return ac.AddTaskIDs(ids...)
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by IDs.
func (ac *AgentCreate) AddExecutionIDs(ids ...string) *AgentCreate {
	ac.mutation.AddExecutionIDs(ids...)
	return ac
}

// AddExecutions adds the "executions" edges to the Execution entity.
func (ac *AgentCreate) AddExecutions(e ...*Execution) *AgentCreate {
	ids := make([]string, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return ac.AddExecutionIDs(ids...)
}

// AddCapabilityOverrideIDs adds the "capability_overrides" edge to the CapabilityOverride entity by IDs.
func (ac *AgentCreate) AddCapabilityOverrideIDs(ids ...string) *AgentCreate {
	ac.mutation.AddCapabilityOverrideIDs(ids...)
	return ac
}

// AddCapabilityOverrides adds the "capability_overrides" edges to the CapabilityOverride entity.
func (ac *AgentCreate) AddCapabilityOverrides(c ...*CapabilityOverride) *AgentCreate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return ac.AddCapabilityOverrideIDs(ids...)
}

// AddModelConfigIDs adds the "model_configs" edge to the ModelConfig entity by IDs.
func (ac *AgentCreate) AddModelConfigIDs(ids ...string) *AgentCreate {
	ac.mutation.AddModelConfigIDs(ids...)
	return ac
}

// AddModelConfigs adds the "model_configs" edges to the ModelConfig entity.
func (ac *AgentCreate) AddModelConfigs(m ...*ModelConfig) *AgentCreate {
	ids := make([]string, len(m))
	for i := range m {
		ids[i] = m[i].ID
	}
	return ac.AddModelConfigIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (ac *AgentCreate) Mutation() *AgentMutation {
	return ac.mutation
}

// Save creates the Agent in the database.
func (ac *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	ac.defaults()
	return withHooks(ctx, ac.sqlSave, ac.mutation, ac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ac *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := ac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ac *AgentCreate) Exec(ctx context.Context) error {
	_, err := ac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ac *AgentCreate) ExecX(ctx context.Context) {
	if err := ac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ac *AgentCreate) defaults() {
	if _, ok := ac.mutation.Status(); !ok {
		v := agent.DefaultStatus
		ac.mutation.SetStatus(v)
	}
	if _, ok := ac.mutation.Persistent(); !ok {
		v := agent.DefaultPersistent
		ac.mutation.SetPersistent(v)
	}
	if _, ok := ac.mutation.RecentViolations(); !ok {
		v := agent.DefaultRecentViolations
		ac.mutation.SetRecentViolations(v)
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		ac.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ac *AgentCreate) check() error {
	if _, ok := ac.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "Agent.tier"`)}
	}
	if v, ok := ac.mutation.Tier(); ok {
		if err := agent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Agent.tier": %w`, err)}
		}
	}
	if _, ok := ac.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Agent.status"`)}
	}
	if v, ok := ac.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _, ok := ac.mutation.Persistent(); !ok {
		return &ValidationError{Name: "persistent", err: errors.New(`ent: missing required field "Agent.persistent"`)}
	}
	if _, ok := ac.mutation.RecentViolations(); !ok {
		return &ValidationError{Name: "recent_violations", err: errors.New(`ent: missing required field "Agent.recent_violations"`)}
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	return nil
}

func (ac *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
	if err := ac.check(); err != nil {
		return nil, err
	}
	_node, _spec := ac.createSpec()
	if err := sqlgraph.CreateNode(ctx, ac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	ac.mutation.id = &_node.ID
	ac.mutation.done = true
	return _node, nil
}

func (ac *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: ac.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	if id, ok := ac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ac.mutation.Tier(); ok {
		_spec.SetField(agent.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := ac.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := ac.mutation.Persistent(); ok {
		_spec.SetField(agent.FieldPersistent, field.TypeBool, value)
		_node.Persistent = value
	}
	if value, ok := ac.mutation.Ethos(); ok {
		_spec.SetField(agent.FieldEthos, field.TypeString, value)
		_node.Ethos = value
	}
	if value, ok := ac.mutation.PreferredConfigID(); ok {
		_spec.SetField(agent.FieldPreferredConfigID, field.TypeString, value)
		_node.PreferredConfigID = &value
	}
	if value, ok := ac.mutation.SavedConfigID(); ok {
		_spec.SetField(agent.FieldSavedConfigID, field.TypeString, value)
		_node.SavedConfigID = &value
	}
	if value, ok := ac.mutation.RecentViolations(); ok {
		_spec.SetField(agent.FieldRecentViolations, field.TypeInt, value)
		_node.RecentViolations = value
	}
	if value, ok := ac.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(agent.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := ac.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := ac.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.ParentTable,
			Columns: []string{agent.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ac.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ChildrenTable,
			Columns: []string{agent.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ac.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TasksTable,
			Columns: []string{agent.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ac.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ExecutionsTable,
			Columns: []string{agent.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(execution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ac.mutation.CapabilityOverridesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.CapabilityOverridesTable,
			Columns: []string{agent.CapabilityOverridesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(capabilityoverride.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ac.mutation.ModelConfigsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ModelConfigsTable,
			Columns: []string{agent.ModelConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
}

// Save creates the Agent entities in the database.
func (acb *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if acb.err != nil {
		return nil, acb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(acb.builders))
	nodes := make([]*Agent, len(acb.builders))
	mutators := make([]Mutator, len(acb.builders))
	for i := range acb.builders {
		func(i int, root context.Context) {
			builder := acb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
					_, err = mutators[i+1].Mutate(root, acb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, acb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, acb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (acb *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := acb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (acb *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := acb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (acb *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := acb.Exec(ctx); err != nil {
		panic(err)
	}
}
