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
	"github.com/agentium/agentium/ent/agent"
	"github.com/agentium/agentium/ent/capabilityoverride"
	"github.com/agentium/agentium/ent/execution"
	"github.com/agentium/agentium/ent/modelconfig"
	"github.com/agentium/agentium/ent/predicate"
	"github.com/agentium/agentium/ent/task"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (au *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	au.mutation.Where(ps...)
	return au
}

// SetParentID sets the "parent_id" field.
func (au *AgentUpdate) SetParentID(s string) *AgentUpdate {
	au.mutation.SetParentID(s)
	return au
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (au *AgentUpdate) SetNillableParentID(s *string) *AgentUpdate {
	if s != nil {
		au.SetParentID(*s)
	}
	return au
}

// ClearParentID clears the value of the "parent_id" field.
func (au *AgentUpdate) ClearParentID() *AgentUpdate {
	au.mutation.ClearParentID()
	return au
}

// SetStatus sets the "status" field.
func (au *AgentUpdate) SetStatus(a agent.Status) *AgentUpdate {
	au.mutation.SetStatus(a)
	return au
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (au *AgentUpdate) SetNillableStatus(a *agent.Status) *AgentUpdate {
	if a != nil {
		au.SetStatus(*a)
	}
	return au
}

// SetPersistent sets the "persistent" field.
func (au *AgentUpdate) SetPersistent(b bool) *AgentUpdate {
	au.mutation.SetPersistent(b)
	return au
}

// SetNillablePersistent sets the "persistent" field if the given value is not nil.
func (au *AgentUpdate) SetNillablePersistent(b *bool) *AgentUpdate {
	if b != nil {
		au.SetPersistent(*b)
	}
	return au
}

// SetEthos sets the "ethos" field.
func (au *AgentUpdate) SetEthos(s string) *AgentUpdate {
	au.mutation.SetEthos(s)
	return au
}

// SetNillableEthos sets the "ethos" field if the given value is not nil.
func (au *AgentUpdate) SetNillableEthos(s *string) *AgentUpdate {
	if s != nil {
		au.SetEthos(*s)
	}
	return au
}

// ClearEthos clears the value of the "ethos" field.
func (au *AgentUpdate) ClearEthos() *AgentUpdate {
	au.mutation.ClearEthos()
	return au
}

// SetPreferredConfigID sets the "preferred_config_id" field.
func (au *AgentUpdate) SetPreferredConfigID(s string) *AgentUpdate {
	au.mutation.SetPreferredConfigID(s)
	return au
}

// SetNillablePreferredConfigID sets the "preferred_config_id" field if the given value is not nil.
func (au *AgentUpdate) SetNillablePreferredConfigID(s *string) *AgentUpdate {
	if s != nil {
		au.SetPreferredConfigID(*s)
	}
	return au
}

// ClearPreferredConfigID clears the value of the "preferred_config_id" field.
func (au *AgentUpdate) ClearPreferredConfigID() *AgentUpdate {
	au.mutation.ClearPreferredConfigID()
	return au
}

// SetSavedConfigID sets the "saved_config_id" field.
func (au *AgentUpdate) SetSavedConfigID(s string) *AgentUpdate {
	au.mutation.SetSavedConfigID(s)
	return au
}

// SetNillableSavedConfigID sets the "saved_config_id" field if the given value is not nil.
func (au *AgentUpdate) SetNillableSavedConfigID(s *string) *AgentUpdate {
	if s != nil {
		au.SetSavedConfigID(*s)
	}
	return au
}

// ClearSavedConfigID clears the value of the "saved_config_id" field.
func (au *AgentUpdate) ClearSavedConfigID() *AgentUpdate {
	au.mutation.ClearSavedConfigID()
	return au
}

// SetRecentViolations sets the "recent_violations" field.
func (au *AgentUpdate) SetRecentViolations(i int) *AgentUpdate {
	au.mutation.ResetRecentViolations()
	au.mutation.SetRecentViolations(i)
	return au
}

// SetNillableRecentViolations sets the "recent_violations" field if the given value is not nil.
func (au *AgentUpdate) SetNillableRecentViolations(i *int) *AgentUpdate {
	if i != nil {
		au.SetRecentViolations(*i)
	}
	return au
}

// AddRecentViolations adds i to the "recent_violations" field.
func (au *AgentUpdate) AddRecentViolations(i int) *AgentUpdate {
	au.mutation.AddRecentViolations(i)
	return au
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (au *AgentUpdate) SetLastHeartbeatAt(t time.Time) *AgentUpdate {
	au.mutation.SetLastHeartbeatAt(t)
	return au
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (au *AgentUpdate) SetNillableLastHeartbeatAt(t *time.Time) *AgentUpdate {
	if t != nil {
		au.SetLastHeartbeatAt(*t)
	}
	return au
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (au *AgentUpdate) ClearLastHeartbeatAt() *AgentUpdate {
	au.mutation.ClearLastHeartbeatAt()
	return au
}

// SetParent sets the "parent" edge to the Agent entity.
func (au *AgentUpdate) SetParent(a *Agent) *AgentUpdate {
	return au.SetParentID(a.ID)
}

// AddChildIDs adds the "children" edge to the Agent entity by IDs.
func (au *AgentUpdate) AddChildIDs(ids ...string) *AgentUpdate {
	au.mutation.AddChildIDs(ids...)
	return au
}

// AddChildren adds the "children" edges to the Agent entity.
func (au *AgentUpdate) AddChildren(a ...*Agent) *AgentUpdate {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return au.AddChildIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (au *AgentUpdate) AddTaskIDs(ids ...string) *AgentUpdate {
	au.mutation.AddTaskIDs(ids...)
	return au
}

// AddTasks adds the "tasks" edges to the Task entity.
func (au *AgentUpdate) AddTasks(t ...*Task) *AgentUpdate {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return au.AddTaskIDs(ids...)
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by IDs.
func (au *AgentUpdate) AddExecutionIDs(ids ...string) *AgentUpdate {
	au.mutation.AddExecutionIDs(ids...)
	return au
}

// AddExecutions adds the "executions" edges to the Execution entity.
func (au *AgentUpdate) AddExecutions(e ...*Execution) *AgentUpdate {
	ids := make([]string, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return au.AddExecutionIDs(ids...)
}

// AddCapabilityOverrideIDs adds the "capability_overrides" edge to the CapabilityOverride entity by IDs.
func (au *AgentUpdate) AddCapabilityOverrideIDs(ids ...string) *AgentUpdate {
	au.mutation.AddCapabilityOverrideIDs(ids...)
	return au
}

// AddCapabilityOverrides adds the "capability_overrides" edges to the CapabilityOverride entity.
func (au *AgentUpdate) AddCapabilityOverrides(c ...*CapabilityOverride) *AgentUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return au.AddCapabilityOverrideIDs(ids...)
}

// AddModelConfigIDs adds the "model_configs" edge to the ModelConfig entity by IDs.
func (au *AgentUpdate) AddModelConfigIDs(ids ...string) *AgentUpdate {
	au.mutation.AddModelConfigIDs(ids...)
	return au
}

// AddModelConfigs adds the "model_configs" edges to the ModelConfig entity.
func (au *AgentUpdate) AddModelConfigs(m ...*ModelConfig) *AgentUpdate {
	ids := make([]string, len(m))
	for i := range m {
		ids[i] = m[i].ID
	}
	return au.AddModelConfigIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (au *AgentUpdate) Mutation() *AgentMutation {
	return au.mutation
}

// ClearParent clears the "parent" edge to the Agent entity.
func (au *AgentUpdate) ClearParent() *AgentUpdate {
	au.mutation.ClearParent()
	return au
}

// ClearChildren clears all "children" edges to the Agent entity.
func (au *AgentUpdate) ClearChildren() *AgentUpdate {
	au.mutation.ClearChildren()
	return au
}

// RemoveChildIDs removes the "children" edge to Agent entities by IDs.
func (au *AgentUpdate) RemoveChildIDs(ids ...string) *AgentUpdate {
	au.mutation.RemoveChildIDs(ids...)
	return au
}

// RemoveChildren removes "children" edges to Agent entities.
func (au *AgentUpdate) RemoveChildren(a ...*Agent) *AgentUpdate {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return au.RemoveChildIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (au *AgentUpdate) ClearTasks() *AgentUpdate {
	au.mutation.ClearTasks()
	return au
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (au *AgentUpdate) RemoveTaskIDs(ids ...string) *AgentUpdate {
	au.mutation.RemoveTaskIDs(ids...)
	return au
}

// RemoveTasks removes "tasks" edges to Task entities.
func (au *AgentUpdate) RemoveTasks(t ...*Task) *AgentUpdate {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return au.RemoveTaskIDs(ids...)
}

// ClearExecutions clears all "executions" edges to the Execution entity.
func (au *AgentUpdate) ClearExecutions() *AgentUpdate {
	au.mutation.ClearExecutions()
	return au
}

// RemoveExecutionIDs removes the "executions" edge to Execution entities by IDs.
func (au *AgentUpdate) RemoveExecutionIDs(ids ...string) *AgentUpdate {
	au.mutation.RemoveExecutionIDs(ids...)
	return au
}

// RemoveExecutions removes "executions" edges to Execution entities.
func (au *AgentUpdate) RemoveExecutions(e ...*Execution) *AgentUpdate {
	ids := make([]string, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return au.RemoveExecutionIDs(ids...)
}

// ClearCapabilityOverrides clears all "capability_overrides" edges to the CapabilityOverride entity.
func (au *AgentUpdate) ClearCapabilityOverrides() *AgentUpdate {
	au.mutation.ClearCapabilityOverrides()
	return au
}

// RemoveCapabilityOverrideIDs removes the "capability_overrides" edge to CapabilityOverride entities by IDs.
func (au *AgentUpdate) RemoveCapabilityOverrideIDs(ids ...string) *AgentUpdate {
	au.mutation.RemoveCapabilityOverrideIDs(ids...)
	return au
}

// RemoveCapabilityOverrides removes "capability_overrides" edges to CapabilityOverride entities.
func (au *AgentUpdate) RemoveCapabilityOverrides(c ...*CapabilityOverride) *AgentUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return au.RemoveCapabilityOverrideIDs(ids...)
}

// ClearModelConfigs clears all "model_configs" edges to the ModelConfig entity.
func (au *AgentUpdate) ClearModelConfigs() *AgentUpdate {
	au.mutation.ClearModelConfigs()
	return au
}

// RemoveModelConfigIDs removes the "model_configs" edge to ModelConfig entities by IDs.
func (au *AgentUpdate) RemoveModelConfigIDs(ids ...string) *AgentUpdate {
	au.mutation.RemoveModelConfigIDs(ids...)
	return au
}

// RemoveModelConfigs removes "model_configs" edges to ModelConfig entities.
func (au *AgentUpdate) RemoveModelConfigs(m ...*ModelConfig) *AgentUpdate {
	ids := make([]string, len(m))
	for i := range m {
		ids[i] = m[i].ID
	}
	return au.RemoveModelConfigIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (au *AgentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, au.sqlSave, au.mutation, au.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (au *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := au.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (au *AgentUpdate) Exec(ctx context.Context) error {
	_, err := au.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (au *AgentUpdate) ExecX(ctx context.Context) {
	if err := au.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (au *AgentUpdate) check() error {
	if v, ok := au.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (au *AgentUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := au.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := au.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := au.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := au.mutation.Persistent(); ok {
		_spec.SetField(agent.FieldPersistent, field.TypeBool, value)
	}
	if value, ok := au.mutation.Ethos(); ok {
		_spec.SetField(agent.FieldEthos, field.TypeString, value)
	}
	if au.mutation.EthosCleared() {
		_spec.ClearField(agent.FieldEthos, field.TypeString)
	}
	if value, ok := au.mutation.PreferredConfigID(); ok {
		_spec.SetField(agent.FieldPreferredConfigID, field.TypeString, value)
	}
	if au.mutation.PreferredConfigIDCleared() {
		_spec.ClearField(agent.FieldPreferredConfigID, field.TypeString)
	}
	if value, ok := au.mutation.SavedConfigID(); ok {
		_spec.SetField(agent.FieldSavedConfigID, field.TypeString, value)
	}
	if au.mutation.SavedConfigIDCleared() {
		_spec.ClearField(agent.FieldSavedConfigID, field.TypeString)
	}
	if value, ok := au.mutation.RecentViolations(); ok {
		_spec.SetField(agent.FieldRecentViolations, field.TypeInt, value)
	}
	if value, ok := au.mutation.AddedRecentViolations(); ok {
		_spec.AddField(agent.FieldRecentViolations, field.TypeInt, value)
	}
	if value, ok := au.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(agent.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if au.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(agent.FieldLastHeartbeatAt, field.TypeTime)
	}
	if au.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if au.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !au.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if au.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.RemovedTasksIDs(); len(nodes) > 0 && !au.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if au.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !au.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if au.mutation.CapabilityOverridesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.RemovedCapabilityOverridesIDs(); len(nodes) > 0 && !au.mutation.CapabilityOverridesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.CapabilityOverridesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if au.mutation.ModelConfigsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.RemovedModelConfigsIDs(); len(nodes) > 0 && !au.mutation.ModelConfigsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.ModelConfigsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, au.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	au.mutation.done = true
	return n, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetParentID sets the "parent_id" field.
func (auo *AgentUpdateOne) SetParentID(s string) *AgentUpdateOne {
	auo.mutation.SetParentID(s)
	return auo
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (auo *AgentUpdateOne) SetNillableParentID(s *string) *AgentUpdateOne {
	if s != nil {
		auo.SetParentID(*s)
	}
	return auo
}

// ClearParentID clears the value of the "parent_id" field.
func (auo *AgentUpdateOne) ClearParentID() *AgentUpdateOne {
	auo.mutation.ClearParentID()
	return auo
}

// SetStatus sets the "status" field.
func (auo *AgentUpdateOne) SetStatus(a agent.Status) *AgentUpdateOne {
	auo.mutation.SetStatus(a)
	return auo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (auo *AgentUpdateOne) SetNillableStatus(a *agent.Status) *AgentUpdateOne {
	if a != nil {
		auo.SetStatus(*a)
	}
	return auo
}

// SetPersistent sets the "persistent" field.
func (auo *AgentUpdateOne) SetPersistent(b bool) *AgentUpdateOne {
	auo.mutation.SetPersistent(b)
	return auo
}

// SetNillablePersistent sets the "persistent" field if the given value is not nil.
func (auo *AgentUpdateOne) SetNillablePersistent(b *bool) *AgentUpdateOne {
	if b != nil {
		auo.SetPersistent(*b)
	}
	return auo
}

// SetEthos sets the "ethos" field.
func (auo *AgentUpdateOne) SetEthos(s string) *AgentUpdateOne {
	auo.mutation.SetEthos(s)
	return auo
}

// SetNillableEthos sets the "ethos" field if the given value is not nil.
func (auo *AgentUpdateOne) SetNillableEthos(s *string) *AgentUpdateOne {
	if s != nil {
		auo.SetEthos(*s)
	}
	return auo
}

// ClearEthos clears the value of the "ethos" field.
func (auo *AgentUpdateOne) ClearEthos() *AgentUpdateOne {
	auo.mutation.ClearEthos()
	return auo
}

// SetPreferredConfigID sets the "preferred_config_id" field.
func (auo *AgentUpdateOne) SetPreferredConfigID(s string) *AgentUpdateOne {
	auo.mutation.SetPreferredConfigID(s)
	return auo
}

// SetNillablePreferredConfigID sets the "preferred_config_id" field if the given value is not nil.
func (auo *AgentUpdateOne) SetNillablePreferredConfigID(s *string) *AgentUpdateOne {
	if s != nil {
		auo.SetPreferredConfigID(*s)
	}
	return auo
}

// ClearPreferredConfigID clears the value of the "preferred_config_id" field.
func (auo *AgentUpdateOne) ClearPreferredConfigID() *AgentUpdateOne {
	auo.mutation.ClearPreferredConfigID()
	return auo
}

// SetSavedConfigID sets the "saved_config_id" field.
func (auo *AgentUpdateOne) SetSavedConfigID(s string) *AgentUpdateOne {
	auo.mutation.SetSavedConfigID(s)
	return auo
}

// SetNillableSavedConfigID sets the "saved_config_id" field if the given value is not nil.
func (auo *AgentUpdateOne) SetNillableSavedConfigID(s *string) *AgentUpdateOne {
	if s != nil {
		auo.SetSavedConfigID(*s)
	}
	return auo
}

// ClearSavedConfigID clears the value of the "saved_config_id" field.
func (auo *AgentUpdateOne) ClearSavedConfigID() *AgentUpdateOne {
	auo.mutation.ClearSavedConfigID()
	return auo
}

// SetRecentViolations sets the "recent_violations" field.
func (auo *AgentUpdateOne) SetRecentViolations(i int) *AgentUpdateOne {
	auo.mutation.ResetRecentViolations()
	auo.mutation.SetRecentViolations(i)
	return auo
}

// SetNillableRecentViolations sets the "recent_violations" field if the given value is not nil.
func (auo *AgentUpdateOne) SetNillableRecentViolations(i *int) *AgentUpdateOne {
	if i != nil {
		auo.SetRecentViolations(*i)
	}
	return auo
}

// AddRecentViolations adds i to the "recent_violations" field.
func (auo *AgentUpdateOne) AddRecentViolations(i int) *AgentUpdateOne {
	auo.mutation.AddRecentViolations(i)
	return auo
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (auo *AgentUpdateOne) SetLastHeartbeatAt(t time.Time) *AgentUpdateOne {
	auo.mutation.SetLastHeartbeatAt(t)
	return auo
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (auo *AgentUpdateOne) SetNillableLastHeartbeatAt(t *time.Time) *AgentUpdateOne {
	if t != nil {
		auo.SetLastHeartbeatAt(*t)
	}
	return auo
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (auo *AgentUpdateOne) ClearLastHeartbeatAt() *AgentUpdateOne {
	auo.mutation.ClearLastHeartbeatAt()
	return auo
}

// SetParent sets the "parent" edge to the Agent entity.
func (auo *AgentUpdateOne) SetParent(a *Agent) *AgentUpdateOne {
	return auo.SetParentID(a.ID)
}

// AddChildIDs adds the "children" edge to the Agent entity by IDs.
func (auo *AgentUpdateOne) AddChildIDs(ids ...string) *AgentUpdateOne {
	auo.mutation.AddChildIDs(ids...)
	return auo
}

// AddChildren adds the "children" edges to the Agent entity.
func (auo *AgentUpdateOne) AddChildren(a ...*Agent) *AgentUpdateOne {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return auo.AddChildIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (auo *AgentUpdateOne) AddTaskIDs(ids ...string) *AgentUpdateOne {
	auo.mutation.AddTaskIDs(ids...)
	return auo
}

// AddTasks adds the "tasks" edges to the Task entity.
func (auo *AgentUpdateOne) AddTasks(t ...*Task) *AgentUpdateOne {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return auo.AddTaskIDs(ids...)
}

// AddExecutionIDs adds the "executions" edge to the Execution entity by IDs.
func (auo *AgentUpdateOne) AddExecutionIDs(ids ...string) *AgentUpdateOne {
	auo.mutation.AddExecutionIDs(ids...)
	return auo
}

// AddExecutions adds the "executions" edges to the Execution entity.
func (auo *AgentUpdateOne) AddExecutions(e ...*Execution) *AgentUpdateOne {
	ids := make([]string, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return auo.AddExecutionIDs(ids...)
}

// AddCapabilityOverrideIDs adds the "capability_overrides" edge to the CapabilityOverride entity by IDs.
func (auo *AgentUpdateOne) AddCapabilityOverrideIDs(ids ...string) *AgentUpdateOne {
	auo.mutation.AddCapabilityOverrideIDs(ids...)
	return auo
}

// AddCapabilityOverrides adds the "capability_overrides" edges to the CapabilityOverride entity.
func (auo *AgentUpdateOne) AddCapabilityOverrides(c ...*CapabilityOverride) *AgentUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return auo.AddCapabilityOverrideIDs(ids...)
}

// AddModelConfigIDs adds the "model_configs" edge to the ModelConfig entity by IDs.
func (auo *AgentUpdateOne) AddModelConfigIDs(ids ...string) *AgentUpdateOne {
	auo.mutation.AddModelConfigIDs(ids...)
	return auo
}

// AddModelConfigs adds the "model_configs" edges to the ModelConfig entity.
func (auo *AgentUpdateOne) AddModelConfigs(m ...*ModelConfig) *AgentUpdateOne {
	ids := make([]string, len(m))
	for i := range m {
		ids[i] = m[i].ID
	}
	return auo.AddModelConfigIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (auo *AgentUpdateOne) Mutation() *AgentMutation {
	return auo.mutation
}

// ClearParent clears the "parent" edge to the Agent entity.
func (auo *AgentUpdateOne) ClearParent() *AgentUpdateOne {
	auo.mutation.ClearParent()
	return auo
}

// ClearChildren clears all "children" edges to the Agent entity.
func (auo *AgentUpdateOne) ClearChildren() *AgentUpdateOne {
	auo.mutation.ClearChildren()
	return auo
}

// RemoveChildIDs removes the "children" edge to Agent entities by IDs.
func (auo *AgentUpdateOne) RemoveChildIDs(ids ...string) *AgentUpdateOne {
	auo.mutation.RemoveChildIDs(ids...)
	return auo
}

// RemoveChildren removes "children" edges to Agent entities.
func (auo *AgentUpdateOne) RemoveChildren(a ...*Agent) *AgentUpdateOne {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return auo.RemoveChildIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (auo *AgentUpdateOne) ClearTasks() *AgentUpdateOne {
	auo.mutation.ClearTasks()
	return auo
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (auo *AgentUpdateOne) RemoveTaskIDs(ids ...string) *AgentUpdateOne {
	auo.mutation.RemoveTaskIDs(ids...)
	return auo
}

// RemoveTasks removes "tasks" edges to Task entities.
func (auo *AgentUpdateOne) RemoveTasks(t ...*Task) *AgentUpdateOne {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return auo.RemoveTaskIDs(ids...)
}

// ClearExecutions clears all "executions" edges to the Execution entity.
func (auo *AgentUpdateOne) ClearExecutions() *AgentUpdateOne {
	auo.mutation.ClearExecutions()
	return auo
}

// RemoveExecutionIDs removes the "executions" edge to Execution entities by IDs.
func (auo *AgentUpdateOne) RemoveExecutionIDs(ids ...string) *AgentUpdateOne {
	auo.mutation.RemoveExecutionIDs(ids...)
	return auo
}

// RemoveExecutions removes "executions" edges to Execution entities.
func (auo *AgentUpdateOne) RemoveExecutions(e ...*Execution) *AgentUpdateOne {
	ids := make([]string, len(e))
	for i := range e {
		ids[i] = e[i].ID
	}
	return auo.RemoveExecutionIDs(ids...)
}

// ClearCapabilityOverrides clears all "capability_overrides" edges to the CapabilityOverride entity.
func (auo *AgentUpdateOne) ClearCapabilityOverrides() *AgentUpdateOne {
	auo.mutation.ClearCapabilityOverrides()
	return auo
}

// RemoveCapabilityOverrideIDs removes the "capability_overrides" edge to CapabilityOverride entities by IDs.
func (auo *AgentUpdateOne) RemoveCapabilityOverrideIDs(ids ...string) *AgentUpdateOne {
	auo.mutation.RemoveCapabilityOverrideIDs(ids...)
	return auo
}

// RemoveCapabilityOverrides removes "capability_overrides" edges to CapabilityOverride entities.
func (auo *AgentUpdateOne) RemoveCapabilityOverrides(c ...*CapabilityOverride) *AgentUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return auo.RemoveCapabilityOverrideIDs(ids...)
}

// ClearModelConfigs clears all "model_configs" edges to the ModelConfig entity.
func (auo *AgentUpdateOne) ClearModelConfigs() *AgentUpdateOne {
	auo.mutation.ClearModelConfigs()
	return auo
}

// RemoveModelConfigIDs removes the "model_configs" edge to ModelConfig entities by IDs.
func (auo *AgentUpdateOne) RemoveModelConfigIDs(ids ...string) *AgentUpdateOne {
	auo.mutation.RemoveModelConfigIDs(ids...)
	return auo
}

// RemoveModelConfigs removes "model_configs" edges to ModelConfig entities.
func (auo *AgentUpdateOne) RemoveModelConfigs(m ...*ModelConfig) *AgentUpdateOne {
	ids := make([]string, len(m))
	for i := range m {
		ids[i] = m[i].ID
	}
	return auo.RemoveModelConfigIDs(ids...)
}

// Where appends a list predicates to the AgentUpdate builder.
func (auo *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	auo.mutation.Where(ps...)
	return auo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auo *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	auo.fields = append([]string{field}, fields...)
	return auo
}

// Save executes the query and returns the updated Agent entity.
func (auo *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	return withHooks(ctx, auo.sqlSave, auo.mutation, auo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auo *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := auo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auo *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := auo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auo *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := auo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (auo *AgentUpdateOne) check() error {
	if v, ok := auo.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (auo *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := auo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := auo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := auo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := auo.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := auo.mutation.Persistent(); ok {
		_spec.SetField(agent.FieldPersistent, field.TypeBool, value)
	}
	if value, ok := auo.mutation.Ethos(); ok {
		_spec.SetField(agent.FieldEthos, field.TypeString, value)
	}
	if auo.mutation.EthosCleared() {
		_spec.ClearField(agent.FieldEthos, field.TypeString)
	}
	if value, ok := auo.mutation.PreferredConfigID(); ok {
		_spec.SetField(agent.FieldPreferredConfigID, field.TypeString, value)
	}
	if auo.mutation.PreferredConfigIDCleared() {
		_spec.ClearField(agent.FieldPreferredConfigID, field.TypeString)
	}
	if value, ok := auo.mutation.SavedConfigID(); ok {
		_spec.SetField(agent.FieldSavedConfigID, field.TypeString, value)
	}
	if auo.mutation.SavedConfigIDCleared() {
		_spec.ClearField(agent.FieldSavedConfigID, field.TypeString)
	}
	if value, ok := auo.mutation.RecentViolations(); ok {
		_spec.SetField(agent.FieldRecentViolations, field.TypeInt, value)
	}
	if value, ok := auo.mutation.AddedRecentViolations(); ok {
		_spec.AddField(agent.FieldRecentViolations, field.TypeInt, value)
	}
	if value, ok := auo.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(agent.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if auo.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(agent.FieldLastHeartbeatAt, field.TypeTime)
	}
	if auo.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if auo.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !auo.mutation.ChildrenCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if auo.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.RemovedTasksIDs(); len(nodes) > 0 && !auo.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if auo.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !auo.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if auo.mutation.CapabilityOverridesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.RemovedCapabilityOverridesIDs(); len(nodes) > 0 && !auo.mutation.CapabilityOverridesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.CapabilityOverridesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if auo.mutation.ModelConfigsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.RemovedModelConfigsIDs(); len(nodes) > 0 && !auo.mutation.ModelConfigsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.ModelConfigsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Agent{config: auo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auo.mutation.done = true
	return _node, nil
}
