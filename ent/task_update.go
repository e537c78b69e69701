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
	"github.com/agentium/agentium/ent/criticreview"
	"github.com/agentium/agentium/ent/deliberation"
	"github.com/agentium/agentium/ent/predicate"
	"github.com/agentium/agentium/ent/task"
	"github.com/agentium/agentium/ent/taskevent"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (tu *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetAgentID sets the "agent_id" field.
func (tu *TaskUpdate) SetAgentID(s string) *TaskUpdate {
	tu.mutation.SetAgentID(s)
	return tu
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableAgentID(s *string) *TaskUpdate {
	if s != nil {
		tu.SetAgentID(*s)
	}
	return tu
}

// SetTitle sets the "title" field.
func (tu *TaskUpdate) SetTitle(s string) *TaskUpdate {
	tu.mutation.SetTitle(s)
	return tu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableTitle(s *string) *TaskUpdate {
	if s != nil {
		tu.SetTitle(*s)
	}
	return tu
}

// SetDescription sets the "description" field.
func (tu *TaskUpdate) SetDescription(s string) *TaskUpdate {
	tu.mutation.SetDescription(s)
	return tu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableDescription(s *string) *TaskUpdate {
	if s != nil {
		tu.SetDescription(*s)
	}
	return tu
}

// SetType sets the "type" field.
func (tu *TaskUpdate) SetType(s string) *TaskUpdate {
	tu.mutation.SetType(s)
	return tu
}

// SetNillableType sets the "type" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableType(s *string) *TaskUpdate {
	if s != nil {
		tu.SetType(*s)
	}
	return tu
}

// ClearType clears the value of the "type" field.
func (tu *TaskUpdate) ClearType() *TaskUpdate {
	tu.mutation.ClearType()
	return tu
}

// SetStatus sets the "status" field.
func (tu *TaskUpdate) SetStatus(t task.Status) *TaskUpdate {
	tu.mutation.SetStatus(t)
	return tu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableStatus(t *task.Status) *TaskUpdate {
	if t != nil {
		tu.SetStatus(*t)
	}
	return tu
}

// SetPriority sets the "priority" field.
func (tu *TaskUpdate) SetPriority(t task.Priority) *TaskUpdate {
	tu.mutation.SetPriority(t)
	return tu
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (tu *TaskUpdate) SetNillablePriority(t *task.Priority) *TaskUpdate {
	if t != nil {
		tu.SetPriority(*t)
	}
	return tu
}

// SetRetryCount sets the "retry_count" field.
func (tu *TaskUpdate) SetRetryCount(i int) *TaskUpdate {
	tu.mutation.ResetRetryCount()
	tu.mutation.SetRetryCount(i)
	return tu
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableRetryCount(i *int) *TaskUpdate {
	if i != nil {
		tu.SetRetryCount(*i)
	}
	return tu
}

// AddRetryCount adds i to the "retry_count" field.
func (tu *TaskUpdate) AddRetryCount(i int) *TaskUpdate {
	tu.mutation.AddRetryCount(i)
	return tu
}

// SetMaxRetries sets the "max_retries" field.
func (tu *TaskUpdate) SetMaxRetries(i int) *TaskUpdate {
	tu.mutation.ResetMaxRetries()
	tu.mutation.SetMaxRetries(i)
	return tu
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableMaxRetries(i *int) *TaskUpdate {
	if i != nil {
		tu.SetMaxRetries(*i)
	}
	return tu
}

// AddMaxRetries adds i to the "max_retries" field.
func (tu *TaskUpdate) AddMaxRetries(i int) *TaskUpdate {
	tu.mutation.AddMaxRetries(i)
	return tu
}

// SetProgress sets the "progress" field.
func (tu *TaskUpdate) SetProgress(i int) *TaskUpdate {
	tu.mutation.ResetProgress()
	tu.mutation.SetProgress(i)
	return tu
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableProgress(i *int) *TaskUpdate {
	if i != nil {
		tu.SetProgress(*i)
	}
	return tu
}

// AddProgress adds i to the "progress" field.
func (tu *TaskUpdate) AddProgress(i int) *TaskUpdate {
	tu.mutation.AddProgress(i)
	return tu
}

// SetResult sets the "result" field.
func (tu *TaskUpdate) SetResult(s string) *TaskUpdate {
	tu.mutation.SetResult(s)
	return tu
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableResult(s *string) *TaskUpdate {
	if s != nil {
		tu.SetResult(*s)
	}
	return tu
}

// ClearResult clears the value of the "result" field.
func (tu *TaskUpdate) ClearResult() *TaskUpdate {
	tu.mutation.ClearResult()
	return tu
}

// SetFailureReason sets the "failure_reason" field.
func (tu *TaskUpdate) SetFailureReason(s string) *TaskUpdate {
	tu.mutation.SetFailureReason(s)
	return tu
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableFailureReason(s *string) *TaskUpdate {
	if s != nil {
		tu.SetFailureReason(*s)
	}
	return tu
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (tu *TaskUpdate) ClearFailureReason() *TaskUpdate {
	tu.mutation.ClearFailureReason()
	return tu
}

// SetUpdatedAt sets the "updated_at" field.
func (tu *TaskUpdate) SetUpdatedAt(t time.Time) *TaskUpdate {
	tu.mutation.SetUpdatedAt(t)
	return tu
}

// SetAgent sets the "agent" edge to the Agent entity.
func (tu *TaskUpdate) SetAgent(a *Agent) *TaskUpdate {
	return tu.SetAgentID(a.ID)
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by IDs.
func (tu *TaskUpdate) AddEventIDs(ids ...string) *TaskUpdate {
	tu.mutation.AddEventIDs(ids...)
	return tu
}

// AddEvents adds the "events" edges to the TaskEvent entity.
func (tu *TaskUpdate) AddEvents(t ...*TaskEvent) *TaskUpdate {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return tu.AddEventIDs(ids...)
}

// AddCriticReviewIDs adds the "critic_reviews" edge to the CriticReview entity by IDs.
func (tu *TaskUpdate) AddCriticReviewIDs(ids ...string) *TaskUpdate {
	tu.mutation.AddCriticReviewIDs(ids...)
	return tu
}

// AddCriticReviews adds the "critic_reviews" edges to the CriticReview entity.
func (tu *TaskUpdate) AddCriticReviews(c ...*CriticReview) *TaskUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return tu.AddCriticReviewIDs(ids...)
}

// AddDeliberationIDs adds the "deliberations" edge to the Deliberation entity by IDs.
func (tu *TaskUpdate) AddDeliberationIDs(ids ...string) *TaskUpdate {
	tu.mutation.AddDeliberationIDs(ids...)
	return tu
}

// AddDeliberations adds the "deliberations" edges to the Deliberation entity.
func (tu *TaskUpdate) AddDeliberations(d ...*Deliberation) *TaskUpdate {
	ids := make([]string, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return tu.AddDeliberationIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (tu *TaskUpdate) Mutation() *TaskMutation {
	return tu.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (tu *TaskUpdate) ClearAgent() *TaskUpdate {
	tu.mutation.ClearAgent()
	return tu
}

// ClearEvents clears all "events" edges to the TaskEvent entity.
func (tu *TaskUpdate) ClearEvents() *TaskUpdate {
	tu.mutation.ClearEvents()
	return tu
}

// RemoveEventIDs removes the "events" edge to TaskEvent entities by IDs.
func (tu *TaskUpdate) RemoveEventIDs(ids ...string) *TaskUpdate {
	tu.mutation.RemoveEventIDs(ids...)
	return tu
}

// RemoveEvents removes "events" edges to TaskEvent entities.
func (tu *TaskUpdate) RemoveEvents(t ...*TaskEvent) *TaskUpdate {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return tu.RemoveEventIDs(ids...)
}

// ClearCriticReviews clears all "critic_reviews" edges to the CriticReview entity.
func (tu *TaskUpdate) ClearCriticReviews() *TaskUpdate {
	tu.mutation.ClearCriticReviews()
	return tu
}

// RemoveCriticReviewIDs removes the "critic_reviews" edge to CriticReview entities by IDs.
func (tu *TaskUpdate) RemoveCriticReviewIDs(ids ...string) *TaskUpdate {
	tu.mutation.RemoveCriticReviewIDs(ids...)
	return tu
}

// RemoveCriticReviews removes "critic_reviews" edges to CriticReview entities.
func (tu *TaskUpdate) RemoveCriticReviews(c ...*CriticReview) *TaskUpdate {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return tu.RemoveCriticReviewIDs(ids...)
}

// ClearDeliberations clears all "deliberations" edges to the Deliberation entity.
func (tu *TaskUpdate) ClearDeliberations() *TaskUpdate {
	tu.mutation.ClearDeliberations()
	return tu
}

// RemoveDeliberationIDs removes the "deliberations" edge to Deliberation entities by IDs.
func (tu *TaskUpdate) RemoveDeliberationIDs(ids ...string) *TaskUpdate {
	tu.mutation.RemoveDeliberationIDs(ids...)
	return tu
}

// RemoveDeliberations removes "deliberations" edges to Deliberation entities.
func (tu *TaskUpdate) RemoveDeliberations(d ...*Deliberation) *TaskUpdate {
	ids := make([]string, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return tu.RemoveDeliberationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TaskUpdate) Save(ctx context.Context) (int, error) {
	tu.defaults()
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TaskUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TaskUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tu *TaskUpdate) defaults() {
	if _, ok := tu.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		tu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tu *TaskUpdate) check() error {
	if v, ok := tu.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if tu.mutation.AgentCleared() && len(tu.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.agent"`)
	}
	return nil
}

func (tu *TaskUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := tu.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := tu.mutation.GetType(); ok {
		_spec.SetField(task.FieldType, field.TypeString, value)
	}
	if tu.mutation.TypeCleared() {
		_spec.ClearField(task.FieldType, field.TypeString)
	}
	if value, ok := tu.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := tu.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := tu.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := tu.mutation.AddedRetryCount(); ok {
		_spec.AddField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := tu.mutation.MaxRetries(); ok {
		_spec.SetField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := tu.mutation.AddedMaxRetries(); ok {
		_spec.AddField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := tu.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := tu.mutation.AddedProgress(); ok {
		_spec.AddField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := tu.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeString, value)
	}
	if tu.mutation.ResultCleared() {
		_spec.ClearField(task.FieldResult, field.TypeString)
	}
	if value, ok := tu.mutation.FailureReason(); ok {
		_spec.SetField(task.FieldFailureReason, field.TypeString, value)
	}
	if tu.mutation.FailureReasonCleared() {
		_spec.ClearField(task.FieldFailureReason, field.TypeString)
	}
	if value, ok := tu.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if tu.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AgentTable,
			Columns: []string{task.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AgentTable,
			Columns: []string{task.AgentColumn},
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
	if tu.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.RemovedEventsIDs(); len(nodes) > 0 && !tu.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tu.mutation.CriticReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CriticReviewsTable,
			Columns: []string{task.CriticReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criticreview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.RemovedCriticReviewsIDs(); len(nodes) > 0 && !tu.mutation.CriticReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CriticReviewsTable,
			Columns: []string{task.CriticReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criticreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.CriticReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CriticReviewsTable,
			Columns: []string{task.CriticReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criticreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tu.mutation.DeliberationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.DeliberationsTable,
			Columns: []string{task.DeliberationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliberation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.RemovedDeliberationsIDs(); len(nodes) > 0 && !tu.mutation.DeliberationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.DeliberationsTable,
			Columns: []string{task.DeliberationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliberation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.DeliberationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.DeliberationsTable,
			Columns: []string{task.DeliberationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliberation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetAgentID sets the "agent_id" field.
func (tuo *TaskUpdateOne) SetAgentID(s string) *TaskUpdateOne {
	tuo.mutation.SetAgentID(s)
	return tuo
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableAgentID(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetAgentID(*s)
	}
	return tuo
}

// SetTitle sets the "title" field.
func (tuo *TaskUpdateOne) SetTitle(s string) *TaskUpdateOne {
	tuo.mutation.SetTitle(s)
	return tuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableTitle(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetTitle(*s)
	}
	return tuo
}

// SetDescription sets the "description" field.
func (tuo *TaskUpdateOne) SetDescription(s string) *TaskUpdateOne {
	tuo.mutation.SetDescription(s)
	return tuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableDescription(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetDescription(*s)
	}
	return tuo
}

// SetType sets the "type" field.
func (tuo *TaskUpdateOne) SetType(s string) *TaskUpdateOne {
	tuo.mutation.SetType(s)
	return tuo
}

// SetNillableType sets the "type" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableType(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetType(*s)
	}
	return tuo
}

// ClearType clears the value of the "type" field.
func (tuo *TaskUpdateOne) ClearType() *TaskUpdateOne {
	tuo.mutation.ClearType()
	return tuo
}

// SetStatus sets the "status" field.
func (tuo *TaskUpdateOne) SetStatus(t task.Status) *TaskUpdateOne {
	tuo.mutation.SetStatus(t)
	return tuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableStatus(t *task.Status) *TaskUpdateOne {
	if t != nil {
		tuo.SetStatus(*t)
	}
	return tuo
}

// SetPriority sets the "priority" field.
func (tuo *TaskUpdateOne) SetPriority(t task.Priority) *TaskUpdateOne {
	tuo.mutation.SetPriority(t)
	return tuo
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillablePriority(t *task.Priority) *TaskUpdateOne {
	if t != nil {
		tuo.SetPriority(*t)
	}
	return tuo
}

// SetRetryCount sets the "retry_count" field.
func (tuo *TaskUpdateOne) SetRetryCount(i int) *TaskUpdateOne {
	tuo.mutation.ResetRetryCount()
	tuo.mutation.SetRetryCount(i)
	return tuo
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableRetryCount(i *int) *TaskUpdateOne {
	if i != nil {
		tuo.SetRetryCount(*i)
	}
	return tuo
}

// AddRetryCount adds i to the "retry_count" field.
func (tuo *TaskUpdateOne) AddRetryCount(i int) *TaskUpdateOne {
	tuo.mutation.AddRetryCount(i)
	return tuo
}

// SetMaxRetries sets the "max_retries" field.
func (tuo *TaskUpdateOne) SetMaxRetries(i int) *TaskUpdateOne {
	tuo.mutation.ResetMaxRetries()
	tuo.mutation.SetMaxRetries(i)
	return tuo
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableMaxRetries(i *int) *TaskUpdateOne {
	if i != nil {
		tuo.SetMaxRetries(*i)
	}
	return tuo
}

// AddMaxRetries adds i to the "max_retries" field.
func (tuo *TaskUpdateOne) AddMaxRetries(i int) *TaskUpdateOne {
	tuo.mutation.AddMaxRetries(i)
	return tuo
}

// SetProgress sets the "progress" field.
func (tuo *TaskUpdateOne) SetProgress(i int) *TaskUpdateOne {
	tuo.mutation.ResetProgress()
	tuo.mutation.SetProgress(i)
	return tuo
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableProgress(i *int) *TaskUpdateOne {
	if i != nil {
		tuo.SetProgress(*i)
	}
	return tuo
}

// AddProgress adds i to the "progress" field.
func (tuo *TaskUpdateOne) AddProgress(i int) *TaskUpdateOne {
	tuo.mutation.AddProgress(i)
	return tuo
}

// SetResult sets the "result" field.
func (tuo *TaskUpdateOne) SetResult(s string) *TaskUpdateOne {
	tuo.mutation.SetResult(s)
	return tuo
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableResult(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetResult(*s)
	}
	return tuo
}

// ClearResult clears the value of the "result" field.
func (tuo *TaskUpdateOne) ClearResult() *TaskUpdateOne {
	tuo.mutation.ClearResult()
	return tuo
}

// SetFailureReason sets the "failure_reason" field.
func (tuo *TaskUpdateOne) SetFailureReason(s string) *TaskUpdateOne {
	tuo.mutation.SetFailureReason(s)
	return tuo
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableFailureReason(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetFailureReason(*s)
	}
	return tuo
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (tuo *TaskUpdateOne) ClearFailureReason() *TaskUpdateOne {
	tuo.mutation.ClearFailureReason()
	return tuo
}

// SetUpdatedAt sets the "updated_at" field.
func (tuo *TaskUpdateOne) SetUpdatedAt(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetUpdatedAt(t)
	return tuo
}

// SetAgent sets the "agent" edge to the Agent entity.
func (tuo *TaskUpdateOne) SetAgent(a *Agent) *TaskUpdateOne {
	return tuo.SetAgentID(a.ID)
}

// AddEventIDs adds the "events" edge to the TaskEvent entity by IDs.
func (tuo *TaskUpdateOne) AddEventIDs(ids ...string) *TaskUpdateOne {
	tuo.mutation.AddEventIDs(ids...)
	return tuo
}

// AddEvents adds the "events" edges to the TaskEvent entity.
func (tuo *TaskUpdateOne) AddEvents(t ...*TaskEvent) *TaskUpdateOne {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return tuo.AddEventIDs(ids...)
}

// AddCriticReviewIDs adds the "critic_reviews" edge to the CriticReview entity by IDs.
func (tuo *TaskUpdateOne) AddCriticReviewIDs(ids ...string) *TaskUpdateOne {
	tuo.mutation.AddCriticReviewIDs(ids...)
	return tuo
}

// AddCriticReviews adds the "critic_reviews" edges to the CriticReview entity.
func (tuo *TaskUpdateOne) AddCriticReviews(c ...*CriticReview) *TaskUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return tuo.AddCriticReviewIDs(ids...)
}

// AddDeliberationIDs adds the "deliberations" edge to the Deliberation entity by IDs.
func (tuo *TaskUpdateOne) AddDeliberationIDs(ids ...string) *TaskUpdateOne {
	tuo.mutation.AddDeliberationIDs(ids...)
	return tuo
}

// AddDeliberations adds the "deliberations" edges to the Deliberation entity.
func (tuo *TaskUpdateOne) AddDeliberations(d ...*Deliberation) *TaskUpdateOne {
	ids := make([]string, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return tuo.AddDeliberationIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (tuo *TaskUpdateOne) Mutation() *TaskMutation {
	return tuo.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (tuo *TaskUpdateOne) ClearAgent() *TaskUpdateOne {
	tuo.mutation.ClearAgent()
	return tuo
}

// ClearEvents clears all "events" edges to the TaskEvent entity.
func (tuo *TaskUpdateOne) ClearEvents() *TaskUpdateOne {
	tuo.mutation.ClearEvents()
	return tuo
}

// RemoveEventIDs removes the "events" edge to TaskEvent entities by IDs.
func (tuo *TaskUpdateOne) RemoveEventIDs(ids ...string) *TaskUpdateOne {
	tuo.mutation.RemoveEventIDs(ids...)
	return tuo
}

// RemoveEvents removes "events" edges to TaskEvent entities.
func (tuo *TaskUpdateOne) RemoveEvents(t ...*TaskEvent) *TaskUpdateOne {
	ids := make([]string, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return tuo.RemoveEventIDs(ids...)
}

// ClearCriticReviews clears all "critic_reviews" edges to the CriticReview entity.
func (tuo *TaskUpdateOne) ClearCriticReviews() *TaskUpdateOne {
	tuo.mutation.ClearCriticReviews()
	return tuo
}

// RemoveCriticReviewIDs removes the "critic_reviews" edge to CriticReview entities by IDs.
func (tuo *TaskUpdateOne) RemoveCriticReviewIDs(ids ...string) *TaskUpdateOne {
	tuo.mutation.RemoveCriticReviewIDs(ids...)
	return tuo
}

// RemoveCriticReviews removes "critic_reviews" edges to CriticReview entities.
func (tuo *TaskUpdateOne) RemoveCriticReviews(c ...*CriticReview) *TaskUpdateOne {
	ids := make([]string, len(c))
	for i := range c {
		ids[i] = c[i].ID
	}
	return tuo.RemoveCriticReviewIDs(ids...)
}

// ClearDeliberations clears all "deliberations" edges to the Deliberation entity.
func (tuo *TaskUpdateOne) ClearDeliberations() *TaskUpdateOne {
	tuo.mutation.ClearDeliberations()
	return tuo
}

// RemoveDeliberationIDs removes the "deliberations" edge to Deliberation entities by IDs.
func (tuo *TaskUpdateOne) RemoveDeliberationIDs(ids ...string) *TaskUpdateOne {
	tuo.mutation.RemoveDeliberationIDs(ids...)
	return tuo
}

// RemoveDeliberations removes "deliberations" edges to Deliberation entities.
func (tuo *TaskUpdateOne) RemoveDeliberations(d ...*Deliberation) *TaskUpdateOne {
	ids := make([]string, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return tuo.RemoveDeliberationIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (tuo *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Task entity.
func (tuo *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	tuo.defaults()
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tuo *TaskUpdateOne) defaults() {
	if _, ok := tuo.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		tuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tuo *TaskUpdateOne) check() error {
	if v, ok := tuo.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if tuo.mutation.AgentCleared() && len(tuo.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.agent"`)
	}
	return nil
}

func (tuo *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := tuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := tuo.mutation.GetType(); ok {
		_spec.SetField(task.FieldType, field.TypeString, value)
	}
	if tuo.mutation.TypeCleared() {
		_spec.ClearField(task.FieldType, field.TypeString)
	}
	if value, ok := tuo.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := tuo.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := tuo.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.AddedRetryCount(); ok {
		_spec.AddField(task.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.MaxRetries(); ok {
		_spec.SetField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.AddedMaxRetries(); ok {
		_spec.AddField(task.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.Progress(); ok {
		_spec.SetField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.AddedProgress(); ok {
		_spec.AddField(task.FieldProgress, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeString, value)
	}
	if tuo.mutation.ResultCleared() {
		_spec.ClearField(task.FieldResult, field.TypeString)
	}
	if value, ok := tuo.mutation.FailureReason(); ok {
		_spec.SetField(task.FieldFailureReason, field.TypeString, value)
	}
	if tuo.mutation.FailureReasonCleared() {
		_spec.ClearField(task.FieldFailureReason, field.TypeString)
	}
	if value, ok := tuo.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if tuo.mutation.AgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AgentTable,
			Columns: []string{task.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AgentTable,
			Columns: []string{task.AgentColumn},
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
	if tuo.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.RemovedEventsIDs(); len(nodes) > 0 && !tuo.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tuo.mutation.CriticReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CriticReviewsTable,
			Columns: []string{task.CriticReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criticreview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.RemovedCriticReviewsIDs(); len(nodes) > 0 && !tuo.mutation.CriticReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CriticReviewsTable,
			Columns: []string{task.CriticReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criticreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.CriticReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CriticReviewsTable,
			Columns: []string{task.CriticReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(criticreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if tuo.mutation.DeliberationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.DeliberationsTable,
			Columns: []string{task.DeliberationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliberation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.RemovedDeliberationsIDs(); len(nodes) > 0 && !tuo.mutation.DeliberationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.DeliberationsTable,
			Columns: []string{task.DeliberationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliberation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.DeliberationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.DeliberationsTable,
			Columns: []string{task.DeliberationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliberation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
