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
	"github.com/agentium/agentium/ent/deliberation"
	"github.com/agentium/agentium/ent/predicate"
	"github.com/agentium/agentium/ent/vote"
)

// DeliberationUpdate is the builder for updating Deliberation entities.
type DeliberationUpdate struct {
	config
	hooks    []Hook
	mutation *DeliberationMutation
}

// Where appends a list predicates to the DeliberationUpdate builder.
func (du *DeliberationUpdate) Where(ps ...predicate.Deliberation) *DeliberationUpdate {
	du.mutation.Where(ps...)
	return du
}

// SetStatus sets the "status" field.
func (du *DeliberationUpdate) SetStatus(d deliberation.Status) *DeliberationUpdate {
	du.mutation.SetStatus(d)
	return du
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (du *DeliberationUpdate) SetNillableStatus(d *deliberation.Status) *DeliberationUpdate {
	if d != nil {
		du.SetStatus(*d)
	}
	return du
}

// SetResolution sets the "resolution" field.
func (du *DeliberationUpdate) SetResolution(s string) *DeliberationUpdate {
	du.mutation.SetResolution(s)
	return du
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (du *DeliberationUpdate) SetNillableResolution(s *string) *DeliberationUpdate {
	if s != nil {
		du.SetResolution(*s)
	}
	return du
}

// ClearResolution clears the value of the "resolution" field.
func (du *DeliberationUpdate) ClearResolution() *DeliberationUpdate {
	du.mutation.ClearResolution()
	return du
}

// SetResolvedAt sets the "resolved_at" field.
func (du *DeliberationUpdate) SetResolvedAt(t time.Time) *DeliberationUpdate {
	du.mutation.SetResolvedAt(t)
	return du
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (du *DeliberationUpdate) SetNillableResolvedAt(t *time.Time) *DeliberationUpdate {
	if t != nil {
		du.SetResolvedAt(*t)
	}
	return du
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (du *DeliberationUpdate) ClearResolvedAt() *DeliberationUpdate {
	du.mutation.ClearResolvedAt()
	return du
}

// AddVoteIDs adds the "votes" edge to the Vote entity by IDs.
func (du *DeliberationUpdate) AddVoteIDs(ids ...string) *DeliberationUpdate {
	du.mutation.AddVoteIDs(ids...)
	return du
}

// AddVotes adds the "votes" edges to the Vote entity.
func (du *DeliberationUpdate) AddVotes(v ...*Vote) *DeliberationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return du.AddVoteIDs(ids...)
}

// Mutation returns the DeliberationMutation object of the builder.
func (du *DeliberationUpdate) Mutation() *DeliberationMutation {
	return du.mutation
}

// ClearVotes clears all "votes" edges to the Vote entity.
func (du *DeliberationUpdate) ClearVotes() *DeliberationUpdate {
	du.mutation.ClearVotes()
	return du
}

// RemoveVoteIDs removes the "votes" edge to Vote entities by IDs.
func (du *DeliberationUpdate) RemoveVoteIDs(ids ...string) *DeliberationUpdate {
	du.mutation.RemoveVoteIDs(ids...)
	return du
}

// RemoveVotes removes "votes" edges to Vote entities.
func (du *DeliberationUpdate) RemoveVotes(v ...*Vote) *DeliberationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return du.RemoveVoteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (du *DeliberationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, du.sqlSave, du.mutation, du.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (du *DeliberationUpdate) SaveX(ctx context.Context) int {
	affected, err := du.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (du *DeliberationUpdate) Exec(ctx context.Context) error {
	_, err := du.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (du *DeliberationUpdate) ExecX(ctx context.Context) {
	if err := du.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (du *DeliberationUpdate) check() error {
	if v, ok := du.mutation.Status(); ok {
		if err := deliberation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Deliberation.status": %w`, err)}
		}
	}
	return nil
}

func (du *DeliberationUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := du.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliberation.Table, deliberation.Columns, sqlgraph.NewFieldSpec(deliberation.FieldID, field.TypeString))
	if ps := du.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := du.mutation.Status(); ok {
		_spec.SetField(deliberation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := du.mutation.Resolution(); ok {
		_spec.SetField(deliberation.FieldResolution, field.TypeString, value)
	}
	if du.mutation.ResolutionCleared() {
		_spec.ClearField(deliberation.FieldResolution, field.TypeString)
	}
	if value, ok := du.mutation.ResolvedAt(); ok {
		_spec.SetField(deliberation.FieldResolvedAt, field.TypeTime, value)
	}
	if du.mutation.ResolvedAtCleared() {
		_spec.ClearField(deliberation.FieldResolvedAt, field.TypeTime)
	}
	if du.mutation.VotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deliberation.VotesTable,
			Columns: []string{deliberation.VotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := du.mutation.RemovedVotesIDs(); len(nodes) > 0 && !du.mutation.VotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deliberation.VotesTable,
			Columns: []string{deliberation.VotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := du.mutation.VotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deliberation.VotesTable,
			Columns: []string{deliberation.VotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, du.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliberation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	du.mutation.done = true
	return n, nil
}

// DeliberationUpdateOne is the builder for updating a single Deliberation entity.
type DeliberationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeliberationMutation
}

// SetStatus sets the "status" field.
func (duo *DeliberationUpdateOne) SetStatus(d deliberation.Status) *DeliberationUpdateOne {
	duo.mutation.SetStatus(d)
	return duo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (duo *DeliberationUpdateOne) SetNillableStatus(d *deliberation.Status) *DeliberationUpdateOne {
	if d != nil {
		duo.SetStatus(*d)
	}
	return duo
}

// SetResolution sets the "resolution" field.
func (duo *DeliberationUpdateOne) SetResolution(s string) *DeliberationUpdateOne {
	duo.mutation.SetResolution(s)
	return duo
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (duo *DeliberationUpdateOne) SetNillableResolution(s *string) *DeliberationUpdateOne {
	if s != nil {
		duo.SetResolution(*s)
	}
	return duo
}

// ClearResolution clears the value of the "resolution" field.
func (duo *DeliberationUpdateOne) ClearResolution() *DeliberationUpdateOne {
	duo.mutation.ClearResolution()
	return duo
}

// SetResolvedAt sets the "resolved_at" field.
func (duo *DeliberationUpdateOne) SetResolvedAt(t time.Time) *DeliberationUpdateOne {
	duo.mutation.SetResolvedAt(t)
	return duo
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (duo *DeliberationUpdateOne) SetNillableResolvedAt(t *time.Time) *DeliberationUpdateOne {
	if t != nil {
		duo.SetResolvedAt(*t)
	}
	return duo
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (duo *DeliberationUpdateOne) ClearResolvedAt() *DeliberationUpdateOne {
	duo.mutation.ClearResolvedAt()
	return duo
}

// AddVoteIDs adds the "votes" edge to the Vote entity by IDs.
func (duo *DeliberationUpdateOne) AddVoteIDs(ids ...string) *DeliberationUpdateOne {
	duo.mutation.AddVoteIDs(ids...)
	return duo
}

// AddVotes adds the "votes" edges to the Vote entity.
func (duo *DeliberationUpdateOne) AddVotes(v ...*Vote) *DeliberationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return duo.AddVoteIDs(ids...)
}

// Mutation returns the DeliberationMutation object of the builder.
func (duo *DeliberationUpdateOne) Mutation() *DeliberationMutation {
	return duo.mutation
}

// ClearVotes clears all "votes" edges to the Vote entity.
func (duo *DeliberationUpdateOne) ClearVotes() *DeliberationUpdateOne {
	duo.mutation.ClearVotes()
	return duo
}

// RemoveVoteIDs removes the "votes" edge to Vote entities by IDs.
func (duo *DeliberationUpdateOne) RemoveVoteIDs(ids ...string) *DeliberationUpdateOne {
	duo.mutation.RemoveVoteIDs(ids...)
	return duo
}

// RemoveVotes removes "votes" edges to Vote entities.
func (duo *DeliberationUpdateOne) RemoveVotes(v ...*Vote) *DeliberationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return duo.RemoveVoteIDs(ids...)
}

// Where appends a list predicates to the DeliberationUpdate builder.
func (duo *DeliberationUpdateOne) Where(ps ...predicate.Deliberation) *DeliberationUpdateOne {
	duo.mutation.Where(ps...)
	return duo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (duo *DeliberationUpdateOne) Select(field string, fields ...string) *DeliberationUpdateOne {
	duo.fields = append([]string{field}, fields...)
	return duo
}

// Save executes the query and returns the updated Deliberation entity.
func (duo *DeliberationUpdateOne) Save(ctx context.Context) (*Deliberation, error) {
	return withHooks(ctx, duo.sqlSave, duo.mutation, duo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (duo *DeliberationUpdateOne) SaveX(ctx context.Context) *Deliberation {
	node, err := duo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (duo *DeliberationUpdateOne) Exec(ctx context.Context) error {
	_, err := duo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (duo *DeliberationUpdateOne) ExecX(ctx context.Context) {
	if err := duo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (duo *DeliberationUpdateOne) check() error {
	if v, ok := duo.mutation.Status(); ok {
		if err := deliberation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Deliberation.status": %w`, err)}
		}
	}
	return nil
}

func (duo *DeliberationUpdateOne) sqlSave(ctx context.Context) (_node *Deliberation, err error) {
	if err := duo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliberation.Table, deliberation.Columns, sqlgraph.NewFieldSpec(deliberation.FieldID, field.TypeString))
	id, ok := duo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Deliberation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := duo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deliberation.FieldID)
		for _, f := range fields {
			if !deliberation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deliberation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := duo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := duo.mutation.Status(); ok {
		_spec.SetField(deliberation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := duo.mutation.Resolution(); ok {
		_spec.SetField(deliberation.FieldResolution, field.TypeString, value)
	}
	if duo.mutation.ResolutionCleared() {
		_spec.ClearField(deliberation.FieldResolution, field.TypeString)
	}
	if value, ok := duo.mutation.ResolvedAt(); ok {
		_spec.SetField(deliberation.FieldResolvedAt, field.TypeTime, value)
	}
	if duo.mutation.ResolvedAtCleared() {
		_spec.ClearField(deliberation.FieldResolvedAt, field.TypeTime)
	}
	if duo.mutation.VotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deliberation.VotesTable,
			Columns: []string{deliberation.VotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duo.mutation.RemovedVotesIDs(); len(nodes) > 0 && !duo.mutation.VotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deliberation.VotesTable,
			Columns: []string{deliberation.VotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duo.mutation.VotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deliberation.VotesTable,
			Columns: []string{deliberation.VotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Deliberation{config: duo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, duo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliberation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	duo.mutation.done = true
	return _node, nil
}
