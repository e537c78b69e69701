// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/deliberation"
	"github.com/agentium/agentium/ent/predicate"
	"github.com/agentium/agentium/ent/task"
	"github.com/agentium/agentium/ent/vote"
)

// DeliberationQuery is the builder for querying Deliberation entities.
type DeliberationQuery struct {
	config
	ctx        *QueryContext
	order      []deliberation.OrderOption
	inters     []Interceptor
	predicates []predicate.Deliberation
	withTask   *TaskQuery
	withVotes  *VoteQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DeliberationQuery builder.
func (dq *DeliberationQuery) Where(ps ...predicate.Deliberation) *DeliberationQuery {
	dq.predicates = append(dq.predicates, ps...)
	return dq
}

// Limit the number of records to be returned by this query.
func (dq *DeliberationQuery) Limit(limit int) *DeliberationQuery {
	dq.ctx.Limit = &limit
	return dq
}

// Offset to start from.
func (dq *DeliberationQuery) Offset(offset int) *DeliberationQuery {
	dq.ctx.Offset = &offset
	return dq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (dq *DeliberationQuery) Unique(unique bool) *DeliberationQuery {
	dq.ctx.Unique = &unique
	return dq
}

// Order specifies how the records should be ordered.
func (dq *DeliberationQuery) Order(o ...deliberation.OrderOption) *DeliberationQuery {
	dq.order = append(dq.order, o...)
	return dq
}

// QueryTask chains the current query on the "task" edge.
func (dq *DeliberationQuery) QueryTask() *TaskQuery {
	query := (&TaskClient{config: dq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := dq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := dq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(deliberation.Table, deliberation.FieldID, selector),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deliberation.TaskTable, deliberation.TaskColumn),
		)
		fromU = sqlgraph.SetNeighbors(dq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVotes chains the current query on the "votes" edge.
func (dq *DeliberationQuery) QueryVotes() *VoteQuery {
	query := (&VoteClient{config: dq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := dq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := dq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(deliberation.Table, deliberation.FieldID, selector),
			sqlgraph.To(vote.Table, vote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, deliberation.VotesTable, deliberation.VotesColumn),
		)
		fromU = sqlgraph.SetNeighbors(dq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Deliberation entity from the query.
// Returns a *NotFoundError when no Deliberation was found.
func (dq *DeliberationQuery) First(ctx context.Context) (*Deliberation, error) {
	nodes, err := dq.Limit(1).All(setContextOp(ctx, dq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{deliberation.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (dq *DeliberationQuery) FirstX(ctx context.Context) *Deliberation {
	node, err := dq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Deliberation ID from the query.
// Returns a *NotFoundError when no Deliberation ID was found.
func (dq *DeliberationQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = dq.Limit(1).IDs(setContextOp(ctx, dq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{deliberation.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (dq *DeliberationQuery) FirstIDX(ctx context.Context) string {
	id, err := dq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Deliberation entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Deliberation entity is found.
// Returns a *NotFoundError when no Deliberation entities are found.
func (dq *DeliberationQuery) Only(ctx context.Context) (*Deliberation, error) {
	nodes, err := dq.Limit(2).All(setContextOp(ctx, dq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{deliberation.Label}
	default:
		return nil, &NotSingularError{deliberation.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (dq *DeliberationQuery) OnlyX(ctx context.Context) *Deliberation {
	node, err := dq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Deliberation ID in the query.
// Returns a *NotSingularError when more than one Deliberation ID is found.
// Returns a *NotFoundError when no entities are found.
func (dq *DeliberationQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = dq.Limit(2).IDs(setContextOp(ctx, dq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{deliberation.Label}
	default:
		err = &NotSingularError{deliberation.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (dq *DeliberationQuery) OnlyIDX(ctx context.Context) string {
	id, err := dq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Deliberations.
func (dq *DeliberationQuery) All(ctx context.Context) ([]*Deliberation, error) {
	ctx = setContextOp(ctx, dq.ctx, ent.OpQueryAll)
	if err := dq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Deliberation, *DeliberationQuery]()
	return withInterceptors[[]*Deliberation](ctx, dq, qr, dq.inters)
}

// AllX is like All, but panics if an error occurs.
func (dq *DeliberationQuery) AllX(ctx context.Context) []*Deliberation {
	nodes, err := dq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Deliberation IDs.
func (dq *DeliberationQuery) IDs(ctx context.Context) (ids []string, err error) {
	if dq.ctx.Unique == nil && dq.path != nil {
		dq.Unique(true)
	}
	ctx = setContextOp(ctx, dq.ctx, ent.OpQueryIDs)
	if err = dq.Select(deliberation.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (dq *DeliberationQuery) IDsX(ctx context.Context) []string {
	ids, err := dq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (dq *DeliberationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, dq.ctx, ent.OpQueryCount)
	if err := dq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, dq, querierCount[*DeliberationQuery](), dq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (dq *DeliberationQuery) CountX(ctx context.Context) int {
	count, err := dq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (dq *DeliberationQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, dq.ctx, ent.OpQueryExist)
	switch _, err := dq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (dq *DeliberationQuery) ExistX(ctx context.Context) bool {
	exist, err := dq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DeliberationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (dq *DeliberationQuery) Clone() *DeliberationQuery {
	if dq == nil {
		return nil
	}
	return &DeliberationQuery{
		config:     dq.config,
		ctx:        dq.ctx.Clone(),
		order:      append([]deliberation.OrderOption{}, dq.order...),
		inters:     append([]Interceptor{}, dq.inters...),
		predicates: append([]predicate.Deliberation{}, dq.predicates...),
		withTask:   dq.withTask.Clone(),
		withVotes:  dq.withVotes.Clone(),
		// clone intermediate query.
		sql:  dq.sql.Clone(),
		path: dq.path,
	}
}

// WithTask tells the query-builder to eager-load the nodes that are connected to
// the "task" edge. The optional arguments are used to configure the query builder of the edge.
func (dq *DeliberationQuery) WithTask(opts ...func(*TaskQuery)) *DeliberationQuery {
	query := (&TaskClient{config: dq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	dq.withTask = query
	return dq
}

// WithVotes tells the query-builder to eager-load the nodes that are connected to
// the "votes" edge. The optional arguments are used to configure the query builder of the edge.
func (dq *DeliberationQuery) WithVotes(opts ...func(*VoteQuery)) *DeliberationQuery {
	query := (&VoteClient{config: dq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	dq.withVotes = query
	return dq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TaskID string `json:"task_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Deliberation.Query().
//		GroupBy(deliberation.FieldTaskID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (dq *DeliberationQuery) GroupBy(field string, fields ...string) *DeliberationGroupBy {
	dq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DeliberationGroupBy{build: dq}
	grbuild.flds = &dq.ctx.Fields
	grbuild.label = deliberation.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TaskID string `json:"task_id,omitempty"`
//	}
//
//	client.Deliberation.Query().
//		Select(deliberation.FieldTaskID).
//		Scan(ctx, &v)
func (dq *DeliberationQuery) Select(fields ...string) *DeliberationSelect {
	dq.ctx.Fields = append(dq.ctx.Fields, fields...)
	sbuild := &DeliberationSelect{DeliberationQuery: dq}
	sbuild.label = deliberation.Label
	sbuild.flds, sbuild.scan = &dq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DeliberationSelect configured with the given aggregations.
func (dq *DeliberationQuery) Aggregate(fns ...AggregateFunc) *DeliberationSelect {
	return dq.Select().Aggregate(fns...)
}

func (dq *DeliberationQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range dq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, dq); err != nil {
				return err
			}
		}
	}
	for _, f := range dq.ctx.Fields {
		if !deliberation.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if dq.path != nil {
		prev, err := dq.path(ctx)
		if err != nil {
			return err
		}
		dq.sql = prev
	}
	return nil
}

func (dq *DeliberationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Deliberation, error) {
	var (
		nodes       = []*Deliberation{}
		_spec       = dq.querySpec()
		loadedTypes = [2]bool{
			dq.withTask != nil,
			dq.withVotes != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Deliberation).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Deliberation{config: dq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, dq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := dq.withTask; query != nil {
		if err := dq.loadTask(ctx, query, nodes, nil,
			func(n *Deliberation, e *Task) { n.Edges.Task = e }); err != nil {
			return nil, err
		}
	}
	if query := dq.withVotes; query != nil {
		if err := dq.loadVotes(ctx, query, nodes,
			func(n *Deliberation) { n.Edges.Votes = []*Vote{} },
			func(n *Deliberation, e *Vote) { n.Edges.Votes = append(n.Edges.Votes, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (dq *DeliberationQuery) loadTask(ctx context.Context, query *TaskQuery, nodes []*Deliberation, init func(*Deliberation), assign func(*Deliberation, *Task)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Deliberation)
	for i := range nodes {
		fk := nodes[i].TaskID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(task.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "task_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (dq *DeliberationQuery) loadVotes(ctx context.Context, query *VoteQuery, nodes []*Deliberation, init func(*Deliberation), assign func(*Deliberation, *Vote)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Deliberation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(vote.FieldDeliberationID)
	}
	query.Where(predicate.Vote(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(deliberation.VotesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DeliberationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "deliberation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (dq *DeliberationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := dq.querySpec()
	_spec.Node.Columns = dq.ctx.Fields
	if len(dq.ctx.Fields) > 0 {
		_spec.Unique = dq.ctx.Unique != nil && *dq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, dq.driver, _spec)
}

func (dq *DeliberationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(deliberation.Table, deliberation.Columns, sqlgraph.NewFieldSpec(deliberation.FieldID, field.TypeString))
	_spec.From = dq.sql
	if unique := dq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if dq.path != nil {
		_spec.Unique = true
	}
	if fields := dq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deliberation.FieldID)
		for i := range fields {
			if fields[i] != deliberation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if dq.withTask != nil {
			_spec.Node.AddColumnOnce(deliberation.FieldTaskID)
		}
	}
	if ps := dq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := dq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := dq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := dq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (dq *DeliberationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(dq.driver.Dialect())
	t1 := builder.Table(deliberation.Table)
	columns := dq.ctx.Fields
	if len(columns) == 0 {
		columns = deliberation.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if dq.sql != nil {
		selector = dq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if dq.ctx.Unique != nil && *dq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range dq.predicates {
		p(selector)
	}
	for _, p := range dq.order {
		p(selector)
	}
	if offset := dq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := dq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DeliberationGroupBy is the group-by builder for Deliberation entities.
type DeliberationGroupBy struct {
	selector
	build *DeliberationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (dgb *DeliberationGroupBy) Aggregate(fns ...AggregateFunc) *DeliberationGroupBy {
	dgb.fns = append(dgb.fns, fns...)
	return dgb
}

// Scan applies the selector query and scans the result into the given value.
func (dgb *DeliberationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dgb.build.ctx, ent.OpQueryGroupBy)
	if err := dgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DeliberationQuery, *DeliberationGroupBy](ctx, dgb.build, dgb, dgb.build.inters, v)
}

func (dgb *DeliberationGroupBy) sqlScan(ctx context.Context, root *DeliberationQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(dgb.fns))
	for _, fn := range dgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*dgb.flds)+len(dgb.fns))
		for _, f := range *dgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*dgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DeliberationSelect is the builder for selecting fields of Deliberation entities.
type DeliberationSelect struct {
	*DeliberationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ds *DeliberationSelect) Aggregate(fns ...AggregateFunc) *DeliberationSelect {
	ds.fns = append(ds.fns, fns...)
	return ds
}

// Scan applies the selector query and scans the result into the given value.
func (ds *DeliberationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ds.ctx, ent.OpQuerySelect)
	if err := ds.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DeliberationQuery, *DeliberationSelect](ctx, ds.DeliberationQuery, ds, ds.inters, v)
}

func (ds *DeliberationSelect) sqlScan(ctx context.Context, root *DeliberationQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ds.fns))
	for _, fn := range ds.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ds.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ds.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
