// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agentium/agentium/ent/criticreview"
	"github.com/agentium/agentium/ent/predicate"
	"github.com/agentium/agentium/ent/task"
)

// CriticReviewQuery is the builder for querying CriticReview entities.
type CriticReviewQuery struct {
	config
	ctx        *QueryContext
	order      []criticreview.OrderOption
	inters     []Interceptor
	predicates []predicate.CriticReview
	withTask   *TaskQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CriticReviewQuery builder.
func (crq *CriticReviewQuery) Where(ps ...predicate.CriticReview) *CriticReviewQuery {
	crq.predicates = append(crq.predicates, ps...)
	return crq
}

// Limit the number of records to be returned by this query.
func (crq *CriticReviewQuery) Limit(limit int) *CriticReviewQuery {
	crq.ctx.Limit = &limit
	return crq
}

// Offset to start from.
func (crq *CriticReviewQuery) Offset(offset int) *CriticReviewQuery {
	crq.ctx.Offset = &offset
	return crq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (crq *CriticReviewQuery) Unique(unique bool) *CriticReviewQuery {
	crq.ctx.Unique = &unique
	return crq
}

// Order specifies how the records should be ordered.
func (crq *CriticReviewQuery) Order(o ...criticreview.OrderOption) *CriticReviewQuery {
	crq.order = append(crq.order, o...)
	return crq
}

// QueryTask chains the current query on the "task" edge.
func (crq *CriticReviewQuery) QueryTask() *TaskQuery {
	query := (&TaskClient{config: crq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := crq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := crq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(criticreview.Table, criticreview.FieldID, selector),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, criticreview.TaskTable, criticreview.TaskColumn),
		)
		fromU = sqlgraph.SetNeighbors(crq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CriticReview entity from the query.
// Returns a *NotFoundError when no CriticReview was found.
func (crq *CriticReviewQuery) First(ctx context.Context) (*CriticReview, error) {
	nodes, err := crq.Limit(1).All(setContextOp(ctx, crq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{criticreview.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (crq *CriticReviewQuery) FirstX(ctx context.Context) *CriticReview {
	node, err := crq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CriticReview ID from the query.
// Returns a *NotFoundError when no CriticReview ID was found.
func (crq *CriticReviewQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = crq.Limit(1).IDs(setContextOp(ctx, crq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{criticreview.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (crq *CriticReviewQuery) FirstIDX(ctx context.Context) string {
	id, err := crq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CriticReview entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CriticReview entity is found.
// Returns a *NotFoundError when no CriticReview entities are found.
func (crq *CriticReviewQuery) Only(ctx context.Context) (*CriticReview, error) {
	nodes, err := crq.Limit(2).All(setContextOp(ctx, crq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{criticreview.Label}
	default:
		return nil, &NotSingularError{criticreview.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (crq *CriticReviewQuery) OnlyX(ctx context.Context) *CriticReview {
	node, err := crq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CriticReview ID in the query.
// Returns a *NotSingularError when more than one CriticReview ID is found.
// Returns a *NotFoundError when no entities are found.
func (crq *CriticReviewQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = crq.Limit(2).IDs(setContextOp(ctx, crq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{criticreview.Label}
	default:
		err = &NotSingularError{criticreview.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (crq *CriticReviewQuery) OnlyIDX(ctx context.Context) string {
	id, err := crq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CriticReviews.
func (crq *CriticReviewQuery) All(ctx context.Context) ([]*CriticReview, error) {
	ctx = setContextOp(ctx, crq.ctx, ent.OpQueryAll)
	if err := crq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CriticReview, *CriticReviewQuery]()
	return withInterceptors[[]*CriticReview](ctx, crq, qr, crq.inters)
}

// AllX is like All, but panics if an error occurs.
func (crq *CriticReviewQuery) AllX(ctx context.Context) []*CriticReview {
	nodes, err := crq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CriticReview IDs.
func (crq *CriticReviewQuery) IDs(ctx context.Context) (ids []string, err error) {
	if crq.ctx.Unique == nil && crq.path != nil {
		crq.Unique(true)
	}
	ctx = setContextOp(ctx, crq.ctx, ent.OpQueryIDs)
	if err = crq.Select(criticreview.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (crq *CriticReviewQuery) IDsX(ctx context.Context) []string {
	ids, err := crq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (crq *CriticReviewQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, crq.ctx, ent.OpQueryCount)
	if err := crq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, crq, querierCount[*CriticReviewQuery](), crq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (crq *CriticReviewQuery) CountX(ctx context.Context) int {
	count, err := crq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (crq *CriticReviewQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, crq.ctx, ent.OpQueryExist)
	switch _, err := crq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (crq *CriticReviewQuery) ExistX(ctx context.Context) bool {
	exist, err := crq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CriticReviewQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (crq *CriticReviewQuery) Clone() *CriticReviewQuery {
	if crq == nil {
		return nil
	}
	return &CriticReviewQuery{
		config:     crq.config,
		ctx:        crq.ctx.Clone(),
		order:      append([]criticreview.OrderOption{}, crq.order...),
		inters:     append([]Interceptor{}, crq.inters...),
		predicates: append([]predicate.CriticReview{}, crq.predicates...),
		withTask:   crq.withTask.Clone(),
		// clone intermediate query.
		sql:  crq.sql.Clone(),
		path: crq.path,
	}
}

// WithTask tells the query-builder to eager-load the nodes that are connected to
// the "task" edge. The optional arguments are used to configure the query builder of the edge.
func (crq *CriticReviewQuery) WithTask(opts ...func(*TaskQuery)) *CriticReviewQuery {
	query := (&TaskClient{config: crq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	crq.withTask = query
	return crq
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
//	client.CriticReview.Query().
//		GroupBy(criticreview.FieldTaskID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (crq *CriticReviewQuery) GroupBy(field string, fields ...string) *CriticReviewGroupBy {
	crq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CriticReviewGroupBy{build: crq}
	grbuild.flds = &crq.ctx.Fields
	grbuild.label = criticreview.Label
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
//	client.CriticReview.Query().
//		Select(criticreview.FieldTaskID).
//		Scan(ctx, &v)
func (crq *CriticReviewQuery) Select(fields ...string) *CriticReviewSelect {
	crq.ctx.Fields = append(crq.ctx.Fields, fields...)
	sbuild := &CriticReviewSelect{CriticReviewQuery: crq}
	sbuild.label = criticreview.Label
	sbuild.flds, sbuild.scan = &crq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CriticReviewSelect configured with the given aggregations.
func (crq *CriticReviewQuery) Aggregate(fns ...AggregateFunc) *CriticReviewSelect {
	return crq.Select().Aggregate(fns...)
}

func (crq *CriticReviewQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range crq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, crq); err != nil {
				return err
			}
		}
	}
	for _, f := range crq.ctx.Fields {
		if !criticreview.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if crq.path != nil {
		prev, err := crq.path(ctx)
		if err != nil {
			return err
		}
		crq.sql = prev
	}
	return nil
}

func (crq *CriticReviewQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CriticReview, error) {
	var (
		nodes       = []*CriticReview{}
		_spec       = crq.querySpec()
		loadedTypes = [1]bool{
			crq.withTask != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CriticReview).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CriticReview{config: crq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, crq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := crq.withTask; query != nil {
		if err := crq.loadTask(ctx, query, nodes, nil,
			func(n *CriticReview, e *Task) { n.Edges.Task = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (crq *CriticReviewQuery) loadTask(ctx context.Context, query *TaskQuery, nodes []*CriticReview, init func(*CriticReview), assign func(*CriticReview, *Task)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CriticReview)
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

func (crq *CriticReviewQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := crq.querySpec()
	_spec.Node.Columns = crq.ctx.Fields
	if len(crq.ctx.Fields) > 0 {
		_spec.Unique = crq.ctx.Unique != nil && *crq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, crq.driver, _spec)
}

func (crq *CriticReviewQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(criticreview.Table, criticreview.Columns, sqlgraph.NewFieldSpec(criticreview.FieldID, field.TypeString))
	_spec.From = crq.sql
	if unique := crq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if crq.path != nil {
		_spec.Unique = true
	}
	if fields := crq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, criticreview.FieldID)
		for i := range fields {
			if fields[i] != criticreview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if crq.withTask != nil {
			_spec.Node.AddColumnOnce(criticreview.FieldTaskID)
		}
	}
	if ps := crq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := crq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := crq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := crq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (crq *CriticReviewQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(crq.driver.Dialect())
	t1 := builder.Table(criticreview.Table)
	columns := crq.ctx.Fields
	if len(columns) == 0 {
		columns = criticreview.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if crq.sql != nil {
		selector = crq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if crq.ctx.Unique != nil && *crq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range crq.predicates {
		p(selector)
	}
	for _, p := range crq.order {
		p(selector)
	}
	if offset := crq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := crq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CriticReviewGroupBy is the group-by builder for CriticReview entities.
type CriticReviewGroupBy struct {
	selector
	build *CriticReviewQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (crgb *CriticReviewGroupBy) Aggregate(fns ...AggregateFunc) *CriticReviewGroupBy {
	crgb.fns = append(crgb.fns, fns...)
	return crgb
}

// Scan applies the selector query and scans the result into the given value.
func (crgb *CriticReviewGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, crgb.build.ctx, ent.OpQueryGroupBy)
	if err := crgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CriticReviewQuery, *CriticReviewGroupBy](ctx, crgb.build, crgb, crgb.build.inters, v)
}

func (crgb *CriticReviewGroupBy) sqlScan(ctx context.Context, root *CriticReviewQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(crgb.fns))
	for _, fn := range crgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*crgb.flds)+len(crgb.fns))
		for _, f := range *crgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*crgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := crgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CriticReviewSelect is the builder for selecting fields of CriticReview entities.
type CriticReviewSelect struct {
	*CriticReviewQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (crs *CriticReviewSelect) Aggregate(fns ...AggregateFunc) *CriticReviewSelect {
	crs.fns = append(crs.fns, fns...)
	return crs
}

// Scan applies the selector query and scans the result into the given value.
func (crs *CriticReviewSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, crs.ctx, ent.OpQuerySelect)
	if err := crs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CriticReviewQuery, *CriticReviewSelect](ctx, crs.CriticReviewQuery, crs, crs.inters, v)
}

func (crs *CriticReviewSelect) sqlScan(ctx context.Context, root *CriticReviewQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(crs.fns))
	for _, fn := range crs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*crs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := crs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
