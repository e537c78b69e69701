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
	"github.com/agentium/agentium/ent/apikey"
	"github.com/agentium/agentium/ent/apiusagelog"
	"github.com/agentium/agentium/ent/predicate"
)

// APIUsageLogQuery is the builder for querying APIUsageLog entities.
type APIUsageLogQuery struct {
	config
	ctx        *QueryContext
	order      []apiusagelog.OrderOption
	inters     []Interceptor
	predicates []predicate.APIUsageLog
	withKey    *APIKeyQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the APIUsageLogQuery builder.
func (aulq *APIUsageLogQuery) Where(ps ...predicate.APIUsageLog) *APIUsageLogQuery {
	aulq.predicates = append(aulq.predicates, ps...)
	return aulq
}

// Limit the number of records to be returned by this query.
func (aulq *APIUsageLogQuery) Limit(limit int) *APIUsageLogQuery {
	aulq.ctx.Limit = &limit
	return aulq
}

// Offset to start from.
func (aulq *APIUsageLogQuery) Offset(offset int) *APIUsageLogQuery {
	aulq.ctx.Offset = &offset
	return aulq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (aulq *APIUsageLogQuery) Unique(unique bool) *APIUsageLogQuery {
	aulq.ctx.Unique = &unique
	return aulq
}

// Order specifies how the records should be ordered.
func (aulq *APIUsageLogQuery) Order(o ...apiusagelog.OrderOption) *APIUsageLogQuery {
	aulq.order = append(aulq.order, o...)
	return aulq
}

// QueryKey chains the current query on the "key" edge.
func (aulq *APIUsageLogQuery) QueryKey() *APIKeyQuery {
	query := (&APIKeyClient{config: aulq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := aulq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := aulq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(apiusagelog.Table, apiusagelog.FieldID, selector),
			sqlgraph.To(apikey.Table, apikey.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, apiusagelog.KeyTable, apiusagelog.KeyColumn),
		)
		fromU = sqlgraph.SetNeighbors(aulq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first APIUsageLog entity from the query.
// Returns a *NotFoundError when no APIUsageLog was found.
func (aulq *APIUsageLogQuery) First(ctx context.Context) (*APIUsageLog, error) {
	nodes, err := aulq.Limit(1).All(setContextOp(ctx, aulq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{apiusagelog.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (aulq *APIUsageLogQuery) FirstX(ctx context.Context) *APIUsageLog {
	node, err := aulq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first APIUsageLog ID from the query.
// Returns a *NotFoundError when no APIUsageLog ID was found.
func (aulq *APIUsageLogQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = aulq.Limit(1).IDs(setContextOp(ctx, aulq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{apiusagelog.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (aulq *APIUsageLogQuery) FirstIDX(ctx context.Context) string {
	id, err := aulq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single APIUsageLog entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one APIUsageLog entity is found.
// Returns a *NotFoundError when no APIUsageLog entities are found.
func (aulq *APIUsageLogQuery) Only(ctx context.Context) (*APIUsageLog, error) {
	nodes, err := aulq.Limit(2).All(setContextOp(ctx, aulq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{apiusagelog.Label}
	default:
		return nil, &NotSingularError{apiusagelog.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (aulq *APIUsageLogQuery) OnlyX(ctx context.Context) *APIUsageLog {
	node, err := aulq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only APIUsageLog ID in the query.
// Returns a *NotSingularError when more than one APIUsageLog ID is found.
// Returns a *NotFoundError when no entities are found.
func (aulq *APIUsageLogQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = aulq.Limit(2).IDs(setContextOp(ctx, aulq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{apiusagelog.Label}
	default:
		err = &NotSingularError{apiusagelog.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (aulq *APIUsageLogQuery) OnlyIDX(ctx context.Context) string {
	id, err := aulq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of APIUsageLogs.
func (aulq *APIUsageLogQuery) All(ctx context.Context) ([]*APIUsageLog, error) {
	ctx = setContextOp(ctx, aulq.ctx, ent.OpQueryAll)
	if err := aulq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*APIUsageLog, *APIUsageLogQuery]()
	return withInterceptors[[]*APIUsageLog](ctx, aulq, qr, aulq.inters)
}

// AllX is like All, but panics if an error occurs.
func (aulq *APIUsageLogQuery) AllX(ctx context.Context) []*APIUsageLog {
	nodes, err := aulq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of APIUsageLog IDs.
func (aulq *APIUsageLogQuery) IDs(ctx context.Context) (ids []string, err error) {
	if aulq.ctx.Unique == nil && aulq.path != nil {
		aulq.Unique(true)
	}
	ctx = setContextOp(ctx, aulq.ctx, ent.OpQueryIDs)
	if err = aulq.Select(apiusagelog.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (aulq *APIUsageLogQuery) IDsX(ctx context.Context) []string {
	ids, err := aulq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (aulq *APIUsageLogQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, aulq.ctx, ent.OpQueryCount)
	if err := aulq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, aulq, querierCount[*APIUsageLogQuery](), aulq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (aulq *APIUsageLogQuery) CountX(ctx context.Context) int {
	count, err := aulq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (aulq *APIUsageLogQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, aulq.ctx, ent.OpQueryExist)
	switch _, err := aulq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (aulq *APIUsageLogQuery) ExistX(ctx context.Context) bool {
	exist, err := aulq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the APIUsageLogQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (aulq *APIUsageLogQuery) Clone() *APIUsageLogQuery {
	if aulq == nil {
		return nil
	}
	return &APIUsageLogQuery{
		config:     aulq.config,
		ctx:        aulq.ctx.Clone(),
		order:      append([]apiusagelog.OrderOption{}, aulq.order...),
		inters:     append([]Interceptor{}, aulq.inters...),
		predicates: append([]predicate.APIUsageLog{}, aulq.predicates...),
		withKey:    aulq.withKey.Clone(),
		// clone intermediate query.
		sql:  aulq.sql.Clone(),
		path: aulq.path,
	}
}

// WithKey tells the query-builder to eager-load the nodes that are connected to
// the "key" edge. The optional arguments are used to configure the query builder of the edge.
func (aulq *APIUsageLogQuery) WithKey(opts ...func(*APIKeyQuery)) *APIUsageLogQuery {
	query := (&APIKeyClient{config: aulq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	aulq.withKey = query
	return aulq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		KeyID string `json:"key_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.APIUsageLog.Query().
//		GroupBy(apiusagelog.FieldKeyID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (aulq *APIUsageLogQuery) GroupBy(field string, fields ...string) *APIUsageLogGroupBy {
	aulq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &APIUsageLogGroupBy{build: aulq}
	grbuild.flds = &aulq.ctx.Fields
	grbuild.label = apiusagelog.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		KeyID string `json:"key_id,omitempty"`
//	}
//
//	client.APIUsageLog.Query().
//		Select(apiusagelog.FieldKeyID).
//		Scan(ctx, &v)
func (aulq *APIUsageLogQuery) Select(fields ...string) *APIUsageLogSelect {
	aulq.ctx.Fields = append(aulq.ctx.Fields, fields...)
	sbuild := &APIUsageLogSelect{APIUsageLogQuery: aulq}
	sbuild.label = apiusagelog.Label
	sbuild.flds, sbuild.scan = &aulq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a APIUsageLogSelect configured with the given aggregations.
func (aulq *APIUsageLogQuery) Aggregate(fns ...AggregateFunc) *APIUsageLogSelect {
	return aulq.Select().Aggregate(fns...)
}

func (aulq *APIUsageLogQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range aulq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, aulq); err != nil {
				return err
			}
		}
	}
	for _, f := range aulq.ctx.Fields {
		if !apiusagelog.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if aulq.path != nil {
		prev, err := aulq.path(ctx)
		if err != nil {
			return err
		}
		aulq.sql = prev
	}
	return nil
}

func (aulq *APIUsageLogQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*APIUsageLog, error) {
	var (
		nodes       = []*APIUsageLog{}
		_spec       = aulq.querySpec()
		loadedTypes = [1]bool{
			aulq.withKey != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*APIUsageLog).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &APIUsageLog{config: aulq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, aulq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := aulq.withKey; query != nil {
		if err := aulq.loadKey(ctx, query, nodes, nil,
			func(n *APIUsageLog, e *APIKey) { n.Edges.Key = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (aulq *APIUsageLogQuery) loadKey(ctx context.Context, query *APIKeyQuery, nodes []*APIUsageLog, init func(*APIUsageLog), assign func(*APIUsageLog, *APIKey)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*APIUsageLog)
	for i := range nodes {
		fk := nodes[i].KeyID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(apikey.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "key_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (aulq *APIUsageLogQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := aulq.querySpec()
	_spec.Node.Columns = aulq.ctx.Fields
	if len(aulq.ctx.Fields) > 0 {
		_spec.Unique = aulq.ctx.Unique != nil && *aulq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, aulq.driver, _spec)
}

func (aulq *APIUsageLogQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(apiusagelog.Table, apiusagelog.Columns, sqlgraph.NewFieldSpec(apiusagelog.FieldID, field.TypeString))
	_spec.From = aulq.sql
	if unique := aulq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if aulq.path != nil {
		_spec.Unique = true
	}
	if fields := aulq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, apiusagelog.FieldID)
		for i := range fields {
			if fields[i] != apiusagelog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if aulq.withKey != nil {
			_spec.Node.AddColumnOnce(apiusagelog.FieldKeyID)
		}
	}
	if ps := aulq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := aulq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := aulq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := aulq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (aulq *APIUsageLogQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(aulq.driver.Dialect())
	t1 := builder.Table(apiusagelog.Table)
	columns := aulq.ctx.Fields
	if len(columns) == 0 {
		columns = apiusagelog.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if aulq.sql != nil {
		selector = aulq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if aulq.ctx.Unique != nil && *aulq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range aulq.predicates {
		p(selector)
	}
	for _, p := range aulq.order {
		p(selector)
	}
	if offset := aulq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := aulq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// APIUsageLogGroupBy is the group-by builder for APIUsageLog entities.
type APIUsageLogGroupBy struct {
	selector
	build *APIUsageLogQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (aulgb *APIUsageLogGroupBy) Aggregate(fns ...AggregateFunc) *APIUsageLogGroupBy {
	aulgb.fns = append(aulgb.fns, fns...)
	return aulgb
}

// Scan applies the selector query and scans the result into the given value.
func (aulgb *APIUsageLogGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, aulgb.build.ctx, ent.OpQueryGroupBy)
	if err := aulgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*APIUsageLogQuery, *APIUsageLogGroupBy](ctx, aulgb.build, aulgb, aulgb.build.inters, v)
}

func (aulgb *APIUsageLogGroupBy) sqlScan(ctx context.Context, root *APIUsageLogQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(aulgb.fns))
	for _, fn := range aulgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*aulgb.flds)+len(aulgb.fns))
		for _, f := range *aulgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*aulgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := aulgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// APIUsageLogSelect is the builder for selecting fields of APIUsageLog entities.
type APIUsageLogSelect struct {
	*APIUsageLogQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (auls *APIUsageLogSelect) Aggregate(fns ...AggregateFunc) *APIUsageLogSelect {
	auls.fns = append(auls.fns, fns...)
	return auls
}

// Scan applies the selector query and scans the result into the given value.
func (auls *APIUsageLogSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, auls.ctx, ent.OpQuerySelect)
	if err := auls.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*APIUsageLogQuery, *APIUsageLogSelect](ctx, auls.APIUsageLogQuery, auls, auls.inters, v)
}

func (auls *APIUsageLogSelect) sqlScan(ctx context.Context, root *APIUsageLogQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(auls.fns))
	for _, fn := range auls.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*auls.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := auls.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
