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
	"github.com/agentium/agentium/ent/agent"
	"github.com/agentium/agentium/ent/capabilityoverride"
	"github.com/agentium/agentium/ent/predicate"
)

// CapabilityOverrideQuery is the builder for querying CapabilityOverride entities.
type CapabilityOverrideQuery struct {
	config
	ctx        *QueryContext
	order      []capabilityoverride.OrderOption
	inters     []Interceptor
	predicates []predicate.CapabilityOverride
	withAgent  *AgentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CapabilityOverrideQuery builder.
func (coq *CapabilityOverrideQuery) Where(ps ...predicate.CapabilityOverride) *CapabilityOverrideQuery {
	coq.predicates = append(coq.predicates, ps...)
	return coq
}

// Limit the number of records to be returned by this query.
func (coq *CapabilityOverrideQuery) Limit(limit int) *CapabilityOverrideQuery {
	coq.ctx.Limit = &limit
	return coq
}

// Offset to start from.
func (coq *CapabilityOverrideQuery) Offset(offset int) *CapabilityOverrideQuery {
	coq.ctx.Offset = &offset
	return coq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (coq *CapabilityOverrideQuery) Unique(unique bool) *CapabilityOverrideQuery {
	coq.ctx.Unique = &unique
	return coq
}

// Order specifies how the records should be ordered.
func (coq *CapabilityOverrideQuery) Order(o ...capabilityoverride.OrderOption) *CapabilityOverrideQuery {
	coq.order = append(coq.order, o...)
	return coq
}

// QueryAgent chains the current query on the "agent" edge.
func (coq *CapabilityOverrideQuery) QueryAgent() *AgentQuery {
	query := (&AgentClient{config: coq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := coq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := coq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(capabilityoverride.Table, capabilityoverride.FieldID, selector),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, capabilityoverride.AgentTable, capabilityoverride.AgentColumn),
		)
		fromU = sqlgraph.SetNeighbors(coq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CapabilityOverride entity from the query.
// Returns a *NotFoundError when no CapabilityOverride was found.
func (coq *CapabilityOverrideQuery) First(ctx context.Context) (*CapabilityOverride, error) {
	nodes, err := coq.Limit(1).All(setContextOp(ctx, coq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{capabilityoverride.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (coq *CapabilityOverrideQuery) FirstX(ctx context.Context) *CapabilityOverride {
	node, err := coq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CapabilityOverride ID from the query.
// Returns a *NotFoundError when no CapabilityOverride ID was found.
func (coq *CapabilityOverrideQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = coq.Limit(1).IDs(setContextOp(ctx, coq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{capabilityoverride.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (coq *CapabilityOverrideQuery) FirstIDX(ctx context.Context) string {
	id, err := coq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CapabilityOverride entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CapabilityOverride entity is found.
// Returns a *NotFoundError when no CapabilityOverride entities are found.
func (coq *CapabilityOverrideQuery) Only(ctx context.Context) (*CapabilityOverride, error) {
	nodes, err := coq.Limit(2).All(setContextOp(ctx, coq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{capabilityoverride.Label}
	default:
		return nil, &NotSingularError{capabilityoverride.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (coq *CapabilityOverrideQuery) OnlyX(ctx context.Context) *CapabilityOverride {
	node, err := coq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CapabilityOverride ID in the query.
// Returns a *NotSingularError when more than one CapabilityOverride ID is found.
// Returns a *NotFoundError when no entities are found.
func (coq *CapabilityOverrideQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = coq.Limit(2).IDs(setContextOp(ctx, coq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{capabilityoverride.Label}
	default:
		err = &NotSingularError{capabilityoverride.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (coq *CapabilityOverrideQuery) OnlyIDX(ctx context.Context) string {
	id, err := coq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CapabilityOverrides.
func (coq *CapabilityOverrideQuery) All(ctx context.Context) ([]*CapabilityOverride, error) {
	ctx = setContextOp(ctx, coq.ctx, ent.OpQueryAll)
	if err := coq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CapabilityOverride, *CapabilityOverrideQuery]()
	return withInterceptors[[]*CapabilityOverride](ctx, coq, qr, coq.inters)
}

// AllX is like All, but panics if an error occurs.
func (coq *CapabilityOverrideQuery) AllX(ctx context.Context) []*CapabilityOverride {
	nodes, err := coq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CapabilityOverride IDs.
func (coq *CapabilityOverrideQuery) IDs(ctx context.Context) (ids []string, err error) {
	if coq.ctx.Unique == nil && coq.path != nil {
		coq.Unique(true)
	}
	ctx = setContextOp(ctx, coq.ctx, ent.OpQueryIDs)
	if err = coq.Select(capabilityoverride.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (coq *CapabilityOverrideQuery) IDsX(ctx context.Context) []string {
	ids, err := coq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (coq *CapabilityOverrideQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, coq.ctx, ent.OpQueryCount)
	if err := coq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, coq, querierCount[*CapabilityOverrideQuery](), coq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (coq *CapabilityOverrideQuery) CountX(ctx context.Context) int {
	count, err := coq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (coq *CapabilityOverrideQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, coq.ctx, ent.OpQueryExist)
	switch _, err := coq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (coq *CapabilityOverrideQuery) ExistX(ctx context.Context) bool {
	exist, err := coq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CapabilityOverrideQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (coq *CapabilityOverrideQuery) Clone() *CapabilityOverrideQuery {
	if coq == nil {
		return nil
	}
	return &CapabilityOverrideQuery{
		config:     coq.config,
		ctx:        coq.ctx.Clone(),
		order:      append([]capabilityoverride.OrderOption{}, coq.order...),
		inters:     append([]Interceptor{}, coq.inters...),
		predicates: append([]predicate.CapabilityOverride{}, coq.predicates...),
		withAgent:  coq.withAgent.Clone(),
		// clone intermediate query.
		sql:  coq.sql.Clone(),
		path: coq.path,
	}
}

// WithAgent tells the query-builder to eager-load the nodes that are connected to
// the "agent" edge. The optional arguments are used to configure the query builder of the edge.
func (coq *CapabilityOverrideQuery) WithAgent(opts ...func(*AgentQuery)) *CapabilityOverrideQuery {
	query := (&AgentClient{config: coq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	coq.withAgent = query
	return coq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AgentID string `json:"agent_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CapabilityOverride.Query().
//		GroupBy(capabilityoverride.FieldAgentID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (coq *CapabilityOverrideQuery) GroupBy(field string, fields ...string) *CapabilityOverrideGroupBy {
	coq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CapabilityOverrideGroupBy{build: coq}
	grbuild.flds = &coq.ctx.Fields
	grbuild.label = capabilityoverride.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AgentID string `json:"agent_id,omitempty"`
//	}
//
//	client.CapabilityOverride.Query().
//		Select(capabilityoverride.FieldAgentID).
//		Scan(ctx, &v)
func (coq *CapabilityOverrideQuery) Select(fields ...string) *CapabilityOverrideSelect {
	coq.ctx.Fields = append(coq.ctx.Fields, fields...)
	sbuild := &CapabilityOverrideSelect{CapabilityOverrideQuery: coq}
	sbuild.label = capabilityoverride.Label
	sbuild.flds, sbuild.scan = &coq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CapabilityOverrideSelect configured with the given aggregations.
func (coq *CapabilityOverrideQuery) Aggregate(fns ...AggregateFunc) *CapabilityOverrideSelect {
	return coq.Select().Aggregate(fns...)
}

func (coq *CapabilityOverrideQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range coq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, coq); err != nil {
				return err
			}
		}
	}
	for _, f := range coq.ctx.Fields {
		if !capabilityoverride.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if coq.path != nil {
		prev, err := coq.path(ctx)
		if err != nil {
			return err
		}
		coq.sql = prev
	}
	return nil
}

func (coq *CapabilityOverrideQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CapabilityOverride, error) {
	var (
		nodes       = []*CapabilityOverride{}
		_spec       = coq.querySpec()
		loadedTypes = [1]bool{
			coq.withAgent != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CapabilityOverride).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CapabilityOverride{config: coq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, coq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := coq.withAgent; query != nil {
		if err := coq.loadAgent(ctx, query, nodes, nil,
			func(n *CapabilityOverride, e *Agent) { n.Edges.Agent = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (coq *CapabilityOverrideQuery) loadAgent(ctx context.Context, query *AgentQuery, nodes []*CapabilityOverride, init func(*CapabilityOverride), assign func(*CapabilityOverride, *Agent)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CapabilityOverride)
	for i := range nodes {
		fk := nodes[i].AgentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(agent.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "agent_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (coq *CapabilityOverrideQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := coq.querySpec()
	_spec.Node.Columns = coq.ctx.Fields
	if len(coq.ctx.Fields) > 0 {
		_spec.Unique = coq.ctx.Unique != nil && *coq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, coq.driver, _spec)
}

func (coq *CapabilityOverrideQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(capabilityoverride.Table, capabilityoverride.Columns, sqlgraph.NewFieldSpec(capabilityoverride.FieldID, field.TypeString))
	_spec.From = coq.sql
	if unique := coq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if coq.path != nil {
		_spec.Unique = true
	}
	if fields := coq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, capabilityoverride.FieldID)
		for i := range fields {
			if fields[i] != capabilityoverride.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if coq.withAgent != nil {
			_spec.Node.AddColumnOnce(capabilityoverride.FieldAgentID)
		}
	}
	if ps := coq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := coq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := coq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := coq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (coq *CapabilityOverrideQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(coq.driver.Dialect())
	t1 := builder.Table(capabilityoverride.Table)
	columns := coq.ctx.Fields
	if len(columns) == 0 {
		columns = capabilityoverride.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if coq.sql != nil {
		selector = coq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if coq.ctx.Unique != nil && *coq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range coq.predicates {
		p(selector)
	}
	for _, p := range coq.order {
		p(selector)
	}
	if offset := coq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := coq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CapabilityOverrideGroupBy is the group-by builder for CapabilityOverride entities.
type CapabilityOverrideGroupBy struct {
	selector
	build *CapabilityOverrideQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (cogb *CapabilityOverrideGroupBy) Aggregate(fns ...AggregateFunc) *CapabilityOverrideGroupBy {
	cogb.fns = append(cogb.fns, fns...)
	return cogb
}

// Scan applies the selector query and scans the result into the given value.
func (cogb *CapabilityOverrideGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cogb.build.ctx, ent.OpQueryGroupBy)
	if err := cogb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CapabilityOverrideQuery, *CapabilityOverrideGroupBy](ctx, cogb.build, cogb, cogb.build.inters, v)
}

func (cogb *CapabilityOverrideGroupBy) sqlScan(ctx context.Context, root *CapabilityOverrideQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(cogb.fns))
	for _, fn := range cogb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*cogb.flds)+len(cogb.fns))
		for _, f := range *cogb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*cogb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cogb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CapabilityOverrideSelect is the builder for selecting fields of CapabilityOverride entities.
type CapabilityOverrideSelect struct {
	*CapabilityOverrideQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (cos *CapabilityOverrideSelect) Aggregate(fns ...AggregateFunc) *CapabilityOverrideSelect {
	cos.fns = append(cos.fns, fns...)
	return cos
}

// Scan applies the selector query and scans the result into the given value.
func (cos *CapabilityOverrideSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cos.ctx, ent.OpQuerySelect)
	if err := cos.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CapabilityOverrideQuery, *CapabilityOverrideSelect](ctx, cos.CapabilityOverrideQuery, cos, cos.inters, v)
}

func (cos *CapabilityOverrideSelect) sqlScan(ctx context.Context, root *CapabilityOverrideQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(cos.fns))
	for _, fn := range cos.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*cos.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cos.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
