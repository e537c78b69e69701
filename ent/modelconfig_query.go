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
	"github.com/agentium/agentium/ent/modelconfig"
	"github.com/agentium/agentium/ent/predicate"
)

// ModelConfigQuery is the builder for querying ModelConfig entities.
type ModelConfigQuery struct {
	config
	ctx        *QueryContext
	order      []modelconfig.OrderOption
	inters     []Interceptor
	predicates []predicate.ModelConfig
	withAgent  *AgentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ModelConfigQuery builder.
func (mcq *ModelConfigQuery) Where(ps ...predicate.ModelConfig) *ModelConfigQuery {
	mcq.predicates = append(mcq.predicates, ps...)
	return mcq
}

// Limit the number of records to be returned by this query.
func (mcq *ModelConfigQuery) Limit(limit int) *ModelConfigQuery {
	mcq.ctx.Limit = &limit
	return mcq
}

// Offset to start from.
func (mcq *ModelConfigQuery) Offset(offset int) *ModelConfigQuery {
	mcq.ctx.Offset = &offset
	return mcq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (mcq *ModelConfigQuery) Unique(unique bool) *ModelConfigQuery {
	mcq.ctx.Unique = &unique
	return mcq
}

// Order specifies how the records should be ordered.
func (mcq *ModelConfigQuery) Order(o ...modelconfig.OrderOption) *ModelConfigQuery {
	mcq.order = append(mcq.order, o...)
	return mcq
}

// QueryAgent chains the current query on the "agent" edge.
func (mcq *ModelConfigQuery) QueryAgent() *AgentQuery {
	query := (&AgentClient{config: mcq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := mcq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := mcq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(modelconfig.Table, modelconfig.FieldID, selector),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, modelconfig.AgentTable, modelconfig.AgentColumn),
		)
		fromU = sqlgraph.SetNeighbors(mcq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ModelConfig entity from the query.
// Returns a *NotFoundError when no ModelConfig was found.
func (mcq *ModelConfigQuery) First(ctx context.Context) (*ModelConfig, error) {
	nodes, err := mcq.Limit(1).All(setContextOp(ctx, mcq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{modelconfig.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (mcq *ModelConfigQuery) FirstX(ctx context.Context) *ModelConfig {
	node, err := mcq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ModelConfig ID from the query.
// Returns a *NotFoundError when no ModelConfig ID was found.
func (mcq *ModelConfigQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = mcq.Limit(1).IDs(setContextOp(ctx, mcq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{modelconfig.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (mcq *ModelConfigQuery) FirstIDX(ctx context.Context) string {
	id, err := mcq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ModelConfig entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ModelConfig entity is found.
// Returns a *NotFoundError when no ModelConfig entities are found.
func (mcq *ModelConfigQuery) Only(ctx context.Context) (*ModelConfig, error) {
	nodes, err := mcq.Limit(2).All(setContextOp(ctx, mcq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{modelconfig.Label}
	default:
		return nil, &NotSingularError{modelconfig.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (mcq *ModelConfigQuery) OnlyX(ctx context.Context) *ModelConfig {
	node, err := mcq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ModelConfig ID in the query.
// Returns a *NotSingularError when more than one ModelConfig ID is found.
// Returns a *NotFoundError when no entities are found.
func (mcq *ModelConfigQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = mcq.Limit(2).IDs(setContextOp(ctx, mcq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{modelconfig.Label}
	default:
		err = &NotSingularError{modelconfig.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (mcq *ModelConfigQuery) OnlyIDX(ctx context.Context) string {
	id, err := mcq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ModelConfigs.
func (mcq *ModelConfigQuery) All(ctx context.Context) ([]*ModelConfig, error) {
	ctx = setContextOp(ctx, mcq.ctx, ent.OpQueryAll)
	if err := mcq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ModelConfig, *ModelConfigQuery]()
	return withInterceptors[[]*ModelConfig](ctx, mcq, qr, mcq.inters)
}

// AllX is like All, but panics if an error occurs.
func (mcq *ModelConfigQuery) AllX(ctx context.Context) []*ModelConfig {
	nodes, err := mcq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ModelConfig IDs.
func (mcq *ModelConfigQuery) IDs(ctx context.Context) (ids []string, err error) {
	if mcq.ctx.Unique == nil && mcq.path != nil {
		mcq.Unique(true)
	}
	ctx = setContextOp(ctx, mcq.ctx, ent.OpQueryIDs)
	if err = mcq.Select(modelconfig.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (mcq *ModelConfigQuery) IDsX(ctx context.Context) []string {
	ids, err := mcq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (mcq *ModelConfigQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, mcq.ctx, ent.OpQueryCount)
	if err := mcq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, mcq, querierCount[*ModelConfigQuery](), mcq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (mcq *ModelConfigQuery) CountX(ctx context.Context) int {
	count, err := mcq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (mcq *ModelConfigQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, mcq.ctx, ent.OpQueryExist)
	switch _, err := mcq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (mcq *ModelConfigQuery) ExistX(ctx context.Context) bool {
	exist, err := mcq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ModelConfigQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (mcq *ModelConfigQuery) Clone() *ModelConfigQuery {
	if mcq == nil {
		return nil
	}
	return &ModelConfigQuery{
		config:     mcq.config,
		ctx:        mcq.ctx.Clone(),
		order:      append([]modelconfig.OrderOption{}, mcq.order...),
		inters:     append([]Interceptor{}, mcq.inters...),
		predicates: append([]predicate.ModelConfig{}, mcq.predicates...),
		withAgent:  mcq.withAgent.Clone(),
		// clone intermediate query.
		sql:  mcq.sql.Clone(),
		path: mcq.path,
	}
}

// WithAgent tells the query-builder to eager-load the nodes that are connected to
// the "agent" edge. The optional arguments are used to configure the query builder of the edge.
func (mcq *ModelConfigQuery) WithAgent(opts ...func(*AgentQuery)) *ModelConfigQuery {
	query := (&AgentClient{config: mcq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	mcq.withAgent = query
	return mcq
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
//	client.ModelConfig.Query().
//		GroupBy(modelconfig.FieldAgentID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (mcq *ModelConfigQuery) GroupBy(field string, fields ...string) *ModelConfigGroupBy {
	mcq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ModelConfigGroupBy{build: mcq}
	grbuild.flds = &mcq.ctx.Fields
	grbuild.label = modelconfig.Label
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
//	client.ModelConfig.Query().
//		Select(modelconfig.FieldAgentID).
//		Scan(ctx, &v)
func (mcq *ModelConfigQuery) Select(fields ...string) *ModelConfigSelect {
	mcq.ctx.Fields = append(mcq.ctx.Fields, fields...)
	sbuild := &ModelConfigSelect{ModelConfigQuery: mcq}
	sbuild.label = modelconfig.Label
	sbuild.flds, sbuild.scan = &mcq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ModelConfigSelect configured with the given aggregations.
func (mcq *ModelConfigQuery) Aggregate(fns ...AggregateFunc) *ModelConfigSelect {
	return mcq.Select().Aggregate(fns...)
}

func (mcq *ModelConfigQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range mcq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, mcq); err != nil {
				return err
			}
		}
	}
	for _, f := range mcq.ctx.Fields {
		if !modelconfig.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if mcq.path != nil {
		prev, err := mcq.path(ctx)
		if err != nil {
			return err
		}
		mcq.sql = prev
	}
	return nil
}

func (mcq *ModelConfigQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ModelConfig, error) {
	var (
		nodes       = []*ModelConfig{}
		_spec       = mcq.querySpec()
		loadedTypes = [1]bool{
			mcq.withAgent != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ModelConfig).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ModelConfig{config: mcq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, mcq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := mcq.withAgent; query != nil {
		if err := mcq.loadAgent(ctx, query, nodes, nil,
			func(n *ModelConfig, e *Agent) { n.Edges.Agent = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (mcq *ModelConfigQuery) loadAgent(ctx context.Context, query *AgentQuery, nodes []*ModelConfig, init func(*ModelConfig), assign func(*ModelConfig, *Agent)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ModelConfig)
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

func (mcq *ModelConfigQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := mcq.querySpec()
	_spec.Node.Columns = mcq.ctx.Fields
	if len(mcq.ctx.Fields) > 0 {
		_spec.Unique = mcq.ctx.Unique != nil && *mcq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, mcq.driver, _spec)
}

func (mcq *ModelConfigQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(modelconfig.Table, modelconfig.Columns, sqlgraph.NewFieldSpec(modelconfig.FieldID, field.TypeString))
	_spec.From = mcq.sql
	if unique := mcq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if mcq.path != nil {
		_spec.Unique = true
	}
	if fields := mcq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelconfig.FieldID)
		for i := range fields {
			if fields[i] != modelconfig.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if mcq.withAgent != nil {
			_spec.Node.AddColumnOnce(modelconfig.FieldAgentID)
		}
	}
	if ps := mcq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := mcq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := mcq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := mcq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (mcq *ModelConfigQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(mcq.driver.Dialect())
	t1 := builder.Table(modelconfig.Table)
	columns := mcq.ctx.Fields
	if len(columns) == 0 {
		columns = modelconfig.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if mcq.sql != nil {
		selector = mcq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if mcq.ctx.Unique != nil && *mcq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range mcq.predicates {
		p(selector)
	}
	for _, p := range mcq.order {
		p(selector)
	}
	if offset := mcq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := mcq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ModelConfigGroupBy is the group-by builder for ModelConfig entities.
type ModelConfigGroupBy struct {
	selector
	build *ModelConfigQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (mcgb *ModelConfigGroupBy) Aggregate(fns ...AggregateFunc) *ModelConfigGroupBy {
	mcgb.fns = append(mcgb.fns, fns...)
	return mcgb
}

// Scan applies the selector query and scans the result into the given value.
func (mcgb *ModelConfigGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, mcgb.build.ctx, ent.OpQueryGroupBy)
	if err := mcgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ModelConfigQuery, *ModelConfigGroupBy](ctx, mcgb.build, mcgb, mcgb.build.inters, v)
}

func (mcgb *ModelConfigGroupBy) sqlScan(ctx context.Context, root *ModelConfigQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(mcgb.fns))
	for _, fn := range mcgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*mcgb.flds)+len(mcgb.fns))
		for _, f := range *mcgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*mcgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := mcgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ModelConfigSelect is the builder for selecting fields of ModelConfig entities.
type ModelConfigSelect struct {
	*ModelConfigQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (mcs *ModelConfigSelect) Aggregate(fns ...AggregateFunc) *ModelConfigSelect {
	mcs.fns = append(mcs.fns, fns...)
	return mcs
}

// Scan applies the selector query and scans the result into the given value.
func (mcs *ModelConfigSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, mcs.ctx, ent.OpQuerySelect)
	if err := mcs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ModelConfigQuery, *ModelConfigSelect](ctx, mcs.ModelConfigQuery, mcs, mcs.inters, v)
}

func (mcs *ModelConfigSelect) sqlScan(ctx context.Context, root *ModelConfigQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(mcs.fns))
	for _, fn := range mcs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*mcs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := mcs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
