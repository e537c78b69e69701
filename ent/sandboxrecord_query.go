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
	"github.com/agentium/agentium/ent/predicate"
	"github.com/agentium/agentium/ent/sandboxrecord"
)

// SandboxRecordQuery is the builder for querying SandboxRecord entities.
type SandboxRecordQuery struct {
	config
	ctx        *QueryContext
	order      []sandboxrecord.OrderOption
	inters     []Interceptor
	predicates []predicate.SandboxRecord
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SandboxRecordQuery builder.
func (srq *SandboxRecordQuery) Where(ps ...predicate.SandboxRecord) *SandboxRecordQuery {
	srq.predicates = append(srq.predicates, ps...)
	return srq
}

// Limit the number of records to be returned by this query.
func (srq *SandboxRecordQuery) Limit(limit int) *SandboxRecordQuery {
	srq.ctx.Limit = &limit
	return srq
}

// Offset to start from.
func (srq *SandboxRecordQuery) Offset(offset int) *SandboxRecordQuery {
	srq.ctx.Offset = &offset
	return srq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (srq *SandboxRecordQuery) Unique(unique bool) *SandboxRecordQuery {
	srq.ctx.Unique = &unique
	return srq
}

// Order specifies how the records should be ordered.
func (srq *SandboxRecordQuery) Order(o ...sandboxrecord.OrderOption) *SandboxRecordQuery {
	srq.order = append(srq.order, o...)
	return srq
}

// First returns the first SandboxRecord entity from the query.
// Returns a *NotFoundError when no SandboxRecord was found.
func (srq *SandboxRecordQuery) First(ctx context.Context) (*SandboxRecord, error) {
	nodes, err := srq.Limit(1).All(setContextOp(ctx, srq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{sandboxrecord.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (srq *SandboxRecordQuery) FirstX(ctx context.Context) *SandboxRecord {
	node, err := srq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SandboxRecord ID from the query.
// Returns a *NotFoundError when no SandboxRecord ID was found.
func (srq *SandboxRecordQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = srq.Limit(1).IDs(setContextOp(ctx, srq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{sandboxrecord.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (srq *SandboxRecordQuery) FirstIDX(ctx context.Context) string {
	id, err := srq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SandboxRecord entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SandboxRecord entity is found.
// Returns a *NotFoundError when no SandboxRecord entities are found.
func (srq *SandboxRecordQuery) Only(ctx context.Context) (*SandboxRecord, error) {
	nodes, err := srq.Limit(2).All(setContextOp(ctx, srq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{sandboxrecord.Label}
	default:
		return nil, &NotSingularError{sandboxrecord.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (srq *SandboxRecordQuery) OnlyX(ctx context.Context) *SandboxRecord {
	node, err := srq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SandboxRecord ID in the query.
// Returns a *NotSingularError when more than one SandboxRecord ID is found.
// Returns a *NotFoundError when no entities are found.
func (srq *SandboxRecordQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = srq.Limit(2).IDs(setContextOp(ctx, srq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{sandboxrecord.Label}
	default:
		err = &NotSingularError{sandboxrecord.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (srq *SandboxRecordQuery) OnlyIDX(ctx context.Context) string {
	id, err := srq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SandboxRecords.
func (srq *SandboxRecordQuery) All(ctx context.Context) ([]*SandboxRecord, error) {
	ctx = setContextOp(ctx, srq.ctx, ent.OpQueryAll)
	if err := srq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SandboxRecord, *SandboxRecordQuery]()
	return withInterceptors[[]*SandboxRecord](ctx, srq, qr, srq.inters)
}

// AllX is like All, but panics if an error occurs.
func (srq *SandboxRecordQuery) AllX(ctx context.Context) []*SandboxRecord {
	nodes, err := srq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SandboxRecord IDs.
func (srq *SandboxRecordQuery) IDs(ctx context.Context) (ids []string, err error) {
	if srq.ctx.Unique == nil && srq.path != nil {
		srq.Unique(true)
	}
	ctx = setContextOp(ctx, srq.ctx, ent.OpQueryIDs)
	if err = srq.Select(sandboxrecord.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (srq *SandboxRecordQuery) IDsX(ctx context.Context) []string {
	ids, err := srq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (srq *SandboxRecordQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, srq.ctx, ent.OpQueryCount)
	if err := srq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, srq, querierCount[*SandboxRecordQuery](), srq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (srq *SandboxRecordQuery) CountX(ctx context.Context) int {
	count, err := srq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (srq *SandboxRecordQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, srq.ctx, ent.OpQueryExist)
	switch _, err := srq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (srq *SandboxRecordQuery) ExistX(ctx context.Context) bool {
	exist, err := srq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SandboxRecordQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (srq *SandboxRecordQuery) Clone() *SandboxRecordQuery {
	if srq == nil {
		return nil
	}
	return &SandboxRecordQuery{
		config:     srq.config,
		ctx:        srq.ctx.Clone(),
		order:      append([]sandboxrecord.OrderOption{}, srq.order...),
		inters:     append([]Interceptor{}, srq.inters...),
		predicates: append([]predicate.SandboxRecord{}, srq.predicates...),
		// clone intermediate query.
		sql:  srq.sql.Clone(),
		path: srq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ContainerID string `json:"container_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SandboxRecord.Query().
//		GroupBy(sandboxrecord.FieldContainerID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (srq *SandboxRecordQuery) GroupBy(field string, fields ...string) *SandboxRecordGroupBy {
	srq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SandboxRecordGroupBy{build: srq}
	grbuild.flds = &srq.ctx.Fields
	grbuild.label = sandboxrecord.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ContainerID string `json:"container_id,omitempty"`
//	}
//
//	client.SandboxRecord.Query().
//		Select(sandboxrecord.FieldContainerID).
//		Scan(ctx, &v)
func (srq *SandboxRecordQuery) Select(fields ...string) *SandboxRecordSelect {
	srq.ctx.Fields = append(srq.ctx.Fields, fields...)
	sbuild := &SandboxRecordSelect{SandboxRecordQuery: srq}
	sbuild.label = sandboxrecord.Label
	sbuild.flds, sbuild.scan = &srq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SandboxRecordSelect configured with the given aggregations.
func (srq *SandboxRecordQuery) Aggregate(fns ...AggregateFunc) *SandboxRecordSelect {
	return srq.Select().Aggregate(fns...)
}

func (srq *SandboxRecordQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range srq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, srq); err != nil {
				return err
			}
		}
	}
	for _, f := range srq.ctx.Fields {
		if !sandboxrecord.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if srq.path != nil {
		prev, err := srq.path(ctx)
		if err != nil {
			return err
		}
		srq.sql = prev
	}
	return nil
}

func (srq *SandboxRecordQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SandboxRecord, error) {
	var (
		nodes = []*SandboxRecord{}
		_spec = srq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SandboxRecord).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SandboxRecord{config: srq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, srq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (srq *SandboxRecordQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := srq.querySpec()
	_spec.Node.Columns = srq.ctx.Fields
	if len(srq.ctx.Fields) > 0 {
		_spec.Unique = srq.ctx.Unique != nil && *srq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, srq.driver, _spec)
}

func (srq *SandboxRecordQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(sandboxrecord.Table, sandboxrecord.Columns, sqlgraph.NewFieldSpec(sandboxrecord.FieldID, field.TypeString))
	_spec.From = srq.sql
	if unique := srq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if srq.path != nil {
		_spec.Unique = true
	}
	if fields := srq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sandboxrecord.FieldID)
		for i := range fields {
			if fields[i] != sandboxrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := srq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := srq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := srq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := srq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (srq *SandboxRecordQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(srq.driver.Dialect())
	t1 := builder.Table(sandboxrecord.Table)
	columns := srq.ctx.Fields
	if len(columns) == 0 {
		columns = sandboxrecord.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if srq.sql != nil {
		selector = srq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if srq.ctx.Unique != nil && *srq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range srq.predicates {
		p(selector)
	}
	for _, p := range srq.order {
		p(selector)
	}
	if offset := srq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := srq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SandboxRecordGroupBy is the group-by builder for SandboxRecord entities.
type SandboxRecordGroupBy struct {
	selector
	build *SandboxRecordQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (srgb *SandboxRecordGroupBy) Aggregate(fns ...AggregateFunc) *SandboxRecordGroupBy {
	srgb.fns = append(srgb.fns, fns...)
	return srgb
}

// Scan applies the selector query and scans the result into the given value.
func (srgb *SandboxRecordGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, srgb.build.ctx, ent.OpQueryGroupBy)
	if err := srgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SandboxRecordQuery, *SandboxRecordGroupBy](ctx, srgb.build, srgb, srgb.build.inters, v)
}

func (srgb *SandboxRecordGroupBy) sqlScan(ctx context.Context, root *SandboxRecordQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(srgb.fns))
	for _, fn := range srgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*srgb.flds)+len(srgb.fns))
		for _, f := range *srgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*srgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := srgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SandboxRecordSelect is the builder for selecting fields of SandboxRecord entities.
type SandboxRecordSelect struct {
	*SandboxRecordQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (srs *SandboxRecordSelect) Aggregate(fns ...AggregateFunc) *SandboxRecordSelect {
	srs.fns = append(srs.fns, fns...)
	return srs
}

// Scan applies the selector query and scans the result into the given value.
func (srs *SandboxRecordSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, srs.ctx, ent.OpQuerySelect)
	if err := srs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SandboxRecordQuery, *SandboxRecordSelect](ctx, srs.SandboxRecordQuery, srs, srs.inters, v)
}

func (srs *SandboxRecordSelect) sqlScan(ctx context.Context, root *SandboxRecordQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(srs.fns))
	for _, fn := range srs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*srs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := srs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
