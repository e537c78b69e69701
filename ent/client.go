// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/agentium/agentium/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agentium/agentium/ent/agent"
	"github.com/agentium/agentium/ent/apikey"
	"github.com/agentium/agentium/ent/apiusagelog"
	"github.com/agentium/agentium/ent/auditlog"
	"github.com/agentium/agentium/ent/capabilityoverride"
	"github.com/agentium/agentium/ent/criticreview"
	"github.com/agentium/agentium/ent/deliberation"
	"github.com/agentium/agentium/ent/execution"
	"github.com/agentium/agentium/ent/modelconfig"
	"github.com/agentium/agentium/ent/sandboxrecord"
	"github.com/agentium/agentium/ent/systemsetting"
	"github.com/agentium/agentium/ent/task"
	"github.com/agentium/agentium/ent/taskevent"
	"github.com/agentium/agentium/ent/vote"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// APIKey is the client for interacting with the APIKey builders.
	APIKey *APIKeyClient
	// APIUsageLog is the client for interacting with the APIUsageLog builders.
	APIUsageLog *APIUsageLogClient
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// CapabilityOverride is the client for interacting with the CapabilityOverride builders.
	CapabilityOverride *CapabilityOverrideClient
	// CriticReview is the client for interacting with the CriticReview builders.
	CriticReview *CriticReviewClient
	// Deliberation is the client for interacting with the Deliberation builders.
	Deliberation *DeliberationClient
	// Execution is the client for interacting with the Execution builders.
	Execution *ExecutionClient
	// ModelConfig is the client for interacting with the ModelConfig builders.
	ModelConfig *ModelConfigClient
	// SandboxRecord is the client for interacting with the SandboxRecord builders.
	SandboxRecord *SandboxRecordClient
	// SystemSetting is the client for interacting with the SystemSetting builders.
	SystemSetting *SystemSettingClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskEvent is the client for interacting with the TaskEvent builders.
	TaskEvent *TaskEventClient
	// Vote is the client for interacting with the Vote builders.
	Vote *VoteClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.APIKey = NewAPIKeyClient(c.config)
	c.APIUsageLog = NewAPIUsageLogClient(c.config)
	c.Agent = NewAgentClient(c.config)
	c.AuditLog = NewAuditLogClient(c.config)
	c.CapabilityOverride = NewCapabilityOverrideClient(c.config)
	c.CriticReview = NewCriticReviewClient(c.config)
	c.Deliberation = NewDeliberationClient(c.config)
	c.Execution = NewExecutionClient(c.config)
	c.ModelConfig = NewModelConfigClient(c.config)
	c.SandboxRecord = NewSandboxRecordClient(c.config)
	c.SystemSetting = NewSystemSettingClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskEvent = NewTaskEventClient(c.config)
	c.Vote = NewVoteClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		APIKey:             NewAPIKeyClient(cfg),
		APIUsageLog:        NewAPIUsageLogClient(cfg),
		Agent:              NewAgentClient(cfg),
		AuditLog:           NewAuditLogClient(cfg),
		CapabilityOverride: NewCapabilityOverrideClient(cfg),
		CriticReview:       NewCriticReviewClient(cfg),
		Deliberation:       NewDeliberationClient(cfg),
		Execution:          NewExecutionClient(cfg),
		ModelConfig:        NewModelConfigClient(cfg),
		SandboxRecord:      NewSandboxRecordClient(cfg),
		SystemSetting:      NewSystemSettingClient(cfg),
		Task:               NewTaskClient(cfg),
		TaskEvent:          NewTaskEventClient(cfg),
		Vote:               NewVoteClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		APIKey:             NewAPIKeyClient(cfg),
		APIUsageLog:        NewAPIUsageLogClient(cfg),
		Agent:              NewAgentClient(cfg),
		AuditLog:           NewAuditLogClient(cfg),
		CapabilityOverride: NewCapabilityOverrideClient(cfg),
		CriticReview:       NewCriticReviewClient(cfg),
		Deliberation:       NewDeliberationClient(cfg),
		Execution:          NewExecutionClient(cfg),
		ModelConfig:        NewModelConfigClient(cfg),
		SandboxRecord:      NewSandboxRecordClient(cfg),
		SystemSetting:      NewSystemSettingClient(cfg),
		Task:               NewTaskClient(cfg),
		TaskEvent:          NewTaskEventClient(cfg),
		Vote:               NewVoteClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		APIKey.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.APIKey, c.APIUsageLog, c.Agent, c.AuditLog, c.CapabilityOverride,
		c.CriticReview, c.Deliberation, c.Execution, c.ModelConfig, c.SandboxRecord,
		c.SystemSetting, c.Task, c.TaskEvent, c.Vote,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.APIKey, c.APIUsageLog, c.Agent, c.AuditLog, c.CapabilityOverride,
		c.CriticReview, c.Deliberation, c.Execution, c.ModelConfig, c.SandboxRecord,
		c.SystemSetting, c.Task, c.TaskEvent, c.Vote,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *APIKeyMutation:
		return c.APIKey.mutate(ctx, m)
	case *APIUsageLogMutation:
		return c.APIUsageLog.mutate(ctx, m)
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *CapabilityOverrideMutation:
		return c.CapabilityOverride.mutate(ctx, m)
	case *CriticReviewMutation:
		return c.CriticReview.mutate(ctx, m)
	case *DeliberationMutation:
		return c.Deliberation.mutate(ctx, m)
	case *ExecutionMutation:
		return c.Execution.mutate(ctx, m)
	case *ModelConfigMutation:
		return c.ModelConfig.mutate(ctx, m)
	case *SandboxRecordMutation:
		return c.SandboxRecord.mutate(ctx, m)
	case *SystemSettingMutation:
		return c.SystemSetting.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskEventMutation:
		return c.TaskEvent.mutate(ctx, m)
	case *VoteMutation:
		return c.Vote.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// APIKeyClient is a client for the APIKey schema.
type APIKeyClient struct {
	config
}

// NewAPIKeyClient returns a client for the APIKey from the given config.
func NewAPIKeyClient(c config) *APIKeyClient {
	return &APIKeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `apikey.Hooks(f(g(h())))`.
func (c *APIKeyClient) Use(hooks ...Hook) {
	c.hooks.APIKey = append(c.hooks.APIKey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `apikey.Intercept(f(g(h())))`.
func (c *APIKeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.APIKey = append(c.inters.APIKey, interceptors...)
}

// Create returns a builder for creating a APIKey entity.
func (c *APIKeyClient) Create() *APIKeyCreate {
	mutation := newAPIKeyMutation(c.config, OpCreate)
	return &APIKeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of APIKey entities.
func (c *APIKeyClient) CreateBulk(builders ...*APIKeyCreate) *APIKeyCreateBulk {
	return &APIKeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *APIKeyClient) MapCreateBulk(slice any, setFunc func(*APIKeyCreate, int)) *APIKeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &APIKeyCreateBulk{err: fmt.Errorf("calling to APIKeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*APIKeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &APIKeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for APIKey.
func (c *APIKeyClient) Update() *APIKeyUpdate {
	mutation := newAPIKeyMutation(c.config, OpUpdate)
	return &APIKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *APIKeyClient) UpdateOne(ak *APIKey) *APIKeyUpdateOne {
	mutation := newAPIKeyMutation(c.config, OpUpdateOne, withAPIKey(ak))
	return &APIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *APIKeyClient) UpdateOneID(id string) *APIKeyUpdateOne {
	mutation := newAPIKeyMutation(c.config, OpUpdateOne, withAPIKeyID(id))
	return &APIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for APIKey.
func (c *APIKeyClient) Delete() *APIKeyDelete {
	mutation := newAPIKeyMutation(c.config, OpDelete)
	return &APIKeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *APIKeyClient) DeleteOne(ak *APIKey) *APIKeyDeleteOne {
	return c.DeleteOneID(ak.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *APIKeyClient) DeleteOneID(id string) *APIKeyDeleteOne {
	builder := c.Delete().Where(apikey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &APIKeyDeleteOne{builder}
}

// Query returns a query builder for APIKey.
func (c *APIKeyClient) Query() *APIKeyQuery {
	return &APIKeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAPIKey},
		inters: c.Interceptors(),
	}
}

// Get returns a APIKey entity by its id.
func (c *APIKeyClient) Get(ctx context.Context, id string) (*APIKey, error) {
	return c.Query().Where(apikey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *APIKeyClient) GetX(ctx context.Context, id string) *APIKey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUsageLogs queries the usage_logs edge of a APIKey.
func (c *APIKeyClient) QueryUsageLogs(ak *APIKey) *APIUsageLogQuery {
	query := (&APIUsageLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ak.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(apikey.Table, apikey.FieldID, id),
			sqlgraph.To(apiusagelog.Table, apiusagelog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, apikey.UsageLogsTable, apikey.UsageLogsColumn),
		)
		fromV = sqlgraph.Neighbors(ak.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *APIKeyClient) Hooks() []Hook {
	return c.hooks.APIKey
}

// Interceptors returns the client interceptors.
func (c *APIKeyClient) Interceptors() []Interceptor {
	return c.inters.APIKey
}

func (c *APIKeyClient) mutate(ctx context.Context, m *APIKeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&APIKeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&APIKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&APIKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&APIKeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown APIKey mutation op: %q", m.Op())
	}
}

// APIUsageLogClient is a client for the APIUsageLog schema.
type APIUsageLogClient struct {
	config
}

// NewAPIUsageLogClient returns a client for the APIUsageLog from the given config.
func NewAPIUsageLogClient(c config) *APIUsageLogClient {
	return &APIUsageLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `apiusagelog.Hooks(f(g(h())))`.
func (c *APIUsageLogClient) Use(hooks ...Hook) {
	c.hooks.APIUsageLog = append(c.hooks.APIUsageLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `apiusagelog.Intercept(f(g(h())))`.
func (c *APIUsageLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.APIUsageLog = append(c.inters.APIUsageLog, interceptors...)
}

// Create returns a builder for creating a APIUsageLog entity.
func (c *APIUsageLogClient) Create() *APIUsageLogCreate {
	mutation := newAPIUsageLogMutation(c.config, OpCreate)
	return &APIUsageLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of APIUsageLog entities.
func (c *APIUsageLogClient) CreateBulk(builders ...*APIUsageLogCreate) *APIUsageLogCreateBulk {
	return &APIUsageLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *APIUsageLogClient) MapCreateBulk(slice any, setFunc func(*APIUsageLogCreate, int)) *APIUsageLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &APIUsageLogCreateBulk{err: fmt.Errorf("calling to APIUsageLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*APIUsageLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &APIUsageLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for APIUsageLog.
func (c *APIUsageLogClient) Update() *APIUsageLogUpdate {
	mutation := newAPIUsageLogMutation(c.config, OpUpdate)
	return &APIUsageLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *APIUsageLogClient) UpdateOne(aul *APIUsageLog) *APIUsageLogUpdateOne {
	mutation := newAPIUsageLogMutation(c.config, OpUpdateOne, withAPIUsageLog(aul))
	return &APIUsageLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *APIUsageLogClient) UpdateOneID(id string) *APIUsageLogUpdateOne {
	mutation := newAPIUsageLogMutation(c.config, OpUpdateOne, withAPIUsageLogID(id))
	return &APIUsageLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for APIUsageLog.
func (c *APIUsageLogClient) Delete() *APIUsageLogDelete {
	mutation := newAPIUsageLogMutation(c.config, OpDelete)
	return &APIUsageLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *APIUsageLogClient) DeleteOne(aul *APIUsageLog) *APIUsageLogDeleteOne {
	return c.DeleteOneID(aul.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *APIUsageLogClient) DeleteOneID(id string) *APIUsageLogDeleteOne {
	builder := c.Delete().Where(apiusagelog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &APIUsageLogDeleteOne{builder}
}

// Query returns a query builder for APIUsageLog.
func (c *APIUsageLogClient) Query() *APIUsageLogQuery {
	return &APIUsageLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAPIUsageLog},
		inters: c.Interceptors(),
	}
}

// Get returns a APIUsageLog entity by its id.
func (c *APIUsageLogClient) Get(ctx context.Context, id string) (*APIUsageLog, error) {
	return c.Query().Where(apiusagelog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *APIUsageLogClient) GetX(ctx context.Context, id string) *APIUsageLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryKey queries the key edge of a APIUsageLog.
func (c *APIUsageLogClient) QueryKey(aul *APIUsageLog) *APIKeyQuery {
	query := (&APIKeyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := aul.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(apiusagelog.Table, apiusagelog.FieldID, id),
			sqlgraph.To(apikey.Table, apikey.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, apiusagelog.KeyTable, apiusagelog.KeyColumn),
		)
		fromV = sqlgraph.Neighbors(aul.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *APIUsageLogClient) Hooks() []Hook {
	return c.hooks.APIUsageLog
}

// Interceptors returns the client interceptors.
func (c *APIUsageLogClient) Interceptors() []Interceptor {
	return c.inters.APIUsageLog
}

func (c *APIUsageLogClient) mutate(ctx context.Context, m *APIUsageLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&APIUsageLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&APIUsageLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&APIUsageLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&APIUsageLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown APIUsageLog mutation op: %q", m.Op())
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(a *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(a))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(a *Agent) *AgentDeleteOne {
	return c.DeleteOneID(a.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParent queries the parent edge of a Agent.
func (c *AgentClient) QueryParent(a *Agent) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := a.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agent.ParentTable, agent.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(a.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChildren queries the children edge of a Agent.
func (c *AgentClient) QueryChildren(a *Agent) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := a.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.ChildrenTable, agent.ChildrenColumn),
		)
		fromV = sqlgraph.Neighbors(a.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTasks queries the tasks edge of a Agent.
func (c *AgentClient) QueryTasks(a *Agent) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := a.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.TasksTable, agent.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(a.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutions queries the executions edge of a Agent.
func (c *AgentClient) QueryExecutions(a *Agent) *ExecutionQuery {
	query := (&ExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := a.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(execution.Table, execution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.ExecutionsTable, agent.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(a.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCapabilityOverrides queries the capability_overrides edge of a Agent.
func (c *AgentClient) QueryCapabilityOverrides(a *Agent) *CapabilityOverrideQuery {
	query := (&CapabilityOverrideClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := a.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(capabilityoverride.Table, capabilityoverride.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.CapabilityOverridesTable, agent.CapabilityOverridesColumn),
		)
		fromV = sqlgraph.Neighbors(a.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryModelConfigs queries the model_configs edge of a Agent.
func (c *AgentClient) QueryModelConfigs(a *Agent) *ModelConfigQuery {
	query := (&ModelConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := a.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(modelconfig.Table, modelconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.ModelConfigsTable, agent.ModelConfigsColumn),
		)
		fromV = sqlgraph.Neighbors(a.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(al *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(al))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id string) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(al *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(al.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id string) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id string) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id string) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// CapabilityOverrideClient is a client for the CapabilityOverride schema.
type CapabilityOverrideClient struct {
	config
}

// NewCapabilityOverrideClient returns a client for the CapabilityOverride from the given config.
func NewCapabilityOverrideClient(c config) *CapabilityOverrideClient {
	return &CapabilityOverrideClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `capabilityoverride.Hooks(f(g(h())))`.
func (c *CapabilityOverrideClient) Use(hooks ...Hook) {
	c.hooks.CapabilityOverride = append(c.hooks.CapabilityOverride, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `capabilityoverride.Intercept(f(g(h())))`.
func (c *CapabilityOverrideClient) Intercept(interceptors ...Interceptor) {
	c.inters.CapabilityOverride = append(c.inters.CapabilityOverride, interceptors...)
}

// Create returns a builder for creating a CapabilityOverride entity.
func (c *CapabilityOverrideClient) Create() *CapabilityOverrideCreate {
	mutation := newCapabilityOverrideMutation(c.config, OpCreate)
	return &CapabilityOverrideCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CapabilityOverride entities.
func (c *CapabilityOverrideClient) CreateBulk(builders ...*CapabilityOverrideCreate) *CapabilityOverrideCreateBulk {
	return &CapabilityOverrideCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CapabilityOverrideClient) MapCreateBulk(slice any, setFunc func(*CapabilityOverrideCreate, int)) *CapabilityOverrideCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CapabilityOverrideCreateBulk{err: fmt.Errorf("calling to CapabilityOverrideClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CapabilityOverrideCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CapabilityOverrideCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CapabilityOverride.
func (c *CapabilityOverrideClient) Update() *CapabilityOverrideUpdate {
	mutation := newCapabilityOverrideMutation(c.config, OpUpdate)
	return &CapabilityOverrideUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CapabilityOverrideClient) UpdateOne(co *CapabilityOverride) *CapabilityOverrideUpdateOne {
	mutation := newCapabilityOverrideMutation(c.config, OpUpdateOne, withCapabilityOverride(co))
	return &CapabilityOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CapabilityOverrideClient) UpdateOneID(id string) *CapabilityOverrideUpdateOne {
	mutation := newCapabilityOverrideMutation(c.config, OpUpdateOne, withCapabilityOverrideID(id))
	return &CapabilityOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CapabilityOverride.
func (c *CapabilityOverrideClient) Delete() *CapabilityOverrideDelete {
	mutation := newCapabilityOverrideMutation(c.config, OpDelete)
	return &CapabilityOverrideDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CapabilityOverrideClient) DeleteOne(co *CapabilityOverride) *CapabilityOverrideDeleteOne {
	return c.DeleteOneID(co.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CapabilityOverrideClient) DeleteOneID(id string) *CapabilityOverrideDeleteOne {
	builder := c.Delete().Where(capabilityoverride.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CapabilityOverrideDeleteOne{builder}
}

// Query returns a query builder for CapabilityOverride.
func (c *CapabilityOverrideClient) Query() *CapabilityOverrideQuery {
	return &CapabilityOverrideQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCapabilityOverride},
		inters: c.Interceptors(),
	}
}

// Get returns a CapabilityOverride entity by its id.
func (c *CapabilityOverrideClient) Get(ctx context.Context, id string) (*CapabilityOverride, error) {
	return c.Query().Where(capabilityoverride.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CapabilityOverrideClient) GetX(ctx context.Context, id string) *CapabilityOverride {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a CapabilityOverride.
func (c *CapabilityOverrideClient) QueryAgent(co *CapabilityOverride) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := co.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(capabilityoverride.Table, capabilityoverride.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, capabilityoverride.AgentTable, capabilityoverride.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(co.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CapabilityOverrideClient) Hooks() []Hook {
	return c.hooks.CapabilityOverride
}

// Interceptors returns the client interceptors.
func (c *CapabilityOverrideClient) Interceptors() []Interceptor {
	return c.inters.CapabilityOverride
}

func (c *CapabilityOverrideClient) mutate(ctx context.Context, m *CapabilityOverrideMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CapabilityOverrideCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CapabilityOverrideUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CapabilityOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CapabilityOverrideDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CapabilityOverride mutation op: %q", m.Op())
	}
}

// CriticReviewClient is a client for the CriticReview schema.
type CriticReviewClient struct {
	config
}

// NewCriticReviewClient returns a client for the CriticReview from the given config.
func NewCriticReviewClient(c config) *CriticReviewClient {
	return &CriticReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `criticreview.Hooks(f(g(h())))`.
func (c *CriticReviewClient) Use(hooks ...Hook) {
	c.hooks.CriticReview = append(c.hooks.CriticReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `criticreview.Intercept(f(g(h())))`.
func (c *CriticReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.CriticReview = append(c.inters.CriticReview, interceptors...)
}

// Create returns a builder for creating a CriticReview entity.
func (c *CriticReviewClient) Create() *CriticReviewCreate {
	mutation := newCriticReviewMutation(c.config, OpCreate)
	return &CriticReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CriticReview entities.
func (c *CriticReviewClient) CreateBulk(builders ...*CriticReviewCreate) *CriticReviewCreateBulk {
	return &CriticReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CriticReviewClient) MapCreateBulk(slice any, setFunc func(*CriticReviewCreate, int)) *CriticReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CriticReviewCreateBulk{err: fmt.Errorf("calling to CriticReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CriticReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CriticReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CriticReview.
func (c *CriticReviewClient) Update() *CriticReviewUpdate {
	mutation := newCriticReviewMutation(c.config, OpUpdate)
	return &CriticReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CriticReviewClient) UpdateOne(cr *CriticReview) *CriticReviewUpdateOne {
	mutation := newCriticReviewMutation(c.config, OpUpdateOne, withCriticReview(cr))
	return &CriticReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CriticReviewClient) UpdateOneID(id string) *CriticReviewUpdateOne {
	mutation := newCriticReviewMutation(c.config, OpUpdateOne, withCriticReviewID(id))
	return &CriticReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CriticReview.
func (c *CriticReviewClient) Delete() *CriticReviewDelete {
	mutation := newCriticReviewMutation(c.config, OpDelete)
	return &CriticReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CriticReviewClient) DeleteOne(cr *CriticReview) *CriticReviewDeleteOne {
	return c.DeleteOneID(cr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CriticReviewClient) DeleteOneID(id string) *CriticReviewDeleteOne {
	builder := c.Delete().Where(criticreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CriticReviewDeleteOne{builder}
}

// Query returns a query builder for CriticReview.
func (c *CriticReviewClient) Query() *CriticReviewQuery {
	return &CriticReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCriticReview},
		inters: c.Interceptors(),
	}
}

// Get returns a CriticReview entity by its id.
func (c *CriticReviewClient) Get(ctx context.Context, id string) (*CriticReview, error) {
	return c.Query().Where(criticreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CriticReviewClient) GetX(ctx context.Context, id string) *CriticReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a CriticReview.
func (c *CriticReviewClient) QueryTask(cr *CriticReview) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := cr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(criticreview.Table, criticreview.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, criticreview.TaskTable, criticreview.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(cr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CriticReviewClient) Hooks() []Hook {
	return c.hooks.CriticReview
}

// Interceptors returns the client interceptors.
func (c *CriticReviewClient) Interceptors() []Interceptor {
	return c.inters.CriticReview
}

func (c *CriticReviewClient) mutate(ctx context.Context, m *CriticReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CriticReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CriticReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CriticReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CriticReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CriticReview mutation op: %q", m.Op())
	}
}

// DeliberationClient is a client for the Deliberation schema.
type DeliberationClient struct {
	config
}

// NewDeliberationClient returns a client for the Deliberation from the given config.
func NewDeliberationClient(c config) *DeliberationClient {
	return &DeliberationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deliberation.Hooks(f(g(h())))`.
func (c *DeliberationClient) Use(hooks ...Hook) {
	c.hooks.Deliberation = append(c.hooks.Deliberation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deliberation.Intercept(f(g(h())))`.
func (c *DeliberationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Deliberation = append(c.inters.Deliberation, interceptors...)
}

// Create returns a builder for creating a Deliberation entity.
func (c *DeliberationClient) Create() *DeliberationCreate {
	mutation := newDeliberationMutation(c.config, OpCreate)
	return &DeliberationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Deliberation entities.
func (c *DeliberationClient) CreateBulk(builders ...*DeliberationCreate) *DeliberationCreateBulk {
	return &DeliberationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeliberationClient) MapCreateBulk(slice any, setFunc func(*DeliberationCreate, int)) *DeliberationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeliberationCreateBulk{err: fmt.Errorf("calling to DeliberationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeliberationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeliberationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Deliberation.
func (c *DeliberationClient) Update() *DeliberationUpdate {
	mutation := newDeliberationMutation(c.config, OpUpdate)
	return &DeliberationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeliberationClient) UpdateOne(d *Deliberation) *DeliberationUpdateOne {
	mutation := newDeliberationMutation(c.config, OpUpdateOne, withDeliberation(d))
	return &DeliberationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeliberationClient) UpdateOneID(id string) *DeliberationUpdateOne {
	mutation := newDeliberationMutation(c.config, OpUpdateOne, withDeliberationID(id))
	return &DeliberationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Deliberation.
func (c *DeliberationClient) Delete() *DeliberationDelete {
	mutation := newDeliberationMutation(c.config, OpDelete)
	return &DeliberationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeliberationClient) DeleteOne(d *Deliberation) *DeliberationDeleteOne {
	return c.DeleteOneID(d.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeliberationClient) DeleteOneID(id string) *DeliberationDeleteOne {
	builder := c.Delete().Where(deliberation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeliberationDeleteOne{builder}
}

// Query returns a query builder for Deliberation.
func (c *DeliberationClient) Query() *DeliberationQuery {
	return &DeliberationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeliberation},
		inters: c.Interceptors(),
	}
}

// Get returns a Deliberation entity by its id.
func (c *DeliberationClient) Get(ctx context.Context, id string) (*Deliberation, error) {
	return c.Query().Where(deliberation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeliberationClient) GetX(ctx context.Context, id string) *Deliberation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a Deliberation.
func (c *DeliberationClient) QueryTask(d *Deliberation) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := d.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deliberation.Table, deliberation.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deliberation.TaskTable, deliberation.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(d.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVotes queries the votes edge of a Deliberation.
func (c *DeliberationClient) QueryVotes(d *Deliberation) *VoteQuery {
	query := (&VoteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := d.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deliberation.Table, deliberation.FieldID, id),
			sqlgraph.To(vote.Table, vote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, deliberation.VotesTable, deliberation.VotesColumn),
		)
		fromV = sqlgraph.Neighbors(d.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DeliberationClient) Hooks() []Hook {
	return c.hooks.Deliberation
}

// Interceptors returns the client interceptors.
func (c *DeliberationClient) Interceptors() []Interceptor {
	return c.inters.Deliberation
}

func (c *DeliberationClient) mutate(ctx context.Context, m *DeliberationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeliberationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeliberationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeliberationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeliberationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Deliberation mutation op: %q", m.Op())
	}
}

// ExecutionClient is a client for the Execution schema.
type ExecutionClient struct {
	config
}

// NewExecutionClient returns a client for the Execution from the given config.
func NewExecutionClient(c config) *ExecutionClient {
	return &ExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `execution.Hooks(f(g(h())))`.
func (c *ExecutionClient) Use(hooks ...Hook) {
	c.hooks.Execution = append(c.hooks.Execution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `execution.Intercept(f(g(h())))`.
func (c *ExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Execution = append(c.inters.Execution, interceptors...)
}

// Create returns a builder for creating a Execution entity.
func (c *ExecutionClient) Create() *ExecutionCreate {
	mutation := newExecutionMutation(c.config, OpCreate)
	return &ExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Execution entities.
func (c *ExecutionClient) CreateBulk(builders ...*ExecutionCreate) *ExecutionCreateBulk {
	return &ExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionClient) MapCreateBulk(slice any, setFunc func(*ExecutionCreate, int)) *ExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionCreateBulk{err: fmt.Errorf("calling to ExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Execution.
func (c *ExecutionClient) Update() *ExecutionUpdate {
	mutation := newExecutionMutation(c.config, OpUpdate)
	return &ExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionClient) UpdateOne(e *Execution) *ExecutionUpdateOne {
	mutation := newExecutionMutation(c.config, OpUpdateOne, withExecution(e))
	return &ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionClient) UpdateOneID(id string) *ExecutionUpdateOne {
	mutation := newExecutionMutation(c.config, OpUpdateOne, withExecutionID(id))
	return &ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Execution.
func (c *ExecutionClient) Delete() *ExecutionDelete {
	mutation := newExecutionMutation(c.config, OpDelete)
	return &ExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionClient) DeleteOne(e *Execution) *ExecutionDeleteOne {
	return c.DeleteOneID(e.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionClient) DeleteOneID(id string) *ExecutionDeleteOne {
	builder := c.Delete().Where(execution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionDeleteOne{builder}
}

// Query returns a query builder for Execution.
func (c *ExecutionClient) Query() *ExecutionQuery {
	return &ExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a Execution entity by its id.
func (c *ExecutionClient) Get(ctx context.Context, id string) (*Execution, error) {
	return c.Query().Where(execution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionClient) GetX(ctx context.Context, id string) *Execution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a Execution.
func (c *ExecutionClient) QueryAgent(e *Execution) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := e.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(execution.Table, execution.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, execution.AgentTable, execution.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(e.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionClient) Hooks() []Hook {
	return c.hooks.Execution
}

// Interceptors returns the client interceptors.
func (c *ExecutionClient) Interceptors() []Interceptor {
	return c.inters.Execution
}

func (c *ExecutionClient) mutate(ctx context.Context, m *ExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Execution mutation op: %q", m.Op())
	}
}

// ModelConfigClient is a client for the ModelConfig schema.
type ModelConfigClient struct {
	config
}

// NewModelConfigClient returns a client for the ModelConfig from the given config.
func NewModelConfigClient(c config) *ModelConfigClient {
	return &ModelConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modelconfig.Hooks(f(g(h())))`.
func (c *ModelConfigClient) Use(hooks ...Hook) {
	c.hooks.ModelConfig = append(c.hooks.ModelConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modelconfig.Intercept(f(g(h())))`.
func (c *ModelConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelConfig = append(c.inters.ModelConfig, interceptors...)
}

// Create returns a builder for creating a ModelConfig entity.
func (c *ModelConfigClient) Create() *ModelConfigCreate {
	mutation := newModelConfigMutation(c.config, OpCreate)
	return &ModelConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelConfig entities.
func (c *ModelConfigClient) CreateBulk(builders ...*ModelConfigCreate) *ModelConfigCreateBulk {
	return &ModelConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelConfigClient) MapCreateBulk(slice any, setFunc func(*ModelConfigCreate, int)) *ModelConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelConfigCreateBulk{err: fmt.Errorf("calling to ModelConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelConfig.
func (c *ModelConfigClient) Update() *ModelConfigUpdate {
	mutation := newModelConfigMutation(c.config, OpUpdate)
	return &ModelConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelConfigClient) UpdateOne(mc *ModelConfig) *ModelConfigUpdateOne {
	mutation := newModelConfigMutation(c.config, OpUpdateOne, withModelConfig(mc))
	return &ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelConfigClient) UpdateOneID(id string) *ModelConfigUpdateOne {
	mutation := newModelConfigMutation(c.config, OpUpdateOne, withModelConfigID(id))
	return &ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelConfig.
func (c *ModelConfigClient) Delete() *ModelConfigDelete {
	mutation := newModelConfigMutation(c.config, OpDelete)
	return &ModelConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelConfigClient) DeleteOne(mc *ModelConfig) *ModelConfigDeleteOne {
	return c.DeleteOneID(mc.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelConfigClient) DeleteOneID(id string) *ModelConfigDeleteOne {
	builder := c.Delete().Where(modelconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelConfigDeleteOne{builder}
}

// Query returns a query builder for ModelConfig.
func (c *ModelConfigClient) Query() *ModelConfigQuery {
	return &ModelConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelConfig entity by its id.
func (c *ModelConfigClient) Get(ctx context.Context, id string) (*ModelConfig, error) {
	return c.Query().Where(modelconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelConfigClient) GetX(ctx context.Context, id string) *ModelConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a ModelConfig.
func (c *ModelConfigClient) QueryAgent(mc *ModelConfig) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := mc.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(modelconfig.Table, modelconfig.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, modelconfig.AgentTable, modelconfig.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(mc.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ModelConfigClient) Hooks() []Hook {
	return c.hooks.ModelConfig
}

// Interceptors returns the client interceptors.
func (c *ModelConfigClient) Interceptors() []Interceptor {
	return c.inters.ModelConfig
}

func (c *ModelConfigClient) mutate(ctx context.Context, m *ModelConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelConfig mutation op: %q", m.Op())
	}
}

// SandboxRecordClient is a client for the SandboxRecord schema.
type SandboxRecordClient struct {
	config
}

// NewSandboxRecordClient returns a client for the SandboxRecord from the given config.
func NewSandboxRecordClient(c config) *SandboxRecordClient {
	return &SandboxRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sandboxrecord.Hooks(f(g(h())))`.
func (c *SandboxRecordClient) Use(hooks ...Hook) {
	c.hooks.SandboxRecord = append(c.hooks.SandboxRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sandboxrecord.Intercept(f(g(h())))`.
func (c *SandboxRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.SandboxRecord = append(c.inters.SandboxRecord, interceptors...)
}

// Create returns a builder for creating a SandboxRecord entity.
func (c *SandboxRecordClient) Create() *SandboxRecordCreate {
	mutation := newSandboxRecordMutation(c.config, OpCreate)
	return &SandboxRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SandboxRecord entities.
func (c *SandboxRecordClient) CreateBulk(builders ...*SandboxRecordCreate) *SandboxRecordCreateBulk {
	return &SandboxRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SandboxRecordClient) MapCreateBulk(slice any, setFunc func(*SandboxRecordCreate, int)) *SandboxRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SandboxRecordCreateBulk{err: fmt.Errorf("calling to SandboxRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SandboxRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SandboxRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SandboxRecord.
func (c *SandboxRecordClient) Update() *SandboxRecordUpdate {
	mutation := newSandboxRecordMutation(c.config, OpUpdate)
	return &SandboxRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SandboxRecordClient) UpdateOne(sr *SandboxRecord) *SandboxRecordUpdateOne {
	mutation := newSandboxRecordMutation(c.config, OpUpdateOne, withSandboxRecord(sr))
	return &SandboxRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SandboxRecordClient) UpdateOneID(id string) *SandboxRecordUpdateOne {
	mutation := newSandboxRecordMutation(c.config, OpUpdateOne, withSandboxRecordID(id))
	return &SandboxRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SandboxRecord.
func (c *SandboxRecordClient) Delete() *SandboxRecordDelete {
	mutation := newSandboxRecordMutation(c.config, OpDelete)
	return &SandboxRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SandboxRecordClient) DeleteOne(sr *SandboxRecord) *SandboxRecordDeleteOne {
	return c.DeleteOneID(sr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SandboxRecordClient) DeleteOneID(id string) *SandboxRecordDeleteOne {
	builder := c.Delete().Where(sandboxrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SandboxRecordDeleteOne{builder}
}

// Query returns a query builder for SandboxRecord.
func (c *SandboxRecordClient) Query() *SandboxRecordQuery {
	return &SandboxRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSandboxRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a SandboxRecord entity by its id.
func (c *SandboxRecordClient) Get(ctx context.Context, id string) (*SandboxRecord, error) {
	return c.Query().Where(sandboxrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SandboxRecordClient) GetX(ctx context.Context, id string) *SandboxRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SandboxRecordClient) Hooks() []Hook {
	return c.hooks.SandboxRecord
}

// Interceptors returns the client interceptors.
func (c *SandboxRecordClient) Interceptors() []Interceptor {
	return c.inters.SandboxRecord
}

func (c *SandboxRecordClient) mutate(ctx context.Context, m *SandboxRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SandboxRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SandboxRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SandboxRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SandboxRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SandboxRecord mutation op: %q", m.Op())
	}
}

// SystemSettingClient is a client for the SystemSetting schema.
type SystemSettingClient struct {
	config
}

// NewSystemSettingClient returns a client for the SystemSetting from the given config.
func NewSystemSettingClient(c config) *SystemSettingClient {
	return &SystemSettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `systemsetting.Hooks(f(g(h())))`.
func (c *SystemSettingClient) Use(hooks ...Hook) {
	c.hooks.SystemSetting = append(c.hooks.SystemSetting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `systemsetting.Intercept(f(g(h())))`.
func (c *SystemSettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.SystemSetting = append(c.inters.SystemSetting, interceptors...)
}

// Create returns a builder for creating a SystemSetting entity.
func (c *SystemSettingClient) Create() *SystemSettingCreate {
	mutation := newSystemSettingMutation(c.config, OpCreate)
	return &SystemSettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SystemSetting entities.
func (c *SystemSettingClient) CreateBulk(builders ...*SystemSettingCreate) *SystemSettingCreateBulk {
	return &SystemSettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SystemSettingClient) MapCreateBulk(slice any, setFunc func(*SystemSettingCreate, int)) *SystemSettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SystemSettingCreateBulk{err: fmt.Errorf("calling to SystemSettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SystemSettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SystemSettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SystemSetting.
func (c *SystemSettingClient) Update() *SystemSettingUpdate {
	mutation := newSystemSettingMutation(c.config, OpUpdate)
	return &SystemSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SystemSettingClient) UpdateOne(ss *SystemSetting) *SystemSettingUpdateOne {
	mutation := newSystemSettingMutation(c.config, OpUpdateOne, withSystemSetting(ss))
	return &SystemSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SystemSettingClient) UpdateOneID(id string) *SystemSettingUpdateOne {
	mutation := newSystemSettingMutation(c.config, OpUpdateOne, withSystemSettingID(id))
	return &SystemSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SystemSetting.
func (c *SystemSettingClient) Delete() *SystemSettingDelete {
	mutation := newSystemSettingMutation(c.config, OpDelete)
	return &SystemSettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SystemSettingClient) DeleteOne(ss *SystemSetting) *SystemSettingDeleteOne {
	return c.DeleteOneID(ss.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SystemSettingClient) DeleteOneID(id string) *SystemSettingDeleteOne {
	builder := c.Delete().Where(systemsetting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SystemSettingDeleteOne{builder}
}

// Query returns a query builder for SystemSetting.
func (c *SystemSettingClient) Query() *SystemSettingQuery {
	return &SystemSettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSystemSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a SystemSetting entity by its id.
func (c *SystemSettingClient) Get(ctx context.Context, id string) (*SystemSetting, error) {
	return c.Query().Where(systemsetting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SystemSettingClient) GetX(ctx context.Context, id string) *SystemSetting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SystemSettingClient) Hooks() []Hook {
	return c.hooks.SystemSetting
}

// Interceptors returns the client interceptors.
func (c *SystemSettingClient) Interceptors() []Interceptor {
	return c.inters.SystemSetting
}

func (c *SystemSettingClient) mutate(ctx context.Context, m *SystemSettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SystemSettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SystemSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SystemSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SystemSettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SystemSetting mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(t *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(t))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(t *Task) *TaskDeleteOne {
	return c.DeleteOneID(t.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a Task.
func (c *TaskClient) QueryAgent(t *Task) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := t.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.AgentTable, task.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(t.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Task.
func (c *TaskClient) QueryEvents(t *Task) *TaskEventQuery {
	query := (&TaskEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := t.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(taskevent.Table, taskevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.EventsTable, task.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(t.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCriticReviews queries the critic_reviews edge of a Task.
func (c *TaskClient) QueryCriticReviews(t *Task) *CriticReviewQuery {
	query := (&CriticReviewClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := t.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(criticreview.Table, criticreview.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.CriticReviewsTable, task.CriticReviewsColumn),
		)
		fromV = sqlgraph.Neighbors(t.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDeliberations queries the deliberations edge of a Task.
func (c *TaskClient) QueryDeliberations(t *Task) *DeliberationQuery {
	query := (&DeliberationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := t.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(deliberation.Table, deliberation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.DeliberationsTable, task.DeliberationsColumn),
		)
		fromV = sqlgraph.Neighbors(t.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskEventClient is a client for the TaskEvent schema.
type TaskEventClient struct {
	config
}

// NewTaskEventClient returns a client for the TaskEvent from the given config.
func NewTaskEventClient(c config) *TaskEventClient {
	return &TaskEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskevent.Hooks(f(g(h())))`.
func (c *TaskEventClient) Use(hooks ...Hook) {
	c.hooks.TaskEvent = append(c.hooks.TaskEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskevent.Intercept(f(g(h())))`.
func (c *TaskEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskEvent = append(c.inters.TaskEvent, interceptors...)
}

// Create returns a builder for creating a TaskEvent entity.
func (c *TaskEventClient) Create() *TaskEventCreate {
	mutation := newTaskEventMutation(c.config, OpCreate)
	return &TaskEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskEvent entities.
func (c *TaskEventClient) CreateBulk(builders ...*TaskEventCreate) *TaskEventCreateBulk {
	return &TaskEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskEventClient) MapCreateBulk(slice any, setFunc func(*TaskEventCreate, int)) *TaskEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskEventCreateBulk{err: fmt.Errorf("calling to TaskEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskEvent.
func (c *TaskEventClient) Update() *TaskEventUpdate {
	mutation := newTaskEventMutation(c.config, OpUpdate)
	return &TaskEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskEventClient) UpdateOne(te *TaskEvent) *TaskEventUpdateOne {
	mutation := newTaskEventMutation(c.config, OpUpdateOne, withTaskEvent(te))
	return &TaskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskEventClient) UpdateOneID(id string) *TaskEventUpdateOne {
	mutation := newTaskEventMutation(c.config, OpUpdateOne, withTaskEventID(id))
	return &TaskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskEvent.
func (c *TaskEventClient) Delete() *TaskEventDelete {
	mutation := newTaskEventMutation(c.config, OpDelete)
	return &TaskEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskEventClient) DeleteOne(te *TaskEvent) *TaskEventDeleteOne {
	return c.DeleteOneID(te.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskEventClient) DeleteOneID(id string) *TaskEventDeleteOne {
	builder := c.Delete().Where(taskevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskEventDeleteOne{builder}
}

// Query returns a query builder for TaskEvent.
func (c *TaskEventClient) Query() *TaskEventQuery {
	return &TaskEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskEvent entity by its id.
func (c *TaskEventClient) Get(ctx context.Context, id string) (*TaskEvent, error) {
	return c.Query().Where(taskevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskEventClient) GetX(ctx context.Context, id string) *TaskEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TaskEvent.
func (c *TaskEventClient) QueryTask(te *TaskEvent) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := te.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskevent.Table, taskevent.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskevent.TaskTable, taskevent.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(te.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskEventClient) Hooks() []Hook {
	return c.hooks.TaskEvent
}

// Interceptors returns the client interceptors.
func (c *TaskEventClient) Interceptors() []Interceptor {
	return c.inters.TaskEvent
}

func (c *TaskEventClient) mutate(ctx context.Context, m *TaskEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskEvent mutation op: %q", m.Op())
	}
}

// VoteClient is a client for the Vote schema.
type VoteClient struct {
	config
}

// NewVoteClient returns a client for the Vote from the given config.
func NewVoteClient(c config) *VoteClient {
	return &VoteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vote.Hooks(f(g(h())))`.
func (c *VoteClient) Use(hooks ...Hook) {
	c.hooks.Vote = append(c.hooks.Vote, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vote.Intercept(f(g(h())))`.
func (c *VoteClient) Intercept(interceptors ...Interceptor) {
	c.inters.Vote = append(c.inters.Vote, interceptors...)
}

// Create returns a builder for creating a Vote entity.
func (c *VoteClient) Create() *VoteCreate {
	mutation := newVoteMutation(c.config, OpCreate)
	return &VoteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Vote entities.
func (c *VoteClient) CreateBulk(builders ...*VoteCreate) *VoteCreateBulk {
	return &VoteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VoteClient) MapCreateBulk(slice any, setFunc func(*VoteCreate, int)) *VoteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VoteCreateBulk{err: fmt.Errorf("calling to VoteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VoteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VoteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Vote.
func (c *VoteClient) Update() *VoteUpdate {
	mutation := newVoteMutation(c.config, OpUpdate)
	return &VoteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VoteClient) UpdateOne(v *Vote) *VoteUpdateOne {
	mutation := newVoteMutation(c.config, OpUpdateOne, withVote(v))
	return &VoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VoteClient) UpdateOneID(id string) *VoteUpdateOne {
	mutation := newVoteMutation(c.config, OpUpdateOne, withVoteID(id))
	return &VoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Vote.
func (c *VoteClient) Delete() *VoteDelete {
	mutation := newVoteMutation(c.config, OpDelete)
	return &VoteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VoteClient) DeleteOne(v *Vote) *VoteDeleteOne {
	return c.DeleteOneID(v.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VoteClient) DeleteOneID(id string) *VoteDeleteOne {
	builder := c.Delete().Where(vote.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VoteDeleteOne{builder}
}

// Query returns a query builder for Vote.
func (c *VoteClient) Query() *VoteQuery {
	return &VoteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVote},
		inters: c.Interceptors(),
	}
}

// Get returns a Vote entity by its id.
func (c *VoteClient) Get(ctx context.Context, id string) (*Vote, error) {
	return c.Query().Where(vote.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VoteClient) GetX(ctx context.Context, id string) *Vote {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDeliberation queries the deliberation edge of a Vote.
func (c *VoteClient) QueryDeliberation(v *Vote) *DeliberationQuery {
	query := (&DeliberationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := v.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(vote.Table, vote.FieldID, id),
			sqlgraph.To(deliberation.Table, deliberation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, vote.DeliberationTable, vote.DeliberationColumn),
		)
		fromV = sqlgraph.Neighbors(v.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VoteClient) Hooks() []Hook {
	return c.hooks.Vote
}

// Interceptors returns the client interceptors.
func (c *VoteClient) Interceptors() []Interceptor {
	return c.inters.Vote
}

func (c *VoteClient) mutate(ctx context.Context, m *VoteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VoteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VoteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VoteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Vote mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		APIKey, APIUsageLog, Agent, AuditLog, CapabilityOverride, CriticReview,
		Deliberation, Execution, ModelConfig, SandboxRecord, SystemSetting, Task,
		TaskEvent, Vote []ent.Hook
	}
	inters struct {
		APIKey, APIUsageLog, Agent, AuditLog, CapabilityOverride, CriticReview,
		Deliberation, Execution, ModelConfig, SandboxRecord, SystemSetting, Task,
		TaskEvent, Vote []ent.Interceptor
	}
)
