// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPersistent holds the string denoting the persistent field in the database.
	FieldPersistent = "persistent"
	// FieldEthos holds the string denoting the ethos field in the database.
	FieldEthos = "ethos"
	// FieldPreferredConfigID holds the string denoting the preferred_config_id field in the database.
	FieldPreferredConfigID = "preferred_config_id"
	// FieldSavedConfigID holds the string denoting the saved_config_id field in the database.
	FieldSavedConfigID = "saved_config_id"
	// FieldRecentViolations holds the string denoting the recent_violations field in the database.
	FieldRecentViolations = "recent_violations"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgeChildren holds the string denoting the children edge name in mutations.
	EdgeChildren = "children"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// EdgeExecutions holds the string denoting the executions edge name in mutations.
	EdgeExecutions = "executions"
	// EdgeCapabilityOverrides holds the string denoting the capability_overrides edge name in mutations.
	EdgeCapabilityOverrides = "capability_overrides"
	// EdgeModelConfigs holds the string denoting the model_configs edge name in mutations.
	EdgeModelConfigs = "model_configs"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// ExecutionFieldID holds the string denoting the ID field of the Execution.
	ExecutionFieldID = "execution_id"
	// CapabilityOverrideFieldID holds the string denoting the ID field of the CapabilityOverride.
	CapabilityOverrideFieldID = "override_id"
	// ModelConfigFieldID holds the string denoting the ID field of the ModelConfig.
	ModelConfigFieldID = "config_id"
	// Table holds the table name of the agent in the database.
	Table = "agents"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "agents"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "parent_id"
	// ChildrenTable is the table that holds the children relation/edge.
	ChildrenTable = "agents"
	// ChildrenColumn is the table column denoting the children relation/edge.
	ChildrenColumn = "parent_id"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "tasks"
	// TasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TasksInverseTable = "tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "agent_id"
	// ExecutionsTable is the table that holds the executions relation/edge.
	ExecutionsTable = "executions"
	// ExecutionsInverseTable is the table name for the Execution entity.
	// It exists in this package in order to avoid circular dependency with the "execution" package.
	ExecutionsInverseTable = "executions"
	// ExecutionsColumn is the table column denoting the executions relation/edge.
	ExecutionsColumn = "agent_id"
	// CapabilityOverridesTable is the table that holds the capability_overrides relation/edge.
	CapabilityOverridesTable = "capability_overrides"
	// CapabilityOverridesInverseTable is the table name for the CapabilityOverride entity.
	// It exists in this package in order to avoid circular dependency with the "capabilityoverride" package.
	CapabilityOverridesInverseTable = "capability_overrides"
	// CapabilityOverridesColumn is the table column denoting the capability_overrides relation/edge.
	CapabilityOverridesColumn = "agent_id"
	// ModelConfigsTable is the table that holds the model_configs relation/edge.
	ModelConfigsTable = "model_configs"
	// ModelConfigsInverseTable is the table name for the ModelConfig entity.
	// It exists in this package in order to avoid circular dependency with the "modelconfig" package.
	ModelConfigsInverseTable = "model_configs"
	// ModelConfigsColumn is the table column denoting the model_configs relation/edge.
	ModelConfigsColumn = "agent_id"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldTier,
	FieldParentID,
	FieldStatus,
	FieldPersistent,
	FieldEthos,
	FieldPreferredConfigID,
	FieldSavedConfigID,
	FieldRecentViolations,
	FieldLastHeartbeatAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPersistent holds the default value on creation for the "persistent" field.
	DefaultPersistent bool
	// DefaultRecentViolations holds the default value on creation for the "recent_violations" field.
	DefaultRecentViolations int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Tier defines the type for the "tier" enum field.
type Tier string

// Tier values.
const (
	TierHead    Tier = "head"
	TierCouncil Tier = "council"
	TierLead    Tier = "lead"
	TierTask    Tier = "task"
)

func (t Tier) String() string {
	return string(t)
}

// TierValidator is a validator for the "tier" field enum values. It is called by the builders before save.
func TierValidator(t Tier) error {
	switch t {
	case TierHead, TierCouncil, TierLead, TierTask:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for tier field: %q", t)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusInitializing is the default value of the Status enum.
const DefaultStatus = StatusInitializing

// Status values.
const (
	StatusInitializing Status = "initializing"
	StatusActive       Status = "active"
	StatusIdleWorking  Status = "idle_working"
	StatusIdlePaused   Status = "idle_paused"
	StatusDeliberating Status = "deliberating"
	StatusWorking      Status = "working"
	StatusReviewing    Status = "reviewing"
	StatusSuspended    Status = "suspended"
	StatusTerminated   Status = "terminated"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInitializing, StatusActive, StatusIdleWorking, StatusIdlePaused, StatusDeliberating, StatusWorking, StatusReviewing, StatusSuspended, StatusTerminated:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPersistent orders the results by the persistent field.
func ByPersistent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersistent, opts...).ToFunc()
}

// ByEthos orders the results by the ethos field.
func ByEthos(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEthos, opts...).ToFunc()
}

// ByPreferredConfigID orders the results by the preferred_config_id field.
func ByPreferredConfigID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredConfigID, opts...).ToFunc()
}

// BySavedConfigID orders the results by the saved_config_id field.
func BySavedConfigID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSavedConfigID, opts...).ToFunc()
}

// ByRecentViolations orders the results by the recent_violations field.
func ByRecentViolations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecentViolations, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByChildrenCount orders the results by children count.
func ByChildrenCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChildrenStep(), opts...)
	}
}

// ByChildren orders the results by children terms.
func ByChildren(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChildrenStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByExecutionsCount orders the results by executions count.
func ByExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionsStep(), opts...)
	}
}

// ByExecutions orders the results by executions terms.
func ByExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCapabilityOverridesCount orders the results by capability_overrides count.
func ByCapabilityOverridesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCapabilityOverridesStep(), opts...)
	}
}

// ByCapabilityOverrides orders the results by capability_overrides terms.
func ByCapabilityOverrides(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCapabilityOverridesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByModelConfigsCount orders the results by model_configs count.
func ByModelConfigsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newModelConfigsStep(), opts...)
	}
}

// ByModelConfigs orders the results by model_configs terms.
func ByModelConfigs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newModelConfigsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newChildrenStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
	)
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
func newExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionsInverseTable, ExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
	)
}
func newCapabilityOverridesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CapabilityOverridesInverseTable, CapabilityOverrideFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CapabilityOverridesTable, CapabilityOverridesColumn),
	)
}
func newModelConfigsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ModelConfigsInverseTable, ModelConfigFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ModelConfigsTable, ModelConfigsColumn),
	)
}
