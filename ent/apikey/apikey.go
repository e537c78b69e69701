// Code generated by ent, DO NOT EDIT.

package apikey

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the apikey type in the database.
	Label = "api_key"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "key_id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldEncryptedSecret holds the string denoting the encrypted_secret field in the database.
	FieldEncryptedSecret = "encrypted_secret"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldConsecutiveFailures holds the string denoting the consecutive_failures field in the database.
	FieldConsecutiveFailures = "consecutive_failures"
	// FieldLastFailureAt holds the string denoting the last_failure_at field in the database.
	FieldLastFailureAt = "last_failure_at"
	// FieldCooldownUntil holds the string denoting the cooldown_until field in the database.
	FieldCooldownUntil = "cooldown_until"
	// FieldMonthlyBudget holds the string denoting the monthly_budget field in the database.
	FieldMonthlyBudget = "monthly_budget"
	// FieldCurrentSpend holds the string denoting the current_spend field in the database.
	FieldCurrentSpend = "current_spend"
	// FieldLastSpendReset holds the string denoting the last_spend_reset field in the database.
	FieldLastSpendReset = "last_spend_reset"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUsageLogs holds the string denoting the usage_logs edge name in mutations.
	EdgeUsageLogs = "usage_logs"
	// APIUsageLogFieldID holds the string denoting the ID field of the APIUsageLog.
	APIUsageLogFieldID = "usage_id"
	// Table holds the table name of the apikey in the database.
	Table = "api_keys"
	// UsageLogsTable is the table that holds the usage_logs relation/edge.
	UsageLogsTable = "api_usage_logs"
	// UsageLogsInverseTable is the table name for the APIUsageLog entity.
	// It exists in this package in order to avoid circular dependency with the "apiusagelog" package.
	UsageLogsInverseTable = "api_usage_logs"
	// UsageLogsColumn is the table column denoting the usage_logs relation/edge.
	UsageLogsColumn = "key_id"
)

// Columns holds all SQL columns for apikey fields.
var Columns = []string{
	FieldID,
	FieldProvider,
	FieldEncryptedSecret,
	FieldPriority,
	FieldConsecutiveFailures,
	FieldLastFailureAt,
	FieldCooldownUntil,
	FieldMonthlyBudget,
	FieldCurrentSpend,
	FieldLastSpendReset,
	FieldActive,
	FieldStatus,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultConsecutiveFailures holds the default value on creation for the "consecutive_failures" field.
	DefaultConsecutiveFailures int
	// DefaultMonthlyBudget holds the default value on creation for the "monthly_budget" field.
	DefaultMonthlyBudget float64
	// DefaultCurrentSpend holds the default value on creation for the "current_spend" field.
	DefaultCurrentSpend float64
	// DefaultLastSpendReset holds the default value on creation for the "last_spend_reset" field.
	DefaultLastSpendReset func() time.Time
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusOk is the default value of the Status enum.
const DefaultStatus = StatusOk

// Status values.
const (
	StatusOk    Status = "ok"
	StatusError Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOk, StatusError:
		return nil
	default:
		return fmt.Errorf("apikey: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the APIKey queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByEncryptedSecret orders the results by the encrypted_secret field.
func ByEncryptedSecret(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEncryptedSecret, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByConsecutiveFailures orders the results by the consecutive_failures field.
func ByConsecutiveFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveFailures, opts...).ToFunc()
}

// ByLastFailureAt orders the results by the last_failure_at field.
func ByLastFailureAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastFailureAt, opts...).ToFunc()
}

// ByCooldownUntil orders the results by the cooldown_until field.
func ByCooldownUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCooldownUntil, opts...).ToFunc()
}

// ByMonthlyBudget orders the results by the monthly_budget field.
func ByMonthlyBudget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyBudget, opts...).ToFunc()
}

// ByCurrentSpend orders the results by the current_spend field.
func ByCurrentSpend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentSpend, opts...).ToFunc()
}

// ByLastSpendReset orders the results by the last_spend_reset field.
func ByLastSpendReset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSpendReset, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUsageLogsCount orders the results by usage_logs count.
func ByUsageLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUsageLogsStep(), opts...)
	}
}

// ByUsageLogs orders the results by usage_logs terms.
func ByUsageLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUsageLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUsageLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UsageLogsInverseTable, APIUsageLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UsageLogsTable, UsageLogsColumn),
	)
}
