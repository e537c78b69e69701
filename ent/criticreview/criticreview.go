// Code generated by ent, DO NOT EDIT.

package criticreview

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the criticreview type in the database.
	Label = "critic_review"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "review_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldCriticID holds the string denoting the critic_id field in the database.
	FieldCriticID = "critic_id"
	// FieldCriticType holds the string denoting the critic_type field in the database.
	FieldCriticType = "critic_type"
	// FieldSubmissionHash holds the string denoting the submission_hash field in the database.
	FieldSubmissionHash = "submission_hash"
	// FieldVerdict holds the string denoting the verdict field in the database.
	FieldVerdict = "verdict"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldSuggestions holds the string denoting the suggestions field in the database.
	FieldSuggestions = "suggestions"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldCached holds the string denoting the cached field in the database.
	FieldCached = "cached"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the criticreview in the database.
	Table = "critic_reviews"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "critic_reviews"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for criticreview fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldCriticID,
	FieldCriticType,
	FieldSubmissionHash,
	FieldVerdict,
	FieldReason,
	FieldSuggestions,
	FieldAttempt,
	FieldCached,
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
	// DefaultCached holds the default value on creation for the "cached" field.
	DefaultCached bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// CriticType defines the type for the "critic_type" enum field.
type CriticType string

// CriticType values.
const (
	CriticTypeCodeCritic   CriticType = "code-critic"
	CriticTypeOutputCritic CriticType = "output-critic"
	CriticTypePlanCritic   CriticType = "plan-critic"
)

func (ct CriticType) String() string {
	return string(ct)
}

// CriticTypeValidator is a validator for the "critic_type" field enum values. It is called by the builders before save.
func CriticTypeValidator(ct CriticType) error {
	switch ct {
	case CriticTypeCodeCritic, CriticTypeOutputCritic, CriticTypePlanCritic:
		return nil
	default:
		return fmt.Errorf("criticreview: invalid enum value for critic_type field: %q", ct)
	}
}

// Verdict defines the type for the "verdict" enum field.
type Verdict string

// Verdict values.
const (
	VerdictPass     Verdict = "pass"
	VerdictReject   Verdict = "reject"
	VerdictEscalate Verdict = "escalate"
)

func (v Verdict) String() string {
	return string(v)
}

// VerdictValidator is a validator for the "verdict" field enum values. It is called by the builders before save.
func VerdictValidator(v Verdict) error {
	switch v {
	case VerdictPass, VerdictReject, VerdictEscalate:
		return nil
	default:
		return fmt.Errorf("criticreview: invalid enum value for verdict field: %q", v)
	}
}

// OrderOption defines the ordering options for the CriticReview queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByCriticID orders the results by the critic_id field.
func ByCriticID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriticID, opts...).ToFunc()
}

// ByCriticType orders the results by the critic_type field.
func ByCriticType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriticType, opts...).ToFunc()
}

// BySubmissionHash orders the results by the submission_hash field.
func BySubmissionHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmissionHash, opts...).ToFunc()
}

// ByVerdict orders the results by the verdict field.
func ByVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdict, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}

// ByCached orders the results by the cached field.
func ByCached(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCached, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
