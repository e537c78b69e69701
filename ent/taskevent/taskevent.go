// Code generated by ent, DO NOT EDIT.

package taskevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the taskevent type in the database.
	Label = "task_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the taskevent in the database.
	Table = "task_events"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "task_events"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for taskevent fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldType,
	FieldSeq,
	FieldData,
	FieldOccurredAt,
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
	// DefaultOccurredAt holds the default value on creation for the "occurred_at" field.
	DefaultOccurredAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeTASK_CREATED     Type = "TASK_CREATED"
	TypeSTATUS_CHANGED   Type = "STATUS_CHANGED"
	TypePROGRESS_UPDATED Type = "PROGRESS_UPDATED"
	TypeRETRY_SCHEDULED  Type = "RETRY_SCHEDULED"
	TypeCOMPLETED        Type = "COMPLETED"
	TypeFAILED           Type = "FAILED"
	TypeCANCELLED        Type = "CANCELLED"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeTASK_CREATED, TypeSTATUS_CHANGED, TypePROGRESS_UPDATED, TypeRETRY_SCHEDULED, TypeCOMPLETED, TypeFAILED, TypeCANCELLED:
		return nil
	default:
		return fmt.Errorf("taskevent: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the TaskEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByOccurredAt orders the results by the occurred_at field.
func ByOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurredAt, opts...).ToFunc()
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
