// Code generated by ent, DO NOT EDIT.

package sandboxrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sandboxrecord type in the database.
	Label = "sandbox_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "sandbox_id"
	// FieldContainerID holds the string denoting the container_id field in the database.
	FieldContainerID = "container_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldImage holds the string denoting the image field in the database.
	FieldImage = "image"
	// FieldNetworkMode holds the string denoting the network_mode field in the database.
	FieldNetworkMode = "network_mode"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDestroyedAt holds the string denoting the destroyed_at field in the database.
	FieldDestroyedAt = "destroyed_at"
	// FieldDestroyReason holds the string denoting the destroy_reason field in the database.
	FieldDestroyReason = "destroy_reason"
	// Table holds the table name of the sandboxrecord in the database.
	Table = "sandbox_records"
)

// Columns holds all SQL columns for sandboxrecord fields.
var Columns = []string{
	FieldID,
	FieldContainerID,
	FieldAgentID,
	FieldImage,
	FieldNetworkMode,
	FieldCreatedAt,
	FieldDestroyedAt,
	FieldDestroyReason,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the SandboxRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContainerID orders the results by the container_id field.
func ByContainerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContainerID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByImage orders the results by the image field.
func ByImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImage, opts...).ToFunc()
}

// ByNetworkMode orders the results by the network_mode field.
func ByNetworkMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetworkMode, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDestroyedAt orders the results by the destroyed_at field.
func ByDestroyedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDestroyedAt, opts...).ToFunc()
}

// ByDestroyReason orders the results by the destroy_reason field.
func ByDestroyReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDestroyReason, opts...).ToFunc()
}
