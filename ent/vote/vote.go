// Code generated by ent, DO NOT EDIT.

package vote

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the vote type in the database.
	Label = "vote"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "vote_id"
	// FieldDeliberationID holds the string denoting the deliberation_id field in the database.
	FieldDeliberationID = "deliberation_id"
	// FieldVoterID holds the string denoting the voter_id field in the database.
	FieldVoterID = "voter_id"
	// FieldChoice holds the string denoting the choice field in the database.
	FieldChoice = "choice"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDeliberation holds the string denoting the deliberation edge name in mutations.
	EdgeDeliberation = "deliberation"
	// DeliberationFieldID holds the string denoting the ID field of the Deliberation.
	DeliberationFieldID = "deliberation_id"
	// Table holds the table name of the vote in the database.
	Table = "votes"
	// DeliberationTable is the table that holds the deliberation relation/edge.
	DeliberationTable = "votes"
	// DeliberationInverseTable is the table name for the Deliberation entity.
	// It exists in this package in order to avoid circular dependency with the "deliberation" package.
	DeliberationInverseTable = "deliberations"
	// DeliberationColumn is the table column denoting the deliberation relation/edge.
	DeliberationColumn = "deliberation_id"
)

// Columns holds all SQL columns for vote fields.
var Columns = []string{
	FieldID,
	FieldDeliberationID,
	FieldVoterID,
	FieldChoice,
	FieldRationale,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Choice defines the type for the "choice" enum field.
type Choice string

// Choice values.
const (
	ChoiceApprove Choice = "approve"
	ChoiceReject  Choice = "reject"
	ChoiceAbstain Choice = "abstain"
)

func (c Choice) String() string {
	return string(c)
}

// ChoiceValidator is a validator for the "choice" field enum values. It is called by the builders before save.
func ChoiceValidator(c Choice) error {
	switch c {
	case ChoiceApprove, ChoiceReject, ChoiceAbstain:
		return nil
	default:
		return fmt.Errorf("vote: invalid enum value for choice field: %q", c)
	}
}

// OrderOption defines the ordering options for the Vote queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDeliberationID orders the results by the deliberation_id field.
func ByDeliberationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliberationID, opts...).ToFunc()
}

// ByVoterID orders the results by the voter_id field.
func ByVoterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVoterID, opts...).ToFunc()
}

// ByChoice orders the results by the choice field.
func ByChoice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChoice, opts...).ToFunc()
}

// ByRationale orders the results by the rationale field.
func ByRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRationale, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDeliberationField orders the results by deliberation field.
func ByDeliberationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDeliberationStep(), sql.OrderByField(field, opts...))
	}
}
func newDeliberationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DeliberationInverseTable, DeliberationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DeliberationTable, DeliberationColumn),
	)
}
