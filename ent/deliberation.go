// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentium/agentium/ent/deliberation"
	"github.com/agentium/agentium/ent/task"
)

// Deliberation is the model entity for the Deliberation schema.
type Deliberation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Agent that triggered the deliberation
	OpenedBy string `json:"opened_by,omitempty"`
	// Status holds the value of the "status" field.
	Status deliberation.Status `json:"status,omitempty"`
	// Resolution holds the value of the "resolution" field.
	Resolution *string `json:"resolution,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DeliberationQuery when eager-loading is set.
	Edges        DeliberationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DeliberationEdges holds the relations/edges for other nodes in the graph.
type DeliberationEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// Votes holds the value of the votes edge.
	Votes []*Vote `json:"votes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeliberationEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// VotesOrErr returns the Votes value or an error if the edge
// was not loaded in eager-loading.
func (e DeliberationEdges) VotesOrErr() ([]*Vote, error) {
	if e.loadedTypes[1] {
		return e.Votes, nil
	}
	return nil, &NotLoadedError{edge: "votes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Deliberation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deliberation.FieldID, deliberation.FieldTaskID, deliberation.FieldTopic, deliberation.FieldOpenedBy, deliberation.FieldStatus, deliberation.FieldResolution:
			values[i] = new(sql.NullString)
		case deliberation.FieldCreatedAt, deliberation.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Deliberation fields.
func (d *Deliberation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deliberation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				d.ID = value.String
			}
		case deliberation.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				d.TaskID = value.String
			}
		case deliberation.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				d.Topic = value.String
			}
		case deliberation.FieldOpenedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field opened_by", values[i])
			} else if value.Valid {
				d.OpenedBy = value.String
			}
		case deliberation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				d.Status = deliberation.Status(value.String)
			}
		case deliberation.FieldResolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution", values[i])
			} else if value.Valid {
				d.Resolution = new(string)
				*d.Resolution = value.String
			}
		case deliberation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				d.CreatedAt = value.Time
			}
		case deliberation.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				d.ResolvedAt = new(time.Time)
				*d.ResolvedAt = value.Time
			}
		default:
			d.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Deliberation.
// This includes values selected through modifiers, order, etc.
func (d *Deliberation) Value(name string) (ent.Value, error) {
	return d.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the Deliberation entity.
func (d *Deliberation) QueryTask() *TaskQuery {
	return NewDeliberationClient(d.config).QueryTask(d)
}

// QueryVotes queries the "votes" edge of the Deliberation entity.
func (d *Deliberation) QueryVotes() *VoteQuery {
	return NewDeliberationClient(d.config).QueryVotes(d)
}

// Update returns a builder for updating this Deliberation.
// Note that you need to call Deliberation.Unwrap() before calling this method if this Deliberation
// was returned from a transaction, and the transaction was committed or rolled back.
func (d *Deliberation) Update() *DeliberationUpdateOne {
	return NewDeliberationClient(d.config).UpdateOne(d)
}

// Unwrap unwraps the Deliberation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (d *Deliberation) Unwrap() *Deliberation {
	_tx, ok := d.config.driver.(*txDriver)
	if !ok {
		panic("ent: Deliberation is not a transactional entity")
	}
	d.config.driver = _tx.drv
	return d
}

// String implements the fmt.Stringer.
func (d *Deliberation) String() string {
	var builder strings.Builder
	builder.WriteString("Deliberation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", d.ID))
	builder.WriteString("task_id=")
	builder.WriteString(d.TaskID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(d.Topic)
	builder.WriteString(", ")
	builder.WriteString("opened_by=")
	builder.WriteString(d.OpenedBy)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", d.Status))
	builder.WriteString(", ")
	if v := d.Resolution; v != nil {
		builder.WriteString("resolution=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(d.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := d.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Deliberations is a parsable slice of Deliberation.
type Deliberations []*Deliberation
