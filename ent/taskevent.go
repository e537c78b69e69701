// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentium/agentium/ent/task"
	"github.com/agentium/agentium/ent/taskevent"
)

// TaskEvent is the model entity for the TaskEvent schema.
type TaskEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Type holds the value of the "type" field.
	Type taskevent.Type `json:"type,omitempty"`
	// Tie-breaker for events sharing a timestamp
	Seq int `json:"seq,omitempty"`
	// Data holds the value of the "data" field.
	Data map[string]interface{} `json:"data,omitempty"`
	// OccurredAt holds the value of the "occurred_at" field.
	OccurredAt time.Time `json:"occurred_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskEventQuery when eager-loading is set.
	Edges        TaskEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEventEdges holds the relations/edges for other nodes in the graph.
type TaskEventEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEventEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskevent.FieldData:
			values[i] = new([]byte)
		case taskevent.FieldSeq:
			values[i] = new(sql.NullInt64)
		case taskevent.FieldID, taskevent.FieldTaskID, taskevent.FieldType:
			values[i] = new(sql.NullString)
		case taskevent.FieldOccurredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskEvent fields.
func (te *TaskEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				te.ID = value.String
			}
		case taskevent.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				te.TaskID = value.String
			}
		case taskevent.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				te.Type = taskevent.Type(value.String)
			}
		case taskevent.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				te.Seq = int(value.Int64)
			}
		case taskevent.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &te.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case taskevent.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				te.OccurredAt = value.Time
			}
		default:
			te.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskEvent.
// This includes values selected through modifiers, order, etc.
func (te *TaskEvent) Value(name string) (ent.Value, error) {
	return te.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the TaskEvent entity.
func (te *TaskEvent) QueryTask() *TaskQuery {
	return NewTaskEventClient(te.config).QueryTask(te)
}

// Update returns a builder for updating this TaskEvent.
// Note that you need to call TaskEvent.Unwrap() before calling this method if this TaskEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (te *TaskEvent) Update() *TaskEventUpdateOne {
	return NewTaskEventClient(te.config).UpdateOne(te)
}

// Unwrap unwraps the TaskEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (te *TaskEvent) Unwrap() *TaskEvent {
	_tx, ok := te.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskEvent is not a transactional entity")
	}
	te.config.driver = _tx.drv
	return te
}

// String implements the fmt.Stringer.
func (te *TaskEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TaskEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", te.ID))
	builder.WriteString("task_id=")
	builder.WriteString(te.TaskID)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", te.Type))
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", te.Seq))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", te.Data))
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(te.OccurredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaskEvents is a parsable slice of TaskEvent.
type TaskEvents []*TaskEvent
