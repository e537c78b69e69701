// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentium/agentium/ent/criticreview"
	"github.com/agentium/agentium/ent/task"
)

// CriticReview is the model entity for the CriticReview schema.
type CriticReview struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// CriticID holds the value of the "critic_id" field.
	CriticID string `json:"critic_id,omitempty"`
	// CriticType holds the value of the "critic_type" field.
	CriticType criticreview.CriticType `json:"critic_type,omitempty"`
	// SHA-256 fingerprint of the reviewed submission
	SubmissionHash string `json:"submission_hash,omitempty"`
	// Verdict holds the value of the "verdict" field.
	Verdict criticreview.Verdict `json:"verdict,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Suggestions holds the value of the "suggestions" field.
	Suggestions []string `json:"suggestions,omitempty"`
	// Submission count for this (task, critic type)
	Attempt int `json:"attempt,omitempty"`
	// Verdict served from the fingerprint cache
	Cached bool `json:"cached,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CriticReviewQuery when eager-loading is set.
	Edges        CriticReviewEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CriticReviewEdges holds the relations/edges for other nodes in the graph.
type CriticReviewEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CriticReviewEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CriticReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case criticreview.FieldSuggestions:
			values[i] = new([]byte)
		case criticreview.FieldCached:
			values[i] = new(sql.NullBool)
		case criticreview.FieldAttempt:
			values[i] = new(sql.NullInt64)
		case criticreview.FieldID, criticreview.FieldTaskID, criticreview.FieldCriticID, criticreview.FieldCriticType, criticreview.FieldSubmissionHash, criticreview.FieldVerdict, criticreview.FieldReason:
			values[i] = new(sql.NullString)
		case criticreview.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CriticReview fields.
func (cr *CriticReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case criticreview.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				cr.ID = value.String
			}
		case criticreview.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				cr.TaskID = value.String
			}
		case criticreview.FieldCriticID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field critic_id", values[i])
			} else if value.Valid {
				cr.CriticID = value.String
			}
		case criticreview.FieldCriticType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field critic_type", values[i])
			} else if value.Valid {
				cr.CriticType = criticreview.CriticType(value.String)
			}
		case criticreview.FieldSubmissionHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submission_hash", values[i])
			} else if value.Valid {
				cr.SubmissionHash = value.String
			}
		case criticreview.FieldVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verdict", values[i])
			} else if value.Valid {
				cr.Verdict = criticreview.Verdict(value.String)
			}
		case criticreview.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				cr.Reason = value.String
			}
		case criticreview.FieldSuggestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field suggestions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &cr.Suggestions); err != nil {
					return fmt.Errorf("unmarshal field suggestions: %w", err)
				}
			}
		case criticreview.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				cr.Attempt = int(value.Int64)
			}
		case criticreview.FieldCached:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cached", values[i])
			} else if value.Valid {
				cr.Cached = value.Bool
			}
		case criticreview.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cr.CreatedAt = value.Time
			}
		default:
			cr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CriticReview.
// This includes values selected through modifiers, order, etc.
func (cr *CriticReview) Value(name string) (ent.Value, error) {
	return cr.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the CriticReview entity.
func (cr *CriticReview) QueryTask() *TaskQuery {
	return NewCriticReviewClient(cr.config).QueryTask(cr)
}

// Update returns a builder for updating this CriticReview.
// Note that you need to call CriticReview.Unwrap() before calling this method if this CriticReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (cr *CriticReview) Update() *CriticReviewUpdateOne {
	return NewCriticReviewClient(cr.config).UpdateOne(cr)
}

// Unwrap unwraps the CriticReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cr *CriticReview) Unwrap() *CriticReview {
	_tx, ok := cr.config.driver.(*txDriver)
	if !ok {
		panic("ent: CriticReview is not a transactional entity")
	}
	cr.config.driver = _tx.drv
	return cr
}

// String implements the fmt.Stringer.
func (cr *CriticReview) String() string {
	var builder strings.Builder
	builder.WriteString("CriticReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cr.ID))
	builder.WriteString("task_id=")
	builder.WriteString(cr.TaskID)
	builder.WriteString(", ")
	builder.WriteString("critic_id=")
	builder.WriteString(cr.CriticID)
	builder.WriteString(", ")
	builder.WriteString("critic_type=")
	builder.WriteString(fmt.Sprintf("%v", cr.CriticType))
	builder.WriteString(", ")
	builder.WriteString("submission_hash=")
	builder.WriteString(cr.SubmissionHash)
	builder.WriteString(", ")
	builder.WriteString("verdict=")
	builder.WriteString(fmt.Sprintf("%v", cr.Verdict))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(cr.Reason)
	builder.WriteString(", ")
	builder.WriteString("suggestions=")
	builder.WriteString(fmt.Sprintf("%v", cr.Suggestions))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", cr.Attempt))
	builder.WriteString(", ")
	builder.WriteString("cached=")
	builder.WriteString(fmt.Sprintf("%v", cr.Cached))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(cr.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CriticReviews is a parsable slice of CriticReview.
type CriticReviews []*CriticReview
