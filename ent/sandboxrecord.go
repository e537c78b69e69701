// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentium/agentium/ent/sandboxrecord"
)

// SandboxRecord is the model entity for the SandboxRecord schema.
type SandboxRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ContainerID holds the value of the "container_id" field.
	ContainerID string `json:"container_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Image holds the value of the "image" field.
	Image string `json:"image,omitempty"`
	// NetworkMode holds the value of the "network_mode" field.
	NetworkMode string `json:"network_mode,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// DestroyedAt holds the value of the "destroyed_at" field.
	DestroyedAt *time.Time `json:"destroyed_at,omitempty"`
	// DestroyReason holds the value of the "destroy_reason" field.
	DestroyReason *string `json:"destroy_reason,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SandboxRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sandboxrecord.FieldID, sandboxrecord.FieldContainerID, sandboxrecord.FieldAgentID, sandboxrecord.FieldImage, sandboxrecord.FieldNetworkMode, sandboxrecord.FieldDestroyReason:
			values[i] = new(sql.NullString)
		case sandboxrecord.FieldCreatedAt, sandboxrecord.FieldDestroyedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SandboxRecord fields.
func (sr *SandboxRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sandboxrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				sr.ID = value.String
			}
		case sandboxrecord.FieldContainerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field container_id", values[i])
			} else if value.Valid {
				sr.ContainerID = value.String
			}
		case sandboxrecord.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				sr.AgentID = value.String
			}
		case sandboxrecord.FieldImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image", values[i])
			} else if value.Valid {
				sr.Image = value.String
			}
		case sandboxrecord.FieldNetworkMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field network_mode", values[i])
			} else if value.Valid {
				sr.NetworkMode = value.String
			}
		case sandboxrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				sr.CreatedAt = value.Time
			}
		case sandboxrecord.FieldDestroyedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field destroyed_at", values[i])
			} else if value.Valid {
				sr.DestroyedAt = new(time.Time)
				*sr.DestroyedAt = value.Time
			}
		case sandboxrecord.FieldDestroyReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field destroy_reason", values[i])
			} else if value.Valid {
				sr.DestroyReason = new(string)
				*sr.DestroyReason = value.String
			}
		default:
			sr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SandboxRecord.
// This includes values selected through modifiers, order, etc.
func (sr *SandboxRecord) Value(name string) (ent.Value, error) {
	return sr.selectValues.Get(name)
}

// Update returns a builder for updating this SandboxRecord.
// Note that you need to call SandboxRecord.Unwrap() before calling this method if this SandboxRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (sr *SandboxRecord) Update() *SandboxRecordUpdateOne {
	return NewSandboxRecordClient(sr.config).UpdateOne(sr)
}

// Unwrap unwraps the SandboxRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sr *SandboxRecord) Unwrap() *SandboxRecord {
	_tx, ok := sr.config.driver.(*txDriver)
	if !ok {
		panic("ent: SandboxRecord is not a transactional entity")
	}
	sr.config.driver = _tx.drv
	return sr
}

// String implements the fmt.Stringer.
func (sr *SandboxRecord) String() string {
	var builder strings.Builder
	builder.WriteString("SandboxRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sr.ID))
	builder.WriteString("container_id=")
	builder.WriteString(sr.ContainerID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(sr.AgentID)
	builder.WriteString(", ")
	builder.WriteString("image=")
	builder.WriteString(sr.Image)
	builder.WriteString(", ")
	builder.WriteString("network_mode=")
	builder.WriteString(sr.NetworkMode)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(sr.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := sr.DestroyedAt; v != nil {
		builder.WriteString("destroyed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := sr.DestroyReason; v != nil {
		builder.WriteString("destroy_reason=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// SandboxRecords is a parsable slice of SandboxRecord.
type SandboxRecords []*SandboxRecord
