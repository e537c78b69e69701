// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentium/agentium/ent/agent"
	"github.com/agentium/agentium/ent/capabilityoverride"
)

// CapabilityOverride is the model entity for the CapabilityOverride schema.
type CapabilityOverride struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Capability holds the value of the "capability" field.
	Capability string `json:"capability,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode capabilityoverride.Mode `json:"mode,omitempty"`
	// Agent that issued the override
	GrantedBy string `json:"granted_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CapabilityOverrideQuery when eager-loading is set.
	Edges        CapabilityOverrideEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CapabilityOverrideEdges holds the relations/edges for other nodes in the graph.
type CapabilityOverrideEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CapabilityOverrideEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CapabilityOverride) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case capabilityoverride.FieldID, capabilityoverride.FieldAgentID, capabilityoverride.FieldCapability, capabilityoverride.FieldMode, capabilityoverride.FieldGrantedBy:
			values[i] = new(sql.NullString)
		case capabilityoverride.FieldCreatedAt, capabilityoverride.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CapabilityOverride fields.
func (co *CapabilityOverride) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case capabilityoverride.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				co.ID = value.String
			}
		case capabilityoverride.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				co.AgentID = value.String
			}
		case capabilityoverride.FieldCapability:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field capability", values[i])
			} else if value.Valid {
				co.Capability = value.String
			}
		case capabilityoverride.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				co.Mode = capabilityoverride.Mode(value.String)
			}
		case capabilityoverride.FieldGrantedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field granted_by", values[i])
			} else if value.Valid {
				co.GrantedBy = value.String
			}
		case capabilityoverride.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				co.CreatedAt = value.Time
			}
		case capabilityoverride.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				co.UpdatedAt = value.Time
			}
		default:
			co.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CapabilityOverride.
// This includes values selected through modifiers, order, etc.
func (co *CapabilityOverride) Value(name string) (ent.Value, error) {
	return co.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the CapabilityOverride entity.
func (co *CapabilityOverride) QueryAgent() *AgentQuery {
	return NewCapabilityOverrideClient(co.config).QueryAgent(co)
}

// Update returns a builder for updating this CapabilityOverride.
// Note that you need to call CapabilityOverride.Unwrap() before calling this method if this CapabilityOverride
// was returned from a transaction, and the transaction was committed or rolled back.
func (co *CapabilityOverride) Update() *CapabilityOverrideUpdateOne {
	return NewCapabilityOverrideClient(co.config).UpdateOne(co)
}

// Unwrap unwraps the CapabilityOverride entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (co *CapabilityOverride) Unwrap() *CapabilityOverride {
	_tx, ok := co.config.driver.(*txDriver)
	if !ok {
		panic("ent: CapabilityOverride is not a transactional entity")
	}
	co.config.driver = _tx.drv
	return co
}

// String implements the fmt.Stringer.
func (co *CapabilityOverride) String() string {
	var builder strings.Builder
	builder.WriteString("CapabilityOverride(")
	builder.WriteString(fmt.Sprintf("id=%v, ", co.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(co.AgentID)
	builder.WriteString(", ")
	builder.WriteString("capability=")
	builder.WriteString(co.Capability)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(fmt.Sprintf("%v", co.Mode))
	builder.WriteString(", ")
	builder.WriteString("granted_by=")
	builder.WriteString(co.GrantedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(co.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(co.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CapabilityOverrides is a parsable slice of CapabilityOverride.
type CapabilityOverrides []*CapabilityOverride
