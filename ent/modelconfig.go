// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentium/agentium/ent/agent"
	"github.com/agentium/agentium/ent/modelconfig"
)

// ModelConfig is the model entity for the ModelConfig schema.
type ModelConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Temperature holds the value of the "temperature" field.
	Temperature float64 `json:"temperature,omitempty"`
	// MaxTokens holds the value of the "max_tokens" field.
	MaxTokens int `json:"max_tokens,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ModelConfigQuery when eager-loading is set.
	Edges        ModelConfigEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ModelConfigEdges holds the relations/edges for other nodes in the graph.
type ModelConfigEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ModelConfigEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ModelConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case modelconfig.FieldTemperature:
			values[i] = new(sql.NullFloat64)
		case modelconfig.FieldMaxTokens:
			values[i] = new(sql.NullInt64)
		case modelconfig.FieldID, modelconfig.FieldAgentID, modelconfig.FieldModel:
			values[i] = new(sql.NullString)
		case modelconfig.FieldCreatedAt, modelconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModelConfig fields.
func (mc *ModelConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case modelconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				mc.ID = value.String
			}
		case modelconfig.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				mc.AgentID = value.String
			}
		case modelconfig.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				mc.Model = value.String
			}
		case modelconfig.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				mc.Temperature = value.Float64
			}
		case modelconfig.FieldMaxTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_tokens", values[i])
			} else if value.Valid {
				mc.MaxTokens = int(value.Int64)
			}
		case modelconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				mc.CreatedAt = value.Time
			}
		case modelconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				mc.UpdatedAt = value.Time
			}
		default:
			mc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ModelConfig.
// This includes values selected through modifiers, order, etc.
func (mc *ModelConfig) Value(name string) (ent.Value, error) {
	return mc.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the ModelConfig entity.
func (mc *ModelConfig) QueryAgent() *AgentQuery {
	return NewModelConfigClient(mc.config).QueryAgent(mc)
}

// Update returns a builder for updating this ModelConfig.
// Note that you need to call ModelConfig.Unwrap() before calling this method if this ModelConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (mc *ModelConfig) Update() *ModelConfigUpdateOne {
	return NewModelConfigClient(mc.config).UpdateOne(mc)
}

// Unwrap unwraps the ModelConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (mc *ModelConfig) Unwrap() *ModelConfig {
	_tx, ok := mc.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModelConfig is not a transactional entity")
	}
	mc.config.driver = _tx.drv
	return mc
}

// String implements the fmt.Stringer.
func (mc *ModelConfig) String() string {
	var builder strings.Builder
	builder.WriteString("ModelConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", mc.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(mc.AgentID)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(mc.Model)
	builder.WriteString(", ")
	builder.WriteString("temperature=")
	builder.WriteString(fmt.Sprintf("%v", mc.Temperature))
	builder.WriteString(", ")
	builder.WriteString("max_tokens=")
	builder.WriteString(fmt.Sprintf("%v", mc.MaxTokens))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(mc.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(mc.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ModelConfigs is a parsable slice of ModelConfig.
type ModelConfigs []*ModelConfig
