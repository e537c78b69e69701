// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentium/agentium/ent/apikey"
	"github.com/agentium/agentium/ent/apiusagelog"
)

// APIUsageLog is the model entity for the APIUsageLog schema.
type APIUsageLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// KeyID holds the value of the "key_id" field.
	KeyID string `json:"key_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// USD
	Cost float64 `json:"cost,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the APIUsageLogQuery when eager-loading is set.
	Edges        APIUsageLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// APIUsageLogEdges holds the relations/edges for other nodes in the graph.
type APIUsageLogEdges struct {
	// Key holds the value of the key edge.
	Key *APIKey `json:"key,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// KeyOrErr returns the Key value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e APIUsageLogEdges) KeyOrErr() (*APIKey, error) {
	if e.Key != nil {
		return e.Key, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: apikey.Label}
	}
	return nil, &NotLoadedError{edge: "key"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*APIUsageLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case apiusagelog.FieldCost:
			values[i] = new(sql.NullFloat64)
		case apiusagelog.FieldInputTokens, apiusagelog.FieldOutputTokens:
			values[i] = new(sql.NullInt64)
		case apiusagelog.FieldID, apiusagelog.FieldKeyID, apiusagelog.FieldAgentID, apiusagelog.FieldModel:
			values[i] = new(sql.NullString)
		case apiusagelog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the APIUsageLog fields.
func (aul *APIUsageLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case apiusagelog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				aul.ID = value.String
			}
		case apiusagelog.FieldKeyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key_id", values[i])
			} else if value.Valid {
				aul.KeyID = value.String
			}
		case apiusagelog.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				aul.AgentID = value.String
			}
		case apiusagelog.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				aul.Model = value.String
			}
		case apiusagelog.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				aul.InputTokens = int(value.Int64)
			}
		case apiusagelog.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				aul.OutputTokens = int(value.Int64)
			}
		case apiusagelog.FieldCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value.Valid {
				aul.Cost = value.Float64
			}
		case apiusagelog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				aul.CreatedAt = value.Time
			}
		default:
			aul.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the APIUsageLog.
// This includes values selected through modifiers, order, etc.
func (aul *APIUsageLog) Value(name string) (ent.Value, error) {
	return aul.selectValues.Get(name)
}

// QueryKey queries the "key" edge of the APIUsageLog entity.
func (aul *APIUsageLog) QueryKey() *APIKeyQuery {
	return NewAPIUsageLogClient(aul.config).QueryKey(aul)
}

// Update returns a builder for updating this APIUsageLog.
// Note that you need to call APIUsageLog.Unwrap() before calling this method if this APIUsageLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (aul *APIUsageLog) Update() *APIUsageLogUpdateOne {
	return NewAPIUsageLogClient(aul.config).UpdateOne(aul)
}

// Unwrap unwraps the APIUsageLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (aul *APIUsageLog) Unwrap() *APIUsageLog {
	_tx, ok := aul.config.driver.(*txDriver)
	if !ok {
		panic("ent: APIUsageLog is not a transactional entity")
	}
	aul.config.driver = _tx.drv
	return aul
}

// String implements the fmt.Stringer.
func (aul *APIUsageLog) String() string {
	var builder strings.Builder
	builder.WriteString("APIUsageLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", aul.ID))
	builder.WriteString("key_id=")
	builder.WriteString(aul.KeyID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(aul.AgentID)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(aul.Model)
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", aul.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", aul.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("cost=")
	builder.WriteString(fmt.Sprintf("%v", aul.Cost))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(aul.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// APIUsageLogs is a parsable slice of APIUsageLog.
type APIUsageLogs []*APIUsageLog
