// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentium/agentium/ent/apikey"
)

// APIKey is the model entity for the APIKey schema.
type APIKey struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// EncryptedSecret holds the value of the "encrypted_secret" field.
	EncryptedSecret string `json:"-"`
	// Lower number wins
	Priority int `json:"priority,omitempty"`
	// ConsecutiveFailures holds the value of the "consecutive_failures" field.
	ConsecutiveFailures int `json:"consecutive_failures,omitempty"`
	// LastFailureAt holds the value of the "last_failure_at" field.
	LastFailureAt *time.Time `json:"last_failure_at,omitempty"`
	// CooldownUntil holds the value of the "cooldown_until" field.
	CooldownUntil *time.Time `json:"cooldown_until,omitempty"`
	// USD; 0 = unlimited
	MonthlyBudget float64 `json:"monthly_budget,omitempty"`
	// CurrentSpend holds the value of the "current_spend" field.
	CurrentSpend float64 `json:"current_spend,omitempty"`
	// LastSpendReset holds the value of the "last_spend_reset" field.
	LastSpendReset time.Time `json:"last_spend_reset,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// Status holds the value of the "status" field.
	Status apikey.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the APIKeyQuery when eager-loading is set.
	Edges        APIKeyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// APIKeyEdges holds the relations/edges for other nodes in the graph.
type APIKeyEdges struct {
	// UsageLogs holds the value of the usage_logs edge.
	UsageLogs []*APIUsageLog `json:"usage_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UsageLogsOrErr returns the UsageLogs value or an error if the edge
// was not loaded in eager-loading.
func (e APIKeyEdges) UsageLogsOrErr() ([]*APIUsageLog, error) {
	if e.loadedTypes[0] {
		return e.UsageLogs, nil
	}
	return nil, &NotLoadedError{edge: "usage_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*APIKey) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case apikey.FieldActive:
			values[i] = new(sql.NullBool)
		case apikey.FieldMonthlyBudget, apikey.FieldCurrentSpend:
			values[i] = new(sql.NullFloat64)
		case apikey.FieldPriority, apikey.FieldConsecutiveFailures:
			values[i] = new(sql.NullInt64)
		case apikey.FieldID, apikey.FieldProvider, apikey.FieldEncryptedSecret, apikey.FieldStatus:
			values[i] = new(sql.NullString)
		case apikey.FieldLastFailureAt, apikey.FieldCooldownUntil, apikey.FieldLastSpendReset, apikey.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the APIKey fields.
func (ak *APIKey) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case apikey.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				ak.ID = value.String
			}
		case apikey.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				ak.Provider = value.String
			}
		case apikey.FieldEncryptedSecret:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field encrypted_secret", values[i])
			} else if value.Valid {
				ak.EncryptedSecret = value.String
			}
		case apikey.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				ak.Priority = int(value.Int64)
			}
		case apikey.FieldConsecutiveFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_failures", values[i])
			} else if value.Valid {
				ak.ConsecutiveFailures = int(value.Int64)
			}
		case apikey.FieldLastFailureAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_failure_at", values[i])
			} else if value.Valid {
				ak.LastFailureAt = new(time.Time)
				*ak.LastFailureAt = value.Time
			}
		case apikey.FieldCooldownUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cooldown_until", values[i])
			} else if value.Valid {
				ak.CooldownUntil = new(time.Time)
				*ak.CooldownUntil = value.Time
			}
		case apikey.FieldMonthlyBudget:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_budget", values[i])
			} else if value.Valid {
				ak.MonthlyBudget = value.Float64
			}
		case apikey.FieldCurrentSpend:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field current_spend", values[i])
			} else if value.Valid {
				ak.CurrentSpend = value.Float64
			}
		case apikey.FieldLastSpendReset:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_spend_reset", values[i])
			} else if value.Valid {
				ak.LastSpendReset = value.Time
			}
		case apikey.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				ak.Active = value.Bool
			}
		case apikey.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				ak.Status = apikey.Status(value.String)
			}
		case apikey.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ak.CreatedAt = value.Time
			}
		default:
			ak.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the APIKey.
// This includes values selected through modifiers, order, etc.
func (ak *APIKey) Value(name string) (ent.Value, error) {
	return ak.selectValues.Get(name)
}

// QueryUsageLogs queries the "usage_logs" edge of the APIKey entity.
func (ak *APIKey) QueryUsageLogs() *APIUsageLogQuery {
	return NewAPIKeyClient(ak.config).QueryUsageLogs(ak)
}

// Update returns a builder for updating this APIKey.
// Note that you need to call APIKey.Unwrap() before calling this method if this APIKey
// was returned from a transaction, and the transaction was committed or rolled back.
func (ak *APIKey) Update() *APIKeyUpdateOne {
	return NewAPIKeyClient(ak.config).UpdateOne(ak)
}

// Unwrap unwraps the APIKey entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ak *APIKey) Unwrap() *APIKey {
	_tx, ok := ak.config.driver.(*txDriver)
	if !ok {
		panic("ent: APIKey is not a transactional entity")
	}
	ak.config.driver = _tx.drv
	return ak
}

// String implements the fmt.Stringer.
func (ak *APIKey) String() string {
	var builder strings.Builder
	builder.WriteString("APIKey(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ak.ID))
	builder.WriteString("provider=")
	builder.WriteString(ak.Provider)
	builder.WriteString(", ")
	builder.WriteString("encrypted_secret=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", ak.Priority))
	builder.WriteString(", ")
	builder.WriteString("consecutive_failures=")
	builder.WriteString(fmt.Sprintf("%v", ak.ConsecutiveFailures))
	builder.WriteString(", ")
	if v := ak.LastFailureAt; v != nil {
		builder.WriteString("last_failure_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := ak.CooldownUntil; v != nil {
		builder.WriteString("cooldown_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("monthly_budget=")
	builder.WriteString(fmt.Sprintf("%v", ak.MonthlyBudget))
	builder.WriteString(", ")
	builder.WriteString("current_spend=")
	builder.WriteString(fmt.Sprintf("%v", ak.CurrentSpend))
	builder.WriteString(", ")
	builder.WriteString("last_spend_reset=")
	builder.WriteString(ak.LastSpendReset.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", ak.Active))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", ak.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ak.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// APIKeys is a parsable slice of APIKey.
type APIKeys []*APIKey
