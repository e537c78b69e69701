// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentium/agentium/ent/agent"
)

// Agent is the model entity for the Agent schema.
type Agent struct {
	config `json:"-"`
	// ID of the ent.
	// 5-digit identifier, first digit encodes the tier
	ID string `json:"id,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier agent.Tier `json:"tier,omitempty"`
	// Empty only for the Head
	ParentID string `json:"parent_id,omitempty"`
	// Status holds the value of the "status" field.
	Status agent.Status `json:"status,omitempty"`
	// Persistent agents survive idle-mode liquidation
	Persistent bool `json:"persistent,omitempty"`
	// Working-memory ethos, owned exclusively by the agent
	Ethos string `json:"ethos,omitempty"`
	// PreferredConfigID holds the value of the "preferred_config_id" field.
	PreferredConfigID *string `json:"preferred_config_id,omitempty"`
	// Stashed config while in idle mode
	SavedConfigID *string `json:"saved_config_id,omitempty"`
	// RecentViolations holds the value of the "recent_violations" field.
	RecentViolations int `json:"recent_violations,omitempty"`
	// LastHeartbeatAt holds the value of the "last_heartbeat_at" field.
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentQuery when eager-loading is set.
	Edges        AgentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentEdges holds the relations/edges for other nodes in the graph.
type AgentEdges struct {
	// Parent holds the value of the parent edge.
	Parent *Agent `json:"parent,omitempty"`
	// Children holds the value of the children edge.
	Children []*Agent `json:"children,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// Executions holds the value of the executions edge.
	Executions []*Execution `json:"executions,omitempty"`
	// CapabilityOverrides holds the value of the capability_overrides edge.
	CapabilityOverrides []*CapabilityOverride `json:"capability_overrides,omitempty"`
	// ModelConfigs holds the value of the model_configs edge.
	ModelConfigs []*ModelConfig `json:"model_configs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentEdges) ParentOrErr() (*Agent, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// ChildrenOrErr returns the Children value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) ChildrenOrErr() ([]*Agent, error) {
	if e.loadedTypes[1] {
		return e.Children, nil
	}
	return nil, &NotLoadedError{edge: "children"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[2] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// ExecutionsOrErr returns the Executions value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) ExecutionsOrErr() ([]*Execution, error) {
	if e.loadedTypes[3] {
		return e.Executions, nil
	}
	return nil, &NotLoadedError{edge: "executions"}
}

// CapabilityOverridesOrErr returns the CapabilityOverrides value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) CapabilityOverridesOrErr() ([]*CapabilityOverride, error) {
	if e.loadedTypes[4] {
		return e.CapabilityOverrides, nil
	}
	return nil, &NotLoadedError{edge: "capability_overrides"}
}

// ModelConfigsOrErr returns the ModelConfigs value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) ModelConfigsOrErr() ([]*ModelConfig, error) {
	if e.loadedTypes[5] {
		return e.ModelConfigs, nil
	}
	return nil, &NotLoadedError{edge: "model_configs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Agent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agent.FieldPersistent:
			values[i] = new(sql.NullBool)
		case agent.FieldRecentViolations:
			values[i] = new(sql.NullInt64)
		case agent.FieldID, agent.FieldTier, agent.FieldParentID, agent.FieldStatus, agent.FieldEthos, agent.FieldPreferredConfigID, agent.FieldSavedConfigID:
			values[i] = new(sql.NullString)
		case agent.FieldLastHeartbeatAt, agent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Agent fields.
func (a *Agent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				a.ID = value.String
			}
		case agent.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				a.Tier = agent.Tier(value.String)
			}
		case agent.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				a.ParentID = value.String
			}
		case agent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				a.Status = agent.Status(value.String)
			}
		case agent.FieldPersistent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field persistent", values[i])
			} else if value.Valid {
				a.Persistent = value.Bool
			}
		case agent.FieldEthos:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ethos", values[i])
			} else if value.Valid {
				a.Ethos = value.String
			}
		case agent.FieldPreferredConfigID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_config_id", values[i])
			} else if value.Valid {
				a.PreferredConfigID = new(string)
				*a.PreferredConfigID = value.String
			}
		case agent.FieldSavedConfigID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field saved_config_id", values[i])
			} else if value.Valid {
				a.SavedConfigID = new(string)
				*a.SavedConfigID = value.String
			}
		case agent.FieldRecentViolations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recent_violations", values[i])
			} else if value.Valid {
				a.RecentViolations = int(value.Int64)
			}
		case agent.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				a.LastHeartbeatAt = new(time.Time)
				*a.LastHeartbeatAt = value.Time
			}
		case agent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				a.CreatedAt = value.Time
			}
		default:
			a.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Agent.
// This includes values selected through modifiers, order, etc.
func (a *Agent) Value(name string) (ent.Value, error) {
	return a.selectValues.Get(name)
}

// QueryParent queries the "parent" edge of the Agent entity.
func (a *Agent) QueryParent() *AgentQuery {
	return NewAgentClient(a.config).QueryParent(a)
}

// QueryChildren queries the "children" edge of the Agent entity.
func (a *Agent) QueryChildren() *AgentQuery {
	return NewAgentClient(a.config).QueryChildren(a)
}

// QueryTasks queries the "tasks" edge of the Agent entity.
func (a *Agent) QueryTasks() *TaskQuery {
	return NewAgentClient(a.config).QueryTasks(a)
}

// QueryExecutions queries the "executions" edge of the Agent entity.
func (a *Agent) QueryExecutions() *ExecutionQuery {
	return NewAgentClient(a.config).QueryExecutions(a)
}

// QueryCapabilityOverrides queries the "capability_overrides" edge of the Agent entity.
func (a *Agent) QueryCapabilityOverrides() *CapabilityOverrideQuery {
	return NewAgentClient(a.config).QueryCapabilityOverrides(a)
}

// QueryModelConfigs queries the "model_configs" edge of the Agent entity.
func (a *Agent) QueryModelConfigs() *ModelConfigQuery {
	return NewAgentClient(a.config).QueryModelConfigs(a)
}

// Update returns a builder for updating this Agent.
// Note that you need to call Agent.Unwrap() before calling this method if this Agent
// was returned from a transaction, and the transaction was committed or rolled back.
func (a *Agent) Update() *AgentUpdateOne {
	return NewAgentClient(a.config).UpdateOne(a)
}

// Unwrap unwraps the Agent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (a *Agent) Unwrap() *Agent {
	_tx, ok := a.config.driver.(*txDriver)
	if !ok {
		panic("ent: Agent is not a transactional entity")
	}
	a.config.driver = _tx.drv
	return a
}

// String implements the fmt.Stringer.
func (a *Agent) String() string {
	var builder strings.Builder
	builder.WriteString("Agent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", a.ID))
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", a.Tier))
	builder.WriteString(", ")
	builder.WriteString("parent_id=")
	builder.WriteString(a.ParentID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", a.Status))
	builder.WriteString(", ")
	builder.WriteString("persistent=")
	builder.WriteString(fmt.Sprintf("%v", a.Persistent))
	builder.WriteString(", ")
	builder.WriteString("ethos=")
	builder.WriteString(a.Ethos)
	builder.WriteString(", ")
	if v := a.PreferredConfigID; v != nil {
		builder.WriteString("preferred_config_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := a.SavedConfigID; v != nil {
		builder.WriteString("saved_config_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("recent_violations=")
	builder.WriteString(fmt.Sprintf("%v", a.RecentViolations))
	builder.WriteString(", ")
	if v := a.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(a.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Agents is a parsable slice of Agent.
type Agents []*Agent
