// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agentium/agentium/ent/deliberation"
	"github.com/agentium/agentium/ent/vote"
)

// Vote is the model entity for the Vote schema.
type Vote struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DeliberationID holds the value of the "deliberation_id" field.
	DeliberationID string `json:"deliberation_id,omitempty"`
	// VoterID holds the value of the "voter_id" field.
	VoterID string `json:"voter_id,omitempty"`
	// Choice holds the value of the "choice" field.
	Choice vote.Choice `json:"choice,omitempty"`
	// Rationale holds the value of the "rationale" field.
	Rationale string `json:"rationale,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VoteQuery when eager-loading is set.
	Edges        VoteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VoteEdges holds the relations/edges for other nodes in the graph.
type VoteEdges struct {
	// Deliberation holds the value of the deliberation edge.
	Deliberation *Deliberation `json:"deliberation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DeliberationOrErr returns the Deliberation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VoteEdges) DeliberationOrErr() (*Deliberation, error) {
	if e.Deliberation != nil {
		return e.Deliberation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: deliberation.Label}
	}
	return nil, &NotLoadedError{edge: "deliberation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Vote) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vote.FieldID, vote.FieldDeliberationID, vote.FieldVoterID, vote.FieldChoice, vote.FieldRationale:
			values[i] = new(sql.NullString)
		case vote.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Vote fields.
func (v *Vote) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vote.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				v.ID = value.String
			}
		case vote.FieldDeliberationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deliberation_id", values[i])
			} else if value.Valid {
				v.DeliberationID = value.String
			}
		case vote.FieldVoterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field voter_id", values[i])
			} else if value.Valid {
				v.VoterID = value.String
			}
		case vote.FieldChoice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field choice", values[i])
			} else if value.Valid {
				v.Choice = vote.Choice(value.String)
			}
		case vote.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				v.Rationale = value.String
			}
		case vote.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				v.CreatedAt = value.Time
			}
		default:
			v.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Vote.
// This includes values selected through modifiers, order, etc.
func (v *Vote) Value(name string) (ent.Value, error) {
	return v.selectValues.Get(name)
}

// QueryDeliberation queries the "deliberation" edge of the Vote entity.
func (v *Vote) QueryDeliberation() *DeliberationQuery {
	return NewVoteClient(v.config).QueryDeliberation(v)
}

// Update returns a builder for updating this Vote.
// Note that you need to call Vote.Unwrap() before calling this method if this Vote
// was returned from a transaction, and the transaction was committed or rolled back.
func (v *Vote) Update() *VoteUpdateOne {
	return NewVoteClient(v.config).UpdateOne(v)
}

// Unwrap unwraps the Vote entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (v *Vote) Unwrap() *Vote {
	_tx, ok := v.config.driver.(*txDriver)
	if !ok {
		panic("ent: Vote is not a transactional entity")
	}
	v.config.driver = _tx.drv
	return v
}

// String implements the fmt.Stringer.
func (v *Vote) String() string {
	var builder strings.Builder
	builder.WriteString("Vote(")
	builder.WriteString(fmt.Sprintf("id=%v, ", v.ID))
	builder.WriteString("deliberation_id=")
	builder.WriteString(v.DeliberationID)
	builder.WriteString(", ")
	builder.WriteString("voter_id=")
	builder.WriteString(v.VoterID)
	builder.WriteString(", ")
	builder.WriteString("choice=")
	builder.WriteString(fmt.Sprintf("%v", v.Choice))
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(v.Rationale)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(v.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Votes is a parsable slice of Vote.
type Votes []*Vote
