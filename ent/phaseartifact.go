// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/loopd/ent/loop"
	"github.com/codeready-toolchain/loopd/ent/phaseartifact"
)

// PhaseArtifact is the model entity for the PhaseArtifact schema.
type PhaseArtifact struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// LoopID holds the value of the "loop_id" field.
	LoopID string `json:"loop_id,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase phaseartifact.Phase `json:"phase,omitempty"`
	// ArtifactType holds the value of the "artifact_type" field.
	ArtifactType string `json:"artifact_type,omitempty"`
	// Nil only for planning and pr_linking artifacts
	HeadSha *string `json:"head_sha,omitempty"`
	// LoopVersion holds the value of the "loop_version" field.
	LoopVersion int `json:"loop_version,omitempty"`
	// Status holds the value of the "status" field.
	Status phaseartifact.Status `json:"status,omitempty"`
	// GeneratedBy holds the value of the "generated_by" field.
	GeneratedBy string `json:"generated_by,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// ApprovedByUserID holds the value of the "approved_by_user_id" field.
	ApprovedByUserID *string `json:"approved_by_user_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PhaseArtifactQuery when eager-loading is set.
	Edges        PhaseArtifactEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PhaseArtifactEdges holds the relations/edges for other nodes in the graph.
type PhaseArtifactEdges struct {
	// Loop holds the value of the loop edge.
	Loop *Loop `json:"loop,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*PlanTask `json:"tasks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// LoopOrErr returns the Loop value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PhaseArtifactEdges) LoopOrErr() (*Loop, error) {
	if e.Loop != nil {
		return e.Loop, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: loop.Label}
	}
	return nil, &NotLoadedError{edge: "loop"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e PhaseArtifactEdges) TasksOrErr() ([]*PlanTask, error) {
	if e.loadedTypes[1] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PhaseArtifact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case phaseartifact.FieldPayload:
			values[i] = new([]byte)
		case phaseartifact.FieldLoopVersion:
			values[i] = new(sql.NullInt64)
		case phaseartifact.FieldID, phaseartifact.FieldLoopID, phaseartifact.FieldPhase, phaseartifact.FieldArtifactType, phaseartifact.FieldHeadSha, phaseartifact.FieldStatus, phaseartifact.FieldGeneratedBy, phaseartifact.FieldApprovedByUserID:
			values[i] = new(sql.NullString)
		case phaseartifact.FieldCreatedAt, phaseartifact.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PhaseArtifact fields.
func (_m *PhaseArtifact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case phaseartifact.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case phaseartifact.FieldLoopID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field loop_id", values[i])
			} else if value.Valid {
				_m.LoopID = value.String
			}
		case phaseartifact.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = phaseartifact.Phase(value.String)
			}
		case phaseartifact.FieldArtifactType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_type", values[i])
			} else if value.Valid {
				_m.ArtifactType = value.String
			}
		case phaseartifact.FieldHeadSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field head_sha", values[i])
			} else if value.Valid {
				_m.HeadSha = new(string)
				*_m.HeadSha = value.String
			}
		case phaseartifact.FieldLoopVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field loop_version", values[i])
			} else if value.Valid {
				_m.LoopVersion = int(value.Int64)
			}
		case phaseartifact.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = phaseartifact.Status(value.String)
			}
		case phaseartifact.FieldGeneratedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generated_by", values[i])
			} else if value.Valid {
				_m.GeneratedBy = value.String
			}
		case phaseartifact.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case phaseartifact.FieldApprovedByUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approved_by_user_id", values[i])
			} else if value.Valid {
				_m.ApprovedByUserID = new(string)
				*_m.ApprovedByUserID = value.String
			}
		case phaseartifact.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case phaseartifact.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PhaseArtifact.
// This includes values selected through modifiers, order, etc.
func (_m *PhaseArtifact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLoop queries the "loop" edge of the PhaseArtifact entity.
func (_m *PhaseArtifact) QueryLoop() *LoopQuery {
	return NewPhaseArtifactClient(_m.config).QueryLoop(_m)
}

// QueryTasks queries the "tasks" edge of the PhaseArtifact entity.
func (_m *PhaseArtifact) QueryTasks() *PlanTaskQuery {
	return NewPhaseArtifactClient(_m.config).QueryTasks(_m)
}

// Update returns a builder for updating this PhaseArtifact.
// Note that you need to call PhaseArtifact.Unwrap() before calling this method if this PhaseArtifact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PhaseArtifact) Update() *PhaseArtifactUpdateOne {
	return NewPhaseArtifactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PhaseArtifact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PhaseArtifact) Unwrap() *PhaseArtifact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PhaseArtifact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PhaseArtifact) String() string {
	var builder strings.Builder
	builder.WriteString("PhaseArtifact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("loop_id=")
	builder.WriteString(_m.LoopID)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("artifact_type=")
	builder.WriteString(_m.ArtifactType)
	builder.WriteString(", ")
	if v := _m.HeadSha; v != nil {
		builder.WriteString("head_sha=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("loop_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.LoopVersion))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("generated_by=")
	builder.WriteString(_m.GeneratedBy)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	if v := _m.ApprovedByUserID; v != nil {
		builder.WriteString("approved_by_user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PhaseArtifacts is a parsable slice of PhaseArtifact.
type PhaseArtifacts []*PhaseArtifact
