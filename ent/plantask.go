// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/loopd/ent/phaseartifact"
	"github.com/codeready-toolchain/loopd/ent/plantask"
)

// PlanTask is the model entity for the PlanTask schema.
type PlanTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ArtifactID holds the value of the "artifact_id" field.
	ArtifactID string `json:"artifact_id,omitempty"`
	// StableTaskID holds the value of the "stable_task_id" field.
	StableTaskID string `json:"stable_task_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// AcceptanceCriteria holds the value of the "acceptance_criteria" field.
	AcceptanceCriteria []string `json:"acceptance_criteria,omitempty"`
	// Status holds the value of the "status" field.
	Status plantask.Status `json:"status,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CompletedBy holds the value of the "completed_by" field.
	CompletedBy *plantask.CompletedBy `json:"completed_by,omitempty"`
	// Must carry the head SHA the work landed on
	CompletionEvidence map[string]interface{} `json:"completion_evidence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PlanTaskQuery when eager-loading is set.
	Edges        PlanTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PlanTaskEdges holds the relations/edges for other nodes in the graph.
type PlanTaskEdges struct {
	// Artifact holds the value of the artifact edge.
	Artifact *PhaseArtifact `json:"artifact,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ArtifactOrErr returns the Artifact value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PlanTaskEdges) ArtifactOrErr() (*PhaseArtifact, error) {
	if e.Artifact != nil {
		return e.Artifact, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: phaseartifact.Label}
	}
	return nil, &NotLoadedError{edge: "artifact"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlanTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case plantask.FieldAcceptanceCriteria, plantask.FieldCompletionEvidence:
			values[i] = new([]byte)
		case plantask.FieldID, plantask.FieldArtifactID, plantask.FieldStableTaskID, plantask.FieldTitle, plantask.FieldDescription, plantask.FieldStatus, plantask.FieldCompletedBy:
			values[i] = new(sql.NullString)
		case plantask.FieldCompletedAt, plantask.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlanTask fields.
func (_m *PlanTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case plantask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case plantask.FieldArtifactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_id", values[i])
			} else if value.Valid {
				_m.ArtifactID = value.String
			}
		case plantask.FieldStableTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stable_task_id", values[i])
			} else if value.Valid {
				_m.StableTaskID = value.String
			}
		case plantask.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case plantask.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case plantask.FieldAcceptanceCriteria:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field acceptance_criteria", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AcceptanceCriteria); err != nil {
					return fmt.Errorf("unmarshal field acceptance_criteria: %w", err)
				}
			}
		case plantask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = plantask.Status(value.String)
			}
		case plantask.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case plantask.FieldCompletedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field completed_by", values[i])
			} else if value.Valid {
				_m.CompletedBy = new(plantask.CompletedBy)
				*_m.CompletedBy = plantask.CompletedBy(value.String)
			}
		case plantask.FieldCompletionEvidence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completion_evidence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletionEvidence); err != nil {
					return fmt.Errorf("unmarshal field completion_evidence: %w", err)
				}
			}
		case plantask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlanTask.
// This includes values selected through modifiers, order, etc.
func (_m *PlanTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryArtifact queries the "artifact" edge of the PlanTask entity.
func (_m *PlanTask) QueryArtifact() *PhaseArtifactQuery {
	return NewPlanTaskClient(_m.config).QueryArtifact(_m)
}

// Update returns a builder for updating this PlanTask.
// Note that you need to call PlanTask.Unwrap() before calling this method if this PlanTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlanTask) Update() *PlanTaskUpdateOne {
	return NewPlanTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlanTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlanTask) Unwrap() *PlanTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlanTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlanTask) String() string {
	var builder strings.Builder
	builder.WriteString("PlanTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("artifact_id=")
	builder.WriteString(_m.ArtifactID)
	builder.WriteString(", ")
	builder.WriteString("stable_task_id=")
	builder.WriteString(_m.StableTaskID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("acceptance_criteria=")
	builder.WriteString(fmt.Sprintf("%v", _m.AcceptanceCriteria))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedBy; v != nil {
		builder.WriteString("completed_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("completion_evidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionEvidence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PlanTasks is a parsable slice of PlanTask.
type PlanTasks []*PlanTask
