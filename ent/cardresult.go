// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anshul/memodeck/ent/cardresult"
	"github.com/anshul/memodeck/ent/studysession"
)

// CardResult is the model entity for the CardResult schema.
type CardResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// The card that was judged. Kept as a plain id rather than an edge so results survive card edits
	CardID int `json:"card_id,omitempty"`
	// IsCorrect holds the value of the "is_correct" field.
	IsCorrect bool `json:"is_correct,omitempty"`
	// Wall-clock delta from card entry to judgment; 0 when not measured
	TimeSpentMs int `json:"time_spent_ms,omitempty"`
	// AnsweredAt holds the value of the "answered_at" field.
	AnsweredAt time.Time `json:"answered_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CardResultQuery when eager-loading is set.
	Edges                 CardResultEdges `json:"edges"`
	study_session_results *int
	selectValues          sql.SelectValues
}

// CardResultEdges holds the relations/edges for other nodes in the graph.
type CardResultEdges struct {
	// Session holds the value of the session edge.
	Session *StudySession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CardResultEdges) SessionOrErr() (*StudySession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: studysession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CardResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cardresult.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case cardresult.FieldID, cardresult.FieldCardID, cardresult.FieldTimeSpentMs:
			values[i] = new(sql.NullInt64)
		case cardresult.FieldAnsweredAt:
			values[i] = new(sql.NullTime)
		case cardresult.ForeignKeys[0]: // study_session_results
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CardResult fields.
func (_m *CardResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cardresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case cardresult.FieldCardID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field card_id", values[i])
			} else if value.Valid {
				_m.CardID = int(value.Int64)
			}
		case cardresult.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = value.Bool
			}
		case cardresult.FieldTimeSpentMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_ms", values[i])
			} else if value.Valid {
				_m.TimeSpentMs = int(value.Int64)
			}
		case cardresult.FieldAnsweredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field answered_at", values[i])
			} else if value.Valid {
				_m.AnsweredAt = value.Time
			}
		case cardresult.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field study_session_results", value)
			} else if value.Valid {
				_m.study_session_results = new(int)
				*_m.study_session_results = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CardResult.
// This includes values selected through modifiers, order, etc.
func (_m *CardResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the CardResult entity.
func (_m *CardResult) QuerySession() *StudySessionQuery {
	return NewCardResultClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this CardResult.
// Note that you need to call CardResult.Unwrap() before calling this method if this CardResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CardResult) Update() *CardResultUpdateOne {
	return NewCardResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CardResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CardResult) Unwrap() *CardResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CardResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CardResult) String() string {
	var builder strings.Builder
	builder.WriteString("CardResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("card_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CardID))
	builder.WriteString(", ")
	builder.WriteString("is_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCorrect))
	builder.WriteString(", ")
	builder.WriteString("time_spent_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentMs))
	builder.WriteString(", ")
	builder.WriteString("answered_at=")
	builder.WriteString(_m.AnsweredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CardResults is a parsable slice of CardResult.
type CardResults []*CardResult
