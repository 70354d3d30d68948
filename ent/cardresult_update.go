// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anshul/memodeck/ent/cardresult"
	"github.com/anshul/memodeck/ent/predicate"
	"github.com/anshul/memodeck/ent/studysession"
)

// CardResultUpdate is the builder for updating CardResult entities.
type CardResultUpdate struct {
	config
	hooks    []Hook
	mutation *CardResultMutation
}

// Where appends a list predicates to the CardResultUpdate builder.
func (_u *CardResultUpdate) Where(ps ...predicate.CardResult) *CardResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *CardResultUpdate) SetCardID(v int) *CardResultUpdate {
	_u.mutation.ResetCardID()
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *CardResultUpdate) SetNillableCardID(v *int) *CardResultUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// AddCardID adds value to the "card_id" field.
func (_u *CardResultUpdate) AddCardID(v int) *CardResultUpdate {
	_u.mutation.AddCardID(v)
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *CardResultUpdate) SetIsCorrect(v bool) *CardResultUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *CardResultUpdate) SetNillableIsCorrect(v *bool) *CardResultUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *CardResultUpdate) SetTimeSpentMs(v int) *CardResultUpdate {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *CardResultUpdate) SetNillableTimeSpentMs(v *int) *CardResultUpdate {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *CardResultUpdate) AddTimeSpentMs(v int) *CardResultUpdate {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// SetSessionID sets the "session" edge to the StudySession entity by ID.
func (_u *CardResultUpdate) SetSessionID(id int) *CardResultUpdate {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetSession sets the "session" edge to the StudySession entity.
func (_u *CardResultUpdate) SetSession(v *StudySession) *CardResultUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the CardResultMutation object of the builder.
func (_u *CardResultUpdate) Mutation() *CardResultMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the StudySession entity.
func (_u *CardResultUpdate) ClearSession() *CardResultUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardResultUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CardResult.session"`)
	}
	return nil
}

func (_u *CardResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardresult.Table, cardresult.Columns, sqlgraph.NewFieldSpec(cardresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(cardresult.FieldCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardID(); ok {
		_spec.AddField(cardresult.FieldCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(cardresult.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(cardresult.FieldTimeSpentMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(cardresult.FieldTimeSpentMs, field.TypeInt, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardresult.SessionTable,
			Columns: []string{cardresult.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardresult.SessionTable,
			Columns: []string{cardresult.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardResultUpdateOne is the builder for updating a single CardResult entity.
type CardResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardResultMutation
}

// SetCardID sets the "card_id" field.
func (_u *CardResultUpdateOne) SetCardID(v int) *CardResultUpdateOne {
	_u.mutation.ResetCardID()
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *CardResultUpdateOne) SetNillableCardID(v *int) *CardResultUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// AddCardID adds value to the "card_id" field.
func (_u *CardResultUpdateOne) AddCardID(v int) *CardResultUpdateOne {
	_u.mutation.AddCardID(v)
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *CardResultUpdateOne) SetIsCorrect(v bool) *CardResultUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *CardResultUpdateOne) SetNillableIsCorrect(v *bool) *CardResultUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *CardResultUpdateOne) SetTimeSpentMs(v int) *CardResultUpdateOne {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *CardResultUpdateOne) SetNillableTimeSpentMs(v *int) *CardResultUpdateOne {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *CardResultUpdateOne) AddTimeSpentMs(v int) *CardResultUpdateOne {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// SetSessionID sets the "session" edge to the StudySession entity by ID.
func (_u *CardResultUpdateOne) SetSessionID(id int) *CardResultUpdateOne {
	_u.mutation.SetSessionID(id)
	return _u
}

// SetSession sets the "session" edge to the StudySession entity.
func (_u *CardResultUpdateOne) SetSession(v *StudySession) *CardResultUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the CardResultMutation object of the builder.
func (_u *CardResultUpdateOne) Mutation() *CardResultMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the StudySession entity.
func (_u *CardResultUpdateOne) ClearSession() *CardResultUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the CardResultUpdate builder.
func (_u *CardResultUpdateOne) Where(ps ...predicate.CardResult) *CardResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardResultUpdateOne) Select(field string, fields ...string) *CardResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CardResult entity.
func (_u *CardResultUpdateOne) Save(ctx context.Context) (*CardResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardResultUpdateOne) SaveX(ctx context.Context) *CardResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardResultUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CardResult.session"`)
	}
	return nil
}

func (_u *CardResultUpdateOne) sqlSave(ctx context.Context) (_node *CardResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cardresult.Table, cardresult.Columns, sqlgraph.NewFieldSpec(cardresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CardResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cardresult.FieldID)
		for _, f := range fields {
			if !cardresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cardresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(cardresult.FieldCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardID(); ok {
		_spec.AddField(cardresult.FieldCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(cardresult.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(cardresult.FieldTimeSpentMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(cardresult.FieldTimeSpentMs, field.TypeInt, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardresult.SessionTable,
			Columns: []string{cardresult.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cardresult.SessionTable,
			Columns: []string{cardresult.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CardResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cardresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
