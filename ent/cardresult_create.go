// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anshul/memodeck/ent/cardresult"
	"github.com/anshul/memodeck/ent/studysession"
)

// CardResultCreate is the builder for creating a CardResult entity.
type CardResultCreate struct {
	config
	mutation *CardResultMutation
	hooks    []Hook
}

// SetCardID sets the "card_id" field.
func (_c *CardResultCreate) SetCardID(v int) *CardResultCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *CardResultCreate) SetIsCorrect(v bool) *CardResultCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_c *CardResultCreate) SetTimeSpentMs(v int) *CardResultCreate {
	_c.mutation.SetTimeSpentMs(v)
	return _c
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_c *CardResultCreate) SetNillableTimeSpentMs(v *int) *CardResultCreate {
	if v != nil {
		_c.SetTimeSpentMs(*v)
	}
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *CardResultCreate) SetAnsweredAt(v time.Time) *CardResultCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_c *CardResultCreate) SetNillableAnsweredAt(v *time.Time) *CardResultCreate {
	if v != nil {
		_c.SetAnsweredAt(*v)
	}
	return _c
}

// SetSessionID sets the "session" edge to the StudySession entity by ID.
func (_c *CardResultCreate) SetSessionID(id int) *CardResultCreate {
	_c.mutation.SetSessionID(id)
	return _c
}

// SetSession sets the "session" edge to the StudySession entity.
func (_c *CardResultCreate) SetSession(v *StudySession) *CardResultCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the CardResultMutation object of the builder.
func (_c *CardResultCreate) Mutation() *CardResultMutation {
	return _c.mutation
}

// Save creates the CardResult in the database.
func (_c *CardResultCreate) Save(ctx context.Context) (*CardResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CardResultCreate) SaveX(ctx context.Context) *CardResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CardResultCreate) defaults() {
	if _, ok := _c.mutation.TimeSpentMs(); !ok {
		v := cardresult.DefaultTimeSpentMs
		_c.mutation.SetTimeSpentMs(v)
	}
	if _, ok := _c.mutation.AnsweredAt(); !ok {
		v := cardresult.DefaultAnsweredAt()
		_c.mutation.SetAnsweredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CardResultCreate) check() error {
	if _, ok := _c.mutation.CardID(); !ok {
		return &ValidationError{Name: "card_id", err: errors.New(`ent: missing required field "CardResult.card_id"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "CardResult.is_correct"`)}
	}
	if _, ok := _c.mutation.TimeSpentMs(); !ok {
		return &ValidationError{Name: "time_spent_ms", err: errors.New(`ent: missing required field "CardResult.time_spent_ms"`)}
	}
	if _, ok := _c.mutation.AnsweredAt(); !ok {
		return &ValidationError{Name: "answered_at", err: errors.New(`ent: missing required field "CardResult.answered_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "CardResult.session"`)}
	}
	return nil
}

func (_c *CardResultCreate) sqlSave(ctx context.Context) (*CardResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CardResultCreate) createSpec() (*CardResult, *sqlgraph.CreateSpec) {
	var (
		_node = &CardResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cardresult.Table, sqlgraph.NewFieldSpec(cardresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CardID(); ok {
		_spec.SetField(cardresult.FieldCardID, field.TypeInt, value)
		_node.CardID = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(cardresult.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.TimeSpentMs(); ok {
		_spec.SetField(cardresult.FieldTimeSpentMs, field.TypeInt, value)
		_node.TimeSpentMs = value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(cardresult.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.study_session_results = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CardResultCreateBulk is the builder for creating many CardResult entities in bulk.
type CardResultCreateBulk struct {
	config
	err      error
	builders []*CardResultCreate
}

// Save creates the CardResult entities in the database.
func (_c *CardResultCreateBulk) Save(ctx context.Context) ([]*CardResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CardResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CardResultCreateBulk) SaveX(ctx context.Context) []*CardResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
