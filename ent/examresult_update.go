// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/edugen/tka/ent/examresult"
	"github.com/edugen/tka/ent/predicate"
)

// ExamResultUpdate is the builder for updating ExamResult entities.
type ExamResultUpdate struct {
	config
	hooks    []Hook
	mutation *ExamResultMutation
}

// Where appends a list predicates to the ExamResultUpdate builder.
func (_u *ExamResultUpdate) Where(ps ...predicate.ExamResult) *ExamResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopics sets the "topics" field.
func (_u *ExamResultUpdate) SetTopics(v []string) *ExamResultUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *ExamResultUpdate) AppendTopics(v []string) *ExamResultUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *ExamResultUpdate) ClearTopics() *ExamResultUpdate {
	_u.mutation.ClearTopics()
	return _u
}

// Mutation returns the ExamResultMutation object of the builder.
func (_u *ExamResultUpdate) Mutation() *ExamResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExamResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(examresult.Table, examresult.Columns, sqlgraph.NewFieldSpec(examresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(examresult.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examresult.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(examresult.FieldTopics, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamResultUpdateOne is the builder for updating a single ExamResult entity.
type ExamResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamResultMutation
}

// SetTopics sets the "topics" field.
func (_u *ExamResultUpdateOne) SetTopics(v []string) *ExamResultUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *ExamResultUpdateOne) AppendTopics(v []string) *ExamResultUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// ClearTopics clears the value of the "topics" field.
func (_u *ExamResultUpdateOne) ClearTopics() *ExamResultUpdateOne {
	_u.mutation.ClearTopics()
	return _u
}

// Mutation returns the ExamResultMutation object of the builder.
func (_u *ExamResultUpdateOne) Mutation() *ExamResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamResultUpdate builder.
func (_u *ExamResultUpdateOne) Where(ps ...predicate.ExamResult) *ExamResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamResultUpdateOne) Select(field string, fields ...string) *ExamResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamResult entity.
func (_u *ExamResultUpdateOne) Save(ctx context.Context) (*ExamResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamResultUpdateOne) SaveX(ctx context.Context) *ExamResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExamResultUpdateOne) sqlSave(ctx context.Context) (_node *ExamResult, err error) {
	_spec := sqlgraph.NewUpdateSpec(examresult.Table, examresult.Columns, sqlgraph.NewFieldSpec(examresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examresult.FieldID)
		for _, f := range fields {
			if !examresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examresult.FieldID {
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
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(examresult.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examresult.FieldTopics, value)
		})
	}
	if _u.mutation.TopicsCleared() {
		_spec.ClearField(examresult.FieldTopics, field.TypeJSON)
	}
	_node = &ExamResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
