// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edugen/tka/ent/examsnapshot"
	"github.com/edugen/tka/ent/predicate"
)

// ExamSnapshotUpdate is the builder for updating ExamSnapshot entities.
type ExamSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ExamSnapshotMutation
}

// Where appends a list predicates to the ExamSnapshotUpdate builder.
func (_u *ExamSnapshotUpdate) Where(ps ...predicate.ExamSnapshot) *ExamSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUsername sets the "username" field.
func (_u *ExamSnapshotUpdate) SetUsername(v string) *ExamSnapshotUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ExamSnapshotUpdate) SetNillableUsername(v *string) *ExamSnapshotUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ExamSnapshotUpdate) SetData(v map[string]interface{}) *ExamSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetSavedAt sets the "saved_at" field.
func (_u *ExamSnapshotUpdate) SetSavedAt(v time.Time) *ExamSnapshotUpdate {
	_u.mutation.SetSavedAt(v)
	return _u
}

// Mutation returns the ExamSnapshotMutation object of the builder.
func (_u *ExamSnapshotUpdate) Mutation() *ExamSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamSnapshotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExamSnapshotUpdate) defaults() {
	if _, ok := _u.mutation.SavedAt(); !ok {
		v := examsnapshot.UpdateDefaultSavedAt()
		_u.mutation.SetSavedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamSnapshotUpdate) check() error {
	if v, ok := _u.mutation.Username(); ok {
		if err := examsnapshot.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "ExamSnapshot.username": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examsnapshot.Table, examsnapshot.Columns, sqlgraph.NewFieldSpec(examsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(examsnapshot.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(examsnapshot.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.SavedAt(); ok {
		_spec.SetField(examsnapshot.FieldSavedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamSnapshotUpdateOne is the builder for updating a single ExamSnapshot entity.
type ExamSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamSnapshotMutation
}

// SetUsername sets the "username" field.
func (_u *ExamSnapshotUpdateOne) SetUsername(v string) *ExamSnapshotUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ExamSnapshotUpdateOne) SetNillableUsername(v *string) *ExamSnapshotUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ExamSnapshotUpdateOne) SetData(v map[string]interface{}) *ExamSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetSavedAt sets the "saved_at" field.
func (_u *ExamSnapshotUpdateOne) SetSavedAt(v time.Time) *ExamSnapshotUpdateOne {
	_u.mutation.SetSavedAt(v)
	return _u
}

// Mutation returns the ExamSnapshotMutation object of the builder.
func (_u *ExamSnapshotUpdateOne) Mutation() *ExamSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamSnapshotUpdate builder.
func (_u *ExamSnapshotUpdateOne) Where(ps ...predicate.ExamSnapshot) *ExamSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamSnapshotUpdateOne) Select(field string, fields ...string) *ExamSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamSnapshot entity.
func (_u *ExamSnapshotUpdateOne) Save(ctx context.Context) (*ExamSnapshot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamSnapshotUpdateOne) SaveX(ctx context.Context) *ExamSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExamSnapshotUpdateOne) defaults() {
	if _, ok := _u.mutation.SavedAt(); !ok {
		v := examsnapshot.UpdateDefaultSavedAt()
		_u.mutation.SetSavedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.Username(); ok {
		if err := examsnapshot.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "ExamSnapshot.username": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ExamSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examsnapshot.Table, examsnapshot.Columns, sqlgraph.NewFieldSpec(examsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examsnapshot.FieldID)
		for _, f := range fields {
			if !examsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examsnapshot.FieldID {
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
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(examsnapshot.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(examsnapshot.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.SavedAt(); ok {
		_spec.SetField(examsnapshot.FieldSavedAt, field.TypeTime, value)
	}
	_node = &ExamSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
