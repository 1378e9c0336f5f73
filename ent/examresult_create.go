// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edugen/tka/ent/examresult"
)

// ExamResultCreate is the builder for creating a ExamResult entity.
type ExamResultCreate struct {
	config
	mutation *ExamResultMutation
	hooks    []Hook
}

// SetResultID sets the "result_id" field.
func (_c *ExamResultCreate) SetResultID(v string) *ExamResultCreate {
	_c.mutation.SetResultID(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *ExamResultCreate) SetUsername(v string) *ExamResultCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ExamResultCreate) SetScore(v int) *ExamResultCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *ExamResultCreate) SetTotalQuestions(v int) *ExamResultCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *ExamResultCreate) SetCorrectCount(v int) *ExamResultCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetTopics sets the "topics" field.
func (_c *ExamResultCreate) SetTopics(v []string) *ExamResultCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetTakenAt sets the "taken_at" field.
func (_c *ExamResultCreate) SetTakenAt(v time.Time) *ExamResultCreate {
	_c.mutation.SetTakenAt(v)
	return _c
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_c *ExamResultCreate) SetNillableTakenAt(v *time.Time) *ExamResultCreate {
	if v != nil {
		_c.SetTakenAt(*v)
	}
	return _c
}

// Mutation returns the ExamResultMutation object of the builder.
func (_c *ExamResultCreate) Mutation() *ExamResultMutation {
	return _c.mutation
}

// Save creates the ExamResult in the database.
func (_c *ExamResultCreate) Save(ctx context.Context) (*ExamResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamResultCreate) SaveX(ctx context.Context) *ExamResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamResultCreate) defaults() {
	if _, ok := _c.mutation.TakenAt(); !ok {
		v := examresult.DefaultTakenAt()
		_c.mutation.SetTakenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamResultCreate) check() error {
	if _, ok := _c.mutation.ResultID(); !ok {
		return &ValidationError{Name: "result_id", err: errors.New(`ent: missing required field "ExamResult.result_id"`)}
	}
	if v, ok := _c.mutation.ResultID(); ok {
		if err := examresult.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "ExamResult.result_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "ExamResult.username"`)}
	}
	if v, ok := _c.mutation.Username(); ok {
		if err := examresult.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "ExamResult.username": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ExamResult.score"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "ExamResult.total_questions"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "ExamResult.correct_count"`)}
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		return &ValidationError{Name: "taken_at", err: errors.New(`ent: missing required field "ExamResult.taken_at"`)}
	}
	return nil
}

func (_c *ExamResultCreate) sqlSave(ctx context.Context) (*ExamResult, error) {
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

func (_c *ExamResultCreate) createSpec() (*ExamResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examresult.Table, sqlgraph.NewFieldSpec(examresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ResultID(); ok {
		_spec.SetField(examresult.FieldResultID, field.TypeString, value)
		_node.ResultID = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(examresult.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(examresult.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(examresult.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(examresult.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(examresult.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.TakenAt(); ok {
		_spec.SetField(examresult.FieldTakenAt, field.TypeTime, value)
		_node.TakenAt = value
	}
	return _node, _spec
}

// ExamResultCreateBulk is the builder for creating many ExamResult entities in bulk.
type ExamResultCreateBulk struct {
	config
	err      error
	builders []*ExamResultCreate
}

// Save creates the ExamResult entities in the database.
func (_c *ExamResultCreateBulk) Save(ctx context.Context) ([]*ExamResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamResultMutation)
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
func (_c *ExamResultCreateBulk) SaveX(ctx context.Context) []*ExamResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
