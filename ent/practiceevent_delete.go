// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arjunm/violino/ent/practiceevent"
	"github.com/arjunm/violino/ent/predicate"
)

// PracticeEventDelete is the builder for deleting a PracticeEvent entity.
type PracticeEventDelete struct {
	config
	hooks    []Hook
	mutation *PracticeEventMutation
}

// Where appends a list predicates to the PracticeEventDelete builder.
func (_d *PracticeEventDelete) Where(ps ...predicate.PracticeEvent) *PracticeEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PracticeEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PracticeEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PracticeEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(practiceevent.Table, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PracticeEventDeleteOne is the builder for deleting a single PracticeEvent entity.
type PracticeEventDeleteOne struct {
	_d *PracticeEventDelete
}

// Where appends a list predicates to the PracticeEventDelete builder.
func (_d *PracticeEventDeleteOne) Where(ps ...predicate.PracticeEvent) *PracticeEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PracticeEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{practiceevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PracticeEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
