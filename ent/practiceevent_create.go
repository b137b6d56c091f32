// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arjunm/violino/ent/practiceevent"
)

// PracticeEventCreate is the builder for creating a PracticeEvent entity.
type PracticeEventCreate struct {
	config
	mutation *PracticeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PracticeEventCreate) SetSequence(v int64) *PracticeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PracticeEventCreate) SetTimestamp(v time.Time) *PracticeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableTimestamp(v *time.Time) *PracticeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSongID sets the "song_id" field.
func (_c *PracticeEventCreate) SetSongID(v string) *PracticeEventCreate {
	_c.mutation.SetSongID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *PracticeEventCreate) SetScore(v float64) *PracticeEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetXpEarned sets the "xp_earned" field.
func (_c *PracticeEventCreate) SetXpEarned(v int) *PracticeEventCreate {
	_c.mutation.SetXpEarned(v)
	return _c
}

// SetNewSong sets the "new_song" field.
func (_c *PracticeEventCreate) SetNewSong(v bool) *PracticeEventCreate {
	_c.mutation.SetNewSong(v)
	return _c
}

// SetStreakBonus sets the "streak_bonus" field.
func (_c *PracticeEventCreate) SetStreakBonus(v int) *PracticeEventCreate {
	_c.mutation.SetStreakBonus(v)
	return _c
}

// SetThreeStar sets the "three_star" field.
func (_c *PracticeEventCreate) SetThreeStar(v bool) *PracticeEventCreate {
	_c.mutation.SetThreeStar(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PracticeEventCreate) SetSessionID(v string) *PracticeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_c *PracticeEventCreate) Mutation() *PracticeEventMutation {
	return _c.mutation
}

// Save creates the PracticeEvent in the database.
func (_c *PracticeEventCreate) Save(ctx context.Context) (*PracticeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeEventCreate) SaveX(ctx context.Context) *PracticeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := practiceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PracticeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PracticeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SongID(); !ok {
		return &ValidationError{Name: "song_id", err: errors.New(`ent: missing required field "PracticeEvent.song_id"`)}
	}
	if v, ok := _c.mutation.SongID(); ok {
		if err := practiceevent.SongIDValidator(v); err != nil {
			return &ValidationError{Name: "song_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.song_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "PracticeEvent.score"`)}
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		return &ValidationError{Name: "xp_earned", err: errors.New(`ent: missing required field "PracticeEvent.xp_earned"`)}
	}
	if v, ok := _c.mutation.XpEarned(); ok {
		if err := practiceevent.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.xp_earned": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NewSong(); !ok {
		return &ValidationError{Name: "new_song", err: errors.New(`ent: missing required field "PracticeEvent.new_song"`)}
	}
	if _, ok := _c.mutation.StreakBonus(); !ok {
		return &ValidationError{Name: "streak_bonus", err: errors.New(`ent: missing required field "PracticeEvent.streak_bonus"`)}
	}
	if v, ok := _c.mutation.StreakBonus(); ok {
		if err := practiceevent.StreakBonusValidator(v); err != nil {
			return &ValidationError{Name: "streak_bonus", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.streak_bonus": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ThreeStar(); !ok {
		return &ValidationError{Name: "three_star", err: errors.New(`ent: missing required field "PracticeEvent.three_star"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PracticeEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := practiceevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_c *PracticeEventCreate) sqlSave(ctx context.Context) (*PracticeEvent, error) {
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

func (_c *PracticeEventCreate) createSpec() (*PracticeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practiceevent.Table, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(practiceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(practiceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SongID(); ok {
		_spec.SetField(practiceevent.FieldSongID, field.TypeString, value)
		_node.SongID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(practiceevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.XpEarned(); ok {
		_spec.SetField(practiceevent.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = value
	}
	if value, ok := _c.mutation.NewSong(); ok {
		_spec.SetField(practiceevent.FieldNewSong, field.TypeBool, value)
		_node.NewSong = value
	}
	if value, ok := _c.mutation.StreakBonus(); ok {
		_spec.SetField(practiceevent.FieldStreakBonus, field.TypeInt, value)
		_node.StreakBonus = value
	}
	if value, ok := _c.mutation.ThreeStar(); ok {
		_spec.SetField(practiceevent.FieldThreeStar, field.TypeBool, value)
		_node.ThreeStar = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(practiceevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// PracticeEventCreateBulk is the builder for creating many PracticeEvent entities in bulk.
type PracticeEventCreateBulk struct {
	config
	err      error
	builders []*PracticeEventCreate
}

// Save creates the PracticeEvent entities in the database.
func (_c *PracticeEventCreateBulk) Save(ctx context.Context) ([]*PracticeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeEventMutation)
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
func (_c *PracticeEventCreateBulk) SaveX(ctx context.Context) []*PracticeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
