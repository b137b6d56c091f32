// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arjunm/violino/ent/practiceevent"
	"github.com/arjunm/violino/ent/predicate"
)

// PracticeEventUpdate is the builder for updating PracticeEvent entities.
type PracticeEventUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeEventMutation
}

// Where appends a list predicates to the PracticeEventUpdate builder.
func (_u *PracticeEventUpdate) Where(ps ...predicate.PracticeEvent) *PracticeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSongID sets the "song_id" field.
func (_u *PracticeEventUpdate) SetSongID(v string) *PracticeEventUpdate {
	_u.mutation.SetSongID(v)
	return _u
}

// SetNillableSongID sets the "song_id" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableSongID(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetSongID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *PracticeEventUpdate) SetScore(v float64) *PracticeEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableScore(v *float64) *PracticeEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PracticeEventUpdate) AddScore(v float64) *PracticeEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *PracticeEventUpdate) SetXpEarned(v int) *PracticeEventUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableXpEarned(v *int) *PracticeEventUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *PracticeEventUpdate) AddXpEarned(v int) *PracticeEventUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetNewSong sets the "new_song" field.
func (_u *PracticeEventUpdate) SetNewSong(v bool) *PracticeEventUpdate {
	_u.mutation.SetNewSong(v)
	return _u
}

// SetNillableNewSong sets the "new_song" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableNewSong(v *bool) *PracticeEventUpdate {
	if v != nil {
		_u.SetNewSong(*v)
	}
	return _u
}

// SetStreakBonus sets the "streak_bonus" field.
func (_u *PracticeEventUpdate) SetStreakBonus(v int) *PracticeEventUpdate {
	_u.mutation.ResetStreakBonus()
	_u.mutation.SetStreakBonus(v)
	return _u
}

// SetNillableStreakBonus sets the "streak_bonus" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableStreakBonus(v *int) *PracticeEventUpdate {
	if v != nil {
		_u.SetStreakBonus(*v)
	}
	return _u
}

// AddStreakBonus adds value to the "streak_bonus" field.
func (_u *PracticeEventUpdate) AddStreakBonus(v int) *PracticeEventUpdate {
	_u.mutation.AddStreakBonus(v)
	return _u
}

// SetThreeStar sets the "three_star" field.
func (_u *PracticeEventUpdate) SetThreeStar(v bool) *PracticeEventUpdate {
	_u.mutation.SetThreeStar(v)
	return _u
}

// SetNillableThreeStar sets the "three_star" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableThreeStar(v *bool) *PracticeEventUpdate {
	if v != nil {
		_u.SetThreeStar(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PracticeEventUpdate) SetSessionID(v string) *PracticeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableSessionID(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_u *PracticeEventUpdate) Mutation() *PracticeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeEventUpdate) check() error {
	if v, ok := _u.mutation.SongID(); ok {
		if err := practiceevent.SongIDValidator(v); err != nil {
			return &ValidationError{Name: "song_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.song_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpEarned(); ok {
		if err := practiceevent.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.xp_earned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakBonus(); ok {
		if err := practiceevent.StreakBonusValidator(v); err != nil {
			return &ValidationError{Name: "streak_bonus", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.streak_bonus": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := practiceevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceevent.Table, practiceevent.Columns, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SongID(); ok {
		_spec.SetField(practiceevent.FieldSongID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(practiceevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(practiceevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(practiceevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(practiceevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewSong(); ok {
		_spec.SetField(practiceevent.FieldNewSong, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StreakBonus(); ok {
		_spec.SetField(practiceevent.FieldStreakBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakBonus(); ok {
		_spec.AddField(practiceevent.FieldStreakBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ThreeStar(); ok {
		_spec.SetField(practiceevent.FieldThreeStar, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(practiceevent.FieldSessionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeEventUpdateOne is the builder for updating a single PracticeEvent entity.
type PracticeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeEventMutation
}

// SetSongID sets the "song_id" field.
func (_u *PracticeEventUpdateOne) SetSongID(v string) *PracticeEventUpdateOne {
	_u.mutation.SetSongID(v)
	return _u
}

// SetNillableSongID sets the "song_id" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableSongID(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetSongID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *PracticeEventUpdateOne) SetScore(v float64) *PracticeEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableScore(v *float64) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PracticeEventUpdateOne) AddScore(v float64) *PracticeEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *PracticeEventUpdateOne) SetXpEarned(v int) *PracticeEventUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableXpEarned(v *int) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *PracticeEventUpdateOne) AddXpEarned(v int) *PracticeEventUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetNewSong sets the "new_song" field.
func (_u *PracticeEventUpdateOne) SetNewSong(v bool) *PracticeEventUpdateOne {
	_u.mutation.SetNewSong(v)
	return _u
}

// SetNillableNewSong sets the "new_song" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableNewSong(v *bool) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetNewSong(*v)
	}
	return _u
}

// SetStreakBonus sets the "streak_bonus" field.
func (_u *PracticeEventUpdateOne) SetStreakBonus(v int) *PracticeEventUpdateOne {
	_u.mutation.ResetStreakBonus()
	_u.mutation.SetStreakBonus(v)
	return _u
}

// SetNillableStreakBonus sets the "streak_bonus" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableStreakBonus(v *int) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetStreakBonus(*v)
	}
	return _u
}

// AddStreakBonus adds value to the "streak_bonus" field.
func (_u *PracticeEventUpdateOne) AddStreakBonus(v int) *PracticeEventUpdateOne {
	_u.mutation.AddStreakBonus(v)
	return _u
}

// SetThreeStar sets the "three_star" field.
func (_u *PracticeEventUpdateOne) SetThreeStar(v bool) *PracticeEventUpdateOne {
	_u.mutation.SetThreeStar(v)
	return _u
}

// SetNillableThreeStar sets the "three_star" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableThreeStar(v *bool) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetThreeStar(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PracticeEventUpdateOne) SetSessionID(v string) *PracticeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableSessionID(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_u *PracticeEventUpdateOne) Mutation() *PracticeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeEventUpdate builder.
func (_u *PracticeEventUpdateOne) Where(ps ...predicate.PracticeEvent) *PracticeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeEventUpdateOne) Select(field string, fields ...string) *PracticeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeEvent entity.
func (_u *PracticeEventUpdateOne) Save(ctx context.Context) (*PracticeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeEventUpdateOne) SaveX(ctx context.Context) *PracticeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeEventUpdateOne) check() error {
	if v, ok := _u.mutation.SongID(); ok {
		if err := practiceevent.SongIDValidator(v); err != nil {
			return &ValidationError{Name: "song_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.song_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpEarned(); ok {
		if err := practiceevent.XpEarnedValidator(v); err != nil {
			return &ValidationError{Name: "xp_earned", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.xp_earned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakBonus(); ok {
		if err := practiceevent.StreakBonusValidator(v); err != nil {
			return &ValidationError{Name: "streak_bonus", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.streak_bonus": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := practiceevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeEventUpdateOne) sqlSave(ctx context.Context) (_node *PracticeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceevent.Table, practiceevent.Columns, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practiceevent.FieldID)
		for _, f := range fields {
			if !practiceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practiceevent.FieldID {
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
	if value, ok := _u.mutation.SongID(); ok {
		_spec.SetField(practiceevent.FieldSongID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(practiceevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(practiceevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(practiceevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(practiceevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewSong(); ok {
		_spec.SetField(practiceevent.FieldNewSong, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StreakBonus(); ok {
		_spec.SetField(practiceevent.FieldStreakBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakBonus(); ok {
		_spec.AddField(practiceevent.FieldStreakBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ThreeStar(); ok {
		_spec.SetField(practiceevent.FieldThreeStar, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(practiceevent.FieldSessionID, field.TypeString, value)
	}
	_node = &PracticeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
