// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arjunm/violino/ent/practiceevent"
	"github.com/arjunm/violino/ent/predicate"
	"github.com/arjunm/violino/ent/snapshot"
	"github.com/arjunm/violino/ent/streakevent"
	"github.com/arjunm/violino/ent/xpevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypePracticeEvent = "PracticeEvent"
	TypeSnapshot      = "Snapshot"
	TypeStreakEvent   = "StreakEvent"
	TypeXPEvent       = "XPEvent"
)

// PracticeEventMutation represents an operation that mutates the PracticeEvent nodes in the graph.
type PracticeEventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	sequence        *int64
	addsequence     *int64
	timestamp       *time.Time
	song_id         *string
	score           *float64
	addscore        *float64
	xp_earned       *int
	addxp_earned    *int
	new_song        *bool
	streak_bonus    *int
	addstreak_bonus *int
	three_star      *bool
	session_id      *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*PracticeEvent, error)
	predicates      []predicate.PracticeEvent
}

var _ ent.Mutation = (*PracticeEventMutation)(nil)

// practiceeventOption allows management of the mutation configuration using functional options.
type practiceeventOption func(*PracticeEventMutation)

// newPracticeEventMutation creates new mutation for the PracticeEvent entity.
func newPracticeEventMutation(c config, op Op, opts ...practiceeventOption) *PracticeEventMutation {
	m := &PracticeEventMutation{
		config:        c,
		op:            op,
		typ:           TypePracticeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeEventID sets the ID field of the mutation.
func withPracticeEventID(id int) practiceeventOption {
	return func(m *PracticeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PracticeEvent
		)
		m.oldValue = func(ctx context.Context) (*PracticeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PracticeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPracticeEvent sets the old PracticeEvent of the mutation.
func withPracticeEvent(node *PracticeEvent) practiceeventOption {
	return func(m *PracticeEventMutation) {
		m.oldValue = func(context.Context) (*PracticeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PracticeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *PracticeEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PracticeEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PracticeEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PracticeEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PracticeEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PracticeEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PracticeEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PracticeEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSongID sets the "song_id" field.
func (m *PracticeEventMutation) SetSongID(s string) {
	m.song_id = &s
}

// SongID returns the value of the "song_id" field in the mutation.
func (m *PracticeEventMutation) SongID() (r string, exists bool) {
	v := m.song_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSongID returns the old "song_id" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldSongID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSongID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSongID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSongID: %w", err)
	}
	return oldValue.SongID, nil
}

// ResetSongID resets all changes to the "song_id" field.
func (m *PracticeEventMutation) ResetSongID() {
	m.song_id = nil
}

// SetScore sets the "score" field.
func (m *PracticeEventMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *PracticeEventMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *PracticeEventMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *PracticeEventMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *PracticeEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetXpEarned sets the "xp_earned" field.
func (m *PracticeEventMutation) SetXpEarned(i int) {
	m.xp_earned = &i
	m.addxp_earned = nil
}

// XpEarned returns the value of the "xp_earned" field in the mutation.
func (m *PracticeEventMutation) XpEarned() (r int, exists bool) {
	v := m.xp_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldXpEarned returns the old "xp_earned" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldXpEarned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXpEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXpEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXpEarned: %w", err)
	}
	return oldValue.XpEarned, nil
}

// AddXpEarned adds i to the "xp_earned" field.
func (m *PracticeEventMutation) AddXpEarned(i int) {
	if m.addxp_earned != nil {
		*m.addxp_earned += i
	} else {
		m.addxp_earned = &i
	}
}

// AddedXpEarned returns the value that was added to the "xp_earned" field in this mutation.
func (m *PracticeEventMutation) AddedXpEarned() (r int, exists bool) {
	v := m.addxp_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetXpEarned resets all changes to the "xp_earned" field.
func (m *PracticeEventMutation) ResetXpEarned() {
	m.xp_earned = nil
	m.addxp_earned = nil
}

// SetNewSong sets the "new_song" field.
func (m *PracticeEventMutation) SetNewSong(b bool) {
	m.new_song = &b
}

// NewSong returns the value of the "new_song" field in the mutation.
func (m *PracticeEventMutation) NewSong() (r bool, exists bool) {
	v := m.new_song
	if v == nil {
		return
	}
	return *v, true
}

// OldNewSong returns the old "new_song" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldNewSong(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewSong is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewSong requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewSong: %w", err)
	}
	return oldValue.NewSong, nil
}

// ResetNewSong resets all changes to the "new_song" field.
func (m *PracticeEventMutation) ResetNewSong() {
	m.new_song = nil
}

// SetStreakBonus sets the "streak_bonus" field.
func (m *PracticeEventMutation) SetStreakBonus(i int) {
	m.streak_bonus = &i
	m.addstreak_bonus = nil
}

// StreakBonus returns the value of the "streak_bonus" field in the mutation.
func (m *PracticeEventMutation) StreakBonus() (r int, exists bool) {
	v := m.streak_bonus
	if v == nil {
		return
	}
	return *v, true
}

// OldStreakBonus returns the old "streak_bonus" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldStreakBonus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreakBonus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreakBonus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreakBonus: %w", err)
	}
	return oldValue.StreakBonus, nil
}

// AddStreakBonus adds i to the "streak_bonus" field.
func (m *PracticeEventMutation) AddStreakBonus(i int) {
	if m.addstreak_bonus != nil {
		*m.addstreak_bonus += i
	} else {
		m.addstreak_bonus = &i
	}
}

// AddedStreakBonus returns the value that was added to the "streak_bonus" field in this mutation.
func (m *PracticeEventMutation) AddedStreakBonus() (r int, exists bool) {
	v := m.addstreak_bonus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreakBonus resets all changes to the "streak_bonus" field.
func (m *PracticeEventMutation) ResetStreakBonus() {
	m.streak_bonus = nil
	m.addstreak_bonus = nil
}

// SetThreeStar sets the "three_star" field.
func (m *PracticeEventMutation) SetThreeStar(b bool) {
	m.three_star = &b
}

// ThreeStar returns the value of the "three_star" field in the mutation.
func (m *PracticeEventMutation) ThreeStar() (r bool, exists bool) {
	v := m.three_star
	if v == nil {
		return
	}
	return *v, true
}

// OldThreeStar returns the old "three_star" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldThreeStar(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreeStar is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreeStar requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreeStar: %w", err)
	}
	return oldValue.ThreeStar, nil
}

// ResetThreeStar resets all changes to the "three_star" field.
func (m *PracticeEventMutation) ResetThreeStar() {
	m.three_star = nil
}

// SetSessionID sets the "session_id" field.
func (m *PracticeEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PracticeEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PracticeEventMutation) ResetSessionID() {
	m.session_id = nil
}

// Where appends a list predicates to the PracticeEventMutation builder.
func (m *PracticeEventMutation) Where(ps ...predicate.PracticeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PracticeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PracticeEvent).
func (m *PracticeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, practiceevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, practiceevent.FieldTimestamp)
	}
	if m.song_id != nil {
		fields = append(fields, practiceevent.FieldSongID)
	}
	if m.score != nil {
		fields = append(fields, practiceevent.FieldScore)
	}
	if m.xp_earned != nil {
		fields = append(fields, practiceevent.FieldXpEarned)
	}
	if m.new_song != nil {
		fields = append(fields, practiceevent.FieldNewSong)
	}
	if m.streak_bonus != nil {
		fields = append(fields, practiceevent.FieldStreakBonus)
	}
	if m.three_star != nil {
		fields = append(fields, practiceevent.FieldThreeStar)
	}
	if m.session_id != nil {
		fields = append(fields, practiceevent.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practiceevent.FieldSequence:
		return m.Sequence()
	case practiceevent.FieldTimestamp:
		return m.Timestamp()
	case practiceevent.FieldSongID:
		return m.SongID()
	case practiceevent.FieldScore:
		return m.Score()
	case practiceevent.FieldXpEarned:
		return m.XpEarned()
	case practiceevent.FieldNewSong:
		return m.NewSong()
	case practiceevent.FieldStreakBonus:
		return m.StreakBonus()
	case practiceevent.FieldThreeStar:
		return m.ThreeStar()
	case practiceevent.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practiceevent.FieldSequence:
		return m.OldSequence(ctx)
	case practiceevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case practiceevent.FieldSongID:
		return m.OldSongID(ctx)
	case practiceevent.FieldScore:
		return m.OldScore(ctx)
	case practiceevent.FieldXpEarned:
		return m.OldXpEarned(ctx)
	case practiceevent.FieldNewSong:
		return m.OldNewSong(ctx)
	case practiceevent.FieldStreakBonus:
		return m.OldStreakBonus(ctx)
	case practiceevent.FieldThreeStar:
		return m.OldThreeStar(ctx)
	case practiceevent.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown PracticeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practiceevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case practiceevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case practiceevent.FieldSongID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSongID(v)
		return nil
	case practiceevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case practiceevent.FieldXpEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXpEarned(v)
		return nil
	case practiceevent.FieldNewSong:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewSong(v)
		return nil
	case practiceevent.FieldStreakBonus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreakBonus(v)
		return nil
	case practiceevent.FieldThreeStar:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreeStar(v)
		return nil
	case practiceevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, practiceevent.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, practiceevent.FieldScore)
	}
	if m.addxp_earned != nil {
		fields = append(fields, practiceevent.FieldXpEarned)
	}
	if m.addstreak_bonus != nil {
		fields = append(fields, practiceevent.FieldStreakBonus)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case practiceevent.FieldSequence:
		return m.AddedSequence()
	case practiceevent.FieldScore:
		return m.AddedScore()
	case practiceevent.FieldXpEarned:
		return m.AddedXpEarned()
	case practiceevent.FieldStreakBonus:
		return m.AddedStreakBonus()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case practiceevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case practiceevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case practiceevent.FieldXpEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXpEarned(v)
		return nil
	case practiceevent.FieldStreakBonus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreakBonus(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PracticeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeEventMutation) ResetField(name string) error {
	switch name {
	case practiceevent.FieldSequence:
		m.ResetSequence()
		return nil
	case practiceevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case practiceevent.FieldSongID:
		m.ResetSongID()
		return nil
	case practiceevent.FieldScore:
		m.ResetScore()
		return nil
	case practiceevent.FieldXpEarned:
		m.ResetXpEarned()
		return nil
	case practiceevent.FieldNewSong:
		m.ResetNewSong()
		return nil
	case practiceevent.FieldStreakBonus:
		m.ResetStreakBonus()
		return nil
	case practiceevent.FieldThreeStar:
		m.ResetThreeStar()
		return nil
	case practiceevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PracticeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PracticeEvent edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Snapshot, error)
	predicates    []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id int) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *SnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *SnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.sequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, snapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, snapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.Sequence()
	case snapshot.FieldTimestamp:
		return m.Timestamp()
	case snapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldSequence:
		return m.OldSequence(ctx)
	case snapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case snapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case snapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case snapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case snapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case snapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Snapshot edge %s", name)
}

// StreakEventMutation represents an operation that mutates the StreakEvent nodes in the graph.
type StreakEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	action         *string
	streak_days    *int
	addstreak_days *int
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*StreakEvent, error)
	predicates     []predicate.StreakEvent
}

var _ ent.Mutation = (*StreakEventMutation)(nil)

// streakeventOption allows management of the mutation configuration using functional options.
type streakeventOption func(*StreakEventMutation)

// newStreakEventMutation creates new mutation for the StreakEvent entity.
func newStreakEventMutation(c config, op Op, opts ...streakeventOption) *StreakEventMutation {
	m := &StreakEventMutation{
		config:        c,
		op:            op,
		typ:           TypeStreakEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStreakEventID sets the ID field of the mutation.
func withStreakEventID(id int) streakeventOption {
	return func(m *StreakEventMutation) {
		var (
			err   error
			once  sync.Once
			value *StreakEvent
		)
		m.oldValue = func(ctx context.Context) (*StreakEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StreakEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStreakEvent sets the old StreakEvent of the mutation.
func withStreakEvent(node *StreakEvent) streakeventOption {
	return func(m *StreakEventMutation) {
		m.oldValue = func(context.Context) (*StreakEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StreakEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StreakEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StreakEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StreakEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StreakEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *StreakEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *StreakEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the StreakEvent entity.
// If the StreakEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *StreakEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *StreakEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *StreakEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *StreakEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *StreakEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the StreakEvent entity.
// If the StreakEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *StreakEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAction sets the "action" field.
func (m *StreakEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *StreakEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the StreakEvent entity.
// If the StreakEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *StreakEventMutation) ResetAction() {
	m.action = nil
}

// SetStreakDays sets the "streak_days" field.
func (m *StreakEventMutation) SetStreakDays(i int) {
	m.streak_days = &i
	m.addstreak_days = nil
}

// StreakDays returns the value of the "streak_days" field in the mutation.
func (m *StreakEventMutation) StreakDays() (r int, exists bool) {
	v := m.streak_days
	if v == nil {
		return
	}
	return *v, true
}

// OldStreakDays returns the old "streak_days" field's value of the StreakEvent entity.
// If the StreakEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreakEventMutation) OldStreakDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreakDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreakDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreakDays: %w", err)
	}
	return oldValue.StreakDays, nil
}

// AddStreakDays adds i to the "streak_days" field.
func (m *StreakEventMutation) AddStreakDays(i int) {
	if m.addstreak_days != nil {
		*m.addstreak_days += i
	} else {
		m.addstreak_days = &i
	}
}

// AddedStreakDays returns the value that was added to the "streak_days" field in this mutation.
func (m *StreakEventMutation) AddedStreakDays() (r int, exists bool) {
	v := m.addstreak_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreakDays resets all changes to the "streak_days" field.
func (m *StreakEventMutation) ResetStreakDays() {
	m.streak_days = nil
	m.addstreak_days = nil
}

// Where appends a list predicates to the StreakEventMutation builder.
func (m *StreakEventMutation) Where(ps ...predicate.StreakEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StreakEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StreakEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StreakEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StreakEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StreakEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StreakEvent).
func (m *StreakEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StreakEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.sequence != nil {
		fields = append(fields, streakevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, streakevent.FieldTimestamp)
	}
	if m.action != nil {
		fields = append(fields, streakevent.FieldAction)
	}
	if m.streak_days != nil {
		fields = append(fields, streakevent.FieldStreakDays)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StreakEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case streakevent.FieldSequence:
		return m.Sequence()
	case streakevent.FieldTimestamp:
		return m.Timestamp()
	case streakevent.FieldAction:
		return m.Action()
	case streakevent.FieldStreakDays:
		return m.StreakDays()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StreakEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case streakevent.FieldSequence:
		return m.OldSequence(ctx)
	case streakevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case streakevent.FieldAction:
		return m.OldAction(ctx)
	case streakevent.FieldStreakDays:
		return m.OldStreakDays(ctx)
	}
	return nil, fmt.Errorf("unknown StreakEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StreakEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case streakevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case streakevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case streakevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case streakevent.FieldStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreakDays(v)
		return nil
	}
	return fmt.Errorf("unknown StreakEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StreakEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, streakevent.FieldSequence)
	}
	if m.addstreak_days != nil {
		fields = append(fields, streakevent.FieldStreakDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StreakEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case streakevent.FieldSequence:
		return m.AddedSequence()
	case streakevent.FieldStreakDays:
		return m.AddedStreakDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StreakEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case streakevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case streakevent.FieldStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreakDays(v)
		return nil
	}
	return fmt.Errorf("unknown StreakEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StreakEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StreakEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StreakEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StreakEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StreakEventMutation) ResetField(name string) error {
	switch name {
	case streakevent.FieldSequence:
		m.ResetSequence()
		return nil
	case streakevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case streakevent.FieldAction:
		m.ResetAction()
		return nil
	case streakevent.FieldStreakDays:
		m.ResetStreakDays()
		return nil
	}
	return fmt.Errorf("unknown StreakEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StreakEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StreakEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StreakEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StreakEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StreakEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StreakEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StreakEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StreakEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StreakEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StreakEvent edge %s", name)
}

// XPEventMutation represents an operation that mutates the XPEvent nodes in the graph.
type XPEventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	sequence        *int64
	addsequence     *int64
	timestamp       *time.Time
	amount          *int
	addamount       *int
	reason          *string
	level_before    *int
	addlevel_before *int
	level_after     *int
	addlevel_after  *int
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*XPEvent, error)
	predicates      []predicate.XPEvent
}

var _ ent.Mutation = (*XPEventMutation)(nil)

// xpeventOption allows management of the mutation configuration using functional options.
type xpeventOption func(*XPEventMutation)

// newXPEventMutation creates new mutation for the XPEvent entity.
func newXPEventMutation(c config, op Op, opts ...xpeventOption) *XPEventMutation {
	m := &XPEventMutation{
		config:        c,
		op:            op,
		typ:           TypeXPEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withXPEventID sets the ID field of the mutation.
func withXPEventID(id int) xpeventOption {
	return func(m *XPEventMutation) {
		var (
			err   error
			once  sync.Once
			value *XPEvent
		)
		m.oldValue = func(ctx context.Context) (*XPEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().XPEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withXPEvent sets the old XPEvent of the mutation.
func withXPEvent(node *XPEvent) xpeventOption {
	return func(m *XPEventMutation) {
		m.oldValue = func(context.Context) (*XPEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m XPEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m XPEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *XPEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *XPEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().XPEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *XPEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *XPEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *XPEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *XPEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *XPEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *XPEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *XPEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *XPEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAmount sets the "amount" field.
func (m *XPEventMutation) SetAmount(i int) {
	m.amount = &i
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *XPEventMutation) Amount() (r int, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldAmount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds i to the "amount" field.
func (m *XPEventMutation) AddAmount(i int) {
	if m.addamount != nil {
		*m.addamount += i
	} else {
		m.addamount = &i
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *XPEventMutation) AddedAmount() (r int, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *XPEventMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetReason sets the "reason" field.
func (m *XPEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *XPEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *XPEventMutation) ResetReason() {
	m.reason = nil
}

// SetLevelBefore sets the "level_before" field.
func (m *XPEventMutation) SetLevelBefore(i int) {
	m.level_before = &i
	m.addlevel_before = nil
}

// LevelBefore returns the value of the "level_before" field in the mutation.
func (m *XPEventMutation) LevelBefore() (r int, exists bool) {
	v := m.level_before
	if v == nil {
		return
	}
	return *v, true
}

// OldLevelBefore returns the old "level_before" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldLevelBefore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevelBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevelBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevelBefore: %w", err)
	}
	return oldValue.LevelBefore, nil
}

// AddLevelBefore adds i to the "level_before" field.
func (m *XPEventMutation) AddLevelBefore(i int) {
	if m.addlevel_before != nil {
		*m.addlevel_before += i
	} else {
		m.addlevel_before = &i
	}
}

// AddedLevelBefore returns the value that was added to the "level_before" field in this mutation.
func (m *XPEventMutation) AddedLevelBefore() (r int, exists bool) {
	v := m.addlevel_before
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevelBefore resets all changes to the "level_before" field.
func (m *XPEventMutation) ResetLevelBefore() {
	m.level_before = nil
	m.addlevel_before = nil
}

// SetLevelAfter sets the "level_after" field.
func (m *XPEventMutation) SetLevelAfter(i int) {
	m.level_after = &i
	m.addlevel_after = nil
}

// LevelAfter returns the value of the "level_after" field in the mutation.
func (m *XPEventMutation) LevelAfter() (r int, exists bool) {
	v := m.level_after
	if v == nil {
		return
	}
	return *v, true
}

// OldLevelAfter returns the old "level_after" field's value of the XPEvent entity.
// If the XPEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *XPEventMutation) OldLevelAfter(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevelAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevelAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevelAfter: %w", err)
	}
	return oldValue.LevelAfter, nil
}

// AddLevelAfter adds i to the "level_after" field.
func (m *XPEventMutation) AddLevelAfter(i int) {
	if m.addlevel_after != nil {
		*m.addlevel_after += i
	} else {
		m.addlevel_after = &i
	}
}

// AddedLevelAfter returns the value that was added to the "level_after" field in this mutation.
func (m *XPEventMutation) AddedLevelAfter() (r int, exists bool) {
	v := m.addlevel_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevelAfter resets all changes to the "level_after" field.
func (m *XPEventMutation) ResetLevelAfter() {
	m.level_after = nil
	m.addlevel_after = nil
}

// Where appends a list predicates to the XPEventMutation builder.
func (m *XPEventMutation) Where(ps ...predicate.XPEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the XPEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *XPEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.XPEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *XPEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *XPEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (XPEvent).
func (m *XPEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *XPEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, xpevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, xpevent.FieldTimestamp)
	}
	if m.amount != nil {
		fields = append(fields, xpevent.FieldAmount)
	}
	if m.reason != nil {
		fields = append(fields, xpevent.FieldReason)
	}
	if m.level_before != nil {
		fields = append(fields, xpevent.FieldLevelBefore)
	}
	if m.level_after != nil {
		fields = append(fields, xpevent.FieldLevelAfter)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *XPEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case xpevent.FieldSequence:
		return m.Sequence()
	case xpevent.FieldTimestamp:
		return m.Timestamp()
	case xpevent.FieldAmount:
		return m.Amount()
	case xpevent.FieldReason:
		return m.Reason()
	case xpevent.FieldLevelBefore:
		return m.LevelBefore()
	case xpevent.FieldLevelAfter:
		return m.LevelAfter()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *XPEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case xpevent.FieldSequence:
		return m.OldSequence(ctx)
	case xpevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case xpevent.FieldAmount:
		return m.OldAmount(ctx)
	case xpevent.FieldReason:
		return m.OldReason(ctx)
	case xpevent.FieldLevelBefore:
		return m.OldLevelBefore(ctx)
	case xpevent.FieldLevelAfter:
		return m.OldLevelAfter(ctx)
	}
	return nil, fmt.Errorf("unknown XPEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *XPEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case xpevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case xpevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case xpevent.FieldAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case xpevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case xpevent.FieldLevelBefore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevelBefore(v)
		return nil
	case xpevent.FieldLevelAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevelAfter(v)
		return nil
	}
	return fmt.Errorf("unknown XPEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *XPEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, xpevent.FieldSequence)
	}
	if m.addamount != nil {
		fields = append(fields, xpevent.FieldAmount)
	}
	if m.addlevel_before != nil {
		fields = append(fields, xpevent.FieldLevelBefore)
	}
	if m.addlevel_after != nil {
		fields = append(fields, xpevent.FieldLevelAfter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *XPEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case xpevent.FieldSequence:
		return m.AddedSequence()
	case xpevent.FieldAmount:
		return m.AddedAmount()
	case xpevent.FieldLevelBefore:
		return m.AddedLevelBefore()
	case xpevent.FieldLevelAfter:
		return m.AddedLevelAfter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *XPEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case xpevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case xpevent.FieldAmount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case xpevent.FieldLevelBefore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevelBefore(v)
		return nil
	case xpevent.FieldLevelAfter:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevelAfter(v)
		return nil
	}
	return fmt.Errorf("unknown XPEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *XPEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *XPEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *XPEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown XPEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *XPEventMutation) ResetField(name string) error {
	switch name {
	case xpevent.FieldSequence:
		m.ResetSequence()
		return nil
	case xpevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case xpevent.FieldAmount:
		m.ResetAmount()
		return nil
	case xpevent.FieldReason:
		m.ResetReason()
		return nil
	case xpevent.FieldLevelBefore:
		m.ResetLevelBefore()
		return nil
	case xpevent.FieldLevelAfter:
		m.ResetLevelAfter()
		return nil
	}
	return fmt.Errorf("unknown XPEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *XPEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *XPEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *XPEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *XPEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *XPEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *XPEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *XPEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown XPEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *XPEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown XPEvent edge %s", name)
}
