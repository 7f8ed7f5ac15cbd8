// Package store keeps an ordered record collection in memory and
// persists the whole collection as one JSON blob under a single key on
// every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Record is anything the store can hold: it exposes its id and can
// produce a copy of itself carrying a different id.
type Record[T any] interface {
	RecordID() string
	WithRecordID(id string) T
}

// StorageError describes a failed load or save. The store never
// returns it to callers; it is logged and passed to the error hook.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

type options struct {
	logger  *slog.Logger
	newID   func() string
	onError func(*StorageError)
}

type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithIDFunc overrides id generation for records added without one.
// fn must not repeat ids.
func WithIDFunc(fn func() string) Option {
	return func(o *options) { o.newID = fn }
}

// WithErrorHook is called for every swallowed StorageError.
func WithErrorHook(fn func(*StorageError)) Option {
	return func(o *options) { o.onError = fn }
}

// Store owns the collection. Readers get copies; all mutations go
// through Add, Update and Remove, each followed by a full save.
type Store[T Record[T]] struct {
	kv   KV
	key  string
	opts options

	// mu is held across mutation and save so saves land in order.
	mu      sync.Mutex
	records []T

	subMu   sync.Mutex
	subs    map[int]chan struct{}
	nextSub int
}

func New[T Record[T]](kv KV, key string, opts ...Option) *Store[T] {
	o := options{
		logger: slog.Default(),
		newID:  func() string { return uuid.New().String() },
	}
	for _, fn := range opts {
		fn(&o)
	}
	return &Store[T]{kv: kv, key: key, opts: o, subs: make(map[int]chan struct{})}
}

// Load replaces the in-memory collection with the persisted one. A
// missing key, a read failure or a malformed blob all leave the store
// empty.
func (s *Store[T]) Load(ctx context.Context) {
	s.mu.Lock()
	s.records = s.read(ctx)
	n := len(s.records)
	s.mu.Unlock()

	s.opts.logger.Debug("store loaded", "key", s.key, "count", n)
	s.notify()
}

func (s *Store[T]) read(ctx context.Context) []T {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		s.fail("load", err)
		return nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		s.fail("decode", err)
		return nil
	}
	return out
}

// Add appends rec, assigning a fresh id when it has none or when its
// id is already taken, and returns the stored copy.
func (s *Store[T]) Add(ctx context.Context, rec T) T {
	s.mu.Lock()
	for rec.RecordID() == "" || s.index(rec.RecordID()) >= 0 {
		rec = rec.WithRecordID(s.opts.newID())
	}
	s.records = append(s.records, rec)
	s.save(ctx)
	s.mu.Unlock()

	s.notify()
	return rec
}

// Update replaces the record with rec's id. It reports false and does
// nothing when no such record exists.
func (s *Store[T]) Update(ctx context.Context, rec T) bool {
	s.mu.Lock()
	i := s.index(rec.RecordID())
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.records[i] = rec
	s.save(ctx)
	s.mu.Unlock()

	s.notify()
	return true
}

// Remove deletes the record with the given id and reports whether one
// was found. The collection is saved either way.
func (s *Store[T]) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := s.index(id)
	if i >= 0 {
		s.records = slices.Delete(s.records, i, i+1)
	}
	s.save(ctx)
	s.mu.Unlock()

	s.notify()
	return i >= 0
}

// List returns the records in insertion order.
func (s *Store[T]) List() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.records)
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		return s.records[i], true
	}
	var zero T
	return zero, false
}

// Subscribe returns a channel that receives a value after every change
// to the collection. Notifications coalesce: a slow reader sees one
// pending signal, not one per change. Call cancel to stop delivery.
func (s *Store[T]) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
	return ch, cancel
}

func (s *Store[T]) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (s *Store[T]) index(id string) int {
	return slices.IndexFunc(s.records, func(r T) bool { return r.RecordID() == id })
}

// save must be called with mu held. The memory copy has already
// changed, so the write ignores caller cancellation.
func (s *Store[T]) save(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	recs := s.records
	if recs == nil {
		recs = []T{}
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		s.fail("encode", err)
		return
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		s.fail("save", err)
	}
}

func (s *Store[T]) fail(op string, err error) {
	se := &StorageError{Op: op, Key: s.key, Err: err}
	s.opts.logger.Warn("storage error ignored", "op", op, "key", s.key, "error", err)
	if s.opts.onError != nil {
		s.opts.onError(se)
	}
}
