package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"
)

// note is a minimal record used to exercise the generic store.
type note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (n note) RecordID() string { return n.ID }

func (n note) WithRecordID(id string) note {
	n.ID = id
	return n
}

const testKey = "@test_notes"

var quiet = WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func sequentialIDs() Option {
	n := 0
	return WithIDFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

func texts(ns []note) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Text
	}
	return out
}

func TestStoreCRUD(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	s := New[note](kv, testKey, quiet, sequentialIDs())
	s.Load(ctx)

	t.Run("Add assigns ids in insertion order", func(t *testing.T) {
		a := s.Add(ctx, note{Text: "a"})
		b := s.Add(ctx, note{Text: "b"})
		if a.ID != "id-1" || b.ID != "id-2" {
			t.Fatalf("ids = %q, %q", a.ID, b.ID)
		}
		if got := texts(s.List()); !slices.Equal(got, []string{"a", "b"}) {
			t.Errorf("list = %v", got)
		}
	})

	t.Run("Add keeps a caller id", func(t *testing.T) {
		c := s.Add(ctx, note{ID: "fixed", Text: "c"})
		if c.ID != "fixed" {
			t.Errorf("id = %q", c.ID)
		}
	})

	t.Run("Update replaces in place", func(t *testing.T) {
		if !s.Update(ctx, note{ID: "id-1", Text: "a2"}) {
			t.Fatal("update reported missing")
		}
		if got := texts(s.List()); !slices.Equal(got, []string{"a2", "b", "c"}) {
			t.Errorf("list = %v", got)
		}
	})

	t.Run("Update of missing id is a no-op", func(t *testing.T) {
		if s.Update(ctx, note{ID: "nope", Text: "x"}) {
			t.Fatal("update reported found")
		}
		if len(s.List()) != 3 {
			t.Errorf("len = %d", len(s.List()))
		}
	})

	t.Run("Get", func(t *testing.T) {
		if n, ok := s.Get("fixed"); !ok || n.Text != "c" {
			t.Errorf("Get = %+v, %v", n, ok)
		}
		if _, ok := s.Get("nope"); ok {
			t.Error("Get found a missing id")
		}
	})

	t.Run("Remove", func(t *testing.T) {
		if !s.Remove(ctx, "id-2") {
			t.Fatal("remove reported missing")
		}
		if s.Remove(ctx, "id-2") {
			t.Fatal("second remove reported found")
		}
		if got := texts(s.List()); !slices.Equal(got, []string{"a2", "c"}) {
			t.Errorf("list = %v", got)
		}
	})

	t.Run("List returns a copy", func(t *testing.T) {
		l := s.List()
		l[0].Text = "mutated"
		if s.List()[0].Text == "mutated" {
			t.Error("store shares its backing array")
		}
	})

	t.Run("persisted blob matches collection", func(t *testing.T) {
		raw, err := kv.Get(ctx, testKey)
		if err != nil {
			t.Fatal(err)
		}
		var persisted []note
		if err := json.Unmarshal(raw, &persisted); err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(persisted, s.List()) {
			t.Errorf("persisted %v, memory %v", persisted, s.List())
		}
	})
}

func TestStoreRemoveLastSavesEmptyArray(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	s := New[note](kv, testKey, quiet)
	n := s.Add(ctx, note{Text: "only"})
	s.Remove(ctx, n.ID)

	raw, err := kv.Get(ctx, testKey)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "[]" {
		t.Errorf("blob = %s, want []", raw)
	}
}

func TestStoreLoad(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		blob    []byte
		set     bool
		want    []string
		wantErr string
	}{
		{"absent key", nil, false, nil, ""},
		{"valid blob", []byte(`[{"id":"1","text":"x"},{"id":"2","text":"y"}]`), true, []string{"x", "y"}, ""},
		{"malformed blob", []byte(`{not json`), true, nil, "decode"},
		{"wrong shape", []byte(`{"id":"1"}`), true, nil, "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemoryKV()
			if tt.set {
				kv.Set(ctx, testKey, tt.blob)
			}
			var hooked []string
			s := New[note](kv, testKey, quiet, WithErrorHook(func(e *StorageError) {
				hooked = append(hooked, e.Op)
			}))
			s.Load(ctx)
			if got := texts(s.List()); !slices.Equal(got, tt.want) {
				t.Errorf("list = %v, want %v", got, tt.want)
			}
			if tt.wantErr == "" && len(hooked) > 0 {
				t.Errorf("unexpected storage errors %v", hooked)
			}
			if tt.wantErr != "" && !slices.Equal(hooked, []string{tt.wantErr}) {
				t.Errorf("storage errors = %v, want [%s]", hooked, tt.wantErr)
			}
		})
	}
}

type failingKV struct {
	err error
}

func (f failingKV) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingKV) Set(context.Context, string, []byte) error   { return f.err }
func (f failingKV) Close() error                                { return nil }

func TestStoreSwallowsBackendErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk on fire")

	var got []*StorageError
	s := New[note](failingKV{err: boom}, testKey, quiet, WithErrorHook(func(e *StorageError) {
		got = append(got, e)
	}))

	s.Load(ctx)
	n := s.Add(ctx, note{Text: "kept in memory"})
	s.Remove(ctx, n.ID)

	if len(got) != 3 {
		t.Fatalf("got %d storage errors, want 3", len(got))
	}
	ops := []string{got[0].Op, got[1].Op, got[2].Op}
	if !slices.Equal(ops, []string{"load", "save", "save"}) {
		t.Errorf("ops = %v", ops)
	}
	for _, e := range got {
		if !errors.Is(e, boom) {
			t.Errorf("%v does not wrap the backend error", e)
		}
		if e.Key != testKey {
			t.Errorf("key = %q", e.Key)
		}
	}
}

func TestStoreSubscribe(t *testing.T) {
	ctx := context.Background()
	s := New[note](NewMemoryKV(), testKey, quiet)

	ch, cancel := s.Subscribe()
	s.Add(ctx, note{Text: "a"})
	s.Add(ctx, note{Text: "b"})

	// two changes coalesce into one pending signal
	select {
	case <-ch:
	default:
		t.Fatal("no notification after Add")
	}
	select {
	case <-ch:
		t.Fatal("notifications did not coalesce")
	default:
	}

	cancel()
	s.Add(ctx, note{Text: "c"})
	select {
	case <-ch:
		t.Fatal("notified after cancel")
	default:
	}
}

func TestStoreConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	s := New[note](kv, testKey, quiet)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(ctx, note{Text: fmt.Sprint(i)})
		}()
	}
	wg.Wait()

	// the last save holds the full collection
	reloaded := New[note](kv, testKey, quiet)
	reloaded.Load(ctx)
	if len(reloaded.List()) != 20 {
		t.Errorf("reloaded %d records, want 20", len(reloaded.List()))
	}
}

func TestStoreAddTakenID(t *testing.T) {
	ctx := context.Background()
	s := New[note](NewMemoryKV(), testKey, quiet, sequentialIDs())

	first := s.Add(ctx, note{ID: "dup", Text: "first"})
	second := s.Add(ctx, note{ID: "dup", Text: "second"})
	if first.ID != "dup" {
		t.Errorf("first id = %q", first.ID)
	}
	if second.ID == "dup" || second.ID == "" {
		t.Fatalf("second id = %q, want a fresh one", second.ID)
	}

	s.Remove(ctx, "dup")
	if got := texts(s.List()); !slices.Equal(got, []string{"second"}) {
		t.Errorf("list = %v", got)
	}
}
