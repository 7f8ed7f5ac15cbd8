// Package listview derives the display order and layout of record
// lists. Nothing here is stored; it is recomputed from the current
// snapshot and screen geometry.
package listview

import (
	"iter"
	"slices"
	"time"

	"workshop-scheduler/internal/model"
)

// Sorted yields records in ascending slot order. The sort runs each
// time the sequence is ranged over, on a private copy, so the sequence
// can be restarted and never sees later store changes mid-iteration.
// Records whose slot does not parse come last, in insertion order.
func Sorted(records []model.Appointment, loc *time.Location) iter.Seq[model.Appointment] {
	snapshot := slices.Clone(records)
	return func(yield func(model.Appointment) bool) {
		type keyed struct {
			at time.Time
			ok bool
			a  model.Appointment
		}
		ks := make([]keyed, len(snapshot))
		for i, a := range snapshot {
			at, ok := a.Slot(loc)
			ks[i] = keyed{at: at, ok: ok, a: a}
		}
		slices.SortStableFunc(ks, func(x, y keyed) int {
			switch {
			case x.ok && !y.ok:
				return -1
			case !x.ok && y.ok:
				return 1
			case !x.ok && !y.ok:
				return 0
			}
			return x.at.Compare(y.at)
		})
		for _, k := range ks {
			if !yield(k.a) {
				return
			}
		}
	}
}

// Columns is 2 in landscape (wider than tall) and 1 otherwise.
func Columns(width, height int) int {
	if width > height {
		return 2
	}
	return 1
}

// Rows groups seq into rows of cols items; the last row may be short.
func Rows[T any](seq iter.Seq[T], cols int) [][]T {
	if cols < 1 {
		cols = 1
	}
	var rows [][]T
	var cur []T
	for v := range seq {
		cur = append(cur, v)
		if len(cur) == cols {
			rows = append(rows, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		rows = append(rows, cur)
	}
	return rows
}
