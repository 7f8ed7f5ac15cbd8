package listview

import (
	"slices"
	"testing"
	"time"

	"workshop-scheduler/internal/model"
)

func ids(as []model.Appointment) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.ID
	}
	return out
}

func TestSorted(t *testing.T) {
	records := []model.Appointment{
		{ID: "late", Date: "2025-09-05", Time: "14:30"},
		{ID: "bad", Date: "someday", Time: "noon"},
		{ID: "early", Date: "2025-09-01", Time: "09:00"},
		{ID: "tie-a", Date: "2025-09-03", Time: "10:00"},
		{ID: "tie-b", Date: "2025-09-03", Time: "10:00"},
	}
	got := ids(slices.Collect(Sorted(records, time.UTC)))
	want := []string{"early", "tie-a", "tie-b", "late", "bad"}
	if !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if records[0].ID != "late" {
		t.Error("input slice was reordered")
	}
}

func TestSortedRestartable(t *testing.T) {
	records := []model.Appointment{
		{ID: "b", Date: "2025-09-05", Time: "14:30"},
		{ID: "a", Date: "2025-09-01", Time: "09:00"},
	}
	seq := Sorted(records, time.UTC)

	// caller changes after the sequence was built are not seen
	records[0].ID = "changed"

	first := ids(slices.Collect(seq))
	second := ids(slices.Collect(seq))
	if !slices.Equal(first, second) || !slices.Equal(first, []string{"a", "b"}) {
		t.Errorf("first %v, second %v", first, second)
	}
}

func TestSortedEarlyStop(t *testing.T) {
	records := []model.Appointment{
		{ID: "b", Date: "2025-09-05", Time: "14:30"},
		{ID: "a", Date: "2025-09-01", Time: "09:00"},
	}
	var seen []string
	for a := range Sorted(records, time.UTC) {
		seen = append(seen, a.ID)
		break
	}
	if !slices.Equal(seen, []string{"a"}) {
		t.Errorf("seen = %v", seen)
	}
}

func TestSortedEmpty(t *testing.T) {
	if got := slices.Collect(Sorted(nil, time.UTC)); len(got) != 0 {
		t.Errorf("got %v", got)
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{800, 400, 2},
		{400, 800, 1},
		{500, 500, 1},
		{0, 0, 1},
	}
	for _, tt := range tests {
		if got := Columns(tt.w, tt.h); got != tt.want {
			t.Errorf("Columns(%d, %d) = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRows(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		cols  int
		want  [][]int
	}{
		{"two columns odd", []int{1, 2, 3}, 2, [][]int{{1, 2}, {3}}},
		{"one column", []int{1, 2}, 1, [][]int{{1}, {2}}},
		{"zero cols treated as one", []int{1}, 0, [][]int{{1}}},
		{"empty", nil, 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rows(slices.Values(tt.items), tt.cols)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if !slices.Equal(got[i], tt.want[i]) {
					t.Errorf("row %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
