package nav

import (
	"errors"
	"testing"

	"workshop-scheduler/internal/model"
)

type lookup map[string]model.Appointment

func (l lookup) Get(id string) (model.Appointment, bool) {
	a, ok := l[id]
	return a, ok
}

func TestResolveEdit(t *testing.T) {
	stored := model.Appointment{ID: "1", Name: "Desde store"}
	fallback := model.Appointment{ID: "1", Name: "Desde ruta"}
	orphan := model.Appointment{ID: "9", Name: "Huérfana"}
	records := lookup{"1": stored}

	tests := []struct {
		name    string
		route   Route
		want    string
		wantErr error
	}{
		{"by id", Route{Screen: Edit, ID: "1"}, "Desde store", nil},
		{"store wins over fallback", Route{Screen: Edit, ID: "1", Fallback: &fallback}, "Desde store", nil},
		{"fallback id only", Route{Screen: Edit, Fallback: &fallback}, "Desde store", nil},
		{"fallback when id unknown", Route{Screen: Edit, ID: "9", Fallback: &orphan}, "Huérfana", nil},
		{"nothing", Route{Screen: Edit, ID: "9"}, "", ErrEditTargetMissing},
		{"empty route", Route{Screen: Edit}, "", ErrEditTargetMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveEdit(tt.route, records)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got.Name != tt.want {
				t.Errorf("name = %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestStack(t *testing.T) {
	s := NewStack()
	if s.Current().Screen != Home || s.Depth() != 1 {
		t.Fatalf("new stack: %v depth %d", s.Current().Screen, s.Depth())
	}
	if s.Back() {
		t.Error("Back at root reported true")
	}

	s.Push(Route{Screen: Edit, ID: "1"})
	s.Push(Route{Screen: Detail})
	if s.Current().Screen != Detail || s.Depth() != 3 {
		t.Fatalf("after push: %v depth %d", s.Current().Screen, s.Depth())
	}

	if !s.Back() || s.Current().ID != "1" {
		t.Errorf("after back: %+v", s.Current())
	}
	s.Back()
	if s.Current().Screen != Home {
		t.Errorf("expected home, got %v", s.Current().Screen)
	}
}

func TestScreenTitles(t *testing.T) {
	tests := map[Screen]string{
		Home:   "Inicio",
		Create: "Agregar Cita",
		Edit:   "Editar Cita",
		Detail: "Detalles",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}
