// Package nav is a screen stack. Routes carry at most one payload: a
// record id (with an optional full-record fallback) or a dish.
package nav

import (
	"errors"

	"workshop-scheduler/internal/model"
)

type Screen int

const (
	Home Screen = iota
	Create
	Edit
	Detail
)

func (s Screen) String() string {
	switch s {
	case Create:
		return "Agregar Cita"
	case Edit:
		return "Editar Cita"
	case Detail:
		return "Detalles"
	default:
		return "Inicio"
	}
}

type Route struct {
	Screen Screen

	// Edit payload.
	ID       string
	Fallback *model.Appointment

	// Detail payload.
	Dish *model.Dish
}

// ErrEditTargetMissing is returned by ResolveEdit when neither the id
// nor the fallback yields a record.
var ErrEditTargetMissing = errors.New("edit target not found")

// MissingEditText is shown in place of the edit form for
// ErrEditTargetMissing.
const MissingEditText = "No se encontró la cita para editar."

// Lookup finds a record by id.
type Lookup interface {
	Get(id string) (model.Appointment, bool)
}

// ResolveEdit finds the record an Edit route points at: by id in the
// store first, then the carried record.
func ResolveEdit(r Route, records Lookup) (model.Appointment, error) {
	id := r.ID
	if id == "" && r.Fallback != nil {
		id = r.Fallback.ID
	}
	if id != "" {
		if a, ok := records.Get(id); ok {
			return a, nil
		}
	}
	if r.Fallback != nil {
		return *r.Fallback, nil
	}
	return model.Appointment{}, ErrEditTargetMissing
}

// Stack always has the home route at the bottom.
type Stack struct {
	routes []Route
}

func NewStack() *Stack {
	return &Stack{routes: []Route{{Screen: Home}}}
}

func (s *Stack) Push(r Route) { s.routes = append(s.routes, r) }

// Back pops the current route. It reports false at the root.
func (s *Stack) Back() bool {
	if len(s.routes) == 1 {
		return false
	}
	s.routes = s.routes[:len(s.routes)-1]
	return true
}

func (s *Stack) Current() Route { return s.routes[len(s.routes)-1] }

func (s *Stack) Depth() int { return len(s.routes) }
