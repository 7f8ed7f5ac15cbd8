// Package form is the create/edit state machine behind the appointment
// screens. It holds raw field input and only validates on Submit.
package form

import (
	"context"
	"fmt"
	"time"

	"workshop-scheduler/internal/model"
	"workshop-scheduler/internal/validate"
)

type Mode int

const (
	Create Mode = iota
	Edit
)

func (m Mode) String() string {
	if m == Edit {
		return "edit"
	}
	return "create"
}

type State int

const (
	Editing State = iota
	Done
)

// Field names, in display order.
const (
	FieldName        = "nombre"
	FieldModel       = "modelo"
	FieldDate        = "fecha"
	FieldTime        = "hora"
	FieldDescription = "descripcion"
)

var Fields = []string{FieldName, FieldModel, FieldDate, FieldTime, FieldDescription}

// Records is the part of the store a form needs.
type Records interface {
	List() []model.Appointment
	Add(ctx context.Context, a model.Appointment) model.Appointment
	Update(ctx context.Context, a model.Appointment) bool
}

type Form struct {
	mode   Mode
	state  State
	id     string
	values map[string]string
	err    error
	saved  model.Appointment

	records Records
	now     func() time.Time
}

// NewCreate returns an empty form that adds a new record on success.
func NewCreate(records Records, now func() time.Time) *Form {
	return newForm(Create, model.Appointment{}, records, now)
}

// NewEdit returns a form pre-filled from a, which replaces a (same id)
// on success.
func NewEdit(a model.Appointment, records Records, now func() time.Time) *Form {
	return newForm(Edit, a, records, now)
}

func newForm(mode Mode, a model.Appointment, records Records, now func() time.Time) *Form {
	if now == nil {
		now = time.Now
	}
	return &Form{
		mode: mode,
		id:   a.ID,
		values: map[string]string{
			FieldName:        a.Name,
			FieldModel:       a.Model,
			FieldDate:        a.Date,
			FieldTime:        a.Time,
			FieldDescription: a.Description,
		},
		records: records,
		now:     now,
	}
}

func (f *Form) Mode() Mode   { return f.mode }
func (f *Form) State() State { return f.state }

// ID is the id of the record being edited; empty in create mode.
func (f *Form) ID() string { return f.id }

func (f *Form) Value(field string) string { return f.values[field] }

// Set stores raw input for field. Unknown fields are an error.
func (f *Form) Set(field, value string) error {
	if _, ok := f.values[field]; !ok {
		return fmt.Errorf("unknown field %q", field)
	}
	f.values[field] = value
	return nil
}

// Err is the reason the last Submit was rejected, or nil.
func (f *Form) Err() error { return f.err }

// Saved is the record handed to the store by a successful Submit.
func (f *Form) Saved() model.Appointment { return f.saved }

func (f *Form) candidate() model.Appointment {
	return model.Appointment{
		ID:          f.id,
		Name:        f.values[FieldName],
		Model:       f.values[FieldModel],
		Date:        f.values[FieldDate],
		Time:        f.values[FieldTime],
		Description: f.values[FieldDescription],
	}
}

// Submit validates and, on success, commits. See Check and Commit.
func (f *Form) Submit(ctx context.Context) error {
	a, err := f.Check()
	if err != nil {
		return err
	}
	f.Commit(ctx, a)
	return nil
}

// Check validates the current input against the store snapshot without
// writing. On rejection the form stays in Editing with its input
// intact and the reason is returned; on success it returns the
// normalised record for Commit.
func (f *Form) Check() (model.Appointment, error) {
	if f.state == Done {
		return model.Appointment{}, fmt.Errorf("form already submitted")
	}
	a, err := validate.Appointment(f.candidate(), f.records.List(), f.id, f.now())
	if err != nil {
		f.err = err
		return model.Appointment{}, err
	}
	f.err = nil
	return a, nil
}

// Commit hands a checked record to the store: Add in create mode (the
// store assigns the id), Update in edit mode (id preserved). The form
// moves to Done and the stored record is returned.
func (f *Form) Commit(ctx context.Context, a model.Appointment) model.Appointment {
	switch f.mode {
	case Create:
		a.ID = ""
		f.saved = f.records.Add(ctx, a)
	case Edit:
		a.ID = f.id
		f.records.Update(ctx, a)
		f.saved = a
	}
	f.state = Done
	return f.saved
}
