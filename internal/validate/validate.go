// Package validate checks appointment candidates before they reach the
// store.
package validate

import (
	"strings"
	"time"
	"unicode/utf8"

	"workshop-scheduler/internal/model"
)

// MinNameLength is the shortest accepted customer name, in runes,
// after trimming.
const MinNameLength = 3

type Rule int

const (
	RuleNameLength Rule = iota + 1
	RuleSlotFormat
	RuleFuture
	RuleDuplicate
)

// Error is a user-correctable rejection. Message is shown to the user
// as-is.
type Error struct {
	Rule    Rule
	Message string
	// ConflictID is set for RuleDuplicate.
	ConflictID string
}

func (e *Error) Error() string { return e.Message }

// Is matches any Error with the same rule, so callers can use the
// sentinels below with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Rule == e.Rule
}

var (
	ErrNameTooShort  = &Error{Rule: RuleNameLength, Message: "El nombre del cliente debe tener al menos 3 caracteres."}
	ErrInvalidSlot   = &Error{Rule: RuleSlotFormat, Message: "Formato de fecha/hora inválido. Fecha: YYYY-MM-DD, Hora: HH:MM"}
	ErrNotInFuture   = &Error{Rule: RuleFuture, Message: "La fecha y hora deben ser posteriores al momento actual."}
	ErrDuplicateSlot = &Error{Rule: RuleDuplicate, Message: "Ya existe una cita para ese vehículo en la misma fecha."}
)

// Appointment applies the booking rules to c, first failure wins:
// name length, date/time format, strictly after now, and no other
// record for the same vehicle model on the same date. The slot is
// interpreted in now's location. editingID names the record being
// edited, which is excluded from the duplicate check; pass "" when
// creating.
//
// The duplicate check ignores the time of day: one visit per vehicle
// per day.
func Appointment(c model.Appointment, existing []model.Appointment, editingID string, now time.Time) (model.Appointment, error) {
	c = c.Trimmed()

	if utf8.RuneCountInString(c.Name) < MinNameLength {
		return model.Appointment{}, ErrNameTooShort
	}

	slot, ok := c.Slot(now.Location())
	if !ok {
		return model.Appointment{}, ErrInvalidSlot
	}
	if !slot.After(now) {
		return model.Appointment{}, ErrNotInFuture
	}

	for _, e := range existing {
		if editingID != "" && e.ID == editingID {
			continue
		}
		if strings.TrimSpace(e.Date) == c.Date && strings.EqualFold(strings.TrimSpace(e.Model), c.Model) {
			return model.Appointment{}, &Error{
				Rule:       RuleDuplicate,
				Message:    ErrDuplicateSlot.Message,
				ConflictID: e.ID,
			}
		}
	}
	return c, nil
}
