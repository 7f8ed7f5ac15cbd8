package model

import (
	"strings"
	"time"
)

// Layouts for the persisted date and time strings.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
	slotLayout = DateLayout + "T" + TimeLayout
)

// Appointment is one workshop booking. JSON keys match the persisted
// blob written by the mobile app so existing data loads as-is.
type Appointment struct {
	ID          string `json:"id"`
	Name        string `json:"nombre"`
	Model       string `json:"modelo"`
	Date        string `json:"fecha"`
	Time        string `json:"hora"`
	Description string `json:"descripcion"`
}

func (a Appointment) RecordID() string { return a.ID }

func (a Appointment) WithRecordID(id string) Appointment {
	a.ID = id
	return a
}

// Slot combines Date and Time into a timestamp in loc. ok is false when
// either part does not parse.
func (a Appointment) Slot(loc *time.Location) (t time.Time, ok bool) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(slotLayout, strings.TrimSpace(a.Date)+"T"+strings.TrimSpace(a.Time), loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Trimmed returns a copy with every free-text field trimmed.
func (a Appointment) Trimmed() Appointment {
	a.Name = strings.TrimSpace(a.Name)
	a.Model = strings.TrimSpace(a.Model)
	a.Date = strings.TrimSpace(a.Date)
	a.Time = strings.TrimSpace(a.Time)
	a.Description = strings.TrimSpace(a.Description)
	return a
}

// Dish is a read-only catalog entry. Index is its position in the
// bundled list and is the only identifier it has.
type Dish struct {
	Index       int      `yaml:"-"`
	Name        string   `yaml:"nombre"`
	Region      string   `yaml:"region"`
	Category    string   `yaml:"categoria"`
	Price       float64  `yaml:"precio"`
	Description string   `yaml:"descripcion"`
	Image       string   `yaml:"foto"`
	Ingredients []string `yaml:"ingredientes"`
}
