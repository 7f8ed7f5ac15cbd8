package handler

import (
	"sync"
	"time"

	"workshop-scheduler/internal/model"
	"workshop-scheduler/internal/store"
)

type Handler struct {
	store *store.Store[model.Appointment]
	now   func() time.Time

	// serialises validate-then-write so two requests cannot both pass
	// the duplicate check
	mu sync.Mutex
}

// New serves st. now supplies the current time and its location is the
// one slots are read in; nil means time.Now.
func New(st *store.Store[model.Appointment], now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{store: st, now: now}
}
