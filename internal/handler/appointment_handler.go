package handler

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"workshop-scheduler/internal/listview"
	"workshop-scheduler/internal/middleware"
	"workshop-scheduler/internal/validate"
)

// rejection maps a validation failure onto a gRPC status. Duplicates
// are AlreadyExists; every other rule is InvalidArgument. The message
// is the user-facing reason.
func rejection(err error) error {
	var verr *validate.Error
	if !errors.As(err, &verr) {
		return status.Error(codes.Internal, "internal error")
	}
	if verr.Rule == validate.RuleDuplicate {
		return status.Error(codes.AlreadyExists, verr.Message)
	}
	return status.Error(codes.InvalidArgument, verr.Message)
}

func (h *Handler) CreateAppointment(ctx context.Context, req *CreateAppointmentRequest) (*CreateAppointmentResponse, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	apt, err := validate.Appointment(req.Appointment, h.store.List(), "", h.now())
	if err != nil {
		return nil, rejection(err)
	}
	// ids are always server-assigned on create
	apt.ID = ""
	apt = h.store.Add(ctx, apt)

	slog.Info("appointment created", "id", apt.ID, "fecha", apt.Date, "subject", middleware.Subject(ctx))
	return &CreateAppointmentResponse{Appointment: apt}, nil
}

func (h *Handler) ListAppointments(ctx context.Context, req *ListAppointmentsRequest) (*ListAppointmentsResponse, error) {
	out := slices.Collect(listview.Sorted(h.store.List(), h.now().Location()))
	return &ListAppointmentsResponse{Appointments: out}, nil
}

func (h *Handler) GetAppointment(ctx context.Context, req *GetAppointmentRequest) (*GetAppointmentResponse, error) {
	if req.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	apt, ok := h.store.Get(req.ID)
	if !ok {
		return nil, status.Error(codes.NotFound, "not found")
	}
	return &GetAppointmentResponse{Appointment: apt}, nil
}

func (h *Handler) UpdateAppointment(ctx context.Context, req *UpdateAppointmentRequest) (*UpdateAppointmentResponse, error) {
	id := req.Appointment.ID
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.store.Get(id); !ok {
		return nil, status.Error(codes.NotFound, "not found")
	}

	// exclude self from the duplicate check
	apt, err := validate.Appointment(req.Appointment, h.store.List(), id, h.now())
	if err != nil {
		return nil, rejection(err)
	}
	apt.ID = id
	if !h.store.Update(ctx, apt) {
		return nil, status.Error(codes.NotFound, "not found")
	}

	slog.Info("appointment updated", "id", id, "subject", middleware.Subject(ctx))
	return &UpdateAppointmentResponse{Appointment: apt}, nil
}

func (h *Handler) DeleteAppointment(ctx context.Context, req *DeleteAppointmentRequest) (*DeleteAppointmentResponse, error) {
	if req.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.store.Remove(ctx, req.ID) {
		return nil, status.Error(codes.NotFound, "not found")
	}
	slog.Info("appointment deleted", "id", req.ID, "subject", middleware.Subject(ctx))
	return &DeleteAppointmentResponse{}, nil
}
