package domain

import (
	"context"
	"errors"
)

type CreateAppointmentRequest struct {
	PatientID   string
	ProviderID  string
	ServiceType string
	Date        string
	Time        string
	Duration    int
	Notes       string
	Status      string
}

type UpdateAppointmentRequest struct {
	ID string
	CreateAppointmentRequest
}

type CheckConflictRequest struct {
	Date       string
	Time       string
	Duration   int
	ProviderID string
	ExcludeID  string
}

type UpdateStatusRequest struct {
	ID     string
	Status string
}

type Service interface {
	List(ctx context.Context) ([]AppointmentSummary, error)
	Create(ctx context.Context, req CreateAppointmentRequest) (Appointment, error)
	Update(ctx context.Context, req UpdateAppointmentRequest) (Appointment, error)
	// CheckConflict reports whether the candidate slot collides with a
	// non-cancelled appointment of the same provider on the same date.
	CheckConflict(ctx context.Context, req CheckConflictRequest) (bool, error)
	// UpdateStatus transitions the appointment; repeating a transition is a
	// no-op that still succeeds.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidID       = errors.New("invalid_appointment_id")
	ErrInvalidPatient  = errors.New("invalid_appointment_patient")
	ErrInvalidProvider = errors.New("invalid_appointment_provider")
	ErrInvalidDate     = errors.New("invalid_appointment_date")
	ErrInvalidTime     = errors.New("invalid_appointment_time")
	ErrInvalidStatus   = errors.New("invalid_appointment_status")
	ErrSlotTaken       = errors.New("slot_taken")
	ErrNotFound        = errors.New("appointment_not_found")
)
