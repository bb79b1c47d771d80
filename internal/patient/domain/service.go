package domain

import (
	"context"
	"errors"
)

type CreatePatientRequest struct {
	FirstName      string
	LastName       string
	SecondLastName string
	DNI            string
	DOB            string
	CellPhone      string
	Email          string
	Address        string
}

type UpdatePatientRequest struct {
	ID string
	CreatePatientRequest
}

type CheckDNIRequest struct {
	DNI       string
	ExcludeID string
}

type Service interface {
	List(ctx context.Context) ([]PatientSummary, error)
	Create(ctx context.Context, req CreatePatientRequest) (Patient, error)
	Update(ctx context.Context, req UpdatePatientRequest) (Patient, error)
	// Purge hard-deletes the patient and cascades to appointments, invoices
	// and invoice items in one transaction.
	Purge(ctx context.Context, id string) error
	// CheckDNI reports whether the DNI already belongs to another patient.
	CheckDNI(ctx context.Context, req CheckDNIRequest) (bool, error)
}

var (
	ErrInvalidID        = errors.New("invalid_id")
	ErrInvalidFirstName = errors.New("invalid_first_name")
	ErrInvalidLastName  = errors.New("invalid_last_name")
	ErrInvalidDNI       = errors.New("invalid_dni")
	ErrInvalidDOB       = errors.New("invalid_dob")
	ErrInvalidCellPhone = errors.New("invalid_cell_phone")
	ErrDuplicateDNI     = errors.New("duplicate_dni")
	ErrNotFound         = errors.New("patient_not_found")
)
