// Package domain contains persistence models and slot math for appointments.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// AppointmentStatus represents appointment lifecycle states.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// DefaultDuration is applied when a booking does not specify one.
const DefaultDuration = 30

// Appointment books a patient with a provider at a wall-clock slot.
// Dates are calendar dates (YYYY-MM-DD) and times are HH:MM, both without
// time zone; the UI offers 30-minute slots but storage does not enforce
// alignment.
type Appointment struct {
	ID          snowflake.ID      `gorm:"column:id;primaryKey" json:"id"`
	PatientID   snowflake.ID      `gorm:"column:patientId" json:"patientId"`
	ProviderID  snowflake.ID      `gorm:"column:providerId" json:"providerId"`
	ServiceType string            `gorm:"column:serviceType" json:"serviceType,omitempty"`
	Date        string            `gorm:"column:appointmentDate;not null" json:"appointmentDate"`
	Time        string            `gorm:"column:appointmentTime;not null" json:"appointmentTime"`
	Duration    int               `gorm:"column:duration;default:30" json:"duration"`
	Notes       string            `gorm:"column:notes" json:"notes,omitempty"`
	Status      AppointmentStatus `gorm:"column:status;default:scheduled" json:"status"`
	CreatedAt   time.Time         `gorm:"column:createdAt;not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// TableName sets the database table name.
func (Appointment) TableName() string { return "appointments" }

// AppointmentSummary is an appointment joined with patient and provider
// display fields for the agenda screens.
type AppointmentSummary struct {
	ID                snowflake.ID      `gorm:"column:id" json:"id"`
	PatientID         snowflake.ID      `gorm:"column:patientId" json:"patientId"`
	ProviderID        snowflake.ID      `gorm:"column:providerId" json:"providerId"`
	ServiceType       string            `gorm:"column:serviceType" json:"serviceType,omitempty"`
	Date              string            `gorm:"column:appointmentDate" json:"appointmentDate"`
	Time              string            `gorm:"column:appointmentTime" json:"appointmentTime"`
	Duration          int               `gorm:"column:duration" json:"duration"`
	Notes             string            `gorm:"column:notes" json:"notes,omitempty"`
	Status            AppointmentStatus `gorm:"column:status" json:"status"`
	CreatedAt         time.Time         `gorm:"column:createdAt" json:"createdAt"`
	PatientName       string            `gorm:"column:patientName" json:"patientName"`
	PatientDNI        string            `gorm:"column:patientDNI" json:"patientDNI"`
	PatientCellPhone  string            `gorm:"column:patientCellPhone" json:"patientCellPhone"`
	ProviderName      string            `gorm:"column:providerName" json:"providerName"`
	ProviderColor     string            `gorm:"column:providerColor" json:"providerColor"`
	ProviderSpecialty string            `gorm:"column:providerSpecialty" json:"providerSpecialty"`
}
