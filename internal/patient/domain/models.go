// Package domain contains persistence models for patients.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Patient is a person treated at the clinic, identified by national ID (DNI).
type Patient struct {
	ID             snowflake.ID `gorm:"column:id;primaryKey" json:"id"`
	FirstName      string       `gorm:"column:firstName;not null" json:"firstName"`
	LastName       string       `gorm:"column:lastName;not null" json:"lastName"`
	SecondLastName string       `gorm:"column:secondLastName" json:"secondLastName,omitempty"`
	DNI            string       `gorm:"column:dni;not null;uniqueIndex" json:"dni"`
	DOB            string       `gorm:"column:dob;not null" json:"dob"`
	CellPhone      string       `gorm:"column:cellPhone;not null" json:"cellPhone"`
	Email          string       `gorm:"column:email" json:"email,omitempty"`
	Address        string       `gorm:"column:address" json:"address,omitempty"`
	CreatedAt      time.Time    `gorm:"column:createdAt;not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// TableName sets the database table name.
func (Patient) TableName() string { return "patients" }

// PatientSummary is a patient row with billing and visit aggregates, as
// surfaced by the patient list screen.
type PatientSummary struct {
	ID               snowflake.ID    `gorm:"column:id" json:"id"`
	FirstName        string          `gorm:"column:firstName" json:"firstName"`
	LastName         string          `gorm:"column:lastName" json:"lastName"`
	SecondLastName   string          `gorm:"column:secondLastName" json:"secondLastName,omitempty"`
	DNI              string          `gorm:"column:dni" json:"dni"`
	DOB              string          `gorm:"column:dob" json:"dob"`
	CellPhone        string          `gorm:"column:cellPhone" json:"cellPhone"`
	Email            string          `gorm:"column:email" json:"email,omitempty"`
	Address          string          `gorm:"column:address" json:"address,omitempty"`
	CreatedAt        time.Time       `gorm:"column:createdAt" json:"createdAt"`
	AppointmentCount int64           `gorm:"column:appointmentCount" json:"appointmentCount"`
	InvoiceCount     int64           `gorm:"column:invoiceCount" json:"invoiceCount"`
	TotalBilled      decimal.Decimal `gorm:"column:totalBilled" json:"totalBilled"`
}
