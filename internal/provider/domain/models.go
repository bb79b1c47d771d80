// Package domain contains persistence models for care providers.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// ProviderStatus represents provider lifecycle states.
type ProviderStatus string

const (
	StatusActive   ProviderStatus = "active"
	StatusInactive ProviderStatus = "inactive"
)

// Provider is a clinician who can be booked for appointments. Providers are
// never hard-deleted; deactivation keeps appointment history intact.
type Provider struct {
	ID        snowflake.ID   `gorm:"column:id;primaryKey" json:"id"`
	FirstName string         `gorm:"column:firstName;not null" json:"firstName"`
	LastName  string         `gorm:"column:lastName;not null" json:"lastName"`
	Specialty string         `gorm:"column:specialty" json:"specialty"`
	Email     string         `gorm:"column:email" json:"email,omitempty"`
	Phone     string         `gorm:"column:phone" json:"phone,omitempty"`
	Color     string         `gorm:"column:color;not null" json:"color"`
	Status    ProviderStatus `gorm:"column:status;default:active" json:"status"`
	CreatedAt time.Time      `gorm:"column:createdAt;not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// TableName sets the database table name.
func (Provider) TableName() string { return "providers" }

// ProviderSummary is a provider row with its appointment count, as surfaced
// by the provider list screen.
type ProviderSummary struct {
	ID               snowflake.ID   `gorm:"column:id" json:"id"`
	FirstName        string         `gorm:"column:firstName" json:"firstName"`
	LastName         string         `gorm:"column:lastName" json:"lastName"`
	Specialty        string         `gorm:"column:specialty" json:"specialty"`
	Email            string         `gorm:"column:email" json:"email,omitempty"`
	Phone            string         `gorm:"column:phone" json:"phone,omitempty"`
	Color            string         `gorm:"column:color" json:"color"`
	Status           ProviderStatus `gorm:"column:status" json:"status"`
	CreatedAt        time.Time      `gorm:"column:createdAt" json:"createdAt"`
	AppointmentCount int64          `gorm:"column:appointmentCount" json:"appointmentCount"`
}
