// Package domain contains persistence models for the billable service catalog.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// ServiceStatus represents catalog entry lifecycle states.
type ServiceStatus string

const (
	StatusActive   ServiceStatus = "active"
	StatusInactive ServiceStatus = "inactive"
)

// CatalogService is a named billable offering. Entries are soft-deleted so
// historical invoice lines keep resolving their service names.
type CatalogService struct {
	ID        snowflake.ID  `gorm:"column:id;primaryKey" json:"id"`
	Name      string        `gorm:"column:name;not null" json:"name"`
	Status    ServiceStatus `gorm:"column:status;default:active" json:"status"`
	CreatedAt time.Time     `gorm:"column:createdAt;not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// TableName sets the database table name.
func (CatalogService) TableName() string { return "services" }
