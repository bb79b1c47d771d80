package migration

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// The clinic schema is created automatically on startup so the application
// is usable out of the box, with no external migration tooling.

// createStatements lists the DDL in dependency order. Foreign keys are
// declared for documentation, but every cascade is executed in application
// code inside a transaction, so behavior does not depend on the
// foreign_keys pragma.
var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		id INTEGER PRIMARY KEY,
		firstName TEXT NOT NULL,
		lastName TEXT NOT NULL,
		secondLastName TEXT,
		dni TEXT UNIQUE NOT NULL,
		dob DATE NOT NULL,
		cellPhone TEXT NOT NULL,
		email TEXT,
		address TEXT,
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS providers (
		id INTEGER PRIMARY KEY,
		firstName TEXT NOT NULL,
		lastName TEXT NOT NULL,
		specialty TEXT,
		email TEXT,
		phone TEXT,
		color TEXT NOT NULL,
		status TEXT DEFAULT 'active',
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		status TEXT DEFAULT 'active',
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id INTEGER PRIMARY KEY,
		patientId INTEGER,
		providerId INTEGER,
		serviceType TEXT,
		appointmentDate DATE NOT NULL,
		appointmentTime TIME NOT NULL,
		duration INTEGER DEFAULT 30,
		notes TEXT,
		status TEXT DEFAULT 'scheduled',
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (patientId) REFERENCES patients(id),
		FOREIGN KEY (providerId) REFERENCES providers(id)
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id INTEGER PRIMARY KEY,
		number TEXT UNIQUE NOT NULL,
		patientId INTEGER,
		date DATE NOT NULL,
		status TEXT DEFAULT 'pending',
		taxableAmount DECIMAL(10,2) NOT NULL,
		vatAmount DECIMAL(10,2),
		discountAmount DECIMAL(10,2),
		totalAmount DECIMAL(10,2) NOT NULL,
		createdAt DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (patientId) REFERENCES patients(id)
	)`,
	`CREATE TABLE IF NOT EXISTS invoice_items (
		id INTEGER PRIMARY KEY,
		invoiceId INTEGER NOT NULL,
		serviceId INTEGER,
		description TEXT,
		unitPrice DECIMAL(10,2) NOT NULL,
		units INTEGER NOT NULL,
		vatRate DECIMAL(5,2) NOT NULL,
		discountRate DECIMAL(5,2) DEFAULT 0,
		FOREIGN KEY (invoiceId) REFERENCES invoices(id),
		FOREIGN KEY (serviceId) REFERENCES services(id)
	)`,
}

// dropStatements tears tables down in reverse dependency order.
var dropStatements = []string{
	`DROP TABLE IF EXISTS invoice_items`,
	`DROP TABLE IF EXISTS invoices`,
	`DROP TABLE IF EXISTS appointments`,
	`DROP TABLE IF EXISTS services`,
	`DROP TABLE IF EXISTS providers`,
	`DROP TABLE IF EXISTS patients`,
}

// EnsureSchema creates any missing clinic tables as one atomic unit.
func EnsureSchema(conn *gorm.DB) error {
	if conn == nil {
		return errors.New("migration database handle is required")
	}
	return conn.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range createStatements {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("create schema: %w", err)
			}
		}
		return nil
	})
}

// Reset drops and recreates all clinic tables as one atomic unit.
func Reset(conn *gorm.DB) error {
	if conn == nil {
		return errors.New("migration database handle is required")
	}
	return conn.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range dropStatements {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("drop schema: %w", err)
			}
		}
		for _, stmt := range createStatements {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("create schema: %w", err)
			}
		}
		return nil
	})
}
