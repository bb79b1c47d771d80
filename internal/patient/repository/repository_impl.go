package repository

import (
	"context"

	"github.com/TabariqAwabUllah/Clinic-Management/internal/patient/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, patient *domain.Patient) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO patients (id, firstName, lastName, secondLastName, dni, dob, cellPhone, email, address, createdAt)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		patient.ID,
		patient.FirstName,
		patient.LastName,
		patient.SecondLastName,
		patient.DNI,
		patient.DOB,
		patient.CellPhone,
		patient.Email,
		patient.Address,
		patient.CreatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, patient *domain.Patient) error {
	return db.WithContext(ctx).Exec(
		`UPDATE patients
		 SET firstName = ?, lastName = ?, secondLastName = ?, dni = ?, dob = ?, cellPhone = ?, email = ?, address = ?
		 WHERE id = ?`,
		patient.FirstName,
		patient.LastName,
		patient.SecondLastName,
		patient.DNI,
		patient.DOB,
		patient.CellPhone,
		patient.Email,
		patient.Address,
		patient.ID,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Patient, error) {
	var patient domain.Patient
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM patients WHERE id = ?`, id,
	).Scan(&patient).Error
	if err != nil {
		return nil, err
	}
	if patient.ID == 0 {
		return nil, nil
	}
	return &patient, nil
}

func (r *repo) ExistsByDNI(ctx context.Context, db *gorm.DB, dni string, excludeID snowflake.ID) (bool, error) {
	var count int64
	stmt := db.WithContext(ctx).Model(&domain.Patient{}).Where("dni = ?", dni)
	if excludeID != 0 {
		stmt = stmt.Where("id != ?", excludeID)
	}
	if err := stmt.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.PatientSummary, error) {
	var summaries []domain.PatientSummary
	err := db.WithContext(ctx).Raw(
		`SELECT
			p.*,
			(SELECT COUNT(*) FROM appointments a WHERE a.patientId = p.id) AS appointmentCount,
			(SELECT COUNT(*) FROM invoices i WHERE i.patientId = p.id) AS invoiceCount,
			(SELECT COALESCE(SUM(i.totalAmount), 0) FROM invoices i WHERE i.patientId = p.id) AS totalBilled
		 FROM patients p
		 ORDER BY p.createdAt DESC`,
	).Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *repo) PurgeCascade(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	if err := db.WithContext(ctx).Exec(
		`DELETE FROM invoice_items WHERE invoiceId IN (SELECT id FROM invoices WHERE patientId = ?)`, id,
	).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).Exec(
		`DELETE FROM invoices WHERE patientId = ?`, id,
	).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).Exec(
		`DELETE FROM appointments WHERE patientId = ?`, id,
	).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Exec(
		`DELETE FROM patients WHERE id = ?`, id,
	).Error
}
