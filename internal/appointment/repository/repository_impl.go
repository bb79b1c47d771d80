package repository

import (
	"context"

	"github.com/TabariqAwabUllah/Clinic-Management/internal/appointment/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, appointment *domain.Appointment) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO appointments (id, patientId, providerId, serviceType, appointmentDate, appointmentTime, duration, notes, status, createdAt)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		appointment.ID,
		appointment.PatientID,
		appointment.ProviderID,
		appointment.ServiceType,
		appointment.Date,
		appointment.Time,
		appointment.Duration,
		appointment.Notes,
		appointment.Status,
		appointment.CreatedAt,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, appointment *domain.Appointment) error {
	return db.WithContext(ctx).Exec(
		`UPDATE appointments
		 SET patientId = ?, providerId = ?, serviceType = ?, appointmentDate = ?, appointmentTime = ?, duration = ?, notes = ?, status = ?
		 WHERE id = ?`,
		appointment.PatientID,
		appointment.ProviderID,
		appointment.ServiceType,
		appointment.Date,
		appointment.Time,
		appointment.Duration,
		appointment.Notes,
		appointment.Status,
		appointment.ID,
	).Error
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status domain.AppointmentStatus) error {
	return db.WithContext(ctx).Exec(
		`UPDATE appointments SET status = ? WHERE id = ?`, status, id,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Appointment, error) {
	var appointment domain.Appointment
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM appointments WHERE id = ?`, id,
	).Scan(&appointment).Error
	if err != nil {
		return nil, err
	}
	if appointment.ID == 0 {
		return nil, nil
	}
	return &appointment, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.AppointmentSummary, error) {
	var summaries []domain.AppointmentSummary
	err := db.WithContext(ctx).Raw(
		`SELECT
			a.*,
			p.firstName || ' ' || p.lastName || ' ' || COALESCE(p.secondLastName, '') AS patientName,
			p.dni AS patientDNI,
			p.cellPhone AS patientCellPhone,
			prov.firstName || ' ' || prov.lastName AS providerName,
			prov.color AS providerColor,
			prov.specialty AS providerSpecialty
		 FROM appointments a
		 LEFT JOIN patients p ON a.patientId = p.id
		 LEFT JOIN providers prov ON a.providerId = prov.id
		 ORDER BY a.appointmentDate, a.appointmentTime`,
	).Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *repo) ListForProviderDate(ctx context.Context, db *gorm.DB, providerID snowflake.ID, date string, excludeID snowflake.ID) ([]domain.Appointment, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("providerId = ?", providerID).
		Where("appointmentDate = ?", date).
		Where("status != ?", domain.StatusCancelled)
	if excludeID != 0 {
		stmt = stmt.Where("id != ?", excludeID)
	}

	var appointments []domain.Appointment
	if err := stmt.Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`DELETE FROM appointments WHERE id = ?`, id,
	).Error
}
