package server

import (
	"net/http"
	"strings"

	appointmentdomain "github.com/TabariqAwabUllah/Clinic-Management/internal/appointment/domain"
	"github.com/gin-gonic/gin"
)

type appointmentRequest struct {
	PatientID   string `json:"patientId"`
	ProviderID  string `json:"providerId"`
	ServiceType string `json:"serviceType"`
	Date        string `json:"appointmentDate"`
	Time        string `json:"appointmentTime"`
	Duration    int    `json:"duration"`
	Notes       string `json:"notes"`
	Status      string `json:"status"`
}

func (r appointmentRequest) toDomain() appointmentdomain.CreateAppointmentRequest {
	return appointmentdomain.CreateAppointmentRequest{
		PatientID:   strings.TrimSpace(r.PatientID),
		ProviderID:  strings.TrimSpace(r.ProviderID),
		ServiceType: strings.TrimSpace(r.ServiceType),
		Date:        strings.TrimSpace(r.Date),
		Time:        strings.TrimSpace(r.Time),
		Duration:    r.Duration,
		Notes:       strings.TrimSpace(r.Notes),
		Status:      strings.TrimSpace(r.Status),
	}
}

func (s *Server) ListAppointments(c *gin.Context) {
	resp, err := s.appointmentSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.appointmentSvc.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.appointmentSvc.Update(c.Request.Context(), appointmentdomain.UpdateAppointmentRequest{
		ID:                       strings.TrimSpace(c.Param("id")),
		CreateAppointmentRequest: req.toDomain(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteAppointment(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := s.appointmentSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) CheckAppointmentConflict(c *gin.Context) {
	var req struct {
		Date       string `json:"appointmentDate"`
		Time       string `json:"appointmentTime"`
		Duration   int    `json:"duration"`
		ProviderID string `json:"providerId"`
		ExcludeID  string `json:"excludeId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	conflict, err := s.appointmentSvc.CheckConflict(c.Request.Context(), appointmentdomain.CheckConflictRequest{
		Date:       strings.TrimSpace(req.Date),
		Time:       strings.TrimSpace(req.Time),
		Duration:   req.Duration,
		ProviderID: strings.TrimSpace(req.ProviderID),
		ExcludeID:  strings.TrimSpace(req.ExcludeID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"conflict": conflict}})
}

func (s *Server) UpdateAppointmentStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	err := s.appointmentSvc.UpdateStatus(c.Request.Context(), appointmentdomain.UpdateStatusRequest{
		ID:     strings.TrimSpace(c.Param("id")),
		Status: strings.TrimSpace(req.Status),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"status": req.Status}})
}

func isAppointmentValidationError(err error) bool {
	switch err {
	case appointmentdomain.ErrInvalidID,
		appointmentdomain.ErrInvalidPatient,
		appointmentdomain.ErrInvalidProvider,
		appointmentdomain.ErrInvalidDate,
		appointmentdomain.ErrInvalidTime,
		appointmentdomain.ErrInvalidStatus:
		return true
	default:
		return false
	}
}
