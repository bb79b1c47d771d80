package server

import (
	"net/http"
	"strings"

	patientdomain "github.com/TabariqAwabUllah/Clinic-Management/internal/patient/domain"
	"github.com/gin-gonic/gin"
)

type patientRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	SecondLastName string `json:"secondLastName"`
	DNI            string `json:"dni"`
	DOB            string `json:"dob"`
	CellPhone      string `json:"cellPhone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
}

func (r patientRequest) toDomain() patientdomain.CreatePatientRequest {
	return patientdomain.CreatePatientRequest{
		FirstName:      strings.TrimSpace(r.FirstName),
		LastName:       strings.TrimSpace(r.LastName),
		SecondLastName: strings.TrimSpace(r.SecondLastName),
		DNI:            strings.TrimSpace(r.DNI),
		DOB:            strings.TrimSpace(r.DOB),
		CellPhone:      strings.TrimSpace(r.CellPhone),
		Email:          strings.TrimSpace(r.Email),
		Address:        strings.TrimSpace(r.Address),
	}
}

func (s *Server) ListPatients(c *gin.Context) {
	resp, err := s.patientSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreatePatient(c *gin.Context) {
	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.patientSvc.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdatePatient(c *gin.Context) {
	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.patientSvc.Update(c.Request.Context(), patientdomain.UpdatePatientRequest{
		ID:                   strings.TrimSpace(c.Param("id")),
		CreatePatientRequest: req.toDomain(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeletePatient(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := s.patientSvc.Purge(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) CheckPatientDNI(c *gin.Context) {
	var query struct {
		DNI       string `form:"dni"`
		ExcludeID string `form:"excludeId"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	exists, err := s.patientSvc.CheckDNI(c.Request.Context(), patientdomain.CheckDNIRequest{
		DNI:       strings.TrimSpace(query.DNI),
		ExcludeID: strings.TrimSpace(query.ExcludeID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"exists": exists}})
}

func isPatientValidationError(err error) bool {
	switch err {
	case patientdomain.ErrInvalidID,
		patientdomain.ErrInvalidFirstName,
		patientdomain.ErrInvalidLastName,
		patientdomain.ErrInvalidDNI,
		patientdomain.ErrInvalidDOB,
		patientdomain.ErrInvalidCellPhone:
		return true
	default:
		return false
	}
}
