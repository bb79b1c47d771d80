package server

import (
	"net/http"
	"strings"

	providerdomain "github.com/TabariqAwabUllah/Clinic-Management/internal/provider/domain"
	"github.com/gin-gonic/gin"
)

type createProviderRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Specialty string `json:"specialty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Color     string `json:"color"`
}

type updateProviderRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Specialty *string `json:"specialty"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Color     *string `json:"color"`
	Status    *string `json:"status"`
}

func (s *Server) ListProviders(c *gin.Context) {
	resp, err := s.providerSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateProvider(c *gin.Context) {
	var req createProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.providerSvc.Create(c.Request.Context(), providerdomain.CreateProviderRequest{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Specialty: strings.TrimSpace(req.Specialty),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Color:     strings.TrimSpace(req.Color),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateProvider(c *gin.Context) {
	var req updateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.providerSvc.Update(c.Request.Context(), providerdomain.UpdateProviderRequest{
		ID:        strings.TrimSpace(c.Param("id")),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Specialty: req.Specialty,
		Email:     req.Email,
		Phone:     req.Phone,
		Color:     req.Color,
		Status:    req.Status,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteProvider(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := s.providerSvc.Deactivate(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func isProviderValidationError(err error) bool {
	switch err {
	case providerdomain.ErrInvalidID,
		providerdomain.ErrInvalidFirstName,
		providerdomain.ErrInvalidLastName,
		providerdomain.ErrInvalidSpecialty,
		providerdomain.ErrInvalidColor,
		providerdomain.ErrInvalidStatus:
		return true
	default:
		return false
	}
}
