package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	invoicedomain "github.com/TabariqAwabUllah/Clinic-Management/internal/invoice/domain"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/providers/pdf"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type invoiceItemRequest struct {
	ServiceID    string          `json:"service"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Units        int64           `json:"units"`
	VATRate      decimal.Decimal `json:"vat"`
	DiscountRate decimal.Decimal `json:"discount"`
}

type invoiceRequest struct {
	Number    string               `json:"number"`
	PatientID string               `json:"patientId"`
	Date      string               `json:"date"`
	Status    string               `json:"status"`
	Items     []invoiceItemRequest `json:"items"`
}

func (r invoiceRequest) toDomain() invoicedomain.CreateInvoiceRequest {
	items := make([]invoicedomain.LineItemRequest, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, invoicedomain.LineItemRequest{
			ServiceID:    strings.TrimSpace(item.ServiceID),
			Description:  strings.TrimSpace(item.Description),
			UnitPrice:    item.UnitPrice,
			Units:        item.Units,
			VATRate:      item.VATRate,
			DiscountRate: item.DiscountRate,
		})
	}
	return invoicedomain.CreateInvoiceRequest{
		Number:    strings.TrimSpace(r.Number),
		PatientID: strings.TrimSpace(r.PatientID),
		Date:      strings.TrimSpace(r.Date),
		Status:    strings.TrimSpace(r.Status),
		Items:     items,
	}
}

func (s *Server) ListInvoices(c *gin.Context) {
	resp, err := s.invoiceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetInvoiceByID(c *gin.Context) {
	resp, err := s.invoiceSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateInvoice(c *gin.Context) {
	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.Update(c.Request.Context(), invoicedomain.UpdateInvoiceRequest{
		ID:                   strings.TrimSpace(c.Param("id")),
		CreateInvoiceRequest: req.toDomain(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateInvoiceStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	err := s.invoiceSvc.UpdateStatus(c.Request.Context(), invoicedomain.UpdateStatusRequest{
		ID:     strings.TrimSpace(c.Param("id")),
		Status: strings.TrimSpace(req.Status),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"status": req.Status}})
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := s.invoiceSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) RenderInvoicePDF(c *gin.Context) {
	summary, err := s.invoiceSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	reader, err := s.pdfProvider.GenerateInvoice(c.Request.Context(), invoicePDFData(s.cfg.ClinicName, s.cfg.ClinicAddress, s.cfg.ClinicEmail, summary))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := io.ReadAll(reader)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", summary.Number))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func invoicePDFData(clinicName, clinicAddress, clinicEmail string, summary invoicedomain.InvoiceSummary) pdf.InvoiceData {
	lines := make([]pdf.InvoiceLine, 0, len(summary.Items))
	for _, item := range summary.Items {
		description := item.ServiceName
		if description == "" {
			description = item.Description
		}
		amount := item.UnitPrice.Mul(decimal.NewFromInt(item.Units))
		lines = append(lines, pdf.InvoiceLine{
			Description:  description,
			Units:        item.Units,
			UnitPrice:    item.UnitPrice.StringFixed(2),
			VATRate:      item.VATRate.StringFixed(2),
			DiscountRate: item.DiscountRate.StringFixed(2),
			Amount:       amount.StringFixed(2),
		})
	}

	return pdf.InvoiceData{
		ClinicName:     clinicName,
		ClinicAddress:  clinicAddress,
		ClinicEmail:    clinicEmail,
		InvoiceNumber:  summary.Number,
		IssueDate:      summary.Date,
		Status:         string(summary.Status),
		PatientName:    summary.PatientName,
		PatientDNI:     summary.PatientDNI,
		Items:          lines,
		TaxableAmount:  summary.TaxableAmount.StringFixed(2),
		VATAmount:      summary.VATAmount.StringFixed(2),
		DiscountAmount: summary.DiscountAmount.StringFixed(2),
		TotalAmount:    summary.TotalAmount.StringFixed(2),
	}
}

func isInvoiceValidationError(err error) bool {
	switch err {
	case invoicedomain.ErrInvalidID,
		invoicedomain.ErrInvalidPatient,
		invoicedomain.ErrInvalidDate,
		invoicedomain.ErrNoItems,
		invoicedomain.ErrInvalidItemService,
		invoicedomain.ErrInvalidItemPrice,
		invoicedomain.ErrInvalidItemUnits,
		invoicedomain.ErrInvalidStatus:
		return true
	default:
		return false
	}
}
