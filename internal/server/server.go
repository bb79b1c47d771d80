package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/appointment"
	appointmentdomain "github.com/TabariqAwabUllah/Clinic-Management/internal/appointment/domain"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/catalog"
	catalogdomain "github.com/TabariqAwabUllah/Clinic-Management/internal/catalog/domain"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/config"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/invoice"
	invoicedomain "github.com/TabariqAwabUllah/Clinic-Management/internal/invoice/domain"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/metrics"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/patient"
	patientdomain "github.com/TabariqAwabUllah/Clinic-Management/internal/patient/domain"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/provider"
	providerdomain "github.com/TabariqAwabUllah/Clinic-Management/internal/provider/domain"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/providers/pdf"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	metrics.Module,
	fx.Provide(NewEngine),
	fx.Provide(pdf.New),
	patient.Module,
	provider.Module,
	catalog.Module,
	appointment.Module,
	invoice.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(httpMetrics *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(metrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine         *gin.Engine
	cfg            config.Config
	patientSvc     patientdomain.Service
	providerSvc    providerdomain.Service
	catalogSvc     catalogdomain.Service
	appointmentSvc appointmentdomain.Service
	invoiceSvc     invoicedomain.Service
	pdfProvider    pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	Cfg            config.Config
	PatientSvc     patientdomain.Service
	ProviderSvc    providerdomain.Service
	CatalogSvc     catalogdomain.Service
	AppointmentSvc appointmentdomain.Service
	InvoiceSvc     invoicedomain.Service
	PDFProvider    pdf.Provider
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		patientSvc:     p.PatientSvc,
		providerSvc:    p.ProviderSvc,
		catalogSvc:     p.CatalogSvc,
		appointmentSvc: p.AppointmentSvc,
		invoiceSvc:     p.InvoiceSvc,
		pdfProvider:    p.PDFProvider,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Patients --------
	api.GET("/patients", s.ListPatients)
	api.POST("/patients", s.CreatePatient)
	api.PUT("/patients/:id", s.UpdatePatient)
	api.DELETE("/patients/:id", s.DeletePatient)
	api.GET("/patients/check-dni", s.CheckPatientDNI)

	// -------- Providers --------
	api.GET("/providers", s.ListProviders)
	api.POST("/providers", s.CreateProvider)
	api.PUT("/providers/:id", s.UpdateProvider)
	api.DELETE("/providers/:id", s.DeleteProvider)

	// -------- Services --------
	api.GET("/services", s.ListServices)
	api.POST("/services", s.CreateService)
	api.PUT("/services/:id", s.UpdateService)
	api.DELETE("/services/:id", s.DeleteService)

	// -------- Appointments --------
	api.GET("/appointments", s.ListAppointments)
	api.POST("/appointments", s.CreateAppointment)
	api.PUT("/appointments/:id", s.UpdateAppointment)
	api.DELETE("/appointments/:id", s.DeleteAppointment)
	api.POST("/appointments/conflict", s.CheckAppointmentConflict)
	api.PATCH("/appointments/:id/status", s.UpdateAppointmentStatus)

	// -------- Invoices --------
	api.GET("/invoices", s.ListInvoices)
	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.PUT("/invoices/:id", s.UpdateInvoice)
	api.DELETE("/invoices/:id", s.DeleteInvoice)
	api.PATCH("/invoices/:id/status", s.UpdateInvoiceStatus)
	api.GET("/invoices/:id/pdf", s.RenderInvoicePDF)
}
