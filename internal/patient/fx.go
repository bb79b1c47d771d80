package patient

import (
	"github.com/TabariqAwabUllah/Clinic-Management/internal/patient/repository"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/patient/service"
	"go.uber.org/fx"
)

var Module = fx.Module("patient.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
