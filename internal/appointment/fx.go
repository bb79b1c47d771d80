package appointment

import (
	"github.com/TabariqAwabUllah/Clinic-Management/internal/appointment/repository"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/appointment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("appointment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
