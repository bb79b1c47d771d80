package invoice

import (
	"github.com/TabariqAwabUllah/Clinic-Management/internal/invoice/repository"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
