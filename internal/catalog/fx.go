package catalog

import (
	"github.com/TabariqAwabUllah/Clinic-Management/internal/catalog/repository"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
