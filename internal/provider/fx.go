package provider

import (
	"github.com/TabariqAwabUllah/Clinic-Management/internal/provider/repository"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/provider/service"
	"go.uber.org/fx"
)

var Module = fx.Module("provider.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
