package dashboard

import (
	"github.com/thelightspeed/crm/internal/dashboard/repository"
	"github.com/thelightspeed/crm/internal/dashboard/service"
	"go.uber.org/fx"
)

var Module = fx.Module("dashboard.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
