package opportunity

import (
	"github.com/thelightspeed/crm/internal/opportunity/repository"
	"github.com/thelightspeed/crm/internal/opportunity/service"
	"go.uber.org/fx"
)

var Module = fx.Module("opportunity.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
