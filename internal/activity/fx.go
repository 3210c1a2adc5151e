package activity

import (
	"github.com/thelightspeed/crm/internal/activity/repository"
	"github.com/thelightspeed/crm/internal/activity/service"
	"go.uber.org/fx"
)

var Module = fx.Module("activity.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
