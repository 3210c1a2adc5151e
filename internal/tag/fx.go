package tag

import (
	"github.com/thelightspeed/crm/internal/tag/repository"
	"github.com/thelightspeed/crm/internal/tag/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tag.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
