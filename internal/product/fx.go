package product

import (
	"github.com/thelightspeed/crm/internal/product/repository"
	"github.com/thelightspeed/crm/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
