package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/thelightspeed/crm/internal/activity"
	"github.com/thelightspeed/crm/internal/company"
	"github.com/thelightspeed/crm/internal/config"
	"github.com/thelightspeed/crm/internal/contact"
	"github.com/thelightspeed/crm/internal/dashboard"
	"github.com/thelightspeed/crm/internal/migration"
	"github.com/thelightspeed/crm/internal/observability"
	"github.com/thelightspeed/crm/internal/opportunity"
	"github.com/thelightspeed/crm/internal/product"
	"github.com/thelightspeed/crm/internal/server"
	"github.com/thelightspeed/crm/internal/tag"
	"github.com/thelightspeed/crm/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		company.Module,
		tag.Module,
		contact.Module,
		opportunity.Module,
		activity.Module,
		product.Module,
		dashboard.Module,

		fx.Provide(server.NewEngine),
		fx.Provide(server.NewServer),
		fx.Invoke(func(s *server.Server) {
			s.RegisterWebRoutes()
		}),
		fx.Invoke(server.RunHTTP),
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
