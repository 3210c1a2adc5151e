package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	activitydomain "github.com/thelightspeed/crm/internal/activity/domain"
	companydomain "github.com/thelightspeed/crm/internal/company/domain"
	"github.com/thelightspeed/crm/internal/config"
	contactdomain "github.com/thelightspeed/crm/internal/contact/domain"
	dashboarddomain "github.com/thelightspeed/crm/internal/dashboard/domain"
	"github.com/thelightspeed/crm/internal/observability"
	obsmiddleware "github.com/thelightspeed/crm/internal/observability/logger"
	obsmetrics "github.com/thelightspeed/crm/internal/observability/metrics"
	obstracing "github.com/thelightspeed/crm/internal/observability/tracing"
	opportunitydomain "github.com/thelightspeed/crm/internal/opportunity/domain"
	productdomain "github.com/thelightspeed/crm/internal/product/domain"
	tagdomain "github.com/thelightspeed/crm/internal/tag/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug: obsCfg.Debug(),
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))

	r.SetHTMLTemplate(pageTemplates())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func RunHTTP(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine *gin.Engine
	cfg    config.Config
	db     *gorm.DB
	genID  *snowflake.Node

	companySvc     companydomain.Service
	tagSvc         tagdomain.Service
	contactSvc     contactdomain.Service
	opportunitySvc opportunitydomain.Service
	activitySvc    activitydomain.Service
	productSvc     productdomain.Service
	dashboardSvc   dashboarddomain.Service
}

type ServerParams struct {
	fx.In

	Gin   *gin.Engine
	Cfg   config.Config
	DB    *gorm.DB
	GenID *snowflake.Node

	CompanySvc     companydomain.Service
	TagSvc         tagdomain.Service
	ContactSvc     contactdomain.Service
	OpportunitySvc opportunitydomain.Service
	ActivitySvc    activitydomain.Service
	ProductSvc     productdomain.Service
	DashboardSvc   dashboarddomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		db:             p.DB,
		genID:          p.GenID,
		companySvc:     p.CompanySvc,
		tagSvc:         p.TagSvc,
		contactSvc:     p.ContactSvc,
		opportunitySvc: p.OpportunitySvc,
		activitySvc:    p.ActivitySvc,
		productSvc:     p.ProductSvc,
		dashboardSvc:   p.DashboardSvc,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) RegisterWebRoutes() {
	s.engine.GET("/", s.Home)

	productos := s.engine.Group("/productos")
	{
		productos.GET("/", s.ListProducts)
		productos.GET("/crear/", s.NewProductForm)
		productos.POST("/crear/", s.CreateProduct)
		productos.GET("/:id/editar/", s.EditProductForm)
		productos.POST("/:id/editar/", s.UpdateProduct)
		productos.GET("/:id/eliminar/", s.ConfirmDeleteProduct)
		productos.POST("/:id/eliminar/", s.DeleteProduct)
	}

	crm := s.engine.Group("/crm")
	crm.GET("/", s.Dashboard)

	contactos := crm.Group("/contactos")
	{
		contactos.GET("/", s.ListContacts)
		contactos.GET("/nuevo/", s.NewContactForm)
		contactos.POST("/nuevo/", s.CreateContact)
		contactos.GET("/:id/", s.ContactDetail)
		contactos.GET("/:id/editar/", s.EditContactForm)
		contactos.POST("/:id/editar/", s.UpdateContact)
		contactos.GET("/:id/eliminar/", s.ConfirmDeleteContact)
		contactos.POST("/:id/eliminar/", s.DeleteContact)
	}

	oportunidades := crm.Group("/oportunidades")
	{
		oportunidades.GET("/", s.ListOpportunities)
		oportunidades.GET("/pipeline/", s.PipelineBoard)
		oportunidades.GET("/nueva/", s.NewOpportunityForm)
		oportunidades.POST("/nueva/", s.CreateOpportunity)
		oportunidades.GET("/:id/editar/", s.EditOpportunityForm)
		oportunidades.POST("/:id/editar/", s.UpdateOpportunity)
		oportunidades.GET("/:id/eliminar/", s.ConfirmDeleteOpportunity)
		oportunidades.POST("/:id/eliminar/", s.DeleteOpportunity)
		oportunidades.POST("/:id/actualizar-estado/", s.UpdateOpportunityState)
	}

	actividades := crm.Group("/actividades")
	{
		actividades.GET("/", s.ListActivities)
		actividades.GET("/nueva/", s.NewActivityForm)
		actividades.POST("/nueva/", s.CreateActivity)
		actividades.GET("/:id/editar/", s.EditActivityForm)
		actividades.POST("/:id/editar/", s.UpdateActivity)
		actividades.GET("/:id/eliminar/", s.ConfirmDeleteActivity)
		actividades.POST("/:id/eliminar/", s.DeleteActivity)
		actividades.Any("/:id/toggle-completada/", s.ToggleActivityCompleted)
	}

	empresas := crm.Group("/empresas")
	{
		empresas.GET("/", s.ListCompanies)
		empresas.GET("/crear/", s.NewCompanyForm)
		empresas.POST("/crear/", s.CreateCompany)
		empresas.GET("/:id/editar/", s.EditCompanyForm)
		empresas.POST("/:id/editar/", s.UpdateCompany)
		empresas.GET("/:id/eliminar/", s.ConfirmDeleteCompany)
		empresas.POST("/:id/eliminar/", s.DeleteCompany)
	}

	etiquetas := crm.Group("/etiquetas")
	{
		etiquetas.GET("/", s.ListTags)
		etiquetas.GET("/crear/", s.NewTagForm)
		etiquetas.POST("/crear/", s.CreateTag)
		etiquetas.GET("/:id/editar/", s.EditTagForm)
		etiquetas.POST("/:id/editar/", s.UpdateTag)
		etiquetas.GET("/:id/eliminar/", s.ConfirmDeleteTag)
		etiquetas.POST("/:id/eliminar/", s.DeleteTag)
	}
}
