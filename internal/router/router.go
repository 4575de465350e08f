package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portal-metadata-api/internal/client"
	"portal-metadata-api/internal/database"
	"portal-metadata-api/internal/handler"
	"portal-metadata-api/internal/metrics"
	"portal-metadata-api/internal/middleware"
	"portal-metadata-api/internal/repository"
	"portal-metadata-api/internal/service"
)

// Config holds the dependencies the router wires together
type Config struct {
	DB           *gorm.DB
	Logger       *zap.Logger
	JWTSecret    string
	PortalClient client.PortalClient
	Cache        *redis.Client
	BasePath     string
	Metrics      *metrics.Metrics
}

// Setup builds the gin engine with all routes and middleware
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS())
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Repositories
	picklistRepo := repository.NewPicklistRepository(cfg.DB)
	fieldDefRepo := repository.NewFieldDefinitionRepository(cfg.DB)
	valueRepo := repository.NewFieldValueRepository(cfg.DB)

	// Services
	picklistService := service.NewPicklistService(picklistRepo, cfg.Cache, cfg.Logger, cfg.Metrics)
	fieldDefService := service.NewFieldDefinitionService(fieldDefRepo, picklistRepo, cfg.Logger, cfg.Metrics)
	validator := service.NewValidationEngine(picklistRepo, cfg.PortalClient)
	valueService := service.NewValueService(fieldDefRepo, valueRepo, validator, cfg.Logger, cfg.Metrics)
	projectionService := service.NewProjectionService(fieldDefRepo, valueRepo, cfg.Logger)

	// Handlers
	picklistHandler := handler.NewPicklistHandler(picklistService)
	fieldDefHandler := handler.NewFieldDefinitionHandler(fieldDefService)
	valueHandler := handler.NewFieldValueHandler(valueService, projectionService)

	// Token validation goes through the portal when a client is configured,
	// so revoked tokens are rejected; local parsing is the fallback.
	var authMW gin.HandlerFunc
	if cfg.PortalClient != nil {
		authMW = middleware.AuthWithValidator(cfg.PortalClient)
	} else {
		authMW = middleware.Auth(cfg.JWTSecret)
	}

	registerOps := func(g gin.IRoutes) {
		g.GET("/health", healthCheck)
		g.GET("/ready", readyCheck)
		g.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	registerOps(r)

	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" {
		registerOps(api)
	}
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authed := api.Group("", authMW)
	{
		picklists := authed.Group("/picklists")
		{
			picklists.GET("", picklistHandler.ListPicklists)
			picklists.POST("", picklistHandler.CreatePicklist)
			picklists.POST("/seed", picklistHandler.SeedPicklists)
			picklists.GET("/:picklistId", picklistHandler.GetPicklist)
			picklists.POST("/:picklistId/values", picklistHandler.AddPicklistValue)
			picklists.PATCH("/:picklistId/values/:valueId", picklistHandler.UpdatePicklistValue)
			picklists.PUT("/:picklistId/reorder", picklistHandler.ReorderPicklist)
		}

		authed.GET("/field-types", fieldDefHandler.ListFieldTypes)

		fields := authed.Group("/fields")
		{
			fields.POST("/seed", fieldDefHandler.SeedFields)
			fields.GET("/:fieldId", fieldDefHandler.GetField)
			fields.PATCH("/:fieldId", fieldDefHandler.UpdateField)
			fields.DELETE("/:fieldId", fieldDefHandler.DeactivateField)
		}

		entities := authed.Group("/entities/:entityType")
		{
			entities.GET("/fields", fieldDefHandler.ListFields)
			entities.POST("/fields", fieldDefHandler.CreateField)
			entities.GET("/:entityId/values", valueHandler.GetValues)
			entities.PUT("/:entityId/values/:fieldName", valueHandler.SetValue)
			entities.GET("/:entityId/projection", valueHandler.GetProjection)
		}
	}

	// Service-to-service routes; reachable only inside the cluster network
	internal := api.Group("/internal")
	{
		internal.DELETE("/entities/:entityType/:entityId/values", valueHandler.DeleteValues)
	}

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// readyCheck reports readiness; not ready until the database is reachable
func readyCheck(c *gin.Context) {
	if !database.IsConnected() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database not connected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
