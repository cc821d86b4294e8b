package app

import (
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/docs"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/config"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/middleware"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/api/health", c.health.HealthCheck)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerStudentRoutes(r *gin.RouterGroup, c *controllers) {
	calendar := r.Group("/calendar")
	{
		calendar.GET("/config", c.calendar.GetConfig)
		calendar.GET("/schedule", c.calendar.GetSchedule)
		calendar.GET("/modules/:moduleNumber/access", c.calendar.CheckModuleAccess)
		calendar.GET("/modules/:moduleNumber/evaluations/:evaluationNumber/access", c.calendar.CheckEvaluationAccess)
		calendar.GET("/export.ics", c.calendar.DownloadICS)
	}

	evaluations := r.Group("/evaluations")
	{
		evaluations.POST("/results", c.evaluation.RecordResult)
		evaluations.GET("/results", c.evaluation.ListResults)
		evaluations.GET("/completed", c.evaluation.CompletedModules)
	}

	r.GET("/evaluation-links", c.evaluationLink.List)
	r.GET("/level-subjects", c.catalog.ListLevelSubjects)
	r.GET("/level-subjects/:id/objectives", c.catalog.ListObjectives)
}

func (a *App) registerAdminRoutes(r *gin.RouterGroup, c *controllers) {
	admin := r.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Teacher))
	{
		admin.POST("/level-subjects", c.catalog.CreateLevelSubject)
		admin.PUT("/level-subjects/:id", c.catalog.UpdateLevelSubject)
		admin.DELETE("/level-subjects/:id", c.catalog.DeleteLevelSubject)
		admin.POST("/level-subjects/:id/objectives", c.catalog.CreateObjective)
		admin.PUT("/objectives/:id", c.catalog.UpdateObjective)
		admin.DELETE("/objectives/:id", c.catalog.DeleteObjective)

		admin.POST("/evaluation-links", c.evaluationLink.Create)
		admin.GET("/evaluation-links/:id", c.evaluationLink.Get)
		admin.PUT("/evaluation-links/:id", c.evaluationLink.Update)
		admin.DELETE("/evaluation-links/:id", c.evaluationLink.Delete)

		admin.GET("/calendar/discrepancies", c.calendar.GetDiscrepancies)
		admin.POST("/calendar/export", c.calendar.PublishICS)
	}
}
