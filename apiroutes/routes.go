package apiroutes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfolio-admin-server/api"
	restinterceptors "portfolio-admin-server/api/interceptors"
	"portfolio-admin-server/global"
	"portfolio-admin-server/media"
	"portfolio-admin-server/metrics"
	"portfolio-admin-server/repository"
	"portfolio-admin-server/services"
	"portfolio-admin-server/types"
	"portfolio-admin-server/webapp"
)

// REST API routes
func ConfigRoutes(router *gin.Engine, dbSelector *repository.CouchDBSelector, mediaClient *media.Client, env *types.Environment) *gin.Engine {
	// init metrics
	if global.Conf.Prometheus.Enabled {

		metrics.InitMetrics()

		authorized := router.Group("/metrics", gin.BasicAuth(gin.Accounts{
			global.Conf.Prometheus.Username: global.Conf.Prometheus.Password,
		}))

		authorized.GET("", gin.WrapH(promhttp.Handler()))
	}

	router.Use(cors.Default())

	// SERVICE definitions
	profileService := services.NewProfileService(dbSelector, mediaClient, env)
	projectService := services.NewProjectService(dbSelector, mediaClient, env)
	skillService := services.NewSkillService(dbSelector, mediaClient, env)
	contactService := services.NewContactService(dbSelector, env)

	// API definitions
	loginApi := api.NewLoginApi()
	healthApi := api.NewHealthCheckApi()
	profileApi := api.NewProfileApi(profileService)
	projectApi := api.NewProjectApi(projectService)
	skillApi := api.NewSkillApi(skillService)
	contactApi := api.NewContactApi(contactService)
	uploadApi := api.NewUploadApi(mediaClient)

	// PUBLIC API (the portfolio site reads these without a session)
	publicApi := router.Group("/api", metrics.MetricsMiddleware(), restinterceptors.RateLimitMiddleware())
	{
		publicApi.POST("/v1/login", loginApi.Login)
		publicApi.POST("/v1/logout", loginApi.Logout)
		publicApi.GET("/v1/session", loginApi.Session)
		publicApi.GET("/v1/healthcheck", healthApi.HealthCheck)
		publicApi.GET("/v1/profile", profileApi.GetProfile)
		publicApi.GET("/v1/projects", projectApi.ListProjects)
		publicApi.GET("/v1/skills", skillApi.ListSkills)
		publicApi.POST("/v1/contacts", contactApi.CreateContact)
	}

	// ADMIN API behind the session gate
	adminApi := router.Group("/api", metrics.MetricsMiddleware(), restinterceptors.RateLimitMiddleware(), restinterceptors.SessionMiddleware())
	{
		adminApi.POST("/v1/profile", profileApi.CreateProfile)
		adminApi.PUT("/v1/profile", profileApi.UpdateProfile)
		adminApi.POST("/v1/profile/upload", uploadApi.UploadProfileImage)

		adminApi.POST("/v1/projects", projectApi.CreateProject)
		adminApi.GET("/v1/projects/:id", projectApi.GetProject)
		adminApi.PUT("/v1/projects/:id", projectApi.UpdateProject)
		adminApi.DELETE("/v1/projects/:id", projectApi.DeleteProject)
		adminApi.POST("/v1/projects/upload", uploadApi.UploadProjectImages)

		adminApi.POST("/v1/skills", skillApi.CreateSkill)
		adminApi.GET("/v1/skills/:id", skillApi.GetSkill)
		adminApi.PUT("/v1/skills/:id", skillApi.UpdateSkill)
		adminApi.DELETE("/v1/skills/:id", skillApi.DeleteSkill)
		adminApi.POST("/v1/skills/upload", uploadApi.UploadSkillImage)

		adminApi.GET("/v1/contacts", contactApi.ListContacts)
		adminApi.PUT("/v1/contacts/:id", contactApi.MarkContactRead)
		adminApi.DELETE("/v1/contacts/:id", contactApi.DeleteContact)
	}

	// DASHBOARD pages (browser UI; unauthenticated browsers land on /login)
	webapp.ConfigPages(router)

	return router
}
