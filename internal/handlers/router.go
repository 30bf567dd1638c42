package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hanuchaudhary/Job-Portal/internal/config"
	"github.com/hanuchaudhary/Job-Portal/internal/middleware"
)

// NewRouter assembles the engine: logging, recovery, CORS, the public
// endpoints and the token-guarded route table.
func NewRouter(
	cfg config.Config,
	users *UserHandler,
	companies *CompanyHandler,
	jobs *JobHandler,
	applications *ApplicationHandler,
	savedJobs *SavedJobHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if cfg.AllowedOrigin != "" {
		corsCfg.AllowOrigins = []string{cfg.AllowedOrigin}
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	r.GET("/health", HealthCheck)
	r.POST("/user/signup", users.Signup)
	r.POST("/user/signin", users.Signin)

	authed := r.Group("", middleware.Authenticated(cfg.JWTSecret))
	{
		authed.GET("/user/me", users.Me)
		authed.GET("/user/bulk", users.Bulk)
		authed.PUT("/user/update", users.Update)
		authed.POST("/user/remove", users.Remove)

		authed.POST("/user/application/:jobId", applications.Submit)
		authed.GET("/user/allapplications/:jobId", applications.ListForJob)
		authed.PUT("/user/status", applications.UpdateStatus)

		authed.POST("/user/savejob/:jobId", savedJobs.Save)
		authed.POST("/user/unsavejob/:jobId", savedJobs.Unsave)
		authed.GET("/user/savedjobs", savedJobs.List)

		authed.POST("/company/create", companies.Create)
		authed.GET("/company/bulk", companies.Bulk)
		authed.POST("/company/find", companies.Find)

		authed.POST("/job/create", jobs.Create)
		authed.GET("/job/bulk", jobs.Bulk)
		authed.POST("/job/find", jobs.Find)
	}

	return r
}
