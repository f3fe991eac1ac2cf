package api

import (
	"Commons/internal/api/config"
	"Commons/internal/api/middleware"
	"Commons/internal/pkg/logger"
	"Commons/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, logCfg config.LogstashConfig) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r, logCfg)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			response.Success(c, "pong")
		})

		orgGroup := apiGroup.Group("/organizations")
		{
			orgGroup.GET("/:org_id/posts", group.PostHandler.ListOrganizationPosts)
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("/:post_id", group.PostHandler.GetPost)
		}

		statsGroup := apiGroup.Group("/stats")
		{
			statsGroup.GET("/posts", group.StatsHandler.GetQueryStats)
		}
	}

	return r
}
