package wire

import (
	"Commons/internal/api"
	"Commons/internal/api/config"
	"Commons/internal/api/handler"
	"Commons/internal/job"
	"Commons/internal/pkg/cron"
	"Commons/internal/pkg/minio"
	"Commons/internal/pkg/mongo"
	"Commons/internal/repository"
	"Commons/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	CronMgr *cron.Manager
}

func BuildApplication(db *mongodrv.Database, rdb *redis.Client, cfg *config.Config) (*ApplicationContainer, error) {
	postDocRepo := mongo.NewPostDocRepo(db)
	postRepo := repository.NewPostRepo(postDocRepo)
	queryStatsRepo := repository.NewQueryStatsRepo(rdb)

	postService := service.NewPostService(postRepo, queryStatsRepo, cfg.Query)
	postViewService := service.NewPostViewService(postService, minio.ResolveURL)
	postStatsService := service.NewPostStatsService(postDocRepo, queryStatsRepo)

	handlers := &api.HandlersGroup{
		PostHandler:  handler.NewPostHandler(postViewService),
		StatsHandler: handler.NewStatsHandler(postStatsService),
	}

	router := api.SetupRouter(handlers, cfg.Logstash)

	indexProbeJob := job.NewIndexProbeJob(postStatsService)
	cronMgr := cron.NewCronManager(indexProbeJob, cfg.Cron.IndexProbe)

	return &ApplicationContainer{
		Router:  router,
		CronMgr: cronMgr,
	}, nil
}
