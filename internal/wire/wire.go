package wire

import (
	"Inkstone/internal/api"
	"Inkstone/internal/api/config"
	"Inkstone/internal/api/handler"
	"Inkstone/internal/job"
	"Inkstone/internal/pkg/cron"
	"Inkstone/internal/pkg/llm"
	inkmongo "Inkstone/internal/pkg/mongo"
	"Inkstone/internal/pkg/news"
	"Inkstone/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router   *gin.Engine
	CronMgr  *cron.Manager
	GenSvc   service.GenerationService
	PostRepo inkmongo.PostRepo
}

func BuildApplication(db *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	postRepo := inkmongo.NewPostRepo(db)

	textGen := llm.NewGenerator()
	fetcher := news.NewFetcher(cfg.News)

	synth := service.NewSynthesizer(textGen, fetcher)
	genSvc := service.NewGenerationService(synth, postRepo)
	postSvc := service.NewPostService(postRepo)

	handlers := &api.HandlersGroup{
		PostHandler:  handler.NewPostHandler(postSvc),
		AdminHandler: handler.NewAdminHandler(postSvc, genSvc, fetcher),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		job.NewSimplePostJob(genSvc),
		job.NewDigestJob(genSvc),
	)

	return &ApplicationContainer{
		Router:   router,
		CronMgr:  cronMgr,
		GenSvc:   genSvc,
		PostRepo: postRepo,
	}, nil
}
