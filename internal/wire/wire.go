package wire

import (
	"Prism/internal/analytics"
	"Prism/internal/api"
	"Prism/internal/api/config"
	"Prism/internal/api/handler"
	"Prism/internal/job"
	"Prism/internal/pkg/cron"
	"Prism/internal/pkg/es"
	"Prism/internal/pkg/kafka"
	pkgmongo "Prism/internal/pkg/mongo"
	"Prism/internal/repository"
	"Prism/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	weights := analytics.DefaultWeights()
	if cfg.Analytics.Weights != nil {
		weights = *cfg.Analytics.Weights
	}
	clock := analytics.SystemClock{}
	minSample := cfg.Analytics.MinSample

	userRepo := repository.NewUserRepo(db)
	contentRepo := repository.NewContentRepo(db)
	metricRepo := repository.NewPerformanceMetricRepo(db)
	hashtagRepo := repository.NewHashtagRepo(db)
	userMetricRepo := repository.NewUserEngagementMetricRepo(db)

	scoreRepo := es.NewContentScoreRepo(es.Client)
	archiveRepo := pkgmongo.NewReportArchiveRepo(mongoDB)

	authService := service.NewAuthService(userRepo)
	contentReportService := service.NewContentReportService(contentRepo, metricRepo, weights, clock)
	contentDiscoveryService := service.NewContentDiscoveryService(scoreRepo)
	leaderboardService := service.NewLeaderboardService(contentRepo, clock, minSample)
	creatorReportService := service.NewCreatorReportService(userRepo, weights, clock, minSample)
	hashtagReportService := service.NewHashtagReportService(hashtagRepo, contentRepo, clock)
	timingReportService := service.NewTimingReportService(contentRepo, clock, minSample)
	anomalyReportService := service.NewAnomalyReportService(contentRepo, metricRepo, clock,
		cfg.Alert.WebhookURL, cfg.Alert.Timeout)
	strategyService := service.NewStrategyService(userRepo, contentRepo, clock)
	metricRefreshService := service.NewMetricRefreshService(contentRepo, metricRepo, userRepo,
		scoreRepo, weights, clock)
	userMetricService := service.NewUserMetricService(contentRepo, userRepo, userMetricRepo, clock)
	reportArchiveService := service.NewReportArchiveService(archiveRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:             handler.NewAuthHandler(authService),
		ContentReportHandler:    handler.NewContentReportHandler(contentReportService),
		ContentDiscoveryHandler: handler.NewContentDiscoveryHandler(contentDiscoveryService),
		LeaderboardHandler:      handler.NewLeaderboardHandler(leaderboardService),
		CreatorReportHandler:    handler.NewCreatorReportHandler(creatorReportService),
		HashtagReportHandler:    handler.NewHashtagReportHandler(hashtagReportService),
		TimingReportHandler:     handler.NewTimingReportHandler(timingReportService),
		AnomalyReportHandler:    handler.NewAnomalyReportHandler(anomalyReportService),
		StrategyHandler:         handler.NewStrategyHandler(strategyService),
		UserMetricHandler:       handler.NewUserMetricHandler(userMetricService),
		ReportArchiveHandler:    handler.NewReportArchiveHandler(reportArchiveService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, hashtagRepo, scoreRepo)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewMetricRefreshJob(metricRefreshService),
		job.NewFollowSyncJob(userRepo),
		job.NewHashtagTrendJob(hashtagReportService),
		job.NewUserMetricJob(userRepo, userMetricService),
		job.NewReportArchiveJob(contentReportService, leaderboardService, creatorReportService,
			hashtagReportService, timingReportService, anomalyReportService, archiveRepo),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
