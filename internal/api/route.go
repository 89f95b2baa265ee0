package api

import (
	"Prism/internal/api/middleware"
	"Prism/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", group.AuthHandler.Login)

			logoutGroup := authGroup.Group("")
			logoutGroup.Use(middleware.AuthMiddleware())
			{
				logoutGroup.POST("/logout", group.AuthHandler.Logout)
			}
		}

		reportGroup := apiGroup.Group("/reports")
		reportGroup.Use(middleware.AuthMiddleware())
		{
			reportGroup.GET("/content", group.ContentReportHandler.GetContentWindowReport)
			reportGroup.GET("/content/:content_id", group.ContentReportHandler.GetContentReport)
			reportGroup.GET("/viral", group.ContentDiscoveryHandler.GetViralContent)
			reportGroup.GET("/top-quality", group.ContentDiscoveryHandler.GetTopQuality)
			reportGroup.GET("/categories", group.LeaderboardHandler.GetCategoryLeaderboard)
			reportGroup.GET("/content-types", group.LeaderboardHandler.GetContentTypeLeaderboard)
			reportGroup.GET("/creators", group.CreatorReportHandler.GetCreatorReport)
			reportGroup.GET("/hashtags", group.HashtagReportHandler.GetHashtagReport)
			reportGroup.GET("/hashtags/trending", group.HashtagReportHandler.GetTrendingTags)
			reportGroup.GET("/timing", group.TimingReportHandler.GetTimingReport)
			reportGroup.GET("/strategy/:user_id", group.StrategyHandler.GetStrategy)

			// 异常报告与归档查询限制给管理与分析角色
			adminGroup := reportGroup.Group("")
			adminGroup.Use(middleware.CheckRoles("ADMIN", "ANALYST"))
			{
				adminGroup.GET("/anomalies", group.AnomalyReportHandler.GetAnomalyReport)
				adminGroup.GET("/archives", group.ReportArchiveHandler.GetHistory)
				adminGroup.GET("/archives/latest", group.ReportArchiveHandler.GetLatest)
			}
		}

		metricsGroup := apiGroup.Group("/metrics")
		metricsGroup.Use(middleware.AuthMiddleware())
		{
			metricsGroup.GET("/user/7d", group.UserMetricHandler.GetTrend7Days)
			metricsGroup.GET("/user/30d", group.UserMetricHandler.GetTrend30Days)
		}
	}

	return r
}
