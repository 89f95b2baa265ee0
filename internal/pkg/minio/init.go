package minio

import (
	"Prism/internal/api/config"
	"context"
	"fmt"
	log "log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
)

var (
	// Client 全局 MinIO 客户端实例
	Client *minio.Client
	// ExportBucket 报表导出存储桶
	ExportBucket string
)

// Init 初始化 MinIO 客户端
func Init() error {
	cfg := config.Cfg.MinIO

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx := context.Background()
	_, err = client.ListBuckets(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}
	Client = client
	ExportBucket = cfg.ExportBucket
	return EnsureExportBucketLifecycle(ctx)
}

// EnsureExportBucketLifecycle 导出桶中的 CSV 保留 90 天后自动清理
func EnsureExportBucketLifecycle(ctx context.Context) error {
	lcConfig, err := Client.GetBucketLifecycle(ctx, ExportBucket)
	if err != nil {
		lcConfig = lifecycle.NewConfiguration()
	}

	const targetDays = 90
	hasTargetRule := false
	for _, rule := range lcConfig.Rules {
		if rule.Status == "Enabled" &&
			rule.Expiration.Days == targetDays &&
			rule.RuleFilter.Prefix == "" {
			hasTargetRule = true
			log.Info("检测到已存在兼容的过期策略", "ruleID", rule.ID)
			break
		}
	}

	if !hasTargetRule {
		newRule := lifecycle.Rule{
			ID:     "ExportAutoDeleteRule",
			Status: "Enabled",
			Expiration: lifecycle.Expiration{
				Days: targetDays,
			},
		}
		lcConfig.Rules = append(lcConfig.Rules, newRule)

		err = Client.SetBucketLifecycle(ctx, ExportBucket, lcConfig)
		if err != nil {
			return fmt.Errorf("设置生命周期失败: %w", err)
		}
		log.Info("已自动补全 ExportBucket 的 90 天过期策略")
	}

	return nil
}
