package service

import (
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/es"
	"context"
)

// 传播状态筛选只接受阶梯上的标签
var viralStatuses = map[string]bool{
	"Highly Viral": true,
	"Viral":        true,
	"Trending":     true,
	"Regular":      true,
}

type ContentDiscoveryService interface {
	// GetViralContent 按传播状态检索 ES 中的内容评分文档
	GetViralContent(ctx context.Context, status string, page, size int) ([]*es.ContentScoreES, error)
	// GetTopQuality 质量得分最高的内容
	GetTopQuality(ctx context.Context, size int) ([]*es.ContentScoreES, error)
}

type contentDiscoveryServiceImpl struct {
	scoreRepo es.ContentScoreRepo
}

func NewContentDiscoveryService(scoreRepo es.ContentScoreRepo) ContentDiscoveryService {
	return &contentDiscoveryServiceImpl{scoreRepo: scoreRepo}
}

func (s *contentDiscoveryServiceImpl) GetViralContent(ctx context.Context, status string, page, size int) ([]*es.ContentScoreES, error) {
	if status == "" {
		status = "Viral"
	}
	if !viralStatuses[status] {
		return nil, ErrParamInvalid
	}
	if page < 1 {
		page = 1
	}
	size = clampSize(size)

	return s.scoreRepo.SearchByViralStatus(ctx, status, (page-1)*size, size)
}

func (s *contentDiscoveryServiceImpl) GetTopQuality(ctx context.Context, size int) ([]*es.ContentScoreES, error) {
	return s.scoreRepo.TopByQuality(ctx, clampSize(size))
}

func clampSize(size int) int {
	if size <= 0 || size > consts.TrendingLimit {
		return consts.TrendingLimit
	}
	return size
}
