package service

import (
	"Prism/internal/api/dto"
	"Prism/internal/pkg/consts"
	"Prism/internal/pkg/minio"
	"Prism/internal/pkg/mongo"
	"context"
)

// 归档任务落盘的报表类型
var archiveReportTypes = map[string]bool{
	"content":      true,
	"category":     true,
	"content-type": true,
	"creator":      true,
	"hashtag":      true,
	"timing":       true,
	"anomaly":      true,
}

const archiveHistoryPageSize = 30

type ReportArchiveService interface {
	// GetArchiveHistory 报表历史快照，新的在前
	GetArchiveHistory(ctx context.Context, reportType string, days int) ([]*dto.ArchiveDTO, error)
	// GetLatestArchive 最近一次快照，不存在时返回 nil
	GetLatestArchive(ctx context.Context, reportType string, days int) (*dto.ArchiveDTO, error)
}

type reportArchiveServiceImpl struct {
	archiveRepo mongo.ReportArchiveRepo
}

func NewReportArchiveService(archiveRepo mongo.ReportArchiveRepo) ReportArchiveService {
	return &reportArchiveServiceImpl{archiveRepo: archiveRepo}
}

func (s *reportArchiveServiceImpl) GetArchiveHistory(ctx context.Context, reportType string, days int) ([]*dto.ArchiveDTO, error) {
	reportType, days, err := normalizeArchiveQuery(reportType, days)
	if err != nil {
		return nil, err
	}

	archives, err := s.archiveRepo.GetHistory(ctx, reportType, days, archiveHistoryPageSize)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ArchiveDTO, 0, len(archives))
	for _, a := range archives {
		res = append(res, toArchiveDTO(a))
	}
	return res, nil
}

func (s *reportArchiveServiceImpl) GetLatestArchive(ctx context.Context, reportType string, days int) (*dto.ArchiveDTO, error) {
	reportType, days, err := normalizeArchiveQuery(reportType, days)
	if err != nil {
		return nil, err
	}

	archive, err := s.archiveRepo.GetLatest(ctx, reportType, days)
	if err != nil {
		return nil, err
	}
	if archive == nil {
		return nil, ErrArchiveNotFound
	}
	return toArchiveDTO(archive), nil
}

func normalizeArchiveQuery(reportType string, days int) (string, int, error) {
	if !archiveReportTypes[reportType] {
		return "", 0, ErrParamInvalid
	}
	if days == 0 {
		days = consts.DefaultWindowDays
	}
	if !consts.AllowedWindowDays[days] {
		return "", 0, ErrWindowInvalid
	}
	return reportType, days, nil
}

func toArchiveDTO(a *mongo.ReportArchive) *dto.ArchiveDTO {
	res := &dto.ArchiveDTO{
		ID:         a.ID,
		ReportType: a.ReportType,
		WindowDays: a.WindowDays,
		AsOf:       a.AsOf,
		Payload:    a.Payload,
		CreatedAt:  a.CreatedAt,
	}
	if a.ObjectKey != "" {
		res.DownloadURL = minio.GetPublicURL(a.ObjectKey)
	}
	return res
}
