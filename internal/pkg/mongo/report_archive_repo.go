package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportArchiveRepo interface {
	SaveArchive(ctx context.Context, archive *ReportArchive) error
	GetHistory(ctx context.Context, reportType string, windowDays int, pageSize int) ([]*ReportArchive, error)
	GetLatest(ctx context.Context, reportType string, windowDays int) (*ReportArchive, error)
}

type reportArchiveRepoImpl struct {
	col *mongo.Collection
}

func NewReportArchiveRepo(db *mongo.Database) ReportArchiveRepo {
	return &reportArchiveRepoImpl{
		col: db.Collection("report_archive"),
	}
}

// SaveArchive 将报表快照存入 MongoDB
func (s *reportArchiveRepoImpl) SaveArchive(ctx context.Context, archive *ReportArchive) error {
	_, err := s.col.InsertOne(ctx, archive)
	return err
}

// GetHistory 按报表类型查询历史快照，新的在前
func (s *reportArchiveRepoImpl) GetHistory(ctx context.Context, reportType string, windowDays int, pageSize int) ([]*ReportArchive, error) {
	filter := bson.M{
		"report_type": reportType,
		"window_days": windowDays,
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "as_of", Value: -1}}).
		SetLimit(int64(pageSize))

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var archives []*ReportArchive
	if err := cursor.All(ctx, &archives); err != nil {
		return nil, err
	}

	return archives, nil
}

// GetLatest 精确查询最近一次快照
func (s *reportArchiveRepoImpl) GetLatest(ctx context.Context, reportType string, windowDays int) (*ReportArchive, error) {
	filter := bson.M{
		"report_type": reportType,
		"window_days": windowDays,
	}

	findOptions := options.FindOne().SetSort(bson.D{{Key: "as_of", Value: -1}})

	var archive ReportArchive
	err := s.col.FindOne(ctx, filter, findOptions).Decode(&archive)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &archive, nil
}
