package es

import (
	"context"
	"errors"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/goccy/go-json"
)

type ContentScoreRepo interface {
	IndexContentScore(ctx context.Context, doc *ContentScoreES) error
	SearchByViralStatus(ctx context.Context, status string, from, size int) ([]*ContentScoreES, error)
	TopByQuality(ctx context.Context, size int) ([]*ContentScoreES, error)
	DeleteContentScore(ctx context.Context, contentID uint64) error
}

type contentScoreRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewContentScoreRepo(client *elasticsearch.TypedClient) ContentScoreRepo {
	return &contentScoreRepoImpl{client: client}
}

// IndexContentScore 全量覆盖写入单条评分文档
func (s *contentScoreRepoImpl) IndexContentScore(ctx context.Context, doc *ContentScoreES) error {
	docID := strconv.FormatUint(doc.ContentID, 10)

	_, err := s.client.Index(ContentIndex).
		Id(docID).
		Document(doc).
		Do(ctx)

	return err
}

// SearchByViralStatus 按传播状态筛选，互动率降序
func (s *contentScoreRepoImpl) SearchByViralStatus(ctx context.Context, status string, from, size int) ([]*ContentScoreES, error) {
	req := s.client.Search().Index(ContentIndex).
		Query(&types.Query{
			Bool: &types.BoolQuery{
				Filter: []types.Query{
					{Term: map[string]types.TermQuery{"viral_status": {Value: status}}},
				},
			},
		}).
		Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
			"engagement_rate": {Order: &sortorder.Desc},
		}}).
		From(from).
		Size(size)

	return s.executeSearch(ctx, req)
}

// TopByQuality 质量得分最高的内容
func (s *contentScoreRepoImpl) TopByQuality(ctx context.Context, size int) ([]*ContentScoreES, error) {
	req := s.client.Search().Index(ContentIndex).
		Query(&types.Query{
			Bool: &types.BoolQuery{
				Filter: []types.Query{
					{Exists: &types.ExistsQuery{Field: "quality_score"}},
				},
			},
		}).
		Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
			"quality_score": {Order: &sortorder.Desc},
		}}).
		Size(size)

	return s.executeSearch(ctx, req)
}

func (s *contentScoreRepoImpl) DeleteContentScore(ctx context.Context, contentID uint64) error {
	docID := strconv.FormatUint(contentID, 10)

	_, err := s.client.Delete(ContentIndex, docID).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *contentScoreRepoImpl) executeSearch(ctx context.Context, req *search.Search) ([]*ContentScoreES, error) {
	resp, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*ContentScoreES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		if hit.Source_ == nil {
			continue
		}
		var doc ContentScoreES
		if err = json.Unmarshal(hit.Source_, &doc); err != nil {
			continue
		}
		results = append(results, &doc)
	}
	return results, nil
}
