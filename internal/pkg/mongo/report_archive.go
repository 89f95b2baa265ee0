package mongo

import (
	"time"

	"github.com/goccy/go-json"
)

// ReportArchive MongoDB 报表归档模型，保存每日快照的原始 JSON
type ReportArchive struct {
	ID         string          `bson:"_id,omitempty" json:"id"`
	ReportType string          `bson:"report_type" json:"reportType"` // content / category / content-type / creator / hashtag / timing / anomaly
	WindowDays int             `bson:"window_days" json:"windowDays"`
	AsOf       time.Time       `bson:"as_of" json:"asOf"`
	Payload    json.RawMessage `bson:"payload" json:"payload"`
	ObjectKey  string          `bson:"object_key,omitempty" json:"objectKey"` // MinIO 中 CSV 导出的对象名
	CreatedAt  time.Time       `bson:"created_at" json:"createdAt"`
}
