package dto

import (
	"time"

	"github.com/goccy/go-json"
)

// ArchiveDTO 报表历史快照，附带 CSV 导出的下载地址
type ArchiveDTO struct {
	ID          string          `json:"id"`
	ReportType  string          `json:"report_type"`
	WindowDays  int             `json:"window_days"`
	AsOf        time.Time       `json:"as_of"`
	Payload     json.RawMessage `json:"payload"`
	DownloadURL string          `json:"download_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
