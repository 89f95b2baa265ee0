package consts

const (
	ContentLikeKey    = "content:like:"
	ContentCommentKey = "content:comment:"
	ContentShareKey   = "content:share:"
	ContentSaveKey    = "content:save:"
	ContentViewKey    = "content:view:"
	ContentDirtyKey   = "content:dirty"

	UserFollowerCountKey    = "user:follower:count:"
	UserFollowingCountKey   = "user:following:count:"
	UserFollowDirtyKey      = "user:follow:dirty"
	UserFollowerSnapshotKey = "user:follower:snapshot:"

	ReportContentKey  = "report:content:"
	ReportWindowKey   = "report:content-window:"
	ReportCategoryKey = "report:category:"
	ReportTypeKey     = "report:content-type:"
	ReportCreatorKey  = "report:creator:"
	ReportHashtagKey  = "report:hashtag:"
	ReportTimingKey   = "report:timing:"
	ReportAnomalyKey  = "report:anomaly:"
	ReportStrategyKey = "report:strategy:"
	UserTrendKey      = "user:metrics:trend:"
)

const (
	MetricRefreshLock = "lock:metric:refresh"
	HashtagTrendLock  = "lock:hashtag:trend"
	ReportArchiveLock = "lock:report:archive"
)
