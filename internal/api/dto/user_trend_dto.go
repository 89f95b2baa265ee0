package dto

// UserTrendPointDTO 单日互动快照
type UserTrendPointDTO struct {
	Date              string  `json:"date"`
	PostsCreated      int     `json:"posts_created"`
	LikesReceived     int     `json:"likes_received"`
	CommentsReceived  int     `json:"comments_received"`
	SharesReceived    int     `json:"shares_received"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	FollowersGained   int     `json:"followers_gained"`
}

// UserTrendDTO 用户互动趋势
type UserTrendDTO struct {
	UserID uint64               `json:"user_id"`
	Days   int                  `json:"days"`
	Points []*UserTrendPointDTO `json:"points"`
}
