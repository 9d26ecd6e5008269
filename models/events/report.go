package events

import "time"

// ContentChangedEvent 由 CRUD 服务在用户/帖子/评论/话题写入后发布。
// 本服务只关心它是否可能改变作者排行。
type ContentChangedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	Entity    string    `json:"entity"`    // user / post / comment / topic
	EntityID  string    `json:"entity_id"` // 变更实体的 ID
	Action    string    `json:"action"`    // created / updated / deleted
}

const (
	EntityUser    = "user"
	EntityPost    = "post"
	EntityComment = "comment"
	EntityTopic   = "topic"
)

// AffectsRanking 判断该变更是否可能改变作者排行。
// 排行只依赖已发布帖子的归属与作者的展示信息，评论和话题的变化与之无关。
func (e ContentChangedEvent) AffectsRanking() bool {
	return e.Entity == EntityPost || e.Entity == EntityUser
}

// RankingRefreshedEvent 在作者排行快照刷新后发布。
type RankingRefreshedEvent struct {
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	GeneratedAt time.Time `json:"generated_at"`
	Size        int       `json:"size"`                    // 快照行数
	TopAuthorID string    `json:"top_author_id,omitempty"` // 快照为空时省略
}
