package vo

import (
	"time"

	"github.com/Xushengqwer/report_service/models/entities"
)

// TopAuthorVO 作者排行中的一行。
// - 作者记录缺失 (孤立的 author_id) 时 Name/City 为 null，行本身保留。
type TopAuthorVO struct {
	AuthorID           string  `json:"author_id"`
	Name               *string `json:"name"`
	City               *string `json:"city"`
	PublishedPostCount int64   `json:"published_post_count"`
}

// ActiveAuthorVO 活跃作者及其最新一篇已发布帖子。
type ActiveAuthorVO struct {
	AuthorID            string    `json:"author_id"`
	AuthorName          string    `json:"author_name"`
	TotalPublishedPosts int64     `json:"total_published_posts"`
	LatestPostContent   string    `json:"latest_post_content"`
	LatestPostDate      time.Time `json:"latest_post_date"`
}

// UserVO 用户基础信息
type UserVO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorSummaryVO 帖子中内嵌的作者信息，作者缺失时两个字段都为 null
type AuthorSummaryVO struct {
	Name *string `json:"name"`
	City *string `json:"city"`
}

// PostVO 帖子基础信息 (模糊搜索结果不做任何补全)
type PostVO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	AuthorID  string    `json:"author_id"`
	TopicID   string    `json:"topic_id"`
}

// PostWithRelationsVO 补全了作者与评论内容的帖子
type PostWithRelationsVO struct {
	PostVO
	Author   AuthorSummaryVO `json:"author"`
	Comments []string        `json:"comments"` // 只保留评论内容，丢弃评论元数据
}

// CommentVO 最新评论列表中的一行
type CommentVO struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	PostID     string    `json:"post_id"`
	PostTitle  *string   `json:"post_title"`
	AuthorID   string    `json:"author_id"`
	AuthorName *string   `json:"author_name"`
}

// RankingSnapshotVO Redis 中的作者排行快照
type RankingSnapshotVO struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Authors     []*TopAuthorVO `json:"authors"`
}

// ExportVO 报表导出结果
type ExportVO struct {
	URL       string `json:"url"`
	ObjectKey string `json:"object_key"`
	Rows      int    `json:"rows"`
}

// MapUserToVO 将用户实体转换为 VO
func MapUserToVO(u *entities.User) *UserVO {
	if u == nil {
		return nil
	}
	return &UserVO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		City:      u.City,
		CreatedAt: u.CreatedAt,
	}
}

// MapUsersToVOs 批量转换用户实体，保持顺序，结果永远不是 nil
func MapUsersToVOs(users []*entities.User) []*UserVO {
	out := make([]*UserVO, 0, len(users))
	for _, u := range users {
		if u == nil {
			continue
		}
		out = append(out, MapUserToVO(u))
	}
	return out
}

// MapPostToVO 将帖子实体转换为基础 VO
func MapPostToVO(p *entities.Post) *PostVO {
	if p == nil {
		return nil
	}
	return &PostVO{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Published: p.Published,
		CreatedAt: p.CreatedAt,
		AuthorID:  p.AuthorID,
		TopicID:   p.TopicID,
	}
}

// MapPostsToVOs 批量转换帖子实体，结果永远不是 nil
func MapPostsToVOs(posts []*entities.Post) []*PostVO {
	out := make([]*PostVO, 0, len(posts))
	for _, p := range posts {
		if p == nil {
			continue
		}
		out = append(out, MapPostToVO(p))
	}
	return out
}

// MapPostWithRelationsToVO 转换预加载了 Author 与 Comments 的帖子。
// Comments 按预加载时的顺序展开为内容字符串。
func MapPostWithRelationsToVO(p *entities.Post) *PostWithRelationsVO {
	if p == nil {
		return nil
	}
	out := &PostWithRelationsVO{
		PostVO:   *MapPostToVO(p),
		Comments: make([]string, 0, len(p.Comments)),
	}
	if p.Author != nil {
		name, city := p.Author.Name, p.Author.City
		out.Author = AuthorSummaryVO{Name: &name, City: &city}
	}
	for _, c := range p.Comments {
		out.Comments = append(out.Comments, c.Content)
	}
	return out
}

// MapCommentToVO 转换预加载了 Post 与 Author 的评论
func MapCommentToVO(c *entities.Comment) *CommentVO {
	if c == nil {
		return nil
	}
	out := &CommentVO{
		ID:        c.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
	}
	if c.Post != nil {
		title := c.Post.Title
		out.PostTitle = &title
	}
	if c.Author != nil {
		name := c.Author.Name
		out.AuthorName = &name
	}
	return out
}
