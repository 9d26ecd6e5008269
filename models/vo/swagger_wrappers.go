package vo

// --- 用于成功响应且包含具体 Data 的包装器 (仅供 swag 生成文档) ---

// TopAuthorsResponseWrapper 对应 response.APIResponse[[]*vo.TopAuthorVO]
type TopAuthorsResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    []*TopAuthorVO `json:"data"`
}

// ActiveAuthorsResponseWrapper 对应 response.APIResponse[[]*vo.ActiveAuthorVO]
type ActiveAuthorsResponseWrapper struct {
	Code    int               `json:"code" example:"0"`
	Message string            `json:"message,omitempty" example:"success"`
	Data    []*ActiveAuthorVO `json:"data"`
}

// UsersResponseWrapper 对应 response.APIResponse[[]*vo.UserVO]
type UsersResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    []*UserVO `json:"data"`
}

// PostsWithRelationsResponseWrapper 对应 response.APIResponse[[]*vo.PostWithRelationsVO]
type PostsWithRelationsResponseWrapper struct {
	Code    int                    `json:"code" example:"0"`
	Message string                 `json:"message,omitempty" example:"success"`
	Data    []*PostWithRelationsVO `json:"data"`
}

// PostsResponseWrapper 对应 response.APIResponse[[]*vo.PostVO]
type PostsResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    []*PostVO `json:"data"`
}

// CommentsResponseWrapper 对应 response.APIResponse[[]*vo.CommentVO]
type CommentsResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    []*CommentVO `json:"data"`
}

// RankingSnapshotResponseWrapper 对应 response.APIResponse[vo.RankingSnapshotVO]
type RankingSnapshotResponseWrapper struct {
	Code    int               `json:"code" example:"0"`
	Message string            `json:"message,omitempty" example:"success"`
	Data    RankingSnapshotVO `json:"data"`
}

// ExportResponseWrapper 对应 response.APIResponse[vo.ExportVO]
type ExportResponseWrapper struct {
	Code    int      `json:"code" example:"0"`
	Message string   `json:"message,omitempty" example:"success"`
	Data    ExportVO `json:"data"`
}

// --- 用于错误响应 ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
